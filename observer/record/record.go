// Package record implements a bt.Observer that keeps a bounded history of
// trace events in memory, for tests and post-tick inspection.
package record

import "github.com/skyrocket-qy/decisiontree/bt"

// EventKind tags which bt.Observer callback produced an Event.
type EventKind uint8

const (
	EventEnter EventKind = iota
	EventExit
	EventBlackboardWrite
	EventUtilityScore
)

// Event is one recorded trace point. Only the fields relevant to Kind are
// populated; the rest are zero.
type Event struct {
	Kind EventKind

	NodeID int
	Status bt.Status

	Key   int32
	Value bt.BlackboardValue

	ActionIndex int
	Score       float64
}

// Recorder implements bt.Observer, keeping the last MaxHistory events.
// OnEvent, if set, fires synchronously for every recorded event, in
// addition to the history being kept.
type Recorder struct {
	history    []Event
	maxHistory int

	OnEvent func(Event)
}

// NewRecorder builds a Recorder retaining at most maxHistory events. A
// non-positive maxHistory defaults to 1000.
func NewRecorder(maxHistory int) *Recorder {
	if maxHistory <= 0 {
		maxHistory = 1000
	}

	return &Recorder{
		history:    make([]Event, 0, maxHistory),
		maxHistory: maxHistory,
	}
}

func (r *Recorder) record(e Event) {
	r.history = append(r.history, e)
	if len(r.history) > r.maxHistory {
		r.history = r.history[1:]
	}

	if r.OnEvent != nil {
		r.OnEvent(e)
	}
}

// OnEnter implements bt.Observer.
func (r *Recorder) OnEnter(nodeID int) {
	r.record(Event{Kind: EventEnter, NodeID: nodeID})
}

// OnExit implements bt.Observer.
func (r *Recorder) OnExit(nodeID int, status bt.Status) {
	r.record(Event{Kind: EventExit, NodeID: nodeID, Status: status})
}

// OnBlackboardWrite implements bt.Observer.
func (r *Recorder) OnBlackboardWrite(key int32, value bt.BlackboardValue) {
	r.record(Event{Kind: EventBlackboardWrite, Key: key, Value: value})
}

// OnUtilityScore implements bt.Observer.
func (r *Recorder) OnUtilityScore(actionIndex int, score float64) {
	r.record(Event{Kind: EventUtilityScore, ActionIndex: actionIndex, Score: score})
}

// History returns every recorded event, oldest first.
func (r *Recorder) History() []Event {
	return r.history
}

// LastN returns the most recent n events, oldest first. If n exceeds the
// recorded history it returns the whole history.
func (r *Recorder) LastN(n int) []Event {
	if n >= len(r.history) {
		return r.history
	}

	return r.history[len(r.history)-n:]
}

// Clear discards all recorded history.
func (r *Recorder) Clear() {
	r.history = make([]Event, 0, r.maxHistory)
}

// TracePath reconstructs the sequence of node ids that were entered during
// the most recent tick, in entry order, by scanning back from the end of
// history to the most recent Enter of nodeID 0 (the root).
func (r *Recorder) TracePath() []int {
	start := -1

	for i := len(r.history) - 1; i >= 0; i-- {
		e := r.history[i]
		if e.Kind == EventEnter && e.NodeID == 0 {
			start = i

			break
		}
	}

	if start == -1 {
		return nil
	}

	var path []int

	for _, e := range r.history[start:] {
		if e.Kind == EventEnter {
			path = append(path, e.NodeID)
		}
	}

	return path
}
