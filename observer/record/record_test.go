package record

import (
	"testing"

	"github.com/skyrocket-qy/decisiontree/bt"
)

func TestRecorderCapturesEvents(t *testing.T) {
	r := NewRecorder(10)

	r.OnEnter(0)
	r.OnExit(0, bt.Success)
	r.OnBlackboardWrite(1, bt.IntValue(5))
	r.OnUtilityScore(2, 0.75)

	history := r.History()
	if len(history) != 4 {
		t.Fatalf("len(History()) = %d, want 4", len(history))
	}

	if history[0].Kind != EventEnter || history[0].NodeID != 0 {
		t.Errorf("history[0] = %+v, want an Enter event for node 0", history[0])
	}

	if history[1].Kind != EventExit || history[1].Status != bt.Success {
		t.Errorf("history[1] = %+v, want an Exit event with Success", history[1])
	}

	if history[3].Kind != EventUtilityScore || history[3].Score != 0.75 {
		t.Errorf("history[3] = %+v, want a UtilityScore event with score 0.75", history[3])
	}
}

func TestRecorderTrimsToMaxHistory(t *testing.T) {
	r := NewRecorder(2)

	r.OnEnter(0)
	r.OnEnter(1)
	r.OnEnter(2)

	history := r.History()
	if len(history) != 2 {
		t.Fatalf("len(History()) = %d, want 2", len(history))
	}

	if history[0].NodeID != 1 || history[1].NodeID != 2 {
		t.Errorf("history = %+v, want the two most recent events", history)
	}
}

func TestRecorderOnEventCallback(t *testing.T) {
	r := NewRecorder(10)

	var seen []Event
	r.OnEvent = func(e Event) { seen = append(seen, e) }

	r.OnEnter(5)

	if len(seen) != 1 || seen[0].NodeID != 5 {
		t.Errorf("seen = %+v, want one Enter event for node 5", seen)
	}
}

func TestRecorderClear(t *testing.T) {
	r := NewRecorder(10)
	r.OnEnter(0)
	r.Clear()

	if len(r.History()) != 0 {
		t.Errorf("len(History()) after Clear = %d, want 0", len(r.History()))
	}
}

func TestRecorderLastN(t *testing.T) {
	r := NewRecorder(10)
	r.OnEnter(0)
	r.OnEnter(1)
	r.OnEnter(2)

	last := r.LastN(2)
	if len(last) != 2 || last[0].NodeID != 1 || last[1].NodeID != 2 {
		t.Errorf("LastN(2) = %+v, want the two most recent events", last)
	}

	if len(r.LastN(100)) != 3 {
		t.Errorf("LastN(100) len = %d, want 3 (entire history)", len(r.LastN(100)))
	}
}

func TestRecorderTracePath(t *testing.T) {
	r := NewRecorder(10)

	r.OnEnter(0)
	r.OnEnter(1)
	r.OnExit(1, bt.Success)
	r.OnEnter(2)
	r.OnExit(2, bt.Success)
	r.OnExit(0, bt.Success)

	path := r.TracePath()
	want := []int{0, 1, 2}

	if len(path) != len(want) {
		t.Fatalf("TracePath() = %v, want %v", path, want)
	}

	for i := range want {
		if path[i] != want[i] {
			t.Errorf("TracePath()[%d] = %d, want %d", i, path[i], want[i])
		}
	}
}
