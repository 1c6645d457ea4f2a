package bt

// Observer receives trace-point callbacks during a tick, for debugging and
// visualization front-ends. All four methods have a no-op default
// (NopObserver); observers must not re-enter the tree they are observing.
type Observer interface {
	// OnEnter fires before a node is dispatched.
	OnEnter(nodeID int)
	// OnExit fires after a node produces its final status for this tick.
	OnExit(nodeID int, status Status)
	// OnBlackboardWrite reports a blackboard write. The tick engine never
	// calls it, since it performs no blackboard writes itself; embedders
	// may call it when their handlers write the blackboard.
	OnBlackboardWrite(key int32, value BlackboardValue)
	// OnUtilityScore fires once per candidate action a Reasoner scores.
	OnUtilityScore(actionIndex int, score float64)
}

// NopObserver implements Observer with no-op methods. It is the default
// used when an embedder passes a nil Observer to Tick/TickWith.
type NopObserver struct{}

// OnEnter does nothing.
func (NopObserver) OnEnter(int) {}

// OnExit does nothing.
func (NopObserver) OnExit(int, Status) {}

// OnBlackboardWrite does nothing.
func (NopObserver) OnBlackboardWrite(int32, BlackboardValue) {}

// OnUtilityScore does nothing.
func (NopObserver) OnUtilityScore(int, float64) {}
