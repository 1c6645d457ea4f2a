package bt

// NodeState is the per-node runtime bookkeeping the tick engine needs,
// carried in a side table indexed by preorder id rather than embedded in
// the (pure-data) Node itself.
type NodeState struct {
	// RunningChild is the child index a composite resumes from after a
	// Running result; defaults to 0.
	RunningChild int
	// TickCounter is the general countdown/elapsed counter used by Wait,
	// Cooldown and Timeout.
	TickCounter uint32
	// IterationCount is the completed-iteration count used by Repeat and
	// Retry.
	IterationCount uint32
	// SelectedChild is the child index pinned by UtilitySelector while its
	// choice is Running. -1 means unbound.
	SelectedChild int
	// RandomSelection is the child index pinned by RandomSelector or
	// WeightedSelector while Running. -1 means unbound.
	RandomSelection int
}

// newNodeState returns a zeroed NodeState with its optional-index fields
// set to the unbound sentinel.
func newNodeState() NodeState {
	return NodeState{SelectedChild: -1, RandomSelection: -1}
}

// Reset zeroes the record, returning it to its just-constructed state.
func (s *NodeState) Reset() {
	*s = newNodeState()
}

// newStateTable allocates a state table sized for a tree of n nodes.
func newStateTable(n int) []NodeState {
	table := make([]NodeState, n)
	for i := range table {
		table[i] = newNodeState()
	}

	return table
}
