package bt

// Tree wraps a root Node with everything a tick needs to run: the
// per-node state table, the blackboard, the tick counter, and the
// Reasoners a UtilitySelector node delegates to. It exclusively owns the
// state table, blackboard and tick counter; the Reasoners are the values
// the embedder passed to NewTree and stay shared with the embedder. Context
// only ever borrows the blackboard and RNG for the duration of one
// TickWith call.
type Tree[A comparable, C comparable] struct {
	root   Node[A, C]
	config TreeConfig

	states          []NodeState
	utilityBindings []int
	reasoners       []Reasoner

	blackboard *Blackboard
	tickCount  uint64
}

// NewTree validates root against config, assigns preorder ids, sizes the
// state table, and binds reasoners to the tree's UtilitySelector nodes in
// preorder occurrence order (the n-th UtilitySelector node encountered in a
// full, branch-independent preorder walk uses reasoners[n]). It returns a
// structural error — never a tick outcome — if root is malformed.
func NewTree[A comparable, C comparable](root Node[A, C], config TreeConfig, reasoners []Reasoner) (*Tree[A, C], error) {
	n := root.Size()
	bindings := make([]int, n)

	for i := range bindings {
		bindings[i] = -1
	}

	utilityCount := 0

	if _, err := validate(root, 0, 1, config.MaxDepth, bindings, &utilityCount); err != nil {
		return nil, err
	}

	if utilityCount != len(reasoners) {
		return nil, &ReasonerCountMismatchError{UtilitySelectors: utilityCount, Reasoners: len(reasoners)}
	}

	return &Tree[A, C]{
		root:            root,
		config:          config,
		states:          newStateTable(n),
		utilityBindings: bindings,
		reasoners:       reasoners,
		blackboard:      NewBlackboard(),
		tickCount:       0,
	}, nil
}

// validate walks root in preorder, checking every structural invariant,
// filling bindings[id] for UtilitySelector nodes, and returning the max
// depth seen in this subtree.
func validate[A comparable, C comparable](node Node[A, C], id int, depth int, maxDepth int, bindings []int, utilityCount *int) (int, error) {
	if maxDepth > 0 && depth > maxDepth {
		return depth, &MaxDepthExceededError{Depth: depth, MaxDepth: maxDepth}
	}

	switch node.Kind {
	case KindSequence, KindSelector, KindParallel, KindRandomSelector:
		if len(node.Children) == 0 {
			return depth, ErrEmptyComposite
		}
	case KindWeightedSelector:
		if len(node.Children) == 0 {
			return depth, ErrEmptyComposite
		}

		if len(node.Weights) != len(node.Children) {
			return depth, &WeightCountMismatchError{Children: len(node.Children), Weights: len(node.Weights)}
		}
	case KindUtilitySelector:
		if len(node.Children) == 0 {
			return depth, ErrEmptyComposite
		}

		if len(node.UtilityIDs) != len(node.Children) {
			return depth, &UtilityIDCountMismatchError{Children: len(node.Children), IDs: len(node.UtilityIDs)}
		}

		bindings[id] = *utilityCount
		*utilityCount++
	}

	maxSeen := depth

	childBase := id + 1
	for _, child := range node.Children {
		childDepth, err := validate(child, childBase, depth+1, maxDepth, bindings, utilityCount)
		if err != nil {
			return childDepth, err
		}

		if childDepth > maxSeen {
			maxSeen = childDepth
		}

		childBase += child.Size()
	}

	return maxSeen, nil
}

// Blackboard returns the tree's owned blackboard. Outside of a tick call
// it may be freely read and written by the embedder.
func (t *Tree[A, C]) Blackboard() *Blackboard {
	return t.blackboard
}

// TickCount returns the current tick counter.
func (t *Tree[A, C]) TickCount() uint64 {
	return t.tickCount
}

// Tick runs tick_with(1, nil, ...): a single tick with delta 1 and no RNG.
func (t *Tree[A, C]) Tick(ah ActionHandler[A], ch ConditionHandler[C], obs Observer) (Status, error) {
	return t.TickWith(1, nil, ah, ch, obs)
}

// TickWith runs one tick: it builds a Context binding delta, the tick
// counter, the blackboard and the optional RNG, ticks the root, advances
// the tick counter by delta, and returns the root's status. The only error
// it can return is ErrTickBudgetExceeded (see TreeConfig.MaxTicksPerFrame);
// every other outcome, including Failure, is a normal Status, not an error.
func (t *Tree[A, C]) TickWith(delta uint32, rng RNG, ah ActionHandler[A], ch ConditionHandler[C], obs Observer) (Status, error) {
	if obs == nil {
		obs = NopObserver{}
	}

	ctx := &Context{
		Tick:  t.tickCount,
		Delta: delta,
		bb:    t.blackboard,
		rng:   rng,
	}

	env := &tickEnv[A, C]{
		states:          t.states,
		ctx:             ctx,
		ah:              ah,
		ch:              ch,
		obs:             obs,
		reasoners:       t.reasoners,
		utilityBindings: t.utilityBindings,
		maxBudget:       t.config.MaxTicksPerFrame,
	}

	status, err := env.tick(t.root, 0)

	t.tickCount += uint64(delta)

	return status, err
}

// Reset zeroes every NodeState entry, preserving the blackboard. A
// subsequent tick starts every composite/decorator fresh, as if the tree
// had never run.
func (t *Tree[A, C]) Reset() {
	for i := range t.states {
		t.states[i].Reset()
	}
}

// ResetAll resets node state and also clears the blackboard.
func (t *Tree[A, C]) ResetAll() {
	t.Reset()
	t.blackboard.Clear()
}
