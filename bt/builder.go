package bt

// frame is one open composite on the Builder's stack: the children
// accumulated so far, plus the extra parallel lists WeightedSelector and
// UtilitySelector need.
type frame[A comparable, C comparable] struct {
	kind       NodeKind
	isRoot     bool
	policy     ParallelPolicy
	children   []Node[A, C]
	weights    []uint32
	utilityIDs []uint32
	wrap       *Decorator
}

// Builder is a stack machine for constructing a Node tree without hand
// nesting composite-literal calls. sequence()/selector()/parallel()/
// random_selector()/weighted_selector()/utility_selector() push a frame;
// action()/condition()/wait() append a leaf to the top frame; decorator()
// marks the next added node (leaf or closed composite) to be wrapped;
// weight()/utility_id() append to the top frame's parallel lists; end()
// pops a frame and appends the packaged node to the new top; build()
// requires the stack to have collapsed back to exactly one node.
type Builder[A comparable, C comparable] struct {
	stack   []*frame[A, C]
	pending *Decorator
}

// NewBuilder starts a fresh builder.
func NewBuilder[A comparable, C comparable]() *Builder[A, C] {
	b := &Builder[A, C]{}
	b.stack = []*frame[A, C]{{isRoot: true}}

	return b
}

func (b *Builder[A, C]) top() *frame[A, C] {
	return b.stack[len(b.stack)-1]
}

func (b *Builder[A, C]) push(kind NodeKind, policy ParallelPolicy) *Builder[A, C] {
	f := &frame[A, C]{kind: kind, policy: policy, wrap: b.pending}
	b.pending = nil
	b.stack = append(b.stack, f)

	return b
}

// Sequence pushes a Sequence frame.
func (b *Builder[A, C]) Sequence() *Builder[A, C] { return b.push(KindSequence, ParallelPolicy{}) }

// Selector pushes a Selector frame.
func (b *Builder[A, C]) Selector() *Builder[A, C] { return b.push(KindSelector, ParallelPolicy{}) }

// Parallel pushes a Parallel frame with the given aggregation policy.
func (b *Builder[A, C]) Parallel(policy ParallelPolicy) *Builder[A, C] {
	return b.push(KindParallel, policy)
}

// RandomSelector pushes a RandomSelector frame.
func (b *Builder[A, C]) RandomSelector() *Builder[A, C] {
	return b.push(KindRandomSelector, ParallelPolicy{})
}

// WeightedSelector pushes a WeightedSelector frame.
func (b *Builder[A, C]) WeightedSelector() *Builder[A, C] {
	return b.push(KindWeightedSelector, ParallelPolicy{})
}

// UtilitySelector pushes a UtilitySelector frame.
func (b *Builder[A, C]) UtilitySelector() *Builder[A, C] {
	return b.push(KindUtilitySelector, ParallelPolicy{})
}

func (b *Builder[A, C]) appendLeaf(node Node[A, C]) {
	if b.pending != nil {
		node = DecoratorNode(*b.pending, node)
		b.pending = nil
	}

	top := b.top()
	top.children = append(top.children, node)
}

// Action appends an Action leaf to the top frame.
func (b *Builder[A, C]) Action(a A) *Builder[A, C] {
	b.appendLeaf(ActionNode[A, C](a))

	return b
}

// Condition appends a Condition leaf to the top frame.
func (b *Builder[A, C]) Condition(c C) *Builder[A, C] {
	b.appendLeaf(ConditionNode[A, C](c))

	return b
}

// Wait appends a Wait(n) leaf to the top frame.
func (b *Builder[A, C]) Wait(n uint32) *Builder[A, C] {
	b.appendLeaf(WaitNode[A, C](n))

	return b
}

// Decorator marks the next added node to be wrapped in d: the next leaf, or
// the composite opened by the next frame push, wrapped when the End() that
// closes that frame runs.
func (b *Builder[A, C]) Decorator(d Decorator) *Builder[A, C] {
	b.pending = &d

	return b
}

// Weight appends a draw weight to the top frame; meaningful only between
// WeightedSelector() and its End().
func (b *Builder[A, C]) Weight(w uint32) *Builder[A, C] {
	f := b.top()
	f.weights = append(f.weights, w)

	return b
}

// UtilityID appends a utility id to the top frame; meaningful only between
// UtilitySelector() and its End().
func (b *Builder[A, C]) UtilityID(id uint32) *Builder[A, C] {
	f := b.top()
	f.utilityIDs = append(f.utilityIDs, id)

	return b
}

// End pops the top frame, packages it into a Node, applies any decorator
// that was pending when the frame was pushed, and appends the result to
// the new top frame.
func (b *Builder[A, C]) End() *Builder[A, C] {
	f := b.stack[len(b.stack)-1]
	b.stack = b.stack[:len(b.stack)-1]

	var node Node[A, C]

	switch f.kind {
	case KindSequence:
		node = Sequence(f.children...)
	case KindSelector:
		node = Selector(f.children...)
	case KindParallel:
		node = Parallel(f.policy, f.children...)
	case KindRandomSelector:
		node = RandomSelectorNode(f.children...)
	case KindWeightedSelector:
		node = WeightedSelectorNode(f.weights, f.children...)
	case KindUtilitySelector:
		node = UtilitySelectorNode(f.utilityIDs, f.children...)
	}

	if f.wrap != nil {
		node = DecoratorNode(*f.wrap, node)
	}

	top := b.top()
	top.children = append(top.children, node)

	return b
}

// Build requires the stack to have collapsed to exactly one node (every
// frame closed, exactly one top-level node produced) and returns it.
func (b *Builder[A, C]) Build() (Node[A, C], error) {
	if len(b.stack) != 1 {
		return Node[A, C]{}, &UnbalancedBuilderError{RemainingFrames: len(b.stack) - 1}
	}

	root := b.stack[0]
	if len(root.children) != 1 {
		return Node[A, C]{}, &UnbalancedBuilderError{RemainingFrames: 0}
	}

	return root.children[0], nil
}
