package bt

import "testing"

func TestNewTreeRejectsEmptyComposite(t *testing.T) {
	root := Sequence[testAction, testCondition]()

	if _, err := NewTree[testAction, testCondition](root, DefaultTreeConfig(), nil); err != ErrEmptyComposite {
		t.Errorf("err = %v, want ErrEmptyComposite", err)
	}
}

func TestNewTreeRejectsWeightCountMismatch(t *testing.T) {
	root := WeightedSelectorNode(
		[]uint32{1},
		ActionNode[testAction, testCondition](1),
		ActionNode[testAction, testCondition](2),
	)

	_, err := NewTree[testAction, testCondition](root, DefaultTreeConfig(), nil)

	var mismatch *WeightCountMismatchError
	if !asWeightMismatch(err, &mismatch) {
		t.Errorf("err = %v, want *WeightCountMismatchError", err)
	}
}

func asWeightMismatch(err error, target **WeightCountMismatchError) bool {
	e, ok := err.(*WeightCountMismatchError)
	if ok {
		*target = e
	}

	return ok
}

func TestNewTreeRejectsUtilityIDCountMismatch(t *testing.T) {
	root := UtilitySelectorNode(
		[]uint32{0},
		ActionNode[testAction, testCondition](1),
		ActionNode[testAction, testCondition](2),
	)

	_, err := NewTree[testAction, testCondition](root, DefaultTreeConfig(), []Reasoner{&fakeReasoner{}})
	if _, ok := err.(*UtilityIDCountMismatchError); !ok {
		t.Errorf("err = %v, want *UtilityIDCountMismatchError", err)
	}
}

func TestNewTreeRejectsMaxDepthExceeded(t *testing.T) {
	leaf := ActionNode[testAction, testCondition](1)
	deep := leaf

	for i := 0; i < 5; i++ {
		deep = Sequence(deep)
	}

	_, err := NewTree[testAction, testCondition](deep, TreeConfig{MaxDepth: 2, MaxTicksPerFrame: 0}, nil)
	if _, ok := err.(*MaxDepthExceededError); !ok {
		t.Errorf("err = %v, want *MaxDepthExceededError", err)
	}
}

func TestNewTreeRejectsReasonerCountMismatch(t *testing.T) {
	root := UtilitySelectorNode(
		[]uint32{0, 1},
		ActionNode[testAction, testCondition](1),
		ActionNode[testAction, testCondition](2),
	)

	_, err := NewTree[testAction, testCondition](root, DefaultTreeConfig(), nil)
	if _, ok := err.(*ReasonerCountMismatchError); !ok {
		t.Errorf("err = %v, want *ReasonerCountMismatchError", err)
	}
}

func TestNewTreeBindsReasonersInPreorderOrder(t *testing.T) {
	inner := UtilitySelectorNode(
		[]uint32{0, 1},
		ActionNode[testAction, testCondition](1),
		ActionNode[testAction, testCondition](2),
	)

	root := Sequence(
		UtilitySelectorNode(
			[]uint32{0, 1},
			ActionNode[testAction, testCondition](3),
			ActionNode[testAction, testCondition](4),
		),
		inner,
	)

	first := &fakeReasoner{winner: 0}
	second := &fakeReasoner{winner: 1}

	h := newHandler()
	h.actionResults[3] = []Status{Success}
	h.actionResults[4] = []Status{Success}

	tree := mustTree(t, root, []Reasoner{first, second})

	status, err := tree.Tick(h, h, nil)
	if err != nil {
		t.Fatalf("Tick() error = %v", err)
	}

	if status != Success {
		t.Fatalf("status = %s, want Success", status)
	}

	if first.lastBB == nil {
		t.Errorf("first reasoner (bound to the first UtilitySelector in preorder) was never consulted")
	}
}
