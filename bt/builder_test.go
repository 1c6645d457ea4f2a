package bt

import "testing"

type testAction int

type testCondition int

func TestBuilderSimpleSequence(t *testing.T) {
	b := NewBuilder[testAction, testCondition]()
	b.Sequence().
		Condition(1).
		Action(2).
		End()

	got, err := b.Build()
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}

	want := Sequence(
		ConditionNode[testAction, testCondition](1),
		ActionNode[testAction, testCondition](2),
	)

	if !got.Equal(want) {
		t.Errorf("Build() = %+v, want %+v", got, want)
	}
}

func TestBuilderDecoratedLeaf(t *testing.T) {
	b := NewBuilder[testAction, testCondition]()
	b.Decorator(Inverter()).Condition(1)

	got, err := b.Build()
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}

	want := DecoratorNode(Inverter(), ConditionNode[testAction, testCondition](1))

	if !got.Equal(want) {
		t.Errorf("Build() = %+v, want %+v", got, want)
	}
}

func TestBuilderDecoratedComposite(t *testing.T) {
	b := NewBuilder[testAction, testCondition]()
	b.Decorator(Repeat(3)).Sequence().
		Action(1).
		End()

	got, err := b.Build()
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}

	want := DecoratorNode(Repeat(3), Sequence(ActionNode[testAction, testCondition](1)))

	if !got.Equal(want) {
		t.Errorf("Build() = %+v, want %+v", got, want)
	}
}

func TestBuilderWeightedSelector(t *testing.T) {
	b := NewBuilder[testAction, testCondition]()
	b.WeightedSelector().
		Weight(1).Action(1).
		Weight(2).Action(2).
		End()

	got, err := b.Build()
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}

	want := WeightedSelectorNode(
		[]uint32{1, 2},
		ActionNode[testAction, testCondition](1),
		ActionNode[testAction, testCondition](2),
	)

	if !got.Equal(want) {
		t.Errorf("Build() = %+v, want %+v", got, want)
	}
}

func TestBuilderNestedComposites(t *testing.T) {
	b := NewBuilder[testAction, testCondition]()
	b.Selector().
		Sequence().
		Condition(1).
		Action(2).
		End().
		Action(3).
		End()

	got, err := b.Build()
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}

	want := Selector(
		Sequence(
			ConditionNode[testAction, testCondition](1),
			ActionNode[testAction, testCondition](2),
		),
		ActionNode[testAction, testCondition](3),
	)

	if !got.Equal(want) {
		t.Errorf("Build() = %+v, want %+v", got, want)
	}
}

func TestBuilderUnbalancedFrames(t *testing.T) {
	b := NewBuilder[testAction, testCondition]()
	b.Sequence().Action(1)

	if _, err := b.Build(); err == nil {
		t.Errorf("Build() error = nil, want an UnbalancedBuilderError")
	}
}

func TestBuilderEmptyBuild(t *testing.T) {
	b := NewBuilder[testAction, testCondition]()

	if _, err := b.Build(); err == nil {
		t.Errorf("Build() error = nil on an empty builder, want an error")
	}
}
