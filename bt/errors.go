package bt

import (
	"errors"
	"fmt"
)

// ErrEmptyComposite is returned by NewTree when a Sequence, Selector,
// Parallel, UtilitySelector, RandomSelector or WeightedSelector node has no
// children. Builder.End and Builder.Build do not check for empty frames.
var ErrEmptyComposite = errors.New("bt: composite has no children")

// ErrTickBudgetExceeded is returned from TickWith when a single tick enters
// more nodes than TreeConfig.MaxTicksPerFrame allows.
var ErrTickBudgetExceeded = errors.New("bt: tick exceeded max ticks per frame")

// MaxDepthExceededError reports that a tree nests deeper than
// TreeConfig.MaxDepth allows.
type MaxDepthExceededError struct {
	Depth    int
	MaxDepth int
}

func (e *MaxDepthExceededError) Error() string {
	return fmt.Sprintf("bt: depth %d exceeds max depth %d", e.Depth, e.MaxDepth)
}

// WeightCountMismatchError reports that a WeightedSelector's weight list
// does not have one entry per child.
type WeightCountMismatchError struct {
	Children int
	Weights  int
}

func (e *WeightCountMismatchError) Error() string {
	return fmt.Sprintf("bt: weighted selector has %d children but %d weights", e.Children, e.Weights)
}

// UtilityIDCountMismatchError reports that a UtilitySelector's utility id
// list does not have one entry per child.
type UtilityIDCountMismatchError struct {
	Children int
	IDs      int
}

func (e *UtilityIDCountMismatchError) Error() string {
	return fmt.Sprintf("bt: utility selector has %d children but %d utility ids", e.Children, e.IDs)
}

// UnbalancedBuilderError reports that Builder.Build was called with open
// composite frames still on the stack, or with every frame closed but other
// than exactly one top-level node (RemainingFrames is then 0).
type UnbalancedBuilderError struct {
	RemainingFrames int
}

func (e *UnbalancedBuilderError) Error() string {
	return fmt.Sprintf("bt: builder has %d unclosed frame(s)", e.RemainingFrames)
}

// ReasonerCountMismatchError reports that NewTree was given a different
// number of Reasoners than the tree has UtilitySelector nodes. Reasoners
// bind to UtilitySelector nodes in preorder occurrence order (see
// DESIGN.md's resolution of the utility_ids Open Question).
type ReasonerCountMismatchError struct {
	UtilitySelectors int
	Reasoners        int
}

func (e *ReasonerCountMismatchError) Error() string {
	return fmt.Sprintf("bt: tree has %d utility selector(s) but %d reasoner(s) were supplied", e.UtilitySelectors, e.Reasoners)
}
