package bt

// ActionHandler executes leaf Action nodes. It may mutate the blackboard or
// embedder-owned state through ctx, and may return Running across many
// ticks to model a long-running action.
type ActionHandler[A comparable] interface {
	Execute(action A, ctx *Context) Status
}

// ActionFunc adapts a plain function to an ActionHandler.
type ActionFunc[A comparable] func(action A, ctx *Context) Status

// Execute calls f.
func (f ActionFunc[A]) Execute(action A, ctx *Context) Status {
	return f(action, ctx)
}

// ConditionHandler checks leaf Condition nodes. It must be side-effect
// free; the engine converts true to Success and false to Failure. A
// condition never returns Running.
type ConditionHandler[C comparable] interface {
	Check(condition C, ctx *Context) bool
}

// ConditionFunc adapts a plain function to a ConditionHandler.
type ConditionFunc[C comparable] func(condition C, ctx *Context) bool

// Check calls f.
func (f ConditionFunc[C]) Check(condition C, ctx *Context) bool {
	return f(condition, ctx)
}
