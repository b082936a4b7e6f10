package machina

import "github.com/enetx/g"

type (
	// Criteria guards a transition. It receives the input driving the current
	// step and the state occupied before the last committed transition (absent
	// before the first step or right after a reset).
	Criteria func(input any, previous g.Option[*State]) bool

	// Accept produces an externally visible value when a state or transition
	// is exercised. It receives the triggering input and the history recorded
	// so far (the step being resolved is not yet part of it). Returning None
	// keeps the step silent.
	Accept func(input any, history g.Slice[Record]) g.Option[any]

	// Continuation is invoked after a Next call has committed its outcome and
	// fired all notifications for that step.
	Continuation func(Outcome)

	// ChangeHook observes committed transitions.
	ChangeHook func(Change)
	// ResetHook observes resets, explicit or automatic.
	ResetHook func(ResetInfo)
	// ValueHook observes every value produced by an Accept.
	ValueHook func(value any)
	// ErrorHook observes runtime errors. These are non-fatal; the engine
	// recovers by resetting to the root.
	ErrorHook func(err error)

	// Transition is a directed, criteria-guarded edge to another state.
	// Target names are resolved against the engine's registry lazily, when the
	// transition is actually considered, so forward references to states added
	// later are legal.
	Transition struct {
		Target   g.String
		Criteria Criteria
		Accept   Accept

		literal   any
		isLiteral bool
	}
)
