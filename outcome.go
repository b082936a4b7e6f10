package machina

import "github.com/enetx/g"

// Record is one history entry: the state that was entered and the input that
// drove the machine into it. The root's seed record has a nil Input.
type Record struct {
	State g.String `json:"state"`
	Input any      `json:"input,omitempty"`
}

// Change describes one committed transition, as delivered to change hooks.
type Change struct {
	From    g.String
	To      g.String
	Input   any
	History g.Slice[Record]
	// Value carries the transition-level accept result for this step, if any.
	// The target state's own accept is reported through value hooks only.
	Value g.Option[any]
}

// ResetInfo reports a reset: the state occupied immediately before it and the
// full history accumulated since the previous reset.
type ResetInfo struct {
	Prior   g.String
	History g.Slice[Record]
}

// Status is a read-only snapshot of the machine, as returned by CurrentStatus.
type Status struct {
	State   g.String        `json:"state"`
	History g.Slice[Record] `json:"history"`
}

// Outcome is the committed result of one Next call, handed to continuations.
type Outcome struct {
	// Values holds every value produced by accepts during the step, state-level
	// and transition-level alike, in firing order.
	Values g.Slice[any]
	// Reset is present when the step ended in a reset: a dead end, a terminal
	// target, or the root with ResetAtRoot configured.
	Reset g.Option[ResetInfo]
	// Current is the state occupied after the step, post-reset if one occurred.
	Current g.String
	// History is the history after the step, post-reset if one occurred.
	History g.Slice[Record]
}
