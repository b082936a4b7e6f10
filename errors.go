package machina

import (
	"fmt"

	"github.com/enetx/g"
)

// ErrInvalidState is returned when a state's configuration is malformed:
// an empty name, a state marked both initial and terminal, a terminal state
// with outgoing transitions, or a transition lacking a target or criteria.
// These are programmer errors and are raised before any input is processed.
type ErrInvalidState struct {
	Name   g.String
	Reason string
}

func (e *ErrInvalidState) Error() string {
	return fmt.Sprintf("machina: invalid state %q: %s", e.Name, e.Reason)
}

// ErrDuplicateState is returned when a state with the same name is already
// registered in the engine.
type ErrDuplicateState struct {
	Name g.String
}

func (e *ErrDuplicateState) Error() string {
	return fmt.Sprintf("machina: state %q is already registered", e.Name)
}

// ErrDuplicateRoot is returned when a second initial state is added to a
// graph that already has one. A graph has exactly one root.
type ErrDuplicateRoot struct {
	Name g.String
	Root g.String
}

func (e *ErrDuplicateRoot) Error() string {
	return fmt.Sprintf("machina: state %q cannot be initial; root is already %q", e.Name, e.Root)
}

// ErrNotInitialized is returned by Next when the engine has no root state.
type ErrNotInitialized struct {
	Machine g.String
}

func (e *ErrNotInitialized) Error() string {
	if e.Machine != "" {
		return fmt.Sprintf("machina: machine %q has no initial state", e.Machine)
	}

	return "machina: machine has no initial state"
}

// ErrNoTransition is reported through the error hook when no transition out
// of the current state matches the input. The engine recovers by resetting.
type ErrNoTransition struct {
	State g.String
	Input any
}

func (e *ErrNoTransition) Error() string {
	return fmt.Sprintf("machina: no matching transition from state %q for input %v", e.State, e.Input)
}

// ErrUnknownTarget is reported through the error hook when a considered
// transition names a state that is not in the registry. The transition is
// treated as non-matching. It is also returned by ValidateGraph.
type ErrUnknownTarget struct {
	State  g.String
	Target g.String
}

func (e *ErrUnknownTarget) Error() string {
	return fmt.Sprintf("machina: transition from state %q targets unknown state %q", e.State, e.Target)
}

// ErrCallbackPanic is reported through the error hook when a criteria or
// accept function panics. It wraps the recovered value, allowing inspection
// with errors.Is and errors.As.
type ErrCallbackPanic struct {
	// Hook names the callback kind where the panic occurred ("criteria" or "accept").
	Hook string
	// State is the state associated with the callback.
	State g.String
	// Err is the error created after recovering from the panic.
	Err error
}

func (e *ErrCallbackPanic) Error() string {
	return fmt.Sprintf("machina: panic in %s for state %q: %v", e.Hook, e.State, e.Err)
}

// Unwrap provides compatibility with the standard library's errors package.
func (e *ErrCallbackPanic) Unwrap() error { return e.Err }
