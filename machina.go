// Package machina provides a deterministic finite state machine engine: a
// directed graph of named states with ordered, criteria-guarded transitions.
// The engine consumes one input at a time, resolves the first matching
// transition out of the current state, commits it, and reports the outcome
// through observer hooks and an Outcome value. It is built with types and
// utilities from the github.com/enetx/g library.
package machina

import (
	"fmt"
	"log/slog"

	. "github.com/enetx/g"
	"github.com/enetx/g/cmp"
)

// Config is the engine's construction-time configuration.
type Config struct {
	// Name is a diagnostic label carried in logs and errors.
	Name String
	// MaxHistory bounds the history to a sliding window of the most recent
	// records. Zero means unbounded. Machines with cycles that never reach a
	// terminal state should set it to bound memory.
	MaxHistory Int
	// ResetAtRoot makes the engine reset whenever a transition re-enters the
	// root state, not only on terminal states.
	ResetAtRoot bool
	// Logger receives debug-level traversal logs. Defaults to slog.Default().
	Logger *slog.Logger
}

// Engine owns a state graph and drives it one input at a time. The graph is
// append-only: states are registered with AddState and never removed.
//
// An Engine is not safe for concurrent use; it holds mutable traversal state
// with no internal locking. Use SyncEngine when more than one goroutine
// drives the machine.
type Engine struct {
	name        String
	maxHistory  Int
	resetAtRoot bool
	log         *slog.Logger

	states   Map[String, *State]
	root     *State
	current  *State
	previous Option[*State]
	history  Slice[Record]

	onChange Slice[ChangeHook]
	onReset  Slice[ResetHook]
	onValue  Slice[ValueHook]
	onError  Slice[ErrorHook]
}

// New creates an engine. The graph starts empty; register states with
// AddState, including exactly one marked Initial, before calling Next.
func New(cfg ...Config) *Engine {
	e := &Engine{
		states:   NewMap[String, *State](),
		previous: None[*State](),
		log:      slog.Default(),
	}

	if len(cfg) > 0 {
		c := cfg[0]
		e.name = c.Name
		e.maxHistory = c.MaxHistory
		e.resetAtRoot = c.ResetAtRoot

		if c.Logger != nil {
			e.log = c.Logger
		}
	}

	return e
}

// Name returns the engine's diagnostic label.
func (e *Engine) Name() String { return e.name }

// AddState validates and registers a state. Duplicate names and a second
// initial state are construction errors. The first initial state becomes the
// root and the machine's starting position.
func (e *Engine) AddState(s *State) error {
	if err := s.validate(); err != nil {
		return err
	}

	if e.states.Contains(s.name) {
		return &ErrDuplicateState{Name: s.name}
	}

	if s.initial {
		if e.root != nil {
			return &ErrDuplicateRoot{Name: s.name, Root: e.root.name}
		}

		e.root = s
		e.current = s
		e.history = Slice[Record]{{State: s.name}}
	}

	e.states.Set(s.name, s)

	return nil
}

// AddStates registers states in order, stopping at the first error.
func (e *Engine) AddStates(states ...*State) error {
	for _, s := range states {
		if err := e.AddState(s); err != nil {
			return err
		}
	}

	return nil
}

// GetState returns the registered state with the given name.
func (e *Engine) GetState(name String) Option[*State] {
	return e.states.Get(name)
}

// States returns the names of all registered states, sorted.
func (e *Engine) States() Slice[String] {
	names := e.states.Keys()
	names.SortBy(cmp.Cmp)

	return names
}

// Next advances the machine by one input. The step sequence is:
//
//  1. Resolve the first transition out of the current state whose criteria
//     matches, in declaration order.
//  2. No match: fire an error hook, then recover with a full reset; the
//     outcome reports the reset and no state change.
//  3. Fire the target state's accept, then the transition's own accept; each
//     non-absent result is reported through value hooks and collected.
//  4. Commit: previous, current, history (with FIFO eviction at MaxHistory),
//     then fire a change hook.
//  5. If the target is terminal, or is the root and ResetAtRoot is set, reset;
//     the reset folds into the same outcome.
//
// An optional continuation receives the committed Outcome after the step's
// own hook emissions, on a separate goroutine. Drive the machine through
// SyncEngine when chaining Next calls from inside a continuation.
//
// Next returns an error only when no initial state has been registered.
// Runtime dead ends are not errors to the caller; they are reported through
// error hooks and recovered by reset.
func (e *Engine) Next(input any, done ...Continuation) (Outcome, error) {
	if e.root == nil {
		return Outcome{}, &ErrNotInitialized{Machine: e.name}
	}

	matched := e.findNextState(input, e.current, e.previous)
	if matched.IsNone() {
		e.fireError(&ErrNoTransition{State: e.current.name, Input: input})

		out := Outcome{
			Reset:   Some(e.Reset()),
			Current: e.current.name,
			History: e.history.Clone(),
		}

		e.dispatch(out, done)

		return out, nil
	}

	t := matched.Some()
	target := e.states.Get(t.Target).Some()

	var values Slice[any]

	tvalue := None[any]()

	if target.accept != nil {
		if v := e.runAccept(target.accept, target.name, input); v.IsSome() {
			values.Push(v.Some())
			e.fireValue(v.Some())
		}
	}

	if t.Accept != nil {
		if v := e.runAccept(t.Accept, target.name, input); v.IsSome() {
			tvalue = v
			values.Push(v.Some())
			e.fireValue(v.Some())
		}
	}

	from := e.current.name

	e.previous = Some(e.current)
	e.current = target
	e.history.Push(Record{State: target.name, Input: input})

	if e.maxHistory > 0 && e.history.Len() > e.maxHistory {
		e.history = e.history[1:]
	}

	e.log.Debug("machina: transition",
		"machine", e.name,
		"from", from,
		"to", target.name,
		"input", input,
	)

	e.fireChange(Change{
		From:    from,
		To:      target.name,
		Input:   input,
		History: e.history.Clone(),
		Value:   tvalue,
	})

	reset := None[ResetInfo]()

	if target.terminal || (target == e.root && e.resetAtRoot) {
		reset = Some(e.Reset())
	}

	out := Outcome{
		Values:  values,
		Reset:   reset,
		Current: e.current.name,
		History: e.history.Clone(),
	}

	e.dispatch(out, done)

	return out, nil
}

// findNextState scans the current state's transitions in declaration order
// and returns the first whose criteria matches, short-circuiting immediately.
// Target names are resolved lazily here; a transition naming an unregistered
// state is reported through the error hook and treated as non-matching. The
// engine does not verify that criteria are mutually exclusive; authoring a
// deterministic machine is the caller's obligation.
func (e *Engine) findNextState(input any, current *State, previous Option[*State]) Option[Transition] {
	for t := range current.transitions.Iter() {
		if !e.states.Contains(t.Target) {
			e.fireError(&ErrUnknownTarget{State: current.name, Target: t.Target})
			continue
		}

		if e.matches(t, current.name, input, previous) {
			return Some(t)
		}
	}

	return None[Transition]()
}

// matches evaluates a transition's criteria, recovering panics into error
// hooks so malformed input cannot crash a long-running machine.
func (e *Engine) matches(t Transition, state String, input any, previous Option[*State]) (ok bool) {
	defer func() {
		if r := recover(); r != nil {
			e.fireError(&ErrCallbackPanic{Hook: "criteria", State: state, Err: fmt.Errorf("panic: %v", r)})
			ok = false
		}
	}()

	return t.Criteria(input, previous)
}

// runAccept invokes an accept function with the history recorded so far,
// recovering panics into error hooks.
func (e *Engine) runAccept(fn Accept, state String, input any) (v Option[any]) {
	defer func() {
		if r := recover(); r != nil {
			e.fireError(&ErrCallbackPanic{Hook: "accept", State: state, Err: fmt.Errorf("panic: %v", r)})
			v = None[any]()
		}
	}()

	return fn(input, e.history.Clone())
}

// Reset returns the machine to its root with a fresh history. It is always
// available and idempotent, and reports the state occupied immediately before
// the reset along with the history accumulated since the previous one.
func (e *Engine) Reset() ResetInfo {
	info := ResetInfo{History: e.history.Clone()}
	if e.current != nil {
		info.Prior = e.current.name
	}

	e.previous = None[*State]()

	if e.root != nil {
		e.current = e.root
		e.history = Slice[Record]{{State: e.root.name}}
	} else {
		e.history = nil
	}

	e.log.Debug("machina: reset", "machine", e.name, "prior", info.Prior)
	e.fireReset(info)

	return info
}

// CurrentStatus returns a read-only snapshot of the current state and history.
func (e *Engine) CurrentStatus() Status {
	st := Status{History: e.history.Clone()}
	if e.current != nil {
		st.State = e.current.name
	}

	return st
}

// ValidateGraph eagerly checks that every transition targets a registered
// state. The engine never calls it implicitly: lazy resolution is the default
// so graphs may be built incrementally with forward references.
func (e *Engine) ValidateGraph() error {
	for name, s := range e.states.Iter() {
		for t := range s.transitions.Iter() {
			if !e.states.Contains(t.Target) {
				return &ErrUnknownTarget{State: name, Target: t.Target}
			}
		}
	}

	return nil
}

// dispatch hands the committed outcome to continuations after the step's own
// hook emissions. Each runs on its own goroutine, the queued-task rendition
// of a deferred tick.
func (e *Engine) dispatch(out Outcome, done []Continuation) {
	for _, fn := range done {
		if fn != nil {
			go fn(out)
		}
	}
}
