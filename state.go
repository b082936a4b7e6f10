package machina

import (
	. "github.com/enetx/g"
)

// State is an immutable node in the automaton graph: a unique name, optional
// initial/terminal flags, an ordered list of outgoing transitions, and an
// optional accept function marking the state as value-producing.
//
// States are configured with the chained builder methods below and validated
// when registered with Engine.AddState. Once registered they are never
// mutated by traversal.
type State struct {
	name        String
	initial     bool
	terminal    bool
	transitions Slice[Transition]
	accept      Accept
}

// NewState creates a state with the given name.
func NewState(name String) *State {
	return &State{name: name}
}

// Initial marks the state as the graph's root. A graph has exactly one.
func (s *State) Initial() *State {
	s.initial = true
	return s
}

// Terminal marks the state as terminal. Reaching a terminal state forces a
// reset. Terminal states cannot have outgoing transitions.
func (s *State) Terminal() *State {
	s.terminal = true
	return s
}

// Accept sets the state's accept function, fired whenever a transition into
// this state is resolved.
func (s *State) Accept(fn Accept) *State {
	s.accept = fn
	return s
}

// Transition adds an outgoing edge guarded by a literal criteria: the edge
// matches when the input is strictly equal to the literal (same dynamic type
// and value). An optional accept fires as a transition-level side effect,
// independent of the target state's own accept.
//
// Declaration order is the match-priority order: Next takes the first edge
// whose criteria matches, so criteria across one state's edges should be
// mutually exclusive, and the statistically most probable edges should be
// declared first.
func (s *State) Transition(to String, literal any, accept ...Accept) *State {
	t := Transition{
		Target:    to,
		Criteria:  func(input any, _ Option[*State]) bool { return input == literal },
		literal:   literal,
		isLiteral: true,
	}

	if len(accept) > 0 {
		t.Accept = accept[0]
	}

	s.transitions.Push(t)

	return s
}

// TransitionWhen adds an outgoing edge guarded by a predicate. The predicate
// receives the input and the previously occupied state.
func (s *State) TransitionWhen(to String, criteria Criteria, accept ...Accept) *State {
	t := Transition{Target: to, Criteria: criteria}

	if len(accept) > 0 {
		t.Accept = accept[0]
	}

	s.transitions.Push(t)

	return s
}

// Name returns the state's name.
func (s *State) Name() String { return s.name }

// IsInitial reports whether the state is the graph's root.
func (s *State) IsInitial() bool { return s.initial }

// IsTerminal reports whether the state is terminal.
func (s *State) IsTerminal() bool { return s.terminal }

// Transitions returns a copy of the ordered outgoing transitions.
func (s *State) Transitions() Slice[Transition] { return s.transitions.Clone() }

// validate checks the state's shape. It is called by Engine.AddState.
func (s *State) validate() error {
	if s.name.Empty() {
		return &ErrInvalidState{Name: s.name, Reason: "name is required"}
	}

	if s.initial && s.terminal {
		return &ErrInvalidState{Name: s.name, Reason: "state cannot be both initial and terminal"}
	}

	if s.terminal && s.transitions.NotEmpty() {
		return &ErrInvalidState{Name: s.name, Reason: "terminal state cannot have outgoing transitions"}
	}

	for t := range s.transitions.Iter() {
		if t.Target.Empty() {
			return &ErrInvalidState{Name: s.name, Reason: "transition requires a target state name"}
		}

		if t.Criteria == nil {
			return &ErrInvalidState{Name: s.name, Reason: "transition requires criteria"}
		}
	}

	return nil
}
