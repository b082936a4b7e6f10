package machina_test

import (
	"errors"
	"testing"

	. "github.com/enetx/g"
	. "github.com/enetx/machina"
)

func addErr(t *testing.T, s *State) error {
	t.Helper()
	return New().AddState(s)
}

func TestState_Accessors(t *testing.T) {
	s := NewState("yellow").
		TransitionWhen("green", prevIs("red")).
		TransitionWhen("red", prevIs("green"))

	assertEqual(t, s.Name(), "yellow")
	assertFalse(t, s.IsInitial())
	assertFalse(t, s.IsTerminal())
	assertEqual(t, s.Transitions().Len(), 2)
	assertEqual(t, s.Transitions()[0].Target, "green")
	assertEqual(t, s.Transitions()[1].Target, "red")
}

func TestState_TransitionsIsACopy(t *testing.T) {
	s := NewState("a").Transition("b", 1)

	view := s.Transitions()
	view[0].Target = "hijacked"

	assertEqual(t, s.Transitions()[0].Target, "b")
}

func TestState_EmptyName(t *testing.T) {
	err := addErr(t, NewState(""))
	assertError(t, err)

	var invalid *ErrInvalidState
	assertTrue(t, errors.As(err, &invalid))
}

func TestState_InitialAndTerminal(t *testing.T) {
	assertError(t, addErr(t, NewState("a").Initial().Terminal()))
}

func TestState_TerminalWithTransitions(t *testing.T) {
	assertError(t, addErr(t, NewState("a").Terminal().Transition("b", 1)))
}

func TestState_TransitionWithoutTarget(t *testing.T) {
	assertError(t, addErr(t, NewState("a").Transition("", 1)))
}

func TestState_TransitionWithoutCriteria(t *testing.T) {
	assertError(t, addErr(t, NewState("a").TransitionWhen("b", nil)))
}

func TestState_LiteralNormalization(t *testing.T) {
	s := NewState("a").Transition("b", "go")

	criteria := s.Transitions()[0].Criteria
	assertTrue(t, criteria("go", None[*State]()))
	assertFalse(t, criteria("stop", None[*State]()))
	assertFalse(t, criteria(nil, None[*State]()))
	assertFalse(t, criteria(42, None[*State]()))
}

func TestState_ValidAtRegistration(t *testing.T) {
	eng := New()

	assertNoError(t, eng.AddState(
		NewState("a").Initial().
			Transition("b", 1).
			TransitionWhen("c", always),
	))

	// Forward references are legal until exercised.
	assertNoError(t, eng.AddState(NewState("b").Terminal()))
}
