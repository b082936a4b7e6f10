package machina_test

import (
	"context"
	"testing"

	. "github.com/enetx/g"
	. "github.com/enetx/machina"
)

func TestStream_DrainsInputs(t *testing.T) {
	eng := New(Config{Name: "stream"})

	assertNoError(t, eng.AddStates(
		NewState("a").Initial().TransitionWhen("b", always),
		NewState("b").TransitionWhen("a", always),
	))

	inputs := make(chan any, 3)
	inputs <- 1
	inputs <- 2
	inputs <- 3
	close(inputs)

	var seen Slice[String]

	for out := range eng.Stream(context.Background(), inputs) {
		seen.Push(out.Current)
	}

	assertTrue(t, seen.Eq(SliceOf[String]("b", "a", "b")))
	assertEqual(t, eng.CurrentStatus().State, "b")
}

func TestStream_ForwardsValues(t *testing.T) {
	lex, err := NewLexer("hi")
	assertNoError(t, err)

	inputs := make(chan any, 2)
	inputs <- 'h'
	inputs <- 'i'
	close(inputs)

	var tokens Slice[Token]

	for out := range lex.Engine().Stream(context.Background(), inputs) {
		for v := range out.Values.Iter() {
			if tok, ok := v.(Token); ok {
				tokens.Push(tok)
			}
		}
	}

	assertEqual(t, tokens.Len(), 1)
	assertEqual(t, tokens[0].Lexeme, "hi")
}

func TestStream_StopsOnCancel(t *testing.T) {
	eng := New()

	assertNoError(t, eng.AddStates(
		NewState("a").Initial().TransitionWhen("b", always),
		NewState("b").TransitionWhen("a", always),
	))

	ctx, cancel := context.WithCancel(context.Background())
	inputs := make(chan any)

	out := eng.Stream(ctx, inputs)

	inputs <- "tick"
	<-out

	cancel()

	if _, open := <-out; open {
		t.Fatalf("expected outcome channel to close after cancel")
	}
}

func TestStream_UninitializedClosesImmediately(t *testing.T) {
	eng := New()

	inputs := make(chan any, 1)
	inputs <- "x"

	out := eng.Stream(context.Background(), inputs)

	if _, open := <-out; open {
		t.Fatalf("expected outcome channel to close for an uninitialized machine")
	}
}
