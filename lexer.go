package machina

import (
	. "github.com/enetx/g"
	"github.com/enetx/g/cmp"
)

// Token is the value produced by a lexer machine when an input sequence
// completes one of its lexemes.
type Token struct {
	Lexeme String
}

// lexRoot labels the trie root; the empty prefix needs a state name.
const lexRoot String = "<start>"

// Lexer is a convenience layer that auto-generates a state graph from a flat
// list of terminal lexemes and drives it rune by rune. Each distinct prefix
// of a lexeme becomes a state; completing a lexeme produces a Token. Lexemes
// that are prefixes of longer ones produce their token and keep scanning.
//
// Unrecognized input is discarded through the engine's dead-end recovery:
// the machine resets to the root and scanning continues. The lexer does not
// attempt maximal-munch backtracking; it recognizes the lexeme set greedily.
type Lexer struct {
	engine *Engine
}

// NewLexer builds a lexer machine from the given lexemes. Empty lexemes are
// ignored.
func NewLexer(lexemes ...String) (*Lexer, error) {
	// children maps each prefix to its extensions: rune -> longer prefix.
	children := NewMap[String, Map[rune, String]]()
	words := NewSet[String]()

	for _, lex := range lexemes {
		if lex.Empty() {
			continue
		}

		words.Insert(lex)

		p := String("")
		for _, r := range string(lex) {
			next := p + String(r)

			children.Entry(p).
				AndModify(func(m *Map[rune, String]) { m.Set(r, next) }).
				OrInsert(Map[rune, String]{r: next})

			p = next
		}
	}

	eng := New(Config{Name: "lexer"})

	root := NewState(lexRoot).Initial()
	if kids := children.Get(""); kids.IsSome() {
		lexEdges(root, kids.Some())
	}

	states := Slice[*State]{root}

	prefixes := NewSet[String]()

	for p := range children.Keys().Iter() {
		if !p.Empty() {
			prefixes.Insert(p)
		}
	}

	for w := range words.Iter() {
		prefixes.Insert(w)
	}

	ordered := prefixes.ToSlice()
	ordered.SortBy(cmp.Cmp)

	for p := range ordered.Iter() {
		s := NewState(p)

		if kids := children.Get(p); kids.IsSome() {
			lexEdges(s, kids.Some())
		} else {
			s.Terminal()
		}

		if words.Contains(p) {
			lex := p
			s.Accept(func(any, Slice[Record]) Option[any] {
				return Some[any](Token{Lexeme: lex})
			})
		}

		states.Push(s)
	}

	if err := eng.AddStates(states...); err != nil {
		return nil, err
	}

	return &Lexer{engine: eng}, nil
}

// lexEdges adds one literal-rune transition per extension, in rune order.
func lexEdges(s *State, kids Map[rune, String]) {
	runes := kids.Keys()
	runes.SortBy(cmp.Cmp)

	for r := range runes.Iter() {
		s.Transition(kids.Get(r).Some(), r)
	}
}

// Engine returns the underlying machine, e.g. for hook registration or DOT
// export.
func (l *Lexer) Engine() *Engine {
	return l.engine
}

// Feed advances the lexer by one rune and returns the token it completed, if
// any. A rune that dead-ends mid-lexeme is retried once from the root, so it
// may begin a new lexeme.
func (l *Lexer) Feed(r rune) Option[Token] {
	out, err := l.engine.Next(r)
	if err != nil {
		return None[Token]()
	}

	if tok := tokenIn(out.Values); tok.IsSome() {
		return tok
	}

	if out.Reset.IsSome() && out.Values.Empty() && out.Reset.Some().Prior != lexRoot {
		if out, err = l.engine.Next(r); err != nil {
			return None[Token]()
		}

		return tokenIn(out.Values)
	}

	return None[Token]()
}

// Tokenize resets the lexer and scans the input rune by rune, collecting
// every produced token in order.
func (l *Lexer) Tokenize(input String) Slice[Token] {
	l.engine.Reset()

	var tokens Slice[Token]

	for _, r := range string(input) {
		if tok := l.Feed(r); tok.IsSome() {
			tokens.Push(tok.Some())
		}
	}

	return tokens
}

func tokenIn(values Slice[any]) Option[Token] {
	for v := range values.Iter() {
		if tok, ok := v.(Token); ok {
			return Some(tok)
		}
	}

	return None[Token]()
}
