package scan

import (
	"fmt"
	"unicode/utf8"

	"github.com/npillmayer/schuko/tracing"
)

// tracer traces to the global tracer selected for the scanner.
func tracer() tracing.Trace {
	return tracing.Select("tokenary.scan")
}

// ----------------------------------------------------------------------------
// Tokenizer ------------------------------------------------------------------
// ----------------------------------------------------------------------------

// A Catcher turns a fatal expectation failure into a token so that
// tokenizing can continue.
type Catcher func(err *ExpectationError) Token

// Catch returns a Catcher producing tokens of the given kind that carry the
// failure's message.
func Catch(kind Kind) Catcher {
	return func(err *ExpectationError) Token {
		return Token{Kind: kind, Lexeme: err.Lexeme, Offset: err.Offset, Message: err.Message}
	}
}

// An Option configures a Tokenizer.
type Option func(*Tokenizer)

// WithCatcher recovers from fatal failures with c instead of aborting.
func WithCatcher(c Catcher) Option {
	return func(t *Tokenizer) { t.catcher = c }
}

// WithName labels the Tokenizer in traces.
func WithName(name string) Option {
	return func(t *Tokenizer) { t.name = name }
}

// Tokenizer drives an ordered, fixed list of reducers over a text. A
// Tokenizer holds no per-run state and may be used from several goroutines
// at once.
type Tokenizer struct {
	name     string
	reducers []Reducer
	catcher  Catcher
}

// New returns a Tokenizer trying reducers in the given order. The list is
// copied; changing it afterwards has no effect on the Tokenizer.
func New(reducers []Reducer, opts ...Option) (*Tokenizer, error) {
	if len(reducers) == 0 {
		return nil, &StructuralError{Msg: "no reducers given"}
	}
	for i, r := range reducers {
		if r == nil {
			return nil, &StructuralError{Msg: fmt.Sprintf("reducer %d is nil", i)}
		}
	}
	t := &Tokenizer{
		name:     "tokenizer",
		reducers: append([]Reducer(nil), reducers...),
	}
	for _, opt := range opts {
		opt(t)
	}
	return t, nil
}

// MustNew is like New but panics on error. It is meant for package level
// lexer definitions.
func MustNew(reducers []Reducer, opts ...Option) *Tokenizer {
	t, err := New(reducers, opts...)
	if err != nil {
		panic(err)
	}
	return t
}

// Tokenize builds a Tokenizer and returns its Tokenize method. Structural
// errors in reducers are reported on every call of the returned function.
func Tokenize(reducers []Reducer, opts ...Option) func(string) ([]Token, error) {
	t, err := New(reducers, opts...)
	if err != nil {
		return func(string) ([]Token, error) { return nil, err }
	}
	return t.Tokenize
}

// Name returns the name given with WithName.
func (t *Tokenizer) Name() string {
	return t.name
}

// Tokenize scans text and returns its tokens.
//
// At each position the reducers are tried in order and the first match
// wins. When none matches, one character is skipped without a token. A
// fatal failure is handed to the Catcher, if there is one, and scanning
// resumes after it; otherwise the *ExpectationError is returned.
func (t *Tokenizer) Tokenize(text string) ([]Token, error) {
	if !utf8.ValidString(text) {
		return nil, &StructuralError{Msg: "input is not valid UTF-8 text"}
	}
	r := &run{t: t, state: NewState(text)}
	tracer().P("lexer", t.name).Debugf("tokenizing %d characters", r.state.Len())
	for st := scanning; st != nil; {
		st = st(r)
	}
	if r.err != nil {
		return nil, r.err
	}
	toks := r.state.Tokens()
	tracer().P("lexer", t.name).Debugf("done, %d tokens", len(toks))
	return toks, nil
}

// ----------------------------------------------------------------------------
// State Machine --------------------------------------------------------------
// ----------------------------------------------------------------------------

// run is the mutable bookkeeping of one Tokenize call.
type run struct {
	t     *Tokenizer
	state State             // current, driver visible state
	from  int               // cursor where the current match attempt began
	fail  *ExpectationError // set when entering recovering
	err   error             // set when the run ends abnormally
}

// ƒ represents the state machine that returns the next state.
type ƒ func(*run) ƒ

func scanning(r *run) ƒ {
	if r.state.AtEnd() {
		return nil
	}
	return matching
}

func matching(r *run) ƒ {
	r.from = r.state.cursor
	for i, red := range r.t.reducers {
		res := red(r.state)
		switch {
		case res.Matched():
			next := res.state
			if next.cursor <= r.from {
				tracer().P("reducer", i).Errorf("no progress at offset %d", r.from)
				r.err = &ProgressError{Reducer: i, Offset: r.from}
				return nil
			}
			r.state = next.withCursor(next.clamp(next.cursor))
			tracer().P("reducer", i).Debugf("matched %q at %d", r.state.SegmentFrom(r.from), r.from)
			return scanning
		case res.Fatal():
			r.fail = res.err
			return recovering
		}
	}
	r.state = r.state.step()
	return scanning
}

func recovering(r *run) ƒ {
	e := r.fail
	r.fail = nil
	if e == nil {
		e = expected(r.state, "reducer failed without a reason")
	}
	if r.t.catcher == nil {
		tracer().P("lexer", r.t.name).Errorf("%v", e)
		r.err = e
		return nil
	}
	tracer().P("lexer", r.t.name).Infof("recovering from %v", e)
	// Only the cursor of the snapshot is kept; tokens added by the failed
	// attempt are dropped.
	resume := r.state
	if e.State.src == r.state.src {
		resume = resume.withCursor(e.State.cursor)
	}
	resume = resume.AddToken(r.t.catcher(e))
	if resume.cursor <= r.from {
		resume = resume.withCursor(r.from + 1)
	}
	r.state = resume.withCursor(resume.clamp(resume.cursor))
	return scanning
}
