package scan

// ----------------------------------------------------------------------------
// State ----------------------------------------------------------------------
// ----------------------------------------------------------------------------

// EOF is returned by Peek when the cursor is at or past the end of the source.
const EOF rune = -1

// source is shared by every State derived from the same text and is never
// written after NewState returns.
type source struct {
	text  string
	runes []rune
}

// tokenNode is one cell of a State's token list. Cells are only ever
// prepended to, so a list is safe to share between States.
type tokenNode struct {
	tok  Token
	prev *tokenNode
}

// State is an immutable snapshot of a scan: the source text, the cursor and
// the tokens produced so far. Every operation returns a new State and leaves
// the receiver untouched, so States may be read from any goroutine.
//
// Positions are character (rune) indices into the source.
type State struct {
	src    *source
	cursor int        // current position in the source
	last   *tokenNode // most recently added token
	count  int        // number of tokens in the list ending at last
}

// NewState returns a State for text with the cursor at 0 and no tokens.
func NewState(text string) State {
	return State{src: &source{text: text, runes: []rune(text)}}
}

// Cursor returns the current position.
func (s State) Cursor() int {
	return s.cursor
}

// Len returns the number of characters in the source.
func (s State) Len() int {
	if s.src == nil {
		return 0
	}
	return len(s.src.runes)
}

// Source returns the full source text.
func (s State) Source() string {
	if s.src == nil {
		return ""
	}
	return s.src.text
}

// Advance moves the cursor forward one character. The cursor may step one
// past the end of the source; stepping further is a *RangeError.
func (s State) Advance() (State, error) {
	if s.cursor > s.Len() {
		return s, &RangeError{Cursor: s.cursor, Len: s.Len()}
	}
	return s.step(), nil
}

// step is Advance for callers that have already checked AtEnd.
func (s State) step() State {
	s.cursor++
	return s
}

// withCursor moves the cursor to c without touching the tokens.
func (s State) withCursor(c int) State {
	s.cursor = c
	return s
}

// AddToken appends t to the token list. The cursor is unchanged.
func (s State) AddToken(t Token) State {
	s.last = &tokenNode{tok: t, prev: s.last}
	s.count++
	return s
}

// AtEnd reports whether every character has been consumed.
func (s State) AtEnd() bool {
	return s.cursor >= s.Len()
}

// Peek returns the character under the cursor, or EOF.
func (s State) Peek() rune {
	if s.AtEnd() || s.cursor < 0 {
		return EOF
	}
	return s.src.runes[s.cursor]
}

// Segment returns the source characters in [start, end). Both bounds are
// clamped to the source.
func (s State) Segment(start, end int) string {
	start, end = s.clamp(start), s.clamp(end)
	if start >= end {
		return ""
	}
	return string(s.src.runes[start:end])
}

// SegmentFrom returns the source characters from start up to the cursor.
func (s State) SegmentFrom(start int) string {
	return s.Segment(start, s.cursor)
}

// Remaining returns the unconsumed part of the source.
func (s State) Remaining() string {
	return s.Segment(s.cursor, s.Len())
}

func (s State) clamp(i int) int {
	switch {
	case i < 0:
		return 0
	case i > s.Len():
		return s.Len()
	}
	return i
}

// TokenCount returns the number of tokens produced so far.
func (s State) TokenCount() int {
	return s.count
}

// Tokens returns the tokens produced so far, oldest first.
func (s State) Tokens() []Token {
	return s.tokensSince(0)
}

// tokensSince returns the tokens added after the first n, oldest first.
func (s State) tokensSince(n int) []Token {
	if s.count <= n {
		return []Token{}
	}
	out := make([]Token, s.count-n)
	node := s.last
	for i := len(out) - 1; i >= 0; i-- {
		out[i] = node.tok
		node = node.prev
	}
	return out
}
