package scan

import (
	"github.com/craigmc08/tokenary/predicate"
)

// ----------------------------------------------------------------------------
// Reducers that produce tokens -----------------------------------------------
// ----------------------------------------------------------------------------

// Single makes a token from the character under the cursor and moves past
// it. It does not match at the end of input.
func Single(f Factory) Reducer {
	return func(s State) Result {
		if s.AtEnd() {
			return Miss()
		}
		start := s.cursor
		next := s.step()
		if tok, ok := f(s.Segment(start, next.cursor), start); ok {
			next = next.AddToken(tok)
		}
		return Hit(next)
	}
}

// Consume runs inner for the input it consumes and turns that span into a
// single token. Tokens added by inner are dropped. Consume does not match
// when inner does not match or consumes nothing; fatal failures pass
// through.
func Consume(inner Reducer, f Factory) Reducer {
	return func(s State) Result {
		res := inner(s)
		if !res.Matched() {
			return res
		}
		start := s.cursor
		end := s.clamp(res.state.cursor)
		if end <= start {
			return Miss()
		}
		next := s.withCursor(end)
		if tok, ok := f(s.Segment(start, end), start); ok {
			next = next.AddToken(tok)
		}
		return Hit(next)
	}
}

// ----------------------------------------------------------------------------
// Combinators ----------------------------------------------------------------
// ----------------------------------------------------------------------------

// Sequence threads the State through rs from left to right. A step that does
// not match is skipped: the State it was given is passed on to the next
// step unchanged, keeping everything the earlier steps consumed. A fatal
// step ends the sequence. The sequence as a whole does not match when none
// of its steps moved the cursor.
func Sequence(rs ...Reducer) Reducer {
	rs = append([]Reducer(nil), rs...)
	return func(s State) Result {
		cur := s
		for _, r := range rs {
			res := r(cur)
			switch {
			case res.Fatal():
				return res
			case res.Matched():
				cur = res.state
			}
		}
		if cur.cursor <= s.cursor {
			return Miss()
		}
		return Hit(cur)
	}
}

// IfThen runs r only when p holds for the character under the cursor.
func IfThen(p predicate.Predicate, r Reducer) Reducer {
	return func(s State) Result {
		if !p(s.Peek()) {
			return Miss()
		}
		return r(s)
	}
}

// IfChar runs the reducer keyed by the character under the cursor, if any.
func IfChar(m map[rune]Reducer) Reducer {
	table := make(map[rune]Reducer, len(m))
	for c, r := range m {
		table[c] = r
	}
	return func(s State) Result {
		r, ok := table[s.Peek()]
		if !ok {
			return Miss()
		}
		return r(s)
	}
}
