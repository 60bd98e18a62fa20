// Package scan turns text into tokens using an ordered list of small
// matching rules called reducers.
//
// A reducer looks at an immutable State (source, cursor, tokens so far) and
// either declines, returns a new State, or fails with an
// *ExpectationError. Reducers are built from the primitives and combinators
// in this package and handed, in priority order, to a Tokenizer.
package scan

import (
	"regexp"
)

// A Reducer tries to match input at the State's cursor. It returns Miss when
// it does not apply, Hit with a new State when it consumed input, or Fail
// when it required input that is not there.
//
// A matched State never has its cursor behind the input State, and any
// tokens it adds lie between the two cursors. Reducers never modify the
// State they are given.
type Reducer func(State) Result

// ----------------------------------------------------------------------------
// Reducers that only move the cursor -----------------------------------------
// ----------------------------------------------------------------------------

// Char consumes exactly the character c. Any other character, or the end of
// input, is a fatal expectation failure.
func Char(c rune) Reducer {
	return func(s State) Result {
		if r := s.Peek(); r != c {
			return Fail(expected(s, "expected %q but got %s", c, describe(r)))
		}
		return Hit(s.step())
	}
}

// Str consumes exactly the string str, failing fatally at the first
// character that differs.
func Str(str string) Reducer {
	want := []rune(str)
	return func(s State) Result {
		cur := s
		for _, c := range want {
			if r := cur.Peek(); r != c {
				return Fail(expected(cur, "expected %q of %q but got %s", c, str, describe(r)))
			}
			cur = cur.step()
		}
		return Hit(cur)
	}
}

// Regex consumes one character if it matches re.
func Regex(re *regexp.Regexp) Reducer {
	return func(s State) Result {
		if s.AtEnd() || !re.MatchString(s.Segment(s.cursor, s.cursor+1)) {
			return Miss()
		}
		return Hit(s.step())
	}
}

// UntilRegexFails consumes the longest run for which every prefix of the
// run, tested as a whole, matches re. The pattern should be anchored at both
// ends (^...$). It does not match when no character is consumed.
func UntilRegexFails(re *regexp.Regexp) Reducer {
	return func(s State) Result {
		start := s.cursor
		cur := s
		for !cur.AtEnd() && re.MatchString(cur.Segment(start, cur.cursor+1)) {
			cur = cur.step()
		}
		if cur.cursor == start {
			return Miss()
		}
		return Hit(cur)
	}
}

var whitespaceRun = regexp.MustCompile(`^[\s\v\p{Zs}\x{FEFF}\x{2028}\x{2029}]*$`)

// Whitespace consumes a run of white space characters.
var Whitespace = UntilRegexFails(whitespaceRun)

// Everything consumes the rest of the input. At the end of input it matches
// without consuming anything.
func Everything(s State) Result {
	return Hit(s.withCursor(s.Len()))
}

// EverythingUntil consumes characters up to, but not including, the first of
// stops or the end of input. It does not match when no character is consumed.
func EverythingUntil(stops ...rune) Reducer {
	stop := make(map[rune]bool, len(stops))
	for _, r := range stops {
		stop[r] = true
	}
	return func(s State) Result {
		cur := s
		for !cur.AtEnd() && !stop[cur.Peek()] {
			cur = cur.step()
		}
		if cur.cursor == s.cursor {
			return Miss()
		}
		return Hit(cur)
	}
}
