// Package predicate provides boolean tests over a single lookahead character
// and the usual logical combinators for building them up.
package predicate

import (
	"regexp"
	"strings"
	"unicode"
)

// Predicate reports whether a character satisfies some condition. The
// scanner passes -1 when there is no character left.
type Predicate func(r rune) bool

// Is matches exactly the rune r.
func Is(r rune) Predicate {
	return func(c rune) bool {
		return c == r
	}
}

// IsOneOf matches any of the given runes.
func IsOneOf(rs ...rune) Predicate {
	set := string(rs)
	return func(c rune) bool {
		return c >= 0 && strings.ContainsRune(set, c)
	}
}

// Matches tests the character, as a one character string, against re. The
// end of input never matches.
func Matches(re *regexp.Regexp) Predicate {
	return func(c rune) bool {
		if c < 0 {
			return false
		}
		return re.MatchString(string(c))
	}
}

// ----------------------------------------------------------------------------
// Combinators ----------------------------------------------------------------
// ----------------------------------------------------------------------------

// Not negates p.
func Not(p Predicate) Predicate {
	return func(c rune) bool {
		return !p(c)
	}
}

// Or is true when any of ps is true. An empty Or is false.
func Or(ps ...Predicate) Predicate {
	return func(c rune) bool {
		for _, p := range ps {
			if p(c) {
				return true
			}
		}
		return false
	}
}

// Nor is Not(Or(ps...)).
func Nor(ps ...Predicate) Predicate {
	return Not(Or(ps...))
}

// And is true when all of ps are true. An empty And is true.
func And(ps ...Predicate) Predicate {
	return func(c rune) bool {
		for _, p := range ps {
			if !p(c) {
				return false
			}
		}
		return true
	}
}

// Nand is Not(And(ps...)).
func Nand(ps ...Predicate) Predicate {
	return Not(And(ps...))
}

// Xor is true when exactly one of p and q is true.
func Xor(p, q Predicate) Predicate {
	return And(Nand(p, q), Or(p, q))
}

// ----------------------------------------------------------------------------
// Character classes ----------------------------------------------------------
// ----------------------------------------------------------------------------

// ASCIILetter matches a-z and A-Z.
func ASCIILetter(c rune) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

// Digit matches 0-9.
func Digit(c rune) bool {
	return c >= '0' && c <= '9'
}

// Alnum matches ASCII letters and digits.
func Alnum(c rune) bool {
	return ASCIILetter(c) || Digit(c)
}

// Word matches ASCII letters, digits and the underscore.
func Word(c rune) bool {
	return Alnum(c) || c == '_'
}

// Letter matches any Unicode letter.
func Letter(c rune) bool {
	return c >= 0 && unicode.IsLetter(c)
}

// Space matches Unicode white space.
func Space(c rune) bool {
	return c >= 0 && unicode.IsSpace(c)
}

// Any matches every character but never the end of input.
func Any(c rune) bool {
	return c >= 0
}
