package scan

import (
	"fmt"
	"strings"
)

// ----------------------------------------------------------------------------
// Token ----------------------------------------------------------------------
// ----------------------------------------------------------------------------

// Kind classifies a token. Kinds are plain names chosen by the lexer author.
type Kind string

// A Token is a classified span of the source text.
type Token struct {
	Kind    Kind   `yaml:"kind"`              // This token's kind.
	Lexeme  string `yaml:"lexeme"`            // The exact source text of the token.
	Offset  int    `yaml:"offset"`            // Index of the first character of Lexeme.
	Message string `yaml:"message,omitempty"` // Set on tokens synthesized from a scanning error.
}

// End returns the index just past the token's last character.
func (t Token) End() int {
	return t.Offset + len([]rune(t.Lexeme))
}

func (t Token) String() string {
	return fmt.Sprintf("<Token type='%s' lexeme='%s' offset=%d>", t.Kind, t.Lexeme, t.Offset)
}

// PrettyPrint formats a list of tokens one per line.
func PrettyPrint(tokens []Token) string {
	w := new(strings.Builder)
	w.WriteString("[\n  ")
	for i, t := range tokens {
		if i > 0 {
			w.WriteString(",\n  ")
		}
		w.WriteString(t.String())
	}
	w.WriteString("\n]")
	return w.String()
}

// A Factory builds the token for a matched span. It returns false when the
// span should be consumed without producing a token.
type Factory func(lexeme string, offset int) (Token, bool)

// Make returns a Factory producing tokens of the given kind.
func Make(kind Kind) Factory {
	return func(lexeme string, offset int) (Token, bool) {
		return Token{Kind: kind, Lexeme: lexeme, Offset: offset}, true
	}
}

// Nothing is a Factory that never produces a token.
func Nothing(string, int) (Token, bool) {
	return Token{}, false
}
