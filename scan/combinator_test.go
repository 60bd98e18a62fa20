package scan

import (
	"regexp"
	"testing"

	"github.com/craigmc08/tokenary/predicate"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// tkn builds a token; used to keep expectations short.
func tkn(kind Kind, lexeme string, offset int) Token {
	return Token{Kind: kind, Lexeme: lexeme, Offset: offset}
}

func never(State) Result { return Miss() }

func TestSingle(t *testing.T) {
	r := Single(Make("char"))
	runReducerCases(t, []reducerCase{
		{"first", r, "oof", 0, 1, []Token{tkn("char", "o", 0)}},
		{"last", r, "oof", 2, 3, []Token{tkn("char", "f", 2)}},
		{"at end", r, "oof", 3, -1, nil},
		{"nothing", Single(Nothing), "oof", 0, 1, nil},
	})
}

func TestConsume(t *testing.T) {
	word := Consume(UntilRegexFails(regexp.MustCompile(`^[^\s]*$`)), Make("word"))
	runReducerCases(t, []reducerCase{
		{"first word", word, "word1 word2", 0, 5, []Token{tkn("word", "word1", 0)}},
		{"second word", word, "word1 word2", 6, 11, []Token{tkn("word", "word2", 6)}},
		{"zero width", word, "word1 word2", 5, -1, nil},
		{"inner does not match", Consume(never, Make("word")), "word1", 0, -1, nil},
		{"discarded", Consume(Whitespace, Nothing), "  x", 0, 2, nil},
		{"inner tokens are dropped", Consume(Single(Make("inner")), Make("outer")), "ab", 0, 1,
			[]Token{tkn("outer", "a", 0)}},
	})
}

func TestConsumeFatal(t *testing.T) {
	res := Consume(Char('x'), Make("x"))(NewState("y"))
	require.True(t, res.Fatal())
	assert.Equal(t, "y", res.Err().Lexeme)
}

func TestSequence(t *testing.T) {
	const text = "a:b b:a"
	runReducerCases(t, []reducerCase{
		{"all steps", Sequence(Char('a'), Char(':'), Char('b')), text, 0, 3, nil},
		// A step that does not match is skipped; the steps before it are kept.
		{"skipped step", Sequence(UntilRegexFails(regexp.MustCompile(`^[a:]*$`)), never, Char('b')), text, 0, 3, nil},
		{"no step moves", Sequence(never, never), text, 0, -1, nil},
		{"tokens from steps", Sequence(Single(Make("x")), Single(Make("y"))), text, 0, 2,
			[]Token{tkn("x", "a", 0), tkn("y", ":", 1)}},
	})
}

// The state after a sequence reflects every applied step before the one that
// did not match, not the state before the sequence.
func TestSequenceKeepsEarlierSteps(t *testing.T) {
	r := Sequence(Single(Make("a")), IfChar(map[rune]Reducer{'z': Single(Make("z"))}), Single(Make("b")))
	res := r(NewState("ab"))
	require.True(t, res.Matched())
	assert.Equal(t, 2, res.State().Cursor())
	assert.Equal(t, []Token{tkn("a", "a", 0), tkn("b", "b", 1)}, res.State().Tokens())
}

func TestSequenceFatal(t *testing.T) {
	r := Sequence(Char('"'), UntilRegexFails(regexp.MustCompile(`^[^"]*$`)), Char('"'))
	res := r(NewState(`"abc`))
	require.True(t, res.Fatal())
	assert.Equal(t, 4, res.Err().Offset)
	assert.Equal(t, 4, res.Err().State.Cursor())
}

func TestIfThen(t *testing.T) {
	cmd := IfThen(predicate.Is('!'), Consume(EverythingUntil(' '), Make("cmd")))
	runReducerCases(t, []reducerCase{
		{"predicate true", cmd, "!add list", 0, 4, []Token{tkn("cmd", "!add", 0)}},
		{"predicate false", cmd, "add list", 0, -1, nil},
	})
}

func TestIfChar(t *testing.T) {
	m := map[rune]Reducer{
		',':  Single(Make("comma")),
		'\n': Single(Make("line")),
	}
	r := IfChar(m)
	m['o'] = Single(Make("late"))

	const text = ",o\n"
	runReducerCases(t, []reducerCase{
		{"comma", r, text, 0, 1, []Token{tkn("comma", ",", 0)}},
		{"line", r, text, 2, 3, []Token{tkn("line", "\n", 2)}},
		{"no key", r, text, 1, -1, nil},
		{"at end", r, text, 3, -1, nil},
	})
}
