package scan

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTokenString(t *testing.T) {
	tok := tkn("VALUE", "Up", 2)
	assert.Equal(t, "<Token type='VALUE' lexeme='Up' offset=2>", tok.String())
	assert.Equal(t, 4, tok.End())
	assert.Equal(t, 2, tkn("WORD", "ёж", 0).End())
}

func TestPrettyPrint(t *testing.T) {
	toks, err := csvTokenizer(t).Tokenize("1,Up\n2,Left\n3,Right")
	if err != nil {
		t.Fatal(err)
	}
	expected := "[\n  <Token type='VALUE' lexeme='1' offset=0>,\n  <Token type='COMMA' lexeme=',' offset=1>,\n" +
		"  <Token type='VALUE' lexeme='Up' offset=2>,\n  <Token type='NEWLINE' lexeme='\n' offset=4>,\n" +
		"  <Token type='VALUE' lexeme='2' offset=5>,\n  <Token type='COMMA' lexeme=',' offset=6>,\n" +
		"  <Token type='VALUE' lexeme='Left' offset=7>,\n  <Token type='NEWLINE' lexeme='\n' offset=11>,\n" +
		"  <Token type='VALUE' lexeme='3' offset=12>,\n  <Token type='COMMA' lexeme=',' offset=13>,\n" +
		"  <Token type='VALUE' lexeme='Right' offset=14>\n]"
	assert.Equal(t, expected, PrettyPrint(toks))
}

func TestFactories(t *testing.T) {
	tok, ok := Make("X")("abc", 7)
	assert.True(t, ok)
	assert.Equal(t, tkn("X", "abc", 7), tok)

	_, ok = Nothing("abc", 7)
	assert.False(t, ok)

	caught := Catch("ERROR")(&ExpectationError{Message: "expected '\"'", Lexeme: "\n", Offset: 3})
	assert.Equal(t, Token{Kind: "ERROR", Lexeme: "\n", Offset: 3, Message: "expected '\"'"}, caught)
}
