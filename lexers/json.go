package lexers

import (
	"regexp"

	"github.com/craigmc08/tokenary/predicate"
	"github.com/craigmc08/tokenary/scan"
)

// Token kinds produced by the JSON lexer.
const (
	CurlyLeft   scan.Kind = "CURLY_LEFT"
	CurlyRight  scan.Kind = "CURLY_RIGHT"
	SquareLeft  scan.Kind = "SQUARE_LEFT"
	SquareRight scan.Kind = "SQUARE_RIGHT"
	Comma       scan.Kind = "COMMA"
	Colon       scan.Kind = "COLON"
	String      scan.Kind = "STRING"
	Number      scan.Kind = "NUMBER"
	Boolean     scan.Kind = "BOOLEAN"
	Null        scan.Kind = "NULL"
)

// JSONKinds lists the kinds of JSON tokens.
var JSONKinds = []scan.Kind{
	CurlyLeft, CurlyRight, SquareLeft, SquareRight, Comma, Colon,
	String, Number, Boolean, Null,
}

var (
	jsonString = regexp.MustCompile(`^(\\"|[^"\n])*$`)
	jsonInt    = regexp.MustCompile(`^(0|[1-9][0-9]*)$`)
	jsonDigits = regexp.MustCompile(`^[0-9]*$`)
	jsonExpSym = regexp.MustCompile(`[eE]`)
	jsonSign   = regexp.MustCompile(`[+-]`)
)

// must turns a no match of r into a fatal failure.
func must(r scan.Reducer, msg string) scan.Reducer {
	return func(s scan.State) scan.Result {
		res := r(s)
		if !res.NoMatch() {
			return res
		}
		lexeme := ""
		if !s.AtEnd() {
			lexeme = string(s.Peek())
		}
		return scan.Fail(&scan.ExpectationError{
			Message: msg,
			Lexeme:  lexeme,
			Offset:  s.Cursor(),
			State:   s,
		})
	}
}

// number follows the JSON number grammar: an optional minus, an integer
// part without leading zeros, an optional fraction and an optional
// exponent. A fraction or exponent without digits is a fatal failure.
var number = scan.IfThen(predicate.Or(predicate.Is('-'), predicate.Digit), scan.Sequence(
	scan.IfChar(map[rune]scan.Reducer{'-': scan.Char('-')}),
	must(scan.UntilRegexFails(jsonInt), "expected digit in number"),
	scan.IfChar(map[rune]scan.Reducer{'.': scan.Sequence(
		scan.Char('.'),
		must(scan.UntilRegexFails(jsonDigits), "expected digit after '.'"),
	)}),
	scan.IfThen(predicate.IsOneOf('e', 'E'), scan.Sequence(
		scan.Regex(jsonExpSym),
		scan.Regex(jsonSign),
		must(scan.UntilRegexFails(jsonDigits), "expected digit after exponent"),
	)),
))

var jsonTokenizer = scan.MustNew([]scan.Reducer{
	scan.IfChar(map[rune]scan.Reducer{
		'{': scan.Single(scan.Make(CurlyLeft)),
		'}': scan.Single(scan.Make(CurlyRight)),
		'[': scan.Single(scan.Make(SquareLeft)),
		']': scan.Single(scan.Make(SquareRight)),
		',': scan.Single(scan.Make(Comma)),
		':': scan.Single(scan.Make(Colon)),
		'"': scan.Consume(scan.Sequence(
			scan.Char('"'),
			scan.UntilRegexFails(jsonString),
			scan.Char('"'),
		), scan.Make(String)),
		'f': scan.Consume(scan.Str("false"), scan.Make(Boolean)),
		't': scan.Consume(scan.Str("true"), scan.Make(Boolean)),
		'n': scan.Consume(scan.Str("null"), scan.Make(Null)),
	}),
	scan.Consume(number, scan.Make(Number)),
}, scan.WithName("json"))

// JSON returns a lexer for JSON text. White space and any character that
// starts no token are skipped.
func JSON() *scan.Tokenizer {
	return jsonTokenizer
}
