// Package lexers holds ready made tokenizers and a registry to find them by
// name.
package lexers

import (
	"sort"

	"github.com/craigmc08/tokenary/scan"
)

// Token kinds produced by the CSV lexer.
const (
	CSVComma   scan.Kind = "COMMA"
	CSVNewline scan.Kind = "NEWLINE"
	CSVValue   scan.Kind = "VALUE"
)

// CSVKinds lists the kinds of CSV tokens.
var CSVKinds = []scan.Kind{CSVValue, CSVComma, CSVNewline}

var csvTokenizer = scan.MustNew([]scan.Reducer{
	scan.IfChar(map[rune]scan.Reducer{
		',':  scan.Single(scan.Make(CSVComma)),
		'\n': scan.Single(scan.Make(CSVNewline)),
	}),
	scan.Consume(scan.EverythingUntil(',', '\n'), scan.Make(CSVValue)),
}, scan.WithName("csv"))

// CSV returns a lexer splitting text into values, commas and line breaks.
// Quoting is not supported.
func CSV() *scan.Tokenizer {
	return csvTokenizer
}

// Lexer is a registered tokenizer together with the kinds it produces.
type Lexer struct {
	Tokenizer *scan.Tokenizer
	Kinds     []scan.Kind
}

var registry = map[string]Lexer{
	"csv":  {Tokenizer: csvTokenizer, Kinds: CSVKinds},
	"json": {Tokenizer: jsonTokenizer, Kinds: JSONKinds},
}

// Lookup finds a lexer by name.
func Lookup(name string) (Lexer, bool) {
	l, ok := registry[name]
	return l, ok
}

// Names returns the names of all registered lexers, sorted.
func Names() []string {
	names := make([]string, 0, len(registry))
	for n := range registry {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}
