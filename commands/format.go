package commands

import (
	"fmt"
	"io"
	"strings"

	"github.com/alecthomas/participle/v2/lexer"
	"github.com/craigmc08/tokenary/lexdef"
	"github.com/craigmc08/tokenary/scan"
	"github.com/davecgh/go-spew/spew"
	"gopkg.in/yaml.v2"
)

// Formats accepted by the format setting.
var Formats = []string{"pretty", "yaml", "dump", "kinds", "positions"}

// dumper shows token fields rather than their String form.
var dumper = spew.ConfigState{Indent: "  ", DisablePointerAddresses: true, DisableCapacities: true, DisableMethods: true}

// write tokenizes text and prints the tokens in the given format.
func (l *lexerSetup) write(w io.Writer, format, name, text string) error {
	if format == "positions" {
		return l.writePositions(w, name, text)
	}
	toks, err := l.t.Tokenize(text)
	if err != nil {
		return err
	}
	tracer().P("lexer", l.t.Name()).Debugf("%s: %d tokens", name, len(toks))

	switch format {
	case "pretty":
		_, err = fmt.Fprintln(w, scan.PrettyPrint(toks))
	case "yaml":
		var out []byte
		out, err = yaml.Marshal(toks)
		if err == nil {
			_, err = w.Write(out)
		}
	case "dump":
		dumper.Fdump(w, toks)
	case "kinds":
		for _, tok := range toks {
			if _, err = fmt.Fprintf(w, "%-14s %q\n", tok.Kind, tok.Lexeme); err != nil {
				break
			}
		}
	default:
		err = fmt.Errorf("unknown format %q, use one of %s", format, strings.Join(Formats, ", "))
	}
	return err
}

// writePositions prints one token per line with its line and column, going
// through the participle adapter.
func (l *lexerSetup) writePositions(w io.Writer, name, text string) error {
	def := lexdef.New(l.t, l.kinds...)
	lex, err := def.LexString(name, text)
	if err != nil {
		return err
	}
	toks, err := lexer.ConsumeAll(lex)
	if err != nil {
		return err
	}
	names := lexer.SymbolsByRune(def)
	for _, tok := range toks {
		if tok.EOF() {
			break
		}
		if _, err := fmt.Fprintf(w, "%s\t%s\t%q\n", tok.Pos, names[tok.Type], tok.Value); err != nil {
			return err
		}
	}
	return nil
}
