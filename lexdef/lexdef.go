// Package lexdef adapts a scan.Tokenizer to participle's lexer interfaces,
// so tokenary lexers can drive participle grammars.
//
// Token kinds become participle symbols. Positions are reported the
// participle way: byte offsets with 1-based lines and columns.
package lexdef

import (
	"errors"
	"fmt"
	"io"
	"unicode/utf8"

	"github.com/alecthomas/participle/v2/lexer"
	"github.com/craigmc08/tokenary/scan"
	"github.com/npillmayer/schuko/tracing"
)

func tracer() tracing.Trace {
	return tracing.Select("tokenary.lexdef")
}

// Definition implements lexer.Definition, lexer.StringDefinition and
// lexer.BytesDefinition for a Tokenizer.
type Definition struct {
	t       *scan.Tokenizer
	symbols map[string]lexer.TokenType
	types   map[scan.Kind]lexer.TokenType
}

var (
	_ lexer.Definition       = (*Definition)(nil)
	_ lexer.StringDefinition = (*Definition)(nil)
	_ lexer.BytesDefinition  = (*Definition)(nil)
)

// New returns a Definition for t. kinds lists every token kind t may
// produce; they are numbered after EOF in the order given. Producing a kind
// not listed is an error at lex time.
func New(t *scan.Tokenizer, kinds ...scan.Kind) *Definition {
	d := &Definition{
		t:       t,
		symbols: map[string]lexer.TokenType{"EOF": lexer.EOF},
		types:   map[scan.Kind]lexer.TokenType{},
	}
	next := lexer.EOF - 1
	for _, k := range kinds {
		if _, ok := d.types[k]; ok {
			continue
		}
		d.types[k] = next
		d.symbols[string(k)] = next
		next--
	}
	return d
}

// Symbols maps symbol names to token types.
func (d *Definition) Symbols() map[string]lexer.TokenType {
	out := make(map[string]lexer.TokenType, len(d.symbols))
	for k, v := range d.symbols {
		out[k] = v
	}
	return out
}

// Lex reads all of r and tokenizes it.
func (d *Definition) Lex(filename string, r io.Reader) (lexer.Lexer, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	return d.LexString(filename, string(data))
}

// LexBytes tokenizes input.
func (d *Definition) LexBytes(filename string, input []byte) (lexer.Lexer, error) {
	return d.LexString(filename, string(input))
}

// LexString tokenizes input. Scanning failures are reported as
// *lexer.Error carrying the position of the failure.
func (d *Definition) LexString(filename string, input string) (lexer.Lexer, error) {
	toks, err := d.t.Tokenize(input)
	pos := newPositioner(filename, input)
	if err != nil {
		var xerr *scan.ExpectationError
		if errors.As(err, &xerr) {
			return nil, &lexer.Error{Msg: xerr.Message, Pos: pos.at(xerr.Offset)}
		}
		return nil, err
	}
	out := make([]lexer.Token, 0, len(toks)+1)
	for _, tok := range toks {
		typ, ok := d.types[tok.Kind]
		if !ok {
			return nil, &lexer.Error{
				Msg: fmt.Sprintf("token kind %q is not a symbol of %s", tok.Kind, d.t.Name()),
				Pos: pos.at(tok.Offset),
			}
		}
		out = append(out, lexer.Token{Type: typ, Value: tok.Lexeme, Pos: pos.at(tok.Offset)})
	}
	out = append(out, lexer.EOFToken(pos.at(utf8.RuneCountInString(input))))
	tracer().P("lexer", d.t.Name()).Debugf("%s: %d tokens", filename, len(out)-1)
	return &tokenLexer{tokens: out}, nil
}

// tokenLexer hands out pre-scanned tokens. After the EOF token it keeps
// returning EOF.
type tokenLexer struct {
	tokens []lexer.Token
	next   int
}

func (l *tokenLexer) Next() (lexer.Token, error) {
	tok := l.tokens[l.next]
	if l.next < len(l.tokens)-1 {
		l.next++
	}
	return tok, nil
}

// ----------------------------------------------------------------------------

// positioner converts character offsets into participle positions. It
// moves forward through the input and restarts when asked for an earlier
// offset.
type positioner struct {
	input string
	start lexer.Position
	pos   lexer.Position
	index int // character offset of pos
}

func newPositioner(filename, input string) *positioner {
	start := lexer.Position{Filename: filename, Line: 1, Column: 1}
	return &positioner{input: input, start: start, pos: start}
}

func (p *positioner) at(offset int) lexer.Position {
	if offset < p.index {
		p.pos, p.index = p.start, 0
	}
	b := p.pos.Offset
	for p.index < offset && b < len(p.input) {
		_, w := utf8.DecodeRuneInString(p.input[b:])
		b += w
		p.index++
	}
	p.pos.Advance(p.input[p.pos.Offset:b])
	return p.pos
}
