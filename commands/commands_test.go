package commands

import (
	"bytes"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/craigmc08/tokenary/scan"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v2"
)

// configure resets viper to the given settings for one test.
func configure(t *testing.T, settings map[string]string) {
	viper.Reset()
	viper.SetDefault("lexer", "csv")
	viper.SetDefault("format", "pretty")
	for k, v := range settings {
		viper.Set(k, v)
	}
	t.Cleanup(viper.Reset)
}

func execute(t *testing.T, cmd *cobra.Command, stdin string, args ...string) (string, error) {
	t.Helper()
	out := new(bytes.Buffer)
	cmd.SetOut(out)
	cmd.SetErr(out)
	cmd.SetIn(strings.NewReader(stdin))
	if args == nil {
		args = []string{}
	}
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestTokenizeStdin(t *testing.T) {
	configure(t, map[string]string{"format": "kinds"})
	out, err := execute(t, Tokenize(), "1,Up\n")
	require.NoError(t, err)
	assert.Equal(t, "VALUE          \"1\"\n"+
		"COMMA          \",\"\n"+
		"VALUE          \"Up\"\n"+
		"NEWLINE        \"\\n\"\n", out)
}

func TestTokenizePretty(t *testing.T) {
	configure(t, nil)
	out, err := execute(t, Tokenize(), "a,b", "-")
	require.NoError(t, err)
	assert.Equal(t, "[\n  <Token type='VALUE' lexeme='a' offset=0>,\n"+
		"  <Token type='COMMA' lexeme=',' offset=1>,\n"+
		"  <Token type='VALUE' lexeme='b' offset=2>\n]\n", out)
}

func TestTokenizeFilesYAML(t *testing.T) {
	configure(t, map[string]string{"lexer": "json", "format": "yaml"})
	dir := t.TempDir()
	a := filepath.Join(dir, "a.json")
	b := filepath.Join(dir, "b.json")
	require.NoError(t, os.WriteFile(a, []byte(`[1,`), 0o644))
	require.NoError(t, os.WriteFile(b, []byte(`null]`), 0o644))

	out, err := execute(t, Tokenize(), "", a, b)
	require.NoError(t, err)
	var toks []scan.Token
	require.NoError(t, yaml.Unmarshal([]byte(out), &toks))
	assert.Equal(t, []scan.Token{
		{Kind: "SQUARE_LEFT", Lexeme: "[", Offset: 0},
		{Kind: "NUMBER", Lexeme: "1", Offset: 1},
		{Kind: "COMMA", Lexeme: ",", Offset: 2},
		{Kind: "NULL", Lexeme: "null", Offset: 3},
		{Kind: "SQUARE_RIGHT", Lexeme: "]", Offset: 7},
	}, toks)
}

func TestTokenizeDump(t *testing.T) {
	configure(t, map[string]string{"format": "dump"})
	out, err := execute(t, Tokenize(), "x")
	require.NoError(t, err)
	assert.Contains(t, out, `Kind: (scan.Kind) (len=5) "VALUE"`)
	assert.Contains(t, out, `Lexeme: (string) (len=1) "x"`)
	assert.Contains(t, out, `Offset: (int) 0`)
	assert.NotContains(t, out, "<Token")
}

func TestTokenizePositions(t *testing.T) {
	configure(t, map[string]string{"format": "positions"})
	out, err := execute(t, Tokenize(), "a\nb")
	require.NoError(t, err)
	assert.Equal(t, "<stdin>:1:1\tVALUE\t\"a\"\n<stdin>:1:2\tNEWLINE\t\"\\n\"\n<stdin>:2:1\tVALUE\t\"b\"\n", out)
}

func TestTokenizeRules(t *testing.T) {
	path := filepath.Join(t.TempDir(), "words.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
name: words
rules:
  - whitespace: true
  - keywords: {and: AND}
    fallback: WORD
`), 0o644))
	configure(t, map[string]string{"rules": path, "format": "kinds"})
	out, err := execute(t, Tokenize(), "cats and dogs")
	require.NoError(t, err)
	assert.Equal(t, "WORD           \"cats\"\nAND            \"and\"\nWORD           \"dogs\"\n", out)
}

func TestTokenizeErrors(t *testing.T) {
	configure(t, map[string]string{"lexer": "xml"})
	_, err := execute(t, Tokenize(), "x")
	assert.ErrorContains(t, err, `unknown lexer "xml"`)

	configure(t, map[string]string{"format": "html"})
	_, err = execute(t, Tokenize(), "x")
	assert.ErrorContains(t, err, `unknown format "html"`)

	configure(t, map[string]string{"lexer": "json"})
	_, err = execute(t, Tokenize(), "1.")
	var xerr *scan.ExpectationError
	assert.ErrorAs(t, err, &xerr)

	configure(t, nil)
	_, err = execute(t, Tokenize(), "", filepath.Join(t.TempDir(), "missing"))
	assert.Error(t, err)
}

func TestBatch(t *testing.T) {
	configure(t, map[string]string{"lexer": "json", "format": "kinds"})
	src := t.TempDir()
	dst := filepath.Join(t.TempDir(), "out")
	require.NoError(t, os.MkdirAll(filepath.Join(src, "sub"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(src, "a.json"), []byte(`true`), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(src, "sub", "b.json"), []byte(`{}`), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(src, "notes.txt"), []byte(`x`), 0o644))

	cmd := Batch()
	out, err := execute(t, cmd, "", "--ext", "json", src, dst)
	require.NoError(t, err)
	assert.Equal(t, "tokenized 2 files\n", out)

	got, err := os.ReadFile(filepath.Join(dst, "a.json.tokens"))
	require.NoError(t, err)
	assert.Equal(t, "BOOLEAN        \"true\"\n", string(got))

	got, err = os.ReadFile(filepath.Join(dst, "sub", "b.json.tokens"))
	require.NoError(t, err)
	assert.Equal(t, "CURLY_LEFT     \"{\"\nCURLY_RIGHT    \"}\"\n", string(got))

	_, err = os.Stat(filepath.Join(dst, "notes.txt.tokens"))
	assert.True(t, os.IsNotExist(err))
}

func TestBatchErrors(t *testing.T) {
	configure(t, nil)
	file := filepath.Join(t.TempDir(), "f")
	require.NoError(t, os.WriteFile(file, nil, 0o644))
	_, err := execute(t, Batch(), "", file, t.TempDir())
	assert.ErrorContains(t, err, "not a directory")

	_, err = execute(t, Batch(), "", "only-one")
	assert.Error(t, err)
}

func TestHighlight(t *testing.T) {
	configure(t, map[string]string{"lexer": "json"})
	out, err := execute(t, Highlight(), `{"a": 1}`)
	require.NoError(t, err)
	assert.Contains(t, out, `"a"`)
	assert.Contains(t, out, "1")
}

func TestHistoryPath(t *testing.T) {
	configure(t, map[string]string{"history": "/tmp/h"})
	p, ok := historyPath()
	assert.True(t, ok)
	assert.Equal(t, "/tmp/h", p)

	configure(t, nil)
	home := t.TempDir()
	t.Setenv("HOME", home)
	p, ok = historyPath()
	assert.True(t, ok)
	assert.Equal(t, filepath.Join(home, ".tokenary_history"), p)

	t.Setenv("HOME", "")
	_, ok = historyPath()
	assert.False(t, ok)
}

type fakePrompter struct {
	lines   []string
	history []string
}

func (f *fakePrompter) Prompt(string) (string, error) {
	if len(f.lines) == 0 {
		return "", io.EOF
	}
	line := f.lines[0]
	f.lines = f.lines[1:]
	return line, nil
}

func (f *fakePrompter) AppendHistory(item string) {
	f.history = append(f.history, item)
}

func TestReplLoop(t *testing.T) {
	l, err := namedLexer("csv")
	require.NoError(t, err)
	out, errOut := new(bytes.Buffer), new(bytes.Buffer)
	r := &repl{lexer: l, format: "kinds", out: out, errOut: errOut}
	p := &fakePrompter{lines: []string{
		"a,b",
		"",
		":lexer json",
		"[1.]",
		":lexer yaml",
		":format pretty",
		"null",
		":quit",
		"never read",
	}}
	require.NoError(t, r.loop(p))

	assert.Equal(t, "VALUE          \"a\"\nCOMMA          \",\"\nVALUE          \"b\"\n"+
		"[\n  <Token type='NULL' lexeme='null' offset=0>\n]\n", out.String())
	assert.Contains(t, errOut.String(), "expected digit")
	assert.Contains(t, errOut.String(), `unknown lexer "yaml"`)
	assert.Equal(t, []string{"a,b", ":lexer json", "[1.]", ":lexer yaml", ":format pretty", "null", ":quit"}, p.history)
	assert.Equal(t, []string{"never read"}, p.lines)
}

func TestReplEOF(t *testing.T) {
	l, err := namedLexer("csv")
	require.NoError(t, err)
	out := new(bytes.Buffer)
	r := &repl{lexer: l, format: "kinds", out: out, errOut: io.Discard}
	require.NoError(t, r.loop(&fakePrompter{}))
	assert.Equal(t, "\n", out.String())

	boom := errors.New("boom")
	assert.Equal(t, boom, r.loop(failingPrompter{boom}))
}

type failingPrompter struct{ err error }

func (f failingPrompter) Prompt(string) (string, error) { return "", f.err }
func (f failingPrompter) AppendHistory(string)          {}
