// Package commands implements the tokenary command line.
//
// Commands read their settings from viper: "lexer" or "rules" choose the
// tokenizer, "format" chooses how tokens are printed.
package commands

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/craigmc08/tokenary/lexers"
	"github.com/craigmc08/tokenary/rules"
	"github.com/craigmc08/tokenary/scan"
	"github.com/npillmayer/schuko/tracing"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func tracer() tracing.Trace {
	return tracing.Select("tokenary.cli")
}

// readInput concatenates the named files, or reads stdin when there are no
// arguments or the only one is "-". It also returns a name for the input.
func readInput(cmd *cobra.Command, args []string) (string, string, error) {
	if len(args) == 0 || (len(args) == 1 && args[0] == "-") {
		tracer().P("args", args).Debugf("reading stdin")
		in, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return "", "", err
		}
		return "<stdin>", string(in), nil
	}
	tracer().P("files", strings.Join(args, ",")).Debugf("reading files")
	var input []byte
	for _, f := range args {
		in, err := os.ReadFile(f)
		if err != nil {
			return "", "", err
		}
		input = append(input, in...)
	}
	return args[len(args)-1], string(input), nil
}

// lexerSetup is the tokenizer chosen by configuration along with the kinds
// it can produce.
type lexerSetup struct {
	t     *scan.Tokenizer
	kinds []scan.Kind
}

// configuredLexer loads the rules file named by "rules", or else the built
// in lexer named by "lexer".
func configuredLexer() (*lexerSetup, error) {
	if path := viper.GetString("rules"); path != "" {
		def, err := rules.Load(path)
		if err != nil {
			return nil, err
		}
		t, err := def.Compile()
		if err != nil {
			return nil, err
		}
		tracer().P("rules", path).Infof("using lexer %q", def.Name)
		return &lexerSetup{t: t, kinds: def.Kinds()}, nil
	}
	return namedLexer(viper.GetString("lexer"))
}

func namedLexer(name string) (*lexerSetup, error) {
	l, ok := lexers.Lookup(name)
	if !ok {
		return nil, fmt.Errorf("unknown lexer %q, known lexers are %s", name, strings.Join(lexers.Names(), ", "))
	}
	tracer().P("lexer", name).Infof("using built in lexer")
	return &lexerSetup{t: l.Tokenizer, kinds: l.Kinds}, nil
}
