package commands

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/peterh/liner"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const replHelp = `Type a line to see its tokens.
  :lexer NAME    switch to a built in lexer
  :format NAME   switch the output format
  :quit          leave`

// Repl returns the repl command.
func Repl() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "repl",
		Short: "tokenize lines interactively",
		Args:  cobra.NoArgs,
		RunE:  ReplCmd,
	}
	cmd.Flags().String("history", "", "history file (default ~/.tokenary_history)")
	_ = viper.BindPFlag("history", cmd.Flags().Lookup("history"))
	return cmd
}

// ReplCmd runs the repl command.
func ReplCmd(cmd *cobra.Command, args []string) error {
	tracer().Debugf("beginning repl cmd")
	cmd.SilenceUsage = true

	l, err := configuredLexer()
	if err != nil {
		return err
	}

	ln := liner.NewLiner()
	defer ln.Close()
	ln.SetCtrlCAborts(true)

	if histPath, ok := historyPath(); ok {
		if f, err := os.Open(histPath); err == nil {
			_, _ = ln.ReadHistory(f)
			_ = f.Close()
		}
		defer func() {
			if f, err := os.Create(histPath); err == nil {
				_, _ = ln.WriteHistory(f)
				_ = f.Close()
			}
		}()
	}

	fmt.Fprintln(cmd.OutOrStdout(), replHelp)
	r := &repl{
		lexer:  l,
		format: viper.GetString("format"),
		out:    cmd.OutOrStdout(),
		errOut: cmd.ErrOrStderr(),
	}
	return r.loop(ln)
}

// historyPath returns the repl history file. Without a configured file or a
// home directory there is no history.
func historyPath() (string, bool) {
	if p := viper.GetString("history"); p != "" {
		return p, true
	}
	home, err := os.UserHomeDir()
	if err != nil {
		tracer().Infof("no repl history: %v", err)
		return "", false
	}
	return filepath.Join(home, ".tokenary_history"), true
}

// prompter is the part of liner.State the repl loop needs.
type prompter interface {
	Prompt(prompt string) (string, error)
	AppendHistory(item string)
}

type repl struct {
	lexer  *lexerSetup
	format string
	out    io.Writer
	errOut io.Writer
}

func (r *repl) loop(p prompter) error {
	for {
		line, err := p.Prompt(r.lexer.t.Name() + "> ")
		if errors.Is(err, io.EOF) || errors.Is(err, liner.ErrPromptAborted) {
			fmt.Fprintln(r.out)
			return nil
		}
		if err != nil {
			return err
		}
		if strings.TrimSpace(line) == "" {
			continue
		}
		p.AppendHistory(line)
		if strings.HasPrefix(strings.TrimSpace(line), ":") {
			if r.command(strings.Fields(line)) {
				return nil
			}
			continue
		}
		if err := r.lexer.write(r.out, r.format, "<repl>", line); err != nil {
			fmt.Fprintln(r.errOut, err)
		}
	}
}

// command handles a colon command and reports whether to quit.
func (r *repl) command(fields []string) bool {
	switch {
	case fields[0] == ":quit" || fields[0] == ":q":
		return true
	case fields[0] == ":lexer" && len(fields) == 2:
		l, err := namedLexer(fields[1])
		if err != nil {
			fmt.Fprintln(r.errOut, err)
			break
		}
		r.lexer = l
	case fields[0] == ":format" && len(fields) == 2:
		r.format = fields[1]
	default:
		fmt.Fprintln(r.errOut, replHelp)
	}
	return false
}
