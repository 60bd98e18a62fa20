package commands

import (
	"fmt"

	"github.com/craigmc08/tokenary/highlight"
	"github.com/spf13/cobra"
)

// Highlight returns the highlight command.
func Highlight() *cobra.Command {
	return &cobra.Command{
		Use:   "highlight [file|-]",
		Short: "print the input with tokens colored by kind",
		Args:  cobra.MaximumNArgs(1),
		RunE:  HighlightCmd,
	}
}

// HighlightCmd runs the highlight command.
func HighlightCmd(cmd *cobra.Command, args []string) error {
	tracer().Debugf("beginning highlight cmd")
	cmd.SilenceUsage = true

	l, err := configuredLexer()
	if err != nil {
		return err
	}
	_, input, err := readInput(cmd, args)
	if err != nil {
		return err
	}
	toks, err := l.t.Tokenize(input)
	if err != nil {
		return err
	}
	h := highlight.New(highlight.DefaultStyles(l.kinds...))
	_, err = fmt.Fprint(cmd.OutOrStdout(), h.Render(input, toks))
	return err
}
