package commands

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// Tokenize returns the tokenize command.
func Tokenize() *cobra.Command {
	return &cobra.Command{
		Use:   "tokenize [file|-]...",
		Short: "print the tokens of the input",
		Long: `Tokenize reads the named files, or stdin, and prints their tokens.
The lexer is chosen with --lexer or --rules and the output with --format.`,
		RunE: TokenizeCmd,
	}
}

// TokenizeCmd runs the tokenize command.
func TokenizeCmd(cmd *cobra.Command, args []string) error {
	tracer().Debugf("beginning tokenize cmd")
	cmd.SilenceUsage = true

	l, err := configuredLexer()
	if err != nil {
		return err
	}
	name, input, err := readInput(cmd, args)
	if err != nil {
		return err
	}
	return l.write(cmd.OutOrStdout(), viper.GetString("format"), name, input)
}
