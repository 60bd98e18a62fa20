package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/craigmc08/tokenary/commands"
	"github.com/craigmc08/tokenary/lexers"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/logrusadapter"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var cfgFile string

func AppMain(c *cobra.Command, s []string) error {
	return c.Help()
}

func newApp() *cobra.Command {
	viper.SetEnvPrefix("tokenary")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()
	viper.SetDefault("lexer", "csv")
	viper.SetDefault("format", "pretty")
	viper.SetDefault("trace", "Error")

	app := &cobra.Command{
		Use:           "tokenary",
		Short:         "a lexer toolkit",
		Long:          "Tokenary splits text into tokens with lexers built from small composable rules.",
		Version:       "0.1.0",
		RunE:          AppMain,
		SilenceErrors: true,
	}

	flags := app.PersistentFlags()
	flags.StringVar(&cfgFile, "config", "", "config file (yaml, toml or json)")
	flags.String("lexer", "csv", "built in lexer: "+strings.Join(lexers.Names(), ", "))
	flags.String("rules", "", "YAML rules file defining the lexer; overrides --lexer")
	flags.StringP("format", "f", "pretty", "output format: "+strings.Join(commands.Formats, ", "))
	flags.String("trace", "Error", "trace level: Debug, Info or Error")
	for _, key := range []string{"lexer", "rules", "format", "trace"} {
		_ = viper.BindPFlag(key, flags.Lookup(key))
	}

	// command structure
	app.AddCommand(commands.Tokenize(), commands.Batch(), commands.Repl(), commands.Highlight())

	cobra.OnInitialize(tokenaryInit)
	return app
}

// tokenaryInit reads the config file, if any, and sets up tracing once the
// flags are parsed.
func tokenaryInit() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
		if err := viper.ReadInConfig(); err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
	}
	trace := logrusadapter.New()
	trace.SetOutput(os.Stderr)
	trace.SetTraceLevel(tracing.TraceLevelFromString(viper.GetString("trace")))
	tracing.SetTraceSelector(tracing.SelectorForAdapter(func() tracing.Trace { return trace }))
	tracing.Select("tokenary.cli").Infof("hello, tokenary is starting")
}

func main() {
	app := newApp()
	err := app.Execute()
	tracing.Select("tokenary.cli").Infof("tokenary is done, goodbye")
	if err != nil {
		fmt.Fprintln(os.Stderr, "tokenary:", err)
		os.Exit(1)
	}
}
