package commands

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// Batch returns the batch command.
func Batch() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "batch SRC DST",
		Short: "tokenize a directory tree",
		Long: `Batch walks SRC and writes the tokens of every file into a
<name>.tokens file at the same place below DST.`,
		Args: cobra.ExactArgs(2),
		RunE: BatchCmd,
	}
	cmd.Flags().String("ext", "", "only tokenize files with this extension, e.g. .json")
	_ = viper.BindPFlag("ext", cmd.Flags().Lookup("ext"))
	return cmd
}

// BatchCmd runs the batch command.
func BatchCmd(cmd *cobra.Command, args []string) error {
	tracer().P("src", args[0]).Debugf("beginning batch cmd")
	cmd.SilenceUsage = true

	l, err := configuredLexer()
	if err != nil {
		return err
	}
	b := &batch{
		lexer:  l,
		format: viper.GetString("format"),
		ext:    viper.GetString("ext"),
	}
	if b.ext != "" && !strings.HasPrefix(b.ext, ".") {
		b.ext = "." + b.ext
	}
	if err := b.dir(args[0], args[1]); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "tokenized %d files\n", b.count)
	return nil
}

type batch struct {
	lexer  *lexerSetup
	format string
	ext    string
	count  int
}

func (b *batch) dir(src string, dst string) (err error) {
	src = filepath.Clean(src)
	dst = filepath.Clean(dst)

	si, err := os.Stat(src)
	if err != nil {
		return err
	}
	if !si.IsDir() {
		return fmt.Errorf("source %s is not a directory", src)
	}

	_, err = os.Stat(dst)
	if err != nil && !os.IsNotExist(err) {
		return
	}
	if err != nil {
		err = os.MkdirAll(dst, si.Mode())
		if err != nil {
			return
		}
	}

	entries, err := os.ReadDir(src)
	if err != nil {
		return
	}

	for _, entry := range entries {
		srcPath := filepath.Join(src, entry.Name())
		dstPath := filepath.Join(dst, entry.Name())

		switch {
		case entry.IsDir():
			err = b.dir(srcPath, dstPath)
		case entry.Type()&os.ModeSymlink != 0:
			// skip
		case b.ext != "" && !strings.EqualFold(filepath.Ext(srcPath), b.ext):
			// skip
		default:
			err = b.file(srcPath, dstPath+".tokens")
		}
		if err != nil {
			return
		}
	}
	return
}

func (b *batch) file(src, dst string) (err error) {
	input, err := os.ReadFile(src)
	if err != nil {
		return err
	}

	var out bytes.Buffer
	if err = b.lexer.write(&out, b.format, src, string(input)); err != nil {
		return fmt.Errorf("%s: %w", src, err)
	}

	f, err := os.Create(dst)
	if err != nil {
		return err
	}
	defer func() {
		if e := f.Close(); e != nil && err == nil {
			err = e
		}
	}()

	if _, err = f.Write(out.Bytes()); err != nil {
		return
	}
	tracer().P("file", dst).Debugf("wrote tokens")
	b.count++
	return f.Sync()
}
