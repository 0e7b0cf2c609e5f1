// Package main implements the kaki-lex CLI. This program drives the
// kaki lexer over a file or stdin and prints its token stream.
package main

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/juju/loggo"
	"github.com/spf13/cobra"

	"github.com/kaki-lang/kaki"
)

var logger = loggo.GetLogger("kaki.cmd")

func main() {
	var editionTag string
	var showStats bool

	addFlags := func(cmd *cobra.Command) error {
		cmd.PersistentFlags().String("log-level", "warning", "logging level (trace|debug|info|warning|error)")
		return nil
	}

	cmdRoot := &cobra.Command{
		Use:           "kaki-lex",
		Short:         "kaki lexical analyzer",
		Long:          `Tokenize Kaki source files and print their token stream.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			lvl, err := cmd.Root().PersistentFlags().GetString("log-level")
			if err != nil {
				return err
			}
			level, ok := loggo.ParseLevel(strings.ToUpper(lvl))
			if !ok {
				return fmt.Errorf("log-level: unknown value %q", lvl)
			}
			loggo.GetLogger("kaki").SetLogLevel(level)
			return nil
		},
	}
	if err := addFlags(cmdRoot); err != nil {
		logger.Errorf("kaki-lex: %s", err)
		os.Exit(1)
	}

	cmdTokenize := &cobra.Command{
		Use:   "tokenize [file]",
		Short: "print the token stream for a file, or - for stdin",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			edition, err := kaki.ParseEdition(editionTag)
			if err != nil {
				return err
			}

			path := "-"
			if len(args) == 1 {
				path = args[0]
			}
			source, err := readSource(path)
			if err != nil {
				return err
			}

			return runTokenize(cmd.OutOrStdout(), source, edition, showStats)
		},
	}
	cmdTokenize.Flags().StringVar(&editionTag, "edition", "", "grammar edition to lex with (default: latest)")
	cmdTokenize.Flags().BoolVar(&showStats, "stats", false, "print a token/error/byte summary instead of the stream")
	cmdRoot.AddCommand(cmdTokenize)
	cmdRoot.AddCommand(cmdVersion())

	if err := cmdRoot.Execute(); err != nil {
		logger.Errorf("kaki-lex: %s", err)
		os.Exit(1)
	}
}

func readSource(path string) (string, error) {
	if path == "-" {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", fmt.Errorf("read stdin: %w", err)
		}
		return string(data), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read %s: %w", path, err)
	}
	return string(data), nil
}

func runTokenize(out io.Writer, source string, edition kaki.Edition, stats bool) error {
	lx := kaki.NewEdition(source, edition)
	start := time.Now()

	var tokens, errs int
	for {
		tok, lexErr, ok := lx.Next()
		if !ok {
			break
		}
		switch {
		case lexErr != nil:
			errs++
			if !stats {
				fmt.Fprintf(out, "error %s [%d,%d) %s\n", lexErr.Kind, lexErr.Span.Start, lexErr.Span.End, lexErr.Error())
			}
		default:
			tokens++
			if !stats {
				fmt.Fprintf(out, "%s [%d,%d) %q\n", tok.Kind, tok.Span.Start, tok.Span.End, tok.Text)
			}
		}
	}

	if stats {
		elapsed := time.Since(start)
		fmt.Fprintf(out, "run %s: %s tokens, %s errors, %s read in %s\n",
			lx.ID(), humanize.Comma(int64(tokens)), humanize.Comma(int64(errs)),
			humanize.Bytes(uint64(len(source))), elapsed)
	}
	return nil
}

func cmdVersion() *cobra.Command {
	showBuildInfo := false
	cmd := &cobra.Command{
		Use:   "version",
		Short: "display the library's version number",
		RunE: func(cmd *cobra.Command, args []string) error {
			if showBuildInfo {
				fmt.Fprintln(cmd.OutOrStdout(), kaki.LibraryVersion.String())
				return nil
			}
			fmt.Fprintln(cmd.OutOrStdout(), kaki.LibraryVersion.Core())
			return nil
		},
	}
	cmd.Flags().BoolVar(&showBuildInfo, "build-info", showBuildInfo, "show build information")
	return cmd
}
