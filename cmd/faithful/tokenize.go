package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"faithful/internal/diagfmt"
	"faithful/internal/driver"
)

var tokenizeCmd = &cobra.Command{
	Use:   "tokenize [flags] file",
	Short: "Tokenize a source file",
	Long:  `Tokenize breaks a source file into its token tree, keeping the recorded spans`,
	Args:  cobra.ExactArgs(1),
	RunE:  runTokenize,
}

func init() {
	tokenizeCmd.Flags().String("format", "", "output format (pretty|json)")
	tokenizeCmd.Flags().String("save", "", "write the token stream to a "+driver.StreamFileExt+" file instead of printing")
}

func runTokenize(cmd *cobra.Command, args []string) error {
	cmd.SilenceUsage = true

	format, err := cmd.Flags().GetString("format")
	if err != nil {
		return err
	}
	if format == "" {
		format = defaultFormat("pretty")
	}

	savePath, err := cmd.Flags().GetString("save")
	if err != nil {
		return err
	}

	maxDiagnostics, err := cmd.Root().PersistentFlags().GetInt("max-diagnostics")
	if err != nil {
		return err
	}

	result, err := driver.Tokenize(args[0], maxDiagnostics)
	if err != nil {
		return fmt.Errorf("tokenization failed: %w", err)
	}

	// Диагностика в stderr, если есть
	if result.Bag.Len() > 0 {
		result.Bag.Sort()
		diagfmt.Pretty(os.Stderr, result.Bag, result.FileSet, diagfmt.PrettyOpts{
			Color:   resolveColor(cmd, os.Stderr),
			Context: 1,
		})
	}

	if savePath != "" {
		if err := driver.SaveStream(savePath, result); err != nil {
			return fmt.Errorf("save stream: %w", err)
		}
		return nil
	}

	switch format {
	case "pretty":
		return diagfmt.TokensPretty(os.Stdout, result.Stream)
	case "json":
		return diagfmt.TokensJSON(os.Stdout, result.Stream)
	default:
		return fmt.Errorf("unknown format: %s", format)
	}
}
