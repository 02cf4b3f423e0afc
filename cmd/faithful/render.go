package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"faithful/internal/diagfmt"
	"faithful/internal/driver"
	"faithful/internal/render"
)

var renderCmd = &cobra.Command{
	Use:   "render [flags] file...",
	Short: "Render tokenized source back into text",
	Long: `Render tokenizes the given files (or loads saved ` + driver.StreamFileExt + ` streams)
and writes them back out with the original layout intact`,
	Args: cobra.MinimumNArgs(1),
	RunE: runRender,
}

func init() {
	renderCmd.Flags().Bool("check", false, "verify the render round-trips instead of printing it")
	renderCmd.Flags().String("output", "", "write output to a file (single input only)")
}

func runRender(cmd *cobra.Command, args []string) error {
	cmd.SilenceUsage = true

	check, err := cmd.Flags().GetBool("check")
	if err != nil {
		return err
	}
	outputPath, err := cmd.Flags().GetString("output")
	if err != nil {
		return err
	}
	if outputPath != "" && len(args) != 1 {
		return fmt.Errorf("render: --output requires exactly one input file")
	}
	if outputPath != "" && check {
		return fmt.Errorf("render: --output cannot be used with --check")
	}

	maxDiagnostics, err := cmd.Root().PersistentFlags().GetInt("max-diagnostics")
	if err != nil {
		return err
	}

	if check {
		return runRenderCheck(cmd, args, maxDiagnostics)
	}

	out := io.Writer(os.Stdout)
	if outputPath != "" {
		f, err := os.Create(outputPath)
		if err != nil {
			return err
		}
		defer f.Close()
		out = f
	}

	// сохранённые стримы и исходники обрабатываем по-разному
	sources := make([]string, 0, len(args))
	for _, path := range args {
		if filepath.Ext(path) != driver.StreamFileExt {
			sources = append(sources, path)
		}
	}

	rendered := make(map[string]string, len(args))
	if len(sources) > 0 {
		results, err := driver.RenderAll(cmd.Context(), sources, maxDiagnostics, 0)
		if err != nil {
			return err
		}
		for i, res := range results {
			if res.Bag.HasErrors() {
				return fmt.Errorf("render: %s has lexical errors", sources[i])
			}
			rendered[sources[i]] = res.Text
		}
	}

	for _, path := range args {
		text, ok := rendered[path]
		if !ok {
			stream, _, err := driver.LoadStream(path)
			if err != nil {
				return err
			}
			text, err = render.Text(stream)
			if err != nil {
				return err
			}
		}
		if _, err := io.WriteString(out, text); err != nil {
			return err
		}
	}
	return nil
}

func runRenderCheck(cmd *cobra.Command, args []string, maxDiagnostics int) error {
	failed := 0
	for _, path := range args {
		result, err := driver.Tokenize(path, maxDiagnostics)
		if err != nil {
			return err
		}
		if result.Bag.Len() > 0 {
			result.Bag.Sort()
			diagfmt.Pretty(os.Stderr, result.Bag, result.FileSet, diagfmt.PrettyOpts{
				Color:   resolveColor(cmd, os.Stderr),
				Context: 1,
			})
		}
		ok, msg := driver.CheckRoundTrip(result)
		fmt.Fprintf(os.Stdout, "%s: %s\n", path, msg)
		if !ok {
			failed++
		}
	}
	if failed > 0 {
		return fmt.Errorf("render: %d file(s) failed the round-trip check", failed)
	}
	return nil
}
