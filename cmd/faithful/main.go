package main

import (
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"faithful/internal/version"
)

var rootCmd = &cobra.Command{
	Use:   "faithful",
	Short: "Layout-preserving token renderer",
	Long:  `faithful tokenizes source text and renders it back with the original layout intact`,
}

func main() {
	// Устанавливаем версию для автоматического флага --version
	rootCmd.Version = version.Version

	rootCmd.AddCommand(tokenizeCmd)
	rootCmd.AddCommand(renderCmd)
	rootCmd.AddCommand(versionCmd)

	// Глобальные флаги
	rootCmd.PersistentFlags().String("color", "auto", "colorize output (auto|on|off)")
	rootCmd.PersistentFlags().Int("max-diagnostics", 100, "maximum number of diagnostics to show")

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// isTerminal проверяет, является ли файл терминалом
func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

// resolveColor resolves the effective color mode: an explicit --color flag
// wins, otherwise the faithful.toml default, otherwise auto.
func resolveColor(cmd *cobra.Command, f *os.File) bool {
	mode, _ := cmd.Root().PersistentFlags().GetString("color")
	if !cmd.Root().PersistentFlags().Changed("color") {
		if cfg, ok := loadToolConfig("."); ok && cfg.Output.Color != "" {
			mode = cfg.Output.Color
		}
	}
	switch mode {
	case "on":
		return true
	case "off":
		return false
	}
	return isTerminal(f)
}
