package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"veriscore/internal/logging"
)

// version is set at build time via -ldflags.
var version = "dev"

var rootFlags struct {
	logLevel string
}

var rootCmd = &cobra.Command{
	Use:   "veriscore",
	Short: "Forecast verification scoring for binary probabilistic predictions",
	Long: "Veriscore computes the Brier score and its skill, reliability, and\n" +
		"resolution decompositions over probability forecasts paired with\n" +
		"observed binary outcomes.",
	CompletionOptions: cobra.CompletionOptions{
		HiddenDefaultCmd: true,
	},
	SilenceUsage: true,
	PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
		return logging.Setup(rootFlags.logLevel, nil)
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&rootFlags.logLevel, "log-level", "info", "Log level (debug, info, warn, error)")
	rootCmd.AddCommand(scoreCmd)
	rootCmd.AddCommand(datasetsCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.Version = version
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
