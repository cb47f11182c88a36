package main

import (
	"log/slog"

	"github.com/joshuapare/nftkit/internal/logging"
	"github.com/spf13/cobra"
)

var (
	verbose bool
	quiet   bool
)

var rootCmd = &cobra.Command{
	Use:   "nftjsonctl",
	Short: "Parse and inspect nftables JSON rule documents",
	Long: `nftjsonctl parses the JSON representation of nftables rulesets,
validates it against the same grammar the reference implementation's
JSON frontend accepts, and reports the resulting commands or the first
error encountered.`,
	Version: "0.1.0",
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		level := slog.LevelWarn
		if verbose {
			level = slog.LevelDebug
		}
		logging.Init(logging.Options{Enabled: verbose && !quiet, Level: level})
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging")
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "Suppress all output except errors")
}
