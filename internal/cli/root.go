// Package cli wires the connector tasks into the viadot command-line tool.
package cli

import (
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

var verbose bool

var rootCmd = &cobra.Command{
	Use:   "viadot",
	Short: "Fetch data from SaaS platforms into tabular files",
	Long: `viadot downloads data from the supported SaaS platforms (Mindful,
SharePoint) and materializes it as CSV or parquet files, optionally
uploading the result to an object-store lake.`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	rootCmd.AddCommand(mindfulCmd)
	rootCmd.AddCommand(sharepointCmd)
	rootCmd.AddCommand(lakeCmd)
}

// newLogger builds the per-invocation console logger.
func newLogger() zerolog.Logger {
	level := zerolog.InfoLevel
	if verbose {
		level = zerolog.DebugLevel
	}
	return zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
		Level(level).
		With().Timestamp().Logger()
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
