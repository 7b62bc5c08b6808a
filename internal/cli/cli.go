package cli

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/pfrederiksen/charleston-events/internal/conf"
)

const (
	ExitSuccess = 0
	ExitError   = 1
)

var (
	flagDatabase string
	flagVerbose  bool
)

// NewRootCmd creates the root command
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "charleston-events",
		Short: "Aggregate Charleston event listings into a local database",
		Long: `A CLI tool to collect Charleston event listings from calendar pages
and CSV exports, link them to known venues, and store them in a local
SQLite database while filtering out duplicates.`,
		SilenceUsage: true,
	}

	cmd.PersistentFlags().StringVar(&flagDatabase, "db", "", "Path to the SQLite database (overrides config)")
	cmd.PersistentFlags().BoolVar(&flagVerbose, "verbose", false, "Enable verbose logging")

	cmd.AddCommand(newImportCmd())
	cmd.AddCommand(newScrapeCmd())
	cmd.AddCommand(newListCmd())
	cmd.AddCommand(newExportCmd())
	cmd.AddCommand(newStatsCmd())

	return cmd
}

// loadSettings resolves configuration and applies command-line overrides.
func loadSettings() (*conf.Settings, error) {
	settings, err := conf.Load()
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}
	if flagDatabase != "" {
		settings.Database.Path = flagDatabase
	}
	return settings, nil
}

// newLogger builds the application logger from settings and flags. The
// --verbose flag wins over the configured level.
func newLogger(settings *conf.Settings) *logrus.Logger {
	log := logrus.New()
	log.SetOutput(os.Stderr)

	level, err := logrus.ParseLevel(settings.Log.Level)
	if err != nil {
		level = logrus.InfoLevel
	}
	if flagVerbose {
		level = logrus.DebugLevel
	}
	log.SetLevel(level)

	return log
}

// Execute runs the CLI
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(ExitError)
	}
}
