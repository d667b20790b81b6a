// Package main provides the glyphtrain binary: dataset assembly, frequency
// reporting, and relation-model verification for the handwriting symbol
// classifier pipeline.
package main

import (
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/glyphtrain/symbols"
)

const (
	version = "0.1.0"
	appName = "glyphtrain"
)

// rootFlags are shared by every subcommand.
type rootFlags struct {
	definitions string
	dbPath      string
	logLevel    string
}

func main() {
	if err := rootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	flags := &rootFlags{}

	cmd := &cobra.Command{
		Use:   appName,
		Short: "Symbol dataset pipeline",
		Long: `Glyphtrain turns a symbol relation model and a store of recorded
drawings into balanced training and validation datasets.

The relation model (similarity groups, symmetry edges, negations) is read
from a definitions directory; samples come from an embedded BadgerDB store.`,
		SilenceUsage: true,
	}

	cmd.PersistentFlags().StringVarP(&flags.definitions, "definitions", "d", "definitions",
		"Directory holding similarity, symmetry, and negation files")
	cmd.PersistentFlags().StringVar(&flags.dbPath, "db", "samples.db",
		"Sample database directory")
	cmd.PersistentFlags().StringVar(&flags.logLevel, "log-level", "info",
		"Log level (debug, info, warn, error)")

	cmd.AddCommand(buildCmd(flags))
	cmd.AddCommand(freqCmd(flags))
	cmd.AddCommand(verifyCmd(flags))
	cmd.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("%s version %s\n", appName, version)
		},
	})
	return cmd
}

// newLogger builds a console logger at the requested level.
func newLogger(level string) zerolog.Logger {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		lvl = zerolog.InfoLevel
	}
	return zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.TimeOnly}).
		Level(lvl).With().Timestamp().Logger()
}

// loadModel reads the relation model, routing non-fatal load warnings to
// the logger.
func loadModel(flags *rootFlags, log zerolog.Logger) (*symbols.Model, error) {
	return symbols.LoadDir(flags.definitions,
		symbols.WithWarningHandler(func(err error) {
			log.Warn().Err(err).Msg("relation model warning")
		}),
	)
}
