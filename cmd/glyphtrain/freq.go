package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/glyphtrain/closure"
	"github.com/katalvlaran/glyphtrain/report"
	"github.com/katalvlaran/glyphtrain/store"
)

func freqCmd(flags *rootFlags) *cobra.Command {
	var (
		realOut    string
		derivedOut string
	)

	cmd := &cobra.Command{
		Use:   "freq",
		Short: "Write sample frequency tables",
		Long: `Freq writes two CSV tables: stored drawings per symbol (count
descending) and derivable records per class (symbol ascending).`,
		RunE: func(cmd *cobra.Command, args []string) error {
			log := newLogger(flags.logLevel)

			model, err := loadModel(flags, log)
			if err != nil {
				return err
			}
			arena, err := closure.BuildArena(model)
			if err != nil {
				return err
			}
			db, err := store.Open(store.DefaultConfig(flags.dbPath))
			if err != nil {
				return err
			}
			defer db.Close()

			realFreqs, err := report.Real(model, db)
			if err != nil {
				return err
			}
			if err := writeCSVFile(realOut, realFreqs); err != nil {
				return err
			}

			derived, err := report.Derived(model, arena, db)
			if err != nil {
				return err
			}
			if err := writeCSVFile(derivedOut, derived); err != nil {
				return err
			}

			s := report.Summarize(realFreqs)
			log.Info().
				Int("symbols", s.Symbols).Int("samples", s.Samples).
				Int("min", s.Min).Int("max", s.Max).
				Float64("mean", s.Mean).Float64("median", s.Median).
				Str("real_out", realOut).Str("derived_out", derivedOut).
				Msg("frequency tables written")
			return nil
		},
	}

	cmd.Flags().StringVar(&realOut, "real-out", "freq_real.csv", "Real frequency table output file")
	cmd.Flags().StringVar(&derivedOut, "derived-out", "freq_derived.csv", "Derived frequency table output file")
	return cmd
}

func writeCSVFile(path string, freqs []report.Frequency) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()
	if err := report.WriteCSV(f, freqs); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return f.Close()
}
