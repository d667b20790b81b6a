package main

import (
	"bufio"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/glyphtrain/closure"
	"github.com/katalvlaran/glyphtrain/dataset"
	"github.com/katalvlaran/glyphtrain/store"
	"github.com/katalvlaran/glyphtrain/symbols"
)

// recordJSON is the JSON-lines wire shape of one dataset record. Chains use
// their token encoding; the negation block is present only on negated rows.
type recordJSON struct {
	Label     string        `json:"label"`
	Source    string        `json:"source"`
	SampleKey uint64        `json:"sample_key"`
	Chain     string        `json:"chain,omitempty"`
	Negation  *negationJSON `json:"negation,omitempty"`
	Augmented bool          `json:"augmented,omitempty"`
	AugSeed   uint32        `json:"aug_seed,omitempty"`
}

type negationJSON struct {
	SlashKey uint64  `json:"slash_key"`
	Scale    float64 `json:"scale"`
	Angle    float64 `json:"angle"`
	XOffset  float64 `json:"x_offset"`
	YOffset  float64 `json:"y_offset"`
}

func buildCmd(flags *rootFlags) *cobra.Command {
	var (
		trainOut    string
		valOut      string
		seed        uint64
		validation  float64
		sampleCap   int
		maxHops     int
		debugSingle bool
		skipStarved bool
	)

	cmd := &cobra.Command{
		Use:   "build",
		Short: "Assemble training and validation record files",
		RunE: func(cmd *cobra.Command, args []string) error {
			log := newLogger(flags.logLevel)

			model, err := loadModel(flags, log)
			if err != nil {
				return err
			}
			arena, err := closure.BuildArena(model, closure.WithMaxHops(maxHops))
			if err != nil {
				return err
			}
			db, err := store.Open(store.DefaultConfig(flags.dbPath))
			if err != nil {
				return err
			}
			defer db.Close()

			opts := []dataset.Option{
				dataset.WithSeed(seed),
				dataset.WithValidation(validation),
				dataset.WithSampleCap(sampleCap),
			}
			if debugSingle {
				opts = append(opts, dataset.WithDebugSingleSample())
			}
			if skipStarved {
				opts = append(opts, dataset.WithSkipStarved())
			}
			ds, err := dataset.Build(model, arena, db, opts...)
			if err != nil {
				return err
			}

			if err := writeRecords(trainOut, ds.Train); err != nil {
				return err
			}
			if err := writeRecords(valOut, ds.Validation); err != nil {
				return err
			}

			for _, leader := range model.Leaders() {
				c, ok := ds.Stats.Classes[leader]
				if !ok {
					log.Warn().Str("class", leader).Msg("no stored samples reach class")
					continue
				}
				log.Debug().Str("class", leader).
					Int("real", c.Real).Int("similar", c.Similar).
					Int("symmetry", c.Symmetry).Int("negated", c.Negated).
					Int("augmented", c.Augmented).
					Int("validation", c.Validation).Bool("capped", c.Capped).
					Msg("class assembled")
			}
			log.Info().
				Int("classes", len(ds.Stats.Classes)).
				Int("train", ds.Stats.TotalTrain()).
				Int("validation", ds.Stats.TotalValidation()).
				Str("train_out", trainOut).Str("validation_out", valOut).
				Msg("dataset written")
			return nil
		},
	}

	cmd.Flags().StringVar(&trainOut, "out", "train.jsonl", "Training records output file")
	cmd.Flags().StringVar(&valOut, "validation-out", "validation.jsonl", "Validation records output file")
	cmd.Flags().Uint64Var(&seed, "seed", 0, "Run seed for augmentation")
	cmd.Flags().Float64Var(&validation, "validation", dataset.DefaultValidation, "Validation fraction")
	cmd.Flags().IntVar(&sampleCap, "cap", dataset.DefaultSampleCap, "Per-class training cap (0 disables)")
	cmd.Flags().IntVar(&maxHops, "max-hops", closure.DefaultMaxHops, "Derivation chain hop ceiling")
	cmd.Flags().BoolVar(&debugSingle, "debug-single-sample", false, "Cap every sample fetch at one row for smoke checks")
	cmd.Flags().BoolVar(&skipStarved, "skip-starved", false, "Skip classes with no stored samples instead of failing")
	return cmd
}

// writeRecords streams records to path as JSON lines.
func writeRecords(path string, records []dataset.Record) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()

	w := bufio.NewWriter(f)
	enc := json.NewEncoder(w)
	for _, r := range records {
		if err := enc.Encode(toJSON(r)); err != nil {
			return fmt.Errorf("write %s: %w", path, err)
		}
	}
	if err := w.Flush(); err != nil {
		return err
	}
	return f.Close()
}

func toJSON(r dataset.Record) recordJSON {
	out := recordJSON{
		Label:     r.Label,
		Source:    r.Source,
		SampleKey: r.SampleKey,
		Chain:     r.Chain.Encode(),
		Augmented: r.Augmented,
		AugSeed:   r.AugSeed,
	}
	if r.Negation != nil {
		out.Negation = negationToJSON(r.Negation, r.SlashKey)
	}
	return out
}

func negationToJSON(n *symbols.Negation, slashKey uint64) *negationJSON {
	return &negationJSON{
		SlashKey: slashKey,
		Scale:    n.Scale,
		Angle:    n.Angle,
		XOffset:  n.XOffset,
		YOffset:  n.YOffset,
	}
}
