package dataset

import (
	"errors"
	"fmt"
	"math/rand"
	"sort"

	"github.com/katalvlaran/glyphtrain/closure"
	"github.com/katalvlaran/glyphtrain/store"
	"github.com/katalvlaran/glyphtrain/symbols"
)

// ErrNilInput is returned when Build receives a nil model, arena, or source.
var ErrNilInput = errors.New("dataset: nil model, arena, or sample source")

// Build assembles the full dataset: closure expansion over stored samples,
// train/validation partitioning, slash pairing, balance augmentation, and
// the per-class cap. The result is byte-identical across runs for a fixed
// model, store content, and seed.
func Build(model *symbols.Model, arena *closure.Arena, src store.SampleSource, opts ...Option) (*Dataset, error) {
	if model == nil || arena == nil || src == nil {
		return nil, ErrNilInput
	}
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	trainSlash, valSlash, err := slashCycles(model, src, o)
	if err != nil {
		return nil, err
	}

	ds := &Dataset{Stats: Stats{Classes: make(map[string]ClassStats)}}

	for _, leader := range model.Leaders() {
		c, err := arena.Closure(leader)
		if err != nil {
			return nil, err
		}

		var train, validation []Record
		for _, p := range c.Paths() {
			keys, err := fetchKeys(src, p.Source, o)
			if err != nil {
				return nil, err
			}
			if len(keys) == 0 {
				continue
			}
			trainKeys, valKeys := SplitKeys(keys, o.validation)
			if train, err = appendRecords(train, leader, p, trainKeys, trainSlash); err != nil {
				return nil, err
			}
			if validation, err = appendRecords(validation, leader, p, valKeys, valSlash); err != nil {
				return nil, err
			}
		}
		if len(train) == 0 {
			if o.skipStarved {
				// The class stays out of Stats; the caller diffs
				// Stats.Classes against the model's leaders.
				continue
			}
			return nil, fmt.Errorf("%w: %s", ErrNoSamples, leader)
		}

		// The balance curve sees the raw training-side sample count summed
		// over the closure's distinct sources. The per-path row count would
		// inflate it: a source reached through several chains contributes
		// its samples once per chain.
		nReal := 0
		for _, sym := range c.Sources() {
			keys, err := fetchKeys(src, sym, o)
			if err != nil {
				return nil, err
			}
			t, _ := SplitKeys(keys, o.validation)
			nReal += len(t)
		}

		// Each slot draws its base uniformly from the full pre-augmentation
		// pool with a per-class seeded RNG; a negated base keeps its slash
		// key, the cycle does not advance.
		nBase := len(train)
		label := labelHash(leader)
		rng := rand.New(rand.NewSource(int64(splitmix64(o.seed ^ label))))
		for slot := 0; slot < AugmentationAmount(nReal, o.augmentMax, o.augmentMin); slot++ {
			rec := train[rng.Intn(nBase)]
			rec.Augmented = true
			rec.AugSeed = slotSeed(o.seed, label, slot)
			train = append(train, rec)
		}

		capped := false
		if o.sampleCap > 0 {
			if len(train) > o.sampleCap {
				train = train[:o.sampleCap]
				capped = true
			}
			if len(validation) > o.sampleCap {
				validation = validation[:o.sampleCap]
				capped = true
			}
		}

		kept := min(nBase, len(train))
		cs := ClassStats{
			Real:       kept,
			Augmented:  len(train) - kept,
			Validation: len(validation),
			Capped:     capped,
		}
		for _, r := range train[:kept] {
			switch {
			case r.Negation != nil:
				cs.Negated++
			case len(r.Chain) == 0:
				cs.Similar++
			default:
				cs.Symmetry++
			}
		}
		ds.Stats.Classes[leader] = cs
		ds.Train = append(ds.Train, train...)
		ds.Validation = append(ds.Validation, validation...)
	}

	if len(ds.Train) == 0 {
		return nil, fmt.Errorf("%w: no class has any", ErrNoSamples)
	}
	return ds, nil
}

// fetchKeys reads a symbol's sample keys, applying the debug single-sample
// cap at the fetch layer so every consumer sees at most one row per symbol.
func fetchKeys(src store.SampleSource, symbol string, o options) ([]uint64, error) {
	keys, err := src.KeysBySymbol(symbol)
	if err != nil {
		return nil, err
	}
	if o.debugSingle && len(keys) > 1 {
		keys = keys[:1]
	}
	return keys, nil
}

// appendRecords expands one closure path over one partition's keys, drawing
// slash keys for negated records from the partition's cycle.
func appendRecords(out []Record, leader string, p closure.Path, keys []uint64, slash *slashCycle) ([]Record, error) {
	for _, key := range keys {
		rec := Record{
			Label:     leader,
			Source:    p.Source,
			SampleKey: key,
			Chain:     p.Chain,
			Negation:  p.Negation,
		}
		if p.Negation != nil {
			if slash == nil || slash.empty() {
				return nil, ErrNoSlashSamples
			}
			rec.SlashKey = slash.take()
		}
		out = append(out, rec)
	}
	return out, nil
}

// slashCycles builds the per-partition slash pools: each slash group
// member's keys are split like any sample list, then the sides are pooled
// and sorted. Models without negations need no pools.
func slashCycles(model *symbols.Model, src store.SampleSource, o options) (train, validation *slashCycle, err error) {
	if len(model.Negations()) == 0 {
		return nil, nil, nil
	}
	group, err := model.SlashGroup()
	if err != nil {
		return nil, nil, err
	}
	var trainPool, valPool []uint64
	for _, member := range group.Members {
		keys, err := fetchKeys(src, member, o)
		if err != nil {
			return nil, nil, err
		}
		t, v := SplitKeys(keys, o.validation)
		trainPool = append(trainPool, t...)
		valPool = append(valPool, v...)
	}
	sort.Slice(trainPool, func(i, j int) bool { return trainPool[i] < trainPool[j] })
	sort.Slice(valPool, func(i, j int) bool { return valPool[i] < valPool[j] })
	return newSlashCycle(trainPool), newSlashCycle(valPool), nil
}
