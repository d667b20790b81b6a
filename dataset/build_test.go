package dataset_test

import (
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/glyphtrain/closure"
	"github.com/katalvlaran/glyphtrain/dataset"
	"github.com/katalvlaran/glyphtrain/store"
	"github.com/katalvlaran/glyphtrain/symbols"
)

// pipelineFixture loads a compact relation model and a MemStore populated
// for it: alpha (with twin alpha-var) also derivable from gamma via rot90,
// not-alpha negating alpha, vline carrying the slash strokes.
func pipelineFixture(t *testing.T) (*symbols.Model, *closure.Arena, *store.MemStore) {
	t.Helper()
	fsys := fstest.MapFS{
		"similar.txt": {Data: []byte(
			"alpha alpha-var\ngamma\nnot-alpha\nvline\n",
		)},
		"symmetry.yaml": {Data: []byte(
			"edges:\n  - {target: alpha, source: gamma, chain: [rot90]}\n",
		)},
		"negations.yaml": {Data: []byte(
			"negations:\n  - {target: not-alpha, source: alpha, scale: 0.9}\n",
		)},
	}
	model, err := symbols.Load(fsys, symbols.WithSlashGroup("vline"))
	require.NoError(t, err)
	arena, err := closure.NewArena(model)
	require.NoError(t, err)

	src := store.NewMemStore()
	put := func(symbol string, keys ...uint64) {
		for _, k := range keys {
			require.NoError(t, src.Put(store.Sample{
				Key: k, Symbol: symbol,
				Strokes: [][]store.Point{{{X: 1, Y: 2}}},
			}))
		}
	}
	put("alpha", 1, 2, 3, 4, 5, 6, 7, 8, 9, 10)
	put("alpha-var", 11, 12)
	put("gamma", 20, 21, 22)
	put("not-alpha", 30)
	put("vline", 40, 41, 42)
	return model, arena, src
}

func TestBuild_PartitionsPerPathSource(t *testing.T) {
	model, arena, src := pipelineFixture(t)
	ds, err := dataset.Build(model, arena, src, dataset.WithValidation(0.2))
	require.NoError(t, err)

	trainKeys := make(map[string]map[uint64]bool)
	for _, r := range ds.Train {
		if r.Label != "alpha" || r.Augmented {
			continue
		}
		if trainKeys[r.Source] == nil {
			trainKeys[r.Source] = make(map[uint64]bool)
		}
		trainKeys[r.Source][r.SampleKey] = true
	}
	valKeys := make(map[string]map[uint64]bool)
	for _, r := range ds.Validation {
		if r.Label != "alpha" {
			continue
		}
		if valKeys[r.Source] == nil {
			valKeys[r.Source] = make(map[uint64]bool)
		}
		valKeys[r.Source][r.SampleKey] = true
	}

	// First ceil(n·0.2) keys per source go to validation, the rest train.
	assert.Equal(t, map[uint64]bool{1: true, 2: true}, valKeys["alpha"])
	assert.Equal(t,
		map[uint64]bool{3: true, 4: true, 5: true, 6: true, 7: true,
			8: true, 9: true, 10: true},
		trainKeys["alpha"])
	assert.Equal(t, map[uint64]bool{11: true}, valKeys["alpha-var"])
	assert.Equal(t, map[uint64]bool{12: true}, trainKeys["alpha-var"])
	assert.Equal(t, map[uint64]bool{20: true}, valKeys["gamma"])
	assert.Equal(t, map[uint64]bool{21: true, 22: true}, trainKeys["gamma"])

	stats := ds.Stats.Classes["alpha"]
	assert.Equal(t, 11, stats.Real)
	assert.Equal(t, 9, stats.Similar)
	assert.Equal(t, 2, stats.Symmetry)
	assert.Equal(t, 0, stats.Negated)
	assert.Equal(t, 4, stats.Validation)

	negStats := ds.Stats.Classes["not-alpha"]
	assert.Equal(t, 1, negStats.Similar)
	assert.Equal(t, 11, negStats.Negated)
}

func TestBuild_LoneSampleClassPresentInBothPartitions(t *testing.T) {
	model, arena, src := pipelineFixture(t)
	ds, err := dataset.Build(model, arena, src, dataset.WithValidation(0.2))
	require.NoError(t, err)

	inTrain, inVal := false, false
	for _, r := range ds.Train {
		if r.Source == "not-alpha" && r.SampleKey == 30 && !r.Augmented {
			inTrain = true
		}
	}
	for _, r := range ds.Validation {
		if r.Source == "not-alpha" && r.SampleKey == 30 {
			inVal = true
		}
	}
	assert.True(t, inTrain)
	assert.True(t, inVal)
}

func TestBuild_SlashKeysCycleRoundRobin(t *testing.T) {
	model, arena, src := pipelineFixture(t)
	ds, err := dataset.Build(model, arena, src, dataset.WithValidation(0.2))
	require.NoError(t, err)

	// Train-side slash pool: vline keys {40,41,42} minus the validation
	// head {40}, so negated training records alternate 41, 42, 41, ...
	pool := []uint64{41, 42}
	i := 0
	for _, r := range ds.Train {
		if r.Negation == nil || r.Augmented {
			continue
		}
		assert.Equal(t, pool[i%len(pool)], r.SlashKey, "negated record %d", i)
		i++
	}
	assert.Greater(t, i, len(pool))

	// Validation-side negated records draw only from the validation head.
	for _, r := range ds.Validation {
		if r.Negation != nil {
			assert.Equal(t, uint64(40), r.SlashKey)
		}
	}
}

func TestBuild_AugmentedCopiesDrawFromBasePool(t *testing.T) {
	model, arena, src := pipelineFixture(t)
	ds, err := dataset.Build(model, arena, src,
		dataset.WithValidation(0.2), dataset.WithSeed(99))
	require.NoError(t, err)

	var augmented []dataset.Record
	base := make(map[uint64]dataset.Record) // sample keys are distinct here
	for _, r := range ds.Train {
		if r.Label != "not-alpha" {
			continue
		}
		if r.Augmented {
			augmented = append(augmented, r)
		} else {
			base[r.SampleKey] = r
		}
	}
	require.NotEmpty(t, augmented)
	// Every distinct source contributes its training keys once to the
	// balance-curve input: 1 (not-alpha) + 8 (alpha) + 1 (alpha-var) + 2
	// (gamma).
	assert.Equal(t, dataset.AugmentationAmount(12, dataset.DefaultAugmentMax,
		dataset.DefaultAugmentMin), len(augmented))

	seeds := make(map[uint32]bool)
	for _, r := range augmented {
		want, ok := base[r.SampleKey]
		require.True(t, ok, "augmented record replays key %d outside the pool", r.SampleKey)
		assert.Equal(t, want.Chain, r.Chain)
		// Negated copies keep the base record's slash pairing.
		assert.Equal(t, want.SlashKey, r.SlashKey)
		seeds[r.AugSeed] = true
	}
	// Every slot draws an independent jitter seed.
	assert.Equal(t, len(augmented), len(seeds))
}

func TestBuild_AugmentationCountsDistinctSources(t *testing.T) {
	// A rotational self-symmetry mints four rows from every stored sample;
	// the balance curve must still see the raw per-source sample count.
	fsys := fstest.MapFS{
		"similar.txt": {Data: []byte("spin\n")},
		"symmetry.yaml": {Data: []byte(
			"edges:\n  - {target: spin, source: spin, chain: [rot90]}\n",
		)},
	}
	model, err := symbols.Load(fsys)
	require.NoError(t, err)
	arena, err := closure.NewArena(model)
	require.NoError(t, err)

	src := store.NewMemStore()
	for _, k := range []uint64{1, 2} {
		require.NoError(t, src.Put(store.Sample{Key: k, Symbol: "spin",
			Strokes: [][]store.Point{{{X: 0, Y: 0}}}}))
	}

	ds, err := dataset.Build(model, arena, src)
	require.NoError(t, err)

	nReal, augmented := 0, 0
	for _, r := range ds.Train {
		if r.Augmented {
			augmented++
		} else {
			nReal++
		}
	}
	// One training-side sample expanded through four chains.
	assert.Equal(t, 4, nReal)
	assert.Equal(t,
		dataset.AugmentationAmount(1, dataset.DefaultAugmentMax, dataset.DefaultAugmentMin),
		augmented)
}

func TestBuild_SeedSelectsAugmentationBases(t *testing.T) {
	model, arena, src := pipelineFixture(t)

	augKeys := func(seed uint64) []uint64 {
		ds, err := dataset.Build(model, arena, src, dataset.WithSeed(seed))
		require.NoError(t, err)
		var keys []uint64
		for _, r := range ds.Train {
			if r.Label == "alpha" && r.Augmented {
				keys = append(keys, r.SampleKey)
			}
		}
		return keys
	}

	first := augKeys(1)
	assert.Equal(t, first, augKeys(1))
	assert.NotEqual(t, first, augKeys(999999))
}

func TestBuild_DeterministicForFixedSeed(t *testing.T) {
	model, arena, src := pipelineFixture(t)

	a, err := dataset.Build(model, arena, src, dataset.WithSeed(7))
	require.NoError(t, err)
	b, err := dataset.Build(model, arena, src, dataset.WithSeed(7))
	require.NoError(t, err)
	assert.Equal(t, a, b)

	c, err := dataset.Build(model, arena, src, dataset.WithSeed(8))
	require.NoError(t, err)
	assert.NotEqual(t, a.Train, c.Train)
}

func TestBuild_SampleCapTruncatesBothPartitions(t *testing.T) {
	model, arena, src := pipelineFixture(t)
	ds, err := dataset.Build(model, arena, src, dataset.WithSampleCap(2))
	require.NoError(t, err)

	perTrain := make(map[string]int)
	for _, r := range ds.Train {
		perTrain[r.Label]++
	}
	for label, n := range perTrain {
		assert.LessOrEqual(t, n, 2, "class %s train", label)
	}

	// The cap bounds validation too: alpha's three validation rows (one per
	// source at the default fraction) shrink to two.
	perVal := make(map[string]int)
	for _, r := range ds.Validation {
		perVal[r.Label]++
	}
	for label, n := range perVal {
		assert.LessOrEqual(t, n, 2, "class %s validation", label)
	}
	assert.Equal(t, 2, perVal["alpha"])
	assert.Equal(t, 2, ds.Stats.Classes["alpha"].Validation)
	assert.True(t, ds.Stats.Classes["alpha"].Capped)
}

func TestBuild_StarvedClassIsFatal(t *testing.T) {
	model, arena, _ := pipelineFixture(t)

	// No gamma samples: the gamma class has no reachable rows.
	src := store.NewMemStore()
	put := func(symbol string, keys ...uint64) {
		for _, k := range keys {
			require.NoError(t, src.Put(store.Sample{
				Key: k, Symbol: symbol,
				Strokes: [][]store.Point{{{X: 1, Y: 2}}},
			}))
		}
	}
	put("alpha", 1, 2)
	put("alpha-var", 11)
	put("not-alpha", 30)
	put("vline", 40, 41)

	_, err := dataset.Build(model, arena, src)
	require.ErrorIs(t, err, dataset.ErrNoSamples)
	assert.ErrorContains(t, err, "gamma")

	// Opting in drops the class instead; the gap stays visible in Stats.
	ds, err := dataset.Build(model, arena, src, dataset.WithSkipStarved())
	require.NoError(t, err)
	assert.NotContains(t, ds.Stats.Classes, "gamma")
	assert.Contains(t, ds.Stats.Classes, "alpha")
}

func TestBuild_DebugSingleSample(t *testing.T) {
	model, arena, src := pipelineFixture(t)
	ds, err := dataset.Build(model, arena, src, dataset.WithDebugSingleSample())
	require.NoError(t, err)

	// Each (label, source) pair keeps exactly the source's first key; the
	// lone key lands in both partitions.
	trainKeys := make(map[[2]string]uint64)
	for _, r := range ds.Train {
		if r.Augmented {
			continue
		}
		pair := [2]string{r.Label, r.Source}
		_, dup := trainKeys[pair]
		assert.False(t, dup, "pair %v", pair)
		trainKeys[pair] = r.SampleKey
	}
	assert.Equal(t, uint64(1), trainKeys[[2]string{"alpha", "alpha"}])
	assert.Equal(t, uint64(11), trainKeys[[2]string{"alpha", "alpha-var"}])
	assert.Equal(t, uint64(20), trainKeys[[2]string{"alpha", "gamma"}])

	valKeys := make(map[[2]string]uint64)
	for _, r := range ds.Validation {
		valKeys[[2]string{r.Label, r.Source}] = r.SampleKey
	}
	assert.Equal(t, trainKeys, valKeys)

	// Balancing still runs over the reduced pool.
	augmented := 0
	for _, r := range ds.Train {
		if r.Label == "alpha" && r.Augmented {
			augmented++
		}
	}
	assert.Equal(t,
		dataset.AugmentationAmount(3, dataset.DefaultAugmentMax, dataset.DefaultAugmentMin),
		augmented)
}

func TestBuild_ErrorPaths(t *testing.T) {
	model, arena, src := pipelineFixture(t)

	_, err := dataset.Build(nil, arena, src)
	assert.ErrorIs(t, err, dataset.ErrNilInput)

	_, err = dataset.Build(model, arena, src, dataset.WithValidation(0.6))
	assert.ErrorIs(t, err, dataset.ErrBadSplit)

	_, err = dataset.Build(model, arena, src, dataset.WithSampleCap(-1))
	assert.ErrorIs(t, err, dataset.ErrOptionViolation)

	_, err = dataset.Build(model, arena, store.NewMemStore())
	assert.ErrorIs(t, err, dataset.ErrNoSamples)
}

func TestBuild_NoSlashSamples(t *testing.T) {
	model, arena, _ := pipelineFixture(t)

	// Samples exist for the negation's source but none for the slash group.
	src := store.NewMemStore()
	require.NoError(t, src.Put(store.Sample{Key: 1, Symbol: "alpha",
		Strokes: [][]store.Point{{{X: 1, Y: 1}}}}))
	require.NoError(t, src.Put(store.Sample{Key: 30, Symbol: "not-alpha",
		Strokes: [][]store.Point{{{X: 1, Y: 1}}}}))

	// Skip the sample-less classes so the build reaches the negation class.
	_, err := dataset.Build(model, arena, src, dataset.WithSkipStarved())
	assert.ErrorIs(t, err, dataset.ErrNoSlashSamples)
}
