package report_test

import (
	"bytes"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/glyphtrain/closure"
	"github.com/katalvlaran/glyphtrain/report"
	"github.com/katalvlaran/glyphtrain/store"
	"github.com/katalvlaran/glyphtrain/symbols"
)

func reportFixture(t *testing.T) (*symbols.Model, *closure.Arena, *store.MemStore) {
	t.Helper()
	fsys := fstest.MapFS{
		"similar.txt": {Data: []byte("alpha alpha-var\ngamma\n")},
		"symmetry.yaml": {Data: []byte(
			"edges:\n  - {target: alpha, source: gamma, chain: [rot90]}\n",
		)},
	}
	model, err := symbols.Load(fsys)
	require.NoError(t, err)
	arena, err := closure.NewArena(model)
	require.NoError(t, err)

	src := store.NewMemStore()
	put := func(symbol string, keys ...uint64) {
		for _, k := range keys {
			require.NoError(t, src.Put(store.Sample{
				Key: k, Symbol: symbol,
				Strokes: [][]store.Point{{{X: 0, Y: 0}}},
			}))
		}
	}
	put("alpha", 1, 2, 3)
	put("gamma", 10)
	return model, arena, src
}

func TestReal_CountDescendingWithZeroRows(t *testing.T) {
	model, _, src := reportFixture(t)

	freqs, err := report.Real(model, src)
	require.NoError(t, err)
	assert.Equal(t, []report.Frequency{
		{Symbol: "alpha", Count: 3},
		{Symbol: "gamma", Count: 1},
		{Symbol: "alpha-var", Count: 0},
	}, freqs)
}

func TestDerived_CountsClosureYieldPerLeader(t *testing.T) {
	model, arena, src := reportFixture(t)

	freqs, err := report.Derived(model, arena, src)
	require.NoError(t, err)
	// alpha draws from its own 3 samples plus gamma's 1 through rot90;
	// gamma only from itself.
	assert.Equal(t, []report.Frequency{
		{Symbol: "alpha", Count: 4},
		{Symbol: "gamma", Count: 1},
	}, freqs)
}

func TestWriteCSV(t *testing.T) {
	var buf bytes.Buffer
	err := report.WriteCSV(&buf, []report.Frequency{
		{Symbol: "alpha", Count: 3},
		{Symbol: "gamma", Count: 1},
	})
	require.NoError(t, err)
	assert.Equal(t, "symbol,count\nalpha,3\ngamma,1\n", buf.String())
}

func TestSummarize(t *testing.T) {
	s := report.Summarize([]report.Frequency{
		{Symbol: "a", Count: 3},
		{Symbol: "b", Count: 1},
		{Symbol: "c", Count: 8},
		{Symbol: "d", Count: 4},
	})
	assert.Equal(t, 4, s.Symbols)
	assert.Equal(t, 16, s.Samples)
	assert.Equal(t, 1, s.Min)
	assert.Equal(t, 8, s.Max)
	assert.Equal(t, 4.0, s.Mean)
	assert.Equal(t, 3.5, s.Median)
	// Population deviation over {3,1,8,4}: sqrt(26/4).
	assert.InDelta(t, 2.5495, s.StdDev, 1e-4)

	assert.Equal(t, report.Summary{}, report.Summarize(nil))
}
