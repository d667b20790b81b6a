package report

import (
	"encoding/csv"
	"io"
	"math"
	"sort"
	"strconv"

	"github.com/katalvlaran/glyphtrain/closure"
	"github.com/katalvlaran/glyphtrain/store"
	"github.com/katalvlaran/glyphtrain/symbols"
)

// Frequency is one table row.
type Frequency struct {
	Symbol string
	Count  int
}

// Real counts stored drawings for every symbol the model declares,
// including zero rows, sorted by count descending with ties broken by
// symbol ascending.
func Real(model *symbols.Model, src store.SampleSource) ([]Frequency, error) {
	out := make([]Frequency, 0, len(model.Symbols()))
	for _, sym := range model.Symbols() {
		keys, err := src.KeysBySymbol(sym)
		if err != nil {
			return nil, err
		}
		out = append(out, Frequency{Symbol: sym, Count: len(keys)})
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].Symbol < out[j].Symbol
	})
	return out, nil
}

// Derived counts, per class leader, the records the derivation closure can
// mint from stored samples: one per (path, stored source key) pair, before
// partitioning, balancing, or capping. Rows are sorted by symbol.
func Derived(model *symbols.Model, arena *closure.Arena, src store.SampleSource) ([]Frequency, error) {
	leaders := model.Leaders()
	out := make([]Frequency, 0, len(leaders))
	for _, leader := range leaders {
		c, err := arena.Closure(leader)
		if err != nil {
			return nil, err
		}
		total := 0
		for _, p := range c.Paths() {
			keys, err := src.KeysBySymbol(p.Source)
			if err != nil {
				return nil, err
			}
			total += len(keys)
		}
		out = append(out, Frequency{Symbol: leader, Count: total})
	}
	return out, nil
}

// WriteCSV serializes a frequency table with a "symbol,count" header.
func WriteCSV(w io.Writer, freqs []Frequency) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"symbol", "count"}); err != nil {
		return err
	}
	for _, f := range freqs {
		if err := cw.Write([]string{f.Symbol, strconv.Itoa(f.Count)}); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// Summary condenses a frequency table.
type Summary struct {
	Symbols int
	Samples int
	Min     int
	Max     int
	Mean    float64
	Median  float64
	StdDev  float64
}

// Summarize computes distribution statistics over a table. An empty table
// yields the zero Summary.
func Summarize(freqs []Frequency) Summary {
	if len(freqs) == 0 {
		return Summary{}
	}
	counts := make([]int, len(freqs))
	total := 0
	for i, f := range freqs {
		counts[i] = f.Count
		total += f.Count
	}
	sort.Ints(counts)

	s := Summary{
		Symbols: len(freqs),
		Samples: total,
		Min:     counts[0],
		Max:     counts[len(counts)-1],
		Mean:    float64(total) / float64(len(freqs)),
	}
	mid := len(counts) / 2
	if len(counts)%2 == 1 {
		s.Median = float64(counts[mid])
	} else {
		s.Median = float64(counts[mid-1]+counts[mid]) / 2
	}

	var sq float64
	for _, c := range counts {
		d := float64(c) - s.Mean
		sq += d * d
	}
	s.StdDev = math.Sqrt(sq / float64(len(counts)))
	return s
}
