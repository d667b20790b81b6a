package store

import (
	"fmt"
	"sort"
	"sync"
)

// MemStore is a map-backed SampleSource for tests and small pipelines.
// The zero value is not usable; call NewMemStore.
type MemStore struct {
	mu       sync.RWMutex
	samples  map[uint64]Sample
	bySymbol map[string][]uint64 // kept sorted ascending
}

// NewMemStore returns an empty in-memory sample source.
func NewMemStore() *MemStore {
	return &MemStore{
		samples:  make(map[uint64]Sample),
		bySymbol: make(map[string][]uint64),
	}
}

// Put stores a sample, replacing any previous sample under the same key.
func (m *MemStore) Put(sample Sample) error {
	if sample.Symbol == "" {
		return ErrEmptySymbol
	}
	m.mu.Lock()
	defer m.mu.Unlock()

	if prev, ok := m.samples[sample.Key]; ok {
		m.dropIndex(prev.Symbol, prev.Key)
	}
	m.samples[sample.Key] = sample

	keys := append(m.bySymbol[sample.Symbol], sample.Key)
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })
	m.bySymbol[sample.Symbol] = keys
	return nil
}

// SampleByKey returns the sample stored under key.
func (m *MemStore) SampleByKey(key uint64) (Sample, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	sample, ok := m.samples[key]
	if !ok {
		return Sample{}, fmt.Errorf("%w: key %d", ErrSampleNotFound, key)
	}
	return sample, nil
}

// KeysBySymbol returns symbol's sample keys in ascending order.
func (m *MemStore) KeysBySymbol(symbol string) ([]uint64, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	keys := m.bySymbol[symbol]
	out := make([]uint64, len(keys))
	copy(out, keys)
	return out, nil
}

// Symbols returns every symbol with at least one sample, ascending.
func (m *MemStore) Symbols() ([]string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]string, 0, len(m.bySymbol))
	for sym, keys := range m.bySymbol {
		if len(keys) > 0 {
			out = append(out, sym)
		}
	}
	sort.Strings(out)
	return out, nil
}

// dropIndex removes key from symbol's index. Caller holds m.mu.
func (m *MemStore) dropIndex(symbol string, key uint64) {
	keys := m.bySymbol[symbol]
	for i, k := range keys {
		if k == key {
			m.bySymbol[symbol] = append(keys[:i], keys[i+1:]...)
			return
		}
	}
}
