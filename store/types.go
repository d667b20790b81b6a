// Package store defines sample records, configuration, and sentinel errors
// for the sample database.
package store

import "errors"

// Sentinel errors for store operations.
var (
	// ErrSampleNotFound is returned when no sample exists under a key.
	ErrSampleNotFound = errors.New("store: sample not found")

	// ErrEmptySymbol is returned when a sample carries no symbol label.
	ErrEmptySymbol = errors.New("store: sample has empty symbol")

	// ErrStorePath is returned when a persistent store is opened without
	// a directory path.
	ErrStorePath = errors.New("store: path required for persistent store")
)

// Point is one pen position in the 1000-unit drawing viewport.
type Point struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// Sample is one recorded drawing of a symbol.
type Sample struct {
	Key     uint64    `json:"key"`
	Symbol  string    `json:"symbol"`
	Strokes [][]Point `json:"strokes"`
}

// SampleSource is the read surface the dataset builder consumes. Both Store
// and MemStore implement it.
//
// KeysBySymbol returns the keys of every sample recorded for symbol, in
// ascending numeric order; a symbol with no samples yields an empty slice
// and no error. SampleByKey returns ErrSampleNotFound for unknown keys.
type SampleSource interface {
	KeysBySymbol(symbol string) ([]uint64, error)
	SampleByKey(key uint64) (Sample, error)
}

// Config holds configuration for a Store.
type Config struct {
	// Path is the directory for database files. Required unless InMemory.
	Path string

	// InMemory keeps all data in RAM. Useful for tests.
	InMemory bool

	// SyncWrites forces a disk sync on every commit.
	SyncWrites bool
}

// DefaultConfig returns a durable on-disk configuration rooted at path.
func DefaultConfig(path string) Config {
	return Config{Path: path, SyncWrites: true}
}

// InMemoryConfig returns a configuration for throwaway in-memory stores.
func InMemoryConfig() Config {
	return Config{InMemory: true}
}
