// Package store persists handwriting samples in an embedded BadgerDB
// keyed-value database and exposes the read surface the dataset builder
// consumes.
//
// What
//
//   - Sample: one recorded drawing — a numeric key, the symbol it was drawn
//     as, and its stroke point lists in a 1000-unit viewport.
//   - Store: a BadgerDB-backed sample database. Put writes a sample and
//     maintains a per-symbol index; KeysBySymbol streams a symbol's keys in
//     ascending numeric order, the order every downstream partitioning step
//     assumes.
//   - MemStore: a map-backed SampleSource for tests and small pipelines.
//   - SampleSource: the minimal read interface (keys by symbol, sample by
//     key) that decouples consumers from the storage engine.
//
// Layout
//
//	Samples live under "s/<key>" with the key big-endian encoded, values are
//	JSON. A second keyspace "k/<symbol>\x00<key>" carries the per-symbol
//	index as empty values; big-endian key bytes make a plain prefix scan
//	yield ascending numeric order with no sort step.
//
// Errors
//
//   - ErrSampleNotFound — no sample under the requested key.
//   - ErrEmptySymbol    — a sample without a symbol label.
//   - ErrStorePath      — persistent store opened without a directory.
//
// Concurrency: Store is safe for concurrent use; BadgerDB manages
// transaction isolation. MemStore is guarded by a mutex.
package store
