package store

import (
	"encoding/binary"
	"encoding/json"
	"errors"
	"fmt"
	"os"

	badger "github.com/dgraph-io/badger/v4"
)

// Keyspace prefixes. Sample bodies live under samplePrefix; the per-symbol
// index under indexPrefix with empty values.
const (
	samplePrefix = "s/"
	indexPrefix  = "k/"
)

// Store is a BadgerDB-backed sample database.
type Store struct {
	db *badger.DB
}

// Open opens a store with the given configuration, creating the directory
// for persistent stores if needed.
func Open(cfg Config) (*Store, error) {
	var opts badger.Options
	if cfg.InMemory {
		opts = badger.DefaultOptions("").WithInMemory(true)
	} else {
		if cfg.Path == "" {
			return nil, ErrStorePath
		}
		if err := os.MkdirAll(cfg.Path, 0o750); err != nil {
			return nil, fmt.Errorf("store: create directory %s: %w", cfg.Path, err)
		}
		opts = badger.DefaultOptions(cfg.Path)
	}
	opts = opts.WithSyncWrites(cfg.SyncWrites).WithLogger(nil)

	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("store: open database: %w", err)
	}
	return &Store{db: db}, nil
}

// Close releases the underlying database.
func (s *Store) Close() error { return s.db.Close() }

// Put writes a sample and its index entry in one transaction, replacing any
// previous sample under the same key.
func (s *Store) Put(sample Sample) error {
	if sample.Symbol == "" {
		return ErrEmptySymbol
	}
	body, err := json.Marshal(sample)
	if err != nil {
		return fmt.Errorf("store: encode sample %d: %w", sample.Key, err)
	}
	return s.db.Update(func(txn *badger.Txn) error {
		// Re-labelling a key must not leave a stale index entry behind.
		if item, err := txn.Get(sampleKey(sample.Key)); err == nil {
			var prev Sample
			if err := item.Value(func(val []byte) error {
				return json.Unmarshal(val, &prev)
			}); err != nil {
				return err
			}
			if prev.Symbol != sample.Symbol {
				if err := txn.Delete(indexKey(prev.Symbol, prev.Key)); err != nil {
					return err
				}
			}
		} else if !errors.Is(err, badger.ErrKeyNotFound) {
			return err
		}
		if err := txn.Set(sampleKey(sample.Key), body); err != nil {
			return err
		}
		return txn.Set(indexKey(sample.Symbol, sample.Key), nil)
	})
}

// SampleByKey returns the sample stored under key.
func (s *Store) SampleByKey(key uint64) (Sample, error) {
	var sample Sample
	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(sampleKey(key))
		if errors.Is(err, badger.ErrKeyNotFound) {
			return fmt.Errorf("%w: key %d", ErrSampleNotFound, key)
		}
		if err != nil {
			return err
		}
		return item.Value(func(val []byte) error {
			return json.Unmarshal(val, &sample)
		})
	})
	if err != nil {
		return Sample{}, err
	}
	return sample, nil
}

// KeysBySymbol returns the keys of every sample recorded for symbol, in
// ascending numeric order. Big-endian key encoding makes the index prefix
// scan deliver that order directly.
func (s *Store) KeysBySymbol(symbol string) ([]uint64, error) {
	prefix := indexSymbolPrefix(symbol)
	var keys []uint64
	err := s.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.PrefetchValues = false
		opts.Prefix = prefix
		it := txn.NewIterator(opts)
		defer it.Close()
		for it.Rewind(); it.ValidForPrefix(prefix); it.Next() {
			k := it.Item().Key()
			keys = append(keys, binary.BigEndian.Uint64(k[len(prefix):]))
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return keys, nil
}

// Symbols returns every symbol with at least one stored sample, in ascending
// order.
func (s *Store) Symbols() ([]string, error) {
	var symbols []string
	err := s.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.PrefetchValues = false
		opts.Prefix = []byte(indexPrefix)
		it := txn.NewIterator(opts)
		defer it.Close()
		last := ""
		for it.Rewind(); it.ValidForPrefix(opts.Prefix); it.Next() {
			k := it.Item().Key()
			// k = "k/" + symbol + 0x00 + 8 key bytes.
			sym := string(k[len(indexPrefix) : len(k)-9])
			if sym != last {
				symbols = append(symbols, sym)
				last = sym
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return symbols, nil
}

// sampleKey encodes the body keyspace key for a sample.
func sampleKey(key uint64) []byte {
	out := make([]byte, len(samplePrefix)+8)
	copy(out, samplePrefix)
	binary.BigEndian.PutUint64(out[len(samplePrefix):], key)
	return out
}

// indexSymbolPrefix encodes the index scan prefix for one symbol. The 0x00
// separator keeps symbols that prefix each other from sharing a scan range.
func indexSymbolPrefix(symbol string) []byte {
	out := make([]byte, 0, len(indexPrefix)+len(symbol)+1)
	out = append(out, indexPrefix...)
	out = append(out, symbol...)
	return append(out, 0x00)
}

// indexKey encodes the index keyspace key for one sample.
func indexKey(symbol string, key uint64) []byte {
	prefix := indexSymbolPrefix(symbol)
	out := make([]byte, len(prefix)+8)
	copy(out, prefix)
	binary.BigEndian.PutUint64(out[len(prefix):], key)
	return out
}
