package dataset

import "math"

// SplitKeys partitions an ascending key list: the first ceil(n·frac) keys
// become validation, the remainder training. The caller guarantees frac lies
// in (0, 0.5), so training always keeps the majority. A single-key list
// appears on both sides; a class with one recorded sample must still be
// representable in both partitions.
func SplitKeys(keys []uint64, frac float64) (train, validation []uint64) {
	n := len(keys)
	switch n {
	case 0:
		return nil, nil
	case 1:
		return keys[:1], keys[:1]
	}
	cut := int(math.Ceil(float64(n) * frac))
	return keys[cut:], keys[:cut]
}
