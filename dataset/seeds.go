package dataset

import "hash/fnv"

// splitmix64 is the finalizer of the SplitMix64 generator, used here as a
// cheap mixing function with full avalanche.
func splitmix64(x uint64) uint64 {
	x += 0x9e3779b97f4a7c15
	x = (x ^ (x >> 30)) * 0xbf58476d1ce4e5b9
	x = (x ^ (x >> 27)) * 0x94d049bb133111eb
	return x ^ (x >> 31)
}

// labelHash folds a class label to 64 bits with FNV-1a.
func labelHash(label string) uint64 {
	h := fnv.New64a()
	h.Write([]byte(label))
	return h.Sum64()
}

// slotSeed derives the 32-bit jitter seed for one augmentation slot. Mixing
// the run seed, the class label hash, and the slot index keeps classes and
// slots decorrelated while staying reproducible without any shared state.
func slotSeed(runSeed, label uint64, slot int) uint32 {
	return uint32(splitmix64(splitmix64(runSeed^label) + uint64(slot)))
}
