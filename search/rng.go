package search

import "math/rand"

// defaultRNGSeed is the fixed seed used when Options.Seed == 0, so a run
// left at its default is still reproducible rather than time-seeded.
const defaultRNGSeed int64 = 1

// rngFromSeed returns a deterministic *rand.Rand for Options.Seed.
func rngFromSeed(seed int64) *rand.Rand {
	s := seed
	if s == 0 {
		s = defaultRNGSeed
	}

	return rand.New(rand.NewSource(s))
}

// deriveSeed mixes a parent seed and a stream identifier with a
// SplitMix64-style avalanche finalizer, giving each walker an independent,
// reproducible RNG stream instead of sharing one *rand.Rand across
// goroutines (math/rand.Rand is not goroutine-safe).
func deriveSeed(parent int64, stream uint64) int64 {
	x := uint64(parent) ^ (stream + 0x9e3779b97f4a7c15)
	x += 0x9e3779b97f4a7c15
	x = (x ^ (x >> 30)) * 0xbf58476d1ce4e5b9
	x = (x ^ (x >> 27)) * 0x94d049bb133111eb
	x ^= x >> 31

	return int64(x)
}

// deriveRNG creates an independent deterministic RNG stream from base and a
// stream identifier, consuming one value from base first to decorrelate
// consecutive derivations.
func deriveRNG(base *rand.Rand, stream uint64) *rand.Rand {
	parent := base.Int63()

	return rand.New(rand.NewSource(deriveSeed(parent, stream)))
}
