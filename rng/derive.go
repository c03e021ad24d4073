package rng

import "math"

// Mix applies a SplitMix64-style avalanche finalizer to (parent, stream),
// producing a new 64-bit seed with strong bit diffusion: small changes in
// either input produce large, well-distributed changes in the output. See
// Vigna (2014) for the constants and their provenance.
func Mix(parent int64, stream uint64) int64 {
	x := uint64(parent) ^ (stream + 0x9e3779b97f4a7c15)
	x += 0x9e3779b97f4a7c15
	x = (x ^ (x >> 30)) * 0xbf58476d1ce4e5b9
	x = (x ^ (x >> 27)) * 0x94d049bb133111eb
	x ^= x >> 31
	return int64(x)
}

// Derive returns an independent deterministic Source for the given stream
// identifier, derived from seed via Mix. Two calls with the same (seed,
// stream) always return equivalent streams; this is what lets policy's
// stochastic adjacencies be pure functions of (edge identity, seed) rather
// than carry mutable state (spec.md §4.C, §9).
func Derive(seed int64, stream uint64) Source {
	return New(Mix(seed, stream))
}

// FNV1a64 hashes s into a 64-bit digest, used to fold a variable-length
// identifier (an edge's Key(), say) into the stream identifier Derive
// expects.
func FNV1a64(s string) uint64 {
	const (
		offset = 14695981039346656037
		prime  = 1099511628211
	)
	h := uint64(offset)
	for i := 0; i < len(s); i++ {
		h ^= uint64(s[i])
		h *= prime
	}
	return h
}

// ExpFloat64 draws an Exp(rate) variate from src via inverse-CDF sampling:
// deterministic given src's current state, matching math/rand's own
// ExpFloat64 semantics but usable against any Source, not just *rand.Rand.
func ExpFloat64(src Source, rate float64) float64 {
	u := src.Float64()
	for u <= 0 {
		u = src.Float64()
	}
	return -math.Log(u) / rate
}

// GeomInt draws a Geometric(p) variate (number of Bernoulli(p) failures
// before the first success, support {0,1,2,...}) from src.
func GeomInt(src Source, p float64) int64 {
	u := src.Float64()
	for u <= 0 {
		u = src.Float64()
	}
	return int64(math.Log(u) / math.Log(1-p))
}
