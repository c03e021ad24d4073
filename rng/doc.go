// Package rng centralizes deterministic random-number generation shared by
// dagnet's stochastic temporal adjacency policies (package policy), random
// graph generators (package builder) and microcanonical reference models
// (package mrrm).
//
// dagnet treats the RNG as an external collaborator (spec.md §1): any type
// satisfying Source works, including *math/rand.Rand directly. The package
// (derive.go) also centralizes the SplitMix64 seed-mixing idiom used everywhere dagnet
// needs a reproducible PRNG stream derived from a (parent seed, identifier)
// pair rather than carried state — the "systems-language seed + hash"
// approach spec.md §9 calls for in stochastic temporal adjacencies.
package rng
