// Package mrrm implements the microcanonical reference model shuffles
// spec.md §4.H names: randomized transforms of a temporal network that each
// preserve a declared set of structural invariants, used to build null models for significance testing against a real
// network's statistics. The sets grow stricter from InstantEventShuffling
// up to ActivityConstrainedTimelineShuffling; InterEventShuffling permutes
// delays across the whole network and so preserves less than
// ActivityConstrainedTimelineShuffling, which permutes them within a link.
//
// Every shuffle takes (network, rng.Source) and returns a new network with
// the same vertex set but a shuffled edge set; none mutate their input.
// Determinism follows from src alone, exactly as package policy's stochastic
// lingers do (same source state in, same output network out).
//
// Shuffling is only supported for the dyadic temporal edge kinds
// (TemporalDirected, TemporalUndirected, DirectedDelayed); hyperedge kinds
// have no well-defined "swap one endpoint" operation in the literature this
// hierarchy is drawn from, so a shuffle call against a hyperedge-typed
// network panics rather than silently producing a misleading result.
package mrrm
