// Package builder generates random static and temporal networks (spec.md
// §2 row G): Erdős–Rényi G(n,p), the configuration model (degree-sequence
// stub-matching), expected-degree / Chung–Lu, Barabási–Albert preferential
// attachment, and FullyMixedTemporalNetwork (every ordered pair of vertices
// gets an independent Poisson-process contact sequence).
//
// Every generator takes an explicit rng.Source and is otherwise pure: same
// source state in, same network out. Generators that accept tuning knobs
// beyond their required parameters (retry budget, self-loop policy) take
// them as BuilderOption functional options rather than growing positional
// parameter lists, following the same pattern package mrrm uses for
// optional behavior.
package builder
