// Package policy implements the temporal adjacency policies of spec.md
// §4.C: a function from (event, vertex) to a nonnegative linger time L,
// governing how long after an event ends a shared vertex remains able to
// pass information on to a causally-later event.
//
// Simple is the unconstrained "anything that follows" policy used for pure
// reachability. LimitedWaitingTime is the deterministic δt cutoff most
// temporal-network literature calls "δt-adjacency". Exponential and
// Geometric are stochastic cutoffs that must nonetheless be pure,
// reproducible functions of (edge identity, seed, vertex) — never carried
// mutable state — so that two calls with identical inputs return identical
// lingers (spec.md §4.C, §9). Package rng's seed-derivation idiom is what
// makes that possible without threading a shared PRNG through every call.
package policy
