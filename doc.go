// Package dagnet analyzes temporal networks: sequences of timestamped
// interactions between vertices, and the event graph those interactions
// induce under a chosen temporal-adjacency policy.
//
// Subpackages:
//
//	edge/       — the eight edge kinds (static/temporal/directed-delayed ×
//	              dyadic/hyper × directed/undirected) and their orderings
//	network/    — immutable edge-multiset container with sorted adjacency
//	              indices (cause order and effect order)
//	policy/     — per-vertex "linger time" after an event: simple,
//	              limited-waiting-time, exponential, geometric
//	rng/        — the Source interface any uniform RNG satisfies, plus
//	              deterministic sub-seed derivation
//	eventgraph/ — successors/predecessors of an event under a policy,
//	              computed on demand without materializing the full graph
//	interval/   — closed interval-set helper backing cluster coverage
//	cluster/    — exact and HyperLogLog-sketch-backed cluster accumulators
//	              (lifetime, mass, volume, covers)
//	static/     — topological order, weak/strong components, reachability,
//	              union/subgraph/occupation/relabel/cartesian product
//	temporal/   — in/out clusters from an event or a (vertex, time) seed,
//	              all-pairs clusters, static projection, link timelines,
//	              event-graph materialization
//	builder/    — random graph and temporal-network generators
//	mrrm/       — microcanonical reference-model shuffles, a hierarchy of
//	              constrained randomizations for null-model comparison
//	edgelist/   — text edgelist reader/writer
//
// Networks, event graphs and clusters are immutable once built; every
// randomized constructor and shuffle takes an explicit rng.Source rather
// than seeding from a process-global generator, so a given Source state
// always reproduces the same result.
package dagnet
