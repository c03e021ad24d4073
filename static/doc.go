// Package static implements the time-agnostic algorithms of spec.md §4.D
// over network.Network: topological order, weak/strong connectivity,
// reachability, set-theoretic combinators, percolation, relabeling and the
// Cartesian product.
//
// The combinators, percolation, relabeling and product operate over
// network.Network[V, edge.Static[V]] — the edge type parameter instantiated
// to the Static capability interface itself — so a single network may mix
// directed, undirected, dyadic and hyper static edges the way spec.md's
// "any edge kind" phrasing allows. Topological order and strongly connected
// components are meaningful only for directed edges; callers that build a
// network of exclusively directed static edges get correct answers, and
// feeding an undirected edge in does not panic, it just contributes a
// symmetric (mutator==mutated) adjacency like any other edge would.
package static
