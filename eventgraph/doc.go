// Package eventgraph implements the implicit event graph of spec.md §4.E:
// the directed graph whose vertices are the temporal edges (events) of a
// network and whose arcs are δt-adjacency under a temporal adjacency
// policy. It is never materialized by default — Successors and
// Predecessors are pure functions of (network, policy, event) answered by
// binary search over the network's cause/effect adjacency indices, so an
// event graph with O(|E|·avg_δ-neighborhood) arcs never costs O(|E|²)
// memory to query.
package eventgraph
