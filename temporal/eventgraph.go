package temporal

import (
	"cmp"

	"github.com/katalvlaran/dagnet/edge"
	"github.com/katalvlaran/dagnet/eventgraph"
	"github.com/katalvlaran/dagnet/network"
	"github.com/katalvlaran/dagnet/policy"
	"github.com/katalvlaran/dagnet/static"
)

// EventGraph materializes E(N,P) as a concrete directed network over
// edge-valued vertices (spec.md §4.F): one vertex per event, keyed by its
// own Key(), and one arc e -> b for every b in Successors(n, e, p, false).
// Passing justFirst=false rather than true is deliberate: spec.md's own
// Scenario S2 (δt=5 growing to 5 arcs, including both (1,2,1)->(2,1,2) and
// (1,2,1)->(2,3,6) out of the same event) only reproduces under the full
// successor set — keeping just the nearest successor per vertex would drop
// (1,2,1)->(2,3,6) entirely, so "just_first" is eventgraph.Successors's own
// frontier-walking shortcut, not the arc set this function exposes.
//
// The result is an ordinary static.Net[string], so package static's
// topological order, component and reachability algorithms apply to the
// event graph directly (spec.md §8 testable property 6: event_graph(N,P)
// must pass topological_order without error, since δt-adjacency is
// irreflexive and acyclic on any finite temporal edge set).
func EventGraph[V cmp.Ordered, T edge.Number, E edge.Temporal[V, T]](n *network.Network[V, E], p policy.Policy[V, T]) *static.Net[string] {
	events := n.Edges()
	verts := make([]string, len(events))
	for i, e := range events {
		verts[i] = e.Key()
	}

	var arcs []edge.Static[string]
	seen := make(map[string]bool)
	for _, e := range events {
		for _, b := range eventgraph.Successors[V, T, E](n, e, p, false) {
			a := edge.NewStaticDirected(e.Key(), b.Key())
			if seen[a.Key()] {
				continue
			}
			seen[a.Key()] = true
			arcs = append(arcs, a)
		}
	}
	return network.NewStatic[string, edge.Static[string]](arcs, verts...)
}
