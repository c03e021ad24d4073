package temporal

import (
	"cmp"

	"github.com/katalvlaran/dagnet/edge"
	"github.com/katalvlaran/dagnet/network"
	"github.com/katalvlaran/dagnet/static"
)

// StaticProjection forgets time (spec.md §4.F / §9 "G = project(N)"):
// every temporal edge's StaticProjection is kept, deduplicated by Key, and
// the result is indexed as an ordinary static network so package static's
// combinators, components and reachability apply to it directly.
func StaticProjection[V cmp.Ordered, T edge.Number, E edge.Temporal[V, T]](n *network.Network[V, E]) *static.Net[V] {
	dedup := make(map[string]edge.Static[V])
	for _, e := range n.Edges() {
		s := e.StaticProjection()
		dedup[s.Key()] = s
	}
	edges := make([]edge.Static[V], 0, len(dedup))
	for _, s := range dedup {
		edges = append(edges, s)
	}
	return network.NewStatic[V, edge.Static[V]](edges, n.Vertices()...)
}
