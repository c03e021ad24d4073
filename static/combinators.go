package static

import (
	"cmp"

	"github.com/katalvlaran/dagnet/edge"
	"github.com/katalvlaran/dagnet/network"
)

// Net is the static network shape the combinators, percolation, relabeling
// and Cartesian-product operations in this package share: edges erased to
// the Static capability interface so one network may mix directed,
// undirected, dyadic and hyper static edges (spec.md §4.D).
type Net[V cmp.Ordered] = network.Network[V, edge.Static[V]]

func rebuild[V cmp.Ordered](edges []edge.Static[V], verts ...V) *Net[V] {
	return network.NewStatic[V, edge.Static[V]](edges, verts...)
}

// Union returns a new network containing every edge and vertex of a and b
// (spec.md §4.D graph_union).
func Union[V cmp.Ordered](a, b *Net[V]) *Net[V] {
	edges := append(append([]edge.Static[V]{}, a.Edges()...), b.Edges()...)
	verts := append(append([]V{}, a.Vertices()...), b.Vertices()...)
	return rebuild[V](edges, verts...)
}

// WithEdges returns a copy of n with extra added.
func WithEdges[V cmp.Ordered](n *Net[V], extra ...edge.Static[V]) *Net[V] {
	edges := append(append([]edge.Static[V]{}, n.Edges()...), extra...)
	return rebuild[V](edges, n.Vertices()...)
}

// WithoutEdges returns a copy of n with any edge content-equal (by Key) to
// one of drop removed. Dropped edges' vertices remain in the network (as
// isolated vertices, if they had no other incident edge).
func WithoutEdges[V cmp.Ordered](n *Net[V], drop ...edge.Static[V]) *Net[V] {
	dropKeys := make(map[string]struct{}, len(drop))
	for _, e := range drop {
		dropKeys[e.Key()] = struct{}{}
	}
	kept := make([]edge.Static[V], 0, n.EdgeCount())
	for _, e := range n.Edges() {
		if _, ok := dropKeys[e.Key()]; !ok {
			kept = append(kept, e)
		}
	}
	return rebuild[V](kept, n.Vertices()...)
}

// WithVertices returns a copy of n with extra vertices added (as isolated
// vertices if not already incident to some edge).
func WithVertices[V cmp.Ordered](n *Net[V], extra ...V) *Net[V] {
	verts := append(append([]V{}, n.Vertices()...), extra...)
	return rebuild[V](n.Edges(), verts...)
}

// WithoutVertices returns the subgraph of n obtained by deleting drop and
// every edge incident to any vertex in drop.
func WithoutVertices[V cmp.Ordered](n *Net[V], drop ...V) *Net[V] {
	dropSet := make(map[V]struct{}, len(drop))
	for _, v := range drop {
		dropSet[v] = struct{}{}
	}
	kept := make([]edge.Static[V], 0, n.EdgeCount())
	for _, e := range n.Edges() {
		if !anyIn(e.IncidentVerts(), dropSet) {
			kept = append(kept, e)
		}
	}
	verts := make([]V, 0, n.VertexCount())
	for _, v := range n.Vertices() {
		if _, ok := dropSet[v]; !ok {
			verts = append(verts, v)
		}
	}
	return rebuild[V](kept, verts...)
}

// VertexInducedSubgraph returns the subgraph whose edges are exactly those
// of n with every incident vertex in keep.
func VertexInducedSubgraph[V cmp.Ordered](n *Net[V], keep ...V) *Net[V] {
	keepSet := make(map[V]struct{}, len(keep))
	for _, v := range keep {
		keepSet[v] = struct{}{}
	}
	kept := make([]edge.Static[V], 0, n.EdgeCount())
	for _, e := range n.Edges() {
		if allIn(e.IncidentVerts(), keepSet) {
			kept = append(kept, e)
		}
	}
	return rebuild[V](kept, keep...)
}

// EdgeInducedSubgraph returns the subgraph over exactly edges, plus every
// vertex incident to one of them.
func EdgeInducedSubgraph[V cmp.Ordered](edges ...edge.Static[V]) *Net[V] {
	return rebuild[V](edges)
}

func anyIn[V cmp.Ordered](vs []V, set map[V]struct{}) bool {
	for _, v := range vs {
		if _, ok := set[v]; ok {
			return true
		}
	}
	return false
}

func allIn[V cmp.Ordered](vs []V, set map[V]struct{}) bool {
	for _, v := range vs {
		if _, ok := set[v]; !ok {
			return false
		}
	}
	return true
}
