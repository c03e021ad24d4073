package static

import (
	"cmp"

	"github.com/katalvlaran/dagnet/edge"
	"github.com/katalvlaran/dagnet/rng"
)

// OccupyEdges performs bond percolation: each edge is kept independently
// with probability p, using src for the Bernoulli draws (spec.md §4.D).
func OccupyEdges[V cmp.Ordered](n *Net[V], p float64, src rng.Source) *Net[V] {
	kept := make([]edge.Static[V], 0, n.EdgeCount())
	for _, e := range n.Edges() {
		if src.Float64() < p {
			kept = append(kept, e)
		}
	}
	return rebuild[V](kept, n.Vertices()...)
}

// OccupyEdgesWeighted is the per-edge-probability variant of OccupyEdges:
// prob maps an edge's Key() to its individual retention probability; an
// edge absent from prob is kept with probability 1 (never dropped).
func OccupyEdgesWeighted[V cmp.Ordered](n *Net[V], prob map[string]float64, src rng.Source) *Net[V] {
	kept := make([]edge.Static[V], 0, n.EdgeCount())
	for _, e := range n.Edges() {
		p, ok := prob[e.Key()]
		if !ok {
			p = 1
		}
		if src.Float64() < p {
			kept = append(kept, e)
		}
	}
	return rebuild[V](kept, n.Vertices()...)
}

// OccupyVertices performs site percolation: each vertex is kept
// independently with probability p; any edge losing an incident vertex is
// dropped (spec.md §4.D).
func OccupyVertices[V cmp.Ordered](n *Net[V], p float64, src rng.Source) *Net[V] {
	keep := make(map[V]struct{}, n.VertexCount())
	kept := make([]V, 0, n.VertexCount())
	for _, v := range n.Vertices() {
		if src.Float64() < p {
			keep[v] = struct{}{}
			kept = append(kept, v)
		}
	}
	edges := make([]edge.Static[V], 0, n.EdgeCount())
	for _, e := range n.Edges() {
		if allIn(e.IncidentVerts(), keep) {
			edges = append(edges, e)
		}
	}
	return rebuild[V](edges, kept...)
}
