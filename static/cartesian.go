package static

import (
	"cmp"
	"fmt"

	"github.com/katalvlaran/dagnet/edge"
)

// pairKey renders a (g-vertex, h-vertex) pair as the string vertex identity
// of the product network. Go's generic constraints have no tuple type
// satisfying cmp.Ordered, so CartesianProduct's output vertex type is
// string rather than a literal pair — the same trick RelabelNodes uses in
// reverse (collapsing a rich vertex type down to something Ordered).
func pairKey[V, X cmp.Ordered](v V, x X) string { return fmt.Sprintf("%v\x00%v", v, x) }

// CartesianProduct builds G □ H (spec.md §4.D): for every edge {u,v} of G
// and every vertex x of H, an undirected edge {(u,x),(v,x)}; symmetrically,
// for every edge {u,v} of H and every vertex y of G, an edge {(y,u),(y,v)}.
// Hyperedges contribute every pairwise combination of their incident
// vertices, the natural extension of the dyadic product rule.
func CartesianProduct[V, X cmp.Ordered](g *Net[V], h *Net[X]) *Net[string] {
	edges := make([]edge.Static[string], 0)

	for _, e := range g.Edges() {
		verts := e.IncidentVerts()
		for i := 0; i < len(verts); i++ {
			for j := i + 1; j < len(verts); j++ {
				for _, x := range h.Vertices() {
					edges = append(edges, edge.NewStaticUndirected(pairKey(verts[i], x), pairKey(verts[j], x)))
				}
			}
		}
	}
	for _, e := range h.Edges() {
		verts := e.IncidentVerts()
		for i := 0; i < len(verts); i++ {
			for j := i + 1; j < len(verts); j++ {
				for _, y := range g.Vertices() {
					edges = append(edges, edge.NewStaticUndirected(pairKey(y, verts[i]), pairKey(y, verts[j])))
				}
			}
		}
	}

	allVerts := make([]string, 0, g.VertexCount()*h.VertexCount())
	for _, v := range g.Vertices() {
		for _, x := range h.Vertices() {
			allVerts = append(allVerts, pairKey(v, x))
		}
	}

	return rebuild[string](edges, allVerts...)
}
