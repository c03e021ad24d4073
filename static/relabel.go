package static

import (
	"cmp"

	"github.com/katalvlaran/dagnet/edge"
)

// RelabelNodes returns a network isomorphic to n whose vertex type is int,
// each vertex assigned its rank in n's ascending vertex order — a bijection
// onto the compact range [0, |V|) — alongside that mapping (spec.md §4.D
// relabel_nodes).
func RelabelNodes[V cmp.Ordered](n *Net[V]) (*Net[int], map[V]int) {
	verts := n.Vertices()
	idx := make(map[V]int, len(verts))
	relabeled := make([]int, len(verts))
	for i, v := range verts {
		idx[v] = i
		relabeled[i] = i
	}

	edges := make([]edge.Static[int], 0, n.EdgeCount())
	for _, e := range n.Edges() {
		edges = append(edges, remapStatic(e, idx))
	}

	return rebuild[int](edges, relabeled...), idx
}

// remapStatic rebuilds e with its vertices translated through idx,
// type-switching over the closed set of concrete static edge kinds.
func remapStatic[V cmp.Ordered](e edge.Static[V], idx map[V]int) edge.Static[int] {
	switch x := e.(type) {
	case edge.StaticDirected[V]:
		return edge.NewStaticDirected(idx[x.Tail()], idx[x.Head()])
	case edge.StaticUndirected[V]:
		u, v := x.Endpoints()
		return edge.NewStaticUndirected(idx[u], idx[v])
	case edge.StaticDirectedHyper[V]:
		return edge.NewStaticDirectedHyper(remapSlice(x.MutatorVerts(), idx), remapSlice(x.MutatedVerts(), idx))
	case edge.StaticUndirectedHyper[V]:
		return edge.NewStaticUndirectedHyper(remapSlice(x.IncidentVerts(), idx))
	default:
		panic("static: RelabelNodes: unsupported static edge kind")
	}
}

func remapSlice[V cmp.Ordered](vs []V, idx map[V]int) []int {
	out := make([]int, len(vs))
	for i, v := range vs {
		out[i] = idx[v]
	}
	return out
}
