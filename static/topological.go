package static

import (
	"cmp"
	"sort"

	"github.com/katalvlaran/dagnet/edge"
	"github.com/katalvlaran/dagnet/network"
)

// TopologicalOrder computes Kahn's algorithm over a directed static
// network: repeatedly remove a zero-in-degree vertex, appending it to the
// order and decrementing its successors' in-degree. Ties among
// simultaneously-ready vertices are broken by ascending vertex order, so
// the result is reproducible for a given network regardless of edge
// insertion order (spec.md §4.D).
//
// Returns ErrNotAcyclic if the network contains a directed cycle.
//
// Complexity: O(|V| log |V| + |E|).
func TopologicalOrder[V cmp.Ordered, E edge.Static[V]](n *network.Network[V, E]) ([]V, error) {
	verts := n.Vertices() // already ascending
	indeg := make(map[V]int, len(verts))
	for _, v := range verts {
		indeg[v] = 0
	}
	for _, e := range n.Edges() {
		for _, v := range e.MutatedVerts() {
			indeg[v]++
		}
	}

	ready := make([]V, 0, len(verts))
	for _, v := range verts {
		if indeg[v] == 0 {
			ready = append(ready, v)
		}
	}

	order := make([]V, 0, len(verts))
	for len(ready) > 0 {
		v := ready[0]
		ready = ready[1:]
		order = append(order, v)

		for _, e := range n.OutEdgesCause(v) {
			for _, u := range e.MutatedVerts() {
				indeg[u]--
				if indeg[u] == 0 {
					ready = insertSortedVertex(ready, u)
				}
			}
		}
	}

	if len(order) != len(verts) {
		return nil, ErrNotAcyclic
	}
	return order, nil
}

// insertSortedVertex inserts v into the ascending-sorted slice vs.
func insertSortedVertex[V cmp.Ordered](vs []V, v V) []V {
	i := sort.Search(len(vs), func(i int) bool { return cmp.Less(v, vs[i]) })
	vs = append(vs, v)
	copy(vs[i+1:], vs[i:len(vs)-1])
	vs[i] = v
	return vs
}
