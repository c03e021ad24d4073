package static

import (
	"cmp"
	"fmt"
	"sort"

	"github.com/katalvlaran/dagnet/cluster"
	"github.com/katalvlaran/dagnet/edge"
	"github.com/katalvlaran/dagnet/network"
)

// WeaklyConnectedComponentsSketch is WeaklyConnectedComponents's
// HyperLogLog-backed counterpart: exact union-find still determines which
// vertices share a component (that part is O(n) regardless of scale), but
// each component's size is reported as an estimated cardinality rather than
// a materialized member list — useful once a component is too large to want
// to hold in memory as a slice of vertices. Returned sizes are sorted
// ascending for a deterministic result.
func WeaklyConnectedComponentsSketch[V cmp.Ordered, E edge.Edge[V]](n *network.Network[V, E]) []float64 {
	uf := newUnionFind(n.Vertices())
	for _, e := range n.Edges() {
		verts := e.IncidentVerts()
		for i := 1; i < len(verts); i++ {
			uf.union(verts[0], verts[i])
		}
	}

	toBytes := func(v V) []byte { return []byte(fmt.Sprintf("%v", v)) }
	sketches := make(map[V]*cluster.Sketch[V])
	for _, v := range n.Vertices() {
		root := uf.find(v)
		s, ok := sketches[root]
		if !ok {
			s = cluster.NewSketch[V](toBytes)
			sketches[root] = s
		}
		s.Insert(v)
	}

	out := make([]float64, 0, len(sketches))
	for _, s := range sketches {
		out = append(out, s.Cardinality())
	}
	sort.Float64s(out)
	return out
}
