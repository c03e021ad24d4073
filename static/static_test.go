package static_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/dagnet/edge"
	"github.com/katalvlaran/dagnet/network"
	"github.com/katalvlaran/dagnet/rng"
	"github.com/katalvlaran/dagnet/static"
)

func dag() *network.Network[int, edge.StaticDirected[int]] {
	return network.NewStatic[int, edge.StaticDirected[int]]([]edge.StaticDirected[int]{
		edge.NewStaticDirected(1, 2),
		edge.NewStaticDirected(2, 3),
		edge.NewStaticDirected(1, 3),
	})
}

func TestTopologicalOrderDAG(t *testing.T) {
	order, err := static.TopologicalOrder(dag())
	assert.NoError(t, err)
	assert.Equal(t, []int{1, 2, 3}, order)
}

func TestTopologicalOrderCycle(t *testing.T) {
	n := network.NewStatic[int, edge.StaticDirected[int]]([]edge.StaticDirected[int]{
		edge.NewStaticDirected(1, 2),
		edge.NewStaticDirected(2, 1),
	})
	_, err := static.TopologicalOrder(n)
	assert.ErrorIs(t, err, static.ErrNotAcyclic)
}

func TestWeaklyConnectedComponents(t *testing.T) {
	n := network.NewStatic[int, edge.StaticDirected[int]]([]edge.StaticDirected[int]{
		edge.NewStaticDirected(1, 2),
		edge.NewStaticDirected(3, 4),
	}, 5)
	comps := static.WeaklyConnectedComponents[int, edge.StaticDirected[int]](n)
	assert.Len(t, comps, 3)
	assert.Equal(t, []int{1, 2}, comps[0])
	assert.Equal(t, []int{3, 4}, comps[1])
	assert.Equal(t, []int{5}, comps[2])
}

func TestStronglyConnectedComponents(t *testing.T) {
	n := network.NewStatic[int, edge.StaticDirected[int]]([]edge.StaticDirected[int]{
		edge.NewStaticDirected(1, 2),
		edge.NewStaticDirected(2, 1),
		edge.NewStaticDirected(2, 3),
	})
	comps := static.StronglyConnectedComponents[int, edge.StaticDirected[int]](n)
	var sizes []int
	for _, c := range comps {
		sizes = append(sizes, len(c))
	}
	assert.Contains(t, sizes, 2) // {1,2}
	assert.Contains(t, sizes, 1) // {3}
}

func TestIsReachable(t *testing.T) {
	n := dag()
	assert.True(t, static.IsReachable[int, edge.StaticDirected[int]](n, 1, 3))
	assert.False(t, static.IsReachable[int, edge.StaticDirected[int]](n, 3, 1))
	assert.True(t, static.IsReachable[int, edge.StaticDirected[int]](n, 1, 1))
}

func eraseToStatic(n *network.Network[int, edge.StaticDirected[int]]) *static.Net[int] {
	edges := make([]edge.Static[int], 0, n.EdgeCount())
	for _, e := range n.Edges() {
		edges = append(edges, e)
	}
	return network.NewStatic[int, edge.Static[int]](edges, n.Vertices()...)
}

func TestCombinators(t *testing.T) {
	n := eraseToStatic(dag())

	withoutEdges := static.WithoutEdges[int](n, edge.NewStaticDirected[int](1, 3))
	assert.Equal(t, 2, withoutEdges.EdgeCount())

	withoutVerts := static.WithoutVertices[int](n, 3)
	assert.Equal(t, 1, withoutVerts.EdgeCount())
	assert.Equal(t, []int{1, 2}, withoutVerts.Vertices())

	induced := static.VertexInducedSubgraph[int](n, 1, 2)
	assert.Equal(t, 1, induced.EdgeCount())

	withExtra := static.WithVertices[int](n, 99)
	assert.Contains(t, withExtra.Vertices(), 99)

	union := static.Union[int](withoutEdges, static.EdgeInducedSubgraph[int](edge.NewStaticDirected[int](1, 3)))
	assert.Equal(t, 3, union.EdgeCount())
}

func TestOccupyEdgesDeterministic(t *testing.T) {
	n := eraseToStatic(dag())
	src := rng.New(42)
	out := static.OccupyEdges[int](n, 1.0, src)
	assert.Equal(t, n.EdgeCount(), out.EdgeCount())

	out2 := static.OccupyEdges[int](n, 0.0, rng.New(42))
	assert.Equal(t, 0, out2.EdgeCount())
}

func TestOccupyVerticesDropsIncidentEdges(t *testing.T) {
	n := eraseToStatic(dag())
	out := static.OccupyVertices[int](n, 0.0, rng.New(1))
	assert.Equal(t, 0, out.EdgeCount())
	assert.Equal(t, 0, out.VertexCount())
}

func TestRelabelNodes(t *testing.T) {
	n := network.NewStatic[int, edge.StaticUndirected[int]]([]edge.StaticUndirected[int]{
		edge.NewStaticUndirected(10, 20),
	})
	erased := make([]edge.Static[int], 0)
	for _, e := range n.Edges() {
		erased = append(erased, e)
	}
	net := network.NewStatic[int, edge.Static[int]](erased, n.Vertices()...)

	relabeled, idx := static.RelabelNodes[int](net)
	assert.Equal(t, []int{0, 1}, relabeled.Vertices())
	assert.Equal(t, 0, idx[10])
	assert.Equal(t, 1, idx[20])
}

func TestCartesianProduct(t *testing.T) {
	g := network.NewStatic[int, edge.Static[int]]([]edge.Static[int]{edge.NewStaticUndirected[int](1, 2)})
	h := network.NewStatic[int, edge.Static[int]]([]edge.Static[int]{edge.NewStaticUndirected[int](1, 2)})
	prod := static.CartesianProduct[int, int](g, h)
	assert.Equal(t, 4, prod.VertexCount())
	assert.True(t, prod.EdgeCount() >= 4)
}
