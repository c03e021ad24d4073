package network_test

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/dagnet/edge"
	"github.com/katalvlaran/dagnet/network"
)

func sampleEdges() []edge.TemporalDirected[int, int] {
	return []edge.TemporalDirected[int, int]{
		edge.NewTemporalDirected(1, 2, 1),
		edge.NewTemporalDirected(2, 1, 2),
		edge.NewTemporalDirected(1, 2, 5),
		edge.NewTemporalDirected(2, 3, 6),
		edge.NewTemporalDirected(3, 4, 8),
	}
}

// TestNetworkIdempotence locks in spec.md testable property 3: building
// from E and from E ∪ E yields equal networks.
func TestNetworkIdempotence(t *testing.T) {
	es := sampleEdges()
	doubled := append(append([]edge.TemporalDirected[int, int]{}, es...), es...)

	n1 := network.NewTemporal[int, int](es)
	n2 := network.NewTemporal[int, int](doubled)

	require.Equal(t, n1.EdgeCount(), n2.EdgeCount())
	assert.Equal(t, keysOf(n1.Edges()), keysOf(n2.Edges()))
	assert.Equal(t, n1.Vertices(), n2.Vertices())
}

// TestDegreeIdentityUndirected locks in property 4: for undirected
// networks, in/out/total degree coincide for every vertex.
func TestDegreeIdentityUndirected(t *testing.T) {
	es := []edge.TemporalUndirected[int, int]{
		edge.NewTemporalUndirected(1, 2, 1),
		edge.NewTemporalUndirected(2, 3, 2),
		edge.NewTemporalUndirected(1, 3, 3),
	}
	n := network.NewTemporal[int, int](es)
	for _, v := range n.Vertices() {
		assert.Equal(t, n.InDegree(v), n.OutDegree(v), "vertex %d", v)
		assert.Equal(t, n.InDegree(v), n.Degree(v), "vertex %d", v)
	}
}

// TestAdjacencySortedness locks in property 5: per-vertex adjacency lists
// are sorted by the documented key.
func TestAdjacencySortedness(t *testing.T) {
	es := sampleEdges()
	n := network.NewTemporal[int, int](es)
	for _, v := range n.Vertices() {
		outC := n.OutEdgesCause(v)
		assert.True(t, sort.SliceIsSorted(outC, func(i, j int) bool {
			return edge.CauseLess[int, int](outC[i], outC[j])
		}))
		outE := n.OutEdgesEffect(v)
		assert.True(t, sort.SliceIsSorted(outE, func(i, j int) bool {
			return edge.EffectLess[int, int](outE[i], outE[j])
		}))
	}
}

// TestSuccessorsPredecessorsNeighbours exercises the adjacency queries on
// a small hand-checked network.
func TestSuccessorsPredecessorsNeighbours(t *testing.T) {
	n := network.NewTemporal[int, int](sampleEdges())
	assert.ElementsMatch(t, []int{2}, n.Successors(1))
	assert.ElementsMatch(t, []int{2}, n.Predecessors(1))
	assert.ElementsMatch(t, []int{2}, n.Neighbours(1))
}

// TestTimeWindow checks the lo/hi bound and the empty-network error.
func TestTimeWindow(t *testing.T) {
	n := network.NewTemporal[int, int](sampleEdges())
	lo, hi, err := network.TimeWindow[int, int](n)
	require.NoError(t, err)
	assert.Equal(t, 1, lo)
	assert.Equal(t, 8, hi)

	empty := network.NewTemporal[int, int, edge.TemporalDirected[int, int]](nil)
	_, _, err = network.TimeWindow[int, int](empty)
	assert.ErrorIs(t, err, network.ErrInvalidArgument)
}

func keysOf(es []edge.TemporalDirected[int, int]) []string {
	out := make([]string, len(es))
	for i, e := range es {
		out[i] = e.Key()
	}
	return out
}
