package edge_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/dagnet/edge"
)

// TestUndirectedCanonicalization locks in spec.md property 1: undirected
// edges canonicalize endpoint order so that (u,v) == (v,u).
func TestUndirectedCanonicalization(t *testing.T) {
	a := edge.NewStaticUndirected("b", "a")
	b := edge.NewStaticUndirected("a", "b")
	assert.Equal(t, a.Key(), b.Key())

	ta := edge.NewTemporalUndirected("y", "x", 5)
	tb := edge.NewTemporalUndirected("x", "y", 5)
	assert.Equal(t, ta.Key(), tb.Key())
}

// TestHyperedgeMemberCanonicalization locks in the hyperedge half of
// property 1: member order never affects identity.
func TestHyperedgeMemberCanonicalization(t *testing.T) {
	a := edge.NewStaticUndirectedHyper([]string{"c", "a", "b"})
	b := edge.NewStaticUndirectedHyper([]string{"a", "b", "c"})
	assert.Equal(t, a.Key(), b.Key())

	d1 := edge.NewStaticDirectedHyper([]string{"y", "x"}, []string{"q", "p"})
	d2 := edge.NewStaticDirectedHyper([]string{"x", "y"}, []string{"p", "q"})
	assert.Equal(t, d1.Key(), d2.Key())
}

// TestAdjacencyAntisymmetry locks in spec.md testable property 2: if a is
// δt-adjacent to b, b cannot also be δt-adjacent to a.
func TestAdjacencyAntisymmetry(t *testing.T) {
	a := edge.NewTemporalDirected(1, 2, 1)
	b := edge.NewTemporalDirected(2, 1, 2)
	assert.True(t, edge.Adjacent[int, int](a, b))
	assert.False(t, edge.Adjacent[int, int](b, a))
}

// TestAdjacencyIrreflexive checks that an edge is never adjacent to itself.
func TestAdjacencyIrreflexive(t *testing.T) {
	a := edge.NewTemporalDirected(1, 2, 1)
	assert.False(t, edge.Adjacent[int, int](a, a))
}

// TestDelayedEffectTime checks that effect time is cause time plus delay,
// and that a zero-delay delayed edge behaves like a plain temporal edge.
func TestDelayedEffectTime(t *testing.T) {
	d := edge.NewDirectedDelayed(1, 2, 5, 3)
	assert.Equal(t, 5, d.CauseTime())
	assert.Equal(t, 8, d.EffectTime())

	zero := edge.NewDirectedDelayed(1, 2, 5, 0)
	assert.Equal(t, zero.CauseTime(), zero.EffectTime())
}

// TestStaticProjectionDropsTime checks that the static projection of a
// temporal edge discards the time component but keeps endpoints/direction.
func TestStaticProjectionDropsTime(t *testing.T) {
	te := edge.NewTemporalDirected("a", "b", 10)
	sp := te.StaticProjection().(edge.StaticDirected[string])
	assert.Equal(t, "a", sp.Tail())
	assert.Equal(t, "b", sp.Head())

	de := edge.NewDirectedDelayed("a", "b", 10, 4)
	dsp := de.StaticProjection().(edge.StaticDirected[string])
	assert.Equal(t, sp.Key(), dsp.Key())
}

// TestCauseAndEffectOrderDiffer checks that cause and effect order disagree
// for delayed edges whose delays overlap.
func TestCauseAndEffectOrderDiffer(t *testing.T) {
	a := edge.NewDirectedDelayed(1, 2, 1, 5) // effect time 6
	b := edge.NewDirectedDelayed(2, 3, 2, 1) // effect time 3

	assert.True(t, edge.CauseLess[int, int](a, b))  // 1 < 2
	assert.False(t, edge.EffectLess[int, int](a, b)) // 6 > 3
}

// TestIncidenceQueries exercises IsOutIncident/IsInIncident/IsIncident
// across dyadic and hyper kinds.
func TestIncidenceQueries(t *testing.T) {
	d := edge.NewStaticDirected(1, 2)
	assert.True(t, d.IsOutIncident(1))
	assert.True(t, d.IsInIncident(2))
	assert.False(t, d.IsInIncident(1))
	assert.True(t, d.IsIncident(2))
	assert.False(t, d.IsIncident(3))

	h := edge.NewStaticDirectedHyper([]int{1, 2}, []int{3, 4})
	assert.True(t, h.IsOutIncident(2))
	assert.True(t, h.IsInIncident(4))
	assert.False(t, h.IsOutIncident(4))
}
