package temporal_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/dagnet/edge"
	"github.com/katalvlaran/dagnet/network"
	"github.com/katalvlaran/dagnet/policy"
	"github.com/katalvlaran/dagnet/static"
	"github.com/katalvlaran/dagnet/temporal"
)

func s1Events() []edge.TemporalDirected[int, int] {
	return []edge.TemporalDirected[int, int]{
		edge.NewTemporalDirected(1, 2, 1),
		edge.NewTemporalDirected(2, 1, 2),
		edge.NewTemporalDirected(1, 2, 5),
		edge.NewTemporalDirected(2, 3, 6),
		edge.NewTemporalDirected(3, 4, 8),
	}
}

func TestEventGraphScenarioS1(t *testing.T) {
	events := s1Events()
	n := network.NewTemporal[int, int, edge.TemporalDirected[int, int]](events)
	p := policy.NewLimitedWaitingTime[int, int](2)

	g := temporal.EventGraph[int, int, edge.TemporalDirected[int, int]](n, p)
	assert.Equal(t, 3, g.EdgeCount())

	want := map[string]bool{
		events[0].Key() + ">" + events[1].Key(): true, // (1,2,1)->(2,1,2)
		events[2].Key() + ">" + events[3].Key(): true, // (1,2,5)->(2,3,6)
		events[3].Key() + ">" + events[4].Key(): true, // (2,3,6)->(3,4,8)
	}
	got := make(map[string]bool, len(g.Edges()))
	for _, a := range g.Edges() {
		got[a.MutatorVerts()[0]+">"+a.MutatedVerts()[0]] = true
	}
	assert.Equal(t, want, got)
}

func TestEventGraphScenarioS2(t *testing.T) {
	events := s1Events()
	n := network.NewTemporal[int, int, edge.TemporalDirected[int, int]](events)
	p := policy.NewLimitedWaitingTime[int, int](5)

	g := temporal.EventGraph[int, int, edge.TemporalDirected[int, int]](n, p)
	assert.Equal(t, 5, g.EdgeCount())
}

// TestEventGraphPassesTopologicalOrder locks in spec.md §8 testable property
// 6: event_graph(N,P) must pass topological_order without error for any
// (N,P), since δt-adjacency is irreflexive and acyclic.
func TestEventGraphPassesTopologicalOrder(t *testing.T) {
	events := s1Events()
	n := network.NewTemporal[int, int, edge.TemporalDirected[int, int]](events)
	p := policy.NewLimitedWaitingTime[int, int](5)

	g := temporal.EventGraph[int, int, edge.TemporalDirected[int, int]](n, p)
	order, err := static.TopologicalOrder[string, edge.Static[string]](g)
	require.NoError(t, err)
	assert.Len(t, order, len(events))
}

func s3Network() *network.Network[int, edge.DirectedDelayed[int, int]] {
	return network.NewTemporal[int, int, edge.DirectedDelayed[int, int]]([]edge.DirectedDelayed[int, int]{
		edge.NewDirectedDelayed(1, 2, 1, 4),
		edge.NewDirectedDelayed(2, 1, 2, 1),
		edge.NewDirectedDelayed(1, 2, 5, 0),
		edge.NewDirectedDelayed(2, 3, 6, 1),
		edge.NewDirectedDelayed(3, 4, 8, 1),
		edge.NewDirectedDelayed(5, 6, 1, 2),
	})
}

func keys(es []edge.DirectedDelayed[int, int]) []string {
	out := make([]string, len(es))
	for i, e := range es {
		out[i] = e.Key()
	}
	return out
}

func TestInClusterScenarioS3(t *testing.T) {
	n := s3Network()
	p := policy.NewLimitedWaitingTime[int, int](2)
	seed := edge.NewDirectedDelayed(2, 3, 6, 1)

	c := temporal.InCluster[int, int, edge.DirectedDelayed[int, int]](n, p, seed)

	want := []edge.DirectedDelayed[int, int]{
		edge.NewDirectedDelayed(2, 1, 2, 1),
		edge.NewDirectedDelayed(2, 3, 6, 1),
		edge.NewDirectedDelayed(1, 2, 5, 0),
		edge.NewDirectedDelayed(1, 2, 1, 4),
	}
	assert.ElementsMatch(t, keys(want), keys(c.Edges()))
}

func TestOutClusterFromVertexTimeScenarioS4(t *testing.T) {
	n := s3Network()
	p := policy.NewLimitedWaitingTime[int, int](2)
	seed := edge.NewDirectedDelayed(1, 1, 3, 0)

	c := temporal.OutCluster[int, int, edge.DirectedDelayed[int, int]](n, p, seed)

	want := []edge.DirectedDelayed[int, int]{
		seed,
		edge.NewDirectedDelayed(1, 2, 5, 0),
		edge.NewDirectedDelayed(2, 3, 6, 1),
		edge.NewDirectedDelayed(3, 4, 8, 1),
	}
	assert.ElementsMatch(t, keys(want), keys(c.Edges()))
}

func TestWeaklyConnectedComponentsScenarioS5(t *testing.T) {
	n := s3Network()
	p := policy.NewLimitedWaitingTime[int, int](2)

	comps := temporal.WeaklyConnectedComponents[int, int, edge.DirectedDelayed[int, int]](n, p)
	assert.Len(t, comps, 2)

	var big, singleton []edge.DirectedDelayed[int, int]
	for _, c := range comps {
		if len(c) == 1 {
			singleton = c
		} else {
			big = c
		}
	}

	want := []edge.DirectedDelayed[int, int]{
		edge.NewDirectedDelayed(1, 2, 1, 4),
		edge.NewDirectedDelayed(2, 1, 2, 1),
		edge.NewDirectedDelayed(1, 2, 5, 0),
		edge.NewDirectedDelayed(2, 3, 6, 1),
		edge.NewDirectedDelayed(3, 4, 8, 1),
	}
	assert.ElementsMatch(t, keys(want), keys(big))
	assert.Equal(t, []string{edge.NewDirectedDelayed(5, 6, 1, 2).Key()}, keys(singleton))
}

func TestStaticProjectionScenarioS6(t *testing.T) {
	n := s3Network()
	proj := temporal.StaticProjection[int, int, edge.DirectedDelayed[int, int]](n)

	want := []edge.StaticDirected[int]{
		edge.NewStaticDirected(1, 2),
		edge.NewStaticDirected(2, 1),
		edge.NewStaticDirected(2, 3),
		edge.NewStaticDirected(3, 4),
		edge.NewStaticDirected(5, 6),
	}
	wantKeys := make([]string, len(want))
	for i, e := range want {
		wantKeys[i] = e.Key()
	}
	gotKeys := make([]string, 0, proj.EdgeCount())
	for _, e := range proj.Edges() {
		gotKeys = append(gotKeys, e.Key())
	}
	assert.ElementsMatch(t, wantKeys, gotKeys)
}

func TestLinkTimelines(t *testing.T) {
	n := s3Network()
	timelines := temporal.LinkTimelines[int, int, edge.DirectedDelayed[int, int]](n)

	onePointTwo := edge.NewStaticDirected(1, 2).Key()
	assert.Len(t, timelines[onePointTwo], 2)
	assert.Equal(t, 1, timelines[onePointTwo][0].CauseTime())
	assert.Equal(t, 5, timelines[onePointTwo][1].CauseTime())
}

func TestOutClusterSketchEstimatesCardinality(t *testing.T) {
	n := s3Network()
	p := policy.NewLimitedWaitingTime[int, int](2)
	seed := edge.NewDirectedDelayed(1, 1, 3, 0)

	sketch := temporal.OutClusterSketch[int, int, edge.DirectedDelayed[int, int]](n, p, seed)
	assert.InDelta(t, 4, sketch.EdgeCardinality(), 1)
}

func TestOutClustersAllPairsAgreeWithSingle(t *testing.T) {
	n := s3Network()
	p := policy.NewLimitedWaitingTime[int, int](2)
	seed := edge.NewDirectedDelayed(2, 3, 6, 1)

	all := temporal.OutClusters[int, int, edge.DirectedDelayed[int, int]](n, p)
	single := temporal.OutCluster[int, int, edge.DirectedDelayed[int, int]](n, p, seed)

	assert.ElementsMatch(t, keys(single.Edges()), keys(all[seed.Key()].Edges()))
}

func TestIsReachableEarlyExit(t *testing.T) {
	n := s3Network()
	p := policy.NewLimitedWaitingTime[int, int](2)
	seed := edge.NewDirectedDelayed(1, 1, 3, 0)

	assert.True(t, temporal.IsReachable[int, int, edge.DirectedDelayed[int, int]](n, p, seed, 3, 8))
	assert.False(t, temporal.IsReachable[int, int, edge.DirectedDelayed[int, int]](n, p, seed, 6, 1))
}
