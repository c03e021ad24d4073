package mrrm_test

import (
	"fmt"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/dagnet/edge"
	"github.com/katalvlaran/dagnet/mrrm"
	"github.com/katalvlaran/dagnet/network"
	"github.com/katalvlaran/dagnet/rng"
	"github.com/katalvlaran/dagnet/static"
	"github.com/katalvlaran/dagnet/temporal"
)

func sampleNetwork() *network.Network[int, edge.DirectedDelayed[int, int]] {
	return network.NewTemporal[int, int, edge.DirectedDelayed[int, int]]([]edge.DirectedDelayed[int, int]{
		edge.NewDirectedDelayed(1, 2, 1, 4),
		edge.NewDirectedDelayed(2, 1, 2, 1),
		edge.NewDirectedDelayed(1, 2, 5, 0),
		edge.NewDirectedDelayed(2, 3, 6, 1),
		edge.NewDirectedDelayed(3, 4, 8, 1),
		edge.NewDirectedDelayed(2, 3, 8, 0),
	})
}

func sortedInts(vs []int) []int {
	out := append([]int(nil), vs...)
	sort.Ints(out)
	return out
}

// pairMultiset lists every event's (tail, head) pair, sorted, so two
// networks can be compared regardless of how their events are ordered.
func pairMultiset(es []edge.DirectedDelayed[int, int]) []string {
	out := make([]string, len(es))
	for i, e := range es {
		out[i] = fmt.Sprintf("%d>%d", e.MutatorVerts()[0], e.MutatedVerts()[0])
	}
	sort.Strings(out)
	return out
}

func causeTimeMultiset(es []edge.DirectedDelayed[int, int]) []int {
	out := make([]int, len(es))
	for i, e := range es {
		out[i] = e.CauseTime()
	}
	return sortedInts(out)
}

func TestInstantEventShufflingPreservesVerticesAndTimestamps(t *testing.T) {
	n := sampleNetwork()
	src := rng.New(42)

	out, err := mrrm.InstantEventShuffling[int, int, edge.DirectedDelayed[int, int]](n, src)
	require.NoError(t, err)

	assert.Equal(t, sortedInts(n.Vertices()), sortedInts(out.Vertices()))
	assert.Equal(t, causeTimeMultiset(n.Edges()), causeTimeMultiset(out.Edges()))
}

func degreeByTime(es []edge.DirectedDelayed[int, int]) map[int]int {
	out := make(map[int]int)
	for _, e := range es {
		out[e.CauseTime()]++
	}
	return out
}

func TestLinkShufflingPreservesPerInstantDegree(t *testing.T) {
	n := sampleNetwork()
	src := rng.New(7)

	out, err := mrrm.LinkShuffling[int, int, edge.DirectedDelayed[int, int]](n, src)
	require.NoError(t, err)

	assert.Equal(t, degreeByTime(n.Edges()), degreeByTime(out.Edges()))
	assert.Equal(t, causeTimeMultiset(n.Edges()), causeTimeMultiset(out.Edges()))
}

func componentPartition(n *network.Network[int, edge.DirectedDelayed[int, int]]) [][]int {
	proj := temporal.StaticProjection[int, int, edge.DirectedDelayed[int, int]](n)
	comps := static.WeaklyConnectedComponents[int, edge.Static[int]](proj)
	out := make([][]int, len(comps))
	for i, c := range comps {
		out[i] = sortedInts(c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i][0] < out[j][0] })
	return out
}

func TestConnectedLinkShufflingPreservesComponentPartition(t *testing.T) {
	n := sampleNetwork()
	src := rng.New(11)

	out, err := mrrm.ConnectedLinkShuffling[int, int, edge.DirectedDelayed[int, int]](n, src)
	require.NoError(t, err)

	assert.Equal(t, componentPartition(n), componentPartition(out))
}

func TestTopologyConstrainedLinkShufflingRespectsAdjacency(t *testing.T) {
	n := sampleNetwork()
	src := rng.New(3)
	proj := temporal.StaticProjection[int, int, edge.DirectedDelayed[int, int]](n)
	allowed := make(map[string]bool)
	for _, se := range proj.Edges() {
		for _, a := range se.MutatorVerts() {
			for _, b := range se.MutatedVerts() {
				allowed[fmt.Sprintf("%d>%d", a, b)] = true
				allowed[fmt.Sprintf("%d>%d", b, a)] = true
			}
		}
	}

	out, err := mrrm.TopologyConstrainedLinkShuffling[int, int, edge.DirectedDelayed[int, int]](n, src, mrrm.WithMaxAttempts(50))
	require.NoError(t, err)

	for _, e := range out.Edges() {
		tail, head := e.MutatorVerts()[0], e.MutatedVerts()[0]
		key := fmt.Sprintf("%d>%d", tail, head)
		assert.True(t, allowed[key], "pair %d>%d not in static projection", tail, head)
	}
}

func TestTimelineShufflingStaysWithinWindow(t *testing.T) {
	n := sampleNetwork()
	src := rng.New(99)
	lo, hi, err := network.TimeWindow[int, int, edge.DirectedDelayed[int, int]](n)
	require.NoError(t, err)

	out, err := mrrm.TimelineShuffling[int, int, edge.DirectedDelayed[int, int]](n, src)
	require.NoError(t, err)

	for _, e := range out.Edges() {
		assert.GreaterOrEqual(t, e.CauseTime(), lo)
		assert.LessOrEqual(t, e.CauseTime(), hi)
	}
	// Redrawn cause times reorder the events, so pairs are compared as a
	// multiset rather than position by position.
	assert.Len(t, out.Edges(), len(n.Edges()))
	assert.Equal(t, pairMultiset(n.Edges()), pairMultiset(out.Edges()))
}

func TestWeightConstrainedTimelineShufflingPreservesTimeMultiset(t *testing.T) {
	n := sampleNetwork()
	src := rng.New(13)

	out, err := mrrm.WeightConstrainedTimelineShuffling[int, int, edge.DirectedDelayed[int, int]](n, src)
	require.NoError(t, err)

	assert.Equal(t, causeTimeMultiset(n.Edges()), causeTimeMultiset(out.Edges()))
	// Permuted cause times reorder the events, so pairs are compared as a
	// multiset rather than position by position.
	assert.Len(t, out.Edges(), len(n.Edges()))
	assert.Equal(t, pairMultiset(n.Edges()), pairMultiset(out.Edges()))
}

func delaysByLink(es []edge.DirectedDelayed[int, int]) map[string][]int {
	out := make(map[string][]int)
	for _, e := range es {
		key := e.StaticProjection().Key()
		out[key] = append(out[key], e.Delay())
	}
	for k := range out {
		out[k] = sortedInts(out[k])
	}
	return out
}

func TestActivityConstrainedTimelineShufflingPreservesPerLinkDelays(t *testing.T) {
	n := sampleNetwork()
	src := rng.New(5)

	out, err := mrrm.ActivityConstrainedTimelineShuffling[int, int, edge.DirectedDelayed[int, int]](n, src)
	require.NoError(t, err)

	assert.Equal(t, delaysByLink(n.Edges()), delaysByLink(out.Edges()))
	for i, e := range out.Edges() {
		assert.Equal(t, n.Edges()[i].MutatorVerts(), e.MutatorVerts())
		assert.Equal(t, n.Edges()[i].MutatedVerts(), e.MutatedVerts())
		assert.Equal(t, n.Edges()[i].CauseTime(), e.CauseTime())
	}
}

func allDelays(es []edge.DirectedDelayed[int, int]) []int {
	out := make([]int, len(es))
	for i, e := range es {
		out[i] = e.Delay()
	}
	return sortedInts(out)
}

func TestInterEventShufflingPreservesGlobalDelayMultiset(t *testing.T) {
	n := sampleNetwork()
	src := rng.New(21)

	out, err := mrrm.InterEventShuffling[int, int, edge.DirectedDelayed[int, int]](n, src)
	require.NoError(t, err)

	assert.Equal(t, allDelays(n.Edges()), allDelays(out.Edges()))
	for i, e := range out.Edges() {
		assert.Equal(t, n.Edges()[i].MutatorVerts(), e.MutatorVerts())
		assert.Equal(t, n.Edges()[i].MutatedVerts(), e.MutatedVerts())
		assert.Equal(t, n.Edges()[i].CauseTime(), e.CauseTime())
	}
}

func TestEmptyNetworkRejectedByEveryShuffle(t *testing.T) {
	empty := network.NewTemporal[int, int, edge.DirectedDelayed[int, int]](nil)
	src := rng.New(1)

	_, err := mrrm.InstantEventShuffling[int, int, edge.DirectedDelayed[int, int]](empty, src)
	assert.ErrorIs(t, err, mrrm.ErrInvalidArgument)
	_, err = mrrm.LinkShuffling[int, int, edge.DirectedDelayed[int, int]](empty, src)
	assert.ErrorIs(t, err, mrrm.ErrInvalidArgument)
	_, err = mrrm.TimelineShuffling[int, int, edge.DirectedDelayed[int, int]](empty, src)
	assert.ErrorIs(t, err, mrrm.ErrInvalidArgument)
}
