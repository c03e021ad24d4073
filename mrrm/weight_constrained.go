package mrrm

import (
	"cmp"

	"github.com/katalvlaran/dagnet/edge"
	"github.com/katalvlaran/dagnet/network"
	"github.com/katalvlaran/dagnet/rng"
)

// WeightConstrainedTimelineShuffling tightens TimelineShuffling: instead of
// redrawing cause times from a continuous uniform distribution, it permutes
// the network's own multiset of observed cause times across events
// (spec.md §4.H). Every (tail, head) pair stays attached to its original
// event, and because the permutation draws from the same value multiset,
// the earliest and latest cause times are preserved exactly. Delays stay
// with their events, so for DirectedDelayed networks the latest effect time,
// and with it the time window, can change.
func WeightConstrainedTimelineShuffling[V cmp.Ordered, T edge.Number, E edge.Temporal[V, T]](n *network.Network[V, E], src rng.Source) (*network.Network[V, E], error) {
	events := n.Edges()
	if len(events) == 0 {
		return nil, ErrInvalidArgument
	}

	causeTimes := make([]T, len(events))
	for i, e := range events {
		causeTimes[i] = e.CauseTime()
	}
	shuffledCauses := shuffled(causeTimes, src)

	out := make([]E, len(events))
	for i, e := range events {
		out[i] = rebuild[V, T, E](e, tailOf[V, T, E](e), headOf[V, T, E](e), shuffledCauses[i], delayOf[V, T, E](e))
	}
	return rebuildNetwork[V, T, E](out, n.Vertices()), nil
}
