package mrrm

import (
	"cmp"

	"github.com/katalvlaran/dagnet/edge"
	"github.com/katalvlaran/dagnet/network"
	"github.com/katalvlaran/dagnet/rng"
)

// InterEventShuffling is ActivityConstrainedTimelineShuffling's looser
// sibling at the top of the hierarchy (spec.md §4.H): every event's (tail,
// head, causeTime) triple is again left untouched, but the delay
// permutation pool is the whole network rather than one static link at a
// time. Since each link's own cause-time set is unchanged regardless, this
// is the axis that actually distinguishes the two levels: a per-link
// constraint on delay reassignment versus a network-wide one.
func InterEventShuffling[V cmp.Ordered, T edge.Number, E edge.Temporal[V, T]](n *network.Network[V, E], src rng.Source) (*network.Network[V, E], error) {
	events := n.Edges()
	if len(events) == 0 {
		return nil, ErrInvalidArgument
	}

	delays := make([]T, len(events))
	for i, e := range events {
		delays[i] = delayOf[V, T, E](e)
	}
	shuffledDelays := shuffled(delays, src)

	out := make([]E, len(events))
	for i, e := range events {
		out[i] = rebuild[V, T, E](e, tailOf[V, T, E](e), headOf[V, T, E](e), e.CauseTime(), shuffledDelays[i])
	}
	return rebuildNetwork[V, T, E](out, n.Vertices()), nil
}
