package mrrm

import (
	"cmp"

	"github.com/katalvlaran/dagnet/edge"
	"github.com/katalvlaran/dagnet/network"
	"github.com/katalvlaran/dagnet/rng"
)

// ActivityConstrainedTimelineShuffling keeps every event's (tail, head,
// causeTime) triple exactly as observed — so the static edge, the per-link
// event count, and each link's first/last event time are all preserved
// trivially — and permutes only delay values, per static link (spec.md
// §4.H). For a temporal edge kind with no delay capability this is a no-op.
func ActivityConstrainedTimelineShuffling[V cmp.Ordered, T edge.Number, E edge.Temporal[V, T]](n *network.Network[V, E], src rng.Source) (*network.Network[V, E], error) {
	events := n.Edges()
	if len(events) == 0 {
		return nil, ErrInvalidArgument
	}

	linkOf := make(map[string]string, len(events))
	order, groups := groupByStaticLink[V, T, E](events, linkOf)

	out := make([]E, len(events))
	for _, key := range order {
		idxs := groups[key]
		delays := make([]T, len(idxs))
		for i, idx := range idxs {
			delays[i] = delayOf[V, T, E](events[idx])
		}
		shuffledDelays := shuffled(delays, src)
		for i, idx := range idxs {
			e := events[idx]
			out[idx] = rebuild[V, T, E](e, tailOf[V, T, E](e), headOf[V, T, E](e), e.CauseTime(), shuffledDelays[i])
		}
	}
	return rebuildNetwork[V, T, E](out, n.Vertices()), nil
}

// groupByStaticLink buckets event indices by their static (tail, head)
// projection key, preserving first-seen bucket order.
func groupByStaticLink[V cmp.Ordered, T edge.Number, E edge.Temporal[V, T]](events []E, linkOf map[string]string) (order []string, groups map[string][]int) {
	groups = make(map[string][]int)
	for i, e := range events {
		key := pairKey(tailOf[V, T, E](e), headOf[V, T, E](e))
		linkOf[e.Key()] = key
		if _, ok := groups[key]; !ok {
			order = append(order, key)
		}
		groups[key] = append(groups[key], i)
	}
	return order, groups
}
