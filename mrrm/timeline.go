package mrrm

import (
	"cmp"

	"github.com/katalvlaran/dagnet/edge"
	"github.com/katalvlaran/dagnet/network"
	"github.com/katalvlaran/dagnet/rng"
)

// TimelineShuffling keeps every event's (tail, head) pair exactly as
// observed — trivially preserving the static projection and the per-link
// event count — and redraws each event's cause time independently and
// uniformly within the network's own [lo, hi] time window (spec.md §4.H).
// Delay, where the edge kind carries one, travels with its event unchanged.
func TimelineShuffling[V cmp.Ordered, T edge.Number, E edge.Temporal[V, T]](n *network.Network[V, E], src rng.Source) (*network.Network[V, E], error) {
	events := n.Edges()
	if len(events) == 0 {
		return nil, ErrInvalidArgument
	}
	lo, hi, err := network.TimeWindow[V, T, E](n)
	if err != nil {
		return nil, err
	}

	out := make([]E, len(events))
	for i, e := range events {
		cause := uniform(lo, hi, src)
		out[i] = rebuild[V, T, E](e, tailOf[V, T, E](e), headOf[V, T, E](e), cause, delayOf[V, T, E](e))
	}
	return rebuildNetwork[V, T, E](out, n.Vertices()), nil
}

// uniform draws a value in [lo, hi] via a float64 uniform sample; lo == hi
// returns lo without consuming src.
func uniform[T edge.Number](lo, hi T, src rng.Source) T {
	if lo >= hi {
		return lo
	}
	span := float64(hi) - float64(lo)
	return lo + T(src.Float64()*span)
}
