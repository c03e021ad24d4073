package mrrm

import (
	"cmp"

	"github.com/katalvlaran/dagnet/edge"
	"github.com/katalvlaran/dagnet/network"
	"github.com/katalvlaran/dagnet/rng"
)

// InstantEventShuffling is the least constrained shuffle in the hierarchy
// (spec.md §4.H): it preserves only the vertex set and the multiset of
// (causeTime, delay) pairs actually observed. Each event's endpoints are
// redrawn independently and uniformly from the vertex set (rejecting a
// self-pair when more than one vertex exists), while its own
// (causeTime, delay) pair travels with it unchanged — so the timestamp
// multiset is preserved trivially and everything else is randomized.
func InstantEventShuffling[V cmp.Ordered, T edge.Number, E edge.Temporal[V, T]](n *network.Network[V, E], src rng.Source) (*network.Network[V, E], error) {
	events := n.Edges()
	if len(events) == 0 {
		return nil, ErrInvalidArgument
	}
	verts := n.Vertices()

	out := make([]E, len(events))
	for i, e := range events {
		var tail, head V
		for {
			tail = verts[src.Intn(len(verts))]
			head = verts[src.Intn(len(verts))]
			if tail != head || len(verts) == 1 {
				break
			}
		}
		out[i] = rebuild[V, T, E](e, tail, head, e.CauseTime(), delayOf[V, T, E](e))
	}
	return rebuildNetwork[V, T, E](out, verts), nil
}
