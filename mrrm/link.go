package mrrm

import (
	"cmp"

	"github.com/katalvlaran/dagnet/edge"
	"github.com/katalvlaran/dagnet/network"
	"github.com/katalvlaran/dagnet/rng"
)

// groupByCauseTime buckets events by exact cause time, preserving first-seen
// bucket order so downstream output is deterministic given a deterministic
// event order (Network.Edges() is already cause-sorted).
func groupByCauseTime[V cmp.Ordered, T edge.Number, E edge.Temporal[V, T]](events []E) (order []T, groups map[T][]E) {
	groups = make(map[T][]E)
	for _, e := range events {
		k := e.CauseTime()
		if _, ok := groups[k]; !ok {
			order = append(order, k)
		}
		groups[k] = append(groups[k], e)
	}
	return order, groups
}

// LinkShuffling preserves the vertex set, the timestamp multiset (it never
// touches cause times) and the per-instant degree sequence (spec.md §4.H):
// within each exact-cause-time group, the group's own head vertices are
// permuted among its own tail vertices, so the multiset of tails and the
// multiset of heads active at that instant are each preserved, but which
// tail pairs with which head is randomized. A resulting self-pair is swapped
// with its neighbor in the permutation when the group has more than one
// event.
func LinkShuffling[V cmp.Ordered, T edge.Number, E edge.Temporal[V, T]](n *network.Network[V, E], src rng.Source) (*network.Network[V, E], error) {
	events := n.Edges()
	if len(events) == 0 {
		return nil, ErrInvalidArgument
	}
	order, groups := groupByCauseTime[V, T, E](events)

	out := make([]E, 0, len(events))
	for _, k := range order {
		group := groups[k]
		heads := make([]V, len(group))
		for i, e := range group {
			heads[i] = headOf[V, T, E](e)
		}
		shuffledHeads := shuffled(heads, src)
		avoidSelfPairs(group, shuffledHeads)

		for i, e := range group {
			out = append(out, rebuild[V, T, E](e, tailOf[V, T, E](e), shuffledHeads[i], e.CauseTime(), delayOf[V, T, E](e)))
		}
	}
	return rebuildNetwork[V, T, E](out, n.Vertices()), nil
}

// avoidSelfPairs swaps a permuted head with its neighbor whenever it landed
// on its own tail, a cheap local repair rather than full rejection sampling.
func avoidSelfPairs[V cmp.Ordered, T edge.Number, E edge.Temporal[V, T]](group []E, heads []V) {
	if len(heads) < 2 {
		return
	}
	for i, e := range group {
		if heads[i] == tailOf[V, T, E](e) {
			j := (i + 1) % len(heads)
			heads[i], heads[j] = heads[j], heads[i]
		}
	}
}
