package mrrm

import (
	"cmp"

	"github.com/katalvlaran/dagnet/edge"
	"github.com/katalvlaran/dagnet/network"
	"github.com/katalvlaran/dagnet/rng"
	"github.com/katalvlaran/dagnet/temporal"
)

// TopologyConstrainedLinkShuffling adds to LinkShuffling the constraint that
// every reassigned (tail, head) pair must be an edge of the network's own
// static projection (spec.md §4.H): the per-cause-time head permutation is
// rejection-sampled against that adjacency set for up to cfg.maxAttempts
// tries, falling back to the group's original pairing if none is found
// within the budget. This is a deliberate simplification of an exact
// combinatorial re-matching — with a small attempt budget or a sparse
// projection a group may keep its original pairing rather than find one of
// the (possibly rare) valid permutations.
func TopologyConstrainedLinkShuffling[V cmp.Ordered, T edge.Number, E edge.Temporal[V, T]](n *network.Network[V, E], src rng.Source, opts ...ShuffleOption) (*network.Network[V, E], error) {
	events := n.Edges()
	if len(events) == 0 {
		return nil, ErrInvalidArgument
	}
	cfg := newShuffleConfig(opts...)

	proj := temporal.StaticProjection[V, T, E](n)
	allowed := make(map[string]bool, proj.EdgeCount())
	for _, se := range proj.Edges() {
		a, b := se.MutatorVerts()[0], se.MutatedVerts()[len(se.MutatedVerts())-1]
		allowed[pairKey(a, b)] = true
		if se.Kind() == edge.KindStaticUndirected {
			allowed[pairKey(b, a)] = true
		}
	}

	order, groups := groupByCauseTime[V, T, E](events)
	out := make([]E, 0, len(events))
	for _, k := range order {
		group := groups[k]
		tails := make([]V, len(group))
		original := make([]V, len(group))
		for i, e := range group {
			tails[i] = tailOf[V, T, E](e)
			original[i] = headOf[V, T, E](e)
		}

		heads := original
		for attempt := 0; attempt < cfg.maxAttempts; attempt++ {
			candidate := shuffled(original, src)
			if allPairsAllowed(tails, candidate, allowed) {
				heads = candidate
				break
			}
		}

		for i, e := range group {
			out = append(out, rebuild[V, T, E](e, tails[i], heads[i], e.CauseTime(), delayOf[V, T, E](e)))
		}
	}
	return rebuildNetwork[V, T, E](out, n.Vertices()), nil
}

func allPairsAllowed[V cmp.Ordered](tails, heads []V, allowed map[string]bool) bool {
	for i := range tails {
		if !allowed[pairKey(tails[i], heads[i])] {
			return false
		}
	}
	return true
}
