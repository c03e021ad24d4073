package mrrm

import (
	"cmp"

	"github.com/katalvlaran/dagnet/edge"
	"github.com/katalvlaran/dagnet/network"
	"github.com/katalvlaran/dagnet/rng"
	"github.com/katalvlaran/dagnet/static"
	"github.com/katalvlaran/dagnet/temporal"
)

type connectedGroupKey[T edge.Number] struct {
	t    T
	comp int
}

// ConnectedLinkShuffling adds to LinkShuffling's invariants the partition of
// the static projection into weakly connected components (spec.md §4.H):
// the per-instant head permutation is restricted to heads drawn from events
// whose tail already lies in the same static-projection component, so no
// shuffle can ever merge or split a component.
func ConnectedLinkShuffling[V cmp.Ordered, T edge.Number, E edge.Temporal[V, T]](n *network.Network[V, E], src rng.Source) (*network.Network[V, E], error) {
	events := n.Edges()
	if len(events) == 0 {
		return nil, ErrInvalidArgument
	}

	proj := temporal.StaticProjection[V, T, E](n)
	comps := static.WeaklyConnectedComponents[V, edge.Static[V]](proj)
	compOf := make(map[V]int, proj.VertexCount())
	for idx, comp := range comps {
		for _, v := range comp {
			compOf[v] = idx
		}
	}

	groups := make(map[connectedGroupKey[T]][]E)
	var order []connectedGroupKey[T]
	for _, e := range events {
		k := connectedGroupKey[T]{t: e.CauseTime(), comp: compOf[tailOf[V, T, E](e)]}
		if _, ok := groups[k]; !ok {
			order = append(order, k)
		}
		groups[k] = append(groups[k], e)
	}

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
