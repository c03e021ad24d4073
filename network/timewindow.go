package network

import (
	"cmp"

	"github.com/katalvlaran/dagnet/edge"
)

// TimeWindow returns (min cause time, max effect time) over every edge in a
// temporal network. It returns ErrInvalidArgument if n has no edges
// (spec.md §7: "time_window of an empty temporal network").
func TimeWindow[V cmp.Ordered, T edge.Number, E edge.Temporal[V, T]](n *Network[V, E]) (lo, hi T, err error) {
	edges := n.edgesBy.cause
	if len(edges) == 0 {
		return lo, hi, ErrInvalidArgument
	}
	lo, hi = edges[0].CauseTime(), edges[0].EffectTime()
	for _, e := range edges[1:] {
		if e.CauseTime() < lo {
			lo = e.CauseTime()
		}
		if e.EffectTime() > hi {
			hi = e.EffectTime()
		}
	}
	return lo, hi, nil
}
