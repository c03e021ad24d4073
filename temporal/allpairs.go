package temporal

import (
	"cmp"

	"github.com/katalvlaran/dagnet/cluster"
	"github.com/katalvlaran/dagnet/edge"
	"github.com/katalvlaran/dagnet/eventgraph"
	"github.com/katalvlaran/dagnet/network"
	"github.com/katalvlaran/dagnet/policy"
)

// OutClusters computes out_cluster(N,P,e) for every event e in one pass
// (spec.md §9: "O(|E|·cluster_size)", "the whole point of the library").
// Every successor b of e has CauseTime(b) > EffectTime(e) >= CauseTime(e),
// so b's own cause time is always strictly greater than e's — processing
// events in descending cause order therefore guarantees every successor's
// cluster is already built by the time e is reached, and e's own cluster is
// just a Merge of the ones already on hand.
func OutClusters[V cmp.Ordered, T edge.Number, E edge.Temporal[V, T]](n *network.Network[V, E], p policy.Policy[V, T]) map[string]*cluster.Temporal[V, T, E] {
	events := n.EdgesCause()
	result := make(map[string]*cluster.Temporal[V, T, E], len(events))
	for i := len(events) - 1; i >= 0; i-- {
		e := events[i]
		c := cluster.NewTemporal[V, T, E]()
		c.AddEdge(e, intrinsicLinger[V, T](e, p))
		for _, b := range eventgraph.Successors[V, T, E](n, e, p, false) {
			if bc, ok := result[b.Key()]; ok {
				c.Merge(bc)
			}
		}
		result[e.Key()] = c
	}
	return result
}

// InClusters is OutClusters's dual: every predecessor a of e satisfies
// EffectTime(a) < CauseTime(e) <= EffectTime(e), so processing in ascending
// effect order guarantees every predecessor's cluster is already built.
func InClusters[V cmp.Ordered, T edge.Number, E edge.Temporal[V, T]](n *network.Network[V, E], p policy.Policy[V, T]) map[string]*cluster.Temporal[V, T, E] {
	events := n.EdgesEffect()
	result := make(map[string]*cluster.Temporal[V, T, E], len(events))
	for _, e := range events {
		c := cluster.NewTemporal[V, T, E]()
		c.AddEdge(e, intrinsicLinger[V, T](e, p))
		for _, a := range eventgraph.Predecessors[V, T, E](n, e, p, false) {
			if ac, ok := result[a.Key()]; ok {
				c.Merge(ac)
			}
		}
		result[e.Key()] = c
	}
	return result
}
