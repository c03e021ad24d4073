package temporal

import (
	"cmp"

	"github.com/katalvlaran/dagnet/edge"
	"github.com/katalvlaran/dagnet/eventgraph"
	"github.com/katalvlaran/dagnet/network"
	"github.com/katalvlaran/dagnet/policy"
)

// IsReachable reports whether (v, t) lies in out_cluster(N, P, seed): an
// event-graph BFS forward from seed that stops as soon as some visited
// event's coverage at v contains t, rather than materializing the whole
// cluster first (spec.md §4.F's is_reachable(N,P,u,t1,v,t2), expressed with
// seed as the caller-built (u,t1) self-loop).
func IsReachable[V cmp.Ordered, T edge.Number, E edge.Temporal[V, T]](n *network.Network[V, E], p policy.Policy[V, T], seed E, v V, t T) bool {
	if coversAt[V, T](seed, p, v, t) {
		return true
	}
	visited := map[string]bool{seed.Key(): true}
	queue := []E{seed}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		for _, nxt := range eventgraph.Successors[V, T, E](n, cur, p, false) {
			if visited[nxt.Key()] {
				continue
			}
			visited[nxt.Key()] = true
			if coversAt[V, T](nxt, p, v, t) {
				return true
			}
			queue = append(queue, nxt)
		}
	}
	return false
}

func coversAt[V cmp.Ordered, T edge.Number](e edge.Temporal[V, T], p policy.Policy[V, T], v V, t T) bool {
	if !e.IsIncident(v) {
		return false
	}
	lo, hi := e.CauseTime(), e.EffectTime()+intrinsicLinger[V, T](e, p)
	return lo <= t && t <= hi
}
