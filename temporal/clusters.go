package temporal

import (
	"cmp"

	"github.com/katalvlaran/dagnet/cluster"
	"github.com/katalvlaran/dagnet/edge"
	"github.com/katalvlaran/dagnet/eventgraph"
	"github.com/katalvlaran/dagnet/network"
	"github.com/katalvlaran/dagnet/policy"
)

// intrinsicLinger is the linger charged against e's own mass contribution
// (spec.md §3's "mass = Σ(t_e - t_c + linger)"): p.Linger evaluated at e's
// first (canonically sorted) head vertex. Charging a property of e alone,
// rather than of the path that discovered it, makes mass additive under
// plain Counter.Merge — the all-pairs computation in allpairs.go unions a
// successor's already-built cluster wholesale instead of re-deriving each
// member edge's charge relative to every new root that absorbs it.
func intrinsicLinger[V cmp.Ordered, T edge.Number](e edge.Temporal[V, T], p policy.Policy[V, T]) T {
	heads := e.MutatedVerts()
	if len(heads) == 0 {
		var zero T
		return zero
	}
	return p.Linger(e, heads[0])
}

// OutCluster walks forward from seed (spec.md §4.F out_cluster(N,P,e)):
// seed itself plus every event reachable by repeated Successors steps. seed
// need not already belong to n — callers seeding a vertex-time query
// (in_cluster/out_cluster(N,P,v,t)) construct a zero-duration self-loop in
// n's own edge kind and pass that as seed directly.
func OutCluster[V cmp.Ordered, T edge.Number, E edge.Temporal[V, T]](n *network.Network[V, E], p policy.Policy[V, T], seed E) *cluster.Temporal[V, T, E] {
	return walkCluster(n, p, seed, eventgraph.Successors[V, T, E])
}

// InCluster is OutCluster's dual (spec.md §4.F in_cluster(N,P,e)): seed
// itself plus every event reachable by repeated Predecessors steps.
func InCluster[V cmp.Ordered, T edge.Number, E edge.Temporal[V, T]](n *network.Network[V, E], p policy.Policy[V, T], seed E) *cluster.Temporal[V, T, E] {
	return walkCluster(n, p, seed, eventgraph.Predecessors[V, T, E])
}

type stepFunc[V cmp.Ordered, T edge.Number, E edge.Temporal[V, T]] func(*network.Network[V, E], edge.Temporal[V, T], policy.Policy[V, T], bool) []E

func walkCluster[V cmp.Ordered, T edge.Number, E edge.Temporal[V, T]](n *network.Network[V, E], p policy.Policy[V, T], seed E, step stepFunc[V, T, E]) *cluster.Temporal[V, T, E] {
	c := cluster.NewTemporal[V, T, E]()
	c.AddEdge(seed, intrinsicLinger[V, T](seed, p))
	visited := map[string]bool{seed.Key(): true}
	queue := []E{seed}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		for _, nxt := range step(n, cur, p, false) {
			if visited[nxt.Key()] {
				continue
			}
			visited[nxt.Key()] = true
			c.AddEdge(nxt, intrinsicLinger[V, T](nxt, p))
			queue = append(queue, nxt)
		}
	}
	return c
}
