package eventgraph

import (
	"cmp"
	"sort"

	"github.com/katalvlaran/dagnet/edge"
	"github.com/katalvlaran/dagnet/network"
	"github.com/katalvlaran/dagnet/policy"
)

// Successors returns the events δt-adjacent to e under p (spec.md §4.E):
// for each vertex v in e's head, binary-search n's cause-sorted out-index
// at v for the first event with t_c > t_e(e), then walk forward while
// t_c <= t_e(e) + p.Linger(e, v). Results are deduplicated across shared
// vertices (an event reachable via two different shared vertices appears
// once) and returned in cause order.
//
// If justFirst is true, only the earliest successor per v is kept. Package
// temporal's event-graph materialization and cluster walks pass false and
// use the full successor set.
//
// Complexity: O(Σ_v log deg(v) + window_v) per call; no global state, no
// materialization (spec.md §4.E).
func Successors[V cmp.Ordered, T edge.Number, E edge.Temporal[V, T]](n *network.Network[V, E], e edge.Temporal[V, T], p policy.Policy[V, T], justFirst bool) []E {
	seen := make(map[string]E)
	for _, v := range e.MutatedVerts() {
		candidates := n.OutEdgesCause(v)
		threshold := e.EffectTime()
		start := sort.Search(len(candidates), func(i int) bool {
			return candidates[i].CauseTime() > threshold
		})
		limit := threshold + p.Linger(e, v)
		if limit < threshold {
			limit = policy.Infinity[T]()
		}
		for i := start; i < len(candidates); i++ {
			b := candidates[i]
			if b.CauseTime() > limit {
				break
			}
			if _, ok := seen[b.Key()]; ok {
				if justFirst {
					break
				}
				continue
			}
			seen[b.Key()] = b
			if justFirst {
				break
			}
		}
	}
	return collectByCause[V, T](seen)
}

// Predecessors is the symmetric dual of Successors: for each vertex v in
// e's tail, it walks n's effect-sorted in-index at v backward from the
// last event with t_e < t_c(e), keeping candidate a whenever
// t_c(e) <= t_e(a) + p.Linger(a, v).
//
// When p is Bounded, the backward walk is pre-narrowed with p.MaximumLinger
// via a second binary search, giving the same O(log deg(v) + window)
// bound Successors enjoys. Unbounded policies (simple, exponential,
// geometric) have no universal per-candidate bound, so every causally-prior
// candidate at v is checked individually against its own Linger draw.
func Predecessors[V cmp.Ordered, T edge.Number, E edge.Temporal[V, T]](n *network.Network[V, E], e edge.Temporal[V, T], p policy.Policy[V, T], justFirst bool) []E {
	seen := make(map[string]E)
	for _, v := range e.MutatorVerts() {
		candidates := n.InEdgesEffect(v)
		threshold := e.CauseTime()
		end := sort.Search(len(candidates), func(i int) bool {
			return candidates[i].EffectTime() >= threshold
		})
		start := 0
		if p.Bounded() {
			floor := threshold - p.MaximumLinger()
			start = sort.Search(len(candidates), func(i int) bool {
				return candidates[i].EffectTime() >= floor
			})
		}
		for i := end - 1; i >= start; i-- {
			a := candidates[i]
			reach := a.EffectTime() + p.Linger(a, v)
			if reach >= a.EffectTime() && threshold > reach {
				continue
			}
			if _, ok := seen[a.Key()]; ok {
				continue
			}
			seen[a.Key()] = a
			if justFirst {
				break
			}
		}
	}
	return collectByCause[V, T](seen)
}

func collectByCause[V cmp.Ordered, T edge.Number, E edge.Temporal[V, T]](seen map[string]E) []E {
	out := make([]E, 0, len(seen))
	for _, e := range seen {
		out = append(out, e)
	}
	sort.Slice(out, func(i, j int) bool { return edge.CauseLess[V, T](out[i], out[j]) })
	return out
}
