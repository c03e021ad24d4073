package network

import (
	"cmp"
	"sort"
)

// Vertices returns the network's vertex set in ascending order: the union
// of every edge's incident vertices and the supplemental vertices supplied
// at construction.
func (n *Network[V, E]) Vertices() []V {
	out := make([]V, len(n.vertices))
	copy(out, n.vertices)
	return out
}

// VertexCount returns len(Vertices()). O(1).
func (n *Network[V, E]) VertexCount() int { return len(n.vertices) }

// EdgeCount returns the number of deduplicated edges. O(1).
func (n *Network[V, E]) EdgeCount() int { return len(n.edgesBy.cause) }

// Edges returns all edges in cause order (spec.md §4.B default view).
func (n *Network[V, E]) Edges() []E { return n.EdgesCause() }

// EdgesCause returns all edges sorted by cause order.
func (n *Network[V, E]) EdgesCause() []E {
	out := make([]E, len(n.edgesBy.cause))
	copy(out, n.edgesBy.cause)
	return out
}

// EdgesEffect returns all edges sorted by effect order.
func (n *Network[V, E]) EdgesEffect() []E {
	out := make([]E, len(n.edgesBy.effect))
	copy(out, n.edgesBy.effect)
	return out
}

// OutEdgesCause returns v's out-incident edges (v in MutatorVerts),
// cause-sorted.
func (n *Network[V, E]) OutEdgesCause(v V) []E { return cloneSlice(n.outCause[v]) }

// InEdgesCause returns v's in-incident edges (v in MutatedVerts),
// cause-sorted.
func (n *Network[V, E]) InEdgesCause(v V) []E { return cloneSlice(n.inCause[v]) }

// OutEdgesEffect returns v's out-incident edges, effect-sorted.
func (n *Network[V, E]) OutEdgesEffect(v V) []E { return cloneSlice(n.outEffect[v]) }

// InEdgesEffect returns v's in-incident edges, effect-sorted.
func (n *Network[V, E]) InEdgesEffect(v V) []E { return cloneSlice(n.inEffect[v]) }

// Successors returns the deduplicated set of vertices reachable by one
// out-incident edge from v (the union of MutatedVerts(e) minus v itself,
// for e ranging over v's out-cause edges). Complexity: O(deg(v)).
func (n *Network[V, E]) Successors(v V) []V {
	return neighbourUnion(n.outCause[v], v)
}

// Predecessors returns the dual of Successors: the union of MutatorVerts(e)
// minus v, for e ranging over v's in-cause edges.
func (n *Network[V, E]) Predecessors(v V) []V {
	seen := make(map[V]struct{})
	for _, e := range n.inCause[v] {
		for _, u := range e.MutatorVerts() {
			if u != v {
				seen[u] = struct{}{}
			}
		}
	}
	return setToSortedSlice(seen)
}

// Neighbours returns Successors(v) ∪ Predecessors(v).
func (n *Network[V, E]) Neighbours(v V) []V {
	seen := make(map[V]struct{})
	for _, u := range n.Successors(v) {
		seen[u] = struct{}{}
	}
	for _, u := range n.Predecessors(v) {
		seen[u] = struct{}{}
	}
	return setToSortedSlice(seen)
}

// OutDegree returns the number of v's out-incident edges.
func (n *Network[V, E]) OutDegree(v V) int { return len(n.outCause[v]) }

// InDegree returns the number of v's in-incident edges.
func (n *Network[V, E]) InDegree(v V) int { return len(n.inCause[v]) }

// Degree returns the total number of edges incident to v. For undirected
// edge kinds (where MutatorVerts == MutatedVerts == the incident set),
// OutDegree, InDegree and Degree all coincide (spec.md testable property 4),
// because every incident edge appears in both outCause[v] and inCause[v].
func (n *Network[V, E]) Degree(v V) int {
	seen := make(map[string]struct{}, len(n.outCause[v])+len(n.inCause[v]))
	for _, e := range n.outCause[v] {
		seen[e.Key()] = struct{}{}
	}
	for _, e := range n.inCause[v] {
		seen[e.Key()] = struct{}{}
	}
	return len(seen)
}

func neighbourUnion[V cmp.Ordered, E interface {
	MutatedVerts() []V
}](edges []E, self V) []V {
	seen := make(map[V]struct{})
	for _, e := range edges {
		for _, u := range e.MutatedVerts() {
			if u != self {
				seen[u] = struct{}{}
			}
		}
	}
	return setToSortedSlice(seen)
}

func setToSortedSlice[V cmp.Ordered](seen map[V]struct{}) []V {
	out := make([]V, 0, len(seen))
	for v := range seen {
		out = append(out, v)
	}
	sortSlice(out)
	return out
}

func sortSlice[V cmp.Ordered](vs []V) {
	sort.Slice(vs, func(i, j int) bool { return cmp.Less(vs[i], vs[j]) })
}

func cloneSlice[E any](es []E) []E {
	out := make([]E, len(es))
	copy(out, es)
	return out
}
