// File adjacency.go implements the δt-adjacency predicate (spec.md §3) and
// the cause/effect total-order comparators shared by the network and
// eventgraph packages.
package edge

import "cmp"

// Adjacent reports whether a is δt-adjacent to b: b causally follows a
// (t_c(b) > t_e(a)) at some vertex shared between a's head and b's tail.
// This relation is irreflexive and acyclic on any finite temporal edge set
// (spec.md §3, testable property 2).
func Adjacent[V cmp.Ordered, T Number](a, b Temporal[V, T]) bool {
	if !(b.CauseTime() > a.EffectTime()) {
		return false
	}
	return intersects(a.MutatedVerts(), b.MutatorVerts())
}

// AdjacentAt reports whether a is δt-adjacent to b specifically at vertex
// v: v is a mutated (head) vertex of a, a mutator (tail) vertex of b, and b
// causally follows a. Used by temporal adjacency policies, which assign a
// linger time per (edge, vertex) pair rather than per edge pair.
func AdjacentAt[V cmp.Ordered, T Number](a, b Temporal[V, T], v V) bool {
	if !(b.CauseTime() > a.EffectTime()) {
		return false
	}
	return a.IsInIncident(v) && b.IsOutIncident(v)
}

// CauseLess reports whether a sorts before b in cause order: (t_c,
// canonicalized vertices).
func CauseLess[V cmp.Ordered, T Number](a, b Temporal[V, T]) bool {
	if a.CauseTime() != b.CauseTime() {
		return a.CauseTime() < b.CauseTime()
	}
	return compareVertSlices(a.OrderKey(), b.OrderKey()) < 0
}

// EffectLess reports whether a sorts before b in effect order: (t_e,
// canonicalized vertices).
func EffectLess[V cmp.Ordered, T Number](a, b Temporal[V, T]) bool {
	if a.EffectTime() != b.EffectTime() {
		return a.EffectTime() < b.EffectTime()
	}
	return compareVertSlices(a.OrderKey(), b.OrderKey()) < 0
}
