package edge

import (
	"cmp"
	"fmt"
	"slices"
	"strings"
)

// Number is the constraint satisfied by every admissible time type T: a
// totally ordered, subtractable arithmetic type. Integer ticks and
// real-valued seconds both qualify.
type Number interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~float32 | ~float64
}

// Kind tags which of the closed set of concrete edge variants a value is.
// Algorithms that must special-case a variant (package mrrm's rebuilding of
// shuffled edges, for instance) switch on Kind instead of a
// type assertion chain.
type Kind uint8

const (
	KindStaticDirected Kind = iota
	KindStaticUndirected
	KindStaticDirectedHyper
	KindStaticUndirectedHyper
	KindTemporalDirected
	KindTemporalUndirected
	KindTemporalDirectedHyper
	KindTemporalUndirectedHyper
	KindDirectedDelayed
	KindDirectedDelayedHyper
)

// String renders the Kind as the short tag used inside Key().
func (k Kind) String() string {
	switch k {
	case KindStaticDirected:
		return "SD"
	case KindStaticUndirected:
		return "SU"
	case KindStaticDirectedHyper:
		return "SDH"
	case KindStaticUndirectedHyper:
		return "SUH"
	case KindTemporalDirected:
		return "TD"
	case KindTemporalUndirected:
		return "TU"
	case KindTemporalDirectedHyper:
		return "TDH"
	case KindTemporalUndirectedHyper:
		return "TUH"
	case KindDirectedDelayed:
		return "DD"
	case KindDirectedDelayedHyper:
		return "DDH"
	default:
		return "?"
	}
}

// Edge is the capability every concrete edge kind satisfies: incidence
// queries, a Kind tag, content-equality via Key, and OrderKey, the
// canonicalized vertex tuple used to break ties in the cause/effect/static
// total orders.
type Edge[V cmp.Ordered] interface {
	Kind() Kind

	// MutatorVerts returns the tail set: vertices that cause/originate the
	// edge. For undirected edges this coincides with MutatedVerts.
	MutatorVerts() []V

	// MutatedVerts returns the head set: vertices the edge affects.
	MutatedVerts() []V

	// IncidentVerts returns the union of MutatorVerts and MutatedVerts.
	IncidentVerts() []V

	// IsOutIncident reports whether v is a mutator (tail) vertex.
	IsOutIncident(v V) bool

	// IsInIncident reports whether v is a mutated (head) vertex.
	IsInIncident(v V) bool

	// IsIncident reports whether v is incident in either direction.
	IsIncident(v V) bool

	// OrderKey returns the canonicalized vertex tuple for this edge,
	// already sorted the way equality canonicalizes it.
	OrderKey() []V

	// Key is a stable string encoding of this edge's canonical identity:
	// Key(a) == Key(b) iff a and b are content-equal.
	Key() string
}

// Static is the capability of edges with no time component: a total order
// lexicographic on canonicalized vertices.
type Static[V cmp.Ordered] interface {
	Edge[V]
	Less(other Static[V]) bool
}

// Temporal is the capability of time-stamped edges: a cause time, an
// effect time (equal to the cause time unless the edge is also Delayed),
// and the static projection obtained by forgetting time.
type Temporal[V cmp.Ordered, T Number] interface {
	Edge[V]
	CauseTime() T
	EffectTime() T
	StaticProjection() Static[V]
}

// Delayed is the capability of directed temporal edges with a nonnegative
// propagation delay between cause and effect.
type Delayed[V cmp.Ordered, T Number] interface {
	Temporal[V, T]
	Delay() T
}

// sortedUnique returns a sorted copy of vs with duplicates removed.
func sortedUnique[V cmp.Ordered](vs []V) []V {
	out := slices.Clone(vs)
	slices.Sort(out)
	return slices.Compact(out)
}

// unionSorted returns the sorted, deduplicated union of a and b.
func unionSorted[V cmp.Ordered](a, b []V) []V {
	out := make([]V, 0, len(a)+len(b))
	out = append(out, a...)
	out = append(out, b...)
	return sortedUnique(out)
}

// intersects reports whether a and b share at least one element.
func intersects[V cmp.Ordered](a, b []V) bool {
	set := make(map[V]struct{}, len(a))
	for _, v := range a {
		set[v] = struct{}{}
	}
	for _, v := range b {
		if _, ok := set[v]; ok {
			return true
		}
	}
	return false
}

// contains reports whether vs contains v.
func contains[V cmp.Ordered](vs []V, v V) bool {
	for _, x := range vs {
		if x == v {
			return true
		}
	}
	return false
}

// joinVerts renders a sorted vertex slice as a comma-separated token used
// inside Key().
func joinVerts[V cmp.Ordered](vs []V) string {
	parts := make([]string, len(vs))
	for i, v := range vs {
		parts[i] = fmt.Sprintf("%v", v)
	}
	return strings.Join(parts, ",")
}

// compareVertSlices lexicographically compares two equal-meaning vertex
// tuples, used to break ties in Less when times (or their absence) match.
func compareVertSlices[V cmp.Ordered](a, b []V) int {
	for i := 0; i < len(a) && i < len(b); i++ {
		if c := cmp.Compare(a[i], b[i]); c != 0 {
			return c
		}
	}
	return cmp.Compare(len(a), len(b))
}
