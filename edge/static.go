package edge

import (
	"cmp"
	"fmt"
)

// StaticDirected is a time-agnostic dyadic directed edge: tail -> head.
type StaticDirected[V cmp.Ordered] struct {
	tail, head V
}

// NewStaticDirected builds a directed static edge tail -> head.
func NewStaticDirected[V cmp.Ordered](tail, head V) StaticDirected[V] {
	return StaticDirected[V]{tail: tail, head: head}
}

func (e StaticDirected[V]) Kind() Kind             { return KindStaticDirected }
func (e StaticDirected[V]) MutatorVerts() []V      { return []V{e.tail} }
func (e StaticDirected[V]) MutatedVerts() []V      { return []V{e.head} }
func (e StaticDirected[V]) IncidentVerts() []V     { return unionSorted([]V{e.tail}, []V{e.head}) }
func (e StaticDirected[V]) IsOutIncident(v V) bool { return e.tail == v }
func (e StaticDirected[V]) IsInIncident(v V) bool  { return e.head == v }
func (e StaticDirected[V]) IsIncident(v V) bool    { return e.tail == v || e.head == v }
func (e StaticDirected[V]) OrderKey() []V          { return []V{e.tail, e.head} }
func (e StaticDirected[V]) Tail() V                { return e.tail }
func (e StaticDirected[V]) Head() V                { return e.head }

func (e StaticDirected[V]) Key() string {
	return fmt.Sprintf("%s:%v>%v", KindStaticDirected, e.tail, e.head)
}

func (e StaticDirected[V]) Less(other Static[V]) bool {
	o, ok := other.(StaticDirected[V])
	if !ok {
		return e.Kind() < other.Kind()
	}
	return compareVertSlices(e.OrderKey(), o.OrderKey()) < 0
}

// StaticUndirected is a time-agnostic dyadic undirected edge; endpoints are
// canonicalized at construction so that (u,v) == (v,u).
type StaticUndirected[V cmp.Ordered] struct {
	lo, hi V
}

// NewStaticUndirected builds an undirected static edge between u and v.
func NewStaticUndirected[V cmp.Ordered](u, v V) StaticUndirected[V] {
	if cmp.Less(v, u) {
		u, v = v, u
	}
	return StaticUndirected[V]{lo: u, hi: v}
}

func (e StaticUndirected[V]) Kind() Kind         { return KindStaticUndirected }
func (e StaticUndirected[V]) MutatorVerts() []V  { return []V{e.lo, e.hi} }
func (e StaticUndirected[V]) MutatedVerts() []V  { return []V{e.lo, e.hi} }
func (e StaticUndirected[V]) IncidentVerts() []V { return []V{e.lo, e.hi} }
func (e StaticUndirected[V]) IsOutIncident(v V) bool {
	return e.lo == v || e.hi == v
}
func (e StaticUndirected[V]) IsInIncident(v V) bool { return e.IsOutIncident(v) }
func (e StaticUndirected[V]) IsIncident(v V) bool   { return e.IsOutIncident(v) }
func (e StaticUndirected[V]) OrderKey() []V         { return []V{e.lo, e.hi} }
func (e StaticUndirected[V]) Endpoints() (V, V)     { return e.lo, e.hi }

func (e StaticUndirected[V]) Key() string {
	return fmt.Sprintf("%s:%v,%v", KindStaticUndirected, e.lo, e.hi)
}

func (e StaticUndirected[V]) Less(other Static[V]) bool {
	o, ok := other.(StaticUndirected[V])
	if !ok {
		return e.Kind() < other.Kind()
	}
	return compareVertSlices(e.OrderKey(), o.OrderKey()) < 0
}

// StaticDirectedHyper is a time-agnostic hyperedge with a tail set and a
// head set, each of arbitrary (nonempty) cardinality; member order is
// canonicalized (sorted) at construction.
type StaticDirectedHyper[V cmp.Ordered] struct {
	tails, heads []V
}

// NewStaticDirectedHyper builds a directed hyperedge tails -> heads.
func NewStaticDirectedHyper[V cmp.Ordered](tails, heads []V) StaticDirectedHyper[V] {
	return StaticDirectedHyper[V]{tails: sortedUnique(tails), heads: sortedUnique(heads)}
}

func (e StaticDirectedHyper[V]) Kind() Kind         { return KindStaticDirectedHyper }
func (e StaticDirectedHyper[V]) MutatorVerts() []V  { return e.tails }
func (e StaticDirectedHyper[V]) MutatedVerts() []V  { return e.heads }
func (e StaticDirectedHyper[V]) IncidentVerts() []V { return unionSorted(e.tails, e.heads) }
func (e StaticDirectedHyper[V]) IsOutIncident(v V) bool {
	return contains(e.tails, v)
}
func (e StaticDirectedHyper[V]) IsInIncident(v V) bool {
	return contains(e.heads, v)
}
func (e StaticDirectedHyper[V]) IsIncident(v V) bool {
	return e.IsOutIncident(v) || e.IsInIncident(v)
}
func (e StaticDirectedHyper[V]) OrderKey() []V { return append(append([]V{}, e.tails...), e.heads...) }

func (e StaticDirectedHyper[V]) Key() string {
	return fmt.Sprintf("%s:%s;%s", KindStaticDirectedHyper, joinVerts(e.tails), joinVerts(e.heads))
}

func (e StaticDirectedHyper[V]) Less(other Static[V]) bool {
	o, ok := other.(StaticDirectedHyper[V])
	if !ok {
		return e.Kind() < other.Kind()
	}
	if c := compareVertSlices(e.tails, o.tails); c != 0 {
		return c < 0
	}
	return compareVertSlices(e.heads, o.heads) < 0
}

// StaticUndirectedHyper is a time-agnostic undirected hyperedge: a single
// incident set of arbitrary cardinality, canonicalized (sorted) at
// construction.
type StaticUndirectedHyper[V cmp.Ordered] struct {
	verts []V
}

// NewStaticUndirectedHyper builds an undirected hyperedge over verts.
func NewStaticUndirectedHyper[V cmp.Ordered](verts []V) StaticUndirectedHyper[V] {
	return StaticUndirectedHyper[V]{verts: sortedUnique(verts)}
}

func (e StaticUndirectedHyper[V]) Kind() Kind         { return KindStaticUndirectedHyper }
func (e StaticUndirectedHyper[V]) MutatorVerts() []V  { return e.verts }
func (e StaticUndirectedHyper[V]) MutatedVerts() []V  { return e.verts }
func (e StaticUndirectedHyper[V]) IncidentVerts() []V { return e.verts }
func (e StaticUndirectedHyper[V]) IsOutIncident(v V) bool {
	return contains(e.verts, v)
}
func (e StaticUndirectedHyper[V]) IsInIncident(v V) bool { return e.IsOutIncident(v) }
func (e StaticUndirectedHyper[V]) IsIncident(v V) bool   { return e.IsOutIncident(v) }
func (e StaticUndirectedHyper[V]) OrderKey() []V         { return e.verts }

func (e StaticUndirectedHyper[V]) Key() string {
	return fmt.Sprintf("%s:%s", KindStaticUndirectedHyper, joinVerts(e.verts))
}

func (e StaticUndirectedHyper[V]) Less(other Static[V]) bool {
	o, ok := other.(StaticUndirectedHyper[V])
	if !ok {
		return e.Kind() < other.Kind()
	}
	return compareVertSlices(e.verts, o.verts) < 0
}
