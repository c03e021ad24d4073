package edge

import (
	"cmp"
	"fmt"
)

// TemporalDirected is a dyadic directed edge stamped with a cause time;
// cause and effect time coincide (no delay).
type TemporalDirected[V cmp.Ordered, T Number] struct {
	tail, head V
	t          T
}

// NewTemporalDirected builds a directed temporal edge tail -> head at time t.
func NewTemporalDirected[V cmp.Ordered, T Number](tail, head V, t T) TemporalDirected[V, T] {
	return TemporalDirected[V, T]{tail: tail, head: head, t: t}
}

func (e TemporalDirected[V, T]) Kind() Kind             { return KindTemporalDirected }
func (e TemporalDirected[V, T]) MutatorVerts() []V      { return []V{e.tail} }
func (e TemporalDirected[V, T]) MutatedVerts() []V      { return []V{e.head} }
func (e TemporalDirected[V, T]) IncidentVerts() []V     { return unionSorted([]V{e.tail}, []V{e.head}) }
func (e TemporalDirected[V, T]) IsOutIncident(v V) bool { return e.tail == v }
func (e TemporalDirected[V, T]) IsInIncident(v V) bool  { return e.head == v }
func (e TemporalDirected[V, T]) IsIncident(v V) bool    { return e.tail == v || e.head == v }
func (e TemporalDirected[V, T]) OrderKey() []V          { return []V{e.tail, e.head} }
func (e TemporalDirected[V, T]) CauseTime() T           { return e.t }
func (e TemporalDirected[V, T]) EffectTime() T          { return e.t }
func (e TemporalDirected[V, T]) Tail() V                { return e.tail }
func (e TemporalDirected[V, T]) Head() V                { return e.head }

func (e TemporalDirected[V, T]) StaticProjection() Static[V] {
	return NewStaticDirected(e.tail, e.head)
}

func (e TemporalDirected[V, T]) Key() string {
	return fmt.Sprintf("%s:%v>%v@%v", KindTemporalDirected, e.tail, e.head, e.t)
}

// TemporalUndirected is a dyadic undirected edge stamped with a cause time;
// endpoints are canonicalized at construction.
type TemporalUndirected[V cmp.Ordered, T Number] struct {
	lo, hi V
	t      T
}

// NewTemporalUndirected builds an undirected temporal edge between u and v
// at time t.
func NewTemporalUndirected[V cmp.Ordered, T Number](u, v V, t T) TemporalUndirected[V, T] {
	if cmp.Less(v, u) {
		u, v = v, u
	}
	return TemporalUndirected[V, T]{lo: u, hi: v, t: t}
}

func (e TemporalUndirected[V, T]) Kind() Kind         { return KindTemporalUndirected }
func (e TemporalUndirected[V, T]) MutatorVerts() []V  { return []V{e.lo, e.hi} }
func (e TemporalUndirected[V, T]) MutatedVerts() []V  { return []V{e.lo, e.hi} }
func (e TemporalUndirected[V, T]) IncidentVerts() []V { return []V{e.lo, e.hi} }
func (e TemporalUndirected[V, T]) IsOutIncident(v V) bool {
	return e.lo == v || e.hi == v
}
func (e TemporalUndirected[V, T]) IsInIncident(v V) bool { return e.IsOutIncident(v) }
func (e TemporalUndirected[V, T]) IsIncident(v V) bool   { return e.IsOutIncident(v) }
func (e TemporalUndirected[V, T]) OrderKey() []V         { return []V{e.lo, e.hi} }
func (e TemporalUndirected[V, T]) CauseTime() T          { return e.t }
func (e TemporalUndirected[V, T]) EffectTime() T         { return e.t }
func (e TemporalUndirected[V, T]) Endpoints() (V, V)     { return e.lo, e.hi }

func (e TemporalUndirected[V, T]) StaticProjection() Static[V] {
	return NewStaticUndirected(e.lo, e.hi)
}

func (e TemporalUndirected[V, T]) Key() string {
	return fmt.Sprintf("%s:%v,%v@%v", KindTemporalUndirected, e.lo, e.hi, e.t)
}

// TemporalDirectedHyper is a directed hyperedge (tail set -> head set)
// stamped with a cause time.
type TemporalDirectedHyper[V cmp.Ordered, T Number] struct {
	tails, heads []V
	t            T
}

// NewTemporalDirectedHyper builds a directed temporal hyperedge.
func NewTemporalDirectedHyper[V cmp.Ordered, T Number](tails, heads []V, t T) TemporalDirectedHyper[V, T] {
	return TemporalDirectedHyper[V, T]{tails: sortedUnique(tails), heads: sortedUnique(heads), t: t}
}

func (e TemporalDirectedHyper[V, T]) Kind() Kind         { return KindTemporalDirectedHyper }
func (e TemporalDirectedHyper[V, T]) MutatorVerts() []V  { return e.tails }
func (e TemporalDirectedHyper[V, T]) MutatedVerts() []V  { return e.heads }
func (e TemporalDirectedHyper[V, T]) IncidentVerts() []V { return unionSorted(e.tails, e.heads) }
func (e TemporalDirectedHyper[V, T]) IsOutIncident(v V) bool {
	return contains(e.tails, v)
}
func (e TemporalDirectedHyper[V, T]) IsInIncident(v V) bool {
	return contains(e.heads, v)
}
func (e TemporalDirectedHyper[V, T]) IsIncident(v V) bool {
	return e.IsOutIncident(v) || e.IsInIncident(v)
}
func (e TemporalDirectedHyper[V, T]) OrderKey() []V {
	return append(append([]V{}, e.tails...), e.heads...)
}
func (e TemporalDirectedHyper[V, T]) CauseTime() T  { return e.t }
func (e TemporalDirectedHyper[V, T]) EffectTime() T { return e.t }

func (e TemporalDirectedHyper[V, T]) StaticProjection() Static[V] {
	return NewStaticDirectedHyper(e.tails, e.heads)
}

func (e TemporalDirectedHyper[V, T]) Key() string {
	return fmt.Sprintf("%s:%s;%s@%v", KindTemporalDirectedHyper, joinVerts(e.tails), joinVerts(e.heads), e.t)
}

// TemporalUndirectedHyper is an undirected hyperedge (one incident set)
// stamped with a cause time.
type TemporalUndirectedHyper[V cmp.Ordered, T Number] struct {
	verts []V
	t     T
}

// NewTemporalUndirectedHyper builds an undirected temporal hyperedge.
func NewTemporalUndirectedHyper[V cmp.Ordered, T Number](verts []V, t T) TemporalUndirectedHyper[V, T] {
	return TemporalUndirectedHyper[V, T]{verts: sortedUnique(verts), t: t}
}

func (e TemporalUndirectedHyper[V, T]) Kind() Kind         { return KindTemporalUndirectedHyper }
func (e TemporalUndirectedHyper[V, T]) MutatorVerts() []V  { return e.verts }
func (e TemporalUndirectedHyper[V, T]) MutatedVerts() []V  { return e.verts }
func (e TemporalUndirectedHyper[V, T]) IncidentVerts() []V { return e.verts }
func (e TemporalUndirectedHyper[V, T]) IsOutIncident(v V) bool {
	return contains(e.verts, v)
}
func (e TemporalUndirectedHyper[V, T]) IsInIncident(v V) bool { return e.IsOutIncident(v) }
func (e TemporalUndirectedHyper[V, T]) IsIncident(v V) bool   { return e.IsOutIncident(v) }
func (e TemporalUndirectedHyper[V, T]) OrderKey() []V         { return e.verts }
func (e TemporalUndirectedHyper[V, T]) CauseTime() T          { return e.t }
func (e TemporalUndirectedHyper[V, T]) EffectTime() T         { return e.t }

func (e TemporalUndirectedHyper[V, T]) StaticProjection() Static[V] {
	return NewStaticUndirectedHyper(e.verts)
}

func (e TemporalUndirectedHyper[V, T]) Key() string {
	return fmt.Sprintf("%s:%s@%v", KindTemporalUndirectedHyper, joinVerts(e.verts), e.t)
}
