package cluster

import (
	"fmt"

	"github.com/axiomhq/hyperloglog"
)

// Counter is the shared capability of the two accumulator flavors: O(1)
// insertion, a cardinality count, and an in-place merge with another Counter
// of the same concrete type. Membership is not part of the interface: Exact
// offers it through its own Contains method, Sketch does not offer it.
//
// Algorithms in package temporal are written against this interface so the
// exact and sketch cluster variants share a single traversal skeleton
// (spec.md §9): "component and component_sketch present the same
// interface — insert/merge/cardinality."
type Counter[T any] interface {
	// Insert adds item to the accumulator.
	Insert(item T)

	// Merge absorbs other's contents in place. other must be the same
	// concrete type this Counter was constructed as (both *Exact[T] or
	// both *Sketch[T]); Merge panics otherwise, since mixing flavors inside
	// one traversal is a programmer error, not a runtime condition callers
	// should need to handle.
	Merge(other Counter[T])

	// Cardinality returns the (for Exact, exact; for Sketch, estimated)
	// number of distinct items inserted so far.
	Cardinality() float64

	// Clone returns an independent copy with the same contents.
	Clone() Counter[T]
}

// Exact is a hash-set-backed Counter: exact cardinality, O(n) space. keyFn
// reduces an item to the string used for deduplication, which lets Exact
// back non-comparable item types (hyperedges, whose canonical identity is
// edge.Edge.Key(), contain slices and so aren't themselves map keys).
type Exact[T any] struct {
	keyFn func(T) string
	items map[string]T
}

// NewExact builds an empty Exact counter keyed by keyFn.
func NewExact[T any](keyFn func(T) string) *Exact[T] {
	return &Exact[T]{keyFn: keyFn, items: make(map[string]T)}
}

// Insert implements Counter.
func (e *Exact[T]) Insert(item T) { e.items[e.keyFn(item)] = item }

// Contains reports whether item (by key) was already inserted.
func (e *Exact[T]) Contains(item T) bool {
	_, ok := e.items[e.keyFn(item)]
	return ok
}

// Cardinality implements Counter.
func (e *Exact[T]) Cardinality() float64 { return float64(len(e.items)) }

// Size returns the exact count as an int, for callers that don't want a
// float64 round-trip.
func (e *Exact[T]) Size() int { return len(e.items) }

// Items returns the accumulated items in unspecified order.
func (e *Exact[T]) Items() []T {
	out := make([]T, 0, len(e.items))
	for _, v := range e.items {
		out = append(out, v)
	}
	return out
}

// Merge implements Counter; other must be *Exact[T].
func (e *Exact[T]) Merge(other Counter[T]) {
	o, ok := other.(*Exact[T])
	if !ok {
		panic(fmt.Sprintf("cluster: Exact.Merge called with %T, want *Exact[T]", other))
	}
	for k, v := range o.items {
		e.items[k] = v
	}
}

// Clone implements Counter.
func (e *Exact[T]) Clone() Counter[T] {
	cp := make(map[string]T, len(e.items))
	for k, v := range e.items {
		cp[k] = v
	}
	return &Exact[T]{keyFn: e.keyFn, items: cp}
}

// Sketch is a github.com/axiomhq/hyperloglog-backed Counter: approximate
// cardinality in O(1) space (a few KB regardless of stream length), trading
// exactness for the constant-memory guarantee spec.md §3 asks the sketch
// variants to provide on clusters too large to materialize as sets.
//
// toBytes renders an item to the byte string the sketch hashes; callers
// typically pass an edge's Key() (or a vertex's formatted identity) encoded
// as UTF-8.
type Sketch[T any] struct {
	toBytes func(T) []byte
	hll     *hyperloglog.Sketch
}

// NewSketch builds an empty Sketch counter using toBytes to serialize items.
func NewSketch[T any](toBytes func(T) []byte) *Sketch[T] {
	return &Sketch[T]{toBytes: toBytes, hll: hyperloglog.New()}
}

// Insert implements Counter.
func (s *Sketch[T]) Insert(item T) { s.hll.Insert(s.toBytes(item)) }

// Cardinality implements Counter.
func (s *Sketch[T]) Cardinality() float64 { return float64(s.hll.Estimate()) }

// Merge implements Counter; other must be *Sketch[T]. The underlying
// hyperloglog.Sketch.Merge only fails when precisions differ, which cannot
// happen for sketches this package constructs (New always uses the library
// default), so a merge error here is a precondition violation, not a
// recoverable condition, and Merge panics rather than growing an error
// return Counter's other implementation can't satisfy.
func (s *Sketch[T]) Merge(other Counter[T]) {
	o, ok := other.(*Sketch[T])
	if !ok {
		panic(fmt.Sprintf("cluster: Sketch.Merge called with %T, want *Sketch[T]", other))
	}
	if err := s.hll.Merge(o.hll); err != nil {
		panic(fmt.Sprintf("cluster: Sketch.Merge: %v", err))
	}
}

// Clone implements Counter.
func (s *Sketch[T]) Clone() Counter[T] {
	cp := hyperloglog.New()
	_ = cp.Merge(s.hll)
	return &Sketch[T]{toBytes: s.toBytes, hll: cp}
}
