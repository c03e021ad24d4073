package policy

import (
	"cmp"
	"fmt"
	"math"

	"github.com/katalvlaran/dagnet/edge"
	"github.com/katalvlaran/dagnet/rng"
)

// Policy assigns a nonnegative linger time to each (event, vertex) pair:
// event b is δt-adjacent to event a at shared vertex v iff t_e(a) <
// t_c(b) <= t_e(a) + Linger(a, v), in addition to the usual vertex-matching
// rule (spec.md §4.C).
type Policy[V cmp.Ordered, T edge.Number] interface {
	// Linger returns L(a, v).
	Linger(a edge.Temporal[V, T], v V) T

	// Bounded reports whether MaximumLinger returns a finite bound. Simple,
	// Exponential and Geometric are unbounded (their support has no finite
	// supremum); LimitedWaitingTime is bounded.
	Bounded() bool

	// MaximumLinger returns the supremum of Linger when Bounded is true; it
	// is used to bound search windows (spec.md §4.C). Its value when
	// Bounded is false is unspecified.
	MaximumLinger() T
}

// Simple is the unconstrained temporal adjacency: L(a, v) = +∞, i.e. any
// causally-later event at a shared vertex is reachable regardless of gap.
// Used for pure reachability queries.
type Simple[V cmp.Ordered, T edge.Number] struct{}

func (Simple[V, T]) Linger(edge.Temporal[V, T], V) T { return Infinity[T]() }
func (Simple[V, T]) Bounded() bool                   { return false }
func (Simple[V, T]) MaximumLinger() T                { return Infinity[T]() }

// Infinity returns the largest representable value of T: math.Inf(1) cast
// to T for floating-point time types, the maximum value of the integer type
// for integer ones. Used as Simple's linger so that "anything that causally
// follows" is expressible as an ordinary (if extreme) upper bound, letting
// eventgraph apply one arithmetic rule (t_c <= t_e(a) + L(a, v)) uniformly
// across every policy instead of special-casing unboundedness; eventgraph
// saturates t_e(a) + L(a, v) at Infinity when the integer sum overflows.
func Infinity[T edge.Number]() T {
	var zero T
	switch any(zero).(type) {
	case float32, float64:
		return T(math.Inf(1))
	default:
		// Doubling until the product stops growing finds the top power of
		// two; adding every bit below it gives the maximum of T.
		top := T(1)
		for top*2 > top {
			top *= 2
		}
		return top + (top - 1)
	}
}

// LimitedWaitingTime is the deterministic δt cutoff: L(a, v) = w for every
// (a, v).
type LimitedWaitingTime[V cmp.Ordered, T edge.Number] struct {
	W T
}

// NewLimitedWaitingTime builds a LimitedWaitingTime(w) policy.
func NewLimitedWaitingTime[V cmp.Ordered, T edge.Number](w T) LimitedWaitingTime[V, T] {
	return LimitedWaitingTime[V, T]{W: w}
}

func (p LimitedWaitingTime[V, T]) Linger(edge.Temporal[V, T], V) T { return p.W }
func (p LimitedWaitingTime[V, T]) Bounded() bool                   { return true }
func (p LimitedWaitingTime[V, T]) MaximumLinger() T                { return p.W }

// Exponential draws L(a, v) ~ Exp(rate), seeded deterministically from
// (edge identity, vertex, seed): two calls with the same edge, vertex and
// seed always return the same linger (spec.md §4.C).
type Exponential[V cmp.Ordered, T edge.Number] struct {
	Rate float64
	Seed int64
}

// NewExponential builds an Exponential(rate, seed) policy.
func NewExponential[V cmp.Ordered, T edge.Number](rate float64, seed int64) Exponential[V, T] {
	return Exponential[V, T]{Rate: rate, Seed: seed}
}

func (p Exponential[V, T]) Linger(a edge.Temporal[V, T], v V) T {
	src := streamFor(a, v, p.Seed)
	return T(rng.ExpFloat64(src, p.Rate))
}
func (p Exponential[V, T]) Bounded() bool { return false }
func (p Exponential[V, T]) MaximumLinger() T {
	var zero T
	return zero
}

// Geometric draws L(a, v) ~ Geom(p) (integer-valued), seeded deterministically
// from (edge identity, vertex, seed).
type Geometric[V cmp.Ordered, T edge.Number] struct {
	P    float64
	Seed int64
}

// NewGeometric builds a Geometric(p, seed) policy.
func NewGeometric[V cmp.Ordered, T edge.Number](p float64, seed int64) Geometric[V, T] {
	return Geometric[V, T]{P: p, Seed: seed}
}

func (p Geometric[V, T]) Linger(a edge.Temporal[V, T], v V) T {
	src := streamFor(a, v, p.Seed)
	return T(rng.GeomInt(src, p.P))
}
func (p Geometric[V, T]) Bounded() bool { return false }
func (p Geometric[V, T]) MaximumLinger() T {
	var zero T
	return zero
}

// streamFor derives a deterministic RNG stream for (edge, vertex, seed) by
// hashing the edge's canonical Key() and the vertex into a stream
// identifier, then mixing it with seed via rng.Derive.
func streamFor[V cmp.Ordered, T edge.Number](a edge.Temporal[V, T], v V, seed int64) rng.Source {
	stream := rng.FNV1a64(fmt.Sprintf("%s|%v", a.Key(), v))
	return rng.Derive(seed, stream)
}
