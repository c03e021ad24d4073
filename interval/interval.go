// Package interval implements a minimal closed interval-set over an ordered
// type, used to back cluster.Temporal.Covers and lifetime merges: a
// temporal cluster's "coverage" of a vertex is the union of the
// [causeTime, effectTime+linger] spans of every incident event at that
// vertex, and Covers(v, t) asks whether t falls in that union.
package interval

import (
	"cmp"
	"slices"
)

// Span is a closed interval [Lo, Hi] with Lo <= Hi.
type Span[T cmp.Ordered] struct {
	Lo, Hi T
}

// Contains reports whether t falls within the span, inclusive.
func (s Span[T]) Contains(t T) bool { return s.Lo <= t && t <= s.Hi }

// overlaps reports whether s and o intersect or touch (share an endpoint),
// in which case merging them into one span loses no information.
func (s Span[T]) overlaps(o Span[T]) bool { return s.Lo <= o.Hi && o.Lo <= s.Hi }

// Set is a sorted, non-overlapping collection of spans: the canonical
// representation of a union of closed intervals.
type Set[T cmp.Ordered] struct {
	spans []Span[T]
}

// Add inserts [lo, hi] into the set, merging with any overlapping or
// touching spans so the set stays coalesced.
func (s *Set[T]) Add(lo, hi T) {
	if hi < lo {
		lo, hi = hi, lo
	}
	next := Span[T]{Lo: lo, Hi: hi}
	merged := make([]Span[T], 0, len(s.spans)+1)
	for _, sp := range s.spans {
		if sp.overlaps(next) {
			if sp.Lo < next.Lo {
				next.Lo = sp.Lo
			}
			if sp.Hi > next.Hi {
				next.Hi = sp.Hi
			}
			continue
		}
		merged = append(merged, sp)
	}
	merged = append(merged, next)
	slices.SortFunc(merged, func(a, b Span[T]) int { return cmp.Compare(a.Lo, b.Lo) })
	s.spans = merged
}

// Covers reports whether t lies inside any span of the set.
func (s *Set[T]) Covers(t T) bool {
	for _, sp := range s.spans {
		if sp.Contains(t) {
			return true
		}
		if sp.Lo > t {
			break
		}
	}
	return false
}

// Spans returns the coalesced spans in increasing order of Lo.
func (s *Set[T]) Spans() []Span[T] { return slices.Clone(s.spans) }

// Bounds returns the overall [min Lo, max Hi] of the set and whether the
// set is nonempty.
func (s *Set[T]) Bounds() (lo, hi T, ok bool) {
	if len(s.spans) == 0 {
		return lo, hi, false
	}
	lo = s.spans[0].Lo
	hi = s.spans[0].Hi
	for _, sp := range s.spans[1:] {
		if sp.Hi > hi {
			hi = sp.Hi
		}
	}
	return lo, hi, true
}
