package mrrm

import (
	"cmp"
	"fmt"

	"github.com/katalvlaran/dagnet/edge"
	"github.com/katalvlaran/dagnet/network"
	"github.com/katalvlaran/dagnet/rng"
)

// pairKey renders an ordered (tail, head) vertex pair as a map key, used to
// test static-adjacency membership without relying on V being hashable in
// any particular representation.
func pairKey[V cmp.Ordered](tail, head V) string { return fmt.Sprintf("%v>%v", tail, head) }

// tailOf/headOf extract the single endpoint of a dyadic temporal edge (for
// TemporalUndirected, its lower and higher endpoint respectively); they
// panic on a hyperedge kind (see package doc).
func tailOf[V cmp.Ordered, T edge.Number, E edge.Temporal[V, T]](e E) V {
	verts := e.MutatorVerts()
	if e.Kind() == edge.KindTemporalUndirected {
		return verts[0]
	}
	if len(verts) != 1 {
		panic(fmt.Sprintf("mrrm: unsupported hyperedge kind %v for shuffling", e.Kind()))
	}
	return verts[0]
}

func headOf[V cmp.Ordered, T edge.Number, E edge.Temporal[V, T]](e E) V {
	verts := e.MutatedVerts()
	if e.Kind() == edge.KindTemporalUndirected {
		return verts[1]
	}
	if len(verts) != 1 {
		panic(fmt.Sprintf("mrrm: unsupported hyperedge kind %v for shuffling", e.Kind()))
	}
	return verts[0]
}

// delayOf returns e's propagation delay, or the zero value for a temporal
// edge kind with no Delayed capability (cause == effect for those kinds).
func delayOf[V cmp.Ordered, T edge.Number, E edge.Temporal[V, T]](e E) T {
	if d, ok := any(e).(edge.Delayed[V, T]); ok {
		return d.Delay()
	}
	var zero T
	return zero
}

// rebuild constructs a new edge of the same concrete dyadic kind as a
// (template for Kind()), with tail/head/cause/delay replaced.
func rebuild[V cmp.Ordered, T edge.Number, E edge.Temporal[V, T]](a E, tail, head V, cause, delay T) E {
	switch a.Kind() {
	case edge.KindDirectedDelayed:
		return any(edge.NewDirectedDelayed(tail, head, cause, delay)).(E)
	case edge.KindTemporalDirected:
		return any(edge.NewTemporalDirected(tail, head, cause)).(E)
	case edge.KindTemporalUndirected:
		return any(edge.NewTemporalUndirected(tail, head, cause)).(E)
	default:
		panic(fmt.Sprintf("mrrm: unsupported edge kind %v for shuffling", a.Kind()))
	}
}

func rebuildNetwork[V cmp.Ordered, T edge.Number, E edge.Temporal[V, T]](edges []E, verts []V) *network.Network[V, E] {
	return network.NewTemporal[V, T, E](edges, verts...)
}

// shuffled returns a Fisher-Yates shuffled copy of vs, drawing from src.
func shuffled[T any](vs []T, src rng.Source) []T {
	out := make([]T, len(vs))
	copy(out, vs)
	for i := len(out) - 1; i > 0; i-- {
		j := src.Intn(i + 1)
		out[i], out[j] = out[j], out[i]
	}
	return out
}
