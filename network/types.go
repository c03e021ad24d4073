package network

import (
	"cmp"
	"errors"
	"sort"

	"github.com/katalvlaran/dagnet/edge"
)

// ErrInvalidArgument is returned for ill-formed inputs the network
// container itself is positioned to detect (spec.md §7): currently, asking
// for TimeWindow() of a network with no edges.
var ErrInvalidArgument = errors.New("network: invalid argument")

// Network is the immutable container described by spec.md §3/§4.B: a
// deduplicated edge set, the union of incident and supplemental vertices,
// and four vertex-keyed adjacency indices sorted by cause and effect order
// respectively.
//
// Network is a plain value. Once New/NewTemporal/NewStatic returns, no
// method mutates it; every query is safe to call concurrently.
type Network[V cmp.Ordered, E edge.Edge[V]] struct {
	vertices []V
	edgesBy  struct {
		cause, effect []E
	}
	outCause, inCause   map[V][]E
	outEffect, inEffect map[V][]E
}

// LessFunc orders two edges of the same kind; New uses one for cause order
// and one for effect order (they coincide for static networks).
type LessFunc[E any] func(a, b E) bool

// New builds a Network from edges (deduplicated by edge.Edge.Key, last
// write wins) plus the union of their incident vertices and any
// supplemental vertices. causeLess/effectLess order the four adjacency
// indices; callers normally use NewTemporal or NewStatic instead of calling
// New directly.
//
// Complexity: O(|E| log |E| + |E|·avg_cardinality), per spec.md §4.B.
func New[V cmp.Ordered, E edge.Edge[V]](edges []E, causeLess, effectLess LessFunc[E], supplementalVerts ...V) *Network[V, E] {
	dedup := make(map[string]E, len(edges))
	for _, e := range edges {
		dedup[e.Key()] = e
	}

	byCause := make([]E, 0, len(dedup))
	for _, e := range dedup {
		byCause = append(byCause, e)
	}
	sort.Slice(byCause, func(i, j int) bool { return causeLess(byCause[i], byCause[j]) })

	byEffect := make([]E, len(byCause))
	copy(byEffect, byCause)
	sort.Slice(byEffect, func(i, j int) bool { return effectLess(byEffect[i], byEffect[j]) })

	n := &Network[V, E]{
		outCause:  make(map[V][]E),
		inCause:   make(map[V][]E),
		outEffect: make(map[V][]E),
		inEffect:  make(map[V][]E),
	}
	n.edgesBy.cause = byCause
	n.edgesBy.effect = byEffect

	vertSet := make(map[V]struct{})
	for _, v := range supplementalVerts {
		vertSet[v] = struct{}{}
	}

	for _, e := range byCause {
		for _, v := range e.MutatorVerts() {
			n.outCause[v] = append(n.outCause[v], e)
			vertSet[v] = struct{}{}
		}
		for _, v := range e.MutatedVerts() {
			n.inCause[v] = append(n.inCause[v], e)
			vertSet[v] = struct{}{}
		}
	}
	for _, e := range byEffect {
		for _, v := range e.MutatorVerts() {
			n.outEffect[v] = append(n.outEffect[v], e)
		}
		for _, v := range e.MutatedVerts() {
			n.inEffect[v] = append(n.inEffect[v], e)
		}
	}

	n.vertices = make([]V, 0, len(vertSet))
	for v := range vertSet {
		n.vertices = append(n.vertices, v)
	}
	sort.Slice(n.vertices, func(i, j int) bool { return cmp.Less(n.vertices[i], n.vertices[j]) })

	return n
}

// NewTemporal builds a Network for a temporal edge kind E, indexing
// adjacency by cause order and effect order as spec.md §3/§4.B describe.
func NewTemporal[V cmp.Ordered, T edge.Number, E edge.Temporal[V, T]](edges []E, supplementalVerts ...V) *Network[V, E] {
	return New[V, E](edges,
		func(a, b E) bool { return edge.CauseLess[V, T](a, b) },
		func(a, b E) bool { return edge.EffectLess[V, T](a, b) },
		supplementalVerts...)
}

// NewStatic builds a Network for a static edge kind E; cause order and
// effect order both collapse to the kind's static total order.
func NewStatic[V cmp.Ordered, E edge.Static[V]](edges []E, supplementalVerts ...V) *Network[V, E] {
	less := func(a, b E) bool { return a.Less(b) }
	return New[V, E](edges, less, less, supplementalVerts...)
}
