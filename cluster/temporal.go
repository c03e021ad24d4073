package cluster

import (
	"cmp"

	"github.com/katalvlaran/dagnet/edge"
	"github.com/katalvlaran/dagnet/interval"
)

// edgeCharge pairs a member edge with the mass it contributed at insertion
// time (t_e - t_c + linger), so Merge can fold another cluster's edges in
// without re-deriving the linger each was charged with.
type edgeCharge[V cmp.Ordered, T edge.Number, E edge.Temporal[V, T]] struct {
	e      E
	charge T
}

// Temporal accumulates the edge set, node set, cause/effect lifetime, mass
// and per-vertex coverage of a temporal cluster, exactly as spec.md §3
// defines it: lifetime = (min t_c, max t_e), mass = Σ(t_e - t_c + linger),
// volume = |incident vertices|, plus the Covers(v, t) predicate.
//
// A Temporal is built incrementally by AddEdge during a traversal (package
// eventgraph/temporal) and is read-only once that traversal completes;
// Merge lets the all-pairs algorithms compose a parent cluster as the union
// of its successors' clusters without re-walking them (spec.md §4.F).
type Temporal[V cmp.Ordered, T edge.Number, E edge.Temporal[V, T]] struct {
	edges    map[string]edgeCharge[V, T, E]
	nodes    map[V]struct{}
	coverage map[V]*interval.Set[T]
	mass     T
	lo, hi   T
	hasLife  bool
}

// NewTemporal returns an empty temporal cluster accumulator.
func NewTemporal[V cmp.Ordered, T edge.Number, E edge.Temporal[V, T]]() *Temporal[V, T, E] {
	return &Temporal[V, T, E]{
		edges:    make(map[string]edgeCharge[V, T, E]),
		nodes:    make(map[V]struct{}),
		coverage: make(map[V]*interval.Set[T]),
	}
}

// AddEdge records e as a member of the cluster, charging mass by e's own
// duration plus linger, and extending coverage at each incident vertex to
// e's effect time plus linger. Package temporal passes the policy's linger
// at e's first head vertex for every member, the seed event included.
// Re-adding an already-present edge (by Key) is a no-op, matching the
// dedup-across-shared-vertices rule spec.md §4.E requires of event-graph
// traversals.
func (c *Temporal[V, T, E]) AddEdge(e E, linger T) {
	key := e.Key()
	if _, ok := c.edges[key]; ok {
		return
	}
	charge := e.EffectTime() - e.CauseTime() + linger
	c.edges[key] = edgeCharge[V, T, E]{e: e, charge: charge}
	c.mass += charge
	c.extendLifetime(e.CauseTime(), e.EffectTime())
	for _, v := range e.IncidentVerts() {
		c.addCoverage(v, e.CauseTime(), e.EffectTime()+linger)
	}
}

// AddSeedVertex seeds the cluster's coverage and lifetime from a virtual
// self-loop (v, v, t, t), as spec.md §4.F's vertex-time seeding does for
// in_cluster/out_cluster queries rooted at (v, t) rather than at an event.
func (c *Temporal[V, T, E]) AddSeedVertex(v V, t T) {
	c.nodes[v] = struct{}{}
	c.extendLifetime(t, t)
	c.addCoverage(v, t, t)
}

func (c *Temporal[V, T, E]) extendLifetime(lo, hi T) {
	if !c.hasLife {
		c.lo, c.hi, c.hasLife = lo, hi, true
		return
	}
	if lo < c.lo {
		c.lo = lo
	}
	if hi > c.hi {
		c.hi = hi
	}
}

func (c *Temporal[V, T, E]) addCoverage(v V, lo, hi T) {
	c.nodes[v] = struct{}{}
	set, ok := c.coverage[v]
	if !ok {
		set = &interval.Set[T]{}
		c.coverage[v] = set
	}
	set.Add(lo, hi)
}

// Merge absorbs other's edges, nodes, lifetime, mass and coverage in place.
func (c *Temporal[V, T, E]) Merge(other *Temporal[V, T, E]) {
	for k, rec := range other.edges {
		if _, ok := c.edges[k]; ok {
			continue
		}
		c.edges[k] = rec
		c.mass += rec.charge
	}
	if other.hasLife {
		c.extendLifetime(other.lo, other.hi)
	}
	for v, set := range other.coverage {
		for _, sp := range set.Spans() {
			c.addCoverage(v, sp.Lo, sp.Hi)
		}
	}
}

// Clone returns an independent copy of the cluster.
func (c *Temporal[V, T, E]) Clone() *Temporal[V, T, E] {
	cp := NewTemporal[V, T, E]()
	cp.Merge(c)
	return cp
}

// Edges returns the member edges in unspecified order.
func (c *Temporal[V, T, E]) Edges() []E {
	out := make([]E, 0, len(c.edges))
	for _, rec := range c.edges {
		out = append(out, rec.e)
	}
	return out
}

// EdgeCount returns the number of member edges.
func (c *Temporal[V, T, E]) EdgeCount() int { return len(c.edges) }

// Nodes returns the incident vertex set in unspecified order.
func (c *Temporal[V, T, E]) Nodes() []V {
	out := make([]V, 0, len(c.nodes))
	for v := range c.nodes {
		out = append(out, v)
	}
	return out
}

// Volume returns |incident vertices|.
func (c *Temporal[V, T, E]) Volume() int { return len(c.nodes) }

// Mass returns Σ(t_e - t_c + linger) over member edges.
func (c *Temporal[V, T, E]) Mass() T { return c.mass }

// Lifetime returns (min cause time, max effect time) over member edges and
// seed vertices; ok is false for an empty cluster.
func (c *Temporal[V, T, E]) Lifetime() (lo, hi T, ok bool) {
	return c.lo, c.hi, c.hasLife
}

// Covers reports whether vertex v is "lit up" at time t: whether some
// member edge's [causeTime, effectTime+linger] span at v contains t.
func (c *Temporal[V, T, E]) Covers(v V, t T) bool {
	set, ok := c.coverage[v]
	if !ok {
		return false
	}
	return set.Covers(t)
}
