package cluster

// TemporalSketch is the sketch-backed counterpart of Temporal: it exposes
// only estimated edge/node cardinalities (spec.md §4.F "Sketch variants...
// expose estimated cardinalities with the same algorithmic skeleton"), not
// the full lifetime/mass/covers surface Temporal offers — those require
// exact membership to avoid double-counting on merge, which a HyperLogLog
// counter cannot provide.
type TemporalSketch struct {
	edges *Sketch[string]
	nodes *Sketch[string]
}

// NewTemporalSketch returns an empty sketch-backed cluster accumulator.
func NewTemporalSketch() *TemporalSketch {
	toBytes := func(s string) []byte { return []byte(s) }
	return &TemporalSketch{edges: NewSketch[string](toBytes), nodes: NewSketch[string](toBytes)}
}

// AddEdgeKey records an edge (identified by its canonical Key) and its
// incident vertices (rendered as strings by the caller).
func (c *TemporalSketch) AddEdgeKey(edgeKey string, vertexKeys []string) {
	c.edges.Insert(edgeKey)
	for _, v := range vertexKeys {
		c.nodes.Insert(v)
	}
}

// Merge absorbs other's contents in place.
func (c *TemporalSketch) Merge(other *TemporalSketch) {
	var e Counter[string] = c.edges
	e.Merge(other.edges)
	var n Counter[string] = c.nodes
	n.Merge(other.nodes)
}

// EdgeCardinality returns the estimated number of distinct member edges.
func (c *TemporalSketch) EdgeCardinality() float64 { return c.edges.Cardinality() }

// Volume returns the estimated number of distinct incident vertices.
func (c *TemporalSketch) Volume() float64 { return c.nodes.Cardinality() }
