package temporal

import (
	"cmp"
	"fmt"

	"github.com/katalvlaran/dagnet/cluster"
	"github.com/katalvlaran/dagnet/edge"
	"github.com/katalvlaran/dagnet/eventgraph"
	"github.com/katalvlaran/dagnet/network"
	"github.com/katalvlaran/dagnet/policy"
)

// addToSketch records e's Key and incident vertices into a TemporalSketch.
func addToSketch[V cmp.Ordered, T edge.Number](c *cluster.TemporalSketch, e edge.Temporal[V, T]) {
	verts := e.IncidentVerts()
	keys := make([]string, len(verts))
	for i, v := range verts {
		keys[i] = fmt.Sprintf("%v", v)
	}
	c.AddEdgeKey(e.Key(), keys)
}

// OutClusterSketch is OutCluster's HyperLogLog-backed counterpart: the same
// forward walk, but every visited event only contributes to an edge/node
// cardinality estimate rather than being retained as a set member (spec.md
// §4.F: "Sketch variants... expose estimated cardinalities with the same
// algorithmic skeleton").
func OutClusterSketch[V cmp.Ordered, T edge.Number, E edge.Temporal[V, T]](n *network.Network[V, E], p policy.Policy[V, T], seed E) *cluster.TemporalSketch {
	return walkSketch[V, T, E](n, p, seed, eventgraph.Successors[V, T, E])
}

// InClusterSketch is InCluster's HyperLogLog-backed counterpart.
func InClusterSketch[V cmp.Ordered, T edge.Number, E edge.Temporal[V, T]](n *network.Network[V, E], p policy.Policy[V, T], seed E) *cluster.TemporalSketch {
	return walkSketch[V, T, E](n, p, seed, eventgraph.Predecessors[V, T, E])
}

func walkSketch[V cmp.Ordered, T edge.Number, E edge.Temporal[V, T]](n *network.Network[V, E], p policy.Policy[V, T], seed E, step stepFunc[V, T, E]) *cluster.TemporalSketch {
	c := cluster.NewTemporalSketch()
	addToSketch[V, T](c, seed)
	visited := map[string]bool{seed.Key(): true}
	queue := []E{seed}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		for _, nxt := range step(n, cur, p, false) {
			if visited[nxt.Key()] {
				continue
			}
			visited[nxt.Key()] = true
			addToSketch[V, T](c, nxt)
			queue = append(queue, nxt)
		}
	}
	return c
}

// OutClustersSketch computes OutClusterSketch for every event at once,
// mirroring OutClusters's dependency-ordered union but merging sketches
// instead of exact sets.
func OutClustersSketch[V cmp.Ordered, T edge.Number, E edge.Temporal[V, T]](n *network.Network[V, E], p policy.Policy[V, T]) map[string]*cluster.TemporalSketch {
	events := n.EdgesCause()
	result := make(map[string]*cluster.TemporalSketch, len(events))
	for i := len(events) - 1; i >= 0; i-- {
		e := events[i]
		c := cluster.NewTemporalSketch()
		addToSketch[V, T](c, e)
		for _, b := range eventgraph.Successors[V, T, E](n, e, p, false) {
			if bc, ok := result[b.Key()]; ok {
				c.Merge(bc)
			}
		}
		result[e.Key()] = c
	}
	return result
}

// InClustersSketch is OutClustersSketch's dual.
func InClustersSketch[V cmp.Ordered, T edge.Number, E edge.Temporal[V, T]](n *network.Network[V, E], p policy.Policy[V, T]) map[string]*cluster.TemporalSketch {
	events := n.EdgesEffect()
	result := make(map[string]*cluster.TemporalSketch, len(events))
	for _, e := range events {
		c := cluster.NewTemporalSketch()
		addToSketch[V, T](c, e)
		for _, a := range eventgraph.Predecessors[V, T, E](n, e, p, false) {
			if ac, ok := result[a.Key()]; ok {
				c.Merge(ac)
			}
		}
		result[e.Key()] = c
	}
	return result
}
