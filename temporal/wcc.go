package temporal

import (
	"cmp"
	"sort"

	"github.com/katalvlaran/dagnet/edge"
	"github.com/katalvlaran/dagnet/eventgraph"
	"github.com/katalvlaran/dagnet/network"
	"github.com/katalvlaran/dagnet/policy"
)

// WeaklyConnectedComponents partitions the implicit event graph's vertex
// set (its vertices are events, not the network's own vertices) via
// union-find over the δt-adjacency edges Successors reports (spec.md §4.F).
// Components are returned as event-key groups, sorted ascending by their
// smallest member key, each itself key-sorted, for a deterministic result.
func WeaklyConnectedComponents[V cmp.Ordered, T edge.Number, E edge.Temporal[V, T]](n *network.Network[V, E], p policy.Policy[V, T]) [][]E {
	events := n.Edges()
	byKey := make(map[string]E, len(events))
	for _, e := range events {
		byKey[e.Key()] = e
	}

	keys := make([]string, 0, len(byKey))
	for k := range byKey {
		keys = append(keys, k)
	}
	uf := newKeyUnionFind(keys)
	for _, e := range events {
		for _, b := range eventgraph.Successors[V, T, E](n, e, p, false) {
			uf.union(e.Key(), b.Key())
		}
	}

	groups := make(map[string][]string)
	for k := range byKey {
		root := uf.find(k)
		groups[root] = append(groups[root], k)
	}

	out := make([][]E, 0, len(groups))
	for _, keys := range groups {
		sort.Strings(keys)
		comp := make([]E, len(keys))
		for i, k := range keys {
			comp[i] = byKey[k]
		}
		out = append(out, comp)
	}
	sort.Slice(out, func(i, j int) bool { return out[i][0].Key() < out[j][0].Key() })
	return out
}

// keyUnionFind is a string-keyed union-by-size, path-compressing
// disjoint-set structure, used here because concrete hyperedge kinds embed
// slices and so aren't themselves comparable map keys — every event is
// addressed by its canonical Key() instead (mirrors package static's
// vertex-keyed unionFind).
type keyUnionFind struct {
	parent map[string]string
	size   map[string]int
}

func newKeyUnionFind(keys []string) *keyUnionFind {
	uf := &keyUnionFind{parent: make(map[string]string, len(keys)), size: make(map[string]int, len(keys))}
	for _, k := range keys {
		uf.parent[k] = k
		uf.size[k] = 1
	}
	return uf
}

func (uf *keyUnionFind) find(k string) string {
	root := k
	for uf.parent[root] != root {
		root = uf.parent[root]
	}
	for uf.parent[k] != root {
		uf.parent[k], k = root, uf.parent[k]
	}
	return root
}

func (uf *keyUnionFind) union(a, b string) {
	ra, rb := uf.find(a), uf.find(b)
	if ra == rb {
		return
	}
	if uf.size[ra] < uf.size[rb] {
		ra, rb = rb, ra
	}
	uf.parent[rb] = ra
	uf.size[ra] += uf.size[rb]
}
