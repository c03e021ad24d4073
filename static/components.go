package static

import (
	"cmp"
	"sort"

	"github.com/katalvlaran/dagnet/edge"
	"github.com/katalvlaran/dagnet/network"
)

// WeaklyConnectedComponents partitions the network's vertex set via
// union-find over every edge's incident vertex pairs, treating direction as
// irrelevant (spec.md §4.D: "any edge kind"). A hyperedge unions all of its
// incident vertices together. Components are returned sorted ascending by
// their smallest vertex, each component itself sorted ascending.
func WeaklyConnectedComponents[V cmp.Ordered, E edge.Edge[V]](n *network.Network[V, E]) [][]V {
	uf := newUnionFind(n.Vertices())
	for _, e := range n.Edges() {
		verts := e.IncidentVerts()
		for i := 1; i < len(verts); i++ {
			uf.union(verts[0], verts[i])
		}
	}
	return uf.components()
}

// StronglyConnectedComponents computes Tarjan's algorithm over a directed
// static network's cause-outgoing adjacency (spec.md §4.D: directed only;
// feeding undirected edges produces components identical to
// WeaklyConnectedComponents, since Successors is symmetric for them).
// Components are returned in the algorithm's natural discovery order, each
// sorted ascending; singleton components (including isolated vertices) are
// included.
func StronglyConnectedComponents[V cmp.Ordered, E edge.Edge[V]](n *network.Network[V, E]) [][]V {
	t := &tarjan[V]{
		index:   make(map[V]int),
		lowlink: make(map[V]int),
		onStack: make(map[V]bool),
		succ:    make(map[V][]V),
	}
	for _, v := range n.Vertices() {
		t.succ[v] = n.Successors(v)
	}
	for _, v := range n.Vertices() {
		if _, seen := t.index[v]; !seen {
			t.strongConnect(v)
		}
	}
	return t.components
}

type tarjan[V cmp.Ordered] struct {
	next       int
	index      map[V]int
	lowlink    map[V]int
	onStack    map[V]bool
	stack      []V
	succ       map[V][]V
	components [][]V
}

func (t *tarjan[V]) strongConnect(v V) {
	t.index[v] = t.next
	t.lowlink[v] = t.next
	t.next++
	t.stack = append(t.stack, v)
	t.onStack[v] = true

	for _, u := range t.succ[v] {
		if _, seen := t.index[u]; !seen {
			t.strongConnect(u)
			if t.lowlink[u] < t.lowlink[v] {
				t.lowlink[v] = t.lowlink[u]
			}
		} else if t.onStack[u] {
			if t.index[u] < t.lowlink[v] {
				t.lowlink[v] = t.index[u]
			}
		}
	}

	if t.lowlink[v] == t.index[v] {
		var comp []V
		for {
			n := len(t.stack) - 1
			u := t.stack[n]
			t.stack = t.stack[:n]
			t.onStack[u] = false
			comp = append(comp, u)
			if u == v {
				break
			}
		}
		sort.Slice(comp, func(i, j int) bool { return cmp.Less(comp[i], comp[j]) })
		t.components = append(t.components, comp)
	}
}

// unionFind is a standard union-by-size, path-compressing disjoint-set
// structure over a fixed, known-in-advance vertex universe.
type unionFind[V cmp.Ordered] struct {
	parent map[V]V
	size   map[V]int
}

func newUnionFind[V cmp.Ordered](verts []V) *unionFind[V] {
	uf := &unionFind[V]{parent: make(map[V]V, len(verts)), size: make(map[V]int, len(verts))}
	for _, v := range verts {
		uf.parent[v] = v
		uf.size[v] = 1
	}
	return uf
}

func (uf *unionFind[V]) find(v V) V {
	root := v
	for uf.parent[root] != root {
		root = uf.parent[root]
	}
	for uf.parent[v] != root {
		uf.parent[v], v = root, uf.parent[v]
	}
	return root
}

func (uf *unionFind[V]) union(a, b V) {
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

func (uf *unionFind[V]) components() [][]V {
	groups := make(map[V][]V)
	for v := range uf.parent {
		root := uf.find(v)
		groups[root] = append(groups[root], v)
	}
	out := make([][]V, 0, len(groups))
	for _, g := range groups {
		sort.Slice(g, func(i, j int) bool { return cmp.Less(g[i], g[j]) })
		out = append(out, g)
	}
	sort.Slice(out, func(i, j int) bool { return cmp.Less(out[i][0], out[j][0]) })
	return out
}
