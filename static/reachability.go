package static

import (
	"cmp"

	"github.com/katalvlaran/dagnet/edge"
	"github.com/katalvlaran/dagnet/network"
)

// IsReachable reports whether v is reachable from u via a BFS on the
// network's cause-outgoing adjacency (spec.md §4.D). u == v is trivially
// reachable.
func IsReachable[V cmp.Ordered, E edge.Edge[V]](n *network.Network[V, E], u, v V) bool {
	if u == v {
		return true
	}
	visited := map[V]bool{u: true}
	queue := []V{u}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		for _, next := range n.Successors(cur) {
			if next == v {
				return true
			}
			if !visited[next] {
				visited[next] = true
				queue = append(queue, next)
			}
		}
	}
	return false
}
