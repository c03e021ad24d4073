package builder

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/dagnet/edge"
	"github.com/katalvlaran/dagnet/network"
	"github.com/katalvlaran/dagnet/rng"
	"github.com/katalvlaran/dagnet/static"
)

// BarabasiAlbert builds a scale-free graph via preferential attachment: the
// first m vertices seed an initially edgeless attachment pool, then each
// subsequent vertex attaches to m distinct existing vertices chosen with
// probability proportional to current degree, implemented by sampling
// uniformly from a repeated-vertex pool that grows by one entry per
// endpoint of every edge added. n must exceed m.
func BarabasiAlbert(n, m int, src rng.Source) (*static.Net[int], error) {
	if m < 1 || n <= m {
		return nil, fmt.Errorf("builder: BarabasiAlbert: n=%d m=%d: %w", n, m, ErrInvalidArgument)
	}

	edges := make([]edge.Static[int], 0, (n-m)*m)
	targets := make([]int, 0, 2*(n-m)*m+m)
	for i := 0; i < m; i++ {
		targets = append(targets, i)
	}

	for v := m; v < n; v++ {
		chosenSet := make(map[int]bool, m)
		var chosen []int
		for len(chosen) < m {
			u := targets[src.Intn(len(targets))]
			if u == v || chosenSet[u] {
				continue
			}
			chosenSet[u] = true
			chosen = append(chosen, u)
		}
		sort.Ints(chosen) // deterministic regardless of map iteration order

		for _, u := range chosen {
			edges = append(edges, edge.NewStaticUndirected(u, v))
			targets = append(targets, u, v)
		}
	}

	return network.NewStatic[int, edge.Static[int]](edges, vertexRange(n)...), nil
}
