package builder

import (
	"fmt"

	"github.com/katalvlaran/dagnet/edge"
	"github.com/katalvlaran/dagnet/network"
	"github.com/katalvlaran/dagnet/rng"
	"github.com/katalvlaran/dagnet/static"
)

// GNP builds an Erdős–Rényi G(n,p) simple undirected graph: vertices
// 0..n-1, each unordered pair independently included with probability p.
func GNP(n int, p float64, src rng.Source) (*static.Net[int], error) {
	if n < 1 {
		return nil, fmt.Errorf("builder: GNP: n=%d: %w", n, ErrVertexTypeTooSmall)
	}
	if p < 0 || p > 1 {
		return nil, fmt.Errorf("builder: GNP: p=%v out of [0,1]: %w", p, ErrInvalidArgument)
	}

	edges := make([]edge.Static[int], 0)
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if src.Float64() < p {
				edges = append(edges, edge.NewStaticUndirected(i, j))
			}
		}
	}
	return network.NewStatic[int, edge.Static[int]](edges, vertexRange(n)...), nil
}

func vertexRange(n int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = i
	}
	return out
}
