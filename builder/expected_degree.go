package builder

import (
	"fmt"

	"github.com/katalvlaran/dagnet/edge"
	"github.com/katalvlaran/dagnet/network"
	"github.com/katalvlaran/dagnet/rng"
	"github.com/katalvlaran/dagnet/static"
)

// ExpectedDegree builds a Chung–Lu random graph: vertex i has target weight
// weights[i], and the unordered pair (i,j) is included independently with
// probability weights[i]*weights[j]/S where S = Σweights — so vertex i's
// expected degree converges to weights[i] as n grows. The sequence is
// infeasible, and rejected with ErrInvalidArgument, whenever
// max(weights)^2 > S: that term alone would force some pair's probability
// above 1, which no amount of clamping recovers without distorting every
// other vertex's expected degree (spec.md §7 "expected-degree sequences
// infeasible").
func ExpectedDegree(weights []float64, src rng.Source) (*static.Net[int], error) {
	n := len(weights)
	if n < 1 {
		return nil, fmt.Errorf("builder: ExpectedDegree: %w", ErrInvalidArgument)
	}
	var sum, max float64
	for _, w := range weights {
		if w < 0 {
			return nil, fmt.Errorf("builder: ExpectedDegree: negative weight: %w", ErrInvalidArgument)
		}
		sum += w
		if w > max {
			max = w
		}
	}
	if sum == 0 {
		return network.NewStatic[int, edge.Static[int]](nil, vertexRange(n)...), nil
	}
	if max*max > sum {
		return nil, fmt.Errorf("builder: ExpectedDegree: max weight %g exceeds sqrt(sum %g): %w", max, sum, ErrInvalidArgument)
	}

	edges := make([]edge.Static[int], 0)
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			prob := weights[i] * weights[j] / sum
			if src.Float64() < prob {
				edges = append(edges, edge.NewStaticUndirected(i, j))
			}
		}
	}
	return network.NewStatic[int, edge.Static[int]](edges, vertexRange(n)...), nil
}
