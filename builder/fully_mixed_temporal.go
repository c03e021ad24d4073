package builder

import (
	"fmt"
	"math"

	"github.com/katalvlaran/dagnet/edge"
	"github.com/katalvlaran/dagnet/network"
	"github.com/katalvlaran/dagnet/rng"
)

// FullyMixedTemporalNetwork builds the temporal-network analogue of a
// complete graph: every ordered pair of distinct vertices (i,j) gets its own
// independent homogeneous Poisson process of contacts (mean inter-arrival
// 1/rate) over [0, duration), generated by inverse-CDF exponential sampling
// from src. Useful as a null-model temporal network with no community
// structure or burstiness, against which MRRM-shuffled real networks can be
// compared.
func FullyMixedTemporalNetwork(n int, rate, duration float64, src rng.Source) (*network.Network[int, edge.TemporalDirected[int, float64]], error) {
	if n < 2 {
		return nil, fmt.Errorf("builder: FullyMixedTemporalNetwork: n=%d: %w", n, ErrVertexTypeTooSmall)
	}
	if rate <= 0 || duration <= 0 {
		return nil, fmt.Errorf("builder: FullyMixedTemporalNetwork: rate=%v duration=%v: %w", rate, duration, ErrInvalidArgument)
	}

	edges := make([]edge.TemporalDirected[int, float64], 0)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if i == j {
				continue
			}
			for t := nextArrival(0, rate, src); t < duration; t = nextArrival(t, rate, src) {
				edges = append(edges, edge.NewTemporalDirected(i, j, t))
			}
		}
	}
	return network.NewTemporal[int, float64, edge.TemporalDirected[int, float64]](edges, vertexRange(n)...), nil
}

// nextArrival draws the next Poisson-process arrival time after prev, given
// rate, via inverse-CDF exponential sampling: -ln(1-U)/rate.
func nextArrival(prev, rate float64, src rng.Source) float64 {
	return prev - math.Log(1-src.Float64())/rate
}
