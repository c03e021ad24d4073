package builder

import (
	"fmt"

	"github.com/katalvlaran/dagnet/edge"
	"github.com/katalvlaran/dagnet/network"
	"github.com/katalvlaran/dagnet/rng"
	"github.com/katalvlaran/dagnet/static"
)

// ConfigurationModel builds a random simple graph matching the exact degree
// sequence degrees (vertex i has degree degrees[i]) via stub matching: each
// vertex contributes degrees[i] "stubs", the stubs are shuffled, and
// consecutive pairs become edges. A shuffle producing a self-loop (when
// WithSelfLoops isn't set) or a repeated pair is rejected and retried, up to
// WithMaxAttempts times (default 1000); ErrInvalidArgument is returned if no
// attempt yields a simple pairing.
func ConfigurationModel(degrees []int, src rng.Source, opts ...BuilderOption) (*static.Net[int], error) {
	if len(degrees) < 1 {
		return nil, fmt.Errorf("builder: ConfigurationModel: %w", ErrVertexTypeTooSmall)
	}
	sum := 0
	for _, d := range degrees {
		if d < 0 {
			return nil, fmt.Errorf("builder: ConfigurationModel: negative degree: %w", ErrInvalidArgument)
		}
		sum += d
	}
	if sum%2 != 0 {
		return nil, fmt.Errorf("builder: ConfigurationModel: odd degree sum %d: %w", sum, ErrInvalidArgument)
	}

	cfg := newConfig(opts...)
	stubs := make([]int, 0, sum)
	for v, d := range degrees {
		for k := 0; k < d; k++ {
			stubs = append(stubs, v)
		}
	}

	verts := vertexRange(len(degrees))
	for attempt := 0; attempt < cfg.maxAttempts; attempt++ {
		perm := shuffled(stubs, src)
		edges, ok := make([]edge.Static[int], 0, sum/2), true
		seen := make(map[string]bool, sum/2)
		for i := 0; i+1 < len(perm); i += 2 {
			u, v := perm[i], perm[i+1]
			if u == v && !cfg.allowLoops {
				ok = false
				break
			}
			e := edge.NewStaticUndirected(u, v)
			if seen[e.Key()] {
				ok = false
				break
			}
			seen[e.Key()] = true
			edges = append(edges, e)
		}
		if ok {
			return network.NewStatic[int, edge.Static[int]](edges, verts...), nil
		}
	}
	return nil, fmt.Errorf("builder: ConfigurationModel: exhausted %d attempts without a simple pairing: %w", cfg.maxAttempts, ErrInvalidArgument)
}

// DirectedConfigurationModel builds a random simple directed graph matching
// exact in-/out-degree sequences (vertex i has in-degree inDegrees[i] and
// out-degree outDegrees[i]) via stub matching: vertex i contributes
// outDegrees[i] tail stubs and inDegrees[i] head stubs, the head stubs are
// shuffled independently, and tail stub k is wired to shuffled head stub k.
// Σin must equal Σout (ErrInvalidArgument otherwise, spec.md §7 "in-sum ≠
// out-sum (directed)"; grounded on reticula's
// random_directed_degree_sequence_graph). A shuffle producing a self-loop
// (when WithSelfLoops isn't set) or a repeated arc is rejected and retried,
// up to WithMaxAttempts times (default 1000); ErrInvalidArgument is returned
// if no attempt yields a simple pairing.
func DirectedConfigurationModel(inDegrees, outDegrees []int, src rng.Source, opts ...BuilderOption) (*static.Net[int], error) {
	if len(inDegrees) < 1 || len(inDegrees) != len(outDegrees) {
		return nil, fmt.Errorf("builder: DirectedConfigurationModel: %w", ErrInvalidArgument)
	}
	inSum, outSum := 0, 0
	for v := range inDegrees {
		if inDegrees[v] < 0 || outDegrees[v] < 0 {
			return nil, fmt.Errorf("builder: DirectedConfigurationModel: negative degree: %w", ErrInvalidArgument)
		}
		inSum += inDegrees[v]
		outSum += outDegrees[v]
	}
	if inSum != outSum {
		return nil, fmt.Errorf("builder: DirectedConfigurationModel: in-sum %d != out-sum %d: %w", inSum, outSum, ErrInvalidArgument)
	}

	cfg := newConfig(opts...)
	tailStubs := make([]int, 0, outSum)
	for v, d := range outDegrees {
		for k := 0; k < d; k++ {
			tailStubs = append(tailStubs, v)
		}
	}
	headStubs := make([]int, 0, inSum)
	for v, d := range inDegrees {
		for k := 0; k < d; k++ {
			headStubs = append(headStubs, v)
		}
	}

	verts := vertexRange(len(inDegrees))
	for attempt := 0; attempt < cfg.maxAttempts; attempt++ {
		heads := shuffled(headStubs, src)
		edges, ok := make([]edge.Static[int], 0, outSum), true
		seen := make(map[string]bool, outSum)
		for i, u := range tailStubs {
			v := heads[i]
			if u == v && !cfg.allowLoops {
				ok = false
				break
			}
			e := edge.NewStaticDirected(u, v)
			if seen[e.Key()] {
				ok = false
				break
			}
			seen[e.Key()] = true
			edges = append(edges, e)
		}
		if ok {
			return network.NewStatic[int, edge.Static[int]](edges, verts...), nil
		}
	}
	return nil, fmt.Errorf("builder: DirectedConfigurationModel: exhausted %d attempts without a simple pairing: %w", cfg.maxAttempts, ErrInvalidArgument)
}

// shuffled returns a Fisher-Yates shuffled copy of vs, drawing from src.
func shuffled[T any](vs []T, src rng.Source) []T {
	out := make([]T, len(vs))
	copy(out, vs)
	for i := len(out) - 1; i > 0; i-- {
		j := src.Intn(i + 1)
		out[i], out[j] = out[j], out[i]
	}
	return out
}
