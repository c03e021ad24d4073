package builder

import "errors"

// ErrVertexTypeTooSmall is returned when a generator would need a vertex
// space larger than V can represent (spec.md §7). Every generator here fixes
// V to int, so none needs a vertex space that int cannot hold; GNP and
// ConfigurationModel return this error for fewer than one vertex, and
// FullyMixedTemporalNetwork for fewer than two.
var ErrVertexTypeTooSmall = errors.New("builder: vertex count too small")

// ErrInvalidArgument is returned for ill-formed generator parameters: vertex
// or attachment counts outside a generator's valid range, a degree sequence
// with an odd sum or mismatched in-/out-sum, a probability outside [0,1], an
// infeasible expected-degree sequence, a Barabási–Albert attachment count
// exceeding the existing vertex set, and similar domain violations.
var ErrInvalidArgument = errors.New("builder: invalid argument")
