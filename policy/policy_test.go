package policy_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/dagnet/edge"
	"github.com/katalvlaran/dagnet/policy"
)

// TestLimitedWaitingTimeConstant checks L(a,v)==w for every (a,v).
func TestLimitedWaitingTimeConstant(t *testing.T) {
	p := policy.NewLimitedWaitingTime[int, int](2)
	a := edge.NewTemporalDirected(1, 2, 1)
	assert.Equal(t, 2, p.Linger(a, 2))
	assert.Equal(t, 2, p.Linger(a, 1))
	assert.True(t, p.Bounded())
	assert.Equal(t, 2, p.MaximumLinger())
}

// TestSimpleUnbounded checks Simple reports unbounded linger and that its
// Linger value is large enough that no realistic cause-time gap exceeds it.
func TestSimpleUnbounded(t *testing.T) {
	p := policy.Simple[int, int]{}
	assert.False(t, p.Bounded())
	a := edge.NewTemporalDirected(1, 2, 1)
	assert.Greater(t, p.Linger(a, 2), 1_000_000_000)
}

// TestStochasticPoliciesDeterministic locks in spec.md §4.C: two calls
// with the same (edge, seed, vertex) return the same linger.
func TestStochasticPoliciesDeterministic(t *testing.T) {
	a := edge.NewTemporalDirected(1, 2, 1)

	exp1 := policy.NewExponential[int, int](0.5, 99)
	exp2 := policy.NewExponential[int, int](0.5, 99)
	assert.Equal(t, exp1.Linger(a, 2), exp2.Linger(a, 2))

	geo1 := policy.NewGeometric[int, int](0.3, 7)
	geo2 := policy.NewGeometric[int, int](0.3, 7)
	assert.Equal(t, geo1.Linger(a, 2), geo2.Linger(a, 2))
}

// TestStochasticPoliciesVaryByVertex checks that lingers computed at two
// different shared vertices of the same edge differ (w.h.p.) because the
// stream identifier folds in the vertex.
func TestStochasticPoliciesVaryByVertex(t *testing.T) {
	a := edge.NewTemporalDirectedHyper([]int{1}, []int{2, 3}, 1)
	exp := policy.NewExponential[int, int](0.5, 99)
	l2 := exp.Linger(a, 2)
	l3 := exp.Linger(a, 3)
	assert.NotEqual(t, l2, l3)
}
