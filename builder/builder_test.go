package builder_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/dagnet/builder"
	"github.com/katalvlaran/dagnet/rng"
)

func TestGNPExtremes(t *testing.T) {
	full, err := builder.GNP(5, 1.0, rng.New(1))
	assert.NoError(t, err)
	assert.Equal(t, 10, full.EdgeCount()) // C(5,2)

	empty, err := builder.GNP(5, 0.0, rng.New(1))
	assert.NoError(t, err)
	assert.Equal(t, 0, empty.EdgeCount())
}

func TestGNPValidation(t *testing.T) {
	_, err := builder.GNP(0, 0.5, rng.New(1))
	assert.ErrorIs(t, err, builder.ErrVertexTypeTooSmall)

	_, err = builder.GNP(3, 1.5, rng.New(1))
	assert.ErrorIs(t, err, builder.ErrInvalidArgument)
}

func TestConfigurationModelMatchesDegrees(t *testing.T) {
	degrees := []int{2, 2, 2, 2}
	n, err := builder.ConfigurationModel(degrees, rng.New(7))
	assert.NoError(t, err)
	for v, want := range degrees {
		assert.Equal(t, want, n.Degree(v))
	}
}

func TestConfigurationModelOddSumRejected(t *testing.T) {
	_, err := builder.ConfigurationModel([]int{1, 2}, rng.New(1))
	assert.ErrorIs(t, err, builder.ErrInvalidArgument)
}

func TestExpectedDegreeZeroWeights(t *testing.T) {
	n, err := builder.ExpectedDegree([]float64{0, 0, 0}, rng.New(1))
	assert.NoError(t, err)
	assert.Equal(t, 0, n.EdgeCount())
}

func TestExpectedDegreeValidation(t *testing.T) {
	_, err := builder.ExpectedDegree(nil, rng.New(1))
	assert.ErrorIs(t, err, builder.ErrInvalidArgument)

	// max(weights)=5, sum=6: 5*5=25 > 6, infeasible.
	_, err = builder.ExpectedDegree([]float64{5, 0.5, 0.5}, rng.New(1))
	assert.ErrorIs(t, err, builder.ErrInvalidArgument)
}

func TestDirectedConfigurationModelMatchesDegrees(t *testing.T) {
	in := []int{1, 1, 2}
	out := []int{2, 1, 1}
	n, err := builder.DirectedConfigurationModel(in, out, rng.New(5))
	require.NoError(t, err)
	assert.Equal(t, 4, n.EdgeCount())
}

func TestDirectedConfigurationModelSumMismatchRejected(t *testing.T) {
	_, err := builder.DirectedConfigurationModel([]int{1, 1}, []int{1, 2}, rng.New(1))
	assert.ErrorIs(t, err, builder.ErrInvalidArgument)
}

func TestBarabasiAlbertGrowsFromSeed(t *testing.T) {
	n, err := builder.BarabasiAlbert(10, 2, rng.New(3))
	assert.NoError(t, err)
	assert.Equal(t, 10, n.VertexCount())
	// each of the 8 non-seed vertices attaches exactly m=2 edges.
	assert.Equal(t, 2*8, n.EdgeCount())
}

func TestBarabasiAlbertValidation(t *testing.T) {
	_, err := builder.BarabasiAlbert(3, 3, rng.New(1))
	assert.ErrorIs(t, err, builder.ErrInvalidArgument)
}

func TestFullyMixedTemporalNetworkProducesContacts(t *testing.T) {
	n, err := builder.FullyMixedTemporalNetwork(3, 2.0, 5.0, rng.New(9))
	assert.NoError(t, err)
	assert.Greater(t, n.EdgeCount(), 0)
	for _, e := range n.Edges() {
		assert.True(t, e.CauseTime() < 5.0)
	}
}

func TestFullyMixedTemporalNetworkValidation(t *testing.T) {
	_, err := builder.FullyMixedTemporalNetwork(1, 1.0, 1.0, rng.New(1))
	assert.ErrorIs(t, err, builder.ErrVertexTypeTooSmall)

	_, err = builder.FullyMixedTemporalNetwork(2, 0, 1.0, rng.New(1))
	assert.ErrorIs(t, err, builder.ErrInvalidArgument)
}
