package matrix_test

import (
	"testing"

	"github.com/katalvlaran/spectral/matrix"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestNewSymmetricRandom_Deterministic verifies that equal seeds yield
// bit-identical matrices and different seeds diverge.
func TestNewSymmetricRandom_Deterministic(t *testing.T) {
	a, err := matrix.NewSymmetricRandom(8, 0.5, 42)
	require.NoError(t, err)
	b, err := matrix.NewSymmetricRandom(8, 0.5, 42)
	require.NoError(t, err)

	for i := 0; i < 8; i++ {
		for j := 0; j < 8; j++ {
			av, errA := a.At(i, j)
			require.NoError(t, errA)
			bv, errB := b.At(i, j)
			require.NoError(t, errB)
			assert.Equal(t, av, bv, "element (%d,%d) must match across equal seeds", i, j)
		}
	}

	c, err := matrix.NewSymmetricRandom(8, 0.5, 43)
	require.NoError(t, err)
	diverged := false
	for i := 0; i < 8 && !diverged; i++ {
		for j := 0; j < 8 && !diverged; j++ {
			av, _ := a.At(i, j)
			cv, _ := c.At(i, j)
			diverged = av != cv
		}
	}
	assert.True(t, diverged, "different seeds should produce different matrices")
}

// TestNewSymmetricRandom_Symmetry verifies A = Aᵀ exactly.
func TestNewSymmetricRandom_Symmetry(t *testing.T) {
	a, err := matrix.NewSymmetricRandom(16, 0.3, 7)
	require.NoError(t, err)
	assert.NoError(t, matrix.ValidateSymmetric(a, 0), "generator output must be exactly symmetric")
}

// TestNewSymmetricRandom_Validation verifies order and density guards.
func TestNewSymmetricRandom_Validation(t *testing.T) {
	_, err := matrix.NewSymmetricRandom(0, 0.5, 1)
	assert.ErrorIs(t, err, matrix.ErrInvalidDimensions, "n=0 must error")

	_, err = matrix.NewSymmetricRandom(4, 0, 1)
	assert.ErrorIs(t, err, matrix.ErrBadDensity, "density=0 must error")

	_, err = matrix.NewSymmetricRandom(4, 1.5, 1)
	assert.ErrorIs(t, err, matrix.ErrBadDensity, "density>1 must error")
}
