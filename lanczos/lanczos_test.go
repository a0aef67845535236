package lanczos_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/spectral/lanczos"
	"github.com/katalvlaran/spectral/matrix"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// residueTol bounds the re-orthogonalization residue accepted on small
// well-conditioned inputs.
const residueTol = 1e-8

// requireOrthonormal asserts VᵀV ≈ I within tol.
func requireOrthonormal(t *testing.T, v *matrix.Dense, tol float64) {
	t.Helper()
	vt, err := matrix.Transpose(v)
	require.NoError(t, err)
	gram, err := matrix.Mul(vt, v)
	require.NoError(t, err)
	for i := 0; i < gram.Rows(); i++ {
		for j := 0; j < gram.Cols(); j++ {
			want := 0.0
			if i == j {
				want = 1.0
			}
			g, atErr := gram.At(i, j)
			require.NoError(t, atErr)
			assert.InDelta(t, want, g, tol, "VᵀV element (%d,%d)", i, j)
		}
	}
}

// TestTridiagonalize_DiagonalInput verifies shape, symmetry, tridiagonal
// structure and trace preservation on diag(1,2,3,4).
func TestTridiagonalize_DiagonalInput(t *testing.T) {
	a, err := matrix.NewDenseFromRows([][]float64{
		{1, 0, 0, 0},
		{0, 2, 0, 0},
		{0, 0, 3, 0},
		{0, 0, 0, 4},
	})
	require.NoError(t, err)

	res, err := lanczos.Tridiagonalize(a, nil)
	require.NoError(t, err)
	require.False(t, res.Breakdown, "distinct diagonal with full-support start vector must not break down")
	require.NotNil(t, res.T)
	assert.Equal(t, 4, res.T.Rows(), "T rows")
	assert.Equal(t, 4, res.T.Cols(), "T cols")
	assert.Equal(t, 3, res.Steps, "n-1 recurrence steps")

	// The corrected basis stays orthonormal.
	requireOrthonormal(t, res.Basis, residueTol)

	// T is symmetric and tridiagonal up to the correction residue.
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			tij, atErr := res.T.At(i, j)
			require.NoError(t, atErr)
			tji, atErr := res.T.At(j, i)
			require.NoError(t, atErr)
			assert.InDelta(t, tji, tij, residueTol, "T symmetry at (%d,%d)", i, j)
			if i-j > 1 || j-i > 1 {
				assert.InDelta(t, 0.0, tij, residueTol, "T off-tridiagonal at (%d,%d)", i, j)
			}
		}
	}

	// Similarity preserves the trace: tr(T) = tr(A) = 10.
	diag, err := matrix.Diagonal(res.T)
	require.NoError(t, err)
	trace := 0.0
	for _, d := range diag {
		trace += d
	}
	assert.InDelta(t, 10.0, trace, residueTol, "trace preserved under similarity")
}

// TestTridiagonalize_OneByOne verifies the no-iteration boundary case.
func TestTridiagonalize_OneByOne(t *testing.T) {
	a, err := matrix.NewDenseFromRows([][]float64{{7.5}})
	require.NoError(t, err)

	res, err := lanczos.Tridiagonalize(a, nil)
	require.NoError(t, err)
	require.False(t, res.Breakdown)
	require.NotNil(t, res.T)

	v, err := res.T.At(0, 0)
	require.NoError(t, err)
	assert.Equal(t, 7.5, v, "1×1 input is its own tridiagonal form")
	assert.Equal(t, 0, res.Steps, "no recurrence steps for n=1")
}

// TestTridiagonalize_Breakdown verifies that an exhausted Krylov
// subspace is reported as a tagged partial result, not a crash.
func TestTridiagonalize_Breakdown(t *testing.T) {
	// The zero matrix annihilates the start vector immediately: the
	// residual vanishes with the basis at a single column.
	zero, err := matrix.NewZeros(3, 3)
	require.NoError(t, err)

	res, err := lanczos.Tridiagonalize(zero, nil)
	require.NoError(t, err)
	assert.True(t, res.Breakdown, "zero matrix must break down")
	assert.Nil(t, res.T, "no T on breakdown")
	require.NotNil(t, res.Basis)
	assert.Equal(t, 3, res.Basis.Rows(), "partial basis keeps n rows")
	assert.Equal(t, 1, res.Basis.Cols(), "partial basis is a single column")
	assert.Equal(t, 0, res.Steps, "breakdown before any recurrence step")
}

// TestTridiagonalize_NearInvariantStart verifies that a start vector
// that is (numerically) already an eigenvector still yields a valid
// similarity instead of NaNs: for the identity, T must equal I.
func TestTridiagonalize_NearInvariantStart(t *testing.T) {
	ident, err := matrix.NewIdentity(3)
	require.NoError(t, err)

	res, err := lanczos.Tridiagonalize(ident, nil)
	require.NoError(t, err)

	if res.Breakdown {
		// Acceptable: the residual happened to vanish exactly.
		assert.Less(t, res.Basis.Cols(), 3, "partial basis on breakdown")
		return
	}
	require.NotNil(t, res.T)
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			want := 0.0
			if i == j {
				want = 1.0
			}
			v, atErr := res.T.At(i, j)
			require.NoError(t, atErr)
			require.False(t, math.IsNaN(v), "T must be NaN-free at (%d,%d)", i, j)
			assert.InDelta(t, want, v, residueTol, "T of identity at (%d,%d)", i, j)
		}
	}
}

// TestTridiagonalize_AsymmetricInput verifies fail-fast validation.
func TestTridiagonalize_AsymmetricInput(t *testing.T) {
	a, err := matrix.NewDenseFromRows([][]float64{{1, 2}, {3, 4}})
	require.NoError(t, err)

	_, err = lanczos.Tridiagonalize(a, nil)
	assert.ErrorIs(t, err, matrix.ErrAsymmetry, "asymmetric input must error")
}

// TestTridiagonalize_NilInput verifies nil rejection.
func TestTridiagonalize_NilInput(t *testing.T) {
	_, err := lanczos.Tridiagonalize(nil, nil)
	assert.ErrorIs(t, err, matrix.ErrNilMatrix, "nil input must error")
}

// TestTridiagonalize_NoCorrection verifies the None strategy on a small
// well-conditioned input where drift stays negligible.
func TestTridiagonalize_NoCorrection(t *testing.T) {
	a, err := matrix.NewDenseFromRows([][]float64{
		{1, 0, 0},
		{0, 2, 0},
		{0, 0, 3},
	})
	require.NoError(t, err)

	opts := lanczos.DefaultOptions()
	opts.Corrector = lanczos.None{}
	res, err := lanczos.Tridiagonalize(a, &opts)
	require.NoError(t, err)
	require.False(t, res.Breakdown)

	// Three steps are too few for drift to matter; V stays orthonormal.
	requireOrthonormal(t, res.Basis, residueTol)
}
