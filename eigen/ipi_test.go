package eigen_test

import (
	"testing"

	"github.com/katalvlaran/spectral/eigen"
	"github.com/katalvlaran/spectral/matrix"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestInversePowerEigenvalue_SmallestOfDiagonal verifies the round-trip
// property: for diag(1,2,3) with a shift far below the spectrum, the
// iteration converges to the smallest eigenvalue.
func TestInversePowerEigenvalue_SmallestOfDiagonal(t *testing.T) {
	a, err := matrix.NewDenseFromRows([][]float64{
		{1, 0, 0},
		{0, 2, 0},
		{0, 0, 3},
	})
	require.NoError(t, err)

	val, err := eigen.InversePowerEigenvalue(a, -100, nil)
	require.NoError(t, err)
	assert.Equal(t, eigen.Converged, val.Status)
	assert.InDelta(t, 1.0, val.Lambda, 1e-9, "smallest eigenvalue of diag(1,2,3)")
}

// TestInversePowerEigenvalue_NonDiagonal verifies λ_min = 1 for
// [[2,1],[1,2]] (exact eigenvalues {1,3}).
func TestInversePowerEigenvalue_NonDiagonal(t *testing.T) {
	a, err := matrix.NewDenseFromRows([][]float64{{2, 1}, {1, 2}})
	require.NoError(t, err)

	val, err := eigen.InversePowerEigenvalue(a, -100, nil)
	require.NoError(t, err)
	assert.Equal(t, eigen.Converged, val.Status)
	assert.InDelta(t, 1.0, val.Lambda, 1e-9, "smallest eigenvalue")
}

// TestInversePowerEigenvalue_SingularShift verifies that a shift equal
// to an eigenvalue surfaces ErrSingular as a hard error.
func TestInversePowerEigenvalue_SingularShift(t *testing.T) {
	a, err := matrix.NewDenseFromRows([][]float64{
		{1, 0, 0},
		{0, 2, 0},
		{0, 0, 3},
	})
	require.NoError(t, err)

	_, err = eigen.InversePowerEigenvalue(a, 1, nil)
	assert.ErrorIs(t, err, matrix.ErrSingular, "coincident shift must fail the solve")
}

// TestInversePowerEigenvalue_IterationCap verifies the enforced cap:
// one iteration, tagged status, no error.
func TestInversePowerEigenvalue_IterationCap(t *testing.T) {
	a, err := matrix.NewDenseFromRows([][]float64{
		{1, 0, 0},
		{0, 2, 0},
		{0, 0, 3},
	})
	require.NoError(t, err)

	opts := eigen.Options{Tol: eigen.DefaultTolerance, MaxIterations: 1}
	val, err := eigen.InversePowerEigenvalue(a, -100, &opts)
	require.NoError(t, err, "cap exhaustion is not an error")
	assert.Equal(t, eigen.IterationCapped, val.Status, "status must tag the capped run")
	assert.Equal(t, 1, val.Iterations, "exactly one iteration")
}

// TestInversePowerEigenvalue_OneByOne verifies the boundary case [[c]].
func TestInversePowerEigenvalue_OneByOne(t *testing.T) {
	a, err := matrix.NewDenseFromRows([][]float64{{5}})
	require.NoError(t, err)

	val, err := eigen.InversePowerEigenvalue(a, -100, nil)
	require.NoError(t, err)
	assert.Equal(t, eigen.Converged, val.Status)
	assert.InDelta(t, 5.0, val.Lambda, 1e-12, "1×1 eigenvalue is the entry itself")
}

// TestInversePowerEigenvalue_Validation verifies option and input
// validation.
func TestInversePowerEigenvalue_Validation(t *testing.T) {
	a, err := matrix.NewDenseFromRows([][]float64{{1, 0}, {0, 2}})
	require.NoError(t, err)

	_, err = eigen.InversePowerEigenvalue(a, -100, &eigen.Options{Tol: -1, MaxIterations: 10})
	assert.ErrorIs(t, err, eigen.ErrBadTolerance, "negative tolerance must error")

	_, err = eigen.InversePowerEigenvalue(a, -100, &eigen.Options{Tol: 1e-14, MaxIterations: 0})
	assert.ErrorIs(t, err, eigen.ErrBadMaxIterations, "zero cap must error")

	_, err = eigen.InversePowerEigenvalue(nil, -100, nil)
	assert.ErrorIs(t, err, matrix.ErrNilMatrix, "nil input must error")
}
