// SPDX-License-Identifier: MIT

package eigen

import (
	"sort"

	"github.com/katalvlaran/spectral/matrix"
)

// QREigenvalues approximates the full eigenvalue spectrum of a
// symmetric matrix via Normalized Simultaneous (QR) Iteration.
//
// Algorithm Outline:
//  1. Q := I_n.
//  2. Per iteration: factor A·Q = Q'·R and replace Q with the
//     orthogonal factor Q'; extract the Rayleigh quotient diagonal
//     λ = diag(QᵀAQ).
//  3. Convergence compares SORTED copies of successive λ (Euclidean
//     norm of the difference against Tol) — column reordering between
//     iterations must not masquerade as non-convergence.
//  4. Stop on convergence or after MaxIterations, whichever first; cap
//     exhaustion is reported as Status IterationCapped, not an error.
//
// Inputs:
//   - a:    symmetric matrix; symmetry is assumed, not revalidated, so
//     the tridiagonal output of lanczos (symmetric only up to its
//     correction residue) passes through untouched. Asymmetric input
//     degrades convergence rather than failing.
//   - opts: nil means DefaultOptions (Tol 1e-14, 5000 iterations).
//
// Returns:
//   - Spectrum: Values in raw diagonal order plus Status/Iterations;
//     use Sorted() for ascending order.
//   - error:    ErrBadTolerance/ErrBadMaxIterations, ErrNilMatrix,
//     ErrNonSquare (wrapped with the kernel tag).
//
// Determinism:
//   - Identity start, fixed factorization order, no randomness.
//
// Complexity:
//   - Time O(I·n³), Space O(n²).
func QREigenvalues(a matrix.Matrix, opts *Options) (Spectrum, error) {
	// Resolve and validate the configuration.
	cfg, err := resolveOptions(opNSI, opts)
	if err != nil {
		return Spectrum{}, err
	}
	// Structural validation; symmetry is intentionally not enforced.
	if err = matrix.ValidateSquare(a); err != nil {
		return Spectrum{}, eigenErrorf(opNSI, err)
	}

	// Q starts as the identity; λ_prev seeds with ones so the first
	// residual is finite and the loop always runs at least once.
	n := a.Rows()
	q, err := matrix.NewIdentity(n)
	if err != nil {
		return Spectrum{}, eigenErrorf(opNSI, err)
	}
	prevSorted := matrix.Ones(n)

	var (
		values     []float64 // raw diagonal order of the last iteration
		sorted     []float64 // scratch for the convergence comparison
		status     = IterationCapped
		iterations int
	)
	for iter := 1; iter <= cfg.MaxIterations; iter++ {
		// Orthogonal iteration step: A·Q = Q'·R.
		aq, mulErr := matrix.Mul(a, q)
		if mulErr != nil {
			return Spectrum{}, eigenErrorf(opNSI, mulErr)
		}
		if q, _, err = matrix.QRFactor(aq); err != nil {
			return Spectrum{}, eigenErrorf(opNSI, err)
		}

		// Rayleigh quotient diagonal λ = diag(QᵀAQ).
		qt, trErr := matrix.Transpose(q)
		if trErr != nil {
			return Spectrum{}, eigenErrorf(opNSI, trErr)
		}
		aqNext, mulErr := matrix.Mul(a, q)
		if mulErr != nil {
			return Spectrum{}, eigenErrorf(opNSI, mulErr)
		}
		rayleigh, mulErr := matrix.Mul(qt, aqNext)
		if mulErr != nil {
			return Spectrum{}, eigenErrorf(opNSI, mulErr)
		}
		if values, err = matrix.Diagonal(rayleigh); err != nil {
			return Spectrum{}, eigenErrorf(opNSI, err)
		}

		// Compare sorted copies so index permutation cannot trip the check.
		sorted = make([]float64, n)
		copy(sorted, values)
		sort.Float64s(sorted)
		residual := matrix.VecNorm(matrix.VecSub(prevSorted, sorted))
		prevSorted = sorted
		iterations = iter

		if residual < cfg.Tol {
			status = Converged
			break
		}
	}

	return Spectrum{Values: values, Status: status, Iterations: iterations}, nil
}
