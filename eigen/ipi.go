// SPDX-License-Identifier: MIT

package eigen

import (
	"math"

	"github.com/katalvlaran/spectral/matrix"
)

// initialEstimate seeds the previous-eigenvalue register so the first
// residual is finite and the loop always runs at least once.
const initialEstimate = 1.0

// InversePowerEigenvalue approximates the eigenvalue of a symmetric
// matrix nearest the shift s via shifted inverse power iteration.
//
// Algorithm Outline:
//  1. B := A − s·I. A shift placed well below the spectrum keeps B
//     positive definite and targets the smallest eigenvalue of A.
//  2. x := all-ones. Per iteration: u = x/‖x‖; solve B·x = u (a linear
//     solve, never an explicit inverse); μ = uᵀx is the dominant
//     eigenvalue of B⁻¹ by the power-iteration principle;
//     λ = 1/μ + s undoes the shift-and-invert transform.
//  3. Stop when |λ − λ_prev| < Tol, or after MaxIterations with
//     Status IterationCapped — the cap is enforced here exactly as in
//     the QR iterator, so a stalled iteration cannot spin forever.
//
// Inputs:
//   - a:     symmetric matrix; symmetry is assumed, not revalidated.
//   - shift: s; choose it outside the spectrum. A shift that coincides
//     with an eigenvalue makes B singular.
//   - opts:  nil means DefaultOptions (Tol 1e-14, 5000 iterations).
//
// Returns:
//   - Value: λ estimate plus Status/Iterations.
//   - error: ErrBadTolerance/ErrBadMaxIterations, ErrNilMatrix,
//     ErrNonSquare; matrix.ErrSingular when the shifted system cannot
//     be solved — a hard error by contract, never swallowed.
//
// Determinism:
//   - All-ones start, fixed solve order, no randomness.
//
// Complexity:
//   - Time O(I·n³) (one LU solve per step), Space O(n²).
func InversePowerEigenvalue(a matrix.Matrix, shift float64, opts *Options) (Value, error) {
	// Resolve and validate the configuration.
	cfg, err := resolveOptions(opIPI, opts)
	if err != nil {
		return Value{}, err
	}
	// Structural validation; symmetry is intentionally not enforced.
	if err = matrix.ValidateSquare(a); err != nil {
		return Value{}, eigenErrorf(opIPI, err)
	}

	// B = A − s·I.
	n := a.Rows()
	ident, err := matrix.NewIdentity(n)
	if err != nil {
		return Value{}, eigenErrorf(opIPI, err)
	}
	scaled, err := matrix.Scale(ident, shift)
	if err != nil {
		return Value{}, eigenErrorf(opIPI, err)
	}
	shifted, err := matrix.Sub(a, scaled)
	if err != nil {
		return Value{}, eigenErrorf(opIPI, err)
	}

	x := matrix.Ones(n)
	lambda := initialEstimate
	status := IterationCapped
	iterations := 0

	var u []float64
	var mu, next float64
	for iter := 1; iter <= cfg.MaxIterations; iter++ {
		// Normalize, then advance through the solve B·x = u.
		u = matrix.VecScale(x, 1/matrix.VecNorm(x))
		if x, err = matrix.Solve(shifted, u); err != nil {
			// A coincident shift surfaces matrix.ErrSingular here.
			return Value{}, eigenErrorf(opIPI, err)
		}

		// μ = uᵀx estimates the dominant eigenvalue of B⁻¹;
		// λ = 1/μ + s maps it back to the spectrum of A.
		mu = matrix.VecDot(u, x)
		next = 1/mu + shift

		iterations = iter
		if math.Abs(next-lambda) < cfg.Tol {
			lambda = next
			status = Converged
			break
		}
		lambda = next
	}

	return Value{Lambda: lambda, Status: status, Iterations: iterations}, nil
}
