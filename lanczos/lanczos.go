// SPDX-License-Identifier: MIT

package lanczos

import (
	"fmt"

	"github.com/katalvlaran/spectral/matrix"
)

// opTridiagonalize tags wrapped errors from this kernel.
const opTridiagonalize = "Tridiagonalize"

// lanczosErrorf wraps err with the kernel tag, preserving errors.Is.
func lanczosErrorf(err error) error {
	return fmt.Errorf("%s: %w", opTridiagonalize, err)
}

// Tridiagonalize reduces the symmetric matrix a to tridiagonal form via
// Lanczos iterations with per-step basis correction.
//
// Algorithm Outline:
//  1. Validate a (non-nil, square, symmetric within SymmetryEps).
//  2. q₁ = normalized all-ones vector; V = [q₁];
//     r = A·q₁ − (q₁ᵀA·q₁)·q₁; b = ‖r‖.
//  3. For j = 2..n:
//     q_j = r/b; r = A·q_j − b·q_{j−1};
//     a_j = q_jᵀr; r −= a_j·q_j; b = ‖r‖;
//     append q_j to V and apply the basis corrector.
//  4. A vanished b with V still short of n columns is a breakdown: the
//     Krylov subspace is exhausted and the partial basis is returned as
//     a tagged Result. A vanished b on the final column simply ends the
//     recurrence — the basis is already complete.
//  5. T = VᵀAV.
//
// The residual check covers the very first b as well, so a start that
// already spans an invariant subspace (e.g. a zero matrix) reports
// breakdown instead of dividing by zero.
//
// Inputs:
//   - a:    symmetric matrix (n ≥ 1).
//   - opts: nil means DefaultOptions (full-QR correction).
//
// Returns:
//   - Result: tagged outcome; see the Result docs for the breakdown
//     contract.
//   - error:  validation or corrector failures, wrapped with the
//     kernel tag; matrix.ErrAsymmetry for asymmetric input.
//
// Determinism:
//   - Fixed recurrence order and a deterministic starting vector; no
//     randomness, no global state.
//
// Complexity:
//   - Time O(n³) for the recurrence, O(n⁴) with full-QR correction.
//   - Space O(n²).
func Tridiagonalize(a matrix.Matrix, opts *Options) (Result, error) {
	// Resolve options; nil corrector falls back to the default.
	cfg := DefaultOptions()
	if opts != nil {
		cfg = *opts
	}
	if cfg.Corrector == nil {
		cfg.Corrector = FullQR{}
	}

	// Symmetry is load-bearing: the three-term recurrence only spans
	// the Krylov subspace when A = Aᵀ.
	if err := matrix.ValidateSymmetric(a, SymmetryEps); err != nil {
		return Result{}, lanczosErrorf(err)
	}
	n := a.Rows()

	// A 1×1 matrix is its own tridiagonal form; no iteration needed.
	if n == 1 {
		basis, err := matrix.NewColumn([]float64{1})
		if err != nil {
			return Result{}, lanczosErrorf(err)
		}
		t, err := toDenseSquare(a)
		if err != nil {
			return Result{}, lanczosErrorf(err)
		}

		return Result{T: t, Basis: basis, Steps: 0}, nil
	}

	// Initial column: normalized all-ones vector.
	q := matrix.Ones(n)
	q = matrix.VecScale(q, 1/matrix.VecNorm(q))
	basis, err := matrix.NewColumn(q)
	if err != nil {
		return Result{}, lanczosErrorf(err)
	}

	// First recurrence step: r = A·q − (qᵀA·q)·q.
	r, err := matrix.MatVec(a, q)
	if err != nil {
		return Result{}, lanczosErrorf(err)
	}
	alpha := matrix.VecDot(q, r)
	r = matrix.VecSub(r, matrix.VecScale(q, alpha))
	beta := matrix.VecNorm(r)

	// Exhausted already: the start vector spans an invariant subspace.
	if beta == 0 {
		return Result{Basis: basis, Breakdown: true, Steps: 0}, nil
	}

	steps := 0
	var prev []float64
	for j := 2; j <= n; j++ {
		// Advance the three-term recurrence.
		prev = q
		q = matrix.VecScale(r, 1/beta)
		if r, err = matrix.MatVec(a, q); err != nil {
			return Result{}, lanczosErrorf(err)
		}
		r = matrix.VecSub(r, matrix.VecScale(prev, beta))
		alpha = matrix.VecDot(q, r)
		r = matrix.VecSub(r, matrix.VecScale(q, alpha))
		beta = matrix.VecNorm(r)

		// Grow the basis, then repair its orthonormality.
		if basis, err = matrix.AppendColumn(basis, q); err != nil {
			return Result{}, lanczosErrorf(err)
		}
		if basis, err = cfg.Corrector.Correct(basis); err != nil {
			return Result{}, lanczosErrorf(err)
		}
		steps++

		// Breakdown: residual vanished with the basis still incomplete.
		if beta == 0 && basis.Cols() < n {
			return Result{Basis: basis, Breakdown: true, Steps: steps}, nil
		}
	}

	// T = VᵀAV; tridiagonal up to the correction residue.
	vt, err := matrix.Transpose(basis)
	if err != nil {
		return Result{}, lanczosErrorf(err)
	}
	av, err := matrix.Mul(a, basis)
	if err != nil {
		return Result{}, lanczosErrorf(err)
	}
	t, err := matrix.Mul(vt, av)
	if err != nil {
		return Result{}, lanczosErrorf(err)
	}

	return Result{T: t, Basis: basis, Steps: steps}, nil
}

// toDenseSquare materializes a square Matrix into a fresh *Dense via
// the public surface (the 1×1 shortcut is the only caller).
func toDenseSquare(m matrix.Matrix) (*matrix.Dense, error) {
	if d, ok := m.(*matrix.Dense); ok {
		return d.Clone().(*matrix.Dense), nil
	}

	n := m.Rows()
	out, err := matrix.NewDense(n, n)
	if err != nil {
		return nil, err
	}
	var v float64
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if v, err = m.At(i, j); err != nil {
				return nil, err
			}
			if err = out.Set(i, j, v); err != nil {
				return nil, err
			}
		}
	}

	return out, nil
}
