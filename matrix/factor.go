// SPDX-License-Identifier: MIT

// Package matrix: factorizations — Householder QR and Doolittle LU —
// plus the single right-hand-side linear solve layered on LU.
//
// Purpose:
//   - QRFactor orthonormalizes: both the QR eigenvalue iterator and the
//     Lanczos basis correction consume the orthogonal factor Q directly,
//     so this kernel returns Q with the conventional A = Q·R orientation
//     (thin Q for rectangular input, rows ≥ cols).
//   - LU/Solve back the shift-and-invert step of inverse power
//     iteration; a zero pivot surfaces ErrSingular, never a silent NaN.
//
// Determinism:
//   - No pivoting, fixed reflector/column orders: identical inputs give
//     identical factors, bit for bit.
package matrix

import (
	"fmt"
	"math"
)

// toDense materializes any Matrix into a fresh *Dense working copy.
// *Dense inputs are cloned; interface inputs are read once via At.
// Complexity: O(r*c).
func toDense(m Matrix) (*Dense, error) {
	// Fast path: clone preserves the concrete type for *Dense.
	if d, ok := m.(*Dense); ok {
		return d.Clone().(*Dense), nil
	}

	// Fallback: copy element-wise with a fixed i→j order.
	rows, cols := m.Rows(), m.Cols()
	out, err := NewDense(rows, cols)
	if err != nil {
		return nil, err
	}
	var v float64
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			if v, err = m.At(i, j); err != nil {
				return nil, fmt.Errorf("At(%d,%d): %w", i, j, err)
			}
			out.data[i*cols+j] = v
		}
	}

	return out, nil
}

// QRFactor computes the Householder factorization A = Q·R.
//
// For an r×c input with r ≥ c it returns the thin factors: Q is r×c
// with orthonormal columns and R is c×c upper triangular. For square
// input Q is a full orthogonal matrix.
//
// Implementation:
//   - Stage 1: validate (non-nil, r ≥ c); copy A into the working R;
//     initialize the reflector accumulator H to identity.
//   - Stage 2: for k = 0..c-1, build the column reflector from R[k:,k]
//     and apply it to R (columns k..c-1) and to H (all columns).
//     H accumulates H_{c-1}···H_0, so Q = Hᵀ restricted to c columns.
//   - Stage 3: clamp roundoff below R's diagonal to exact zeros.
//
// Errors:
//   - ErrNilMatrix, ErrTallRequired (wrapped with opQR).
//
// Determinism:
//   - Fixed k→{i,j} visitation; zero columns are skipped, leaving the
//     corresponding accumulator rows untouched.
//
// Complexity:
//   - Time O(r²·c), Space O(r²) for the accumulator.
//
// AI-Hints:
//   - Column signs are not canonicalized; Q is orthonormal but column
//     signs may differ from other QR implementations. Diagonal
//     Rayleigh quotients and re-orthogonalization are sign-invariant.
func QRFactor(m Matrix) (*Dense, *Dense, error) {
	// Validate input non-nil and tall (r ≥ c).
	if err := ValidateNotNil(m); err != nil {
		return nil, nil, matrixErrorf(opQR, err)
	}
	rows, cols := m.Rows(), m.Cols()
	if rows < cols {
		return nil, nil, matrixErrorf(opQR, ErrTallRequired)
	}

	// Working copy of A; becomes R under the reflections.
	work, err := toDense(m)
	if err != nil {
		return nil, nil, matrixErrorf(opQR, err)
	}

	// Reflector accumulator H, initialized to identity.
	acc, err := NewDense(rows, rows)
	if err != nil {
		return nil, nil, matrixErrorf(opQR, err)
	}
	for i := 0; i < rows; i++ {
		acc.data[i*rows+i] = 1.0
	}

	// Householder vector workspace.
	v := make([]float64, rows)
	var (
		norm, alpha float64 // column norm and reflection scalar
		beta, tau   float64 // vᵀv and the 2/β factor
		sum, aik    float64 // accumulator and element temporary
	)
	for k := 0; k < cols; k++ {
		// Norm of the trailing column R[k:rows, k].
		norm = NormZero
		for i := k; i < rows; i++ {
			aik = work.data[i*cols+k]
			norm += aik * aik
		}
		norm = math.Sqrt(norm)
		if norm == NormZero {
			continue // skip zero column
		}

		// alpha = -sign(R[k,k]) * norm avoids cancellation.
		alpha = -math.Copysign(norm, work.data[k*cols+k])

		// Build the reflector v = x - alpha·e_k on rows k..rows-1.
		for i := 0; i < k; i++ {
			v[i] = 0.0
		}
		for i := k; i < rows; i++ {
			v[i] = work.data[i*cols+k]
		}
		v[k] -= alpha

		// β = vᵀv and τ = 2/β; degenerate reflectors are skipped.
		beta = NormZero
		for i := k; i < rows; i++ {
			beta += v[i] * v[i]
		}
		if beta == NormZero {
			continue
		}
		tau = 2.0 / beta

		// Apply the reflection to R (trailing columns only).
		for j := k; j < cols; j++ {
			sum = ZeroSum
			for i := k; i < rows; i++ {
				sum += v[i] * work.data[i*cols+j]
			}
			for i := k; i < rows; i++ {
				work.data[i*cols+j] -= tau * v[i] * sum
			}
		}

		// Accumulate the reflection into H (all columns).
		for j := 0; j < rows; j++ {
			sum = ZeroSum
			for i := k; i < rows; i++ {
				sum += v[i] * acc.data[i*rows+j]
			}
			for i := k; i < rows; i++ {
				acc.data[i*rows+j] -= tau * v[i] * sum
			}
		}
	}

	// Thin Q = Hᵀ restricted to the leading c columns.
	q, err := NewDense(rows, cols)
	if err != nil {
		return nil, nil, matrixErrorf(opQR, err)
	}
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			q.data[i*cols+j] = acc.data[j*rows+i]
		}
	}

	// Thin R = leading c×c block; clamp roundoff below the diagonal.
	r, err := NewDense(cols, cols)
	if err != nil {
		return nil, nil, matrixErrorf(opQR, err)
	}
	for i := 0; i < cols; i++ {
		for j := i; j < cols; j++ {
			r.data[i*cols+j] = work.data[i*cols+j]
		}
	}

	return q, r, nil
}

// LU computes the Doolittle factorization A = L*U with unit diagonal on
// L and no pivoting (deterministic by construction).
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare, ErrSingular on a zero pivot
//     (all wrapped with opLU).
//
// Determinism:
//   - Fixed i→{j≥i} order for U, then {j>i}→i for L.
//
// Complexity:
//   - Time O(n³), Space O(n²).
//
// Numerical stability requires pivoting upstream; callers in this
// module shift their systems to diagonal dominance instead.
func LU(m Matrix) (*Dense, *Dense, error) {
	// Validate input non-nil and square.
	if err := ValidateSquare(m); err != nil {
		return nil, nil, matrixErrorf(opLU, err)
	}

	// Materialize the input and allocate L and U.
	n := m.Rows()
	src, err := toDense(m)
	if err != nil {
		return nil, nil, matrixErrorf(opLU, err)
	}
	lower, err := NewDense(n, n)
	if err != nil {
		return nil, nil, matrixErrorf(opLU, err)
	}
	upper, err := NewDense(n, n)
	if err != nil {
		return nil, nil, matrixErrorf(opLU, err)
	}

	// Unit lower-triangular diagonal.
	for i := 0; i < n; i++ {
		lower.data[i*n+i] = 1.0
	}

	var sum, pivot float64
	var baseI, baseJ int
	for i := 0; i < n; i++ {
		// Row i of U for j ≥ i.
		baseI = i * n
		for j := i; j < n; j++ {
			sum = ZeroSum
			for k := 0; k < i; k++ {
				sum += lower.data[baseI+k] * upper.data[k*n+j]
			}
			upper.data[baseI+j] = src.data[baseI+j] - sum
		}

		// Zero-pivot guard (deterministic singularity detection).
		pivot = upper.data[baseI+i]
		if pivot == ZeroPivot {
			return nil, nil, matrixErrorf(opLU, ErrSingular)
		}

		// Column i of L for j > i.
		for j := i + 1; j < n; j++ {
			sum = ZeroSum
			baseJ = j * n
			for k := 0; k < i; k++ {
				sum += lower.data[baseJ+k] * upper.data[k*n+i]
			}
			lower.data[baseJ+i] = (src.data[baseJ+i] - sum) / pivot
		}
	}

	return lower, upper, nil
}

// Solve finds x in m·x = b via Doolittle LU and two triangular solves.
//
// Contract: m non-nil and square; len(b) == m.Rows().
// Errors:
//   - ErrNilMatrix, ErrNonSquare, ErrBadVector (wrapped with opSolve).
//   - ErrSingular when a zero pivot is met — a coincident shift in
//     inverse power iteration surfaces here as a hard error.
//
// Determinism: forward i↑ then backward i↓, fixed inner k order.
// Complexity: Time O(n³) for the factorization, O(n²) for the solves.
func Solve(m Matrix, b []float64) ([]float64, error) {
	// Validate the pairing before factorizing.
	if err := ValidateSquare(m); err != nil {
		return nil, matrixErrorf(opSolve, err)
	}
	if err := ValidateVecLen(b, m.Rows()); err != nil {
		return nil, matrixErrorf(opSolve, err)
	}

	// Factorize; ErrSingular propagates from the zero-pivot guard.
	lower, upper, err := LU(m)
	if err != nil {
		return nil, matrixErrorf(opSolve, err)
	}

	n := m.Rows()
	y := make([]float64, n) // forward substitution workspace
	x := make([]float64, n) // backward substitution result

	var sum, pivot float64
	var base int
	// Forward substitution: L·y = b (unit diagonal, no division).
	for i := 0; i < n; i++ {
		sum = ZeroSum
		base = i * n
		for k := 0; k < i; k++ {
			sum += lower.data[base+k] * y[k]
		}
		y[i] = b[i] - sum
	}

	// Backward substitution: U·x = y.
	for i := n - 1; i >= 0; i-- {
		sum = ZeroSum
		base = i * n
		for k := i + 1; k < n; k++ {
			sum += upper.data[base+k] * x[k]
		}
		pivot = upper.data[base+i]
		if pivot == ZeroPivot {
			return nil, matrixErrorf(opSolve, ErrSingular)
		}
		x[i] = (y[i] - sum) / pivot
	}

	return x, nil
}
