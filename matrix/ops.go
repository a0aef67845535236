// SPDX-License-Identifier: MIT

// Package matrix: dense kernels shared by the iterative eigenvalue
// routines — multiplication, transpose, scaling, subtraction, MatVec,
// diagonal extraction and the vector helpers (norm, dot, scale).
//
// Notes:
//   - Every kernel validates through the central validators and wraps
//     failures with its operation tag via matrixErrorf.
//   - Every kernel has a *Dense fast path over the flat backing slice
//     and a generic At/Set fallback with a fixed i→j(→k) order.
package matrix

import (
	"fmt"
	"math"
)

// NormZero is the additive identity for norm and accumulation operations.
const NormZero = 0.0

// ZeroSum is the initial sum value for substitution and dot-product loops.
const ZeroSum = 0.0

// ZeroPivot is the sentinel for detecting a zero pivot in LU/Solve routines.
const ZeroPivot = 0.0

// Operation name constants for unified error wrapping and reducing magic strings.
const (
	opSub       = "Sub"
	opMul       = "Mul"
	opTranspose = "Transpose"
	opScale     = "Scale"
	opMatVec    = "MatVec"
	opDiagonal  = "Diagonal"
	opQR        = "QR"
	opLU        = "LU"
	opSolve     = "Solve"
	opSymRand   = "SymmetricRandom"
)

// matrixErrorf wraps err with an operation tag, preserving the original
// error via %w so call sites keep errors.Is/As matching. Use only when
// err != nil; wrapping a nil cause is a programmer error.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// Sub computes the element-wise difference C = A - B as a fresh Dense.
//
// Inputs must be non-nil and share a shape; operands are not mutated.
// Errors: ErrNilMatrix, ErrDimensionMismatch (wrapped with opSub).
// Determinism: flat 0..n-1 fast path; fixed i→j fallback.
// Complexity: Time O(r*c), Space O(r*c).
func Sub(a, b Matrix) (*Dense, error) {
	// Validate shapes match.
	if err := ValidateBinarySameShape(a, b); err != nil {
		return nil, matrixErrorf(opSub, err)
	}

	// Allocate result Dense.
	rows, cols := a.Rows(), a.Cols()
	res, err := NewDense(rows, cols)
	if err != nil {
		return nil, matrixErrorf(opSub, err)
	}

	// Fast path: *Dense with *Dense → single flat loop.
	if da, okA := a.(*Dense); okA {
		if db, okB := b.(*Dense); okB {
			length := rows * cols
			for idx := 0; idx < length; idx++ { // deterministic 0..n-1
				res.data[idx] = da.data[idx] - db.data[idx]
			}

			return res, nil
		}
	}

	// Fallback: interface path with fixed i→j order.
	var av, bv float64
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			if av, err = a.At(i, j); err != nil {
				return nil, matrixErrorf(opSub, fmt.Errorf("At(%d,%d): %w", i, j, err))
			}
			if bv, err = b.At(i, j); err != nil {
				return nil, matrixErrorf(opSub, fmt.Errorf("At(%d,%d): %w", i, j, err))
			}
			if err = res.Set(i, j, av-bv); err != nil {
				return nil, matrixErrorf(opSub, fmt.Errorf("Set(%d,%d): %w", i, j, err))
			}
		}
	}

	return res, nil
}

// Mul performs standard matrix multiplication C = A × B (no aliasing).
//
// Inputs: A (r×n), B (n×c); inner dimensions must agree.
// Errors: ErrNilMatrix, ErrDimensionMismatch (wrapped with opMul).
// Determinism: i→k→j fast path with zero-skip on A[i,k]; i→j→k fallback.
// Complexity: Time O(r*n*c), Space O(r*c).
//
// AI-Hints:
//   - Keep operands as *Dense to unlock the row-major fast path.
//   - Skipping zero A[i,k] pays off on the sparse-ish generator outputs.
func Mul(a, b Matrix) (*Dense, error) {
	// Validate inputs via the canonical validator.
	if err := ValidateMulCompatible(a, b); err != nil {
		return nil, matrixErrorf(opMul, err)
	}

	// Allocate result Dense.
	aRows, aCols, bCols := a.Rows(), a.Cols(), b.Cols()
	res, err := NewDense(aRows, bCols)
	if err != nil {
		return nil, matrixErrorf(opMul, err)
	}

	var av, bv, current float64
	// Fast path for two Dense matrices: row-major i→k→j.
	if da, okA := a.(*Dense); okA {
		if db, okB := b.(*Dense); okB {
			var rowOffsetA, rowOffsetB, rowOffsetR int
			for i := 0; i < aRows; i++ {
				rowOffsetA = i * aCols
				rowOffsetR = i * bCols
				for k := 0; k < aCols; k++ {
					av = da.data[rowOffsetA+k]
					if av == 0 {
						continue // skip zero for performance
					}
					rowOffsetB = k * bCols
					for j := 0; j < bCols; j++ {
						res.data[rowOffsetR+j] += av * db.data[rowOffsetB+j]
					}
				}
			}

			return res, nil
		}
	}

	// Fallback: generic interface triple loop (i→j→k).
	for i := 0; i < aRows; i++ {
		for j := 0; j < bCols; j++ {
			current = ZeroSum
			for k := 0; k < aCols; k++ {
				if av, err = a.At(i, k); err != nil {
					return nil, matrixErrorf(opMul, fmt.Errorf("At(%d,%d): %w", i, k, err))
				}
				if av == 0 {
					continue // skip zero for performance
				}
				if bv, err = b.At(k, j); err != nil {
					return nil, matrixErrorf(opMul, fmt.Errorf("At(%d,%d): %w", k, j, err))
				}
				current += av * bv // accumulate product
			}
			if err = res.Set(i, j, current); err != nil {
				return nil, matrixErrorf(opMul, fmt.Errorf("Set(%d,%d): %w", i, j, err))
			}
		}
	}

	return res, nil
}

// Transpose returns a new matrix with rows and columns swapped (mᵀ).
//
// Errors: ErrNilMatrix (wrapped with opTranspose).
// Determinism: fixed traversal orders independent of data values.
// Complexity: Time O(r*c), Space O(r*c).
func Transpose(m Matrix) (*Dense, error) {
	// Validate input non-nil.
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}

	// Allocate result Dense with flipped dimensions.
	rows, cols := m.Rows(), m.Cols()
	res, err := NewDense(cols, rows)
	if err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}

	// Fast path for Dense → Dense: data[i*cols+j] → res.data[j*rows+i].
	if dm, ok := m.(*Dense); ok {
		var baseSrc int
		for i := 0; i < rows; i++ {
			baseSrc = i * cols
			for j := 0; j < cols; j++ {
				res.data[j*rows+i] = dm.data[baseSrc+j]
			}
		}

		return res, nil
	}

	// Fallback: generic interface loop.
	var v float64
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			if v, err = m.At(i, j); err != nil {
				return nil, matrixErrorf(opTranspose, fmt.Errorf("At(%d,%d): %w", i, j, err))
			}
			if err = res.Set(j, i, v); err != nil {
				return nil, matrixErrorf(opTranspose, fmt.Errorf("Set(%d,%d): %w", j, i, err))
			}
		}
	}

	return res, nil
}

// Scale returns a new matrix whose elements are alpha * m[i,j].
//
// Errors: ErrNilMatrix (wrapped with opScale). NaN/Inf alpha propagates.
// Determinism: flat loop on *Dense; fixed i→j fallback.
// Complexity: Time O(r*c), Space O(r*c).
func Scale(m Matrix, alpha float64) (*Dense, error) {
	// Validate input non-nil.
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opScale, err)
	}

	// Allocate result Dense.
	rows, cols := m.Rows(), m.Cols()
	res, err := NewDense(rows, cols)
	if err != nil {
		return nil, matrixErrorf(opScale, err)
	}

	// Fast path for Dense → Dense.
	if dm, ok := m.(*Dense); ok {
		n := rows * cols
		for idx := 0; idx < n; idx++ {
			res.data[idx] = dm.data[idx] * alpha
		}

		return res, nil
	}

	// Fallback: generic interface loop.
	var v float64
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			if v, err = m.At(i, j); err != nil {
				return nil, matrixErrorf(opScale, fmt.Errorf("At(%d,%d): %w", i, j, err))
			}
			if err = res.Set(i, j, v*alpha); err != nil {
				return nil, matrixErrorf(opScale, fmt.Errorf("Set(%d,%d): %w", i, j, err))
			}
		}
	}

	return res, nil
}

// MatVec computes y = m * x for a column vector x.
//
// Contract: m non-nil; len(x) == m.Cols().
// Errors: ErrNilMatrix, ErrBadVector (wrapped with opMatVec).
// Determinism: fixed i→j loop order.
// Complexity: Time O(r*c), Space O(r) for y.
func MatVec(m Matrix, x []float64) ([]float64, error) {
	// Validate m and the vector length against Cols.
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opMatVec, err)
	}
	if err := ValidateVecLen(x, m.Cols()); err != nil {
		return nil, matrixErrorf(opMatVec, err)
	}

	// Prepare result vector y with length rows.
	rows, cols := m.Rows(), m.Cols()
	y := make([]float64, rows)

	// Fast path: *Dense allows flat, row-major dot products.
	if d, ok := m.(*Dense); ok {
		var base int
		var acc, xv float64
		for i := 0; i < d.r; i++ {
			acc = ZeroSum
			base = i * d.c
			for j := 0; j < d.c; j++ {
				xv = x[j]
				if xv != 0 { // skip zero multiplications
					acc += d.data[base+j] * xv
				}
			}
			y[i] = acc
		}

		return y, nil
	}

	// Fallback: interface-based dot products via At.
	var mv float64
	var err error
	for i := 0; i < rows; i++ {
		y[i] = ZeroSum
		for j := 0; j < cols; j++ {
			if mv, err = m.At(i, j); err != nil {
				return nil, matrixErrorf(opMatVec, fmt.Errorf("At(%d,%d): %w", i, j, err))
			}
			y[i] += mv * x[j]
		}
	}

	return y, nil
}

// Diagonal extracts the main diagonal of a square matrix as a fresh vector.
//
// Errors: ErrNilMatrix, ErrNonSquare (wrapped with opDiagonal).
// Complexity: Time O(n), Space O(n).
func Diagonal(m Matrix) ([]float64, error) {
	// Validate input non-nil and square.
	if err := ValidateSquare(m); err != nil {
		return nil, matrixErrorf(opDiagonal, err)
	}

	n := m.Rows()
	diag := make([]float64, n)

	// Fast path: flat stride n+1 walk.
	if d, ok := m.(*Dense); ok {
		for i := 0; i < n; i++ {
			diag[i] = d.data[i*n+i]
		}

		return diag, nil
	}

	// Fallback via At.
	var v float64
	var err error
	for i := 0; i < n; i++ {
		if v, err = m.At(i, i); err != nil {
			return nil, matrixErrorf(opDiagonal, fmt.Errorf("At(%d,%d): %w", i, i, err))
		}
		diag[i] = v
	}

	return diag, nil
}

// VecNorm returns the Euclidean (L2) norm of x.
// A nil or empty vector has norm 0.
// Complexity: O(n).
func VecNorm(x []float64) float64 {
	acc := NormZero
	for _, v := range x { // fixed order, deterministic accumulation
		acc += v * v
	}

	return math.Sqrt(acc)
}

// VecDot returns the dot product xᵀy.
// Assumes len(x) == len(y); callers pair it with ValidateVecLen upstream.
// Complexity: O(n).
func VecDot(x, y []float64) float64 {
	acc := ZeroSum
	for i := range x {
		acc += x[i] * y[i]
	}

	return acc
}

// VecScale returns a fresh vector alpha * x.
// Complexity: O(n).
func VecScale(x []float64, alpha float64) []float64 {
	out := make([]float64, len(x))
	for i, v := range x {
		out[i] = v * alpha
	}

	return out
}

// VecSub returns a fresh vector x - y.
// Assumes len(x) == len(y); callers pair it with ValidateVecLen upstream.
// Complexity: O(n).
func VecSub(x, y []float64) []float64 {
	out := make([]float64, len(x))
	for i := range x {
		out[i] = x[i] - y[i]
	}

	return out
}
