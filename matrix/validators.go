// SPDX-License-Identifier: MIT

// Package matrix: validators.
//
// Purpose:
//   - Provide a single, canonical source of truth for common validation checks.
//   - Keep kernels minimal by delegating shape/nil/symmetry checks here.
//   - Return plain sentinel errors (no wrapping beyond the validator tag)
//     so call sites can wrap uniformly with their operation tag.
//
// Determinism & Performance:
//   - All checks are pure, deterministic and allocate nothing.
//   - Symmetry check runs O(n²) on the upper triangle only.
//
// Note:
//   - Each composite validator follows a fixed sequence (NotNil → Shape).
package matrix

import (
	"fmt"
	"math"
)

// validatorErrorf wraps an underlying sentinel with the given validator tag.
// Used internally to maintain consistent labeling of sentinel violations.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateNotNil ensures the matrix reference is non-nil.
//
// Returns ErrNilMatrix if m == nil.
// Complexity: O(1).
func ValidateNotNil(m Matrix) error {
	// If the matrix is nil, fail with the unified sentinel.
	if m == nil {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}

	return nil
}

// ValidateSquare checks that m is non-nil and square (Rows == Cols).
//
// Errors: ErrNilMatrix if nil, ErrNonSquare if not square.
// Complexity: O(1).
func ValidateSquare(m Matrix) error {
	// Nil check first (fixed sequence).
	if err := ValidateNotNil(m); err != nil {
		return err
	}
	// Shape check.
	if m.Rows() != m.Cols() {
		return validatorErrorf("ValidateSquare", ErrNonSquare)
	}

	return nil
}

// ValidateSameShape ensures matrices a and b have equal dimensions.
// Assumes a and b are not nil (caller must ensure).
//
// Errors: wrapped ErrDimensionMismatch.
// Complexity: O(1).
func ValidateSameShape(a, b Matrix) error {
	if a.Rows() != b.Rows() {
		return validatorErrorf("ValidateSameShape: Rows", ErrDimensionMismatch)
	}
	if b.Cols() != a.Cols() {
		return validatorErrorf("ValidateSameShape: Columns", ErrDimensionMismatch)
	}

	return nil
}

// ValidateBinarySameShape is the composite NotNil(a) → NotNil(b) → SameShape.
// Use for two-operand elementwise kernels (Sub).
// Complexity: O(1).
func ValidateBinarySameShape(a, b Matrix) error {
	if err := ValidateNotNil(a); err != nil {
		return err
	}
	if err := ValidateNotNil(b); err != nil {
		return err
	}

	return ValidateSameShape(a, b)
}

// ValidateMulCompatible checks both operands are non-nil and that inner
// dimensions agree (a.Cols == b.Rows).
//
// Errors: ErrNilMatrix, ErrDimensionMismatch.
// Complexity: O(1).
func ValidateMulCompatible(a, b Matrix) error {
	if err := ValidateNotNil(a); err != nil {
		return err
	}
	if err := ValidateNotNil(b); err != nil {
		return err
	}
	if a.Cols() != b.Rows() {
		return validatorErrorf("ValidateMulCompatible", ErrDimensionMismatch)
	}

	return nil
}

// ValidateVecLen checks that x is non-nil and has exactly want elements.
// Use for any MatVec-like pairing of a vector with a matrix dimension.
//
// Errors: ErrBadVector.
// Complexity: O(1).
func ValidateVecLen(x []float64, want int) error {
	if x == nil || len(x) != want {
		return validatorErrorf("ValidateVecLen", ErrBadVector)
	}

	return nil
}

// ValidateSymmetric checks m is non-nil, square, and symmetric within eps:
// |m[i,j] - m[j,i]| ≤ eps for all i < j. Use before spectral methods to
// fail fast instead of silently degrading convergence.
//
// Errors: ErrNilMatrix, ErrNonSquare, ErrAsymmetry.
// Complexity: O(n²) over the upper triangle.
func ValidateSymmetric(m Matrix, eps float64) error {
	// Structural checks first.
	if err := ValidateSquare(m); err != nil {
		return err
	}

	n := m.Rows()
	// Fast path: *Dense compares flat entries directly.
	if d, ok := m.(*Dense); ok {
		for i := 0; i < n; i++ {
			base := i * n
			for j := i + 1; j < n; j++ {
				if math.Abs(d.data[base+j]-d.data[j*n+i]) > eps {
					return validatorErrorf("ValidateSymmetric", ErrAsymmetry)
				}
			}
		}

		return nil
	}

	// Fallback: interface path via At (indices already validated by shape).
	var upper, lower float64
	var err error
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if upper, err = m.At(i, j); err != nil {
				return validatorErrorf("ValidateSymmetric", err)
			}
			if lower, err = m.At(j, i); err != nil {
				return validatorErrorf("ValidateSymmetric", err)
			}
			if math.Abs(upper-lower) > eps {
				return validatorErrorf("ValidateSymmetric", ErrAsymmetry)
			}
		}
	}

	return nil
}
