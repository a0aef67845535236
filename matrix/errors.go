// SPDX-License-Identifier: MIT

// Package matrix: sentinel error set (unified, consistent).
// This file defines ONLY package-level sentinel errors used across the
// matrix package. All kernels MUST return these sentinels and tests
// MUST check them via errors.Is. No kernel panics on user-triggered
// error conditions; panics are reserved for programmer errors.
package matrix

import "errors"

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "matrix: ..." for consistency and to
// allow easy grepping across logs. DO NOT %w wrap these sentinels when
// returning directly; if context is essential, wrap with
// fmt.Errorf("ctx: %w", ErrX) at the outer boundary — callers will
// still use errors.Is to match.

var (
	// ErrInvalidDimensions indicates that requested matrix dimensions are non-positive.
	// Constructors must validate before allocation.
	ErrInvalidDimensions = errors.New("matrix: dimensions must be > 0")

	// ErrOutOfRange indicates that an index (row or column) is outside valid bounds.
	// Public indexers (At/Set) MUST return this, not panic.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrNilMatrix indicates that a nil Matrix (receiver or argument) was used.
	ErrNilMatrix = errors.New("matrix: nil receiver")

	// ErrDimensionMismatch indicates incompatible dimensions between operands,
	// e.g. Sub over different shapes, or Mul where a.Cols != b.Rows.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrNonSquare signals that a square matrix was required but the input wasn't.
	ErrNonSquare = errors.New("matrix: matrix is not square")

	// ErrAsymmetry signals that a matrix expected to be symmetric violated
	// symmetry within the configured epsilon.
	ErrAsymmetry = errors.New("matrix: matrix is not symmetric within eps")

	// ErrBadVector indicates a nil vector or a length that does not match
	// the matrix dimension it is paired with.
	ErrBadVector = errors.New("matrix: bad vector length")

	// ErrSingular is returned when a zero pivot is encountered during LU
	// factorization or triangular solves in the non-pivoting scheme
	// (intentional for determinism and simplicity).
	ErrSingular = errors.New("matrix: singular matrix")

	// ErrTallRequired signals that QRFactor was given a matrix with fewer
	// rows than columns; the thin factorization is defined for r ≥ c only.
	ErrTallRequired = errors.New("matrix: rows must be >= cols")

	// ErrBadDensity indicates a generator density outside (0, 1].
	ErrBadDensity = errors.New("matrix: density must be in (0, 1]")
)
