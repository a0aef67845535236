// SPDX-License-Identifier: MIT

// Package matrix — public API facades.
//
// Purpose:
//   - Provide thin, well-documented entry points for common construction
//     tasks across the package.
//   - Avoid any logic duplication — each facade delegates to the
//     canonical constructor.
//   - Keep function names explicit and intention-revealing.
package matrix

// NewZeros returns a new zero-initialized *Dense of size rows×cols.
// It is a thin alias of NewDense with an intention-revealing name.
// Complexity: O(r*c) zero-init by the runtime.
func NewZeros(rows, cols int) (*Dense, error) {
	// Delegate directly to the strict constructor (single allocation).
	return NewDense(rows, cols)
}

// NewIdentity returns I_n (n×n identity; ones on the diagonal, zeros
// elsewhere).
// Determinism: fixed i-loop; single write per diagonal cell.
// Complexity: O(n²) zeroing (constructor) + O(n) diagonal writes.
func NewIdentity(n int) (*Dense, error) {
	// Allocate an n×n zero matrix via the constructor.
	ident, err := NewDense(n, n)
	if err != nil {
		return nil, err // propagate constructor error unchanged
	}
	// Set the diagonal deterministically in a single loop.
	for i := 0; i < n; i++ {
		ident.data[i*n+i] = 1.0
	}

	return ident, nil
}

// NewDenseFromRows builds a Dense from a rectangular [][]float64.
// Every row must have the same, positive length.
//
// Errors: ErrInvalidDimensions on an empty input, ErrDimensionMismatch
// on ragged rows.
// Complexity: O(r*c) copy; the input slices are not retained.
func NewDenseFromRows(rows [][]float64) (*Dense, error) {
	// Validate outer and inner shape.
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, ErrInvalidDimensions
	}
	cols := len(rows[0])
	for i := 1; i < len(rows); i++ {
		if len(rows[i]) != cols {
			return nil, validatorErrorf("NewDenseFromRows", ErrDimensionMismatch)
		}
	}

	// Allocate and copy row by row (fixed order).
	out, err := NewDense(len(rows), cols)
	if err != nil {
		return nil, err
	}
	for i, row := range rows {
		copy(out.data[i*cols:(i+1)*cols], row)
	}

	return out, nil
}

// NewColumn builds an n×1 Dense from a vector (n = len(col) ≥ 1).
// Used to seed growing basis matrices in Krylov iterations.
//
// Errors: ErrBadVector on a nil or empty input.
// Complexity: O(n) copy; the input slice is not retained.
func NewColumn(col []float64) (*Dense, error) {
	// Validate the vector is usable as a column.
	if len(col) == 0 {
		return nil, validatorErrorf("NewColumn", ErrBadVector)
	}

	// An n×1 Dense is column-major and row-major at once.
	out, err := NewDense(len(col), 1)
	if err != nil {
		return nil, err
	}
	copy(out.data, col)

	return out, nil
}

// AppendColumn returns a fresh r×(c+1) Dense holding m's columns
// followed by col. The input matrix is not mutated.
//
// Errors: ErrNilMatrix, ErrBadVector when len(col) != m.Rows().
// Complexity: O(r*c) copy.
func AppendColumn(m Matrix, col []float64) (*Dense, error) {
	// Validate the pairing.
	if err := ValidateNotNil(m); err != nil {
		return nil, err
	}
	if err := ValidateVecLen(col, m.Rows()); err != nil {
		return nil, err
	}

	// Allocate the widened matrix.
	rows, cols := m.Rows(), m.Cols()
	out, err := NewDense(rows, cols+1)
	if err != nil {
		return nil, err
	}

	// Fast path: block-copy each source row, then the new cell.
	if d, ok := m.(*Dense); ok {
		for i := 0; i < rows; i++ {
			copy(out.data[i*(cols+1):i*(cols+1)+cols], d.data[i*cols:(i+1)*cols])
			out.data[i*(cols+1)+cols] = col[i]
		}

		return out, nil
	}

	// Fallback: element-wise copy via At.
	var v float64
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			if v, err = m.At(i, j); err != nil {
				return nil, err
			}
			out.data[i*(cols+1)+j] = v
		}
		out.data[i*(cols+1)+cols] = col[i]
	}

	return out, nil
}

// Ones returns an all-ones vector of length n (n ≥ 1, else nil).
// Used as the deterministic starting vector of the iterative kernels.
// Complexity: O(n).
func Ones(n int) []float64 {
	if n < 1 {
		return nil
	}
	out := make([]float64, n)
	for i := range out {
		out[i] = 1.0
	}

	return out
}
