// SPDX-License-Identifier: MIT

// Package matrix: Dense is the concrete, row-major implementation of
// the Matrix interface, storing elements in a flat slice for
// performance and cache friendliness.
package matrix

import (
	"fmt"
	"strings"
)

// denseErrorf wraps an underlying error with Dense method context.
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, row, col, err)
}

// Dense is a row-major matrix of float64 values.
// r is rows, c is columns, and data holds r*c elements in row-major order.
type Dense struct {
	r, c int       // number of rows and columns
	data []float64 // flat backing storage, length == r*c
}

// NewDense creates an r×c Dense matrix initialized to zeros.
// Stage 1 (Validate): ensure rows and cols > 0.
// Stage 2 (Prepare): allocate flat backing slice.
// Stage 3 (Finalize): return new Dense or ErrInvalidDimensions.
// Complexity: O(r*c) time and memory.
func NewDense(rows, cols int) (*Dense, error) {
	// Validate dimensions
	if rows <= 0 || cols <= 0 {
		return nil, ErrInvalidDimensions
	}

	// Allocate flat slice and return initialized Dense
	return &Dense{r: rows, c: cols, data: make([]float64, rows*cols)}, nil
}

// Rows returns the number of rows in the matrix.
// Complexity: O(1).
func (m *Dense) Rows() int {
	return m.r // return stored row count
}

// Cols returns the number of columns in the matrix.
// Complexity: O(1).
func (m *Dense) Cols() int {
	return m.c // return stored column count
}

// indexOf computes the flat index for (row, col) or returns ErrOutOfRange.
// Stage 1 (Validate): check 0 ≤ row < r and 0 ≤ col < c.
// Stage 2 (Execute): compute and return linear index.
// Complexity: O(1).
func (m *Dense) indexOf(method string, row, col int) (int, error) {
	// Validate row index
	if row < 0 || row >= m.r {
		return 0, denseErrorf(method, row, col, ErrOutOfRange)
	}
	// Validate column index
	if col < 0 || col >= m.c {
		return 0, denseErrorf(method, row, col, ErrOutOfRange)
	}

	// Compute flat offset
	return row*m.c + col, nil
}

// At retrieves the element at (row, col).
// Stage 1 (Validate): bounds check via indexOf.
// Stage 2 (Execute): read from data slice.
// Complexity: O(1).
func (m *Dense) At(row, col int) (float64, error) {
	// Compute flat index or error
	idx, err := m.indexOf("At", row, col)
	if err != nil {
		return 0, err
	}

	// Return stored value
	return m.data[idx], nil
}

// Set assigns value v at (row, col).
// Stage 1 (Validate): bounds check via indexOf.
// Stage 2 (Execute): write into data slice.
// Complexity: O(1).
func (m *Dense) Set(row, col int, v float64) error {
	// Compute flat index or error
	idx, err := m.indexOf("Set", row, col)
	if err != nil {
		return err
	}
	// Assign value
	m.data[idx] = v

	return nil
}

// Clone returns a deep copy of the Dense matrix.
// Complexity: O(r*c) time and memory for copy.
func (m *Dense) Clone() Matrix {
	// Allocate new slice for data copy
	copyData := make([]float64, len(m.data))
	// Copy all elements into new slice
	copy(copyData, m.data)

	return &Dense{r: m.r, c: m.c, data: copyData}
}

// Column returns a fresh copy of column j as a plain vector.
// Returns ErrOutOfRange when j is outside [0, Cols).
// Complexity: O(r).
func (m *Dense) Column(j int) ([]float64, error) {
	// Validate column index
	if j < 0 || j >= m.c {
		return nil, denseErrorf("Column", 0, j, ErrOutOfRange)
	}
	// Copy the column with a fixed i order
	col := make([]float64, m.r)
	for i := 0; i < m.r; i++ {
		col[i] = m.data[i*m.c+j]
	}

	return col, nil
}

// String implements fmt.Stringer for easy debugging.
// Rows are rendered top-down with %g formatting.
func (m *Dense) String() string {
	var sb strings.Builder
	for i := 0; i < m.r; i++ {
		base := i * m.c
		for j := 0; j < m.c; j++ {
			if j > 0 {
				sb.WriteByte(' ')
			}
			fmt.Fprintf(&sb, "%g", m.data[base+j])
		}
		sb.WriteByte('\n')
	}

	return sb.String()
}
