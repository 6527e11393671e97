// SPDX-License-Identifier: MIT

// Package sparse: dense reference buffer (row-major) & safe accessors.
//
// Purpose:
//   - Provide the dense view used to check sparse results cell by cell and
//     to seed stores from small literal grids (FromDense).
//   - Guarantee safety at the public surface: At/Set return errors instead of panicking.
//
// AI-Hints:
//   - Dense is for inspection and tests; it costs O(r*c) memory by definition.
//   - Zero-sized shapes are legal (an empty store has extent 0x0).

package sparse

import (
	"fmt"
	"strings"
)

const (
	ctxDenseAt  = "At"
	ctxDenseSet = "Set"
)

const (
	_fmtRowOpen  = "["
	_fmtRowClose = "]\n"
	_fmtSep      = ", "
)

// denseErrorf wraps an error with a uniform Dense context and call-site indices.
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, row, col, err)
}

// Dense is a row-major r×c buffer; data[i*c+j] holds cell (i, j).
type Dense[T comparable] struct {
	r, c int
	data []T
}

var _ fmt.Stringer = (*Dense[float64])(nil)

// NewDense allocates an r×c buffer of T's zero value.
//
// Errors:
//   - ErrInvalidDimensions for negative rows or cols.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func NewDense[T comparable](rows, cols int) (*Dense[T], error) {
	if rows < 0 || cols < 0 {
		return nil, ErrInvalidDimensions
	}

	return &Dense[T]{r: rows, c: cols, data: make([]T, rows*cols)}, nil
}

// DenseFromRows copies a rectangular grid. Every row must have the same length.
func DenseFromRows[T comparable](grid [][]T) (*Dense[T], error) {
	rows, cols := len(grid), 0
	if rows > 0 {
		cols = len(grid[0])
	}
	d, err := NewDense[T](rows, cols)
	if err != nil {
		return nil, err
	}
	for i, row := range grid {
		if len(row) != cols {
			return nil, fmt.Errorf("DenseFromRows: row %d has %d cells, want %d: %w", i, len(row), cols, ErrLengthMismatch)
		}
		copy(d.data[i*cols:(i+1)*cols], row)
	}

	return d, nil
}

// Rows returns the number of rows.
func (m *Dense[T]) Rows() int { return m.r }

// Cols returns the number of columns.
func (m *Dense[T]) Cols() int { return m.c }

// Shape returns (rows, cols) as a Shape.
func (m *Dense[T]) Shape() Shape { return Shape{Rows: m.r, Cols: m.c} }

// indexOf computes the flat index for (row, col) or returns ErrOutOfRange.
func (m *Dense[T]) indexOf(method string, row, col int) (int, error) {
	if row < 0 || row >= m.r || col < 0 || col >= m.c {
		return 0, denseErrorf(method, row, col, ErrOutOfRange)
	}

	return row*m.c + col, nil
}

// At retrieves the element at (row, col).
func (m *Dense[T]) At(row, col int) (T, error) {
	idx, err := m.indexOf(ctxDenseAt, row, col)
	if err != nil {
		var zero T
		return zero, err
	}

	return m.data[idx], nil
}

// Set assigns v at (row, col).
func (m *Dense[T]) Set(row, col int, v T) error {
	idx, err := m.indexOf(ctxDenseSet, row, col)
	if err != nil {
		return err
	}
	m.data[idx] = v

	return nil
}

// Row returns a copy of row i, or nil when i is out of range.
func (m *Dense[T]) Row(i int) []T {
	if i < 0 || i >= m.r {
		return nil
	}
	out := make([]T, m.c)
	copy(out, m.data[i*m.c:(i+1)*m.c])

	return out
}

// fill sets every cell to v (used to paint a semiring zero such as +Inf).
func (m *Dense[T]) fill(v T) {
	for i := range m.data {
		m.data[i] = v
	}
}

// String renders one bracketed row per line: "[0, 1, 2]\n".
func (m *Dense[T]) String() string {
	var b strings.Builder
	for i := 0; i < m.r; i++ {
		b.WriteString(_fmtRowOpen)
		for j := 0; j < m.c; j++ {
			fmt.Fprintf(&b, "%v", m.data[i*m.c+j])
			if j < m.c-1 {
				b.WriteString(_fmtSep)
			}
		}
		b.WriteString(_fmtRowClose)
	}

	return b.String()
}
