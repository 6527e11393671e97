// SPDX-License-Identifier: MIT
// Package sparse: layout converter & structural mutation.
//
// Purpose:
//   - ToLayout / Transpose / Insert / Append / Fill all follow one recipe:
//     decompress → modify the entry list → re-sort → recompress.
//   - The receiver's state is replaced wholesale only after the rebuild
//     succeeded, so a failed mutation (e.g. DuplicateReject) leaves it intact.
//
// Complexity:
//   - O(n log n) per call, dominated by the sort. Not meant for
//     high-frequency single-cell updates; batch them through Append.

package sparse

import (
	"fmt"
	"math"
)

const (
	ctxToLayout  = "ToLayout"
	ctxTranspose = "Transpose"
	ctxInsert    = "Insert"
	ctxAppend    = "Append"
	ctxFill      = "Fill"
)

// ToLayout converts s to target in place. No-op when already there.
//
// Errors:
//   - ErrUnknownLayout for an unsupported target.
func (s *Store[T]) ToLayout(target Layout) error {
	if err := s.ready(ctxToLayout); err != nil {
		return err
	}
	if !target.valid() {
		return sparseErrorf(ctxToLayout, ErrUnknownLayout)
	}
	if s.layout == target {
		return nil
	}

	entries := s.Decompress()
	SortForLayout(entries, target)
	next := &Store[T]{layout: target, ring: s.ring, opts: s.opts}
	if err := next.compress(entries); err != nil {
		return sparseErrorf(ctxToLayout, err)
	}
	*s = *next

	return nil
}

// ToRowCompressed is ToLayout(RowCompressed).
func (s *Store[T]) ToRowCompressed() error { return s.ToLayout(RowCompressed) }

// ToColumnCompressed is ToLayout(ColumnCompressed).
func (s *Store[T]) ToColumnCompressed() error { return s.ToLayout(ColumnCompressed) }

// Transpose replaces s with sᵀ expressed in the same layout:
// every (r, c, v) becomes (c, r, v), then the list is re-sorted for s.Layout().
func (s *Store[T]) Transpose() error {
	if err := s.ready(ctxTranspose); err != nil {
		return err
	}
	entries := s.Decompress()
	for i := range entries {
		entries[i].Row, entries[i].Col = entries[i].Col, entries[i].Row
	}
	SortForLayout(entries, s.layout)
	next := &Store[T]{layout: s.layout, ring: s.ring, opts: s.opts}
	if err := next.compress(entries); err != nil {
		return sparseErrorf(ctxTranspose, err)
	}
	*s = *next

	return nil
}

// Insert adds value at (row, col). A coordinate already stored is resolved
// by the store's DuplicatePolicy; a result equal to zero removes the cell.
//
// Errors:
//   - ErrOutOfRange for negative coordinates.
//   - ErrDuplicateEntry under DuplicateReject (s unchanged).
func (s *Store[T]) Insert(row, col int, value T) error {
	tag := fmt.Sprintf("%s(%d,%d)", ctxInsert, row, col)
	if err := s.ready(tag); err != nil {
		return err
	}
	if row < 0 || col < 0 {
		return sparseErrorf(tag, ErrOutOfRange)
	}
	if err := s.replace(append(s.Decompress(), Entry[T]{Row: row, Col: col, Value: value})); err != nil {
		return sparseErrorf(tag, err)
	}

	return nil
}

// Append adds a batch of entries in one rebuild. Duplicates, both against
// stored cells and inside the batch, follow the DuplicatePolicy.
func (s *Store[T]) Append(entries ...Entry[T]) error {
	if err := s.ready(ctxAppend); err != nil {
		return err
	}
	if len(entries) == 0 {
		return nil
	}
	if err := s.replace(append(s.Decompress(), entries...)); err != nil {
		return sparseErrorf(ctxAppend, err)
	}

	return nil
}

// replace rebuilds a fresh store from entries and swaps it into s on success.
func (s *Store[T]) replace(entries []Entry[T]) error {
	next := &Store[T]{layout: s.layout, ring: s.ring, opts: s.opts}
	if err := next.rebuild(entries); err != nil {
		return err
	}
	*s = *next

	return nil
}

// Fill replaces s with a rows×cols matrix whose every cell equals value.
// A zero value yields the empty store. The result is always row-compressed;
// follow with ToColumnCompressed when a CSC fill is needed.
//
// Errors:
//   - ErrInvalidDimensions for negative rows or cols, or a non-zero fill
//     whose cell count overflows int (s unchanged).
func (s *Store[T]) Fill(rows, cols int, value T) error {
	if err := s.ready(ctxFill); err != nil {
		return err
	}
	next, err := NewFilled(s.ring, rows, cols, value)
	if err != nil {
		return err
	}
	next.opts = s.opts
	*s = *next

	return nil
}

// NewFilled returns a rows×cols row-compressed store with every cell equal
// to value, or the empty store when value is the semiring zero.
//
// Complexity:
//   - Time O(rows*cols), Space O(rows*cols) for a non-zero value.
func NewFilled[T comparable](ring Semiring[T], rows, cols int, value T, opts ...Option) (*Store[T], error) {
	tag := fmt.Sprintf("%s(%d,%d)", ctxFill, rows, cols)
	if rows < 0 || cols < 0 {
		return nil, sparseErrorf(tag, ErrInvalidDimensions)
	}
	s, err := newStore(ring, RowCompressed, gatherOptions(defaultOptions(), opts...))
	if err != nil {
		return nil, sparseErrorf(tag, err)
	}
	if ring.IsZero(value) || rows == 0 || cols == 0 {
		return s, nil
	}
	if rows > math.MaxInt/cols {
		return nil, sparseErrorf(tag, ErrInvalidDimensions)
	}

	s.offsets = make([]int, rows)
	s.indices = make([]int, rows*cols)
	s.values = make([]T, rows*cols)
	for i := 0; i < rows; i++ {
		s.offsets[i] = i * cols
		for j := 0; j < cols; j++ {
			s.indices[i*cols+j] = j
			s.values[i*cols+j] = value
		}
	}

	return s, nil
}
