// SPDX-License-Identifier: MIT
// Package sparse: semiring closure by repeated squaring.
//
// Purpose:
//   - Sparse counterpart of a dense Floyd–Warshall: D ← D ⊗ D until D stops
//     changing, where D starts as the input plus the semiring one on the
//     diagonal. Under MinPlus this is all-pairs shortest paths; under Boolean
//     it is reflexive-transitive reachability.
//
// Contract:
//   - Vertices are 0..n-1; every stored cell must lie inside n×n.
//   - Negative cycles (MinPlus) are not detected; the round cap bounds the work.
//
// Complexity:
//   - At most bits.Len(n)+1 products, each a merge-join Multiply.

package sparse

import (
	"fmt"
	"math/bits"
	"slices"
)

const ctxClosure = "Closure"

// Closure returns the semiring closure of s over n vertices; one is the
// semiring's multiplicative identity (0 for MinPlus, true for Boolean).
// s is not modified. The result is row-compressed.
//
// Errors:
//   - ErrNilStore for a nil s.
//   - ErrInvalidDimensions for n < 0.
//   - ErrOutOfRange when a stored cell lies outside n×n.
func Closure[T comparable](s *Store[T], one T, n int) (*Store[T], error) {
	if s == nil {
		return nil, sparseErrorf(ctxClosure, ErrNilStore)
	}
	tag := fmt.Sprintf("%s(n=%d)", ctxClosure, n)
	if n < 0 {
		return nil, sparseErrorf(tag, ErrInvalidDimensions)
	}
	if ext := s.Extent(); ext.Rows > n || ext.Cols > n {
		return nil, sparseErrorf(fmt.Sprintf("%s extent %s", tag, ext), ErrOutOfRange)
	}

	diag := make([]Entry[T], n)
	for i := range diag {
		diag[i] = Entry[T]{Row: i, Col: i, Value: one}
	}
	id, err := FromSortedEntries(s.ring, diag, RowCompressed)
	if err != nil {
		return nil, sparseErrorf(tag, err)
	}
	d, err := Converted(s, RowCompressed)
	if err != nil {
		return nil, sparseErrorf(tag, err)
	}
	if d, err = Add(d, id, WithPruneZeroSums()); err != nil {
		return nil, sparseErrorf(tag, err)
	}

	for round := 0; round <= bits.Len(uint(n)); round++ {
		next, err := MultiplyPure(d, d)
		if err != nil {
			return nil, sparseErrorf(tag, err)
		}
		if sameCells(d, next) {
			break
		}
		d = next
	}
	d.opts = s.opts

	return d, nil
}

// sameCells compares two row-compressed stores cell by cell.
func sameCells[T comparable](a, b *Store[T]) bool {
	return slices.Equal(a.offsets, b.offsets) &&
		slices.Equal(a.indices, b.indices) &&
		slices.Equal(a.values, b.values)
}
