// SPDX-License-Identifier: MIT
// Package sparse: sentinel error set.
// This file defines ONLY package-level sentinel errors. All operations return
// these sentinels (possibly wrapped with an operation tag) and tests match
// them via errors.Is. No operation panics on caller-triggered conditions;
// panics are reserved for nonsensical Option parameters.

package sparse

import (
	"errors"
	"fmt"
)

// Every message is prefixed with "sparse: ". Sentinels are wrapped with the
// operation tag via sparseErrorf; callers still match with errors.Is.

var (
	// ErrOutOfRange indicates a line index, flat index or coordinate outside valid bounds.
	ErrOutOfRange = errors.New("sparse: index out of range")

	// ErrLengthMismatch indicates parallel input sequences of different lengths.
	ErrLengthMismatch = errors.New("sparse: length mismatch")

	// ErrInvalidDimensions indicates a negative row or column count.
	ErrInvalidDimensions = errors.New("sparse: dimensions must be >= 0")

	// ErrNilStore indicates a nil *Store operand.
	ErrNilStore = errors.New("sparse: nil store")

	// ErrNilSemiring indicates that no value algebra was supplied.
	ErrNilSemiring = errors.New("sparse: nil semiring")

	// ErrUnknownLayout indicates a Layout value other than RowCompressed/ColumnCompressed.
	ErrUnknownLayout = errors.New("sparse: unknown layout")

	// ErrLayoutMismatch indicates an operand is not in the layout the operation requires.
	ErrLayoutMismatch = errors.New("sparse: layout mismatch")

	// ErrUnsorted indicates entries that are not ordered for the target layout.
	ErrUnsorted = errors.New("sparse: entries not sorted for layout")

	// ErrDuplicateEntry indicates two entries share the same (row, col).
	ErrDuplicateEntry = errors.New("sparse: duplicate entry")

	// ErrExplicitZero indicates a stored value equal to the semiring zero.
	ErrExplicitZero = errors.New("sparse: explicit zero stored")

	// ErrCorruptStructure indicates raw arrays violating the compressed-layout invariants.
	ErrCorruptStructure = errors.New("sparse: corrupt compressed structure")
)

// sparseErrorf wraps err with an operation tag ("Multiply: sparse: nil store").
func sparseErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
