// SPDX-License-Identifier: MIT
// Package: sparse
//
// Purpose:
//  - Provide a single, canonical source of truth for structural checks.
//  - Construction never runs these on its own (the compression pass trusts
//    its caller); they back WithValidation, FromRaw and the tests.
//
// Determinism & Performance:
//  - All checks are pure, deterministic and allocate nothing. O(n + lines).

package sparse

import "fmt"

// validatorErrorf wraps an underlying error with the given validator tag.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// Validate checks invariants 1–4 of s:
// parallel slices, strictly increasing indices per line, non-decreasing
// offsets starting at 0 and within bounds, no negative coordinates.
//
// Errors: ErrNilStore, ErrCorruptStructure, ErrUnsorted, ErrDuplicateEntry.
func Validate[T comparable](s *Store[T]) error {
	if s == nil {
		return validatorErrorf("Validate", ErrNilStore)
	}
	if len(s.indices) != len(s.values) {
		return validatorErrorf(
			fmt.Sprintf("Validate: len(indices)=%d len(values)=%d", len(s.indices), len(s.values)),
			ErrCorruptStructure,
		)
	}
	if len(s.offsets) > 0 && s.offsets[0] != 0 {
		return validatorErrorf("Validate: offsets[0]", ErrCorruptStructure)
	}
	for p := range s.offsets {
		b, e := s.offsets[p], s.lineEnd(p)
		if b > e || e > len(s.indices) {
			return validatorErrorf(fmt.Sprintf("Validate: line %d range [%d,%d)", p, b, e), ErrCorruptStructure)
		}
		for k := b; k < e; k++ {
			if s.indices[k] < 0 {
				return validatorErrorf(fmt.Sprintf("Validate: line %d index %d", p, s.indices[k]), ErrCorruptStructure)
			}
			if k > b && s.indices[k] == s.indices[k-1] {
				return validatorErrorf(fmt.Sprintf("Validate: line %d index %d", p, s.indices[k]), ErrDuplicateEntry)
			}
			if k > b && s.indices[k] < s.indices[k-1] {
				return validatorErrorf(fmt.Sprintf("Validate: line %d index %d", p, s.indices[k]), ErrUnsorted)
			}
		}
	}
	if len(s.offsets) == 0 && len(s.indices) > 0 {
		return validatorErrorf("Validate: cells without lines", ErrCorruptStructure)
	}

	return nil
}

// ValidateNoExplicitZeros checks invariant 5: no stored value is the
// semiring zero.
func ValidateNoExplicitZeros[T comparable](s *Store[T]) error {
	if s == nil {
		return validatorErrorf("ValidateNoExplicitZeros", ErrNilStore)
	}
	for k, v := range s.values {
		if s.ring.IsZero(v) {
			return validatorErrorf(fmt.Sprintf("ValidateNoExplicitZeros: cell %d", k), ErrExplicitZero)
		}
	}

	return nil
}

// ValidateStrict is Validate followed by ValidateNoExplicitZeros.
func ValidateStrict[T comparable](s *Store[T]) error {
	if err := Validate(s); err != nil {
		return err
	}

	return ValidateNoExplicitZeros(s)
}

// ValidateSortedEntries checks the FromSortedEntries precondition: entries
// strictly ordered by (primary, secondary) for l, no negative coordinates.
//
// Errors: ErrOutOfRange, ErrUnsorted, ErrDuplicateEntry, ErrUnknownLayout.
func ValidateSortedEntries[T comparable](entries []Entry[T], l Layout) error {
	if !l.valid() {
		return validatorErrorf("ValidateSortedEntries", ErrUnknownLayout)
	}
	for i, e := range entries {
		if e.Row < 0 || e.Col < 0 {
			return validatorErrorf(fmt.Sprintf("ValidateSortedEntries: entry %d", i), ErrOutOfRange)
		}
		if i == 0 {
			continue
		}
		switch c := CompareEntries(entries[i-1], e, l); {
		case c == 0:
			return validatorErrorf(fmt.Sprintf("ValidateSortedEntries: entry %d %v", i, e), ErrDuplicateEntry)
		case c > 0:
			return validatorErrorf(fmt.Sprintf("ValidateSortedEntries: entry %d %v", i, e), ErrUnsorted)
		}
	}

	return nil
}
