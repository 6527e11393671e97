// SPDX-License-Identifier: MIT
// Package sparse: entry model.
//
// Purpose:
//   - Entry[T] is the unit of bulk input/output: plain value, freely copyable.
//   - Layout names the compressed orientation and fixes the total order over
//     entries (primary coordinate first, secondary second).
//
// Determinism:
//   - SortForLayout is stable, so for equal coordinates the input order
//     survives; DuplicateOverwrite relies on that.

package sparse

import (
	"cmp"
	"fmt"
	"slices"
	"strings"
)

// Layout selects which coordinate is compressed.
type Layout uint8

const (
	// RowCompressed (CSR): primary = row, secondary = column.
	RowCompressed Layout = iota
	// ColumnCompressed (CSC): primary = column, secondary = row.
	ColumnCompressed
)

// String returns "csr" or "csc".
func (l Layout) String() string {
	switch l {
	case RowCompressed:
		return "csr"
	case ColumnCompressed:
		return "csc"
	default:
		return fmt.Sprintf("Layout(%d)", uint8(l))
	}
}

// valid reports whether l is one of the two supported layouts.
func (l Layout) valid() bool { return l == RowCompressed || l == ColumnCompressed }

// ParseLayout maps "csr"/"row" and "csc"/"col"/"column" (any case) to a Layout.
func ParseLayout(s string) (Layout, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "csr", "row", "rows":
		return RowCompressed, nil
	case "csc", "col", "column", "columns":
		return ColumnCompressed, nil
	default:
		return 0, sparseErrorf(fmt.Sprintf("ParseLayout(%q)", s), ErrUnknownLayout)
	}
}

// Entry is one stored cell: (Row, Col, Value).
type Entry[T comparable] struct {
	Row   int
	Col   int
	Value T
}

// Primary returns the compressed coordinate of e under layout l.
func (e Entry[T]) Primary(l Layout) int {
	if l == ColumnCompressed {
		return e.Col
	}
	return e.Row
}

// Secondary returns the stored coordinate of e under layout l.
func (e Entry[T]) Secondary(l Layout) int {
	if l == ColumnCompressed {
		return e.Row
	}
	return e.Col
}

// Equal reports whether all three fields match.
func (e Entry[T]) Equal(o Entry[T]) bool {
	return e.Row == o.Row && e.Col == o.Col && e.Value == o.Value
}

// String formats e as "(row,col)=value".
func (e Entry[T]) String() string {
	return fmt.Sprintf("(%d,%d)=%v", e.Row, e.Col, e.Value)
}

// BuildEntries zips three parallel sequences into entries.
//
// Errors:
//   - ErrLengthMismatch when the three lengths differ.
//
// Complexity:
//   - Time O(n), Space O(n).
func BuildEntries[T comparable](rows, cols []int, values []T) ([]Entry[T], error) {
	if len(rows) != len(cols) || len(rows) != len(values) {
		return nil, sparseErrorf(
			fmt.Sprintf("BuildEntries(%d,%d,%d)", len(rows), len(cols), len(values)),
			ErrLengthMismatch,
		)
	}
	out := make([]Entry[T], len(rows))
	for i := range rows {
		out[i] = Entry[T]{Row: rows[i], Col: cols[i], Value: values[i]}
	}

	return out, nil
}

// CompareEntries orders a and b by (primary, secondary) for layout l.
// Values do not take part in the order.
func CompareEntries[T comparable](a, b Entry[T], l Layout) int {
	if c := cmp.Compare(a.Primary(l), b.Primary(l)); c != 0 {
		return c
	}
	return cmp.Compare(a.Secondary(l), b.Secondary(l))
}

// SortForLayout sorts entries in place by (primary, secondary) for layout l.
// The sort is stable; duplicates are left adjacent, not merged.
//
// Complexity:
//   - Time O(n log n), Space O(1) extra beyond the stable sort's buffer.
func SortForLayout[T comparable](entries []Entry[T], l Layout) {
	slices.SortStableFunc(entries, func(a, b Entry[T]) int {
		return CompareEntries(a, b, l)
	})
}

// normalizeEntries sorts entries for l and collapses equal coordinates per
// policy. The returned slice reuses the input's backing array.
// Zero results are kept here; the compression pass drops them.
func normalizeEntries[T comparable](ring Semiring[T], entries []Entry[T], l Layout, policy DuplicatePolicy) ([]Entry[T], error) {
	SortForLayout(entries, l)
	if len(entries) < 2 {
		return entries, nil
	}

	w := 0 // write cursor; entries[:w+1] is the compacted prefix
	for r := 1; r < len(entries); r++ {
		cur := entries[r]
		if CompareEntries(entries[w], cur, l) != 0 {
			w++
			entries[w] = cur
			continue
		}
		switch policy {
		case DuplicateSum:
			entries[w].Value = ring.Add(entries[w].Value, cur.Value)
		case DuplicateOverwrite:
			entries[w].Value = cur.Value // stable sort keeps input order, so the later one wins
		default:
			return nil, sparseErrorf(fmt.Sprintf("(%d,%d)", cur.Row, cur.Col), ErrDuplicateEntry)
		}
	}

	return entries[:w+1], nil
}
