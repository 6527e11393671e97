// SPDX-License-Identifier: MIT

// Package sparse: compressed storage (CSR/CSC) & safe accessors.
//
// Purpose:
//   - Hold a matrix as offsets + indices + values for one Layout.
//   - Own the five structural invariants (see doc.go); every constructor and
//     every mutation re-establishes them through a single compression pass.
//   - Keep the public surface safe: index accessors return ErrOutOfRange
//     instead of panicking.
//
// AI-Hints:
//   - The offset table is "open": always go through lineEnd(i) for a line's end.
//   - Offsets/Indices/Values expose backing storage for file-format interop;
//     treat them as read-only.
//
// Complexity quicksheet:
//   - FromSortedEntries: O(n + lines); Decompress: O(n + lines);
//     LineRange/IndexAt/ValueAt: O(1); At: O(log line length); Clone: O(n).

package sparse

import (
	"fmt"
	"slices"
	"strings"
)

// ---------- error context tags ----------

const (
	ctxFromSorted  = "FromSortedEntries"
	ctxFromEntries = "FromEntries"
	ctxFromDense   = "FromDense"
	ctxFromRaw     = "FromRaw"
	ctxNew         = "New"
	ctxLineRange   = "LineRange"
	ctxIndexAt     = "IndexAt"
	ctxValueAt     = "ValueAt"
	ctxAt          = "At"
	ctxToDense     = "ToDense"
)

// Shape is a row × column extent.
type Shape struct {
	Rows, Cols int
}

// String formats the shape as "RxC".
func (s Shape) String() string { return fmt.Sprintf("%dx%d", s.Rows, s.Cols) }

// Store is a compressed sparse matrix in one Layout.
//   - offsets[i] is where primary line i starts in indices/values (open form).
//   - indices holds the secondary coordinate of every stored cell, line by line.
//   - values is parallel to indices.
//
// The zero value has no semiring and is not usable; build stores with New,
// FromEntries and friends. Methods on a zero Store return ErrNilSemiring.
type Store[T comparable] struct {
	layout  Layout
	offsets []int
	indices []int
	values  []T
	ring    Semiring[T]
	opts    Options
}

var _ fmt.Stringer = (*Store[float64])(nil)

// compressor appends cells in (primary, secondary) order and backfills empty
// lines. It is the one place offsets are written.
type compressor[T comparable] struct {
	ring     Semiring[T]
	keepZero bool
	offsets  []int
	indices  []int
	values   []T
}

// push appends one cell. Zero values are skipped unless keepZero is set.
// A primary coordinate lower than the current line count is not detected:
// the cell lands in the last open line (unsorted input is the caller's bug).
func (c *compressor[T]) push(primary, secondary int, v T) {
	if !c.keepZero && c.ring.IsZero(v) {
		return
	}
	for len(c.offsets) < primary+1 {
		c.offsets = append(c.offsets, len(c.indices)) // backfill skipped lines as empty ranges
	}
	c.indices = append(c.indices, secondary)
	c.values = append(c.values, v)
}

// ready reports ErrNilSemiring for a Store that was not built by a constructor.
func (s *Store[T]) ready(tag string) error {
	if s.ring == nil {
		return sparseErrorf(tag, ErrNilSemiring)
	}
	return nil
}

// newStore validates the ring and layout and returns an empty store.
func newStore[T comparable](ring Semiring[T], layout Layout, opts Options) (*Store[T], error) {
	if ring == nil {
		return nil, ErrNilSemiring
	}
	if !layout.valid() {
		return nil, ErrUnknownLayout
	}

	return &Store[T]{layout: layout, ring: ring, opts: opts}, nil
}

// New returns an empty store (no lines, no cells).
func New[T comparable](ring Semiring[T], layout Layout, opts ...Option) (*Store[T], error) {
	s, err := newStore(ring, layout, gatherOptions(defaultOptions(), opts...))
	if err != nil {
		return nil, sparseErrorf(ctxNew, err)
	}

	return s, nil
}

// FromSortedEntries compresses entries already ordered for layout.
// MAIN DESCRIPTION:
//   - Single linear pass: for each entry, backfill offsets until the entry's
//     primary line exists, then append its secondary coordinate and value.
//
// Behavior highlights:
//   - No re-sort. Unsorted or duplicated input silently yields an invalid
//     store unless WithValidation() is given.
//   - Values equal to the semiring zero are skipped (invariant 5).
//   - Empty input yields an empty store.
//
// Errors:
//   - ErrNilSemiring, ErrUnknownLayout, ErrOutOfRange (negative coordinate),
//     ErrUnsorted / ErrDuplicateEntry (validation only).
//
// Complexity:
//   - Time O(n + lines), Space O(n + lines).
func FromSortedEntries[T comparable](ring Semiring[T], entries []Entry[T], layout Layout, opts ...Option) (*Store[T], error) {
	s, err := newStore(ring, layout, gatherOptions(defaultOptions(), opts...))
	if err != nil {
		return nil, sparseErrorf(ctxFromSorted, err)
	}
	if s.opts.validate {
		if err = ValidateSortedEntries(entries, layout); err != nil {
			return nil, sparseErrorf(ctxFromSorted, err)
		}
	}
	if err = s.compress(entries); err != nil {
		return nil, sparseErrorf(ctxFromSorted, err)
	}

	return s, nil
}

// FromEntries copies entries, sorts them for layout, resolves duplicates per
// the duplicate policy and compresses. The input slice is not modified.
//
// Complexity:
//   - Time O(n log n), Space O(n).
func FromEntries[T comparable](ring Semiring[T], entries []Entry[T], layout Layout, opts ...Option) (*Store[T], error) {
	s, err := newStore(ring, layout, gatherOptions(defaultOptions(), opts...))
	if err != nil {
		return nil, sparseErrorf(ctxFromEntries, err)
	}
	if err = s.rebuild(slices.Clone(entries)); err != nil {
		return nil, sparseErrorf(ctxFromEntries, err)
	}

	return s, nil
}

// FromDense compresses every non-zero cell of d.
// Cells are visited in layout order, so no sort is needed.
func FromDense[T comparable](ring Semiring[T], d *Dense[T], layout Layout, opts ...Option) (*Store[T], error) {
	if d == nil {
		return nil, sparseErrorf(ctxFromDense, ErrNilStore)
	}
	s, err := newStore(ring, layout, gatherOptions(defaultOptions(), opts...))
	if err != nil {
		return nil, sparseErrorf(ctxFromDense, err)
	}

	c := compressor[T]{ring: ring}
	if layout == RowCompressed {
		for i := 0; i < d.r; i++ {
			for j := 0; j < d.c; j++ {
				c.push(i, j, d.data[i*d.c+j])
			}
		}
	} else {
		for j := 0; j < d.c; j++ {
			for i := 0; i < d.r; i++ {
				c.push(j, i, d.data[i*d.c+j])
			}
		}
	}
	s.install(c)

	return s, nil
}

// FromRaw adopts externally produced compressed arrays (file formats, other
// libraries). The slices are copied. Invariants 1–4 are checked; explicit
// zeros are accepted as-is (use ValidateNoExplicitZeros to reject them).
//
// Errors:
//   - ErrNilSemiring, ErrUnknownLayout, ErrCorruptStructure.
func FromRaw[T comparable](ring Semiring[T], layout Layout, offsets, indices []int, values []T, opts ...Option) (*Store[T], error) {
	s, err := newStore(ring, layout, gatherOptions(defaultOptions(), opts...))
	if err != nil {
		return nil, sparseErrorf(ctxFromRaw, err)
	}
	s.offsets = slices.Clone(offsets)
	s.indices = slices.Clone(indices)
	s.values = slices.Clone(values)
	if err = Validate(s); err != nil {
		return nil, sparseErrorf(ctxFromRaw, err)
	}

	return s, nil
}

// compress replaces s's storage with the compression of sorted entries.
// On error s is left untouched.
func (s *Store[T]) compress(entries []Entry[T]) error {
	c := compressor[T]{ring: s.ring}
	for _, e := range entries {
		if e.Row < 0 || e.Col < 0 {
			return sparseErrorf(fmt.Sprintf("(%d,%d)", e.Row, e.Col), ErrOutOfRange)
		}
		c.push(e.Primary(s.layout), e.Secondary(s.layout), e.Value)
	}
	s.install(c)

	return nil
}

// rebuild normalizes arbitrary entries (sort + duplicate policy) and
// compresses them into s. entries is consumed.
func (s *Store[T]) rebuild(entries []Entry[T]) error {
	norm, err := normalizeEntries(s.ring, entries, s.layout, s.opts.dup)
	if err != nil {
		return err
	}

	return s.compress(norm)
}

// install swaps in freshly compressed arrays.
func (s *Store[T]) install(c compressor[T]) {
	s.offsets, s.indices, s.values = c.offsets, c.indices, c.values
}

// ---------- accessors ----------

// Layout returns the store's current orientation.
func (s *Store[T]) Layout() Layout { return s.layout }

// Semiring returns the value algebra.
func (s *Store[T]) Semiring() Semiring[T] { return s.ring }

// Options returns the resolved options the store carries.
func (s *Store[T]) Options() Options { return s.opts }

// LineCount returns the number of primary lines (len(offsets)).
func (s *Store[T]) LineCount() int { return len(s.offsets) }

// Len returns the number of stored cells.
func (s *Store[T]) Len() int { return len(s.indices) }

// lineEnd is the next-or-end accessor for the open offset form.
// Caller guarantees 0 <= i < LineCount().
func (s *Store[T]) lineEnd(i int) int {
	if i+1 < len(s.offsets) {
		return s.offsets[i+1]
	}
	return len(s.indices)
}

// LineRange returns [begin, end) of primary line i in indices/values.
//
// Errors:
//   - ErrOutOfRange if i < 0 or i >= LineCount().
func (s *Store[T]) LineRange(i int) (int, int, error) {
	if i < 0 || i >= len(s.offsets) {
		return 0, 0, sparseErrorf(fmt.Sprintf("%s(%d)", ctxLineRange, i), ErrOutOfRange)
	}

	return s.offsets[i], s.lineEnd(i), nil
}

// IndexAt returns the secondary coordinate of flat cell k.
func (s *Store[T]) IndexAt(k int) (int, error) {
	if k < 0 || k >= len(s.indices) {
		return 0, sparseErrorf(fmt.Sprintf("%s(%d)", ctxIndexAt, k), ErrOutOfRange)
	}

	return s.indices[k], nil
}

// ValueAt returns the value of flat cell k.
func (s *Store[T]) ValueAt(k int) (T, error) {
	if k < 0 || k >= len(s.values) {
		var zero T
		return zero, sparseErrorf(fmt.Sprintf("%s(%d)", ctxValueAt, k), ErrOutOfRange)
	}

	return s.values[k], nil
}

// Offsets returns the backing offset table (open form). Read-only.
func (s *Store[T]) Offsets() []int { return s.offsets }

// Indices returns the backing secondary-coordinate slice. Read-only.
func (s *Store[T]) Indices() []int { return s.indices }

// Values returns the backing value slice. Read-only.
func (s *Store[T]) Values() []T { return s.values }

// At returns the value at (row, col); cells not stored read as the semiring
// zero, including cells beyond the populated extent.
//
// Errors:
//   - ErrOutOfRange for negative coordinates.
//   - ErrNilSemiring on a zero Store.
//
// Complexity:
//   - Time O(log k) for a line with k cells.
func (s *Store[T]) At(row, col int) (T, error) {
	var zero T
	if err := s.ready(ctxAt); err != nil {
		return zero, err
	}
	if row < 0 || col < 0 {
		return zero, sparseErrorf(fmt.Sprintf("%s(%d,%d)", ctxAt, row, col), ErrOutOfRange)
	}
	p, q := row, col
	if s.layout == ColumnCompressed {
		p, q = col, row
	}
	if p >= len(s.offsets) {
		return s.ring.Zero(), nil
	}
	b, e := s.offsets[p], s.lineEnd(p)
	if k, ok := slices.BinarySearch(s.indices[b:e], q); ok {
		return s.values[b+k], nil
	}

	return s.ring.Zero(), nil
}

// Extent returns the smallest shape that contains every stored cell.
func (s *Store[T]) Extent() Shape {
	secondary := 0
	for _, q := range s.indices {
		if q+1 > secondary {
			secondary = q + 1
		}
	}
	if s.layout == ColumnCompressed {
		return Shape{Rows: secondary, Cols: len(s.offsets)}
	}

	return Shape{Rows: len(s.offsets), Cols: secondary}
}

// Decompress returns every stored cell as an entry, in layout order.
// Decompress followed by FromSortedEntries with the same layout is the identity.
//
// Complexity:
//   - Time O(n + lines), Space O(n).
func (s *Store[T]) Decompress() []Entry[T] {
	out := make([]Entry[T], len(s.indices))
	for p := range s.offsets {
		for k := s.offsets[p]; k < s.lineEnd(p); k++ {
			if s.layout == ColumnCompressed {
				out[k] = Entry[T]{Row: s.indices[k], Col: p, Value: s.values[k]}
			} else {
				out[k] = Entry[T]{Row: p, Col: s.indices[k], Value: s.values[k]}
			}
		}
	}

	return out
}

// Clone returns a deep copy sharing no storage with s.
func (s *Store[T]) Clone() *Store[T] {
	return &Store[T]{
		layout:  s.layout,
		offsets: slices.Clone(s.offsets),
		indices: slices.Clone(s.indices),
		values:  slices.Clone(s.values),
		ring:    s.ring,
		opts:    s.opts,
	}
}

// ToDense materializes s into a shape.Rows × shape.Cols dense buffer.
//
// Errors:
//   - ErrInvalidDimensions for a negative shape.
//   - ErrOutOfRange when a stored cell falls outside shape.
func (s *Store[T]) ToDense(shape Shape) (*Dense[T], error) {
	d, err := NewDense[T](shape.Rows, shape.Cols)
	if err != nil {
		return nil, sparseErrorf(ctxToDense, err)
	}
	if s.ring != nil {
		d.fill(s.ring.Zero())
	}
	for _, e := range s.Decompress() {
		if err = d.Set(e.Row, e.Col, e.Value); err != nil {
			return nil, sparseErrorf(ctxToDense, err)
		}
	}

	return d, nil
}

// String renders the raw compressed arrays for debugging:
//
//	csr lines=3 nnz=8
//	offsets: [0 3 6]
//	indices: [1 2 3 0 1 3 0 2]
//	values:  [1 2 1 2 3 5 1 4]
func (s *Store[T]) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s lines=%d nnz=%d\n", s.layout, len(s.offsets), len(s.indices))
	fmt.Fprintf(&b, "offsets: %v\n", s.offsets)
	fmt.Fprintf(&b, "indices: %v\n", s.indices)
	fmt.Fprintf(&b, "values:  %v\n", s.values)

	return b.String()
}
