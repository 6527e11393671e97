// SPDX-License-Identifier: MIT

// Package mmio reads and writes sparse matrices in the Matrix Market
// coordinate exchange format.
//
// Supported banners:
//
//	%%MatrixMarket matrix coordinate {real|integer|pattern} {general|symmetric|skew-symmetric}
//
// Indices in the file are 1-based. Symmetric files list the lower triangle
// only; Read mirrors every off-diagonal entry (negated for skew-symmetric).
// Pattern entries carry no value and read as 1. Repeated coordinates are
// resolved by the store's DuplicatePolicy.
package mmio

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/katalvlaran/sparsemat/sparse"
)

const banner = "%%MatrixMarket"

// preallocCap bounds the entry slice sized from the size line.
const preallocCap = 1 << 16

// Field is the value kind a file declares.
type Field string

const (
	FieldReal    Field = "real"
	FieldInteger Field = "integer"
	FieldPattern Field = "pattern"
)

// Symmetry is the storage symmetry a file declares.
type Symmetry string

const (
	General       Symmetry = "general"
	Symmetric     Symmetry = "symmetric"
	SkewSymmetric Symmetry = "skew-symmetric"
)

// Header is the parsed banner plus the size line.
type Header struct {
	Field    Field
	Symmetry Symmetry
	Shape    sparse.Shape
	Entries  int // entry lines announced by the size line
}

// reader walks non-comment lines and remembers the current line number.
type reader struct {
	sc   *bufio.Scanner
	line int
}

func newReader(r io.Reader) *reader {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 64*1024), 1<<20)
	return &reader{sc: sc}
}

// next returns the next data line, skipping blanks and '%' comments.
func (r *reader) next() (string, bool) {
	for r.sc.Scan() {
		r.line++
		text := strings.TrimSpace(r.sc.Text())
		if text == "" || strings.HasPrefix(text, "%") {
			continue
		}
		return text, true
	}
	return "", false
}

// parseBanner validates "%%MatrixMarket matrix coordinate <field> <symmetry>".
func parseBanner(text string) (Header, error) {
	fields := strings.Fields(strings.ToLower(text))
	if len(fields) != 5 || fields[0] != strings.ToLower(banner) || fields[1] != "matrix" {
		return Header{}, ErrBadHeader
	}
	if fields[2] != "coordinate" {
		return Header{}, fmt.Errorf("format %q: %w", fields[2], ErrUnsupported)
	}

	var h Header
	switch f := Field(fields[3]); f {
	case FieldReal, FieldInteger, FieldPattern:
		h.Field = f
	case "complex":
		return Header{}, fmt.Errorf("field %q: %w", f, ErrUnsupported)
	default:
		return Header{}, fmt.Errorf("field %q: %w", f, ErrBadHeader)
	}
	switch s := Symmetry(fields[4]); s {
	case General, Symmetric, SkewSymmetric:
		h.Symmetry = s
	case "hermitian":
		return Header{}, fmt.Errorf("symmetry %q: %w", s, ErrUnsupported)
	default:
		return Header{}, fmt.Errorf("symmetry %q: %w", s, ErrBadHeader)
	}

	return h, nil
}

// readHeader consumes the banner, comments and the size line.
func readHeader(r *reader) (Header, error) {
	if !r.sc.Scan() {
		if err := r.sc.Err(); err != nil {
			return Header{}, err
		}
		return Header{}, lineErrorf(1, ErrBadHeader)
	}
	r.line++
	h, err := parseBanner(strings.TrimSpace(r.sc.Text()))
	if err != nil {
		return Header{}, lineErrorf(r.line, err)
	}

	text, ok := r.next()
	if !ok {
		return Header{}, lineErrorf(r.line, ErrBadSize)
	}
	n, err := parseInts(text, 3)
	if err != nil || n[0] < 0 || n[1] < 0 || n[2] < 0 {
		return Header{}, lineErrorf(r.line, fmt.Errorf("%q: %w", text, ErrBadSize))
	}
	h.Shape = sparse.Shape{Rows: n[0], Cols: n[1]}
	h.Entries = n[2]

	return h, nil
}

// ReadHeader parses only the banner and the size line of r.
func ReadHeader(r io.Reader) (Header, error) {
	return readHeader(newReader(r))
}

// Read parses a Matrix Market coordinate file into a float64 store in the
// given layout. opts are passed to sparse.FromEntries.
//
// Errors:
//   - ErrBadHeader, ErrUnsupported for the banner.
//   - ErrBadSize for the size line.
//   - ErrBadEntry for malformed or out-of-bounds entries, or an entry count
//     that differs from the size line.
func Read(r io.Reader, layout sparse.Layout, opts ...sparse.Option) (sparse.Shape, *sparse.Store[float64], error) {
	rd := newReader(r)
	h, err := readHeader(rd)
	if err != nil {
		return sparse.Shape{}, nil, err
	}

	want := 2
	if h.Field != FieldPattern {
		want = 3
	}
	entries := make([]sparse.Entry[float64], 0, min(h.Entries, preallocCap))
	for k := 0; k < h.Entries; k++ {
		text, ok := rd.next()
		if !ok {
			if err = rd.sc.Err(); err != nil {
				return sparse.Shape{}, nil, err
			}
			return sparse.Shape{}, nil, fmt.Errorf("got %d of %d entries: %w", k, h.Entries, ErrBadEntry)
		}
		en, err := parseEntry(text, want, h)
		if err != nil {
			return sparse.Shape{}, nil, lineErrorf(rd.line, err)
		}
		entries = append(entries, en)
		if en.Row != en.Col {
			switch h.Symmetry {
			case Symmetric:
				entries = append(entries, sparse.Entry[float64]{Row: en.Col, Col: en.Row, Value: en.Value})
			case SkewSymmetric:
				entries = append(entries, sparse.Entry[float64]{Row: en.Col, Col: en.Row, Value: -en.Value})
			}
		}
	}
	if text, ok := rd.next(); ok {
		return sparse.Shape{}, nil, lineErrorf(rd.line, fmt.Errorf("trailing data %q: %w", text, ErrBadEntry))
	}
	if err = rd.sc.Err(); err != nil {
		return sparse.Shape{}, nil, err
	}

	s, err := sparse.FromEntries(sparse.Arithmetic[float64]{}, entries, layout, opts...)
	if err != nil {
		return sparse.Shape{}, nil, err
	}

	return h.Shape, s, nil
}

// parseEntry reads "i j [v]" and converts to 0-based coordinates.
func parseEntry(text string, want int, h Header) (sparse.Entry[float64], error) {
	fields := strings.Fields(text)
	if len(fields) != want {
		return sparse.Entry[float64]{}, fmt.Errorf("%q: want %d fields: %w", text, want, ErrBadEntry)
	}
	i, err1 := strconv.Atoi(fields[0])
	j, err2 := strconv.Atoi(fields[1])
	if err1 != nil || err2 != nil || i < 1 || j < 1 || i > h.Shape.Rows || j > h.Shape.Cols {
		return sparse.Entry[float64]{}, fmt.Errorf("%q: coordinate outside %s: %w", text, h.Shape, ErrBadEntry)
	}

	v := 1.0
	switch h.Field {
	case FieldInteger:
		n, err := strconv.ParseInt(fields[2], 10, 64)
		if err != nil {
			return sparse.Entry[float64]{}, fmt.Errorf("%q: %w", text, ErrBadEntry)
		}
		v = float64(n)
	case FieldReal:
		f, err := strconv.ParseFloat(fields[2], 64)
		if err != nil {
			return sparse.Entry[float64]{}, fmt.Errorf("%q: %w", text, ErrBadEntry)
		}
		v = f
	}

	return sparse.Entry[float64]{Row: i - 1, Col: j - 1, Value: v}, nil
}

func parseInts(text string, n int) ([]int, error) {
	fields := strings.Fields(text)
	if len(fields) != n {
		return nil, fmt.Errorf("want %d integers, got %d", n, len(fields))
	}
	out := make([]int, n)
	for k, f := range fields {
		v, err := strconv.Atoi(f)
		if err != nil {
			return nil, err
		}
		out[k] = v
	}
	return out, nil
}

// Write emits s as "coordinate real general" with entries in row-major order
// and shortest round-trip float formatting. s is not modified.
//
// Errors:
//   - sparse.ErrNilStore for a nil store.
//   - ErrBadSize when a stored cell lies outside shape.
func Write(w io.Writer, shape sparse.Shape, s *sparse.Store[float64]) error {
	if s == nil {
		return fmt.Errorf("mmio: Write: %w", sparse.ErrNilStore)
	}
	if ext := s.Extent(); ext.Rows > shape.Rows || ext.Cols > shape.Cols || shape.Rows < 0 || shape.Cols < 0 {
		return fmt.Errorf("store extent %s exceeds %s: %w", ext, shape, ErrBadSize)
	}

	entries := s.Decompress()
	if s.Layout() != sparse.RowCompressed {
		sparse.SortForLayout(entries, sparse.RowCompressed)
	}

	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "%s matrix coordinate %s %s\n", banner, FieldReal, General)
	fmt.Fprintf(bw, "%d %d %d\n", shape.Rows, shape.Cols, len(entries))
	for _, en := range entries {
		bw.WriteString(strconv.Itoa(en.Row + 1))
		bw.WriteByte(' ')
		bw.WriteString(strconv.Itoa(en.Col + 1))
		bw.WriteByte(' ')
		bw.WriteString(strconv.FormatFloat(en.Value, 'g', -1, 64))
		bw.WriteByte('\n')
	}

	return bw.Flush()
}
