// SPDX-License-Identifier: MIT

// Package snapshot stores a float64 sparse.Store in a compact binary form.
//
// Layout (before compression):
//
//	magic    "SPMT"
//	version  1 byte (1)
//	layout   1 byte (0 = csr, 1 = csc)
//	rows     uvarint
//	cols     uvarint
//	lines    uvarint
//	nnz      uvarint
//	offsets  lines × uvarint (open form, first is 0)
//	indices  nnz × uvarint
//	values   nnz × 8 bytes, little-endian IEEE-754 bits
//
// The whole record is written through a snappy framed stream, so a snapshot
// is also a valid .sz file.
package snapshot

import (
	"bufio"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"math"

	"github.com/golang/snappy"
	"github.com/katalvlaran/sparsemat/sparse"
)

const (
	magic   = "SPMT"
	Version = 1

	// preallocCap bounds slice preallocation from untrusted counts; larger
	// payloads still decode, they just grow by append.
	preallocCap = 1 << 16
)

// Encode writes shape and s to w. s is not modified.
func Encode(w io.Writer, shape sparse.Shape, s *sparse.Store[float64]) error {
	if s == nil {
		return fmt.Errorf("snapshot: Encode: %w", sparse.ErrNilStore)
	}
	if shape.Rows < 0 || shape.Cols < 0 {
		return fmt.Errorf("snapshot: Encode %s: %w", shape, sparse.ErrInvalidDimensions)
	}
	if ext := s.Extent(); ext.Rows > shape.Rows || ext.Cols > shape.Cols {
		return fmt.Errorf("snapshot: Encode: extent %s exceeds %s: %w", ext, shape, ErrShape)
	}

	zw := snappy.NewBufferedWriter(w)
	enc := encoder{w: zw}
	enc.bytes([]byte(magic))
	enc.bytes([]byte{Version, byte(s.Layout())})
	enc.uvarint(uint64(shape.Rows))
	enc.uvarint(uint64(shape.Cols))
	enc.uvarint(uint64(s.LineCount()))
	enc.uvarint(uint64(s.Len()))
	for _, o := range s.Offsets() {
		enc.uvarint(uint64(o))
	}
	for _, i := range s.Indices() {
		enc.uvarint(uint64(i))
	}
	for _, v := range s.Values() {
		enc.float(v)
	}
	if enc.err != nil {
		return enc.err
	}

	return zw.Close()
}

// encoder latches the first write error.
type encoder struct {
	w   io.Writer
	buf [binary.MaxVarintLen64]byte
	err error
}

func (e *encoder) bytes(p []byte) {
	if e.err == nil {
		_, e.err = e.w.Write(p)
	}
}

func (e *encoder) uvarint(v uint64) {
	n := binary.PutUvarint(e.buf[:], v)
	e.bytes(e.buf[:n])
}

func (e *encoder) float(v float64) {
	binary.LittleEndian.PutUint64(e.buf[:8], math.Float64bits(v))
	e.bytes(e.buf[:8])
}

// Decode reads a snapshot and rebuilds the store through sparse.FromRaw, so
// structural corruption surfaces as sparse.ErrCorruptStructure.
//
// Errors:
//   - ErrBadMagic, ErrVersion, ErrTruncated, ErrShape.
//   - snappy.ErrCorrupt for a damaged compressed frame.
func Decode(r io.Reader, opts ...sparse.Option) (sparse.Shape, *sparse.Store[float64], error) {
	br := bufio.NewReader(snappy.NewReader(r))

	head := make([]byte, len(magic)+2)
	if _, err := io.ReadFull(br, head); err != nil {
		return sparse.Shape{}, nil, truncated("header", err)
	}
	if string(head[:len(magic)]) != magic {
		return sparse.Shape{}, nil, ErrBadMagic
	}
	if head[len(magic)] != Version {
		return sparse.Shape{}, nil, fmt.Errorf("version %d: %w", head[len(magic)], ErrVersion)
	}
	layout := sparse.Layout(head[len(magic)+1])

	var counts [4]int
	for k, name := range []string{"rows", "cols", "lines", "nnz"} {
		v, err := binary.ReadUvarint(br)
		if err != nil {
			return sparse.Shape{}, nil, truncated(name, err)
		}
		if v > math.MaxInt32 {
			return sparse.Shape{}, nil, fmt.Errorf("%s=%d: %w", name, v, sparse.ErrCorruptStructure)
		}
		counts[k] = int(v)
	}
	shape := sparse.Shape{Rows: counts[0], Cols: counts[1]}
	lines, nnz := counts[2], counts[3]

	offsets, err := readInts(br, lines, "offsets")
	if err != nil {
		return sparse.Shape{}, nil, err
	}
	indices, err := readInts(br, nnz, "indices")
	if err != nil {
		return sparse.Shape{}, nil, err
	}
	values := make([]float64, 0, min(nnz, preallocCap))
	var word [8]byte
	for k := 0; k < nnz; k++ {
		if _, err = io.ReadFull(br, word[:]); err != nil {
			return sparse.Shape{}, nil, truncated("values", err)
		}
		values = append(values, math.Float64frombits(binary.LittleEndian.Uint64(word[:])))
	}

	s, err := sparse.FromRaw(sparse.Arithmetic[float64]{}, layout, offsets, indices, values, opts...)
	if err != nil {
		return sparse.Shape{}, nil, err
	}
	if ext := s.Extent(); ext.Rows > shape.Rows || ext.Cols > shape.Cols {
		return sparse.Shape{}, nil, fmt.Errorf("extent %s exceeds %s: %w", ext, shape, ErrShape)
	}

	return shape, s, nil
}

func readInts(br *bufio.Reader, n int, what string) ([]int, error) {
	out := make([]int, 0, min(n, preallocCap))
	for k := 0; k < n; k++ {
		v, err := binary.ReadUvarint(br)
		if err != nil {
			return nil, truncated(what, err)
		}
		if v > math.MaxInt32 {
			return nil, fmt.Errorf("%s[%d]=%d: %w", what, k, v, sparse.ErrCorruptStructure)
		}
		out = append(out, int(v))
	}
	return out, nil
}

// truncated maps a short read to ErrTruncated and passes other errors through.
func truncated(what string, err error) error {
	if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
		return fmt.Errorf("%s: %w", what, ErrTruncated)
	}
	return fmt.Errorf("%s: %w", what, err)
}
