// SPDX-License-Identifier: MIT

package cli

import (
	"errors"
	"fmt"
	"math/bits"
	"os"
	"path/filepath"
	"strings"

	"github.com/katalvlaran/sparsemat/mmio"
	"github.com/katalvlaran/sparsemat/snapshot"
	"github.com/katalvlaran/sparsemat/sparse"
	"github.com/pbnjay/memory"
)

// File extensions the loader dispatches on.
const (
	ExtMatrixMarket = ".mtx"
	ExtSnapshot     = ".spm"
)

// ErrUnknownExtension is returned for paths that are neither .mtx nor .spm.
var ErrUnknownExtension = errors.New("unknown matrix file extension (want .mtx or .spm)")

// errDenseTooLarge is returned by the memory guard.
var errDenseTooLarge = errors.New("dense output exceeds half of the host memory")

// totalMemory is swapped in tests.
var totalMemory = memory.TotalMemory

// matrixFile is one loaded matrix with its declared shape.
type matrixFile struct {
	Path   string
	Format string // "matrix-market" | "snapshot"
	Shape  sparse.Shape
	Store  *sparse.Store[float64]
}

func formatOf(path string) (string, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ExtMatrixMarket:
		return "matrix-market", nil
	case ExtSnapshot:
		return "snapshot", nil
	default:
		return "", fmt.Errorf("%s: %w", path, ErrUnknownExtension)
	}
}

// loadMatrix reads path and returns its store in the requested layout.
func loadMatrix(path string, layout sparse.Layout, opts ...sparse.Option) (*matrixFile, error) {
	format, err := formatOf(path)
	if err != nil {
		return nil, err
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	m := &matrixFile{Path: path, Format: format}
	if format == "matrix-market" {
		m.Shape, m.Store, err = mmio.Read(f, layout, opts...)
	} else {
		m.Shape, m.Store, err = snapshot.Decode(f, opts...)
		if err == nil {
			err = m.Store.ToLayout(layout)
		}
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return m, nil
}

// saveMatrix writes s to path in the format its extension selects.
func saveMatrix(path string, shape sparse.Shape, s *sparse.Store[float64]) error {
	format, err := formatOf(path)
	if err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if format == "matrix-market" {
		err = mmio.Write(f, shape, s)
	} else {
		err = snapshot.Encode(f, shape, s)
	}
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}

	return nil
}

// isIOError reports whether err came from the filesystem rather than from
// the file's content.
func isIOError(err error) bool {
	var pe *os.PathError
	return errors.As(err, &pe)
}

// loadFailure maps a loader error to the right code and exit status.
func loadFailure(f *OutputFormatter, path string, err error) error {
	if isIOError(err) {
		return f.fail(ExitCommandError, ErrCodeIO, "cannot read "+path, err)
	}
	return f.fail(ExitCommandError, ErrCodeFormat, "cannot parse "+path, err)
}

// saveFailure maps a writer error to the right code and exit status.
func saveFailure(f *OutputFormatter, path string, err error) error {
	if errors.Is(err, ErrUnknownExtension) {
		return f.fail(ExitCommandError, ErrCodeFormat, "cannot write "+path, err)
	}
	return f.fail(ExitCommandError, ErrCodeIO, "cannot write "+path, err)
}

// checkDenseBudget refuses to materialize rows×cols cells of cellBytes each
// when that would take more than half of the host memory. An unknown total
// (0) disables the guard.
func checkDenseBudget(shape sparse.Shape, cellBytes uint64) error {
	total := totalMemory()
	if total == 0 {
		return nil
	}
	hi, cells := bits.Mul64(uint64(shape.Rows), uint64(shape.Cols))
	over, need := bits.Mul64(cells, cellBytes)
	if hi != 0 || over != 0 {
		return fmt.Errorf("%s overflows the address space: %w", shape, errDenseTooLarge)
	}
	if need > total/2 {
		return fmt.Errorf("%s needs %d bytes of %d: %w", shape, need, total, errDenseTooLarge)
	}
	return nil
}
