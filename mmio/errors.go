// SPDX-License-Identifier: MIT

package mmio

import (
	"errors"
	"fmt"
)

// Sentinel errors. Read wraps them with the offending line number.
var (
	// ErrBadHeader indicates a missing or malformed %%MatrixMarket banner.
	ErrBadHeader = errors.New("mmio: bad header")

	// ErrUnsupported indicates a valid banner naming a variant this reader
	// does not handle (array format, complex or hermitian matrices).
	ErrUnsupported = errors.New("mmio: unsupported matrix type")

	// ErrBadSize indicates a malformed size line, or a store that does not
	// fit the shape given to Write.
	ErrBadSize = errors.New("mmio: bad size")

	// ErrBadEntry indicates a malformed, out-of-bounds or missing entry line.
	ErrBadEntry = errors.New("mmio: bad entry")
)

// lineErrorf tags err with a 1-based source line.
func lineErrorf(line int, err error) error {
	return fmt.Errorf("line %d: %w", line, err)
}
