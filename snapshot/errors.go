// SPDX-License-Identifier: MIT

package snapshot

import "errors"

var (
	// ErrBadMagic indicates the stream does not start with "SPMT".
	ErrBadMagic = errors.New("snapshot: bad magic")

	// ErrVersion indicates a format version this package cannot decode.
	ErrVersion = errors.New("snapshot: unsupported version")

	// ErrTruncated indicates the stream ended before the announced content.
	ErrTruncated = errors.New("snapshot: truncated stream")

	// ErrShape indicates the stored cells do not fit the declared shape.
	ErrShape = errors.New("snapshot: cells outside shape")
)
