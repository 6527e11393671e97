// SPDX-License-Identifier: MIT

// Package sparsemat is the root of a small toolkit for compressed sparse
// matrices.
//
// Subpackages:
//
//	sparse/        CSR/CSC stores, semirings, merge-join Multiply, Add, Closure
//	mmio/          Matrix Market coordinate reader/writer
//	snapshot/      snappy-framed binary snapshot of a float64 store
//	internal/cli/  cobra commands behind cmd/sparsemat
//
// Quick example:
//
//	r := sparse.Arithmetic[float64]{}
//	a, _ := sparse.FromEntries(r, entries, sparse.RowCompressed)
//	c, _ := sparse.Multiply(a, a) // a stays CSR, its clone goes CSC
//
// Every stored value is non-zero under the store's semiring, and every line
// holds strictly increasing secondary coordinates. See package sparse for the
// full list of invariants.
package sparsemat
