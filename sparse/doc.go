// SPDX-License-Identifier: MIT

// Package sparse stores mostly-zero matrices in compressed form and does
// arithmetic on them without ever materializing a dense buffer.
//
// The package provides:
//
//   - Entry[T], the (row, col, value) triple used for bulk input and output,
//     plus a deterministic order per Layout (SortForLayout).
//   - Store[T], the compressed array-of-structures representation: an offset
//     table, a secondary-index slice and a parallel value slice, laid out
//     either row-compressed (CSR) or column-compressed (CSC).
//   - A layout converter: every structural mutation (Insert, Append,
//     Transpose, ToLayout, Fill) decompresses to entries, edits, re-sorts and
//     recompresses. Invariants are therefore re-established on every call.
//   - Multiply, a CSR×CSC merge-join product with early exit.
//   - Add, a row-by-row ordered accumulation of two CSR stores.
//   - Closure, repeated squaring to a fixpoint (shortest paths under MinPlus).
//   - Semiring[T]: the value algebra. Arithmetic[T] for plain numbers,
//     MinPlus for shortest-path products, Boolean for reachability and
//     Uint256 for 256-bit modular arithmetic.
//
// Invariants held by every Store after each public call:
//
//	1. len(indices) == len(values)
//	2. indices strictly increase inside each primary line
//	3. offsets are non-decreasing and offsets[0] == 0
//	4. empty lines are empty ranges; len(offsets) == last populated line + 1
//	5. no explicit zeros (Add without WithPruneZeroSums is the one exception)
//
// Offsets use the "open" form: there is no trailing sentinel and a line ends
// at offsets[i+1] or, for the last line, at len(indices).
//
// Concurrency: none. A Store is owned by whoever holds it; callers serialize
// access. Multiply reorders its operands' storage (never their value); use
// MultiplyPure when operands must stay untouched.
//
// Quick example:
//
//	ring := sparse.Arithmetic[float64]{}
//	a, _ := sparse.FromEntries(ring, entries, sparse.RowCompressed)
//	c, _ := sparse.Multiply(a, a.Clone())
//	fmt.Println(c)
package sparse
