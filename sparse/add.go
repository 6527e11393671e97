// SPDX-License-Identifier: MIT
// Package sparse: elementwise adder.
//
// Purpose:
//   - C = A + B for two row-compressed stores, row by row.
//   - Operands may have different line counts; the shorter is treated as
//     zero-padded up to max(A.LineCount(), B.LineCount()).
//
// Determinism:
//   - Per row, cells are accumulated in ascending column order (a two-run
//     merge over the already sorted lines acts as the ordered accumulation
//     map), so the output needs no sort.

package sparse

const ctxAdd = "Add"

// Add returns a + b.
//
// Behavior highlights:
//   - Collisions on the same column are summed with the semiring Add.
//   - A sum that is exactly zero is still stored, unless WithPruneZeroSums()
//     is in effect (given here or carried by a's options).
//   - Operands are not modified. The result carries a's semiring and options.
//
// Errors:
//   - ErrNilStore for a nil operand.
//   - ErrNilSemiring for a zero Store operand.
//   - ErrLayoutMismatch if either operand is not RowCompressed.
//
// Complexity:
//   - Time O(nnz(A) + nnz(B) + rows), Space O(nnz(C)).
func Add[T comparable](a, b *Store[T], opts ...Option) (*Store[T], error) {
	if a == nil || b == nil {
		return nil, sparseErrorf(ctxAdd, ErrNilStore)
	}
	if a.ring == nil || b.ring == nil {
		return nil, sparseErrorf(ctxAdd, ErrNilSemiring)
	}
	if a.layout != RowCompressed || b.layout != RowCompressed {
		return nil, sparseErrorf(ctxAdd, ErrLayoutMismatch)
	}
	o := gatherOptions(a.opts, opts...)

	ring := a.ring
	out := compressor[T]{ring: ring, keepZero: !o.pruneZeroSums}
	rows := max(len(a.offsets), len(b.offsets))
	for y := 0; y < rows; y++ {
		var ai, bi []int
		var av, bv []T
		if y < len(a.offsets) {
			ai, av = a.indices[a.offsets[y]:a.lineEnd(y)], a.values[a.offsets[y]:a.lineEnd(y)]
		}
		if y < len(b.offsets) {
			bi, bv = b.indices[b.offsets[y]:b.lineEnd(y)], b.values[b.offsets[y]:b.lineEnd(y)]
		}
		accumulateRow(&out, ring, y, ai, av, bi, bv)
	}

	return &Store[T]{
		layout:  RowCompressed,
		offsets: out.offsets,
		indices: out.indices,
		values:  out.values,
		ring:    ring,
		opts:    a.opts,
	}, nil
}

// accumulateRow merges row y of both operands into out in ascending column order.
func accumulateRow[T comparable](out *compressor[T], ring Semiring[T], y int, ai []int, av []T, bi []int, bv []T) {
	i, j := 0, 0
	for i < len(ai) || j < len(bi) {
		switch {
		case j == len(bi) || (i < len(ai) && ai[i] < bi[j]):
			out.push(y, ai[i], av[i])
			i++
		case i == len(ai) || bi[j] < ai[i]:
			out.push(y, bi[j], bv[j])
			j++
		default: // same column in both rows
			out.push(y, ai[i], ring.Add(av[i], bv[j]))
			i++
			j++
		}
	}
}
