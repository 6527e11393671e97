// SPDX-License-Identifier: MIT
// Package sparse: merge-join multiplier.
//
// Purpose:
//   - C = A·B under the operands' semiring, with A row-compressed and B
//     column-compressed, so that every output cell is a dot product of two
//     sorted index runs over the same K space.
//   - No dense scratch buffer: each dot product is a two-cursor intersection.
//
// Determinism:
//   - Fixed r→c loop order; cells are emitted in ascending column per row, so
//     the CSR result needs no sort pass.
//
// AI-Hints:
//   - Multiply converts its operands in place (CSR for A, CSC for B). Keep the
//     operands in those layouts between calls to make repeated products
//     conversion-free; use MultiplyPure when operands must stay untouched.

package sparse

const ctxMultiply = "Multiply"

// Multiply returns a·b.
// MAIN DESCRIPTION:
//   - For each row r of a and each column line c of b, merge-intersect the
//     two runs and emit (r, c, Σ a[r,k]·b[k,c]) when the sum is non-zero.
//
// Side effects:
//   - a is converted to RowCompressed and b to ColumnCompressed in place.
//     Their mathematical value never changes. When a and b are the same
//     store, b is cloned first so both layouts can coexist.
//
// Behavior highlights:
//   - Shape mismatch is permissive: K coordinates present in only one operand
//     never intersect and contribute nothing.
//   - The result carries a's semiring and options.
//
// Errors:
//   - ErrNilStore for a nil operand.
//   - ErrNilSemiring for a zero Store operand.
//
// Complexity:
//   - Time O(Σ_r Σ_c min(|A_r| + |B_c|, early-exit bound)), Space O(nnz(C)).
func Multiply[T comparable](a, b *Store[T]) (*Store[T], error) {
	if a == nil || b == nil {
		return nil, sparseErrorf(ctxMultiply, ErrNilStore)
	}
	if a.ring == nil || b.ring == nil {
		return nil, sparseErrorf(ctxMultiply, ErrNilSemiring)
	}
	if a == b {
		b = b.Clone()
	}
	if err := a.ToRowCompressed(); err != nil {
		return nil, sparseErrorf(ctxMultiply, err)
	}
	if err := b.ToColumnCompressed(); err != nil {
		return nil, sparseErrorf(ctxMultiply, err)
	}

	ring := a.ring
	out := compressor[T]{ring: ring}
	for r := range a.offsets {
		ab, ae := a.offsets[r], a.lineEnd(r)
		if ab == ae {
			continue // empty row: every product in it is zero
		}
		aIdx, aVal := a.indices[ab:ae], a.values[ab:ae]
		for c := range b.offsets {
			bb, be := b.offsets[c], b.lineEnd(c)
			if bb == be {
				continue
			}
			sum, hit := mergeDot(ring, aIdx, aVal, b.indices[bb:be], b.values[bb:be])
			if hit {
				out.push(r, c, sum) // push drops a zero sum
			}
		}
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

// MultiplyPure returns a·b without touching the operands' storage.
// It clones both first; cost is one extra O(n) copy per operand plus any
// layout conversion the clones need.
func MultiplyPure[T comparable](a, b *Store[T]) (*Store[T], error) {
	if a == nil || b == nil {
		return nil, sparseErrorf(ctxMultiply, ErrNilStore)
	}

	return Multiply(a.Clone(), b.Clone())
}

// mergeDot intersects two ascending index runs and returns Σ av[i]·bv[j]
// over matching indices. hit reports whether any index matched.
//
// Cursor rules:
//   - equal indices: accumulate, advance both;
//   - otherwise advance the cursor at the smaller index, unless that smaller
//     cursor's target (the larger current index) is beyond the other run's
//     last element, in which case no further match is possible.
func mergeDot[T comparable](ring Semiring[T], ai []int, av []T, bi []int, bv []T) (sum T, hit bool) {
	sum = ring.Zero()
	if len(ai) == 0 || len(bi) == 0 {
		return sum, false
	}
	aMax, bMax := ai[len(ai)-1], bi[len(bi)-1]

	i, j := 0, 0
	for i < len(ai) && j < len(bi) {
		x, y := ai[i], bi[j]
		switch {
		case x == y:
			sum = ring.Add(sum, ring.Mul(av[i], bv[j]))
			hit = true
			i++
			j++
		case x < y:
			if y > aMax {
				return sum, hit // a has nothing left that can reach y
			}
			i++
		default:
			if x > bMax {
				return sum, hit
			}
			j++
		}
	}

	return sum, hit
}
