// SPDX-License-Identifier: MIT
// Package sparse: public API facades.
//
// Purpose:
//   - Thin, pure entry points next to the in-place methods, for callers that
//     want value semantics (operands never change).
//   - No logic duplication: each facade clones and delegates.

package sparse

// Sum is an alias for Add: element-wise a + b (both CSR).
// Complexity: O(nnz(a) + nnz(b) + rows).
func Sum[T comparable](a, b *Store[T], opts ...Option) (*Store[T], error) { return Add(a, b, opts...) }

// Product is an alias for MultiplyPure: a·b with operands left untouched.
func Product[T comparable](a, b *Store[T]) (*Store[T], error) { return MultiplyPure(a, b) }

// Transposed returns sᵀ in s's layout; s is not modified.
// Complexity: O(n log n).
func Transposed[T comparable](s *Store[T]) (*Store[T], error) {
	if s == nil {
		return nil, sparseErrorf(ctxTranspose, ErrNilStore)
	}
	out := s.Clone()
	if err := out.Transpose(); err != nil {
		return nil, err
	}

	return out, nil
}

// Converted returns a copy of s in the target layout; s is not modified.
//
// AI-Hints: prefer the in-place ToLayout when the old layout is no longer needed.
func Converted[T comparable](s *Store[T], target Layout) (*Store[T], error) {
	if s == nil {
		return nil, sparseErrorf(ctxToLayout, ErrNilStore)
	}
	out := s.Clone()
	if err := out.ToLayout(target); err != nil {
		return nil, err
	}

	return out, nil
}
