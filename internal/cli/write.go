// SPDX-License-Identifier: MIT

package cli

import (
	"fmt"

	"github.com/katalvlaran/sparsemat/sparse"
)

// WriteResult reports a matrix written by convert, mul, add, transpose or fill.
type WriteResult struct {
	Output string `json:"output"`
	Layout string `json:"layout"`
	Rows   int    `json:"rows"`
	Cols   int    `json:"cols"`
	NNZ    int    `json:"nnz"`
}

func (r WriteResult) String() string {
	return fmt.Sprintf("wrote %s (%dx%d, nnz=%d, %s)\n", r.Output, r.Rows, r.Cols, r.NNZ, r.Layout)
}

// emit saves s to out and reports it.
func emit(opts *RootOptions, f *OutputFormatter, out string, shape sparse.Shape, s *sparse.Store[float64]) error {
	if err := saveMatrix(out, shape, s); err != nil {
		return saveFailure(f, out, err)
	}
	opts.Logger.Debug("wrote", "path", out, "shape", shape.String(), "nnz", s.Len(), "layout", s.Layout().String())

	return f.Success(WriteResult{
		Output: out,
		Layout: s.Layout().String(),
		Rows:   shape.Rows,
		Cols:   shape.Cols,
		NNZ:    s.Len(),
	})
}
