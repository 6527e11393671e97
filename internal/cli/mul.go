// SPDX-License-Identifier: MIT

package cli

import (
	"github.com/katalvlaran/sparsemat/sparse"
	"github.com/spf13/cobra"
)

// NewMulCommand creates the mul command.
func NewMulCommand(rootOpts *RootOptions) *cobra.Command {
	var out string
	cmd := &cobra.Command{
		Use:   "mul <a> <b>",
		Short: "Multiply two matrices (a·b) and write the product",
		Long: `Multiply two matrices with the merge-join kernel. a is loaded row-compressed
and b column-compressed. The product has a's row count and b's column count;
inner dimensions that differ are tolerated (unmatched terms contribute nothing)
but reported with --verbose.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runMul(rootOpts, cmd, args[0], args[1], out)
		},
	}
	cmd.Flags().StringVarP(&out, "output", "o", "", "output file (.mtx or .spm)")
	_ = cmd.MarkFlagRequired("output")

	return cmd
}

func runMul(opts *RootOptions, cmd *cobra.Command, pathA, pathB, out string) error {
	f := newFormatter(opts, cmd)
	a, err := loadMatrix(pathA, sparse.RowCompressed)
	if err != nil {
		return loadFailure(f, pathA, err)
	}
	b, err := loadMatrix(pathB, sparse.ColumnCompressed)
	if err != nil {
		return loadFailure(f, pathB, err)
	}
	if a.Shape.Cols != b.Shape.Rows {
		opts.Logger.Warn("inner dimensions differ", "a", a.Shape.String(), "b", b.Shape.String())
	}

	c, err := sparse.Multiply(a.Store, b.Store)
	if err != nil {
		return f.fail(ExitFailure, ErrCodeCompute, "multiply", err)
	}
	opts.Logger.Debug("multiplied", "a_nnz", a.Store.Len(), "b_nnz", b.Store.Len(), "c_nnz", c.Len())

	return emit(opts, f, out, sparse.Shape{Rows: a.Shape.Rows, Cols: b.Shape.Cols}, c)
}
