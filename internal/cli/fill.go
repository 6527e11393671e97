// SPDX-License-Identifier: MIT

package cli

import (
	"fmt"

	"github.com/katalvlaran/sparsemat/sparse"
	"github.com/spf13/cobra"
)

// filledCellBytes is the store footprint of one filled cell (index + value).
const filledCellBytes = 16

// NewFillCommand creates the fill command.
func NewFillCommand(rootOpts *RootOptions) *cobra.Command {
	var (
		out        string
		rows, cols int
		value      float64
	)
	cmd := &cobra.Command{
		Use:   "fill",
		Short: "Write a rows×cols matrix with every cell set to one value",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runFill(rootOpts, cmd, out, rows, cols, value)
		},
	}
	cmd.Flags().StringVarP(&out, "output", "o", "", "output file (.mtx or .spm)")
	cmd.Flags().IntVar(&rows, "rows", 0, "row count")
	cmd.Flags().IntVar(&cols, "cols", 0, "column count")
	cmd.Flags().Float64Var(&value, "value", 1, "cell value (0 gives an empty matrix)")
	_ = cmd.MarkFlagRequired("output")

	return cmd
}

func runFill(opts *RootOptions, cmd *cobra.Command, out string, rows, cols int, value float64) error {
	f := newFormatter(opts, cmd)
	shape := sparse.Shape{Rows: rows, Cols: cols}
	if rows < 0 || cols < 0 {
		return f.fail(ExitCommandError, ErrCodeGeneric, "bad shape", fmt.Errorf("%s: %w", shape, sparse.ErrInvalidDimensions))
	}
	if value != 0 {
		if err := checkDenseBudget(shape, filledCellBytes); err != nil {
			return f.fail(ExitFailure, ErrCodeResource, "refusing to fill", err)
		}
	}

	s, err := sparse.NewFilled[float64](sparse.Arithmetic[float64]{}, rows, cols, value)
	if err != nil {
		return f.fail(ExitFailure, ErrCodeCompute, "fill", err)
	}

	return emit(opts, f, out, shape, s)
}
