// SPDX-License-Identifier: MIT

package cli

import (
	"github.com/katalvlaran/sparsemat/sparse"
	"github.com/spf13/cobra"
)

// NewAddCommand creates the add command.
func NewAddCommand(rootOpts *RootOptions) *cobra.Command {
	var (
		out   string
		prune bool
	)
	cmd := &cobra.Command{
		Use:   "add <a> <b>",
		Short: "Add two matrices element-wise and write the sum",
		Long: `Add two matrices row by row. The result covers the larger of both shapes.
Cells that sum to exactly zero are kept unless --prune is given.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAdd(rootOpts, cmd, args[0], args[1], out, prune)
		},
	}
	cmd.Flags().StringVarP(&out, "output", "o", "", "output file (.mtx or .spm)")
	cmd.Flags().BoolVar(&prune, "prune", false, "drop cells whose sum is zero")
	_ = cmd.MarkFlagRequired("output")

	return cmd
}

func runAdd(opts *RootOptions, cmd *cobra.Command, pathA, pathB, out string, prune bool) error {
	f := newFormatter(opts, cmd)
	a, err := loadMatrix(pathA, sparse.RowCompressed)
	if err != nil {
		return loadFailure(f, pathA, err)
	}
	b, err := loadMatrix(pathB, sparse.RowCompressed)
	if err != nil {
		return loadFailure(f, pathB, err)
	}

	var addOpts []sparse.Option
	if prune {
		addOpts = append(addOpts, sparse.WithPruneZeroSums())
	}
	c, err := sparse.Add(a.Store, b.Store, addOpts...)
	if err != nil {
		return f.fail(ExitFailure, ErrCodeCompute, "add", err)
	}

	shape := sparse.Shape{Rows: max(a.Shape.Rows, b.Shape.Rows), Cols: max(a.Shape.Cols, b.Shape.Cols)}
	return emit(opts, f, out, shape, c)
}
