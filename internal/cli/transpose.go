// SPDX-License-Identifier: MIT

package cli

import (
	"github.com/katalvlaran/sparsemat/sparse"
	"github.com/spf13/cobra"
)

// NewTransposeCommand creates the transpose command.
func NewTransposeCommand(rootOpts *RootOptions) *cobra.Command {
	var (
		out    string
		layout string
	)
	cmd := &cobra.Command{
		Use:   "transpose <in>",
		Short: "Write the transpose of a matrix",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTranspose(rootOpts, cmd, args[0], out, layout)
		},
	}
	cmd.Flags().StringVarP(&out, "output", "o", "", "output file (.mtx or .spm)")
	cmd.Flags().StringVar(&layout, "layout", "csr", "layout to transpose in (csr|csc)")
	_ = cmd.MarkFlagRequired("output")

	return cmd
}

func runTranspose(opts *RootOptions, cmd *cobra.Command, in, out, layoutName string) error {
	f := newFormatter(opts, cmd)
	layout, err := sparse.ParseLayout(layoutName)
	if err != nil {
		return f.fail(ExitCommandError, ErrCodeGeneric, "bad --layout", err)
	}
	m, err := loadMatrix(in, layout)
	if err != nil {
		return loadFailure(f, in, err)
	}
	if err = m.Store.Transpose(); err != nil {
		return f.fail(ExitFailure, ErrCodeCompute, "transpose", err)
	}

	return emit(opts, f, out, sparse.Shape{Rows: m.Shape.Cols, Cols: m.Shape.Rows}, m.Store)
}
