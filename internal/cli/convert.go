// SPDX-License-Identifier: MIT

package cli

import (
	"github.com/katalvlaran/sparsemat/sparse"
	"github.com/spf13/cobra"
)

// NewConvertCommand creates the convert command.
func NewConvertCommand(rootOpts *RootOptions) *cobra.Command {
	var layout string
	cmd := &cobra.Command{
		Use:   "convert <in> <out>",
		Short: "Re-encode a matrix file, optionally switching layout (.mtx <-> .spm)",
		Long: `Re-encode a matrix file. The output format follows the output extension;
--layout selects the compressed orientation stored in a .spm snapshot.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runConvert(rootOpts, cmd, args[0], args[1], layout)
		},
	}
	cmd.Flags().StringVar(&layout, "layout", "csr", "target layout (csr|csc)")

	return cmd
}

func runConvert(opts *RootOptions, cmd *cobra.Command, in, out, layoutName string) error {
	f := newFormatter(opts, cmd)
	layout, err := sparse.ParseLayout(layoutName)
	if err != nil {
		return f.fail(ExitCommandError, ErrCodeGeneric, "bad --layout", err)
	}
	m, err := loadMatrix(in, layout)
	if err != nil {
		return loadFailure(f, in, err)
	}

	return emit(opts, f, out, m.Shape, m.Store)
}
