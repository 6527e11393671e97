// SPDX-License-Identifier: MIT

package cli

import (
	"github.com/katalvlaran/sparsemat/sparse"
	"github.com/spf13/cobra"
)

// ShowResult is a matrix printed in full. Text output is the dense grid,
// or the raw compressed arrays with --raw.
type ShowResult struct {
	Rows  int         `json:"rows"`
	Cols  int         `json:"cols"`
	Cells [][]float64 `json:"cells,omitempty"`

	Layout  string    `json:"layout,omitempty"`
	Offsets []int     `json:"offsets,omitempty"`
	Indices []int     `json:"indices,omitempty"`
	Values  []float64 `json:"values,omitempty"`

	text string
}

func (r ShowResult) String() string { return r.text }

// NewShowCommand creates the show command.
func NewShowCommand(rootOpts *RootOptions) *cobra.Command {
	var (
		layout string
		raw    bool
	)
	cmd := &cobra.Command{
		Use:   "show <file>",
		Short: "Print a matrix as a dense grid (or its compressed arrays with --raw)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runShow(rootOpts, cmd, args[0], layout, raw)
		},
	}
	cmd.Flags().StringVar(&layout, "layout", "csr", "layout to load into (csr|csc)")
	cmd.Flags().BoolVar(&raw, "raw", false, "print offsets/indices/values instead of the dense grid")

	return cmd
}

func runShow(opts *RootOptions, cmd *cobra.Command, path, layoutName string, raw bool) error {
	f := newFormatter(opts, cmd)
	layout, err := sparse.ParseLayout(layoutName)
	if err != nil {
		return f.fail(ExitCommandError, ErrCodeGeneric, "bad --layout", err)
	}
	m, err := loadMatrix(path, layout)
	if err != nil {
		return loadFailure(f, path, err)
	}

	res := ShowResult{Rows: m.Shape.Rows, Cols: m.Shape.Cols}
	if raw {
		res.Layout = m.Store.Layout().String()
		res.Offsets, res.Indices, res.Values = m.Store.Offsets(), m.Store.Indices(), m.Store.Values()
		res.text = m.Store.String()
		return f.Success(res)
	}

	if err = checkDenseBudget(m.Shape, 8); err != nil {
		return f.fail(ExitFailure, ErrCodeResource, "refusing to densify "+path, err)
	}
	d, err := m.Store.ToDense(m.Shape)
	if err != nil {
		return f.fail(ExitFailure, ErrCodeCompute, "densify "+path, err)
	}
	opts.Logger.Debug("densified", "path", path, "shape", m.Shape.String())

	res.Cells = make([][]float64, d.Rows())
	for i := range res.Cells {
		res.Cells[i] = d.Row(i)
	}
	res.text = d.String()

	return f.Success(res)
}
