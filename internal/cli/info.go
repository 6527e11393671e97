// SPDX-License-Identifier: MIT

package cli

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/sparsemat/sparse"
	"github.com/spf13/cobra"
)

// InfoResult describes one matrix file.
type InfoResult struct {
	Path    string  `json:"path"`
	Format  string  `json:"format"`
	Layout  string  `json:"layout"`
	Rows    int     `json:"rows"`
	Cols    int     `json:"cols"`
	NNZ     int     `json:"nnz"`
	Lines   int     `json:"lines"`
	Density float64 `json:"density"`
}

func (r InfoResult) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "path:    %s\n", r.Path)
	fmt.Fprintf(&b, "format:  %s\n", r.Format)
	fmt.Fprintf(&b, "layout:  %s\n", r.Layout)
	fmt.Fprintf(&b, "shape:   %dx%d\n", r.Rows, r.Cols)
	fmt.Fprintf(&b, "nnz:     %d\n", r.NNZ)
	fmt.Fprintf(&b, "lines:   %d\n", r.Lines)
	fmt.Fprintf(&b, "density: %.4f\n", r.Density)
	return b.String()
}

// NewInfoCommand creates the info command.
func NewInfoCommand(rootOpts *RootOptions) *cobra.Command {
	var layout string
	cmd := &cobra.Command{
		Use:   "info <file>",
		Short: "Print shape, non-zero count and density of a matrix file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInfo(rootOpts, cmd, args[0], layout)
		},
	}
	cmd.Flags().StringVar(&layout, "layout", "csr", "layout to load into (csr|csc)")

	return cmd
}

func runInfo(opts *RootOptions, cmd *cobra.Command, path, layoutName string) error {
	f := newFormatter(opts, cmd)
	layout, err := sparse.ParseLayout(layoutName)
	if err != nil {
		return f.fail(ExitCommandError, ErrCodeGeneric, "bad --layout", err)
	}
	m, err := loadMatrix(path, layout)
	if err != nil {
		return loadFailure(f, path, err)
	}
	opts.Logger.Debug("loaded", "path", path, "format", m.Format, "shape", m.Shape.String(), "nnz", m.Store.Len())

	res := InfoResult{
		Path:   path,
		Format: m.Format,
		Layout: m.Store.Layout().String(),
		Rows:   m.Shape.Rows,
		Cols:   m.Shape.Cols,
		NNZ:    m.Store.Len(),
		Lines:  m.Store.LineCount(),
	}
	if cells := m.Shape.Rows * m.Shape.Cols; cells > 0 {
		res.Density = float64(res.NNZ) / float64(cells)
	}

	return f.Success(res)
}
