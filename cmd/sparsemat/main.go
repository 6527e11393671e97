// SPDX-License-Identifier: MIT

// Command sparsemat inspects, converts and combines sparse matrix files.
package main

import (
	"fmt"
	"os"

	"github.com/katalvlaran/sparsemat/internal/cli"
)

func main() {
	if err := cli.NewRootCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(cli.GetExitCode(err))
	}
}
