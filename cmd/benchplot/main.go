// SPDX-License-Identifier: MIT

// Command benchplot times competing implementations over growing inputs and
// plots time versus size.
package main

import (
	"fmt"
	"os"

	"github.com/katalvlaran/benchplot/internal/cli"
)

func main() {
	if err := cli.NewRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "benchplot: %v\n", err)
		os.Exit(1)
	}
}
