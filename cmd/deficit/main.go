// SPDX-License-Identifier: MIT

// Command deficit classifies design problems with the deficit method.
//
//	deficit analyze problem.yaml --format markdown
//	deficit analyze --matrix model.xlsx --mode pair --inputs P1 --targets P4
//	deficit serve --addr :8080
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
