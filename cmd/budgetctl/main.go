// budgetctl is a command line tool for the Student Budget API.
//
// The status, calendar and categories commands work offline, summary
// and calendar with --user query a running backend.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
