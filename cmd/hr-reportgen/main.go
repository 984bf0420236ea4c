// Package main is the entry point for hr-reportgen.
package main

import (
	"fmt"
	"os"

	"github.com/hrops/hr-reportgen/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
