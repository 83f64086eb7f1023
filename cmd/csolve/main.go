// Command csolve solves finite-domain constraint satisfaction
// instances: YAML instance files plus built-in models for Sudoku,
// N-Queens, and map coloring.
package main

import (
	"os"
)

func main() {
	if err := newRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}
