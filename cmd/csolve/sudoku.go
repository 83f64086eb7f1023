package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/gitrdm/gocsp/pkg/csp"
	"github.com/gitrdm/gocsp/pkg/problems"
)

func newSudokuCommand(flags *solveFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "sudoku <grid>",
		Short: "Solve a 9x9 Sudoku puzzle",
		Long: `Solve a 9x9 Sudoku puzzle.

The grid argument is either 81 characters (digits 1-9 for givens, '.'
or '0' for empty cells) or the path of a file containing them.
Whitespace in a grid file is ignored.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			grid, err := readGrid(args[0])
			if err != nil {
				return err
			}
			puzzle, err := problems.NewSudoku(grid)
			if err != nil {
				return err
			}
			return runSolve(cmd, flags, puzzle.Problem(), csp.DefaultSolverConfig(), puzzle.Render)
		},
	}
}

func readGrid(arg string) (string, error) {
	if len(arg) == 81 {
		return arg, nil
	}
	data, err := os.ReadFile(arg)
	if err != nil {
		return "", fmt.Errorf("grid is neither 81 characters nor a readable file: %w", err)
	}
	grid := strings.Join(strings.Fields(string(data)), "")
	return grid, nil
}
