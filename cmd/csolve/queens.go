package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/gitrdm/gocsp/pkg/csp"
	"github.com/gitrdm/gocsp/pkg/problems"
)

func newQueensCommand(flags *solveFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "queens <n>",
		Short: "Solve the N-Queens puzzle",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("board size must be an integer: %w", err)
			}
			puzzle, err := problems.NewQueens(n)
			if err != nil {
				return err
			}
			return runSolve(cmd, flags, puzzle.Problem(), csp.DefaultSolverConfig(), puzzle.Render)
		},
	}
}
