package main

import (
	"github.com/spf13/cobra"

	"github.com/gitrdm/gocsp/pkg/problems"
)

func newSolveCommand(flags *solveFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "solve <instance.yaml>",
		Short: "Solve a YAML instance file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			instance, err := problems.LoadInstance(args[0])
			if err != nil {
				return err
			}
			return runSolve(cmd, flags, instance.Problem, instance.Config, nil)
		},
	}
}
