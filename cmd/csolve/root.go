package main

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/gitrdm/gocsp/pkg/csp"
)

// solveFlags holds the solver options shared by every subcommand.
type solveFlags struct {
	propagation string
	varOrder    string
	valueOrder  string
	workers     int
	timeout     time.Duration
	all         bool
	stats       bool
	verbose     bool
}

func newRootCommand() *cobra.Command {
	flags := &solveFlags{}

	root := &cobra.Command{
		Use:           "csolve",
		Short:         "Solve finite-domain constraint satisfaction instances",
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logrus.SetLevel(logrus.WarnLevel)
			if flags.verbose {
				logrus.SetLevel(logrus.DebugLevel)
			}
		},
	}

	pf := root.PersistentFlags()
	pf.StringVar(&flags.propagation, "propagation", "", "propagation level: none, forward, or arc")
	pf.StringVar(&flags.varOrder, "var-order", "", "variable ordering: naive or mrv")
	pf.StringVar(&flags.valueOrder, "value-order", "", "value ordering: naive or lcv")
	pf.IntVar(&flags.workers, "workers", 0, "parallel search branches (0 or 1 for sequential)")
	pf.DurationVar(&flags.timeout, "timeout", 0, "abort the search after this duration")
	pf.BoolVar(&flags.all, "all", false, "enumerate every solution instead of stopping at the first")
	pf.BoolVar(&flags.stats, "stats", false, "print search statistics")
	pf.BoolVarP(&flags.verbose, "verbose", "v", false, "enable debug logging")

	root.AddCommand(
		newSolveCommand(flags),
		newSudokuCommand(flags),
		newQueensCommand(flags),
		newColorCommand(flags),
	)

	return root
}

// apply overlays flags the user actually set onto a base configuration,
// so an instance file's solver section survives unless overridden.
func (f *solveFlags) apply(cmd *cobra.Command, base *csp.SolverConfig) (*csp.SolverConfig, error) {
	config := *base
	if cmd.Flags().Changed("propagation") {
		level, err := csp.ParsePropagationLevel(f.propagation)
		if err != nil {
			return nil, err
		}
		config.Propagation = level
	}
	if cmd.Flags().Changed("var-order") {
		order, err := csp.ParseVariableOrder(f.varOrder)
		if err != nil {
			return nil, err
		}
		config.VariableOrder = order
	}
	if cmd.Flags().Changed("value-order") {
		order, err := csp.ParseValueOrder(f.valueOrder)
		if err != nil {
			return nil, err
		}
		config.ValueOrder = order
	}
	if cmd.Flags().Changed("workers") {
		config.Workers = f.workers
	}
	return &config, nil
}

// runSolve runs the search and prints the outcome. render formats a
// solution for the terminal; when nil, the assignment's name=value
// form is used.
func runSolve(cmd *cobra.Command, flags *solveFlags, problem *csp.Problem, base *csp.SolverConfig, render func(*csp.Assignment) string) error {
	config, err := flags.apply(cmd, base)
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	if flags.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, flags.timeout)
		defer cancel()
	}

	solver := csp.NewSolverWithConfig(problem, config)
	monitor := csp.NewSolverMonitor()
	solver.SetMonitor(monitor)

	logrus.WithFields(logrus.Fields{
		"variables":   problem.VariableCount(),
		"constraints": problem.ConstraintCount(),
		"config":      config.String(),
	}).Debug("starting search")

	out := cmd.OutOrStdout()

	if flags.all {
		solutions, err := solver.SolveAll(ctx, 0)
		if err != nil {
			return err
		}
		for i, solution := range solutions {
			if i > 0 {
				fmt.Fprintln(out)
			}
			printSolution(out, solution, render)
		}
		fmt.Fprintf(out, "%d solution(s)\n", len(solutions))
		printStats(cmd, flags, monitor)
		return nil
	}

	var result csp.Result
	if config.Workers > 1 {
		result, err = solver.SolveParallel(ctx)
	} else {
		result, err = solver.Solve(ctx)
	}
	if err != nil {
		return err
	}

	switch result.Status {
	case csp.Success:
		printSolution(out, result.Assignment, render)
	case csp.Exhausted:
		fmt.Fprintln(out, "no solution")
	}
	printStats(cmd, flags, monitor)
	return nil
}

func printSolution(out io.Writer, a *csp.Assignment, render func(*csp.Assignment) string) {
	if render != nil {
		fmt.Fprint(out, render(a))
		return
	}
	fmt.Fprintln(out, a.String())
}

func printStats(cmd *cobra.Command, flags *solveFlags, monitor *csp.SolverMonitor) {
	if !flags.stats {
		return
	}
	fmt.Fprintln(cmd.OutOrStdout(), monitor.Stats().String())
}
