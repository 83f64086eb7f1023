// This file implements the two parallel solving strategies: branch
// splitting, where the root variable's candidate values are explored
// by concurrent workers, and portfolio solving, where several solver
// configurations race on the same instance.
//
// Both strategies preserve the sequential solver's contract. Workers
// share the immutable Problem and ConstraintGraph but each owns a
// private Store, so no locking happens on the search path.

package csp

import (
	"context"
	"errors"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/gitrdm/gocsp/internal/parallel"
)

// SolveParallel searches for one satisfying assignment using up to
// Workers concurrent branches. The root variable is chosen with the
// configured heuristic and its candidate values are split across
// workers; each branch runs an independent sequential search seeded
// with one value. The first branch to find a solution wins and the
// rest are cancelled. When every branch exhausts, the instance is
// Exhausted.
//
// With Workers <= 1 this is identical to Solve.
func (s *Solver) SolveParallel(ctx context.Context) (Result, error) {
	if s.config.Workers <= 1 {
		return s.Solve(ctx)
	}
	if err := s.problem.Validate(); err != nil {
		return Result{Status: Exhausted}, err
	}

	// Probe the root on a scratch store so branches split on the
	// post-propagation candidate set.
	store := NewStore(s.problem)
	values := make([]int, s.problem.VariableCount())
	pr := &propagator{store: store, graph: s.graph, values: values, monitor: s.monitor}
	if s.config.Propagation == PropagationArcConsistency {
		if !pr.enforceArcConsistency() {
			return Result{Status: Exhausted}, nil
		}
	}

	split := selectVariable(s.config, s.problem.Variables(), store, values)
	if split == nil {
		// Zero variables: the empty assignment decides it.
		return s.Solve(ctx)
	}
	branchValues := orderValues(s.config, split, pr)

	branchCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	g, gctx := errgroup.WithContext(branchCtx)
	g.SetLimit(s.config.Workers)

	var (
		mu    sync.Mutex
		found *Assignment
	)

	for _, value := range branchValues {
		value := value
		g.Go(func() error {
			branch := &Solver{
				problem: s.problem,
				config:  s.config,
				graph:   s.graph,
				monitor: s.monitor,
			}
			solutions, err := branch.run(gctx, 1, []seed{{v: split, value: value}})
			if err != nil {
				// A sibling finding a solution cancels the group; that
				// is not a caller-visible failure.
				if errors.Is(err, context.Canceled) && ctx.Err() == nil {
					return nil
				}
				return err
			}
			if len(solutions) > 0 {
				mu.Lock()
				if found == nil {
					found = solutions[0]
				}
				mu.Unlock()
				cancel()
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return Result{Status: Exhausted}, err
	}
	if err := ctx.Err(); err != nil {
		return Result{Status: Exhausted}, err
	}
	if found != nil {
		return Result{Status: Success, Assignment: found}, nil
	}
	return Result{Status: Exhausted}, nil
}

// PortfolioOutcome is the answer from a portfolio race, annotated with
// the configuration that produced it.
type PortfolioOutcome struct {
	Result Result
	Config *SolverConfig
}

// SolvePortfolio races one solver per configuration on the same
// instance. Every configuration decides the same instance, so the
// first run to terminate, whether Success or Exhausted, supplies the
// answer and the remaining runs are cancelled. Useful when it is not
// known in advance which propagation and ordering mix suits the
// instance.
func SolvePortfolio(ctx context.Context, p *Problem, configs []*SolverConfig) (PortfolioOutcome, error) {
	if len(configs) == 0 {
		configs = []*SolverConfig{DefaultSolverConfig()}
	}
	if err := p.Validate(); err != nil {
		return PortfolioOutcome{Result: Result{Status: Exhausted}}, err
	}

	raceCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	pool := parallel.NewWorkerPool(len(configs))
	defer pool.Shutdown()

	type outcome struct {
		result Result
		config *SolverConfig
	}
	results := make(chan outcome, len(configs))

	var wg sync.WaitGroup
	for _, cfg := range configs {
		cfg := cfg
		wg.Add(1)
		task := func() {
			defer wg.Done()
			solver := NewSolverWithConfig(p, cfg)
			result, err := solver.Solve(raceCtx)
			if err != nil {
				// Cancelled by the winner or the caller; either way
				// this run has nothing to report.
				return
			}
			results <- outcome{result: result, config: cfg}
		}
		if err := pool.Submit(raceCtx, task); err != nil {
			wg.Done()
		}
	}

	go func() {
		wg.Wait()
		close(results)
	}()

	select {
	case out, ok := <-results:
		if !ok {
			// Every run was cancelled before finishing.
			return PortfolioOutcome{Result: Result{Status: Exhausted}}, ctx.Err()
		}
		cancel()
		return PortfolioOutcome{Result: out.result, Config: out.config}, nil
	case <-ctx.Done():
		return PortfolioOutcome{Result: Result{Status: Exhausted}}, ctx.Err()
	}
}
