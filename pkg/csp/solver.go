// Package csp provides constraint solving infrastructure.
// This file implements the backtracking search: the control loop that
// assigns, propagates, recurses, and undoes on failure.
//
// # Architecture
//
// The solver separates the immutable problem definition from the
// mutable solving state:
//
//	Problem (immutable during solving):
//	  - Variables with initial domains
//	  - Constraints over them
//	  - Shared by all concurrent solver runs (zero copy cost)
//
//	Store (mutable, per run):
//	  - Live candidate sets, one per variable
//	  - Trail of removals with snapshot/restore
//	  - Owned by exactly one search loop
//
// The search is an explicit stack of (variable, remaining values,
// trail marker) frames, equivalent to the recursive formulation but
// friendlier to deep instances and to cancellation checkpoints. Each
// frame's marker is the trail position just after its parent's
// assignment propagated; restoring it undoes everything the frame
// tried, exactly.
package csp

import (
	"context"
	"fmt"
)

// Solver performs backtracking search over a validated Problem,
// interleaved with constraint propagation and heuristic ordering.
//
// Thread safety: a Solver may run concurrent Solve calls; each call
// builds its own Store and assignment. The Problem and ConstraintGraph
// are shared read-only.
type Solver struct {
	problem *Problem
	config  *SolverConfig
	graph   *ConstraintGraph
	monitor *SolverMonitor
}

// NewSolver creates a solver with the default configuration.
func NewSolver(p *Problem) *Solver {
	return NewSolverWithConfig(p, nil)
}

// NewSolverWithConfig creates a solver with the given configuration.
// A nil config selects DefaultSolverConfig.
func NewSolverWithConfig(p *Problem, config *SolverConfig) *Solver {
	if config == nil {
		config = DefaultSolverConfig()
	}
	return &Solver{
		problem: p,
		config:  config,
		graph:   NewConstraintGraph(p),
	}
}

// Problem returns the instance being solved.
func (s *Solver) Problem() *Problem { return s.problem }

// Config returns the solver configuration.
func (s *Solver) Config() *SolverConfig { return s.config }

// SetMonitor enables statistics collection during solving.
func (s *Solver) SetMonitor(m *SolverMonitor) { s.monitor = m }

// Solve searches for one satisfying assignment. The result is exactly
// one of Success (with a full assignment) or Exhausted. A malformed
// instance is rejected with an error before search begins; context
// cancellation unwinds the search cleanly and returns the context
// error. Constraint violations during search are resolved by
// backtracking and never surface.
func (s *Solver) Solve(ctx context.Context) (Result, error) {
	solutions, err := s.run(ctx, 1, nil)
	if err != nil {
		return Result{Status: Exhausted}, err
	}
	if len(solutions) == 0 {
		return Result{Status: Exhausted}, nil
	}
	return Result{Status: Success, Assignment: solutions[0]}, nil
}

// SolveAll enumerates satisfying assignments, up to limit (all of them
// if limit <= 0). Useful for uniqueness checks and solution counting.
func (s *Solver) SolveAll(ctx context.Context, limit int) ([]*Assignment, error) {
	return s.run(ctx, limit, nil)
}

// seed is a forced root assignment, used by parallel branch splitting.
type seed struct {
	v     *Variable
	value int
}

// frame is one choice point of the explicit search stack.
type frame struct {
	v      *Variable
	values []int
	next   int
	mark   Marker
}

// run is the search loop shared by Solve, SolveAll, and parallel
// branches. It returns the assignments found (possibly none) and a
// non-nil error only for malformed instances or context cancellation.
func (s *Solver) run(ctx context.Context, limit int, seeds []seed) ([]*Assignment, error) {
	if err := s.problem.Validate(); err != nil {
		return nil, fmt.Errorf("invalid instance: %w", err)
	}
	if s.monitor != nil {
		defer s.monitor.FinishSearch()
	}

	vars := s.problem.Variables()
	store := NewStore(s.problem)
	values := make([]int, len(vars))
	pr := &propagator{store: store, graph: s.graph, values: values, monitor: s.monitor}

	// Root propagation: establish arc consistency once before search
	// when configured. A root wipeout means the instance is exhausted.
	if s.config.Propagation == PropagationArcConsistency {
		if !pr.enforceArcConsistency() {
			return nil, nil
		}
	}

	// Forced branch assignments for parallel splitting. Each seed is
	// committed and propagated like a search assignment.
	for _, sd := range seeds {
		if !store.Has(sd.v, sd.value) {
			return nil, nil
		}
		values[sd.v.ID()] = sd.value
		store.Narrow(sd.v, sd.value)
		if !pr.checkAssigned(sd.v) || !s.propagateAssigned(pr, sd.v, sd.value) {
			return nil, nil
		}
	}

	var solutions []*Assignment
	root := store.Snapshot()

	first := selectVariable(s.config, vars, store, values)
	if first == nil {
		// Nothing to branch on: zero variables, or seeds covered all.
		if s.verifyComplete(values) {
			solutions = append(solutions, newAssignment(s.problem, values))
			if s.monitor != nil {
				s.monitor.RecordSolution()
			}
		}
		return solutions, nil
	}

	stack := []*frame{{v: first, values: orderValues(s.config, first, pr), mark: store.Snapshot()}}

	for len(stack) > 0 {
		// Cancellation is checked at the try-value boundary and causes
		// a clean unwind: the store is restored past every snapshot.
		if err := ctx.Err(); err != nil {
			s.unwind(store, values, stack, root)
			return solutions, err
		}

		f := stack[len(stack)-1]

		// Undo this frame's previous attempt before trying the next
		// value (a no-op on the first visit).
		store.Restore(f.mark)
		values[f.v.ID()] = unassigned

		if f.next >= len(f.values) {
			stack = stack[:len(stack)-1]
			if s.monitor != nil {
				s.monitor.RecordBacktrack()
			}
			continue
		}

		value := f.values[f.next]
		f.next++
		if s.monitor != nil {
			s.monitor.RecordNode()
			s.monitor.RecordDepth(len(stack))
		}

		values[f.v.ID()] = value
		store.Narrow(f.v, value)

		if !pr.checkAssigned(f.v) || !s.propagateAssigned(pr, f.v, value) {
			// Wipeout or violation: expected outcome, next value.
			continue
		}

		next := selectVariable(s.config, vars, store, values)
		if next == nil {
			if s.verifyComplete(values) {
				solutions = append(solutions, newAssignment(s.problem, values))
				if s.monitor != nil {
					s.monitor.RecordSolution()
				}
				if limit > 0 && len(solutions) >= limit {
					s.unwind(store, values, stack, root)
					return solutions, nil
				}
			}
			continue
		}

		stack = append(stack, &frame{
			v:      next,
			values: orderValues(s.config, next, pr),
			mark:   store.Snapshot(),
		})
	}

	store.Restore(root)
	return solutions, nil
}

// propagateAssigned runs the configured propagation after v = value has
// been committed to the store and assignment. Reports false on wipeout.
func (s *Solver) propagateAssigned(pr *propagator, v *Variable, value int) bool {
	switch s.config.Propagation {
	case PropagationForwardCheck:
		return pr.forwardCheck(v, value)
	case PropagationArcConsistency:
		if !pr.forwardCheck(v, value) {
			return false
		}
		return pr.enforceArcConsistency()
	default:
		return true
	}
}

// verifyComplete evaluates every constraint against the full assignment.
// Incremental checks already cover the built-in constraints; this final
// pass also settles generic relations that stayed undetermined until
// their whole scope was assigned.
func (s *Solver) verifyComplete(values []int) bool {
	for _, c := range s.problem.Constraints() {
		if evaluateUnder(c, values) != Satisfied {
			return false
		}
	}
	return true
}

// unwind restores the store past every open frame and clears their
// assignments, leaving the store as it was at the search root.
func (s *Solver) unwind(store *Store, values []int, stack []*frame, root Marker) {
	for _, f := range stack {
		values[f.v.ID()] = unassigned
	}
	store.Restore(root)
}
