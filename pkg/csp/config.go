// Package csp provides constraint satisfaction abstractions.
// This file defines solver configuration: propagation strength and the
// variable/value ordering heuristics. Heuristics affect search effort,
// never the satisfiability outcome; any combination yields the same
// Success-or-Exhausted answer for a given instance.
package csp

import "fmt"

// PropagationLevel controls pruning strength after each assignment.
type PropagationLevel int

const (
	// PropagationNone disables pruning; the search only checks
	// constraints against the partial assignment (plain backtracking).
	PropagationNone PropagationLevel = iota

	// PropagationForwardCheck prunes neighbor domains immediately after
	// each assignment.
	PropagationForwardCheck

	// PropagationArcConsistency runs forward checking followed by full
	// AC-3 over the binary constraint arcs.
	PropagationArcConsistency
)

// String returns the level's CLI name.
func (p PropagationLevel) String() string {
	switch p {
	case PropagationNone:
		return "none"
	case PropagationForwardCheck:
		return "forward"
	case PropagationArcConsistency:
		return "arc"
	default:
		return fmt.Sprintf("PropagationLevel(%d)", int(p))
	}
}

// ParsePropagationLevel parses the CLI names "none", "forward", "arc".
func ParsePropagationLevel(s string) (PropagationLevel, error) {
	switch s {
	case "none":
		return PropagationNone, nil
	case "forward":
		return PropagationForwardCheck, nil
	case "arc":
		return PropagationArcConsistency, nil
	}
	return 0, fmt.Errorf("unknown propagation level %q", s)
}

// VariableOrder selects the next-variable heuristic.
type VariableOrder int

const (
	// VarOrderNaive picks the first unassigned variable in declaration
	// order.
	VarOrderNaive VariableOrder = iota

	// VarOrderMRV picks the unassigned variable with the fewest live
	// candidates, ties broken by declaration order so runs are
	// reproducible.
	VarOrderMRV
)

// String returns the order's CLI name.
func (v VariableOrder) String() string {
	switch v {
	case VarOrderNaive:
		return "naive"
	case VarOrderMRV:
		return "mrv"
	default:
		return fmt.Sprintf("VariableOrder(%d)", int(v))
	}
}

// ParseVariableOrder parses the CLI names "naive", "mrv".
func ParseVariableOrder(s string) (VariableOrder, error) {
	switch s {
	case "naive":
		return VarOrderNaive, nil
	case "mrv":
		return VarOrderMRV, nil
	}
	return 0, fmt.Errorf("unknown variable order %q", s)
}

// ValueOrder selects the value-ordering heuristic.
type ValueOrder int

const (
	// ValOrderNaive tries values in ascending domain order.
	ValOrderNaive ValueOrder = iota

	// ValOrderLCV tries least-constraining values first: ascending by
	// the number of neighbor candidates they would eliminate, computed
	// by trial evaluation, ties broken by ascending value.
	ValOrderLCV
)

// String returns the order's CLI name.
func (v ValueOrder) String() string {
	switch v {
	case ValOrderNaive:
		return "naive"
	case ValOrderLCV:
		return "lcv"
	default:
		return fmt.Sprintf("ValueOrder(%d)", int(v))
	}
}

// ParseValueOrder parses the CLI names "naive", "lcv".
func ParseValueOrder(s string) (ValueOrder, error) {
	switch s {
	case "naive":
		return ValOrderNaive, nil
	case "lcv":
		return ValOrderLCV, nil
	}
	return 0, fmt.Errorf("unknown value order %q", s)
}

// SolverConfig holds solver parameters. The zero value is plain
// backtracking with naive orderings; DefaultSolverConfig returns the
// recommended configuration.
type SolverConfig struct {
	// Propagation selects pruning strength after each assignment.
	Propagation PropagationLevel

	// VariableOrder selects the next-variable heuristic.
	VariableOrder VariableOrder

	// ValueOrder selects the value-ordering heuristic.
	ValueOrder ValueOrder

	// Workers bounds concurrent branches for SolveParallel.
	// Values <= 1 select sequential search.
	Workers int
}

// DefaultSolverConfig returns forward checking with MRV variable
// selection and naive value order, a good default for the instance
// sizes this engine targets.
func DefaultSolverConfig() *SolverConfig {
	return &SolverConfig{
		Propagation:   PropagationForwardCheck,
		VariableOrder: VarOrderMRV,
		ValueOrder:    ValOrderNaive,
	}
}

// String returns a short summary for diagnostics.
func (c *SolverConfig) String() string {
	return fmt.Sprintf("SolverConfig{propagation: %s, variables: %s, values: %s}",
		c.Propagation, c.VariableOrder, c.ValueOrder)
}
