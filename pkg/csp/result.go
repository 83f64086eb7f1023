// Package csp provides constraint satisfaction abstractions.
// This file defines the solve result contract: exactly one of
// Success (with a full assignment) or Exhausted.
package csp

import (
	"fmt"
	"sort"
	"strings"
)

// Status is the terminal outcome of a solve call.
type Status int

const (
	// Exhausted means the search space contains no satisfying
	// assignment. This is an expected outcome for over-constrained
	// instances, not an error.
	Exhausted Status = iota

	// Success means a full, consistent assignment was found.
	Success
)

// String returns the status name.
func (s Status) String() string {
	if s == Success {
		return "success"
	}
	return "exhausted"
}

// Assignment maps every variable of a problem to its chosen value.
// Assignments returned by a solver are complete and immutable; consumers
// never observe intermediate search state.
type Assignment struct {
	problem *Problem
	values  []int
}

// newAssignment copies the search's value slice into an Assignment.
func newAssignment(p *Problem, values []int) *Assignment {
	copied := make([]int, len(values))
	copy(copied, values)
	return &Assignment{problem: p, values: copied}
}

// Value returns the value assigned to the variable.
func (a *Assignment) Value(v *Variable) int { return a.values[v.ID()] }

// ValueOf returns the value assigned to the named variable.
// The second result is false if no such variable exists.
func (a *Assignment) ValueOf(name string) (int, bool) {
	v := a.problem.VariableByName(name)
	if v == nil {
		return 0, false
	}
	return a.values[v.ID()], true
}

// Values returns the assigned values in variable declaration order.
// The returned slice must not be modified.
func (a *Assignment) Values() []int { return a.values }

// Satisfies evaluates one constraint against the full assignment.
func (a *Assignment) Satisfies(c Constraint) bool {
	return evaluateUnder(c, a.values) == Satisfied
}

// SatisfiesAll evaluates every constraint of the problem. A solver
// never returns an assignment for which this is false; it is exposed
// for consumers that want an independent soundness check.
func (a *Assignment) SatisfiesAll() bool {
	for _, c := range a.problem.Constraints() {
		if !a.Satisfies(c) {
			return false
		}
	}
	return true
}

// String renders "name=value" pairs sorted by variable name.
func (a *Assignment) String() string {
	parts := make([]string, 0, len(a.values))
	for _, v := range a.problem.Variables() {
		parts = append(parts, fmt.Sprintf("%s=%d", v.Name(), a.values[v.ID()]))
	}
	sort.Strings(parts)
	return "{" + strings.Join(parts, ", ") + "}"
}

// Result is the outcome of a solve call: Success with an assignment,
// or Exhausted with a nil assignment.
type Result struct {
	Status     Status
	Assignment *Assignment
}

// String returns a one-line summary.
func (r Result) String() string {
	if r.Status == Success {
		return fmt.Sprintf("success %s", r.Assignment)
	}
	return "exhausted"
}
