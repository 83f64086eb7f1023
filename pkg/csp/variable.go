// Package csp provides constraint satisfaction abstractions.
// This file defines the Variable type for finite-domain decision variables.
package csp

import "fmt"

// Variable is a decision variable in a constraint satisfaction problem.
// Variables are created through Problem.NewVariable and are immutable once
// the problem is constructed: the ID, name, and initial domain never change.
// During solving, the current candidate set for a variable lives in the
// Store, keyed by the variable's ID; the variable itself is shared read-only
// state across any number of concurrent solver runs.
type Variable struct {
	id     int
	name   string
	domain *Domain
}

// ID returns the variable's index in declaration order, unique within
// its Problem.
func (v *Variable) ID() int { return v.id }

// Name returns the diagnostic label given at declaration.
func (v *Variable) Name() string { return v.name }

// InitialDomain returns the domain the variable was declared with.
// The returned domain must not be mutated.
func (v *Variable) InitialDomain() *Domain { return v.domain }

// String returns "name{values}" for diagnostics.
func (v *Variable) String() string {
	return fmt.Sprintf("%s%s", v.name, v.domain)
}
