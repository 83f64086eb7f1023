// Package csp provides constraint satisfaction abstractions.
// This file defines the Problem type for declaratively building CSP
// instances: variables with initial domains plus constraints over them.
package csp

import (
	"fmt"
	"sync"
)

// Problem is a constraint satisfaction problem instance.
//
// Problems are constructed incrementally by declaring variables and
// posting constraints, then handed to a Solver. Once solving begins the
// problem is read-only: variable identities, initial domains, and the
// constraint set never change. Domain contents only shrink inside a
// solver's private Store, so one Problem can back any number of
// concurrent solver runs.
//
// Thread safety: construction must be sequential; a fully constructed
// Problem is safe for concurrent reads.
type Problem struct {
	mu          sync.RWMutex
	variables   []*Variable
	byName      map[string]*Variable
	constraints []Constraint
}

// NewProblem creates an empty problem.
func NewProblem() *Problem {
	return &Problem{byName: make(map[string]*Variable)}
}

// NewVariable declares a variable with the given diagnostic name and
// initial domain. Variables are identified by declaration order; the
// name is for diagnostics and result lookup. An empty name is replaced
// with "v<id>".
func (p *Problem) NewVariable(name string, domain *Domain) *Variable {
	p.mu.Lock()
	defer p.mu.Unlock()

	id := len(p.variables)
	if name == "" {
		name = fmt.Sprintf("v%d", id)
	}
	v := &Variable{id: id, name: name, domain: domain.Clone()}
	p.variables = append(p.variables, v)
	p.byName[name] = v
	return v
}

// NewVariables declares count variables sharing the same initial domain,
// named "<prefix>0".."<prefix>N-1".
func (p *Problem) NewVariables(prefix string, count int, domain *Domain) []*Variable {
	vars := make([]*Variable, count)
	for i := range vars {
		vars[i] = p.NewVariable(fmt.Sprintf("%s%d", prefix, i), domain)
	}
	return vars
}

// AddConstraint posts a constraint to the problem.
func (p *Problem) AddConstraint(c Constraint) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.constraints = append(p.constraints, c)
}

// Variable returns the variable with the given ID, or nil.
func (p *Problem) Variable(id int) *Variable {
	p.mu.RLock()
	defer p.mu.RUnlock()
	if id < 0 || id >= len(p.variables) {
		return nil
	}
	return p.variables[id]
}

// VariableByName returns the variable declared with the given name, or nil.
func (p *Problem) VariableByName(name string) *Variable {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.byName[name]
}

// Variables returns all variables in declaration order.
// The returned slice must not be modified.
func (p *Problem) Variables() []*Variable {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.variables
}

// VariableCount returns the number of declared variables.
func (p *Problem) VariableCount() int {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return len(p.variables)
}

// Constraints returns all posted constraints.
// The returned slice must not be modified.
func (p *Problem) Constraints() []Constraint {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.constraints
}

// ConstraintCount returns the number of posted constraints.
func (p *Problem) ConstraintCount() int {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return len(p.constraints)
}

// String returns a short summary for diagnostics.
func (p *Problem) String() string {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return fmt.Sprintf("Problem{variables: %d, constraints: %d}",
		len(p.variables), len(p.constraints))
}

// Validate checks that the instance is well-formed and ready to solve:
// every variable has a non-empty initial domain and every constraint's
// scope references only variables declared on this problem. A solver
// rejects the instance before search begins if Validate fails.
func (p *Problem) Validate() error {
	p.mu.RLock()
	defer p.mu.RUnlock()

	for _, v := range p.variables {
		if v.domain.IsEmpty() {
			return fmt.Errorf("variable %q: %w", v.Name(), ErrEmptyDomain)
		}
	}
	for _, c := range p.constraints {
		if len(c.Scope()) == 0 {
			return fmt.Errorf("constraint %s: %w", c, ErrEmptyScope)
		}
		for _, v := range c.Scope() {
			if v == nil || v.ID() < 0 || v.ID() >= len(p.variables) || p.variables[v.ID()] != v {
				return fmt.Errorf("constraint %s: %w", c, ErrUnknownVariable)
			}
		}
	}
	return nil
}
