package csp

import (
	"context"
	"errors"
	"testing"
)

func TestProblemConstruction(t *testing.T) {
	p := NewProblem()
	x := p.NewVariable("x", NewDomain(3))
	y := p.NewVariable("", NewDomain(3))

	if x.ID() != 0 || y.ID() != 1 {
		t.Fatalf("expected declaration-order IDs, got %d and %d", x.ID(), y.ID())
	}
	if y.Name() != "v1" {
		t.Fatalf("expected default name v1, got %s", y.Name())
	}
	if p.VariableByName("x") != x {
		t.Fatalf("lookup by name failed")
	}
	if p.Variable(5) != nil {
		t.Fatalf("expected nil for unknown ID")
	}

	p.AddConstraint(NewNotEqual(x, y))
	if p.ConstraintCount() != 1 {
		t.Fatalf("expected 1 constraint, got %d", p.ConstraintCount())
	}
	if err := p.Validate(); err != nil {
		t.Fatalf("unexpected validation error: %v", err)
	}
}

func TestProblemDomainIsolation(t *testing.T) {
	p := NewProblem()
	shared := NewDomain(3)
	x := p.NewVariable("x", shared)
	shared.clearBit(2)
	if !x.InitialDomain().Has(2) {
		t.Fatalf("problem shares caller's domain storage")
	}
}

func TestValidateEmptyDomain(t *testing.T) {
	p := NewProblem()
	p.NewVariable("x", NewDomain(0))
	if err := p.Validate(); !errors.Is(err, ErrEmptyDomain) {
		t.Fatalf("expected ErrEmptyDomain, got %v", err)
	}
}

func TestValidateForeignVariable(t *testing.T) {
	p := NewProblem()
	p.NewVariable("x", NewDomain(3))

	other := NewProblem()
	ox := other.NewVariable("x", NewDomain(3))
	oy := other.NewVariable("y", NewDomain(3))

	p.AddConstraint(NewNotEqual(ox, oy))
	if err := p.Validate(); !errors.Is(err, ErrUnknownVariable) {
		t.Fatalf("expected ErrUnknownVariable, got %v", err)
	}
}

func TestValidateSurfacesBeforeSearch(t *testing.T) {
	p := NewProblem()
	p.NewVariable("x", NewDomain(0))

	_, err := NewSolver(p).Solve(context.Background())
	if !errors.Is(err, ErrEmptyDomain) {
		t.Fatalf("expected construction error from Solve, got %v", err)
	}
}
