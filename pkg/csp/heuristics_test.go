package csp

import "testing"

func TestSelectVariableNaive(t *testing.T) {
	p := NewProblem()
	vars := p.NewVariables("x", 3, NewDomain(3))
	store := NewStore(p)
	values := make([]int, 3)
	cfg := &SolverConfig{VariableOrder: VarOrderNaive}

	if got := selectVariable(cfg, vars, store, values); got != vars[0] {
		t.Fatalf("expected first variable, got %s", got.Name())
	}
	values[0] = 1
	if got := selectVariable(cfg, vars, store, values); got != vars[1] {
		t.Fatalf("expected second variable, got %s", got.Name())
	}
	values[1], values[2] = 2, 3
	if got := selectVariable(cfg, vars, store, values); got != nil {
		t.Fatalf("expected nil when all assigned, got %s", got.Name())
	}
}

func TestSelectVariableMRV(t *testing.T) {
	p := NewProblem()
	a := p.NewVariable("a", NewDomain(4))
	b := p.NewVariable("b", NewDomain(4))
	c := p.NewVariable("c", NewDomain(4))
	store := NewStore(p)
	values := make([]int, 3)
	cfg := &SolverConfig{VariableOrder: VarOrderMRV}

	store.RemoveValue(b, 1)
	store.RemoveValue(b, 2)
	store.RemoveValue(c, 1)

	if got := selectVariable(cfg, []*Variable{a, b, c}, store, values); got != b {
		t.Fatalf("expected smallest domain b, got %s", got.Name())
	}

	// Ties break by declaration order.
	store.RemoveValue(c, 2)
	if got := selectVariable(cfg, []*Variable{a, b, c}, store, values); got != b {
		t.Fatalf("expected tie broken toward b, got %s", got.Name())
	}

	values[b.ID()] = 3
	if got := selectVariable(cfg, []*Variable{a, b, c}, store, values); got != c {
		t.Fatalf("expected c after b assigned, got %s", got.Name())
	}
}

func TestOrderValuesNaive(t *testing.T) {
	p := NewProblem()
	v := p.NewVariable("v", NewDomainFromValues(9, []int{7, 2, 5}))
	pr := newPropagator(p)
	cfg := &SolverConfig{ValueOrder: ValOrderNaive}

	got := orderValues(cfg, v, pr)
	want := []int{2, 5, 7}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("expected ascending %v, got %v", want, got)
		}
	}
}

func TestOrderValuesLCV(t *testing.T) {
	// x over 1..3, y over 1..2, x < y. x=1 eliminates one value of y
	// (y=1); x=2 eliminates both; x=3 also both. LCV tries 1 first and
	// breaks the 2/3 tie by ascending value.
	p := NewProblem()
	x := p.NewVariable("x", NewDomain(3))
	p.NewVariable("y", NewDomain(2))
	p.AddConstraint(NewLessThan(x, p.VariableByName("y")))

	pr := newPropagator(p)
	cfg := &SolverConfig{ValueOrder: ValOrderLCV}

	got := orderValues(cfg, x, pr)
	want := []int{1, 2, 3}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("expected %v, got %v", want, got)
		}
	}
}

func TestOrderValuesLCVPrefersLeastConstraining(t *testing.T) {
	// x and y both 1..3 with x != y: every value of x eliminates
	// exactly one of y, so LCV preserves ascending order. Removing 3
	// from y makes x=3 eliminate nothing, so it sorts first.
	p := NewProblem()
	x := p.NewVariable("x", NewDomain(3))
	y := p.NewVariable("y", NewDomain(3))
	p.AddConstraint(NewNotEqual(x, y))

	pr := newPropagator(p)
	pr.store.RemoveValue(y, 3)
	cfg := &SolverConfig{ValueOrder: ValOrderLCV}

	got := orderValues(cfg, x, pr)
	want := []int{3, 1, 2}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("expected %v, got %v", want, got)
		}
	}
}
