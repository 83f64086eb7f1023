package csp

import (
	"context"
	"fmt"
)

func ExampleSolver_Solve() {
	// Color a triangle with three colors: adjacent corners differ.
	p := NewProblem()
	a := p.NewVariable("a", NewDomain(3))
	b := p.NewVariable("b", NewDomain(3))
	c := p.NewVariable("c", NewDomain(3))
	p.AddConstraint(NewNotEqual(a, b))
	p.AddConstraint(NewNotEqual(b, c))
	p.AddConstraint(NewNotEqual(a, c))

	result, err := NewSolver(p).Solve(context.Background())
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(result)
	// Output: success {a=1, b=2, c=3}
}

func ExampleSolver_SolveAll() {
	// Two tasks in two slots, no sharing: both orderings are feasible.
	p := NewProblem()
	x := p.NewVariable("x", NewDomain(2))
	y := p.NewVariable("y", NewDomain(2))
	p.AddConstraint(NewNotEqual(x, y))

	solutions, err := NewSolver(p).SolveAll(context.Background(), 0)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	for _, s := range solutions {
		fmt.Println(s)
	}
	// Output:
	// {x=1, y=2}
	// {x=2, y=1}
}

func ExampleDomain() {
	d := NewDomainFromValues(9, []int{2, 3, 5, 7})
	fmt.Println(d, d.Count(), d.Has(4))
	// Output: {2,3,5,7} 4 false
}
