// Package csp provides constraint programming abstractions.
// This file implements the ConstraintGraph: the static adjacency from
// each variable to the constraints referencing it, plus the directed
// arcs derived from binary constraints for AC-3 propagation.
package csp

// arc is a directed pair (x, y) under a binary constraint: revising the
// arc discards values of x that have no supporting value in y's domain.
type arc struct {
	x, y *Variable
	c    BinaryConstraint
	// forward is true when (x, y) matches the constraint's scope order.
	forward bool
}

// allows reports whether the pair (xv, yv) satisfies the arc's
// constraint, accounting for arc direction.
func (a arc) allows(xv, yv int) bool {
	if a.forward {
		return a.c.Check(xv, yv)
	}
	return a.c.Check(yv, xv)
}

// ConstraintGraph indexes a problem's constraints by variable. It is
// built once per solver and read-only afterwards; propagation uses it
// to limit work to affected constraints only.
type ConstraintGraph struct {
	byVar [][]Constraint
	arcs  []arc
	// arcsIn[id] lists indices into arcs whose target variable is id;
	// when id's domain shrinks those arcs are re-enqueued.
	arcsIn [][]int
}

// NewConstraintGraph builds the adjacency and arc set for the problem.
// The problem must already have passed Validate.
func NewConstraintGraph(p *Problem) *ConstraintGraph {
	n := p.VariableCount()
	g := &ConstraintGraph{
		byVar:  make([][]Constraint, n),
		arcsIn: make([][]int, n),
	}
	for _, c := range p.Constraints() {
		seen := make(map[int]bool, len(c.Scope()))
		for _, v := range c.Scope() {
			if !seen[v.ID()] {
				seen[v.ID()] = true
				g.byVar[v.ID()] = append(g.byVar[v.ID()], c)
			}
		}
		bc, ok := c.(BinaryConstraint)
		if !ok || len(c.Scope()) != 2 {
			continue
		}
		x, y := c.Scope()[0], c.Scope()[1]
		if x.ID() == y.ID() {
			continue
		}
		g.addArc(arc{x: x, y: y, c: bc, forward: true})
		g.addArc(arc{x: y, y: x, c: bc, forward: false})
	}
	return g
}

func (g *ConstraintGraph) addArc(a arc) {
	idx := len(g.arcs)
	g.arcs = append(g.arcs, a)
	g.arcsIn[a.y.ID()] = append(g.arcsIn[a.y.ID()], idx)
}

// ConstraintsInvolving returns the constraints whose scope includes the
// variable. The returned slice must not be modified.
func (g *ConstraintGraph) ConstraintsInvolving(v *Variable) []Constraint {
	return g.byVar[v.ID()]
}

// Neighbors returns the distinct variables that share at least one
// constraint with v, excluding v itself.
func (g *ConstraintGraph) Neighbors(v *Variable) []*Variable {
	seen := map[int]bool{v.ID(): true}
	var out []*Variable
	for _, c := range g.byVar[v.ID()] {
		for _, u := range c.Scope() {
			if !seen[u.ID()] {
				seen[u.ID()] = true
				out = append(out, u)
			}
		}
	}
	return out
}

// ArcCount returns the number of directed arcs, for diagnostics.
func (g *ConstraintGraph) ArcCount() int { return len(g.arcs) }

// evaluateUnder evaluates a constraint against the assignment slice
// (indexed by variable ID, zero meaning unassigned) by projecting the
// assignment onto the constraint's scope.
func evaluateUnder(c Constraint, values []int) Outcome {
	scope := c.Scope()
	tuple := make([]int, len(scope))
	for i, v := range scope {
		tuple[i] = values[v.ID()]
	}
	return c.Evaluate(tuple)
}
