// Package csp provides constraint propagation for finite-domain variables.
// This file implements the propagator: forward checking and AC-3 style
// arc-consistency over the Store, scoped by the ConstraintGraph.
//
// Propagation failure (a domain wipeout) is an expected, recoverable
// outcome. It is reported as a boolean to the search loop, which
// restores the store to the last snapshot and tries the next value;
// it is never an error path.
package csp

// propagator prunes the Store after assignments. It reads the search's
// assignment slice (indexed by variable ID, zero meaning unassigned)
// and mutates only the Store, through the trail.
type propagator struct {
	store   *Store
	graph   *ConstraintGraph
	values  []int
	monitor *SolverMonitor
}

// outcomeWith evaluates c under the current assignment with up to two
// value overrides: v1 taken as val1 and v2 as val2. Overrides let both
// forward checking and trial counting test hypothetical assignments
// without touching shared state.
func (pr *propagator) outcomeWith(c Constraint, v1 *Variable, val1 int, v2 *Variable, val2 int) Outcome {
	scope := c.Scope()
	tuple := make([]int, len(scope))
	for i, w := range scope {
		switch {
		case v1 != nil && w.ID() == v1.ID():
			tuple[i] = val1
		case v2 != nil && w.ID() == v2.ID():
			tuple[i] = val2
		default:
			tuple[i] = pr.values[w.ID()]
		}
	}
	return c.Evaluate(tuple)
}

// checkAssigned evaluates every constraint involving v under the current
// partial assignment. It reports false as soon as one is violated. This
// is the plain-backtracking consistency check, used at every assignment
// regardless of the configured propagation level.
func (pr *propagator) checkAssigned(v *Variable) bool {
	for _, c := range pr.graph.ConstraintsInvolving(v) {
		if evaluateUnder(c, pr.values) == Violated {
			return false
		}
	}
	return true
}

// forwardCheck prunes after the assignment v = value: for every
// constraint involving v and at least one other unassigned variable,
// each candidate of such a variable that would violate the constraint
// in combination with the current assignment is removed. Reports false
// on a domain wipeout.
//
// The caller must already have recorded value in the assignment slice;
// removals go through the Store so the active trail captures them.
func (pr *propagator) forwardCheck(v *Variable, value int) bool {
	if pr.monitor != nil {
		pr.monitor.RecordPropagation()
	}
	for _, c := range pr.graph.ConstraintsInvolving(v) {
		for _, u := range c.Scope() {
			if u.ID() == v.ID() || pr.values[u.ID()] != unassigned {
				continue
			}
			// Candidates are collected up front: removal during
			// iteration would skip values.
			for _, cand := range pr.store.Domain(u).ToSlice() {
				if pr.outcomeWith(c, v, value, u, cand) != Violated {
					continue
				}
				if pr.store.RemoveValue(u, cand) {
					return false
				}
			}
		}
	}
	if pr.monitor != nil {
		pr.monitor.RecordTrailSize(pr.store.TrailLen())
	}
	return true
}

// enforceArcConsistency runs AC-3 over the arcs derived from binary
// constraints: pop an arc (Xi, Xj), discard every value of Xi with no
// supporting value in Xj, and on change re-enqueue all arcs (Xk, Xi)
// for constraint neighbors Xk other than Xj. Terminates at fixpoint or
// reports false on a wipeout. Worklist order does not affect the
// fixpoint, only how fast it is reached.
//
// Arcs into assigned variables still participate: an assigned variable
// has a singleton domain in the Store, so support checks against it
// behave exactly like support checks against a one-value neighbor.
func (pr *propagator) enforceArcConsistency() bool {
	g := pr.graph
	if len(g.arcs) == 0 {
		return true
	}
	if pr.monitor != nil {
		pr.monitor.RecordPropagation()
	}

	queue := make([]int, 0, len(g.arcs))
	queued := make([]bool, len(g.arcs))
	for i := range g.arcs {
		queue = append(queue, i)
		queued[i] = true
	}

	for len(queue) > 0 {
		ai := queue[0]
		queue = queue[1:]
		queued[ai] = false

		a := g.arcs[ai]
		changed, wiped := pr.revise(a)
		if wiped {
			return false
		}
		if !changed {
			continue
		}
		for _, bi := range g.arcsIn[a.x.ID()] {
			b := g.arcs[bi]
			if b.x.ID() == a.y.ID() {
				continue
			}
			if !queued[bi] {
				queue = append(queue, bi)
				queued[bi] = true
			}
		}
	}
	if pr.monitor != nil {
		pr.monitor.RecordTrailSize(pr.store.TrailLen())
	}
	return true
}

// revise removes from x's domain every value without a supporting value
// in y's domain under the arc's constraint. Reports whether the domain
// changed and whether it wiped out.
func (pr *propagator) revise(a arc) (changed, wiped bool) {
	for _, xv := range pr.store.Domain(a.x).ToSlice() {
		supported := false
		pr.store.Domain(a.y).IterateValues(func(yv int) {
			if !supported && a.allows(xv, yv) {
				supported = true
			}
		})
		if supported {
			continue
		}
		changed = true
		if pr.store.RemoveValue(a.x, xv) {
			wiped = true
			return
		}
	}
	return
}

// eliminationCount reports how many candidate values the hypothetical
// assignment v = value would eliminate from unassigned neighbors, by
// trial evaluation only. The Store is never mutated; this is the score
// behind least-constraining-value ordering.
func (pr *propagator) eliminationCount(v *Variable, value int) int {
	count := 0
	for _, c := range pr.graph.ConstraintsInvolving(v) {
		for _, u := range c.Scope() {
			if u.ID() == v.ID() || pr.values[u.ID()] != unassigned {
				continue
			}
			pr.store.Domain(u).IterateValues(func(cand int) {
				if pr.outcomeWith(c, v, value, u, cand) == Violated {
					count++
				}
			})
		}
	}
	return count
}
