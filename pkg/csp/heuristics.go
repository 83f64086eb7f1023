// Package csp provides constraint satisfaction abstractions.
// This file implements variable selection (MRV) and value ordering
// (LCV). Both are pure functions of the current store, graph, and
// assignment: swapping them for the naive policies changes the search
// path but never the outcome.
package csp

import "sort"

// selectVariable returns the next variable to branch on, or nil when
// every variable is assigned. VarOrderMRV prefers the smallest live
// domain; ties, and VarOrderNaive entirely, fall back to declaration
// order, which keeps searches reproducible.
func selectVariable(cfg *SolverConfig, vars []*Variable, store *Store, values []int) *Variable {
	var best *Variable
	bestCount := 0
	for _, v := range vars {
		if values[v.ID()] != unassigned {
			continue
		}
		if cfg.VariableOrder != VarOrderMRV {
			return v
		}
		count := store.Count(v)
		if best == nil || count < bestCount {
			best = v
			bestCount = count
		}
	}
	return best
}

// orderValues returns v's live candidates in the order the search
// should try them. ValOrderLCV sorts ascending by the number of
// neighbor candidates each value would eliminate (a counting-only
// trial, no store mutation), ties broken by ascending value.
func orderValues(cfg *SolverConfig, v *Variable, pr *propagator) []int {
	values := pr.store.Domain(v).ToSlice()
	if cfg.ValueOrder != ValOrderLCV || len(values) < 2 {
		return values
	}

	type scored struct {
		value int
		score int
	}
	ranked := make([]scored, len(values))
	for i, val := range values {
		ranked[i] = scored{value: val, score: pr.eliminationCount(v, val)}
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		if ranked[i].score != ranked[j].score {
			return ranked[i].score < ranked[j].score
		}
		return ranked[i].value < ranked[j].value
	})
	for i, r := range ranked {
		values[i] = r.value
	}
	return values
}
