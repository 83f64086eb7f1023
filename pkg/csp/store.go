// Package csp provides constraint solving infrastructure.
// This file implements the Store: the live candidate sets for every
// variable during one solver run, with trail-based snapshot/restore.
package csp

// Marker is a trail position returned by Snapshot and consumed by
// Restore. Markers are only meaningful for the Store that issued them
// and only while no earlier marker has been restored past.
type Marker int

// removal is one domain-reduction event on the trail.
type removal struct {
	varID int
	value int
}

// Store owns the current candidate-value set for every variable of one
// in-flight solver run. It records every removal on an ordered trail so
// that backtracking can undo propagation exactly, by replaying removals
// in reverse, instead of recomputing domains from scratch.
//
// A Store is private to a single logical thread of control: the search
// that created it. Parallel branches each build their own Store from
// the shared immutable Problem and never interleave mutations on one
// Store. No locking is therefore required.
type Store struct {
	domains []*Domain
	trail   []removal
}

// NewStore creates a store holding a private copy of every variable's
// initial domain.
func NewStore(p *Problem) *Store {
	vars := p.Variables()
	s := &Store{
		domains: make([]*Domain, len(vars)),
		trail:   make([]removal, 0, 256),
	}
	for i, v := range vars {
		s.domains[i] = v.InitialDomain().Clone()
	}
	return s
}

// Domain returns the live candidate set for the variable. The returned
// domain is the store's working set: callers must treat it as read-only
// and must not retain it across mutations. Use CurrentDomain for an
// independent copy.
func (s *Store) Domain(v *Variable) *Domain { return s.domains[v.ID()] }

// CurrentDomain returns an independent copy of the variable's live
// candidate set, safe to retain.
func (s *Store) CurrentDomain(v *Variable) *Domain {
	return s.domains[v.ID()].Clone()
}

// Count returns the number of live candidates for the variable.
func (s *Store) Count(v *Variable) int { return s.domains[v.ID()].Count() }

// Has reports whether value is a live candidate for the variable.
func (s *Store) Has(v *Variable, value int) bool {
	return s.domains[v.ID()].Has(value)
}

// RemoveValue removes value from the variable's live candidates,
// recording the removal on the trail. It reports whether the domain
// became empty (a wipeout). Removing an absent value is a no-op and
// never a wipeout.
func (s *Store) RemoveValue(v *Variable, value int) bool {
	d := s.domains[v.ID()]
	if !d.Has(value) {
		return false
	}
	d.clearBit(value)
	s.trail = append(s.trail, removal{varID: v.ID(), value: value})
	return d.IsEmpty()
}

// Narrow removes every live candidate of the variable except value,
// through the trail. This is how the search commits an assignment:
// the domain collapses to a singleton and the collapse is undone
// exactly on Restore. value must be a live candidate.
func (s *Store) Narrow(v *Variable, value int) {
	d := s.domains[v.ID()]
	others := make([]int, 0, d.Count())
	d.IterateValues(func(c int) {
		if c != value {
			others = append(others, c)
		}
	})
	for _, c := range others {
		d.clearBit(c)
		s.trail = append(s.trail, removal{varID: v.ID(), value: c})
	}
}

// Snapshot returns a marker for the current trail position.
func (s *Store) Snapshot() Marker { return Marker(len(s.trail)) }

// Restore re-inserts every value removed after the marker, in reverse
// removal order, and truncates the trail back to the marker. After
// Restore, the store is observationally identical to the moment the
// marker was taken, regardless of how many propagation rounds happened
// in between.
func (s *Store) Restore(m Marker) {
	for i := len(s.trail) - 1; i >= int(m); i-- {
		ev := s.trail[i]
		s.domains[ev.varID].setBit(ev.value)
	}
	s.trail = s.trail[:int(m)]
}

// TrailLen returns the current trail length, for statistics.
func (s *Store) TrailLen() int { return len(s.trail) }
