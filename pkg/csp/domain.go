// Package csp provides a finite-domain constraint satisfaction engine:
// variables over finite integer domains, pluggable constraints, forward
// checking and AC-3 propagation, and backtracking search with configurable
// variable/value ordering heuristics.
//
// This file defines the Domain type: a compact bitset over candidate values.
package csp

import (
	"fmt"
	"math/bits"
	"strings"
)

// Domain is a finite set of candidate values for one variable.
// Values are 1-indexed integers in the range [1, MaxValue].
//
// Exported operations are immutable: they return new domains rather than
// modifying in place. Domains declared on a Problem are therefore safe to
// share across concurrent solver runs; only the Store (which owns private
// clones) mutates a domain, through unexported in-place helpers.
type Domain struct {
	maxValue int
	words    []uint64
}

// NewDomain creates a domain containing every value from 1 to maxValue.
// A non-positive maxValue yields an empty domain.
func NewDomain(maxValue int) *Domain {
	if maxValue <= 0 {
		return &Domain{maxValue: 0}
	}
	d := &Domain{
		maxValue: maxValue,
		words:    make([]uint64, (maxValue+63)/64),
	}
	for i := 0; i < maxValue; i++ {
		d.words[i/64] |= 1 << uint(i%64)
	}
	return d
}

// NewDomainFromValues creates a domain containing only the given values.
// Values outside [1, maxValue] are ignored.
func NewDomainFromValues(maxValue int, values []int) *Domain {
	if maxValue <= 0 {
		return &Domain{maxValue: 0}
	}
	d := &Domain{
		maxValue: maxValue,
		words:    make([]uint64, (maxValue+63)/64),
	}
	for _, v := range values {
		if v >= 1 && v <= maxValue {
			d.words[(v-1)/64] |= 1 << uint((v-1)%64)
		}
	}
	return d
}

// Singleton creates a one-value domain over [1, maxValue].
func Singleton(maxValue, value int) *Domain {
	return NewDomainFromValues(maxValue, []int{value})
}

// Count returns the number of values in the domain.
func (d *Domain) Count() int {
	n := 0
	for _, w := range d.words {
		n += bits.OnesCount64(w)
	}
	return n
}

// Has reports whether the domain contains value. O(1).
func (d *Domain) Has(value int) bool {
	if value < 1 || value > d.maxValue {
		return false
	}
	return (d.words[(value-1)/64]>>uint((value-1)%64))&1 == 1
}

// IsEmpty reports whether the domain contains no values.
func (d *Domain) IsEmpty() bool {
	for _, w := range d.words {
		if w != 0 {
			return false
		}
	}
	return true
}

// IsSingleton reports whether the domain contains exactly one value.
func (d *Domain) IsSingleton() bool { return d.Count() == 1 }

// SingletonValue returns the single value of a singleton domain.
// Panics if the domain is not a singleton.
func (d *Domain) SingletonValue() int {
	if !d.IsSingleton() {
		panic("csp: SingletonValue on non-singleton domain")
	}
	return d.Min()
}

// Remove returns a new domain without the given value.
// Removing an absent value returns an equal domain.
func (d *Domain) Remove(value int) *Domain {
	nd := d.Clone()
	nd.clearBit(value)
	return nd
}

// Add returns a new domain that also contains the given value.
// Values outside [1, MaxValue] are ignored.
func (d *Domain) Add(value int) *Domain {
	nd := d.Clone()
	nd.setBit(value)
	return nd
}

// Clone returns an independent copy of the domain.
func (d *Domain) Clone() *Domain {
	words := make([]uint64, len(d.words))
	copy(words, d.words)
	return &Domain{maxValue: d.maxValue, words: words}
}

// Equal reports whether both domains contain exactly the same values.
func (d *Domain) Equal(other *Domain) bool {
	if other == nil || d.maxValue != other.maxValue {
		return false
	}
	for i := range d.words {
		if d.words[i] != other.words[i] {
			return false
		}
	}
	return true
}

// MaxValue returns the upper bound of the value range [1, MaxValue].
func (d *Domain) MaxValue() int { return d.maxValue }

// Min returns the smallest value in the domain, or 0 if empty.
func (d *Domain) Min() int {
	for i, w := range d.words {
		if w != 0 {
			return i*64 + bits.TrailingZeros64(w) + 1
		}
	}
	return 0
}

// Max returns the largest value in the domain, or 0 if empty.
func (d *Domain) Max() int {
	for i := len(d.words) - 1; i >= 0; i-- {
		if w := d.words[i]; w != 0 {
			return i*64 + 63 - bits.LeadingZeros64(w) + 1
		}
	}
	return 0
}

// IterateValues calls f for each value in ascending order.
// f must not mutate the domain during iteration.
func (d *Domain) IterateValues(f func(value int)) {
	for i, w := range d.words {
		for w != 0 {
			low := w & -w
			f(i*64 + bits.TrailingZeros64(w) + 1)
			w &^= low
		}
	}
}

// ToSlice returns all values as a sorted slice.
func (d *Domain) ToSlice() []int {
	values := make([]int, 0, d.Count())
	d.IterateValues(func(v int) { values = append(values, v) })
	return values
}

// String renders the domain as "{1,3,5}" or "{1..9}" for ranges.
func (d *Domain) String() string {
	values := d.ToSlice()
	switch len(values) {
	case 0:
		return "{}"
	case 1:
		return fmt.Sprintf("{%d}", values[0])
	}
	if consecutive(values) {
		return fmt.Sprintf("{%d..%d}", values[0], values[len(values)-1])
	}
	var b strings.Builder
	b.WriteString("{")
	for i, v := range values {
		if i > 0 {
			b.WriteString(",")
		}
		fmt.Fprintf(&b, "%d", v)
	}
	b.WriteString("}")
	return b.String()
}

func consecutive(values []int) bool {
	for i := 1; i < len(values); i++ {
		if values[i] != values[i-1]+1 {
			return false
		}
	}
	return true
}

// clearBit removes value in place. Store-only: exported callers go
// through Remove, which clones first.
func (d *Domain) clearBit(value int) {
	if value < 1 || value > d.maxValue {
		return
	}
	d.words[(value-1)/64] &^= 1 << uint((value-1)%64)
}

// setBit re-inserts value in place. Store-only, used by trail replay.
func (d *Domain) setBit(value int) {
	if value < 1 || value > d.maxValue {
		return
	}
	d.words[(value-1)/64] |= 1 << uint((value-1)%64)
}
