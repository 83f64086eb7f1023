// Package csp provides constraint satisfaction abstractions.
// This file defines the Constraint capability interface and the built-in
// constraint types. Arbitrary n-ary relations are uniform across the
// engine: every constraint exposes the same three-valued evaluation
// contract over a partial tuple of scoped values.
package csp

import (
	"fmt"
	"strings"
)

// Outcome is the result of evaluating a constraint against a partial
// assignment of its scope.
type Outcome int

const (
	// Undetermined means some scoped variables are unassigned and a
	// completion could still satisfy the constraint.
	Undetermined Outcome = iota

	// Satisfied means the constraint holds under the given tuple.
	Satisfied

	// Violated means no completion of the given partial tuple can
	// satisfy the constraint.
	Violated
)

// String returns the outcome name.
func (o Outcome) String() string {
	switch o {
	case Satisfied:
		return "satisfied"
	case Violated:
		return "violated"
	default:
		return "undetermined"
	}
}

// unassigned marks an open slot in an evaluation tuple. Domain values
// are always >= 1, so zero is free to carry this meaning.
const unassigned = 0

// Constraint is a relation over an ordered tuple of variables.
// Implementations must be immutable and their Evaluate must be a pure
// function of the tuple: same input, same outcome, no side effects.
//
// Evaluate receives the current values of the scoped variables in scope
// order, with unassigned slots set to zero. A generic predicate may
// return Undetermined until the tuple is complete; constraints with a
// cheaper partial-evaluation rule (AllDifferent, Table, the binary
// built-ins) report Violated as soon as no completion can succeed,
// which gives propagation more to work with.
type Constraint interface {
	// Scope returns the ordered tuple of variables the constraint relates.
	Scope() []*Variable

	// Evaluate reports whether the constraint is satisfied, violated, or
	// not yet determined under the partial tuple.
	Evaluate(tuple []int) Outcome

	// String returns a human-readable representation.
	String() string
}

// BinaryConstraint is implemented by binary constraints that can test a
// single value pair. Arc-consistency propagation is derived from this
// capability: an arc (X, Y) revises X by discarding values with no
// supporting pair in Y's domain.
type BinaryConstraint interface {
	Constraint

	// Check reports whether the pair (a, b) is allowed, where a is a value
	// of Scope()[0] and b a value of Scope()[1].
	Check(a, b int) bool
}

// evalPair is the shared evaluation rule for binary constraints:
// undetermined until both slots are filled, then delegated to check.
func evalPair(tuple []int, check func(a, b int) bool) Outcome {
	if tuple[0] == unassigned || tuple[1] == unassigned {
		return Undetermined
	}
	if check(tuple[0], tuple[1]) {
		return Satisfied
	}
	return Violated
}

// scopeNames joins scope variable names for String methods.
func scopeNames(scope []*Variable) string {
	names := make([]string, len(scope))
	for i, v := range scope {
		names[i] = v.Name()
	}
	return strings.Join(names, ",")
}

// NotEqual requires its two variables to take distinct values.
type NotEqual struct {
	x, y *Variable
}

// NewNotEqual creates x != y.
func NewNotEqual(x, y *Variable) *NotEqual {
	return &NotEqual{x: x, y: y}
}

// Scope implements Constraint.
func (c *NotEqual) Scope() []*Variable { return []*Variable{c.x, c.y} }

// Evaluate implements Constraint.
func (c *NotEqual) Evaluate(tuple []int) Outcome {
	return evalPair(tuple, c.Check)
}

// Check implements BinaryConstraint.
func (c *NotEqual) Check(a, b int) bool { return a != b }

func (c *NotEqual) String() string {
	return fmt.Sprintf("%s != %s", c.x.Name(), c.y.Name())
}

// Equal requires its two variables to take the same value.
type Equal struct {
	x, y *Variable
}

// NewEqual creates x == y.
func NewEqual(x, y *Variable) *Equal {
	return &Equal{x: x, y: y}
}

// Scope implements Constraint.
func (c *Equal) Scope() []*Variable { return []*Variable{c.x, c.y} }

// Evaluate implements Constraint.
func (c *Equal) Evaluate(tuple []int) Outcome {
	return evalPair(tuple, c.Check)
}

// Check implements BinaryConstraint.
func (c *Equal) Check(a, b int) bool { return a == b }

func (c *Equal) String() string {
	return fmt.Sprintf("%s == %s", c.x.Name(), c.y.Name())
}

// LessThan requires x < y. Useful for precedence in scheduling instances.
type LessThan struct {
	x, y *Variable
}

// NewLessThan creates x < y.
func NewLessThan(x, y *Variable) *LessThan {
	return &LessThan{x: x, y: y}
}

// Scope implements Constraint.
func (c *LessThan) Scope() []*Variable { return []*Variable{c.x, c.y} }

// Evaluate implements Constraint.
func (c *LessThan) Evaluate(tuple []int) Outcome {
	return evalPair(tuple, c.Check)
}

// Check implements BinaryConstraint.
func (c *LessThan) Check(a, b int) bool { return a < b }

func (c *LessThan) String() string {
	return fmt.Sprintf("%s < %s", c.x.Name(), c.y.Name())
}

// Offset requires y = x + offset. Models arithmetic relationships such
// as temporal distances between scheduled tasks.
type Offset struct {
	x, y   *Variable
	offset int
}

// NewOffset creates y = x + offset.
func NewOffset(x, y *Variable, offset int) *Offset {
	return &Offset{x: x, y: y, offset: offset}
}

// Scope implements Constraint.
func (c *Offset) Scope() []*Variable { return []*Variable{c.x, c.y} }

// Evaluate implements Constraint.
func (c *Offset) Evaluate(tuple []int) Outcome {
	return evalPair(tuple, c.Check)
}

// Check implements BinaryConstraint.
func (c *Offset) Check(a, b int) bool { return b == a+c.offset }

func (c *Offset) String() string {
	if c.offset >= 0 {
		return fmt.Sprintf("%s == %s + %d", c.y.Name(), c.x.Name(), c.offset)
	}
	return fmt.Sprintf("%s == %s - %d", c.y.Name(), c.x.Name(), -c.offset)
}

// BinaryFunc is a binary constraint defined by an arbitrary pair
// predicate. The predicate must be a pure function of its arguments.
type BinaryFunc struct {
	name string
	x, y *Variable
	fn   func(a, b int) bool
}

// NewBinaryFunc creates a named binary constraint from a pair predicate.
// Returns an error if fn is nil.
func NewBinaryFunc(name string, x, y *Variable, fn func(a, b int) bool) (*BinaryFunc, error) {
	if fn == nil {
		return nil, fmt.Errorf("BinaryFunc %q: nil predicate", name)
	}
	return &BinaryFunc{name: name, x: x, y: y, fn: fn}, nil
}

// Scope implements Constraint.
func (c *BinaryFunc) Scope() []*Variable { return []*Variable{c.x, c.y} }

// Evaluate implements Constraint.
func (c *BinaryFunc) Evaluate(tuple []int) Outcome {
	return evalPair(tuple, c.fn)
}

// Check implements BinaryConstraint.
func (c *BinaryFunc) Check(a, b int) bool { return c.fn(a, b) }

func (c *BinaryFunc) String() string {
	return fmt.Sprintf("%s(%s,%s)", c.name, c.x.Name(), c.y.Name())
}

// AllDifferent requires every scoped variable to take a distinct value.
// Its partial-evaluation rule reports Violated as soon as two assigned
// variables collide, without waiting for the full scope.
type AllDifferent struct {
	scope []*Variable
}

// NewAllDifferent creates an all-different constraint over the variables.
// Returns ErrEmptyScope if no variables are given.
func NewAllDifferent(variables ...*Variable) (*AllDifferent, error) {
	if len(variables) == 0 {
		return nil, fmt.Errorf("AllDifferent: %w", ErrEmptyScope)
	}
	scope := make([]*Variable, len(variables))
	copy(scope, variables)
	return &AllDifferent{scope: scope}, nil
}

// Scope implements Constraint.
func (c *AllDifferent) Scope() []*Variable { return c.scope }

// Evaluate implements Constraint.
func (c *AllDifferent) Evaluate(tuple []int) Outcome {
	var seen uint64
	var wide map[int]bool
	complete := true
	for _, v := range tuple {
		if v == unassigned {
			complete = false
			continue
		}
		if v <= 64 {
			bit := uint64(1) << uint(v-1)
			if seen&bit != 0 {
				return Violated
			}
			seen |= bit
			continue
		}
		if wide == nil {
			wide = make(map[int]bool)
		}
		if wide[v] {
			return Violated
		}
		wide[v] = true
	}
	if complete {
		return Satisfied
	}
	return Undetermined
}

func (c *AllDifferent) String() string {
	return fmt.Sprintf("alldifferent(%s)", scopeNames(c.scope))
}

// Table is an extensional constraint: the scope tuple must match one of
// the allowed tuples. The partial rule reports Violated once no allowed
// tuple agrees with every assigned slot.
type Table struct {
	scope  []*Variable
	tuples [][]int
}

// NewTable creates a table constraint. Every allowed tuple must have the
// same arity as the scope.
func NewTable(variables []*Variable, tuples [][]int) (*Table, error) {
	if len(variables) == 0 {
		return nil, fmt.Errorf("Table: %w", ErrEmptyScope)
	}
	for i, t := range tuples {
		if len(t) != len(variables) {
			return nil, fmt.Errorf("Table: tuple %d has arity %d, scope has %d", i, len(t), len(variables))
		}
	}
	scope := make([]*Variable, len(variables))
	copy(scope, variables)
	return &Table{scope: scope, tuples: tuples}, nil
}

// Scope implements Constraint.
func (c *Table) Scope() []*Variable { return c.scope }

// Evaluate implements Constraint.
func (c *Table) Evaluate(tuple []int) Outcome {
	complete := true
	for _, v := range tuple {
		if v == unassigned {
			complete = false
			break
		}
	}
	for _, allowed := range c.tuples {
		if matchesPartial(allowed, tuple) {
			if complete {
				return Satisfied
			}
			return Undetermined
		}
	}
	return Violated
}

// Check implements BinaryConstraint for arity-2 tables. The constraint
// graph only derives arcs from tables whose scope has exactly two
// variables.
func (c *Table) Check(a, b int) bool {
	if len(c.scope) != 2 {
		return false
	}
	for _, t := range c.tuples {
		if t[0] == a && t[1] == b {
			return true
		}
	}
	return false
}

func (c *Table) String() string {
	return fmt.Sprintf("table(%s)[%d tuples]", scopeNames(c.scope), len(c.tuples))
}

func matchesPartial(allowed, tuple []int) bool {
	for i, v := range tuple {
		if v != unassigned && allowed[i] != v {
			return false
		}
	}
	return true
}

// Relation is a generic n-ary constraint defined by a predicate over the
// complete scope tuple. Because the predicate is opaque, evaluation is
// Undetermined until every scoped variable is assigned; prefer the
// built-in constraints when a partial rule exists, since they prune
// earlier.
type Relation struct {
	name  string
	scope []*Variable
	fn    func(tuple []int) bool
}

// NewRelation creates a named n-ary constraint from a full-tuple
// predicate. The predicate must be a pure function of the tuple.
func NewRelation(name string, variables []*Variable, fn func(tuple []int) bool) (*Relation, error) {
	if len(variables) == 0 {
		return nil, fmt.Errorf("Relation %q: %w", name, ErrEmptyScope)
	}
	if fn == nil {
		return nil, fmt.Errorf("Relation %q: nil predicate", name)
	}
	scope := make([]*Variable, len(variables))
	copy(scope, variables)
	return &Relation{name: name, scope: scope, fn: fn}, nil
}

// Scope implements Constraint.
func (c *Relation) Scope() []*Variable { return c.scope }

// Evaluate implements Constraint.
func (c *Relation) Evaluate(tuple []int) Outcome {
	for _, v := range tuple {
		if v == unassigned {
			return Undetermined
		}
	}
	if c.fn(tuple) {
		return Satisfied
	}
	return Violated
}

func (c *Relation) String() string {
	return fmt.Sprintf("%s(%s)", c.name, scopeNames(c.scope))
}
