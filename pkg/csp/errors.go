package csp

import "errors"

// Construction-time errors. A Problem that fails Validate is rejected
// before search begins; these are caller errors, not search outcomes.
// Domain wipeouts during propagation are handled internally by the
// search and never surface through the public API.
var (
	// ErrEmptyDomain reports a variable declared with no candidate values.
	ErrEmptyDomain = errors.New("variable has empty initial domain")

	// ErrUnknownVariable reports a constraint whose scope references a
	// variable that does not belong to the problem.
	ErrUnknownVariable = errors.New("constraint references unknown variable")

	// ErrEmptyScope reports a constraint declared over no variables.
	ErrEmptyScope = errors.New("constraint has empty scope")

	// ErrInvalidValue reports a value outside a variable's value range.
	ErrInvalidValue = errors.New("value out of domain range")
)
