// SPDX-License-Identifier: MIT

package refactor

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidParameter is matched (errors.Is) by every *ValidationError.
	ErrInvalidParameter = errors.New("refactor: invalid parameter")

	// ErrUnknownPolicy is returned for a ZeroNormPolicy outside the declared constants.
	ErrUnknownPolicy = errors.New("refactor: unknown zero-norm policy")
)

// ValidationError reports a run parameter outside its admissible range.
// Min and Max are inclusive bounds derived from the data dimensions.
type ValidationError struct {
	Param string
	Value int
	Min   int
	Max   int
}

// Error names the parameter, its value and the bounds it failed.
func (e *ValidationError) Error() string {
	if e.Min > e.Max {
		return fmt.Sprintf("refactor: %s = %d has no admissible value (need %d ≤ %s ≤ %d)",
			e.Param, e.Value, e.Min, e.Param, e.Max)
	}

	return fmt.Sprintf("refactor: %s = %d is out of range, need %d ≤ %s ≤ %d",
		e.Param, e.Value, e.Min, e.Param, e.Max)
}

// Unwrap lets errors.Is(err, ErrInvalidParameter) succeed.
func (e *ValidationError) Unwrap() error { return ErrInvalidParameter }

// refactorErrorf wraps err with an operation tag; never call it with a nil err.
func refactorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
