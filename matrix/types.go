// SPDX-License-Identifier: MIT

// Package matrix: the public Matrix interface and the degenerate-column policy
// shared by the statistics kernels. Errors and options live in dedicated
// files (errors.go, options.go).
package matrix

// Matrix represents a two-dimensional mutable array of float64 values.
//
// Complexity notes: all methods are expected O(1) except Clone (O(r*c)).
type Matrix interface {
	// Rows returns the number of rows in the matrix.
	// Complexity: O(1).
	Rows() int

	// Cols returns the number of columns in the matrix.
	// Complexity: O(1).
	Cols() int

	// At retrieves the element at position (i, j).
	// Returns ErrOutOfRange if i<0, i>=Rows(), j<0 or j>=Cols().
	// Complexity: O(1).
	At(i, j int) (float64, error)

	// Set assigns the value v at position (i, j).
	// Returns ErrOutOfRange if indices are invalid.
	// Complexity: O(1).
	Set(i, j int, v float64) error

	// Clone returns a deep copy of the matrix.
	// The returned Matrix is independent of the original.
	// Complexity: O(rows*cols).
	Clone() Matrix
}

// ZeroNormPolicy selects what NormalizeColumnsL2 does with a column whose
// L2 norm is exactly zero (a constant column after centering).
type ZeroNormPolicy int

const (
	// ZeroNormKeep leaves a degenerate column unchanged (it stays the zero vector).
	ZeroNormKeep ZeroNormPolicy = iota

	// ZeroNormNaN performs the unguarded division: every entry becomes 0/0 = NaN.
	ZeroNormNaN
)

// String returns the flag spelling of the policy ("keep" or "nan").
func (p ZeroNormPolicy) String() string {
	switch p {
	case ZeroNormKeep:
		return "keep"
	case ZeroNormNaN:
		return "nan"
	default:
		return "unknown"
	}
}
