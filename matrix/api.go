// SPDX-License-Identifier: MIT
// Package matrix: public API facades.
//
// Purpose:
//   - Provide thin, well-documented entry points for common tasks across the package.
//   - Avoid any logic duplication; each facade delegates to the canonical implementation.
//
// Determinism & Policy:
//   - Facades never change the loop orders or numeric policy of underlying kernels.
//   - Validation is performed in the kernels; facades only compose or forward.

package matrix

// ---------- Constructors & Utilities ----------

// NewIdentity returns I_n (n×n identity; ones on the diagonal, zeros elsewhere).
// Complexity: O(n^2) zeroing (constructor) + O(n) writes on the diagonal.
func NewIdentity(n int) (*Dense, error) {
	I, err := NewDense(n, n)
	if err != nil {
		return nil, err
	}
	for i := 0; i < n; i++ {
		I.data[i*n+i] = 1.0
	}

	return I, nil
}

// ---------- Linear Algebra ----------

// T is a short alias for Transpose.
func T(m Matrix) (Matrix, error) { return Transpose(m) }

// EigenSym runs Jacobi Eigen with the package defaults
// (DefaultEigenTolerance, DefaultEigenMaxIter).
func EigenSym(m Matrix) ([]float64, *Dense, error) {
	return Eigen(m, DefaultEigenTolerance, DefaultEigenMaxIter)
}

// ---------- Statistics ----------

// CenterColumns subtracts the per-column mean; returns the centered copy and the means.
// Columns whose spread is within WithEpsilon of their magnitude come back as exact zeros.
// Complexity: O(r*c).
func CenterColumns(X Matrix, opts ...Option) (Matrix, []float64, error) {
	return centerColumns(X, opts...)
}

// NormalizeColumnsL2 rescales every column to unit L2 norm; returns the copy and the norms.
// Degenerate (zero-norm) columns follow WithZeroNormPolicy (default ZeroNormKeep).
// Complexity: O(r*c).
func NormalizeColumnsL2(X Matrix, opts ...Option) (Matrix, []float64, error) {
	return normalizeColumnsL2(X, opts...)
}

// ColumnDistances returns the per-column Euclidean distance between same-shaped A and B.
// Complexity: O(r*c).
func ColumnDistances(A, B Matrix) ([]float64, error) { return columnDistances(A, B) }

// AllClose reports whether |a-b| ≤ atol + rtol*|b| element-wise.
// Complexity: O(r*c).
func AllClose(a, b Matrix, rtol, atol float64) (bool, error) { return ewAllClose(a, b, rtol, atol) }
