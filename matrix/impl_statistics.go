// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Provide the column statistics used by site ranking (centering, L2
//     normalization, column-wise Euclidean distance) as deterministic
//     compositions over ew* micro-kernels.
//
// Exposed API:
//   - CenterColumns(X, opts)       -> (Xc, means) // subtract per-column mean; constant columns become exact zeros
//   - NormalizeColumnsL2(X, opts)  -> (Y, norms)  // unit L2 columns; degenerate columns per ZeroNormPolicy
//   - ColumnDistances(A, B)        -> d           // d[j] = ||A[:,j] - B[:,j]||₂
//
// Determinism & Performance:
//   - Fixed i→j traversal for all explicit loops.
//   - Dense fast-paths avoid At/Set and operate on row-major flat buffers.
//   - Zero-size matrices (0×N or N×0) are treated as no-ops.

package matrix

import "math"

// Operation name constants for unified error wrapping and reducing magic strings.
const (
	opCenterColumns      = "CenterColumns"
	opNormalizeColumnsL2 = "NormalizeColumnsL2"
	opColumnDistances    = "ColumnDistances"
)

// centerColumns subtracts the per-column mean from every element (column-wise centering).
// Implementation:
//   - Stage 1: Validate X (non-nil) and handle zero-size as a strict no-op.
//   - Stage 2: Compute column means, ranges and magnitudes in a deterministic pass
//     (Dense fast-path; At fallback).
//   - Stage 3: Apply ewBroadcastSubCols to produce a centered copy.
//   - Stage 4: Write exact zeros into every constant column.
//
// A column is constant when max-min ≤ eps·max|x| (WithEpsilon, default
// DefaultEpsilon; eps = 0 demands bit-equal entries). Subtracting a mean that
// carries rounding error, e.g. 0.1 over 7 rows, leaves ~1e-17 residue that a
// later normalization would blow up to a unit vector; Stage 4 removes it.
//
// Returns:
//   - Matrix: centered copy (r×c) for r>0 && c>0; otherwise X itself (no-op).
//   - []float64: column means (len=c).
//
// Errors:
//   - ErrNilMatrix from validation; wrapped At/Set errors from fallback paths.
//
// Complexity:
//   - Time O(r*c), Space O(r*c) for output (+ O(c) means and ranges).
func centerColumns(X Matrix, opts ...Option) (Matrix, []float64, error) {
	if err := ValidateNotNil(X); err != nil {
		return nil, nil, matrixErrorf(opCenterColumns, err)
	}
	o := gatherOptions(opts...)

	r, c := X.Rows(), X.Cols()
	means := make([]float64, c)
	if r == 0 || c == 0 {
		return X, means, nil
	}

	// Stage 2: accumulate sums into means, track min/max/|max| per column.
	lo := make([]float64, c)
	hi := make([]float64, c)
	mag := make([]float64, c)
	var i, j int
	var v float64
	d, isDense := X.(*Dense)
	for i = 0; i < r; i++ {
		for j = 0; j < c; j++ {
			if isDense {
				v = d.data[i*c+j]
			} else {
				var err error
				if v, err = X.At(i, j); err != nil {
					return nil, nil, matrixErrorf(opCenterColumns, err)
				}
			}
			means[j] += v
			if i == 0 || v < lo[j] {
				lo[j] = v
			}
			if i == 0 || v > hi[j] {
				hi[j] = v
			}
			if a := math.Abs(v); a > mag[j] || math.IsNaN(a) {
				mag[j] = a // a NaN sticks and keeps the column non-constant
			}
		}
	}
	invR := 1.0 / float64(r)
	for j = 0; j < c; j++ {
		means[j] *= invR
	}

	Xc, err := ewBroadcastSubCols(X, means)
	if err != nil {
		return nil, nil, matrixErrorf(opCenterColumns, err)
	}

	// Stage 4: ewBroadcastSubCols always allocates a *Dense.
	out := Xc.(*Dense)
	for j = 0; j < c; j++ {
		if !(hi[j]-lo[j] <= o.eps*mag[j]) { // NaN spreads are never constant
			continue
		}
		for i = 0; i < r; i++ {
			out.data[i*c+j] = 0
		}
	}

	return out, means, nil
}

// normalizeColumnsL2 rescales each column to unit Euclidean norm.
// Implementation:
//   - Stage 1: Validate X; zero-size is a no-op.
//   - Stage 2: Compute per-column L2 norms in i→j order.
//   - Stage 3: Build per-column scale: 1/norm for normal columns; for a zero
//     norm use 1 (ZeroNormKeep) or NaN (ZeroNormNaN).
//   - Stage 4: Apply ewScaleCols.
//
// Behavior highlights:
//   - ZeroNormKeep leaves an all-zero column as the zero vector.
//   - ZeroNormNaN reproduces 0 * (1/0): the column becomes NaN and the result
//     is allocated without the NaN/Inf guard.
//
// Returns:
//   - Matrix: normalized copy.
//   - []float64: the original column norms (len=c).
//
// Complexity:
//   - Time O(r*c), Space O(r*c) (+ O(c) auxiliary slices).
func normalizeColumnsL2(X Matrix, opts ...Option) (Matrix, []float64, error) {
	if err := ValidateNotNil(X); err != nil {
		return nil, nil, matrixErrorf(opNormalizeColumnsL2, err)
	}
	o := gatherOptions(opts...)

	r, c := X.Rows(), X.Cols()
	norms := make([]float64, c)
	if r == 0 || c == 0 {
		return X, norms, nil
	}

	var i, j int
	var v float64
	if d, ok := X.(*Dense); ok {
		for i = 0; i < r; i++ {
			base := i * c
			for j = 0; j < c; j++ {
				v = d.data[base+j]
				norms[j] += v * v
			}
		}
	} else {
		var err error
		for i = 0; i < r; i++ {
			for j = 0; j < c; j++ {
				if v, err = X.At(i, j); err != nil {
					return nil, nil, matrixErrorf(opNormalizeColumnsL2, err)
				}
				norms[j] += v * v
			}
		}
	}

	scale := make([]float64, c)
	for j = 0; j < c; j++ {
		norms[j] = math.Sqrt(norms[j])
		switch {
		case norms[j] > 0:
			scale[j] = 1.0 / norms[j]
		case o.zeroNorm == ZeroNormNaN:
			scale[j] = math.NaN()
		default:
			scale[j] = 1.0
		}
	}

	Y, err := ewScaleCols(X, scale, o.validateNaNInf)
	if err != nil {
		return nil, nil, matrixErrorf(opNormalizeColumnsL2, err)
	}

	return Y, norms, nil
}

// columnDistances returns d[j] = sqrt(Σ_i (A[i,j]-B[i,j])²).
// NaN entries propagate into the affected column distance.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch (different shapes).
//
// Complexity:
//   - Time O(r*c), Space O(c).
func columnDistances(A, B Matrix) ([]float64, error) {
	if err := ValidateBinarySameShape(A, B); err != nil {
		return nil, matrixErrorf(opColumnDistances, err)
	}
	r, c := A.Rows(), A.Cols()
	dist := make([]float64, c)

	var i, j int
	var diff float64
	da, okA := A.(*Dense)
	db, okB := B.(*Dense)
	if okA && okB {
		for i = 0; i < r; i++ {
			base := i * c
			for j = 0; j < c; j++ {
				diff = da.data[base+j] - db.data[base+j]
				dist[j] += diff * diff
			}
		}
	} else {
		var av, bv float64
		var err error
		for i = 0; i < r; i++ {
			for j = 0; j < c; j++ {
				if av, err = A.At(i, j); err != nil {
					return nil, matrixErrorf(opColumnDistances, err)
				}
				if bv, err = B.At(i, j); err != nil {
					return nil, matrixErrorf(opColumnDistances, err)
				}
				diff = av - bv
				dist[j] += diff * diff
			}
		}
	}
	for j = 0; j < c; j++ {
		dist[j] = math.Sqrt(dist[j])
	}

	return dist, nil
}
