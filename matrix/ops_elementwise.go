// SPDX-License-Identifier: MIT
// Package matrix - element-wise micro-kernels (ew*).
//
// Purpose:
//   - Centralize the tight broadcast/scale loops reused by the statistics kernels.
//   - Each kernel allocates a fresh result; inputs are never mutated.
//
// Determinism:
//   - Fixed i→j traversal for all loops; *Dense fast-path walks the flat buffer.

package matrix

import "math"

// ewBroadcastSubCols returns X with colMeans[j] subtracted from every element of column j.
// Errors: ErrNilMatrix, ErrDimensionMismatch (len(colMeans) != Cols).
// Complexity: O(r*c).
func ewBroadcastSubCols(X Matrix, colMeans []float64) (Matrix, error) {
	if err := ValidateNotNil(X); err != nil {
		return nil, matrixErrorf("broadcastSubCols", err)
	}
	r, c := X.Rows(), X.Cols()
	if len(colMeans) != c {
		return nil, matrixErrorf("broadcastSubCols", ErrDimensionMismatch)
	}
	out, err := NewDense(r, c)
	if err != nil {
		return nil, matrixErrorf("broadcastSubCols", err)
	}

	// Dense fast-path: single pass over the flat row-major buffer.
	if d, ok := X.(*Dense); ok {
		out.validateNaNInf = d.validateNaNInf
		for i := 0; i < r; i++ {
			base := i * c
			for j := 0; j < c; j++ {
				out.data[base+j] = d.data[base+j] - colMeans[j]
			}
		}
		return out, nil
	}

	// Generic fallback via At/Set.
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			v, e := X.At(i, j)
			if e != nil {
				return nil, matrixErrorf("broadcastSubCols", e)
			}
			if e = out.Set(i, j, v-colMeans[j]); e != nil {
				return nil, matrixErrorf("broadcastSubCols", e)
			}
		}
	}

	return out, nil
}

// ewScaleCols returns X with column j multiplied by scale[j].
// The result is allocated with the given NaN/Inf policy so that callers
// emitting NaN on purpose (ZeroNormNaN) can do so.
// Errors: ErrNilMatrix, ErrDimensionMismatch (len(scale) != Cols).
// Complexity: O(r*c).
func ewScaleCols(X Matrix, scale []float64, validateNaNInf bool) (Matrix, error) {
	if err := ValidateNotNil(X); err != nil {
		return nil, matrixErrorf("scaleCols", err)
	}
	r, c := X.Rows(), X.Cols()
	if len(scale) != c {
		return nil, matrixErrorf("scaleCols", ErrDimensionMismatch)
	}
	out, err := newDenseWithPolicy(r, c, validateNaNInf)
	if err != nil {
		return nil, matrixErrorf("scaleCols", err)
	}

	if d, ok := X.(*Dense); ok {
		for i := 0; i < r; i++ {
			base := i * c
			for j := 0; j < c; j++ {
				out.data[base+j] = d.data[base+j] * scale[j]
			}
		}
		return out, nil
	}

	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			v, e := X.At(i, j)
			if e != nil {
				return nil, matrixErrorf("scaleCols", e)
			}
			if e = out.Set(i, j, v*scale[j]); e != nil {
				return nil, matrixErrorf("scaleCols", e)
			}
		}
	}

	return out, nil
}

// ewAllClose reports whether |a-b| ≤ atol + rtol*|b| holds element-wise.
// Two NaNs at the same position compare equal; a NaN against a number does not.
// Errors: ErrNilMatrix, ErrDimensionMismatch.
// Complexity: O(r*c), early exit on the first violation.
func ewAllClose(a, b Matrix, rtol, atol float64) (bool, error) {
	if err := ValidateBinarySameShape(a, b); err != nil {
		return false, matrixErrorf("allClose", err)
	}
	r, c := a.Rows(), a.Cols()
	var av, bv float64
	var err error
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			if av, err = a.At(i, j); err != nil {
				return false, matrixErrorf("allClose", err)
			}
			if bv, err = b.At(i, j); err != nil {
				return false, matrixErrorf("allClose", err)
			}
			if math.IsNaN(av) || math.IsNaN(bv) {
				if math.IsNaN(av) && math.IsNaN(bv) {
					continue
				}
				return false, nil
			}
			if math.Abs(av-bv) > atol+rtol*math.Abs(bv) {
				return false, nil
			}
		}
	}

	return true, nil
}
