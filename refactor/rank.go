// SPDX-License-Identifier: MIT

package refactor

import (
	"math"
	"sort"

	"github.com/katalvlaran/refactor/matrix"
)

const tagSiteDistances = "refactor.SiteDistances"

// SiteDistances scores every site (column) of two samples × sites matrices.
// Implementation:
//   - Stage 1: center each column of A and B (no variance scaling).
//   - Stage 2: rescale each column to unit L2 norm; constant columns follow policy.
//   - Stage 3: d[j] = ‖An[:,j] - Bn[:,j]‖₂.
//
// Under matrix.ZeroNormKeep a constant column stays the zero vector, so its
// distance is the norm of the other side's column (0 or 1). Under
// matrix.ZeroNormNaN it becomes NaN and so does its distance.
//
// Errors:
//   - matrix.ErrNilMatrix, matrix.ErrDimensionMismatch (A and B differ in shape).
//   - ErrUnknownPolicy.
//
// Complexity: O(samples*sites).
func SiteDistances(A, B matrix.Matrix, policy matrix.ZeroNormPolicy) ([]float64, error) {
	if !validPolicy(policy) {
		return nil, refactorErrorf(tagSiteDistances, ErrUnknownPolicy)
	}
	if err := matrix.ValidateBinarySameShape(A, B); err != nil {
		return nil, refactorErrorf(tagSiteDistances, err)
	}

	an, err := centerAndNormalize(A, policy)
	if err != nil {
		return nil, refactorErrorf(tagSiteDistances, err)
	}
	bn, err := centerAndNormalize(B, policy)
	if err != nil {
		return nil, refactorErrorf(tagSiteDistances, err)
	}
	d, err := matrix.ColumnDistances(an, bn)
	if err != nil {
		return nil, refactorErrorf(tagSiteDistances, err)
	}

	return d, nil
}

func centerAndNormalize(x matrix.Matrix, policy matrix.ZeroNormPolicy) (matrix.Matrix, error) {
	xc, _, err := matrix.CenterColumns(x)
	if err != nil {
		return nil, err
	}
	xn, _, err := matrix.NormalizeColumnsL2(xc, matrix.WithZeroNormPolicy(policy))

	return xn, err
}

// RankSites returns the site indices ordered by ascending distance.
// Equal distances keep their original index order; NaN distances go last,
// also in index order.
//
// Complexity: O(n log n).
func RankSites(distances []float64) []int {
	order := make([]int, len(distances))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool {
		da, db := distances[order[a]], distances[order[b]]
		if math.IsNaN(da) {
			return false
		}
		if math.IsNaN(db) {
			return true
		}
		return da < db
	})

	return order
}
