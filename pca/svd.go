// SPDX-License-Identifier: MIT

package pca

import (
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/refactor/matrix"
)

const tagSVD = "pca.SVD"

// SVD is the default Provider. It factors the centered matrix Xc = U·Σ·Vᵀ with
// gonum and uses the full left singular basis U (samples × samples) as Scores.
type SVD struct{}

var _ Provider = SVD{}

// Decompose implements Provider.
// Implementation:
//   - Stage 1: center features; copy into a gonum Dense.
//   - Stage 2: Factorize with mat.SVDFullU (singular values come sorted descending).
//   - Stage 3: copy U back, hand off to finalize with σ².
//
// Errors:
//   - ErrFactorization if gonum reports failure; matrix sentinels for bad input.
//
// Complexity:
//   - Time O(n²·p) for n samples and p features, Space O(n² + n·p).
func (SVD) Decompose(x matrix.Matrix) (*Result, error) {
	xc, err := center(x)
	if err != nil {
		return nil, pcaErrorf(tagSVD, err)
	}
	n, p := xc.Shape()

	var svd mat.SVD
	if ok := svd.Factorize(mat.NewDense(n, p, xc.RawData()), mat.SVDFullU); !ok {
		return nil, pcaErrorf(tagSVD, ErrFactorization)
	}
	var u mat.Dense
	svd.UTo(&u)

	buf := make([]float64, n*n)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			buf[i*n+j] = u.At(i, j)
		}
	}
	scores, err := matrix.NewDenseFrom(n, n, buf)
	if err != nil {
		return nil, pcaErrorf(tagSVD, err)
	}

	values := svd.Values(nil)
	sigmaSq := make([]float64, len(values))
	for i, s := range values {
		sigmaSq[i] = s * s
	}

	return finalize(xc, scores, sigmaSq)
}
