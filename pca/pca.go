// SPDX-License-Identifier: MIT
// Package pca - provider contract and the post-processing shared by all providers.
//
// Purpose:
//   - Define Provider/Result.
//   - Keep centering, sign fixing, loading and variance computation in one place
//     so the SVD and Jacobi providers differ only in how they find the basis.

package pca

import (
	"math"
	"strings"

	"github.com/katalvlaran/refactor/matrix"
)

// Provider names accepted by ByName.
const (
	NameSVD    = "svd"
	NameJacobi = "jacobi"
)

const (
	tagCenter   = "pca.center"
	tagFinalize = "pca.finalize"
)

// Provider computes principal components of a samples × features matrix.
// Implementations must be deterministic for a fixed input.
type Provider interface {
	Decompose(x matrix.Matrix) (*Result, error)
}

// Result is one PCA pass. It is freshly allocated per call.
type Result struct {
	// Scores is samples × samples with orthonormal columns, ordered by
	// decreasing explained variance.
	Scores *matrix.Dense

	// Loadings is features × samples; column j pairs with Scores column j.
	Loadings *matrix.Dense

	// Variances[j] is the variance explained by component j (σ_j² / (n-1)).
	Variances []float64
}

// ByName returns the provider registered under name (case-insensitive).
func ByName(name string) (Provider, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case NameSVD:
		return SVD{}, nil
	case NameJacobi:
		return Jacobi{}, nil
	default:
		return nil, pcaErrorf(name, ErrUnknownProvider)
	}
}

// center returns the column-centered copy of x as a *Dense.
func center(x matrix.Matrix) (*matrix.Dense, error) {
	xc, _, err := matrix.CenterColumns(x)
	if err != nil {
		return nil, pcaErrorf(tagCenter, err)
	}
	d, ok := xc.(*matrix.Dense)
	if !ok {
		// CenterColumns returns its input unchanged only for zero-size matrices.
		return nil, pcaErrorf(tagCenter, matrix.ErrInvalidDimensions)
	}

	return d, nil
}

// finalize turns an orthonormal basis into a Result.
// Implementation:
//   - Stage 1: fix the sign of every basis column (largest |entry| positive).
//   - Stage 2: Loadings = Xcᵀ · Scores.
//   - Stage 3: Variances from the squared singular values (padded with zeros).
func finalize(xc, scores *matrix.Dense, sigmaSq []float64) (*Result, error) {
	if err := fixSigns(scores); err != nil {
		return nil, pcaErrorf(tagFinalize, err)
	}
	xt, err := matrix.Transpose(xc)
	if err != nil {
		return nil, pcaErrorf(tagFinalize, err)
	}
	l, err := matrix.Mul(xt, scores)
	if err != nil {
		return nil, pcaErrorf(tagFinalize, err)
	}

	n := scores.Rows()
	variances := make([]float64, n)
	if n > 1 {
		for j := 0; j < n && j < len(sigmaSq); j++ {
			variances[j] = math.Max(sigmaSq[j], 0) / float64(n-1)
		}
	}

	return &Result{Scores: scores, Loadings: l.(*matrix.Dense), Variances: variances}, nil
}

// fixSigns flips every column whose largest-magnitude entry is negative.
// The first entry wins ties, so the choice is independent of the backend.
func fixSigns(m *matrix.Dense) error {
	r, c := m.Shape()
	var v, best float64
	var err error
	for j := 0; j < c; j++ {
		bestAbs := -1.0
		for i := 0; i < r; i++ {
			if v, err = m.At(i, j); err != nil {
				return err
			}
			if math.Abs(v) > bestAbs {
				bestAbs, best = math.Abs(v), v
			}
		}
		if best >= 0 {
			continue
		}
		for i := 0; i < r; i++ {
			v, _ = m.At(i, j)
			if v == 0 {
				continue // keep +0 rather than writing -0
			}
			if err = m.Set(i, j, -v); err != nil {
				return err
			}
		}
	}

	return nil
}
