// SPDX-License-Identifier: MIT

package refactor

import (
	"github.com/katalvlaran/refactor/matrix"
)

const tagLowRank = "refactor.LowRankApproximation"

// LowRankApproximation reconstructs the sites × samples matrix from the
// leading i components of one PCA pass: loadings[:, :i] · scores[:, :i]ᵀ.
//
// scores is samples × samples and loadings is sites × samples, as returned by
// a pca.Provider. With i equal to the number of components the result is the
// column-centered input of that pass, transposed; an input whose sites are
// already centered comes back unchanged.
//
// Errors:
//   - matrix.ErrNilMatrix for a nil operand.
//   - matrix.ErrDimensionMismatch when scores and loadings disagree on the component count.
//   - matrix.ErrOutOfRange when i is outside [1, scores.Cols()].
//
// Complexity: O(sites*samples*i).
func LowRankApproximation(scores, loadings *matrix.Dense, i int) (*matrix.Dense, error) {
	if err := matrix.ValidateNotNil(scores); err != nil {
		return nil, refactorErrorf(tagLowRank, err)
	}
	if err := matrix.ValidateNotNil(loadings); err != nil {
		return nil, refactorErrorf(tagLowRank, err)
	}
	if scores.Cols() != loadings.Cols() {
		return nil, refactorErrorf(tagLowRank, matrix.ErrDimensionMismatch)
	}

	p, err := scores.LeadingCols(i)
	if err != nil {
		return nil, refactorErrorf(tagLowRank, err)
	}
	u, err := loadings.LeadingCols(i)
	if err != nil {
		return nil, refactorErrorf(tagLowRank, err)
	}
	pt, err := matrix.Transpose(p)
	if err != nil {
		return nil, refactorErrorf(tagLowRank, err)
	}
	out, err := matrix.Mul(u, pt)
	if err != nil {
		return nil, refactorErrorf(tagLowRank, err)
	}

	return out.(*matrix.Dense), nil
}
