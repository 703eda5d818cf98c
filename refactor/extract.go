// SPDX-License-Identifier: MIT

package refactor

import (
	"fmt"

	"github.com/katalvlaran/refactor/matrix"
	"github.com/katalvlaran/refactor/methylation"
	"github.com/katalvlaran/refactor/pca"
)

const tagReExtract = "refactor.ReExtract"

// ReExtract runs PCA on the t top-ranked sites and returns the first
// numComponents score columns (samples × numComponents).
// Implementation:
//   - Stage 1: copy rows ranked[:t] of data.Values (t × samples), in ranked order.
//   - Stage 2: transpose to samples × t and decompose with provider.
//   - Stage 3: truncate the scores.
//
// A nil provider means pca.SVD{}.
//
// Errors:
//   - methylation.ErrNilData / ErrInputShape from data validation.
//   - matrix.ErrOutOfRange for t outside [1, len(ranked)], numComponents outside
//     [1, samples] or a ranked index outside [0, sites).
//
// Complexity: dominated by the provider on a samples × t matrix.
func ReExtract(data *methylation.Data, ranked []int, t, numComponents int, provider pca.Provider) (*matrix.Dense, error) {
	if err := data.Validate(); err != nil {
		return nil, refactorErrorf(tagReExtract, err)
	}
	if t < 1 || t > len(ranked) {
		return nil, fmt.Errorf("%s: t = %d with %d ranked sites: %w", tagReExtract, t, len(ranked), matrix.ErrOutOfRange)
	}
	if numComponents < 1 || numComponents > data.Samples {
		return nil, fmt.Errorf("%s: numComponents = %d with %d samples: %w", tagReExtract, numComponents, data.Samples, matrix.ErrOutOfRange)
	}
	if provider == nil {
		provider = pca.SVD{}
	}

	cols := make([]int, data.Samples)
	for j := range cols {
		cols[j] = j
	}
	top, err := data.Values.Induced(ranked[:t], cols)
	if err != nil {
		return nil, refactorErrorf(tagReExtract, err)
	}
	x, err := matrix.Transpose(top)
	if err != nil {
		return nil, refactorErrorf(tagReExtract, err)
	}
	res, err := provider.Decompose(x)
	if err != nil {
		return nil, refactorErrorf(tagReExtract, err)
	}
	out, err := res.Scores.LeadingCols(numComponents)
	if err != nil {
		return nil, refactorErrorf(tagReExtract, err)
	}

	return out, nil
}
