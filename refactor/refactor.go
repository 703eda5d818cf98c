// SPDX-License-Identifier: MIT

package refactor

import (
	"github.com/katalvlaran/refactor/matrix"
	"github.com/katalvlaran/refactor/methylation"
)

const tagRun = "refactor.Run"

// Result is the output of one run. Every field is freshly allocated.
type Result struct {
	// Components is samples × NumComponents: the final ReFACTor components.
	Components *matrix.Dense

	// Ranked is a permutation of [0, Sites) by ascending Distances.
	Ranked []int

	// Distances[j] is the score of site j (not reordered).
	Distances []float64

	// StandardPCA is samples × K: the first-pass scores, for comparison.
	StandardPCA *matrix.Dense
}

// Run executes the pipeline on data with parameters p.
// Implementation:
//   - Stage 1: re-validate p against the data dimensions (fail before any work).
//   - Stage 2: PCA on dataᵀ (samples × sites).
//   - Stage 3: rank-K reconstruction, transposed to samples × sites; per-site distances; ranking.
//   - Stage 4: PCA on the T lowest-distance sites; keep NumComponents scores.
//
// Run writes nothing; see the output package for the artifacts.
//
// Errors:
//   - *ValidationError (matches ErrInvalidParameter) for out-of-range parameters.
//   - methylation.ErrNilData / ErrInputShape for malformed data.
//   - Provider and matrix errors, wrapped with the stage tag.
func Run(data *methylation.Data, p Params, opts ...Option) (*Result, error) {
	o := gatherOptions(opts...)

	if err := data.Validate(); err != nil {
		return nil, refactorErrorf(tagRun, err)
	}
	p, err := NewParams(data.Samples, data.Sites, p.K, p.T, p.NumComponents)
	if err != nil {
		return nil, err
	}

	o.reporter.Status(StatusStart)
	o.reporter.Status(StatusStandardPCA)
	x, err := matrix.Transpose(data.Values)
	if err != nil {
		return nil, refactorErrorf(tagRun, err)
	}
	first, err := o.provider.Decompose(x)
	if err != nil {
		return nil, refactorErrorf(tagRun, err)
	}

	o.reporter.Status(StatusRanking)
	approx, err := LowRankApproximation(first.Scores, first.Loadings, p.K)
	if err != nil {
		return nil, refactorErrorf(tagRun, err)
	}
	b, err := matrix.Transpose(approx)
	if err != nil {
		return nil, refactorErrorf(tagRun, err)
	}
	distances, err := SiteDistances(x, b, o.zeroNorm)
	if err != nil {
		return nil, refactorErrorf(tagRun, err)
	}
	ranked := RankSites(distances)

	o.reporter.Status(StatusComponents)
	components, err := ReExtract(data, ranked, p.T, p.NumComponents, o.provider)
	if err != nil {
		return nil, refactorErrorf(tagRun, err)
	}
	standard, err := first.Scores.LeadingCols(p.K)
	if err != nil {
		return nil, refactorErrorf(tagRun, err)
	}

	return &Result{
		Components:  components,
		Ranked:      ranked,
		Distances:   distances,
		StandardPCA: standard,
	}, nil
}
