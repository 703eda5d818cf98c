// SPDX-License-Identifier: MIT

package pca

import (
	"math"
	"sort"

	"github.com/katalvlaran/refactor/matrix"
)

const tagJacobi = "pca.Jacobi"

// Jacobi diagonalises the samples × samples Gram matrix Xc·Xcᵀ with the
// matrix package's Jacobi rotations. Its eigenvectors are the left singular
// vectors of Xc and its eigenvalues the squared singular values.
//
// Jacobi is exact and dependency-free but O(n⁴) in the worst case, so it
// suits cohorts of up to a few hundred samples.
type Jacobi struct {
	// Tolerance is the relative off-diagonal threshold; it is multiplied by
	// max(1, ‖G‖_F). Zero means matrix.DefaultEigenTolerance.
	Tolerance float64

	// MaxIter caps the rotations. Zero means max(matrix.DefaultEigenMaxIter, 50·n²).
	MaxIter int
}

var _ Provider = Jacobi{}

// Decompose implements Provider.
// Implementation:
//   - Stage 1: center features; build G = Xc·Xcᵀ.
//   - Stage 2: Eigen(G) with a tolerance scaled to ‖G‖_F.
//   - Stage 3: order eigenpairs by descending eigenvalue (stable on ties) and finalize.
//
// Errors:
//   - matrix.ErrMatrixEigenFailed when the rotation budget is exhausted.
func (j Jacobi) Decompose(x matrix.Matrix) (*Result, error) {
	xc, err := center(x)
	if err != nil {
		return nil, pcaErrorf(tagJacobi, err)
	}
	xt, err := matrix.Transpose(xc)
	if err != nil {
		return nil, pcaErrorf(tagJacobi, err)
	}
	g, err := matrix.Mul(xc, xt)
	if err != nil {
		return nil, pcaErrorf(tagJacobi, err)
	}
	n := g.Rows()

	tol := j.Tolerance
	if tol <= 0 {
		tol = matrix.DefaultEigenTolerance
	}
	tol *= math.Max(1, frobenius(g.(*matrix.Dense)))
	maxIter := j.MaxIter
	if maxIter <= 0 {
		maxIter = max(matrix.DefaultEigenMaxIter, 50*n*n)
	}

	vals, q, err := matrix.Eigen(g, tol, maxIter)
	if err != nil {
		return nil, pcaErrorf(tagJacobi, err)
	}

	order := make([]int, n)
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool { return vals[order[a]] > vals[order[b]] })

	rows := make([]int, n)
	for i := range rows {
		rows[i] = i
	}
	scores, err := q.Induced(rows, order)
	if err != nil {
		return nil, pcaErrorf(tagJacobi, err)
	}
	sigmaSq := make([]float64, n)
	for i, k := range order {
		sigmaSq[i] = vals[k]
	}

	return finalize(xc, scores, sigmaSq)
}

// frobenius returns ‖m‖_F.
func frobenius(m *matrix.Dense) float64 {
	var sum float64
	m.Do(func(_, _ int, v float64) bool {
		sum += v * v
		return true
	})

	return math.Sqrt(sum)
}
