// SPDX-License-Identifier: MIT

package pca_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/refactor/matrix"
	"github.com/katalvlaran/refactor/pca"
	"github.com/stretchr/testify/require"
)

// randomDense returns a deterministic r×c matrix with entries in [0, 10).
func randomDense(t *testing.T, seed int64, r, c int) *matrix.Dense {
	t.Helper()
	rng := rand.New(rand.NewSource(seed))
	buf := make([]float64, r*c)
	for i := range buf {
		buf[i] = rng.Float64() * 10
	}
	m, err := matrix.NewDenseFrom(r, c, buf)
	require.NoError(t, err)

	return m
}

func mustMul(t *testing.T, a, b matrix.Matrix) matrix.Matrix {
	t.Helper()
	out, err := matrix.Mul(a, b)
	require.NoError(t, err)

	return out
}

func mustT(t *testing.T, m matrix.Matrix) matrix.Matrix {
	t.Helper()
	out, err := matrix.Transpose(m)
	require.NoError(t, err)

	return out
}

func requireClose(t *testing.T, got, want matrix.Matrix, atol float64) {
	t.Helper()
	ok, err := matrix.AllClose(got, want, 0, atol)
	require.NoError(t, err)
	require.True(t, ok, "got\n%v\nwant\n%v", got, want)
}

var providers = []struct {
	name string
	p    pca.Provider
}{
	{"svd", pca.SVD{}},
	{"jacobi", pca.Jacobi{}},
}

func TestProviders_ShapesAndReconstruction(t *testing.T) {
	t.Parallel()

	shapes := []struct{ n, p int }{{5, 4}, {4, 7}, {6, 6}, {3, 2}}
	for _, pr := range providers {
		for _, sh := range shapes {
			x := randomDense(t, int64(sh.n*10+sh.p), sh.n, sh.p)
			res, err := pr.p.Decompose(x)
			require.NoError(t, err, pr.name)

			require.Equal(t, sh.n, res.Scores.Rows())
			require.Equal(t, sh.n, res.Scores.Cols())
			require.Equal(t, sh.p, res.Loadings.Rows())
			require.Equal(t, sh.n, res.Loadings.Cols())
			require.Len(t, res.Variances, sh.n)

			xc, _, err := matrix.CenterColumns(x)
			require.NoError(t, err)
			back := mustMul(t, res.Scores, mustT(t, res.Loadings))
			requireClose(t, back, xc, 1e-8)

			ident, err := matrix.NewIdentity(sh.n)
			require.NoError(t, err)
			requireClose(t, mustMul(t, mustT(t, res.Scores), res.Scores), ident, 1e-9)

			for j := 1; j < len(res.Variances); j++ {
				require.GreaterOrEqual(t, res.Variances[j-1]+1e-9, res.Variances[j], "%s: variances must not increase", pr.name)
			}
		}
	}
}

func TestProviders_AgreeOnLeadingComponents(t *testing.T) {
	t.Parallel()

	x := randomDense(t, 7, 6, 9)
	a, err := pca.SVD{}.Decompose(x)
	require.NoError(t, err)
	b, err := pca.Jacobi{}.Decompose(x)
	require.NoError(t, err)

	// Rank of a centered 6×9 matrix is 5.
	la, err := a.Scores.LeadingCols(5)
	require.NoError(t, err)
	lb, err := b.Scores.LeadingCols(5)
	require.NoError(t, err)
	requireClose(t, la, lb, 1e-7)

	for j := 0; j < 5; j++ {
		require.InDelta(t, a.Variances[j], b.Variances[j], 1e-7*(1+a.Variances[j]))
	}
}

func TestProviders_Deterministic(t *testing.T) {
	t.Parallel()

	x := randomDense(t, 3, 5, 8)
	for _, pr := range providers {
		r1, err := pr.p.Decompose(x)
		require.NoError(t, err)
		r2, err := pr.p.Decompose(x)
		require.NoError(t, err)
		require.Equal(t, r1.Scores.RawData(), r2.Scores.RawData(), pr.name)
		require.Equal(t, r1.Loadings.RawData(), r2.Loadings.RawData(), pr.name)
	}
}

func TestProviders_SignConvention(t *testing.T) {
	t.Parallel()

	x := randomDense(t, 11, 5, 5)
	for _, pr := range providers {
		res, err := pr.p.Decompose(x)
		require.NoError(t, err)
		for j := 0; j < res.Scores.Cols(); j++ {
			best, bestAbs := 0.0, -1.0
			for i := 0; i < res.Scores.Rows(); i++ {
				v, _ := res.Scores.At(i, j)
				if v*v > bestAbs {
					best, bestAbs = v, v*v
				}
			}
			require.GreaterOrEqual(t, best, 0.0, "%s column %d", pr.name, j)
		}
	}
}

func TestProviders_NilInput(t *testing.T) {
	t.Parallel()

	for _, pr := range providers {
		_, err := pr.p.Decompose(nil)
		require.ErrorIs(t, err, matrix.ErrNilMatrix, pr.name)
	}
}

func TestByName(t *testing.T) {
	t.Parallel()

	p, err := pca.ByName("SVD")
	require.NoError(t, err)
	require.IsType(t, pca.SVD{}, p)

	p, err = pca.ByName(" jacobi ")
	require.NoError(t, err)
	require.IsType(t, pca.Jacobi{}, p)

	_, err = pca.ByName("nipals")
	require.ErrorIs(t, err, pca.ErrUnknownProvider)
}
