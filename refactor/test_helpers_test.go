// SPDX-License-Identifier: MIT

package refactor_test

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/refactor/matrix"
	"github.com/katalvlaran/refactor/methylation"
)

// randomData builds a deterministic sites × samples Data with values in [0, 1).
func randomData(t *testing.T, seed int64, sites, samples int) *methylation.Data {
	t.Helper()
	rng := rand.New(rand.NewSource(seed))
	buf := make([]float64, sites*samples)
	for i := range buf {
		buf[i] = rng.Float64()
	}
	m, err := matrix.NewDenseFrom(sites, samples, buf)
	require.NoError(t, err)
	names := make([]string, sites)
	for i := range names {
		names[i] = fmt.Sprintf("cg%04d", i)
	}
	d, err := methylation.New(m, names, nil)
	require.NoError(t, err)

	return d
}

// scenarioData is the 4-site × 3-sample matrix used by the end-to-end checks.
func scenarioData(t *testing.T) *methylation.Data {
	t.Helper()
	m, err := matrix.NewDenseFrom(4, 3, []float64{
		0.1, 0.4, 0.35,
		0.8, 0.2, 0.5,
		0.3, 0.3, 0.9,
		0.6, 0.7, 0.1,
	})
	require.NoError(t, err)
	d, err := methylation.New(m, []string{"cg1", "cg2", "cg3", "cg4"}, []string{"a", "b", "c"})
	require.NoError(t, err)

	return d
}

func mustTranspose(t *testing.T, m matrix.Matrix) *matrix.Dense {
	t.Helper()
	out, err := matrix.Transpose(m)
	require.NoError(t, err)

	return out.(*matrix.Dense)
}

func requireAllClose(t *testing.T, got, want matrix.Matrix, atol float64) {
	t.Helper()
	ok, err := matrix.AllClose(got, want, 0, atol)
	require.NoError(t, err)
	require.True(t, ok, "got\n%v\nwant\n%v", got, want)
}

func requirePermutation(t *testing.T, perm []int, n int) {
	t.Helper()
	require.Len(t, perm, n)
	seen := make([]bool, n)
	for _, v := range perm {
		require.True(t, v >= 0 && v < n, "index %d out of [0,%d)", v, n)
		require.False(t, seen[v], "duplicate index %d", v)
		seen[v] = true
	}
}
