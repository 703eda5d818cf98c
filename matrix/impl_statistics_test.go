// SPDX-License-Identifier: MIT

package matrix_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/refactor/matrix"
	"github.com/stretchr/testify/require"
)

const epsTight = 1e-12

// ------------------------------
// CenterColumns
// ------------------------------

func TestCenterColumns_SmallAndFallback(t *testing.T) {
	t.Parallel()

	X := NewFilledDense(t, 2, 3, []float64{1, 2, 3, 10, 20, 30})

	Yf, meansF, err := matrix.CenterColumns(X)
	require.NoError(t, err)
	Ys, meansS, err := matrix.CenterColumns(hide{X})
	require.NoError(t, err)

	want := []float64{5.5, 11, 16.5}
	sliceClose(t, meansF, want, 0, 0)
	sliceClose(t, meansS, want, 0, 0)
	CompareClose(t, Yf, Ys, 0, 0)

	var sum float64
	for j := 0; j < 3; j++ {
		sum = MustAt(t, Yf, 0, j) + MustAt(t, Yf, 1, j)
		if math.Abs(sum) > epsTight {
			t.Fatalf("col %d not centered: sum=%g", j, sum)
		}
	}
}

func TestCenterColumns_ConstantColumnsAreExactZeros(t *testing.T) {
	t.Parallel()

	// 0.1 summed over 7 rows and scaled by 1/7 does not round-trip to 0.1.
	const r = 7
	vals := make([]float64, 0, r*3)
	for i := 0; i < r; i++ {
		vals = append(vals, 0.1, 1+float64(i)*1e-12, float64(i))
	}
	X := NewFilledDense(t, r, 3, vals)

	for _, m := range []matrix.Matrix{X, hide{X}} {
		Xc, _, err := matrix.CenterColumns(m)
		require.NoError(t, err)
		for i := 0; i < r; i++ {
			require.Equal(t, 0.0, MustAt(t, Xc, i, 0), "row %d", i)
			require.Equal(t, 0.0, MustAt(t, Xc, i, 1), "row %d", i)
		}
		require.NotEqual(t, 0.0, MustAt(t, Xc, 0, 2))
	}

	// eps = 0 keeps the 1e-12 spread of column 1 but still zeroes the exact constant.
	Xc, _, err := matrix.CenterColumns(X, matrix.WithEpsilon(0))
	require.NoError(t, err)
	require.Equal(t, 0.0, MustAt(t, Xc, 3, 0))
	require.NotEqual(t, 0.0, MustAt(t, Xc, 0, 1))

	// The unit-norm step then sees a true zero column.
	Xc, _, err = matrix.CenterColumns(X)
	require.NoError(t, err)
	Y, norms, err := matrix.NormalizeColumnsL2(Xc, matrix.WithZeroNormPolicy(matrix.ZeroNormNaN))
	require.NoError(t, err)
	require.Equal(t, 0.0, norms[0])
	require.True(t, math.IsNaN(MustAt(t, Y, 0, 0)))
}

func TestCenterColumns_Nil(t *testing.T) {
	t.Parallel()

	_, _, err := matrix.CenterColumns(nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}

// ------------------------------
// NormalizeColumnsL2
// ------------------------------

func TestNormalizeColumnsL2_UnitColumns(t *testing.T) {
	t.Parallel()

	X := NewFilledDense(t, 2, 2, []float64{3, 1, 4, 0})
	Y, norms, err := matrix.NormalizeColumnsL2(X)
	require.NoError(t, err)
	sliceClose(t, norms, []float64{5, 1}, 0, epsTight)
	CompareClose(t, Y, NewFilledDense(t, 2, 2, []float64{0.6, 1, 0.8, 0}), 0, epsTight)

	Ys, _, err := matrix.NormalizeColumnsL2(hide{X})
	require.NoError(t, err)
	CompareClose(t, Y, Ys, 0, 0)
}

func TestNormalizeColumnsL2_ZeroNormKeep(t *testing.T) {
	t.Parallel()

	X := NewFilledDense(t, 2, 2, []float64{0, 1, 0, 1})
	Y, norms, err := matrix.NormalizeColumnsL2(X)
	require.NoError(t, err)
	require.Equal(t, 0.0, norms[0])
	require.Equal(t, 0.0, MustAt(t, Y, 0, 0))
	require.Equal(t, 0.0, MustAt(t, Y, 1, 0))
}

func TestNormalizeColumnsL2_ZeroNormNaN(t *testing.T) {
	t.Parallel()

	X := NewFilledDense(t, 2, 2, []float64{0, 1, 0, 1})
	Y, _, err := matrix.NormalizeColumnsL2(X, matrix.WithZeroNormPolicy(matrix.ZeroNormNaN))
	require.NoError(t, err)
	require.True(t, math.IsNaN(MustAt(t, Y, 0, 0)))
	require.True(t, math.IsNaN(MustAt(t, Y, 1, 0)))
	require.InDelta(t, 1/math.Sqrt2, MustAt(t, Y, 0, 1), epsTight)
}

// ------------------------------
// ColumnDistances
// ------------------------------

func TestColumnDistances(t *testing.T) {
	t.Parallel()

	A := NewFilledDense(t, 2, 2, []float64{0, 1, 0, 1})
	B := NewFilledDense(t, 2, 2, []float64{3, 1, 4, 1})

	d, err := matrix.ColumnDistances(A, B)
	require.NoError(t, err)
	sliceClose(t, d, []float64{5, 0}, 0, epsTight)

	ds, err := matrix.ColumnDistances(hide{A}, hide{B})
	require.NoError(t, err)
	sliceClose(t, ds, d, 0, 0)

	_, err = matrix.ColumnDistances(A, MustDense(t, 3, 2))
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
}
