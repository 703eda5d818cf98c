// SPDX-License-Identifier: MIT

package refactor_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/refactor/refactor"
)

func TestNewParams(t *testing.T) {
	t.Parallel()

	const samples, sites = 10, 100
	cases := []struct {
		name            string
		k, tt, nc       int
		want            refactor.Params
		wantParam       string
		wantMin, wantMx int
	}{
		{name: "minimal", k: 2, tt: 2, nc: 0, want: refactor.Params{K: 2, T: 2, NumComponents: 2}},
		{name: "upper edges", k: 10, tt: 100, nc: 10, want: refactor.Params{K: 10, T: 100, NumComponents: 10}},
		{name: "explicit components", k: 3, tt: 50, nc: 7, want: refactor.Params{K: 3, T: 50, NumComponents: 7}},
		{name: "k below 2", k: 1, tt: 50, wantParam: refactor.ParamK, wantMin: 2, wantMx: samples},
		{name: "k above samples", k: 11, tt: 50, wantParam: refactor.ParamK, wantMin: 2, wantMx: samples},
		{name: "t below k", k: 5, tt: 4, wantParam: refactor.ParamT, wantMin: 5, wantMx: sites},
		{name: "t above sites", k: 5, tt: 101, wantParam: refactor.ParamT, wantMin: 5, wantMx: sites},
		{name: "components below k", k: 5, tt: 50, nc: 4, wantParam: refactor.ParamNumComponents, wantMin: 5, wantMx: samples},
		{name: "components above samples", k: 5, tt: 50, nc: 11, wantParam: refactor.ParamNumComponents, wantMin: 5, wantMx: samples},
		{name: "negative components", k: 5, tt: 50, nc: -1, wantParam: refactor.ParamNumComponents, wantMin: 5, wantMx: samples},
	}
	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			p, err := refactor.NewParams(samples, sites, tc.k, tc.tt, tc.nc)
			if tc.wantParam == "" {
				require.NoError(t, err)
				require.Equal(t, tc.want, p)
				return
			}
			require.ErrorIs(t, err, refactor.ErrInvalidParameter)
			var ve *refactor.ValidationError
			require.True(t, errors.As(err, &ve))
			require.Equal(t, tc.wantParam, ve.Param)
			require.Equal(t, tc.wantMin, ve.Min)
			require.Equal(t, tc.wantMx, ve.Max)
			require.Contains(t, err.Error(), tc.wantParam)
			require.Equal(t, refactor.Params{}, p)
		})
	}
}

func TestNewParams_DefaultT(t *testing.T) {
	t.Parallel()

	_, err := refactor.NewParams(20, 499, 5, refactor.DefaultT, 0)
	require.ErrorIs(t, err, refactor.ErrInvalidParameter)

	p, err := refactor.NewParams(20, 500, 5, refactor.DefaultT, 0)
	require.NoError(t, err)
	require.Equal(t, 500, p.T)
}

func TestValidationError_NoAdmissibleValue(t *testing.T) {
	t.Parallel()

	// One sample: no k satisfies 2 ≤ k ≤ 1.
	_, err := refactor.NewParams(1, 10, 2, 5, 0)
	require.ErrorIs(t, err, refactor.ErrInvalidParameter)
	require.Contains(t, err.Error(), "no admissible value")
}
