// SPDX-License-Identifier: MIT

package refactor

// DefaultT is the number of top-ranked sites used for the final components
// when the caller does not choose one.
const DefaultT = 500

// Parameter names as they appear in ValidationError.Param.
const (
	ParamK             = "k"
	ParamT             = "t"
	ParamNumComponents = "numComponents"
)

// Params is a validated parameter set. Build it with NewParams; the zero
// value is not valid.
type Params struct {
	// K is the number of structural components removed before ranking.
	K int

	// T is the number of lowest-distance sites kept for the final PCA.
	T int

	// NumComponents is the number of final components returned.
	NumComponents int
}

// NewParams validates k, t and numComponents against the data dimensions.
// numComponents == 0 means "unspecified" and resolves to k.
//
// Bounds (all inclusive):
//   - 2 ≤ k ≤ samples
//   - k ≤ t ≤ sites
//   - k ≤ numComponents ≤ samples
//
// Checks run in that order and the first violation is returned as a
// *ValidationError.
func NewParams(samples, sites, k, t, numComponents int) (Params, error) {
	if k < 2 || k > samples {
		return Params{}, &ValidationError{Param: ParamK, Value: k, Min: 2, Max: samples}
	}
	if t < k || t > sites {
		return Params{}, &ValidationError{Param: ParamT, Value: t, Min: k, Max: sites}
	}
	if numComponents == 0 {
		numComponents = k
	}
	if numComponents < k || numComponents > samples {
		return Params{}, &ValidationError{Param: ParamNumComponents, Value: numComponents, Min: k, Max: samples}
	}

	return Params{K: k, T: t, NumComponents: numComponents}, nil
}
