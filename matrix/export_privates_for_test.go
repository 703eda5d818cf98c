// SPDX-License-Identifier: MIT

package matrix

// Test-Bridge (White-Box) for Private Kernels and Options Snapshot
//
// Purpose:
//   - Expose UNEXPORTED ew* micro-kernels and the options snapshot to matrix_test ONLY.
//   - Enable white-box verification of fast-path (*Dense) vs generic fallback, without widening the prod API.
//
// Build Policy:
//   - The _test.go suffix keeps this file out of production builds.
//
// AI-Hints:
//   - Keep ALL test-only bridges co-located here.
//   - If a private helper changes signature, mirror the change here once, not across many tests.

// ExportedNewDenseWithPolicy exposes newDenseWithPolicy for white-box tests.
var ExportedNewDenseWithPolicy = newDenseWithPolicy

// Panic message exports to avoid "magic strings" in tests.
const (
	PanicEpsilonInvalid_TestOnly  = panicEpsilonInvalid
	PanicZeroNormInvalid_TestOnly = panicZeroNormInvalid
)

// --- ew* micro-kernel bridges -------------------------------------------------

// EwBroadcastSubCols_TestOnly forwards to the private ewBroadcastSubCols kernel.
func EwBroadcastSubCols_TestOnly(X Matrix, colMeans []float64) (Matrix, error) {
	return ewBroadcastSubCols(X, colMeans)
}

// EwScaleCols_TestOnly forwards to ewScaleCols with the given NaN/Inf policy.
func EwScaleCols_TestOnly(X Matrix, scale []float64, validateNaNInf bool) (Matrix, error) {
	return ewScaleCols(X, scale, validateNaNInf)
}

// EwAllClose_TestOnly forwards to ewAllClose.
func EwAllClose_TestOnly(a, b Matrix, rtol, atol float64) (bool, error) {
	return ewAllClose(a, b, rtol, atol)
}

// --- options snapshot bridge --------------------------------------------------

// OptionsSnapshot is a stable, test-facing copy of internal Options fields.
type OptionsSnapshot struct {
	Eps            float64
	ValidateNaNInf bool
	ZeroNorm       ZeroNormPolicy
}

// GatherOptionsSnapshot_TestOnly returns a snapshot after internal derivation.
func GatherOptionsSnapshot_TestOnly(opts ...Option) OptionsSnapshot {
	o := gatherOptions(opts...)

	return OptionsSnapshot{
		Eps:            o.eps,
		ValidateNaNInf: o.validateNaNInf,
		ZeroNorm:       o.zeroNorm,
	}
}
