// SPDX-License-Identifier: MIT

// Package matrix: functional configuration for the numeric policy. This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherOptions helper (internal) that enforces invariants.
//
// Design goals:
//   - Deterministic behavior: no global state, no implicit randomness.
//   - No dead switches: each flag impacts behavior and is covered by tests.
//   - Safe by construction: panic only on invalid parameters (programmer error).
//
// Notes:
//   - validateNaNInf controls whether Set()/ingestion rejects NaN/Inf at all.
//   - zeroNorm decides how NormalizeColumnsL2 treats an all-zero column; the
//     ZeroNormNaN mode implies a Dense built without the NaN/Inf guard.
package matrix

import "math"

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultEpsilon is the relative spread below which CenterColumns treats a
	// column as constant and writes exact zeros.
	DefaultEpsilon = 1e-9

	// DefaultValidateNaNInf toggles strict finite-value validation on ingestion and Set.
	DefaultValidateNaNInf = true

	// DefaultZeroNorm keeps degenerate columns unchanged during L2 normalization.
	DefaultZeroNorm = ZeroNormKeep

	// DefaultEigenTolerance is the off-diagonal threshold at which Jacobi stops.
	DefaultEigenTolerance = 1e-12

	// DefaultEigenMaxIter caps the number of Jacobi rotations.
	DefaultEigenMaxIter = 100000
)

// ---------- Internal panic messages (no magic strings) ----------

const (
	panicEpsilonInvalid  = "matrix: WithEpsilon: eps must be finite, non-negative"
	panicZeroNormInvalid = "matrix: WithZeroNormPolicy: unknown policy"
)

// ---------- Public option type (functional) ----------

// Option mutates internal options. Safe to apply repeatedly (idempotent).
// Constructors MUST panic only on nonsensical values (programmer error).
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
// Fields are unexported to prevent external mutation; public entry points
// accept `...Option` and resolve them via gatherOptions.
type Options struct {
	eps            float64        // >= 0; DefaultEpsilon
	validateNaNInf bool           // DefaultValidateNaNInf
	zeroNorm       ZeroNormPolicy // DefaultZeroNorm
}

// WithEpsilon sets the constant-column tolerance of CenterColumns.
// Panics if eps is NaN, ±Inf or negative.
func WithEpsilon(eps float64) Option {
	if math.IsNaN(eps) || math.IsInf(eps, 0) || eps < 0 {
		panic(panicEpsilonInvalid)
	}

	return func(o *Options) { o.eps = eps }
}

// WithValidateNaNInf turns the finite-value guard on.
func WithValidateNaNInf() Option {
	return func(o *Options) { o.validateNaNInf = true }
}

// WithNoValidateNaNInf turns the finite-value guard off, allowing NaN/Inf payloads.
func WithNoValidateNaNInf() Option {
	return func(o *Options) { o.validateNaNInf = false }
}

// WithZeroNormPolicy selects the degenerate-column behavior of NormalizeColumnsL2.
// Panics on a value outside the declared ZeroNormPolicy constants.
func WithZeroNormPolicy(p ZeroNormPolicy) Option {
	if p != ZeroNormKeep && p != ZeroNormNaN {
		panic(panicZeroNormInvalid)
	}

	return func(o *Options) { o.zeroNorm = p }
}

// NewMatrixOptions resolves the given options against the defaults.
// Exposed so callers (and tests) can inspect the effective policy.
func NewMatrixOptions(opts ...Option) Options { return gatherOptions(opts...) }

// Epsilon returns the effective constant-column tolerance.
func (o Options) Epsilon() float64 { return o.eps }

// ValidateNaNInf reports whether the finite-value guard is on.
func (o Options) ValidateNaNInf() bool { return o.validateNaNInf }

// ZeroNorm returns the effective degenerate-column policy.
func (o Options) ZeroNorm() ZeroNormPolicy { return o.zeroNorm }

func defaultOptions() Options {
	return Options{
		eps:            DefaultEpsilon,
		validateNaNInf: DefaultValidateNaNInf,
		zeroNorm:       DefaultZeroNorm,
	}
}

// gatherOptions applies user options in order over the defaults.
// Invariant: ZeroNormNaN produces NaN payloads, so it switches the guard off.
func gatherOptions(user ...Option) Options {
	o := defaultOptions()
	for _, fn := range user {
		if fn != nil {
			fn(&o)
		}
	}
	if o.zeroNorm == ZeroNormNaN {
		o.validateNaNInf = false
	}

	return o
}
