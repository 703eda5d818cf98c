// SPDX-License-Identifier: MIT

package refactor

import (
	"github.com/katalvlaran/refactor/matrix"
	"github.com/katalvlaran/refactor/pca"
)

// DefaultZeroNormPolicy turns a constant site into NaN during normalization,
// so its distance is NaN and it ranks after every informative site.
const DefaultZeroNormPolicy = matrix.ZeroNormNaN

const (
	panicNilProvider  = "refactor: WithProvider: nil provider"
	panicNilReporter  = "refactor: WithReporter: nil reporter"
	panicUnknownNorms = "refactor: WithZeroNormPolicy: unknown policy"
)

// Option configures Run. Constructors panic only on nonsensical values.
type Option func(*options)

type options struct {
	provider pca.Provider
	zeroNorm matrix.ZeroNormPolicy
	reporter Reporter
}

// WithProvider selects the PCA backend for both passes (default pca.SVD{}).
func WithProvider(p pca.Provider) Option {
	if p == nil {
		panic(panicNilProvider)
	}

	return func(o *options) { o.provider = p }
}

// WithZeroNormPolicy selects how a constant site is normalized before ranking.
func WithZeroNormPolicy(p matrix.ZeroNormPolicy) Option {
	if !validPolicy(p) {
		panic(panicUnknownNorms)
	}

	return func(o *options) { o.zeroNorm = p }
}

// WithReporter receives the progress lines of a run (default: discarded).
func WithReporter(r Reporter) Option {
	if r == nil {
		panic(panicNilReporter)
	}

	return func(o *options) { o.reporter = r }
}

func gatherOptions(user ...Option) options {
	o := options{
		provider: pca.SVD{},
		zeroNorm: DefaultZeroNormPolicy,
		reporter: nopReporter{},
	}
	for _, fn := range user {
		if fn != nil {
			fn(&o)
		}
	}

	return o
}

func validPolicy(p matrix.ZeroNormPolicy) bool {
	return p == matrix.ZeroNormKeep || p == matrix.ZeroNormNaN
}
