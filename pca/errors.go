// SPDX-License-Identifier: MIT

package pca

import (
	"errors"
	"fmt"
)

var (
	// ErrFactorization is returned when the SVD routine reports failure.
	ErrFactorization = errors.New("pca: factorization failed")

	// ErrUnknownProvider is returned by ByName for an unrecognised provider name.
	ErrUnknownProvider = errors.New("pca: unknown provider")
)

// pcaErrorf wraps err with a provider tag; never call it with a nil err.
func pcaErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
