// SPDX-License-Identifier: MIT
// Package methylation - the sites × samples container consumed by the pipeline.
//
// Purpose:
//   - Hold the raw matrix together with the site (CpG) names and sample IDs.
//   - Enforce the shape invariants once, at construction.
//   - Fingerprint the content so runs on identical input can be matched.

package methylation

import (
	"encoding/binary"
	"fmt"
	"math"

	"github.com/cespare/xxhash/v2"

	"github.com/katalvlaran/refactor/matrix"
)

// Data is a sites × samples methylation matrix. It is never mutated by the
// pipeline; treat it as read-only after New.
type Data struct {
	// Samples is the number of columns of Values.
	Samples int

	// Sites is the number of rows of Values.
	Sites int

	// Values holds one row per site and one column per sample.
	Values *matrix.Dense

	// CpGNames names every site; len(CpGNames) == Sites.
	CpGNames []string

	// SampleIDs names every sample; len(SampleIDs) == Samples.
	SampleIDs []string
}

// New validates the shape invariants and returns a Data that shares values
// but owns copies of the name slices. A nil sampleIDs is replaced by
// "sample1".."sampleN".
//
// Errors:
//   - ErrNilData for a nil values matrix.
//   - ErrInputShape when a name slice length disagrees with the matrix shape.
func New(values *matrix.Dense, cpgNames, sampleIDs []string) (*Data, error) {
	if values == nil {
		return nil, fmt.Errorf("methylation.New: %w", ErrNilData)
	}
	sites, samples := values.Shape()
	if len(cpgNames) != sites {
		return nil, fmt.Errorf("methylation.New: %d site names for %d rows: %w", len(cpgNames), sites, ErrInputShape)
	}
	if sampleIDs == nil {
		sampleIDs = make([]string, samples)
		for j := range sampleIDs {
			sampleIDs[j] = fmt.Sprintf("sample%d", j+1)
		}
	}
	if len(sampleIDs) != samples {
		return nil, fmt.Errorf("methylation.New: %d sample IDs for %d columns: %w", len(sampleIDs), samples, ErrInputShape)
	}

	return &Data{
		Samples:   samples,
		Sites:     sites,
		Values:    values,
		CpGNames:  append([]string(nil), cpgNames...),
		SampleIDs: append([]string(nil), sampleIDs...),
	}, nil
}

// Validate re-checks the invariants New establishes. It exists for callers
// that build a Data literal by hand.
func (d *Data) Validate() error {
	if d == nil || d.Values == nil {
		return fmt.Errorf("methylation.Validate: %w", ErrNilData)
	}
	r, c := d.Values.Shape()
	switch {
	case r != d.Sites || c != d.Samples:
		return fmt.Errorf("methylation.Validate: values are %d×%d, want %d×%d: %w", r, c, d.Sites, d.Samples, ErrInputShape)
	case len(d.CpGNames) != d.Sites:
		return fmt.Errorf("methylation.Validate: %d site names for %d sites: %w", len(d.CpGNames), d.Sites, ErrInputShape)
	}

	return nil
}

// Digest returns the xxHash64 fingerprint of the shape, the site names and
// the IEEE-754 bits of every value in row-major order. Sample IDs are not
// part of the digest; relabelling samples does not change the computation.
//
// Complexity: O(sites*samples).
func (d *Data) Digest() uint64 {
	h := xxhash.New()
	var buf [8]byte

	binary.LittleEndian.PutUint64(buf[:], uint64(d.Sites))
	_, _ = h.Write(buf[:])
	binary.LittleEndian.PutUint64(buf[:], uint64(d.Samples))
	_, _ = h.Write(buf[:])
	for _, name := range d.CpGNames {
		_, _ = h.WriteString(name)
		_, _ = h.Write([]byte{0})
	}
	if d.Values != nil {
		d.Values.Do(func(_, _ int, v float64) bool {
			binary.LittleEndian.PutUint64(buf[:], math.Float64bits(v))
			_, _ = h.Write(buf[:])
			return true
		})
	}

	return h.Sum64()
}
