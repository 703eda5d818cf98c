// SPDX-License-Identifier: MIT

package output

import (
	"bytes"
	"fmt"
	"strconv"

	"github.com/katalvlaran/refactor/matrix"
	"github.com/katalvlaran/refactor/methylation"
)

// RenderRanked formats the ranked list: one line per site in ranked order,
// "<1-based position>\t<site name>\n".
//
// Errors:
//   - matrix.ErrOutOfRange for an index outside [0, len(names)).
func RenderRanked(names []string, ranked []int) ([]byte, error) {
	var buf bytes.Buffer
	for pos, idx := range ranked {
		if idx < 0 || idx >= len(names) {
			return nil, fmt.Errorf("output.RenderRanked: position %d: site %d: %w", pos+1, idx, matrix.ErrOutOfRange)
		}
		buf.WriteString(strconv.Itoa(pos + 1))
		buf.WriteByte('\t')
		buf.WriteString(names[idx])
		buf.WriteByte('\n')
	}

	return buf.Bytes(), nil
}

// RenderComponents formats a samples × components matrix: one line per
// sample, tab-separated values in shortest round-trip form.
//
// Errors:
//   - matrix.ErrNilMatrix.
func RenderComponents(m *matrix.Dense) ([]byte, error) {
	if err := matrix.ValidateNotNil(m); err != nil {
		return nil, fmt.Errorf("output.RenderComponents: %w", err)
	}
	var buf bytes.Buffer
	r, _ := m.Shape()
	for i := 0; i < r; i++ {
		row, err := m.Row(i)
		if err != nil {
			return nil, fmt.Errorf("output.RenderComponents: %w", err)
		}
		for j, v := range row {
			if j > 0 {
				buf.WriteByte('\t')
			}
			buf.WriteString(strconv.FormatFloat(v, 'g', -1, 64))
		}
		buf.WriteByte('\n')
	}

	return buf.Bytes(), nil
}

// renderAll renders every artifact selected by cfg; nothing is written here.
func renderAll(cfg Files, data *methylation.Data, components *matrix.Dense, ranked []int) (rankedOut, compOut, plotOut []byte, err error) {
	if rankedOut, err = RenderRanked(data.CpGNames, ranked); err != nil {
		return nil, nil, nil, err
	}
	if compOut, err = RenderComponents(components); err != nil {
		return nil, nil, nil, err
	}
	if cfg.PlotPath != "" {
		if plotOut, err = RenderPlot(components, data.SampleIDs, cfg.PlotPath); err != nil {
			return nil, nil, nil, err
		}
	}

	return rankedOut, compOut, plotOut, nil
}
