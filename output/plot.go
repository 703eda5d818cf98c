// SPDX-License-Identifier: MIT

package output

import (
	"bytes"
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/katalvlaran/refactor/matrix"
)

// ErrPlotFormat is returned for a plot path whose extension gonum/plot cannot render.
var ErrPlotFormat = errors.New("output: unsupported plot format")

const plotSide = 5 * vg.Inch

var plotFormats = map[string]bool{
	"eps": true, "jpg": true, "jpeg": true, "pdf": true,
	"png": true, "svg": true, "tif": true, "tiff": true,
}

// RenderPlot draws the first two components as a scatter (PC1 vs PC2), one
// labelled point per sample, in the format named by the extension of path.
//
// Errors:
//   - ErrPlotFormat for an unknown extension.
//   - matrix.ErrDimensionMismatch when there are fewer than two components
//     or the label count differs from the sample count.
func RenderPlot(components *matrix.Dense, labels []string, path string) ([]byte, error) {
	format := strings.TrimPrefix(strings.ToLower(filepath.Ext(path)), ".")
	if !plotFormats[format] {
		return nil, fmt.Errorf("output.RenderPlot: %q: %w", path, ErrPlotFormat)
	}
	if err := matrix.ValidateNotNil(components); err != nil {
		return nil, fmt.Errorf("output.RenderPlot: %w", err)
	}
	n, c := components.Shape()
	if c < 2 || len(labels) != n {
		return nil, fmt.Errorf("output.RenderPlot: %d×%d components, %d labels: %w", n, c, len(labels), matrix.ErrDimensionMismatch)
	}

	pts := make(plotter.XYs, n)
	for i := range pts {
		pts[i].X, _ = components.At(i, 0)
		pts[i].Y, _ = components.At(i, 1)
	}

	p := plot.New()
	p.Title.Text = "ReFACTor components"
	p.X.Label.Text = "PC1"
	p.Y.Label.Text = "PC2"
	p.Add(plotter.NewGrid())

	sc, err := plotter.NewScatter(pts)
	if err != nil {
		return nil, fmt.Errorf("output.RenderPlot: %w", err)
	}
	p.Add(sc)

	lbl, err := plotter.NewLabels(plotter.XYLabels{XYs: pts, Labels: labels})
	if err != nil {
		return nil, fmt.Errorf("output.RenderPlot: %w", err)
	}
	p.Add(lbl)

	wt, err := p.WriterTo(plotSide, plotSide, format)
	if err != nil {
		return nil, fmt.Errorf("output.RenderPlot: %w", err)
	}
	var buf bytes.Buffer
	if _, err = wt.WriteTo(&buf); err != nil {
		return nil, fmt.Errorf("output.RenderPlot: %w", err)
	}

	return buf.Bytes(), nil
}
