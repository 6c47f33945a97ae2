package chart

import (
	"path/filepath"
	"strings"

	pkgerrors "github.com/pkg/errors"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/rclab/rclab/pkg/circuit"
)

// Image formats supported by ExportImages. gonum/plot picks the writer
// from the file extension, so the format doubles as the extension.
const (
	FormatSVG = "svg"
	FormatPNG = "png"
	FormatPDF = "pdf"
)

// ValidFormat reports whether format names a supported image format.
func ValidFormat(format string) bool {
	switch strings.ToLower(format) {
	case FormatSVG, FormatPNG, FormatPDF:
		return true
	}
	return false
}

// ExportImages writes one static chart per quantity into dir, named
// voltage.<format> etc., and returns the written paths. Each chart gets
// the same dashed τ rule as the interactive page.
func ExportImages(w *circuit.Waveform, dir, format string) ([]string, error) {
	format = strings.ToLower(format)
	if !ValidFormat(format) {
		return nil, pkgerrors.Errorf("unsupported image format %q (want %s, %s or %s)",
			format, FormatSVG, FormatPNG, FormatPDF)
	}

	var paths []string
	for _, s := range AllSeries() {
		path := filepath.Join(dir, string(s)+"."+format)
		if err := exportImage(s, w, path); err != nil {
			return nil, pkgerrors.Wrapf(err, "failed to export %s chart", s)
		}
		paths = append(paths, path)
	}

	return paths, nil
}

func exportImage(s Series, w *circuit.Waveform, path string) error {
	info := s.info()
	data := info.data(w)

	xys := make(plotter.XYs, len(data))
	for i, v := range data {
		xys[i].X = w.TimeMs[i]
		xys[i].Y = v
	}

	p := plot.New()
	p.Title.Text = info.title
	p.X.Label.Text = "t / ms"
	p.Y.Label.Text = info.yName

	line, err := plotter.NewLine(xys)
	if err != nil {
		return err
	}

	lo, hi := data[0], data[0]
	for _, v := range data {
		if v < lo {
			lo = v
		}
		if v > hi {
			hi = v
		}
	}

	// Dashed vertical rule at t = τ, annotated like the HTML page.
	rule, err := plotter.NewLine(plotter.XYs{
		{X: w.TauMs, Y: lo},
		{X: w.TauMs, Y: hi},
	})
	if err != nil {
		return err
	}
	rule.LineStyle.Dashes = []vg.Length{vg.Points(4), vg.Points(4)}

	labels, err := plotter.NewLabels(plotter.XYLabels{
		XYs:    []plotter.XY{{X: w.TauMs, Y: hi}},
		Labels: []string{tauLabel},
	})
	if err != nil {
		return err
	}

	p.Add(plotter.NewGrid(), line, rule, labels)

	return p.Save(6*vg.Inch, 4*vg.Inch, path)
}
