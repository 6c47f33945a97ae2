// Package chart renders sampled waveforms as interactive HTML pages
// (go-echarts) and static image files (gonum/plot). Construction is
// pure: a Waveform goes in, markup or a file comes out.
package chart

import (
	"fmt"
	"strings"

	"github.com/rclab/rclab/pkg/circuit"
)

// Series identifies one plotted quantity of a waveform.
type Series string

const (
	SeriesVoltage Series = "voltage"
	SeriesCharge  Series = "charge"
	SeriesCurrent Series = "current"
)

// AllSeries lists the plotted quantities in page order.
func AllSeries() []Series {
	return []Series{SeriesVoltage, SeriesCharge, SeriesCurrent}
}

// ParseSeries converts user input to a Series, case-insensitively.
func ParseSeries(s string) (Series, error) {
	switch Series(strings.ToLower(strings.TrimSpace(s))) {
	case SeriesVoltage:
		return SeriesVoltage, nil
	case SeriesCharge:
		return SeriesCharge, nil
	case SeriesCurrent:
		return SeriesCurrent, nil
	default:
		return "", fmt.Errorf("series must be %q, %q or %q, got %q",
			SeriesVoltage, SeriesCharge, SeriesCurrent, s)
	}
}

type seriesInfo struct {
	title    string
	subtitle string
	yName    string
	data     func(w *circuit.Waveform) []float64
}

func (s Series) info() seriesInfo {
	switch s {
	case SeriesCharge:
		return seriesInfo{
			title:    "Capacitor charge",
			subtitle: "Q(t) on the capacitor plates",
			yName:    "Q / mC",
			data:     func(w *circuit.Waveform) []float64 { return w.ChargeMC },
		}
	case SeriesCurrent:
		return seriesInfo{
			title:    "Circuit current",
			subtitle: "I(t); the sign encodes the current direction",
			yName:    "I / mA",
			data:     func(w *circuit.Waveform) []float64 { return w.CurrentMA },
		}
	default:
		return seriesInfo{
			title:    "Capacitor voltage",
			subtitle: "U_C(t) across the capacitor",
			yName:    "U_C / V",
			data:     func(w *circuit.Waveform) []float64 { return w.VoltageVolts },
		}
	}
}
