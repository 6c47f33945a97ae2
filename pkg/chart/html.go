package chart

import (
	"fmt"
	"io"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"
	"github.com/go-echarts/go-echarts/v2/types"

	"github.com/rclab/rclab/pkg/circuit"
)

// PageTitle is the browser/page heading of the interactive view.
const PageTitle = "Interactive RC Circuit Visualizer"

// tauLabel is the annotation text on the dashed τ marker.
const tauLabel = "t = τ"

// timeTick formats one time sample for the (category) x axis.
func timeTick(ms float64) string {
	return fmt.Sprintf("%.2f", ms)
}

// nearestTick returns the x-axis label closest to tauMs. The τ marker
// must land on an existing category, so it snaps to the nearest sample;
// with 500 samples per window the snap error stays below 0.1% of the
// window.
func nearestTick(w *circuit.Waveform) string {
	best := 0
	for i, t := range w.TimeMs {
		if t <= w.TauMs {
			best = i
		} else {
			break
		}
	}
	if best+1 < len(w.TimeMs) && w.TimeMs[best+1]-w.TauMs < w.TauMs-w.TimeMs[best] {
		best++
	}
	return timeTick(w.TimeMs[best])
}

func newLine(s Series, w *circuit.Waveform, xs []string) *charts.Line {
	info := s.info()

	subtitle := info.subtitle
	if s == SeriesVoltage {
		// The first chart doubles as the info panel.
		subtitle = w.Summary + "\n" + w.ModeLabel
	}

	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{
			Theme:     types.ThemeWesteros,
			PageTitle: PageTitle,
		}),
		charts.WithTitleOpts(opts.Title{
			Title:    info.title,
			Subtitle: subtitle,
		}),
		charts.WithTooltipOpts(opts.Tooltip{
			Show:    opts.Bool(true),
			Trigger: "axis",
		}),
		charts.WithXAxisOpts(opts.XAxis{
			Name: "t / ms",
		}),
		charts.WithYAxisOpts(opts.YAxis{
			Name:  info.yName,
			Scale: opts.Bool(true),
		}),
		charts.WithDataZoomOpts(opts.DataZoom{
			Type:       "inside",
			Start:      0,
			End:        100,
			XAxisIndex: []int{0},
		}),
	)

	data := info.data(w)
	items := make([]opts.LineData, len(data))
	for i, v := range data {
		items[i] = opts.LineData{Value: v}
	}

	line.SetXAxis(xs).AddSeries(info.title, items,
		charts.WithMarkLineNameXAxisItemOpts(opts.MarkLineNameXAxisItem{
			Name:  tauLabel,
			XAxis: nearestTick(w),
		}),
		charts.WithMarkLineStyleOpts(opts.MarkLineStyle{
			Symbol: []string{"none", "none"},
			Label: &opts.Label{
				Show:      opts.Bool(true),
				Formatter: tauLabel,
			},
			LineStyle: &opts.LineStyle{
				Type: "dashed",
			},
		}),
	)

	return line
}

// RenderPage writes the interactive chart page for w: the three line
// charts stacked on one HTML page, each with a dashed marker at t = τ.
func RenderPage(w *circuit.Waveform, out io.Writer) error {
	xs := make([]string, len(w.TimeMs))
	for i, t := range w.TimeMs {
		xs[i] = timeTick(t)
	}

	page := components.NewPage()
	page.PageTitle = PageTitle
	for _, s := range AllSeries() {
		page.AddCharts(newLine(s, w, xs))
	}

	return page.Render(out)
}
