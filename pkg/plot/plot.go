// Package plot renders the comparison report's numeric series as PNG line
// charts: absolute yearly cash flow per polymer, and yearly cash-flow delta
// against the baseline polymer. The core only exposes plain slices; all
// charting stays here.
package plot

import (
	"io"

	chart "github.com/wcharczuk/go-chart/v2"

	"polymer_economics/pkg/core/valuation"
)

// RenderCashflows draws one absolute cash-flow line per polymer.
func RenderCashflows(w io.Writer, report *valuation.ComparisonReport) error {
	series := make([]chart.Series, 0, len(report.Keys))
	for _, key := range report.Keys {
		res := report.Results[key]
		series = append(series, chart.ContinuousSeries{
			Name:    res.Name,
			XValues: yearAxis(len(res.Cashflows)),
			YValues: res.Cashflows,
			Style:   chart.Style{StrokeWidth: 2},
		})
	}

	graph := chart.Chart{
		Title:  "Cash flow by polymer (values after year 10 are more uncertain)",
		XAxis:  chart.XAxis{Name: "Year"},
		YAxis:  chart.YAxis{Name: "Cash flow, $"},
		Series: series,
	}
	graph.Elements = []chart.Renderable{chart.Legend(&graph)}
	return graph.Render(chart.PNG, w)
}

// RenderDeltas draws each polymer's yearly cash-flow difference against the
// baseline polymer. The baseline's own series is the zero line.
func RenderDeltas(w io.Writer, report *valuation.ComparisonReport, baselineKey string) error {
	deltas, err := report.Deltas(baselineKey)
	if err != nil {
		return err
	}

	series := make([]chart.Series, 0, len(report.Keys))
	for _, key := range report.Keys {
		res := report.Results[key]
		series = append(series, chart.ContinuousSeries{
			Name:    res.Name,
			XValues: yearAxis(len(deltas[key])),
			YValues: deltas[key],
			Style:   chart.Style{StrokeWidth: 2},
		})
	}

	graph := chart.Chart{
		Title:  "Cash flow delta vs baseline (values after year 10 are more uncertain)",
		XAxis:  chart.XAxis{Name: "Year"},
		YAxis:  chart.YAxis{Name: "Cash flow difference, $"},
		Series: series,
	}
	graph.Elements = []chart.Renderable{chart.Legend(&graph)}
	return graph.Render(chart.PNG, w)
}

func yearAxis(n int) []float64 {
	xs := make([]float64, n)
	for i := range xs {
		xs[i] = float64(i + 1)
	}
	return xs
}
