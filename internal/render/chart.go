// Package render turns a merged table into the two output artifacts: a
// PNG chart and a CSV extract.
package render

import (
	"bytes"
	"fmt"
	"time"

	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"github.com/msieczka/covidtoll/internal/merge"
)

// ChartOptions controls the rendered chart geometry.
type ChartOptions struct {
	Width  int
	Height int
}

var colorGrey = drawing.Color{R: 128, G: 128, B: 128, A: 255}

// Chart renders the target-year chart: the baseline min/mean/max of the
// lookback years as dotted lines, the target-year all-cause series
// solid, and the derived non-COVID series dashed. Returns the PNG bytes.
func Chart(res *merge.Result, opts ChartOptions) ([]byte, error) {
	rows := res.TargetRows()
	if len(rows) < 2 {
		return nil, fmt.Errorf("chart needs at least 2 rows for %s %d, have %d", res.Country, res.Year, len(rows))
	}

	baselineFrom, baselineTo := baselineSpan(res)

	dotted := []float64{2.0, 2.0}
	dashed := []float64{6.0, 4.0}
	series := []chart.Series{
		lineSeries(rows,
			fmt.Sprintf("lowest death count in %s from all causes", baselineLabel(baselineFrom, baselineTo)),
			chart.Style{StrokeColor: drawing.ColorBlue, StrokeDashArray: dotted},
			func(r *merge.Row) *float64 { return r.BaselineMin }),
		lineSeries(rows,
			fmt.Sprintf("average death count in %s from all causes", baselineLabel(baselineFrom, baselineTo)),
			chart.Style{StrokeColor: colorGrey, StrokeDashArray: dotted},
			func(r *merge.Row) *float64 { return r.BaselineMean }),
		lineSeries(rows,
			fmt.Sprintf("highest death count in %s from all causes", baselineLabel(baselineFrom, baselineTo)),
			chart.Style{StrokeColor: drawing.ColorRed, StrokeDashArray: dotted},
			func(r *merge.Row) *float64 { return r.BaselineMax }),
		lineSeries(rows,
			fmt.Sprintf("death count in %d from all causes", res.Year),
			chart.Style{StrokeColor: drawing.ColorBlack},
			func(r *merge.Row) *float64 { return r.AllCauseDeaths }),
		lineSeries(rows,
			fmt.Sprintf("death count in %d from all causes MINUS deaths attributed to COVID-19", res.Year),
			chart.Style{StrokeColor: drawing.ColorBlack, StrokeDashArray: dashed},
			func(r *merge.Row) *float64 { return r.NonCovidDeaths }),
	}

	// go-chart refuses series with fewer than 2 points.
	var drawable []chart.Series
	for _, s := range series {
		if ts, ok := s.(chart.TimeSeries); ok && len(ts.XValues) < 2 {
			continue
		}
		drawable = append(drawable, s)
	}

	graph := chart.Chart{
		Title:  fmt.Sprintf("%s, %d", res.Country, res.Year),
		Width:  opts.Width,
		Height: opts.Height,
		XAxis: chart.XAxis{
			Name:           "date",
			ValueFormatter: chart.TimeValueFormatterWithFormat("02.01"),
		},
		YAxis: chart.YAxis{
			Name: "number of deaths",
		},
		Series: drawable,
	}
	graph.Elements = []chart.Renderable{chart.Legend(&graph)}

	var buf bytes.Buffer
	if err := graph.Render(chart.PNG, &buf); err != nil {
		return nil, fmt.Errorf("render chart: %w", err)
	}
	return buf.Bytes(), nil
}

// lineSeries builds one time series from the rows where value is
// present, leaving gaps out entirely.
func lineSeries(rows []merge.Row, name string, style chart.Style, value func(*merge.Row) *float64) chart.Series {
	var xs []time.Time
	var ys []float64
	for i := range rows {
		if v := value(&rows[i]); v != nil {
			xs = append(xs, rows[i].Date)
			ys = append(ys, *v)
		}
	}
	return chart.TimeSeries{Name: name, XValues: xs, YValues: ys, Style: style}
}

func baselineSpan(res *merge.Result) (int, int) {
	if len(res.BaselineYears) == 0 {
		return 0, 0
	}
	return res.BaselineYears[0], res.BaselineYears[len(res.BaselineYears)-1]
}

func baselineLabel(from, to int) string {
	if from == 0 {
		return "prior years"
	}
	if from == to {
		return fmt.Sprintf("%d", from)
	}
	return fmt.Sprintf("%d-%d", from, to)
}
