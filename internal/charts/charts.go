// Package charts renders dashboard charts as SVG.
package charts

import (
	"errors"
	"io"
	"math"
	"time"

	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"depenses/internal/core"
	"depenses/internal/pipeline"
)

// ErrNoData is returned when there is nothing non-zero to draw.
var ErrNoData = errors.New("no data to chart")

const (
	DefaultWidth  = 800
	DefaultHeight = 400
)

// Options sets the chart frame. Zero sizes use the defaults.
type Options struct {
	Title  string
	Width  int
	Height int
	// Format renders axis values, typically a locale money formatter.
	Format func(core.Money) string
}

func (o Options) size() (int, int) {
	w, h := o.Width, o.Height
	if w <= 0 {
		w = DefaultWidth
	}
	if h <= 0 {
		h = DefaultHeight
	}
	return w, h
}

func (o Options) valueFormatter() chart.ValueFormatter {
	format := o.Format
	if format == nil {
		format = func(m core.Money) string { return m.String() }
	}
	return func(v interface{}) string {
		if f, ok := v.(float64); ok {
			return format(core.Money{Cents: int64(math.Round(f * 100))})
		}
		return ""
	}
}

var palette = []drawing.Color{
	drawing.ColorFromHex("4e79a7"),
	drawing.ColorFromHex("f28e2b"),
	drawing.ColorFromHex("e15759"),
	drawing.ColorFromHex("76b7b2"),
	drawing.ColorFromHex("59a14f"),
	drawing.ColorFromHex("edc948"),
	drawing.ColorFromHex("b07aa1"),
	drawing.ColorFromHex("ff9da7"),
	drawing.ColorFromHex("9c755f"),
	drawing.ColorFromHex("bab0ac"),
}

func color(i int) drawing.Color {
	return palette[i%len(palette)]
}

func background() chart.Style {
	return chart.Style{
		Padding: chart.Box{
			Top:    40,
			Left:   20,
			Right:  20,
			Bottom: 20,
		},
	}
}

// yRange spans zero and every value, padded so it is never empty.
func yRange(values []float64) *chart.ContinuousRange {
	lo, hi := 0.0, 0.0
	for _, v := range values {
		lo = math.Min(lo, v)
		hi = math.Max(hi, v)
	}
	if hi == lo {
		hi = lo + 1
	}
	pad := (hi - lo) * 0.05
	if lo < 0 {
		lo -= pad
	}
	return &chart.ContinuousRange{Min: lo, Max: hi + pad}
}

func allZero(values []float64) bool {
	for _, v := range values {
		if v != 0 {
			return false
		}
	}
	return true
}

// Bars draws one bar per labelled amount.
func Bars(w io.Writer, opts Options, items []core.CategoryAmount) error {
	values := make([]float64, len(items))
	bars := make([]chart.Value, len(items))
	for i, it := range items {
		values[i] = it.Amount.Euros()
		bars[i] = chart.Value{
			Label: it.Name,
			Value: values[i],
			Style: chart.Style{FillColor: color(i), StrokeColor: color(i)},
		}
	}
	if len(bars) == 0 || allZero(values) {
		return ErrNoData
	}

	width, height := opts.size()
	barWidth := (width - 100) / len(bars) * 2 / 3
	if barWidth < 4 {
		barWidth = 4
	}
	c := chart.BarChart{
		Title:        opts.Title,
		Background:   background(),
		Width:        width,
		Height:       height,
		BarWidth:     barWidth,
		BarSpacing:   barWidth / 2,
		UseBaseValue: true,
		BaseValue:    0,
		Bars:         bars,
		YAxis: chart.YAxis{
			Range:          yRange(values),
			ValueFormatter: opts.valueFormatter(),
		},
	}
	return c.Render(chart.SVG, w)
}

// Pie draws the positive amounts as slices. Zero and negative amounts
// cannot be shown in a pie and are left out.
func Pie(w io.Writer, opts Options, items []core.CategoryAmount) error {
	var slices []chart.Value
	for _, it := range items {
		if it.Amount.Cents <= 0 {
			continue
		}
		slices = append(slices, chart.Value{
			Label: it.Name,
			Value: it.Amount.Euros(),
			Style: chart.Style{FillColor: color(len(slices))},
		})
	}
	if len(slices) == 0 {
		return ErrNoData
	}
	width, height := opts.size()
	c := chart.PieChart{
		Title:      opts.Title,
		Background: background(),
		Width:      width,
		Height:     height,
		Values:     slices,
	}
	return c.Render(chart.SVG, w)
}

// MonthlyLines draws one line per series over months 1 to len(values).
// labels name the x ticks.
func MonthlyLines(w io.Writer, opts Options, labels []string, series []pipeline.Series) error {
	var (
		all   []float64
		lines []chart.Series
	)
	for i, s := range series {
		xs := make([]float64, len(s.Values))
		ys := make([]float64, len(s.Values))
		for j, v := range s.Values {
			xs[j] = float64(j + 1)
			ys[j] = v.Euros()
		}
		all = append(all, ys...)
		lines = append(lines, chart.ContinuousSeries{
			Name:    s.Name,
			XValues: xs,
			YValues: ys,
			Style: chart.Style{
				StrokeColor: color(i),
				StrokeWidth: 2,
				DotColor:    color(i),
				DotWidth:    3,
			},
		})
	}
	if len(lines) == 0 || allZero(all) {
		return ErrNoData
	}

	ticks := make([]chart.Tick, len(labels))
	for i, l := range labels {
		ticks[i] = chart.Tick{Value: float64(i + 1), Label: l}
	}
	width, height := opts.size()
	c := chart.Chart{
		Title:      opts.Title,
		Background: background(),
		Width:      width,
		Height:     height,
		XAxis: chart.XAxis{
			Range: &chart.ContinuousRange{Min: 0.5, Max: float64(len(labels)) + 0.5},
			Ticks: ticks,
		},
		YAxis: chart.YAxis{
			Range:          yRange(all),
			ValueFormatter: opts.valueFormatter(),
		},
		Series: lines,
	}
	c.Elements = []chart.Renderable{chart.Legend(&c)}
	return c.Render(chart.SVG, w)
}

// TimeLines draws dated series, for instance running totals per payer.
func TimeLines(w io.Writer, opts Options, series []pipeline.DatedSeries) error {
	var (
		all        []float64
		lines      []chart.Series
		first, last time.Time
	)
	for i, s := range series {
		if len(s.Points) == 0 {
			continue
		}
		xs := make([]time.Time, len(s.Points))
		ys := make([]float64, len(s.Points))
		for j, p := range s.Points {
			xs[j] = p.Date.Time
			ys[j] = p.Value.Euros()
			if first.IsZero() || xs[j].Before(first) {
				first = xs[j]
			}
			if xs[j].After(last) {
				last = xs[j]
			}
		}
		all = append(all, ys...)
		lines = append(lines, chart.TimeSeries{
			Name:    s.Name,
			XValues: xs,
			YValues: ys,
			Style: chart.Style{
				StrokeColor: color(i),
				StrokeWidth: 2,
			},
		})
	}
	if len(lines) == 0 || allZero(all) {
		return ErrNoData
	}
	if !last.After(first) {
		first = first.AddDate(0, 0, -1)
		last = last.AddDate(0, 0, 1)
	}

	width, height := opts.size()
	c := chart.Chart{
		Title:      opts.Title,
		Background: background(),
		Width:      width,
		Height:     height,
		XAxis: chart.XAxis{
			Range: &chart.ContinuousRange{
				Min: chart.TimeToFloat64(first),
				Max: chart.TimeToFloat64(last),
			},
			ValueFormatter: chart.TimeDateValueFormatter,
		},
		YAxis: chart.YAxis{
			Range:          yRange(all),
			ValueFormatter: opts.valueFormatter(),
		},
		Series: lines,
	}
	c.Elements = []chart.Renderable{chart.Legend(&c)}
	return c.Render(chart.SVG, w)
}

// Shares draws one 100% stacked bar per row, split by the row's
// positive column values. It shows how each payer's spending splits
// across categories.
func Shares(w io.Writer, opts Options, ct pipeline.CrossTab) error {
	var bars []chart.StackedBar
	for _, payer := range ct.Payers {
		var parts []chart.Value
		for i, category := range ct.Categories {
			v := ct.Cell(category, payer)
			if v.Cents <= 0 {
				continue
			}
			parts = append(parts, chart.Value{
				Label: category,
				Value: v.Euros(),
				Style: chart.Style{FillColor: color(i), StrokeColor: color(i)},
			})
		}
		if len(parts) == 0 {
			continue
		}
		bars = append(bars, chart.StackedBar{Name: payer, Values: parts})
	}
	if len(bars) == 0 {
		return ErrNoData
	}
	width, height := opts.size()
	c := chart.StackedBarChart{
		Title:      opts.Title,
		Background: background(),
		Width:      width,
		Height:     height,
		Bars:       bars,
	}
	return c.Render(chart.SVG, w)
}
