// Package render draws plot.ChartSpec values with go-chart and writes them
// out as PNG, JPEG or SVG.
package render

import (
	"errors"
	"math"
	"time"

	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"github.com/EntangledQuantum/CSV-Viewer/src/plot"
)

// Options is the output size in pixels.
type Options struct {
	Width  int
	Height int
}

// DefaultOptions sizes a chart for an 800 pixel wide panel.
func DefaultOptions() Options {
	w, h := ComputeChartDimensions(800)
	return Options{Width: w, Height: h}
}

func (o Options) normalized() Options {
	d := DefaultOptions()
	if o.Width <= 0 {
		o.Width = d.Width
	}
	if o.Height <= 0 {
		o.Height = d.Height
	}
	return o
}

var errNoData = errors.New("chart has no data")

// seriesColors is the palette in series order: raw data, then the overlay.
var seriesColors = []drawing.Color{chart.ColorBlue, chart.ColorRed, chart.ColorGreen, chart.ColorOrange}

func seriesStyle(st plot.Style, col drawing.Color) chart.Style {
	switch st {
	case plot.MarkersOnly:
		return chart.Style{StrokeWidth: chart.Disabled, DotWidth: 4, DotColor: col}
	case plot.LineOnly:
		return chart.Style{StrokeWidth: 2, StrokeColor: col, DotWidth: chart.Disabled}
	default:
		return chart.Style{StrokeWidth: 1.5, StrokeColor: col, DotWidth: 3, DotColor: col}
	}
}

var gridStyle = chart.Style{StrokeColor: chart.ColorLightGray, StrokeWidth: 1}

// Chart converts spec into a go-chart chart of the requested size. An empty
// spec still yields a renderable chart: axes over [0,1] and no visible data.
func Chart(spec plot.ChartSpec, opts Options) (chart.Chart, error) {
	opts = opts.normalized()
	ch := chart.Chart{
		Title:      spec.Title,
		Width:      opts.Width,
		Height:     opts.Height,
		Background: chart.Style{Padding: chart.Box{Top: 24, Left: 16, Right: 16, Bottom: 16}},
	}
	if spec.Empty() {
		placeholder := chart.ContinuousSeries{
			XValues: []float64{0, 1},
			YValues: []float64{0, 1},
			Style:   chart.Style{StrokeWidth: chart.Disabled, DotWidth: chart.Disabled, StrokeColor: chart.ColorTransparent},
		}
		ch.Series = []chart.Series{placeholder}
		ch.XAxis = chart.XAxis{Name: spec.XLabel, Range: &chart.ContinuousRange{Min: 0, Max: 1}, Ticks: NiceTicks(0, 1, 5)}
		ch.YAxis = chart.YAxis{Name: spec.YLabel, Range: &chart.ContinuousRange{Min: 0, Max: 1}, Ticks: NiceTicks(0, 1, 5)}
		return ch, nil
	}

	minY, maxY := math.Inf(1), math.Inf(-1)
	for _, s := range spec.Series {
		for _, v := range s.Y {
			minY = math.Min(minY, v)
			maxY = math.Max(maxY, v)
		}
	}
	if math.IsInf(minY, 0) || math.IsInf(maxY, 0) {
		return ch, errNoData
	}
	yMin, yMax := NiceBounds(minY, maxY)
	ch.YAxis = chart.YAxis{
		Name:           spec.YLabel,
		Range:          &chart.ContinuousRange{Min: yMin, Max: yMax},
		Ticks:          NiceTicks(yMin, yMax, 6),
		GridMajorStyle: gridStyle,
	}

	if spec.DateAxis {
		xa, err := timeAxis(spec)
		if err != nil {
			return ch, err
		}
		ch.XAxis = xa
	} else {
		ch.XAxis = numericAxis(spec)
	}

	for i, s := range spec.Series {
		if s.Len() == 0 {
			continue
		}
		st := seriesStyle(s.Style, seriesColors[i%len(seriesColors)])
		if spec.DateAxis {
			xs, ys := s.Times, s.Y
			if len(xs) == 1 {
				xs = []time.Time{xs[0], xs[0].Add(time.Second)}
				ys = []float64{ys[0], ys[0]}
			}
			ch.Series = append(ch.Series, chart.TimeSeries{Name: s.Name, XValues: xs, YValues: ys, Style: st})
			continue
		}
		xs, ys := s.X, s.Y
		if len(xs) == 1 {
			xs = []float64{xs[0], xs[0] + 1}
			ys = []float64{ys[0], ys[0]}
		}
		ch.Series = append(ch.Series, chart.ContinuousSeries{Name: s.Name, XValues: xs, YValues: ys, Style: st})
	}
	if spec.Legend {
		ch.Elements = []chart.Renderable{chart.Legend(&ch)}
	}
	return ch, nil
}

func numericAxis(spec plot.ChartSpec) chart.XAxis {
	minX, maxX := math.Inf(1), math.Inf(-1)
	for _, s := range spec.Series {
		for _, v := range s.X {
			minX = math.Min(minX, v)
			maxX = math.Max(maxX, v)
		}
	}
	lo, hi := NiceBounds(minX, maxX)
	return chart.XAxis{
		Name:           spec.XLabel,
		Range:          &chart.ContinuousRange{Min: lo, Max: hi},
		Ticks:          NiceTicks(lo, hi, 8),
		GridMajorStyle: gridStyle,
	}
}

func timeAxis(spec plot.ChartSpec) (chart.XAxis, error) {
	var minT, maxT time.Time
	for _, s := range spec.Series {
		for _, t := range s.Times {
			if minT.IsZero() || t.Before(minT) {
				minT = t
			}
			if maxT.IsZero() || t.After(maxT) {
				maxT = t
			}
		}
	}
	if minT.IsZero() {
		return chart.XAxis{}, errNoData
	}
	step, labelFmt := PickTimeStep(maxT.Sub(minT))
	ticks := MakeTimeTicks(minT, maxT, step, labelFmt)
	lo := chart.TimeToFloat64(minT)
	hi := chart.TimeToFloat64(maxT)
	if hi <= lo {
		hi = chart.TimeToFloat64(minT.Add(step))
	}
	// keep ticks inside the range, go-chart would draw them off-canvas
	kept := ticks[:0]
	for _, tk := range ticks {
		if tk.Value >= lo && tk.Value <= hi {
			kept = append(kept, tk)
		}
	}
	xa := chart.XAxis{
		Name:           spec.XLabel,
		Range:          &chart.ContinuousRange{Min: lo, Max: hi},
		GridMajorStyle: gridStyle,
	}
	if len(kept) >= 2 {
		xa.Ticks = kept
	} else {
		xa.ValueFormatter = chart.TimeValueFormatterWithFormat(labelFmt)
	}
	return xa, nil
}
