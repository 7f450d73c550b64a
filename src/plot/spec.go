// Package plot assembles chart descriptions from a table and a per-chart
// configuration. It does not draw; see src/render.
package plot

import "time"

// Style is how a series is drawn.
type Style int

const (
	LineMarkers Style = iota
	MarkersOnly
	LineOnly
)

func (s Style) String() string {
	switch s {
	case MarkersOnly:
		return "markers"
	case LineOnly:
		return "line"
	default:
		return "line+markers"
	}
}

// SmoothedName is the legend name of the overlay curve.
const SmoothedName = "Smoothed"

// RawSmoothedName replaces the y column name for the raw series when an
// overlay is drawn.
const RawSmoothedName = "Original Data"

// Series is one drawable curve. Times is set (parallel to X) when the chart
// has a datetime x axis; X then holds epoch seconds.
type Series struct {
	Name  string
	Style Style
	X     []float64
	Times []time.Time
	Y     []float64
}

// Len is the number of points.
func (s Series) Len() int { return len(s.Y) }

// ChartSpec describes a chart independent of any renderer.
type ChartSpec struct {
	Title    string
	XLabel   string
	YLabel   string
	DateAxis bool
	Legend   bool
	Series   []Series
}

// Empty reports a chart without any points.
func (c ChartSpec) Empty() bool {
	for _, s := range c.Series {
		if s.Len() > 0 {
			return false
		}
	}
	return true
}

// Raw returns the first series, which always holds the unsmoothed data.
func (c ChartSpec) Raw() Series {
	if len(c.Series) == 0 {
		return Series{}
	}
	return c.Series[0]
}

// Smoothed returns the overlay series when present.
func (c ChartSpec) Smoothed() (Series, bool) {
	for _, s := range c.Series {
		if s.Name == SmoothedName {
			return s, true
		}
	}
	return Series{}, false
}
