package plot

import (
	"fmt"

	"github.com/EntangledQuantum/CSV-Viewer/src/axis"
	"github.com/EntangledQuantum/CSV-Viewer/src/smooth"
)

// Compose turns an aligned pair and an optional smoothing result into a
// chart description. The smoothed x domain is in epoch seconds when x is
// a datetime axis and is mapped back to times here.
func Compose(p axis.Pair, sm *smooth.Result) ChartSpec {
	xName, yName := p.X.Column, p.Y.Column
	spec := ChartSpec{
		Title:    fmt.Sprintf("%s vs %s", yName, xName),
		XLabel:   xName,
		YLabel:   yName,
		DateAxis: p.DateX(),
	}
	raw := Series{
		Name:  yName,
		Style: LineMarkers,
		X:     append([]float64(nil), p.XVals...),
		Y:     append([]float64(nil), p.YVals...),
	}
	if spec.DateAxis {
		raw.Times = append(raw.Times, p.XTimes...)
	}
	if sm == nil {
		spec.Series = []Series{raw}
		return spec
	}

	raw.Name = RawSmoothedName
	raw.Style = MarkersOnly
	over := Series{
		Name:  SmoothedName,
		Style: LineOnly,
		X:     append([]float64(nil), sm.X...),
		Y:     append([]float64(nil), sm.Y...),
	}
	if spec.DateAxis {
		over.Times = axis.TimesFromEpoch(over.X)
	}
	spec.Series = []Series{raw, over}
	spec.Legend = true
	return spec
}
