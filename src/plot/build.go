package plot

import (
	"errors"
	"fmt"
	"time"

	"github.com/EntangledQuantum/CSV-Viewer/src/axis"
	"github.com/EntangledQuantum/CSV-Viewer/src/diag"
	"github.com/EntangledQuantum/CSV-Viewer/src/smooth"
	"github.com/EntangledQuantum/CSV-Viewer/src/table"
)

// ErrRender matches every *RenderError.
var ErrRender = errors.New("chart render failed")

// RenderError reports a chart that could not be assembled. The caller keeps
// showing the previous chart.
type RenderError struct {
	X, Y string
	Err  error
}

func (e *RenderError) Error() string {
	return fmt.Sprintf("plot %q vs %q: %v", e.Y, e.X, e.Err)
}

func (e *RenderError) Unwrap() error { return e.Err }

func (e *RenderError) Is(target error) bool { return target == ErrRender }

// Build resolves both axes of cfg against t, aligns them, smooths when
// asked and composes the chart. The y axis is always read as numbers.
func Build(t *table.Table, cfg Config) (spec ChartSpec, err error) {
	defer diag.TimeTrack(time.Now(), "plot.Build "+cfg.Y+" vs "+cfg.X)
	defer func() {
		if r := recover(); r != nil {
			diag.Errorf("[plot] panic building %q vs %q: %v", cfg.Y, cfg.X, r)
			spec = ChartSpec{}
			err = &RenderError{X: cfg.X, Y: cfg.Y, Err: fmt.Errorf("panic: %v", r)}
		}
	}()
	if t == nil {
		return ChartSpec{}, &RenderError{X: cfg.X, Y: cfg.Y, Err: errors.New("no table loaded")}
	}

	xs, err := axis.Resolve(t, cfg.X, cfg.xOptions())
	if err != nil {
		return ChartSpec{}, &RenderError{X: cfg.X, Y: cfg.Y, Err: err}
	}
	ys, err := axis.Resolve(t, cfg.Y, axis.Options{TreatAsNumeric: true})
	if err != nil {
		return ChartSpec{}, &RenderError{X: cfg.X, Y: cfg.Y, Err: err}
	}
	p := axis.Align(xs, ys)
	diag.Debugf("[plot] %q vs %q: x=%s, %d of %d rows aligned", cfg.Y, cfg.X, xs.Kind, p.Len(), t.NumRows())

	if !cfg.Smooth {
		return Compose(p, nil), nil
	}
	res := smooth.Smooth(p.XVals, p.YVals, cfg.Method)
	if !res.Applied {
		diag.Infof("[plot] smoothing %q vs %q not applied: %v", cfg.Y, cfg.X, res.Reason)
	}
	return Compose(p, &res), nil
}
