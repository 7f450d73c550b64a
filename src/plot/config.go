package plot

import (
	"github.com/EntangledQuantum/CSV-Viewer/src/axis"
	"github.com/EntangledQuantum/CSV-Viewer/src/smooth"
	"github.com/EntangledQuantum/CSV-Viewer/src/table"
)

// Config is the per-chart state. It is a value: the With* methods return a
// modified copy and Build re-evaluates a chart from scratch for each one.
type Config struct {
	X              string
	Y              string
	TreatAsNumeric bool
	Smooth         bool
	Method         smooth.Method
	// NameHint enables the time-vocabulary check on x column names.
	NameHint bool
}

// DefaultConfig plots the second column against the first with the
// numeric override on and smoothing off.
func DefaultConfig(t *table.Table) Config {
	cfg := Config{TreatAsNumeric: true, Method: smooth.LocalFilter, NameHint: true}
	if t == nil {
		return cfg
	}
	cols := t.Columns()
	if len(cols) > 0 {
		cfg.X = cols[0]
	}
	if len(cols) > 1 {
		cfg.Y = cols[1]
	}
	return cfg
}

func (c Config) WithX(name string) Config { c.X = name; return c }
func (c Config) WithY(name string) Config { c.Y = name; return c }
func (c Config) WithTreatAsNumeric(on bool) Config { c.TreatAsNumeric = on; return c }
func (c Config) WithSmooth(on bool) Config { c.Smooth = on; return c }
func (c Config) WithMethod(m smooth.Method) Config { c.Method = m; return c }
func (c Config) WithNameHint(on bool) Config { c.NameHint = on; return c }

func (c Config) xOptions() axis.Options {
	return axis.Options{TreatAsNumeric: c.TreatAsNumeric, NameHint: c.NameHint}
}
