// Package session holds the viewer state behind the window: the loaded
// table and the charts drawn from it. All methods are meant to be called
// from the UI goroutine.
package session

import (
	"errors"
	"fmt"
	"io"

	"github.com/EntangledQuantum/CSV-Viewer/src/diag"
	"github.com/EntangledQuantum/CSV-Viewer/src/plot"
	"github.com/EntangledQuantum/CSV-Viewer/src/table"
)

// ErrNoTable is returned when a chart is requested before any load.
var ErrNoTable = errors.New("no table loaded")

// Chart is one plot panel. Its spec is replaced only by a successful Update.
type Chart struct {
	id   int
	tbl  *table.Table
	cfg  plot.Config
	spec plot.ChartSpec
	err  error
}

func (c *Chart) ID() int              { return c.id }
func (c *Chart) Config() plot.Config  { return c.cfg }
func (c *Chart) Spec() plot.ChartSpec { return c.spec }
func (c *Chart) Table() *table.Table  { return c.tbl }

// Err is the error of the last Update, nil when it succeeded.
func (c *Chart) Err() error { return c.err }

// Update rebuilds the chart for cfg. On failure the previous spec stays in
// place and the error is returned (and kept in Err).
func (c *Chart) Update(cfg plot.Config) error {
	spec, err := plot.Build(c.tbl, cfg)
	if err != nil {
		diag.Warnf("[session] chart %d: %v", c.id, err)
		c.err = err
		return err
	}
	c.cfg, c.spec, c.err = cfg, spec, nil
	return nil
}

// Session is the state of one viewer window.
type Session struct {
	opts   table.Options
	tbl    *table.Table
	charts []*Chart
	nextID int
}

// New returns an empty session using the default CSV dialect.
func New() *Session { return &Session{opts: table.DefaultOptions(), nextID: 1} }

// SetOptions changes the dialect used by later opens.
func (s *Session) SetOptions(opts table.Options) { s.opts = opts }

// Open loads path. On error the current table and charts are kept.
func (s *Session) Open(path string) error {
	tbl, err := table.LoadFile(path, s.opts)
	if err != nil {
		return fmt.Errorf("open %s: %w", path, err)
	}
	s.replace(tbl)
	return nil
}

// OpenReader loads an already opened source named name.
func (s *Session) OpenReader(name string, r io.Reader) error {
	tbl, err := table.LoadNamed(name, r, s.opts)
	if err != nil {
		return fmt.Errorf("open %s: %w", name, err)
	}
	s.replace(tbl)
	return nil
}

// replace installs tbl, drops every chart of the previous table and adds
// one chart with the default configuration.
func (s *Session) replace(tbl *table.Table) {
	first := s.newChart(tbl)
	s.tbl, s.charts = tbl, []*Chart{first}
	diag.Infof("[session] %s", s.Status())
}

func (s *Session) newChart(tbl *table.Table) *Chart {
	c := &Chart{id: s.nextID, tbl: tbl, cfg: plot.DefaultConfig(tbl)}
	s.nextID++
	_ = c.Update(c.cfg)
	return c
}

// Table is the current table, nil before the first successful open.
func (s *Session) Table() *table.Table { return s.tbl }

// Charts returns the charts in display order.
func (s *Session) Charts() []*Chart {
	return append([]*Chart(nil), s.charts...)
}

// Chart looks a chart up by id.
func (s *Session) Chart(id int) (*Chart, bool) {
	for _, c := range s.charts {
		if c.id == id {
			return c, true
		}
	}
	return nil, false
}

// AddChart appends a chart with the default configuration.
func (s *Session) AddChart() (*Chart, error) {
	if s.tbl == nil {
		return nil, ErrNoTable
	}
	c := s.newChart(s.tbl)
	s.charts = append(s.charts, c)
	return c, nil
}

// RemoveChart drops the chart with id and reports whether it existed.
func (s *Session) RemoveChart(id int) bool {
	for i, c := range s.charts {
		if c.id == id {
			s.charts = append(s.charts[:i:i], s.charts[i+1:]...)
			return true
		}
	}
	return false
}

// Status is the one-line summary shown under the toolbar.
func (s *Session) Status() string {
	if s.tbl == nil {
		return "No file loaded"
	}
	return fmt.Sprintf("Loaded: %s with %d rows and %d columns", s.tbl.Source(), s.tbl.NumRows(), s.tbl.NumColumns())
}
