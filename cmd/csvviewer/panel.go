package main

import (
	"fmt"
	"image"
	"strings"

	fyne "fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/storage"
	"fyne.io/fyne/v2/widget"

	"github.com/EntangledQuantum/CSV-Viewer/src/diag"
	"github.com/EntangledQuantum/CSV-Viewer/src/plot"
	"github.com/EntangledQuantum/CSV-Viewer/src/render"
	"github.com/EntangledQuantum/CSV-Viewer/src/session"
	"github.com/EntangledQuantum/CSV-Viewer/src/smooth"
)

// Labels of the smoothing method select, in option order.
const (
	methodSavGol = "Savitzky-Golay"
	methodSpline = "Cubic Spline"
)

func methodLabel(m smooth.Method) string {
	if m == smooth.SplineResample {
		return methodSpline
	}
	return methodSavGol
}

func methodFromLabel(s string) smooth.Method {
	if s == methodSpline {
		return smooth.SplineResample
	}
	return smooth.LocalFilter
}

// saveFormats is shown when a save name has no encoder.
const saveFormats = "PNG (.png), JPEG (.jpg, .jpeg) or SVG (.svg); PDF export is not available"

func saveFormatError(name string, err error) error {
	return fmt.Errorf("cannot save %s: %w. Charts can be saved as %s", name, err, saveFormats)
}

// exportOptions is the size of saved images, independent of the window.
var exportOptions = render.Options{Width: 1920, Height: 1080}

// chartPanel is the widget group of one chart: column selects, toggles,
// the chart image and its Save/Remove buttons.
type chartPanel struct {
	v     *viewer
	chart *session.Chart

	xSel      *widget.Select
	ySel      *widget.Select
	numChk    *widget.Check
	smoothChk *widget.Check
	methodSel *widget.Select
	errLabel  *widget.Label
	img       *canvas.Image
	box       *fyne.Container

	// wiring suppresses callbacks while controls are initialised
	wiring bool
}

func newChartPanel(v *viewer, c *session.Chart) *chartPanel {
	p := &chartPanel{v: v, chart: c, wiring: true}
	cols := c.Table().Columns()
	cfg := c.Config()

	p.xSel = widget.NewSelect(cols, func(string) { p.apply() })
	p.xSel.SetSelected(cfg.X)
	p.ySel = widget.NewSelect(cols, func(string) { p.apply() })
	p.ySel.SetSelected(cfg.Y)
	p.numChk = widget.NewCheck("Treat as Numeric", func(bool) { p.apply() })
	p.numChk.SetChecked(cfg.TreatAsNumeric)
	p.smoothChk = widget.NewCheck("Smooth Curve", func(bool) { p.apply() })
	p.smoothChk.SetChecked(cfg.Smooth)
	p.methodSel = widget.NewSelect([]string{methodSavGol, methodSpline}, func(string) { p.apply() })
	p.methodSel.SetSelected(methodLabel(cfg.Method))
	p.wiring = false

	p.errLabel = widget.NewLabel("")
	p.errLabel.Wrapping = fyne.TextWrapWord
	p.errLabel.Hide()

	p.img = canvas.NewImageFromImage(image.NewRGBA(image.Rect(0, 0, 100, 60)))
	p.img.FillMode = canvas.ImageFillContain
	p.img.SetMinSize(fyne.NewSize(900, 320))

	controls := container.NewHBox(
		widget.NewLabel("X-Axis:"), p.xSel,
		widget.NewLabel("Y-Axis:"), p.ySel,
		p.numChk, p.smoothChk,
		widget.NewLabel("Method:"), p.methodSel,
		widget.NewButton("Save Graph", p.save),
		widget.NewButton("Remove", func() { v.removePanel(p) }),
	)
	p.box = container.NewVBox(controls, p.errLabel, p.img, widget.NewSeparator())
	return p
}

// config reads the controls into a chart configuration.
func (p *chartPanel) config() plot.Config {
	return p.chart.Config().
		WithX(p.xSel.Selected).
		WithY(p.ySel.Selected).
		WithTreatAsNumeric(p.numChk.Checked).
		WithSmooth(p.smoothChk.Checked).
		WithMethod(methodFromLabel(p.methodSel.Selected))
}

// apply rebuilds the chart from the controls. On failure the previous
// image stays and the error is shown above it.
func (p *chartPanel) apply() {
	if p.wiring {
		return
	}
	if err := p.chart.Update(p.config()); err != nil {
		p.errLabel.SetText(err.Error())
		p.errLabel.Show()
		return
	}
	p.errLabel.Hide()
	p.redraw()
}

func (p *chartPanel) redraw() {
	opts := p.v.chartOptions()
	img, err := render.Image(p.chart.Spec(), opts)
	if err != nil {
		diag.Warnf("[viewer] chart %d render error: %v; keeping previous image", p.chart.ID(), err)
		p.errLabel.SetText(err.Error())
		p.errLabel.Show()
		return
	}
	p.img.Image = img
	p.img.SetMinSize(fyne.NewSize(float32(opts.Width), float32(opts.Height)))
	p.img.Refresh()
}

// defaultFileName derives a save name from the chart title.
func defaultFileName(spec plot.ChartSpec) string {
	name := strings.Map(func(r rune) rune {
		switch r {
		case '/', '\\', ':', '*', '?', '"', '<', '>', '|':
			return '_'
		}
		return r
	}, spec.Title)
	name = strings.Join(strings.Fields(name), "_")
	if name == "" {
		name = "chart"
	}
	return name + ".png"
}

func (p *chartPanel) save() {
	spec := p.chart.Spec()
	fs := dialog.NewFileSave(func(wc fyne.URIWriteCloser, err error) {
		if err != nil {
			dialog.ShowError(err, p.v.window)
			return
		}
		if wc == nil {
			return
		}
		defer wc.Close()
		format, err := render.FormatFromPath(wc.URI().Path())
		if err != nil {
			dialog.ShowError(saveFormatError(wc.URI().Name(), err), p.v.window)
			return
		}
		if err := render.Encode(wc, spec, format, exportOptions); err != nil {
			dialog.ShowError(err, p.v.window)
			return
		}
		diag.Infof("[viewer] saved chart %d to %s", p.chart.ID(), wc.URI().Path())
	}, p.v.window)
	fs.SetFileName(defaultFileName(spec))
	fs.SetFilter(storage.NewExtensionFileFilter(render.Extensions))
	fs.Show()
}
