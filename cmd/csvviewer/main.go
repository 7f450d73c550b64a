// Command csvviewer is the desktop CSV graph viewer: open a delimited file,
// then add any number of charts, each with its own column and smoothing
// controls.
package main

import (
	"flag"
	"fmt"
	"image/color"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	fyne "fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/storage"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"github.com/EntangledQuantum/CSV-Viewer/src/diag"
	"github.com/EntangledQuantum/CSV-Viewer/src/render"
	"github.com/EntangledQuantum/CSV-Viewer/src/session"
	"github.com/EntangledQuantum/CSV-Viewer/src/table"
)

// dark theme wrapper
type darkTheme struct{}

func (d *darkTheme) Color(name fyne.ThemeColorName, variant fyne.ThemeVariant) color.Color {
	return theme.DefaultTheme().Color(name, theme.VariantDark)
}
func (d *darkTheme) Font(style fyne.TextStyle) fyne.Resource { return theme.DefaultTheme().Font(style) }
func (d *darkTheme) Icon(name fyne.ThemeIconName) fyne.Resource {
	return theme.DefaultTheme().Icon(name)
}
func (d *darkTheme) Size(name fyne.ThemeSizeName) float32 { return theme.DefaultTheme().Size(name) }

// viewer is the window state. Every method runs on the fyne UI goroutine.
type viewer struct {
	app    fyne.App
	window fyne.Window
	sess   *session.Session

	status  *widget.Label
	addBtn  *widget.Button
	column  *fyne.Container // chart panels, top to bottom
	panels  []*chartPanel
	lastDir fyne.ListableURI
}

func newViewer(a fyne.App, w fyne.Window) *viewer {
	v := &viewer{app: a, window: w, sess: session.New()}
	v.status = widget.NewLabel(v.sess.Status())
	v.addBtn = widget.NewButton("Add Graph", v.addChart)
	v.addBtn.Disable()
	v.column = container.NewVBox()
	return v
}

func (v *viewer) content() fyne.CanvasObject {
	top := container.NewHBox(
		widget.NewButton("Open CSV", v.openFileDialog),
		v.addBtn,
		v.status,
	)
	scroll := container.NewVScroll(v.column)
	scroll.SetMinSize(fyne.NewSize(900, 600))
	return container.NewBorder(top, nil, nil, nil, scroll)
}

func main() {
	var fileFlag, logLevel string
	flag.StringVar(&fileFlag, "file", "", "Path to a CSV file to open at startup")
	flag.StringVar(&logLevel, "log-level", "info", "Log level: debug, info, warn, error")
	flag.Parse()
	if !diag.SetLogLevel(logLevel) {
		fmt.Fprintf(os.Stderr, "invalid -log-level %q\n", logLevel)
		os.Exit(2)
	}

	a := app.NewWithID("io.github.entangledquantum.csvviewer")
	a.Settings().SetTheme(&darkTheme{})
	w := a.NewWindow("CSV Graph Viewer")
	w.Resize(fyne.NewSize(1100, 800))

	v := newViewer(a, w)
	w.SetContent(v.content())
	v.buildMenus()

	// Redraw charts on window resize so they scale with width
	if w.Canvas() != nil {
		prevW := int(w.Canvas().Size().Width)
		done := make(chan struct{})
		w.SetOnClosed(func() { close(done) })
		go func() {
			t := time.NewTicker(300 * time.Millisecond)
			defer t.Stop()
			for {
				select {
				case <-done:
					return
				case <-t.C:
					c := w.Canvas()
					if c == nil {
						continue
					}
					curW := int(c.Size().Width)
					if curW != prevW {
						prevW = curW
						fyne.Do(v.redrawAll)
					}
				}
			}
		}()
	}

	if fileFlag != "" {
		v.openPath(fileFlag)
	}
	w.ShowAndRun()
}

func (v *viewer) buildMenus() {
	fileMenu := fyne.NewMenu("File",
		fyne.NewMenuItem("Open CSV…", v.openFileDialog),
		fyne.NewMenuItem("Add Graph", v.addChart),
		fyne.NewMenuItemSeparator(),
		fyne.NewMenuItem("Quit", func() { v.window.Close() }),
	)
	v.window.SetMainMenu(fyne.NewMainMenu(fileMenu))

	canv := v.window.Canvas()
	if canv == nil {
		return
	}
	for _, mod := range []fyne.KeyModifier{fyne.KeyModifierSuper, fyne.KeyModifierControl} {
		canv.AddShortcut(&desktop.CustomShortcut{KeyName: fyne.KeyO, Modifier: mod}, func(fyne.Shortcut) { v.openFileDialog() })
		canv.AddShortcut(&desktop.CustomShortcut{KeyName: fyne.KeyN, Modifier: mod}, func(fyne.Shortcut) { v.addChart() })
		canv.AddShortcut(&desktop.CustomShortcut{KeyName: fyne.KeyW, Modifier: mod}, func(fyne.Shortcut) { v.window.Close() })
	}
}

// file open dialog
func (v *viewer) openFileDialog() {
	d := dialog.NewFileOpen(func(rc fyne.URIReadCloser, err error) {
		if err != nil {
			dialog.ShowError(err, v.window)
			return
		}
		if rc == nil {
			return
		}
		defer rc.Close()
		if dir, derr := storage.ListerForURI(storage.NewFileURI(filepath.Dir(rc.URI().Path()))); derr == nil {
			v.lastDir = dir
		}
		v.openReader(rc.URI().Name(), rc)
	}, v.window)
	d.SetFilter(storage.NewExtensionFileFilter([]string{".csv", ".tsv", ".txt"}))
	if v.lastDir != nil {
		d.SetLocation(v.lastDir)
	}
	d.Show()
}

// dialectFor picks the field delimiter from the file name: tab for .tsv,
// comma otherwise.
func dialectFor(name string) table.Options {
	opts := table.DefaultOptions()
	if strings.EqualFold(filepath.Ext(name), ".tsv") {
		opts.Delimiter = '\t'
	}
	return opts
}

func (v *viewer) openPath(path string) {
	v.sess.SetOptions(dialectFor(path))
	v.loaded(v.sess.Open(path))
}

func (v *viewer) openReader(name string, r io.Reader) {
	v.sess.SetOptions(dialectFor(name))
	v.loaded(v.sess.OpenReader(name, r))
}

// loaded finishes an open attempt. A failed load leaves the current table
// and its panels untouched.
func (v *viewer) loaded(err error) {
	if err != nil {
		diag.Errorf("[viewer] %v", err)
		dialog.ShowError(err, v.window)
		return
	}
	v.status.SetText(v.sess.Status())
	v.addBtn.Enable()
	v.rebuildPanels()
}

func (v *viewer) rebuildPanels() {
	v.panels = v.panels[:0]
	v.column.RemoveAll()
	for _, c := range v.sess.Charts() {
		v.appendPanel(c)
	}
	v.column.Refresh()
}

func (v *viewer) appendPanel(c *session.Chart) {
	p := newChartPanel(v, c)
	v.panels = append(v.panels, p)
	v.column.Add(p.box)
	p.redraw()
}

func (v *viewer) addChart() {
	c, err := v.sess.AddChart()
	if err != nil {
		dialog.ShowError(err, v.window)
		return
	}
	v.appendPanel(c)
}

func (v *viewer) removePanel(p *chartPanel) {
	if !v.sess.RemoveChart(p.chart.ID()) {
		return
	}
	for i, q := range v.panels {
		if q == p {
			v.panels = append(v.panels[:i], v.panels[i+1:]...)
			break
		}
	}
	v.column.Remove(p.box)
}

func (v *viewer) redrawAll() {
	for _, p := range v.panels {
		p.redraw()
	}
}

// chartOptions sizes chart images from the current window width.
func (v *viewer) chartOptions() render.Options {
	if v.window == nil || v.window.Canvas() == nil {
		return render.DefaultOptions()
	}
	// ~95% of the width, minus a margin for the scrollbar
	w, h := render.ComputeChartDimensions(int(v.window.Canvas().Size().Width*0.95) - 12)
	return render.Options{Width: w, Height: h}
}
