package render

import (
	"bytes"
	"fmt"
	"image"
	"image/draw"
	"image/png"
	"strings"

	"github.com/wcharczuk/go-chart/v2"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"github.com/EntangledQuantum/CSV-Viewer/src/diag"
	"github.com/EntangledQuantum/CSV-Viewer/src/plot"
)

// EmptyNotice is drawn over charts without any plottable rows.
const EmptyNotice = "No plottable rows for the selected columns"

// Image renders spec to an in-memory raster of opts size.
func Image(spec plot.ChartSpec, opts Options) (image.Image, error) {
	opts = opts.normalized()
	var buf bytes.Buffer
	if err := renderTo(&buf, spec, opts, chart.PNG); err != nil {
		return nil, err
	}
	img, err := png.Decode(&buf)
	if err != nil {
		return nil, fmt.Errorf("decode chart: %w", err)
	}
	if spec.Empty() {
		return DrawNotice(img, EmptyNotice), nil
	}
	return img, nil
}

// renderTo renders with rp, converting go-chart panics into errors.
func renderTo(buf *bytes.Buffer, spec plot.ChartSpec, opts Options, rp chart.RendererProvider) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("render %q: panic: %v", spec.Title, r)
		}
	}()
	ch, err := Chart(spec, opts)
	if err != nil {
		return fmt.Errorf("render %q: %w", spec.Title, err)
	}
	if err := ch.Render(rp, buf); err != nil {
		diag.Warnf("[render] %q: %v", spec.Title, err)
		return fmt.Errorf("render %q: %w", spec.Title, err)
	}
	return nil
}

// DrawNotice returns a copy of img with text centred on a light panel.
// Long text is not wrapped; it is clipped to the image.
func DrawNotice(img image.Image, text string) image.Image {
	if img == nil || strings.TrimSpace(text) == "" {
		return img
	}
	b := img.Bounds()
	out := image.NewRGBA(b)
	draw.Draw(out, b, img, b.Min, draw.Src)

	face := basicfont.Face7x13
	dr := &font.Drawer{Dst: out, Src: image.NewUniform(chart.ColorBlack), Face: face}
	tw := dr.MeasureString(text).Ceil()
	ascent := face.Metrics().Ascent.Ceil()
	x := b.Min.X + (b.Dx()-tw)/2
	y := b.Min.Y + (b.Dy()+ascent)/2

	const padX, padY = 14, 10
	panel := image.Rect(x-padX, y-ascent-padY, x+tw+padX, y+padY).Intersect(b)
	draw.Draw(out, panel, image.NewUniform(chart.ColorAlternateLightGray), image.Point{}, draw.Src)
	draw.Draw(out, image.Rect(panel.Min.X, panel.Min.Y, panel.Max.X, panel.Min.Y+2).Intersect(b),
		image.NewUniform(chart.ColorBlue), image.Point{}, draw.Src)

	dr.Dot = fixed.P(x, y)
	dr.DrawString(text)
	return out
}
