package render

import (
	"bytes"
	"errors"
	"fmt"
	"image/jpeg"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/wcharczuk/go-chart/v2"

	"github.com/EntangledQuantum/CSV-Viewer/src/plot"
)

// Format is an export file format.
type Format int

const (
	PNG Format = iota
	JPEG
	SVG
)

func (f Format) String() string {
	switch f {
	case JPEG:
		return "jpeg"
	case SVG:
		return "svg"
	default:
		return "png"
	}
}

// ErrUnsupportedFormat is returned for extensions without an encoder (PDF among them).
var ErrUnsupportedFormat = errors.New("unsupported image format")

// Extensions lists the accepted file extensions, for save dialogs.
var Extensions = []string{".png", ".jpg", ".jpeg", ".svg"}

// FormatFromPath picks the format from the file extension. A path without
// extension is PNG.
func FormatFromPath(path string) (Format, error) {
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case "", ".png":
		return PNG, nil
	case ".jpg", ".jpeg":
		return JPEG, nil
	case ".svg":
		return SVG, nil
	case ".pdf":
		return PNG, fmt.Errorf("no PDF encoder, save as .png, .jpg or .svg: %w", ErrUnsupportedFormat)
	default:
		return PNG, fmt.Errorf("%s: %w", ext, ErrUnsupportedFormat)
	}
}

// Encode writes spec to w in format.
func Encode(w io.Writer, spec plot.ChartSpec, format Format, opts Options) error {
	opts = opts.normalized()
	switch format {
	case SVG:
		var buf bytes.Buffer
		if err := renderTo(&buf, spec, opts, chart.SVG); err != nil {
			return err
		}
		_, err := w.Write(buf.Bytes())
		return err
	case JPEG:
		img, err := Image(spec, opts)
		if err != nil {
			return err
		}
		return jpeg.Encode(w, img, &jpeg.Options{Quality: 92})
	case PNG:
		if spec.Empty() {
			img, err := Image(spec, opts)
			if err != nil {
				return err
			}
			return png.Encode(w, img)
		}
		var buf bytes.Buffer
		if err := renderTo(&buf, spec, opts, chart.PNG); err != nil {
			return err
		}
		_, err := w.Write(buf.Bytes())
		return err
	}
	return fmt.Errorf("format %d: %w", format, ErrUnsupportedFormat)
}

// SaveFile writes spec to path, picking the format from the extension. The
// file is only created once the chart rendered.
func SaveFile(path string, spec plot.ChartSpec, opts Options) error {
	format, err := FormatFromPath(path)
	if err != nil {
		return err
	}
	var buf bytes.Buffer
	if err := Encode(&buf, spec, format, opts); err != nil {
		return err
	}
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("save chart: %w", err)
	}
	return nil
}
