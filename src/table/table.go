// Package table loads delimited text into an immutable column table and
// classifies each column as numeric, datetime-like or opaque.
package table

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/EntangledQuantum/CSV-Viewer/src/diag"
)

// MinColumns is the smallest table the viewer can plot (one x, one y).
const MinColumns = 2

// Options controls how delimited text is read.
type Options struct {
	Delimiter        rune // field delimiter (default ',')
	TrimLeadingSpace bool // ignore leading white space in a field
}

// DefaultOptions returns comma-separated parsing with leading space trimmed.
func DefaultOptions() Options {
	return Options{Delimiter: ',', TrimLeadingSpace: true}
}

// Table is an ordered set of named columns of raw string cells. All columns
// share one length. A Table never changes after Load returns it, so charts
// may share it by pointer.
type Table struct {
	source  string
	names   []string
	index   map[string]int
	cols    [][]string
	classes []Classification
}

// LoadFile opens path and loads it with Load.
func LoadFile(path string, opts Options) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, formatErrorf(filepath.Base(path), err, "cannot open file")
	}
	defer f.Close()
	return load(filepath.Base(path), f, opts)
}

// Load parses r as delimited text with a header row. The result has at least
// MinColumns columns; any structural problem is a *FormatError.
func Load(r io.Reader, opts Options) (*Table, error) {
	return load("", r, opts)
}

// LoadNamed is Load with a source name used in errors and status lines.
func LoadNamed(name string, r io.Reader, opts Options) (*Table, error) {
	return load(name, r, opts)
}

func load(source string, r io.Reader, opts Options) (*Table, error) {
	defer diag.TimeTrack(time.Now(), "load "+source)
	if opts.Delimiter == 0 {
		opts.Delimiter = ','
	}
	cr := csv.NewReader(r)
	cr.Comma = opts.Delimiter
	cr.TrimLeadingSpace = opts.TrimLeadingSpace

	header, err := cr.Read()
	if err == io.EOF {
		return nil, formatErrorf(source, nil, "no header row")
	}
	if err != nil {
		return nil, wrapCSVError(source, err)
	}
	if len(header) < MinColumns {
		return nil, formatErrorf(source, nil, "CSV must have at least %d columns, found %d", MinColumns, len(header))
	}
	names := normalizeHeader(header)
	cols := make([][]string, len(names))
	for {
		rec, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, wrapCSVError(source, err)
		}
		for i, cell := range rec {
			cols[i] = append(cols[i], cell)
		}
	}
	t := &Table{source: source, names: names, cols: cols, index: make(map[string]int, len(names))}
	for i, n := range names {
		t.index[n] = i
	}
	t.classes = classifyAll(t)
	diag.Debugf("[table] loaded %q: %d rows x %d columns", source, t.NumRows(), t.NumColumns())
	return t, nil
}

func wrapCSVError(source string, err error) error {
	var pe *csv.ParseError
	if errors.As(err, &pe) {
		fe := formatErrorf(source, pe.Err, "malformed delimited text")
		fe.Line = pe.Line
		return fe
	}
	return formatErrorf(source, err, "cannot read source")
}

// normalizeHeader trims names, names blank headers "Unnamed: i" and suffixes
// repeated names with ".1", ".2", ...
func normalizeHeader(header []string) []string {
	out := make([]string, len(header))
	used := make(map[string]struct{}, len(header))
	suffix := make(map[string]int)
	for i, h := range header {
		n := strings.TrimSpace(strings.TrimPrefix(h, "\ufeff"))
		if n == "" {
			n = fmt.Sprintf("Unnamed: %d", i)
		}
		if _, dup := used[n]; dup {
			base, k := n, suffix[n]
			for {
				k++
				cand := fmt.Sprintf("%s.%d", base, k)
				if _, taken := used[cand]; !taken {
					n = cand
					break
				}
			}
			suffix[base] = k
		}
		used[n] = struct{}{}
		out[i] = n
	}
	return out
}

// Source is the file name the table was loaded from, if any.
func (t *Table) Source() string { return t.source }

// Columns returns the column names in file order.
func (t *Table) Columns() []string {
	out := make([]string, len(t.names))
	copy(out, t.names)
	return out
}

func (t *Table) NumColumns() int { return len(t.names) }

// NumRows is the common length of all columns.
func (t *Table) NumRows() int {
	if len(t.cols) == 0 {
		return 0
	}
	return len(t.cols[0])
}

func (t *Table) HasColumn(name string) bool {
	_, ok := t.index[name]
	return ok
}

// Column returns a copy of the raw cells of a column.
func (t *Table) Column(name string) ([]string, bool) {
	i, ok := t.index[name]
	if !ok {
		return nil, false
	}
	out := make([]string, len(t.cols[i]))
	copy(out, t.cols[i])
	return out, true
}

// Cell returns one raw cell; ok is false for an unknown column or row.
func (t *Table) Cell(row int, name string) (string, bool) {
	i, ok := t.index[name]
	if !ok || row < 0 || row >= len(t.cols[i]) {
		return "", false
	}
	return t.cols[i][row], true
}
