// Package axis turns a table column into a typed plotting axis: numeric
// values, or datetimes together with their epoch-second projection.
package axis

import (
	"fmt"
	"math"
	"strings"
	"time"

	"golang.org/x/text/cases"

	"github.com/EntangledQuantum/CSV-Viewer/src/table"
)

// Kind is the resolved interpretation of one axis.
type Kind int

const (
	Numeric Kind = iota
	Datetime
)

func (k Kind) String() string {
	if k == Datetime {
		return "datetime"
	}
	return "numeric"
}

// TimeNameHints is the vocabulary matched (case-insensitive substring)
// against column names before a datetime interpretation is attempted.
var TimeNameHints = []string{"time", "timestamp", "date", "hour", "minute", "second"}

// Options mirrors the per-chart controls that affect resolution.
type Options struct {
	// TreatAsNumeric forces a numeric reading; no datetime parsing happens.
	TreatAsNumeric bool
	// NameHint requires the column name to look like time before the
	// datetime grammar is tried. When false the load-time classification
	// alone decides.
	NameHint bool
}

// Series is one column projected for plotting. Values holds the numbers
// (epoch seconds for a datetime axis); Times is set only for Datetime.
// Invalid rows carry NaN / the zero time and are dropped by Align.
type Series struct {
	Column string
	Kind   Kind
	Values []float64
	Times  []time.Time
	Valid  []bool
}

// Len is the number of rows, valid or not.
func (s Series) Len() int { return len(s.Valid) }

// ValidCount is the number of rows that parsed.
func (s Series) ValidCount() int {
	n := 0
	for _, ok := range s.Valid {
		if ok {
			n++
		}
	}
	return n
}

// LooksLikeTime reports whether a column name contains one of TimeNameHints.
func LooksLikeTime(name string) bool {
	n := cases.Fold().String(name)
	for _, h := range TimeNameHints {
		if strings.Contains(n, h) {
			return true
		}
	}
	return false
}

// Resolve projects column of t according to opts. The decision order is
// TreatAsNumeric, then datetime (name hint + full-column parse), then numeric.
func Resolve(t *table.Table, column string, opts Options) (Series, error) {
	cells, ok := t.Column(column)
	if !ok {
		return Series{}, fmt.Errorf("resolve %q: unknown column", column)
	}
	if opts.TreatAsNumeric {
		return resolveNumeric(column, cells), nil
	}
	if wantsDatetime(t, column, opts) {
		if s, ok := resolveDatetime(column, cells); ok {
			return s, nil
		}
	}
	return resolveNumeric(column, cells), nil
}

func wantsDatetime(t *table.Table, column string, opts Options) bool {
	if opts.NameHint {
		return LooksLikeTime(column)
	}
	c, _ := t.Classification(column)
	return c == table.DatetimeLike
}

// resolveNumeric drops null, unparseable and infinite cells.
func resolveNumeric(column string, cells []string) Series {
	s := Series{Column: column, Kind: Numeric, Values: make([]float64, len(cells)), Valid: make([]bool, len(cells))}
	for i, c := range cells {
		v, err := table.ParseNumber(c)
		if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
			s.Values[i] = math.NaN()
			continue
		}
		s.Values[i] = v
		s.Valid[i] = true
	}
	return s
}

// resolveDatetime parses the whole column; ok is false as soon as one
// non-null cell fails. Null cells become invalid rows.
func resolveDatetime(column string, cells []string) (Series, bool) {
	s := Series{
		Column: column,
		Kind:   Datetime,
		Values: make([]float64, len(cells)),
		Times:  make([]time.Time, len(cells)),
		Valid:  make([]bool, len(cells)),
	}
	parsed := 0
	for i, c := range cells {
		if table.IsNull(c) {
			s.Values[i] = math.NaN()
			continue
		}
		ts, err := table.ParseDatetime(c)
		if err != nil {
			return Series{}, false
		}
		s.Times[i] = ts
		s.Values[i] = EpochSeconds(ts)
		s.Valid[i] = true
		parsed++
	}
	return s, parsed > 0
}
