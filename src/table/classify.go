package table

// Classification is the whole-column verdict used to pick an axis
// interpretation.
type Classification int

const (
	Opaque Classification = iota
	Numeric
	DatetimeLike
)

func (c Classification) String() string {
	switch c {
	case Numeric:
		return "numeric"
	case DatetimeLike:
		return "datetime"
	default:
		return "opaque"
	}
}

// classifyColumn tries the datetime grammar first, then numbers. A single
// non-null cell that fails a grammar disqualifies the column from that class;
// null cells are missing values and never disqualify. A column with no
// non-null cells is Opaque.
func classifyColumn(cells []string) Classification {
	nonNull := 0
	allTime := true
	for _, c := range cells {
		if IsNull(c) {
			continue
		}
		nonNull++
		if _, err := ParseDatetime(c); err != nil {
			allTime = false
			break
		}
	}
	if nonNull == 0 {
		return Opaque
	}
	if allTime {
		return DatetimeLike
	}
	for _, c := range cells {
		if IsNull(c) {
			continue
		}
		if _, err := ParseNumber(c); err != nil {
			return Opaque
		}
	}
	return Numeric
}

func classifyAll(t *Table) []Classification {
	out := make([]Classification, len(t.names))
	for i := range t.names {
		out[i] = classifyColumn(t.cols[i])
	}
	return out
}

// Classification returns the load-time verdict for a column; ok is false for
// an unknown column.
func (t *Table) Classification(name string) (Classification, bool) {
	i, ok := t.index[name]
	if !ok {
		return Opaque, false
	}
	return t.classes[i], true
}

// Classifications returns the verdicts in column order.
func (t *Table) Classifications() []Classification {
	out := make([]Classification, len(t.classes))
	copy(out, t.classes)
	return out
}

// ClassifyColumns maps every column name to its classification.
func ClassifyColumns(t *Table) map[string]Classification {
	out := make(map[string]Classification, len(t.names))
	for i, n := range t.names {
		out[n] = t.classes[i]
	}
	return out
}

// DatetimeColumns lists the columns classified DatetimeLike, in column order.
func (t *Table) DatetimeColumns() []string {
	return t.columnsOf(DatetimeLike)
}

// NumericColumns lists the columns classified Numeric, in column order.
func (t *Table) NumericColumns() []string {
	return t.columnsOf(Numeric)
}

func (t *Table) columnsOf(c Classification) []string {
	var out []string
	for i, n := range t.names {
		if t.classes[i] == c {
			out = append(out, n)
		}
	}
	return out
}
