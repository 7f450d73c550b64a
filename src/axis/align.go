package axis

import "time"

// Pair is an x/y couple restricted to the rows valid on both axes, in
// original row order. Rows holds the surviving original row indices.
type Pair struct {
	X      Series
	Y      Series
	Rows   []int
	XTimes []time.Time // set when X.Kind is Datetime
	XVals  []float64   // numbers, or epoch seconds for a datetime x
	YVals  []float64
}

// Len is the number of aligned rows.
func (p Pair) Len() int { return len(p.Rows) }

// Empty reports a pair with no surviving rows; it renders as an empty plot.
func (p Pair) Empty() bool { return len(p.Rows) == 0 }

// DateX reports whether the x axis is a datetime axis.
func (p Pair) DateX() bool { return p.X.Kind == Datetime }

// Align intersects the valid rows of x and y. Rows beyond the shorter
// series are dropped.
func Align(x, y Series) Pair {
	n := x.Len()
	if y.Len() < n {
		n = y.Len()
	}
	p := Pair{X: x, Y: y}
	for i := 0; i < n; i++ {
		if !x.Valid[i] || !y.Valid[i] {
			continue
		}
		p.Rows = append(p.Rows, i)
		p.XVals = append(p.XVals, x.Values[i])
		p.YVals = append(p.YVals, y.Values[i])
		if x.Kind == Datetime {
			p.XTimes = append(p.XTimes, x.Times[i])
		}
	}
	return p
}
