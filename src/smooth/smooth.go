// Package smooth produces a smoothed overlay curve from noisy, irregular
// samples, either with a Savitzky-Golay local polynomial filter or by
// resampling a cubic interpolant. Smoothing never fails outright: when it
// cannot proceed the input comes back (sorted where possible) and Result
// records why.
package smooth

import (
	"errors"
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/EntangledQuantum/CSV-Viewer/src/diag"
)

// Method selects the smoothing algorithm.
type Method int

const (
	// LocalFilter is a Savitzky-Golay filter (degree 3, window up to 11).
	LocalFilter Method = iota
	// SplineResample evaluates a cubic interpolant on a denser even grid.
	SplineResample
)

func (m Method) String() string {
	if m == SplineResample {
		return "spline"
	}
	return "savgol"
}

// ParseMethod accepts "savgol"/"local" and "spline"/"cubic".
func ParseMethod(s string) (Method, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "savgol", "savitzky-golay", "local", "":
		return LocalFilter, nil
	case "spline", "cubic", "cubic-spline":
		return SplineResample, nil
	}
	return LocalFilter, fmt.Errorf("unknown smoothing method %q (want savgol or spline)", s)
}

const (
	// MinPoints is the smallest finite sample count either method accepts.
	MinPoints = 5
	// MaxWindow caps the Savitzky-Golay window length.
	MaxWindow = 11
	// PolyOrder is the Savitzky-Golay polynomial degree.
	PolyOrder = 3
	// MaxResample caps the spline output length.
	MaxResample = 1000
	// ResampleFactor is the spline output density relative to the input.
	ResampleFactor = 5
)

var (
	ErrTooFewPoints   = errors.New("fewer than 5 finite points")
	ErrWindowTooSmall = errors.New("filter window too small for polynomial order")
	ErrDuplicateX     = errors.New("duplicate x values")
	ErrSingular       = errors.New("singular system")
	ErrNonFinite      = errors.New("non-finite smoothed value")
)

// Result is a smoothed curve. When Applied is false, X/Y are the input
// (unchanged, or sorted and filtered) and Reason holds the cause.
type Result struct {
	X       []float64
	Y       []float64
	Method  Method
	Applied bool
	Reason  error
}

// Len is the number of output points.
func (r Result) Len() int { return len(r.X) }

// Smooth applies method to the pairs (x[i], y[i]).
func Smooth(x, y []float64, method Method) Result {
	if countFinite(x) < MinPoints || countFinite(y) < MinPoints {
		return Result{X: clone(x), Y: clone(y), Method: method, Reason: ErrTooFewPoints}
	}
	xs, ys := sortedFinite(x, y)
	fallback := func(err error) Result {
		diag.Debugf("[smooth] %s fallback on %d points: %v", method, len(xs), err)
		return Result{X: xs, Y: ys, Method: method, Reason: err}
	}
	if len(xs) < MinPoints {
		return fallback(ErrTooFewPoints)
	}

	switch method {
	case SplineResample:
		sp, err := NewCubicSpline(xs, ys)
		if err != nil {
			return fallback(err)
		}
		n := ResampleFactor * len(xs)
		if n > MaxResample {
			n = MaxResample
		}
		lo, hi := sp.Domain()
		nx := Linspace(lo, hi, n)
		ny := make([]float64, len(nx))
		for i, v := range nx {
			ny[i] = sp.At(v)
		}
		if !allFinite(ny) {
			return fallback(ErrNonFinite)
		}
		return Result{X: nx, Y: ny, Method: method, Applied: true}
	default:
		window := FilterWindow(len(xs))
		if window <= 2 {
			return fallback(ErrWindowTooSmall)
		}
		sy, err := SavitzkyGolay(ys, window, PolyOrder)
		if err != nil {
			return fallback(err)
		}
		if !allFinite(sy) {
			return fallback(ErrNonFinite)
		}
		return Result{X: xs, Y: sy, Method: method, Applied: true}
	}
}

// FilterWindow is the odd Savitzky-Golay window used for n points:
// min(11, n - n%2 - 1).
func FilterWindow(n int) int {
	w := n - n%2 - 1
	if w > MaxWindow {
		w = MaxWindow
	}
	return w
}

func countFinite(v []float64) int {
	n := 0
	for _, f := range v {
		if !math.IsNaN(f) && !math.IsInf(f, 0) {
			n++
		}
	}
	return n
}

func allFinite(v []float64) bool {
	return countFinite(v) == len(v)
}

func clone(v []float64) []float64 {
	if v == nil {
		return nil
	}
	out := make([]float64, len(v))
	copy(out, v)
	return out
}

// sortedFinite keeps the pairs where both values are finite and stable-sorts
// them by x, so equal x keep their original order.
func sortedFinite(x, y []float64) ([]float64, []float64) {
	n := len(x)
	if len(y) < n {
		n = len(y)
	}
	idx := make([]int, 0, n)
	for i := 0; i < n; i++ {
		if math.IsNaN(x[i]) || math.IsInf(x[i], 0) || math.IsNaN(y[i]) || math.IsInf(y[i], 0) {
			continue
		}
		idx = append(idx, i)
	}
	sort.SliceStable(idx, func(a, b int) bool { return x[idx[a]] < x[idx[b]] })
	xs := make([]float64, len(idx))
	ys := make([]float64, len(idx))
	for k, i := range idx {
		xs[k] = x[i]
		ys[k] = y[i]
	}
	return xs, ys
}

// Linspace returns n evenly spaced values over [lo, hi] with both endpoints
// exact. n < 2 yields just lo.
func Linspace(lo, hi float64, n int) []float64 {
	if n <= 0 {
		return nil
	}
	if n == 1 {
		return []float64{lo}
	}
	out := make([]float64, n)
	step := (hi - lo) / float64(n-1)
	for i := range out {
		out[i] = lo + float64(i)*step
		if out[i] > hi {
			out[i] = hi
		}
	}
	out[n-1] = hi
	return out
}
