package smooth

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/interp"
)

// CubicSpline is a not-a-knot cubic interpolant through sorted samples.
// Evaluation outside the fitted domain is clamped to it.
type CubicSpline struct {
	lo, hi float64
	fit    interp.NotAKnotCubic
}

// NewCubicSpline fits xs (strictly increasing) and ys. At least 4 points are
// required for the not-a-knot end conditions.
func NewCubicSpline(xs, ys []float64) (*CubicSpline, error) {
	if len(xs) != len(ys) {
		return nil, fmt.Errorf("spline: %d x values for %d y values", len(xs), len(ys))
	}
	if len(xs) < 4 {
		return nil, fmt.Errorf("spline needs 4 points, have %d: %w", len(xs), ErrTooFewPoints)
	}
	for i := 1; i < len(xs); i++ {
		if !(xs[i] > xs[i-1]) {
			return nil, fmt.Errorf("spline: x[%d]=%g follows %g: %w", i, xs[i], xs[i-1], ErrDuplicateX)
		}
	}
	s := &CubicSpline{lo: xs[0], hi: xs[len(xs)-1]}
	if err := s.fit.Fit(xs, ys); err != nil {
		return nil, fmt.Errorf("spline fit: %v: %w", err, ErrSingular)
	}
	return s, nil
}

// Domain is the closed x interval covered by the fit.
func (s *CubicSpline) Domain() (float64, float64) { return s.lo, s.hi }

// At evaluates the interpolant, clamping x into Domain. NaN maps to NaN.
func (s *CubicSpline) At(x float64) float64 {
	if math.IsNaN(x) {
		return math.NaN()
	}
	if x < s.lo {
		x = s.lo
	} else if x > s.hi {
		x = s.hi
	}
	return s.fit.Predict(x)
}
