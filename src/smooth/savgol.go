package smooth

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// SavitzkyGolay smooths y with a least-squares polynomial of the given degree
// over a sliding odd window. Interior points use the centered window; the
// first and last window/2 points are read off the polynomial fitted to the
// first and last full window, so the output has the same length as y.
// Samples are assumed evenly spaced.
func SavitzkyGolay(y []float64, window, degree int) ([]float64, error) {
	if window < 1 || window%2 == 0 {
		return nil, fmt.Errorf("window %d must be odd and positive: %w", window, ErrWindowTooSmall)
	}
	if degree < 0 || degree >= window {
		return nil, fmt.Errorf("degree %d needs a window longer than %d: %w", degree, window, ErrWindowTooSmall)
	}
	n := len(y)
	if n < window {
		return nil, fmt.Errorf("%d samples shorter than window %d: %w", n, window, ErrTooFewPoints)
	}
	h, err := projection(window, degree)
	if err != nil {
		return nil, err
	}
	half := window / 2
	out := make([]float64, n)
	for i := 0; i < n; i++ {
		start, row := i-half, half
		switch {
		case i < half:
			start, row = 0, i
		case i >= n-half:
			start, row = n-window, i-(n-window)
		}
		var acc float64
		for j := 0; j < window; j++ {
			acc += h.At(row, j) * y[start+j]
		}
		out[i] = acc
	}
	return out, nil
}

// projection returns the window x window hat matrix A (AᵀA)⁻¹ Aᵀ of the
// polynomial least-squares fit on positions -half..half. Row r applied to a
// window of samples gives the fitted value at position r.
func projection(window, degree int) (*mat.Dense, error) {
	half := window / 2
	a := mat.NewDense(window, degree+1, nil)
	for i := 0; i < window; i++ {
		t := float64(i - half)
		p := 1.0
		for k := 0; k <= degree; k++ {
			a.Set(i, k, p)
			p *= t
		}
	}
	eye := mat.NewDense(window, window, nil)
	for i := 0; i < window; i++ {
		eye.Set(i, i, 1)
	}
	var pinv mat.Dense
	if err := pinv.Solve(a, eye); err != nil {
		return nil, fmt.Errorf("savitzky-golay fit (window %d, degree %d): %v: %w", window, degree, err, ErrSingular)
	}
	var h mat.Dense
	h.Mul(a, &pinv)
	return &h, nil
}
