package smooth

import (
	"math"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSmooth_TooFewPointsIsIdentity(t *testing.T) {
	x := []float64{4, 1, 3, 2}
	y := []float64{40, 10, 30, 20}
	for _, m := range []Method{LocalFilter, SplineResample} {
		res := Smooth(x, y, m)
		assert.False(t, res.Applied, m.String())
		assert.ErrorIs(t, res.Reason, ErrTooFewPoints)
		assert.Equal(t, x, res.X, "input order is kept")
		assert.Equal(t, y, res.Y)
	}
	res := Smooth(x, y, LocalFilter)
	res.X[0] = 99
	assert.Equal(t, 4.0, x[0], "result must not alias the input")
}

func TestSmooth_ThreeRows(t *testing.T) {
	res := Smooth([]float64{1, 2, 3}, []float64{5, 7, 6}, SplineResample)
	assert.False(t, res.Applied)
	assert.Equal(t, []float64{1, 2, 3}, res.X)
	assert.Equal(t, []float64{5, 7, 6}, res.Y)
}

func TestSmooth_LocalFilterSixPoints(t *testing.T) {
	x := []float64{1, 2, 3, 4, 5, 6}
	y := []float64{2, 4, 1, 5, 3, 6}
	res := Smooth(x, y, LocalFilter)

	require.True(t, res.Applied, "reason: %v", res.Reason)
	assert.Equal(t, x, res.X)
	require.Len(t, res.Y, 6)
	assert.NotEqual(t, y, res.Y)
	for i, v := range res.Y {
		assert.False(t, math.IsNaN(v) || math.IsInf(v, 0), "y[%d] not finite", i)
		assert.Less(t, math.Abs(v), 20.0)
	}
	// centered 5-point cubic weights are (-3, 12, 17, 12, -3)/35
	assert.InDelta(t, 110.0/35.0, res.Y[2], 1e-9)
}

func TestSmooth_FiveAlignedPointsFallsBackSorted(t *testing.T) {
	// window would be 3 which cannot carry a cubic
	res := Smooth([]float64{5, 3, 1, 4, 2}, []float64{50, 30, 10, 40, 20}, LocalFilter)
	assert.False(t, res.Applied)
	assert.ErrorIs(t, res.Reason, ErrWindowTooSmall)
	assert.Equal(t, []float64{1, 2, 3, 4, 5}, res.X)
	assert.Equal(t, []float64{10, 20, 30, 40, 50}, res.Y)
}

func TestSmooth_DropsNonFiniteAndSorts(t *testing.T) {
	x := []float64{6, 3, math.NaN(), 1, 5, 9, 2, 4}
	y := []float64{6, 3, 100, 1, 5, math.Inf(1), 2, 4}
	res := Smooth(x, y, LocalFilter)
	require.True(t, res.Applied, "reason: %v", res.Reason)
	assert.Equal(t, []float64{1, 2, 3, 4, 5, 6}, res.X)
	// a straight line survives a cubic filter untouched
	for i := range res.X {
		assert.InDelta(t, res.X[i], res.Y[i], 1e-9)
	}
}

func TestSmooth_SplineDomainContainment(t *testing.T) {
	x := []float64{0.5, 3, 1, 7.25, 2, 5}
	y := []float64{1, 0, 2, 3, 1, 2}
	res := Smooth(x, y, SplineResample)
	require.True(t, res.Applied, "reason: %v", res.Reason)

	assert.Equal(t, 30, res.Len())
	assert.Equal(t, 0.5, res.X[0])
	assert.Equal(t, 7.25, res.X[res.Len()-1])
	assert.True(t, sort.Float64sAreSorted(res.X))
	for _, v := range res.X {
		assert.GreaterOrEqual(t, v, 0.5)
		assert.LessOrEqual(t, v, 7.25)
	}
}

func TestSmooth_SplineLengthIsCapped(t *testing.T) {
	n := 400
	x := make([]float64, n)
	y := make([]float64, n)
	for i := range x {
		x[i] = float64(i)
		y[i] = math.Sin(float64(i) / 10)
	}
	res := Smooth(x, y, SplineResample)
	require.True(t, res.Applied)
	assert.Equal(t, MaxResample, res.Len())
}

func TestSmooth_SplineDuplicateXFallsBack(t *testing.T) {
	res := Smooth([]float64{3, 1, 1, 2, 4, 5}, []float64{3, 1, 9, 2, 4, 5}, SplineResample)
	assert.False(t, res.Applied)
	assert.ErrorIs(t, res.Reason, ErrDuplicateX)
	assert.Equal(t, []float64{1, 1, 2, 3, 4, 5}, res.X)
	assert.Equal(t, []float64{1, 9, 2, 3, 4, 5}, res.Y, "stable sort keeps row order for equal x")
}

func TestCubicSpline_ReproducesCubics(t *testing.T) {
	f := func(x float64) float64 { return x*x*x - 2*x + 1 }
	xs := []float64{0, 1, 2.5, 3, 4, 6, 7}
	ys := make([]float64, len(xs))
	for i, x := range xs {
		ys[i] = f(x)
	}
	sp, err := NewCubicSpline(xs, ys)
	require.NoError(t, err)

	lo, hi := sp.Domain()
	assert.Equal(t, 0.0, lo)
	assert.Equal(t, 7.0, hi)
	for _, x := range []float64{0.25, 1.7, 3.3, 5.5, 6.9} {
		assert.InDelta(t, f(x), sp.At(x), 1e-6, "x=%g", x)
	}
	assert.InDelta(t, f(0), sp.At(-10), 1e-9, "clamped below")
	assert.InDelta(t, f(7), sp.At(100), 1e-9, "clamped above")
	assert.True(t, math.IsNaN(sp.At(math.NaN())))
}

func TestNewCubicSpline_Errors(t *testing.T) {
	_, err := NewCubicSpline([]float64{1, 2, 3}, []float64{1, 2, 3})
	assert.ErrorIs(t, err, ErrTooFewPoints)
	_, err = NewCubicSpline([]float64{1, 2, 2, 3}, []float64{1, 2, 3, 4})
	assert.ErrorIs(t, err, ErrDuplicateX)
	_, err = NewCubicSpline([]float64{1, 2}, []float64{1})
	assert.Error(t, err)
}

func TestSavitzkyGolay_PreservesLowOrderPolynomials(t *testing.T) {
	y := make([]float64, 15)
	for i := range y {
		v := float64(i)
		y[i] = 0.5*v*v*v - 3*v*v + v - 4
	}
	out, err := SavitzkyGolay(y, 7, 3)
	require.NoError(t, err)
	require.Len(t, out, len(y))
	for i := range y {
		assert.InDelta(t, y[i], out[i], 1e-7, "i=%d", i)
	}
}

func TestSavitzkyGolay_Errors(t *testing.T) {
	_, err := SavitzkyGolay([]float64{1, 2, 3, 4, 5}, 3, 3)
	assert.ErrorIs(t, err, ErrWindowTooSmall)
	_, err = SavitzkyGolay([]float64{1, 2, 3, 4, 5}, 4, 1)
	assert.ErrorIs(t, err, ErrWindowTooSmall)
	_, err = SavitzkyGolay([]float64{1, 2, 3}, 5, 2)
	assert.ErrorIs(t, err, ErrTooFewPoints)
}

func TestFilterWindow(t *testing.T) {
	for n, want := range map[int]int{5: 3, 6: 5, 7: 5, 10: 9, 12: 11, 13: 11, 500: 11} {
		assert.Equal(t, want, FilterWindow(n), "n=%d", n)
	}
}

func TestParseMethod(t *testing.T) {
	m, err := ParseMethod("Spline")
	require.NoError(t, err)
	assert.Equal(t, SplineResample, m)
	m, err = ParseMethod("savgol")
	require.NoError(t, err)
	assert.Equal(t, LocalFilter, m)
	_, err = ParseMethod("loess")
	assert.Error(t, err)
}

func TestLinspace(t *testing.T) {
	assert.Equal(t, []float64{0, 0.25, 0.5, 0.75, 1}, Linspace(0, 1, 5))
	assert.Equal(t, []float64{2}, Linspace(2, 3, 1))
	assert.Nil(t, Linspace(0, 1, 0))
}
