package render

import (
	"fmt"
	"math"
	"time"

	"github.com/wcharczuk/go-chart/v2"
)

// ComputeChartDimensions applies the width/height clamp rules used for charts.
// Input: desired raw width (e.g., panel width). Returns clamped width & height.
func ComputeChartDimensions(rawW int) (int, int) {
	w := rawW
	if w < 800 {
		w = 800
	}
	h := int(float32(w) * 0.5)
	if h < 320 {
		h = 320
	}
	if h > 600 {
		h = 600
	}
	return w, h
}

// NiceBounds expands [min,max] by a small margin and rounds to "nice" numbers for readability.
func NiceBounds(min, max float64) (float64, float64) {
	if math.IsNaN(min) || math.IsNaN(max) {
		return min, max
	}
	if max <= min {
		max = min + 1
	}
	span := max - min
	// 5% margin on both sides
	pad := span * 0.05
	a := min - pad
	b := max + pad
	mag := math.Pow(10, math.Floor(math.Log10(span)))
	if !math.IsInf(mag, 0) && mag > 0 {
		a = math.Floor(a/mag) * mag
		b = math.Ceil(b/mag) * mag
	}
	return a, b
}

// NiceTicks generates about n tick marks between [min, max] using 1, 2, 2.5, 5
// increments scaled by a power of ten.
func NiceTicks(min, max float64, n int) []chart.Tick {
	if n < 2 || math.IsNaN(min) || math.IsNaN(max) {
		return nil
	}
	if max <= min {
		max = min + 1
	}
	span := max - min
	mag := math.Pow(10, math.Floor(math.Log10(span/float64(n-1))))
	bestStep := mag
	bestScore := math.MaxFloat64
	for _, c := range []float64{1, 2, 2.5, 5, 10} {
		step := c * mag
		count := math.Ceil(span / step)
		if count < 2 {
			count = 2
		}
		if score := math.Abs(count - float64(n)); score < bestScore {
			bestScore = score
			bestStep = step
		}
	}
	start := math.Floor(min/bestStep) * bestStep
	end := math.Ceil(max/bestStep) * bestStep
	var ticks []chart.Tick
	for i := 0; ; i++ {
		v := start + float64(i)*bestStep
		if v > end+bestStep/2 || len(ticks) > n+2 {
			break
		}
		ticks = append(ticks, chart.Tick{Value: v, Label: FormatTick(v)})
	}
	return ticks
}

// FormatTick is a compact numeric label.
func FormatTick(v float64) string {
	av := math.Abs(v)
	switch {
	case v == 0:
		return "0"
	case av >= 100:
		return fmt.Sprintf("%.0f", v)
	case av >= 10:
		return fmt.Sprintf("%.1f", v)
	case av >= 0.01:
		return fmt.Sprintf("%.2f", v)
	default:
		return fmt.Sprintf("%.2g", v)
	}
}

// PickTimeStep selects a readable step and label format for a given time span.
func PickTimeStep(span time.Duration) (time.Duration, string) {
	switch {
	case span <= 2*time.Minute:
		return 10 * time.Second, "15:04:05"
	case span <= 10*time.Minute:
		return 1 * time.Minute, "15:04"
	case span <= 30*time.Minute:
		return 5 * time.Minute, "15:04"
	case span <= 2*time.Hour:
		return 10 * time.Minute, "15:04"
	case span <= 6*time.Hour:
		return 30 * time.Minute, "Jan 2 15:04"
	case span <= 24*time.Hour:
		return 1 * time.Hour, "Jan 2 15:04"
	case span <= 3*24*time.Hour:
		return 6 * time.Hour, "Jan 2 15:04"
	case span <= 14*24*time.Hour:
		return 24 * time.Hour, "Jan 2"
	case span <= 120*24*time.Hour:
		return 7 * 24 * time.Hour, "Jan 2"
	default:
		return 30 * 24 * time.Hour, "2006-01-02"
	}
}

// maxTimeTicks keeps labels readable.
const maxTimeTicks = 20

// MakeTimeTicks returns ticks from min (rounded down to a step boundary) up
// to one step past max. Labels are formatted in UTC. The step is widened by
// a whole multiple when the span would need more than maxTimeTicks ticks.
func MakeTimeTicks(minT, maxT time.Time, step time.Duration, labelFmt string) []chart.Tick {
	if step <= 0 {
		return nil
	}
	if n := maxT.Sub(minT) / step; n > maxTimeTicks-2 {
		step *= n/(maxTimeTicks-2) + 1
	}
	st := int64(step / time.Second)
	if st <= 0 {
		st = 1
	}
	s := minT.UTC().Unix()
	if s < 0 && s%st != 0 {
		s -= st
	}
	aligned := time.Unix((s/st)*st, 0).UTC()
	var ticks []chart.Tick
	for t := aligned; !t.After(maxT.UTC().Add(step)); t = t.Add(step) {
		ticks = append(ticks, chart.Tick{Value: chart.TimeToFloat64(t), Label: t.Format(labelFmt)})
		if len(ticks) >= maxTimeTicks {
			break
		}
	}
	return ticks
}
