package axis

import (
	"math"
	"time"
)

// EpochSeconds projects t onto fractional seconds since the Unix epoch.
func EpochSeconds(t time.Time) float64 {
	return float64(t.Unix()) + float64(t.Nanosecond())/1e9
}

// FromEpochSeconds is the inverse of EpochSeconds in UTC. The fraction is
// rounded to the microsecond, well inside the 1 s round-trip requirement
// at present-day magnitudes of float64.
func FromEpochSeconds(s float64) time.Time {
	sec := math.Floor(s)
	frac := math.Round((s-sec)*1e6) * 1e3
	if frac >= 1e9 {
		sec++
		frac = 0
	}
	return time.Unix(int64(sec), int64(frac)).UTC()
}

// TimesFromEpoch converts a slice of epoch seconds back to datetimes.
func TimesFromEpoch(xs []float64) []time.Time {
	out := make([]time.Time, len(xs))
	for i, s := range xs {
		out[i] = FromEpochSeconds(s)
	}
	return out
}
