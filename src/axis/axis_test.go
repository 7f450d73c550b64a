package axis

import (
	"math"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/EntangledQuantum/CSV-Viewer/src/table"
)

func load(t *testing.T, csvText string) *table.Table {
	t.Helper()
	tbl, err := table.Load(strings.NewReader(csvText), table.DefaultOptions())
	require.NoError(t, err)
	return tbl
}

const sensorCSV = "timestamp,value\n" +
	"2024-01-01 00:00:00,1\n" +
	"2024-01-01 00:00:10,2\n" +
	"2024-01-01 00:00:20,x\n" +
	"2024-01-01 00:00:30,4\n"

func TestResolve_TimestampColumnWithNameHint(t *testing.T) {
	tbl := load(t, sensorCSV)

	s, err := Resolve(tbl, "timestamp", Options{TreatAsNumeric: false, NameHint: true})
	require.NoError(t, err)
	assert.Equal(t, Datetime, s.Kind)
	require.Len(t, s.Times, 4)
	assert.Equal(t, time.Date(2024, 1, 1, 0, 0, 10, 0, time.UTC), s.Times[1])
	assert.Equal(t, 4, s.ValidCount())
	assert.InDelta(t, EpochSeconds(s.Times[3]), s.Values[3], 1e-9)
}

func TestResolve_OverrideNeverParsesDatetimes(t *testing.T) {
	tbl := load(t, sensorCSV)

	s, err := Resolve(tbl, "timestamp", Options{TreatAsNumeric: true, NameHint: true})
	require.NoError(t, err)
	assert.Equal(t, Numeric, s.Kind)
	assert.Nil(t, s.Times)
	assert.Equal(t, 0, s.ValidCount(), "date strings are not numbers")

	v, err := Resolve(tbl, "value", Options{TreatAsNumeric: true})
	require.NoError(t, err)
	assert.Equal(t, []bool{true, true, false, true}, v.Valid)
	assert.True(t, math.IsNaN(v.Values[2]))
}

func TestResolve_NameWithoutHintStaysNumeric(t *testing.T) {
	tbl := load(t, "when,value\n2024-01-01,1\n2024-01-02,2\n")

	s, err := Resolve(tbl, "when", Options{NameHint: true})
	require.NoError(t, err)
	assert.Equal(t, Numeric, s.Kind, "\"when\" is not in the time vocabulary")

	// without the name hint the load-time classification decides
	s, err = Resolve(tbl, "when", Options{NameHint: false})
	require.NoError(t, err)
	assert.Equal(t, Datetime, s.Kind)
}

func TestResolve_HintMatchButUnparseableFallsBackToNumeric(t *testing.T) {
	tbl := load(t, "hour,value\n1,10\n2,11\n3,12\n")
	s, err := Resolve(tbl, "hour", Options{NameHint: true})
	require.NoError(t, err)
	assert.Equal(t, Numeric, s.Kind)
	assert.Equal(t, []float64{1, 2, 3}, s.Values)
}

func TestResolve_UnknownColumn(t *testing.T) {
	tbl := load(t, sensorCSV)
	_, err := Resolve(tbl, "nope", Options{})
	assert.Error(t, err)
}

func TestLooksLikeTime(t *testing.T) {
	for _, name := range []string{"Time", "TIMESTAMP_ns", "log_date", "Hour of day", "minutes", "Seconds"} {
		assert.True(t, LooksLikeTime(name), name)
	}
	for _, name := range []string{"value", "temp", "when", ""} {
		assert.False(t, LooksLikeTime(name), name)
	}
}

func TestAlign_IntersectsValidRows(t *testing.T) {
	tbl := load(t, "a,b\n1,10\nx,20\n3,\n4,40\n")
	x, err := Resolve(tbl, "a", Options{TreatAsNumeric: true})
	require.NoError(t, err)
	y, err := Resolve(tbl, "b", Options{TreatAsNumeric: true})
	require.NoError(t, err)

	p := Align(x, y)
	assert.Equal(t, []int{0, 3}, p.Rows)
	assert.Equal(t, []float64{1, 4}, p.XVals)
	assert.Equal(t, []float64{10, 40}, p.YVals)
	assert.False(t, p.DateX())
	assert.Equal(t, 2, p.Len())
}

func TestAlign_EmptyIsNotAnError(t *testing.T) {
	tbl := load(t, "a,b\nx,1\n2,y\n")
	x, _ := Resolve(tbl, "a", Options{TreatAsNumeric: true})
	y, _ := Resolve(tbl, "b", Options{TreatAsNumeric: true})
	p := Align(x, y)
	assert.True(t, p.Empty())
}

func TestAlign_DatetimeCarriesTimes(t *testing.T) {
	tbl := load(t, sensorCSV)
	x, _ := Resolve(tbl, "timestamp", Options{NameHint: true})
	y, _ := Resolve(tbl, "value", Options{TreatAsNumeric: true})
	p := Align(x, y)
	require.True(t, p.DateX())
	assert.Equal(t, []int{0, 1, 3}, p.Rows)
	require.Len(t, p.XTimes, 3)
	assert.Equal(t, time.Date(2024, 1, 1, 0, 0, 30, 0, time.UTC), p.XTimes[2])
}

func TestEpochRoundTrip(t *testing.T) {
	base := time.Date(2025, 7, 14, 13, 45, 12, 0, time.UTC)
	for i := 0; i < 500; i++ {
		ts := base.Add(time.Duration(i) * 37 * time.Second).Add(time.Duration(i) * time.Millisecond)
		back := FromEpochSeconds(EpochSeconds(ts))
		diff := back.Sub(ts)
		if diff < 0 {
			diff = -diff
		}
		require.Less(t, diff, time.Second, "round trip of %v gave %v", ts, back)
		assert.Equal(t, ts.Truncate(time.Second), back.Truncate(time.Second))
	}
	out := TimesFromEpoch([]float64{0, 1.5})
	assert.Equal(t, time.Unix(0, 0).UTC(), out[0])
	assert.Equal(t, time.Unix(1, 500_000_000).UTC(), out[1])
}

func TestResolve_InfiniteCellsAreDropped(t *testing.T) {
	tbl := load(t, "x,y\n1,1\n2,inf\n-Infinity,2\n4,3\n")
	x, err := Resolve(tbl, "x", Options{TreatAsNumeric: true})
	require.NoError(t, err)
	y, err := Resolve(tbl, "y", Options{TreatAsNumeric: true})
	require.NoError(t, err)
	assert.Equal(t, []bool{true, true, false, true}, x.Valid)
	assert.Equal(t, []bool{true, false, true, true}, y.Valid)

	p := Align(x, y)
	assert.Equal(t, []int{0, 3}, p.Rows)
	assert.Equal(t, []float64{1, 3}, p.YVals)
}

func TestResolve_TimeOfDayColumn(t *testing.T) {
	tbl := load(t, "time,v\n09:15:30,1\n09:15:31,2\n09:15:32,3\n")
	s, err := Resolve(tbl, "time", Options{NameHint: true})
	require.NoError(t, err)
	require.Equal(t, Datetime, s.Kind)
	assert.Equal(t, table.ClockDate.Add(9*time.Hour+15*time.Minute+32*time.Second), s.Times[2])
}
