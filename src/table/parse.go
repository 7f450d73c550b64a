package table

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/araddon/dateparse"
)

// nullTokens are the cell spellings treated as missing values.
var nullTokens = map[string]struct{}{
	"":     {},
	"NA":   {},
	"N/A":  {},
	"NaN":  {},
	"nan":  {},
	"null": {},
	"NULL": {},
	"None": {},
}

// IsNull reports whether a raw cell is a missing value.
func IsNull(s string) bool {
	_, ok := nullTokens[strings.TrimSpace(s)]
	return ok
}

func trimCell(s string) string {
	return strings.TrimSpace(strings.Trim(strings.TrimSpace(s), "\""))
}

// ParseNumber converts a cell to float64. Null cells fail with ErrNull.
func ParseNumber(s string) (float64, error) {
	v := trimCell(s)
	if IsNull(v) {
		return math.NaN(), &ParseError{Value: s, As: "number", Err: ErrNull}
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return math.NaN(), &ParseError{Value: s, As: "number", Err: err}
	}
	return f, nil
}

func looksNumeric(v string) bool {
	_, err := strconv.ParseFloat(v, 64)
	return err == nil
}

// clockPattern matches a bare time of day: HH:MM, HH:MM:SS or HH:MM:SS.fff.
var clockPattern = regexp.MustCompile(`^\d{1,2}:\d{2}(:\d{2}(\.\d+)?)?$`)

// ClockDate is the day a bare time of day is placed on.
var ClockDate = time.Date(1970, 1, 1, 0, 0, 0, 0, time.UTC)

// parseClock reads a time-of-day cell on ClockDate. dateparse would take
// "09:15:30" for month 09, day 15, year 30.
func parseClock(v string) (time.Time, error) {
	layout := "15:04"
	if strings.Count(v, ":") == 2 {
		layout = "15:04:05"
	}
	tod, err := time.Parse(layout, v)
	if err != nil {
		return time.Time{}, err
	}
	return ClockDate.Add(tod.Sub(time.Date(0, 1, 1, 0, 0, 0, 0, time.UTC))), nil
}

// ParseDatetime parses a cell with a best-effort, format-agnostic grammar.
// Times without an explicit zone are read as UTC. Plain numbers are rejected
// so that a numeric column never classifies as datetime.
func ParseDatetime(s string) (t time.Time, err error) {
	v := trimCell(s)
	if IsNull(v) {
		return time.Time{}, &ParseError{Value: s, As: "datetime", Err: ErrNull}
	}
	if looksNumeric(v) {
		return time.Time{}, &ParseError{Value: s, As: "datetime", Err: fmt.Errorf("plain number")}
	}
	if clockPattern.MatchString(v) {
		t, err := parseClock(v)
		if err != nil {
			return time.Time{}, &ParseError{Value: s, As: "datetime", Err: err}
		}
		return t, nil
	}
	defer func() {
		// dateparse indexes into the input while scanning; malformed input
		// has been known to panic instead of returning an error.
		if r := recover(); r != nil {
			t = time.Time{}
			err = &ParseError{Value: s, As: "datetime", Err: fmt.Errorf("parser panic: %v", r)}
		}
	}()
	t, err = dateparse.ParseIn(v, time.UTC)
	if err != nil {
		return time.Time{}, &ParseError{Value: s, As: "datetime", Err: err}
	}
	if t.IsZero() || t.Year() == 0 {
		// literal-only layouts give the zero time; a missing year gives year 0
		return time.Time{}, &ParseError{Value: s, As: "datetime", Err: fmt.Errorf("no date fields")}
	}
	return t.UTC(), nil
}
