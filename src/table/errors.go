package table

import (
	"errors"
	"fmt"
)

// ErrFormat is matched by every load-time failure (errors.Is).
var ErrFormat = errors.New("invalid delimited table")

// ErrNull is returned by the cell parsers for empty and missing-value cells.
var ErrNull = errors.New("null cell")

// FormatError reports why a source could not become a Table. The load is
// aborted; callers keep whatever Table they had before.
type FormatError struct {
	Source string
	Line   int // 1-based line in the source, 0 when not line specific
	Reason string
	Err    error
}

func (e *FormatError) Error() string {
	msg := e.Reason
	if e.Line > 0 {
		msg = fmt.Sprintf("%s (line %d)", msg, e.Line)
	}
	if e.Source != "" {
		msg = fmt.Sprintf("%s: %s", e.Source, msg)
	}
	if e.Err != nil {
		msg = fmt.Sprintf("%s: %v", msg, e.Err)
	}
	return msg
}

func (e *FormatError) Unwrap() error { return e.Err }

// Is lets errors.Is(err, ErrFormat) match any FormatError.
func (e *FormatError) Is(target error) bool { return target == ErrFormat }

func formatErrorf(source string, err error, reason string, args ...interface{}) *FormatError {
	return &FormatError{Source: source, Reason: fmt.Sprintf(reason, args...), Err: err}
}

// ParseError is a per-cell conversion failure. Classification and axis
// resolution absorb these; only the aggregate verdict is visible.
type ParseError struct {
	Value string
	As    string // "number" or "datetime"
	Err   error
}

func (e *ParseError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("cannot parse %q as %s: %v", e.Value, e.As, e.Err)
	}
	return fmt.Sprintf("cannot parse %q as %s", e.Value, e.As)
}

func (e *ParseError) Unwrap() error { return e.Err }
