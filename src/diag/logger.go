// Package diag is the process-wide leveled logger shared by the viewer, the
// headless CLI and the library packages.
package diag

import (
	"fmt"
	"io"
	"log"
	"os"
	"strings"
	"sync/atomic"
	"time"
)

// LogLevel represents severity.
type LogLevel int32

const (
	LevelDebug LogLevel = iota
	LevelInfo
	LevelWarn
	LevelError
)

var levelNames = map[string]LogLevel{
	"debug":   LevelDebug,
	"info":    LevelInfo,
	"warn":    LevelWarn,
	"warning": LevelWarn,
	"error":   LevelError,
}

var currentLevel int32 = int32(LevelInfo)

var baseLogger = log.New(os.Stderr, "", log.Ldate|log.Ltime|log.Lmicroseconds)

// SetLogLevel parses and sets the global log level. Unknown names are ignored
// and reported back as false.
func SetLogLevel(s string) bool {
	l, ok := levelNames[strings.ToLower(strings.TrimSpace(s))]
	if !ok {
		return false
	}
	atomic.StoreInt32(&currentLevel, int32(l))
	return true
}

// SetOutput redirects log lines (tests capture them this way).
func SetOutput(w io.Writer) { baseLogger.SetOutput(w) }

func getLevel() LogLevel { return LogLevel(atomic.LoadInt32(&currentLevel)) }

// GetLogLevel returns the current global log level.
func GetLogLevel() LogLevel { return getLevel() }

func (l LogLevel) String() string {
	switch l {
	case LevelDebug:
		return "DEBUG"
	case LevelWarn:
		return "WARN"
	case LevelError:
		return "ERROR"
	default:
		return "INFO"
	}
}

func logf(l LogLevel, format string, args ...interface{}) {
	if getLevel() > l {
		return
	}
	// A message without args is printed verbatim so literal % signs in
	// column names or file paths do not turn into %!x(MISSING).
	if len(args) == 0 {
		baseLogger.Printf("[%s] %s", l, format)
		return
	}
	baseLogger.Printf("[%s] %s", l, fmt.Sprintf(format, args...))
}

// Public helpers
func Debugf(format string, a ...interface{}) { logf(LevelDebug, format, a...) }
func Infof(format string, a ...interface{})  { logf(LevelInfo, format, a...) }
func Warnf(format string, a ...interface{})  { logf(LevelWarn, format, a...) }
func Errorf(format string, a ...interface{}) { logf(LevelError, format, a...) }

// TimeTrack logs the duration of a phase at debug level.
//
//	defer diag.TimeTrack(time.Now(), "load")
func TimeTrack(start time.Time, label string) {
	Debugf("%s took %s", label, time.Since(start))
}
