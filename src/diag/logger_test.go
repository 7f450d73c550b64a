package diag

import (
	"bytes"
	"log"
	"strings"
	"testing"
	"time"
)

func captureLog(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	saved := baseLogger
	savedLevel := GetLogLevel()
	baseLogger = log.New(&buf, "", 0)
	t.Cleanup(func() {
		baseLogger = saved
		SetLogLevel(savedLevel.String())
	})
	return &buf
}

func TestInfof_NoDoubleFormattingWithPercent(t *testing.T) {
	buf := captureLog(t)
	SetLogLevel("info")

	msg := "[viewer] loaded humidity_%rh.csv with 120 rows (100.0% valid)"
	Infof(msg)

	out := buf.String()
	if !strings.Contains(out, "(100.0% valid)") || !strings.Contains(out, "humidity_%rh.csv") {
		t.Fatalf("log output missing expected percent segment: %s", out)
	}
	if strings.Contains(out, "MISSING") {
		t.Fatalf("log output still shows fmt artifact: %s", out)
	}
}

func TestLevelFiltering(t *testing.T) {
	buf := captureLog(t)
	SetLogLevel("warn")

	Debugf("debug %d", 1)
	Infof("info %d", 2)
	Warnf("warn %d", 3)
	Errorf("error %d", 4)

	out := buf.String()
	if strings.Contains(out, "debug 1") || strings.Contains(out, "info 2") {
		t.Fatalf("messages below warn leaked: %s", out)
	}
	if !strings.Contains(out, "[WARN] warn 3") || !strings.Contains(out, "[ERROR] error 4") {
		t.Fatalf("expected warn and error lines, got: %s", out)
	}
}

func TestSetLogLevel_UnknownKeepsCurrent(t *testing.T) {
	_ = captureLog(t)
	SetLogLevel("error")
	if SetLogLevel("verbose") {
		t.Fatalf("unknown level accepted")
	}
	if GetLogLevel() != LevelError {
		t.Fatalf("level changed on unknown name: %v", GetLogLevel())
	}
	if !SetLogLevel(" Warning ") || GetLogLevel() != LevelWarn {
		t.Fatalf("expected warning alias to map to WARN, got %v", GetLogLevel())
	}
}

func TestTimeTrack_DebugOnly(t *testing.T) {
	buf := captureLog(t)
	SetLogLevel("info")
	TimeTrack(time.Now(), "classify")
	if buf.Len() != 0 {
		t.Fatalf("TimeTrack should be silent above debug: %s", buf.String())
	}
	SetLogLevel("debug")
	TimeTrack(time.Now().Add(-time.Millisecond), "classify")
	if !strings.Contains(buf.String(), "[DEBUG] classify took") {
		t.Fatalf("expected timing line, got: %s", buf.String())
	}
}
