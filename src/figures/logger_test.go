package figures

import (
	"bytes"
	"log"
	"strings"
	"testing"
)

func TestInfofNoDoubleFormattingWithPercent(t *testing.T) {
	// Swap the base logger to capture output
	var buf bytes.Buffer
	saved := baseLogger
	baseLogger = log.New(&buf, "", 0)
	defer func() { baseLogger = saved }()

	SetLogLevel("info")

	msg := "lab trend: y = 57.9x^0.23 + 0.0 (95% band shown)"
	Infof(msg)

	out := buf.String()
	if !strings.Contains(out, "(95% band shown)") {
		t.Fatalf("log output missing expected percent segment: %s", out)
	}
	if strings.Contains(out, "%!b(MISSING)") {
		t.Fatalf("log output shows fmt artifact: %s", out)
	}
}

func TestLevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	saved := baseLogger
	baseLogger = log.New(&buf, "", 0)
	defer func() { baseLogger = saved }()

	SetLogLevel("warn")
	Infof("should be filtered")
	Warnf("should appear")
	SetLogLevel("info")

	out := buf.String()
	if strings.Contains(out, "filtered") {
		t.Fatalf("info line leaked at warn level: %s", out)
	}
	if !strings.Contains(out, "[WARN] should appear") {
		t.Fatalf("warn line missing: %s", out)
	}
}
