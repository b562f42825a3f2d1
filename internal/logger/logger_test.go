package logger

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func capture(t *testing.T, v bool) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	prev := SetOutput(&buf)
	wasVerbose := IsVerbose()
	SetVerbose(v)
	t.Cleanup(func() {
		SetOutput(prev)
		SetVerbose(wasVerbose)
	})
	return &buf
}

func TestQuietMode(t *testing.T) {
	buf := capture(t, false)

	Debug("hidden %d", 1)
	Info("hidden")
	Section("hidden")
	Timed("step")()

	assert.Empty(t, buf.String())
}

func TestVerboseMode(t *testing.T) {
	buf := capture(t, true)

	Section("Check")
	Debug("loaded %d paragraphs", 3)
	Info("ok")

	assert.Equal(t, "\n=== Check ===\n[DEBUG] loaded 3 paragraphs\n[INFO] ok\n", buf.String())
}

func TestWarnAlwaysPrinted(t *testing.T) {
	buf := capture(t, false)

	Warn("rule %s failed", "font-size")

	assert.Equal(t, "[WARN] rule font-size failed\n", buf.String())
}

func TestTimed(t *testing.T) {
	buf := capture(t, true)

	Timed("evaluate %s", "a.docx")()

	assert.Contains(t, buf.String(), "[DEBUG] evaluate a.docx took ")
}
