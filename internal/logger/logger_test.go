package logger

import (
	"bytes"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func capture(t *testing.T, verboseMode bool) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	SetOutput(&buf)
	SetVerbose(verboseMode)
	t.Cleanup(func() {
		SetVerbose(false)
		SetOutput(os.Stderr)
	})
	return &buf
}

func TestSetVerbose(t *testing.T) {
	capture(t, false)
	assert.False(t, IsVerbose())

	SetVerbose(true)
	assert.True(t, IsVerbose())

	SetVerbose(false)
	assert.False(t, IsVerbose())
}

func TestLevels_WhenVerbose(t *testing.T) {
	buf := capture(t, true)

	Debug("cache %s for %s", "hit", "doc-1")
	Info("warmed %d documents", 3)
	Warn("skipping %s", "doc-2")
	Section("Statistics")

	assert.Equal(t,
		"[DEBUG] cache hit for doc-1\n[INFO] warmed 3 documents\n[WARN] skipping doc-2\n\n=== Statistics ===\n",
		buf.String())
}

func TestLevels_WhenQuiet(t *testing.T) {
	buf := capture(t, false)

	Debug("hidden")
	Info("hidden")
	Warn("hidden")
	Section("hidden")

	assert.Empty(t, buf.String())
}

func TestTimed(t *testing.T) {
	buf := capture(t, true)
	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	calls := 0
	now = func() time.Time {
		calls++
		return base.Add(time.Duration(calls-1) * 1500 * time.Millisecond)
	}
	t.Cleanup(func() { now = time.Now })

	done := Timed("collection statistics")
	done()

	assert.Equal(t, "[DEBUG] collection statistics took 1.5s\n", buf.String())
}
