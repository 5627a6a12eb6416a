package debug

import (
	"bytes"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestLevelGating tests that messages below the configured level are dropped.
func TestLevelGating(t *testing.T) {
	var buf bytes.Buffer
	SetOutput(&buf)
	defer SetOutput(os.Stderr)

	SetLevel(LevelWarn)
	Printf("hidden %d", 1)
	Infof("hidden too")
	Warnf("shown %s", "warning")
	Errorf("shown error")

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, "Warning: shown warning")
	assert.Contains(t, out, "Error: shown error")
}

// TestComponentLog tests the component tag format.
func TestComponentLog(t *testing.T) {
	var buf bytes.Buffer
	SetOutput(&buf)
	defer SetOutput(os.Stderr)

	SetLevel(LevelDebug)
	LogTransport("calling %s", "find_symbol")
	LogTools("dispatching")

	assert.Contains(t, buf.String(), "[DEBUG:TRANSPORT] calling find_symbol")
	assert.Contains(t, buf.String(), "[DEBUG:TOOLS] dispatching")
}

// TestSetLevelFromEnv tests the SYMQ_LOG_LEVEL override.
func TestSetLevelFromEnv(t *testing.T) {
	t.Setenv("SYMQ_LOG_LEVEL", "debug")
	t.Setenv("DEBUG", "")
	SetLevelFromEnv()
	defer SetLevel(LevelWarn)

	var buf bytes.Buffer
	SetOutput(&buf)
	defer SetOutput(os.Stderr)

	Printf("now visible")
	assert.Contains(t, buf.String(), "now visible")
}

// TestParseLevel tests level name parsing.
func TestParseLevel(t *testing.T) {
	for name, want := range map[string]int{
		"debug": LevelDebug, "INFO": LevelInfo, "warn": LevelWarn,
		"warning": LevelWarn, "error": LevelError,
	} {
		got, ok := ParseLevel(name)
		assert.True(t, ok, name)
		assert.Equal(t, want, got, name)
	}
	_, ok := ParseLevel("verbose")
	assert.False(t, ok)
}
