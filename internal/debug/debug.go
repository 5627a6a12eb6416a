package debug

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
)

// Log levels, lowest to highest severity.
const (
	LevelDebug = iota
	LevelInfo
	LevelWarn
	LevelError
)

// output is the writer for log output. Always stderr by default so log lines
// never corrupt stdout payloads (text tables or JSON envelopes).
var output io.Writer = os.Stderr

// level is the minimum severity that gets written.
var level = LevelWarn

// mu protects output and level.
var mu sync.Mutex

func init() {
	SetLevelFromEnv()
}

// SetOutput sets a custom writer for log output. Pass nil to discard.
func SetOutput(w io.Writer) {
	mu.Lock()
	defer mu.Unlock()
	if w == nil {
		w = io.Discard
	}
	output = w
}

// SetLevel sets the minimum severity that gets written.
func SetLevel(l int) {
	mu.Lock()
	defer mu.Unlock()
	level = l
}

// SetLevelFromEnv applies SYMQ_LOG_LEVEL (debug|info|warn|error). DEBUG=1 is
// honored as a shorthand for the debug level.
func SetLevelFromEnv() {
	if os.Getenv("DEBUG") == "1" || os.Getenv("DEBUG") == "true" {
		SetLevel(LevelDebug)
		return
	}
	switch strings.ToLower(os.Getenv("SYMQ_LOG_LEVEL")) {
	case "debug":
		SetLevel(LevelDebug)
	case "info":
		SetLevel(LevelInfo)
	case "warn", "warning":
		SetLevel(LevelWarn)
	case "error":
		SetLevel(LevelError)
	}
}

// ParseLevel converts a level name to its numeric value.
func ParseLevel(name string) (int, bool) {
	switch strings.ToLower(name) {
	case "debug":
		return LevelDebug, true
	case "info":
		return LevelInfo, true
	case "warn", "warning":
		return LevelWarn, true
	case "error":
		return LevelError, true
	}
	return 0, false
}

func write(minLevel int, tag, format string, args ...interface{}) {
	mu.Lock()
	defer mu.Unlock()
	if level > minLevel {
		return
	}
	fmt.Fprintf(output, tag+" "+format+"\n", args...)
}

// Printf prints debug information only when the debug level is enabled.
func Printf(format string, args ...interface{}) {
	write(LevelDebug, "[DEBUG]", format, args...)
}

// Log provides debug logging with component names, e.g. [DEBUG:TRANSPORT].
func Log(component, format string, args ...interface{}) {
	write(LevelDebug, "[DEBUG:"+component+"]", format, args...)
}

// LogTransport provides debug logging specifically for transport exchanges
func LogTransport(format string, args ...interface{}) {
	Log("TRANSPORT", format, args...)
}

// LogTools provides debug logging specifically for tool dispatch
func LogTools(format string, args ...interface{}) {
	Log("TOOLS", format, args...)
}

// Infof prints informational output.
func Infof(format string, args ...interface{}) {
	write(LevelInfo, "[INFO]", format, args...)
}

// Warnf prints a warning. Used for recoverable conditions such as a
// malformed content block that gets skipped.
func Warnf(format string, args ...interface{}) {
	write(LevelWarn, "Warning:", format, args...)
}

// Errorf prints an error message to the log output.
func Errorf(format string, args ...interface{}) {
	write(LevelError, "Error:", format, args...)
}
