package errors

import (
	"fmt"
	"strings"
	"time"
)

// Error types for the symq client
type ErrorType string

const (
	// Transport errors: launching or connecting to the server failed
	ErrorTypeTransport ErrorType = "transport"

	// Tool errors: the server answered but flagged the response as an error
	ErrorTypeTool ErrorType = "tool"

	// Usage errors: unknown subcommand or invalid arguments
	ErrorTypeUsage ErrorType = "usage"

	// Configuration errors
	ErrorTypeConfig ErrorType = "config"
)

// TransportError represents a failure to open or use the channel to the
// code-intelligence server. Always fatal; there are no retries.
type TransportError struct {
	Type       ErrorType
	Kind       string // transport kind: "stdio" or "sse"
	Target     string // executable or endpoint
	Operation  string
	Underlying error
	Timestamp  time.Time
}

// NewTransportError creates a new transport error with context
func NewTransportError(kind, target, op string, err error) *TransportError {
	return &TransportError{
		Type:       ErrorTypeTransport,
		Kind:       kind,
		Target:     target,
		Operation:  op,
		Underlying: err,
		Timestamp:  time.Now(),
	}
}

// Error implements the error interface
func (e *TransportError) Error() string {
	if e.Target != "" {
		return fmt.Sprintf("%s transport %s failed for %s: %v", e.Kind, e.Operation, e.Target, e.Underlying)
	}
	return fmt.Sprintf("%s transport %s failed: %v", e.Kind, e.Operation, e.Underlying)
}

// Unwrap returns the underlying error for errors.Is/As
func (e *TransportError) Unwrap() error {
	return e.Underlying
}

// ToolError represents a tool response flagged as an error by the server.
// The server's textual content blocks are carried for display on stderr.
type ToolError struct {
	Type      ErrorType
	ToolName  string
	Content   []string
	Timestamp time.Time
}

// NewToolError creates a new tool error
func NewToolError(tool string, content []string) *ToolError {
	return &ToolError{
		Type:      ErrorTypeTool,
		ToolName:  tool,
		Content:   content,
		Timestamp: time.Now(),
	}
}

// Error implements the error interface
func (e *ToolError) Error() string {
	if len(e.Content) == 0 {
		return fmt.Sprintf("tool %q reported an error", e.ToolName)
	}
	return fmt.Sprintf("tool %q reported an error: %s", e.ToolName, strings.Join(e.Content, "; "))
}

// UsageError represents invalid command-line usage.
type UsageError struct {
	Type      ErrorType
	Command   string
	Message   string
	Timestamp time.Time
}

// NewUsageError creates a new usage error
func NewUsageError(command, format string, args ...interface{}) *UsageError {
	return &UsageError{
		Type:      ErrorTypeUsage,
		Command:   command,
		Message:   fmt.Sprintf(format, args...),
		Timestamp: time.Now(),
	}
}

// Error implements the error interface
func (e *UsageError) Error() string {
	if e.Command != "" {
		return fmt.Sprintf("%s: %s", e.Command, e.Message)
	}
	return e.Message
}

// ConfigError represents a configuration error
type ConfigError struct {
	Field      string
	Value      string
	Underlying error
	Timestamp  time.Time
}

// NewConfigError creates a new config error
func NewConfigError(field, value string, err error) *ConfigError {
	return &ConfigError{
		Field:      field,
		Value:      value,
		Underlying: err,
		Timestamp:  time.Now(),
	}
}

// Error implements the error interface
func (e *ConfigError) Error() string {
	return fmt.Sprintf("config error for field %s (value %s): %v", e.Field, e.Value, e.Underlying)
}

// Unwrap returns the underlying error
func (e *ConfigError) Unwrap() error {
	return e.Underlying
}
