package transport

import (
	"context"
	"encoding/json"
)

// Mock is an in-memory Caller for tests. It records the last tool call and
// returns a canned result.
type Mock struct {
	Result *Result
	Err    error

	LastTool string
	LastArgs map[string]any
	Calls    int
	Closed   bool
}

// NewMockJSON builds a Mock whose single response block is the JSON encoding
// of v.
func NewMockJSON(v any) *Mock {
	data, err := json.Marshal(v)
	if err != nil {
		panic(err)
	}
	return &Mock{Result: &Result{Blocks: []string{string(data)}}}
}

// NewMockError builds a Mock that answers with an error-flagged response.
func NewMockError(blocks ...string) *Mock {
	return &Mock{Result: &Result{IsError: true, Blocks: blocks}}
}

// CallTool implements Caller.
func (m *Mock) CallTool(_ context.Context, name string, args map[string]any) (*Result, error) {
	m.Calls++
	m.LastTool = name
	m.LastArgs = args
	if m.Err != nil {
		return nil, m.Err
	}
	if m.Result != nil {
		return m.Result, nil
	}
	return &Result{}, nil
}

// Close implements Caller.
func (m *Mock) Close() error {
	m.Closed = true
	return nil
}
