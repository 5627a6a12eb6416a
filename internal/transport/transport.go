// Package transport opens the channel to the code-intelligence MCP server
// and performs tool-call exchanges over it.
//
// The server is an opaque external collaborator: one request (tool name plus
// argument mapping) yields one response (is-error flag plus content blocks).
// Everything above this package works against the narrow Caller interface so
// tests can substitute a Mock for the real server.
package transport

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"symq/internal/config"
	"symq/internal/debug"
	symqerrors "symq/internal/errors"
	"symq/internal/version"
)

// Caller is the narrow interface to the code-intelligence server. Exactly
// one call is outstanding at a time; Close must release the channel on every
// exit path.
type Caller interface {
	CallTool(ctx context.Context, name string, args map[string]any) (*Result, error)
	Close() error
}

// Result is one tool response: the server's error flag and its textual
// content blocks in order.
type Result struct {
	IsError bool
	Blocks  []string
}

// clientImpl identifies this client during the MCP handshake.
var clientImpl = &mcp.Implementation{Name: "symq", Version: version.Version}

// Dial opens a channel to the server using the transport kind selected in
// the configuration.
func Dial(ctx context.Context, cfg *config.Config) (Caller, error) {
	switch cfg.Server.Transport {
	case config.TransportSSE:
		return dialSSE(ctx, cfg)
	default:
		return dialStdio(ctx, cfg)
	}
}

// session adapts an MCP client session to the Caller interface.
type session struct {
	cs   *mcp.ClientSession
	kind string
}

// CallTool performs one synchronous tool-call exchange.
func (s *session) CallTool(ctx context.Context, name string, args map[string]any) (*Result, error) {
	debug.LogTransport("calling tool %q via %s", name, s.kind)

	res, err := s.cs.CallTool(ctx, &mcp.CallToolParams{
		Name:      name,
		Arguments: args,
	})
	if err != nil {
		return nil, symqerrors.NewTransportError(s.kind, "", "call", err)
	}

	result := &Result{IsError: res.IsError}
	for _, content := range res.Content {
		if text, ok := content.(*mcp.TextContent); ok {
			result.Blocks = append(result.Blocks, text.Text)
		}
	}
	debug.LogTransport("tool %q returned %d block(s), isError=%v", name, len(result.Blocks), result.IsError)
	return result, nil
}

// Close releases the channel to the server.
func (s *session) Close() error {
	return s.cs.Close()
}
