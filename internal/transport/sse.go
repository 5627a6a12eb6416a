package transport

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"symq/internal/config"
	symqerrors "symq/internal/errors"
)

// dialSSE connects to an already-running server over its SSE endpoint.
func dialSSE(ctx context.Context, cfg *config.Config) (Caller, error) {
	client := mcp.NewClient(clientImpl, nil)
	cs, err := client.Connect(ctx, &mcp.SSEClientTransport{Endpoint: cfg.Server.URL}, nil)
	if err != nil {
		return nil, symqerrors.NewTransportError(config.TransportSSE, cfg.Server.URL, "connect", err)
	}

	return &session{cs: cs, kind: config.TransportSSE}, nil
}
