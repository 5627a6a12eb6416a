package tools

import (
	"context"

	"symq/internal/debug"
	symqerrors "symq/internal/errors"
	"symq/internal/transport"
)

// ActivateProject asks the server to activate the given project, identified
// by its root path or registered name. The server's textual confirmation is
// returned verbatim.
func ActivateProject(ctx context.Context, caller transport.Caller, project string) ([]string, error) {
	return textCall(ctx, caller, ToolActivateProject, map[string]any{
		"project": project,
	})
}

// RestartLanguageServer asks the server to restart its language backend,
// forcing a fresh index of the active project.
func RestartLanguageServer(ctx context.Context, caller transport.Caller) ([]string, error) {
	return textCall(ctx, caller, ToolRestartLanguageServer, map[string]any{})
}

// textCall is the exchange for management tools whose responses are plain
// text rather than symbol records.
func textCall(ctx context.Context, caller transport.Caller, tool string, args map[string]any) ([]string, error) {
	if err := validateArgs(tool, args); err != nil {
		return nil, err
	}

	debug.LogTools("dispatching %s", tool)
	res, err := caller.CallTool(ctx, tool, args)
	if err != nil {
		return nil, err
	}
	if res.IsError {
		return nil, symqerrors.NewToolError(tool, res.Blocks)
	}
	return res.Blocks, nil
}
