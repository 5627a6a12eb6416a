// Package tools dispatches CLI query operations to their remote tools.
//
// Every operation maps to exactly one tool call. Language filtering, path
// glob filtering and result limiting happen client-side after normalization;
// none of them are forwarded to the server.
package tools

import (
	"context"

	"symq/internal/debug"
	symqerrors "symq/internal/errors"
	"symq/internal/symbol"
	"symq/internal/transport"
)

// Remote tool names exposed by the code-intelligence server.
const (
	ToolFindSymbol            = "find_symbol"
	ToolSymbolsOverview       = "get_symbols_overview"
	ToolFindReferencing       = "find_referencing_symbols"
	ToolActivateProject       = "activate_project"
	ToolRestartLanguageServer = "restart_language_server"
)

// FindSymbolOptions are the client-side knobs of the find-symbol operation.
// Only the name pattern travels to the server.
type FindSymbolOptions struct {
	Name     string // name-path pattern, required
	PathGlob string // post-hoc doublestar filter on the normalized file path
	Language string // post-hoc case-insensitive language filter
	Limit    int    // post-hoc result cap, 0 = unlimited
}

// FindSymbol looks up symbols matching a name pattern and applies the
// client-side filters in order: language, path, limit.
func FindSymbol(ctx context.Context, caller transport.Caller, opts FindSymbolOptions) ([]symbol.Record, error) {
	if opts.Name == "" {
		return nil, symqerrors.NewUsageError("find-symbol", "a symbol name pattern is required")
	}

	records, err := call(ctx, caller, ToolFindSymbol, map[string]any{
		"name_path_pattern": opts.Name,
	})
	if err != nil {
		return nil, err
	}

	if opts.Language != "" {
		records = symbol.FilterByLanguage(records, opts.Language)
	}
	if opts.PathGlob != "" {
		records = symbol.FilterByPath(records, opts.PathGlob)
	}
	return symbol.Limit(records, opts.Limit), nil
}

// FileOverview fetches the top-level symbols of one source file.
func FileOverview(ctx context.Context, caller transport.Caller, relativePath string) ([]symbol.Record, error) {
	if relativePath == "" {
		return nil, symqerrors.NewUsageError("file-overview", "a file path is required")
	}

	return call(ctx, caller, ToolSymbolsOverview, map[string]any{
		"relative_path": relativePath,
	})
}

// References finds the symbols referencing the named symbol defined in the
// given file.
func References(ctx context.Context, caller transport.Caller, namePath, relativePath string) ([]symbol.Record, error) {
	if namePath == "" || relativePath == "" {
		return nil, symqerrors.NewUsageError("references", "both a name path and a file path are required")
	}

	return call(ctx, caller, ToolFindReferencing, map[string]any{
		"name_path":     namePath,
		"relative_path": relativePath,
	})
}

// call validates the arguments, performs the single tool exchange, and
// normalizes the decoded records. An error-flagged response becomes a
// ToolError carrying the server's content.
func call(ctx context.Context, caller transport.Caller, tool string, args map[string]any) ([]symbol.Record, error) {
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

	return symbol.NormalizeAll(transport.DecodeBlocks(res.Blocks)), nil
}
