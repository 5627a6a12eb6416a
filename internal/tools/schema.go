package tools

import (
	"fmt"
	"sync"

	"github.com/google/jsonschema-go/jsonschema"

	symqerrors "symq/internal/errors"
)

// argSchemas declares the argument shape of every remote tool this client
// calls. Arguments are validated locally before a transport call so that a
// malformed invocation never reaches the server.
var argSchemas = map[string]*jsonschema.Schema{
	ToolFindSymbol: {
		Type: "object",
		Properties: map[string]*jsonschema.Schema{
			"name_path_pattern": {
				Type:        "string",
				Description: "Symbol name or name-path pattern to search for",
			},
		},
		Required: []string{"name_path_pattern"},
	},
	ToolSymbolsOverview: {
		Type: "object",
		Properties: map[string]*jsonschema.Schema{
			"relative_path": {
				Type:        "string",
				Description: "Source file path relative to the project root",
			},
		},
		Required: []string{"relative_path"},
	},
	ToolFindReferencing: {
		Type: "object",
		Properties: map[string]*jsonschema.Schema{
			"name_path": {
				Type:        "string",
				Description: "Name path of the symbol whose references are wanted",
			},
			"relative_path": {
				Type:        "string",
				Description: "File containing the symbol, relative to the project root",
			},
		},
		Required: []string{"name_path", "relative_path"},
	},
	ToolActivateProject: {
		Type: "object",
		Properties: map[string]*jsonschema.Schema{
			"project": {
				Type:        "string",
				Description: "Project root path or registered project name",
			},
		},
		Required: []string{"project"},
	},
	ToolRestartLanguageServer: {
		Type:       "object",
		Properties: map[string]*jsonschema.Schema{},
	},
}

var (
	resolvedSchemas map[string]*jsonschema.Resolved
	resolveOnce     sync.Once
	resolveErr      error
)

func resolveSchemas() {
	resolvedSchemas = make(map[string]*jsonschema.Resolved, len(argSchemas))
	for name, schema := range argSchemas {
		resolved, err := schema.Resolve(nil)
		if err != nil {
			resolveErr = fmt.Errorf("tool %q schema: %w", name, err)
			return
		}
		resolvedSchemas[name] = resolved
	}
}

// validateArgs checks a tool's argument mapping against its declared schema.
// A failure is a usage error; no transport call is made.
func validateArgs(tool string, args map[string]any) error {
	resolveOnce.Do(resolveSchemas)
	if resolveErr != nil {
		return resolveErr
	}

	resolved, ok := resolvedSchemas[tool]
	if !ok {
		return symqerrors.NewUsageError("", "unknown tool %q", tool)
	}
	if err := resolved.Validate(args); err != nil {
		return symqerrors.NewUsageError("", "invalid arguments for %s: %v", tool, err)
	}
	return nil
}
