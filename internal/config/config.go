package config

import (
	"os"
	"path/filepath"
)

// DefaultServerCommand launches the code-intelligence MCP server over stdio
// when no override is configured.
const DefaultServerCommand = "uvx --from git+https://github.com/oraios/serena serena start-mcp-server"

// DefaultServerURL is the SSE endpoint used by the sse transport.
const DefaultServerURL = "http://localhost:8000/sse"

// Transport kinds
const (
	TransportStdio = "stdio"
	TransportSSE   = "sse"
)

type Config struct {
	Version int
	Project Project
	Server  Server
	Output  Output
}

type Project struct {
	Root string
	Name string
}

type Server struct {
	Command    string // launch command for the stdio transport
	URL        string // endpoint for the sse transport
	Transport  string // "stdio" or "sse"
	TimeoutSec int    // per-invocation deadline for the tool exchange
}

type Output struct {
	Format    string // "text" or "json"
	NameWidth int    // column width for symbol names
	KindWidth int    // column width for symbol kinds
}

// Default returns the built-in configuration. The project root defaults to
// the current working directory.
func Default() *Config {
	root, err := os.Getwd()
	if err != nil || root == "" {
		root = "."
	}
	return &Config{
		Version: 1,
		Project: Project{Root: root},
		Server: Server{
			Command:    DefaultServerCommand,
			URL:        DefaultServerURL,
			Transport:  TransportStdio,
			TimeoutSec: 120,
		},
		Output: Output{
			Format:    "text",
			NameWidth: 30,
			KindWidth: 15,
		},
	}
}

// Load reads configuration from a .symq.kdl file, then applies environment
// overrides. A missing file is not an error; defaults are used.
// Precedence (low to high): defaults, config file, environment. CLI flags are
// applied by the caller on top.
func Load(path string) (*Config, error) {
	cfg, err := LoadKDL(path)
	if err != nil {
		return nil, err
	}
	if cfg == nil {
		cfg = Default()
	}
	cfg.applyEnv()

	if !filepath.IsAbs(cfg.Project.Root) {
		if abs, err := filepath.Abs(cfg.Project.Root); err == nil {
			cfg.Project.Root = abs
		}
	}
	return cfg, nil
}

// applyEnv applies the SYMQ_* environment overrides.
func (c *Config) applyEnv() {
	if root := os.Getenv("SYMQ_PROJECT_ROOT"); root != "" {
		c.Project.Root = root
	}
	if cmd := os.Getenv("SYMQ_SERVER_COMMAND"); cmd != "" {
		c.Server.Command = cmd
	}
	if url := os.Getenv("SYMQ_SERVER_URL"); url != "" {
		c.Server.URL = url
	}
	if transport := os.Getenv("SYMQ_TRANSPORT"); transport != "" {
		c.Server.Transport = transport
	}
}
