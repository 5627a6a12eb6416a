package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), DefaultConfigFile)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

// TestLoad_Defaults tests that a missing config file yields defaults.
func TestLoad_Defaults(t *testing.T) {
	t.Setenv("SYMQ_PROJECT_ROOT", "")
	t.Setenv("SYMQ_SERVER_COMMAND", "")
	t.Setenv("SYMQ_SERVER_URL", "")
	t.Setenv("SYMQ_TRANSPORT", "")

	cfg, err := Load(filepath.Join(t.TempDir(), DefaultConfigFile))
	require.NoError(t, err)

	assert.Equal(t, TransportStdio, cfg.Server.Transport)
	assert.Equal(t, DefaultServerCommand, cfg.Server.Command)
	assert.Equal(t, DefaultServerURL, cfg.Server.URL)
	assert.Equal(t, 120, cfg.Server.TimeoutSec)
	assert.Equal(t, "text", cfg.Output.Format)
	assert.Equal(t, 30, cfg.Output.NameWidth)
	assert.True(t, filepath.IsAbs(cfg.Project.Root))
}

// TestLoad_KDLFile tests parsing of a full .symq.kdl file.
func TestLoad_KDLFile(t *testing.T) {
	t.Setenv("SYMQ_PROJECT_ROOT", "")
	t.Setenv("SYMQ_SERVER_COMMAND", "")
	t.Setenv("SYMQ_SERVER_URL", "")
	t.Setenv("SYMQ_TRANSPORT", "")

	path := writeConfig(t, `
project {
    root "."
    name "demo"
}
server {
    command "serena start-mcp-server"
    url "http://localhost:9000/sse"
    transport "sse"
    timeout_sec 30
}
output {
    format "json"
    name_width 40
    kind_width 20
}
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "demo", cfg.Project.Name)
	assert.Equal(t, filepath.Dir(path), cfg.Project.Root)
	assert.Equal(t, "serena start-mcp-server", cfg.Server.Command)
	assert.Equal(t, "http://localhost:9000/sse", cfg.Server.URL)
	assert.Equal(t, TransportSSE, cfg.Server.Transport)
	assert.Equal(t, 30, cfg.Server.TimeoutSec)
	assert.Equal(t, "json", cfg.Output.Format)
	assert.Equal(t, 40, cfg.Output.NameWidth)
	assert.Equal(t, 20, cfg.Output.KindWidth)
}

// TestLoad_EnvOverrides tests that environment beats the config file.
func TestLoad_EnvOverrides(t *testing.T) {
	path := writeConfig(t, `server { transport "stdio" }`)

	t.Setenv("SYMQ_PROJECT_ROOT", "/tmp/elsewhere")
	t.Setenv("SYMQ_SERVER_COMMAND", "my-server --stdio")
	t.Setenv("SYMQ_SERVER_URL", "http://example.com/sse")
	t.Setenv("SYMQ_TRANSPORT", "sse")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "/tmp/elsewhere", cfg.Project.Root)
	assert.Equal(t, "my-server --stdio", cfg.Server.Command)
	assert.Equal(t, "http://example.com/sse", cfg.Server.URL)
	assert.Equal(t, TransportSSE, cfg.Server.Transport)
}

// TestLoad_MalformedKDL tests that a broken config file is an error.
func TestLoad_MalformedKDL(t *testing.T) {
	path := writeConfig(t, `project { root `)
	_, err := Load(path)
	assert.Error(t, err)
}

// TestValidate tests the configuration validator.
func TestValidate(t *testing.T) {
	valid := Default()
	assert.NoError(t, Validate(valid))

	badTransport := Default()
	badTransport.Server.Transport = "carrier-pigeon"
	assert.Error(t, Validate(badTransport))

	noCommand := Default()
	noCommand.Server.Command = ""
	assert.Error(t, Validate(noCommand))

	noURL := Default()
	noURL.Server.Transport = TransportSSE
	noURL.Server.URL = ""
	assert.Error(t, Validate(noURL))

	badTimeout := Default()
	badTimeout.Server.TimeoutSec = 0
	assert.Error(t, Validate(badTimeout))

	badFormat := Default()
	badFormat.Output.Format = "xml"
	assert.Error(t, Validate(badFormat))

	badWidth := Default()
	badWidth.Output.NameWidth = 0
	assert.Error(t, Validate(badWidth))
}
