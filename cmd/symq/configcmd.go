package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/urfave/cli/v2"

	"symq/internal/config"
	"symq/internal/display"
)

// configTemplate is the starter file written by `symq config init`. Values
// mirror the built-in defaults so the file is safe to commit as-is.
const configTemplate = `// symq configuration
project {
    root "."
    // name "myproject"
}

server {
    transport "stdio"
    command "%s"
    url "%s"
    timeout_sec 120
}

output {
    format "text"
    name_width 30
    kind_width 15
}
`

// configShowCommand prints the resolved configuration after file, environment
// and flag overrides.
func configShowCommand(c *cli.Context) error {
	cfg, err := loadConfigWithOverrides(c)
	if err != nil {
		return err
	}

	return newFormatter(c, cfg).Fields([]display.Field{
		{Key: "Project Root", Value: cfg.Project.Root},
		{Key: "Project Name", Value: cfg.Project.Name},
		{Key: "Transport", Value: cfg.Server.Transport},
		{Key: "Server Command", Value: cfg.Server.Command},
		{Key: "Server URL", Value: cfg.Server.URL},
		{Key: "Timeout Sec", Value: cfg.Server.TimeoutSec},
		{Key: "Format", Value: cfg.Output.Format},
		{Key: "Name Width", Value: cfg.Output.NameWidth},
		{Key: "Kind Width", Value: cfg.Output.KindWidth},
	})
}

// configInitCommand writes a starter config file to the project root.
func configInitCommand(c *cli.Context) error {
	root := c.String("root")
	if root == "" {
		root = "."
	}
	path := filepath.Join(root, config.DefaultConfigFile)

	if _, err := os.Stat(path); err == nil && !c.Bool("force") {
		return fmt.Errorf("%s already exists, use --force to overwrite", path)
	}

	content := fmt.Sprintf(configTemplate, config.DefaultServerCommand, config.DefaultServerURL)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}

	fmt.Fprintf(c.App.Writer, "Wrote %s\n", path)
	return nil
}
