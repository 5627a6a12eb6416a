package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/urfave/cli/v2"

	"symq/internal/config"
	"symq/internal/debug"
	"symq/internal/version"
)

var Version = version.Version // Use centralized version management

// loadConfigWithOverrides loads configuration and applies CLI flag overrides
func loadConfigWithOverrides(c *cli.Context) (*config.Config, error) {
	configPath := c.String("config")

	// If root is specified and config path is default, look for config in root directory
	if rootFlag := c.String("root"); rootFlag != "" && configPath == config.DefaultConfigFile {
		configPath = filepath.Join(rootFlag, config.DefaultConfigFile)
	}

	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load config from %s: %w", configPath, err)
	}

	// Apply CLI flag overrides. --project-root on the project command beats
	// the global --root.
	rootFlag := c.String("root")
	if projectRoot := c.String("project-root"); projectRoot != "" {
		rootFlag = projectRoot
	}
	if rootFlag != "" {
		absRoot, err := filepath.Abs(rootFlag)
		if err != nil {
			return nil, fmt.Errorf("failed to resolve root path %q: %w", rootFlag, err)
		}
		cfg.Project.Root = absRoot
	}
	if transportFlag := c.String("transport"); transportFlag != "" {
		cfg.Server.Transport = transportFlag
	}
	if urlFlag := c.String("server-url"); urlFlag != "" {
		cfg.Server.URL = urlFlag
	}
	if cmdFlag := c.String("server-command"); cmdFlag != "" {
		cfg.Server.Command = cmdFlag
	}
	if c.IsSet("timeout") {
		cfg.Server.TimeoutSec = c.Int("timeout")
	}
	if c.Bool("json") {
		cfg.Output.Format = "json"
	} else if formatFlag := c.String("format"); formatFlag != "" {
		cfg.Output.Format = formatFlag
	}

	if err := config.Validate(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func newApp() *cli.App {
	return &cli.App{
		Name:                   "symq",
		Usage:                  "Query code symbols through a code-intelligence server",
		Version:                Version,
		UseShortOptionHandling: true,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "Config file path",
				Value:   config.DefaultConfigFile,
			},
			&cli.StringFlag{
				Name:    "root",
				Aliases: []string{"r"},
				Usage:   "Project root directory (overrides config)",
			},
			&cli.StringFlag{
				Name:  "transport",
				Usage: "Server transport: stdio or sse (overrides config)",
			},
			&cli.StringFlag{
				Name:  "server-command",
				Usage: "Launch command for the stdio transport (overrides config)",
			},
			&cli.StringFlag{
				Name:  "server-url",
				Usage: "SSE endpoint for the sse transport (overrides config)",
			},
			&cli.IntFlag{
				Name:  "timeout",
				Usage: "Per-invocation deadline in seconds (overrides config)",
			},
			&cli.StringFlag{
				Name:    "format",
				Aliases: []string{"f"},
				Usage:   "Output format: text or json",
			},
			&cli.BoolFlag{
				Name:    "json",
				Aliases: []string{"j"},
				Usage:   "Output as JSON (shorthand for --format json)",
			},
		},
		Commands: []*cli.Command{
			{
				Name:    "query",
				Aliases: []string{"q"},
				Usage:   "Query symbols through the code-intelligence server",
				Subcommands: []*cli.Command{
					{
						Name:  "find-symbol",
						Usage: "Find symbols by name or name-path pattern",
						Flags: []cli.Flag{
							&cli.StringFlag{
								Name:     "name",
								Aliases:  []string{"n"},
								Usage:    "Symbol name or name-path pattern",
								Required: true,
							},
							&cli.StringFlag{
								Name:    "path",
								Aliases: []string{"p"},
								Usage:   "Keep only symbols whose file matches this glob (e.g. 'src/**')",
							},
							&cli.StringFlag{
								Name:    "language",
								Aliases: []string{"l"},
								Usage:   "Keep only symbols of this language (applied client-side)",
							},
							&cli.IntFlag{
								Name:  "limit",
								Usage: "Max number of results, 0 = unlimited",
							},
						},
						Action: findSymbolCommand,
					},
					{
						Name:  "file-overview",
						Usage: "List the top-level symbols of one source file",
						Flags: []cli.Flag{
							&cli.StringFlag{
								Name:     "path",
								Aliases:  []string{"p"},
								Usage:    "Source file, absolute or project-relative",
								Required: true,
							},
						},
						Action: fileOverviewCommand,
					},
					{
						Name:  "references",
						Usage: "Find references to a symbol defined in a file",
						Flags: []cli.Flag{
							&cli.StringFlag{
								Name:     "name",
								Aliases:  []string{"n"},
								Usage:    "Name path of the symbol",
								Required: true,
							},
							&cli.StringFlag{
								Name:     "path",
								Aliases:  []string{"p"},
								Usage:    "File defining the symbol",
								Required: true,
							},
						},
						Action: referencesCommand,
					},
				},
			},
			{
				Name:  "project",
				Usage: "Manage the active project on the server",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:  "project-root",
						Usage: "Project root directory (overrides config and --root)",
					},
				},
				Subcommands: []*cli.Command{
					{
						Name:   "init",
						Usage:  "Activate the configured project on the server",
						Action: projectInitCommand,
					},
					{
						Name:   "index",
						Usage:  "Restart the language backend, forcing a fresh index",
						Action: projectIndexCommand,
					},
					{
						Name:   "status",
						Usage:  "Show the local project and server channel status",
						Action: projectStatusCommand,
					},
				},
			},
			{
				Name:  "config",
				Usage: "Inspect or scaffold configuration",
				Subcommands: []*cli.Command{
					{
						Name:   "show",
						Usage:  "Print the resolved configuration",
						Action: configShowCommand,
					},
					{
						Name:  "init",
						Usage: "Write a starter .symq.kdl to the project root",
						Flags: []cli.Flag{
							&cli.BoolFlag{
								Name:  "force",
								Usage: "Overwrite an existing config file",
							},
						},
						Action: configInitCommand,
					},
				},
			},
		},
	}
}

func main() {
	debug.SetLevelFromEnv()

	if err := newApp().Run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
