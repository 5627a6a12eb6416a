package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	kdl "github.com/sblinch/kdl-go"
	"github.com/sblinch/kdl-go/document"
)

// DefaultConfigFile is the config file name looked up in the project root.
const DefaultConfigFile = ".symq.kdl"

// LoadKDL attempts to load configuration from a .symq.kdl file. Returns
// (nil, nil) when the file does not exist.
func LoadKDL(path string) (*Config, error) {
	if path == "" {
		path = DefaultConfigFile
	}

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, nil
	}

	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %v", path, err)
	}

	cfg, err := parseKDL(string(content))
	if err != nil {
		return nil, err
	}

	// Resolve a relative project root against the config file's directory so
	// the config behaves the same regardless of the invocation directory.
	if cfg.Project.Root != "" && !filepath.IsAbs(cfg.Project.Root) {
		base := filepath.Dir(path)
		if abs, err := filepath.Abs(filepath.Join(base, cfg.Project.Root)); err == nil {
			cfg.Project.Root = abs
		}
	}

	return cfg, nil
}

// parseKDL parses symq configuration from KDL content.
//
// Example:
//
//	project { root "." name "myproject" }
//	server  { transport "stdio" timeout_sec 120 }
//	output  { format "text" name_width 30 kind_width 15 }
func parseKDL(content string) (*Config, error) {
	cfg := Default()

	doc, err := kdl.Parse(strings.NewReader(content))
	if err != nil {
		return nil, fmt.Errorf("failed to parse KDL config: %w", err)
	}

	for _, n := range doc.Nodes {
		switch nodeName(n) {
		case "project":
			for _, cn := range n.Children {
				assignSimpleString(cn, "root", func(v string) { cfg.Project.Root = v })
				assignSimpleString(cn, "name", func(v string) { cfg.Project.Name = v })
			}
		case "server":
			for _, cn := range n.Children {
				assignSimpleString(cn, "command", func(v string) { cfg.Server.Command = v })
				assignSimpleString(cn, "url", func(v string) { cfg.Server.URL = v })
				assignSimpleString(cn, "transport", func(v string) { cfg.Server.Transport = v })
				if nodeName(cn) == "timeout_sec" {
					if v, ok := firstIntArg(cn); ok {
						cfg.Server.TimeoutSec = v
					}
				}
			}
		case "output":
			for _, cn := range n.Children {
				assignSimpleString(cn, "format", func(v string) { cfg.Output.Format = v })
				switch nodeName(cn) {
				case "name_width":
					if v, ok := firstIntArg(cn); ok {
						cfg.Output.NameWidth = v
					}
				case "kind_width":
					if v, ok := firstIntArg(cn); ok {
						cfg.Output.KindWidth = v
					}
				}
			}
		}
	}

	return cfg, nil
}

func nodeName(n *document.Node) string {
	if n == nil || n.Name == nil {
		return ""
	}
	return n.Name.NodeNameString()
}

func firstIntArg(n *document.Node) (int, bool) {
	if len(n.Arguments) == 0 {
		return 0, false
	}
	switch v := n.Arguments[0].Value.(type) {
	case int64:
		return int(v), true
	case float64:
		return int(v), true
	default:
		return 0, false
	}
}

func firstStringArg(n *document.Node) (string, bool) {
	if len(n.Arguments) == 0 {
		return "", false
	}
	if s, ok := n.Arguments[0].Value.(string); ok {
		return s, true
	}
	return "", false
}

func assignSimpleString(n *document.Node, target string, set func(string)) {
	if nodeName(n) == target {
		if s, ok := firstStringArg(n); ok {
			set(s)
		}
	}
}
