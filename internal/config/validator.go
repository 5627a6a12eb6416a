package config

import (
	"fmt"

	symqerrors "symq/internal/errors"
)

// Validate checks that a loaded configuration is usable. It is called once
// after flag overrides are applied, before any transport is opened.
func Validate(cfg *Config) error {
	switch cfg.Server.Transport {
	case TransportStdio:
		if cfg.Server.Command == "" {
			return symqerrors.NewConfigError("server.command", "",
				fmt.Errorf("stdio transport requires a launch command"))
		}
	case TransportSSE:
		if cfg.Server.URL == "" {
			return symqerrors.NewConfigError("server.url", "",
				fmt.Errorf("sse transport requires an endpoint URL"))
		}
	default:
		return symqerrors.NewConfigError("server.transport", cfg.Server.Transport,
			fmt.Errorf("must be %q or %q", TransportStdio, TransportSSE))
	}

	if cfg.Server.TimeoutSec <= 0 {
		return symqerrors.NewConfigError("server.timeout_sec",
			fmt.Sprintf("%d", cfg.Server.TimeoutSec),
			fmt.Errorf("must be positive"))
	}

	switch cfg.Output.Format {
	case "text", "json":
	default:
		return symqerrors.NewConfigError("output.format", cfg.Output.Format,
			fmt.Errorf("must be \"text\" or \"json\""))
	}

	if cfg.Output.NameWidth <= 0 || cfg.Output.KindWidth <= 0 {
		return symqerrors.NewConfigError("output", "",
			fmt.Errorf("column widths must be positive"))
	}

	return nil
}
