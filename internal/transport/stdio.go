package transport

import (
	"context"
	"os"
	"os/exec"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"symq/internal/config"
	symqerrors "symq/internal/errors"
)

// dialStdio launches the server as a subprocess and connects over its stdio
// pipes. A missing executable is a fatal launch failure.
func dialStdio(ctx context.Context, cfg *config.Config) (Caller, error) {
	args := BuildServerArgs(cfg.Server.Command, cfg.Project.Root)

	if _, err := exec.LookPath(args[0]); err != nil {
		return nil, symqerrors.NewTransportError(config.TransportStdio, args[0], "launch", err)
	}

	cmd := exec.Command(args[0], args[1:]...)
	cmd.Env = os.Environ()

	client := mcp.NewClient(clientImpl, nil)
	cs, err := client.Connect(ctx, &mcp.CommandTransport{Command: cmd}, nil)
	if err != nil {
		return nil, symqerrors.NewTransportError(config.TransportStdio, args[0], "connect", err)
	}

	return &session{cs: cs, kind: config.TransportStdio}, nil
}

// BuildServerArgs splits the configured launch command and appends the
// arguments a headless client run needs: the project to serve, and flags
// disabling the server's dashboard and GUI log window. Arguments already
// present in the command are left alone.
func BuildServerArgs(command, projectRoot string) []string {
	args := strings.Fields(command)
	if len(args) == 0 {
		return args
	}

	if !hasArg(args, "--project") && projectRoot != "" {
		args = append(args, "--project", projectRoot)
	}
	if !hasArg(args, "--enable-web-dashboard") {
		args = append(args, "--enable-web-dashboard", "False")
	}
	if !hasArg(args, "--enable-gui-log-window") {
		args = append(args, "--enable-gui-log-window", "False")
	}
	return args
}

func hasArg(args []string, flag string) bool {
	for _, a := range args {
		if a == flag {
			return true
		}
	}
	return false
}
