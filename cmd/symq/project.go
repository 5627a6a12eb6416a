package main

import (
	"context"
	"strings"

	"github.com/urfave/cli/v2"

	"symq/internal/display"
	"symq/internal/project"
	"symq/internal/tools"
)

// projectInitCommand activates the configured project on the server. The
// configured project name wins over the root path when both are set.
func projectInitCommand(c *cli.Context) error {
	return withSession(c, runProjectInit)
}

func runProjectInit(ctx context.Context, s *session) error {
	target := s.cfg.Project.Name
	if target == "" {
		target = s.cfg.Project.Root
	}
	blocks, err := tools.ActivateProject(ctx, s.caller, target)
	if err != nil {
		return err
	}
	return s.out.Messages(blocks)
}

// projectIndexCommand restarts the server's language backend so the active
// project is indexed from scratch.
func projectIndexCommand(c *cli.Context) error {
	return withSession(c, runProjectIndex)
}

func runProjectIndex(ctx context.Context, s *session) error {
	blocks, err := tools.RestartLanguageServer(ctx, s.caller)
	if err != nil {
		return err
	}
	return s.out.Messages(blocks)
}

// projectStatusCommand reports on the local project and the configured server
// channel. No server round trip is made.
func projectStatusCommand(c *cli.Context) error {
	cfg, err := loadConfigWithOverrides(c)
	if err != nil {
		return err
	}

	st := project.Inspect(cfg)

	manifests := make([]string, 0, len(st.Manifests))
	for _, m := range st.Manifests {
		manifests = append(manifests, m.File)
	}

	return newFormatter(c, cfg).Fields([]display.Field{
		{Key: "Project Root", Value: st.Root},
		{Key: "Project Name", Value: st.Name},
		{Key: "Fingerprint", Value: st.Fingerprint},
		{Key: "Config File", Value: st.ConfigFile},
		{Key: "Transport", Value: st.Transport},
		{Key: "Server Target", Value: st.Target},
		{Key: "Server Ready", Value: st.ServerReady},
		{Key: "Languages", Value: strings.Join(st.Languages, ", ")},
		{Key: "Manifests", Value: strings.Join(manifests, ", ")},
	})
}
