package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/urfave/cli/v2"

	"symq/internal/config"
	"symq/internal/debug"
	"symq/internal/display"
	symqerrors "symq/internal/errors"
	"symq/internal/symbol"
	"symq/internal/tools"
	"symq/internal/transport"
	"symq/pkg/pathutil"
)

// session carries the per-invocation plumbing of a server-backed command.
type session struct {
	cfg    *config.Config
	caller transport.Caller
	out    *display.Formatter
}

// withSession loads configuration, opens the transport and runs fn under the
// configured deadline. SIGINT and SIGTERM cancel the in-flight call.
func withSession(c *cli.Context, fn func(ctx context.Context, s *session) error) error {
	cfg, err := loadConfigWithOverrides(c)
	if err != nil {
		return err
	}
	out := newFormatter(c, cfg)

	ctx, stop := signal.NotifyContext(c.Context, os.Interrupt, syscall.SIGTERM)
	defer stop()
	ctx, cancel := context.WithTimeout(ctx, time.Duration(cfg.Server.TimeoutSec)*time.Second)
	defer cancel()

	caller, err := transport.Dial(ctx, cfg)
	if err != nil {
		return fail(out, err)
	}
	defer func() {
		if err := caller.Close(); err != nil {
			debug.Warnf("transport close: %v", err)
		}
	}()

	if err := fn(ctx, &session{cfg: cfg, caller: caller, out: out}); err != nil {
		return fail(out, err)
	}
	return nil
}

func newFormatter(c *cli.Context, cfg *config.Config) *display.Formatter {
	return display.NewFormatter(display.Options{
		Format:    cfg.Output.Format,
		NameWidth: cfg.Output.NameWidth,
		KindWidth: cfg.Output.KindWidth,
		Writer:    c.App.Writer,
	})
}

// fail renders an error for machine consumers and passes it up for the
// process exit code. A tool error's server content goes to stderr verbatim.
func fail(out *display.Formatter, err error) error {
	var toolErr *symqerrors.ToolError
	if errors.As(err, &toolErr) {
		for _, block := range toolErr.Content {
			fmt.Fprintln(os.Stderr, block)
		}
	}
	if renderErr := out.Error(err); renderErr != nil {
		debug.Warnf("could not render error: %v", renderErr)
	}
	return err
}

func findSymbolCommand(c *cli.Context) error {
	opts := tools.FindSymbolOptions{
		Name:     c.String("name"),
		PathGlob: c.String("path"),
		Language: c.String("language"),
		Limit:    c.Int("limit"),
	}
	warnUnknownLanguage(opts.Language)

	return withSession(c, func(ctx context.Context, s *session) error {
		return runFindSymbol(ctx, s, opts)
	})
}

func runFindSymbol(ctx context.Context, s *session, opts tools.FindSymbolOptions) error {
	records, err := tools.FindSymbol(ctx, s.caller, opts)
	if err != nil {
		return err
	}
	return s.out.Symbols(display.ViewFindSymbol, records)
}

func fileOverviewCommand(c *cli.Context) error {
	return withSession(c, func(ctx context.Context, s *session) error {
		return runFileOverview(ctx, s, c.String("path"))
	})
}

func runFileOverview(ctx context.Context, s *session, path string) error {
	relPath := pathutil.ToRelative(path, s.cfg.Project.Root)
	records, err := tools.FileOverview(ctx, s.caller, relPath)
	if err != nil {
		return err
	}
	return s.out.Symbols(display.ViewFileOverview, records)
}

func referencesCommand(c *cli.Context) error {
	return withSession(c, func(ctx context.Context, s *session) error {
		return runReferences(ctx, s, c.String("name"), c.String("path"))
	})
}

func runReferences(ctx context.Context, s *session, namePath, path string) error {
	relPath := pathutil.ToRelative(path, s.cfg.Project.Root)
	records, err := tools.References(ctx, s.caller, namePath, relPath)
	if err != nil {
		return err
	}
	return s.out.Symbols(display.ViewReferences, records)
}

// warnUnknownLanguage hints at the closest known language when the filter
// value is unrecognized. The filter is still applied as given.
func warnUnknownLanguage(language string) {
	if language == "" || symbol.IsKnownLanguage(language) {
		return
	}
	if suggestion, ok := symbol.SuggestLanguage(language); ok {
		fmt.Fprintf(os.Stderr, "Warning: unknown language %q, did you mean %q?\n", language, suggestion)
		return
	}
	fmt.Fprintf(os.Stderr, "Warning: unknown language %q\n", language)
}
