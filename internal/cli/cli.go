// Package cli holds what every taskboard subcommand shares: the
// application context, output formatting and exit codes.
package cli

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/thenoetrevino/taskboard/internal/app"
	"github.com/thenoetrevino/taskboard/internal/config"
	"github.com/thenoetrevino/taskboard/internal/logging"
)

type appKey struct{}

// WithApp returns a context carrying a prepared App. Commands run under
// such a context use it instead of building their own.
func WithApp(ctx context.Context, a *app.App) context.Context {
	return context.WithValue(ctx, appKey{}, a)
}

// CLI represents the CLI application context
type CLI struct {
	App    *app.App
	Config *config.Config

	owned     bool
	logCloser io.Closer
}

// GetCLIFromContext returns a CLI over the App stored in ctx, or builds
// one from the user's configuration when there is none.
func GetCLIFromContext(ctx context.Context) (*CLI, error) {
	if a, ok := ctx.Value(appKey{}).(*app.App); ok && a != nil {
		return &CLI{App: a, Config: config.Default()}, nil
	}
	return NewCLI(ctx)
}

// NewCLI loads configuration, starts file logging and connects to the
// daemon when one is running
func NewCLI(ctx context.Context) (*CLI, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	c := &CLI{Config: cfg, owned: true}

	// Logging is best effort for one-shot commands
	if logPath, err := cfg.LogPath(); err == nil {
		if closer, err := logging.Init(logPath, cfg.Log.Level); err == nil {
			c.logCloser = closer
		}
	}

	a, err := app.New(ctx, cfg, app.WithLogger(slog.Default()))
	if err != nil {
		_ = c.closeLog()
		return nil, err
	}
	c.App = a
	return c, nil
}

// Close cleans up CLI resources. An App taken from the context is left open.
func (c *CLI) Close() error {
	var err error
	if c.owned && c.App != nil {
		err = c.App.Close()
	}
	if logErr := c.closeLog(); err == nil {
		err = logErr
	}
	return err
}

func (c *CLI) closeLog() error {
	if c.logCloser == nil {
		return nil
	}
	err := c.logCloser.Close()
	c.logCloser = nil
	return err
}
