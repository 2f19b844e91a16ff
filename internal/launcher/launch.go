// Package launcher starts the long-running front ends: the board view and
// the command daemon.
package launcher

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/thenoetrevino/taskboard/internal/app"
	"github.com/thenoetrevino/taskboard/internal/config"
	"github.com/thenoetrevino/taskboard/internal/daemon"
	"github.com/thenoetrevino/taskboard/internal/logging"
	"github.com/thenoetrevino/taskboard/internal/store"
	"github.com/thenoetrevino/taskboard/internal/tui"
)


// initLogging starts file logging for cfg; the caller closes the result
func initLogging(cfg *config.Config) (func(), error) {
	logPath, err := cfg.LogPath()
	if err != nil {
		return nil, err
	}
	closer, err := logging.Init(logPath, cfg.Log.Level)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logging: %w", err)
	}
	return func() {
		if err := closer.Close(); err != nil {
			slog.Error("error closing log file", "error", err)
		}
	}, nil
}

// Launch starts the board view and blocks until it exits
func Launch(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	closeLog, err := initLogging(cfg)
	if err != nil {
		return err
	}
	defer closeLog()

	application, err := app.New(ctx, cfg, app.WithLogger(slog.Default()))
	if err != nil {
		return err
	}
	defer func() {
		if err := application.Close(); err != nil {
			slog.Error("error closing app", "error", err)
		}
	}()

	slog.Info("board view starting", "mode", application.Mode(), "board_path", application.BoardPath())

	model := tui.New(ctx, application.BoardService, cfg)
	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx))

	if _, err := p.Run(); err != nil {
		if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
			slog.Info("shutdown signal received")
			return nil
		}
		return fmt.Errorf("error running program: %w", err)
	}
	return nil
}

// LaunchDaemon serves the configured board file on the configured socket
// until ctx is cancelled
func LaunchDaemon(ctx context.Context, cfg *config.Config) error {
	closeLog, err := initLogging(cfg)
	if err != nil {
		return err
	}
	defer closeLog()

	socketPath, err := cfg.SocketPath()
	if err != nil {
		return err
	}
	boardPath, err := cfg.BoardPath()
	if err != nil {
		return err
	}

	// A live daemon would lose its socket to NewServer's stale-socket cleanup
	probeCtx, cancel := context.WithTimeout(ctx, 500*time.Millisecond)
	if client, err := daemon.Dial(probeCtx, socketPath); err == nil {
		cancel()
		_ = client.Close()
		return fmt.Errorf("%w on %s", daemon.ErrAlreadyRunning, socketPath)
	}
	cancel()

	server, err := daemon.NewServer(socketPath, store.New(boardPath), daemon.WithServerLogger(slog.Default()))
	if err != nil {
		return fmt.Errorf("failed to create daemon: %w", err)
	}

	slog.Info("taskboard daemon starting", "socket_path", socketPath, "board_path", boardPath)

	// Start the daemon (blocks until shutdown)
	if err := server.Start(ctx); err != nil {
		return fmt.Errorf("daemon error: %w", err)
	}

	slog.Info("taskboard daemon shut down gracefully")
	return nil
}
