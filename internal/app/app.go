package app

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/thenoetrevino/taskboard/internal/config"
	"github.com/thenoetrevino/taskboard/internal/daemon"
	"github.com/thenoetrevino/taskboard/internal/services/board"
	"github.com/thenoetrevino/taskboard/internal/store"
)

// dialTimeout bounds the daemon probe at startup
const dialTimeout = 200 * time.Millisecond

// Mode names where the board is read from and written to
type Mode string

const (
	ModeFile   Mode = "file"
	ModeDaemon Mode = "daemon"
	ModeCustom Mode = "custom"
)

// App holds the board store and the services built on it.
// This is the main application container that manages service lifecycles.
type App struct {
	store  store.DataStore
	client *daemon.Client
	mode   Mode
	path   string

	BoardService board.Service
}

// New creates the application container. When the daemon is enabled and
// answering on its socket, every board read and write goes through it;
// otherwise the board file is used directly.
func New(ctx context.Context, cfg *config.Config, opts ...Option) (*App, error) {
	options := &appConfig{logger: slog.Default()}
	for _, opt := range opts {
		opt(options)
	}

	a := &App{}

	boardPath, err := cfg.BoardPath()
	if err != nil {
		return nil, fmt.Errorf("failed to resolve board path: %w", err)
	}
	a.path = boardPath

	switch {
	case options.dataStore != nil:
		a.store = options.dataStore
		a.mode = ModeCustom
	case !cfg.Daemon.Disabled:
		if client := connectDaemon(ctx, cfg, options.logger); client != nil {
			a.store = client
			a.client = client
			a.mode = ModeDaemon
		}
	}

	if a.store == nil {
		a.store = store.New(boardPath)
		a.mode = ModeFile
	}

	a.BoardService = board.NewService(a.store, board.WithLogger(options.logger))
	options.logger.Debug("app initialized", "mode", a.mode, "board_path", boardPath)
	return a, nil
}

// connectDaemon returns a connected client or nil when no daemon answers
func connectDaemon(ctx context.Context, cfg *config.Config, logger *slog.Logger) *daemon.Client {
	socketPath, err := cfg.SocketPath()
	if err != nil {
		logger.Warn("cannot resolve daemon socket", "error", err)
		return nil
	}

	dialCtx, cancel := context.WithTimeout(ctx, dialTimeout)
	defer cancel()

	client, err := daemon.Dial(dialCtx, socketPath)
	if err != nil {
		if connErr := daemon.ClassifyError(err); connErr != nil {
			logger.Debug("daemon unavailable, using board file", "message", connErr.Message, "hint", connErr.Hint)
		}
		return nil
	}
	return client
}

// Store returns the data store the services run on
func (a *App) Store() store.DataStore {
	return a.store
}

// Mode reports whether the board is served by the daemon or the file
func (a *App) Mode() Mode {
	return a.mode
}

// BoardPath is the configured board file. In daemon mode the daemon may
// be serving a different file.
func (a *App) BoardPath() string {
	return a.path
}

// Daemon returns the daemon client, or nil outside daemon mode
func (a *App) Daemon() *daemon.Client {
	return a.client
}

// Close releases the daemon connection, if any
func (a *App) Close() error {
	if a.client != nil {
		return a.client.Close()
	}
	return nil
}
