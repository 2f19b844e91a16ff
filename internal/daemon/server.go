// Package daemon serves the board over a unix socket. Requests from every
// connection are funneled into a single goroutine that owns the DataStore,
// so load_tasks and save_tasks never interleave.
package daemon

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/thenoetrevino/taskboard/internal/store"
)

// maxLineSize bounds a single request line
const maxLineSize = 16 << 20

// job is one request waiting for the store owner
type job struct {
	req   Request
	reply chan Response
}

// client represents a connected client to the daemon
type client struct {
	conn      net.Conn
	closeOnce sync.Once
}

func (c *client) close() error {
	var err error
	c.closeOnce.Do(func() {
		err = c.conn.Close()
	})
	return err
}

// Server represents the taskboard command daemon
type Server struct {
	socketPath string
	listener   net.Listener
	store      store.DataStore
	clients    map[*client]bool
	mu         sync.RWMutex
	ctx        context.Context
	cancel     context.CancelFunc
	jobs       chan job
	metrics    *Metrics
	logger     *slog.Logger
	wg         sync.WaitGroup

	shutdownOnce sync.Once
}

// ServerOption configures a Server
type ServerOption func(*Server)

// WithServerLogger sets the logger for the server
func WithServerLogger(logger *slog.Logger) ServerOption {
	return func(s *Server) {
		s.logger = logger
	}
}

// NewServer listens on socketPath and serves ds
func NewServer(socketPath string, ds store.DataStore, opts ...ServerOption) (*Server, error) {
	if ds == nil {
		return nil, errors.New("daemon requires a data store")
	}

	// Ensure the directory exists
	dir := filepath.Dir(socketPath)
	if dir != "" {
		if err := os.MkdirAll(dir, 0o700); err != nil {
			return nil, fmt.Errorf("failed to create socket directory: %w", err)
		}
	}

	// Remove stale socket file if it exists
	if _, err := os.Stat(socketPath); err == nil {
		if err := os.Remove(socketPath); err != nil {
			return nil, fmt.Errorf("failed to remove stale socket: %w", err)
		}
	}

	lc := net.ListenConfig{}
	listener, err := lc.Listen(context.Background(), "unix", socketPath)
	if err != nil {
		return nil, fmt.Errorf("failed to create socket listener: %w", err)
	}

	ctx, cancel := context.WithCancel(context.Background())

	s := &Server{
		socketPath: socketPath,
		listener:   listener,
		store:      ds,
		clients:    make(map[*client]bool),
		ctx:        ctx,
		cancel:     cancel,
		jobs:       make(chan job),
		metrics:    NewMetrics(),
		logger:     slog.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

// SocketPath returns the path the server listens on
func (s *Server) SocketPath() string {
	return s.socketPath
}

// Metrics returns the live metrics of the server
func (s *Server) Metrics() *Metrics {
	return s.metrics
}

// Start runs the daemon until ctx is cancelled or Shutdown is called
func (s *Server) Start(ctx context.Context) error {
	s.logger.Info("daemon starting", "socket_path", s.socketPath)

	combinedCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	go func() {
		<-s.ctx.Done()
		cancel()
	}()

	acceptErr := make(chan error, 1)
	go func() {
		acceptErr <- s.acceptLoop(combinedCtx)
	}()

	go s.storeLoop(combinedCtx)

	select {
	case <-combinedCtx.Done():
		s.logger.Info("daemon context cancelled, shutting down")
	case err := <-acceptErr:
		if err != nil {
			s.logger.Error("accept loop failed", "error", err)
		}
	}

	return s.Shutdown()
}

// acceptLoop accepts incoming client connections
func (s *Server) acceptLoop(ctx context.Context) error {
	for {
		conn, err := s.listener.Accept()
		if err != nil {
			if ctx.Err() != nil || errors.Is(err, net.ErrClosed) {
				return nil
			}
			return fmt.Errorf("accept error: %w", err)
		}

		c := &client{conn: conn}

		s.mu.Lock()
		s.clients[c] = true
		s.mu.Unlock()
		s.updateClientCount()

		s.logger.Debug("client connected", "clients", s.getClientCount())

		s.wg.Add(1)
		go s.handleClient(ctx, c)
	}
}

// storeLoop is the only goroutine that touches the store
func (s *Server) storeLoop(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		case j := <-s.jobs:
			j.reply <- s.execute(ctx, j.req)
		}
	}
}

// handleClient reads request lines and writes one response per line
func (s *Server) handleClient(ctx context.Context, c *client) {
	defer s.wg.Done()
	defer func() {
		s.removeClient(c)
		s.logger.Debug("client disconnected", "clients", s.getClientCount())
	}()

	reader := bufio.NewReaderSize(c.conn, 64*1024)
	encoder := json.NewEncoder(c.conn)
	encoder.SetEscapeHTML(false)

	for {
		line, err := readLine(reader)
		if err != nil {
			if !errors.Is(err, io.EOF) && ctx.Err() == nil {
				s.logger.Debug("client read failed", "error", err)
			}
			return
		}
		if len(bytes.TrimSpace(line)) == 0 {
			continue
		}

		resp, ok := s.dispatch(ctx, line)
		if !ok {
			return
		}
		if err := encoder.Encode(resp); err != nil {
			s.logger.Debug("client write failed", "error", err)
			return
		}
	}
}

// dispatch decodes one request line and waits for the store owner to answer.
// It reports false when the server is shutting down.
func (s *Server) dispatch(ctx context.Context, line []byte) (Response, bool) {
	s.metrics.IncRequests()

	var req Request
	if err := json.Unmarshal(line, &req); err != nil {
		s.metrics.IncErrors()
		return errorResponse(0, fmt.Sprintf("invalid request: %v", err)), true
	}

	if req.Version != 0 && req.Version != ProtocolVersion {
		s.logger.Warn("protocol version mismatch", "got", req.Version, "expected", ProtocolVersion)
	}

	j := job{req: req, reply: make(chan Response, 1)}
	select {
	case s.jobs <- j:
	case <-ctx.Done():
		return Response{}, false
	}

	select {
	case resp := <-j.reply:
		if !resp.OK {
			s.metrics.IncErrors()
		}
		return resp, true
	case <-ctx.Done():
		return Response{}, false
	}
}

// execute runs a single request against the store
func (s *Server) execute(ctx context.Context, req Request) Response {
	switch req.Command {
	case CommandLoadTasks:
		data, err := s.store.Load(ctx)
		if err != nil {
			s.logger.Error("load_tasks failed", "id", req.ID, "error", err)
			return errorResponse(req.ID, err.Error())
		}
		raw, err := json.Marshal(data)
		if err != nil {
			return errorResponse(req.ID, err.Error())
		}
		s.metrics.IncLoads()
		return okResponse(req.ID, raw)

	case CommandSaveTasks:
		if len(req.Data) == 0 {
			return errorResponse(req.ID, "save_tasks requires data")
		}
		data, err := store.Decode(req.Data)
		if err != nil {
			return errorResponse(req.ID, fmt.Sprintf("invalid board: %v", err))
		}
		if err := s.store.Save(ctx, data); err != nil {
			s.logger.Error("save_tasks failed", "id", req.ID, "error", err)
			return errorResponse(req.ID, err.Error())
		}
		s.metrics.IncSaves()
		s.logger.Debug("board saved", "id", req.ID, "tasks", data.TaskCount())
		return okResponse(req.ID, nil)

	case CommandStatus:
		raw, err := json.Marshal(s.metrics.GetSnapshot())
		if err != nil {
			return errorResponse(req.ID, err.Error())
		}
		return okResponse(req.ID, raw)

	default:
		return errorResponse(req.ID, fmt.Sprintf("unknown command %q", req.Command))
	}
}

// Shutdown gracefully shuts down the server
func (s *Server) Shutdown() error {
	s.shutdownOnce.Do(func() {
		s.logger.Info("shutting down daemon")

		s.cancel()

		if s.listener != nil {
			if err := s.listener.Close(); err != nil && !errors.Is(err, net.ErrClosed) {
				s.logger.Warn("failed to close listener", "error", err)
			}
		}

		s.mu.Lock()
		for c := range s.clients {
			if err := c.close(); err != nil {
				s.logger.Debug("failed to close client connection", "error", err)
			}
		}
		s.mu.Unlock()

		waitTimeout(&s.wg, 2*time.Second)

		if err := os.Remove(s.socketPath); err != nil && !os.IsNotExist(err) {
			s.logger.Warn("failed to remove socket file", "error", err)
		}
	})
	return nil
}

// Helper methods

func (s *Server) getClientCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.clients)
}

func (s *Server) updateClientCount() {
	s.metrics.SetConnectedClients(int32(s.getClientCount()))
}

// removeClient safely removes a client from the server
func (s *Server) removeClient(c *client) {
	s.mu.Lock()
	delete(s.clients, c)
	s.mu.Unlock()

	_ = c.close()
	s.updateClientCount()
}

// readLine reads one newline-terminated line of at most maxLineSize bytes.
// A final line without a newline is returned as is.
func readLine(r *bufio.Reader) ([]byte, error) {
	var line []byte
	for {
		chunk, isPrefix, err := r.ReadLine()
		if err != nil {
			if errors.Is(err, io.EOF) && len(line) > 0 {
				return line, nil
			}
			return nil, err
		}
		line = append(line, chunk...)
		if len(line) > maxLineSize {
			return nil, fmt.Errorf("request line exceeds %d bytes", maxLineSize)
		}
		if !isPrefix {
			return line, nil
		}
	}
}

func waitTimeout(wg *sync.WaitGroup, d time.Duration) {
	done := make(chan struct{})
	go func() {
		wg.Wait()
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(d):
	}
}
