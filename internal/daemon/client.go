package daemon

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"net"
	"sync"
	"time"

	"github.com/thenoetrevino/taskboard/internal/models"
	"github.com/thenoetrevino/taskboard/internal/store"
)

// DefaultTimeout bounds a request when the caller's context has no deadline
const DefaultTimeout = 5 * time.Second

// Client talks to a running daemon and satisfies store.DataStore, so
// callers can swap it in for the file store.
type Client struct {
	socketPath string
	timeout    time.Duration

	mu     sync.Mutex
	conn   net.Conn
	reader *bufio.Reader
	nextID int64
	closed bool
}

// Compile-time verification that *Client implements store.DataStore
var _ store.DataStore = (*Client)(nil)

// ClientOption configures a Client
type ClientOption func(*Client)

// WithTimeout sets the per-request timeout used when ctx has no deadline
func WithTimeout(d time.Duration) ClientOption {
	return func(c *Client) {
		c.timeout = d
	}
}

// NewClient creates a client but does not connect; the first request dials.
func NewClient(socketPath string, opts ...ClientOption) *Client {
	c := &Client{
		socketPath: socketPath,
		timeout:    DefaultTimeout,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Dial connects to the daemon at socketPath, returning a classified error
// when nothing is listening.
func Dial(ctx context.Context, socketPath string, opts ...ClientOption) (*Client, error) {
	c := NewClient(socketPath, opts...)

	c.mu.Lock()
	defer c.mu.Unlock()
	if err := c.connect(ctx); err != nil {
		return nil, err
	}
	return c, nil
}

// Load fetches the board through load_tasks
func (c *Client) Load(ctx context.Context) (*models.KanbanData, error) {
	resp, err := c.call(ctx, CommandLoadTasks, nil)
	if err != nil {
		return nil, err
	}
	data, err := store.Decode(resp.Data)
	if err != nil {
		return nil, fmt.Errorf("daemon returned an invalid board: %w", err)
	}
	return data, nil
}

// Save replaces the board through save_tasks
func (c *Client) Save(ctx context.Context, data *models.KanbanData) error {
	raw, err := store.Encode(data)
	if err != nil {
		return fmt.Errorf("failed to encode board: %w", err)
	}
	_, err = c.call(ctx, CommandSaveTasks, raw)
	return err
}

// Status returns the daemon's metrics snapshot
func (c *Client) Status(ctx context.Context) (MetricsSnapshot, error) {
	var snap MetricsSnapshot
	resp, err := c.call(ctx, CommandStatus, nil)
	if err != nil {
		return snap, err
	}
	if err := json.Unmarshal(resp.Data, &snap); err != nil {
		return snap, fmt.Errorf("failed to decode status: %w", err)
	}
	return snap, nil
}

// Close releases the connection. Further calls return ErrClientClosed.
func (c *Client) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.closed = true
	return c.disconnect()
}

// call sends one request and waits for its response. A transport failure
// drops the connection so the next call redials.
func (c *Client) call(ctx context.Context, command string, data json.RawMessage) (Response, error) {
	if err := ctx.Err(); err != nil {
		return Response{}, err
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return Response{}, ErrClientClosed
	}
	if c.conn == nil {
		if err := c.connect(ctx); err != nil {
			return Response{}, err
		}
	}

	deadline, ok := ctx.Deadline()
	if !ok {
		deadline = time.Now().Add(c.timeout)
	}
	if err := c.conn.SetDeadline(deadline); err != nil {
		_ = c.disconnect()
		return Response{}, fmt.Errorf("failed to set deadline: %w", err)
	}

	c.nextID++
	req := Request{
		Version: ProtocolVersion,
		ID:      c.nextID,
		Command: command,
		Data:    data,
	}

	line, err := json.Marshal(req)
	if err != nil {
		return Response{}, fmt.Errorf("failed to encode request: %w", err)
	}
	line = append(line, '\n')
	if _, err := c.conn.Write(line); err != nil {
		_ = c.disconnect()
		return Response{}, fmt.Errorf("failed to send %s: %w", command, err)
	}

	raw, err := readLine(c.reader)
	if err != nil {
		_ = c.disconnect()
		return Response{}, fmt.Errorf("failed to read %s response: %w", command, err)
	}

	var resp Response
	if err := json.Unmarshal(raw, &resp); err != nil {
		_ = c.disconnect()
		return Response{}, fmt.Errorf("failed to decode %s response: %w", command, err)
	}
	if resp.ID != req.ID {
		_ = c.disconnect()
		return Response{}, fmt.Errorf("response id %d does not match request id %d", resp.ID, req.ID)
	}
	if !resp.OK {
		return resp, &RemoteError{Command: command, Message: resp.Error}
	}
	return resp, nil
}

func (c *Client) connect(ctx context.Context) error {
	dialer := net.Dialer{Timeout: c.timeout}
	conn, err := dialer.DialContext(ctx, "unix", c.socketPath)
	if err != nil {
		return ClassifyError(err)
	}
	c.conn = conn
	c.reader = bufio.NewReaderSize(conn, 64*1024)
	return nil
}

func (c *Client) disconnect() error {
	if c.conn == nil {
		return nil
	}
	err := c.conn.Close()
	c.conn = nil
	c.reader = nil
	return err
}
