package daemon

import (
	"sync/atomic"
	"time"
)

// Metrics tracks daemon statistics using atomic operations for thread-safety
type Metrics struct {
	RequestsTotal    atomic.Int64
	RequestErrors    atomic.Int64
	Loads            atomic.Int64
	Saves            atomic.Int64
	ConnectedClients atomic.Int32
	StartTime        time.Time
}

// NewMetrics creates a new Metrics instance
func NewMetrics() *Metrics {
	return &Metrics{
		StartTime: time.Now(),
	}
}

// IncRequests increments the handled requests counter
func (m *Metrics) IncRequests() {
	m.RequestsTotal.Add(1)
}

// IncErrors increments the failed requests counter
func (m *Metrics) IncErrors() {
	m.RequestErrors.Add(1)
}

// IncLoads increments the successful load_tasks counter
func (m *Metrics) IncLoads() {
	m.Loads.Add(1)
}

// IncSaves increments the successful save_tasks counter
func (m *Metrics) IncSaves() {
	m.Saves.Add(1)
}

// SetConnectedClients sets the current connected clients count
func (m *Metrics) SetConnectedClients(count int32) {
	m.ConnectedClients.Store(count)
}

// MetricsSnapshot represents a point-in-time snapshot of metrics
type MetricsSnapshot struct {
	RequestsTotal    int64     `json:"requests_total"`
	RequestErrors    int64     `json:"request_errors"`
	Loads            int64     `json:"loads"`
	Saves            int64     `json:"saves"`
	ConnectedClients int32     `json:"connected_clients"`
	StartTime        time.Time `json:"start_time"`
	Uptime           string    `json:"uptime"`
}

// GetSnapshot returns a snapshot of current metrics
func (m *Metrics) GetSnapshot() MetricsSnapshot {
	return MetricsSnapshot{
		RequestsTotal:    m.RequestsTotal.Load(),
		RequestErrors:    m.RequestErrors.Load(),
		Loads:            m.Loads.Load(),
		Saves:            m.Saves.Load(),
		ConnectedClients: m.ConnectedClients.Load(),
		StartTime:        m.StartTime,
		Uptime:           time.Since(m.StartTime).Round(time.Second).String(),
	}
}
