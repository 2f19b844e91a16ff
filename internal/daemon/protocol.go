package daemon

import "encoding/json"

// ProtocolVersion is stamped on every request and response
const ProtocolVersion = 1

// Commands understood by the daemon
const (
	CommandLoadTasks = "load_tasks"
	CommandSaveTasks = "save_tasks"
	CommandStatus    = "status"
)

// Request is one newline-terminated JSON line sent by a client
type Request struct {
	Version int             `json:"version"`
	ID      int64           `json:"id"`
	Command string          `json:"command"`
	Data    json.RawMessage `json:"data,omitempty"`
}

// Response answers the Request with the same ID. On failure OK is false
// and Error holds the message; Data is only set on success.
type Response struct {
	Version int             `json:"version"`
	ID      int64           `json:"id"`
	OK      bool            `json:"ok"`
	Data    json.RawMessage `json:"data,omitempty"`
	Error   string          `json:"error,omitempty"`
}

func okResponse(id int64, data json.RawMessage) Response {
	return Response{Version: ProtocolVersion, ID: id, OK: true, Data: data}
}

func errorResponse(id int64, msg string) Response {
	return Response{Version: ProtocolVersion, ID: id, Error: msg}
}
