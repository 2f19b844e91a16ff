package store

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"sync"

	jsonschema "github.com/santhosh-tekuri/jsonschema/v5"

	"github.com/thenoetrevino/taskboard/internal/models"
)

// boardSchema is the shape every board file must have. Extra properties are
// tolerated; missing or mistyped ones are not.
const boardSchema = `{
  "$schema": "http://json-schema.org/draft-07/schema#",
  "type": "object",
  "required": ["columns"],
  "properties": {
    "columns": {
      "type": "array",
      "items": { "$ref": "#/definitions/column" }
    }
  },
  "definitions": {
    "column": {
      "type": "object",
      "required": ["id", "title", "tasks"],
      "properties": {
        "id": { "type": "string" },
        "title": { "type": "string" },
        "tasks": {
          "type": "array",
          "items": { "$ref": "#/definitions/task" }
        }
      }
    },
    "task": {
      "type": "object",
      "required": ["id", "title", "description"],
      "properties": {
        "id": { "type": "string" },
        "title": { "type": "string" },
        "description": { "type": "string" }
      }
    }
  }
}`

var compiledSchema = sync.OnceValues(func() (*jsonschema.Schema, error) {
	return jsonschema.CompileString("taskboard.schema.json", boardSchema)
})

// ShapeError lists every place a document departs from the board shape
type ShapeError struct {
	Problems []string
}

// Error implements the error interface.
func (e *ShapeError) Error() string {
	return "does not match board shape: " + strings.Join(e.Problems, "; ")
}

// Decode parses raw file contents into a board. It fails on invalid JSON,
// trailing data after the document, or any shape mismatch.
func Decode(raw []byte) (*models.KanbanData, error) {
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()

	var doc interface{}
	if err := dec.Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, errors.New("file is empty")
		}
		return nil, fmt.Errorf("invalid JSON: %w", err)
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return nil, errors.New("invalid JSON: unexpected data after the board document")
	}

	schema, err := compiledSchema()
	if err != nil {
		return nil, fmt.Errorf("compile board schema: %w", err)
	}
	if err := schema.Validate(doc); err != nil {
		return nil, shapeError(err)
	}

	var data models.KanbanData
	if err := json.Unmarshal(raw, &data); err != nil {
		return nil, fmt.Errorf("invalid JSON: %w", err)
	}
	return data.Normalize(), nil
}

// Encode renders a board as stable, two-space indented JSON with a trailing newline
func Encode(data *models.KanbanData) ([]byte, error) {
	if data == nil {
		data = &models.KanbanData{}
	}
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(data); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func shapeError(err error) error {
	var ve *jsonschema.ValidationError
	if !errors.As(err, &ve) {
		return err
	}
	shape := &ShapeError{}
	collectProblems(shape, ve)
	if len(shape.Problems) == 0 {
		shape.Problems = append(shape.Problems, ve.Message)
	}
	return shape
}

func collectProblems(shape *ShapeError, err *jsonschema.ValidationError) {
	if len(err.Causes) == 0 {
		path := jsonPointerToPath(err.InstanceLocation)
		if path == "" {
			path = "board"
		}
		shape.Problems = append(shape.Problems, fmt.Sprintf("%s: %s", path, err.Message))
		return
	}
	for _, cause := range err.Causes {
		collectProblems(shape, cause)
	}
}

// jsonPointerToPath turns "/columns/0/tasks" into "columns[0].tasks"
func jsonPointerToPath(ptr string) string {
	ptr = strings.TrimPrefix(ptr, "#")
	ptr = strings.TrimPrefix(ptr, "/")
	if ptr == "" {
		return ""
	}

	var path strings.Builder
	for _, part := range strings.Split(ptr, "/") {
		part = strings.ReplaceAll(part, "~1", "/")
		part = strings.ReplaceAll(part, "~0", "~")
		if part == "" {
			continue
		}
		if idx, err := strconv.Atoi(part); err == nil {
			fmt.Fprintf(&path, "[%d]", idx)
			continue
		}
		if path.Len() > 0 {
			path.WriteByte('.')
		}
		path.WriteString(part)
	}
	return path.String()
}
