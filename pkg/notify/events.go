package notify

import (
	"path/filepath"
	"time"
)

// Event types streamed to the observer.
const (
	TypeInit      = "vfs_init"
	TypeWrite     = "vfs_write"
	TypePlanWrite = "plan_file_write"
	TypeRead      = "vfs_read"
	TypeUnlink    = "vfs_unlink"
	TypeError     = "vfs_error"
)

// Event is anything the layer can send to an observer. Concrete events
// marshal to JSON with the exact field set their type defines.
type Event interface {
	EventType() string
}

type InitEvent struct {
	Type      string `json:"type"`
	PlansDir  string `json:"plansDir"`
	Mode      string `json:"mode"`
	Timestamp int64  `json:"timestamp"`
}

func (e InitEvent) EventType() string { return e.Type }

// WriteEvent covers both vfs_write (any write under the virtualized root)
// and plan_file_write (a document finalized via rename).
type WriteEvent struct {
	Type      string `json:"type"`
	Path      string `json:"path"`
	Filename  string `json:"filename"`
	Content   string `json:"content"`
	Size      int    `json:"size"`
	Timestamp int64  `json:"timestamp"`
}

func (e WriteEvent) EventType() string { return e.Type }

type ReadEvent struct {
	Type      string `json:"type"`
	Path      string `json:"path"`
	Filename  string `json:"filename"`
	Size      int    `json:"size"`
	Timestamp int64  `json:"timestamp"`
}

func (e ReadEvent) EventType() string { return e.Type }

type UnlinkEvent struct {
	Type      string `json:"type"`
	Path      string `json:"path"`
	Filename  string `json:"filename"`
	Timestamp int64  `json:"timestamp"`
}

func (e UnlinkEvent) EventType() string { return e.Type }

type ErrorEvent struct {
	Type      string `json:"type"`
	Operation string `json:"operation"`
	Path      string `json:"path"`
	Error     string `json:"error"`
	Timestamp int64  `json:"timestamp"`
}

func (e ErrorEvent) EventType() string { return e.Type }

func now() int64 {
	return time.Now().UnixMilli()
}

func NewInit(plansDir string) InitEvent {
	return InitEvent{Type: TypeInit, PlansDir: plansDir, Mode: "virtual", Timestamp: now()}
}

func NewWrite(path, content string) WriteEvent {
	return WriteEvent{
		Type:      TypeWrite,
		Path:      path,
		Filename:  filepath.Base(path),
		Content:   content,
		Size:      len(content),
		Timestamp: now(),
	}
}

func NewPlanWrite(path, content string) WriteEvent {
	e := NewWrite(path, content)
	e.Type = TypePlanWrite
	return e
}

func NewRead(path string, size int) ReadEvent {
	return ReadEvent{
		Type:      TypeRead,
		Path:      path,
		Filename:  filepath.Base(path),
		Size:      size,
		Timestamp: now(),
	}
}

func NewUnlink(path string) UnlinkEvent {
	return UnlinkEvent{
		Type:      TypeUnlink,
		Path:      path,
		Filename:  filepath.Base(path),
		Timestamp: now(),
	}
}

func NewError(operation, path string, err error) ErrorEvent {
	return ErrorEvent{
		Type:      TypeError,
		Operation: operation,
		Path:      path,
		Error:     err.Error(),
		Timestamp: now(),
	}
}
