// Package notify carries the layer's outbound event stream. Events are
// fire-and-forget: a sink that fails, or the absence of an observer
// entirely, never surfaces as an error to the filesystem caller.
package notify

import (
	"encoding/json"
	"io"
	"log/slog"
	"os"
	"strconv"
	"sync"
)

// EventFdEnv names the inherited file descriptor an observer reads events
// from. Unset or invalid means no observer is attached.
const EventFdEnv = "PLANSFS_EVENT_FD"

type Sink interface {
	Send(e Event)
}

// NopSink drops every event. Used when no observer channel exists.
type NopSink struct{}

func (NopSink) Send(Event) {}

// WriterSink streams events as JSON lines. Encode errors are swallowed.
type WriterSink struct {
	mu  sync.Mutex
	enc *json.Encoder
}

func NewWriterSink(w io.Writer) *WriterSink {
	return &WriterSink{enc: json.NewEncoder(w)}
}

func (s *WriterSink) Send(e Event) {
	s.mu.Lock()
	defer s.mu.Unlock()
	_ = s.enc.Encode(e)
}

// SlogSink mirrors events into a structured log instead of a channel.
type SlogSink struct {
	Logger *slog.Logger
}

func (s SlogSink) Send(e Event) {
	logger := s.Logger
	if logger == nil {
		logger = slog.Default()
	}
	logger.Info("vfs event", "type", e.EventType(), "event", e)
}

// FromEnv returns a sink for the observer channel described by the
// environment, or NopSink when none is configured.
func FromEnv() Sink {
	raw := os.Getenv(EventFdEnv)
	if raw == "" {
		return NopSink{}
	}
	fd, err := strconv.Atoi(raw)
	if err != nil || fd < 0 {
		return NopSink{}
	}
	return NewWriterSink(os.NewFile(uintptr(fd), "plansfs-events"))
}

var (
	_ Sink = NopSink{}
	_ Sink = (*WriterSink)(nil)
	_ Sink = SlogSink{}
)
