package event

import (
	"encoding/json"
	"errors"
	"os"
	"sync"
	"time"

	"github.com/osse101/roomcrawl/internal/logger"
)

// DeadLetterSchemaVersion is the version of the dead-letter line format.
// Bump it when DeadLetterEntry changes.
const DeadLetterSchemaVersion = "1.0"

// ErrDeadLetterClosed is returned by Write after Close
var ErrDeadLetterClosed = errors.New("dead-letter file closed")

// DeadLetterWriter appends game events that never reached the bus to a
// JSON-lines file. A dead-lettered event is a fight, kill, item or room
// change the session already applied but no subscriber saw, so metrics for
// a run can be replayed from the file afterwards.
type DeadLetterWriter struct {
	mu     sync.Mutex
	file   *os.File
	closed bool
}

// DeadLetterEntry is one line of the dead-letter file
type DeadLetterEntry struct {
	SchemaVersion string    `json:"schema_version"`
	Timestamp     time.Time `json:"timestamp"`
	Event         Event     `json:"event"`
	Attempts      int       `json:"attempts"`
	LastError     string    `json:"last_error,omitempty"`
}

// NewDeadLetterWriter opens path for appending, creating it if needed
func NewDeadLetterWriter(path string) (*DeadLetterWriter, error) {
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, DeadLetterFilePermissions)
	if err != nil {
		return nil, err
	}
	return &DeadLetterWriter{file: f}, nil
}

// Write records event after attempts failed publishes
func (dlw *DeadLetterWriter) Write(event Event, attempts int, lastError error) error {
	dlw.mu.Lock()
	defer dlw.mu.Unlock()
	if dlw.closed {
		return ErrDeadLetterClosed
	}

	entry := DeadLetterEntry{
		SchemaVersion: DeadLetterSchemaVersion,
		Timestamp:     time.Now(),
		Event:         event,
		Attempts:      attempts,
	}
	if lastError != nil {
		entry.LastError = lastError.Error()
	}

	data, err := json.Marshal(entry)
	if err != nil {
		return err
	}
	if _, err := dlw.file.Write(append(data, '\n')); err != nil {
		return err
	}

	logger.Warn(LogMsgEventDeadLettered,
		"event_type", event.Type,
		"attempts", attempts,
		"error", entry.LastError)
	return nil
}

// Close closes the file. Later calls are no-ops.
func (dlw *DeadLetterWriter) Close() error {
	dlw.mu.Lock()
	defer dlw.mu.Unlock()
	if dlw.closed {
		return nil
	}
	dlw.closed = true
	return dlw.file.Close()
}
