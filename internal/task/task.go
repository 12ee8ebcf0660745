package task

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
)

// ErrIndexOutOfRange reports a store or presenter index outside [0, size).
var ErrIndexOutOfRange = errors.New("index out of range")

// IndexError describes an out-of-range access.
type IndexError struct {
	Op    string
	Index int
	Size  int
}

func (e *IndexError) Error() string {
	return fmt.Sprintf("%s: index %d with size %d: %s", e.Op, e.Index, e.Size, ErrIndexOutOfRange)
}

// Unwrap returns ErrIndexOutOfRange.
func (e *IndexError) Unwrap() error {
	return ErrIndexOutOfRange
}

// Task represents a single to-do entry.
type Task struct {
	ID          string
	Day         string
	Date        string
	Month       string
	Year        int
	Time        string
	Title       string
	Description string
}

// NewID returns a fresh task identifier.
func NewID() string {
	return uuid.Must(uuid.NewV7()).String()
}

// SameFields reports whether two tasks carry identical visible fields,
// ignoring identity.
func (t Task) SameFields(other Task) bool {
	t.ID = other.ID
	return t == other
}
