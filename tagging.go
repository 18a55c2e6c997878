package uitask

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
)

// TaggedError correlates a task failure with the submission ID returned by
// Submit. Produced only when WithErrorTagging is enabled on the Dispatcher.
type TaggedError interface {
	error
	Unwrap() error
	TaskID() uuid.UUID
}

type taggedError struct {
	err error
	id  uuid.UUID
}

func newTaggedError(err error, id uuid.UUID) error {
	if err == nil {
		return nil
	}
	return &taggedError{err: err, id: id}
}

func (e *taggedError) Error() string { return e.err.Error() }

func (e *taggedError) Unwrap() error { return e.err }

func (e *taggedError) TaskID() uuid.UUID { return e.id }

func (e *taggedError) Format(s fmt.State, verb rune) {
	switch verb {
	case 'v':
		if s.Flag('+') {
			_, _ = fmt.Fprintf(s, "task(id=%s): %+v", e.id, e.err)
			return
		}
		fallthrough
	case 's':
		_, _ = fmt.Fprint(s, e.Error())
	case 'q':
		_, _ = fmt.Fprintf(s, "%q", e.Error())
	}
}

// ExtractTaskID returns the submission ID from err if present.
func ExtractTaskID(err error) (uuid.UUID, bool) {
	var te TaggedError
	if errors.As(err, &te) {
		return te.TaskID(), true
	}
	return uuid.Nil, false
}
