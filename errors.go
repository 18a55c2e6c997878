package uitask

import "errors"

const Namespace = "uitask"

var (
	ErrTaskPanicked  = errors.New(Namespace + ": task execution panicked")
	ErrNilTask       = errors.New(Namespace + ": nil task")
	ErrNilQueue      = errors.New(Namespace + ": delivery queue must not be nil")
	ErrInvalidConfig = errors.New(Namespace + ": invalid configuration")
)
