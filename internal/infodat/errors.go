package infodat

import (
	"errors"
	"fmt"
)

var (
	ErrNotFound = errors.New("descriptor not found")
	ErrCorrupt  = errors.New("descriptor corrupt")
	ErrWrite    = errors.New("descriptor write failed")
)

// NotFoundError reports a package directory without an info.dat.
type NotFoundError struct {
	Path string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s: %s", ErrNotFound, e.Path)
}

func (e *NotFoundError) Is(target error) bool { return target == ErrNotFound }

func (e *NotFoundError) ErrorKind() string { return "not_found" }

// CorruptError reports an info.dat that exists but cannot be parsed into a
// descriptor.
type CorruptError struct {
	Path string
	Err  error
}

func (e *CorruptError) Error() string {
	return fmt.Sprintf("%s: %s: %v", ErrCorrupt, e.Path, e.Err)
}

func (e *CorruptError) Unwrap() error { return e.Err }

func (e *CorruptError) Is(target error) bool { return target == ErrCorrupt }

func (e *CorruptError) ErrorKind() string { return "corrupt" }

// WriteError reports a failed save. Op names the step that failed.
type WriteError struct {
	Path string
	Op   string
	Err  error
}

func (e *WriteError) Error() string {
	return fmt.Sprintf("%s: %s %s: %v", ErrWrite, e.Op, e.Path, e.Err)
}

func (e *WriteError) Unwrap() error { return e.Err }

func (e *WriteError) Is(target error) bool { return target == ErrWrite }

func (e *WriteError) ErrorKind() string { return "write" }

// ErrorClassifier is implemented by errors that carry a stable kind string.
type ErrorClassifier interface {
	ErrorKind() string
}

// Kind returns the classification of err, or "" when err does not carry one.
func Kind(err error) string {
	var classifier ErrorClassifier
	if errors.As(err, &classifier) {
		return classifier.ErrorKind()
	}
	return ""
}
