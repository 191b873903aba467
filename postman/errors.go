package postman

import (
	"errors"
	"fmt"
)

var (
	// ErrMissingAPIKey is returned by New when no API key is configured.
	ErrMissingAPIKey = errors.New("Postman API key is required")

	// ErrValidation matches every error caused by missing or malformed input.
	// Such errors are always returned before any network call.
	ErrValidation = errors.New("validation failed")

	// ErrRemote matches every error caused by an unsuccessful round trip.
	ErrRemote = errors.New("remote call failed")
)

// ValidationError is a field-specific input error.
type ValidationError struct {
	Err error
}

func (e *ValidationError) Error() string { return e.Err.Error() }

func (e *ValidationError) Unwrap() error { return e.Err }

func (e *ValidationError) Is(target error) bool { return target == ErrValidation }

// RemoteError describes a failed call against the Postman API. Its message only
// names the attempted action; the status and body are kept for logging.
type RemoteError struct {
	Op         string
	StatusCode int
	Body       string
	Err        error
}

func (e *RemoteError) Error() string { return e.Op }

func (e *RemoteError) Unwrap() error { return e.Err }

func (e *RemoteError) Is(target error) bool { return target == ErrRemote }

// Detail renders the full failure including the remote status and body.
func (e *RemoteError) Detail() string {
	switch {
	case e.Err != nil:
		return fmt.Sprintf("%s: %v", e.Op, e.Err)
	case e.Body != "":
		return fmt.Sprintf("%s (status %d): %s", e.Op, e.StatusCode, e.Body)
	default:
		return fmt.Sprintf("%s (status %d)", e.Op, e.StatusCode)
	}
}
