// ================== pkg/errors/errors.go =================
package errors

import "errors"

var (
	// ErrNotFound means the report id does not exist.
	ErrNotFound = errors.New("report not found")
	// ErrConflict means the caller's expected version is stale. A routine
	// outcome of concurrent edits, not a fault.
	ErrConflict = errors.New("version conflict")
	// ErrValidation means malformed input, rejected before it reaches the store.
	ErrValidation = errors.New("validation failed")
	// ErrTransient means the store timed out or was unreachable. Retryable
	// with the same expected version.
	ErrTransient = errors.New("transient store failure")
	ErrInternal  = errors.New("internal server error")
)
