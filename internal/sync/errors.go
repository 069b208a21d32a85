package sync

import (
	"errors"
	"fmt"
	"time"
)

// Common sync errors
var (
	// ErrStaleWrite indicates an upload was attempted while the local
	// replica is known stale. The write is rejected before any server
	// contact; recover by refreshing and retrying.
	ErrStaleWrite = errors.New("stale write forbidden")

	// ErrAuth indicates the server rejected the caller's credentials.
	// Not retried: requires external re-authentication.
	ErrAuth = errors.New("authentication failed")

	// ErrValidation indicates a malformed server payload or a schema
	// violation. Fatal for the attempt, not retried automatically.
	ErrValidation = errors.New("invalid payload")
)

// ConflictError reports that the server's recorded cursor is ahead of the
// cursor the caller presented. The losing write must be discarded and the
// replica refreshed before retrying; the core never merges.
type ConflictError struct {
	ServerCursor time.Time
	ClientCursor time.Time
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("sync conflict: server cursor %s is ahead of client cursor %s",
		e.ServerCursor.Format(time.RFC3339Nano), e.ClientCursor.Format(time.RFC3339Nano))
}

// TransportError wraps a network or server-side failure of one transport
// operation. The delta path retries once as a full sync within the same
// attempt; beyond that the error surfaces and the scheduler decides.
type TransportError struct {
	Err error
	Op  string
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("transport %s: %v", e.Op, e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// errorKind maps an error to the stable kind string reported to observers.
func errorKind(err error) string {
	var conflict *ConflictError
	var transport *TransportError
	switch {
	case errors.As(err, &conflict):
		return "conflict"
	case errors.As(err, &transport):
		return "transport"
	case errors.Is(err, ErrStaleWrite):
		return "stale_write"
	case errors.Is(err, ErrValidation):
		return "validation"
	case errors.Is(err, ErrAuth):
		return "auth"
	default:
		return "internal"
	}
}
