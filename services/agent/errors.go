package agent

import (
	"errors"
	"fmt"
)

// Resolver error codes. These abort the whole turn: no actions run and
// the caller surfaces exactly one assistant message plus one notification.
const (
	ErrCodeServiceUnavailable = "service_unavailable"
	ErrCodeUnauthorized       = "unauthorized"
	ErrCodeRateLimited        = "rate_limited"
	ErrCodeMalformedResponse  = "malformed_response"
)

// Executor error codes. These are local to a single action: the action
// gets a failure result string and its siblings still execute.
const (
	ErrCodeEntityNotFound      = "entity_not_found"
	ErrCodePreconditionMissing = "precondition_missing"
)

// ResolverError is a typed failure from the intent resolver.
type ResolverError struct {
	Code    string
	Message string
}

func (e *ResolverError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func NewResolverError(code, msg string) error {
	return &ResolverError{Code: code, Message: msg}
}

// ExecError is a typed failure executing one action.
type ExecError struct {
	Code    string
	Message string
}

func (e *ExecError) Error() string {
	return e.Message
}

func notFound(format string, args ...any) error {
	return &ExecError{Code: ErrCodeEntityNotFound, Message: fmt.Sprintf(format, args...)}
}

func preconditionMissing(format string, args ...any) error {
	return &ExecError{Code: ErrCodePreconditionMissing, Message: fmt.Sprintf(format, args...)}
}

var (
	// ErrSessionNotFound is returned when a session id does not resolve
	// (expired TTL or never created).
	ErrSessionNotFound = errors.New("assistant session not found")

	// ErrTurnInFlight rejects a submission while a previous turn of the
	// same session is still resolving.
	ErrTurnInFlight = errors.New("a turn is already in flight for this session")
)
