package llm

import (
	"errors"
	"fmt"
	"time"
)

// ErrNoJSONFound means the generated text contained no candidate JSON
// object at all (no brace pair to scan).
var ErrNoJSONFound = errors.New("no JSON object found in model output")

// TransientUnavailableError reports that the remote endpoint is warming up
// (HTTP 503 "model loading"). The caller may retry after RetryAfter; this
// package never retries internally, to keep latency bounded.
type TransientUnavailableError struct {
	RetryAfter time.Duration
}

func (e *TransientUnavailableError) Error() string {
	return fmt.Sprintf("model is loading, retry after %s", e.RetryAfter)
}

// StatusError reports a non-success HTTP status from the remote endpoint.
type StatusError struct {
	StatusCode int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("remote endpoint returned status %d", e.StatusCode)
}

// ModelError reports an error field embedded in an otherwise well-formed
// endpoint payload.
type ModelError struct {
	Message string
}

func (e *ModelError) Error() string {
	return "model error: " + e.Message
}

// InvalidJSONError reports that the candidate fragment recovered from the
// model output failed to parse as JSON.
type InvalidJSONError struct {
	Err error
}

func (e *InvalidJSONError) Error() string {
	return "invalid JSON in model output: " + e.Err.Error()
}

func (e *InvalidJSONError) Unwrap() error { return e.Err }
