package client

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
)

// ErrNotAuthenticated is returned by calls that need a session when none is set.
var ErrNotAuthenticated = errors.New("gearguard: not signed in")

// FieldError is one entry of a validation failure.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// requestIDHeader carries the server's id for the request, quoted in bug reports.
const requestIDHeader = "X-Request-Id"

// APIError is a non-2xx response from the API.
type APIError struct {
	StatusCode int
	Message    string
	Details    []FieldError
	RequestID  string
}

func (e *APIError) Error() string {
	if len(e.Details) == 0 {
		return fmt.Sprintf("gearguard: %d %s", e.StatusCode, e.Message)
	}
	return fmt.Sprintf("gearguard: %d %s (%d field errors)", e.StatusCode, e.Message, len(e.Details))
}

// IsNotFound reports whether err is a 404 from the API.
func IsNotFound(err error) bool {
	return hasStatus(err, http.StatusNotFound)
}

// IsUnauthorized reports whether err is a 401 from the API or a missing session.
func IsUnauthorized(err error) bool {
	return errors.Is(err, ErrNotAuthenticated) || hasStatus(err, http.StatusUnauthorized)
}

func hasStatus(err error, code int) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.StatusCode == code
}

func newAPIError(status int, requestID string, body []byte) *APIError {
	var payload struct {
		Error   string       `json:"error"`
		Details []FieldError `json:"details"`
	}
	e := &APIError{StatusCode: status, RequestID: requestID}
	if err := json.Unmarshal(body, &payload); err == nil && payload.Error != "" {
		e.Message = payload.Error
		e.Details = payload.Details
		return e
	}
	e.Message = http.StatusText(status)
	if e.Message == "" {
		e.Message = "request failed"
	}
	return e
}
