package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
)

// Result is the backend's generic outcome envelope for state-changing calls.
type Result struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// StatusError is a non-2xx response normalized into an error carrying the
// backend's message when one could be parsed.
type StatusError struct {
	StatusCode int
	Message    string
}

func newStatusError(code int, body []byte) *StatusError {
	var payload struct {
		Message string `json:"message"`
		Detail  string `json:"detail"`
	}
	message := ""
	if err := json.Unmarshal(body, &payload); err == nil {
		message = payload.Message
		if message == "" {
			message = payload.Detail
		}
	}
	if message == "" {
		message = strings.TrimSpace(string(body))
	}
	if message == "" {
		message = http.StatusText(code)
	}
	return &StatusError{StatusCode: code, Message: message}
}

// Error implements error.
func (e *StatusError) Error() string {
	return fmt.Sprintf("HTTP %d: %s", e.StatusCode, e.Message)
}

// IsCSRF reports whether the backend rejected the request over a missing or
// stale CSRF token.
func (e *StatusError) IsCSRF() bool {
	return e.StatusCode == http.StatusForbidden &&
		strings.Contains(strings.ToLower(e.Message), "csrf")
}

// IsCSRF reports whether err is a CSRF-flagged rejection.
func IsCSRF(err error) bool {
	var se *StatusError
	return errors.As(err, &se) && se.IsCSRF()
}
