package service

import (
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// APIError is a non-2xx response from the scheduler backend.
type APIError struct {
	Op         string
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("Failed to %s (%d): %s", e.Op, e.StatusCode, e.Message)
}

func NewHTTPClient(timeout time.Duration) *http.Client {
	return &http.Client{Timeout: timeout}
}

func isSuccess(resp *http.Response) bool {
	return resp.StatusCode >= 200 && resp.StatusCode < 300
}

// newAPIError reads the body as best-effort message text, falling back to
// the status text when the body is empty or unreadable.
func newAPIError(op string, resp *http.Response) *APIError {
	msg := http.StatusText(resp.StatusCode)
	body, err := io.ReadAll(resp.Body)
	if err == nil && len(strings.TrimSpace(string(body))) > 0 {
		msg = strings.TrimSpace(string(body))
	}
	return &APIError{Op: op, StatusCode: resp.StatusCode, Message: msg}
}

// isoTimestamp matches the millisecond UTC layout browsers produce.
func isoTimestamp(t time.Time) string {
	return t.UTC().Format("2006-01-02T15:04:05.000Z")
}
