package api

import (
	"errors"
	"fmt"
	"net/http"
)

// ErrorBody is the parsed body of a failed API response. The backend wraps
// errors as {"status": false, "message": "...", "data": {field: reason}};
// parsing is best-effort, so every field may be zero.
type ErrorBody struct {
	Status  bool              `json:"status"`
	Message string            `json:"message"`
	Errors  map[string]string `json:"data,omitempty"`
}

// RequestError is returned when the server answered with a non-2xx status.
type RequestError struct {
	StatusCode int
	Body       ErrorBody
	Raw        []byte
}

func (e *RequestError) Error() string {
	if e.Body.Message != "" {
		return fmt.Sprintf("api: request failed with status %d: %s", e.StatusCode, e.Body.Message)
	}
	return fmt.Sprintf("api: request failed with status %d", e.StatusCode)
}

// NetworkError is returned when no response was obtained at all.
type NetworkError struct {
	Op  string
	Err error
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("api: %s: %v", e.Op, e.Err)
}

func (e *NetworkError) Unwrap() error { return e.Err }

// IsUnauthorized reports whether err is a request failure with status 401.
func IsUnauthorized(err error) bool {
	var reqErr *RequestError
	return errors.As(err, &reqErr) && reqErr.StatusCode == http.StatusUnauthorized
}

// IsRequestError extracts the *RequestError from err, if any.
func IsRequestError(err error) (*RequestError, bool) {
	var reqErr *RequestError
	if errors.As(err, &reqErr) {
		return reqErr, true
	}
	return nil, false
}
