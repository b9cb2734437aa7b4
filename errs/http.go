package errs

import (
	"errors"
	"fmt"
	"net/http"

	jsoniter "github.com/json-iterator/go"
)

// APIError is a non-2xx answer from the DRACOON API, carrying the parsed
// error body when the server sent one.
type APIError struct {
	StatusCode int
	URL        string

	// error body fields, zero when the body was not parseable
	Code      int
	Message   string
	DebugInfo string
	ErrorCode int
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("api error: %d %s (%s)", e.StatusCode, e.Message, e.URL)
	}
	return fmt.Sprintf("api error: %d (%s)", e.StatusCode, e.URL)
}

// Is maps the status code onto the matching sentinel so callers can use
// errors.Is(err, errs.NotFound) without touching the struct.
func (e *APIError) Is(target error) bool {
	if target == HTTPError {
		return true
	}
	switch e.StatusCode {
	case http.StatusBadRequest:
		return target == BadRequest
	case http.StatusUnauthorized:
		return target == Unauthorized
	case http.StatusPaymentRequired:
		return target == PaymentRequired
	case http.StatusForbidden:
		return target == Forbidden
	case http.StatusNotFound:
		return target == NotFound
	case http.StatusConflict:
		return target == Conflict
	case http.StatusPreconditionFailed:
		return target == PreconditionFailed
	case http.StatusTooManyRequests:
		return target == TooManyRequests
	}
	if e.StatusCode >= http.StatusInternalServerError {
		return target == ServerError
	}
	return false
}

// FromResponse builds an APIError from a response body. Error bodies are
// probed leniently: the API normally answers with
// {"code":..,"message":..,"debugInfo":..,"errorCode":..} but proxies in
// between may return plain text.
func FromResponse(statusCode int, url string, body []byte) *APIError {
	e := &APIError{StatusCode: statusCode, URL: url}
	if len(body) == 0 {
		return e
	}
	e.Code = jsoniter.Get(body, "code").ToInt()
	e.Message = jsoniter.Get(body, "message").ToString()
	e.DebugInfo = jsoniter.Get(body, "debugInfo").ToString()
	e.ErrorCode = jsoniter.Get(body, "errorCode").ToInt()
	if e.Message == "" {
		// OAuth2 endpoints answer with error/error_description instead
		e.Message = jsoniter.Get(body, "error_description").ToString()
	}
	return e
}

// ConnectError is a transport level failure: the request never produced an
// HTTP status.
type ConnectError struct {
	URL string
	Err error
}

func (e *ConnectError) Error() string {
	return fmt.Sprintf("connection to DRACOON failed: %s (%v)", e.URL, e.Err)
}

func (e *ConnectError) Unwrap() error {
	return e.Err
}

// StatusCode returns the HTTP status carried by err, or 0 when err is not an
// APIError.
func StatusCode(err error) int {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.StatusCode
	}
	return 0
}
