package apperr

import (
	"errors"
	"net/http"
)

// Error is a typed, status-aware application error.
type Error struct {
	Code    string `json:"code"`
	Message string `json:"message,omitempty"`
	Status  int    `json:"-"`
	Err     error  `json:"-"`
}

func (e *Error) Error() string {
	if e == nil {
		return ""
	}
	if e.Message != "" {
		return e.Message
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	if e.Code != "" {
		return e.Code
	}
	return "error"
}

func (e *Error) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// Is lets errors.Is match wrapped copies against the sentinel values below by
// code alone.
func (e *Error) Is(target error) bool {
	var t *Error
	if !errors.As(target, &t) {
		return false
	}
	return e != nil && t != nil && e.Code == t.Code
}

func New(code string, status int, message string) *Error {
	return &Error{Code: code, Status: status, Message: message}
}

// Wrap attaches err to a copy of base, optionally overriding the message.
func Wrap(err error, base *Error, message string) *Error {
	if err == nil {
		return nil
	}
	if base == nil {
		base = ErrInternal
	}
	copy := *base
	if message != "" {
		copy.Message = message
	}
	copy.Err = err
	return &copy
}

func As(err error) (*Error, bool) {
	var e *Error
	if errors.As(err, &e) && e != nil {
		return e, true
	}
	return nil, false
}

// Status maps any error to the HTTP status it should surface as.
func Status(err error) int {
	if e, ok := As(err); ok && e.Status != 0 {
		return e.Status
	}
	return http.StatusInternalServerError
}

func Code(err error) string {
	if e, ok := As(err); ok && e.Code != "" {
		return e.Code
	}
	return "internal_error"
}

// Message returns the client-facing message. Internal faults always surface
// the generic message, never the wrapped error's detail.
func Message(err error) string {
	e, ok := As(err)
	if !ok {
		return "internal server error"
	}
	if e.Status >= http.StatusInternalServerError {
		return "internal server error"
	}
	if e.Message != "" {
		return e.Message
	}
	return e.Code
}

var (
	ErrBadRequest = New("bad_request", http.StatusBadRequest, "")
	ErrValidation = New("validation_error", http.StatusBadRequest, "request fields validation error")
	ErrNotFound   = New("not_found", http.StatusNotFound, "")
	ErrInternal   = New("internal_error", http.StatusInternalServerError, "")
	ErrDatabase   = New("database_error", http.StatusInternalServerError, "")
)
