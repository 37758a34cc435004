package core

import (
	"fmt"
	"net/http"

	"github.com/pkg/errors"
)

// ErrNotFound is returned when a requested record does not exist on the backend.
var ErrNotFound = errors.New("not found")

// FieldError is used to indicate an error with a specific struct field.
type FieldError struct {
	Field string
	Error string
}

type ValidationError struct {
	Err    error
	Fields []FieldError
}

func NewValidationError(err error, flds ...FieldError) error {
	return &ValidationError{err, flds}
}

func (err ValidationError) Error() string {
	if err.Err == nil {
		if len(err.Fields) > 0 {
			return fmt.Sprintf("%s: %s", err.Fields[0].Field, err.Fields[0].Error)
		}
		return ""
	}
	return err.Err.Error()
}

// Map returns the field errors keyed by field name. The first error reported for a field wins.
func (err ValidationError) Map() map[string]string {
	m := make(map[string]string, len(err.Fields))
	for _, fe := range err.Fields {
		if _, ok := m[fe.Field]; !ok {
			m[fe.Field] = fe.Error
		}
	}
	return m
}

// APIError is a non-2xx answer from the REST backend.
type APIError struct {
	StatusCode int
	Message    string
}

func (err *APIError) Error() string {
	if err.Message != "" {
		return err.Message
	}
	return http.StatusText(err.StatusCode)
}

// IsConflict reports whether err is a backend 409, e.g. a scheduling conflict.
func IsConflict(err error) bool {
	apiErr, ok := errors.Cause(err).(*APIError)
	return ok && apiErr.StatusCode == http.StatusConflict
}

// ErrorMessage returns the text shown to the user for err.
// Backend rejections carrying a message are shown as-is; anything else gets the generic fallback.
func ErrorMessage(err error, fallback string) string {
	switch origErr := errors.Cause(err).(type) {
	case *APIError:
		if origErr.Message != "" {
			return origErr.Message
		}
	case *ValidationError:
		if msg := origErr.Error(); msg != "" {
			return msg
		}
	}
	return fallback
}

type shutdown struct {
	message string
}

func NewShutdownError(msg string) error {
	return &shutdown{message: msg}
}

func (s shutdown) Error() string {
	return s.message
}

func IsShutdown(err error) bool {
	_, ok := errors.Cause(err).(*shutdown)
	return ok
}
