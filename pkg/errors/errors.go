package errors

import (
	"fmt"
	"net/http"
)

var (
	// Tokens
	ErrInvalidSigningMethod = fmt.Errorf("invalid token signing method")
	ErrInvalidToken         = fmt.Errorf("invalid token")
	ErrTokenExpired         = fmt.Errorf("token has expired")
	ErrTokenNotYetValid     = fmt.Errorf("token is not valid yet")

	// Authorization
	ErrEmptyAuthHeader    = fmt.Errorf("authorization header is missing")
	ErrInvalidAuthHeader  = fmt.Errorf("malformed authorization header")
	ErrInvalidCredentials = fmt.Errorf("invalid credentials")
	ErrUnauthorized       = fmt.Errorf("unauthorized")

	// Request context
	ErrUserIDNotFoundInContext = fmt.Errorf("user id not found in request context")

	// Common
	ErrNotFound   = fmt.Errorf("record not found")
	ErrConflict   = fmt.Errorf("record already exists")
	ErrBadRequest = fmt.Errorf("bad request")
)

// HttpError carries an HTTP status code and a user-facing message alongside
// the underlying error, which is only ever written to logs.
type HttpError struct {
	Code    int
	Message string
	Err     error
	Details map[string]interface{}
}

func (e *HttpError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *HttpError) Unwrap() error { return e.Err }

func NewHttpError(code int, message string, err error, details map[string]interface{}) *HttpError {
	return &HttpError{Code: code, Message: message, Err: err, Details: details}
}

// InvalidInputError is a validation failure surfaced to the caller with a
// descriptive message.
type InvalidInputError struct {
	Message string
}

func (e *InvalidInputError) Error() string { return e.Message }

func NewInvalidInputError(format string, args ...interface{}) error {
	return &InvalidInputError{Message: fmt.Sprintf(format, args...)}
}

// StatusCode maps sentinel errors to HTTP status codes. Anything unknown is
// treated as an opaque internal failure.
func StatusCode(err error) int {
	switch err {
	case ErrNotFound:
		return http.StatusNotFound
	case ErrConflict:
		return http.StatusConflict
	case ErrBadRequest:
		return http.StatusBadRequest
	case ErrEmptyAuthHeader, ErrInvalidAuthHeader, ErrInvalidToken, ErrTokenExpired,
		ErrTokenNotYetValid, ErrInvalidSigningMethod, ErrInvalidCredentials, ErrUnauthorized:
		return http.StatusUnauthorized
	default:
		return http.StatusInternalServerError
	}
}
