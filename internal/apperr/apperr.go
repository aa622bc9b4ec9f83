package apperr

import (
	"errors"
	"fmt"
)

// AppError represents a structured application error
type AppError struct {
	Code    string
	Message string
	// Fields lists the offending input keys in schema order, if any.
	Fields []string
	Cause  error
}

func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Cause
}

// New creates a new AppError
func New(code, message string) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
	}
}

// Wrap wraps an error with additional context
func Wrap(err error, message string) error {
	if err == nil {
		return nil
	}
	var appErr *AppError
	if errors.As(err, &appErr) {
		return &AppError{
			Code:    appErr.Code,
			Message: message,
			Fields:  appErr.Fields,
			Cause:   err,
		}
	}
	return &AppError{
		Code:    CodeInternalError,
		Message: message,
		Cause:   err,
	}
}

// Wrapf wraps an error with formatted additional context
func Wrapf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return Wrap(err, fmt.Sprintf(format, args...))
}

// WithCode replaces the code of an existing error
func WithCode(code string, err error) error {
	if err == nil {
		return nil
	}
	var appErr *AppError
	if errors.As(err, &appErr) {
		return &AppError{
			Code:    code,
			Message: appErr.Message,
			Fields:  appErr.Fields,
			Cause:   appErr.Cause,
		}
	}
	return &AppError{
		Code:    code,
		Message: err.Error(),
		Cause:   err,
	}
}

// As returns the outermost AppError in the chain.
func As(err error) (*AppError, bool) {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr, true
	}
	return nil, false
}

// GetCode returns the error code if it's an AppError, otherwise returns "UNKNOWN"
func GetCode(err error) string {
	if appErr, ok := As(err); ok {
		return appErr.Code
	}
	return "UNKNOWN"
}

// Is reports whether err carries the given code.
func Is(err error, code string) bool {
	return GetCode(err) == code
}

// Predefined error codes
const (
	CodeInvalidInput  = "INVALID_INPUT"
	CodeParseError    = "PARSE_ERROR"
	CodeConfigInvalid = "CONFIG_INVALID"
	CodeModelLoad     = "MODEL_LOAD_ERROR"
	CodeDatabaseError = "DATABASE_ERROR"
	CodeNotFound      = "NOT_FOUND"
	CodeInternalError = "INTERNAL_ERROR"
)

// User-facing warnings for rejected form submissions.
const (
	MsgInvalidInput = "Please enter valid input values."
	MsgParseError   = "Please ensure all fields are filled in correctly with numerical values."
)

func InvalidInput(fields ...string) *AppError {
	return &AppError{Code: CodeInvalidInput, Message: MsgInvalidInput, Fields: fields}
}

func ParseError(fields ...string) *AppError {
	return &AppError{Code: CodeParseError, Message: MsgParseError, Fields: fields}
}

func ConfigInvalid(message string) *AppError {
	return New(CodeConfigInvalid, message)
}

func ModelLoad(message string) *AppError {
	return New(CodeModelLoad, message)
}

func DatabaseError(message string, cause error) *AppError {
	return &AppError{Code: CodeDatabaseError, Message: message, Cause: cause}
}

func NotFound(resource string) *AppError {
	return New(CodeNotFound, fmt.Sprintf("%s not found", resource))
}

func InternalError(message string) *AppError {
	return New(CodeInternalError, message)
}
