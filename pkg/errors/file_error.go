package errors

import "fmt"

// Error codes surfaced to API clients. Each maps to a distinct HTTP status
// in HandleError.
const (
	CodeInvalidInput     = "invalid_input"
	CodeNotFound         = "not_found"
	CodeAlreadyExists    = "already_exists"
	CodePermissionDenied = "permission_denied"
	CodeIOFailure        = "io_failure"
)

type FileError struct {
	Code    string
	Message string
	Err     error
}

func (e *FileError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s (%v)", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *FileError) Unwrap() error { return e.Err }

func ErrInvalidInput(message string) *FileError {
	return &FileError{Code: CodeInvalidInput, Message: message}
}

func ErrNotFound(message string) *FileError {
	return &FileError{Code: CodeNotFound, Message: message}
}

func ErrAlreadyExists(message string) *FileError {
	return &FileError{Code: CodeAlreadyExists, Message: message}
}

func ErrPermissionDenied(message string) *FileError {
	return &FileError{Code: CodePermissionDenied, Message: message}
}

func ErrIOFailure(message string, err error) *FileError {
	return &FileError{Code: CodeIOFailure, Message: message, Err: err}
}
