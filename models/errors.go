package models

import "fmt"

// Error codes used in internal error handling and status mapping.
const (
	ErrCodeInvalidInput = "INVALID_INPUT"
	ErrCodeFetchFailed  = "FETCH_FAILED"
	ErrCodeNoTitle      = "NO_VIABLE_TITLE"
	ErrCodeRateLimited  = "RATE_LIMITED"
	ErrCodeInternal     = "INTERNAL_ERROR"
)

// ImportError is the internal error type carrying an error code.
// It implements the error interface and supports error wrapping via Unwrap.
type ImportError struct {
	Code    string
	Message string
	Err     error // wrapped original error
}

func (e *ImportError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *ImportError) Unwrap() error {
	return e.Err
}

// NewImportError creates a new ImportError.
func NewImportError(code, message string, err error) *ImportError {
	return &ImportError{Code: code, Message: message, Err: err}
}
