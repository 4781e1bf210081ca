package engine

import (
	"errors"
	"fmt"
)

// ErrNotFound reports that a referenced entity (user, course, quiz,
// enrollment) does not exist. It is non-fatal: callers inform the user and
// carry on.
var ErrNotFound = errors.New("not found")

// ValidationError rejects malformed input before any state change.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

func validationErrorf(format string, args ...interface{}) *ValidationError {
	return &ValidationError{Message: fmt.Sprintf(format, args...)}
}

// IsValidation reports whether err is a ValidationError.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
