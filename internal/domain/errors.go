package domain

import (
	"fmt"

	"github.com/pkg/errors"
)

// ErrNotFound is returned when a requested product id is absent from the catalog.
var ErrNotFound = errors.New("product not found")

// ErrUnavailable wraps store or transport failures; callers do not retry.
var ErrUnavailable = errors.New("catalog unavailable")

// ValidationError reports a create request rejected at the service boundary.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed: %s: %s", e.Field, e.Message)
}

func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}

// IsValidation reports whether err is a ValidationError.
func IsValidation(err error) bool {
	var verr *ValidationError
	return errors.As(err, &verr)
}
