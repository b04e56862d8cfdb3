package domain

import (
	"errors"
	"fmt"
)

// ErrForbidden marks an operation attempted by an authenticated caller who
// does not own the target resource.
var ErrForbidden = errors.New("access forbidden")

// ErrValidation is the sentinel all field validation failures wrap, so the
// API layer can map them to a single status code.
var ErrValidation = errors.New("validation failed")

// Validationf wraps ErrValidation with a field-specific message.
func Validationf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrValidation, fmt.Sprintf(format, args...))
}
