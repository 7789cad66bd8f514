package domain

import (
	"errors"
	"fmt"
)

var ErrEmailTaken = errors.New("email already registered")
var ErrInvalidCredentials = errors.New("invalid email or password")
var ErrUnauthenticated = errors.New("not authenticated")
var ErrInvalidSession = errors.New("invalid session token")
var ErrUserNotFound = errors.New("user not found")
var ErrTodoNotFound = errors.New("todo not found")
var ErrForbidden = errors.New("access forbidden")
var ErrValidation = errors.New("validation failed")
var ErrStorageUnavailable = errors.New("storage unavailable")

// Validationf builds a field-level validation error that still matches
// ErrValidation under errors.Is.
func Validationf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrValidation, fmt.Sprintf(format, args...))
}
