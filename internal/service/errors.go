package service

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidNumber marks a field that is missing, malformed or not finite
	ErrInvalidNumber = errors.New("invalid number")
	// ErrNonPositiveRate marks an interest rate of zero or less
	ErrNonPositiveRate = errors.New("interest rate must be greater than 0")
	// ErrOutOfRange marks a finite value outside the field's domain
	ErrOutOfRange = errors.New("value out of range")
	// ErrInvalidEmail marks a report request without a usable address
	ErrInvalidEmail = errors.New("invalid email")
	// ErrMailDisabled is returned when no SMTP sender is configured
	ErrMailDisabled = errors.New("email delivery is not configured")
)

// InputError is a rejected request field. The solver never runs for a
// request that produced one.
type InputError struct {
	Field string
	Err   error
}

func (e *InputError) Error() string {
	return fmt.Sprintf("%s: %v", e.Field, e.Err)
}

func (e *InputError) Unwrap() error {
	return e.Err
}
