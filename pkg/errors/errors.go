package errors

import (
	"errors"
	"fmt"
)

var (
	// Authentication. The email/password distinction is internal only; the
	// API layer collapses both into a uniform 401.
	ErrInvalidEmail      = errors.New("no user registered with this email")
	ErrIncorrectPassword = errors.New("incorrect password")
	ErrInvalidToken      = errors.New("invalid or expired token")
	ErrUnauthorized      = errors.New("unauthorized access")

	ErrUserNotFound = errors.New("user not found")
	ErrEmailTaken   = errors.New("email already registered")

	// Absent and not-owned resolve to the same error so ownership is never
	// leaked through differentiated responses.
	ErrAccountNotFound = errors.New("account not found")
	ErrJobNotFound     = errors.New("job not found")

	ErrInvalidInput = errors.New("invalid input data")
	ErrWeakPassword = errors.New("password must be at least 6 characters")

	ErrResetTokenInvalid = errors.New("invalid or expired password reset token")
)

type AppError struct {
	Code    string
	Message string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}

	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

func NewAppError(code, message string, err error) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

// IsValidation reports whether err originated from input validation rather
// than persistence or auth.
func IsValidation(err error) bool {
	var appErr *AppError
	return errors.As(err, &appErr)
}
