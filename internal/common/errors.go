// Package common provides shared utilities and types used across the application.
package common

import (
	"errors"
	"fmt"
)

// Common application errors.
var (
	// Validation errors. These abort the triggering action with no
	// partial mutation and are surfaced to the user.
	ErrEmptyDescription = errors.New("description cannot be empty")
	ErrInvalidAmount    = errors.New("amount must be a finite, non-zero number")
	ErrEmptyProfileName = errors.New("profile name cannot be empty")
	ErrNegativeGoal     = errors.New("monthly goal cannot be negative")
	ErrInvalidType      = errors.New("transaction type must be income or expense")
	ErrNoActiveProfile  = errors.New("no active profile")

	// Not-found errors.
	ErrTransactionNotFound = errors.New("transaction not found")
	ErrProfileNotFound     = errors.New("profile not found")

	// Storage errors. Corrupt values are recovered with defaults and
	// never reach the caller; these cover the unrecoverable cases.
	ErrStorageUnavailable = errors.New("storage unavailable")
)

// UserError represents an error that should be shown to the user.
type UserError struct {
	Err         error
	UserMessage string
}

func (e *UserError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.UserMessage, e.Err)
	}
	return e.UserMessage
}

func (e *UserError) Unwrap() error {
	return e.Err
}

// NewUserError creates a new user-friendly error.
func NewUserError(userMessage string, err error) error {
	return &UserError{
		UserMessage: userMessage,
		Err:         err,
	}
}

// IsValidation reports whether err is one of the user-facing validation
// failures, as opposed to an internal fault.
func IsValidation(err error) bool {
	return errors.Is(err, ErrEmptyDescription) ||
		errors.Is(err, ErrInvalidAmount) ||
		errors.Is(err, ErrEmptyProfileName) ||
		errors.Is(err, ErrNegativeGoal) ||
		errors.Is(err, ErrInvalidType) ||
		errors.Is(err, ErrNoActiveProfile)
}
