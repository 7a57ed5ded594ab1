// Package errors defines the sentinel errors shared by every identifier domain.
// Use cases return these (usually wrapped) and the HTTP layer maps them to status codes.
package errors

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound indicates the requested country, kind or resource is not known.
	ErrNotFound = errors.New("not found")

	// ErrInvalidInput indicates the caller supplied a value or option outside its domain.
	ErrInvalidInput = errors.New("invalid input")

	// ErrInternal indicates a broken invariant inside the generators (for example an
	// exhausted solver). It is never caused by caller input.
	ErrInternal = errors.New("internal error")

	// ErrTooManyRequests indicates a client exceeded its request budget.
	ErrTooManyRequests = errors.New("too many requests")
)

// New creates a new error with the given message.
func New(message string) error {
	return errors.New(message)
}

// Wrap adds context to err while keeping it matchable with Is.
// A nil err stays nil.
func Wrap(err error, message string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", message, err)
}

// Wrapf is Wrap with a format string.
func Wrapf(err error, format string, args ...any) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", fmt.Sprintf(format, args...), err)
}

// Is reports whether any error in err's tree matches target.
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As finds the first error in err's tree that matches target.
func As(err error, target any) bool {
	return errors.As(err, target)
}

// Join returns an error that wraps the given errors, discarding nils.
func Join(errs ...error) error {
	return errors.Join(errs...)
}
