package domain

import (
	"github.com/allisson/idsmith/internal/errors"
)

var (
	// ErrUnsupportedCountry indicates no registry tier knows the country code.
	ErrUnsupportedCountry = errors.Wrap(errors.ErrNotFound, "unsupported country")

	// ErrUnsupportedKind indicates the identifier kind has no registry.
	ErrUnsupportedKind = errors.Wrap(errors.ErrNotFound, "unsupported identifier kind")

	// ErrMalformedValue indicates a value failed shape or checksum validation where an
	// error, not a boolean, is the natural result (for example when computing check digits).
	ErrMalformedValue = errors.Wrap(errors.ErrInvalidInput, "malformed value")

	// ErrInvalidOption indicates a generation option outside its valid domain.
	ErrInvalidOption = errors.Wrap(errors.ErrInvalidInput, "invalid generation option")

	// ErrSolverExhausted indicates the constrained checksum solver found no solution in
	// any of its redraws. It points at a broken format table.
	ErrSolverExhausted = errors.Wrap(errors.ErrInternal, "checksum solver exhausted its attempts")

	// ErrRedrawExhausted indicates a leaf generator could not produce a value with a
	// valid check digit within its redraw ceiling.
	ErrRedrawExhausted = errors.Wrap(errors.ErrInternal, "generator exhausted its redraw attempts")
)
