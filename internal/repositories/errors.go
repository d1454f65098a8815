// Package repositories implements the user and event stores on top of
// docstore. Every invariant that must hold under concurrent writers is
// checked inside a single docstore mutation.
package repositories

import "errors"

// Store-level failures. Handlers translate them via the services package.
var (
	// ErrNotFound is returned when the addressed record does not exist.
	ErrNotFound = errors.New("not found")

	// ErrDuplicateUsername is returned when another user already holds the
	// username under case-insensitive comparison.
	ErrDuplicateUsername = errors.New("username already exists")

	// ErrDuplicateEmail is returned when another user already holds the
	// email under case-insensitive comparison.
	ErrDuplicateEmail = errors.New("email already registered")

	// ErrForbidden is returned when policy disallows the operation, such as
	// deleting an admin.
	ErrForbidden = errors.New("forbidden")

	// ErrInvalidOrExpiredToken is returned when a reset token is absent,
	// does not match or has expired.
	ErrInvalidOrExpiredToken = errors.New("invalid or expired reset token")

	// ErrStockOverflow is returned when adding to a tier would exceed the
	// largest representable stock.
	ErrStockOverflow = errors.New("stock limit exceeded")
)
