package domain

import "errors"

var (
	// ErrNotFound indicates the requested entity was not found.
	ErrNotFound = errors.New("not found")
	// ErrInvalidCredentials is returned when email/password do not match.
	ErrInvalidCredentials = errors.New("invalid email or password")
	// ErrAccountExists is returned when registering an already-used email.
	ErrAccountExists = errors.New("an account with this email already exists")
	// ErrNotAuthenticated is returned when an operation requires a session user.
	ErrNotAuthenticated = errors.New("not authenticated")
	// ErrCannotCheckout is returned when checkout preconditions are not met.
	ErrCannotCheckout = errors.New("cannot checkout")
	// ErrInvalidInput is returned when caller-supplied fields fail validation.
	ErrInvalidInput = errors.New("invalid input")
)
