package shortlink

import "errors"

var (
	// ErrNotFound indicates no short link exists for the given id or code.
	ErrNotFound = errors.New("short link not found")

	// ErrCodeTaken indicates the short code is already in use.
	ErrCodeTaken = errors.New("short code already taken")

	// ErrInvalidInput indicates the request failed validation. Wrapped errors
	// carry the specific rule that was violated.
	ErrInvalidInput = errors.New("invalid input")
)
