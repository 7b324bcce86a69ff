package service

import "errors"

// Errors returned to the transports. Each maps to one response status.
var (
	// ErrUnauthenticated covers a missing, malformed, forged or expired token.
	// The cause is never revealed to the caller.
	ErrUnauthenticated = errors.New("not authenticated")

	// ErrUnauthorized means the caller is authenticated but does not own the
	// record.
	ErrUnauthorized = errors.New("not authorized")

	// ErrNotFound means the record id does not exist.
	ErrNotFound = errors.New("record not found")

	// ErrValidationFailed wraps the validator error that rejected the input.
	ErrValidationFailed = errors.New("validation failed")

	// ErrStorageUnavailable wraps any store failure that is not a domain
	// outcome.
	ErrStorageUnavailable = errors.New("storage unavailable")

	// ErrConflict means the record changed between the ownership check and
	// the write.
	ErrConflict = errors.New("record was modified concurrently")

	ErrEmailAlreadyExists = errors.New("email already exists")
	ErrInvalidCredentials = errors.New("invalid email or password")

	ErrTokenCreationFailed   = errors.New("token creation failed")
	ErrVersionIsNotSpecified = errors.New("app version is not specified")
)
