package adapter

import "errors"

// Sentinel errors returned by [VaultClient] for non-2xx responses. They wrap
// the server's message, so callers test them with [errors.Is].
var (
	ErrBadRequest   = errors.New("bad request")
	ErrUnauthorized = errors.New("client unauthorized")
	ErrNotFound     = errors.New("not found")
	ErrConflict     = errors.New("conflict")
	ErrServerError  = errors.New("server error")

	ErrInvalidAddress = errors.New("invalid server address")
)
