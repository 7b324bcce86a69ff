package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrEmptyWebsite  = errors.New("website is required")
	ErrEmptyUsername = errors.New("username is required")
	ErrEmptyPassword = errors.New("password is required")
	ErrEmptyName     = errors.New("name is required")
	ErrEmptyEmail    = errors.New("email is required")
	ErrInvalidEmail  = errors.New("email is not a valid address")
)
