package validators

import (
	"context"

	"github.com/MKhiriev/go-pass-vault/models"
)

// Field name constants used to restrict validation to a subset of fields.
const (
	// FieldWebsite targets the service label of a credential.
	FieldWebsite = "website"

	// FieldUsername targets the login identifier of a credential.
	FieldUsername = "username"

	// FieldPassword targets the secret value of a credential, or the account
	// password of a signup or login request.
	FieldPassword = "password"
)

// CredentialValidator implements [Validator] for [models.CredentialInput].
//
// A field is missing only when it is the empty string. Whitespace is part of
// the stored value and is never trimmed.
type CredentialValidator struct{}

// NewCredentialValidator constructs a new CredentialValidator
// and returns it as the Validator interface.
func NewCredentialValidator() Validator {
	return &CredentialValidator{}
}

// Validate checks website, username and password of a credential input.
// Notes are optional and never checked.
func (v *CredentialValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.CredentialInput:
		return v.validateInput(value, fields...)
	case *models.CredentialInput:
		if value == nil {
			return ErrUnsupportedType
		}
		return v.validateInput(*value, fields...)
	default:
		return ErrUnsupportedType
	}
}

func (v *CredentialValidator) validateInput(input models.CredentialInput, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldWebsite, FieldUsername, FieldPassword}
	}

	for _, f := range fields {
		switch f {
		case FieldWebsite:
			if input.Website == "" {
				return ErrEmptyWebsite
			}
		case FieldUsername:
			if input.Username == "" {
				return ErrEmptyUsername
			}
		case FieldPassword:
			if input.Password == "" {
				return ErrEmptyPassword
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}
