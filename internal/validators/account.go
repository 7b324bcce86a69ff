// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"net/mail"
	"strings"

	"github.com/MKhiriev/go-pass-vault/models"
)

const (
	FieldName  = "name"
	FieldEmail = "email"
)

// AccountValidator implements [Validator] for signup and login requests.
type AccountValidator struct{}

func NewAccountValidator() Validator {
	return &AccountValidator{}
}

func (v *AccountValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.SignupRequest:
		return v.validateSignup(value, fields...)
	case *models.SignupRequest:
		if value == nil {
			return ErrUnsupportedType
		}
		return v.validateSignup(*value, fields...)
	case models.LoginRequest:
		return v.validateLogin(value, fields...)
	case *models.LoginRequest:
		if value == nil {
			return ErrUnsupportedType
		}
		return v.validateLogin(*value, fields...)
	default:
		return ErrUnsupportedType
	}
}

func (v *AccountValidator) validateSignup(request models.SignupRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldName, FieldEmail, FieldPassword}
	}

	for _, f := range fields {
		switch f {
		case FieldName:
			if strings.TrimSpace(request.Name) == "" {
				return ErrEmptyName
			}
		case FieldEmail:
			if err := validateEmail(request.Email); err != nil {
				return err
			}
		case FieldPassword:
			if request.Password == "" {
				return ErrEmptyPassword
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *AccountValidator) validateLogin(request models.LoginRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldEmail, FieldPassword}
	}

	for _, f := range fields {
		switch f {
		case FieldEmail:
			if strings.TrimSpace(request.Email) == "" {
				return ErrEmptyEmail
			}
		case FieldPassword:
			if request.Password == "" {
				return ErrEmptyPassword
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

// validateEmail accepts a bare address only; "Name <a@x.com>" is rejected.
func validateEmail(email string) error {
	email = strings.TrimSpace(email)
	if email == "" {
		return ErrEmptyEmail
	}

	addr, err := mail.ParseAddress(email)
	if err != nil || addr.Address != email {
		return ErrInvalidEmail
	}
	return nil
}
