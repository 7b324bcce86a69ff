// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package service holds the business logic of the vault: account signup and
// login, bearer token issuing and verification, and the credential lifecycle
// with its ownership checks.
//
// Services read the authenticated user from the context (see
// utils.WithUserID) and return the sentinel errors declared in errors.go;
// transports map those to their own status codes.
package service

import (
	"context"

	"github.com/MKhiriev/go-pass-vault/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// AuthService manages accounts and bearer tokens.
type AuthService interface {
	RegisterUser(ctx context.Context, name, email, password string) (models.User, error)
	Login(ctx context.Context, email, password string) (models.User, error)
	CreateToken(ctx context.Context, user models.User) (models.Token, error)
	// ParseToken returns ErrUnauthenticated for every kind of invalid token.
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
}

// CredentialService is the only component that decides who may read or
// change a credential record. Every method requires a user id in ctx.
type CredentialService interface {
	// List returns the caller's records, newest first.
	List(ctx context.Context) ([]models.Credential, error)
	// Create stores a record owned by the caller and returns it.
	Create(ctx context.Context, input models.CredentialInput) (models.Credential, error)
	// Update replaces all four mutable fields of a record the caller owns.
	Update(ctx context.Context, id string, input models.CredentialInput) (models.Credential, error)
	// Delete removes a record the caller owns.
	Delete(ctx context.Context, id string) error
}

// CredentialServiceWrapper defines middleware composition for CredentialService.
// Implementations wrap an existing CredentialService to add behavior such as
// validating.
type CredentialServiceWrapper interface {
	Wrap(CredentialService) CredentialService
}

type AppInfoService interface {
	GetAppVersion(ctx context.Context) models.VersionResponse
}
