package store

import (
	"context"

	"github.com/MKhiriev/go-pass-vault/models"
)

// UserRepository persists user accounts.
type UserRepository interface {
	// CreateUser stores a new user and returns it with UserID and CreatedAt
	// set. A duplicate email yields ErrEmailAlreadyExists.
	CreateUser(ctx context.Context, user models.User) (models.User, error)
	// FindUserByEmail returns ErrUserNotFound when no user has the email.
	FindUserByEmail(ctx context.Context, email string) (models.User, error)
}

// CredentialRepository persists credential records. It never filters by
// owner except in FindAllByOwner; ownership decisions belong to the caller.
type CredentialRepository interface {
	// Insert assigns ID, CreatedAt, UpdatedAt and Version and stores the record.
	Insert(ctx context.Context, credential models.Credential) (models.Credential, error)
	// FindByID returns ErrCredentialNotFound when the id is unknown.
	FindByID(ctx context.Context, id string) (models.Credential, error)
	// FindAllByOwner returns the owner's records, newest first.
	FindAllByOwner(ctx context.Context, ownerID int64) ([]models.Credential, error)
	// Replace overwrites the four mutable fields if the stored version still
	// equals expectedVersion, bumps the version and refreshes UpdatedAt.
	Replace(ctx context.Context, id string, input models.CredentialInput, expectedVersion int64) (models.Credential, error)
	// Delete removes the record if the stored version still equals
	// expectedVersion.
	Delete(ctx context.Context, id string, expectedVersion int64) error
}

// IDGenerator produces unique record identifiers.
type IDGenerator interface {
	Generate() string
}

// ErrorClassificator maps driver-specific errors to an [ErrorClassification].
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}
