package service

import (
	"context"

	"github.com/MKhiriev/go-pass-vault/internal/utils"
	"github.com/MKhiriev/go-pass-vault/models"
)

// ─────────────────────────────────────────────
// Mock: store.UserRepository
// ─────────────────────────────────────────────

type mockUserRepository struct {
	createUserFn      func(ctx context.Context, user models.User) (models.User, error)
	findUserByEmailFn func(ctx context.Context, email string) (models.User, error)
}

func (m *mockUserRepository) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	if m.createUserFn != nil {
		return m.createUserFn(ctx, user)
	}
	user.UserID = 1
	return user, nil
}

func (m *mockUserRepository) FindUserByEmail(ctx context.Context, email string) (models.User, error) {
	if m.findUserByEmailFn != nil {
		return m.findUserByEmailFn(ctx, email)
	}
	return models.User{}, nil
}

// ─────────────────────────────────────────────
// Mock: store.CredentialRepository
// ─────────────────────────────────────────────

type mockCredentialRepository struct {
	insertFn         func(ctx context.Context, c models.Credential) (models.Credential, error)
	findByIDFn       func(ctx context.Context, id string) (models.Credential, error)
	findAllByOwnerFn func(ctx context.Context, ownerID int64) ([]models.Credential, error)
	replaceFn        func(ctx context.Context, id string, input models.CredentialInput, expectedVersion int64) (models.Credential, error)
	deleteFn         func(ctx context.Context, id string, expectedVersion int64) error
}

func (m *mockCredentialRepository) Insert(ctx context.Context, c models.Credential) (models.Credential, error) {
	if m.insertFn != nil {
		return m.insertFn(ctx, c)
	}
	return c, nil
}

func (m *mockCredentialRepository) FindByID(ctx context.Context, id string) (models.Credential, error) {
	if m.findByIDFn != nil {
		return m.findByIDFn(ctx, id)
	}
	return models.Credential{}, nil
}

func (m *mockCredentialRepository) FindAllByOwner(ctx context.Context, ownerID int64) ([]models.Credential, error) {
	if m.findAllByOwnerFn != nil {
		return m.findAllByOwnerFn(ctx, ownerID)
	}
	return nil, nil
}

func (m *mockCredentialRepository) Replace(ctx context.Context, id string, input models.CredentialInput, expectedVersion int64) (models.Credential, error) {
	if m.replaceFn != nil {
		return m.replaceFn(ctx, id, input, expectedVersion)
	}
	return models.Credential{}, nil
}

func (m *mockCredentialRepository) Delete(ctx context.Context, id string, expectedVersion int64) error {
	if m.deleteFn != nil {
		return m.deleteFn(ctx, id, expectedVersion)
	}
	return nil
}

// ─────────────────────────────────────────────
// Helpers
// ─────────────────────────────────────────────

func ctxWithUser(userID int64) context.Context {
	return utils.WithUserID(context.Background(), userID)
}
