// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-pass-vault/internal/logger"
	"github.com/MKhiriev/go-pass-vault/internal/store"
	"github.com/MKhiriev/go-pass-vault/internal/utils"
	"github.com/MKhiriev/go-pass-vault/models"
)

// credentialService enforces record ownership on top of a
// [store.CredentialRepository].
//
// Update and Delete load the record first. A missing record is reported
// before an ownership mismatch. The version read during that check is
// handed to the store, so a concurrent write between the check and the
// write surfaces as ErrConflict instead of being applied blindly.
type credentialService struct {
	credentials store.CredentialRepository

	logger *logger.Logger
}

// NewCredentialService constructs a CredentialService backed by the given
// repository.
//
// The returned service keeps no per-call state and is safe for concurrent use.
func NewCredentialService(credentials store.CredentialRepository, logger *logger.Logger) CredentialService {
	return &credentialService{
		credentials: credentials,
		logger:      logger,
	}
}

// List returns every record owned by the caller, newest first.
//
// The caller is taken from ctx. Returns an empty, non-nil slice when the
// caller owns nothing, or:
//   - ErrUnauthenticated if ctx carries no user id.
//   - ErrStorageUnavailable wrapping the repository error otherwise.
func (s *credentialService) List(ctx context.Context) ([]models.Credential, error) {
	ownerID, err := callerID(ctx)
	if err != nil {
		return nil, err
	}

	credentials, err := s.credentials.FindAllByOwner(ctx, ownerID)
	if err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "credentialService.List").
			Int64("owner_id", ownerID).
			Msg("failed to list credentials")
		return nil, mapStoreError(err)
	}

	if credentials == nil {
		credentials = []models.Credential{}
	}
	return credentials, nil
}

// Create stores a new record owned by the caller and returns it with the
// store-assigned ID and timestamps.
//
// OwnerID is always taken from ctx, never from input. Input is validated by
// the validation layer wrapped around this service. Returns:
//   - ErrUnauthenticated if ctx carries no user id.
//   - ErrStorageUnavailable wrapping the repository error otherwise.
func (s *credentialService) Create(ctx context.Context, input models.CredentialInput) (models.Credential, error) {
	ownerID, err := callerID(ctx)
	if err != nil {
		return models.Credential{}, err
	}

	created, err := s.credentials.Insert(ctx, models.Credential{
		OwnerID:  ownerID,
		Website:  input.Website,
		Username: input.Username,
		Password: input.Password,
		Notes:    input.Notes,
	})
	if err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "credentialService.Create").
			Int64("owner_id", ownerID).
			Msg("failed to create credential")
		return models.Credential{}, mapStoreError(err)
	}

	return created, nil
}

// Update replaces all four mutable fields of record id and returns the
// stored result. It does not validate input: empty fields overwrite stored
// values.
//
// Returns ErrNotFound, ErrUnauthorized or ErrConflict as described on
// [credentialService], ErrUnauthenticated if ctx carries no user id.
func (s *credentialService) Update(ctx context.Context, id string, input models.CredentialInput) (models.Credential, error) {
	current, err := s.loadOwned(ctx, "credentialService.Update", id)
	if err != nil {
		return models.Credential{}, err
	}

	updated, err := s.credentials.Replace(ctx, id, input, current.Version)
	if err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "credentialService.Update").
			Str("id", id).
			Msg("failed to replace credential")
		return models.Credential{}, mapStoreError(err)
	}

	return updated, nil
}

// Delete removes record id if it belongs to the caller.
//
// Returns:
//   - ErrNotFound if the record does not exist.
//   - ErrUnauthorized if it belongs to another user.
//   - ErrConflict if it changed between the ownership check and the delete.
//   - ErrUnauthenticated if ctx carries no user id.
func (s *credentialService) Delete(ctx context.Context, id string) error {
	current, err := s.loadOwned(ctx, "credentialService.Delete", id)
	if err != nil {
		return err
	}

	if err = s.credentials.Delete(ctx, id, current.Version); err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "credentialService.Delete").
			Str("id", id).
			Msg("failed to delete credential")
		return mapStoreError(err)
	}

	return nil
}

// loadOwned returns the record if it exists and belongs to the caller.
func (s *credentialService) loadOwned(ctx context.Context, fn, id string) (models.Credential, error) {
	log := logger.FromContext(ctx)

	userID, err := callerID(ctx)
	if err != nil {
		return models.Credential{}, err
	}

	current, err := s.credentials.FindByID(ctx, id)
	if err != nil {
		if !errors.Is(err, store.ErrCredentialNotFound) {
			log.Err(err).Str("func", fn).Str("id", id).Msg("failed to load credential")
		}
		return models.Credential{}, mapStoreError(err)
	}

	if current.OwnerID != userID {
		log.Warn().
			Str("func", fn).
			Str("id", id).
			Int64("caller_id", userID).
			Msg("access to a record of another user")
		return models.Credential{}, ErrUnauthorized
	}

	return current, nil
}

func callerID(ctx context.Context) (int64, error) {
	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		return 0, ErrUnauthenticated
	}
	return userID, nil
}

// mapStoreError translates repository errors into service errors.
func mapStoreError(err error) error {
	switch {
	case errors.Is(err, store.ErrCredentialNotFound):
		return ErrNotFound
	case errors.Is(err, store.ErrVersionConflict):
		return ErrConflict
	default:
		return fmt.Errorf("%w: %w", ErrStorageUnavailable, err)
	}
}
