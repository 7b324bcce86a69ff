// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-pass-vault/internal/logger"
	"github.com/MKhiriev/go-pass-vault/models"
)

// credentialRepository is the SQL-backed implementation of
// [CredentialRepository] over the "credentials" table.
//
// Replace and Delete run inside a transaction: the row is re-read, its
// version compared with the caller's, and the write is guarded by
// "WHERE version = ?". A zero row count after that means a concurrent writer
// won and is reported as [ErrVersionConflict].
type credentialRepository struct {
	db  *DB
	ids IDGenerator
	now func() time.Time
}

// NewCredentialRepository constructs a [CredentialRepository] backed by db.
func NewCredentialRepository(db *DB, ids IDGenerator) CredentialRepository {
	db.logger.Debug().Msg("creating credential repository")
	return &credentialRepository{
		db:  db,
		ids: ids,
		now: time.Now,
	}
}

// Insert stores a new record with a fresh id and version 1.
func (r *credentialRepository) Insert(ctx context.Context, credential models.Credential) (models.Credential, error) {
	log := logger.FromContext(ctx)

	now := r.now().UTC().Truncate(time.Microsecond)
	credential.ID = r.ids.Generate()
	credential.CreatedAt = now
	credential.UpdatedAt = now
	credential.Version = 1

	query, args, err := buildInsertCredentialQuery(r.db.builder, credential)
	if err != nil {
		log.Err(err).Str("func", "credentialRepository.Insert").Msg("failed to build query")
		return models.Credential{}, err
	}

	if _, err = r.db.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).
			Str("func", "credentialRepository.Insert").
			Int64("owner_id", credential.OwnerID).
			Stringer("classification", r.db.classify(err)).
			Msg("failed to insert credential")
		return models.Credential{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	log.Debug().
		Str("func", "credentialRepository.Insert").
		Str("id", credential.ID).
		Int64("owner_id", credential.OwnerID).
		Msg("credential inserted")

	return credential, nil
}

// FindByID returns the record with the given id regardless of its owner.
func (r *credentialRepository) FindByID(ctx context.Context, id string) (models.Credential, error) {
	return r.findByID(ctx, r.db, id)
}

func (r *credentialRepository) findByID(ctx context.Context, q queryRower, id string) (models.Credential, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectCredentialByIDQuery(r.db.builder, id)
	if err != nil {
		log.Err(err).Str("func", "credentialRepository.findByID").Msg("failed to build query")
		return models.Credential{}, err
	}

	credential, err := scanCredential(q.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return models.Credential{}, ErrCredentialNotFound
	}
	if err != nil {
		log.Err(err).
			Str("func", "credentialRepository.findByID").
			Str("id", id).
			Msg("failed to query credential")
		return models.Credential{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return credential, nil
}

// FindAllByOwner returns the owner's records ordered by creation time,
// newest first. It never returns a nil slice.
func (r *credentialRepository) FindAllByOwner(ctx context.Context, ownerID int64) ([]models.Credential, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectCredentialsByOwnerQuery(r.db.builder, ownerID)
	if err != nil {
		log.Err(err).Str("func", "credentialRepository.FindAllByOwner").Msg("failed to build query")
		return nil, err
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "credentialRepository.FindAllByOwner").
			Int64("owner_id", ownerID).
			Msg("failed to execute query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	credentials := make([]models.Credential, 0, 16)
	for rows.Next() {
		credential, scanErr := scanCredential(rows)
		if scanErr != nil {
			log.Err(scanErr).
				Str("func", "credentialRepository.FindAllByOwner").
				Int64("owner_id", ownerID).
				Msg("failed to scan credential row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}
		credentials = append(credentials, credential)
	}

	if err = rows.Err(); err != nil {
		log.Err(err).
			Str("func", "credentialRepository.FindAllByOwner").
			Int64("owner_id", ownerID).
			Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return credentials, nil
}

// Replace overwrites website, username, password and notes of the record.
func (r *credentialRepository) Replace(ctx context.Context, id string, input models.CredentialInput, expectedVersion int64) (models.Credential, error) {
	log := logger.FromContext(ctx)

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).Str("func", "credentialRepository.Replace").Msg("failed to begin transaction")
		return models.Credential{}, fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer tx.Rollback()

	current, err := r.findByID(ctx, tx, id)
	if err != nil {
		return models.Credential{}, err
	}

	if current.Version != expectedVersion {
		log.Warn().
			Str("func", "credentialRepository.Replace").
			Str("id", id).
			Int64("db_version", current.Version).
			Int64("provided_version", expectedVersion).
			Msg("optimistic lock failed: version mismatch")
		return models.Credential{}, ErrVersionConflict
	}

	updatedAt := nextTimestamp(r.now(), current.UpdatedAt)

	query, args, err := buildReplaceCredentialQuery(r.db.builder, id, input, updatedAt, expectedVersion)
	if err != nil {
		log.Err(err).Str("func", "credentialRepository.Replace").Msg("failed to build query")
		return models.Credential{}, err
	}

	if err = r.execGuarded(ctx, tx, "credentialRepository.Replace", id, query, args); err != nil {
		return models.Credential{}, err
	}

	if err = tx.Commit(); err != nil {
		log.Err(err).Str("func", "credentialRepository.Replace").Msg("failed to commit transaction")
		return models.Credential{}, fmt.Errorf("%w: %w", ErrCommitingTransaction, err)
	}

	current.Website = input.Website
	current.Username = input.Username
	current.Password = input.Password
	current.Notes = input.Notes
	current.UpdatedAt = updatedAt
	current.Version++

	return current, nil
}

// Delete permanently removes the record.
func (r *credentialRepository) Delete(ctx context.Context, id string, expectedVersion int64) error {
	log := logger.FromContext(ctx)

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).Str("func", "credentialRepository.Delete").Msg("failed to begin transaction")
		return fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer tx.Rollback()

	current, err := r.findByID(ctx, tx, id)
	if err != nil {
		return err
	}

	if current.Version != expectedVersion {
		log.Warn().
			Str("func", "credentialRepository.Delete").
			Str("id", id).
			Int64("db_version", current.Version).
			Int64("provided_version", expectedVersion).
			Msg("optimistic lock failed: version mismatch on delete")
		return ErrVersionConflict
	}

	query, args, err := buildDeleteCredentialQuery(r.db.builder, id, expectedVersion)
	if err != nil {
		log.Err(err).Str("func", "credentialRepository.Delete").Msg("failed to build query")
		return err
	}

	if err = r.execGuarded(ctx, tx, "credentialRepository.Delete", id, query, args); err != nil {
		return err
	}

	if err = tx.Commit(); err != nil {
		log.Err(err).Str("func", "credentialRepository.Delete").Msg("failed to commit transaction")
		return fmt.Errorf("%w: %w", ErrCommitingTransaction, err)
	}

	log.Info().
		Str("func", "credentialRepository.Delete").
		Str("id", id).
		Msg("credential deleted")

	return nil
}

// execGuarded runs a version-guarded statement and maps "no rows affected"
// to ErrVersionConflict.
func (r *credentialRepository) execGuarded(ctx context.Context, tx *sql.Tx, fn, id, query string, args []any) error {
	log := logger.FromContext(ctx)

	result, err := tx.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", fn).
			Str("id", id).
			Stringer("classification", r.db.classify(err)).
			Msg("failed to execute statement")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		log.Err(err).Str("func", fn).Str("id", id).Msg("failed to get rows affected")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	if affected == 0 {
		log.Warn().Str("func", fn).Str("id", id).Msg("no rows affected: record changed concurrently")
		return ErrVersionConflict
	}

	return nil
}
