package store

import (
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-pass-vault/models"
)

const (
	usersTable       = "users"
	credentialsTable = "credentials"
)

var (
	userColumns = []string{"user_id", "name", "email", "password_hash", "created_at"}

	credentialColumns = []string{
		"id",
		"owner_id",
		"website",
		"username",
		"password",
		"notes",
		"created_at",
		"updated_at",
		"version",
	}
)

func buildInsertUserQuery(b sq.StatementBuilderType, user models.User) (string, []any, error) {
	query, args, err := b.
		Insert(usersTable).
		Columns("name", "email", "password_hash", "created_at").
		Values(user.Name, user.Email, user.PasswordHash, user.CreatedAt).
		Suffix("RETURNING user_id").
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

func buildSelectUserByEmailQuery(b sq.StatementBuilderType, email string) (string, []any, error) {
	query, args, err := b.
		Select(userColumns...).
		From(usersTable).
		Where(sq.Eq{"email": email}).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

func buildInsertCredentialQuery(b sq.StatementBuilderType, c models.Credential) (string, []any, error) {
	query, args, err := b.
		Insert(credentialsTable).
		Columns(credentialColumns...).
		Values(c.ID, c.OwnerID, c.Website, c.Username, c.Password, c.Notes, c.CreatedAt, c.UpdatedAt, c.Version).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

func buildSelectCredentialByIDQuery(b sq.StatementBuilderType, id string) (string, []any, error) {
	query, args, err := b.
		Select(credentialColumns...).
		From(credentialsTable).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

// buildSelectCredentialsByOwnerQuery orders newest first. UUIDv7 ids grow
// with creation time, so id DESC settles ties on created_at.
func buildSelectCredentialsByOwnerQuery(b sq.StatementBuilderType, ownerID int64) (string, []any, error) {
	query, args, err := b.
		Select(credentialColumns...).
		From(credentialsTable).
		Where(sq.Eq{"owner_id": ownerID}).
		OrderBy("created_at DESC", "id DESC").
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

func buildReplaceCredentialQuery(b sq.StatementBuilderType, id string, input models.CredentialInput, updatedAt time.Time, expectedVersion int64) (string, []any, error) {
	query, args, err := b.
		Update(credentialsTable).
		Set("website", input.Website).
		Set("username", input.Username).
		Set("password", input.Password).
		Set("notes", input.Notes).
		Set("updated_at", updatedAt).
		Set("version", sq.Expr("version + 1")).
		Where(sq.Eq{"id": id}).
		Where(sq.Eq{"version": expectedVersion}).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

func buildDeleteCredentialQuery(b sq.StatementBuilderType, id string, expectedVersion int64) (string, []any, error) {
	query, args, err := b.
		Delete(credentialsTable).
		Where(sq.Eq{"id": id}).
		Where(sq.Eq{"version": expectedVersion}).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

func scanCredential(row rowScanner) (models.Credential, error) {
	var c models.Credential
	err := row.Scan(
		&c.ID,
		&c.OwnerID,
		&c.Website,
		&c.Username,
		&c.Password,
		&c.Notes,
		&c.CreatedAt,
		&c.UpdatedAt,
		&c.Version,
	)
	return c, err
}
