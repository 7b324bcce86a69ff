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

// userRepository is the SQL-backed implementation of [UserRepository].
// It handles account creation and lookup against the "users" table.
type userRepository struct {
	db  *DB
	now func() time.Time
}

// NewUserRepository constructs a [UserRepository] backed by db.
func NewUserRepository(db *DB) UserRepository {
	db.logger.Debug().Msg("creating user repository")
	return &userRepository{
		db:  db,
		now: time.Now,
	}
}

// CreateUser persists a new user and returns it with the database-assigned
// UserID.
//
// Error handling:
//   - unique constraint violation on email → [ErrEmailAlreadyExists].
//   - any other driver-level error → wrapped [ErrExecutingQuery].
func (r *userRepository) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	log := logger.FromContext(ctx)

	user.CreatedAt = r.now().UTC().Truncate(time.Microsecond)

	query, args, err := buildInsertUserQuery(r.db.builder, user)
	if err != nil {
		log.Err(err).Str("func", "userRepository.CreateUser").Msg("failed to build query")
		return models.User{}, err
	}

	if err = r.db.QueryRowContext(ctx, query, args...).Scan(&user.UserID); err != nil {
		class := r.db.classify(err)
		log.Err(err).
			Str("func", "userRepository.CreateUser").
			Stringer("classification", class).
			Msg("failed to insert user")

		if class == UniqueViolation {
			return models.User{}, ErrEmailAlreadyExists
		}
		return models.User{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return user, nil
}

// FindUserByEmail retrieves the user registered with email.
// A missing row yields [ErrUserNotFound].
func (r *userRepository) FindUserByEmail(ctx context.Context, email string) (models.User, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectUserByEmailQuery(r.db.builder, email)
	if err != nil {
		log.Err(err).Str("func", "userRepository.FindUserByEmail").Msg("failed to build query")
		return models.User{}, err
	}

	var user models.User
	err = r.db.QueryRowContext(ctx, query, args...).
		Scan(&user.UserID, &user.Name, &user.Email, &user.PasswordHash, &user.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return models.User{}, ErrUserNotFound
	}
	if err != nil {
		log.Err(err).Str("func", "userRepository.FindUserByEmail").Msg("failed to query user")
		return models.User{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return user, nil
}
