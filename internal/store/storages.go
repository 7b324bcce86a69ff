package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-pass-vault/internal/config"
	"github.com/MKhiriev/go-pass-vault/internal/logger"
	"github.com/MKhiriev/go-pass-vault/internal/utils"
)

// Storages bundles the repositories used by the service layer together with
// the database handle that backs them, if any.
type Storages struct {
	UserRepository       UserRepository
	CredentialRepository CredentialRepository

	db *DB
}

// NewStorages opens the backend selected by cfg.DB.Driver. SQL backends are
// migrated before the repositories are returned.
func NewStorages(ctx context.Context, cfg config.Storage, log *logger.Logger) (*Storages, error) {
	ids := utils.NewUUIDGenerator()

	var (
		db  *DB
		err error
	)

	switch cfg.DB.Driver {
	case config.DriverMemory:
		log.Info().Str("func", "NewStorages").Msg("using in-memory storage")
		return &Storages{
			UserRepository:       NewMemoryUserRepository(),
			CredentialRepository: NewMemoryCredentialRepository(ids),
		}, nil
	case config.DriverPostgres:
		db, err = NewConnectPostgres(ctx, cfg.DB, log)
	case config.DriverSQLite:
		db, err = NewConnectSQLite(ctx, cfg.DB, log)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedDriver, cfg.DB.Driver)
	}
	if err != nil {
		return nil, err
	}

	if err = db.Migrate(); err != nil {
		log.Err(err).Str("func", "NewStorages").Msg("failed to apply migrations")
		_ = db.Close()
		return nil, err
	}

	return &Storages{
		UserRepository:       NewUserRepository(db),
		CredentialRepository: NewCredentialRepository(db, ids),
		db:                   db,
	}, nil
}

// Close releases the database handle. It is a no-op for in-memory storage.
func (s *Storages) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}
