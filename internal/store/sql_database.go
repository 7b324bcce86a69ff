package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-pass-vault/internal/logger"
	"github.com/MKhiriev/go-pass-vault/migrations"
)

// DB is a database handle bound to one SQL dialect. It carries the query
// builder with the dialect's placeholder format and the classifier for the
// dialect's driver errors.
type DB struct {
	*sql.DB
	dialect            string
	builder            sq.StatementBuilderType
	errorClassificator ErrorClassificator
	logger             *logger.Logger
}

func newDB(conn *sql.DB, dialect string, classificator ErrorClassificator, log *logger.Logger) *DB {
	placeholder := sq.PlaceholderFormat(sq.Question)
	if dialect == migrations.DialectPostgres {
		placeholder = sq.Dollar
	}

	return &DB{
		DB:                 conn,
		dialect:            dialect,
		builder:            sq.StatementBuilder.PlaceholderFormat(placeholder),
		errorClassificator: classificator,
		logger:             log,
	}
}

// Migrate applies all pending migrations of the handle's dialect.
func (db *DB) Migrate() error {
	if err := migrations.Migrate(db.DB, db.dialect); err != nil {
		return fmt.Errorf("error migrating %s database: %w", db.dialect, err)
	}
	return nil
}

// classify returns the classification of err, or Unclassified when the handle
// has no classifier.
func (db *DB) classify(err error) ErrorClassification {
	if db.errorClassificator == nil {
		return Unclassified
	}
	return db.errorClassificator.Classify(err)
}

// nextTimestamp returns now truncated to microseconds, the precision both
// PostgreSQL and the SQLite driver round-trip, bumped past prev if needed so
// that modification times strictly increase.
func nextTimestamp(now, prev time.Time) time.Time {
	ts := now.UTC().Truncate(time.Microsecond)
	if !ts.After(prev) {
		ts = prev.UTC().Add(time.Microsecond)
	}
	return ts
}

// rowScanner is satisfied by *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

// queryRower is satisfied by *sql.DB and *sql.Tx.
type queryRower interface {
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}
