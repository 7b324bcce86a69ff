package store

import (
	"context"
	"database/sql"
	"fmt"
	"sync/atomic"
	"testing"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-pass-vault/internal/logger"
	"github.com/MKhiriev/go-pass-vault/migrations"
)

func newTestDB(t *testing.T) (*sql.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db, mock
}

// newPostgresDBFromSQL wraps a sqlmock connection as a postgres-dialect DB.
func newPostgresDBFromSQL(db *sql.DB) *DB {
	return newDB(db, migrations.DialectPostgres, NewPostgresErrorClassifier(), logger.Nop())
}

func testContext() context.Context {
	l := zerolog.Nop()
	return l.WithContext(context.Background())
}

// sequenceIDs yields "id-1", "id-2", ... so tests can predict ids.
type sequenceIDs struct {
	n atomic.Int64
}

func (s *sequenceIDs) Generate() string {
	return fmt.Sprintf("id-%d", s.n.Add(1))
}
