package store

import (
	"database/sql"
	"errors"
	"testing"
	"time"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-pass-vault/models"
)

var fixedNow = time.Date(2026, 5, 6, 7, 8, 9, 0, time.UTC)

func newTestCredentialRepo(t *testing.T) (*credentialRepository, sqlmock.Sqlmock) {
	t.Helper()
	db, mock := newTestDB(t)
	repo := NewCredentialRepository(newPostgresDBFromSQL(db), &sequenceIDs{}).(*credentialRepository)
	repo.now = func() time.Time { return fixedNow }
	return repo, mock
}

func credentialRows() *sqlmock.Rows {
	return sqlmock.NewRows(credentialColumns)
}

func addCredentialRow(rows *sqlmock.Rows, c models.Credential) *sqlmock.Rows {
	return rows.AddRow(c.ID, c.OwnerID, c.Website, c.Username, c.Password, c.Notes, c.CreatedAt, c.UpdatedAt, c.Version)
}

func storedCredential() models.Credential {
	created := fixedNow.Add(-time.Hour)
	return models.Credential{
		ID:        "id-1",
		OwnerID:   7,
		Website:   "github.com",
		Username:  "a@x.com",
		Password:  "p1",
		CreatedAt: created,
		UpdatedAt: created,
		Version:   1,
	}
}

func TestInsert_Success(t *testing.T) {
	repo, mock := newTestCredentialRepo(t)

	mock.ExpectExec("INSERT INTO credentials").
		WithArgs("id-1", int64(7), "github.com", "a@x.com", "p1", "", fixedNow, fixedNow, int64(1)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	got, err := repo.Insert(testContext(), models.Credential{
		OwnerID:  7,
		Website:  "github.com",
		Username: "a@x.com",
		Password: "p1",
	})

	require.NoError(t, err)
	assert.Equal(t, "id-1", got.ID)
	assert.Equal(t, fixedNow, got.CreatedAt)
	assert.Equal(t, fixedNow, got.UpdatedAt)
	assert.Equal(t, int64(1), got.Version)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestInsert_ExecError(t *testing.T) {
	repo, mock := newTestCredentialRepo(t)

	mock.ExpectExec("INSERT INTO credentials").WillReturnError(errors.New("connection refused"))

	_, err := repo.Insert(testContext(), models.Credential{OwnerID: 7})

	assert.ErrorIs(t, err, ErrExecutingQuery)
}

func TestFindByID(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		repo, mock := newTestCredentialRepo(t)
		want := storedCredential()

		mock.ExpectQuery("SELECT (.+) FROM credentials WHERE id = \\$1").
			WithArgs("id-1").
			WillReturnRows(addCredentialRow(credentialRows(), want))

		got, err := repo.FindByID(testContext(), "id-1")

		require.NoError(t, err)
		assert.Equal(t, want, got)
	})

	t.Run("not found", func(t *testing.T) {
		repo, mock := newTestCredentialRepo(t)

		mock.ExpectQuery("SELECT (.+) FROM credentials").
			WithArgs("missing").
			WillReturnRows(credentialRows())

		_, err := repo.FindByID(testContext(), "missing")

		assert.ErrorIs(t, err, ErrCredentialNotFound)
	})

	t.Run("query error", func(t *testing.T) {
		repo, mock := newTestCredentialRepo(t)

		mock.ExpectQuery("SELECT (.+) FROM credentials").WillReturnError(sql.ErrConnDone)

		_, err := repo.FindByID(testContext(), "id-1")

		assert.ErrorIs(t, err, ErrExecutingQuery)
		assert.NotErrorIs(t, err, ErrCredentialNotFound)
	})
}

func TestFindAllByOwner(t *testing.T) {
	t.Run("rows are returned in query order", func(t *testing.T) {
		repo, mock := newTestCredentialRepo(t)

		newer := storedCredential()
		newer.ID = "id-2"
		newer.CreatedAt = fixedNow
		older := storedCredential()

		mock.ExpectQuery("SELECT (.+) FROM credentials WHERE owner_id = \\$1 ORDER BY created_at DESC, id DESC").
			WithArgs(int64(7)).
			WillReturnRows(addCredentialRow(addCredentialRow(credentialRows(), newer), older))

		got, err := repo.FindAllByOwner(testContext(), 7)

		require.NoError(t, err)
		require.Len(t, got, 2)
		assert.Equal(t, "id-2", got[0].ID)
		assert.Equal(t, "id-1", got[1].ID)
	})

	t.Run("no rows gives empty non-nil slice", func(t *testing.T) {
		repo, mock := newTestCredentialRepo(t)

		mock.ExpectQuery("SELECT (.+) FROM credentials").WillReturnRows(credentialRows())

		got, err := repo.FindAllByOwner(testContext(), 7)

		require.NoError(t, err)
		assert.NotNil(t, got)
		assert.Empty(t, got)
	})

	t.Run("scan error", func(t *testing.T) {
		repo, mock := newTestCredentialRepo(t)

		mock.ExpectQuery("SELECT (.+) FROM credentials").
			WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow("id-1"))

		_, err := repo.FindAllByOwner(testContext(), 7)

		assert.ErrorIs(t, err, ErrScanningRow)
	})

	t.Run("iteration error", func(t *testing.T) {
		repo, mock := newTestCredentialRepo(t)

		rows := addCredentialRow(credentialRows(), storedCredential()).RowError(0, errors.New("broken pipe"))
		mock.ExpectQuery("SELECT (.+) FROM credentials").WillReturnRows(rows)

		_, err := repo.FindAllByOwner(testContext(), 7)

		assert.ErrorIs(t, err, ErrScanningRows)
	})

	t.Run("query error", func(t *testing.T) {
		repo, mock := newTestCredentialRepo(t)

		mock.ExpectQuery("SELECT (.+) FROM credentials").WillReturnError(errors.New("timeout"))

		_, err := repo.FindAllByOwner(testContext(), 7)

		assert.ErrorIs(t, err, ErrExecutingQuery)
	})
}

func TestReplace_Success(t *testing.T) {
	repo, mock := newTestCredentialRepo(t)
	stored := storedCredential()
	input := models.CredentialInput{Website: "github.com", Username: "a@x.com", Password: "p2", Notes: "rotated"}

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT (.+) FROM credentials WHERE id").
		WithArgs("id-1").
		WillReturnRows(addCredentialRow(credentialRows(), stored))
	mock.ExpectExec("UPDATE credentials SET (.+) WHERE id = \\$6 AND version = \\$7").
		WithArgs("github.com", "a@x.com", "p2", "rotated", fixedNow, "id-1", int64(1)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	got, err := repo.Replace(testContext(), "id-1", input, 1)

	require.NoError(t, err)
	assert.Equal(t, "p2", got.Password)
	assert.Equal(t, "rotated", got.Notes)
	assert.Equal(t, stored.OwnerID, got.OwnerID)
	assert.Equal(t, stored.CreatedAt, got.CreatedAt)
	assert.Equal(t, fixedNow, got.UpdatedAt)
	assert.Equal(t, int64(2), got.Version)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestReplace_NotFound(t *testing.T) {
	repo, mock := newTestCredentialRepo(t)

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT (.+) FROM credentials").WillReturnRows(credentialRows())
	mock.ExpectRollback()

	_, err := repo.Replace(testContext(), "missing", models.CredentialInput{}, 1)

	assert.ErrorIs(t, err, ErrCredentialNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestReplace_VersionMismatch(t *testing.T) {
	repo, mock := newTestCredentialRepo(t)
	stored := storedCredential()
	stored.Version = 4

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT (.+) FROM credentials").WillReturnRows(addCredentialRow(credentialRows(), stored))
	mock.ExpectRollback()

	_, err := repo.Replace(testContext(), "id-1", models.CredentialInput{}, 3)

	assert.ErrorIs(t, err, ErrVersionConflict)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestReplace_NoRowsAffected(t *testing.T) {
	repo, mock := newTestCredentialRepo(t)

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT (.+) FROM credentials").WillReturnRows(addCredentialRow(credentialRows(), storedCredential()))
	mock.ExpectExec("UPDATE credentials").WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectRollback()

	_, err := repo.Replace(testContext(), "id-1", models.CredentialInput{}, 1)

	assert.ErrorIs(t, err, ErrVersionConflict)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestReplace_TransactionErrors(t *testing.T) {
	t.Run("begin", func(t *testing.T) {
		repo, mock := newTestCredentialRepo(t)
		mock.ExpectBegin().WillReturnError(errors.New("pool exhausted"))

		_, err := repo.Replace(testContext(), "id-1", models.CredentialInput{}, 1)

		assert.ErrorIs(t, err, ErrBeginningTransaction)
	})

	t.Run("exec", func(t *testing.T) {
		repo, mock := newTestCredentialRepo(t)
		mock.ExpectBegin()
		mock.ExpectQuery("SELECT (.+) FROM credentials").WillReturnRows(addCredentialRow(credentialRows(), storedCredential()))
		mock.ExpectExec("UPDATE credentials").WillReturnError(errors.New("disk full"))
		mock.ExpectRollback()

		_, err := repo.Replace(testContext(), "id-1", models.CredentialInput{}, 1)

		assert.ErrorIs(t, err, ErrExecutingQuery)
	})

	t.Run("commit", func(t *testing.T) {
		repo, mock := newTestCredentialRepo(t)
		mock.ExpectBegin()
		mock.ExpectQuery("SELECT (.+) FROM credentials").WillReturnRows(addCredentialRow(credentialRows(), storedCredential()))
		mock.ExpectExec("UPDATE credentials").WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectCommit().WillReturnError(errors.New("commit failed"))

		_, err := repo.Replace(testContext(), "id-1", models.CredentialInput{}, 1)

		assert.ErrorIs(t, err, ErrCommitingTransaction)
	})
}

func TestDelete_Success(t *testing.T) {
	repo, mock := newTestCredentialRepo(t)

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT (.+) FROM credentials WHERE id").
		WithArgs("id-1").
		WillReturnRows(addCredentialRow(credentialRows(), storedCredential()))
	mock.ExpectExec("DELETE FROM credentials WHERE id = \\$1 AND version = \\$2").
		WithArgs("id-1", int64(1)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	err := repo.Delete(testContext(), "id-1", 1)

	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDelete_Failures(t *testing.T) {
	tests := []struct {
		name    string
		setup   func(mock sqlmock.Sqlmock)
		version int64
		wantErr error
	}{
		{
			name: "not found",
			setup: func(mock sqlmock.Sqlmock) {
				mock.ExpectBegin()
				mock.ExpectQuery("SELECT (.+) FROM credentials").WillReturnRows(credentialRows())
				mock.ExpectRollback()
			},
			version: 1,
			wantErr: ErrCredentialNotFound,
		},
		{
			name: "version mismatch",
			setup: func(mock sqlmock.Sqlmock) {
				mock.ExpectBegin()
				mock.ExpectQuery("SELECT (.+) FROM credentials").WillReturnRows(addCredentialRow(credentialRows(), storedCredential()))
				mock.ExpectRollback()
			},
			version: 2,
			wantErr: ErrVersionConflict,
		},
		{
			name: "deleted concurrently",
			setup: func(mock sqlmock.Sqlmock) {
				mock.ExpectBegin()
				mock.ExpectQuery("SELECT (.+) FROM credentials").WillReturnRows(addCredentialRow(credentialRows(), storedCredential()))
				mock.ExpectExec("DELETE FROM credentials").WillReturnResult(sqlmock.NewResult(0, 0))
				mock.ExpectRollback()
			},
			version: 1,
			wantErr: ErrVersionConflict,
		},
		{
			name: "begin error",
			setup: func(mock sqlmock.Sqlmock) {
				mock.ExpectBegin().WillReturnError(errors.New("pool exhausted"))
			},
			version: 1,
			wantErr: ErrBeginningTransaction,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mock := newTestCredentialRepo(t)
			tt.setup(mock)

			err := repo.Delete(testContext(), "id-1", tt.version)

			assert.ErrorIs(t, err, tt.wantErr)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}
