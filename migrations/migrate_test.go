// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package migrations

import (
	"database/sql"
	"io/fs"
	"strings"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	_ "github.com/mattn/go-sqlite3"
)

func TestMigrate_DBError(t *testing.T) {
	db, _, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	defer db.Close()

	// no expectations registered: the first statement goose sends fails
	err = Migrate(db, DialectPostgres)
	if err == nil {
		t.Fatal("expected error from Migrate, got nil")
	}
	if !strings.Contains(err.Error(), "migration error") {
		t.Errorf("expected wrapped migration error, got: %v", err)
	}
}

func TestMigrate_NilDB(t *testing.T) {
	var db *sql.DB

	err := Migrate(db, DialectPostgres)
	if err == nil {
		t.Fatal("expected error when db is nil, got nil")
	}
	if !strings.Contains(err.Error(), "db is nil") {
		t.Errorf("expected 'db is nil' error, got: %v", err)
	}
}

func TestMigrate_UnknownDialect(t *testing.T) {
	db, _, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	defer db.Close()

	err = Migrate(db, "oracle")
	if err == nil || !strings.Contains(err.Error(), "unsupported dialect") {
		t.Fatalf("expected unsupported dialect error, got: %v", err)
	}
}

func TestEmbeddedMigrations(t *testing.T) {
	for _, dir := range []string{"postgres", "sqlite"} {
		entries, err := fs.ReadDir(embedMigrations, dir)
		if err != nil {
			t.Fatalf("reading %s: %v", dir, err)
		}
		if len(entries) == 0 {
			t.Errorf("expected migrations in %s", dir)
		}
	}
}

// TestMigrate_SQLite applies the schema to an in-memory database and checks
// that running it twice is a no-op.
func TestMigrate_SQLite(t *testing.T) {
	db, err := sql.Open("sqlite3", "file::memory:?cache=shared")
	if err != nil {
		t.Skipf("sqlite3 driver unavailable: %v", err)
	}
	defer db.Close()
	db.SetMaxOpenConns(1)

	if err := db.Ping(); err != nil {
		t.Skipf("sqlite3 driver unavailable: %v", err)
	}

	if err := Migrate(db, DialectSQLite); err != nil {
		t.Fatalf("first migration failed: %v", err)
	}
	if err := Migrate(db, DialectSQLite); err != nil {
		t.Fatalf("second migration failed: %v", err)
	}

	var count int
	if err := db.QueryRow(`SELECT COUNT(*) FROM credentials`).Scan(&count); err != nil {
		t.Fatalf("credentials table missing: %v", err)
	}
}
