package sqlite

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// setupDB opens an in-memory database with the full migration chain applied.
// A single connection is forced so every statement sees the same in-memory
// instance.
func setupDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite", ":memory:")
	require.NoError(t, err)
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = db.Close() })

	require.NoError(t, RunMigrations(context.Background(), db))
	return db
}

func TestOpen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "membership.db")

	db, err := Open(context.Background(), path)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	var fk int
	require.NoError(t, db.QueryRow(`PRAGMA foreign_keys`).Scan(&fk))
	assert.Equal(t, 1, fk)
}

func TestRunMigrations_Idempotent(t *testing.T) {
	db := setupDB(t)

	// a second run finds nothing left to apply
	require.NoError(t, RunMigrations(context.Background(), db))
}

func TestMigrations_SeedDefaults(t *testing.T) {
	db := setupDB(t)

	var members int
	require.NoError(t, db.QueryRow(`SELECT COUNT(*) FROM members`).Scan(&members))
	assert.Equal(t, 4, members)

	var first string
	require.NoError(t, db.QueryRow(`SELECT id FROM members ORDER BY sort_order LIMIT 1`).Scan(&first))
	assert.Equal(t, "integlab", first)

	var partners int
	require.NoError(t, db.QueryRow(`SELECT COUNT(*) FROM partners`).Scan(&partners))
	assert.Equal(t, 1, partners)

	// every seeded member starts with an empty note
	var notes int
	require.NoError(t, db.QueryRow(`SELECT COUNT(*) FROM notes WHERE body = ''`).Scan(&notes))
	assert.Equal(t, 4, notes)

	var adminCredential string
	require.NoError(t, db.QueryRow(`SELECT credential FROM admin_users WHERE id = 'admin'`).Scan(&adminCredential))
	assert.Equal(t, "12345", adminCredential)
}
