package sqlite_test

import (
	"database/sql"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/kspdigital/koperasi-core/internal/infrastructure/persistence/sqlite"
)

var testNow = time.Date(2025, time.January, 15, 10, 0, 0, 0, time.UTC)

func openTestDB(t *testing.T) *sql.DB {
	t.Helper()
	path := filepath.Join(t.TempDir(), "koperasi.db")
	require.NoError(t, sqlite.RunMigrations(path))

	db, err := sqlite.Open(path)
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db
}

func seedMember(t *testing.T, db *sql.DB, code string, active bool) uuid.UUID {
	t.Helper()
	id := uuid.New()
	_, err := db.Exec(
		`INSERT INTO members (id, member_code, name, active, joined_at) VALUES (?,?,?,?,?)`,
		id, code, "Member "+code, active,
		time.Date(2024, time.June, 1, 0, 0, 0, 0, time.UTC),
	)
	require.NoError(t, err)
	return id
}
