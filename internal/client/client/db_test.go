package client

import (
	"context"
	"database/sql"
	"errors"
	"path/filepath"
	"testing"

	"github.com/pressly/goose/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	_ "modernc.org/sqlite"
)

func hasTable(t *testing.T, db *sql.DB, name string) bool {
	t.Helper()
	var n int
	require.NoError(t, db.QueryRow(`SELECT COUNT(*) FROM sqlite_master WHERE type='table' AND name=?`, name).Scan(&n))
	return n > 0
}

func TestInitDatabase_MigratesAndSetsPragmas(t *testing.T) {
	db, err := InitDatabase(context.Background(), filepath.Join(t.TempDir(), "client.db"))
	require.NoError(t, err)
	defer db.Close()

	assert.True(t, hasTable(t, db, "goose_db_version"))
	assert.True(t, hasTable(t, db, "metadata"))

	var timeout int
	require.NoError(t, db.QueryRow(`PRAGMA busy_timeout`).Scan(&timeout))
	assert.Equal(t, busyTimeoutMs, timeout)

	var mode string
	require.NoError(t, db.QueryRow(`PRAGMA journal_mode`).Scan(&mode))
	assert.Equal(t, "wal", mode)
}

func TestInitDatabase_Reopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "client.db")

	db, err := InitDatabase(context.Background(), path)
	require.NoError(t, err)
	_, err = db.Exec(`INSERT INTO metadata (key, value) VALUES ('jwtToken', 't')`)
	require.NoError(t, err)
	require.NoError(t, db.Close())

	db, err = InitDatabase(context.Background(), path)
	require.NoError(t, err)
	defer db.Close()

	var v string
	require.NoError(t, db.QueryRow(`SELECT value FROM metadata WHERE key = 'jwtToken'`).Scan(&v))
	assert.Equal(t, "t", v)
}

func TestInitDatabase_MissingDir(t *testing.T) {
	_, err := InitDatabase(context.Background(), filepath.Join(t.TempDir(), "missing", "client.db"))
	require.Error(t, err)
}

func TestRunMigrations_Error(t *testing.T) {
	orig := gooseUpContext
	t.Cleanup(func() { gooseUpContext = orig })

	boom := errors.New("boom")
	gooseUpContext = func(context.Context, *sql.DB, string, ...goose.OptionsFunc) error { return boom }

	db, err := sql.Open("sqlite", ":memory:")
	require.NoError(t, err)
	defer db.Close()

	err = RunMigrations(context.Background(), db)
	require.ErrorIs(t, err, boom)
	assert.Contains(t, err.Error(), "migrate local cache")
}
