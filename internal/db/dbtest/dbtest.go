// Package dbtest opens migrated SQLite databases for tests.
package dbtest

import (
	"database/sql"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/yusufkecer/fitness-tracker-backend/internal/config"
	"github.com/yusufkecer/fitness-tracker-backend/internal/db"
)

func New(t testing.TB) *sql.DB {
	t.Helper()

	path := filepath.Join(t.TempDir(), "fitness_test.db")
	database, err := db.Open(config.DriverSQLite, path)
	require.NoError(t, err)
	t.Cleanup(func() { database.Close() })

	require.NoError(t, db.RunMigrations(database, config.DriverSQLite))
	return database
}
