// Package dbtest opens throwaway databases for tests.
package dbtest

import (
	"testing"

	"pgms/helper"
	"pgms/infras/database"

	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/require"
)

// NewSQLite returns a connection to a private in-memory SQLite database. The
// pool is pinned to one connection because every new connection to
// ":memory:" would open an empty database.
func NewSQLite(t testing.TB) *database.Connection {
	t.Helper()

	db, err := sqlx.Open(database.DriverSQLite, "file::memory:?_foreign_keys=on")
	require.NoError(t, err)

	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(0)

	t.Cleanup(func() { _ = db.Close() })

	conn, err := database.FromDB(db)
	require.NoError(t, err)

	return conn
}

// NewMigratedSQLite is NewSQLite with the global tables migrated.
func NewMigratedSQLite(t testing.TB) *database.Connection {
	t.Helper()

	conn := NewSQLite(t)
	require.NoError(t, helper.Apply(conn, ""))

	return conn
}
