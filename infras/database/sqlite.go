package database

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/jmoiron/sqlx"
	_ "github.com/mattn/go-sqlite3" //nolint:revive
)

type sqliteDialect struct{}

func (sqliteDialect) Name() string {
	return DriverSQLite
}

func (sqliteDialect) ColumnType(t ColumnType, size int) string {
	switch t {
	case TypeID:
		return "INTEGER PRIMARY KEY AUTOINCREMENT"
	case TypeBigInt, TypeInt:
		return "INTEGER"
	case TypeString:
		return fmt.Sprintf("VARCHAR(%d)", size)
	case TypeText, TypeLongText:
		return "TEXT"
	case TypeDecimal:
		return "DECIMAL(12,2)"
	case TypeDate:
		return "DATE"
	case TypeTimestamp:
		return "TIMESTAMP"
	case TypeBool:
		return "BOOLEAN"
	}

	return "TEXT"
}

func (sqliteDialect) Returning() bool {
	return true
}

func (sqliteDialect) InlineIndexes() bool {
	return false
}

func (sqliteDialect) TableExistsQuery() string {
	return "SELECT EXISTS (SELECT 1 FROM sqlite_master WHERE type = 'table' AND name = ?)"
}

// IsUniqueViolation matches on the message text so the check compiles
// without cgo.
func (sqliteDialect) IsUniqueViolation(err error) bool {
	return err != nil && strings.Contains(err.Error(), "UNIQUE constraint failed")
}

// WithLock is a no-op: the pool holds a single connection.
func (sqliteDialect) WithLock(ctx context.Context, db *sqlx.DB, _ int64, _ time.Duration, fn LockedFunc) error {
	return NoLock(ctx, db, fn)
}

func sqliteDSN(path string) string {
	query := url.Values{}
	query.Set("_foreign_keys", "on")
	query.Set("_busy_timeout", "5000")

	return "file:" + path + "?" + query.Encode()
}
