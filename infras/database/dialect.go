package database

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
)

const (
	DriverPostgres = "postgres"
	DriverMySQL    = "mysql"
	DriverSQLite   = "sqlite3"
)

// ColumnType is a portable column type rendered by each Dialect.
type ColumnType int

const (
	TypeID ColumnType = iota + 1
	TypeBigInt
	TypeInt
	TypeString
	TypeText
	TypeLongText
	TypeDecimal
	TypeDate
	TypeTimestamp
	TypeBool
)

// LockedFunc runs statements while the provisioning lock is held.
type LockedFunc func(ctx context.Context, exec sqlx.ExecerContext) error

// Dialect captures what differs between the supported SQL engines.
type Dialect interface {
	Name() string

	// ColumnType renders t; size applies to TypeString only.
	ColumnType(t ColumnType, size int) string

	// Returning reports whether INSERT ... RETURNING id is available.
	Returning() bool

	// InlineIndexes reports whether secondary indexes must be declared inside
	// CREATE TABLE because CREATE INDEX IF NOT EXISTS is unsupported.
	InlineIndexes() bool

	// TableExistsQuery selects a single boolean for the table name bound to
	// its only ? placeholder.
	TableExistsQuery() string

	IsUniqueViolation(err error) bool

	// WithLock runs fn while holding a lock scoped by key. fn receives the
	// executor bound to the locked session.
	WithLock(ctx context.Context, db *sqlx.DB, key int64, timeout time.Duration, fn LockedFunc) error
}

// DialectFor returns the dialect registered for a database/sql driver name.
func DialectFor(driver string) (Dialect, error) {
	switch driver {
	case DriverPostgres:
		return postgresDialect{}, nil
	case DriverMySQL:
		return mysqlDialect{}, nil
	case DriverSQLite:
		return sqliteDialect{}, nil
	}

	return nil, fmt.Errorf("unsupported database driver %q", driver)
}

// NoLock runs fn directly against db.
func NoLock(ctx context.Context, db *sqlx.DB, fn LockedFunc) error {
	return fn(ctx, db)
}
