package database

//nolint:revive
import (
	"fmt"
	"time"

	"pgms/config"

	_ "github.com/go-sql-driver/mysql"
	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"github.com/rs/zerolog/log"
)

const (
	defaultMaxIdleConnection = 10
	defaultMaxOpenConnection = 10
)

type Connection struct {
	Read    *sqlx.DB
	Write   *sqlx.DB
	Dialect Dialect
}

func New(config *config.Config) *Connection {
	dialect, err := DialectFor(config.DB.Driver)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to resolve database dialect")
	}

	if dialect.Name() == DriverSQLite {
		db := CreateConnection("sqlite", DriverSQLite, sqliteDSN(config.DB.SQLite.Path), config.DB.SQLite.Path, config.DB.MaxRetry, config.DB.RetryWaitTime)
		if db != nil {
			// sqlite serialises writers; one connection keeps DDL and DML ordered
			db.SetMaxOpenConns(1)
		}

		return &Connection{Read: db, Write: db, Dialect: dialect}
	}

	return &Connection{
		Read:    CreateReadConn(*config, dialect),
		Write:   CreateWriteConn(*config, dialect),
		Dialect: dialect,
	}
}

// FromDB wraps an already open handle, used by tests and tooling.
func FromDB(db *sqlx.DB) (*Connection, error) {
	dialect, err := DialectFor(db.DriverName())
	if err != nil {
		return nil, err
	}

	return &Connection{Read: db, Write: db, Dialect: dialect}, nil
}

func (c *Connection) Close() error {
	if c.Write != nil {
		if err := c.Write.Close(); err != nil {
			return fmt.Errorf("failed to close write connection: %w", err)
		}
	}

	if c.Read != nil && c.Read != c.Write {
		if err := c.Read.Close(); err != nil {
			return fmt.Errorf("failed to close read connection: %w", err)
		}
	}

	return nil
}

// dbName returns the database name with prefix if configured
func dbName(config *config.Config, baseName string) string {
	if config.DB.Prefix != "" {
		return config.DB.Prefix + baseName
	}

	return baseName
}

func dsnFor(config *config.Config, dialect Dialect, endpoint config.DBEndpoint) string {
	if dialect.Name() == DriverMySQL {
		return mysqlDSN(config, endpoint)
	}

	return postgresDSN(config, endpoint)
}

// CreateWriteConn creates a database connection for write access.
func CreateWriteConn(config config.Config, dialect Dialect) *sqlx.DB {
	return createPooled(config, "write", dialect, config.DB.Write)
}

// CreateReadConn creates a database connection for read access.
func CreateReadConn(config config.Config, dialect Dialect) *sqlx.DB {
	return createPooled(config, "read", dialect, config.DB.Read)
}

func createPooled(config config.Config, name string, dialect Dialect, endpoint config.DBEndpoint) *sqlx.DB {
	db := CreateConnection(
		name,
		dialect.Name(),
		dsnFor(&config, dialect, endpoint),
		endpoint.Host+"/"+dbName(&config, endpoint.Name),
		config.DB.MaxRetry,
		config.DB.RetryWaitTime,
	)
	if db == nil {
		return nil
	}

	maxOpen := config.DB.MaxConnections
	if maxOpen <= 0 {
		maxOpen = defaultMaxOpenConnection
	}

	db.SetMaxIdleConns(min(defaultMaxIdleConnection, maxOpen))
	db.SetMaxOpenConns(maxOpen)

	return db
}

// CreateConnection creates a database connection, retrying up to maxRetry times.
func CreateConnection(name, driver, dsn, target string, maxRetry, waitTime int) *sqlx.DB {
	for retry := range max(maxRetry, 1) {
		sqlDB, err := sqlx.Connect(driver, dsn)
		if err == nil {
			log.
				Info().
				Str("name", name).
				Str("driver", driver).
				Str("target", target).
				Msg("Connected to database")

			return sqlDB
		}

		log.
			Error().
			Err(err).
			Str("name", name).
			Str("driver", driver).
			Str("target", target).
			Int("attempt", retry+1).
			Msg("Failed connecting to database, retrying")

		time.Sleep(time.Duration(waitTime) * time.Second)
	}

	return nil
}
