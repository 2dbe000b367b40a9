package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net"
	"time"

	"pgms/config"
	"pgms/shared/constant"

	"github.com/go-sql-driver/mysql"
	"github.com/jmoiron/sqlx"
	"github.com/rs/zerolog/log"
)

var ErrLockTimeout = errors.New("timed out waiting for provisioning lock")

type mysqlDialect struct{}

func (mysqlDialect) Name() string {
	return DriverMySQL
}

func (mysqlDialect) ColumnType(t ColumnType, size int) string {
	switch t {
	case TypeID:
		return "BIGINT AUTO_INCREMENT PRIMARY KEY"
	case TypeBigInt:
		return "BIGINT"
	case TypeInt:
		return "INT"
	case TypeString:
		return fmt.Sprintf("VARCHAR(%d)", size)
	case TypeText:
		return "TEXT"
	case TypeLongText:
		return "LONGTEXT"
	case TypeDecimal:
		return "DECIMAL(12,2)"
	case TypeDate:
		return "DATE"
	case TypeTimestamp:
		return "DATETIME"
	case TypeBool:
		return "BOOLEAN"
	}

	return "TEXT"
}

func (mysqlDialect) Returning() bool {
	return false
}

func (mysqlDialect) InlineIndexes() bool {
	return true
}

func (mysqlDialect) TableExistsQuery() string {
	return "SELECT EXISTS (SELECT 1 FROM information_schema.tables WHERE table_schema = DATABASE() AND table_name = ?)"
}

func (mysqlDialect) IsUniqueViolation(err error) bool {
	var myErr *mysql.MySQLError

	return errors.As(err, &myErr) && myErr.Number == constant.MySQLErrorCodeDuplicateEntry
}

// WithLock takes a named GET_LOCK on a pinned connection. MySQL commits DDL
// implicitly, so fn runs outside any transaction.
func (mysqlDialect) WithLock(ctx context.Context, db *sqlx.DB, key int64, timeout time.Duration, fn LockedFunc) error {
	conn, err := db.Connx(ctx)
	if err != nil {
		return fmt.Errorf("failed to pin connection: %w", err)
	}
	defer conn.Close()

	name := fmt.Sprintf("pgms_tenant_%d", key)

	var acquired sql.NullInt64
	if err = conn.QueryRowxContext(ctx, "SELECT GET_LOCK(?, ?)", name, int(timeout.Seconds())).Scan(&acquired); err != nil {
		return fmt.Errorf("failed to acquire named lock: %w", err)
	}

	if !acquired.Valid || acquired.Int64 != 1 {
		return fmt.Errorf("%w: %s", ErrLockTimeout, name)
	}

	defer func() {
		// the request context may already be cancelled
		if _, relErr := conn.ExecContext(context.WithoutCancel(ctx), "SELECT RELEASE_LOCK(?)", name); relErr != nil {
			log.Error().Err(relErr).Str("lock", name).Msg("failed to release named lock")
		}
	}()

	return fn(ctx, conn)
}

func mysqlDSN(cfg *config.Config, endpoint config.DBEndpoint) string {
	dsn := mysql.NewConfig()
	dsn.User = endpoint.Username
	dsn.Passwd = endpoint.Password
	dsn.Net = "tcp"
	dsn.Addr = net.JoinHostPort(endpoint.Host, endpoint.Port)
	dsn.DBName = dbName(cfg, endpoint.Name)
	dsn.ParseTime = true
	// updates that leave a row unchanged still report it as affected
	dsn.ClientFoundRows = true
	dsn.Loc = time.UTC

	if endpoint.Timezone != "" {
		if loc, err := time.LoadLocation(endpoint.Timezone); err == nil {
			dsn.Loc = loc
		}
	}

	return dsn.FormatDSN()
}
