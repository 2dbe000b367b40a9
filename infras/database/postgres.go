package database

//nolint:revive
import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/url"
	"time"

	"pgms/config"
	"pgms/shared/constant"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/rs/zerolog/log"
)

// postgresLockNamespace is the classid half of the two-key advisory lock ("pgms").
const postgresLockNamespace int32 = 0x70676d73

type postgresDialect struct{}

func (postgresDialect) Name() string {
	return DriverPostgres
}

func (postgresDialect) ColumnType(t ColumnType, size int) string {
	switch t {
	case TypeID:
		return "BIGSERIAL PRIMARY KEY"
	case TypeBigInt:
		return "BIGINT"
	case TypeInt:
		return "INTEGER"
	case TypeString:
		return fmt.Sprintf("VARCHAR(%d)", size)
	case TypeText, TypeLongText:
		return "TEXT"
	case TypeDecimal:
		return "NUMERIC(12,2)"
	case TypeDate:
		return "DATE"
	case TypeTimestamp:
		return "TIMESTAMP"
	case TypeBool:
		return "BOOLEAN"
	}

	return "TEXT"
}

func (postgresDialect) Returning() bool {
	return true
}

func (postgresDialect) InlineIndexes() bool {
	return false
}

func (postgresDialect) TableExistsQuery() string {
	return "SELECT EXISTS (SELECT 1 FROM information_schema.tables WHERE table_schema = current_schema() AND table_name = ?)"
}

func (postgresDialect) IsUniqueViolation(err error) bool {
	var pqErr *pq.Error

	return errors.As(err, &pqErr) && string(pqErr.Code) == constant.PqErrorCodeUniqueViolation
}

// WithLock holds pg_advisory_xact_lock for the lifetime of one transaction.
// PostgreSQL DDL is transactional, so statements issued by fn commit or roll
// back together.
func (postgresDialect) WithLock(ctx context.Context, db *sqlx.DB, key int64, timeout time.Duration, fn LockedFunc) (err error) {
	tx, err := db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin provisioning transaction: %w", err)
	}

	defer func() {
		if err != nil {
			if rbErr := tx.Rollback(); rbErr != nil {
				log.Error().Err(rbErr).Msg("failed to rollback provisioning transaction")
			}
		}
	}()

	if timeout > 0 {
		if _, err = tx.ExecContext(ctx, fmt.Sprintf("SET LOCAL lock_timeout = '%dms'", timeout.Milliseconds())); err != nil {
			return fmt.Errorf("failed to set lock timeout: %w", err)
		}
	}

	if _, err = tx.ExecContext(ctx, "SELECT pg_advisory_xact_lock($1, $2)", postgresLockNamespace, int32(key)); err != nil { //nolint:gosec
		return fmt.Errorf("failed to acquire advisory lock: %w", err)
	}

	if err = fn(ctx, tx); err != nil {
		return err
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit provisioning transaction: %w", err)
	}

	return nil
}

func postgresDSN(cfg *config.Config, endpoint config.DBEndpoint) string {
	query := url.Values{}
	query.Set("sslmode", endpoint.SSLMode)

	if endpoint.Timezone != "" {
		query.Set("timezone", endpoint.Timezone)
	}

	return fmt.Sprintf(
		"postgres://%s:%s@%s/%s?%s",
		url.QueryEscape(endpoint.Username),
		url.QueryEscape(endpoint.Password),
		net.JoinHostPort(endpoint.Host, endpoint.Port),
		dbName(cfg, endpoint.Name),
		query.Encode(),
	)
}
