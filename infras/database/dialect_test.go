package database_test

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"pgms/infras/database"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/go-sql-driver/mysql"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMock(t *testing.T, driver string) (*sqlx.DB, sqlmock.Sqlmock) {
	t.Helper()

	mockDB, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherEqual))
	require.NoError(t, err)

	t.Cleanup(func() { _ = mockDB.Close() })

	return sqlx.NewDb(mockDB, driver), mock
}

func TestDialectFor(t *testing.T) {
	for _, driver := range []string{database.DriverPostgres, database.DriverMySQL, database.DriverSQLite} {
		dialect, err := database.DialectFor(driver)
		require.NoError(t, err)
		assert.Equal(t, driver, dialect.Name())
	}

	_, err := database.DialectFor("oracle")
	assert.Error(t, err)
}

func TestDialect_ColumnType(t *testing.T) {
	pg, _ := database.DialectFor(database.DriverPostgres)
	my, _ := database.DialectFor(database.DriverMySQL)
	lite, _ := database.DialectFor(database.DriverSQLite)

	assert.Equal(t, "BIGSERIAL PRIMARY KEY", pg.ColumnType(database.TypeID, 0))
	assert.Equal(t, "BIGINT AUTO_INCREMENT PRIMARY KEY", my.ColumnType(database.TypeID, 0))
	assert.Equal(t, "INTEGER PRIMARY KEY AUTOINCREMENT", lite.ColumnType(database.TypeID, 0))

	assert.Equal(t, "VARCHAR(100)", pg.ColumnType(database.TypeString, 100))
	assert.Equal(t, "LONGTEXT", my.ColumnType(database.TypeLongText, 0))
	assert.Equal(t, "TEXT", pg.ColumnType(database.TypeLongText, 0))
	assert.Equal(t, "DATETIME", my.ColumnType(database.TypeTimestamp, 0))
	assert.Equal(t, "NUMERIC(12,2)", pg.ColumnType(database.TypeDecimal, 0))

	assert.True(t, pg.Returning())
	assert.False(t, my.Returning())
	assert.True(t, lite.Returning())
	assert.True(t, my.InlineIndexes())
	assert.False(t, pg.InlineIndexes())
}

func TestDialect_IsUniqueViolation(t *testing.T) {
	pg, _ := database.DialectFor(database.DriverPostgres)
	my, _ := database.DialectFor(database.DriverMySQL)
	lite, _ := database.DialectFor(database.DriverSQLite)

	assert.True(t, pg.IsUniqueViolation(fmt.Errorf("insert: %w", &pq.Error{Code: "23505"})))
	assert.False(t, pg.IsUniqueViolation(&pq.Error{Code: "42P01"}))
	assert.True(t, my.IsUniqueViolation(&mysql.MySQLError{Number: 1062}))
	assert.False(t, my.IsUniqueViolation(&mysql.MySQLError{Number: 1146}))
	assert.True(t, lite.IsUniqueViolation(errors.New("UNIQUE constraint failed: tenant_1_rooms.room_number")))
	assert.False(t, lite.IsUniqueViolation(nil))
}

func TestFromDB(t *testing.T) {
	db, _ := newMock(t, database.DriverPostgres)

	conn, err := database.FromDB(db)
	require.NoError(t, err)
	assert.Equal(t, database.DriverPostgres, conn.Dialect.Name())
	assert.Same(t, conn.Read, conn.Write)

	_, err = database.FromDB(sqlx.NewDb(db.DB, "oracle"))
	assert.Error(t, err)
}

func TestPostgres_WithLock(t *testing.T) {
	db, mock := newMock(t, database.DriverPostgres)
	dialect, _ := database.DialectFor(database.DriverPostgres)

	mock.ExpectBegin()
	mock.ExpectExec("SET LOCAL lock_timeout = '5000ms'").WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec("SELECT pg_advisory_xact_lock($1, $2)").
		WithArgs(int64(0x70676d73), int64(42)).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec("CREATE TABLE x (id INT)").WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectCommit()

	err := dialect.WithLock(context.Background(), db, 42, 5*time.Second, func(ctx context.Context, exec sqlx.ExecerContext) error {
		_, err := exec.ExecContext(ctx, "CREATE TABLE x (id INT)")

		return err
	})

	require.NoError(t, err)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgres_WithLock_RollsBackOnError(t *testing.T) {
	db, mock := newMock(t, database.DriverPostgres)
	dialect, _ := database.DialectFor(database.DriverPostgres)

	mock.ExpectBegin()
	mock.ExpectExec("SELECT pg_advisory_xact_lock($1, $2)").WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectRollback()

	boom := errors.New("boom")
	err := dialect.WithLock(context.Background(), db, 7, 0, func(context.Context, sqlx.ExecerContext) error {
		return boom
	})

	assert.ErrorIs(t, err, boom)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestMySQL_WithLock(t *testing.T) {
	db, mock := newMock(t, database.DriverMySQL)
	dialect, _ := database.DialectFor(database.DriverMySQL)

	mock.ExpectQuery("SELECT GET_LOCK(?, ?)").
		WithArgs("pgms_tenant_9", int64(3)).
		WillReturnRows(sqlmock.NewRows([]string{"lock"}).AddRow(int64(1)))
	mock.ExpectExec("SELECT RELEASE_LOCK(?)").WithArgs("pgms_tenant_9").WillReturnResult(sqlmock.NewResult(0, 0))

	called := false
	err := dialect.WithLock(context.Background(), db, 9, 3*time.Second, func(context.Context, sqlx.ExecerContext) error {
		called = true

		return nil
	})

	require.NoError(t, err)
	assert.True(t, called)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestMySQL_WithLock_Timeout(t *testing.T) {
	db, mock := newMock(t, database.DriverMySQL)
	dialect, _ := database.DialectFor(database.DriverMySQL)

	mock.ExpectQuery("SELECT GET_LOCK(?, ?)").
		WillReturnRows(sqlmock.NewRows([]string{"lock"}).AddRow(int64(0)))

	err := dialect.WithLock(context.Background(), db, 9, time.Second, func(context.Context, sqlx.ExecerContext) error {
		t.Fatal("must not run without the lock")

		return nil
	})

	assert.ErrorIs(t, err, database.ErrLockTimeout)
	require.NoError(t, mock.ExpectationsWereMet())
}
