package helper

//nolint:revive
import (
	"errors"
	"fmt"

	"pgms/config"
	"pgms/infras/database"
	"pgms/migrations"

	"github.com/golang-migrate/migrate/v4"
	migrateDB "github.com/golang-migrate/migrate/v4/database"
	migrateMySQL "github.com/golang-migrate/migrate/v4/database/mysql"
	migratePostgres "github.com/golang-migrate/migrate/v4/database/postgres"
	migrateSQLite "github.com/golang-migrate/migrate/v4/database/sqlite3"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"github.com/rs/zerolog/log"
)

const (
	ActionUp     = "up"
	ActionDown   = "down"
	ActionStepUp = "step-up"
	ActionDrop   = "drop"
)

const defaultMigrationTable = "schema_migrations"

func driverFor(conn *database.Connection, migrationTable string) (migrateDB.Driver, error) {
	if migrationTable == "" {
		migrationTable = defaultMigrationTable
	}

	db := conn.Write.DB

	switch conn.Dialect.Name() {
	case database.DriverPostgres:
		return migratePostgres.WithInstance(db, &migratePostgres.Config{MigrationsTable: migrationTable})
	case database.DriverMySQL:
		return migrateMySQL.WithInstance(db, &migrateMySQL.Config{MigrationsTable: migrationTable})
	case database.DriverSQLite:
		return migrateSQLite.WithInstance(db, &migrateSQLite.Config{MigrationsTable: migrationTable})
	}

	return nil, fmt.Errorf("no migration driver for %s", conn.Dialect.Name())
}

// NewMigrator reads the embedded migrations of the connection's dialect.
// Closing the returned instance closes the connection's write pool.
func NewMigrator(conn *database.Connection, migrationTable string) (*migrate.Migrate, error) {
	source, err := iofs.New(migrations.FS, conn.Dialect.Name())
	if err != nil {
		return nil, fmt.Errorf("error reading migrations: %w", err)
	}

	driver, err := driverFor(conn, migrationTable)
	if err != nil {
		return nil, fmt.Errorf("error creating migration driver: %w", err)
	}

	mig, err := migrate.NewWithInstance("iofs", source, conn.Dialect.Name(), driver)
	if err != nil {
		return nil, fmt.Errorf("error creating migrate instance: %w", err)
	}

	return mig, nil
}

// Apply migrates conn to the latest version and leaves it open.
func Apply(conn *database.Connection, migrationTable string) error {
	mig, err := NewMigrator(conn, migrationTable)
	if err != nil {
		return err
	}

	return run(mig, ActionUp)
}

func run(mig *migrate.Migrate, action string) error {
	var err error

	switch action {
	case ActionUp:
		err = mig.Up()
	case ActionDown:
		err = mig.Steps(-1)
	case ActionStepUp:
		err = mig.Steps(1)
	case ActionDrop:
		err = mig.Down()
	default:
		return fmt.Errorf("unknown migration action %q", action)
	}

	if err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("error running migration %s: %w", action, err)
	}

	log.Info().Str("action", action).Msg("Database migration completed successfully")

	return nil
}

// Runner opens a dedicated connection, runs action and closes it.
func Runner(cfg *config.Config, action string) error {
	conn := database.New(cfg)
	if conn.Write == nil {
		return errors.New("no database connection")
	}

	mig, err := NewMigrator(conn, cfg.DB.MigrationTable)
	if err != nil {
		_ = conn.Close()

		return err
	}

	defer func() {
		if srcErr, dbErr := mig.Close(); srcErr != nil || dbErr != nil {
			log.Warn().AnErr("source", srcErr).AnErr("database", dbErr).Msg("failed to close migrator")
		}

		if conn.Read != conn.Write && conn.Read != nil {
			_ = conn.Read.Close()
		}
	}()

	return run(mig, action)
}

func Up(cfg *config.Config) error {
	return Runner(cfg, ActionUp)
}

func StepUp(cfg *config.Config) error {
	return Runner(cfg, ActionStepUp)
}

func Down(cfg *config.Config) error {
	return Runner(cfg, ActionDown)
}

func Drop(cfg *config.Config) error {
	return Runner(cfg, ActionDrop)
}
