// Package schema creates, verifies and drops the private table set of each
// tenant.
package schema

//go:generate go run go.uber.org/mock/mockgen -source=./provisioner.go -destination=./mocks/provisioner_mock.go -package=mocks

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"time"

	"pgms/config"
	"pgms/infras/database"
	"pgms/infras/otel"
	"pgms/internal/tenancy"
	"pgms/shared/constant"
	"pgms/shared/logger"

	"github.com/jmoiron/sqlx"
	"github.com/rs/zerolog/log"
)

type Provisioner interface {
	// ProvisionTenant creates every missing table of the tenant. It is safe to
	// call at any time and any number of times.
	ProvisionTenant(ctx context.Context, tenantID tenancy.TenantID) error
	TableExists(ctx context.Context, tenantID tenancy.TenantID, kind tenancy.Kind) (bool, error)
	MissingTables(ctx context.Context, tenantID tenancy.TenantID) ([]tenancy.Kind, error)
	AllTablesPresent(ctx context.Context, tenantID tenancy.TenantID) (bool, error)
	// DropTenant removes the tenant's tables in reverse provisioning order.
	DropTenant(ctx context.Context, tenantID tenancy.TenantID) error
}

type provisioner struct {
	db          *database.Connection
	otel        otel.Otel
	lock        bool
	lockTimeout time.Duration
}

func NewProvisioner(db *database.Connection, otl otel.Otel, cfg *config.Config) Provisioner {
	return &provisioner{
		db:          db,
		otel:        otl,
		lock:        cfg.Tenancy.ProvisionLock,
		lockTimeout: time.Duration(cfg.Tenancy.LockTimeoutSeconds) * time.Second,
	}
}

func (p *provisioner) ProvisionTenant(ctx context.Context, tenantID tenancy.TenantID) (err error) {
	ctx, scope := p.otel.NewScope(ctx, constant.OtelProvisionerScopeName, constant.OtelProvisionerScopeName+".ProvisionTenant")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if err = tenantID.Validate(); err != nil {
		return err
	}

	scope.SetAttribute(constant.OtelTenantAttributeKey, tenantID.Int64())

	runErr := p.withLock(ctx, tenantID, func(ctx context.Context, exec sqlx.ExecerContext) error {
		for _, kind := range tenancy.Kinds() {
			table, _ := TableFor(kind)

			for _, statement := range table.Statements(p.db.Dialect, tenantID) {
				if _, execErr := exec.ExecContext(ctx, statement); execErr != nil {
					return fmt.Errorf("failed to create %s table: %w", kind, execErr)
				}
			}
		}

		return nil
	})
	if runErr != nil {
		logger.ErrorWithStack(runErr)
	}

	missing, verifyErr := p.MissingTables(ctx, tenantID)

	if runErr != nil || verifyErr != nil || len(missing) > 0 {
		err = &ProvisioningError{TenantID: tenantID, Missing: missing, Err: errors.Join(runErr, verifyErr)}

		log.Error().Err(err).Int64("tenant_id", tenantID.Int64()).Msg("tenant provisioning incomplete")

		return err
	}

	log.Info().Int64("tenant_id", tenantID.Int64()).Str("driver", p.db.Dialect.Name()).Msg("tenant tables provisioned")

	return nil
}

func (p *provisioner) TableExists(ctx context.Context, tenantID tenancy.TenantID, kind tenancy.Kind) (exists bool, err error) {
	ctx, scope := p.otel.NewScope(ctx, constant.OtelProvisionerScopeName, constant.OtelProvisionerScopeName+".TableExists")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if err = tenantID.Validate(); err != nil {
		return false, err
	}

	if !kind.Valid() {
		return false, fmt.Errorf("%w: %d", tenancy.ErrUnknownKind, kind)
	}

	query := p.db.Write.Rebind(p.db.Dialect.TableExistsQuery())
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	if err = p.db.Write.GetContext(ctx, &exists, query, tenancy.TableName(tenantID, kind)); err != nil {
		return false, fmt.Errorf("failed to query catalog for %s: %w", kind, err)
	}

	return exists, nil
}

func (p *provisioner) MissingTables(ctx context.Context, tenantID tenancy.TenantID) ([]tenancy.Kind, error) {
	ctx, scope := p.otel.NewScope(ctx, constant.OtelProvisionerScopeName, constant.OtelProvisionerScopeName+".MissingTables")
	defer scope.End()

	missing := []tenancy.Kind{}

	for _, kind := range tenancy.Kinds() {
		exists, err := p.TableExists(ctx, tenantID, kind)
		if err != nil {
			scope.TraceError(err)

			return nil, err
		}

		if !exists {
			missing = append(missing, kind)
		}
	}

	return missing, nil
}

func (p *provisioner) AllTablesPresent(ctx context.Context, tenantID tenancy.TenantID) (bool, error) {
	missing, err := p.MissingTables(ctx, tenantID)
	if err != nil {
		return false, err
	}

	return len(missing) == 0, nil
}

func (p *provisioner) DropTenant(ctx context.Context, tenantID tenancy.TenantID) (err error) {
	ctx, scope := p.otel.NewScope(ctx, constant.OtelProvisionerScopeName, constant.OtelProvisionerScopeName+".DropTenant")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if err = tenantID.Validate(); err != nil {
		return err
	}

	kinds := tenancy.Kinds()
	slices.Reverse(kinds)

	err = p.withLock(ctx, tenantID, func(ctx context.Context, exec sqlx.ExecerContext) error {
		for _, kind := range kinds {
			if _, execErr := exec.ExecContext(ctx, "DROP TABLE IF EXISTS "+tenancy.TableName(tenantID, kind)); execErr != nil {
				return fmt.Errorf("failed to drop %s table: %w", kind, execErr)
			}
		}

		return nil
	})
	if err != nil {
		logger.ErrorWithStack(err)

		return err
	}

	log.Warn().Int64("tenant_id", tenantID.Int64()).Msg("tenant tables dropped")

	return nil
}

func (p *provisioner) withLock(ctx context.Context, tenantID tenancy.TenantID, fn database.LockedFunc) error {
	if !p.lock {
		return database.NoLock(ctx, p.db.Write, fn)
	}

	return p.db.Dialect.WithLock(ctx, p.db.Write, tenantID.Int64(), p.lockTimeout, fn) //nolint:wrapcheck
}
