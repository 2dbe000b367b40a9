package repository

import (
	"context"
	"errors"
	"fmt"

	"pgms/infras/database"
	"pgms/infras/otel"
	"pgms/internal/tenancy"
	"pgms/shared"
	"pgms/shared/constant"
	"pgms/shared/dto"
	"pgms/shared/failure"

	"github.com/rs/zerolog/log"
)

// Table is a handle on a fixed, globally shared table.
type Table[T any, PT Entity[T]] struct {
	engine *engine[T, PT]
	table  string
}

func NewTable[T any, PT Entity[T]](entity, table string, db *database.Connection, otl otel.Otel) Table[T, PT] {
	return Table[T, PT]{
		engine: newEngine[T, PT](entity, db, otl),
		table:  table,
	}
}

func (t *Table[T, PT]) Insert(ctx context.Context, model PT) error {
	return t.duplicate(t.engine.insert(ctx, t.table, model))
}

// Update returns NotFoundError when the row is gone.
func (t *Table[T, PT]) Update(ctx context.Context, model PT) error {
	return t.duplicate(t.engine.update(ctx, t.table, model))
}

func (t *Table[T, PT]) duplicate(err error) error {
	if err != nil && t.engine.db.Dialect.IsUniqueViolation(err) {
		return fmt.Errorf("%w: %w", &failure.DuplicateError{Entity: t.engine.entity}, err)
	}

	return err
}

// UpdateFields applies a partial update to the rows matched by filter.
func (t *Table[T, PT]) UpdateFields(ctx context.Context, fields map[string]any, filter dto.FilterGroup) (int64, error) {
	affected, err := t.engine.updateFields(ctx, t.table, fields, filter)

	return affected, t.duplicate(err)
}

// Get returns nil when no row matches.
func (t *Table[T, PT]) Get(ctx context.Context, filter dto.FilterGroup) (PT, error) {
	return t.engine.get(ctx, t.table, filter)
}

func (t *Table[T, PT]) GetByID(ctx context.Context, id int64) (PT, error) {
	model, err := t.engine.get(ctx, t.table, shared.FilterByID(id, constant.FieldID, ""))
	if err != nil {
		return nil, err
	}

	if model == nil {
		return nil, &failure.NotFoundError{Entity: t.engine.entity, ID: id}
	}

	return model, nil
}

func (t *Table[T, PT]) GetAll(ctx context.Context, params dto.QueryParams, filter dto.FilterGroup) ([]T, error) {
	return t.engine.getAll(ctx, t.table, params, filter)
}

func (t *Table[T, PT]) Count(ctx context.Context, filter dto.FilterGroup) (int, error) {
	return t.engine.count(ctx, t.table, filter)
}

func (t *Table[T, PT]) Exist(ctx context.Context, filter dto.FilterGroup) (bool, error) {
	return t.engine.exist(ctx, t.table, filter)
}

func (t *Table[T, PT]) Delete(ctx context.Context, filter dto.FilterGroup) (int64, error) {
	return t.engine.delete(ctx, t.table, filter)
}

// TableChecker reports whether a tenant table is present in the catalog.
type TableChecker interface {
	TableExists(ctx context.Context, tenantID tenancy.TenantID, kind tenancy.Kind) (bool, error)
}

// TenantTable is a handle on one entity kind across all tenants. Each call
// resolves the physical table from the tenant id it is given.
type TenantTable[T any, PT Entity[T]] struct {
	engine  *engine[T, PT]
	kind    tenancy.Kind
	checker TableChecker
}

func NewTenantTable[T any, PT Entity[T]](kind tenancy.Kind, db *database.Connection, otl otel.Otel, checker TableChecker) TenantTable[T, PT] {
	if !kind.Valid() {
		panic(fmt.Sprintf("repository: tenant table for %s", kind))
	}

	return TenantTable[T, PT]{
		engine:  newEngine[T, PT](kind.String(), db, otl),
		kind:    kind,
		checker: checker,
	}
}

func (t *TenantTable[T, PT]) Kind() tenancy.Kind {
	return t.kind
}

// Columns lists the mapped columns, used to validate caller supplied sort keys.
func (t *TenantTable[T, PT]) Columns() []string {
	return t.engine.codec.Columns()
}

func (t *TenantTable[T, PT]) tableName(tenantID tenancy.TenantID) (string, error) {
	if err := tenantID.Validate(); err != nil {
		return "", err
	}

	return tenancy.TableName(tenantID, t.kind), nil
}

// resolveError turns a failed statement into SchemaMissingError when the
// tenant's table is absent from the catalog.
func (t *TenantTable[T, PT]) resolveError(ctx context.Context, tenantID tenancy.TenantID, err error) error {
	if err == nil {
		return nil
	}

	var notFound *failure.NotFoundError
	if errors.As(err, &notFound) || errors.Is(err, errRequiredFilter) || errors.Is(err, errUnknownColumn) {
		return err
	}

	if t.engine.db.Dialect.IsUniqueViolation(err) {
		return fmt.Errorf("%w: %w", &failure.DuplicateError{Entity: t.kind.String()}, err)
	}

	if t.checker == nil || ctx.Err() != nil {
		return err
	}

	exists, checkErr := t.checker.TableExists(ctx, tenantID, t.kind)
	if checkErr != nil {
		log.Warn().Err(checkErr).Int64("tenant_id", tenantID.Int64()).Str("kind", t.kind.String()).Msg("failed to verify tenant table after statement error")

		return err
	}

	if !exists {
		return &tenancy.SchemaMissingError{TenantID: tenantID, Kind: t.kind, Err: err}
	}

	return err
}

// FindAll returns every row ordered by id.
func (t *TenantTable[T, PT]) FindAll(ctx context.Context, tenantID tenancy.TenantID) ([]T, error) {
	return t.FindWhere(ctx, tenantID, dto.QueryParams{}, dto.FilterGroup{})
}

// FindWhere returns the rows matching filter, sorted and paginated by params.
func (t *TenantTable[T, PT]) FindWhere(ctx context.Context, tenantID tenancy.TenantID, params dto.QueryParams, filter dto.FilterGroup) ([]T, error) {
	ctx, scope := t.engine.otel.NewScope(ctx, constant.OtelRepositoryScopeName, t.engine.spanName("FindWhere"))
	defer scope.End()

	scope.SetAttribute(constant.OtelTenantAttributeKey, tenantID.Int64())

	table, err := t.tableName(tenantID)
	if err != nil {
		return nil, err
	}

	models, err := t.engine.getAll(ctx, table, params, filter)

	return models, t.resolveError(ctx, tenantID, err)
}

// FindByID returns NotFoundError when the row does not exist.
func (t *TenantTable[T, PT]) FindByID(ctx context.Context, tenantID tenancy.TenantID, id int64) (PT, error) {
	model, found, err := t.FindOne(ctx, tenantID, shared.FilterByID(id, constant.FieldID, ""))
	if err != nil {
		return nil, err
	}

	if !found {
		return nil, &failure.NotFoundError{Entity: t.kind.String(), ID: id}
	}

	return model, nil
}

func (t *TenantTable[T, PT]) FindOne(ctx context.Context, tenantID tenancy.TenantID, filter dto.FilterGroup) (PT, bool, error) {
	ctx, scope := t.engine.otel.NewScope(ctx, constant.OtelRepositoryScopeName, t.engine.spanName("FindOne"))
	defer scope.End()

	scope.SetAttribute(constant.OtelTenantAttributeKey, tenantID.Int64())

	table, err := t.tableName(tenantID)
	if err != nil {
		return nil, false, err
	}

	model, err := t.engine.get(ctx, table, filter)
	if err != nil {
		return nil, false, t.resolveError(ctx, tenantID, err)
	}

	return model, model != nil, nil
}

func (t *TenantTable[T, PT]) Count(ctx context.Context, tenantID tenancy.TenantID, filter dto.FilterGroup) (int, error) {
	table, err := t.tableName(tenantID)
	if err != nil {
		return 0, err
	}

	count, err := t.engine.count(ctx, table, filter)

	return count, t.resolveError(ctx, tenantID, err)
}

func (t *TenantTable[T, PT]) Exist(ctx context.Context, tenantID tenancy.TenantID, filter dto.FilterGroup) (bool, error) {
	table, err := t.tableName(tenantID)
	if err != nil {
		return false, err
	}

	exist, err := t.engine.exist(ctx, table, filter)

	return exist, t.resolveError(ctx, tenantID, err)
}

// Save inserts model when it has no id yet and updates it otherwise. The
// returned value is model itself, carrying the generated id and defaults.
func (t *TenantTable[T, PT]) Save(ctx context.Context, tenantID tenancy.TenantID, model PT) (PT, error) {
	ctx, scope := t.engine.otel.NewScope(ctx, constant.OtelRepositoryScopeName, t.engine.spanName("Save"))
	defer scope.End()

	scope.SetAttribute(constant.OtelTenantAttributeKey, tenantID.Int64())

	table, err := t.tableName(tenantID)
	if err != nil {
		return nil, err
	}

	if IsNew[T](model) {
		err = t.engine.insert(ctx, table, model)
	} else {
		err = t.engine.update(ctx, table, model)
	}

	if err != nil {
		scope.TraceError(err)

		return nil, t.resolveError(ctx, tenantID, err)
	}

	return model, nil
}

// UpdateFields applies a partial update and reports how many rows matched.
func (t *TenantTable[T, PT]) UpdateFields(ctx context.Context, tenantID tenancy.TenantID, fields map[string]any, filter dto.FilterGroup) (int64, error) {
	table, err := t.tableName(tenantID)
	if err != nil {
		return 0, err
	}

	affected, err := t.engine.updateFields(ctx, table, fields, filter)

	return affected, t.resolveError(ctx, tenantID, err)
}

// DeleteByID removes the row if present. Dependent rows are left to the caller.
func (t *TenantTable[T, PT]) DeleteByID(ctx context.Context, tenantID tenancy.TenantID, id int64) error {
	ctx, scope := t.engine.otel.NewScope(ctx, constant.OtelRepositoryScopeName, t.engine.spanName("DeleteByID"))
	defer scope.End()

	scope.SetAttribute(constant.OtelTenantAttributeKey, tenantID.Int64())

	table, err := t.tableName(tenantID)
	if err != nil {
		return err
	}

	_, err = t.engine.delete(ctx, table, shared.FilterByID(id, constant.FieldID, ""))

	return t.resolveError(ctx, tenantID, err)
}
