package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"maps"
	"slices"
	"strings"
	"time"

	"pgms/infras/database"
	"pgms/infras/otel"
	"pgms/shared/constant"
	"pgms/shared/dto"
	"pgms/shared/failure"
	"pgms/shared/logger"
	"pgms/shared/timezone"
)

var (
	errRequiredFilter = errors.New("required filter")
	errUnknownColumn  = errors.New("unknown column")
)

// Entity is satisfied by the pointer type of every stored model.
type Entity[T any] interface {
	*T
	PrimaryKey() int64
	SetPrimaryKey(id int64)
	// BeforeInsert fills defaults and timestamps for a new row.
	BeforeInsert(now time.Time)
	// BeforeUpdate refreshes the update timestamp.
	BeforeUpdate(now time.Time)
}

// IsNew reports whether model has not been stored yet.
func IsNew[T any, PT Entity[T]](model PT) bool {
	return model.PrimaryKey() == 0
}

type engine[T any, PT Entity[T]] struct {
	db     *database.Connection
	otel   otel.Otel
	entity string
	codec  *Codec[T]
	now    func() time.Time
}

func newEngine[T any, PT Entity[T]](entity string, db *database.Connection, otl otel.Otel) *engine[T, PT] {
	return &engine[T, PT]{
		db:     db,
		otel:   otl,
		entity: entity,
		codec:  NewCodec[T](),
		now:    timezone.Now,
	}
}

func (e *engine[T, PT]) spanName(method string) string {
	return fmt.Sprintf("%s.%s.%s", constant.OtelRepositoryScopeName, e.entity, method)
}

func (e *engine[T, PT]) getAll(ctx context.Context, table string, params dto.QueryParams, filter dto.FilterGroup) ([]T, error) {
	ctx, scope := e.otel.NewScope(ctx, constant.OtelRepositoryScopeName, e.spanName("getAll"))
	defer scope.End()

	where, args := buildWhereClause(filter)

	var pagination string

	if params.Limit > 0 {
		args["limit"] = params.Limit
		pagination = "LIMIT :limit"

		if offset := params.Offset(); offset > 0 {
			args["offset"] = offset
			pagination += " OFFSET :offset"
		}
	}

	query := compose("SELECT", e.selectColumns(), "FROM", table, where, e.ordering(params), pagination)
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	bound, boundArgs, err := e.db.Read.BindNamed(query, args)
	if err != nil {
		scope.TraceError(err)

		return nil, fmt.Errorf("failed to bind query (%s): %w", e.entity, err)
	}

	models := []T{}

	err = e.db.Read.SelectContext(ctx, &models, bound, boundArgs...)
	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return nil, fmt.Errorf("failed to get all data (%s): %w", e.entity, err)
	}

	return models, nil
}

// get returns nil without error when no row matches.
func (e *engine[T, PT]) get(ctx context.Context, table string, filter dto.FilterGroup) (PT, error) {
	ctx, scope := e.otel.NewScope(ctx, constant.OtelRepositoryScopeName, e.spanName("get"))
	defer scope.End()

	where, args := buildWhereClause(filter)
	if where == "" {
		return nil, errRequiredFilter
	}

	query := compose("SELECT", e.selectColumns(), "FROM", table, where, "LIMIT 1")
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	bound, boundArgs, err := e.db.Read.BindNamed(query, args)
	if err != nil {
		scope.TraceError(err)

		return nil, fmt.Errorf("failed to bind query (%s): %w", e.entity, err)
	}

	var model T

	err = e.db.Read.GetContext(ctx, &model, bound, boundArgs...)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}

	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return nil, fmt.Errorf("failed to get data (%s): %w", e.entity, err)
	}

	return &model, nil
}

func (e *engine[T, PT]) count(ctx context.Context, table string, filter dto.FilterGroup) (int, error) {
	ctx, scope := e.otel.NewScope(ctx, constant.OtelRepositoryScopeName, e.spanName("count"))
	defer scope.End()

	where, args := buildWhereClause(filter)

	query := compose("SELECT COUNT(*) FROM", table, where)
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	bound, boundArgs, err := e.db.Read.BindNamed(query, args)
	if err != nil {
		scope.TraceError(err)

		return 0, fmt.Errorf("failed to bind query (%s): %w", e.entity, err)
	}

	var count int

	err = e.db.Read.GetContext(ctx, &count, bound, boundArgs...)
	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return 0, fmt.Errorf("failed to count data (%s): %w", e.entity, err)
	}

	return count, nil
}

func (e *engine[T, PT]) exist(ctx context.Context, table string, filter dto.FilterGroup) (bool, error) {
	ctx, scope := e.otel.NewScope(ctx, constant.OtelRepositoryScopeName, e.spanName("exist"))
	defer scope.End()

	where, args := buildWhereClause(filter)
	if where == "" {
		return false, errRequiredFilter
	}

	query := fmt.Sprintf("SELECT EXISTS (SELECT 1 FROM %s %s)", table, where)
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	bound, boundArgs, err := e.db.Read.BindNamed(query, args)
	if err != nil {
		scope.TraceError(err)

		return false, fmt.Errorf("failed to bind query (%s): %w", e.entity, err)
	}

	exist := false

	err = e.db.Read.GetContext(ctx, &exist, bound, boundArgs...)
	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return false, fmt.Errorf("failed to check exist data (%s): %w", e.entity, err)
	}

	return exist, nil
}

// insert stores model and sets its generated key in the same round trip.
func (e *engine[T, PT]) insert(ctx context.Context, table string, model PT) error {
	ctx, scope := e.otel.NewScope(ctx, constant.OtelRepositoryScopeName, e.spanName("insert"))
	defer scope.End()

	model.BeforeInsert(e.now())

	columns := e.codec.InsertColumns()
	placeholders := strings.TrimSuffix(strings.Repeat("?, ", len(columns)), ", ")
	args := e.codec.Bind((*T)(model), columns)

	query := fmt.Sprintf("INSERT INTO %s (%s) VALUES (%s)", table, strings.Join(columns, ", "), placeholders)

	var id int64

	if e.db.Dialect.Returning() {
		query += " RETURNING " + constant.FieldID
		scope.SetAttribute(constant.OtelQueryAttributeKey, query)

		err := e.db.Write.QueryRowxContext(ctx, e.db.Write.Rebind(query), args...).Scan(&id)
		if err != nil {
			logger.ErrorWithStack(err)
			scope.TraceError(err)

			return fmt.Errorf("failed to insert data (%s): %w", e.entity, err)
		}
	} else {
		scope.SetAttribute(constant.OtelQueryAttributeKey, query)

		result, err := e.db.Write.ExecContext(ctx, e.db.Write.Rebind(query), args...)
		if err != nil {
			logger.ErrorWithStack(err)
			scope.TraceError(err)

			return fmt.Errorf("failed to insert data (%s): %w", e.entity, err)
		}

		id, err = result.LastInsertId()
		if err != nil {
			scope.TraceError(err)

			return fmt.Errorf("failed to read generated id (%s): %w", e.entity, err)
		}
	}

	model.SetPrimaryKey(id)

	return nil
}

// update writes every mutable column of model.
func (e *engine[T, PT]) update(ctx context.Context, table string, model PT) error {
	ctx, scope := e.otel.NewScope(ctx, constant.OtelRepositoryScopeName, e.spanName("update"))
	defer scope.End()

	model.BeforeUpdate(e.now())

	columns := e.codec.UpdateColumns()
	assignments := make([]string, len(columns))

	for i, column := range columns {
		assignments[i] = column + " = ?"
	}

	query := fmt.Sprintf("UPDATE %s SET %s WHERE %s = ?", table, strings.Join(assignments, ", "), constant.FieldID)
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	args := append(e.codec.Bind((*T)(model), columns), model.PrimaryKey())

	result, err := e.db.Write.ExecContext(ctx, e.db.Write.Rebind(query), args...)
	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return fmt.Errorf("failed to update data (%s): %w", e.entity, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		scope.TraceError(err)

		return fmt.Errorf("failed to read affected rows (%s): %w", e.entity, err)
	}

	if affected == 0 {
		return &failure.NotFoundError{Entity: e.entity, ID: model.PrimaryKey()}
	}

	return nil
}

func (e *engine[T, PT]) updateFields(ctx context.Context, table string, fields map[string]any, filter dto.FilterGroup) (int64, error) {
	ctx, scope := e.otel.NewScope(ctx, constant.OtelRepositoryScopeName, e.spanName("updateFields"))
	defer scope.End()

	where, args := buildWhereClause(filter)
	if where == "" {
		return 0, errRequiredFilter
	}

	columns := slices.Sorted(maps.Keys(fields))
	assignments := make([]string, 0, len(columns))

	for _, column := range columns {
		if column == constant.FieldID || !e.codec.HasColumn(column) {
			return 0, fmt.Errorf("%w: %s", errUnknownColumn, column)
		}

		assignments = append(assignments, fmt.Sprintf("%s = :set_%s", column, column))
		args["set_"+column] = fields[column]
	}

	query := compose("UPDATE", table, "SET", strings.Join(assignments, ", "), where)
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	result, err := e.db.Write.NamedExecContext(ctx, query, args)
	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return 0, fmt.Errorf("failed to update data (%s): %w", e.entity, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to read affected rows (%s): %w", e.entity, err)
	}

	return affected, nil
}

func (e *engine[T, PT]) delete(ctx context.Context, table string, filter dto.FilterGroup) (int64, error) {
	ctx, scope := e.otel.NewScope(ctx, constant.OtelRepositoryScopeName, e.spanName("delete"))
	defer scope.End()

	where, args := buildWhereClause(filter)
	if where == "" {
		return 0, errRequiredFilter
	}

	query := compose("DELETE FROM", table, where)
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	result, err := e.db.Write.NamedExecContext(ctx, query, args)
	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return 0, fmt.Errorf("failed to delete data (%s): %w", e.entity, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to read affected rows (%s): %w", e.entity, err)
	}

	return affected, nil
}

func (e *engine[T, PT]) selectColumns() string {
	return strings.Join(e.codec.Columns(), ", ")
}

// ordering only accepts mapped columns; anything else falls back to the key.
func (e *engine[T, PT]) ordering(params dto.QueryParams) string {
	column := constant.DefaultValueSortBy
	if params.SortBy != "" && e.codec.HasColumn(params.SortBy) {
		column = params.SortBy
	}

	direction := dto.SortDirAsc
	if strings.EqualFold(params.SortDir, dto.SortDirDesc) {
		direction = dto.SortDirDesc
	}

	ordering := fmt.Sprintf("ORDER BY %s %s", column, direction)
	if column != constant.FieldID {
		ordering += ", " + constant.FieldID + " " + direction
	}

	return ordering
}

func buildWhereClause(filter dto.FilterGroup) (string, map[string]any) {
	where, args := filter.GetWhereClause()

	if where == "" {
		return where, map[string]any{}
	}

	return "WHERE " + strings.TrimSpace(where), args
}

func compose(parts ...string) string {
	return strings.Join(slices.DeleteFunc(parts, func(part string) bool { return part == "" }), " ")
}
