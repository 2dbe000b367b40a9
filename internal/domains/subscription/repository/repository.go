package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"

	"pgms/infras/database"
	"pgms/infras/otel"
	"pgms/internal/domains/subscription/model"
	"pgms/shared"
	gDto "pgms/shared/dto"
	"pgms/shared/failure"
	gRepo "pgms/shared/repository"
)

type Plan interface {
	Insert(ctx context.Context, plan *model.Plan) error
	Update(ctx context.Context, plan *model.Plan) error
	FindByID(ctx context.Context, id int64) (*model.Plan, error)
	FindByName(ctx context.Context, name string) (*model.Plan, bool, error)
	// FindAll lists plans by ascending duration, unpaginated.
	FindAll(ctx context.Context, activeOnly bool) ([]model.Plan, error)
	Delete(ctx context.Context, id int64) error
}

type repositoryImpl struct {
	table gRepo.Table[model.Plan, *model.Plan]
}

func New(db *database.Connection, otel otel.Otel) Plan {
	return &repositoryImpl{
		table: gRepo.NewTable[model.Plan](model.EntityName, model.TableName, db, otel),
	}
}

func byField(field string, value any) gDto.FilterGroup {
	return gDto.FilterGroup{
		Filters: []any{
			gDto.Filter{Field: field, Value: value, Operator: gDto.FilterOperatorEq},
		},
	}
}

func (r *repositoryImpl) Insert(ctx context.Context, plan *model.Plan) error {
	return r.table.Insert(ctx, plan)
}

func (r *repositoryImpl) Update(ctx context.Context, plan *model.Plan) error {
	return r.table.Update(ctx, plan)
}

func (r *repositoryImpl) FindByID(ctx context.Context, id int64) (*model.Plan, error) {
	return r.table.GetByID(ctx, id)
}

func (r *repositoryImpl) FindByName(ctx context.Context, name string) (*model.Plan, bool, error) {
	plan, err := r.table.Get(ctx, byField(model.FieldName, name))
	if err != nil {
		return nil, false, err
	}

	return plan, plan != nil, nil
}

func (r *repositoryImpl) FindAll(ctx context.Context, activeOnly bool) ([]model.Plan, error) {
	filter := gDto.FilterGroup{}
	if activeOnly {
		filter = byField(model.FieldActive, true)
	}

	return r.table.GetAll(ctx, gDto.QueryParams{SortBy: model.FieldDuration, SortDir: gDto.SortDirAsc}, filter)
}

func (r *repositoryImpl) Delete(ctx context.Context, id int64) error {
	affected, err := r.table.Delete(ctx, shared.FilterByID(id, model.FieldID, ""))
	if err != nil {
		return err
	}

	if affected == 0 {
		return &failure.NotFoundError{Entity: model.EntityName, ID: id}
	}

	return nil
}
