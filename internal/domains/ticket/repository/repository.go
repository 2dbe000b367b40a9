package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"

	"pgms/infras/database"
	"pgms/infras/otel"
	"pgms/internal/domains/ticket/model"
	gDto "pgms/shared/dto"
	gRepo "pgms/shared/repository"
)

type Ticket interface {
	Insert(ctx context.Context, ticket *model.Ticket) error
	Update(ctx context.Context, ticket *model.Ticket) error
	FindByID(ctx context.Context, id int64) (*model.Ticket, error)
	// FindByAdmin lists one account's tickets, newest first.
	FindByAdmin(ctx context.Context, adminID int64) ([]model.Ticket, error)
	// FindAll lists every ticket matching filter, newest first.
	FindAll(ctx context.Context, filter gDto.FilterGroup) ([]model.Ticket, error)
}

type repositoryImpl struct {
	table gRepo.Table[model.Ticket, *model.Ticket]
}

func New(db *database.Connection, otel otel.Otel) Ticket {
	return &repositoryImpl{
		table: gRepo.NewTable[model.Ticket](model.EntityName, model.TableName, db, otel),
	}
}

var newestFirst = gDto.QueryParams{SortBy: model.FieldCreatedAt, SortDir: gDto.SortDirDesc}

func (r *repositoryImpl) Insert(ctx context.Context, ticket *model.Ticket) error {
	return r.table.Insert(ctx, ticket)
}

func (r *repositoryImpl) Update(ctx context.Context, ticket *model.Ticket) error {
	return r.table.Update(ctx, ticket)
}

func (r *repositoryImpl) FindByID(ctx context.Context, id int64) (*model.Ticket, error) {
	return r.table.GetByID(ctx, id)
}

func (r *repositoryImpl) FindByAdmin(ctx context.Context, adminID int64) ([]model.Ticket, error) {
	return r.table.GetAll(ctx, newestFirst, gDto.FilterGroup{
		Filters: []any{
			gDto.Filter{Field: model.FieldAdminID, Value: adminID, Operator: gDto.FilterOperatorEq},
		},
	})
}

func (r *repositoryImpl) FindAll(ctx context.Context, filter gDto.FilterGroup) ([]model.Ticket, error) {
	return r.table.GetAll(ctx, newestFirst, filter)
}
