package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"

	"pgms/infras/database"
	"pgms/infras/otel"
	"pgms/internal/domains/room/model"
	"pgms/internal/tenancy"
	gDto "pgms/shared/dto"
	gRepo "pgms/shared/repository"
)

type Room interface {
	FindAll(ctx context.Context, tenantID tenancy.TenantID) ([]model.Room, error)
	FindWhere(ctx context.Context, tenantID tenancy.TenantID, params gDto.QueryParams, filter gDto.FilterGroup) ([]model.Room, error)
	FindByID(ctx context.Context, tenantID tenancy.TenantID, id int64) (*model.Room, error)
	FindByRoomNumber(ctx context.Context, tenantID tenancy.TenantID, roomNumber string) (*model.Room, bool, error)
	FindByStatus(ctx context.Context, tenantID tenancy.TenantID, status string) ([]model.Room, error)
	ExistsByRoomNumber(ctx context.Context, tenantID tenancy.TenantID, roomNumber string) (bool, error)
	Count(ctx context.Context, tenantID tenancy.TenantID, filter gDto.FilterGroup) (int, error)
	Save(ctx context.Context, tenantID tenancy.TenantID, room *model.Room) (*model.Room, error)
	DeleteByID(ctx context.Context, tenantID tenancy.TenantID, id int64) error
}

type repositoryImpl struct {
	gRepo.TenantTable[model.Room, *model.Room]
}

func New(db *database.Connection, otel otel.Otel, checker gRepo.TableChecker) Room {
	return &repositoryImpl{
		TenantTable: gRepo.NewTenantTable[model.Room](tenancy.KindRooms, db, otel, checker),
	}
}

func byField(field string, value any) gDto.FilterGroup {
	return gDto.FilterGroup{
		Filters: []any{
			gDto.Filter{Field: field, Value: value, Operator: gDto.FilterOperatorEq},
		},
	}
}

func (r *repositoryImpl) FindByRoomNumber(ctx context.Context, tenantID tenancy.TenantID, roomNumber string) (*model.Room, bool, error) {
	return r.FindOne(ctx, tenantID, byField(model.FieldRoomNumber, roomNumber))
}

func (r *repositoryImpl) FindByStatus(ctx context.Context, tenantID tenancy.TenantID, status string) ([]model.Room, error) {
	return r.FindWhere(ctx, tenantID, gDto.QueryParams{}, byField(model.FieldStatus, status))
}

func (r *repositoryImpl) ExistsByRoomNumber(ctx context.Context, tenantID tenancy.TenantID, roomNumber string) (bool, error) {
	return r.Exist(ctx, tenantID, byField(model.FieldRoomNumber, roomNumber))
}
