package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"

	"pgms/infras/database"
	"pgms/infras/otel"
	"pgms/internal/domains/occupant/model"
	"pgms/internal/tenancy"
	gDto "pgms/shared/dto"
	gRepo "pgms/shared/repository"
)

type Occupant interface {
	FindAll(ctx context.Context, tenantID tenancy.TenantID) ([]model.Occupant, error)
	FindWhere(ctx context.Context, tenantID tenancy.TenantID, params gDto.QueryParams, filter gDto.FilterGroup) ([]model.Occupant, error)
	FindByID(ctx context.Context, tenantID tenancy.TenantID, id int64) (*model.Occupant, error)
	FindByPhone(ctx context.Context, tenantID tenancy.TenantID, phone string) (*model.Occupant, bool, error)
	FindByEmail(ctx context.Context, tenantID tenancy.TenantID, email string) ([]model.Occupant, error)
	FindByRoomNumber(ctx context.Context, tenantID tenancy.TenantID, roomNumber string) ([]model.Occupant, error)
	FindByStatus(ctx context.Context, tenantID tenancy.TenantID, status string) ([]model.Occupant, error)
	SearchByName(ctx context.Context, tenantID tenancy.TenantID, name string) ([]model.Occupant, error)
	Count(ctx context.Context, tenantID tenancy.TenantID, filter gDto.FilterGroup) (int, error)
	Save(ctx context.Context, tenantID tenancy.TenantID, occupant *model.Occupant) (*model.Occupant, error)
	DeleteByID(ctx context.Context, tenantID tenancy.TenantID, id int64) error
}

type repositoryImpl struct {
	gRepo.TenantTable[model.Occupant, *model.Occupant]
}

func New(db *database.Connection, otel otel.Otel, checker gRepo.TableChecker) Occupant {
	return &repositoryImpl{
		TenantTable: gRepo.NewTenantTable[model.Occupant](tenancy.KindOccupants, db, otel, checker),
	}
}

func filterBy(field, operator string, value any) gDto.FilterGroup {
	return gDto.FilterGroup{
		Filters: []any{
			gDto.Filter{Field: field, Value: value, Operator: operator},
		},
	}
}

func (r *repositoryImpl) FindByPhone(ctx context.Context, tenantID tenancy.TenantID, phone string) (*model.Occupant, bool, error) {
	return r.FindOne(ctx, tenantID, filterBy(model.FieldPhone, gDto.FilterOperatorEq, phone))
}

// FindByEmail may return several occupants; emails are not unique.
func (r *repositoryImpl) FindByEmail(ctx context.Context, tenantID tenancy.TenantID, email string) ([]model.Occupant, error) {
	return r.FindWhere(ctx, tenantID, gDto.QueryParams{}, filterBy(model.FieldEmail, gDto.FilterOperatorEq, email))
}

func (r *repositoryImpl) FindByRoomNumber(ctx context.Context, tenantID tenancy.TenantID, roomNumber string) ([]model.Occupant, error) {
	return r.FindWhere(ctx, tenantID, gDto.QueryParams{}, filterBy(model.FieldRoomNumber, gDto.FilterOperatorEq, roomNumber))
}

func (r *repositoryImpl) FindByStatus(ctx context.Context, tenantID tenancy.TenantID, status string) ([]model.Occupant, error) {
	return r.FindWhere(ctx, tenantID, gDto.QueryParams{}, filterBy(model.FieldStatus, gDto.FilterOperatorEq, status))
}

// SearchByName matches any part of the name, ignoring case.
func (r *repositoryImpl) SearchByName(ctx context.Context, tenantID tenancy.TenantID, name string) ([]model.Occupant, error) {
	return r.FindWhere(ctx, tenantID, gDto.QueryParams{}, filterBy(model.FieldName, gDto.FilterOperatorLike, name))
}
