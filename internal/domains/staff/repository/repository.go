package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"

	"pgms/infras/database"
	"pgms/infras/otel"
	"pgms/internal/domains/staff/model"
	"pgms/internal/tenancy"
	gDto "pgms/shared/dto"
	gRepo "pgms/shared/repository"
)

type Staff interface {
	FindAll(ctx context.Context, tenantID tenancy.TenantID) ([]model.Staff, error)
	FindWhere(ctx context.Context, tenantID tenancy.TenantID, params gDto.QueryParams, filter gDto.FilterGroup) ([]model.Staff, error)
	FindByID(ctx context.Context, tenantID tenancy.TenantID, id int64) (*model.Staff, error)
	FindByUsername(ctx context.Context, tenantID tenancy.TenantID, username string) (*model.Staff, bool, error)
	FindByEmail(ctx context.Context, tenantID tenancy.TenantID, email string) (*model.Staff, bool, error)
	FindByRole(ctx context.Context, tenantID tenancy.TenantID, role string) ([]model.Staff, error)
	Count(ctx context.Context, tenantID tenancy.TenantID, filter gDto.FilterGroup) (int, error)
	Save(ctx context.Context, tenantID tenancy.TenantID, staff *model.Staff) (*model.Staff, error)
	DeleteByID(ctx context.Context, tenantID tenancy.TenantID, id int64) error
}

type repositoryImpl struct {
	gRepo.TenantTable[model.Staff, *model.Staff]
}

func New(db *database.Connection, otel otel.Otel, checker gRepo.TableChecker) Staff {
	return &repositoryImpl{
		TenantTable: gRepo.NewTenantTable[model.Staff](tenancy.KindStaff, db, otel, checker),
	}
}

func byField(field string, value any) gDto.FilterGroup {
	return gDto.FilterGroup{
		Filters: []any{
			gDto.Filter{Field: field, Value: value, Operator: gDto.FilterOperatorEq},
		},
	}
}

func (r *repositoryImpl) FindByUsername(ctx context.Context, tenantID tenancy.TenantID, username string) (*model.Staff, bool, error) {
	return r.FindOne(ctx, tenantID, byField(model.FieldUsername, username))
}

func (r *repositoryImpl) FindByEmail(ctx context.Context, tenantID tenancy.TenantID, email string) (*model.Staff, bool, error) {
	return r.FindOne(ctx, tenantID, byField(model.FieldEmail, email))
}

func (r *repositoryImpl) FindByRole(ctx context.Context, tenantID tenancy.TenantID, role string) ([]model.Staff, error) {
	return r.FindWhere(ctx, tenantID, gDto.QueryParams{}, byField(model.FieldRole, role))
}
