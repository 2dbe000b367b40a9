package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"

	"pgms/infras/database"
	"pgms/infras/otel"
	"pgms/internal/domains/payment/model"
	"pgms/internal/tenancy"
	gDto "pgms/shared/dto"
	gModel "pgms/shared/model"
	gRepo "pgms/shared/repository"
)

type Payment interface {
	FindAll(ctx context.Context, tenantID tenancy.TenantID) ([]model.Payment, error)
	FindWhere(ctx context.Context, tenantID tenancy.TenantID, params gDto.QueryParams, filter gDto.FilterGroup) ([]model.Payment, error)
	FindByID(ctx context.Context, tenantID tenancy.TenantID, id int64) (*model.Payment, error)
	FindByPayer(ctx context.Context, tenantID tenancy.TenantID, payerName string) ([]model.Payment, error)
	FindByDateRange(ctx context.Context, tenantID tenancy.TenantID, start, end gModel.Date) ([]model.Payment, error)
	FindByMethod(ctx context.Context, tenantID tenancy.TenantID, method string) ([]model.Payment, error)
	FindByStatus(ctx context.Context, tenantID tenancy.TenantID, status string) ([]model.Payment, error)
	FindByOccupant(ctx context.Context, tenantID tenancy.TenantID, occupantID int64) ([]model.Payment, error)
	Count(ctx context.Context, tenantID tenancy.TenantID, filter gDto.FilterGroup) (int, error)
	Save(ctx context.Context, tenantID tenancy.TenantID, payment *model.Payment) (*model.Payment, error)
	DeleteByID(ctx context.Context, tenantID tenancy.TenantID, id int64) error
}

type repositoryImpl struct {
	gRepo.TenantTable[model.Payment, *model.Payment]
}

func New(db *database.Connection, otel otel.Otel, checker gRepo.TableChecker) Payment {
	return &repositoryImpl{
		TenantTable: gRepo.NewTenantTable[model.Payment](tenancy.KindPayments, db, otel, checker),
	}
}

func byField(field string, value any) gDto.FilterGroup {
	return gDto.FilterGroup{
		Filters: []any{
			gDto.Filter{Field: field, Value: value, Operator: gDto.FilterOperatorEq},
		},
	}
}

// newestFirst orders by payment date, latest first.
var newestFirst = gDto.QueryParams{SortBy: model.FieldPaymentDate, SortDir: gDto.SortDirDesc}

func (r *repositoryImpl) FindByPayer(ctx context.Context, tenantID tenancy.TenantID, payerName string) ([]model.Payment, error) {
	return r.FindWhere(ctx, tenantID, newestFirst, byField(model.FieldPayerName, payerName))
}

// FindByDateRange includes payments made on both start and end.
func (r *repositoryImpl) FindByDateRange(ctx context.Context, tenantID tenancy.TenantID, start, end gModel.Date) ([]model.Payment, error) {
	filter := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{ArgName: "start_date", Field: model.FieldPaymentDate, Value: start, Operator: gDto.FilterOperatorGreaterEq},
			gDto.Filter{ArgName: "end_date", Field: model.FieldPaymentDate, Value: end, Operator: gDto.FilterOperatorLessEq},
		},
	}

	return r.FindWhere(ctx, tenantID, newestFirst, filter)
}

func (r *repositoryImpl) FindByMethod(ctx context.Context, tenantID tenancy.TenantID, method string) ([]model.Payment, error) {
	return r.FindWhere(ctx, tenantID, newestFirst, byField(model.FieldMethod, method))
}

func (r *repositoryImpl) FindByStatus(ctx context.Context, tenantID tenancy.TenantID, status string) ([]model.Payment, error) {
	return r.FindWhere(ctx, tenantID, newestFirst, byField(model.FieldStatus, status))
}

func (r *repositoryImpl) FindByOccupant(ctx context.Context, tenantID tenancy.TenantID, occupantID int64) ([]model.Payment, error) {
	return r.FindWhere(ctx, tenantID, newestFirst, byField(model.FieldOccupantID, occupantID))
}
