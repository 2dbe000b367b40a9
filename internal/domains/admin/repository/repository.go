package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"time"

	"pgms/infras/database"
	"pgms/infras/otel"
	"pgms/internal/domains/admin/model"
	"pgms/shared"
	"pgms/shared/constant"
	gDto "pgms/shared/dto"
	"pgms/shared/failure"
	gRepo "pgms/shared/repository"
	"pgms/shared/timezone"
)

type Admin interface {
	Insert(ctx context.Context, admin *model.Admin) error
	Update(ctx context.Context, admin *model.Admin) error
	FindByID(ctx context.Context, id int64) (*model.Admin, error)
	FindByEmail(ctx context.Context, email string) (*model.Admin, bool, error)
	FindByPhone(ctx context.Context, phone string) (*model.Admin, bool, error)
	FindAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup) ([]model.Admin, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	ExistsByPhone(ctx context.Context, phone string) (bool, error)
	SetFrozen(ctx context.Context, id int64, frozen bool) error
	SetLastLogin(ctx context.Context, id int64, at time.Time) error
	SetPassword(ctx context.Context, id int64, hashedPassword string) error
	SetSubscription(ctx context.Context, id int64, plan string, start, end time.Time) error
	Delete(ctx context.Context, id int64) error
}

type repositoryImpl struct {
	table gRepo.Table[model.Admin, *model.Admin]
}

func New(db *database.Connection, otel otel.Otel) Admin {
	return &repositoryImpl{
		table: gRepo.NewTable[model.Admin](model.EntityName, model.TableName, db, otel),
	}
}

func byField(field string, value any) gDto.FilterGroup {
	return gDto.FilterGroup{
		Filters: []any{
			gDto.Filter{Field: field, Value: value, Operator: gDto.FilterOperatorEq},
		},
	}
}

func (r *repositoryImpl) Insert(ctx context.Context, admin *model.Admin) error {
	return r.table.Insert(ctx, admin)
}

func (r *repositoryImpl) Update(ctx context.Context, admin *model.Admin) error {
	return r.table.Update(ctx, admin)
}

// FindByID returns NotFoundError when the account does not exist.
func (r *repositoryImpl) FindByID(ctx context.Context, id int64) (*model.Admin, error) {
	return r.table.GetByID(ctx, id)
}

func (r *repositoryImpl) findOne(ctx context.Context, filter gDto.FilterGroup) (*model.Admin, bool, error) {
	admin, err := r.table.Get(ctx, filter)
	if err != nil {
		return nil, false, err
	}

	return admin, admin != nil, nil
}

func (r *repositoryImpl) FindByEmail(ctx context.Context, email string) (*model.Admin, bool, error) {
	return r.findOne(ctx, byField(model.FieldEmail, email))
}

func (r *repositoryImpl) FindByPhone(ctx context.Context, phone string) (*model.Admin, bool, error) {
	return r.findOne(ctx, byField(model.FieldPhone, phone))
}

func (r *repositoryImpl) FindAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup) ([]model.Admin, error) {
	return r.table.GetAll(ctx, params, filter)
}

func (r *repositoryImpl) Count(ctx context.Context, filter gDto.FilterGroup) (int, error) {
	return r.table.Count(ctx, filter)
}

func (r *repositoryImpl) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	return r.table.Exist(ctx, byField(model.FieldEmail, email))
}

func (r *repositoryImpl) ExistsByPhone(ctx context.Context, phone string) (bool, error) {
	return r.table.Exist(ctx, byField(model.FieldPhone, phone))
}

func (r *repositoryImpl) setFields(ctx context.Context, id int64, fields map[string]any) error {
	affected, err := r.table.UpdateFields(ctx, fields, shared.FilterByID(id, model.FieldID, ""))
	if err != nil {
		return err
	}

	if affected == 0 {
		return &failure.NotFoundError{Entity: model.EntityName, ID: id}
	}

	return nil
}

func (r *repositoryImpl) SetFrozen(ctx context.Context, id int64, frozen bool) error {
	return r.setFields(ctx, id, map[string]any{
		model.FieldFrozen:       frozen,
		constant.FieldUpdatedAt: timezone.Now(),
	})
}

func (r *repositoryImpl) SetLastLogin(ctx context.Context, id int64, at time.Time) error {
	return r.setFields(ctx, id, map[string]any{model.FieldLastLogin: at})
}

type passwordFields struct {
	Password string `db:"password"`
}

func (r *repositoryImpl) SetPassword(ctx context.Context, id int64, hashedPassword string) error {
	return r.setFields(ctx, id, shared.TransformFields(passwordFields{Password: hashedPassword}))
}

func (r *repositoryImpl) SetSubscription(ctx context.Context, id int64, plan string, start, end time.Time) error {
	return r.setFields(ctx, id, map[string]any{
		model.FieldSubscriptionPlan:      plan,
		model.FieldSubscriptionStartDate: start,
		model.FieldSubscriptionEndDate:   end,
		constant.FieldUpdatedAt:          timezone.Now(),
	})
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
