package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"

	"pgms/infras/database"
	"pgms/infras/otel"
	"pgms/internal/domains/appointment/model"
	gDto "pgms/shared/dto"
	"pgms/shared/failure"
	gRepo "pgms/shared/repository"
)

// Appointment reads and writes appointments of one hostel at a time. A row of
// another hostel is reported as not found.
type Appointment interface {
	Insert(ctx context.Context, appointment *model.Appointment) error
	Update(ctx context.Context, appointment *model.Appointment) error
	FindByID(ctx context.Context, adminID, id int64) (*model.Appointment, error)
	// FindByAdmin lists a hostel's appointments, soonest first.
	FindByAdmin(ctx context.Context, adminID int64, filter gDto.FilterGroup) ([]model.Appointment, error)
	Delete(ctx context.Context, adminID, id int64) error
}

type repositoryImpl struct {
	table gRepo.Table[model.Appointment, *model.Appointment]
}

func New(db *database.Connection, otel otel.Otel) Appointment {
	return &repositoryImpl{
		table: gRepo.NewTable[model.Appointment](model.EntityName, model.TableName, db, otel),
	}
}

func owned(adminID int64, filters ...any) gDto.FilterGroup {
	return gDto.FilterGroup{
		Filters: append([]any{
			gDto.Filter{Field: model.FieldAdminID, Value: adminID, Operator: gDto.FilterOperatorEq},
		}, filters...),
	}
}

func byID(id int64) gDto.Filter {
	return gDto.Filter{Field: model.FieldID, Value: id, Operator: gDto.FilterOperatorEq}
}

func (r *repositoryImpl) Insert(ctx context.Context, appointment *model.Appointment) error {
	return r.table.Insert(ctx, appointment)
}

func (r *repositoryImpl) Update(ctx context.Context, appointment *model.Appointment) error {
	return r.table.Update(ctx, appointment)
}

func (r *repositoryImpl) FindByID(ctx context.Context, adminID, id int64) (*model.Appointment, error) {
	appointment, err := r.table.Get(ctx, owned(adminID, byID(id)))
	if err != nil {
		return nil, err
	}

	if appointment == nil {
		return nil, &failure.NotFoundError{Entity: model.EntityName, ID: id}
	}

	return appointment, nil
}

func (r *repositoryImpl) FindByAdmin(ctx context.Context, adminID int64, filter gDto.FilterGroup) ([]model.Appointment, error) {
	params := gDto.QueryParams{SortBy: model.FieldAppointmentDate, SortDir: gDto.SortDirAsc}

	return r.table.GetAll(ctx, params, owned(adminID, filter))
}

func (r *repositoryImpl) Delete(ctx context.Context, adminID, id int64) error {
	affected, err := r.table.Delete(ctx, owned(adminID, byID(id)))
	if err != nil {
		return err
	}

	if affected == 0 {
		return &failure.NotFoundError{Entity: model.EntityName, ID: id}
	}

	return nil
}
