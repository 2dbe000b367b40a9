package repository_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pgms/infras/database/dbtest"
	"pgms/infras/otel/mocks"
	adminModel "pgms/internal/domains/admin/model"
	adminRepository "pgms/internal/domains/admin/repository"
	"pgms/internal/domains/ticket/model"
	"pgms/internal/domains/ticket/repository"
	gDto "pgms/shared/dto"
)

func TestTicketRepository(t *testing.T) {
	db := dbtest.NewMigratedSQLite(t)
	ctx := context.Background()

	admins := adminRepository.New(db, mocks.NewOtel())
	first := &adminModel.Admin{Name: "Priya", Email: "priya@example.com", Phone: "9876543210", Password: "hash"}
	second := &adminModel.Admin{Name: "Ravi", Email: "ravi@example.com", Phone: "9876543211", Password: "hash"}
	require.NoError(t, admins.Insert(ctx, first))
	require.NoError(t, admins.Insert(ctx, second))

	repo := repository.New(db, mocks.NewOtel())

	older := &model.Ticket{AdminID: first.ID, Title: "Wifi", Description: "Down"}
	newer := &model.Ticket{AdminID: first.ID, Title: "Billing", Description: "Wrong invoice", Priority: model.PriorityHigh}
	other := &model.Ticket{AdminID: second.ID, Title: "Rooms", Description: "Cannot add"}

	for _, ticket := range []*model.Ticket{older, newer, other} {
		require.NoError(t, repo.Insert(ctx, ticket))
	}

	assert.Equal(t, model.StatusOpen, older.Status)
	assert.Equal(t, model.PriorityMedium, older.Priority)

	mine, err := repo.FindByAdmin(ctx, first.ID)
	require.NoError(t, err)
	require.Len(t, mine, 2)
	assert.Equal(t, newer.ID, mine[0].ID)
	assert.Equal(t, older.ID, mine[1].ID)

	response := "Fixed"
	newer.Response = &response
	newer.Status = model.StatusResolved
	require.NoError(t, repo.Update(ctx, newer))

	found, err := repo.FindByID(ctx, newer.ID)
	require.NoError(t, err)
	assert.Equal(t, model.StatusResolved, found.Status)
	require.NotNil(t, found.Response)
	assert.Equal(t, "Fixed", *found.Response)

	open, err := repo.FindAll(ctx, gDto.FilterGroup{
		Filters: []any{gDto.Filter{Field: model.FieldStatus, Value: model.StatusOpen, Operator: gDto.FilterOperatorEq}},
	})
	require.NoError(t, err)
	assert.Len(t, open, 2)
}
