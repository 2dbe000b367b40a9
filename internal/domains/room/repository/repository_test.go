package repository_test

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pgms/infras/otel/mocks"
	"pgms/internal/domains/room/model"
	"pgms/internal/domains/room/repository"
	"pgms/internal/tenancy"
	"pgms/internal/tenancy/schema/schematest"
	gDto "pgms/shared/dto"
	"pgms/shared/failure"
)

func TestRoomRepository_NullCapacityRoundTrip(t *testing.T) {
	conn, provisioner := schematest.Provisioned(t, 7)
	repo := repository.New(conn, mocks.NewOtel(), provisioner)
	ctx := context.Background()

	room := &model.Room{RoomNumber: "R1", Rent: decimal.RequireFromString("4500.50")}

	saved, err := repo.Save(ctx, 7, room)
	require.NoError(t, err)
	assert.Same(t, room, saved)
	assert.Positive(t, saved.ID)
	assert.Equal(t, model.StatusAvailable, saved.Status)

	got, err := repo.FindByID(ctx, 7, saved.ID)
	require.NoError(t, err)
	assert.Nil(t, got.Capacity)
	assert.Nil(t, got.Description)
	assert.Zero(t, got.OccupiedBeds)
	assert.Empty(t, got.OccupiedBedNumbers)
	assert.True(t, decimal.RequireFromString("4500.50").Equal(got.Rent))
	assert.Equal(t, model.StatusAvailable, got.Status)
	assert.NotNil(t, got.CreatedAt)
}

func TestRoomRepository_SaveUpdatesExistingRow(t *testing.T) {
	conn, provisioner := schematest.Provisioned(t, 7)
	repo := repository.New(conn, mocks.NewOtel(), provisioner)
	ctx := context.Background()

	capacity := 3
	room := &model.Room{RoomNumber: "R2", Capacity: &capacity, OccupiedBedNumbers: model.NewBedSet()}

	_, err := repo.Save(ctx, 7, room)
	require.NoError(t, err)

	id := room.ID
	createdAt := *room.CreatedAt

	room.OccupiedBedNumbers = room.OccupiedBedNumbers.Add(2).Add(1)
	room.Status = model.StatusOccupied

	_, err = repo.Save(ctx, 7, room)
	require.NoError(t, err)
	assert.Equal(t, id, room.ID)

	got, found, err := repo.FindByRoomNumber(ctx, 7, "R2")
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, model.BedSet{1, 2}, got.OccupiedBedNumbers)
	assert.Equal(t, 2, got.OccupiedBeds)
	assert.Equal(t, model.StatusOccupied, got.Status)
	assert.WithinDuration(t, createdAt, *got.CreatedAt, 0)

	all, err := repo.FindAll(ctx, 7)
	require.NoError(t, err)
	assert.Len(t, all, 1)
}

func TestRoomRepository_SaveUnknownIDIsNotFound(t *testing.T) {
	conn, provisioner := schematest.Provisioned(t, 7)
	repo := repository.New(conn, mocks.NewOtel(), provisioner)

	_, err := repo.Save(context.Background(), 7, &model.Room{ID: 99, RoomNumber: "R9"})

	var notFound *failure.NotFoundError
	require.ErrorAs(t, err, &notFound)
	assert.Equal(t, int64(99), notFound.ID)
}

func TestRoomRepository_DeleteOnlyRoomKeepsTable(t *testing.T) {
	conn, provisioner := schematest.Provisioned(t, 7)
	repo := repository.New(conn, mocks.NewOtel(), provisioner)
	ctx := context.Background()

	room := &model.Room{RoomNumber: "R1"}
	_, err := repo.Save(ctx, 7, room)
	require.NoError(t, err)

	require.NoError(t, repo.DeleteByID(ctx, 7, room.ID))
	require.NoError(t, repo.DeleteByID(ctx, 7, room.ID), "deleting a missing row is not an error")

	rooms, err := repo.FindAll(ctx, 7)
	require.NoError(t, err)
	assert.Empty(t, rooms)

	exists, err := provisioner.TableExists(ctx, 7, tenancy.KindRooms)
	require.NoError(t, err)
	assert.True(t, exists)

	_, err = repo.FindByID(ctx, 7, room.ID)
	assert.True(t, failure.IsNotFound(err))
}

func TestRoomRepository_RoomNumberUniquePerTenant(t *testing.T) {
	conn, provisioner := schematest.Provisioned(t, 7, 8)
	repo := repository.New(conn, mocks.NewOtel(), provisioner)
	ctx := context.Background()

	_, err := repo.Save(ctx, 7, &model.Room{RoomNumber: "101"})
	require.NoError(t, err)

	_, err = repo.Save(ctx, 7, &model.Room{RoomNumber: "101"})

	var duplicate *failure.DuplicateError
	require.ErrorAs(t, err, &duplicate)
	assert.Equal(t, tenancy.KindRooms.String(), duplicate.Entity)

	_, err = repo.Save(ctx, 8, &model.Room{RoomNumber: "101"})
	require.NoError(t, err)

	exist, err := repo.ExistsByRoomNumber(ctx, 8, "101")
	require.NoError(t, err)
	assert.True(t, exist)
}

func TestRoomRepository_FindByStatusAndSort(t *testing.T) {
	conn, provisioner := schematest.Provisioned(t, 7)
	repo := repository.New(conn, mocks.NewOtel(), provisioner)
	ctx := context.Background()

	for _, r := range []model.Room{
		{RoomNumber: "B", Status: model.StatusMaintenance},
		{RoomNumber: "A"},
		{RoomNumber: "C"},
	} {
		_, err := repo.Save(ctx, 7, &r)
		require.NoError(t, err)
	}

	available, err := repo.FindByStatus(ctx, 7, model.StatusAvailable)
	require.NoError(t, err)
	require.Len(t, available, 2)
	assert.Equal(t, "A", available[0].RoomNumber)

	sorted, err := repo.FindWhere(ctx, 7, gDto.QueryParams{SortBy: model.FieldRoomNumber, SortDir: gDto.SortDirDesc, Page: 1, Limit: 2}, gDto.FilterGroup{})
	require.NoError(t, err)
	require.Len(t, sorted, 2)
	assert.Equal(t, "C", sorted[0].RoomNumber)
	assert.Equal(t, "B", sorted[1].RoomNumber)

	fallback, err := repo.FindWhere(ctx, 7, gDto.QueryParams{SortBy: "rent; DROP TABLE x"}, gDto.FilterGroup{})
	require.NoError(t, err)
	require.Len(t, fallback, 3)
	assert.Equal(t, "B", fallback[0].RoomNumber, "unknown sort keys fall back to id order")

	count, err := repo.Count(ctx, 7, gDto.FilterGroup{})
	require.NoError(t, err)
	assert.Equal(t, 3, count)
}

func TestRoomRepository_UnprovisionedTenant(t *testing.T) {
	conn, provisioner := schematest.Provisioned(t)
	repo := repository.New(conn, mocks.NewOtel(), provisioner)

	_, err := repo.FindAll(context.Background(), 5)

	var missing *tenancy.SchemaMissingError
	require.ErrorAs(t, err, &missing)
	assert.Equal(t, tenancy.TenantID(5), missing.TenantID)
	assert.Equal(t, tenancy.KindRooms, missing.Kind)

	_, err = repo.FindAll(context.Background(), 0)
	assert.True(t, errors.Is(err, tenancy.ErrInvalidTenant))
}
