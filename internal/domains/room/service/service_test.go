package service_test

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"pgms/infras/otel/mocks"
	roomMocks "pgms/internal/domains/room/mocks"
	"pgms/internal/domains/room/model"
	"pgms/internal/domains/room/model/dto"
	"pgms/internal/domains/room/service"
	"pgms/internal/tenancy"
	gDto "pgms/shared/dto"
	"pgms/shared/failure"
)

const tenantID tenancy.TenantID = 7

func intPtr(v int) *int {
	return &v
}

func TestRoomService_Create(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := roomMocks.NewMockRoom(ctrl)
	svc := service.New(mockRepo, mocks.NewOtel())

	tests := []struct {
		name      string
		req       dto.CreateRoomRequest
		setupMock func()
		wantCode  int
	}{
		{
			name: "successful creation",
			req:  dto.CreateRoomRequest{RoomNumber: "101", Capacity: intPtr(2), Rent: decimal.NewFromInt(5000)},
			setupMock: func() {
				mockRepo.EXPECT().ExistsByRoomNumber(gomock.Any(), tenantID, "101").Return(false, nil)
				mockRepo.EXPECT().
					Save(gomock.Any(), tenantID, gomock.Any()).
					DoAndReturn(func(_ context.Context, _ tenancy.TenantID, room *model.Room) (*model.Room, error) {
						room.ID = 1
						room.Status = model.StatusAvailable

						return room, nil
					})
			},
		},
		{
			name: "duplicate room number",
			req:  dto.CreateRoomRequest{RoomNumber: "101"},
			setupMock: func() {
				mockRepo.EXPECT().ExistsByRoomNumber(gomock.Any(), tenantID, "101").Return(true, nil)
			},
			wantCode: http.StatusConflict,
		},
		{
			name: "repository error",
			req:  dto.CreateRoomRequest{RoomNumber: "102"},
			setupMock: func() {
				mockRepo.EXPECT().ExistsByRoomNumber(gomock.Any(), tenantID, "102").Return(false, nil)
				mockRepo.EXPECT().Save(gomock.Any(), tenantID, gomock.Any()).Return(nil, errors.New("database error"))
			},
			wantCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			res, err := svc.Create(context.Background(), tenantID, tt.req)
			if tt.wantCode != 0 {
				require.Error(t, err)
				assert.Equal(t, tt.wantCode, failure.GetCode(err))

				return
			}

			require.NoError(t, err)
			assert.Equal(t, int64(1), res.ID)
			assert.Equal(t, model.StatusAvailable, res.Status)
			assert.Equal(t, []int{}, res.OccupiedBedNumbers)
		})
	}
}

func TestRoomService_GetAll(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := roomMocks.NewMockRoom(ctrl)
	svc := service.New(mockRepo, mocks.NewOtel())

	params := gDto.QueryParams{Page: 1, Limit: 2}

	mockRepo.EXPECT().Count(gomock.Any(), tenantID, gomock.Any()).Return(3, nil)
	mockRepo.EXPECT().FindWhere(gomock.Any(), tenantID, params, gomock.Any()).Return([]model.Room{
		{ID: 1, RoomNumber: "101"},
		{ID: 2, RoomNumber: "102"},
	}, nil)

	res, err := svc.GetAll(context.Background(), tenantID, params, gDto.FilterGroup{})
	require.NoError(t, err)
	assert.Equal(t, 3, res.TotalData)
	assert.Equal(t, 2, res.TotalPage)
	assert.Len(t, res.Rooms, 2)
}

func TestRoomService_Update(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := roomMocks.NewMockRoom(ctrl)
	svc := service.New(mockRepo, mocks.NewOtel())

	t.Run("partial update keeps unspecified fields", func(t *testing.T) {
		description := "sea view"
		mockRepo.EXPECT().FindByID(gomock.Any(), tenantID, int64(1)).Return(&model.Room{
			ID: 1, RoomNumber: "101", Capacity: intPtr(2), Rent: decimal.NewFromInt(5000), Description: &description,
		}, nil)
		mockRepo.EXPECT().
			Save(gomock.Any(), tenantID, gomock.Any()).
			DoAndReturn(func(_ context.Context, _ tenancy.TenantID, room *model.Room) (*model.Room, error) {
				return room, nil
			})

		rent := decimal.NewFromInt(5500)
		res, err := svc.Update(context.Background(), tenantID, 1, dto.UpdateRoomRequest{Rent: &rent, OccupiedBeds: intPtr(1)})
		require.NoError(t, err)
		assert.Equal(t, "101", res.RoomNumber)
		assert.True(t, rent.Equal(res.Rent))
		assert.Equal(t, 1, res.OccupiedBeds)
		assert.Equal(t, &description, res.Description)
	})

	t.Run("renaming to a taken number is a duplicate", func(t *testing.T) {
		mockRepo.EXPECT().FindByID(gomock.Any(), tenantID, int64(1)).Return(&model.Room{ID: 1, RoomNumber: "101"}, nil)
		mockRepo.EXPECT().ExistsByRoomNumber(gomock.Any(), tenantID, "102").Return(true, nil)

		number := "102"
		_, err := svc.Update(context.Background(), tenantID, 1, dto.UpdateRoomRequest{RoomNumber: &number})

		var duplicate *failure.DuplicateError
		assert.ErrorAs(t, err, &duplicate)
	})

	t.Run("renaming with occupied beds is rejected", func(t *testing.T) {
		mockRepo.EXPECT().FindByID(gomock.Any(), tenantID, int64(1)).Return(&model.Room{
			ID: 1, RoomNumber: "101", Capacity: intPtr(2), OccupiedBedNumbers: model.NewBedSet(1), OccupiedBeds: 1,
		}, nil)

		number := "201"
		_, err := svc.Update(context.Background(), tenantID, 1, dto.UpdateRoomRequest{RoomNumber: &number})
		assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
	})

	t.Run("capacity below an occupied bed is rejected", func(t *testing.T) {
		mockRepo.EXPECT().FindByID(gomock.Any(), tenantID, int64(1)).Return(&model.Room{
			ID: 1, RoomNumber: "101", Capacity: intPtr(4), OccupiedBedNumbers: model.NewBedSet(1, 3), OccupiedBeds: 2,
		}, nil)

		_, err := svc.Update(context.Background(), tenantID, 1, dto.UpdateRoomRequest{Capacity: intPtr(2)})
		assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
	})

	t.Run("capacity down to the highest occupied bed is allowed", func(t *testing.T) {
		mockRepo.EXPECT().FindByID(gomock.Any(), tenantID, int64(1)).Return(&model.Room{
			ID: 1, RoomNumber: "101", Capacity: intPtr(4), OccupiedBedNumbers: model.NewBedSet(1, 3), OccupiedBeds: 2,
		}, nil)
		mockRepo.EXPECT().
			Save(gomock.Any(), tenantID, gomock.Any()).
			DoAndReturn(func(_ context.Context, _ tenancy.TenantID, room *model.Room) (*model.Room, error) {
				return room, nil
			})

		res, err := svc.Update(context.Background(), tenantID, 1, dto.UpdateRoomRequest{Capacity: intPtr(3)})
		require.NoError(t, err)
		assert.Equal(t, intPtr(3), res.Capacity)
	})

	t.Run("missing room", func(t *testing.T) {
		mockRepo.EXPECT().FindByID(gomock.Any(), tenantID, int64(9)).Return(nil, &failure.NotFoundError{Entity: "rooms", ID: 9})

		_, err := svc.Update(context.Background(), tenantID, 9, dto.UpdateRoomRequest{})
		assert.True(t, failure.IsNotFound(err))
	})
}

func TestRoomService_Delete(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := roomMocks.NewMockRoom(ctrl)
	svc := service.New(mockRepo, mocks.NewOtel())

	mockRepo.EXPECT().FindByID(gomock.Any(), tenantID, int64(1)).Return(&model.Room{ID: 1}, nil)
	mockRepo.EXPECT().DeleteByID(gomock.Any(), tenantID, int64(1)).Return(nil)

	require.NoError(t, svc.Delete(context.Background(), tenantID, 1))

	mockRepo.EXPECT().FindByID(gomock.Any(), tenantID, int64(2)).Return(nil, &failure.NotFoundError{Entity: "rooms", ID: 2})

	err := svc.Delete(context.Background(), tenantID, 2)
	assert.True(t, failure.IsNotFound(err))
}

func TestRoomService_OccupiedBeds(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := roomMocks.NewMockRoom(ctrl)
	svc := service.New(mockRepo, mocks.NewOtel())

	newRoom := func() *model.Room {
		return &model.Room{ID: 1, RoomNumber: "101", Capacity: intPtr(3), OccupiedBeds: 1, OccupiedBedNumbers: model.NewBedSet(2)}
	}

	t.Run("add free bed", func(t *testing.T) {
		mockRepo.EXPECT().FindByRoomNumber(gomock.Any(), tenantID, "101").Return(newRoom(), true, nil)
		mockRepo.EXPECT().
			Save(gomock.Any(), tenantID, gomock.Any()).
			DoAndReturn(func(_ context.Context, _ tenancy.TenantID, room *model.Room) (*model.Room, error) {
				assert.Equal(t, model.BedSet{1, 2}, room.OccupiedBedNumbers)
				assert.Equal(t, 2, room.OccupiedBeds)

				return room, nil
			})

		require.NoError(t, svc.AddOccupiedBed(context.Background(), tenantID, "101", 1))
	})

	t.Run("add taken bed", func(t *testing.T) {
		mockRepo.EXPECT().FindByRoomNumber(gomock.Any(), tenantID, "101").Return(newRoom(), true, nil)

		err := svc.AddOccupiedBed(context.Background(), tenantID, "101", 2)
		assert.Equal(t, http.StatusConflict, failure.GetCode(err))
	})

	t.Run("add bed beyond capacity", func(t *testing.T) {
		mockRepo.EXPECT().FindByRoomNumber(gomock.Any(), tenantID, "101").Return(newRoom(), true, nil)

		err := svc.AddOccupiedBed(context.Background(), tenantID, "101", 4)
		assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
	})

	t.Run("unknown room", func(t *testing.T) {
		mockRepo.EXPECT().FindByRoomNumber(gomock.Any(), tenantID, "999").Return(nil, false, nil)

		err := svc.AddOccupiedBed(context.Background(), tenantID, "999", 1)
		assert.True(t, failure.IsNotFound(err))
	})

	t.Run("remove last bed resets count", func(t *testing.T) {
		mockRepo.EXPECT().FindByRoomNumber(gomock.Any(), tenantID, "101").Return(newRoom(), true, nil)
		mockRepo.EXPECT().
			Save(gomock.Any(), tenantID, gomock.Any()).
			DoAndReturn(func(_ context.Context, _ tenancy.TenantID, room *model.Room) (*model.Room, error) {
				assert.Empty(t, room.OccupiedBedNumbers)
				assert.Zero(t, room.OccupiedBeds)

				return room, nil
			})

		require.NoError(t, svc.RemoveOccupiedBed(context.Background(), tenantID, "101", 2))
	})

	t.Run("remove free bed is a no-op", func(t *testing.T) {
		mockRepo.EXPECT().FindByRoomNumber(gomock.Any(), tenantID, "101").Return(newRoom(), true, nil)

		require.NoError(t, svc.RemoveOccupiedBed(context.Background(), tenantID, "101", 3))
	})
}
