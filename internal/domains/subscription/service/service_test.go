package service_test

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"pgms/infras/broker"
	brokerMocks "pgms/infras/broker/mocks"
	"pgms/infras/otel/mocks"
	adminMocks "pgms/internal/domains/admin/mocks"
	adminDto "pgms/internal/domains/admin/model/dto"
	subscriptionMocks "pgms/internal/domains/subscription/mocks"
	"pgms/internal/domains/subscription/model"
	"pgms/internal/domains/subscription/model/dto"
	"pgms/internal/domains/subscription/service"
	"pgms/shared/failure"
)

type fixture struct {
	repo      *subscriptionMocks.MockPlan
	admins    *adminMocks.MockAdminService
	publisher *brokerMocks.MockPublisher
	svc       service.Plan
}

func newFixture(t *testing.T) fixture {
	t.Helper()

	ctrl := gomock.NewController(t)

	f := fixture{
		repo:      subscriptionMocks.NewMockPlan(ctrl),
		admins:    adminMocks.NewMockAdminService(ctrl),
		publisher: brokerMocks.NewMockPublisher(ctrl),
	}
	f.svc = service.New(f.repo, f.admins, f.publisher, mocks.NewOtel())

	return f
}

func TestPlanService_Create(t *testing.T) {
	tests := []struct {
		name      string
		req       dto.CreatePlanRequest
		setupMock func(f fixture)
		wantCode  int
	}{
		{
			name: "created active",
			req:  dto.CreatePlanRequest{Name: "Monthly", Duration: 1, Price: decimal.NewFromInt(499)},
			setupMock: func(f fixture) {
				f.repo.EXPECT().FindByName(gomock.Any(), "Monthly").Return(nil, false, nil)
				f.repo.EXPECT().
					Insert(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, plan *model.Plan) error {
						plan.ID = 4

						return nil
					})
			},
		},
		{
			name:      "negative price",
			req:       dto.CreatePlanRequest{Name: "Monthly", Duration: 1, Price: decimal.NewFromInt(-1)},
			setupMock: func(fixture) {},
			wantCode:  http.StatusBadRequest,
		},
		{
			name:      "fractional paise",
			req:       dto.CreatePlanRequest{Name: "Monthly", Duration: 1, Price: decimal.RequireFromString("10.005")},
			setupMock: func(fixture) {},
			wantCode:  http.StatusBadRequest,
		},
		{
			name:      "price overflows column",
			req:       dto.CreatePlanRequest{Name: "Monthly", Duration: 1, Price: decimal.NewFromInt(10_000_000_000)},
			setupMock: func(fixture) {},
			wantCode:  http.StatusBadRequest,
		},
		{
			name: "duplicate name",
			req:  dto.CreatePlanRequest{Name: "Monthly", Duration: 1},
			setupMock: func(f fixture) {
				f.repo.EXPECT().FindByName(gomock.Any(), "Monthly").Return(&model.Plan{ID: 1}, true, nil)
			},
			wantCode: http.StatusConflict,
		},
		{
			name: "repository error",
			req:  dto.CreatePlanRequest{Name: "Monthly", Duration: 1},
			setupMock: func(f fixture) {
				f.repo.EXPECT().FindByName(gomock.Any(), "Monthly").Return(nil, false, nil)
				f.repo.EXPECT().Insert(gomock.Any(), gomock.Any()).Return(errors.New("database error"))
			},
			wantCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			tt.setupMock(f)

			res, err := f.svc.Create(context.Background(), tt.req)
			if tt.wantCode != 0 {
				require.Error(t, err)
				assert.Equal(t, tt.wantCode, failure.GetCode(err))

				return
			}

			require.NoError(t, err)
			assert.Equal(t, int64(4), res.ID)
			assert.True(t, res.Active)
		})
	}
}

func TestPlanService_Update(t *testing.T) {
	t.Run("rename to a taken name", func(t *testing.T) {
		f := newFixture(t)
		name := "Yearly"

		f.repo.EXPECT().FindByID(gomock.Any(), int64(2)).Return(&model.Plan{ID: 2, Name: "Monthly"}, nil)
		f.repo.EXPECT().FindByName(gomock.Any(), name).Return(&model.Plan{ID: 3}, true, nil)

		_, err := f.svc.Update(context.Background(), 2, dto.UpdatePlanRequest{Name: &name})
		require.Error(t, err)
		assert.Equal(t, http.StatusConflict, failure.GetCode(err))
	})

	t.Run("partial update keeps other fields", func(t *testing.T) {
		f := newFixture(t)
		price := decimal.NewFromInt(599)

		f.repo.EXPECT().
			FindByID(gomock.Any(), int64(2)).
			Return(&model.Plan{ID: 2, Name: "Monthly", Duration: 1, DurationType: model.DurationMonth}, nil)
		f.repo.EXPECT().Update(gomock.Any(), gomock.Any()).Return(nil)

		res, err := f.svc.Update(context.Background(), 2, dto.UpdatePlanRequest{Price: &price})
		require.NoError(t, err)
		assert.Equal(t, "Monthly", res.Name)
		assert.Equal(t, 1, res.Duration)
		assert.True(t, res.Price.Equal(price))
	})

	t.Run("negative price", func(t *testing.T) {
		f := newFixture(t)
		price := decimal.NewFromInt(-5)

		_, err := f.svc.Update(context.Background(), 2, dto.UpdatePlanRequest{Price: &price})
		require.Error(t, err)
		assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
	})
}

func TestPlanService_Toggle(t *testing.T) {
	f := newFixture(t)

	f.repo.EXPECT().FindByID(gomock.Any(), int64(2)).Return(&model.Plan{ID: 2, Active: true}, nil)
	f.repo.EXPECT().
		Update(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, plan *model.Plan) error {
			assert.False(t, plan.Active)

			return nil
		})

	res, err := f.svc.Toggle(context.Background(), 2)
	require.NoError(t, err)
	assert.False(t, res.Active)
}

func TestPlanService_ActivateFree(t *testing.T) {
	tests := []struct {
		name     string
		plan     *model.Plan
		findErr  error
		wantCode int
	}{
		{name: "free trial", plan: &model.Plan{ID: 1, Name: "Trial", Duration: 14, DurationType: model.DurationDay, Active: true}},
		{name: "paid plan", plan: &model.Plan{ID: 1, Name: "Monthly", Duration: 1, Price: decimal.NewFromInt(499), Active: true}, wantCode: http.StatusBadRequest},
		{name: "inactive plan", plan: &model.Plan{ID: 1, Name: "Trial", Duration: 14}, wantCode: http.StatusBadRequest},
		{name: "unknown plan", findErr: &failure.NotFoundError{Entity: model.EntityName, ID: 1}, wantCode: http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			published := make(chan dto.SubscriptionActivatedEvent, 1)

			f.repo.EXPECT().FindByID(gomock.Any(), int64(1)).Return(tt.plan, tt.findErr)

			if tt.wantCode == 0 {
				f.admins.EXPECT().
					ActivateSubscription(gomock.Any(), int64(7), gomock.Any()).
					DoAndReturn(func(_ context.Context, _ int64, sub adminDto.Subscription) (adminDto.AdminResponse, error) {
						assert.Equal(t, "Trial", sub.Plan)
						assert.Equal(t, sub.Start.AddDate(0, 0, 14), sub.End)

						return adminDto.AdminResponse{ID: 7, SubscriptionPlan: &sub.Plan}, nil
					})
				f.publisher.EXPECT().
					Publish(gomock.Any(), broker.EventSubscriptionActivated, gomock.Any()).
					DoAndReturn(func(_ context.Context, _ string, event any) error {
						published <- event.(dto.SubscriptionActivatedEvent)

						return nil
					})
			}

			res, err := f.svc.ActivateFree(context.Background(), 7, dto.ActivatePlanRequest{PlanID: 1})
			if tt.wantCode != 0 {
				require.Error(t, err)
				assert.Equal(t, tt.wantCode, failure.GetCode(err))

				return
			}

			require.NoError(t, err)
			assert.Equal(t, int64(7), res.ID)

			select {
			case event := <-published:
				assert.Equal(t, int64(7), event.AdminID)
				assert.Equal(t, "Trial", event.Plan)
			case <-time.After(time.Second):
				t.Fatal("event was not published")
			}
		})
	}
}
