package service_test

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"pgms/infras/broker"
	brokerMocks "pgms/infras/broker/mocks"
	"pgms/infras/otel/mocks"
	adminMocks "pgms/internal/domains/admin/mocks"
	adminModel "pgms/internal/domains/admin/model"
	appointmentMocks "pgms/internal/domains/appointment/mocks"
	"pgms/internal/domains/appointment/model"
	"pgms/internal/domains/appointment/model/dto"
	"pgms/internal/domains/appointment/service"
	"pgms/shared/failure"
)

type fixture struct {
	repo      *appointmentMocks.MockAppointment
	admins    *adminMocks.MockAdmin
	publisher *brokerMocks.MockPublisher
	svc       service.Appointment
}

func newFixture(t *testing.T) fixture {
	t.Helper()

	ctrl := gomock.NewController(t)

	f := fixture{
		repo:      appointmentMocks.NewMockAppointment(ctrl),
		admins:    adminMocks.NewMockAdmin(ctrl),
		publisher: brokerMocks.NewMockPublisher(ctrl),
	}
	f.svc = service.New(f.repo, f.admins, f.publisher, mocks.NewOtel())

	return f
}

func booking(at time.Time) dto.CreateAppointmentRequest {
	return dto.CreateAppointmentRequest{
		AdminID:         7,
		CandidateName:   "Asha",
		CandidatePhone:  "9876543210",
		CandidateEmail:  "asha@example.com",
		AppointmentDate: at,
	}
}

func TestAppointmentService_Create(t *testing.T) {
	tomorrow := time.Now().Add(24 * time.Hour)

	tests := []struct {
		name      string
		req       dto.CreateAppointmentRequest
		setupMock func(f fixture)
		wantCode  int
	}{
		{
			name: "booked as pending",
			req:  booking(tomorrow),
			setupMock: func(f fixture) {
				f.admins.EXPECT().FindByID(gomock.Any(), int64(7)).Return(&adminModel.Admin{ID: 7}, nil)
				f.repo.EXPECT().
					Insert(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, appointment *model.Appointment) error {
						appointment.ID = 3

						return nil
					})
			},
		},
		{
			name:      "date in the past",
			req:       booking(time.Now().Add(-time.Hour)),
			setupMock: func(fixture) {},
			wantCode:  http.StatusBadRequest,
		},
		{
			name:      "date missing",
			req:       booking(time.Time{}),
			setupMock: func(fixture) {},
			wantCode:  http.StatusBadRequest,
		},
		{
			name: "unknown hostel",
			req:  booking(tomorrow),
			setupMock: func(f fixture) {
				f.admins.EXPECT().FindByID(gomock.Any(), int64(7)).Return(nil, &failure.NotFoundError{Entity: adminModel.EntityName, ID: 7})
			},
			wantCode: http.StatusBadRequest,
		},
		{
			name: "frozen hostel",
			req:  booking(tomorrow),
			setupMock: func(f fixture) {
				f.admins.EXPECT().FindByID(gomock.Any(), int64(7)).Return(&adminModel.Admin{ID: 7, Frozen: true}, nil)
			},
			wantCode: http.StatusBadRequest,
		},
		{
			name: "repository error",
			req:  booking(tomorrow),
			setupMock: func(f fixture) {
				f.admins.EXPECT().FindByID(gomock.Any(), int64(7)).Return(&adminModel.Admin{ID: 7}, nil)
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
			assert.Equal(t, int64(3), res.ID)
			assert.Equal(t, model.StatusPending, res.Status)
		})
	}
}

func TestAppointmentService_UpdateStatus(t *testing.T) {
	t.Run("confirming notifies the candidate", func(t *testing.T) {
		f := newFixture(t)
		published := make(chan dto.AppointmentConfirmedEvent, 1)

		f.repo.EXPECT().
			FindByID(gomock.Any(), int64(7), int64(3)).
			Return(&model.Appointment{ID: 3, AdminID: 7, CandidateEmail: "asha@example.com", Status: model.StatusPending}, nil)
		f.repo.EXPECT().Update(gomock.Any(), gomock.Any()).Return(nil)
		f.publisher.EXPECT().
			Publish(gomock.Any(), broker.EventAppointmentConfirmed, gomock.Any()).
			DoAndReturn(func(_ context.Context, _ string, event any) error {
				published <- event.(dto.AppointmentConfirmedEvent)

				return nil
			})

		res, err := f.svc.UpdateStatus(context.Background(), 7, 3, dto.UpdateStatusRequest{Status: model.StatusConfirmed})
		require.NoError(t, err)
		assert.Equal(t, model.StatusConfirmed, res.Status)

		select {
		case event := <-published:
			assert.Equal(t, "asha@example.com", event.CandidateEmail)
		case <-time.After(time.Second):
			t.Fatal("event was not published")
		}
	})

	t.Run("already confirmed is not announced again", func(t *testing.T) {
		f := newFixture(t)

		f.repo.EXPECT().
			FindByID(gomock.Any(), int64(7), int64(3)).
			Return(&model.Appointment{ID: 3, AdminID: 7, Status: model.StatusConfirmed}, nil)
		f.repo.EXPECT().Update(gomock.Any(), gomock.Any()).Return(nil)

		_, err := f.svc.UpdateStatus(context.Background(), 7, 3, dto.UpdateStatusRequest{Status: model.StatusConfirmed})
		require.NoError(t, err)
	})

	t.Run("another hostel's appointment", func(t *testing.T) {
		f := newFixture(t)

		f.repo.EXPECT().
			FindByID(gomock.Any(), int64(7), int64(3)).
			Return(nil, &failure.NotFoundError{Entity: model.EntityName, ID: 3})

		_, err := f.svc.UpdateStatus(context.Background(), 7, 3, dto.UpdateStatusRequest{Status: model.StatusCancelled})
		assert.Equal(t, http.StatusNotFound, failure.GetCode(err))
	})
}

func TestAppointmentService_Delete(t *testing.T) {
	f := newFixture(t)

	f.repo.EXPECT().Delete(gomock.Any(), int64(7), int64(3)).Return(&failure.NotFoundError{Entity: model.EntityName, ID: 3})

	err := f.svc.Delete(context.Background(), 7, 3)
	assert.Equal(t, http.StatusNotFound, failure.GetCode(err))
}
