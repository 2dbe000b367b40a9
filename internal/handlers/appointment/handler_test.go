package appointment_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	otelMocks "pgms/infras/otel/mocks"
	"pgms/internal/domains/appointment/mocks"
	"pgms/internal/domains/appointment/model/dto"
	"pgms/internal/handlers/appointment"
	"pgms/shared/failure"
)

func newRouter(t *testing.T) (http.Handler, *mocks.MockAppointmentService) {
	t.Helper()

	ctrl := gomock.NewController(t)
	service := mocks.NewMockAppointmentService(ctrl)
	handler := appointment.New(service, otelMocks.NewOtel())

	router := chi.NewRouter()
	handler.Router(router)

	return router, service
}

func TestCreateAppointment_NeedsNoAccount(t *testing.T) {
	router, service := newRouter(t)

	service.EXPECT().
		Create(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ any, req dto.CreateAppointmentRequest) (dto.AppointmentResponse, error) {
			assert.Equal(t, int64(7), req.AdminID)
			assert.Equal(t, 2030, req.AppointmentDate.Year())

			return dto.AppointmentResponse{ID: 1}, nil
		})

	body := `{"admin_id":7,"candidate_name":"Asha","candidate_phone":"9876543210","candidate_email":"asha@example.com","appointment_date":"2030-01-02T10:00:00Z"}`
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, httptest.NewRequest(http.MethodPost, "/appointments", strings.NewReader(body)))

	assert.Equal(t, http.StatusCreated, recorder.Code)
}

func TestCreateAppointment_InvalidBody(t *testing.T) {
	router, _ := newRouter(t)

	body := `{"admin_id":7,"candidate_name":"Asha","candidate_phone":"12","candidate_email":"asha@example.com","appointment_date":"2030-01-02T10:00:00Z"}`
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, httptest.NewRequest(http.MethodPost, "/appointments", strings.NewReader(body)))

	assert.Equal(t, http.StatusBadRequest, recorder.Code)
}

func TestAppointmentRoutes_RequireAccount(t *testing.T) {
	router, service := newRouter(t)

	service.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(dto.AppointmentResponse{}, failure.BadRequestFromString("unexpected")).Times(0)

	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/appointments/3", nil))

	assert.Equal(t, http.StatusUnauthorized, recorder.Code)
}
