package http_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"pgms/config"
	"pgms/infras/jwt"
	jwtMocks "pgms/infras/jwt/mocks"
	otelMocks "pgms/infras/otel/mocks"
	adminDto "pgms/internal/domains/admin/model/dto"
	adminMocks "pgms/internal/domains/admin/mocks"
	appointmentDto "pgms/internal/domains/appointment/model/dto"
	appointmentMocks "pgms/internal/domains/appointment/mocks"
	authMocks "pgms/internal/domains/auth/mocks"
	occupantMocks "pgms/internal/domains/occupant/mocks"
	paymentMocks "pgms/internal/domains/payment/mocks"
	roomDto "pgms/internal/domains/room/model/dto"
	roomMocks "pgms/internal/domains/room/mocks"
	staffMocks "pgms/internal/domains/staff/mocks"
	subscriptionDto "pgms/internal/domains/subscription/model/dto"
	subscriptionMocks "pgms/internal/domains/subscription/mocks"
	ticketDto "pgms/internal/domains/ticket/model/dto"
	ticketMocks "pgms/internal/domains/ticket/mocks"
	"pgms/internal/handlers/admin"
	"pgms/internal/handlers/appointment"
	"pgms/internal/handlers/auth"
	"pgms/internal/handlers/occupant"
	"pgms/internal/handlers/operator"
	"pgms/internal/handlers/payment"
	"pgms/internal/handlers/room"
	"pgms/internal/handlers/staff"
	"pgms/internal/handlers/subscription"
	"pgms/internal/handlers/ticket"
	"pgms/internal/tenancy"
	"pgms/permissions"
	cacheMocks "pgms/shared/cache/mocks"
	"pgms/shared/constant"
	transportHTTP "pgms/transport/http"
	"pgms/transport/http/middleware"
	"pgms/transport/http/router"
)

type fixture struct {
	server       *transportHTTP.HTTP
	jwt          *jwtMocks.MockJWT
	admins       *adminMocks.MockAdminService
	rooms        *roomMocks.MockRoomService
	plans        *subscriptionMocks.MockPlanService
	tickets      *ticketMocks.MockTicketService
	appointments *appointmentMocks.MockAppointmentService
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	ctrl := gomock.NewController(t)
	otl := otelMocks.NewOtel()

	cfg := &config.Config{}
	cfg.App.APIKey = "internal-secret"

	f := &fixture{
		jwt:          jwtMocks.NewMockJWT(ctrl),
		admins:       adminMocks.NewMockAdminService(ctrl),
		rooms:        roomMocks.NewMockRoomService(ctrl),
		plans:        subscriptionMocks.NewMockPlanService(ctrl),
		tickets:      ticketMocks.NewMockTicketService(ctrl),
		appointments: appointmentMocks.NewMockAppointmentService(ctrl),
	}

	handlers := router.DomainHandlers{
		Auth:         auth.New(authMocks.NewMockAuth(ctrl), otl),
		Admin:        admin.New(f.admins, otl),
		Operator:     operator.New(f.admins, otl),
		Room:         room.New(f.rooms, otl),
		Occupant:     occupant.New(occupantMocks.NewMockOccupantService(ctrl), otl),
		Staff:        staff.New(staffMocks.NewMockStaffService(ctrl), otl),
		Payment:      payment.New(paymentMocks.NewMockPaymentService(ctrl), otl),
		Subscription: subscription.New(f.plans, otl),
		Ticket:       ticket.New(f.tickets, otl),
		Appointment:  appointment.New(f.appointments, otl),
	}

	authRole := middleware.NewAuthRoleMiddleware(f.jwt, otl, permissions.Get(), cfg)
	app := middleware.NewAppMiddleware(otl, cfg, cacheMocks.NewMockRedisCache(ctrl))

	f.server = transportHTTP.New(cfg, router.New(handlers, authRole), app)

	return f
}

func (f *fixture) do(method, target string, headers map[string]string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, nil)
	for key, value := range headers {
		req.Header.Set(key, value)
	}

	recorder := httptest.NewRecorder()
	f.server.ServeHTTP(recorder, req)

	return recorder
}

func TestHealth(t *testing.T) {
	f := newFixture(t)

	recorder := f.do(http.MethodGet, "/health", nil)
	assert.Equal(t, http.StatusOK, recorder.Code)

	f.server.State = transportHTTP.ServerStateInGracePeriod

	recorder = f.do(http.MethodGet, "/health", nil)
	assert.Equal(t, http.StatusServiceUnavailable, recorder.Code)
}

func TestInternalRoutes(t *testing.T) {
	tests := []struct {
		name       string
		headers    map[string]string
		setupMocks func(f *fixture)
		wantStatus int
	}{
		{
			name:       "no api key",
			wantStatus: http.StatusForbidden,
		},
		{
			name:       "wrong api key",
			headers:    map[string]string{constant.RequestHeaderAPIKey: "guess"},
			wantStatus: http.StatusForbidden,
		},
		{
			name:       "bearer token is not enough",
			headers:    map[string]string{constant.RequestHeaderAuthorization: "Bearer token"},
			wantStatus: http.StatusForbidden,
		},
		{
			name:    "valid api key",
			headers: map[string]string{constant.RequestHeaderAPIKey: "internal-secret"},
			setupMocks: func(f *fixture) {
				f.admins.EXPECT().
					GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(adminDto.GetAdminsResponse{}, nil)
			},
			wantStatus: http.StatusOK,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			if tt.setupMocks != nil {
				tt.setupMocks(f)
			}

			recorder := f.do(http.MethodGet, "/v1/internal/admins", tt.headers)

			assert.Equal(t, tt.wantStatus, recorder.Code)
		})
	}
}

func TestTenantRoutes(t *testing.T) {
	t.Run("missing token", func(t *testing.T) {
		f := newFixture(t)

		recorder := f.do(http.MethodGet, "/v1/rooms", nil)

		assert.Equal(t, http.StatusUnauthorized, recorder.Code)
	})

	t.Run("token binds tenant", func(t *testing.T) {
		f := newFixture(t)

		f.jwt.EXPECT().
			ValidateToken("access", jwt.AccessToken).
			Return(&jwt.Claims{UserID: "42", Email: "owner@example.com", Role: "admin"}, nil)

		f.rooms.EXPECT().
			GetAll(gomock.Any(), tenancy.TenantID(42), gomock.Any(), gomock.Any()).
			Return(roomDto.GetRoomsResponse{}, nil)

		recorder := f.do(http.MethodGet, "/v1/rooms", map[string]string{constant.RequestHeaderAuthorization: "Bearer access"})

		assert.Equal(t, http.StatusOK, recorder.Code)
	})

	t.Run("unknown route", func(t *testing.T) {
		f := newFixture(t)

		recorder := f.do(http.MethodGet, "/v2/rooms", nil)

		assert.Equal(t, http.StatusNotFound, recorder.Code)
	})
}

func TestPublicRoutes(t *testing.T) {
	t.Run("active plans", func(t *testing.T) {
		f := newFixture(t)

		f.plans.EXPECT().GetAll(gomock.Any(), true).Return([]subscriptionDto.PlanResponse{}, nil)

		recorder := f.do(http.MethodGet, "/v1/subscription-plans/active", nil)

		assert.Equal(t, http.StatusOK, recorder.Code)
	})

	t.Run("every plan needs a token", func(t *testing.T) {
		f := newFixture(t)

		recorder := f.do(http.MethodGet, "/v1/subscription-plans", nil)

		assert.Equal(t, http.StatusUnauthorized, recorder.Code)
	})

	t.Run("booking an appointment", func(t *testing.T) {
		f := newFixture(t)

		f.appointments.EXPECT().Create(gomock.Any(), gomock.Any()).Return(appointmentDto.AppointmentResponse{ID: 1}, nil)

		body := `{"admin_id":7,"candidate_name":"Asha","candidate_phone":"9876543210","candidate_email":"asha@example.com","appointment_date":"2030-01-02T10:00:00Z"}`
		req := httptest.NewRequest(http.MethodPost, "/v1/appointments", strings.NewReader(body))

		recorder := httptest.NewRecorder()
		f.server.ServeHTTP(recorder, req)

		assert.Equal(t, http.StatusCreated, recorder.Code)
	})
}

func TestSuperadminRoutes(t *testing.T) {
	tests := []struct {
		name       string
		role       string
		setupMocks func(f *fixture)
		wantStatus int
	}{
		{name: "admin is refused", role: constant.RoleAdmin, wantStatus: http.StatusForbidden},
		{
			name: "superadmin is let through",
			role: constant.RoleSuperAdmin,
			setupMocks: func(f *fixture) {
				f.tickets.EXPECT().GetAll(gomock.Any(), gomock.Any()).Return([]ticketDto.TicketResponse{}, nil)
			},
			wantStatus: http.StatusOK,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)

			f.jwt.EXPECT().
				ValidateToken("access", jwt.AccessToken).
				Return(&jwt.Claims{UserID: "1", Email: "support@example.com", Role: tt.role}, nil)

			if tt.setupMocks != nil {
				tt.setupMocks(f)
			}

			recorder := f.do(http.MethodGet, "/v1/tickets/all", map[string]string{constant.RequestHeaderAuthorization: "Bearer access"})

			assert.Equal(t, tt.wantStatus, recorder.Code)
		})
	}
}
