package payment_test

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	otelMocks "pgms/infras/otel/mocks"
	"pgms/internal/domains/payment/mocks"
	"pgms/internal/domains/payment/model/dto"
	"pgms/internal/handlers/payment"
	"pgms/internal/tenancy"
	gDto "pgms/shared/dto"
	"pgms/shared/failure"
	gModel "pgms/shared/model"
)

const tenantID = tenancy.TenantID(7)

func newRouter(t *testing.T, bound bool) (http.Handler, *mocks.MockPaymentService) {
	t.Helper()

	ctrl := gomock.NewController(t)
	service := mocks.NewMockPaymentService(ctrl)
	handler := payment.New(service, otelMocks.NewOtel())

	router := chi.NewRouter()
	if bound {
		router.Use(func(next http.Handler) http.Handler {
			return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				next.ServeHTTP(w, r.WithContext(tenancy.WithTenant(r.Context(), tenantID)))
			})
		})
	}

	handler.Router(router)

	return router, service
}

func serve(router http.Handler, method, target string) *httptest.ResponseRecorder {
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, httptest.NewRequest(method, target, nil))

	return recorder
}

func decodeError(t *testing.T, recorder *httptest.ResponseRecorder) string {
	t.Helper()

	body := struct {
		Error string `json:"error"`
	}{}
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &body))

	return body.Error
}

func TestGetPaymentsByDateRange(t *testing.T) {
	tests := []struct {
		name       string
		query      string
		setupMocks func(service *mocks.MockPaymentService)
		wantStatus int
		wantError  string
	}{
		{
			name:  "valid range",
			query: "?start=2024-01-01&end=2024-01-31",
			setupMocks: func(service *mocks.MockPaymentService) {
				service.EXPECT().
					GetByDateRange(gomock.Any(), tenantID, gModel.NewDate(2024, time.January, 1), gModel.NewDate(2024, time.January, 31)).
					Return([]dto.PaymentResponse{{ID: 1, PayerName: "Asha", Amount: decimal.NewFromInt(5000), PaymentDate: "2024-01-05"}}, nil)
			},
			wantStatus: http.StatusOK,
		},
		{
			name:       "missing start",
			query:      "?end=2024-01-31",
			wantStatus: http.StatusBadRequest,
			wantError:  "start is required",
		},
		{
			name:       "malformed end",
			query:      "?start=2024-01-01&end=31-01-2024",
			wantStatus: http.StatusBadRequest,
			wantError:  "end must be a date in YYYY-MM-DD format",
		},
		{
			name:  "service failure",
			query: "?start=2024-01-01&end=2024-01-31",
			setupMocks: func(service *mocks.MockPaymentService) {
				service.EXPECT().
					GetByDateRange(gomock.Any(), tenantID, gomock.Any(), gomock.Any()).
					Return(nil, failure.BadRequestFromString("start must not be after end"))
			},
			wantStatus: http.StatusBadRequest,
			wantError:  "start must not be after end",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router, service := newRouter(t, true)
			if tt.setupMocks != nil {
				tt.setupMocks(service)
			}

			recorder := serve(router, http.MethodGet, "/payments/date-range"+tt.query)

			assert.Equal(t, tt.wantStatus, recorder.Code)

			if tt.wantError != "" {
				assert.Equal(t, tt.wantError, decodeError(t, recorder))
			}
		})
	}
}

func TestGetPayments_DispatchesOnPayer(t *testing.T) {
	router, service := newRouter(t, true)

	service.EXPECT().
		GetByPayer(gomock.Any(), tenantID, "Asha").
		Return([]dto.PaymentResponse{{ID: 3, PayerName: "Asha"}}, nil)

	recorder := serve(router, http.MethodGet, "/payments?payer=%20Asha%20")

	assert.Equal(t, http.StatusOK, recorder.Code)

	body := struct {
		Data []dto.PaymentResponse `json:"data"`
	}{}
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &body))
	require.Len(t, body.Data, 1)
	assert.Equal(t, int64(3), body.Data[0].ID)
}

func TestGetPayments_FiltersByStatusAndMethod(t *testing.T) {
	router, service := newRouter(t, true)

	service.EXPECT().
		GetAll(gomock.Any(), tenantID, gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ any, _ tenancy.TenantID, params gDto.QueryParams, filter gDto.FilterGroup) (dto.GetPaymentsResponse, error) {
			assert.Equal(t, 2, params.Page)
			require.Len(t, filter.Filters, 2)
			assert.Equal(t, "PAID", filter.Filters[0].(gDto.Filter).Value)
			assert.Equal(t, "UPI", filter.Filters[1].(gDto.Filter).Value)

			return dto.GetPaymentsResponse{}, nil
		})

	recorder := serve(router, http.MethodGet, "/payments?page=2&status=PAID&method=UPI")

	assert.Equal(t, http.StatusOK, recorder.Code)
}

func TestPaymentRoutes_RequireTenant(t *testing.T) {
	router, _ := newRouter(t, false)

	recorder := serve(router, http.MethodGet, "/payments/1")

	assert.Equal(t, http.StatusUnauthorized, recorder.Code)
}

func TestGetPaymentByID(t *testing.T) {
	t.Run("invalid id", func(t *testing.T) {
		router, _ := newRouter(t, true)

		recorder := serve(router, http.MethodGet, "/payments/abc")

		assert.Equal(t, http.StatusBadRequest, recorder.Code)
	})

	t.Run("not found", func(t *testing.T) {
		router, service := newRouter(t, true)

		service.EXPECT().
			Get(gomock.Any(), tenantID, int64(9)).
			Return(dto.PaymentResponse{}, &failure.NotFoundError{Entity: "payment", ID: 9})

		recorder := serve(router, http.MethodGet, "/payments/9")

		assert.Equal(t, http.StatusNotFound, recorder.Code)
	})

	t.Run("unexpected error", func(t *testing.T) {
		router, service := newRouter(t, true)

		service.EXPECT().
			Get(gomock.Any(), tenantID, int64(9)).
			Return(dto.PaymentResponse{}, errors.New("boom"))

		recorder := serve(router, http.MethodGet, "/payments/9")

		assert.Equal(t, http.StatusInternalServerError, recorder.Code)
	})
}
