package subscription_test

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	otelMocks "pgms/infras/otel/mocks"
	adminDto "pgms/internal/domains/admin/model/dto"
	"pgms/internal/domains/subscription/mocks"
	"pgms/internal/domains/subscription/model/dto"
	"pgms/internal/handlers/subscription"
	"pgms/internal/tenancy"
)

const tenantID = tenancy.TenantID(7)

func newRouter(t *testing.T, bound bool) (http.Handler, *mocks.MockPlanService) {
	t.Helper()

	ctrl := gomock.NewController(t)
	service := mocks.NewMockPlanService(ctrl)
	handler := subscription.New(service, otelMocks.NewOtel())

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

func serve(router http.Handler, method, target string, body io.Reader) *httptest.ResponseRecorder {
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, httptest.NewRequest(method, target, body))

	return recorder
}

func TestGetActivePlans(t *testing.T) {
	router, service := newRouter(t, false)

	service.EXPECT().GetAll(gomock.Any(), true).Return([]dto.PlanResponse{{ID: 1, Name: "Trial"}}, nil)

	recorder := serve(router, http.MethodGet, "/subscription-plans/active", nil)

	assert.Equal(t, http.StatusOK, recorder.Code)

	body := struct {
		Data []dto.PlanResponse `json:"data"`
	}{}
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &body))
	require.Len(t, body.Data, 1)
	assert.Equal(t, "Trial", body.Data[0].Name)
}

func TestCreatePlan_RejectsNegativePrice(t *testing.T) {
	router, _ := newRouter(t, true)

	recorder := serve(router, http.MethodPost, "/subscription-plans", strings.NewReader(`{"name":"Monthly","duration":1,"price":"-1"}`))

	assert.Equal(t, http.StatusBadRequest, recorder.Code)
}

func TestActivateFree(t *testing.T) {
	t.Run("unbound request", func(t *testing.T) {
		router, _ := newRouter(t, false)

		recorder := serve(router, http.MethodPost, "/subscriptions/activate-free", strings.NewReader(`{"plan_id":1}`))

		assert.Equal(t, http.StatusUnauthorized, recorder.Code)
	})

	t.Run("missing plan", func(t *testing.T) {
		router, _ := newRouter(t, true)

		recorder := serve(router, http.MethodPost, "/subscriptions/activate-free", strings.NewReader(`{}`))

		assert.Equal(t, http.StatusBadRequest, recorder.Code)
	})

	t.Run("activated for the caller", func(t *testing.T) {
		router, service := newRouter(t, true)

		service.EXPECT().
			ActivateFree(gomock.Any(), int64(7), dto.ActivatePlanRequest{PlanID: 1}).
			Return(adminDto.AdminResponse{ID: 7}, nil)

		recorder := serve(router, http.MethodPost, "/subscriptions/activate-free", strings.NewReader(`{"plan_id":1}`))

		assert.Equal(t, http.StatusOK, recorder.Code)
	})
}
