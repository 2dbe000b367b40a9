package middleware_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"pgms/config"
	"pgms/infras/jwt"
	jwtMocks "pgms/infras/jwt/mocks"
	"pgms/infras/otel/mocks"
	"pgms/internal/tenancy"
	"pgms/permissions"
	cacheMocks "pgms/shared/cache/mocks"
	"pgms/shared/constant"
	"pgms/transport/http/middleware"
)

func tenantEcho(w http.ResponseWriter, r *http.Request) {
	tenantID, err := tenancy.FromContext(r.Context())
	if err != nil {
		w.WriteHeader(http.StatusNoContent)

		return
	}

	_, _ = w.Write([]byte(tenantID.String()))
}

func newRouter(t *testing.T, jwtService jwt.JWT, cfg *config.Config) chi.Router {
	t.Helper()

	mw := middleware.NewAuthRoleMiddleware(jwtService, mocks.NewOtel(), permissions.Get(), cfg)

	router := chi.NewRouter()
	router.Use(mw.APIKey)
	router.Route("/v1", func(r chi.Router) {
		r.Group(func(r chi.Router) {
			r.Use(mw.InternalOnly)
			r.Post("/internal/admins/{id}/tables", tenantEcho)
		})

		r.Group(func(r chi.Router) {
			r.Use(mw.Auth, mw.RBAC)
			r.Post("/auth/login", tenantEcho)
			r.Get("/rooms", tenantEcho)
		})
	})

	return router
}

func TestAuth(t *testing.T) {
	cfg := &config.Config{}
	cfg.App.APIKey = "secret-key"

	tests := []struct {
		name      string
		method    string
		path      string
		header    map[string]string
		setupMock func(m *jwtMocks.MockJWT)
		wantCode  int
		wantBody  string
	}{
		{
			name:   "valid token binds tenant",
			method: http.MethodGet,
			path:   "/v1/rooms",
			header: map[string]string{constant.RequestHeaderAuthorization: "Bearer good"},
			setupMock: func(m *jwtMocks.MockJWT) {
				m.EXPECT().ValidateToken("good", jwt.AccessToken).Return(&jwt.Claims{UserID: "42", Email: "a@b.c", Role: constant.RoleAdmin}, nil)
			},
			wantCode: http.StatusOK,
			wantBody: "42",
		},
		{
			name:     "missing header",
			method:   http.MethodGet,
			path:     "/v1/rooms",
			wantCode: http.StatusUnauthorized,
		},
		{
			name:   "expired token",
			method: http.MethodGet,
			path:   "/v1/rooms",
			header: map[string]string{constant.RequestHeaderAuthorization: "Bearer old"},
			setupMock: func(m *jwtMocks.MockJWT) {
				m.EXPECT().ValidateToken("old", jwt.AccessToken).Return(nil, jwt.ErrExpiredToken)
			},
			wantCode: http.StatusUnauthorized,
		},
		{
			name:   "claims without a tenant",
			method: http.MethodGet,
			path:   "/v1/rooms",
			header: map[string]string{constant.RequestHeaderAuthorization: "Bearer odd"},
			setupMock: func(m *jwtMocks.MockJWT) {
				m.EXPECT().ValidateToken("odd", jwt.AccessToken).Return(&jwt.Claims{UserID: "abc", Email: "a@b.c"}, nil)
			},
			wantCode: http.StatusUnauthorized,
		},
		{
			name:     "public endpoint skips auth",
			method:   http.MethodPost,
			path:     "/v1/auth/login",
			wantCode: http.StatusNoContent,
		},
		{
			name:     "internal endpoint without key",
			method:   http.MethodPost,
			path:     "/v1/internal/admins/3/tables",
			wantCode: http.StatusForbidden,
		},
		{
			name:     "internal endpoint with wrong key",
			method:   http.MethodPost,
			path:     "/v1/internal/admins/3/tables",
			header:   map[string]string{constant.RequestHeaderAPIKey: "nope"},
			wantCode: http.StatusForbidden,
		},
		{
			name:     "internal endpoint with key",
			method:   http.MethodPost,
			path:     "/v1/internal/admins/3/tables",
			header:   map[string]string{constant.RequestHeaderAPIKey: "secret-key"},
			wantCode: http.StatusNoContent,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			jwtService := jwtMocks.NewMockJWT(ctrl)

			if tt.setupMock != nil {
				tt.setupMock(jwtService)
			}

			req := httptest.NewRequest(tt.method, tt.path, nil)
			for key, value := range tt.header {
				req.Header.Set(key, value)
			}

			rec := httptest.NewRecorder()
			newRouter(t, jwtService, cfg).ServeHTTP(rec, req)

			assert.Equal(t, tt.wantCode, rec.Code)

			if tt.wantBody != "" {
				assert.Equal(t, tt.wantBody, rec.Body.String())
			}
		})
	}
}

func TestRateLimit(t *testing.T) {
	cfg := &config.Config{}
	cfg.App.RateLimiter.Enable = true
	cfg.App.RateLimiter.MaxRequests = 2
	cfg.App.RateLimiter.WindowSeconds = 60

	tests := []struct {
		name      string
		count     int64
		err       error
		wantCode  int
		remaining string
	}{
		{name: "under the limit", count: 1, wantCode: http.StatusOK, remaining: "1"},
		{name: "at the limit", count: 2, wantCode: http.StatusOK, remaining: "0"},
		{name: "over the limit", count: 3, wantCode: http.StatusTooManyRequests, remaining: "0"},
		{name: "cache down", err: errors.New("connection refused"), wantCode: http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			cache := cacheMocks.NewMockRedisCache(ctrl)
			cache.EXPECT().Increment(gomock.Any(), gomock.Any(), 60).Return(tt.count, tt.err)

			app := middleware.NewAppMiddleware(mocks.NewOtel(), cfg, cache)
			handler := app.Tracing(app.RateLimit()(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(http.StatusOK)
			})))

			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/rooms", nil))

			assert.Equal(t, tt.wantCode, rec.Code)
			assert.Equal(t, tt.remaining, rec.Header().Get(constant.RequestHeaderRateLimitRemaining))
		})
	}
}

func TestRateLimit_Disabled(t *testing.T) {
	ctrl := gomock.NewController(t)
	cache := cacheMocks.NewMockRedisCache(ctrl)

	app := middleware.NewAppMiddleware(mocks.NewOtel(), &config.Config{}, cache)
	handler := app.RateLimit()(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
}
