package service_test

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"pgms/config"
	"pgms/infras/broker"
	brokerMocks "pgms/infras/broker/mocks"
	"pgms/infras/jwt"
	jwtMocks "pgms/infras/jwt/mocks"
	"pgms/infras/otel/mocks"
	adminMocks "pgms/internal/domains/admin/mocks"
	adminModel "pgms/internal/domains/admin/model"
	adminDto "pgms/internal/domains/admin/model/dto"
	"pgms/internal/domains/auth/model/dto"
	"pgms/internal/domains/auth/service"
	"pgms/internal/tenancy"
	schemaMocks "pgms/internal/tenancy/schema/mocks"
	"pgms/shared/constant"
	"pgms/shared/failure"
	"pgms/shared/password"
)

// hashed "password"
const passwordHash = "$2a$10$92IXUNpkjO0rOQ5byMi.Ye4oKoEa3Ro9llC/.og/at2.uheWG/igi"

type fixture struct {
	repo        *adminMocks.MockAdmin
	provisioner *schemaMocks.MockProvisioner
	publisher   *brokerMocks.MockPublisher
	jwt         *jwtMocks.MockJWT
	cfg         *config.Config
	svc         service.Auth
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	ctrl := gomock.NewController(t)

	f := &fixture{
		repo:        adminMocks.NewMockAdmin(ctrl),
		provisioner: schemaMocks.NewMockProvisioner(ctrl),
		publisher:   brokerMocks.NewMockPublisher(ctrl),
		jwt:         jwtMocks.NewMockJWT(ctrl),
		cfg:         &config.Config{},
	}
	f.cfg.Tenancy.ProvisionOnLogin = true
	f.svc = service.New(f.repo, f.provisioner, f.publisher, f.cfg, mocks.NewOtel(), f.jwt)

	return f
}

func validAdmin() *adminModel.Admin {
	return &adminModel.Admin{
		ID:       7,
		Name:     "Ravi",
		Email:    "ravi@example.com",
		Phone:    "9000000001",
		Password: passwordHash,
		Role:     constant.RoleAdmin,
	}
}

func tokenPair() *jwt.TokenPair {
	return &jwt.TokenPair{AccessToken: "access-token", RefreshToken: "refresh-token", ExpiresIn: 900}
}

func TestAuthService_Register(t *testing.T) {
	req := dto.RegisterRequest{
		Name:     "Ravi",
		Email:    "Ravi@Example.com",
		Phone:    "9000000001",
		Password: "password123",
	}

	t.Run("creates and provisions", func(t *testing.T) {
		f := newFixture(t)
		published := make(chan adminDto.AdminEvent, 1)

		f.repo.EXPECT().ExistsByEmail(gomock.Any(), "ravi@example.com").Return(false, nil)
		f.repo.EXPECT().ExistsByPhone(gomock.Any(), "9000000001").Return(false, nil)
		f.repo.EXPECT().Insert(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, admin *adminModel.Admin) error {
			require.NoError(t, password.Verify("password123", admin.Password))

			admin.ID = 7

			return nil
		})
		f.provisioner.EXPECT().ProvisionTenant(gomock.Any(), tenancy.TenantID(7)).Return(nil)
		f.provisioner.EXPECT().MissingTables(gomock.Any(), tenancy.TenantID(7)).Return(nil, nil)
		f.publisher.EXPECT().Publish(gomock.Any(), broker.EventAdminRegistered, gomock.Any()).DoAndReturn(
			func(_ context.Context, _ string, event any) error {
				published <- event.(adminDto.AdminEvent)

				return nil
			})

		res, err := f.svc.Register(context.Background(), req)
		require.NoError(t, err)
		assert.Equal(t, int64(7), res.Admin.ID)
		assert.True(t, res.Setup.AllTablesPresent)
		assert.Equal(t, "ravi@example.com", (<-published).Email)
	})

	t.Run("provisioning failure still registers", func(t *testing.T) {
		f := newFixture(t)
		published := make(chan struct{}, 1)

		f.repo.EXPECT().ExistsByEmail(gomock.Any(), gomock.Any()).Return(false, nil)
		f.repo.EXPECT().ExistsByPhone(gomock.Any(), gomock.Any()).Return(false, nil)
		f.repo.EXPECT().Insert(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, admin *adminModel.Admin) error {
			admin.ID = 7

			return nil
		})
		f.provisioner.EXPECT().ProvisionTenant(gomock.Any(), tenancy.TenantID(7)).Return(errors.New("disk full"))
		f.provisioner.EXPECT().MissingTables(gomock.Any(), tenancy.TenantID(7)).Return([]tenancy.Kind{tenancy.KindAttendance}, nil)
		f.publisher.EXPECT().Publish(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
			func(context.Context, string, any) error {
				published <- struct{}{}

				return nil
			})

		res, err := f.svc.Register(context.Background(), req)
		require.NoError(t, err)
		assert.False(t, res.Setup.AllTablesPresent)
		assert.Equal(t, []string{"attendance"}, res.Setup.MissingTables)
		<-published
	})

	t.Run("email taken", func(t *testing.T) {
		f := newFixture(t)

		f.repo.EXPECT().ExistsByEmail(gomock.Any(), gomock.Any()).Return(true, nil)

		_, err := f.svc.Register(context.Background(), req)
		require.Error(t, err)
		assert.Equal(t, http.StatusConflict, failure.GetCode(err))
	})

	t.Run("phone taken", func(t *testing.T) {
		f := newFixture(t)

		f.repo.EXPECT().ExistsByEmail(gomock.Any(), gomock.Any()).Return(false, nil)
		f.repo.EXPECT().ExistsByPhone(gomock.Any(), gomock.Any()).Return(true, nil)

		_, err := f.svc.Register(context.Background(), req)
		require.Error(t, err)
		assert.Equal(t, http.StatusConflict, failure.GetCode(err))
	})
}

func TestAuthService_Login(t *testing.T) {
	tests := []struct {
		name             string
		req              dto.LoginRequest
		provisionOnLogin bool
		setupMock        func(f *fixture)
		wantCode         int
		wantMissing      []string
	}{
		{
			name:             "by email",
			req:              dto.LoginRequest{Identifier: "Ravi@Example.com", Password: "password"},
			provisionOnLogin: true,
			setupMock: func(f *fixture) {
				f.repo.EXPECT().FindByEmail(gomock.Any(), "ravi@example.com").Return(validAdmin(), true, nil)
				f.provisioner.EXPECT().MissingTables(gomock.Any(), tenancy.TenantID(7)).Return(nil, nil)
				f.jwt.EXPECT().GenerateTokenPair(tenancy.TenantID(7), "ravi@example.com", constant.RoleAdmin).Return(tokenPair(), nil)
				f.repo.EXPECT().SetLastLogin(gomock.Any(), int64(7), gomock.Any()).Return(nil)
			},
			wantMissing: []string{},
		},
		{
			name:             "by phone repairs missing tables",
			req:              dto.LoginRequest{Identifier: "9000000001", Password: "password"},
			provisionOnLogin: true,
			setupMock: func(f *fixture) {
				f.repo.EXPECT().FindByPhone(gomock.Any(), "9000000001").Return(validAdmin(), true, nil)
				gomock.InOrder(
					f.provisioner.EXPECT().MissingTables(gomock.Any(), tenancy.TenantID(7)).Return([]tenancy.Kind{tenancy.KindRooms}, nil),
					f.provisioner.EXPECT().ProvisionTenant(gomock.Any(), tenancy.TenantID(7)).Return(nil),
					f.provisioner.EXPECT().MissingTables(gomock.Any(), tenancy.TenantID(7)).Return(nil, nil),
				)
				f.jwt.EXPECT().GenerateTokenPair(gomock.Any(), gomock.Any(), gomock.Any()).Return(tokenPair(), nil)
				f.repo.EXPECT().SetLastLogin(gomock.Any(), int64(7), gomock.Any()).Return(nil)
			},
			wantMissing: []string{},
		},
		{
			name:             "failed repair still logs in",
			req:              dto.LoginRequest{Identifier: "9000000001", Password: "password"},
			provisionOnLogin: true,
			setupMock: func(f *fixture) {
				f.repo.EXPECT().FindByPhone(gomock.Any(), "9000000001").Return(validAdmin(), true, nil)
				gomock.InOrder(
					f.provisioner.EXPECT().MissingTables(gomock.Any(), tenancy.TenantID(7)).Return([]tenancy.Kind{tenancy.KindRooms}, nil),
					f.provisioner.EXPECT().ProvisionTenant(gomock.Any(), tenancy.TenantID(7)).Return(errors.New("lock timeout")),
					f.provisioner.EXPECT().MissingTables(gomock.Any(), tenancy.TenantID(7)).Return([]tenancy.Kind{tenancy.KindRooms}, nil),
				)
				f.jwt.EXPECT().GenerateTokenPair(gomock.Any(), gomock.Any(), gomock.Any()).Return(tokenPair(), nil)
				f.repo.EXPECT().SetLastLogin(gomock.Any(), int64(7), gomock.Any()).Return(nil)
			},
			wantMissing: []string{"rooms"},
		},
		{
			name: "repair disabled",
			req:  dto.LoginRequest{Identifier: "ravi@example.com", Password: "password"},
			setupMock: func(f *fixture) {
				f.repo.EXPECT().FindByEmail(gomock.Any(), "ravi@example.com").Return(validAdmin(), true, nil)
				f.provisioner.EXPECT().MissingTables(gomock.Any(), tenancy.TenantID(7)).Return([]tenancy.Kind{tenancy.KindStaff}, nil)
				f.jwt.EXPECT().GenerateTokenPair(gomock.Any(), gomock.Any(), gomock.Any()).Return(tokenPair(), nil)
				f.repo.EXPECT().SetLastLogin(gomock.Any(), int64(7), gomock.Any()).Return(nil)
			},
			wantMissing: []string{"staff"},
		},
		{
			name: "unknown identifier",
			req:  dto.LoginRequest{Identifier: "nobody@example.com", Password: "password"},
			setupMock: func(f *fixture) {
				f.repo.EXPECT().FindByEmail(gomock.Any(), "nobody@example.com").Return(nil, false, nil)
			},
			wantCode: http.StatusBadRequest,
		},
		{
			name: "wrong password",
			req:  dto.LoginRequest{Identifier: "ravi@example.com", Password: "wrong-password"},
			setupMock: func(f *fixture) {
				f.repo.EXPECT().FindByEmail(gomock.Any(), gomock.Any()).Return(validAdmin(), true, nil)
			},
			wantCode: http.StatusBadRequest,
		},
		{
			name: "frozen account",
			req:  dto.LoginRequest{Identifier: "ravi@example.com", Password: "password"},
			setupMock: func(f *fixture) {
				admin := validAdmin()
				admin.Frozen = true

				f.repo.EXPECT().FindByEmail(gomock.Any(), gomock.Any()).Return(admin, true, nil)
			},
			wantCode: http.StatusForbidden,
		},
		{
			name: "token generation error",
			req:  dto.LoginRequest{Identifier: "ravi@example.com", Password: "password"},
			setupMock: func(f *fixture) {
				f.repo.EXPECT().FindByEmail(gomock.Any(), gomock.Any()).Return(validAdmin(), true, nil)
				f.provisioner.EXPECT().MissingTables(gomock.Any(), gomock.Any()).Return(nil, nil)
				f.jwt.EXPECT().GenerateTokenPair(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, errors.New("signing failed"))
			},
			wantCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			f.cfg.Tenancy.ProvisionOnLogin = tt.provisionOnLogin
			tt.setupMock(f)

			res, err := f.svc.Login(context.Background(), tt.req)
			if tt.wantCode != 0 {
				require.Error(t, err)
				assert.Equal(t, tt.wantCode, failure.GetCode(err))

				return
			}

			require.NoError(t, err)
			assert.Equal(t, "access-token", res.AccessToken)
			assert.Equal(t, "refresh-token", res.RefreshToken)
			assert.Equal(t, int64(7), res.Admin.ID)
			assert.NotEmpty(t, res.Admin.LastLogin)
			assert.Equal(t, tt.wantMissing, res.Setup.MissingTables)
			assert.Equal(t, len(tt.wantMissing) == 0, res.Setup.AllTablesPresent)
		})
	}
}

func TestAuthService_RefreshToken(t *testing.T) {
	claims := &jwt.Claims{UserID: "7", Email: "ravi@example.com", Type: jwt.RefreshToken}

	tests := []struct {
		name      string
		setupMock func(f *fixture)
		wantCode  int
	}{
		{
			name: "issues a new pair",
			setupMock: func(f *fixture) {
				f.jwt.EXPECT().ValidateToken("refresh", jwt.RefreshToken).Return(claims, nil)
				f.repo.EXPECT().FindByID(gomock.Any(), int64(7)).Return(validAdmin(), nil)
				f.jwt.EXPECT().GenerateTokenPair(tenancy.TenantID(7), "ravi@example.com", constant.RoleAdmin).Return(tokenPair(), nil)
			},
		},
		{
			name: "invalid token",
			setupMock: func(f *fixture) {
				f.jwt.EXPECT().ValidateToken("refresh", jwt.RefreshToken).Return(nil, jwt.ErrInvalidToken)
			},
			wantCode: http.StatusUnauthorized,
		},
		{
			name: "deleted account",
			setupMock: func(f *fixture) {
				f.jwt.EXPECT().ValidateToken("refresh", jwt.RefreshToken).Return(claims, nil)
				f.repo.EXPECT().FindByID(gomock.Any(), int64(7)).Return(nil, &failure.NotFoundError{Entity: adminModel.EntityName, ID: 7})
			},
			wantCode: http.StatusUnauthorized,
		},
		{
			name: "frozen account",
			setupMock: func(f *fixture) {
				admin := validAdmin()
				admin.Frozen = true

				f.jwt.EXPECT().ValidateToken("refresh", jwt.RefreshToken).Return(claims, nil)
				f.repo.EXPECT().FindByID(gomock.Any(), int64(7)).Return(admin, nil)
			},
			wantCode: http.StatusForbidden,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			tt.setupMock(f)

			res, err := f.svc.RefreshToken(context.Background(), dto.RefreshTokenRequest{RefreshToken: "refresh"})
			if tt.wantCode != 0 {
				require.Error(t, err)
				assert.Equal(t, tt.wantCode, failure.GetCode(err))

				return
			}

			require.NoError(t, err)
			assert.Equal(t, "access-token", res.AccessToken)
		})
	}
}

func TestAuthService_ChangePassword(t *testing.T) {
	t.Run("stores the new hash", func(t *testing.T) {
		f := newFixture(t)

		f.repo.EXPECT().FindByID(gomock.Any(), int64(7)).Return(validAdmin(), nil)
		f.repo.EXPECT().SetPassword(gomock.Any(), int64(7), gomock.Any()).DoAndReturn(
			func(_ context.Context, _ int64, hash string) error {
				assert.NoError(t, password.Verify("new-password", hash))

				return nil
			})

		err := f.svc.ChangePassword(context.Background(), 7, dto.ChangePasswordRequest{CurrentPassword: "password", NewPassword: "new-password"})
		require.NoError(t, err)
	})

	t.Run("wrong current password", func(t *testing.T) {
		f := newFixture(t)

		f.repo.EXPECT().FindByID(gomock.Any(), int64(7)).Return(validAdmin(), nil)

		err := f.svc.ChangePassword(context.Background(), 7, dto.ChangePasswordRequest{CurrentPassword: "nope", NewPassword: "new-password"})
		require.Error(t, err)
		assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
	})
}
