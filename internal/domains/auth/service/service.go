package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks

import (
	"context"
	"fmt"
	"strings"

	"pgms/config"
	"pgms/infras/broker"
	"pgms/infras/jwt"
	"pgms/infras/otel"
	adminModel "pgms/internal/domains/admin/model"
	adminDto "pgms/internal/domains/admin/model/dto"
	adminRepo "pgms/internal/domains/admin/repository"
	"pgms/internal/domains/auth/model/dto"
	"pgms/internal/tenancy"
	"pgms/internal/tenancy/schema"
	"pgms/shared/constant"
	"pgms/shared/failure"
	"pgms/shared/password"
	"pgms/shared/timezone"

	"github.com/rs/zerolog/log"
)

const msgInvalidCredentials = "invalid email or password"

type Auth interface {
	// Register creates the account and provisions its tables. A provisioning
	// failure does not fail registration; it shows up in the setup status.
	Register(ctx context.Context, req dto.RegisterRequest) (dto.RegisterResponse, error)
	Login(ctx context.Context, req dto.LoginRequest) (dto.LoginResponse, error)
	RefreshToken(ctx context.Context, req dto.RefreshTokenRequest) (dto.RefreshTokenResponse, error)
	ChangePassword(ctx context.Context, adminID int64, req dto.ChangePasswordRequest) error
}

type serviceImpl struct {
	adminRepo   adminRepo.Admin
	provisioner schema.Provisioner
	publisher   broker.Publisher
	cfg         *config.Config
	otel        otel.Otel
	jwtService  jwt.JWT
}

func New(
	adminRepo adminRepo.Admin,
	provisioner schema.Provisioner,
	publisher broker.Publisher,
	cfg *config.Config,
	otel otel.Otel,
	jwt jwt.JWT,
) Auth {
	return &serviceImpl{
		adminRepo:   adminRepo,
		provisioner: provisioner,
		publisher:   publisher,
		cfg:         cfg,
		otel:        otel,
		jwtService:  jwt,
	}
}

func (s *serviceImpl) Register(ctx context.Context, req dto.RegisterRequest) (res dto.RegisterResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".auth.Register")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	email := strings.ToLower(strings.TrimSpace(req.Email))

	exists, err := s.adminRepo.ExistsByEmail(ctx, email)
	if err != nil {
		log.Error().Err(err).Msg("failed to check if email is registered")

		return res, fmt.Errorf("failed to check if email is registered: %w", err)
	}

	if exists {
		return res, &failure.DuplicateError{Entity: adminModel.EntityName, Field: adminModel.FieldEmail, Value: email}
	}

	exists, err = s.adminRepo.ExistsByPhone(ctx, req.Phone)
	if err != nil {
		log.Error().Err(err).Msg("failed to check if phone is registered")

		return res, fmt.Errorf("failed to check if phone is registered: %w", err)
	}

	if exists {
		return res, &failure.DuplicateError{Entity: adminModel.EntityName, Field: adminModel.FieldPhone, Value: req.Phone}
	}

	hashedPassword, err := password.Hash(req.Password)
	if err != nil {
		log.Error().Err(err).Msg("failed to hash password")

		return res, fmt.Errorf("failed to hash password: %w", err)
	}

	admin := req.ToModel(hashedPassword)

	if err = s.adminRepo.Insert(ctx, &admin); err != nil {
		log.Error().Err(err).Msg("failed to create admin")

		return res, fmt.Errorf("failed to create admin: %w", err)
	}

	if provisionErr := s.provisioner.ProvisionTenant(ctx, admin.TenantID()); provisionErr != nil {
		log.Error().Err(provisionErr).Int64("admin_id", admin.ID).Msg("failed to provision tables for new admin")
	}

	res.Setup = s.tableStatus(ctx, &admin)
	res.Admin.FromModel(admin)

	var event adminDto.AdminEvent
	event.FromModel(admin)
	broker.PublishAsync(ctx, s.publisher, broker.EventAdminRegistered, event)

	return res, nil
}

// tableStatus reads the catalog for admin. A failed read is reported as
// every kind missing so the client is prompted to repair.
func (s *serviceImpl) tableStatus(ctx context.Context, admin *adminModel.Admin) (status adminDto.TableStatus) {
	missing, err := s.provisioner.MissingTables(ctx, admin.TenantID())
	if err != nil {
		log.Error().Err(err).Int64("admin_id", admin.ID).Msg("failed to read table status")

		missing = tenancy.Kinds()
	}

	status.FromKinds(missing)

	return status
}

func (s *serviceImpl) findByIdentifier(ctx context.Context, req dto.LoginRequest) (*adminModel.Admin, bool, error) {
	identifier := strings.TrimSpace(req.Identifier)

	if req.IsEmail() {
		return s.adminRepo.FindByEmail(ctx, strings.ToLower(identifier))
	}

	return s.adminRepo.FindByPhone(ctx, identifier)
}

func (s *serviceImpl) Login(ctx context.Context, req dto.LoginRequest) (res dto.LoginResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".auth.Login")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	admin, found, err := s.findByIdentifier(ctx, req)
	if err != nil {
		log.Error().Err(err).Msg("failed to look up admin")

		return res, fmt.Errorf("failed to look up admin: %w", err)
	}

	if !found {
		log.Warn().Str("identifier", req.Identifier).Msg("login attempt with unknown identifier")

		return res, failure.BadRequestFromString(msgInvalidCredentials)
	}

	if err = password.Verify(req.Password, admin.Password); err != nil {
		log.Warn().Int64("admin_id", admin.ID).Msg("login attempt with wrong password")

		return res, failure.BadRequestFromString(msgInvalidCredentials)
	}

	if admin.Frozen {
		return res, failure.Forbidden("account is frozen")
	}

	res.Setup = s.tableStatus(ctx, admin)

	if s.cfg.Tenancy.ProvisionOnLogin && !res.Setup.AllTablesPresent {
		if provisionErr := s.provisioner.ProvisionTenant(ctx, admin.TenantID()); provisionErr != nil {
			log.Error().Err(provisionErr).Int64("admin_id", admin.ID).Msg("failed to provision missing tables at login")
		}

		res.Setup = s.tableStatus(ctx, admin)
	}

	tokenPair, err := s.jwtService.GenerateTokenPair(admin.TenantID(), admin.Email, admin.Role)
	if err != nil {
		log.Error().Err(err).Msg("failed to generate tokens")

		return res, fmt.Errorf("failed to generate tokens: %w", err)
	}

	now := timezone.Now()
	if err = s.adminRepo.SetLastLogin(ctx, admin.ID, now); err != nil {
		log.Warn().Err(err).Int64("admin_id", admin.ID).Msg("failed to update last login")

		return res, fmt.Errorf("failed to update last login: %w", err)
	}

	admin.LastLogin = &now

	res.FromTokenPair(tokenPair)
	res.Admin.FromModel(*admin)

	return res, nil
}

func (s *serviceImpl) RefreshToken(ctx context.Context, req dto.RefreshTokenRequest) (res dto.RefreshTokenResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".auth.RefreshToken")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	claims, err := s.jwtService.ValidateToken(req.RefreshToken, jwt.RefreshToken)
	if err != nil {
		log.Warn().Err(err).Msg("failed to validate refresh token")

		return res, failure.Unauthorized("invalid refresh token")
	}

	tenantID, err := claims.TenantID()
	if err != nil {
		return res, failure.Unauthorized("invalid refresh token")
	}

	admin, err := s.adminRepo.FindByID(ctx, tenantID.Int64())
	if err != nil {
		if failure.IsNotFound(err) {
			return res, failure.Unauthorized("account no longer exists")
		}

		log.Error().Err(err).Msg("failed to get admin")

		return res, fmt.Errorf("failed to get admin: %w", err)
	}

	if admin.Frozen {
		return res, failure.Forbidden("account is frozen")
	}

	tokenPair, err := s.jwtService.GenerateTokenPair(tenantID, admin.Email, admin.Role)
	if err != nil {
		log.Error().Err(err).Msg("failed to generate tokens")

		return res, fmt.Errorf("failed to generate tokens: %w", err)
	}

	res.FromTokenPair(tokenPair)

	return res, nil
}

func (s *serviceImpl) ChangePassword(ctx context.Context, adminID int64, req dto.ChangePasswordRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".auth.ChangePassword")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	admin, err := s.adminRepo.FindByID(ctx, adminID)
	if err != nil {
		log.Error().Err(err).Int64("admin_id", adminID).Msg("failed to get admin")

		return fmt.Errorf("failed to get admin: %w", err)
	}

	if err = password.Verify(req.CurrentPassword, admin.Password); err != nil {
		return failure.BadRequestFromString("current password is incorrect")
	}

	hashedPassword, err := password.Hash(req.NewPassword)
	if err != nil {
		log.Error().Err(err).Msg("failed to hash new password")

		return fmt.Errorf("failed to hash new password: %w", err)
	}

	if err = s.adminRepo.SetPassword(ctx, adminID, hashedPassword); err != nil {
		log.Error().Err(err).Int64("admin_id", adminID).Msg("failed to update password")

		return fmt.Errorf("failed to update password: %w", err)
	}

	return nil
}
