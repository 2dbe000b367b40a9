package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks -mock_names=Staff=MockStaffService

import (
	"context"
	"fmt"

	"pgms/infras/otel"
	"pgms/internal/domains/staff/model"
	"pgms/internal/domains/staff/model/dto"
	"pgms/internal/domains/staff/repository"
	"pgms/internal/tenancy"
	"pgms/shared/constant"
	gDto "pgms/shared/dto"
	"pgms/shared/failure"

	"github.com/rs/zerolog/log"
)

type Staff interface {
	Create(ctx context.Context, tenantID tenancy.TenantID, req dto.CreateStaffRequest) (dto.StaffResponse, error)
	GetAll(ctx context.Context, tenantID tenancy.TenantID, params gDto.QueryParams, filter gDto.FilterGroup) (dto.GetStaffResponse, error)
	Get(ctx context.Context, tenantID tenancy.TenantID, id int64) (dto.StaffResponse, error)
	GetByRole(ctx context.Context, tenantID tenancy.TenantID, role string) ([]dto.StaffResponse, error)
	Update(ctx context.Context, tenantID tenancy.TenantID, id int64, req dto.UpdateStaffRequest) (dto.StaffResponse, error)
	Delete(ctx context.Context, tenantID tenancy.TenantID, id int64) error
}

type serviceImpl struct {
	repo repository.Staff
	otel otel.Otel
}

func New(repo repository.Staff, otel otel.Otel) Staff {
	return &serviceImpl{
		repo: repo,
		otel: otel,
	}
}

func (s *serviceImpl) ensureUniqueUsername(ctx context.Context, tenantID tenancy.TenantID, username string) error {
	_, found, err := s.repo.FindByUsername(ctx, tenantID, username)
	if err != nil {
		log.Error().Err(err).Msg("failed to check staff username")

		return fmt.Errorf("failed to check staff username: %w", err)
	}

	if found {
		return &failure.DuplicateError{Entity: model.EntityName, Field: model.FieldUsername, Value: username}
	}

	return nil
}

func (s *serviceImpl) ensureUniqueEmail(ctx context.Context, tenantID tenancy.TenantID, email string) error {
	_, found, err := s.repo.FindByEmail(ctx, tenantID, email)
	if err != nil {
		log.Error().Err(err).Msg("failed to check staff email")

		return fmt.Errorf("failed to check staff email: %w", err)
	}

	if found {
		return &failure.DuplicateError{Entity: model.EntityName, Field: model.FieldEmail, Value: email}
	}

	return nil
}

func (s *serviceImpl) Create(ctx context.Context, tenantID tenancy.TenantID, req dto.CreateStaffRequest) (res dto.StaffResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".staff.Create")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if err = s.ensureUniqueUsername(ctx, tenantID, req.Username); err != nil {
		return res, err
	}

	if err = s.ensureUniqueEmail(ctx, tenantID, req.Email); err != nil {
		return res, err
	}

	staff := req.ToModel()

	saved, err := s.repo.Save(ctx, tenantID, &staff)
	if err != nil {
		log.Error().Err(err).Int64("tenant_id", tenantID.Int64()).Msg("failed to create staff")

		return res, fmt.Errorf("failed to create staff: %w", err)
	}

	res.FromModel(*saved)

	return res, nil
}

func (s *serviceImpl) GetAll(ctx context.Context, tenantID tenancy.TenantID, params gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetStaffResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".staff.GetAll")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	total, err := s.repo.Count(ctx, tenantID, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count staff")

		return res, fmt.Errorf("failed to count staff: %w", err)
	}

	models, err := s.repo.FindWhere(ctx, tenantID, params, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get staff")

		return res, fmt.Errorf("failed to get staff: %w", err)
	}

	res.FromModels(models, total, params.Limit)

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, tenantID tenancy.TenantID, id int64) (res dto.StaffResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".staff.Get")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	staff, err := s.repo.FindByID(ctx, tenantID, id)
	if err != nil {
		log.Error().Err(err).Int64("id", id).Msg("failed to get staff")

		return res, fmt.Errorf("failed to get staff: %w", err)
	}

	res.FromModel(*staff)

	return res, nil
}

func (s *serviceImpl) GetByRole(ctx context.Context, tenantID tenancy.TenantID, role string) (res []dto.StaffResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".staff.GetByRole")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	models, err := s.repo.FindByRole(ctx, tenantID, role)
	if err != nil {
		log.Error().Err(err).Str("role", role).Msg("failed to get staff by role")

		return nil, fmt.Errorf("failed to get staff: %w", err)
	}

	res = make([]dto.StaffResponse, len(models))
	for i, mod := range models {
		res[i].FromModel(mod)
	}

	return res, nil
}

func (s *serviceImpl) Update(ctx context.Context, tenantID tenancy.TenantID, id int64, req dto.UpdateStaffRequest) (res dto.StaffResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".staff.Update")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	staff, err := s.repo.FindByID(ctx, tenantID, id)
	if err != nil {
		log.Error().Err(err).Int64("id", id).Msg("failed to get staff")

		return res, fmt.Errorf("failed to get staff: %w", err)
	}

	if req.Username != nil && *req.Username != staff.Username {
		if err = s.ensureUniqueUsername(ctx, tenantID, *req.Username); err != nil {
			return res, err
		}

		staff.Username = *req.Username
	}

	if req.Email != nil && *req.Email != staff.Email {
		if err = s.ensureUniqueEmail(ctx, tenantID, *req.Email); err != nil {
			return res, err
		}

		staff.Email = *req.Email
	}

	req.Apply(staff)

	saved, err := s.repo.Save(ctx, tenantID, staff)
	if err != nil {
		log.Error().Err(err).Int64("id", id).Msg("failed to update staff")

		return res, fmt.Errorf("failed to update staff: %w", err)
	}

	res.FromModel(*saved)

	return res, nil
}

func (s *serviceImpl) Delete(ctx context.Context, tenantID tenancy.TenantID, id int64) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".staff.Delete")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if _, err = s.repo.FindByID(ctx, tenantID, id); err != nil {
		log.Error().Err(err).Int64("id", id).Msg("failed to get staff")

		return fmt.Errorf("failed to get staff: %w", err)
	}

	if err = s.repo.DeleteByID(ctx, tenantID, id); err != nil {
		log.Error().Err(err).Int64("id", id).Msg("failed to delete staff")

		return fmt.Errorf("failed to delete staff: %w", err)
	}

	return nil
}
