package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks -mock_names=Occupant=MockOccupantService

import (
	"context"
	"fmt"

	"pgms/infras/otel"
	"pgms/internal/domains/occupant/model"
	"pgms/internal/domains/occupant/model/dto"
	"pgms/internal/domains/occupant/repository"
	roomService "pgms/internal/domains/room/service"
	"pgms/internal/tenancy"
	"pgms/shared/constant"
	gDto "pgms/shared/dto"
	"pgms/shared/failure"

	"github.com/rs/zerolog/log"
)

type Occupant interface {
	Create(ctx context.Context, tenantID tenancy.TenantID, req dto.CreateOccupantRequest) (dto.OccupantResponse, error)
	GetAll(ctx context.Context, tenantID tenancy.TenantID, params gDto.QueryParams, filter gDto.FilterGroup) (dto.GetOccupantsResponse, error)
	Get(ctx context.Context, tenantID tenancy.TenantID, id int64) (dto.OccupantResponse, error)
	GetByStatus(ctx context.Context, tenantID tenancy.TenantID, status string) ([]dto.OccupantResponse, error)
	GetByRoomNumber(ctx context.Context, tenantID tenancy.TenantID, roomNumber string) ([]dto.OccupantResponse, error)
	SearchByName(ctx context.Context, tenantID tenancy.TenantID, name string) ([]dto.OccupantResponse, error)
	Update(ctx context.Context, tenantID tenancy.TenantID, id int64, req dto.UpdateOccupantRequest) (dto.OccupantResponse, error)
	Delete(ctx context.Context, tenantID tenancy.TenantID, id int64) error
	Exists(ctx context.Context, tenantID tenancy.TenantID, id int64) (bool, error)
}

type serviceImpl struct {
	repo  repository.Occupant
	rooms roomService.Room
	otel  otel.Otel
}

func New(repo repository.Occupant, rooms roomService.Room, otel otel.Otel) Occupant {
	return &serviceImpl{
		repo:  repo,
		rooms: rooms,
		otel:  otel,
	}
}

func (s *serviceImpl) ensureUniquePhone(ctx context.Context, tenantID tenancy.TenantID, phone string) error {
	_, found, err := s.repo.FindByPhone(ctx, tenantID, phone)
	if err != nil {
		log.Error().Err(err).Msg("failed to check occupant phone")

		return fmt.Errorf("failed to check occupant phone: %w", err)
	}

	if found {
		return &failure.DuplicateError{Entity: model.EntityName, Field: model.FieldPhone, Value: phone}
	}

	return nil
}

// Create reserves the bed before storing the occupant and gives it back if
// the insert fails.
func (s *serviceImpl) Create(ctx context.Context, tenantID tenancy.TenantID, req dto.CreateOccupantRequest) (res dto.OccupantResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".occupant.Create")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	occupant, err := req.ToModel()
	if err != nil {
		return res, failure.BadRequest(err)
	}

	if err = s.ensureUniquePhone(ctx, tenantID, occupant.Phone); err != nil {
		return res, err
	}

	if occupant.HasBed() {
		if err = s.rooms.AddOccupiedBed(ctx, tenantID, occupant.RoomNumber, *occupant.BedNumber); err != nil {
			return res, fmt.Errorf("failed to assign bed: %w", err)
		}
	}

	saved, err := s.repo.Save(ctx, tenantID, &occupant)
	if err != nil {
		log.Error().Err(err).Int64("tenant_id", tenantID.Int64()).Msg("failed to create occupant")

		if occupant.HasBed() {
			s.releaseBed(context.WithoutCancel(ctx), tenantID, occupant.RoomNumber, *occupant.BedNumber)
		}

		return res, fmt.Errorf("failed to create occupant: %w", err)
	}

	res.FromModel(*saved)

	return res, nil
}

func (s *serviceImpl) releaseBed(ctx context.Context, tenantID tenancy.TenantID, roomNumber string, bed int) {
	if err := s.rooms.RemoveOccupiedBed(ctx, tenantID, roomNumber, bed); err != nil {
		log.Error().Err(err).Str("room_number", roomNumber).Int("bed", bed).Msg("failed to release bed")
	}
}

func (s *serviceImpl) GetAll(ctx context.Context, tenantID tenancy.TenantID, params gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetOccupantsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".occupant.GetAll")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	total, err := s.repo.Count(ctx, tenantID, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count occupants")

		return res, fmt.Errorf("failed to count occupants: %w", err)
	}

	models, err := s.repo.FindWhere(ctx, tenantID, params, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get occupants")

		return res, fmt.Errorf("failed to get occupants: %w", err)
	}

	res.FromModels(models, total, params.Limit)

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, tenantID tenancy.TenantID, id int64) (res dto.OccupantResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".occupant.Get")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	occupant, err := s.repo.FindByID(ctx, tenantID, id)
	if err != nil {
		log.Error().Err(err).Int64("id", id).Msg("failed to get occupant")

		return res, fmt.Errorf("failed to get occupant: %w", err)
	}

	res.FromModel(*occupant)

	return res, nil
}

func (s *serviceImpl) Exists(ctx context.Context, tenantID tenancy.TenantID, id int64) (bool, error) {
	_, err := s.repo.FindByID(ctx, tenantID, id)
	if failure.IsNotFound(err) {
		return false, nil
	}

	if err != nil {
		return false, fmt.Errorf("failed to get occupant: %w", err)
	}

	return true, nil
}

func (s *serviceImpl) list(ctx context.Context, span string, find func() ([]model.Occupant, error)) (res []dto.OccupantResponse, err error) {
	_, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".occupant."+span)
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	models, err := find()
	if err != nil {
		log.Error().Err(err).Str("query", span).Msg("failed to get occupants")

		return nil, fmt.Errorf("failed to get occupants: %w", err)
	}

	return dto.FromModels(models), nil
}

func (s *serviceImpl) GetByStatus(ctx context.Context, tenantID tenancy.TenantID, status string) ([]dto.OccupantResponse, error) {
	return s.list(ctx, "GetByStatus", func() ([]model.Occupant, error) {
		return s.repo.FindByStatus(ctx, tenantID, status)
	})
}

func (s *serviceImpl) GetByRoomNumber(ctx context.Context, tenantID tenancy.TenantID, roomNumber string) ([]dto.OccupantResponse, error) {
	return s.list(ctx, "GetByRoomNumber", func() ([]model.Occupant, error) {
		return s.repo.FindByRoomNumber(ctx, tenantID, roomNumber)
	})
}

func (s *serviceImpl) SearchByName(ctx context.Context, tenantID tenancy.TenantID, name string) ([]dto.OccupantResponse, error) {
	return s.list(ctx, "SearchByName", func() ([]model.Occupant, error) {
		return s.repo.SearchByName(ctx, tenantID, name)
	})
}

// Update applies a partial update. When the room or bed changes, the new bed
// is taken before the row is saved and the old one is freed afterwards.
func (s *serviceImpl) Update(ctx context.Context, tenantID tenancy.TenantID, id int64, req dto.UpdateOccupantRequest) (res dto.OccupantResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".occupant.Update")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	occupant, err := s.repo.FindByID(ctx, tenantID, id)
	if err != nil {
		log.Error().Err(err).Int64("id", id).Msg("failed to get occupant")

		return res, fmt.Errorf("failed to get occupant: %w", err)
	}

	if req.Phone != nil && *req.Phone != occupant.Phone {
		if err = s.ensureUniquePhone(ctx, tenantID, *req.Phone); err != nil {
			return res, err
		}

		occupant.Phone = *req.Phone
	}

	oldRoom, oldBed, hadBed := occupant.RoomNumber, occupant.BedNumber, occupant.HasBed()

	if err = req.Apply(occupant); err != nil {
		return res, failure.BadRequest(err)
	}

	moved := occupant.RoomNumber != oldRoom || (hadBed && (occupant.BedNumber == nil || *occupant.BedNumber != *oldBed))
	if !hadBed && occupant.HasBed() {
		moved = true
	}

	if moved && occupant.HasBed() {
		if err = s.rooms.AddOccupiedBed(ctx, tenantID, occupant.RoomNumber, *occupant.BedNumber); err != nil {
			return res, fmt.Errorf("failed to assign bed: %w", err)
		}
	}

	saved, err := s.repo.Save(ctx, tenantID, occupant)
	if err != nil {
		log.Error().Err(err).Int64("id", id).Msg("failed to update occupant")

		if moved && occupant.HasBed() {
			s.releaseBed(context.WithoutCancel(ctx), tenantID, occupant.RoomNumber, *occupant.BedNumber)
		}

		return res, fmt.Errorf("failed to update occupant: %w", err)
	}

	if moved && hadBed {
		s.releaseBed(ctx, tenantID, oldRoom, *oldBed)
	}

	res.FromModel(*saved)

	return res, nil
}

// Delete frees the occupant's bed before removing the row.
func (s *serviceImpl) Delete(ctx context.Context, tenantID tenancy.TenantID, id int64) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".occupant.Delete")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	occupant, err := s.repo.FindByID(ctx, tenantID, id)
	if err != nil {
		log.Error().Err(err).Int64("id", id).Msg("failed to get occupant")

		return fmt.Errorf("failed to get occupant: %w", err)
	}

	if occupant.HasBed() {
		if err = s.rooms.RemoveOccupiedBed(ctx, tenantID, occupant.RoomNumber, *occupant.BedNumber); err != nil && !failure.IsNotFound(err) {
			log.Error().Err(err).Int64("id", id).Msg("failed to free bed")

			return fmt.Errorf("failed to free bed: %w", err)
		}
	}

	if err = s.repo.DeleteByID(ctx, tenantID, id); err != nil {
		log.Error().Err(err).Int64("id", id).Msg("failed to delete occupant")

		return fmt.Errorf("failed to delete occupant: %w", err)
	}

	return nil
}
