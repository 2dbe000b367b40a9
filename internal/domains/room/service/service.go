package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks -mock_names=Room=MockRoomService

import (
	"context"
	"fmt"

	"pgms/infras/otel"
	"pgms/internal/domains/room/model"
	"pgms/internal/domains/room/model/dto"
	"pgms/internal/domains/room/repository"
	"pgms/internal/tenancy"
	"pgms/shared/constant"
	gDto "pgms/shared/dto"
	"pgms/shared/failure"

	"github.com/rs/zerolog/log"
)

type Room interface {
	Create(ctx context.Context, tenantID tenancy.TenantID, req dto.CreateRoomRequest) (dto.RoomResponse, error)
	GetAll(ctx context.Context, tenantID tenancy.TenantID, params gDto.QueryParams, filter gDto.FilterGroup) (dto.GetRoomsResponse, error)
	Get(ctx context.Context, tenantID tenancy.TenantID, id int64) (dto.RoomResponse, error)
	GetByRoomNumber(ctx context.Context, tenantID tenancy.TenantID, roomNumber string) (dto.RoomResponse, error)
	GetByStatus(ctx context.Context, tenantID tenancy.TenantID, status string) ([]dto.RoomResponse, error)
	Update(ctx context.Context, tenantID tenancy.TenantID, id int64, req dto.UpdateRoomRequest) (dto.RoomResponse, error)
	Delete(ctx context.Context, tenantID tenancy.TenantID, id int64) error
	AddOccupiedBed(ctx context.Context, tenantID tenancy.TenantID, roomNumber string, bed int) error
	RemoveOccupiedBed(ctx context.Context, tenantID tenancy.TenantID, roomNumber string, bed int) error
}

type serviceImpl struct {
	repo repository.Room
	otel otel.Otel
}

func New(repo repository.Room, otel otel.Otel) Room {
	return &serviceImpl{
		repo: repo,
		otel: otel,
	}
}

func (s *serviceImpl) Create(ctx context.Context, tenantID tenancy.TenantID, req dto.CreateRoomRequest) (res dto.RoomResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".room.Create")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if err = s.ensureUniqueRoomNumber(ctx, tenantID, req.RoomNumber); err != nil {
		return res, err
	}

	room := req.ToModel()

	saved, err := s.repo.Save(ctx, tenantID, &room)
	if err != nil {
		log.Error().Err(err).Int64("tenant_id", tenantID.Int64()).Msg("failed to create room")

		return res, fmt.Errorf("failed to create room: %w", err)
	}

	res.FromModel(*saved)

	return res, nil
}

func (s *serviceImpl) ensureUniqueRoomNumber(ctx context.Context, tenantID tenancy.TenantID, roomNumber string) error {
	exist, err := s.repo.ExistsByRoomNumber(ctx, tenantID, roomNumber)
	if err != nil {
		log.Error().Err(err).Msg("failed to check room number")

		return fmt.Errorf("failed to check room number: %w", err)
	}

	if exist {
		return &failure.DuplicateError{Entity: model.EntityName, Field: model.FieldRoomNumber, Value: roomNumber}
	}

	return nil
}

func (s *serviceImpl) GetAll(ctx context.Context, tenantID tenancy.TenantID, params gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetRoomsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".room.GetAll")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	total, err := s.repo.Count(ctx, tenantID, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count rooms")

		return res, fmt.Errorf("failed to count rooms: %w", err)
	}

	models, err := s.repo.FindWhere(ctx, tenantID, params, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get rooms")

		return res, fmt.Errorf("failed to get rooms: %w", err)
	}

	res.FromModels(models, total, params.Limit)

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, tenantID tenancy.TenantID, id int64) (res dto.RoomResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".room.Get")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	room, err := s.repo.FindByID(ctx, tenantID, id)
	if err != nil {
		log.Error().Err(err).Int64("id", id).Msg("failed to get room")

		return res, fmt.Errorf("failed to get room: %w", err)
	}

	res.FromModel(*room)

	return res, nil
}

func (s *serviceImpl) findByRoomNumber(ctx context.Context, tenantID tenancy.TenantID, roomNumber string) (*model.Room, error) {
	room, found, err := s.repo.FindByRoomNumber(ctx, tenantID, roomNumber)
	if err != nil {
		log.Error().Err(err).Str("room_number", roomNumber).Msg("failed to get room by number")

		return nil, fmt.Errorf("failed to get room: %w", err)
	}

	if !found {
		return nil, failure.NotFound(fmt.Sprintf("room not found with number: %s", roomNumber))
	}

	return room, nil
}

func (s *serviceImpl) GetByRoomNumber(ctx context.Context, tenantID tenancy.TenantID, roomNumber string) (res dto.RoomResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".room.GetByRoomNumber")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	room, err := s.findByRoomNumber(ctx, tenantID, roomNumber)
	if err != nil {
		return res, err
	}

	res.FromModel(*room)

	return res, nil
}

func (s *serviceImpl) GetByStatus(ctx context.Context, tenantID tenancy.TenantID, status string) (res []dto.RoomResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".room.GetByStatus")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	models, err := s.repo.FindByStatus(ctx, tenantID, status)
	if err != nil {
		log.Error().Err(err).Str("status", status).Msg("failed to get rooms by status")

		return nil, fmt.Errorf("failed to get rooms: %w", err)
	}

	res = make([]dto.RoomResponse, len(models))
	for i, mod := range models {
		res[i].FromModel(mod)
	}

	return res, nil
}

func (s *serviceImpl) Update(ctx context.Context, tenantID tenancy.TenantID, id int64, req dto.UpdateRoomRequest) (res dto.RoomResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".room.Update")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	room, err := s.repo.FindByID(ctx, tenantID, id)
	if err != nil {
		log.Error().Err(err).Int64("id", id).Msg("failed to get room")

		return res, fmt.Errorf("failed to get room: %w", err)
	}

	if req.RoomNumber != nil && *req.RoomNumber != room.RoomNumber {
		// Occupants reference their room by number.
		if room.OccupiedBeds > 0 || len(room.OccupiedBedNumbers) > 0 {
			return res, failure.BadRequestFromString("room " + room.RoomNumber + " cannot be renamed while beds are occupied")
		}

		if err = s.ensureUniqueRoomNumber(ctx, tenantID, *req.RoomNumber); err != nil {
			return res, err
		}
	}

	if req.Capacity != nil && *req.Capacity < room.OccupiedBedNumbers.Highest() {
		return res, failure.BadRequestFromString(fmt.Sprintf("capacity %d is below occupied bed %d", *req.Capacity, room.OccupiedBedNumbers.Highest()))
	}

	req.Apply(room)

	saved, err := s.repo.Save(ctx, tenantID, room)
	if err != nil {
		log.Error().Err(err).Int64("id", id).Msg("failed to update room")

		return res, fmt.Errorf("failed to update room: %w", err)
	}

	res.FromModel(*saved)

	return res, nil
}

func (s *serviceImpl) Delete(ctx context.Context, tenantID tenancy.TenantID, id int64) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".room.Delete")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if _, err = s.repo.FindByID(ctx, tenantID, id); err != nil {
		log.Error().Err(err).Int64("id", id).Msg("failed to get room")

		return fmt.Errorf("failed to get room: %w", err)
	}

	if err = s.repo.DeleteByID(ctx, tenantID, id); err != nil {
		log.Error().Err(err).Int64("id", id).Msg("failed to delete room")

		return fmt.Errorf("failed to delete room: %w", err)
	}

	return nil
}

// AddOccupiedBed marks bed as taken in the room with the given number.
func (s *serviceImpl) AddOccupiedBed(ctx context.Context, tenantID tenancy.TenantID, roomNumber string, bed int) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".room.AddOccupiedBed")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	room, err := s.findByRoomNumber(ctx, tenantID, roomNumber)
	if err != nil {
		return err
	}

	if !room.BedInRange(bed) {
		return failure.BadRequestFromString(fmt.Sprintf("bed %d does not exist in room %s", bed, roomNumber))
	}

	if room.OccupiedBedNumbers.Contains(bed) {
		return failure.Conflict(fmt.Sprintf("bed %d in room %s is already occupied", bed, roomNumber))
	}

	room.OccupiedBedNumbers = room.OccupiedBedNumbers.Add(bed)
	room.OccupiedBeds = len(room.OccupiedBedNumbers)

	if _, err = s.repo.Save(ctx, tenantID, room); err != nil {
		log.Error().Err(err).Str("room_number", roomNumber).Int("bed", bed).Msg("failed to add occupied bed")

		return fmt.Errorf("failed to update occupied beds: %w", err)
	}

	return nil
}

// RemoveOccupiedBed frees bed. Freeing a bed that is not taken is a no-op.
func (s *serviceImpl) RemoveOccupiedBed(ctx context.Context, tenantID tenancy.TenantID, roomNumber string, bed int) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".room.RemoveOccupiedBed")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	room, err := s.findByRoomNumber(ctx, tenantID, roomNumber)
	if err != nil {
		return err
	}

	if !room.OccupiedBedNumbers.Contains(bed) {
		return nil
	}

	room.OccupiedBedNumbers = room.OccupiedBedNumbers.Remove(bed)
	room.OccupiedBeds = len(room.OccupiedBedNumbers)

	if _, err = s.repo.Save(ctx, tenantID, room); err != nil {
		log.Error().Err(err).Str("room_number", roomNumber).Int("bed", bed).Msg("failed to remove occupied bed")

		return fmt.Errorf("failed to update occupied beds: %w", err)
	}

	return nil
}
