package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks -mock_names=Appointment=MockAppointmentService

import (
	"context"
	"fmt"

	"pgms/infras/broker"
	"pgms/infras/otel"
	adminRepository "pgms/internal/domains/admin/repository"
	"pgms/internal/domains/appointment/model"
	"pgms/internal/domains/appointment/model/dto"
	"pgms/internal/domains/appointment/repository"
	"pgms/shared/constant"
	gDto "pgms/shared/dto"
	"pgms/shared/failure"
	"pgms/shared/timezone"

	"github.com/rs/zerolog/log"
)

type Appointment interface {
	// Create books a visit with a hostel. It needs no account.
	Create(ctx context.Context, req dto.CreateAppointmentRequest) (dto.AppointmentResponse, error)
	GetAll(ctx context.Context, adminID int64, filter gDto.FilterGroup) ([]dto.AppointmentResponse, error)
	Get(ctx context.Context, adminID, id int64) (dto.AppointmentResponse, error)
	UpdateStatus(ctx context.Context, adminID, id int64, req dto.UpdateStatusRequest) (dto.AppointmentResponse, error)
	Delete(ctx context.Context, adminID, id int64) error
}

type serviceImpl struct {
	repo      repository.Appointment
	admins    adminRepository.Admin
	publisher broker.Publisher
	otel      otel.Otel
}

func New(repo repository.Appointment, admins adminRepository.Admin, publisher broker.Publisher, otel otel.Otel) Appointment {
	return &serviceImpl{
		repo:      repo,
		admins:    admins,
		publisher: publisher,
		otel:      otel,
	}
}

func (s *serviceImpl) ensureHostel(ctx context.Context, adminID int64) error {
	admin, err := s.admins.FindByID(ctx, adminID)
	if err != nil {
		if failure.IsNotFound(err) {
			return failure.BadRequestFromString(fmt.Sprintf("hostel %d does not exist", adminID))
		}

		log.Error().Err(err).Int64("admin_id", adminID).Msg("failed to check hostel")

		return fmt.Errorf("failed to check hostel: %w", err)
	}

	if admin.Frozen {
		return failure.BadRequestFromString(fmt.Sprintf("hostel %d is not accepting appointments", adminID))
	}

	return nil
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateAppointmentRequest) (res dto.AppointmentResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".appointment.Create")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if !req.AppointmentDate.After(timezone.Now()) {
		return res, failure.BadRequestFromString("appointment_date must be in the future")
	}

	if err = s.ensureHostel(ctx, req.AdminID); err != nil {
		return res, err
	}

	appointment := req.ToModel()

	if err = s.repo.Insert(ctx, &appointment); err != nil {
		log.Error().Err(err).Int64("admin_id", req.AdminID).Msg("failed to create appointment")

		return res, fmt.Errorf("failed to create appointment: %w", err)
	}

	res.FromModel(appointment)

	return res, nil
}

func (s *serviceImpl) GetAll(ctx context.Context, adminID int64, filter gDto.FilterGroup) (res []dto.AppointmentResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".appointment.GetAll")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	appointments, err := s.repo.FindByAdmin(ctx, adminID, filter)
	if err != nil {
		log.Error().Err(err).Int64("admin_id", adminID).Msg("failed to get appointments")

		return nil, fmt.Errorf("failed to get appointments: %w", err)
	}

	return dto.FromModels(appointments), nil
}

func (s *serviceImpl) Get(ctx context.Context, adminID, id int64) (res dto.AppointmentResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".appointment.Get")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	appointment, err := s.repo.FindByID(ctx, adminID, id)
	if err != nil {
		log.Error().Err(err).Int64("id", id).Msg("failed to get appointment")

		return res, fmt.Errorf("failed to get appointment: %w", err)
	}

	res.FromModel(*appointment)

	return res, nil
}

func (s *serviceImpl) UpdateStatus(ctx context.Context, adminID, id int64, req dto.UpdateStatusRequest) (res dto.AppointmentResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".appointment.UpdateStatus")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	appointment, err := s.repo.FindByID(ctx, adminID, id)
	if err != nil {
		log.Error().Err(err).Int64("id", id).Msg("failed to get appointment")

		return res, fmt.Errorf("failed to get appointment: %w", err)
	}

	confirmed := req.Status == model.StatusConfirmed && appointment.Status != model.StatusConfirmed
	appointment.Status = req.Status

	if err = s.repo.Update(ctx, appointment); err != nil {
		log.Error().Err(err).Int64("id", id).Msg("failed to update appointment status")

		return res, fmt.Errorf("failed to update appointment status: %w", err)
	}

	res.FromModel(*appointment)

	if confirmed {
		broker.PublishAsync(ctx, s.publisher, broker.EventAppointmentConfirmed, dto.AppointmentConfirmedEvent{
			AppointmentID:   appointment.ID,
			AdminID:         appointment.AdminID,
			CandidateName:   appointment.CandidateName,
			CandidateEmail:  appointment.CandidateEmail,
			CandidatePhone:  appointment.CandidatePhone,
			AppointmentDate: res.AppointmentDate,
		})
	}

	return res, nil
}

func (s *serviceImpl) Delete(ctx context.Context, adminID, id int64) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".appointment.Delete")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if err = s.repo.Delete(ctx, adminID, id); err != nil {
		log.Error().Err(err).Int64("id", id).Msg("failed to delete appointment")

		return fmt.Errorf("failed to delete appointment: %w", err)
	}

	return nil
}
