package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks -mock_names=Payment=MockPaymentService

import (
	"context"
	"fmt"

	"pgms/infras/broker"
	"pgms/infras/otel"
	occupantService "pgms/internal/domains/occupant/service"
	"pgms/internal/domains/payment/model"
	"pgms/internal/domains/payment/model/dto"
	"pgms/internal/domains/payment/repository"
	"pgms/internal/tenancy"
	"pgms/shared/constant"
	gDto "pgms/shared/dto"
	"pgms/shared/failure"
	gModel "pgms/shared/model"

	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
)

// maxAmount is the largest value a NUMERIC(12,2) column holds.
var maxAmount = decimal.RequireFromString("9999999999.99")

type Payment interface {
	Create(ctx context.Context, tenantID tenancy.TenantID, req dto.CreatePaymentRequest) (dto.PaymentResponse, error)
	GetAll(ctx context.Context, tenantID tenancy.TenantID, params gDto.QueryParams, filter gDto.FilterGroup) (dto.GetPaymentsResponse, error)
	Get(ctx context.Context, tenantID tenancy.TenantID, id int64) (dto.PaymentResponse, error)
	GetByOccupant(ctx context.Context, tenantID tenancy.TenantID, occupantID int64) ([]dto.PaymentResponse, error)
	GetByStatus(ctx context.Context, tenantID tenancy.TenantID, status string) ([]dto.PaymentResponse, error)
	GetByMethod(ctx context.Context, tenantID tenancy.TenantID, method string) ([]dto.PaymentResponse, error)
	GetByPayer(ctx context.Context, tenantID tenancy.TenantID, payerName string) ([]dto.PaymentResponse, error)
	GetByDateRange(ctx context.Context, tenantID tenancy.TenantID, start, end gModel.Date) ([]dto.PaymentResponse, error)
	Update(ctx context.Context, tenantID tenancy.TenantID, id int64, req dto.UpdatePaymentRequest) (dto.PaymentResponse, error)
	Delete(ctx context.Context, tenantID tenancy.TenantID, id int64) error
}

type serviceImpl struct {
	repo      repository.Payment
	occupants occupantService.Occupant
	publisher broker.Publisher
	otel      otel.Otel
}

func New(repo repository.Payment, occupants occupantService.Occupant, publisher broker.Publisher, otel otel.Otel) Payment {
	return &serviceImpl{
		repo:      repo,
		occupants: occupants,
		publisher: publisher,
		otel:      otel,
	}
}

func validateAmount(amount decimal.Decimal) error {
	switch {
	case !amount.IsPositive():
		return failure.BadRequestFromString("amount must be greater than zero")
	case !amount.Equal(amount.Round(2)):
		return failure.BadRequestFromString("amount must have at most 2 decimal places")
	case amount.GreaterThan(maxAmount):
		return failure.BadRequestFromString("amount must not exceed " + maxAmount.StringFixed(2))
	}

	return nil
}

func (s *serviceImpl) ensureOccupant(ctx context.Context, tenantID tenancy.TenantID, occupantID *int64) error {
	if occupantID == nil {
		return nil
	}

	exists, err := s.occupants.Exists(ctx, tenantID, *occupantID)
	if err != nil {
		log.Error().Err(err).Int64("occupant_id", *occupantID).Msg("failed to check occupant")

		return fmt.Errorf("failed to check occupant: %w", err)
	}

	if !exists {
		return failure.BadRequestFromString(fmt.Sprintf("occupant %d does not exist", *occupantID))
	}

	return nil
}

func (s *serviceImpl) Create(ctx context.Context, tenantID tenancy.TenantID, req dto.CreatePaymentRequest) (res dto.PaymentResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".payment.Create")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if err = validateAmount(req.Amount); err != nil {
		return res, err
	}

	if err = s.ensureOccupant(ctx, tenantID, req.OccupantID); err != nil {
		return res, err
	}

	payment := req.ToModel()

	saved, err := s.repo.Save(ctx, tenantID, &payment)
	if err != nil {
		log.Error().Err(err).Int64("tenant_id", tenantID.Int64()).Msg("failed to create payment")

		return res, fmt.Errorf("failed to create payment: %w", err)
	}

	var event dto.PaymentRecordedEvent
	event.FromModel(tenantID.Int64(), *saved)
	broker.PublishAsync(ctx, s.publisher, broker.EventPaymentRecorded, event)

	res.FromModel(*saved)

	return res, nil
}

func (s *serviceImpl) GetAll(ctx context.Context, tenantID tenancy.TenantID, params gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetPaymentsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".payment.GetAll")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	total, err := s.repo.Count(ctx, tenantID, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count payments")

		return res, fmt.Errorf("failed to count payments: %w", err)
	}

	models, err := s.repo.FindWhere(ctx, tenantID, params, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get payments")

		return res, fmt.Errorf("failed to get payments: %w", err)
	}

	res.FromModels(models, total, params.Limit)

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, tenantID tenancy.TenantID, id int64) (res dto.PaymentResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".payment.Get")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	payment, err := s.repo.FindByID(ctx, tenantID, id)
	if err != nil {
		log.Error().Err(err).Int64("id", id).Msg("failed to get payment")

		return res, fmt.Errorf("failed to get payment: %w", err)
	}

	res.FromModel(*payment)

	return res, nil
}

func (s *serviceImpl) list(ctx context.Context, span string, find func(ctx context.Context) ([]model.Payment, error)) (res []dto.PaymentResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".payment."+span)
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	models, err := find(ctx)
	if err != nil {
		log.Error().Err(err).Str("query", span).Msg("failed to get payments")

		return nil, fmt.Errorf("failed to get payments: %w", err)
	}

	return dto.FromModels(models), nil
}

func (s *serviceImpl) GetByOccupant(ctx context.Context, tenantID tenancy.TenantID, occupantID int64) ([]dto.PaymentResponse, error) {
	return s.list(ctx, "GetByOccupant", func(ctx context.Context) ([]model.Payment, error) {
		return s.repo.FindByOccupant(ctx, tenantID, occupantID)
	})
}

func (s *serviceImpl) GetByStatus(ctx context.Context, tenantID tenancy.TenantID, status string) ([]dto.PaymentResponse, error) {
	return s.list(ctx, "GetByStatus", func(ctx context.Context) ([]model.Payment, error) {
		return s.repo.FindByStatus(ctx, tenantID, status)
	})
}

func (s *serviceImpl) GetByMethod(ctx context.Context, tenantID tenancy.TenantID, method string) ([]dto.PaymentResponse, error) {
	return s.list(ctx, "GetByMethod", func(ctx context.Context) ([]model.Payment, error) {
		return s.repo.FindByMethod(ctx, tenantID, method)
	})
}

func (s *serviceImpl) GetByPayer(ctx context.Context, tenantID tenancy.TenantID, payerName string) ([]dto.PaymentResponse, error) {
	return s.list(ctx, "GetByPayer", func(ctx context.Context) ([]model.Payment, error) {
		return s.repo.FindByPayer(ctx, tenantID, payerName)
	})
}

func (s *serviceImpl) GetByDateRange(ctx context.Context, tenantID tenancy.TenantID, start, end gModel.Date) ([]dto.PaymentResponse, error) {
	if end.Before(start.Time) {
		return nil, failure.BadRequestFromString("start date must not be after end date")
	}

	return s.list(ctx, "GetByDateRange", func(ctx context.Context) ([]model.Payment, error) {
		return s.repo.FindByDateRange(ctx, tenantID, start, end)
	})
}

func (s *serviceImpl) Update(ctx context.Context, tenantID tenancy.TenantID, id int64, req dto.UpdatePaymentRequest) (res dto.PaymentResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".payment.Update")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if req.Amount != nil {
		if err = validateAmount(*req.Amount); err != nil {
			return res, err
		}
	}

	payment, err := s.repo.FindByID(ctx, tenantID, id)
	if err != nil {
		log.Error().Err(err).Int64("id", id).Msg("failed to get payment")

		return res, fmt.Errorf("failed to get payment: %w", err)
	}

	if req.OccupantID != nil && (payment.OccupantID == nil || *payment.OccupantID != *req.OccupantID) {
		if err = s.ensureOccupant(ctx, tenantID, req.OccupantID); err != nil {
			return res, err
		}
	}

	req.Apply(payment)

	saved, err := s.repo.Save(ctx, tenantID, payment)
	if err != nil {
		log.Error().Err(err).Int64("id", id).Msg("failed to update payment")

		return res, fmt.Errorf("failed to update payment: %w", err)
	}

	res.FromModel(*saved)

	return res, nil
}

func (s *serviceImpl) Delete(ctx context.Context, tenantID tenancy.TenantID, id int64) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".payment.Delete")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if _, err = s.repo.FindByID(ctx, tenantID, id); err != nil {
		log.Error().Err(err).Int64("id", id).Msg("failed to get payment")

		return fmt.Errorf("failed to get payment: %w", err)
	}

	if err = s.repo.DeleteByID(ctx, tenantID, id); err != nil {
		log.Error().Err(err).Int64("id", id).Msg("failed to delete payment")

		return fmt.Errorf("failed to delete payment: %w", err)
	}

	return nil
}
