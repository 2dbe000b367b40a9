package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks -mock_names=Plan=MockPlanService

import (
	"context"
	"fmt"

	"pgms/infras/broker"
	"pgms/infras/otel"
	adminDto "pgms/internal/domains/admin/model/dto"
	adminService "pgms/internal/domains/admin/service"
	"pgms/internal/domains/subscription/model"
	"pgms/internal/domains/subscription/model/dto"
	"pgms/internal/domains/subscription/repository"
	"pgms/shared/constant"
	"pgms/shared/failure"
	"pgms/shared/timezone"

	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
)

// maxPrice is the largest value a NUMERIC(12,2) column holds.
var maxPrice = decimal.RequireFromString("9999999999.99")

type Plan interface {
	Create(ctx context.Context, req dto.CreatePlanRequest) (dto.PlanResponse, error)
	GetAll(ctx context.Context, activeOnly bool) ([]dto.PlanResponse, error)
	Get(ctx context.Context, id int64) (dto.PlanResponse, error)
	Update(ctx context.Context, id int64, req dto.UpdatePlanRequest) (dto.PlanResponse, error)
	// Toggle flips whether the plan is offered to new subscribers.
	Toggle(ctx context.Context, id int64) (dto.PlanResponse, error)
	Delete(ctx context.Context, id int64) error
	// ActivateFree starts a subscription to an active plan with no price.
	// Paid plans are activated by the billing gateway.
	ActivateFree(ctx context.Context, adminID int64, req dto.ActivatePlanRequest) (adminDto.AdminResponse, error)
}

type serviceImpl struct {
	repo      repository.Plan
	admins    adminService.Admin
	publisher broker.Publisher
	otel      otel.Otel
}

func New(repo repository.Plan, admins adminService.Admin, publisher broker.Publisher, otel otel.Otel) Plan {
	return &serviceImpl{
		repo:      repo,
		admins:    admins,
		publisher: publisher,
		otel:      otel,
	}
}

func validatePrice(price decimal.Decimal) error {
	switch {
	case price.IsNegative():
		return failure.BadRequestFromString("price must not be negative")
	case !price.Equal(price.Round(2)):
		return failure.BadRequestFromString("price must have at most 2 decimal places")
	case price.GreaterThan(maxPrice):
		return failure.BadRequestFromString("price must not exceed " + maxPrice.StringFixed(2))
	}

	return nil
}

func (s *serviceImpl) ensureUniqueName(ctx context.Context, name string) error {
	_, found, err := s.repo.FindByName(ctx, name)
	if err != nil {
		log.Error().Err(err).Msg("failed to check plan name")

		return fmt.Errorf("failed to check plan name: %w", err)
	}

	if found {
		return &failure.DuplicateError{Entity: model.EntityName, Field: model.FieldName, Value: name}
	}

	return nil
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreatePlanRequest) (res dto.PlanResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".subscription.Create")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if err = validatePrice(req.Price); err != nil {
		return res, err
	}

	if err = s.ensureUniqueName(ctx, req.Name); err != nil {
		return res, err
	}

	plan := req.ToModel()

	if err = s.repo.Insert(ctx, &plan); err != nil {
		log.Error().Err(err).Str("name", req.Name).Msg("failed to create plan")

		return res, fmt.Errorf("failed to create plan: %w", err)
	}

	res.FromModel(plan)

	return res, nil
}

func (s *serviceImpl) GetAll(ctx context.Context, activeOnly bool) (res []dto.PlanResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".subscription.GetAll")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	plans, err := s.repo.FindAll(ctx, activeOnly)
	if err != nil {
		log.Error().Err(err).Bool("active_only", activeOnly).Msg("failed to get plans")

		return nil, fmt.Errorf("failed to get plans: %w", err)
	}

	return dto.FromModels(plans), nil
}

func (s *serviceImpl) Get(ctx context.Context, id int64) (res dto.PlanResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".subscription.Get")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	plan, err := s.repo.FindByID(ctx, id)
	if err != nil {
		log.Error().Err(err).Int64("id", id).Msg("failed to get plan")

		return res, fmt.Errorf("failed to get plan: %w", err)
	}

	res.FromModel(*plan)

	return res, nil
}

func (s *serviceImpl) Update(ctx context.Context, id int64, req dto.UpdatePlanRequest) (res dto.PlanResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".subscription.Update")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if req.Price != nil {
		if err = validatePrice(*req.Price); err != nil {
			return res, err
		}
	}

	plan, err := s.repo.FindByID(ctx, id)
	if err != nil {
		log.Error().Err(err).Int64("id", id).Msg("failed to get plan")

		return res, fmt.Errorf("failed to get plan: %w", err)
	}

	if req.Name != nil && *req.Name != plan.Name {
		if err = s.ensureUniqueName(ctx, *req.Name); err != nil {
			return res, err
		}

		plan.Name = *req.Name
	}

	req.Apply(plan)

	if err = s.repo.Update(ctx, plan); err != nil {
		log.Error().Err(err).Int64("id", id).Msg("failed to update plan")

		return res, fmt.Errorf("failed to update plan: %w", err)
	}

	res.FromModel(*plan)

	return res, nil
}

func (s *serviceImpl) Toggle(ctx context.Context, id int64) (res dto.PlanResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".subscription.Toggle")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	plan, err := s.repo.FindByID(ctx, id)
	if err != nil {
		log.Error().Err(err).Int64("id", id).Msg("failed to get plan")

		return res, fmt.Errorf("failed to get plan: %w", err)
	}

	plan.Active = !plan.Active

	if err = s.repo.Update(ctx, plan); err != nil {
		log.Error().Err(err).Int64("id", id).Msg("failed to toggle plan")

		return res, fmt.Errorf("failed to toggle plan: %w", err)
	}

	res.FromModel(*plan)

	return res, nil
}

func (s *serviceImpl) Delete(ctx context.Context, id int64) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".subscription.Delete")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if err = s.repo.Delete(ctx, id); err != nil {
		log.Error().Err(err).Int64("id", id).Msg("failed to delete plan")

		return fmt.Errorf("failed to delete plan: %w", err)
	}

	return nil
}

func (s *serviceImpl) ActivateFree(ctx context.Context, adminID int64, req dto.ActivatePlanRequest) (res adminDto.AdminResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".subscription.ActivateFree")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	plan, err := s.repo.FindByID(ctx, req.PlanID)
	if err != nil {
		if failure.IsNotFound(err) {
			return res, failure.BadRequestFromString(fmt.Sprintf("plan %d does not exist", req.PlanID))
		}

		log.Error().Err(err).Int64("plan_id", req.PlanID).Msg("failed to get plan")

		return res, fmt.Errorf("failed to get plan: %w", err)
	}

	if !plan.Active {
		return res, failure.BadRequestFromString(fmt.Sprintf("plan %s is not available", plan.Name))
	}

	if !plan.Free() {
		return res, failure.BadRequestFromString(fmt.Sprintf("plan %s requires payment", plan.Name))
	}

	start := timezone.Now()
	end := plan.EndsAt(start)

	res, err = s.admins.ActivateSubscription(ctx, adminID, adminDto.Subscription{Plan: plan.Name, Start: start, End: end})
	if err != nil {
		log.Error().Err(err).Int64("admin_id", adminID).Int64("plan_id", plan.ID).Msg("failed to activate plan")

		return res, fmt.Errorf("failed to activate plan: %w", err)
	}

	broker.PublishAsync(ctx, s.publisher, broker.EventSubscriptionActivated, dto.SubscriptionActivatedEvent{
		AdminID:   adminID,
		PlanID:    plan.ID,
		Plan:      plan.Name,
		StartDate: timezone.Format(start, constant.DateFormat),
		EndDate:   timezone.Format(end, constant.DateFormat),
	})

	return res, nil
}
