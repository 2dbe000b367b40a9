package subscription

import (
	"net/http"

	"pgms/infras/otel"
	"pgms/internal/domains/subscription/model/dto"
	"pgms/internal/domains/subscription/service"
	"pgms/shared/constant"
	"pgms/shared/validator"
	"pgms/transport/http/request"
	"pgms/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Plan
	otel    otel.Otel
}

func New(service service.Plan, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(r chi.Router) {
	r.Route("/subscription-plans", func(r chi.Router) {
		r.Get("/", handler.GetPlans)
		r.Get("/active", handler.GetActivePlans)
		r.Get("/{id}", handler.GetPlan)
		r.Post("/", handler.CreatePlan)
		r.Put("/{id}", handler.UpdatePlan)
		r.Patch("/{id}/toggle", handler.TogglePlan)
		r.Delete("/{id}", handler.DeletePlan)
	})
	r.Post("/subscriptions/activate-free", handler.ActivateFree)
}

// GetPlans lists every plan, including withdrawn ones.
// @Summary Get subscription plans
// @Tags Subscription
// @Produce json
// @Success 200 {object} response.Data[[]dto.PlanResponse]
// @Router /v1/subscription-plans [get]
// @Security BearerAuth
func (handler *Handler) GetPlans(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetPlans")
	defer scope.End()

	res, err := handler.service.GetAll(ctx, false)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get plans")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}

// GetActivePlans lists the plans offered to new subscribers. No token needed.
// @Summary Get active subscription plans
// @Tags Subscription
// @Produce json
// @Success 200 {object} response.Data[[]dto.PlanResponse]
// @Router /v1/subscription-plans/active [get]
func (handler *Handler) GetActivePlans(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetActivePlans")
	defer scope.End()

	res, err := handler.service.GetAll(ctx, true)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get active plans")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}

// GetPlan retrieves a plan by ID.
// @Summary Get subscription plan
// @Tags Subscription
// @Produce json
// @Param id path int true "Plan ID"
// @Success 200 {object} response.Data[dto.PlanResponse]
// @Failure 404 {object} response.Error
// @Router /v1/subscription-plans/{id} [get]
// @Security BearerAuth
func (handler *Handler) GetPlan(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetPlan")
	defer scope.End()

	id, err := request.PathID(r, constant.RequestParamID)
	if err != nil {
		response.WithError(w, err)

		return
	}

	res, err := handler.service.Get(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get plan")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}

// CreatePlan adds a plan. Superadmin only.
// @Summary Create subscription plan
// @Tags Subscription
// @Accept json
// @Produce json
// @Param request body dto.CreatePlanRequest true "Plan"
// @Success 201 {object} response.Data[dto.PlanResponse]
// @Failure 400 {object} response.Error
// @Failure 409 {object} response.Error
// @Router /v1/subscription-plans [post]
// @Security BearerAuth
func (handler *Handler) CreatePlan(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreatePlan")
	defer scope.End()

	req := dto.CreatePlanRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request")

		response.WithError(w, err)

		return
	}

	res, err := handler.service.Create(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create plan")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusCreated, res)
}

// UpdatePlan applies a partial update to a plan. Superadmin only.
// @Summary Update subscription plan
// @Tags Subscription
// @Accept json
// @Produce json
// @Param id path int true "Plan ID"
// @Param request body dto.UpdatePlanRequest true "Fields to change"
// @Success 200 {object} response.Data[dto.PlanResponse]
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Router /v1/subscription-plans/{id} [put]
// @Security BearerAuth
func (handler *Handler) UpdatePlan(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdatePlan")
	defer scope.End()

	id, err := request.PathID(r, constant.RequestParamID)
	if err != nil {
		response.WithError(w, err)

		return
	}

	req := dto.UpdatePlanRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request")

		response.WithError(w, err)

		return
	}

	res, err := handler.service.Update(ctx, id, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update plan")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}

// TogglePlan withdraws an active plan or offers a withdrawn one again.
// @Summary Toggle subscription plan
// @Tags Subscription
// @Produce json
// @Param id path int true "Plan ID"
// @Success 200 {object} response.Data[dto.PlanResponse]
// @Failure 404 {object} response.Error
// @Router /v1/subscription-plans/{id}/toggle [patch]
// @Security BearerAuth
func (handler *Handler) TogglePlan(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".TogglePlan")
	defer scope.End()

	id, err := request.PathID(r, constant.RequestParamID)
	if err != nil {
		response.WithError(w, err)

		return
	}

	res, err := handler.service.Toggle(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to toggle plan")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}

// DeletePlan removes a plan. Superadmin only.
// @Summary Delete subscription plan
// @Tags Subscription
// @Produce json
// @Param id path int true "Plan ID"
// @Success 200 {object} response.Message
// @Failure 404 {object} response.Error
// @Router /v1/subscription-plans/{id} [delete]
// @Security BearerAuth
func (handler *Handler) DeletePlan(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeletePlan")
	defer scope.End()

	id, err := request.PathID(r, constant.RequestParamID)
	if err != nil {
		response.WithError(w, err)

		return
	}

	if err := handler.service.Delete(ctx, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to delete plan")

		response.WithError(w, err)

		return
	}

	response.WithMessage(w, http.StatusOK, "Plan deleted successfully")
}

// ActivateFree subscribes the signed in admin to a free plan.
// @Summary Activate free plan
// @Tags Subscription
// @Accept json
// @Produce json
// @Param request body dto.ActivatePlanRequest true "Plan to activate"
// @Success 200 {object} response.Data[any]
// @Failure 400 {object} response.Error
// @Router /v1/subscriptions/activate-free [post]
// @Security BearerAuth
func (handler *Handler) ActivateFree(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".ActivateFree")
	defer scope.End()

	tenantID, err := request.TenantID(r)
	if err != nil {
		scope.TraceError(err)
		response.WithError(w, err)

		return
	}

	req := dto.ActivatePlanRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request")

		response.WithError(w, err)

		return
	}

	res, err := handler.service.ActivateFree(ctx, tenantID.Int64(), req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to activate plan")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}
