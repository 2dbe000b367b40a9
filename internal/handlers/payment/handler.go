package payment

import (
	"net/http"
	"strings"

	"pgms/infras/otel"
	"pgms/internal/domains/payment/model"
	"pgms/internal/domains/payment/model/dto"
	"pgms/internal/domains/payment/service"
	"pgms/shared/constant"
	gDto "pgms/shared/dto"
	"pgms/shared/failure"
	gModel "pgms/shared/model"
	"pgms/shared/validator"
	"pgms/transport/http/request"
	"pgms/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

const (
	queryParamPayer = "payer"
	queryParamStart = "start"
	queryParamEnd   = "end"
)

type Handler struct {
	service service.Payment
	otel    otel.Otel
}

func New(service service.Payment, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/payments", func(routerGroup chi.Router) {
		routerGroup.Post("/", handler.CreatePayment)
		routerGroup.Get("/", handler.GetPayments)
		routerGroup.Get("/occupant/{id}", handler.GetPaymentsByOccupant)
		routerGroup.Get("/status/{status}", handler.GetPaymentsByStatus)
		routerGroup.Get("/method/{method}", handler.GetPaymentsByMethod)
		routerGroup.Get("/date-range", handler.GetPaymentsByDateRange)
		routerGroup.Get("/{id}", handler.GetPaymentByID)
		routerGroup.Put("/{id}", handler.UpdatePayment)
		routerGroup.Delete("/{id}", handler.DeletePayment)
	})
}

// CreatePayment records a payment.
// @Summary Record payment
// @Description Missing date, status, transaction id and details are filled in by the server.
// @Tags Payment
// @Accept json
// @Produce json
// @Param request body dto.CreatePaymentRequest true "Payment"
// @Success 201 {object} response.Data[dto.PaymentResponse]
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error "Unknown occupant"
// @Router /v1/payments [post]
// @Security BearerAuth
func (handler *Handler) CreatePayment(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreatePayment")
	defer scope.End()

	tenantID, err := request.TenantID(r)
	if err != nil {
		scope.TraceError(err)
		response.WithError(w, err)

		return
	}

	req := dto.CreatePaymentRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request")

		response.WithError(w, err)

		return
	}

	res, err := handler.service.Create(ctx, tenantID, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create payment")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Payment recorded for tenant " + tenantID.String())

	response.WithJSON(w, http.StatusCreated, res)
}

// GetPayments lists payments newest first; a payer query searches by payer name.
// @Summary Get payments
// @Tags Payment
// @Produce json
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Param payer query string false "Payer name"
// @Success 200 {object} response.Data[dto.GetPaymentsResponse]
// @Router /v1/payments [get]
// @Security BearerAuth
func (handler *Handler) GetPayments(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetPayments")
	defer scope.End()

	tenantID, err := request.TenantID(r)
	if err != nil {
		scope.TraceError(err)
		response.WithError(w, err)

		return
	}

	var res any

	if payer := strings.TrimSpace(r.URL.Query().Get(queryParamPayer)); payer != "" {
		res, err = handler.service.GetByPayer(ctx, tenantID, payer)
	} else {
		queryParams := gDto.QueryParams{}
		queryParams.FromRequest(r, true)

		res, err = handler.service.GetAll(ctx, tenantID, queryParams, request.QueryFilter(r, model.FieldStatus, model.FieldMethod))
	}

	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get payments")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}

// GetPaymentsByOccupant lists one occupant's payments.
// @Summary Get payments by occupant
// @Tags Payment
// @Produce json
// @Param id path int true "Occupant ID"
// @Success 200 {object} response.Data[[]dto.PaymentResponse]
// @Router /v1/payments/occupant/{id} [get]
// @Security BearerAuth
func (handler *Handler) GetPaymentsByOccupant(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetPaymentsByOccupant")
	defer scope.End()

	tenantID, err := request.TenantID(r)
	if err != nil {
		scope.TraceError(err)
		response.WithError(w, err)

		return
	}

	occupantID, err := request.PathID(r, constant.RequestParamID)
	if err != nil {
		response.WithError(w, err)

		return
	}

	res, err := handler.service.GetByOccupant(ctx, tenantID, occupantID)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get payments by occupant")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}

// GetPaymentsByStatus lists payments in one status.
// @Summary Get payments by status
// @Tags Payment
// @Produce json
// @Param status path string true "COMPLETED, PENDING or FAILED"
// @Success 200 {object} response.Data[[]dto.PaymentResponse]
// @Router /v1/payments/status/{status} [get]
// @Security BearerAuth
func (handler *Handler) GetPaymentsByStatus(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetPaymentsByStatus")
	defer scope.End()

	tenantID, err := request.TenantID(r)
	if err != nil {
		scope.TraceError(err)
		response.WithError(w, err)

		return
	}

	status, err := request.PathParam(r, model.FieldStatus)
	if err != nil {
		response.WithError(w, err)

		return
	}

	res, err := handler.service.GetByStatus(ctx, tenantID, status)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get payments by status")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}

// GetPaymentsByMethod lists payments made with one method.
// @Summary Get payments by method
// @Tags Payment
// @Produce json
// @Param method path string true "Payment method"
// @Success 200 {object} response.Data[[]dto.PaymentResponse]
// @Router /v1/payments/method/{method} [get]
// @Security BearerAuth
func (handler *Handler) GetPaymentsByMethod(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetPaymentsByMethod")
	defer scope.End()

	tenantID, err := request.TenantID(r)
	if err != nil {
		scope.TraceError(err)
		response.WithError(w, err)

		return
	}

	method, err := request.PathParam(r, model.FieldMethod)
	if err != nil {
		response.WithError(w, err)

		return
	}

	res, err := handler.service.GetByMethod(ctx, tenantID, method)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get payments by method")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}

func parseDateParam(r *http.Request, key string) (gModel.Date, error) {
	raw := strings.TrimSpace(r.URL.Query().Get(key))
	if raw == "" {
		return gModel.Date{}, failure.BadRequestFromString(key + " is required")
	}

	date, err := gModel.ParseDate(raw)
	if err != nil {
		return gModel.Date{}, failure.BadRequestFromString(key + " must be a date in YYYY-MM-DD format")
	}

	return date, nil
}

// GetPaymentsByDateRange lists payments dated within [start, end].
// @Summary Get payments by date range
// @Tags Payment
// @Produce json
// @Param start query string true "First day, YYYY-MM-DD"
// @Param end query string true "Last day, YYYY-MM-DD"
// @Success 200 {object} response.Data[[]dto.PaymentResponse]
// @Failure 400 {object} response.Error
// @Router /v1/payments/date-range [get]
// @Security BearerAuth
func (handler *Handler) GetPaymentsByDateRange(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetPaymentsByDateRange")
	defer scope.End()

	tenantID, err := request.TenantID(r)
	if err != nil {
		scope.TraceError(err)
		response.WithError(w, err)

		return
	}

	start, err := parseDateParam(r, queryParamStart)
	if err != nil {
		response.WithError(w, err)

		return
	}

	end, err := parseDateParam(r, queryParamEnd)
	if err != nil {
		response.WithError(w, err)

		return
	}

	res, err := handler.service.GetByDateRange(ctx, tenantID, start, end)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get payments by date range")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}

// GetPaymentByID retrieves a payment by ID.
// @Summary Get payment by ID
// @Tags Payment
// @Produce json
// @Param id path int true "Payment ID"
// @Success 200 {object} response.Data[dto.PaymentResponse]
// @Failure 404 {object} response.Error
// @Router /v1/payments/{id} [get]
// @Security BearerAuth
func (handler *Handler) GetPaymentByID(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetPaymentByID")
	defer scope.End()

	tenantID, err := request.TenantID(r)
	if err != nil {
		scope.TraceError(err)
		response.WithError(w, err)

		return
	}

	id, err := request.PathID(r, constant.RequestParamID)
	if err != nil {
		response.WithError(w, err)

		return
	}

	res, err := handler.service.Get(ctx, tenantID, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get payment")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}

// UpdatePayment applies a partial update to a payment.
// @Summary Update payment
// @Tags Payment
// @Accept json
// @Produce json
// @Param id path int true "Payment ID"
// @Param request body dto.UpdatePaymentRequest true "Fields to change"
// @Success 200 {object} response.Data[dto.PaymentResponse]
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Router /v1/payments/{id} [put]
// @Security BearerAuth
func (handler *Handler) UpdatePayment(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdatePayment")
	defer scope.End()

	tenantID, err := request.TenantID(r)
	if err != nil {
		scope.TraceError(err)
		response.WithError(w, err)

		return
	}

	id, err := request.PathID(r, constant.RequestParamID)
	if err != nil {
		response.WithError(w, err)

		return
	}

	req := dto.UpdatePaymentRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request")

		response.WithError(w, err)

		return
	}

	res, err := handler.service.Update(ctx, tenantID, id, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update payment")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}

// DeletePayment deletes a payment.
// @Summary Delete payment
// @Tags Payment
// @Produce json
// @Param id path int true "Payment ID"
// @Success 200 {object} response.Message
// @Failure 404 {object} response.Error
// @Router /v1/payments/{id} [delete]
// @Security BearerAuth
func (handler *Handler) DeletePayment(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeletePayment")
	defer scope.End()

	tenantID, err := request.TenantID(r)
	if err != nil {
		scope.TraceError(err)
		response.WithError(w, err)

		return
	}

	id, err := request.PathID(r, constant.RequestParamID)
	if err != nil {
		response.WithError(w, err)

		return
	}

	if err := handler.service.Delete(ctx, tenantID, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to delete payment")

		response.WithError(w, err)

		return
	}

	response.WithMessage(w, http.StatusOK, "Payment deleted successfully")
}
