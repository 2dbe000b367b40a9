// Package operator serves the operator endpoints guarded by the API key.
package operator

import (
	"net/http"

	"pgms/infras/otel"
	"pgms/internal/domains/admin/model"
	"pgms/internal/domains/admin/model/dto"
	"pgms/internal/domains/admin/service"
	"pgms/shared"
	"pgms/shared/constant"
	gDto "pgms/shared/dto"
	"pgms/shared/validator"
	"pgms/transport/http/request"
	"pgms/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Admin
	otel    otel.Otel
}

func New(service service.Admin, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(r chi.Router) {
	r.Route("/internal/admins", func(r chi.Router) {
		r.Get("/", handler.GetAdmins)
		r.Get("/{id}/tables", handler.TableStatus)
		r.Post("/{id}/tables", handler.RepairTables)
		r.Put("/{id}/freeze", handler.Freeze)
	})
}

// GetAdmins lists admin accounts.
// @Summary List admins
// @Tags Internal
// @Produce json
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Param is_frozen query boolean false "Filter by frozen state"
// @Success 200 {object} response.Data[dto.GetAdminsResponse]
// @Failure 403 {object} response.Error
// @Router /v1/internal/admins [get]
// @Security ApiKeyAuth
func (handler *Handler) GetAdmins(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetAdmins")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)

	filter := gDto.FilterGroup{Operator: gDto.FilterGroupOperatorAnd}

	frozen, err := shared.ParseOptionalBool(model.FieldFrozen, r.URL.Query().Get(model.FieldFrozen))
	if err != nil {
		scope.TraceError(err)
		response.WithError(w, err)

		return
	}

	if frozen != nil {
		filter.Filters = append(filter.Filters, gDto.Filter{
			Field:    model.FieldFrozen,
			Operator: gDto.FilterOperatorEq,
			Value:    *frozen,
		})
	}

	res, err := handler.service.GetAll(ctx, queryParams, filter)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get admins")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}

// TableStatus reports which tables an admin has.
// @Summary Get an admin's table status
// @Tags Internal
// @Produce json
// @Param id path int true "Admin ID"
// @Success 200 {object} response.Data[dto.TableStatus]
// @Failure 404 {object} response.Error
// @Router /v1/internal/admins/{id}/tables [get]
// @Security ApiKeyAuth
func (handler *Handler) TableStatus(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".InternalTableStatus")
	defer scope.End()

	id, err := request.PathID(r, constant.RequestParamID)
	if err != nil {
		scope.TraceError(err)
		response.WithError(w, err)

		return
	}

	res, err := handler.service.TableStatus(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Int64("admin_id", id).Msg("failed to get table status")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}

// RepairTables provisions an admin's missing tables.
// @Summary Repair an admin's tables
// @Tags Internal
// @Produce json
// @Param id path int true "Admin ID"
// @Success 200 {object} response.Data[dto.RepairTablesResponse]
// @Failure 404 {object} response.Error
// @Router /v1/internal/admins/{id}/tables [post]
// @Security ApiKeyAuth
func (handler *Handler) RepairTables(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".InternalRepairTables")
	defer scope.End()

	id, err := request.PathID(r, constant.RequestParamID)
	if err != nil {
		scope.TraceError(err)
		response.WithError(w, err)

		return
	}

	res, err := handler.service.RepairTables(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Int64("admin_id", id).Msg("failed to repair tables")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Tables repaired for admin " + chi.URLParam(r, constant.RequestParamID))

	response.WithJSON(w, http.StatusOK, res)
}

// Freeze freezes or unfreezes an admin.
// @Summary Freeze an admin
// @Description Frozen admins cannot log in or refresh tokens.
// @Tags Internal
// @Accept json
// @Produce json
// @Param id path int true "Admin ID"
// @Param request body dto.FreezeRequest true "Frozen state"
// @Success 200 {object} response.Data[dto.AdminResponse]
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Router /v1/internal/admins/{id}/freeze [put]
// @Security ApiKeyAuth
func (handler *Handler) Freeze(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".Freeze")
	defer scope.End()

	id, err := request.PathID(r, constant.RequestParamID)
	if err != nil {
		scope.TraceError(err)
		response.WithError(w, err)

		return
	}

	req := dto.FreezeRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	res, err := handler.service.SetFrozen(ctx, id, *req.Frozen)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Int64("admin_id", id).Msg("failed to change frozen state")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}
