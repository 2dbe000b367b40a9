package occupant

import (
	"net/http"
	"strings"

	"pgms/infras/otel"
	"pgms/internal/domains/occupant/model"
	"pgms/internal/domains/occupant/model/dto"
	"pgms/internal/domains/occupant/service"
	"pgms/shared/constant"
	gDto "pgms/shared/dto"
	"pgms/shared/validator"
	"pgms/transport/http/request"
	"pgms/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Occupant
	otel    otel.Otel
}

func New(service service.Occupant, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/occupants", func(routerGroup chi.Router) {
		routerGroup.Post("/", handler.CreateOccupant)
		routerGroup.Get("/", handler.GetOccupants)
		routerGroup.Get("/status/{status}", handler.GetOccupantsByStatus)
		routerGroup.Get("/{id}", handler.GetOccupantByID)
		routerGroup.Put("/{id}", handler.UpdateOccupant)
		routerGroup.Delete("/{id}", handler.DeleteOccupant)
	})
}

// CreateOccupant registers an occupant and assigns the requested bed.
// @Summary Create occupant
// @Tags Occupant
// @Accept json
// @Produce json
// @Param request body dto.CreateOccupantRequest true "Occupant"
// @Success 201 {object} response.Data[dto.OccupantResponse]
// @Failure 400 {object} response.Error
// @Failure 409 {object} response.Error
// @Failure 503 {object} response.Error "Tables not provisioned"
// @Router /v1/occupants [post]
// @Security BearerAuth
func (handler *Handler) CreateOccupant(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateOccupant")
	defer scope.End()

	tenantID, err := request.TenantID(r)
	if err != nil {
		scope.TraceError(err)
		response.WithError(w, err)

		return
	}

	req := dto.CreateOccupantRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request")

		response.WithError(w, err)

		return
	}

	res, err := handler.service.Create(ctx, tenantID, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create occupant")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Occupant created successfully for tenant " + tenantID.String())

	response.WithJSON(w, http.StatusCreated, res)
}

// GetOccupants lists occupants. A name or room_number query narrows the list
// and returns it unpaginated.
// @Summary Get occupants
// @Tags Occupant
// @Produce json
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Param name query string false "Case-insensitive name search"
// @Param room_number query string false "Occupants of one room"
// @Param status query string false "Filter by status"
// @Success 200 {object} response.Data[dto.GetOccupantsResponse]
// @Router /v1/occupants [get]
// @Security BearerAuth
func (handler *Handler) GetOccupants(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetOccupants")
	defer scope.End()

	tenantID, err := request.TenantID(r)
	if err != nil {
		scope.TraceError(err)
		response.WithError(w, err)

		return
	}

	query := r.URL.Query()

	var res any

	switch {
	case strings.TrimSpace(query.Get(model.FieldName)) != "":
		res, err = handler.service.SearchByName(ctx, tenantID, strings.TrimSpace(query.Get(model.FieldName)))
	case strings.TrimSpace(query.Get(model.FieldRoomNumber)) != "":
		res, err = handler.service.GetByRoomNumber(ctx, tenantID, strings.TrimSpace(query.Get(model.FieldRoomNumber)))
	default:
		queryParams := gDto.QueryParams{}
		queryParams.FromRequest(r, true)

		res, err = handler.service.GetAll(ctx, tenantID, queryParams, request.QueryFilter(r, model.FieldStatus))
	}

	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get occupants")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}

// GetOccupantsByStatus lists occupants in one status.
// @Summary Get occupants by status
// @Tags Occupant
// @Produce json
// @Param status path string true "ACTIVE, INACTIVE or VACATED"
// @Success 200 {object} response.Data[[]dto.OccupantResponse]
// @Router /v1/occupants/status/{status} [get]
// @Security BearerAuth
func (handler *Handler) GetOccupantsByStatus(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetOccupantsByStatus")
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
		log.Error().Err(err).Msg("failed to get occupants by status")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}

// GetOccupantByID retrieves an occupant by ID.
// @Summary Get occupant by ID
// @Tags Occupant
// @Produce json
// @Param id path int true "Occupant ID"
// @Success 200 {object} response.Data[dto.OccupantResponse]
// @Failure 404 {object} response.Error
// @Router /v1/occupants/{id} [get]
// @Security BearerAuth
func (handler *Handler) GetOccupantByID(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetOccupantByID")
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
		log.Error().Err(err).Msg("failed to get occupant")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}

// UpdateOccupant applies a partial update and moves the bed when it changes.
// @Summary Update occupant
// @Tags Occupant
// @Accept json
// @Produce json
// @Param id path int true "Occupant ID"
// @Param request body dto.UpdateOccupantRequest true "Fields to change"
// @Success 200 {object} response.Data[dto.OccupantResponse]
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 409 {object} response.Error
// @Router /v1/occupants/{id} [put]
// @Security BearerAuth
func (handler *Handler) UpdateOccupant(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateOccupant")
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

	req := dto.UpdateOccupantRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request")

		response.WithError(w, err)

		return
	}

	res, err := handler.service.Update(ctx, tenantID, id, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update occupant")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}

// DeleteOccupant removes an occupant and frees their bed.
// @Summary Delete occupant
// @Tags Occupant
// @Produce json
// @Param id path int true "Occupant ID"
// @Success 200 {object} response.Message
// @Failure 404 {object} response.Error
// @Router /v1/occupants/{id} [delete]
// @Security BearerAuth
func (handler *Handler) DeleteOccupant(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteOccupant")
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
		log.Error().Err(err).Msg("failed to delete occupant")

		response.WithError(w, err)

		return
	}

	response.WithMessage(w, http.StatusOK, "Occupant deleted successfully")
}
