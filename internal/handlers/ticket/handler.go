package ticket

import (
	"errors"
	"net/http"

	"pgms/infras/otel"
	"pgms/internal/domains/ticket/model"
	"pgms/internal/domains/ticket/model/dto"
	"pgms/internal/domains/ticket/service"
	"pgms/shared/constant"
	"pgms/shared/failure"
	"pgms/shared/validator"
	"pgms/transport/http/request"
	"pgms/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

const formFileAttachment = "attachment"

var ticketFilterFields = []string{model.FieldStatus, model.FieldPriority}

type Handler struct {
	service service.Ticket
	otel    otel.Otel
}

func New(service service.Ticket, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(r chi.Router) {
	r.Route("/tickets", func(r chi.Router) {
		r.Post("/", handler.CreateTicket)
		r.Get("/", handler.GetMyTickets)
		r.Get("/all", handler.GetAllTickets)
		r.Get("/{id}", handler.GetTicket)
		r.Put("/{id}/respond", handler.RespondTicket)
	})
}

// readTicket decodes the multipart form of a new ticket. The attachment is
// optional.
func readTicket(r *http.Request) (dto.CreateTicketRequest, *dto.Attachment, error) {
	if err := r.ParseMultipartForm(constant.RequestMaxMemory); err != nil {
		return dto.CreateTicketRequest{}, nil, failure.BadRequest(err)
	}

	req := dto.CreateTicketRequest{
		Title:       r.FormValue("title"),
		Description: r.FormValue("description"),
		Priority:    r.FormValue("priority"),
	}

	if err := validator.ValidateStruct(&req); err != nil {
		return req, nil, err
	}

	file, header, err := r.FormFile(formFileAttachment)
	if errors.Is(err, http.ErrMissingFile) {
		return req, nil, nil
	}

	if err != nil {
		return req, nil, failure.BadRequest(err)
	}

	return req, &dto.Attachment{File: file, Header: header}, nil
}

// CreateTicket raises a support ticket.
// @Summary Create ticket
// @Tags Ticket
// @Accept multipart/form-data
// @Produce json
// @Param title formData string true "Title"
// @Param description formData string true "Description"
// @Param priority formData string false "LOW, MEDIUM or HIGH"
// @Param attachment formData file false "Image or PDF up to 5 MB"
// @Success 201 {object} response.Data[dto.TicketResponse]
// @Failure 400 {object} response.Error
// @Failure 503 {object} response.Error
// @Router /v1/tickets [post]
// @Security BearerAuth
func (handler *Handler) CreateTicket(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateTicket")
	defer scope.End()

	tenantID, err := request.TenantID(r)
	if err != nil {
		scope.TraceError(err)
		response.WithError(w, err)

		return
	}

	req, attachment, err := readTicket(r)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request")

		response.WithError(w, err)

		return
	}

	if attachment != nil {
		defer attachment.File.Close()
	}

	res, err := handler.service.Create(ctx, tenantID.Int64(), req, attachment)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create ticket")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusCreated, res)
}

// GetMyTickets lists the caller's tickets, newest first.
// @Summary Get my tickets
// @Tags Ticket
// @Produce json
// @Success 200 {object} response.Data[[]dto.TicketResponse]
// @Router /v1/tickets [get]
// @Security BearerAuth
func (handler *Handler) GetMyTickets(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetMyTickets")
	defer scope.End()

	tenantID, err := request.TenantID(r)
	if err != nil {
		scope.TraceError(err)
		response.WithError(w, err)

		return
	}

	res, err := handler.service.GetMine(ctx, tenantID.Int64())
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get tickets")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}

// GetAllTickets lists every account's tickets for support. Superadmin only.
// @Summary Get all tickets
// @Tags Ticket
// @Produce json
// @Param status query string false "Filter by status"
// @Param priority query string false "Filter by priority"
// @Success 200 {object} response.Data[[]dto.TicketResponse]
// @Failure 403 {object} response.Error
// @Router /v1/tickets/all [get]
// @Security BearerAuth
func (handler *Handler) GetAllTickets(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetAllTickets")
	defer scope.End()

	res, err := handler.service.GetAll(ctx, request.QueryFilter(r, ticketFilterFields...))
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get tickets")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}

// GetTicket retrieves one of the caller's tickets.
// @Summary Get ticket
// @Tags Ticket
// @Produce json
// @Param id path int true "Ticket ID"
// @Success 200 {object} response.Data[dto.TicketResponse]
// @Failure 403 {object} response.Error
// @Failure 404 {object} response.Error
// @Router /v1/tickets/{id} [get]
// @Security BearerAuth
func (handler *Handler) GetTicket(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetTicket")
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

	res, err := handler.service.Get(ctx, tenantID.Int64(), id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get ticket")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}

// RespondTicket answers a ticket. Superadmin only.
// @Summary Respond to ticket
// @Tags Ticket
// @Accept json
// @Produce json
// @Param id path int true "Ticket ID"
// @Param request body dto.RespondTicketRequest true "Response"
// @Success 200 {object} response.Data[dto.TicketResponse]
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Router /v1/tickets/{id}/respond [put]
// @Security BearerAuth
func (handler *Handler) RespondTicket(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".RespondTicket")
	defer scope.End()

	id, err := request.PathID(r, constant.RequestParamID)
	if err != nil {
		response.WithError(w, err)

		return
	}

	req := dto.RespondTicketRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request")

		response.WithError(w, err)

		return
	}

	res, err := handler.service.Respond(ctx, id, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to respond to ticket")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}
