package admin

import (
	"mime/multipart"
	"net/http"

	"pgms/infras/otel"
	"pgms/internal/domains/admin/model"
	"pgms/internal/domains/admin/model/dto"
	"pgms/internal/domains/admin/service"
	"pgms/shared/constant"
	gDto "pgms/shared/dto"
	"pgms/shared/failure"
	"pgms/shared/validator"
	"pgms/transport/http/request"
	"pgms/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

const formFilePhoto = "photo"

var adminFilterFields = []string{model.FieldHostelType, model.FieldRole}

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
	r.Get("/admins", handler.GetAdmins)
	r.Route("/admins/me", func(r chi.Router) {
		r.Get("/", handler.GetProfile)
		r.Put("/", handler.UpdateProfile)
		r.Delete("/", handler.DeleteAccount)
		r.Post("/photo", handler.UploadPhoto)
		r.Delete("/photo", handler.DeletePhoto)
		r.Post("/hostel-photos", handler.UploadHostelPhoto)
		r.Get("/tables", handler.TableStatus)
		r.Post("/tables", handler.RepairTables)
	})
}

// GetProfile returns the signed in admin.
// @Summary Get profile
// @Tags Admin
// @Produce json
// @Success 200 {object} response.Data[dto.AdminResponse]
// @Failure 401 {object} response.Error
// @Failure 404 {object} response.Error
// @Router /v1/admins/me [get]
// @Security BearerAuth
func (handler *Handler) GetProfile(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetProfile")
	defer scope.End()

	tenantID, err := request.TenantID(r)
	if err != nil {
		scope.TraceError(err)
		response.WithError(w, err)

		return
	}

	res, err := handler.service.GetProfile(ctx, tenantID.Int64())
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get profile")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}

// UpdateProfile changes the signed in admin's profile.
// @Summary Update profile
// @Tags Admin
// @Accept json
// @Produce json
// @Param request body dto.UpdateProfileRequest true "Profile fields to change"
// @Success 200 {object} response.Data[dto.AdminResponse]
// @Failure 400 {object} response.Error
// @Failure 409 {object} response.Error
// @Router /v1/admins/me [put]
// @Security BearerAuth
func (handler *Handler) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateProfile")
	defer scope.End()

	tenantID, err := request.TenantID(r)
	if err != nil {
		scope.TraceError(err)
		response.WithError(w, err)

		return
	}

	req := dto.UpdateProfileRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	res, err := handler.service.UpdateProfile(ctx, tenantID.Int64(), req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update profile")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}

// DeleteAccount removes the signed in admin.
// @Summary Delete account
// @Description Tenant tables are dropped only when the server is configured to do so.
// @Tags Admin
// @Produce json
// @Success 200 {object} response.Message
// @Failure 401 {object} response.Error
// @Router /v1/admins/me [delete]
// @Security BearerAuth
func (handler *Handler) DeleteAccount(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteAccount")
	defer scope.End()

	tenantID, err := request.TenantID(r)
	if err != nil {
		scope.TraceError(err)
		response.WithError(w, err)

		return
	}

	if err := handler.service.Delete(ctx, tenantID.Int64()); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to delete account")

		response.WithError(w, err)

		return
	}

	response.WithMessage(w, http.StatusOK, "Account deleted successfully")
}

// UploadPhoto replaces the profile photo.
// @Summary Upload profile photo
// @Tags Admin
// @Accept multipart/form-data
// @Produce json
// @Param photo formData file true "JPEG, PNG or WebP image up to 5 MB"
// @Success 200 {object} response.Data[dto.PhotoResponse]
// @Failure 400 {object} response.Error
// @Failure 503 {object} response.Error
// @Router /v1/admins/me/photo [post]
// @Security BearerAuth
func (handler *Handler) UploadPhoto(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UploadPhoto")
	defer scope.End()

	tenantID, err := request.TenantID(r)
	if err != nil {
		scope.TraceError(err)
		response.WithError(w, err)

		return
	}

	file, fileHeader, err := readPhoto(r)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to read photo")

		response.WithError(w, err)

		return
	}

	defer file.Close()

	res, err := handler.service.UploadPhoto(ctx, tenantID.Int64(), file, fileHeader)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to upload photo")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}

func readPhoto(r *http.Request) (multipart.File, *multipart.FileHeader, error) {
	if err := r.ParseMultipartForm(constant.RequestMaxMemory); err != nil {
		return nil, nil, failure.BadRequest(err)
	}

	file, header, err := r.FormFile(formFilePhoto)
	if err != nil {
		return nil, nil, failure.BadRequest(err)
	}

	return file, header, nil
}

// UploadHostelPhoto adds a photo to the hostel gallery.
// @Summary Upload hostel photo
// @Tags Admin
// @Accept multipart/form-data
// @Produce json
// @Param photo formData file true "JPEG, PNG or WebP image up to 5 MB"
// @Success 200 {object} response.Data[dto.HostelPhotoResponse]
// @Failure 400 {object} response.Error
// @Failure 503 {object} response.Error
// @Router /v1/admins/me/hostel-photos [post]
// @Security BearerAuth
func (handler *Handler) UploadHostelPhoto(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UploadHostelPhoto")
	defer scope.End()

	tenantID, err := request.TenantID(r)
	if err != nil {
		scope.TraceError(err)
		response.WithError(w, err)

		return
	}

	file, fileHeader, err := readPhoto(r)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to read hostel photo")

		response.WithError(w, err)

		return
	}

	defer file.Close()

	res, err := handler.service.UploadHostelPhoto(ctx, tenantID.Int64(), file, fileHeader)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to upload hostel photo")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}

// GetAdmins lists every hostel account.
// @Summary List admins
// @Description Restricted to super admins.
// @Tags Admin
// @Produce json
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Param hostel_type query string false "Filter by hostel type"
// @Param role query string false "Filter by role"
// @Success 200 {object} response.Data[dto.GetAdminsResponse]
// @Failure 403 {object} response.Error
// @Router /v1/admins [get]
// @Security BearerAuth
func (handler *Handler) GetAdmins(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetAdmins")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)

	res, err := handler.service.GetAll(ctx, queryParams, request.QueryFilter(r, adminFilterFields...))
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get admins")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}

// DeletePhoto clears the profile photo.
// @Summary Delete profile photo
// @Tags Admin
// @Produce json
// @Success 200 {object} response.Message
// @Router /v1/admins/me/photo [delete]
// @Security BearerAuth
func (handler *Handler) DeletePhoto(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeletePhoto")
	defer scope.End()

	tenantID, err := request.TenantID(r)
	if err != nil {
		scope.TraceError(err)
		response.WithError(w, err)

		return
	}

	if err := handler.service.DeletePhoto(ctx, tenantID.Int64()); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to delete photo")

		response.WithError(w, err)

		return
	}

	response.WithMessage(w, http.StatusOK, "Photo deleted successfully")
}

// TableStatus reports which tenant tables exist.
// @Summary Get table status
// @Tags Admin
// @Produce json
// @Success 200 {object} response.Data[dto.TableStatus]
// @Router /v1/admins/me/tables [get]
// @Security BearerAuth
func (handler *Handler) TableStatus(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".TableStatus")
	defer scope.End()

	tenantID, err := request.TenantID(r)
	if err != nil {
		scope.TraceError(err)
		response.WithError(w, err)

		return
	}

	res, err := handler.service.TableStatus(ctx, tenantID.Int64())
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get table status")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}

// RepairTables provisions the signed in admin's missing tables.
// @Summary Repair tables
// @Tags Admin
// @Produce json
// @Success 200 {object} response.Data[dto.RepairTablesResponse]
// @Router /v1/admins/me/tables [post]
// @Security BearerAuth
func (handler *Handler) RepairTables(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".RepairTables")
	defer scope.End()

	tenantID, err := request.TenantID(r)
	if err != nil {
		scope.TraceError(err)
		response.WithError(w, err)

		return
	}

	res, err := handler.service.RepairTables(ctx, tenantID.Int64())
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to repair tables")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}
