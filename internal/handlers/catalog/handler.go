package catalog

import (
	"net/http"

	"beautyhub/infras/otel"
	"beautyhub/internal/domains/catalog/model/dto"
	"beautyhub/internal/domains/catalog/service"
	"beautyhub/shared/constant"
	gDto "beautyhub/shared/dto"
	"beautyhub/shared/validator"
	"beautyhub/transport/http/middleware"
	"beautyhub/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

const queryParamAll = "all"

type Handler struct {
	service service.Accessor
	otel    otel.Otel
}

func New(service service.Accessor, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(r chi.Router) {
	r.Get("/staff", handler.ListStaff)
	r.Post("/staff", handler.CreateStaff)
	r.Get("/staff/{id}", handler.GetStaff)
	r.Patch("/staff/{id}", handler.UpdateStaff)
	r.Delete("/staff/{id}", handler.DeleteStaff)

	r.Get("/services", handler.ListServices)
	r.Post("/services", handler.CreateService)
	r.Get("/services/{id}", handler.GetService)
	r.Patch("/services/{id}", handler.UpdateService)
	r.Delete("/services/{id}", handler.DeleteService)
}

// includeInactive is only honoured for the people who manage the shop.
func includeInactive(r *http.Request) bool {
	if r.URL.Query().Get(queryParamAll) != "true" {
		return false
	}

	userID, role := middleware.Actor(r.Context())

	return middleware.TenantFrom(r.Context()).CanManage(userID, role)
}

// ListStaff handles listing the shop's staff
// @Summary List staff
// @Tags Catalog
// @Produce json
// @Param slug path string true "Shop slug"
// @Param all query bool false "Include inactive staff (owners only)"
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Success 200 {object} response.Data[dto.GetStaffResponse]
// @Router /v1/shops/{slug}/staff [get]
func (handler *Handler) ListStaff(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".ListStaff")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)

	res, err := handler.service.ListStaff(ctx, middleware.TenantFrom(ctx), queryParams, includeInactive(r))
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to list staff")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}

// GetStaff handles fetching one staff member
// @Summary Get staff member
// @Tags Catalog
// @Produce json
// @Param slug path string true "Shop slug"
// @Param id path string true "Staff ID"
// @Success 200 {object} response.Data[dto.StaffResponse]
// @Failure 404 {object} response.Error
// @Router /v1/shops/{slug}/staff/{id} [get]
func (handler *Handler) GetStaff(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetStaff")
	defer scope.End()

	staff, err := handler.service.GetStaff(ctx, middleware.TenantFrom(ctx), chi.URLParam(r, constant.RequestParamID))
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get staff")

		response.WithError(w, err)

		return
	}

	var res dto.StaffResponse
	res.FromModel(staff)

	response.WithJSON(w, http.StatusOK, res)
}

// CreateStaff handles adding a staff member
// @Summary Create staff member
// @Tags Catalog
// @Accept json
// @Produce json
// @Param slug path string true "Shop slug"
// @Param request body dto.CreateStaffRequest true "Create Staff Request"
// @Success 201 {object} response.Data[dto.StaffResponse]
// @Failure 400 {object} response.Error
// @Failure 403 {object} response.Error
// @Router /v1/shops/{slug}/staff [post]
// @Security BearerAuth
func (handler *Handler) CreateStaff(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateStaff")
	defer scope.End()

	req := dto.CreateStaffRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	staff, err := handler.service.CreateStaff(ctx, middleware.TenantFrom(ctx), req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create staff")

		response.WithError(w, err)

		return
	}

	var res dto.StaffResponse
	res.FromModel(staff)

	response.WithJSON(w, http.StatusCreated, res)
}

// UpdateStaff handles partial updates of a staff member
// @Summary Update staff member
// @Tags Catalog
// @Accept json
// @Produce json
// @Param slug path string true "Shop slug"
// @Param id path string true "Staff ID"
// @Param request body dto.UpdateStaffRequest true "Update Staff Request"
// @Success 200 {object} response.Data[dto.StaffResponse]
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Router /v1/shops/{slug}/staff/{id} [patch]
// @Security BearerAuth
func (handler *Handler) UpdateStaff(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateStaff")
	defer scope.End()

	req := dto.UpdateStaffRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	staff, err := handler.service.UpdateStaff(ctx, middleware.TenantFrom(ctx), chi.URLParam(r, constant.RequestParamID), req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update staff")

		response.WithError(w, err)

		return
	}

	var res dto.StaffResponse
	res.FromModel(staff)

	response.WithJSON(w, http.StatusOK, res)
}

// DeleteStaff handles removing a staff member
// @Summary Delete staff member
// @Tags Catalog
// @Produce json
// @Param slug path string true "Shop slug"
// @Param id path string true "Staff ID"
// @Success 200 {object} response.Message
// @Failure 404 {object} response.Error
// @Failure 409 {object} response.Error
// @Router /v1/shops/{slug}/staff/{id} [delete]
// @Security BearerAuth
func (handler *Handler) DeleteStaff(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteStaff")
	defer scope.End()

	if err := handler.service.DeleteStaff(ctx, middleware.TenantFrom(ctx), chi.URLParam(r, constant.RequestParamID)); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to delete staff")

		response.WithError(w, err)

		return
	}

	response.WithMessage(w, http.StatusOK, "Staff deleted successfully")
}

// ListServices handles listing the shop's services
// @Summary List services
// @Tags Catalog
// @Produce json
// @Param slug path string true "Shop slug"
// @Param all query bool false "Include inactive services (owners only)"
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Success 200 {object} response.Data[dto.GetServicesResponse]
// @Router /v1/shops/{slug}/services [get]
func (handler *Handler) ListServices(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".ListServices")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)

	res, err := handler.service.ListServices(ctx, middleware.TenantFrom(ctx), queryParams, includeInactive(r))
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to list services")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}

// GetService handles fetching one service
// @Summary Get service
// @Tags Catalog
// @Produce json
// @Param slug path string true "Shop slug"
// @Param id path string true "Service ID"
// @Success 200 {object} response.Data[dto.ServiceResponse]
// @Failure 404 {object} response.Error
// @Router /v1/shops/{slug}/services/{id} [get]
func (handler *Handler) GetService(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetService")
	defer scope.End()

	item, err := handler.service.GetService(ctx, middleware.TenantFrom(ctx), chi.URLParam(r, constant.RequestParamID))
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get service")

		response.WithError(w, err)

		return
	}

	var res dto.ServiceResponse
	res.FromModel(item)

	response.WithJSON(w, http.StatusOK, res)
}

// CreateService handles adding a service
// @Summary Create service
// @Tags Catalog
// @Accept json
// @Produce json
// @Param slug path string true "Shop slug"
// @Param request body dto.CreateServiceRequest true "Create Service Request"
// @Success 201 {object} response.Data[dto.ServiceResponse]
// @Failure 400 {object} response.Error
// @Failure 403 {object} response.Error
// @Router /v1/shops/{slug}/services [post]
// @Security BearerAuth
func (handler *Handler) CreateService(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateService")
	defer scope.End()

	req := dto.CreateServiceRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	item, err := handler.service.CreateService(ctx, middleware.TenantFrom(ctx), req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create service")

		response.WithError(w, err)

		return
	}

	var res dto.ServiceResponse
	res.FromModel(item)

	response.WithJSON(w, http.StatusCreated, res)
}

// UpdateService handles partial updates of a service
// @Summary Update service
// @Tags Catalog
// @Accept json
// @Produce json
// @Param slug path string true "Shop slug"
// @Param id path string true "Service ID"
// @Param request body dto.UpdateServiceRequest true "Update Service Request"
// @Success 200 {object} response.Data[dto.ServiceResponse]
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Router /v1/shops/{slug}/services/{id} [patch]
// @Security BearerAuth
func (handler *Handler) UpdateService(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateService")
	defer scope.End()

	req := dto.UpdateServiceRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	item, err := handler.service.UpdateService(ctx, middleware.TenantFrom(ctx), chi.URLParam(r, constant.RequestParamID), req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update service")

		response.WithError(w, err)

		return
	}

	var res dto.ServiceResponse
	res.FromModel(item)

	response.WithJSON(w, http.StatusOK, res)
}

// DeleteService handles removing a service
// @Summary Delete service
// @Tags Catalog
// @Produce json
// @Param slug path string true "Shop slug"
// @Param id path string true "Service ID"
// @Success 200 {object} response.Message
// @Failure 404 {object} response.Error
// @Router /v1/shops/{slug}/services/{id} [delete]
// @Security BearerAuth
func (handler *Handler) DeleteService(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteService")
	defer scope.End()

	if err := handler.service.DeleteService(ctx, middleware.TenantFrom(ctx), chi.URLParam(r, constant.RequestParamID)); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to delete service")

		response.WithError(w, err)

		return
	}

	response.WithMessage(w, http.StatusOK, "Service deleted successfully")
}
