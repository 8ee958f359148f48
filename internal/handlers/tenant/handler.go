package tenant

import (
	"net/http"
	"time"

	"beautyhub/infras/otel"
	"beautyhub/internal/domains/tenant/model/dto"
	"beautyhub/internal/domains/tenant/service"
	"beautyhub/shared/clock"
	"beautyhub/shared/constant"
	gDto "beautyhub/shared/dto"
	"beautyhub/shared/failure"
	"beautyhub/shared/timezone"
	"beautyhub/shared/validator"
	"beautyhub/transport/http/middleware"
	"beautyhub/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

const (
	formFieldLogo = "logo"
	queryParamAt  = "at"
)

type Handler struct {
	service service.Directory
	otel    otel.Otel
}

func New(service service.Directory, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

// Router mounts the routes that are not about one particular shop.
func (handler *Handler) Router(router chi.Router) {
	router.Post("/shops", handler.CreateShop)
	router.Get("/shops", handler.GetShops)
}

// ShopRouter mounts the routes under /shops/{slug}.
func (handler *Handler) ShopRouter(router chi.Router) {
	router.Get("/", handler.GetShop)
	router.Patch("/", handler.UpdateShop)
	router.Delete("/", handler.DeactivateShop)
	router.Post("/logo", handler.UploadLogo)
	router.Get("/open", handler.IsOpen)
}

// CreateShop registers a new shop owned by the caller.
// @Summary Create a shop
// @Description The slug is derived from the name; collisions get a numeric suffix.
// @Tags Shop
// @Accept json
// @Produce json
// @Param request body dto.CreateTenantRequest true "Create Shop Request"
// @Success 201 {object} response.Data[dto.TenantResponse]
// @Failure 400 {object} response.Error
// @Failure 409 {object} response.Error
// @Router /v1/shops [post]
// @Security BearerAuth
func (handler *Handler) CreateShop(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateShop")
	defer scope.End()

	req := dto.CreateTenantRequest{}

	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(writer, err)

		return
	}

	tenant, err := handler.service.Create(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create shop")

		response.WithError(writer, err)

		return
	}

	var res dto.TenantResponse
	res.FromModel(tenant)

	scope.AddEvent("Shop created " + tenant.Slug)

	response.WithJSON(writer, http.StatusCreated, res)
}

// GetShops lists active shops.
// @Summary List shops
// @Tags Shop
// @Produce json
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Success 200 {object} response.Data[dto.GetTenantsResponse]
// @Router /v1/shops [get]
func (handler *Handler) GetShops(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetShops")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(request, true)

	res, err := handler.service.GetAll(ctx, queryParams)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to list shops")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, res)
}

// GetShop returns the public profile of a shop.
// @Summary Get a shop
// @Tags Shop
// @Produce json
// @Param slug path string true "Shop slug"
// @Success 200 {object} response.Data[dto.TenantResponse]
// @Failure 404 {object} response.Error
// @Router /v1/shops/{slug} [get]
func (handler *Handler) GetShop(writer http.ResponseWriter, request *http.Request) {
	_, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetShop")
	defer scope.End()

	var res dto.TenantResponse
	res.FromModel(middleware.TenantFrom(request.Context()))

	response.WithJSON(writer, http.StatusOK, res)
}

// UpdateShop merges the given fields into the shop.
// @Summary Update a shop
// @Tags Shop
// @Accept json
// @Produce json
// @Param slug path string true "Shop slug"
// @Param request body dto.UpdateTenantRequest true "Update Shop Request"
// @Success 200 {object} response.Data[dto.TenantResponse]
// @Failure 400 {object} response.Error
// @Failure 403 {object} response.Error
// @Router /v1/shops/{slug} [patch]
// @Security BearerAuth
func (handler *Handler) UpdateShop(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateShop")
	defer scope.End()

	req := dto.UpdateTenantRequest{}

	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(writer, err)

		return
	}

	tenant, err := handler.service.Update(ctx, middleware.TenantFrom(ctx), req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update shop")

		response.WithError(writer, err)

		return
	}

	var res dto.TenantResponse
	res.FromModel(tenant)

	response.WithJSON(writer, http.StatusOK, res)
}

// DeactivateShop hides the shop from listings and booking.
// @Summary Deactivate a shop
// @Tags Shop
// @Produce json
// @Param slug path string true "Shop slug"
// @Success 200 {object} response.Message
// @Failure 403 {object} response.Error
// @Router /v1/shops/{slug} [delete]
// @Security BearerAuth
func (handler *Handler) DeactivateShop(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeactivateShop")
	defer scope.End()

	if err := handler.service.Deactivate(ctx, middleware.TenantFrom(ctx)); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to deactivate shop")

		response.WithError(writer, err)

		return
	}

	response.WithMessage(writer, http.StatusOK, "Shop deactivated successfully")
}

// UploadLogo stores a new logo image for the shop.
// @Summary Upload shop logo
// @Tags Shop
// @Accept multipart/form-data
// @Produce json
// @Param slug path string true "Shop slug"
// @Param logo formData file true "Logo image"
// @Success 200 {object} response.Data[string]
// @Failure 400 {object} response.Error
// @Router /v1/shops/{slug}/logo [post]
// @Security BearerAuth
func (handler *Handler) UploadLogo(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UploadLogo")
	defer scope.End()

	if err := request.ParseMultipartForm(constant.RequestMaxMemory); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to parse multipart form")
		response.WithError(writer, failure.BadRequest(err))

		return
	}

	req := dto.UploadLogoRequest{}

	file, fileHeader, err := request.FormFile(formFieldLogo)
	if err == nil {
		req.Logo = fileHeader
		req.LogoFile = file

		defer file.Close()
	}

	if err := validator.ValidateStruct(&req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request")

		response.WithError(writer, err)

		return
	}

	url, err := handler.service.UploadLogo(ctx, middleware.TenantFrom(ctx), req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to upload logo")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, url)
}

// IsOpen reports whether the shop is open now, or at the given instant.
// @Summary Is the shop open
// @Tags Shop
// @Produce json
// @Param slug path string true "Shop slug"
// @Param at query string false "RFC3339 instant, defaults to now"
// @Success 200 {object} response.Data[dto.OpenStatusResponse]
// @Failure 400 {object} response.Error
// @Router /v1/shops/{slug}/open [get]
func (handler *Handler) IsOpen(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".IsOpen")
	defer scope.End()

	tenant := middleware.TenantFrom(ctx)
	at := timezone.Now()

	if raw := request.URL.Query().Get(queryParamAt); raw != constant.Empty {
		parsed, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			response.WithError(writer, failure.InvalidInput(queryParamAt, "at must be an RFC3339 timestamp"))

			return
		}

		at = timezone.Local(parsed)
	}

	res := dto.OpenStatusResponse{
		Slug: tenant.Slug,
		Open: handler.service.IsOpenAt(tenant, at),
		At:   at.Format(time.RFC3339),
	}

	if res.Open {
		if window, open, err := tenant.Schedule.Window(at.Weekday()); err == nil && open {
			res.Closes = clock.Format(window.Close)
		}
	}

	response.WithJSON(writer, http.StatusOK, res)
}
