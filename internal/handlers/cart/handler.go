package cart

import (
	"net/http"

	"beautyhub/infras/otel"
	"beautyhub/internal/domains/cart/model"
	"beautyhub/internal/domains/cart/model/dto"
	"beautyhub/internal/domains/cart/service"
	reservationDto "beautyhub/internal/domains/reservation/model/dto"
	"beautyhub/shared/clock"
	"beautyhub/shared/constant"
	"beautyhub/shared/failure"
	"beautyhub/shared/validator"
	"beautyhub/transport/http/middleware"
	"beautyhub/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Cart
	otel    otel.Otel
}

func New(service service.Cart, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(r chi.Router) {
	r.Post("/carts", handler.Start)
	r.Get("/carts/{id}", handler.Get)
	r.Delete("/carts/{id}", handler.Abandon)
	r.Put("/carts/{id}/staff", handler.SelectStaff)
	r.Post("/carts/{id}/items", handler.AddService)
	r.Patch("/carts/{id}/items/{serviceId}", handler.UpdateItem)
	r.Delete("/carts/{id}/items/{serviceId}", handler.RemoveService)
	r.Put("/carts/{id}/slot", handler.ChooseSlot)
	r.Post("/carts/{id}/checkout", handler.Checkout)
}

func writeCart(w http.ResponseWriter, status int, cart model.Cart) {
	var res dto.CartResponse
	res.FromModel(cart)

	response.WithJSON(w, status, res)
}

// Start handles opening a booking cart
// @Summary Start a cart
// @Tags Cart
// @Accept json
// @Produce json
// @Param slug path string true "Shop slug"
// @Param request body dto.StartRequest true "Start Cart Request"
// @Success 201 {object} response.Data[dto.CartResponse]
// @Failure 400 {object} response.Error
// @Failure 401 {object} response.Error
// @Router /v1/shops/{slug}/carts [post]
// @Security BearerAuth
func (handler *Handler) Start(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".StartCart")
	defer scope.End()

	req := dto.StartRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	cart, err := handler.service.Start(ctx, middleware.TenantFrom(ctx), req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to start cart")

		response.WithError(w, err)

		return
	}

	writeCart(w, http.StatusCreated, cart)
}

// Get handles reading a cart
// @Summary Get a cart
// @Tags Cart
// @Produce json
// @Param slug path string true "Shop slug"
// @Param id path string true "Cart ID"
// @Success 200 {object} response.Data[dto.CartResponse]
// @Failure 404 {object} response.Error
// @Router /v1/shops/{slug}/carts/{id} [get]
// @Security BearerAuth
func (handler *Handler) Get(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetCart")
	defer scope.End()

	cart, err := handler.service.Get(ctx, middleware.TenantFrom(ctx), chi.URLParam(r, constant.RequestParamID))
	if err != nil {
		scope.TraceError(err)

		response.WithError(w, err)

		return
	}

	writeCart(w, http.StatusOK, cart)
}

// Abandon handles throwing a cart away
// @Summary Abandon a cart
// @Tags Cart
// @Produce json
// @Param slug path string true "Shop slug"
// @Param id path string true "Cart ID"
// @Success 200 {object} response.Message
// @Failure 404 {object} response.Error
// @Router /v1/shops/{slug}/carts/{id} [delete]
// @Security BearerAuth
func (handler *Handler) Abandon(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".AbandonCart")
	defer scope.End()

	if err := handler.service.Abandon(ctx, middleware.TenantFrom(ctx), chi.URLParam(r, constant.RequestParamID)); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to abandon cart")

		response.WithError(w, err)

		return
	}

	response.WithMessage(w, http.StatusOK, "Cart abandoned")
}

// SelectStaff handles choosing who performs the services
// @Summary Select staff
// @Description Changing staff discards a previously chosen slot.
// @Tags Cart
// @Accept json
// @Produce json
// @Param slug path string true "Shop slug"
// @Param id path string true "Cart ID"
// @Param request body dto.SelectStaffRequest true "Select Staff Request"
// @Success 200 {object} response.Data[dto.CartResponse]
// @Failure 400 {object} response.Error
// @Router /v1/shops/{slug}/carts/{id}/staff [put]
// @Security BearerAuth
func (handler *Handler) SelectStaff(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".SelectStaff")
	defer scope.End()

	req := dto.SelectStaffRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	cart, err := handler.service.SelectStaff(ctx, middleware.TenantFrom(ctx), chi.URLParam(r, constant.RequestParamID), req.StaffID)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to select staff")

		response.WithError(w, err)

		return
	}

	writeCart(w, http.StatusOK, cart)
}

// AddService handles putting a service in the cart
// @Summary Add a service
// @Description Adding a service already in the cart raises its quantity.
// @Tags Cart
// @Accept json
// @Produce json
// @Param slug path string true "Shop slug"
// @Param id path string true "Cart ID"
// @Param request body dto.AddServiceRequest true "Add Service Request"
// @Success 200 {object} response.Data[dto.CartResponse]
// @Failure 400 {object} response.Error
// @Router /v1/shops/{slug}/carts/{id}/items [post]
// @Security BearerAuth
func (handler *Handler) AddService(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".AddService")
	defer scope.End()

	req := dto.AddServiceRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	quantity := req.Quantity
	if quantity == 0 {
		quantity = 1
	}

	cart, err := handler.service.AddService(ctx, middleware.TenantFrom(ctx), chi.URLParam(r, constant.RequestParamID), req.ServiceID, quantity)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to add service")

		response.WithError(w, err)

		return
	}

	writeCart(w, http.StatusOK, cart)
}

// UpdateItem handles quantity changes of a line
// @Summary Update a line
// @Description Send quantity to set it, or delta to shift it. Reaching zero removes the line.
// @Tags Cart
// @Accept json
// @Produce json
// @Param slug path string true "Shop slug"
// @Param id path string true "Cart ID"
// @Param serviceId path string true "Service ID"
// @Param request body dto.UpdateItemRequest true "Update Item Request"
// @Success 200 {object} response.Data[dto.CartResponse]
// @Failure 400 {object} response.Error
// @Router /v1/shops/{slug}/carts/{id}/items/{serviceId} [patch]
// @Security BearerAuth
func (handler *Handler) UpdateItem(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateItem")
	defer scope.End()

	req := dto.UpdateItemRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	var (
		tenant    = middleware.TenantFrom(ctx)
		id        = chi.URLParam(r, constant.RequestParamID)
		serviceID = chi.URLParam(r, constant.RequestParamServiceID)
		cart      model.Cart
		err       error
	)

	switch {
	case req.Quantity != nil:
		cart, err = handler.service.SetQuantity(ctx, tenant, id, serviceID, *req.Quantity)
	case req.Delta != 0:
		cart, err = handler.service.AdjustQuantity(ctx, tenant, id, serviceID, req.Delta)
	default:
		err = failure.InvalidInput("quantity", "send either quantity or a non-zero delta")
	}

	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update cart line")

		response.WithError(w, err)

		return
	}

	writeCart(w, http.StatusOK, cart)
}

// RemoveService handles dropping a line
// @Summary Remove a service
// @Tags Cart
// @Produce json
// @Param slug path string true "Shop slug"
// @Param id path string true "Cart ID"
// @Param serviceId path string true "Service ID"
// @Success 200 {object} response.Data[dto.CartResponse]
// @Failure 404 {object} response.Error
// @Router /v1/shops/{slug}/carts/{id}/items/{serviceId} [delete]
// @Security BearerAuth
func (handler *Handler) RemoveService(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".RemoveService")
	defer scope.End()

	cart, err := handler.service.RemoveService(ctx, middleware.TenantFrom(ctx), chi.URLParam(r, constant.RequestParamID), chi.URLParam(r, constant.RequestParamServiceID))
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to remove service")

		response.WithError(w, err)

		return
	}

	writeCart(w, http.StatusOK, cart)
}

// ChooseSlot handles picking the appointment time
// @Summary Choose a slot
// @Tags Cart
// @Accept json
// @Produce json
// @Param slug path string true "Shop slug"
// @Param id path string true "Cart ID"
// @Param request body dto.ChooseSlotRequest true "Choose Slot Request"
// @Success 200 {object} response.Data[dto.CartResponse]
// @Failure 400 {object} response.Error
// @Failure 409 {object} response.Error
// @Router /v1/shops/{slug}/carts/{id}/slot [put]
// @Security BearerAuth
func (handler *Handler) ChooseSlot(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".ChooseSlot")
	defer scope.End()

	req := dto.ChooseSlotRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	date, err := clock.ParseDate(req.Date)
	if err != nil {
		response.WithError(w, failure.InvalidInput("date", err.Error()))

		return
	}

	start, err := clock.Parse(req.Time)
	if err != nil {
		response.WithError(w, failure.InvalidInput("time", err.Error()))

		return
	}

	cart, err := handler.service.ChooseSlot(ctx, middleware.TenantFrom(ctx), chi.URLParam(r, constant.RequestParamID), date, start)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to choose slot")

		response.WithError(w, err)

		return
	}

	writeCart(w, http.StatusOK, cart)
}

// Checkout handles turning the cart into a reservation
// @Summary Checkout
// @Description On 409 slot_conflict the slot was taken meanwhile; the cart stays open without a slot.
// @Tags Cart
// @Produce json
// @Param slug path string true "Shop slug"
// @Param id path string true "Cart ID"
// @Success 201 {object} response.Data[reservationDto.ReservationResponse]
// @Failure 400 {object} response.Error
// @Failure 409 {object} response.Error
// @Router /v1/shops/{slug}/carts/{id}/checkout [post]
// @Security BearerAuth
func (handler *Handler) Checkout(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".Checkout")
	defer scope.End()

	reservation, err := handler.service.Checkout(ctx, middleware.TenantFrom(ctx), chi.URLParam(r, constant.RequestParamID))
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to checkout cart")

		response.WithError(w, err)

		return
	}

	var res reservationDto.ReservationResponse
	res.FromModel(reservation)

	scope.AddEvent("Reservation committed " + reservation.ID)

	response.WithJSON(w, http.StatusCreated, res)
}
