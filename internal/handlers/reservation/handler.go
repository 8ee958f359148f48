package reservation

import (
	"net/http"

	"beautyhub/infras/otel"
	"beautyhub/internal/domains/reservation/model"
	"beautyhub/internal/domains/reservation/model/dto"
	"beautyhub/internal/domains/reservation/service"
	"beautyhub/shared/clock"
	"beautyhub/shared/constant"
	gDto "beautyhub/shared/dto"
	"beautyhub/shared/failure"
	"beautyhub/shared/validator"
	"beautyhub/transport/http/middleware"
	"beautyhub/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Ledger
	otel    otel.Otel
}

func New(service service.Ledger, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(r chi.Router) {
	r.Get("/reservations", handler.List)
	r.Get("/reservations/date/{date}", handler.ListForDate)
	r.Get("/reservations/{id}", handler.Get)
	r.Patch("/reservations/{id}/status", handler.SetStatus)
	r.Patch("/reservations/{id}/reschedule", handler.Reschedule)
	r.Get("/staff/{id}/reservations", handler.ListByStaff)
	r.Get("/me/reservations", handler.ListMine)
}

func writeReservation(w http.ResponseWriter, reservation model.Reservation) {
	var res dto.ReservationResponse
	res.FromModel(reservation)

	response.WithJSON(w, http.StatusOK, res)
}

// List handles the shop's reservation board
// @Summary List reservations
// @Tags Reservation
// @Produce json
// @Param slug path string true "Shop slug"
// @Param status query string false "Status"
// @Param date query string false "Day, YYYY-MM-DD"
// @Param from query string false "First day of a range, YYYY-MM-DD"
// @Param to query string false "Last day of a range, YYYY-MM-DD"
// @Param staff_id query string false "Staff ID"
// @Param customer_id query string false "Customer ID"
// @Param customer query string false "Customer name contains"
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Success 200 {object} response.Data[dto.GetReservationsResponse]
// @Failure 403 {object} response.Error
// @Router /v1/shops/{slug}/reservations [get]
// @Security BearerAuth
func (handler *Handler) List(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".ListReservations")
	defer scope.End()

	query := r.URL.Query()
	req := dto.ListRequest{
		Status:     query.Get("status"),
		Date:       query.Get(constant.RequestParamDate),
		From:       query.Get("from"),
		To:         query.Get("to"),
		StaffID:    query.Get("staff_id"),
		CustomerID: query.Get("customer_id"),
		Customer:   query.Get("customer"),
	}

	if err := validator.ValidateStruct(&req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate query")

		response.WithError(w, err)

		return
	}

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)

	res, err := handler.service.ListByTenant(ctx, middleware.TenantFrom(ctx), req.ToFilter(), queryParams)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to list reservations")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}

// ListForDate handles the day sheet
// @Summary List reservations of a day
// @Tags Reservation
// @Produce json
// @Param slug path string true "Shop slug"
// @Param date path string true "Day, YYYY-MM-DD"
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Success 200 {object} response.Data[dto.GetReservationsResponse]
// @Failure 400 {object} response.Error
// @Router /v1/shops/{slug}/reservations/date/{date} [get]
// @Security BearerAuth
func (handler *Handler) ListForDate(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".ListForDate")
	defer scope.End()

	date, err := clock.ParseDate(chi.URLParam(r, constant.RequestParamDate))
	if err != nil {
		response.WithError(w, failure.InvalidInput(constant.RequestParamDate, err.Error()))

		return
	}

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)

	res, err := handler.service.ListForDate(ctx, middleware.TenantFrom(ctx), date, queryParams)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to list reservations for date")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}

// ListByStaff handles a staff member's agenda
// @Summary List reservations of a staff member
// @Tags Reservation
// @Produce json
// @Param slug path string true "Shop slug"
// @Param id path string true "Staff ID"
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Success 200 {object} response.Data[dto.GetReservationsResponse]
// @Router /v1/shops/{slug}/staff/{id}/reservations [get]
// @Security BearerAuth
func (handler *Handler) ListByStaff(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".ListByStaff")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)

	res, err := handler.service.ListByStaff(ctx, middleware.TenantFrom(ctx), chi.URLParam(r, constant.RequestParamID), queryParams)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to list reservations by staff")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}

// ListMine handles a customer's own history at the shop
// @Summary List my reservations
// @Tags Reservation
// @Produce json
// @Param slug path string true "Shop slug"
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Success 200 {object} response.Data[dto.GetReservationsResponse]
// @Failure 401 {object} response.Error
// @Router /v1/shops/{slug}/me/reservations [get]
// @Security BearerAuth
func (handler *Handler) ListMine(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".ListMine")
	defer scope.End()

	userID, _ := middleware.Actor(ctx)

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)

	res, err := handler.service.ListByCustomer(ctx, middleware.TenantFrom(ctx), userID, queryParams)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to list own reservations")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}

// Get handles reading one reservation
// @Summary Get reservation
// @Tags Reservation
// @Produce json
// @Param slug path string true "Shop slug"
// @Param id path string true "Reservation ID"
// @Success 200 {object} response.Data[dto.ReservationResponse]
// @Failure 404 {object} response.Error
// @Router /v1/shops/{slug}/reservations/{id} [get]
// @Security BearerAuth
func (handler *Handler) Get(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetReservation")
	defer scope.End()

	reservation, err := handler.service.Get(ctx, middleware.TenantFrom(ctx), chi.URLParam(r, constant.RequestParamID))
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get reservation")

		response.WithError(w, err)

		return
	}

	writeReservation(w, reservation)
}

// SetStatus handles status changes
// @Summary Change reservation status
// @Description Customers may only cancel their own reservations.
// @Tags Reservation
// @Accept json
// @Produce json
// @Param slug path string true "Shop slug"
// @Param id path string true "Reservation ID"
// @Param request body dto.UpdateStatusRequest true "Update Status Request"
// @Success 200 {object} response.Data[dto.ReservationResponse]
// @Failure 400 {object} response.Error
// @Failure 409 {object} response.Error
// @Router /v1/shops/{slug}/reservations/{id}/status [patch]
// @Security BearerAuth
func (handler *Handler) SetStatus(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".SetStatus")
	defer scope.End()

	req := dto.UpdateStatusRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	reservation, err := handler.service.SetStatus(ctx, middleware.TenantFrom(ctx), chi.URLParam(r, constant.RequestParamID), model.Status(req.Status))
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to set reservation status")

		response.WithError(w, err)

		return
	}

	writeReservation(w, reservation)
}

// Reschedule handles moving a reservation
// @Summary Reschedule reservation
// @Tags Reservation
// @Accept json
// @Produce json
// @Param slug path string true "Shop slug"
// @Param id path string true "Reservation ID"
// @Param request body dto.RescheduleRequest true "Reschedule Request"
// @Success 200 {object} response.Data[dto.ReservationResponse]
// @Failure 400 {object} response.Error
// @Failure 409 {object} response.Error
// @Router /v1/shops/{slug}/reservations/{id}/reschedule [patch]
// @Security BearerAuth
func (handler *Handler) Reschedule(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".Reschedule")
	defer scope.End()

	req := dto.RescheduleRequest{}

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

	reservation, err := handler.service.Reschedule(ctx, middleware.TenantFrom(ctx), chi.URLParam(r, constant.RequestParamID), date, start)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to reschedule reservation")

		response.WithError(w, err)

		return
	}

	writeReservation(w, reservation)
}
