package availability

import (
	"net/http"
	"strconv"

	"beautyhub/infras/otel"
	"beautyhub/internal/domains/availability/model/dto"
	"beautyhub/internal/domains/availability/service"
	"beautyhub/shared/clock"
	"beautyhub/shared/constant"
	"beautyhub/shared/failure"
	"beautyhub/shared/validator"
	"beautyhub/transport/http/middleware"
	"beautyhub/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

const (
	queryParamHorizon     = "horizon"
	queryParamDuration    = "duration"
	queryParamGranularity = "granularity"
	queryParamStaffID     = "staff_id"
)

type Handler struct {
	service service.Engine
	otel    otel.Otel
}

func New(service service.Engine, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(r chi.Router) {
	r.Get("/availability/dates", handler.ListDates)
	r.Get("/availability/slots", handler.ListSlots)
}

func intQuery(r *http.Request, key string) (int, error) {
	raw := r.URL.Query().Get(key)
	if raw == constant.Empty {
		return 0, nil
	}

	value, err := strconv.Atoi(raw)
	if err != nil {
		return 0, failure.InvalidInput(key, key+" must be a whole number")
	}

	return value, nil
}

// ListDates handles listing the bookable days
// @Summary List bookable dates
// @Description Days within the horizon on which the shop opens, starting today.
// @Tags Availability
// @Produce json
// @Param slug path string true "Shop slug"
// @Param horizon query int false "Days to look ahead, at most 365"
// @Success 200 {object} response.Data[dto.DatesResponse]
// @Failure 400 {object} response.Error
// @Router /v1/shops/{slug}/availability/dates [get]
func (handler *Handler) ListDates(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".ListDates")
	defer scope.End()

	var (
		req dto.DatesRequest
		err error
	)

	if req.Horizon, err = intQuery(r, queryParamHorizon); err != nil {
		response.WithError(w, err)

		return
	}

	if err = validator.ValidateStruct(&req); err != nil {
		scope.TraceError(err)
		log.Warn().Err(err).Msg("failed to validate query")

		response.WithError(w, err)

		return
	}

	dates, err := handler.service.ListCandidateDates(ctx, middleware.TenantFrom(ctx), req.Horizon)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to list candidate dates")

		response.WithError(w, err)

		return
	}

	var res dto.DatesResponse
	res.FromDates(dates)

	response.WithJSON(w, http.StatusOK, res)
}

// ListSlots handles listing start times for a day
// @Summary List slots
// @Description Without staff_id every start that fits the opening hours is returned;
// @Description with it, past starts and the staff member's reservations are removed.
// @Tags Availability
// @Produce json
// @Param slug path string true "Shop slug"
// @Param date query string true "Day, YYYY-MM-DD"
// @Param duration query int true "Total duration in minutes"
// @Param granularity query int false "Step between starts in minutes"
// @Param staff_id query string false "Staff ID"
// @Success 200 {object} response.Data[dto.SlotsResponse]
// @Failure 400 {object} response.Error
// @Router /v1/shops/{slug}/availability/slots [get]
func (handler *Handler) ListSlots(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".ListSlots")
	defer scope.End()

	req := dto.SlotsRequest{
		Date:    r.URL.Query().Get(constant.RequestParamDate),
		StaffID: r.URL.Query().Get(queryParamStaffID),
	}

	var err error

	if req.Duration, err = intQuery(r, queryParamDuration); err != nil {
		response.WithError(w, err)

		return
	}

	if req.Granularity, err = intQuery(r, queryParamGranularity); err != nil {
		response.WithError(w, err)

		return
	}

	if err = validator.ValidateStruct(&req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate query")

		response.WithError(w, err)

		return
	}

	date, err := clock.ParseDate(req.Date)
	if err != nil {
		response.WithError(w, failure.InvalidInput(constant.RequestParamDate, err.Error()))

		return
	}

	tenant := middleware.TenantFrom(ctx)

	var slots []int
	if req.StaffID != constant.Empty {
		slots, err = handler.service.ListOpenSlots(ctx, tenant, req.StaffID, date, req.Duration, req.Granularity)
	} else {
		slots, err = handler.service.ListSlotsForDate(ctx, tenant, date, req.Duration, req.Granularity)
	}

	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to list slots")

		response.WithError(w, err)

		return
	}

	var res dto.SlotsResponse
	res.FromSlots(date, req.Duration, req.StaffID, slots)

	response.WithJSON(w, http.StatusOK, res)
}
