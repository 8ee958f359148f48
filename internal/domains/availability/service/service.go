package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks

import (
	"context"
	"fmt"
	"slices"
	"time"

	"beautyhub/config"
	"beautyhub/infras/otel"
	"beautyhub/internal/domains/availability/model"
	reservationRepo "beautyhub/internal/domains/reservation/repository"
	tenantModel "beautyhub/internal/domains/tenant/model"
	"beautyhub/shared/clock"
	"beautyhub/shared/constant"
	"beautyhub/shared/failure"
	"beautyhub/shared/timezone"

	"github.com/rs/zerolog/log"
)

// Engine answers "when can this be booked". Results are point-in-time reads;
// only the ledger's commit decides whether a slot is really taken.
type Engine interface {
	ListCandidateDates(ctx context.Context, tenant tenantModel.Tenant, horizonDays int) ([]time.Time, error)
	ListSlotsForDate(ctx context.Context, tenant tenantModel.Tenant, date time.Time, totalDuration, granularity int) ([]int, error)
	ListOpenSlots(ctx context.Context, tenant tenantModel.Tenant, staffID string, date time.Time, totalDuration, granularity int) ([]int, error)
}

type Option func(*serviceImpl)

// WithClock replaces the wall clock used for the minimum advance notice.
func WithClock(now func() time.Time) Option {
	return func(s *serviceImpl) {
		s.now = now
	}
}

type serviceImpl struct {
	reservations reservationRepo.Reservation
	cfg          *config.Config
	otel         otel.Otel
	now          func() time.Time
}

func New(reservations reservationRepo.Reservation, cfg *config.Config, otel otel.Otel, opts ...Option) Engine {
	s := &serviceImpl{
		reservations: reservations,
		cfg:          cfg,
		otel:         otel,
		now:          timezone.Now,
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

func (s *serviceImpl) ListCandidateDates(ctx context.Context, tenant tenantModel.Tenant, horizonDays int) (res []time.Time, err error) {
	_, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".ListCandidateDates")
	defer scope.End()
	defer scope.TraceIfError(&err)

	if tenant.IsZero() {
		return nil, failure.InvalidInput(model.FieldTenant, "shop could not be resolved")
	}

	if horizonDays <= 0 {
		horizonDays = min(s.cfg.App.Booking.HorizonDays, model.MaxHorizonDays)
	}

	dates, err := model.CandidateDates(tenant.Schedule, s.now(), horizonDays)
	if err != nil {
		return nil, err
	}

	res = slices.Collect(dates)
	if res == nil {
		res = []time.Time{}
	}

	return res, nil
}

func (s *serviceImpl) ListSlotsForDate(ctx context.Context, tenant tenantModel.Tenant, date time.Time, totalDuration, granularity int) (res []int, err error) {
	_, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".ListSlotsForDate")
	defer scope.End()
	defer scope.TraceIfError(&err)

	if tenant.IsZero() {
		return nil, failure.InvalidInput(model.FieldTenant, "shop could not be resolved")
	}

	if granularity == 0 {
		granularity = s.cfg.App.Booking.SlotGranularityMinutes
	}

	slots, err := model.SlotsForDate(tenant.Schedule, date, totalDuration, granularity)
	if err != nil {
		return nil, err
	}

	return slices.Collect(slots), nil
}

// ListOpenSlots narrows ListSlotsForDate to what a customer can still take:
// past dates yield nothing, today honours the minimum advance notice, and
// starts colliding with the staff member's reservations are dropped. A zero
// granularity uses the configured step.
func (s *serviceImpl) ListOpenSlots(ctx context.Context, tenant tenantModel.Tenant, staffID string, date time.Time, totalDuration, granularity int) (res []int, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".ListOpenSlots")
	defer scope.End()
	defer scope.TraceIfError(&err)

	if tenant.IsZero() {
		return nil, failure.InvalidInput(model.FieldTenant, "shop could not be resolved")
	}

	scope.SetAttribute(constant.OtelTenantAttributeKey, tenant.ID)

	if granularity == 0 {
		granularity = s.cfg.App.Booking.SlotGranularityMinutes
	}

	slots, err := model.SlotsForDate(tenant.Schedule, date, totalDuration, granularity)
	if err != nil {
		return nil, err
	}

	now := s.now()
	today := clock.Date(now)
	date = clock.Date(date)

	notBefore := 0

	switch {
	case date.Before(today):
		return []int{}, nil
	case date.Equal(today):
		notBefore = clock.OfDay(now) + s.cfg.App.Booking.MinAdvanceMinutes
	}

	busy := []model.Interval{}

	if staffID != constant.Empty {
		reservations, err := s.reservations.ListBlocking(ctx, tenant.ID, staffID, date)
		if err != nil {
			log.Error().Err(err).Str("staff", staffID).Msg("failed to read staff reservations")

			return nil, fmt.Errorf("failed to read staff reservations: %w", err)
		}

		for _, reservation := range reservations {
			busy = append(busy, model.Interval{Start: reservation.StartTime, End: reservation.End()})
		}
	}

	res = slices.Collect(model.Free(slots, totalDuration, notBefore, busy))
	if res == nil {
		res = []int{}
	}

	return res, nil
}
