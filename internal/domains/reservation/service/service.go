package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks

import (
	"context"
	"errors"
	"fmt"
	"time"

	"beautyhub/config"
	"beautyhub/infras/metrics"
	"beautyhub/infras/otel"
	catalogModel "beautyhub/internal/domains/catalog/model"
	catalogService "beautyhub/internal/domains/catalog/service"
	notificationService "beautyhub/internal/domains/notification/service"
	"beautyhub/internal/domains/reservation/model"
	"beautyhub/internal/domains/reservation/model/dto"
	"beautyhub/internal/domains/reservation/repository"
	tenantModel "beautyhub/internal/domains/tenant/model"
	"beautyhub/shared/clock"
	"beautyhub/shared/constant"
	gDto "beautyhub/shared/dto"
	"beautyhub/shared/failure"
	gModel "beautyhub/shared/model"
	gRepo "beautyhub/shared/repository"
	"beautyhub/shared/timezone"

	"github.com/cenkalti/backoff/v5"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

const (
	fieldTenant        = "tenant"
	fieldItems         = "items"
	fieldQuantity      = "quantity"
	fieldDate          = "date"
	fieldTime          = "time"
	fieldStatus        = "status"
	fieldSchedule      = "schedule"
	fieldStaffID       = "staff_id"
	fieldServiceID     = "service_id"
	fieldReservationID = "reservation_id"
)

// Ledger is the system of record for reservations. Commit is the only
// operation that can take a staff member's time, and it never double books.
type Ledger interface {
	Commit(ctx context.Context, tenant tenantModel.Tenant, draft model.Draft) (model.Reservation, error)
	SetStatus(ctx context.Context, tenant tenantModel.Tenant, id string, status model.Status) (model.Reservation, error)
	Reschedule(ctx context.Context, tenant tenantModel.Tenant, id string, date time.Time, startTime int) (model.Reservation, error)
	Get(ctx context.Context, tenant tenantModel.Tenant, id string) (model.Reservation, error)
	ListByTenant(ctx context.Context, tenant tenantModel.Tenant, filter model.Filter, params gDto.QueryParams) (dto.GetReservationsResponse, error)
	ListByStaff(ctx context.Context, tenant tenantModel.Tenant, staffID string, params gDto.QueryParams) (dto.GetReservationsResponse, error)
	ListByCustomer(ctx context.Context, tenant tenantModel.Tenant, customerID string, params gDto.QueryParams) (dto.GetReservationsResponse, error)
	ListForDate(ctx context.Context, tenant tenantModel.Tenant, date time.Time, params gDto.QueryParams) (dto.GetReservationsResponse, error)
}

type serviceImpl struct {
	repo     repository.Reservation
	catalog  catalogService.Accessor
	notifier notificationService.Notifier
	cfg      *config.Config
	otel     otel.Otel
	metrics  *metrics.Metrics
}

func New(
	repo repository.Reservation,
	catalog catalogService.Accessor,
	notifier notificationService.Notifier,
	cfg *config.Config,
	otel otel.Otel,
	metrics *metrics.Metrics,
) Ledger {
	return &serviceImpl{
		repo:     repo,
		catalog:  catalog,
		notifier: notifier,
		cfg:      cfg,
		otel:     otel,
		metrics:  metrics,
	}
}

// Commit validates the draft against the shop and writes it as a pending
// reservation. Validation stops at the first failure, in this order: items,
// staff member, services, opening hours, then the slot itself.
func (s *serviceImpl) Commit(ctx context.Context, tenant tenantModel.Tenant, draft model.Draft) (res model.Reservation, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Commit")
	defer scope.End()
	defer scope.TraceIfError(&err)

	if tenant.IsZero() {
		return res, failure.InvalidInput(fieldTenant, "shop could not be resolved")
	}

	scope.SetAttribute(constant.OtelTenantAttributeKey, tenant.ID)

	if err = validateDraft(draft); err != nil {
		return res, err
	}

	if err = s.checkStaff(ctx, tenant, draft.StaffID); err != nil {
		return res, err
	}

	items, err := s.snapshotItems(ctx, tenant, draft.Items)
	if err != nil {
		return res, err
	}

	duration, price := items.Totals()
	date := clock.Date(draft.Date)

	if err = checkHours(tenant, date, draft.StartTime, duration); err != nil {
		return res, err
	}

	user := actor(ctx)
	now := timezone.Now()

	res = model.Reservation{
		ID:            uuid.NewString(),
		TenantID:      tenant.ID,
		StaffID:       draft.StaffID,
		CustomerID:    draft.CustomerID,
		CustomerName:  draft.CustomerName,
		CustomerEmail: draft.CustomerEmail,
		CustomerPhone: draft.CustomerPhone,
		Items:         items,
		Date:          date,
		StartTime:     draft.StartTime,
		TotalDuration: duration,
		TotalPrice:    price,
		Status:        model.StatusPending,
		Notes:         draft.Notes,
		Metadata:      gModel.NewMetadata(now, user),
	}

	if err = s.commitWithRetry(ctx, tenant.ID, res); err != nil {
		if errors.Is(err, repository.ErrSlotTaken) {
			s.metrics.SlotConflicts.WithLabelValues(tenant.ID).Inc()

			return model.Reservation{}, failure.SlotConflict("the selected time was just taken, please choose another slot")
		}

		log.Error().Err(err).Str("tenant", tenant.ID).Msg("failed to commit reservation")

		return model.Reservation{}, fmt.Errorf("failed to commit reservation: %w", err)
	}

	s.metrics.ReservationsCommitted.WithLabelValues(tenant.ID).Inc()

	log.Info().Str("tenant", tenant.ID).Str("reservation", res.ID).Str("staff", res.StaffID).Msg("reservation committed")

	s.notify(ctx, func(c context.Context) { s.notifier.ReservationCommitted(c, tenant, res) })

	return res, nil
}

// commitWithRetry repeats transient storage failures. A taken slot or a
// tenant scoping error is final.
func (s *serviceImpl) commitWithRetry(ctx context.Context, tenantID string, reservation model.Reservation) error {
	booking := s.cfg.App.Booking

	_, err := backoff.Retry(ctx, func() (struct{}, error) {
		err := s.repo.Commit(ctx, tenantID, reservation)
		if errors.Is(err, repository.ErrSlotTaken) || errors.Is(err, gRepo.ErrMissingTenant) || errors.Is(err, gRepo.ErrTenantMismatch) {
			return struct{}{}, backoff.Permanent(err)
		}

		return struct{}{}, err
	},
		backoff.WithMaxTries(uint(max(booking.CommitMaxRetry, 1))),
		backoff.WithBackOff(backoff.NewConstantBackOff(time.Duration(booking.CommitRetryWaitMillis)*time.Millisecond)),
		backoff.WithNotify(func(err error, wait time.Duration) {
			s.metrics.CommitRetries.Inc()
			log.Warn().Err(err).Dur("wait", wait).Str("reservation", reservation.ID).Msg("retrying reservation commit")
		}),
	)

	return err //nolint:wrapcheck
}

func validateDraft(draft model.Draft) error {
	if len(draft.Items) == 0 {
		return failure.InvalidInput(fieldItems, "at least one service is required")
	}

	for _, item := range draft.Items {
		if item.Quantity <= 0 {
			return failure.InvalidInput(fieldQuantity, "quantities must be positive")
		}
	}

	if draft.StaffID == constant.Empty {
		return failure.InvalidInput(fieldStaffID, "a staff member is required")
	}

	if draft.Date.IsZero() {
		return failure.InvalidInput(fieldDate, "a date is required")
	}

	if draft.StartTime < 0 || draft.StartTime >= clock.MinutesPerDay {
		return failure.InvalidInput(fieldTime, "start time is outside the day")
	}

	return nil
}

func checkHours(tenant tenantModel.Tenant, date time.Time, startTime, duration int) error {
	window, open, err := tenant.Schedule.Window(date.Weekday())
	if err != nil {
		return failure.InvalidInput(fieldSchedule, err.Error())
	}

	if !open {
		return failure.OutOfHours(fmt.Sprintf("the shop is closed on %s", tenantModel.WeekdayKey(date.Weekday())))
	}

	if !window.Fits(startTime, duration) {
		return failure.OutOfHours(fmt.Sprintf("%s to %s does not fit the opening hours %s to %s",
			clock.Format(startTime), clock.Format(startTime+duration), clock.Format(window.Open), clock.Format(window.Close)))
	}

	return nil
}

// checkStaff tells a staff member of another shop apart from an unknown id.
func (s *serviceImpl) checkStaff(ctx context.Context, tenant tenantModel.Tenant, staffID string) error {
	staff, err := s.catalog.GetStaff(ctx, tenant, staffID)
	if err == nil {
		if !staff.Active {
			return failure.InvalidInput(fieldStaffID, "staff member is not taking reservations")
		}

		return nil
	}

	if !failure.HasReason(err, failure.ReasonNotFound) {
		return err //nolint:wrapcheck
	}

	owner, lookupErr := s.catalog.StaffOwner(ctx, staffID)
	if lookupErr != nil {
		return lookupErr //nolint:wrapcheck
	}

	if owner != constant.Empty && owner != tenant.ID {
		log.Warn().Str("tenant", tenant.ID).Str("staff", staffID).Msg("reservation references a staff member of another shop")

		return failure.CrossTenantReference(fieldStaffID, "staff member belongs to another shop")
	}

	return err //nolint:wrapcheck
}

// snapshotItems checks every line against the shop's catalog. Lines keep the
// name, price and duration the customer saw; lines without a snapshot take
// the catalog's current values.
func (s *serviceImpl) snapshotItems(ctx context.Context, tenant tenantModel.Tenant, lines model.Items) (model.Items, error) {
	services, err := s.catalog.GetServices(ctx, tenant, lines.ServiceIDs())
	if err != nil {
		if !failure.HasReason(err, failure.ReasonNotFound) {
			return nil, err //nolint:wrapcheck
		}

		for _, id := range lines.ServiceIDs() {
			owner, lookupErr := s.catalog.ServiceOwner(ctx, id)
			if lookupErr != nil {
				return nil, lookupErr //nolint:wrapcheck
			}

			if owner != constant.Empty && owner != tenant.ID {
				log.Warn().Str("tenant", tenant.ID).Str("service", id).Msg("reservation references a service of another shop")

				return nil, failure.CrossTenantReference(fieldServiceID, "service belongs to another shop")
			}
		}

		return nil, err //nolint:wrapcheck
	}

	byID := make(map[string]catalogModel.Service, len(services))
	for _, service := range services {
		byID[service.ID] = service
	}

	items := make(model.Items, 0, len(lines))

	for _, line := range lines {
		service := byID[line.ServiceID]
		if !service.Active {
			return nil, failure.InvalidInput(fieldServiceID, fmt.Sprintf("service %s is no longer offered", service.Name))
		}

		if line.Name == constant.Empty || line.Duration <= 0 {
			line.Name = service.Name
			line.Price = service.Price
			line.Duration = service.Duration
		}

		items = append(items, line)
	}

	return items, nil
}

// SetStatus moves a reservation along the status machine. Shop managers may
// make any allowed move; a customer may only cancel their own reservation.
func (s *serviceImpl) SetStatus(ctx context.Context, tenant tenantModel.Tenant, id string, status model.Status) (res model.Reservation, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".SetStatus")
	defer scope.End()
	defer scope.TraceIfError(&err)

	if !status.Valid() {
		return res, failure.InvalidInput(fieldStatus, fmt.Sprintf("unknown status %q", status))
	}

	current, err := s.Get(ctx, tenant, id)
	if err != nil {
		return res, err
	}

	user, role := actorRole(ctx)
	if !tenant.CanManage(user, role) && status != model.StatusCancelled {
		return res, failure.ResourceRestrictedError
	}

	if !current.Status.CanTransition(status) {
		return res, failure.InvalidTransition(fmt.Sprintf("a %s reservation cannot become %s", current.Status, status))
	}

	changed, err := s.repo.SetStatus(ctx, tenant.ID, id, current.Status, status, actor(ctx))
	if err != nil {
		log.Error().Err(err).Str("reservation", id).Msg("failed to update reservation status")

		return res, fmt.Errorf("failed to update reservation status: %w", err)
	}

	if !changed {
		return res, failure.InvalidTransition("the reservation was changed by someone else, reload and try again")
	}

	s.metrics.StatusTransitions.WithLabelValues(string(current.Status), string(status)).Inc()

	res = current
	res.Status = status
	res.Touch(timezone.Now(), actor(ctx))

	s.notify(ctx, func(c context.Context) { s.notifier.StatusChanged(c, tenant, res) })

	return res, nil
}

// Reschedule moves a pending or confirmed reservation to another slot of the
// same staff member, under the same checks as Commit.
func (s *serviceImpl) Reschedule(ctx context.Context, tenant tenantModel.Tenant, id string, date time.Time, startTime int) (res model.Reservation, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Reschedule")
	defer scope.End()
	defer scope.TraceIfError(&err)

	user, role := actorRole(ctx)
	if !tenant.CanManage(user, role) {
		return res, failure.ResourceRestrictedError
	}

	current, err := s.Get(ctx, tenant, id)
	if err != nil {
		return res, err
	}

	if !current.Status.Reschedulable() {
		return res, failure.InvalidTransition(fmt.Sprintf("a %s reservation cannot be rescheduled", current.Status))
	}

	if startTime < 0 || startTime >= clock.MinutesPerDay {
		return res, failure.InvalidInput(fieldTime, "start time is outside the day")
	}

	date = clock.Date(date)

	if err = checkHours(tenant, date, startTime, current.TotalDuration); err != nil {
		return res, err
	}

	err = s.repo.Reschedule(ctx, tenant.ID, current, date, startTime, user)

	switch {
	case errors.Is(err, repository.ErrSlotTaken):
		s.metrics.SlotConflicts.WithLabelValues(tenant.ID).Inc()

		return res, failure.SlotConflict("the selected time is already taken, please choose another slot")
	case errors.Is(err, repository.ErrNotReschedulable):
		return res, failure.InvalidTransition("the reservation can no longer be rescheduled")
	case err != nil:
		log.Error().Err(err).Str("reservation", id).Msg("failed to reschedule reservation")

		return res, fmt.Errorf("failed to reschedule reservation: %w", err)
	}

	res, err = s.Get(ctx, tenant, id)
	if err != nil {
		return res, err
	}

	s.notify(ctx, func(c context.Context) { s.notifier.Rescheduled(c, tenant, res) })

	return res, nil
}

// Get returns a reservation to the shop's managers or to its customer.
func (s *serviceImpl) Get(ctx context.Context, tenant tenantModel.Tenant, id string) (res model.Reservation, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer scope.TraceIfError(&err)

	if tenant.IsZero() {
		return res, failure.InvalidInput(fieldTenant, "shop could not be resolved")
	}

	res, err = s.repo.Get(ctx, tenant.ID, id)
	if err != nil {
		log.Error().Err(err).Str("reservation", id).Msg("failed to get reservation")

		return res, fmt.Errorf("failed to get reservation: %w", err)
	}

	if res.IsZero() {
		return res, failure.NotFoundField(fieldReservationID, "reservation not found")
	}

	user, role := actorRole(ctx)
	if !tenant.CanManage(user, role) && res.CustomerID != user {
		return model.Reservation{}, failure.ResourceRestrictedError
	}

	return res, nil
}

func (s *serviceImpl) ListByTenant(ctx context.Context, tenant tenantModel.Tenant, filter model.Filter, params gDto.QueryParams) (res dto.GetReservationsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".ListByTenant")
	defer scope.End()
	defer scope.TraceIfError(&err)

	user, role := actorRole(ctx)
	if !tenant.CanManage(user, role) {
		return res, failure.ResourceRestrictedError
	}

	return s.list(ctx, tenant, filter, params)
}

func (s *serviceImpl) ListByStaff(ctx context.Context, tenant tenantModel.Tenant, staffID string, params gDto.QueryParams) (dto.GetReservationsResponse, error) {
	return s.ListByTenant(ctx, tenant, model.Filter{StaffID: staffID}, params)
}

func (s *serviceImpl) ListForDate(ctx context.Context, tenant tenantModel.Tenant, date time.Time, params gDto.QueryParams) (dto.GetReservationsResponse, error) {
	date = clock.Date(date)

	return s.ListByTenant(ctx, tenant, model.Filter{Date: &date}, params)
}

// ListByCustomer is open to the customer themselves and to the shop's managers.
func (s *serviceImpl) ListByCustomer(ctx context.Context, tenant tenantModel.Tenant, customerID string, params gDto.QueryParams) (res dto.GetReservationsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".ListByCustomer")
	defer scope.End()
	defer scope.TraceIfError(&err)

	user, role := actorRole(ctx)
	if customerID == constant.Empty || (customerID != user && !tenant.CanManage(user, role)) {
		return res, failure.ResourceRestrictedError
	}

	return s.list(ctx, tenant, model.Filter{CustomerID: customerID}, params)
}

func (s *serviceImpl) list(ctx context.Context, tenant tenantModel.Tenant, filter model.Filter, params gDto.QueryParams) (res dto.GetReservationsResponse, err error) {
	if tenant.IsZero() {
		return res, failure.InvalidInput(fieldTenant, "shop could not be resolved")
	}

	total, err := s.repo.Count(ctx, tenant.ID, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count reservations")

		return res, fmt.Errorf("failed to count reservations: %w", err)
	}

	reservations, err := s.repo.List(ctx, tenant.ID, filter, params)
	if err != nil {
		log.Error().Err(err).Msg("failed to list reservations")

		return res, fmt.Errorf("failed to list reservations: %w", err)
	}

	res.FromModels(reservations, total, params.Limit)

	return res, nil
}

// notify runs fn detached from the request. Notification failures never
// reach the caller.
func (s *serviceImpl) notify(ctx context.Context, fn func(context.Context)) {
	go fn(context.WithoutCancel(ctx))
}

func actor(ctx context.Context) string {
	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	if user == constant.Empty {
		return constant.ContextGuest
	}

	return user
}

func actorRole(ctx context.Context) (string, string) {
	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	role, _ := ctx.Value(constant.ContextKeyUserRole).(string)

	return user, role
}
