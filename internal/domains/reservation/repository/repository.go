package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"errors"
	"fmt"
	"time"

	"beautyhub/infras/otel"
	"beautyhub/infras/postgres"
	"beautyhub/internal/domains/reservation/model"
	"beautyhub/shared/clock"
	"beautyhub/shared/constant"
	gDto "beautyhub/shared/dto"
	"beautyhub/shared/logger"
	gRepo "beautyhub/shared/repository"
	"beautyhub/shared/timezone"

	"github.com/jmoiron/sqlx"
)

var (
	ErrSlotTaken        = errors.New("slot already taken")
	ErrNotReschedulable = errors.New("reservation can no longer be rescheduled")
)

const (
	queryLockStaff = `SELECT pg_advisory_xact_lock(hashtext($1))`

	queryOverlap = `SELECT EXISTS(
		SELECT 1 FROM reservations
		WHERE tenant_id = $1 AND staff_id = $2 AND date = $3 AND status <> 'cancelled'
			AND start_time < $4 AND start_time + total_duration > $5 AND id <> $6)`

	queryReschedule = `UPDATE reservations
		SET date = $1, start_time = $2, modified_at = $3, modified_by = $4
		WHERE tenant_id = $5 AND id = $6 AND status IN ('pending', 'confirmed')`

	querySetStatus = `UPDATE reservations
		SET status = $1, modified_at = $2, modified_by = $3
		WHERE tenant_id = $4 AND id = $5 AND status = $6`
)

// Reservation is the ledger storage. Commit and Reschedule are serialised per
// (tenant, staff member); reads never take that lock.
type Reservation interface {
	Commit(ctx context.Context, tenantID string, reservation model.Reservation) error
	Reschedule(ctx context.Context, tenantID string, current model.Reservation, date time.Time, startTime int, user string) error
	SetStatus(ctx context.Context, tenantID, id string, from, to model.Status, user string) (bool, error)
	Get(ctx context.Context, tenantID, id string) (model.Reservation, error)
	List(ctx context.Context, tenantID string, filter model.Filter, params gDto.QueryParams) ([]model.Reservation, error)
	Count(ctx context.Context, tenantID string, filter model.Filter) (int, error)
	ListBlocking(ctx context.Context, tenantID, staffID string, date time.Time) ([]model.Reservation, error)
}

type repositoryImpl struct {
	gRepo.Scoped[model.Reservation]
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Reservation {
	return &repositoryImpl{
		Scoped: gRepo.NewScoped[model.Reservation](model.EntityName, model.TableName, model.FieldID, db, otel),
		db:     db,
		otel:   otel,
	}
}

func staffLockKey(tenantID, staffID string) string {
	return tenantID + ":" + staffID
}

func (r *repositoryImpl) Commit(ctx context.Context, tenantID string, reservation model.Reservation) (err error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".reservation.Commit")
	defer scope.End()
	defer scope.TraceIfError(&err)

	scope.SetAttribute(constant.OtelTenantAttributeKey, tenantID)

	return r.db.WithTransaction(ctx, func(tx *sqlx.Tx) error {
		if _, err := tx.ExecContext(ctx, queryLockStaff, staffLockKey(tenantID, reservation.StaffID)); err != nil {
			logger.ErrorWithStack(err)

			return fmt.Errorf("failed to lock staff calendar: %w", err)
		}

		taken, err := r.overlaps(ctx, tx, tenantID, reservation.StaffID, reservation.ID, reservation.Date, reservation.StartTime, reservation.TotalDuration)
		if err != nil {
			return err
		}

		if taken {
			return ErrSlotTaken
		}

		if err := r.Scoped.InsertTx(ctx, tx, tenantID, reservation); err != nil {
			if gRepo.IsUniqueViolation(err) {
				return ErrSlotTaken
			}

			return err //nolint:wrapcheck
		}

		return nil
	})
}

func (r *repositoryImpl) Reschedule(ctx context.Context, tenantID string, current model.Reservation, date time.Time, startTime int, user string) (err error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".reservation.Reschedule")
	defer scope.End()
	defer scope.TraceIfError(&err)

	if tenantID == constant.Empty {
		return gRepo.ErrMissingTenant
	}

	return r.db.WithTransaction(ctx, func(tx *sqlx.Tx) error {
		if _, err := tx.ExecContext(ctx, queryLockStaff, staffLockKey(tenantID, current.StaffID)); err != nil {
			logger.ErrorWithStack(err)

			return fmt.Errorf("failed to lock staff calendar: %w", err)
		}

		taken, err := r.overlaps(ctx, tx, tenantID, current.StaffID, current.ID, date, startTime, current.TotalDuration)
		if err != nil {
			return err
		}

		if taken {
			return ErrSlotTaken
		}

		result, err := tx.ExecContext(ctx, queryReschedule, clock.FormatDate(date), startTime, timezone.Now(), user, tenantID, current.ID)
		if err != nil {
			if gRepo.IsUniqueViolation(err) {
				return ErrSlotTaken
			}

			logger.ErrorWithStack(err)

			return fmt.Errorf("failed to reschedule reservation: %w", err)
		}

		if affected, err := result.RowsAffected(); err != nil || affected == 0 {
			return ErrNotReschedulable
		}

		return nil
	})
}

// SetStatus moves the reservation from -> to only if it is still in from.
func (r *repositoryImpl) SetStatus(ctx context.Context, tenantID, id string, from, to model.Status, user string) (ok bool, err error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".reservation.SetStatus")
	defer scope.End()
	defer scope.TraceIfError(&err)

	if tenantID == constant.Empty {
		return false, gRepo.ErrMissingTenant
	}

	scope.SetAttribute(constant.OtelQueryAttributeKey, querySetStatus)

	result, err := r.db.Write.ExecContext(ctx, querySetStatus, string(to), timezone.Now(), user, tenantID, id, string(from))
	if err != nil {
		logger.ErrorWithStack(err)

		return false, fmt.Errorf("failed to set reservation status: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to read affected rows: %w", err)
	}

	return affected == 1, nil
}

func (r *repositoryImpl) Get(ctx context.Context, tenantID, id string) (model.Reservation, error) {
	reservation, err := r.Scoped.Get(ctx, tenantID, byID(id))
	if err != nil {
		return reservation, err //nolint:wrapcheck
	}

	return normalize(reservation), nil
}

func (r *repositoryImpl) List(ctx context.Context, tenantID string, filter model.Filter, params gDto.QueryParams) ([]model.Reservation, error) {
	reservations, err := r.Scoped.GetAll(ctx, tenantID, params, filter.FilterGroup())
	if err != nil {
		return nil, err //nolint:wrapcheck
	}

	for i := range reservations {
		reservations[i] = normalize(reservations[i])
	}

	return reservations, nil
}

func (r *repositoryImpl) Count(ctx context.Context, tenantID string, filter model.Filter) (int, error) {
	return r.Scoped.Count(ctx, tenantID, filter.FilterGroup()) //nolint:wrapcheck
}

// ListBlocking returns the non-cancelled reservations of a staff member on date.
func (r *repositoryImpl) ListBlocking(ctx context.Context, tenantID, staffID string, date time.Time) ([]model.Reservation, error) {
	filter := model.Filter{StaffID: staffID, Date: &date}.FilterGroup()
	filter.Filters = append(filter.Filters, gDto.Filter{
		Field:    model.FieldStatus,
		Value:    string(model.StatusCancelled),
		Operator: gDto.FilterOperatorNotEq,
		Table:    model.TableName,
	})

	reservations, err := r.Scoped.GetAll(ctx, tenantID, gDto.QueryParams{}, filter)
	if err != nil {
		return nil, err //nolint:wrapcheck
	}

	for i := range reservations {
		reservations[i] = normalize(reservations[i])
	}

	return reservations, nil
}

func (r *repositoryImpl) overlaps(ctx context.Context, tx *sqlx.Tx, tenantID, staffID, excludeID string, date time.Time, startTime, duration int) (bool, error) {
	var taken bool

	err := tx.GetContext(ctx, &taken, queryOverlap, tenantID, staffID, clock.FormatDate(date), startTime+duration, startTime, excludeID)
	if err != nil {
		logger.ErrorWithStack(err)

		return false, fmt.Errorf("failed to check overlapping reservations: %w", err)
	}

	return taken, nil
}

func byID(id string) gDto.FilterGroup {
	return gDto.FilterGroup{
		Filters: []any{
			gDto.Filter{
				Field:    model.FieldID,
				Value:    id,
				Operator: gDto.FilterOperatorEq,
				Table:    model.TableName,
			},
		},
	}
}

func normalize(reservation model.Reservation) model.Reservation {
	if !reservation.Date.IsZero() {
		reservation.Date = clock.Date(reservation.Date)
	}

	return reservation
}
