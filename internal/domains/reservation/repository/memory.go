package repository

import (
	"context"
	"slices"
	"sync"
	"time"

	"beautyhub/internal/domains/reservation/model"
	"beautyhub/shared/clock"
	"beautyhub/shared/constant"
	gDto "beautyhub/shared/dto"
	gRepo "beautyhub/shared/repository"
	"beautyhub/shared/timezone"
)

// Memory is an in-process Reservation store with the same serialisation
// guarantees as the postgres one. It backs tests and single-node demos.
type Memory struct {
	mu    sync.RWMutex
	rows  map[string]map[string]model.Reservation
	locks sync.Map
}

var _ Reservation = (*Memory)(nil)

func NewMemory() *Memory {
	return &Memory{rows: map[string]map[string]model.Reservation{}}
}

func (m *Memory) staffLock(tenantID, staffID string) *sync.Mutex {
	lock, _ := m.locks.LoadOrStore(staffLockKey(tenantID, staffID), &sync.Mutex{})

	return lock.(*sync.Mutex) //nolint:forcetypeassert
}

func (m *Memory) Commit(_ context.Context, tenantID string, reservation model.Reservation) error {
	if tenantID == constant.Empty {
		return gRepo.ErrMissingTenant
	}

	if reservation.TenantID != tenantID {
		return gRepo.ErrTenantMismatch
	}

	lock := m.staffLock(tenantID, reservation.StaffID)
	lock.Lock()
	defer lock.Unlock()

	if m.overlaps(tenantID, reservation) {
		return ErrSlotTaken
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if m.rows[tenantID] == nil {
		m.rows[tenantID] = map[string]model.Reservation{}
	}

	reservation.Date = clock.Date(reservation.Date)
	m.rows[tenantID][reservation.ID] = reservation

	return nil
}

func (m *Memory) Reschedule(_ context.Context, tenantID string, current model.Reservation, date time.Time, startTime int, user string) error {
	if tenantID == constant.Empty {
		return gRepo.ErrMissingTenant
	}

	lock := m.staffLock(tenantID, current.StaffID)
	lock.Lock()
	defer lock.Unlock()

	moved := current
	moved.Date = clock.Date(date)
	moved.StartTime = startTime

	if m.overlaps(tenantID, moved) {
		return ErrSlotTaken
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	stored, ok := m.rows[tenantID][current.ID]
	if !ok || !stored.Status.Reschedulable() {
		return ErrNotReschedulable
	}

	stored.Date = moved.Date
	stored.StartTime = startTime
	stored.Touch(timezone.Now(), user)
	m.rows[tenantID][current.ID] = stored

	return nil
}

func (m *Memory) SetStatus(_ context.Context, tenantID, id string, from, to model.Status, user string) (bool, error) {
	if tenantID == constant.Empty {
		return false, gRepo.ErrMissingTenant
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	stored, ok := m.rows[tenantID][id]
	if !ok || stored.Status != from {
		return false, nil
	}

	stored.Status = to
	stored.Touch(timezone.Now(), user)
	m.rows[tenantID][id] = stored

	return true, nil
}

func (m *Memory) Get(_ context.Context, tenantID, id string) (model.Reservation, error) {
	if tenantID == constant.Empty {
		return model.Reservation{}, gRepo.ErrMissingTenant
	}

	m.mu.RLock()
	defer m.mu.RUnlock()

	return m.rows[tenantID][id], nil
}

func (m *Memory) List(_ context.Context, tenantID string, filter model.Filter, params gDto.QueryParams) ([]model.Reservation, error) {
	if tenantID == constant.Empty {
		return nil, gRepo.ErrMissingTenant
	}

	matched := m.snapshot(tenantID, filter.Matches)

	if params.Limit > 0 {
		offset := params.Offset()
		if offset >= len(matched) {
			return []model.Reservation{}, nil
		}

		matched = matched[offset:min(offset+params.Limit, len(matched))]
	}

	return matched, nil
}

func (m *Memory) Count(_ context.Context, tenantID string, filter model.Filter) (int, error) {
	if tenantID == constant.Empty {
		return 0, gRepo.ErrMissingTenant
	}

	return len(m.snapshot(tenantID, filter.Matches)), nil
}

func (m *Memory) ListBlocking(_ context.Context, tenantID, staffID string, date time.Time) ([]model.Reservation, error) {
	if tenantID == constant.Empty {
		return nil, gRepo.ErrMissingTenant
	}

	filter := model.Filter{StaffID: staffID, Date: &date}

	return m.snapshot(tenantID, func(r model.Reservation) bool {
		return r.Blocks() && filter.Matches(r)
	}), nil
}

// snapshot copies the matching rows ordered by date and start time.
func (m *Memory) snapshot(tenantID string, keep func(model.Reservation) bool) []model.Reservation {
	m.mu.RLock()
	defer m.mu.RUnlock()

	matched := []model.Reservation{}

	for _, reservation := range m.rows[tenantID] {
		if keep(reservation) {
			matched = append(matched, reservation)
		}
	}

	slices.SortFunc(matched, func(a, b model.Reservation) int {
		if c := a.Date.Compare(b.Date); c != 0 {
			return c
		}

		if a.StartTime != b.StartTime {
			return a.StartTime - b.StartTime
		}

		return a.CreatedAt.Compare(b.CreatedAt)
	})

	return matched
}

func (m *Memory) overlaps(tenantID string, candidate model.Reservation) bool {
	m.mu.RLock()
	defer m.mu.RUnlock()

	for id, existing := range m.rows[tenantID] {
		if id == candidate.ID || !existing.Blocks() {
			continue
		}

		if existing.Overlaps(candidate) {
			return true
		}
	}

	return false
}
