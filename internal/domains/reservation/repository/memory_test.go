package repository_test

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"beautyhub/internal/domains/reservation/model"
	"beautyhub/internal/domains/reservation/repository"
	gDto "beautyhub/shared/dto"
	gRepo "beautyhub/shared/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var monday = time.Date(2025, time.June, 2, 0, 0, 0, 0, time.UTC)

func booking(id, tenantID, staffID string, start, duration int) model.Reservation {
	return model.Reservation{
		ID:            id,
		TenantID:      tenantID,
		StaffID:       staffID,
		CustomerID:    "cust-" + id,
		Date:          monday,
		StartTime:     start,
		TotalDuration: duration,
		Status:        model.StatusPending,
	}
}

func TestMemory_CommitRejectsOverlap(t *testing.T) {
	repo := repository.NewMemory()
	ctx := context.Background()

	require.NoError(t, repo.Commit(ctx, "shop-a", booking("r1", "shop-a", "staff-1", 600, 60)))

	err := repo.Commit(ctx, "shop-a", booking("r2", "shop-a", "staff-1", 630, 30))
	assert.ErrorIs(t, err, repository.ErrSlotTaken)

	// Back-to-back and other staff members are fine.
	assert.NoError(t, repo.Commit(ctx, "shop-a", booking("r3", "shop-a", "staff-1", 660, 30)))
	assert.NoError(t, repo.Commit(ctx, "shop-a", booking("r4", "shop-a", "staff-2", 600, 60)))

	// Another tenant never collides.
	assert.NoError(t, repo.Commit(ctx, "shop-b", booking("r5", "shop-b", "staff-1", 600, 60)))
}

func TestMemory_CommitRequiresTenant(t *testing.T) {
	repo := repository.NewMemory()

	assert.ErrorIs(t, repo.Commit(context.Background(), "", booking("r1", "shop-a", "staff-1", 600, 60)), gRepo.ErrMissingTenant)
	assert.ErrorIs(t, repo.Commit(context.Background(), "shop-b", booking("r1", "shop-a", "staff-1", 600, 60)), gRepo.ErrTenantMismatch)
}

func TestMemory_ConcurrentCommitSingleWinner(t *testing.T) {
	repo := repository.NewMemory()
	ctx := context.Background()

	const contenders = 32

	var (
		wg        sync.WaitGroup
		mu        sync.Mutex
		wins      int
		conflicts int
	)

	start := make(chan struct{})

	for i := range contenders {
		wg.Add(1)

		go func() {
			defer wg.Done()

			<-start

			err := repo.Commit(ctx, "shop-a", booking(fmt.Sprintf("r%d", i), "shop-a", "staff-1", 600, 45))

			mu.Lock()
			defer mu.Unlock()

			switch {
			case err == nil:
				wins++
			case errors.Is(err, repository.ErrSlotTaken):
				conflicts++
			}
		}()
	}

	close(start)
	wg.Wait()

	assert.Equal(t, 1, wins)
	assert.Equal(t, contenders-1, conflicts)

	blocking, err := repo.ListBlocking(ctx, "shop-a", "staff-1", monday)
	require.NoError(t, err)
	assert.Len(t, blocking, 1)
}

func TestMemory_CancelledFreesSlot(t *testing.T) {
	repo := repository.NewMemory()
	ctx := context.Background()

	require.NoError(t, repo.Commit(ctx, "shop-a", booking("r1", "shop-a", "staff-1", 600, 60)))

	ok, err := repo.SetStatus(ctx, "shop-a", "r1", model.StatusPending, model.StatusCancelled, "owner")
	require.NoError(t, err)
	require.True(t, ok)

	assert.NoError(t, repo.Commit(ctx, "shop-a", booking("r2", "shop-a", "staff-1", 600, 60)))
}

func TestMemory_SetStatusCompareAndSet(t *testing.T) {
	repo := repository.NewMemory()
	ctx := context.Background()

	require.NoError(t, repo.Commit(ctx, "shop-a", booking("r1", "shop-a", "staff-1", 600, 60)))

	ok, err := repo.SetStatus(ctx, "shop-a", "r1", model.StatusPending, model.StatusConfirmed, "owner")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = repo.SetStatus(ctx, "shop-a", "r1", model.StatusPending, model.StatusCancelled, "owner")
	require.NoError(t, err)
	assert.False(t, ok)

	ok, err = repo.SetStatus(ctx, "shop-b", "r1", model.StatusConfirmed, model.StatusCancelled, "owner")
	require.NoError(t, err)
	assert.False(t, ok)

	stored, err := repo.Get(ctx, "shop-a", "r1")
	require.NoError(t, err)
	assert.Equal(t, model.StatusConfirmed, stored.Status)
}

func TestMemory_Reschedule(t *testing.T) {
	repo := repository.NewMemory()
	ctx := context.Background()

	first := booking("r1", "shop-a", "staff-1", 600, 60)
	require.NoError(t, repo.Commit(ctx, "shop-a", first))
	require.NoError(t, repo.Commit(ctx, "shop-a", booking("r2", "shop-a", "staff-1", 720, 60)))

	// Moving onto itself is allowed.
	assert.NoError(t, repo.Reschedule(ctx, "shop-a", first, monday, 630, "owner"))

	assert.ErrorIs(t, repo.Reschedule(ctx, "shop-a", first, monday, 690, "owner"), repository.ErrSlotTaken)

	ok, err := repo.SetStatus(ctx, "shop-a", "r1", model.StatusPending, model.StatusCancelled, "owner")
	require.NoError(t, err)
	require.True(t, ok)

	assert.ErrorIs(t, repo.Reschedule(ctx, "shop-a", first, monday, 900, "owner"), repository.ErrNotReschedulable)
}

func TestMemory_ListAndCount(t *testing.T) {
	repo := repository.NewMemory()
	ctx := context.Background()

	require.NoError(t, repo.Commit(ctx, "shop-a", booking("late", "shop-a", "staff-1", 900, 30)))
	require.NoError(t, repo.Commit(ctx, "shop-a", booking("early", "shop-a", "staff-1", 540, 30)))
	require.NoError(t, repo.Commit(ctx, "shop-a", booking("other", "shop-a", "staff-2", 600, 30)))
	require.NoError(t, repo.Commit(ctx, "shop-b", booking("foreign", "shop-b", "staff-1", 600, 30)))

	all, err := repo.List(ctx, "shop-a", model.Filter{}, gDto.QueryParams{})
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, "early", all[0].ID)

	byStaff, err := repo.List(ctx, "shop-a", model.Filter{StaffID: "staff-1"}, gDto.QueryParams{})
	require.NoError(t, err)
	assert.Len(t, byStaff, 2)

	page, err := repo.List(ctx, "shop-a", model.Filter{}, gDto.QueryParams{Page: 2, Limit: 2})
	require.NoError(t, err)
	require.Len(t, page, 1)
	assert.Equal(t, "late", page[0].ID)

	count, err := repo.Count(ctx, "shop-a", model.Filter{})
	require.NoError(t, err)
	assert.Equal(t, 3, count)

	_, err = repo.List(ctx, "", model.Filter{}, gDto.QueryParams{})
	assert.ErrorIs(t, err, gRepo.ErrMissingTenant)
}
