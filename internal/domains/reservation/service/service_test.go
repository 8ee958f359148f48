package service_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"beautyhub/config"
	"beautyhub/infras/metrics"
	"beautyhub/infras/otel/mocks"
	catalogModel "beautyhub/internal/domains/catalog/model"
	catalogMocks "beautyhub/internal/domains/catalog/mocks"
	notificationMocks "beautyhub/internal/domains/notification/mocks"
	reservationMocks "beautyhub/internal/domains/reservation/mocks"
	"beautyhub/internal/domains/reservation/model"
	"beautyhub/internal/domains/reservation/repository"
	"beautyhub/internal/domains/reservation/service"
	tenantModel "beautyhub/internal/domains/tenant/model"
	"beautyhub/shared/constant"
	gDto "beautyhub/shared/dto"
	"beautyhub/shared/failure"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var (
	// 2025-06-02 is a Monday, opening 09:00 to 20:00.
	monday = time.Date(2025, time.June, 2, 0, 0, 0, 0, time.UTC)
	sunday = time.Date(2025, time.June, 8, 0, 0, 0, 0, time.UTC)

	shop = tenantModel.Tenant{ID: "shop-a", Name: "Estudio Luna", OwnerID: "owner-1", Schedule: tenantModel.DefaultSchedule()}

	stylist = catalogModel.Staff{ID: "staff-1", TenantID: "shop-a", Name: "Carla", Active: true}
	haircut = catalogModel.Service{ID: "svc-cut", TenantID: "shop-a", Name: "Corte", Price: decimal.NewFromInt(500), Duration: 30, Active: true}
	beard   = catalogModel.Service{ID: "svc-beard", TenantID: "shop-a", Name: "Barba", Price: decimal.RequireFromString("250.50"), Duration: 15, Active: true}
)

type fixture struct {
	repo     repository.Reservation
	catalog  *catalogMocks.MockAccessor
	notifier *notificationMocks.MockNotifier
	metrics  *metrics.Metrics
	ledger   service.Ledger
}

func setup(t *testing.T, repo repository.Reservation) fixture {
	t.Helper()

	ctrl := gomock.NewController(t)

	cfg := config.Config{}
	cfg.App.Booking.CommitRetryWaitMillis = 1

	f := fixture{
		repo:     repo,
		catalog:  catalogMocks.NewMockAccessor(ctrl),
		notifier: notificationMocks.NewMockNotifier(ctrl),
	}
	f.metrics = metrics.New(&cfg)
	f.ledger = service.New(repo, f.catalog, f.notifier, cfg.WithBookingDefaults(), mocks.NewOtel(), f.metrics)

	f.notifier.EXPECT().ReservationCommitted(gomock.Any(), gomock.Any(), gomock.Any()).AnyTimes()
	f.notifier.EXPECT().StatusChanged(gomock.Any(), gomock.Any(), gomock.Any()).AnyTimes()
	f.notifier.EXPECT().Rescheduled(gomock.Any(), gomock.Any(), gomock.Any()).AnyTimes()

	return f
}

// knowsCatalog makes the catalog resolve the shop's staff member and services.
func (f fixture) knowsCatalog() {
	f.catalog.EXPECT().GetStaff(gomock.Any(), shop, stylist.ID).Return(stylist, nil).AnyTimes()
	f.catalog.EXPECT().GetServices(gomock.Any(), shop, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ tenantModel.Tenant, ids []string) ([]catalogModel.Service, error) {
			known := map[string]catalogModel.Service{haircut.ID: haircut, beard.ID: beard}
			out := []catalogModel.Service{}

			for _, id := range ids {
				if service, ok := known[id]; ok {
					out = append(out, service)
				}
			}

			return out, nil
		}).AnyTimes()
}

func as(user, role string) context.Context {
	ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, user)

	return context.WithValue(ctx, constant.ContextKeyUserRole, role)
}

func draftAt(date time.Time, start int) model.Draft {
	return model.Draft{
		StaffID:       stylist.ID,
		CustomerID:    "customer-1",
		CustomerName:  "Ana",
		CustomerEmail: "ana@example.com",
		Items: model.Items{
			{ServiceID: haircut.ID, Quantity: 1},
			{ServiceID: beard.ID, Quantity: 2},
		},
		Date:      date,
		StartTime: start,
	}
}

func reasonOf(t *testing.T, err error) (string, string) {
	t.Helper()

	fail, ok := failure.Get(err)
	require.True(t, ok, "expected a failure, got %v", err)

	return fail.Reason, fail.Field
}

func TestLedger_Commit(t *testing.T) {
	f := setup(t, repository.NewMemory())
	f.knowsCatalog()

	res, err := f.ledger.Commit(as("customer-1", constant.RoleCustomer), shop, draftAt(monday, 10*60))
	require.NoError(t, err)

	assert.NotEmpty(t, res.ID)
	assert.Equal(t, "shop-a", res.TenantID)
	assert.Equal(t, model.StatusPending, res.Status)
	assert.Equal(t, 60, res.TotalDuration)
	assert.True(t, decimal.RequireFromString("1001").Equal(res.TotalPrice))
	assert.Equal(t, "Corte", res.Items[0].Name)
	assert.Equal(t, "customer-1", res.CreatedBy)

	stored, err := f.repo.Get(context.Background(), "shop-a", res.ID)
	require.NoError(t, err)
	assert.Equal(t, res.ID, stored.ID)

	assert.InDelta(t, 1, testutil.ToFloat64(f.metrics.ReservationsCommitted.WithLabelValues("shop-a")), 0)
}

func TestLedger_Commit_KeepsCartSnapshot(t *testing.T) {
	f := setup(t, repository.NewMemory())
	f.knowsCatalog()

	draft := draftAt(monday, 10*60)
	draft.Items = model.Items{{ServiceID: haircut.ID, Name: "Corte clásico", Price: decimal.NewFromInt(450), Duration: 40, Quantity: 2}}

	res, err := f.ledger.Commit(as("customer-1", constant.RoleCustomer), shop, draft)
	require.NoError(t, err)

	assert.Equal(t, draft.Items, res.Items)
	assert.Equal(t, 80, res.TotalDuration)
	assert.True(t, decimal.NewFromInt(900).Equal(res.TotalPrice))
}

func TestLedger_Commit_NotifiesCustomer(t *testing.T) {
	ctrl := gomock.NewController(t)

	cfg := config.Config{}
	catalog := catalogMocks.NewMockAccessor(ctrl)
	notifier := notificationMocks.NewMockNotifier(ctrl)
	ledger := service.New(repository.NewMemory(), catalog, notifier, cfg.WithBookingDefaults(), mocks.NewOtel(), metrics.New(&cfg))

	f := fixture{catalog: catalog}
	f.knowsCatalog()

	done := make(chan model.Reservation, 1)
	notifier.EXPECT().ReservationCommitted(gomock.Any(), shop, gomock.Any()).
		Do(func(_ context.Context, _ tenantModel.Tenant, reservation model.Reservation) { done <- reservation })

	res, err := ledger.Commit(as("customer-1", constant.RoleCustomer), shop, draftAt(monday, 10*60))
	require.NoError(t, err)

	select {
	case notified := <-done:
		assert.Equal(t, res.ID, notified.ID)
	case <-time.After(time.Second):
		t.Fatal("notification was not sent")
	}
}

func TestLedger_Commit_Validation(t *testing.T) {
	ctx := as("customer-1", constant.RoleCustomer)

	tests := []struct {
		name   string
		tenant tenantModel.Tenant
		draft  func() model.Draft
		reason string
		field  string
	}{
		{
			name:   "unresolved shop",
			tenant: tenantModel.Tenant{},
			draft:  func() model.Draft { return draftAt(monday, 600) },
			reason: failure.ReasonInvalidInput,
			field:  "tenant",
		},
		{
			name:   "no items",
			tenant: shop,
			draft: func() model.Draft {
				d := draftAt(monday, 600)
				d.Items = nil

				return d
			},
			reason: failure.ReasonInvalidInput,
			field:  "items",
		},
		{
			name:   "zero quantity",
			tenant: shop,
			draft: func() model.Draft {
				d := draftAt(monday, 600)
				d.Items[1].Quantity = 0

				return d
			},
			reason: failure.ReasonInvalidInput,
			field:  "quantity",
		},
		{
			name:   "closed weekday",
			tenant: shop,
			draft:  func() model.Draft { return draftAt(sunday, 600) },
			reason: failure.ReasonOutOfHours,
			field:  "time",
		},
		{
			name:   "runs past closing",
			tenant: shop,
			draft:  func() model.Draft { return draftAt(monday, 19*60+30) },
			reason: failure.ReasonOutOfHours,
			field:  "time",
		},
		{
			name:   "starts before opening",
			tenant: shop,
			draft:  func() model.Draft { return draftAt(monday, 8*60+30) },
			reason: failure.ReasonOutOfHours,
			field:  "time",
		},
		{
			name: "malformed schedule",
			tenant: tenantModel.Tenant{ID: "shop-a", OwnerID: "owner-1", Schedule: tenantModel.WeeklySchedule{
				"monday": {Open: "9am", Close: "18:00"},
			}},
			draft:  func() model.Draft { return draftAt(monday, 600) },
			reason: failure.ReasonInvalidInput,
			field:  "schedule",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := setup(t, repository.NewMemory())
			f.catalog.EXPECT().GetStaff(gomock.Any(), gomock.Any(), stylist.ID).Return(stylist, nil).AnyTimes()
			f.catalog.EXPECT().GetServices(gomock.Any(), gomock.Any(), gomock.Any()).Return([]catalogModel.Service{haircut, beard}, nil).AnyTimes()

			_, err := f.ledger.Commit(ctx, tt.tenant, tt.draft())

			reason, field := reasonOf(t, err)
			assert.Equal(t, tt.reason, reason)
			assert.Equal(t, tt.field, field)
		})
	}
}

func TestLedger_Commit_CrossTenantReference(t *testing.T) {
	ctx := as("customer-1", constant.RoleCustomer)

	t.Run("staff member of another shop", func(t *testing.T) {
		f := setup(t, repository.NewMemory())
		f.catalog.EXPECT().GetStaff(gomock.Any(), shop, "staff-b").Return(catalogModel.Staff{}, failure.NotFoundField("staff_id", "staff member not found"))
		f.catalog.EXPECT().StaffOwner(gomock.Any(), "staff-b").Return("shop-b", nil)

		draft := draftAt(monday, 600)
		draft.StaffID = "staff-b"

		_, err := f.ledger.Commit(ctx, shop, draft)

		reason, field := reasonOf(t, err)
		assert.Equal(t, failure.ReasonCrossTenantReference, reason)
		assert.Equal(t, "staff_id", field)
	})

	t.Run("unknown staff member", func(t *testing.T) {
		f := setup(t, repository.NewMemory())
		f.catalog.EXPECT().GetStaff(gomock.Any(), shop, "ghost").Return(catalogModel.Staff{}, failure.NotFoundField("staff_id", "staff member not found"))
		f.catalog.EXPECT().StaffOwner(gomock.Any(), "ghost").Return("", nil)

		draft := draftAt(monday, 600)
		draft.StaffID = "ghost"

		_, err := f.ledger.Commit(ctx, shop, draft)

		reason, field := reasonOf(t, err)
		assert.Equal(t, failure.ReasonNotFound, reason)
		assert.Equal(t, "staff_id", field)
	})

	t.Run("service of another shop", func(t *testing.T) {
		f := setup(t, repository.NewMemory())
		f.catalog.EXPECT().GetStaff(gomock.Any(), shop, stylist.ID).Return(stylist, nil)
		f.catalog.EXPECT().GetServices(gomock.Any(), shop, []string{haircut.ID, "svc-b"}).Return(nil, failure.NotFoundField("service_id", "service svc-b not found"))
		f.catalog.EXPECT().ServiceOwner(gomock.Any(), haircut.ID).Return("shop-a", nil)
		f.catalog.EXPECT().ServiceOwner(gomock.Any(), "svc-b").Return("shop-b", nil)

		draft := draftAt(monday, 600)
		draft.Items[1].ServiceID = "svc-b"

		_, err := f.ledger.Commit(ctx, shop, draft)

		reason, field := reasonOf(t, err)
		assert.Equal(t, failure.ReasonCrossTenantReference, reason)
		assert.Equal(t, "service_id", field)
	})

	t.Run("inactive staff member", func(t *testing.T) {
		f := setup(t, repository.NewMemory())
		retired := stylist
		retired.Active = false
		f.catalog.EXPECT().GetStaff(gomock.Any(), shop, stylist.ID).Return(retired, nil)

		_, err := f.ledger.Commit(ctx, shop, draftAt(monday, 600))

		reason, field := reasonOf(t, err)
		assert.Equal(t, failure.ReasonInvalidInput, reason)
		assert.Equal(t, "staff_id", field)
	})
}

func TestLedger_Commit_SlotConflict(t *testing.T) {
	f := setup(t, repository.NewMemory())
	f.knowsCatalog()

	ctx := as("customer-1", constant.RoleCustomer)

	_, err := f.ledger.Commit(ctx, shop, draftAt(monday, 10*60))
	require.NoError(t, err)

	// 10:30 overlaps the first reservation, which runs until 11:00.
	_, err = f.ledger.Commit(ctx, shop, draftAt(monday, 10*60+30))
	reason, _ := reasonOf(t, err)
	assert.Equal(t, failure.ReasonSlotConflict, reason)

	// 11:00 touches it and is free.
	_, err = f.ledger.Commit(ctx, shop, draftAt(monday, 11*60))
	require.NoError(t, err)

	assert.InDelta(t, 1, testutil.ToFloat64(f.metrics.SlotConflicts.WithLabelValues("shop-a")), 0)
}

func TestLedger_Commit_ConcurrentSingleWinner(t *testing.T) {
	f := setup(t, repository.NewMemory())
	f.knowsCatalog()

	const contenders = 16

	var (
		wg        sync.WaitGroup
		mu        sync.Mutex
		wins      int
		conflicts int
	)

	start := make(chan struct{})

	for range contenders {
		wg.Add(1)

		go func() {
			defer wg.Done()
			<-start

			_, err := f.ledger.Commit(as("customer-1", constant.RoleCustomer), shop, draftAt(monday, 15*60))

			mu.Lock()
			defer mu.Unlock()

			switch {
			case err == nil:
				wins++
			case failure.HasReason(err, failure.ReasonSlotConflict):
				conflicts++
			}
		}()
	}

	close(start)
	wg.Wait()

	assert.Equal(t, 1, wins)
	assert.Equal(t, contenders-1, conflicts)

	blocking, err := f.repo.ListBlocking(context.Background(), "shop-a", stylist.ID, monday)
	require.NoError(t, err)
	assert.Len(t, blocking, 1)
}

func TestLedger_Commit_Retry(t *testing.T) {
	ctx := as("customer-1", constant.RoleCustomer)

	t.Run("transient errors are retried", func(t *testing.T) {
		repo := reservationMocks.NewMockReservation(gomock.NewController(t))
		f := setup(t, repo)
		f.knowsCatalog()

		gomock.InOrder(
			repo.EXPECT().Commit(gomock.Any(), "shop-a", gomock.Any()).Return(errors.New("connection reset")),
			repo.EXPECT().Commit(gomock.Any(), "shop-a", gomock.Any()).Return(errors.New("connection reset")),
			repo.EXPECT().Commit(gomock.Any(), "shop-a", gomock.Any()).Return(nil),
		)

		_, err := f.ledger.Commit(ctx, shop, draftAt(monday, 600))
		require.NoError(t, err)

		assert.InDelta(t, 2, testutil.ToFloat64(f.metrics.CommitRetries), 0)
	})

	t.Run("retries are bounded", func(t *testing.T) {
		repo := reservationMocks.NewMockReservation(gomock.NewController(t))
		f := setup(t, repo)
		f.knowsCatalog()

		repo.EXPECT().Commit(gomock.Any(), "shop-a", gomock.Any()).Return(errors.New("connection reset")).Times(3)

		_, err := f.ledger.Commit(ctx, shop, draftAt(monday, 600))
		require.Error(t, err)

		_, isFailure := failure.Get(err)
		assert.False(t, isFailure)
	})

	t.Run("taken slot is never retried", func(t *testing.T) {
		repo := reservationMocks.NewMockReservation(gomock.NewController(t))
		f := setup(t, repo)
		f.knowsCatalog()

		repo.EXPECT().Commit(gomock.Any(), "shop-a", gomock.Any()).Return(repository.ErrSlotTaken).Times(1)

		_, err := f.ledger.Commit(ctx, shop, draftAt(monday, 600))

		reason, _ := reasonOf(t, err)
		assert.Equal(t, failure.ReasonSlotConflict, reason)
		assert.InDelta(t, 0, testutil.ToFloat64(f.metrics.CommitRetries), 0)
	})
}

func commitOne(t *testing.T, f fixture, start int) model.Reservation {
	t.Helper()

	res, err := f.ledger.Commit(as("customer-1", constant.RoleCustomer), shop, draftAt(monday, start))
	require.NoError(t, err)

	return res
}

func TestLedger_SetStatus(t *testing.T) {
	owner := as("owner-1", constant.RoleOwner)
	customer := as("customer-1", constant.RoleCustomer)
	stranger := as("customer-2", constant.RoleCustomer)

	t.Run("owner walks the happy path", func(t *testing.T) {
		f := setup(t, repository.NewMemory())
		f.knowsCatalog()
		res := commitOne(t, f, 600)

		confirmed, err := f.ledger.SetStatus(owner, shop, res.ID, model.StatusConfirmed)
		require.NoError(t, err)
		assert.Equal(t, model.StatusConfirmed, confirmed.Status)

		completed, err := f.ledger.SetStatus(owner, shop, res.ID, model.StatusCompleted)
		require.NoError(t, err)
		assert.Equal(t, model.StatusCompleted, completed.Status)

		_, err = f.ledger.SetStatus(owner, shop, res.ID, model.StatusCancelled)
		reason, _ := reasonOf(t, err)
		assert.Equal(t, failure.ReasonInvalidTransition, reason)

		assert.InDelta(t, 1, testutil.ToFloat64(f.metrics.StatusTransitions.WithLabelValues("pending", "confirmed")), 0)
	})

	t.Run("no way back to pending", func(t *testing.T) {
		f := setup(t, repository.NewMemory())
		f.knowsCatalog()
		res := commitOne(t, f, 600)

		_, err := f.ledger.SetStatus(owner, shop, res.ID, model.StatusConfirmed)
		require.NoError(t, err)

		_, err = f.ledger.SetStatus(owner, shop, res.ID, model.StatusPending)
		reason, field := reasonOf(t, err)
		assert.Equal(t, failure.ReasonInvalidTransition, reason)
		assert.Equal(t, "status", field)
	})

	t.Run("customer may cancel their own reservation", func(t *testing.T) {
		f := setup(t, repository.NewMemory())
		f.knowsCatalog()
		res := commitOne(t, f, 600)

		_, err := f.ledger.SetStatus(customer, shop, res.ID, model.StatusConfirmed)
		assert.Equal(t, 403, failure.GetCode(err))

		_, err = f.ledger.SetStatus(stranger, shop, res.ID, model.StatusCancelled)
		assert.Equal(t, 403, failure.GetCode(err))

		cancelled, err := f.ledger.SetStatus(customer, shop, res.ID, model.StatusCancelled)
		require.NoError(t, err)
		assert.Equal(t, model.StatusCancelled, cancelled.Status)

		// The slot is free again.
		commitOne(t, f, 600)
	})

	t.Run("unknown status", func(t *testing.T) {
		f := setup(t, repository.NewMemory())

		_, err := f.ledger.SetStatus(owner, shop, "any", model.Status("archived"))
		reason, field := reasonOf(t, err)
		assert.Equal(t, failure.ReasonInvalidInput, reason)
		assert.Equal(t, "status", field)
	})

	t.Run("missing reservation", func(t *testing.T) {
		f := setup(t, repository.NewMemory())

		_, err := f.ledger.SetStatus(owner, shop, "ghost", model.StatusConfirmed)
		reason, _ := reasonOf(t, err)
		assert.Equal(t, failure.ReasonNotFound, reason)
	})

	t.Run("lost compare and set", func(t *testing.T) {
		repo := reservationMocks.NewMockReservation(gomock.NewController(t))
		f := setup(t, repo)

		current := model.Reservation{ID: "r-1", TenantID: "shop-a", Status: model.StatusPending}
		repo.EXPECT().Get(gomock.Any(), "shop-a", "r-1").Return(current, nil)
		repo.EXPECT().SetStatus(gomock.Any(), "shop-a", "r-1", model.StatusPending, model.StatusConfirmed, "owner-1").Return(false, nil)

		_, err := f.ledger.SetStatus(owner, shop, "r-1", model.StatusConfirmed)
		reason, _ := reasonOf(t, err)
		assert.Equal(t, failure.ReasonInvalidTransition, reason)
	})
}

func TestLedger_Reschedule(t *testing.T) {
	owner := as("owner-1", constant.RoleOwner)

	f := setup(t, repository.NewMemory())
	f.knowsCatalog()

	first := commitOne(t, f, 10*60)
	second := commitOne(t, f, 12*60)

	moved, err := f.ledger.Reschedule(owner, shop, first.ID, monday, 10*60+30)
	require.NoError(t, err)
	assert.Equal(t, 10*60+30, moved.StartTime)

	_, err = f.ledger.Reschedule(owner, shop, first.ID, monday, 11*60+30)
	reason, _ := reasonOf(t, err)
	assert.Equal(t, failure.ReasonSlotConflict, reason, "would overlap the 12:00 reservation")

	_, err = f.ledger.Reschedule(owner, shop, first.ID, sunday, 10*60)
	reason, _ = reasonOf(t, err)
	assert.Equal(t, failure.ReasonOutOfHours, reason)

	_, err = f.ledger.Reschedule(as("customer-1", constant.RoleCustomer), shop, first.ID, monday, 16*60)
	assert.Equal(t, 403, failure.GetCode(err))

	_, err = f.ledger.SetStatus(owner, shop, second.ID, model.StatusCancelled)
	require.NoError(t, err)

	_, err = f.ledger.Reschedule(owner, shop, second.ID, monday, 16*60)
	reason, _ = reasonOf(t, err)
	assert.Equal(t, failure.ReasonInvalidTransition, reason)
}

func TestLedger_Listings(t *testing.T) {
	owner := as("owner-1", constant.RoleOwner)

	f := setup(t, repository.NewMemory())
	f.knowsCatalog()

	commitOne(t, f, 10*60)
	commitOne(t, f, 12*60)

	other := draftAt(monday.AddDate(0, 0, 1), 9*60)
	other.CustomerID = "customer-2"
	_, err := f.ledger.Commit(as("customer-2", constant.RoleCustomer), shop, other)
	require.NoError(t, err)

	all, err := f.ledger.ListByTenant(owner, shop, model.Filter{}, gDto.QueryParams{})
	require.NoError(t, err)
	assert.Equal(t, 3, all.TotalData)

	today, err := f.ledger.ListForDate(owner, shop, monday, gDto.QueryParams{})
	require.NoError(t, err)
	require.Len(t, today.Reservations, 2)
	assert.Equal(t, "10:00", today.Reservations[0].StartTime)
	assert.Equal(t, "12:00", today.Reservations[1].StartTime)

	byStaff, err := f.ledger.ListByStaff(owner, shop, stylist.ID, gDto.QueryParams{Page: 1, Limit: 2})
	require.NoError(t, err)
	assert.Equal(t, 3, byStaff.TotalData)
	assert.Equal(t, 2, byStaff.TotalPage)
	assert.Len(t, byStaff.Reservations, 2)

	mine, err := f.ledger.ListByCustomer(as("customer-2", constant.RoleCustomer), shop, "customer-2", gDto.QueryParams{})
	require.NoError(t, err)
	assert.Equal(t, 1, mine.TotalData)

	_, err = f.ledger.ListByCustomer(as("customer-2", constant.RoleCustomer), shop, "customer-1", gDto.QueryParams{})
	assert.Equal(t, 403, failure.GetCode(err))

	_, err = f.ledger.ListByTenant(as("customer-2", constant.RoleCustomer), shop, model.Filter{}, gDto.QueryParams{})
	assert.Equal(t, 403, failure.GetCode(err))
}

func TestLedger_TenantIsolation(t *testing.T) {
	f := setup(t, repository.NewMemory())
	f.knowsCatalog()

	res := commitOne(t, f, 10*60)

	otherShop := tenantModel.Tenant{ID: "shop-b", OwnerID: "owner-2", Schedule: tenantModel.DefaultSchedule()}

	_, err := f.ledger.Get(as("owner-2", constant.RoleOwner), otherShop, res.ID)
	reason, _ := reasonOf(t, err)
	assert.Equal(t, failure.ReasonNotFound, reason)

	list, err := f.ledger.ListByTenant(as("owner-2", constant.RoleOwner), otherShop, model.Filter{}, gDto.QueryParams{})
	require.NoError(t, err)
	assert.Zero(t, list.TotalData)
}
