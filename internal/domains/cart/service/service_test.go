package service_test

import (
	"context"
	"testing"
	"time"

	"beautyhub/config"
	"beautyhub/infras/otel/mocks"
	availabilityMocks "beautyhub/internal/domains/availability/mocks"
	cartMocks "beautyhub/internal/domains/cart/mocks"
	"beautyhub/internal/domains/cart/model"
	"beautyhub/internal/domains/cart/model/dto"
	"beautyhub/internal/domains/cart/service"
	catalogModel "beautyhub/internal/domains/catalog/model"
	catalogMocks "beautyhub/internal/domains/catalog/mocks"
	reservationMocks "beautyhub/internal/domains/reservation/mocks"
	reservationModel "beautyhub/internal/domains/reservation/model"
	tenantModel "beautyhub/internal/domains/tenant/model"
	"beautyhub/shared/constant"
	"beautyhub/shared/failure"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var (
	monday = time.Date(2025, time.June, 2, 0, 0, 0, 0, time.UTC)

	shop = tenantModel.Tenant{ID: "shop-a", Name: "Estudio Luna", OwnerID: "owner-1", Schedule: tenantModel.DefaultSchedule()}

	stylist = catalogModel.Staff{ID: "staff-1", TenantID: "shop-a", Name: "Carla", Active: true}
	resting = catalogModel.Staff{ID: "staff-2", TenantID: "shop-a", Name: "Luis", Active: false}
	haircut = catalogModel.Service{ID: "svc-cut", TenantID: "shop-a", Name: "Corte", Price: decimal.NewFromInt(500), Duration: 30, Active: true}
	retired = catalogModel.Service{ID: "svc-old", TenantID: "shop-a", Name: "Permanente", Price: decimal.NewFromInt(900), Duration: 90, Active: false}
)

type fixture struct {
	store        map[string]model.Cart
	repo         *cartMocks.MockStore
	catalog      *catalogMocks.MockAccessor
	availability *availabilityMocks.MockEngine
	ledger       *reservationMocks.MockLedger
	carts        service.Cart
}

// setup backs the repository mock with a map so carts survive between calls.
func setup(t *testing.T) *fixture {
	t.Helper()

	ctrl := gomock.NewController(t)
	cfg := config.Config{}

	f := &fixture{
		store:        map[string]model.Cart{},
		repo:         cartMocks.NewMockStore(ctrl),
		catalog:      catalogMocks.NewMockAccessor(ctrl),
		availability: availabilityMocks.NewMockEngine(ctrl),
		ledger:       reservationMocks.NewMockLedger(ctrl),
	}
	f.carts = service.New(f.repo, f.catalog, f.availability, f.ledger, cfg.WithBookingDefaults(), mocks.NewOtel())

	f.repo.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, tenantID string, cart model.Cart) error {
			f.store[tenantID+"/"+cart.ID] = cart

			return nil
		}).AnyTimes()
	f.repo.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, tenantID, id string) (model.Cart, error) {
			return f.store[tenantID+"/"+id], nil
		}).AnyTimes()
	f.repo.EXPECT().Delete(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, tenantID, id string) error {
			delete(f.store, tenantID+"/"+id)

			return nil
		}).AnyTimes()

	f.catalog.EXPECT().GetStaff(gomock.Any(), shop, stylist.ID).Return(stylist, nil).AnyTimes()
	f.catalog.EXPECT().GetStaff(gomock.Any(), shop, resting.ID).Return(resting, nil).AnyTimes()
	f.catalog.EXPECT().GetService(gomock.Any(), shop, haircut.ID).Return(haircut, nil).AnyTimes()
	f.catalog.EXPECT().GetService(gomock.Any(), shop, retired.ID).Return(retired, nil).AnyTimes()

	return f
}

func as(user string) context.Context {
	ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, user)
	ctx = context.WithValue(ctx, constant.ContextKeyUserEmail, user+"@example.com")

	return context.WithValue(ctx, constant.ContextKeyUserRole, constant.RoleCustomer)
}

func reasonOf(t *testing.T, err error) string {
	t.Helper()

	fail, ok := failure.Get(err)
	require.True(t, ok, "expected a failure, got %v", err)

	return fail.Reason
}

// ready builds a cart holding one haircut with staff-1 at 10:00 on Monday.
func (f *fixture) ready(t *testing.T, ctx context.Context) model.Cart {
	t.Helper()

	cart, err := f.carts.Start(ctx, shop, dto.StartRequest{StaffID: stylist.ID, CustomerName: "Ana"})
	require.NoError(t, err)

	_, err = f.carts.AddService(ctx, shop, cart.ID, haircut.ID, 1)
	require.NoError(t, err)

	f.availability.EXPECT().ListSlotsForDate(gomock.Any(), shop, monday, 30, 0).Return([]int{540, 600, 660}, nil)
	f.availability.EXPECT().ListOpenSlots(gomock.Any(), shop, stylist.ID, monday, 30, 0).Return([]int{540, 600}, nil)

	cart, err = f.carts.ChooseSlot(ctx, shop, cart.ID, monday, 600)
	require.NoError(t, err)
	require.Equal(t, model.StateReady, cart.State())

	return cart
}

func TestCart_Start(t *testing.T) {
	f := setup(t)

	t.Run("anonymous", func(t *testing.T) {
		_, err := f.carts.Start(context.Background(), shop, dto.StartRequest{})
		assert.Equal(t, 401, failure.GetCode(err))
	})

	t.Run("fills contact from the session", func(t *testing.T) {
		cart, err := f.carts.Start(as("customer-1"), shop, dto.StartRequest{CustomerName: "Ana"})
		require.NoError(t, err)

		assert.Equal(t, "customer-1", cart.CustomerID)
		assert.Equal(t, "customer-1@example.com", cart.CustomerEmail)
		assert.Equal(t, model.StateEmpty, cart.State())
		assert.Contains(t, f.store, "shop-a/"+cart.ID)
	})

	t.Run("inactive staff", func(t *testing.T) {
		_, err := f.carts.Start(as("customer-1"), shop, dto.StartRequest{StaffID: resting.ID})
		assert.Equal(t, failure.ReasonInvalidInput, reasonOf(t, err))
	})

	t.Run("unresolved shop", func(t *testing.T) {
		_, err := f.carts.Start(as("customer-1"), tenantModel.Tenant{}, dto.StartRequest{})
		assert.Equal(t, failure.ReasonInvalidInput, reasonOf(t, err))
	})
}

func TestCart_Ownership(t *testing.T) {
	f := setup(t)

	cart, err := f.carts.Start(as("customer-1"), shop, dto.StartRequest{})
	require.NoError(t, err)

	_, err = f.carts.Get(as("customer-2"), shop, cart.ID)
	assert.Equal(t, failure.ReasonNotFound, reasonOf(t, err))

	_, err = f.carts.Get(as("customer-1"), tenantModel.Tenant{ID: "shop-b", Schedule: shop.Schedule}, cart.ID)
	assert.Equal(t, failure.ReasonNotFound, reasonOf(t, err))

	got, err := f.carts.Get(as("customer-1"), shop, cart.ID)
	require.NoError(t, err)
	assert.Equal(t, cart.ID, got.ID)
}

func TestCart_Lines(t *testing.T) {
	f := setup(t)
	ctx := as("customer-1")

	cart, err := f.carts.Start(ctx, shop, dto.StartRequest{})
	require.NoError(t, err)

	_, err = f.carts.AddService(ctx, shop, cart.ID, haircut.ID, 1)
	assert.Equal(t, failure.ReasonInvalidInput, reasonOf(t, err), "staff comes first")

	_, err = f.carts.SelectStaff(ctx, shop, cart.ID, stylist.ID)
	require.NoError(t, err)

	_, err = f.carts.AddService(ctx, shop, cart.ID, retired.ID, 1)
	assert.Equal(t, failure.ReasonInvalidInput, reasonOf(t, err))

	cart, err = f.carts.AddService(ctx, shop, cart.ID, haircut.ID, 1)
	require.NoError(t, err)
	cart, err = f.carts.AddService(ctx, shop, cart.ID, haircut.ID, 1)
	require.NoError(t, err)

	require.Len(t, cart.Lines, 1)
	assert.Equal(t, 2, cart.Lines[0].Quantity)
	assert.Equal(t, 60, cart.TotalDuration)
	assert.True(t, decimal.NewFromInt(1000).Equal(cart.TotalPrice))

	cart, err = f.carts.SetQuantity(ctx, shop, cart.ID, haircut.ID, 3)
	require.NoError(t, err)
	assert.Equal(t, 90, cart.TotalDuration)

	_, err = f.carts.SetQuantity(ctx, shop, cart.ID, haircut.ID, 0)
	assert.Equal(t, failure.ReasonInvalidInput, reasonOf(t, err))

	cart, err = f.carts.AdjustQuantity(ctx, shop, cart.ID, haircut.ID, -3)
	require.NoError(t, err)
	assert.Empty(t, cart.Lines)
	assert.Equal(t, model.StateBuilding, cart.State())

	_, err = f.carts.RemoveService(ctx, shop, cart.ID, haircut.ID)
	assert.Equal(t, failure.ReasonNotFound, reasonOf(t, err))

	// a rejected change leaves the stored cart untouched
	assert.Empty(t, f.store["shop-a/"+cart.ID].Lines)
}

func TestCart_ChooseSlot(t *testing.T) {
	t.Run("ready", func(t *testing.T) {
		f := setup(t)
		cart := f.ready(t, as("customer-1"))

		require.NotNil(t, cart.Slot)
		assert.Equal(t, 600, cart.Slot.StartTime)
	})

	t.Run("outside hours", func(t *testing.T) {
		f := setup(t)
		ctx := as("customer-1")

		cart, err := f.carts.Start(ctx, shop, dto.StartRequest{StaffID: stylist.ID})
		require.NoError(t, err)
		_, err = f.carts.AddService(ctx, shop, cart.ID, haircut.ID, 1)
		require.NoError(t, err)

		f.availability.EXPECT().ListSlotsForDate(gomock.Any(), shop, monday, 30, 0).Return([]int{540, 600}, nil)

		_, err = f.carts.ChooseSlot(ctx, shop, cart.ID, monday, 1200)
		assert.Equal(t, failure.ReasonOutOfHours, reasonOf(t, err))
	})

	t.Run("already taken", func(t *testing.T) {
		f := setup(t)
		ctx := as("customer-1")

		cart, err := f.carts.Start(ctx, shop, dto.StartRequest{StaffID: stylist.ID})
		require.NoError(t, err)
		_, err = f.carts.AddService(ctx, shop, cart.ID, haircut.ID, 1)
		require.NoError(t, err)

		f.availability.EXPECT().ListSlotsForDate(gomock.Any(), shop, monday, 30, 0).Return([]int{540, 600}, nil)
		f.availability.EXPECT().ListOpenSlots(gomock.Any(), shop, stylist.ID, monday, 30, 0).Return([]int{540}, nil)

		_, err = f.carts.ChooseSlot(ctx, shop, cart.ID, monday, 600)
		assert.Equal(t, failure.ReasonSlotConflict, reasonOf(t, err))
		assert.Nil(t, f.store["shop-a/"+cart.ID].Slot)
	})

	t.Run("nothing to book", func(t *testing.T) {
		f := setup(t)
		ctx := as("customer-1")

		cart, err := f.carts.Start(ctx, shop, dto.StartRequest{StaffID: stylist.ID})
		require.NoError(t, err)

		_, err = f.carts.ChooseSlot(ctx, shop, cart.ID, monday, 600)
		assert.Equal(t, failure.ReasonInvalidInput, reasonOf(t, err))
	})

	t.Run("changing the services discards the slot", func(t *testing.T) {
		f := setup(t)
		ctx := as("customer-1")
		cart := f.ready(t, ctx)

		cart, err := f.carts.AdjustQuantity(ctx, shop, cart.ID, haircut.ID, 1)
		require.NoError(t, err)

		assert.Nil(t, cart.Slot)
		assert.Equal(t, model.StateBuilding, cart.State())
	})
}

func TestCart_Checkout(t *testing.T) {
	t.Run("commits and discards the cart", func(t *testing.T) {
		f := setup(t)
		ctx := as("customer-1")
		cart := f.ready(t, ctx)

		f.ledger.EXPECT().Commit(gomock.Any(), shop, gomock.Any()).
			DoAndReturn(func(_ context.Context, _ tenantModel.Tenant, draft reservationModel.Draft) (reservationModel.Reservation, error) {
				assert.Equal(t, stylist.ID, draft.StaffID)
				assert.Equal(t, "customer-1", draft.CustomerID)
				assert.Equal(t, 600, draft.StartTime)
				require.Len(t, draft.Items, 1)
				assert.Equal(t, haircut.Name, draft.Items[0].Name)

				return reservationModel.Reservation{ID: "res-1", TenantID: shop.ID, Status: reservationModel.StatusPending}, nil
			})

		res, err := f.carts.Checkout(ctx, shop, cart.ID)
		require.NoError(t, err)

		assert.Equal(t, "res-1", res.ID)
		assert.NotContains(t, f.store, "shop-a/"+cart.ID)
	})

	t.Run("slot lost at commit reopens the cart", func(t *testing.T) {
		f := setup(t)
		ctx := as("customer-1")
		cart := f.ready(t, ctx)

		f.ledger.EXPECT().Commit(gomock.Any(), shop, gomock.Any()).
			Return(reservationModel.Reservation{}, failure.SlotConflict("taken"))

		_, err := f.carts.Checkout(ctx, shop, cart.ID)
		assert.Equal(t, failure.ReasonSlotConflict, reasonOf(t, err))

		stored := f.store["shop-a/"+cart.ID]
		assert.Nil(t, stored.Slot)
		assert.Len(t, stored.Lines, 1)
		assert.Equal(t, model.StateBuilding, stored.State())
	})

	t.Run("not ready", func(t *testing.T) {
		f := setup(t)
		ctx := as("customer-1")

		cart, err := f.carts.Start(ctx, shop, dto.StartRequest{StaffID: stylist.ID})
		require.NoError(t, err)

		_, err = f.carts.Checkout(ctx, shop, cart.ID)
		assert.Equal(t, failure.ReasonInvalidInput, reasonOf(t, err))
	})
}

func TestCart_Abandon(t *testing.T) {
	f := setup(t)

	cart, err := f.carts.Start(as("customer-1"), shop, dto.StartRequest{})
	require.NoError(t, err)

	require.Error(t, f.carts.Abandon(as("customer-2"), shop, cart.ID))
	assert.Contains(t, f.store, "shop-a/"+cart.ID)

	require.NoError(t, f.carts.Abandon(as("customer-1"), shop, cart.ID))
	assert.NotContains(t, f.store, "shop-a/"+cart.ID)
}
