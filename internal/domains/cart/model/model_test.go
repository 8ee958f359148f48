package model_test

import (
	"math/rand/v2"
	"testing"
	"time"

	"beautyhub/internal/domains/cart/model"
	"beautyhub/shared/failure"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	monday  = time.Date(2025, time.June, 2, 0, 0, 0, 0, time.UTC)
	haircut = model.Line{ServiceID: "cut", Name: "Corte", Price: decimal.NewFromInt(500), Duration: 30, Quantity: 1}
	nails   = model.Line{ServiceID: "nails", Name: "Uñas", Price: decimal.RequireFromString("349.99"), Duration: 45, Quantity: 1}
)

func building(t *testing.T) *model.Cart {
	t.Helper()

	cart := &model.Cart{ID: "c-1", TenantID: "shop-a"}
	require.NoError(t, cart.SelectStaff("staff-1"))

	return cart
}

func TestCart_StateMachine(t *testing.T) {
	cart := &model.Cart{ID: "c-1"}
	assert.Equal(t, model.StateEmpty, cart.State())

	err := cart.Add(haircut)
	assert.True(t, failure.HasReason(err, failure.ReasonInvalidInput), "lines need a staff member first")

	require.NoError(t, cart.SelectStaff("staff-1"))
	assert.Equal(t, model.StateBuilding, cart.State())

	err = cart.ChooseSlot(monday, 600)
	assert.True(t, failure.HasReason(err, failure.ReasonInvalidInput), "a slot needs at least one line")

	require.NoError(t, cart.Add(haircut))
	assert.Equal(t, model.StateBuilding, cart.State())

	require.NoError(t, cart.ChooseSlot(monday.Add(15*time.Hour), 600))
	assert.Equal(t, model.StateReady, cart.State())
	assert.Equal(t, monday, cart.Slot.Date)

	cart.ClearSlot()
	assert.Equal(t, model.StateBuilding, cart.State())
}

func TestCart_DurationChangeDiscardsSlot(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*model.Cart) error
	}{
		{name: "add another service", mutate: func(c *model.Cart) error { return c.Add(nails) }},
		{name: "add more of the same", mutate: func(c *model.Cart) error { return c.Add(haircut) }},
		{name: "increment", mutate: func(c *model.Cart) error { return c.Adjust("cut", 1) }},
		{name: "set quantity", mutate: func(c *model.Cart) error { return c.SetQuantity("cut", 3) }},
		{name: "remove", mutate: func(c *model.Cart) error { return c.Remove("cut") }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cart := building(t)
			require.NoError(t, cart.Add(haircut))
			require.NoError(t, cart.Add(nails))
			require.NoError(t, cart.ChooseSlot(monday, 600))

			require.NoError(t, tt.mutate(cart))

			assert.Nil(t, cart.Slot)
			assert.Equal(t, model.StateBuilding, cart.State())
		})
	}
}

func TestCart_SameDurationKeepsSlot(t *testing.T) {
	cart := building(t)
	require.NoError(t, cart.Add(haircut))
	require.NoError(t, cart.ChooseSlot(monday, 600))

	require.NoError(t, cart.SetQuantity("cut", 1))

	assert.Equal(t, model.StateReady, cart.State())
}

func TestCart_SwitchingStaffDiscardsSlot(t *testing.T) {
	cart := building(t)
	require.NoError(t, cart.Add(haircut))
	require.NoError(t, cart.ChooseSlot(monday, 600))

	require.NoError(t, cart.SelectStaff("staff-1"))
	assert.Equal(t, model.StateReady, cart.State())

	require.NoError(t, cart.SelectStaff("staff-2"))
	assert.Equal(t, model.StateBuilding, cart.State())
}

func TestCart_QuantityFloor(t *testing.T) {
	cart := building(t)
	require.NoError(t, cart.Add(haircut))
	require.NoError(t, cart.Adjust("cut", 1))
	assert.Equal(t, 2, cart.Lines[0].Quantity)

	require.NoError(t, cart.Adjust("cut", -2))
	assert.Empty(t, cart.Lines)

	err := cart.Adjust("cut", 1)
	assert.True(t, failure.HasReason(err, failure.ReasonNotFound))

	require.NoError(t, cart.Add(haircut))
	err = cart.SetQuantity("cut", 0)
	assert.True(t, failure.HasReason(err, failure.ReasonInvalidInput))
	assert.Equal(t, 1, cart.Lines[0].Quantity)
}

func TestCart_Totals(t *testing.T) {
	cart := building(t)
	require.NoError(t, cart.Add(haircut))
	require.NoError(t, cart.Add(nails))
	require.NoError(t, cart.SetQuantity("nails", 2))

	assert.Equal(t, 120, cart.TotalDuration)
	assert.Equal(t, "1199.98", cart.TotalPrice.String())
}

// Any sequence of line operations keeps totals equal to the sum of the lines
// and never leaves a line at quantity zero or below.
func TestCart_TotalsInvariant(t *testing.T) {
	rng := rand.New(rand.NewPCG(7, 11))
	catalog := []model.Line{
		haircut,
		nails,
		{ServiceID: "dye", Name: "Tinte", Price: decimal.RequireFromString("1250.75"), Duration: 90, Quantity: 1},
	}

	for range 200 {
		cart := &model.Cart{ID: "c"}
		require.NoError(t, cart.SelectStaff("staff-1"))

		for range 30 {
			line := catalog[rng.IntN(len(catalog))]

			switch rng.IntN(4) {
			case 0:
				_ = cart.Add(line)
			case 1:
				_ = cart.Adjust(line.ServiceID, rng.IntN(5)-2)
			case 2:
				_ = cart.SetQuantity(line.ServiceID, rng.IntN(4))
			case 3:
				_ = cart.Remove(line.ServiceID)
			}

			price := decimal.Zero
			duration := 0

			for _, l := range cart.Lines {
				require.Positive(t, l.Quantity)

				price = price.Add(l.Price.Mul(decimal.NewFromInt(int64(l.Quantity))))
				duration += l.Duration * l.Quantity
			}

			require.True(t, price.Equal(cart.TotalPrice), "price %s != %s", price, cart.TotalPrice)
			require.Equal(t, duration, cart.TotalDuration)
		}
	}
}

func TestCart_Checkout(t *testing.T) {
	cart := building(t)
	cart.CustomerID = "customer-1"
	cart.CustomerName = "Ana"
	cart.Notes = "Sin secador"

	_, err := cart.Checkout()
	fail, ok := failure.Get(err)
	require.True(t, ok)
	assert.Equal(t, "items", fail.Field)

	require.NoError(t, cart.Add(haircut))

	_, err = cart.Checkout()
	fail, ok = failure.Get(err)
	require.True(t, ok)
	assert.Equal(t, "slot", fail.Field)

	require.NoError(t, cart.Add(nails))
	require.NoError(t, cart.ChooseSlot(monday, 14*60))

	draft, err := cart.Checkout()
	require.NoError(t, err)

	assert.Equal(t, "staff-1", draft.StaffID)
	assert.Equal(t, "customer-1", draft.CustomerID)
	assert.Equal(t, monday, draft.Date)
	assert.Equal(t, 14*60, draft.StartTime)
	assert.Equal(t, "Sin secador", draft.Notes)
	require.Len(t, draft.Items, 2)
	assert.Equal(t, "Uñas", draft.Items[1].Name)

	duration, price := draft.Items.Totals()
	assert.Equal(t, cart.TotalDuration, duration)
	assert.True(t, cart.TotalPrice.Equal(price))
}
