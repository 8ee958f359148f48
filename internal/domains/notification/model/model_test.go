package model_test

import (
	"strings"
	"testing"
	"time"

	"beautyhub/internal/domains/notification/model"
	reservationModel "beautyhub/internal/domains/reservation/model"
	tenantModel "beautyhub/internal/domains/tenant/model"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatPhone(t *testing.T) {
	tests := []struct {
		name  string
		phone string
		want  string
	}{
		{name: "dominican number gets country code", phone: "809-555-1234", want: "18095551234"},
		{name: "829 prefix", phone: "(829) 555 1234", want: "18295551234"},
		{name: "849 prefix", phone: "8495551234", want: "18495551234"},
		{name: "already international", phone: "+1 809 555 1234", want: "18095551234"},
		{name: "other country untouched", phone: "+34 612 345 678", want: "34612345678"},
		{name: "short number untouched", phone: "809555", want: "809555"},
		{name: "empty", phone: "", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, model.FormatPhone(tt.phone))
		})
	}
}

func TestLink(t *testing.T) {
	assert.Equal(t, "https://wa.me/18095551234", model.Link("809-555-1234", ""))
	assert.Equal(t, "https://wa.me/18095551234?text=Hola%20mundo%20%26%20m%C3%A1s", model.Link("809-555-1234", "Hola mundo & más"))
}

func TestFormatAmount(t *testing.T) {
	tests := map[string]string{
		"0":       "0",
		"950":     "950",
		"1500":    "1,500",
		"1234567": "1,234,567",
		"99.5":    "99.5",
		"1500.25": "1,500.25",
		"10.005":  "10.01",
	}

	for in, want := range tests {
		assert.Equal(t, want, model.FormatAmount(decimal.RequireFromString(in)), in)
	}
}

func fixtures() (tenantModel.Tenant, reservationModel.Reservation) {
	tenant := tenantModel.Tenant{ID: "shop-a", Name: "Barbería Central"}
	reservation := reservationModel.Reservation{
		ID:            "r-1",
		TenantID:      "shop-a",
		CustomerName:  "Ana",
		CustomerEmail: "ana@example.com",
		CustomerPhone: "809-555-1234",
		Items: reservationModel.Items{
			{ServiceID: "s1", Name: "Corte", Price: decimal.NewFromInt(500), Duration: 30, Quantity: 1},
			{ServiceID: "s2", Name: "Barba", Price: decimal.NewFromInt(1000), Duration: 15, Quantity: 1},
		},
		Date:       time.Date(2025, time.June, 2, 0, 0, 0, 0, time.UTC),
		StartTime:  10*60 + 30,
		TotalPrice: decimal.NewFromInt(1500),
		Status:     reservationModel.StatusPending,
	}

	return tenant, reservation
}

func TestNewConfirmation(t *testing.T) {
	tenant, reservation := fixtures()
	at := time.Date(2025, time.May, 30, 12, 0, 0, 0, time.UTC)

	event := model.NewConfirmation(tenant, reservation, at)

	assert.Equal(t, model.KindConfirmation, event.Kind)
	assert.Equal(t, "shop-a", event.TenantID)
	assert.Equal(t, "r-1", event.ReservationID)
	assert.Equal(t, "pending", event.Status)

	require.NotNil(t, event.Email)
	assert.Equal(t, "ana@example.com", event.Email.To)
	assert.Equal(t, "✅ Cita Confirmada - Barbería Central", event.Email.Subject)
	assert.Contains(t, event.Email.Body, "Hola Ana")
	assert.Contains(t, event.Email.Body, "2025-06-02")
	assert.Contains(t, event.Email.Body, "10:30")
	assert.Contains(t, event.Email.Body, "Corte, Barba")
	assert.Contains(t, event.Email.Body, "RD$1,500")

	require.NotNil(t, event.WhatsApp)
	assert.Equal(t, "18095551234", event.WhatsApp.Phone)
	assert.True(t, strings.HasPrefix(event.WhatsApp.Link, "https://wa.me/18095551234?text="))
	assert.Contains(t, event.WhatsApp.Text, "*Barbería Central*")
}

func TestNewConfirmation_NoContact(t *testing.T) {
	tenant, reservation := fixtures()
	reservation.CustomerEmail = ""
	reservation.CustomerPhone = ""

	event := model.NewConfirmation(tenant, reservation, time.Now())

	assert.Nil(t, event.Email)
	assert.Nil(t, event.WhatsApp)
}

func TestNewStatusChange(t *testing.T) {
	tenant, reservation := fixtures()
	reservation.Status = reservationModel.StatusCancelled

	event := model.NewStatusChange(tenant, reservation, time.Now())

	assert.Equal(t, model.KindStatusChanged, event.Kind)
	assert.Equal(t, "cancelled", event.Status)
	require.NotNil(t, event.Email)
	assert.Equal(t, "❌ Cita Cancelada - Barbería Central", event.Email.Subject)
	assert.Contains(t, event.WhatsApp.Text, "ha sido cancelada")
}

func TestSummaryDefaults(t *testing.T) {
	text := model.ConfirmationText(model.Summary{Date: "2025-06-02", Time: "09:00", Total: "0"})

	assert.Contains(t, text, "*Nuestro negocio*")
	assert.Contains(t, text, "Servicio(s): Servicio")
}

func TestNewReschedule(t *testing.T) {
	tenant, reservation := fixtures()
	reservation.StartTime = 16 * 60

	event := model.NewReschedule(tenant, reservation, time.Now())

	assert.Equal(t, model.KindRescheduled, event.Kind)
	assert.Contains(t, event.Email.Body, "16:00")
	assert.Contains(t, event.WhatsApp.Text, "reprogramada")
}
