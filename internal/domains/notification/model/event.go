package model

import (
	"time"

	reservationModel "beautyhub/internal/domains/reservation/model"
	tenantModel "beautyhub/internal/domains/tenant/model"
	"beautyhub/shared/clock"

	"github.com/google/uuid"
)

const emailStatusSent = "sent"

func Summarize(tenant tenantModel.Tenant, reservation reservationModel.Reservation) Summary {
	services := make([]string, 0, len(reservation.Items))
	for _, item := range reservation.Items {
		services = append(services, item.Name)
	}

	return Summary{
		ShopName:     tenant.Name,
		CustomerName: reservation.CustomerName,
		Date:         clock.FormatDate(reservation.Date),
		Time:         clock.Format(reservation.StartTime),
		Services:     services,
		Total:        FormatAmount(reservation.TotalPrice),
	}
}

// NewConfirmation renders the messages sent once a reservation is committed.
func NewConfirmation(tenant tenantModel.Tenant, reservation reservationModel.Reservation, at time.Time) Event {
	summary := Summarize(tenant, reservation)
	subject, body := ConfirmationEmail(summary)

	return newEvent(KindConfirmation, tenant, reservation, at, subject, body, ConfirmationText(summary))
}

// NewStatusChange renders the messages for a reservation entering reservation.Status.
func NewStatusChange(tenant tenantModel.Tenant, reservation reservationModel.Reservation, at time.Time) Event {
	summary := Summarize(tenant, reservation)
	status := string(reservation.Status)
	subject, body := StatusEmail(summary, status)

	return newEvent(KindStatusChanged, tenant, reservation, at, subject, body, StatusText(summary, status))
}

// NewReschedule renders the messages for a reservation moved to a new slot.
func NewReschedule(tenant tenantModel.Tenant, reservation reservationModel.Reservation, at time.Time) Event {
	summary := Summarize(tenant, reservation)
	subject, body := RescheduleEmail(summary)

	return newEvent(KindRescheduled, tenant, reservation, at, subject, body, RescheduleText(summary))
}

func newEvent(kind string, tenant tenantModel.Tenant, reservation reservationModel.Reservation, at time.Time, subject, body, text string) Event {
	event := Event{
		ID:            uuid.NewString(),
		Kind:          kind,
		TenantID:      tenant.ID,
		ReservationID: reservation.ID,
		Status:        string(reservation.Status),
		OccurredAt:    at,
	}

	if reservation.CustomerEmail != "" {
		event.Email = &Email{
			ID:       event.ID,
			To:       reservation.CustomerEmail,
			Subject:  subject,
			Body:     body,
			Kind:     kind,
			TenantID: tenant.ID,
			SentAt:   at,
			Status:   emailStatusSent,
		}
	}

	if reservation.CustomerPhone != "" {
		event.WhatsApp = &WhatsApp{
			Phone: FormatPhone(reservation.CustomerPhone),
			Text:  text,
			Link:  Link(reservation.CustomerPhone, text),
		}
	}

	return event
}
