package model

import (
	"time"
)

const (
	KindConfirmation  = "confirmation"
	KindStatusChanged = "status_changed"
	KindRescheduled   = "rescheduled"

	// HeaderKind carries the event kind so consumers can route without decoding.
	HeaderKind = "kind"

	// MailboxSize bounds how many delivered e-mails the notifier remembers.
	MailboxSize = 50

	defaultShopName     = "Nuestro negocio"
	defaultCustomerName = "Cliente"
	defaultServiceName  = "Servicio"
)

// Email is a rendered, mocked e-mail.
type Email struct {
	ID       string    `json:"id"`
	To       string    `json:"to"`
	Subject  string    `json:"subject"`
	Body     string    `json:"body"`
	Kind     string    `json:"kind"`
	TenantID string    `json:"tenant_id"`
	SentAt   time.Time `json:"sent_at"`
	Status   string    `json:"status"`
}

// WhatsApp is a message the shop can send by opening Link.
type WhatsApp struct {
	Phone string `json:"phone"`
	Text  string `json:"text"`
	Link  string `json:"link"`
}

// Event is the envelope published for every reservation notification.
// Email is nil when the customer left no address, WhatsApp when no phone.
type Event struct {
	ID            string    `json:"id"`
	Kind          string    `json:"kind"`
	TenantID      string    `json:"tenant_id"`
	ReservationID string    `json:"reservation_id"`
	Status        string    `json:"status"`
	Email         *Email    `json:"email,omitempty"`
	WhatsApp      *WhatsApp `json:"whatsapp,omitempty"`
	OccurredAt    time.Time `json:"occurred_at"`
}

// Summary is what the message templates print about a reservation.
type Summary struct {
	ShopName     string
	CustomerName string
	Date         string
	Time         string
	Services     []string
	Total        string
}

func (s Summary) shop() string {
	if s.ShopName == "" {
		return defaultShopName
	}

	return s.ShopName
}

func (s Summary) customer() string {
	if s.CustomerName == "" {
		return defaultCustomerName
	}

	return s.CustomerName
}
