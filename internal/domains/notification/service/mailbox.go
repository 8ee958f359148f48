package service

import (
	"context"
	"sync"

	"beautyhub/infras/kafka"
	"beautyhub/infras/otel"
	"beautyhub/internal/domains/notification/model"
	"beautyhub/shared/constant"

	"github.com/rs/zerolog/log"
	kafkaGo "github.com/segmentio/kafka-go"
)

// Mailbox keeps the most recent delivered e-mails, newest first.
type Mailbox struct {
	mu     sync.RWMutex
	size   int
	emails []model.Email
}

func NewMailbox(size int) *Mailbox {
	if size <= 0 {
		size = model.MailboxSize
	}

	return &Mailbox{size: size, emails: make([]model.Email, 0, size)}
}

func (m *Mailbox) Record(email model.Email) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.emails = append([]model.Email{email}, m.emails...)
	if len(m.emails) > m.size {
		m.emails = m.emails[:m.size]
	}
}

func (m *Mailbox) Recent() []model.Email {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make([]model.Email, len(m.emails))
	copy(out, m.emails)

	return out
}

// Consumer delivers published notifications. Delivery is mocked: e-mails land
// in the mailbox and WhatsApp links are logged for the shop to open.
type Consumer struct {
	kafka   kafka.Client
	otel    otel.Otel
	mailbox *Mailbox
}

func NewConsumer(kafka kafka.Client, otel otel.Otel, mailbox *Mailbox) *Consumer {
	return &Consumer{kafka: kafka, otel: otel, mailbox: mailbox}
}

// Run blocks until ctx is done or the broker connection fails.
func (c *Consumer) Run(ctx context.Context, consumerGroup, topic string) error {
	log.Info().Str("topic", topic).Str("group", consumerGroup).Msg("notification consumer started")

	return c.kafka.Consume(ctx, consumerGroup, topic, c.Handle) //nolint:wrapcheck
}

// Handle delivers one event. Undecodable records are logged and dropped.
func (c *Consumer) Handle(ctx context.Context, message kafkaGo.Message) error {
	_, scope := c.otel.NewScope(ctx, constant.OtelEventScopeName, constant.OtelEventScopeName+".notification.Deliver")
	defer scope.End()

	scope.SetAttribute(constant.OtelEventKindAttributeKey, kafka.Header(message, model.HeaderKind))

	_, event, err := kafka.Decode[model.Event](message)
	if err != nil {
		scope.TraceError(err)
		log.Warn().Err(err).Int64("offset", message.Offset).Msg("dropping undecodable notification")

		return nil
	}

	scope.SetAttribute(constant.OtelTenantAttributeKey, event.TenantID)

	if event.Email != nil {
		c.mailbox.Record(*event.Email)

		log.Info().
			Str("to", event.Email.To).
			Str("subject", event.Email.Subject).
			Str("reservation", event.ReservationID).
			Msg("[MOCK] email sent")
	}

	if event.WhatsApp != nil {
		log.Info().
			Str("phone", event.WhatsApp.Phone).
			Str("link", event.WhatsApp.Link).
			Str("reservation", event.ReservationID).
			Msg("[MOCK] whatsapp message ready")
	}

	return nil
}
