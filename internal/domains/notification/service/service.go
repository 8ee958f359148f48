package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks

import (
	"context"

	"beautyhub/config"
	"beautyhub/infras/kafka"
	"beautyhub/infras/metrics"
	"beautyhub/infras/otel"
	"beautyhub/internal/domains/notification/model"
	reservationModel "beautyhub/internal/domains/reservation/model"
	tenantModel "beautyhub/internal/domains/tenant/model"
	"beautyhub/shared/constant"
	"beautyhub/shared/timezone"

	"github.com/rs/zerolog/log"
)

const defaultTopic = "beautyhub.reservations"

// Notifier tells customers about their reservations. Delivery is best effort:
// failures are logged and counted, never returned.
type Notifier interface {
	ReservationCommitted(ctx context.Context, tenant tenantModel.Tenant, reservation reservationModel.Reservation)
	StatusChanged(ctx context.Context, tenant tenantModel.Tenant, reservation reservationModel.Reservation)
	Rescheduled(ctx context.Context, tenant tenantModel.Tenant, reservation reservationModel.Reservation)
}

type serviceImpl struct {
	kafka   kafka.Client
	cfg     *config.Config
	otel    otel.Otel
	metrics *metrics.Metrics
}

func New(kafka kafka.Client, cfg *config.Config, otel otel.Otel, metrics *metrics.Metrics) Notifier {
	return &serviceImpl{
		kafka:   kafka,
		cfg:     cfg,
		otel:    otel,
		metrics: metrics,
	}
}

func (s *serviceImpl) ReservationCommitted(ctx context.Context, tenant tenantModel.Tenant, reservation reservationModel.Reservation) {
	s.publish(ctx, model.NewConfirmation(tenant, reservation, timezone.Now()))
}

func (s *serviceImpl) StatusChanged(ctx context.Context, tenant tenantModel.Tenant, reservation reservationModel.Reservation) {
	s.publish(ctx, model.NewStatusChange(tenant, reservation, timezone.Now()))
}

func (s *serviceImpl) Rescheduled(ctx context.Context, tenant tenantModel.Tenant, reservation reservationModel.Reservation) {
	s.publish(ctx, model.NewReschedule(tenant, reservation, timezone.Now()))
}

// Topic is where reservation notifications are published.
func Topic(cfg *config.Config) string {
	if cfg.Kafka.ReservationTopic == constant.Empty {
		return defaultTopic
	}

	return cfg.Kafka.ReservationTopic
}

func (s *serviceImpl) publish(ctx context.Context, event model.Event) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelEventScopeName, constant.OtelEventScopeName+".notification."+event.Kind)
	defer scope.End()

	if event.Email == nil && event.WhatsApp == nil {
		log.Debug().Str("reservation", event.ReservationID).Msg("reservation has no contact details, skipping notification")

		return
	}

	scope.SetAttribute(constant.OtelTenantAttributeKey, event.TenantID)

	err := s.kafka.Publish(ctx, Topic(s.cfg), kafka.Message{
		Key:     event.TenantID,
		Value:   event,
		Headers: map[string]string{model.HeaderKind: event.Kind},
	})
	if err != nil {
		scope.TraceError(err)
		s.metrics.NotificationsFailed.WithLabelValues(event.Kind).Inc()
		log.Error().Err(err).Str("kind", event.Kind).Str("reservation", event.ReservationID).Msg("failed to publish notification")

		return
	}

	log.Info().Str("kind", event.Kind).Str("reservation", event.ReservationID).Msg("notification published")
}
