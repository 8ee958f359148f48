package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"beautyhub/config"
	"beautyhub/infras/kafka"
	"beautyhub/infras/otel"
	"beautyhub/internal/domains/notification/model"
	"beautyhub/internal/domains/notification/service"
	"beautyhub/shared/logger"

	"github.com/rs/zerolog/log"
)

// The notifier drains the reservation topic and performs the (mocked)
// e-mail and WhatsApp delivery.
func main() {
	cfg := config.Get()

	logger.InitLogger()

	logger.Configure(cfg)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	client := kafka.New(cfg)
	defer client.Close()

	consumer := service.NewConsumer(client, otel.New(cfg), service.NewMailbox(model.MailboxSize))
	if err := consumer.Run(ctx, cfg.Kafka.ConsumerGroup, service.Topic(cfg)); err != nil {
		log.Error().Err(err).Msg("Notifier consumer failed")
	}

	log.Info().Msg("Notifier stopped.")
}
