package kafka

//go:generate go run go.uber.org/mock/mockgen -source=./kafka.go -destination=./mocks/kafka_mock.go -package=mocks

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"maps"
	"slices"
	"time"

	"beautyhub/config"

	"github.com/cenkalti/backoff/v5"
	"github.com/rs/zerolog/log"
	kafkaGo "github.com/segmentio/kafka-go"
	"github.com/segmentio/kafka-go/sasl"
	"github.com/segmentio/kafka-go/sasl/plain"
)

const (
	writeTimeout   = 10 * time.Second
	handleAttempts = 3
)

// Message is a JSON encoded record. Records sharing a Key land on the same
// partition and are consumed in order.
type Message struct {
	Key     string
	Value   any
	Headers map[string]string
}

func (m Message) Encode(topic string) (kafkaGo.Message, error) {
	value, err := json.Marshal(m.Value)
	if err != nil {
		return kafkaGo.Message{}, fmt.Errorf("failed to encode message %q: %w", m.Key, err)
	}

	headers := make([]kafkaGo.Header, 0, len(m.Headers))
	for _, name := range slices.Sorted(maps.Keys(m.Headers)) {
		headers = append(headers, kafkaGo.Header{Key: name, Value: []byte(m.Headers[name])})
	}

	return kafkaGo.Message{Topic: topic, Key: []byte(m.Key), Value: value, Headers: headers}, nil
}

// Decode unmarshals the JSON payload of msg into T and returns it with the key.
func Decode[T any](msg kafkaGo.Message) (string, T, error) {
	var value T

	if err := json.Unmarshal(msg.Value, &value); err != nil {
		return string(msg.Key), value, fmt.Errorf("failed to decode message %q: %w", msg.Key, err)
	}

	return string(msg.Key), value, nil
}

// Header returns the value of the named header, or "" when absent.
func Header(msg kafkaGo.Message, name string) string {
	for _, header := range msg.Headers {
		if header.Key == name {
			return string(header.Value)
		}
	}

	return ""
}

// Handler processes one record. A returned error is retried a few times before
// the record is committed anyway so one bad record cannot stall a partition.
type Handler func(ctx context.Context, message kafkaGo.Message) error

type Client interface {
	Publish(ctx context.Context, topic string, messages ...Message) error
	Consume(ctx context.Context, consumerGroup, topic string, handler Handler) error
	Close() error
}

type clientImpl struct {
	config *config.Config
	dialer *kafkaGo.Dialer
	writer *kafkaGo.Writer
}

func New(cfg *config.Config) Client {
	var mechanism sasl.Mechanism
	if cfg.Kafka.SASL.Username != "" {
		mechanism = plain.Mechanism{
			Username: cfg.Kafka.SASL.Username,
			Password: cfg.Kafka.SASL.Password,
		}
	}

	writer := &kafkaGo.Writer{
		Addr:                   kafkaGo.TCP(cfg.Kafka.Brokers...),
		Transport:              &kafkaGo.Transport{SASL: mechanism},
		Balancer:               &kafkaGo.Hash{},
		RequiredAcks:           kafkaGo.RequireOne,
		AllowAutoTopicCreation: true,
		WriteTimeout:           writeTimeout,
	}

	log.Info().Strs("brokers", cfg.Kafka.Brokers).Bool("sasl", mechanism != nil).Msg("Kafka client initialized")

	return &clientImpl{
		config: cfg,
		dialer: &kafkaGo.Dialer{DualStack: true, SASLMechanism: mechanism, Timeout: writeTimeout},
		writer: writer,
	}
}

func (k *clientImpl) Publish(ctx context.Context, topic string, messages ...Message) error {
	if topic == "" {
		return errors.New("kafka: topic is required")
	}

	records := make([]kafkaGo.Message, 0, len(messages))

	for _, message := range messages {
		record, err := message.Encode(topic)
		if err != nil {
			return err
		}

		records = append(records, record)
	}

	if err := k.writer.WriteMessages(ctx, records...); err != nil {
		return fmt.Errorf("failed to publish to %s: %w", topic, err)
	}

	log.Debug().Str("topic", topic).Int("count", len(records)).Msg("published messages")

	return nil
}

// Consume blocks, handling records one at a time, until ctx is done. Offsets
// are committed only after the handler has run.
func (k *clientImpl) Consume(ctx context.Context, consumerGroup, topic string, handler Handler) error {
	if topic == "" {
		return errors.New("kafka: topic is required")
	}

	groupID := consumerGroup
	if groupID == "" {
		groupID = k.config.Kafka.ConsumerGroup
	}

	reader := kafkaGo.NewReader(kafkaGo.ReaderConfig{
		Brokers:     k.config.Kafka.Brokers,
		Topic:       topic,
		GroupID:     groupID,
		Dialer:      k.dialer,
		StartOffset: kafkaGo.FirstOffset,
	})

	defer func() {
		if err := reader.Close(); err != nil {
			log.Error().Err(err).Str("topic", topic).Msg("failed to close Kafka reader")
		}
	}()

	for {
		msg, err := reader.FetchMessage(ctx)
		if ctx.Err() != nil {
			return nil
		}

		if err != nil {
			return fmt.Errorf("failed to fetch from %s: %w", topic, err)
		}

		handle(ctx, handler, msg)

		if err := reader.CommitMessages(ctx, msg); err != nil && ctx.Err() == nil {
			log.Error().Err(err).Str("topic", topic).Int64("offset", msg.Offset).Msg("failed to commit offset")
		}
	}
}

func handle(ctx context.Context, handler Handler, msg kafkaGo.Message) {
	_, err := backoff.Retry(ctx, func() (struct{}, error) {
		return struct{}{}, handler(ctx, msg)
	}, backoff.WithBackOff(backoff.NewExponentialBackOff()), backoff.WithMaxTries(handleAttempts))
	if err != nil {
		log.Error().Err(err).
			Str("topic", msg.Topic).
			Int("partition", msg.Partition).
			Int64("offset", msg.Offset).
			Msg("giving up on message")
	}
}

func (k *clientImpl) Close() error {
	return k.writer.Close() //nolint:wrapcheck
}
