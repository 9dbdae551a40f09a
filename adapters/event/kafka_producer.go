package event

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"

	"github.com/khoahotran/cardlink/internal/application/service"
	"github.com/khoahotran/cardlink/internal/config"
	"github.com/khoahotran/cardlink/internal/domain/account"
	"github.com/khoahotran/cardlink/pkg/logger"
)

const (
	TopicAccountEvents = "account.events"
)

type KafkaProducerClient struct {
	AccountEventsWriter *kafka.Writer
	logger              logger.Logger
}

var _ service.EventPublisher = (*KafkaProducerClient)(nil)

func NewKafkaProducerClient(cfg config.Config, log logger.Logger) (*KafkaProducerClient, error) {
	brokers := cfg.Kafka.Brokers
	if len(brokers) == 0 {
		return nil, fmt.Errorf("config Kafka brokers not found")
	}

	// Keyed by account id, so one account's events stay ordered on a partition.
	writer := &kafka.Writer{
		Addr:         kafka.TCP(brokers...),
		Topic:        TopicAccountEvents,
		Balancer:     &kafka.Hash{},
		RequiredAcks: kafka.RequireOne,
		BatchTimeout: 50 * time.Millisecond,
	}

	log.Info("Initialize Kafka producer successfully.", zap.Strings("brokers", brokers), zap.String("topic", TopicAccountEvents))

	return &KafkaProducerClient{AccountEventsWriter: writer, logger: log}, nil
}

func (c *KafkaProducerClient) Publish(ctx context.Context, events ...account.Event) error {
	msgs := make([]kafka.Message, 0, len(events))
	for _, ev := range events {
		msg, err := EncodeAccountEvent(ev)
		if err != nil {
			return err
		}
		msgs = append(msgs, msg)
	}
	if err := c.AccountEventsWriter.WriteMessages(ctx, msgs...); err != nil {
		return fmt.Errorf("failed to write %d account events: %w", len(msgs), err)
	}
	return nil
}

func (c *KafkaProducerClient) Close() {
	if c.AccountEventsWriter != nil {
		if err := c.AccountEventsWriter.Close(); err != nil {
			c.logger.Error("Failed to close Kafka producer", err)
			return
		}
	}
	c.logger.Info("Closed Kafka producer")
}

func EncodeAccountEvent(ev account.Event) (kafka.Message, error) {
	value, err := json.Marshal(ev)
	if err != nil {
		return kafka.Message{}, fmt.Errorf("failed to encode %s event: %w", ev.Type, err)
	}
	return kafka.Message{
		Key:   []byte(ev.AccountID.String()),
		Value: value,
		Time:  ev.OccurredAt,
		Headers: []kafka.Header{
			{Key: "event_type", Value: []byte(ev.Type)},
		},
	}, nil
}

func DecodeAccountEvent(msg kafka.Message) (account.Event, error) {
	var ev account.Event
	if err := json.Unmarshal(msg.Value, &ev); err != nil {
		return ev, fmt.Errorf("failed to decode account event: %w", err)
	}
	if ev.Type == "" {
		return ev, fmt.Errorf("account event without event_type")
	}
	return ev, nil
}
