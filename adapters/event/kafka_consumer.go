package event

import (
	"context"
	"errors"
	"time"

	"github.com/jpillora/backoff"
	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"

	"github.com/khoahotran/cardlink/internal/config"
	"github.com/khoahotran/cardlink/internal/domain/account"
	"github.com/khoahotran/cardlink/pkg/logger"
)

// Handler processes one decoded event. A failing message is retried in place
// until it succeeds; later messages wait behind it.
type Handler func(ctx context.Context, ev account.Event) error

type messageReader interface {
	FetchMessage(ctx context.Context) (kafka.Message, error)
	CommitMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

type AccountEventConsumer struct {
	reader messageReader
	logger logger.Logger

	retryMin time.Duration
	retryMax time.Duration
}

func NewAccountEventConsumer(cfg config.Config, log logger.Logger) *AccountEventConsumer {
	reader := kafka.NewReader(kafka.ReaderConfig{
		Brokers:  cfg.Kafka.Brokers,
		Topic:    TopicAccountEvents,
		GroupID:  cfg.Kafka.GroupID,
		MinBytes: 10e3,
		MaxBytes: 10e6,
	})
	log = log.With(zap.String("topic", TopicAccountEvents), zap.String("group_id", cfg.Kafka.GroupID))
	return newAccountEventConsumer(reader, log, 500*time.Millisecond, time.Minute)
}

func newAccountEventConsumer(r messageReader, log logger.Logger, retryMin, retryMax time.Duration) *AccountEventConsumer {
	return &AccountEventConsumer{reader: r, logger: log, retryMin: retryMin, retryMax: retryMax}
}

// Run blocks until ctx is cancelled. Offsets are committed strictly in order:
// a message is committed only after its handler returned nil.
func (c *AccountEventConsumer) Run(ctx context.Context, handle Handler) error {
	c.logger.Info("Worker listening")
	for {
		msg, err := c.reader.FetchMessage(ctx)
		if err != nil {
			if errors.Is(err, context.Canceled) || ctx.Err() != nil {
				return nil
			}
			c.logger.Error("Failed to read message from Kafka", err)
			continue
		}

		l := c.logger.With(zap.String("key", string(msg.Key)), zap.Int64("offset", msg.Offset))

		ev, err := DecodeAccountEvent(msg)
		if err != nil {
			l.Error("Malformed event, skipping", err)
			c.commit(ctx, l, msg)
			continue
		}

		if !c.handleWithRetry(ctx, l, handle, ev) {
			// Left uncommitted; the group resumes here after a restart.
			return nil
		}
		c.commit(ctx, l, msg)
	}
}

// handleWithRetry reports false when ctx ended before the handler succeeded.
func (c *AccountEventConsumer) handleWithRetry(ctx context.Context, l logger.Logger, handle Handler, ev account.Event) bool {
	b := &backoff.Backoff{Min: c.retryMin, Max: c.retryMax, Factor: 2, Jitter: true}
	for {
		err := handle(ctx, ev)
		if err == nil {
			return true
		}
		wait := b.Duration()
		l.Error("Failed to process event, retrying", err,
			zap.String("event_type", string(ev.Type)),
			zap.Float64("attempt", b.Attempt()),
			zap.Duration("retry_in", wait),
		)

		timer := time.NewTimer(wait)
		select {
		case <-ctx.Done():
			timer.Stop()
			return false
		case <-timer.C:
		}
	}
}

func (c *AccountEventConsumer) commit(ctx context.Context, l logger.Logger, msg kafka.Message) {
	if err := c.reader.CommitMessages(ctx, msg); err != nil {
		l.Error("Failed to commit message", err)
	}
}

func (c *AccountEventConsumer) Close() error {
	return c.reader.Close()
}
