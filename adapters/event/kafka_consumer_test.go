package event

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/khoahotran/cardlink/internal/domain/account"
	"github.com/khoahotran/cardlink/pkg/logger"
)

type fakeReader struct {
	mu        sync.Mutex
	queue     []kafka.Message
	committed []int64
}

func (r *fakeReader) FetchMessage(ctx context.Context) (kafka.Message, error) {
	r.mu.Lock()
	if len(r.queue) > 0 {
		msg := r.queue[0]
		r.queue = r.queue[1:]
		r.mu.Unlock()
		return msg, nil
	}
	r.mu.Unlock()
	<-ctx.Done()
	return kafka.Message{}, ctx.Err()
}

func (r *fakeReader) CommitMessages(ctx context.Context, msgs ...kafka.Message) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, m := range msgs {
		r.committed = append(r.committed, m.Offset)
	}
	return nil
}

func (r *fakeReader) Close() error { return nil }

func (r *fakeReader) commits() []int64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]int64(nil), r.committed...)
}

func message(t *testing.T, offset int64, ev account.Event) kafka.Message {
	msg, err := EncodeAccountEvent(ev)
	require.NoError(t, err)
	msg.Offset = offset
	return msg
}

func runConsumer(ctx context.Context, r *fakeReader, handle Handler) <-chan error {
	c := newAccountEventConsumer(r, logger.NewNop(), time.Millisecond, 5*time.Millisecond)
	done := make(chan error, 1)
	go func() { done <- c.Run(ctx, handle) }()
	return done
}

func TestConsumer_RetriesFailedMessageBeforeMovingOn(t *testing.T) {
	first := account.NewEvent(account.EventPhotoRemoved, uuid.New())
	second := account.NewEvent(account.EventPhotoRemoved, uuid.New())
	r := &fakeReader{queue: []kafka.Message{message(t, 7, first), message(t, 8, second)}}

	var mu sync.Mutex
	var seen []uuid.UUID
	failures := 2
	handle := func(ctx context.Context, ev account.Event) error {
		mu.Lock()
		defer mu.Unlock()
		seen = append(seen, ev.AccountID)
		if ev.AccountID == first.AccountID && failures > 0 {
			failures--
			return errors.New("cloudinary unavailable")
		}
		return nil
	}

	ctx, cancel := context.WithCancel(context.Background())
	done := runConsumer(ctx, r, handle)

	require.Eventually(t, func() bool { return len(r.commits()) == 2 }, 2*time.Second, 5*time.Millisecond)
	cancel()
	require.NoError(t, <-done)

	assert.Equal(t, []int64{7, 8}, r.commits())
	mu.Lock()
	defer mu.Unlock()
	assert.Equal(t, []uuid.UUID{first.AccountID, first.AccountID, first.AccountID, second.AccountID}, seen)
}

func TestConsumer_LeavesFailingMessageUncommittedOnShutdown(t *testing.T) {
	failing := account.NewEvent(account.EventPhotoRemoved, uuid.New())
	next := account.NewEvent(account.EventPhotoRemoved, uuid.New())
	r := &fakeReader{queue: []kafka.Message{message(t, 3, failing), message(t, 4, next)}}

	attempts := make(chan struct{}, 100)
	var nextHandled bool
	var mu sync.Mutex
	handle := func(ctx context.Context, ev account.Event) error {
		if ev.AccountID == next.AccountID {
			mu.Lock()
			nextHandled = true
			mu.Unlock()
			return nil
		}
		attempts <- struct{}{}
		return errors.New("still failing")
	}

	ctx, cancel := context.WithCancel(context.Background())
	done := runConsumer(ctx, r, handle)

	for i := 0; i < 3; i++ {
		select {
		case <-attempts:
		case <-time.After(2 * time.Second):
			t.Fatal("handler was not retried")
		}
	}
	cancel()
	require.NoError(t, <-done)

	assert.Empty(t, r.commits())
	mu.Lock()
	defer mu.Unlock()
	assert.False(t, nextHandled)
}

func TestConsumer_SkipsMalformedMessage(t *testing.T) {
	good := account.NewEvent(account.EventProfileUpdated, uuid.New())
	r := &fakeReader{queue: []kafka.Message{{Offset: 1, Value: []byte("{")}, message(t, 2, good)}}

	ctx, cancel := context.WithCancel(context.Background())
	done := runConsumer(ctx, r, func(ctx context.Context, ev account.Event) error { return nil })

	require.Eventually(t, func() bool { return len(r.commits()) == 2 }, 2*time.Second, 5*time.Millisecond)
	cancel()
	require.NoError(t, <-done)
	assert.Equal(t, []int64{1, 2}, r.commits())
}
