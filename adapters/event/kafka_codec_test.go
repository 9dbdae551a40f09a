package event

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/khoahotran/cardlink/internal/domain/account"
)

func TestEncodeAccountEvent(t *testing.T) {
	photoID := uuid.New()
	ev := account.NewEvent(account.EventPhotoRemoved, uuid.New())
	ev.ResourceID = &photoID
	ev.PublicID = "accounts/a/profiles/p/photo"

	msg, err := EncodeAccountEvent(ev)
	require.NoError(t, err)
	assert.Equal(t, ev.AccountID.String(), string(msg.Key))
	assert.Equal(t, "photo.removed", string(msg.Headers[0].Value))
	assert.Contains(t, string(msg.Value), `"public_id":"accounts/a/profiles/p/photo"`)

	decoded, err := DecodeAccountEvent(msg)
	require.NoError(t, err)
	assert.Equal(t, ev.Type, decoded.Type)
	assert.Equal(t, photoID, *decoded.ResourceID)
	assert.WithinDuration(t, ev.OccurredAt, decoded.OccurredAt, time.Millisecond)
}

func TestDecodeAccountEvent_Rejects(t *testing.T) {
	_, err := DecodeAccountEvent(kafka.Message{Value: []byte("{")})
	assert.Error(t, err)

	_, err = DecodeAccountEvent(kafka.Message{Value: []byte(`{"account_id":"` + uuid.NewString() + `"}`)})
	assert.Error(t, err)
}
