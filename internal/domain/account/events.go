package account

import (
	"time"

	"github.com/google/uuid"
)

type EventType string

const (
	EventLinkCreated           EventType = "profile_link.created"
	EventLinkUpdated           EventType = "profile_link.updated"
	EventLinkDeleted           EventType = "profile_link.deleted"
	EventProfileCreated        EventType = "profile.created"
	EventProfileUpdated        EventType = "profile.updated"
	EventProfileDeleted        EventType = "profile.deleted"
	EventVCardChanged          EventType = "v_card.changed"
	EventPhotoUploaded         EventType = "photo.uploaded"
	EventPhotoRemoved          EventType = "photo.removed"
	EventCustomLinkTypeChanged EventType = "custom_link_type.changed"
	EventCardUpdated           EventType = "card.updated"
	EventAccountUpdated        EventType = "account.updated"
)

// Event is published after an account save has committed.
type Event struct {
	Type       EventType  `json:"event_type"`
	AccountID  uuid.UUID  `json:"account_id"`
	CardID     *uuid.UUID `json:"card_id,omitempty"`
	ProfileID  *uuid.UUID `json:"profile_id,omitempty"`
	ResourceID *uuid.UUID `json:"resource_id,omitempty"`
	PublicID   string     `json:"public_id,omitempty"`
	OccurredAt time.Time  `json:"occurred_at"`
}

func NewEvent(t EventType, accountID uuid.UUID) Event {
	return Event{Type: t, AccountID: accountID, OccurredAt: time.Now().UTC()}
}
