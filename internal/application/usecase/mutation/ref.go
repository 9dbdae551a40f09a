package mutation

import (
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/khoahotran/cardlink/internal/domain/account"
	"github.com/khoahotran/cardlink/pkg/logger"
)

// ProfileRef is the ownership chain of one profile: the account's own
// profile when CardID is nil, otherwise the profile of that card.
type ProfileRef struct {
	AccountID uuid.UUID
	CardID    *uuid.UUID
	ProfileID uuid.UUID
}

func (r ProfileRef) Resolve(a *account.Account) (*account.Profile, error) {
	return a.ResolveProfile(r.CardID, r.ProfileID)
}

// Fields are the log fields below the account level, which Execute adds.
func (r ProfileRef) Fields(extra ...zap.Field) []zap.Field {
	return append([]zap.Field{logger.CardID(r.CardID), logger.ProfileID(r.ProfileID)}, extra...)
}

func (r ProfileRef) Event(t account.EventType, resourceID *uuid.UUID) account.Event {
	profileID := r.ProfileID
	ev := account.NewEvent(t, r.AccountID)
	ev.CardID = r.CardID
	ev.ProfileID = &profileID
	ev.ResourceID = resourceID
	return ev
}
