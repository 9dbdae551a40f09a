package logger

import (
	"github.com/google/uuid"
	"go.uber.org/zap"
)

func AccountID(id uuid.UUID) zap.Field { return zap.String("account_id", id.String()) }

func ProfileID(id uuid.UUID) zap.Field { return zap.String("profile_id", id.String()) }

func LinkID(id uuid.UUID) zap.Field { return zap.String("link_id", id.String()) }

// CardID logs "none" for the account's own profile.
func CardID(id *uuid.UUID) zap.Field {
	if id == nil {
		return zap.String("card_id", "none")
	}
	return zap.String("card_id", id.String())
}
