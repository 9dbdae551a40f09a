package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/khoahotran/cardlink/internal/domain/account"
)

// ProfileCache holds public profile reads. Get returns nil, nil on a miss.
type ProfileCache interface {
	Get(ctx context.Context, key string) (*account.Profile, error)
	Set(ctx context.Context, key string, p *account.Profile) error
	Delete(ctx context.Context, keys ...string) error
}

func ProfileCacheKey(profileID uuid.UUID) string {
	return fmt.Sprintf("profile:%s", profileID)
}

func CardProfileCacheKey(cardID uuid.UUID) string {
	return fmt.Sprintf("profile:card:%s", cardID)
}

// ProfileCacheKeys lists every key a read of this account may have filled.
func ProfileCacheKeys(a *account.Account) []string {
	keys := make([]string, 0, len(a.Cards)*2+1)
	for _, p := range a.Profiles() {
		keys = append(keys, ProfileCacheKey(p.ID))
	}
	for _, id := range a.CardIDs() {
		keys = append(keys, CardProfileCacheKey(id))
	}
	return keys
}
