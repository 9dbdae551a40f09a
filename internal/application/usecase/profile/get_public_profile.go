package profile

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/khoahotran/cardlink/internal/application/service"
	"github.com/khoahotran/cardlink/internal/application/usecase/mutation"
	"github.com/khoahotran/cardlink/internal/domain/account"
	"github.com/khoahotran/cardlink/pkg/logger"
	"github.com/khoahotran/cardlink/pkg/metrics"
)

// GetPublicProfileUseCase serves unauthenticated profile reads through the cache.
type GetPublicProfileUseCase struct {
	repo   account.Repository
	cache  service.ProfileCache
	logger logger.Logger
}

func NewGetPublicProfileUseCase(repo account.Repository, cache service.ProfileCache, log logger.Logger) *GetPublicProfileUseCase {
	return &GetPublicProfileUseCase{repo: repo, cache: cache, logger: log}
}

func (uc *GetPublicProfileUseCase) ByID(ctx context.Context, profileID uuid.UUID) (*account.Profile, error) {
	l := uc.logger.With(logger.ProfileID(profileID))
	return uc.cached(ctx, l, service.ProfileCacheKey(profileID), func() (*account.Profile, error) {
		a, err := uc.repo.FindByProfileID(ctx, profileID)
		if err != nil {
			return nil, err
		}
		p := a.FindProfile(profileID)
		if p == nil {
			return nil, account.ErrProfileNotFound
		}
		return p, nil
	})
}

func (uc *GetPublicProfileUseCase) ByCardID(ctx context.Context, cardID uuid.UUID) (*account.Profile, error) {
	l := uc.logger.With(logger.CardID(&cardID))
	return uc.cached(ctx, l, service.CardProfileCacheKey(cardID), func() (*account.Profile, error) {
		a, err := uc.repo.FindByCardID(ctx, cardID)
		if err != nil {
			return nil, err
		}
		card := a.FindCard(cardID)
		if card == nil {
			return nil, account.ErrCardNotFound
		}
		if card.Profile == nil {
			return nil, account.ErrProfileNotFound
		}
		return card.Profile, nil
	})
}

func (uc *GetPublicProfileUseCase) cached(ctx context.Context, l logger.Logger, key string, load func() (*account.Profile, error)) (*account.Profile, error) {
	if uc.cache != nil {
		p, err := uc.cache.Get(ctx, key)
		if err != nil {
			l.Warn("Profile cache read failed", zap.Error(err))
		}
		if p != nil {
			metrics.ProfileCache.WithLabelValues("hit").Inc()
			return p, nil
		}
		metrics.ProfileCache.WithLabelValues("miss").Inc()
	}

	p, err := load()
	if err != nil {
		l.Warn("Public profile not found", zap.Error(err))
		return nil, mutation.Translate(err, "failed to load profile")
	}
	p.SortLinks()

	if uc.cache != nil {
		if err := uc.cache.Set(ctx, key, p); err != nil {
			l.Warn("Profile cache write failed", zap.Error(err))
		}
	}
	return p, nil
}
