package photo

import (
	"context"

	"go.uber.org/zap"

	"github.com/khoahotran/cardlink/internal/application/service"
	"github.com/khoahotran/cardlink/internal/domain/account"
	"github.com/khoahotran/cardlink/pkg/apperror"
	"github.com/khoahotran/cardlink/pkg/logger"
)

// ProcessPhotoEventUseCase runs in the worker and destroys assets of photos
// that are no longer attached to a profile.
type ProcessPhotoEventUseCase struct {
	uploader service.Uploader
	logger   logger.Logger
}

func NewProcessPhotoEventUseCase(u service.Uploader, log logger.Logger) *ProcessPhotoEventUseCase {
	return &ProcessPhotoEventUseCase{uploader: u, logger: log}
}

func (uc *ProcessPhotoEventUseCase) Execute(ctx context.Context, ev account.Event) error {
	l := uc.logger.With(logger.AccountID(ev.AccountID), zap.String("event_type", string(ev.Type)))

	if ev.Type != account.EventPhotoRemoved {
		l.Info("Event needs no media work, skipping")
		return nil
	}
	if ev.PublicID == "" {
		l.Warn("photo.removed event without public id, skipping")
		return nil
	}

	if err := uc.uploader.Delete(ctx, ev.PublicID); err != nil {
		return apperror.NewInternal("failed to destroy photo asset", err)
	}

	l.Info("Destroyed photo asset", zap.String("public_id", ev.PublicID))
	return nil
}
