package photo

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/khoahotran/cardlink/internal/application/usecase/mutation"
	"github.com/khoahotran/cardlink/internal/domain/account"
	"github.com/khoahotran/cardlink/pkg/logger"
)

type DeletePhotoUseCase struct {
	exec   *mutation.Executor
	logger logger.Logger
}

func NewDeletePhotoUseCase(exec *mutation.Executor, log logger.Logger) *DeletePhotoUseCase {
	return &DeletePhotoUseCase{exec: exec, logger: log}
}

// Execute detaches the photo. The stored asset is destroyed by the worker
// once the photo.removed event arrives.
func (uc *DeletePhotoUseCase) Execute(ctx context.Context, ref mutation.ProfileRef, photoID uuid.UUID) error {
	fields := ref.Fields(zap.String("photo_id", photoID.String()))

	_, err := uc.exec.Execute(ctx, "photo.delete", ref.AccountID, fields, func(a *account.Account) ([]account.Event, error) {
		p, err := ref.Resolve(a)
		if err != nil {
			return nil, err
		}
		if p.Photo == nil || p.Photo.ID != photoID {
			return nil, account.ErrPhotoNotFound
		}
		ev := ref.Event(account.EventPhotoRemoved, &photoID)
		ev.PublicID = p.Photo.PublicID
		p.Photo = nil
		return []account.Event{ev}, nil
	})
	return err
}
