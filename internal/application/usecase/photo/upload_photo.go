package photo

import (
	"context"
	"fmt"
	"io"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/khoahotran/cardlink/internal/application/service"
	"github.com/khoahotran/cardlink/internal/application/usecase/mutation"
	"github.com/khoahotran/cardlink/internal/domain/account"
	"github.com/khoahotran/cardlink/pkg/apperror"
	"github.com/khoahotran/cardlink/pkg/logger"
)

type UploadPhotoUseCase struct {
	repo     account.Repository
	exec     *mutation.Executor
	uploader service.Uploader
	logger   logger.Logger
}

func NewUploadPhotoUseCase(repo account.Repository, exec *mutation.Executor, u service.Uploader, log logger.Logger) *UploadPhotoUseCase {
	return &UploadPhotoUseCase{repo: repo, exec: exec, uploader: u, logger: log}
}

type UploadPhotoInput struct {
	Ref  mutation.ProfileRef
	File io.Reader
}

// Execute stores the file and attaches it as the profile photo. The asset is
// removed again when the account save fails.
func (uc *UploadPhotoUseCase) Execute(ctx context.Context, input UploadPhotoInput) (*account.ProfilePhoto, error) {
	ref := input.Ref
	photoID := uuid.New()
	fields := ref.Fields(zap.String("photo_id", photoID.String()))
	l := uc.logger.With(append(fields, logger.AccountID(ref.AccountID))...)

	// Refuse early so a doomed upload never reaches the media store.
	a, err := uc.repo.FindByID(ctx, ref.AccountID)
	if err != nil {
		return nil, mutation.Translate(err, "failed to load account")
	}
	p, err := ref.Resolve(a)
	if err != nil {
		l.Warn("Photo target not found", zap.Error(err))
		return nil, mutation.Translate(err, "failed to resolve profile")
	}
	if p.Photo != nil {
		return nil, apperror.NewAlreadyExists(account.ErrPhotoExists)
	}

	folder := fmt.Sprintf("accounts/%s/profiles/%s", ref.AccountID, ref.ProfileID)
	stored, err := uc.uploader.Upload(ctx, input.File, folder, photoID.String())
	if err != nil {
		l.Error("Failed to upload profile photo", err)
		return nil, apperror.NewInternal("failed to upload profile photo", err)
	}

	photo := &account.ProfilePhoto{ID: photoID, PublicID: stored.PublicID, URL: stored.URL}

	_, err = uc.exec.Execute(ctx, "photo.upload", ref.AccountID, fields, func(a *account.Account) ([]account.Event, error) {
		p, err := ref.Resolve(a)
		if err != nil {
			return nil, err
		}
		if p.Photo != nil {
			return nil, account.ErrPhotoExists
		}
		p.Photo = photo
		ev := ref.Event(account.EventPhotoUploaded, &photoID)
		ev.PublicID = photo.PublicID
		return []account.Event{ev}, nil
	})
	if err != nil {
		go func() {
			if derr := uc.uploader.Delete(context.Background(), stored.PublicID); derr != nil {
				l.Error("Failed to roll back uploaded photo", derr, zap.String("public_id", stored.PublicID))
			}
		}()
		return nil, err
	}
	return photo, nil
}
