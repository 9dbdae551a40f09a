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

type ReplacePhotoUseCase struct {
	repo     account.Repository
	exec     *mutation.Executor
	uploader service.Uploader
	logger   logger.Logger
}

func NewReplacePhotoUseCase(repo account.Repository, exec *mutation.Executor, u service.Uploader, log logger.Logger) *ReplacePhotoUseCase {
	return &ReplacePhotoUseCase{repo: repo, exec: exec, uploader: u, logger: log}
}

type ReplacePhotoInput struct {
	Ref     mutation.ProfileRef
	PhotoID uuid.UUID
	File    io.Reader
}

// Execute swaps the stored asset behind an existing photo. The photo keeps its
// id; the previous asset is destroyed by the worker on photo.removed.
func (uc *ReplacePhotoUseCase) Execute(ctx context.Context, input ReplacePhotoInput) (*account.ProfilePhoto, error) {
	ref := input.Ref
	fields := ref.Fields(zap.String("photo_id", input.PhotoID.String()))
	l := uc.logger.With(append(fields, logger.AccountID(ref.AccountID))...)

	a, err := uc.repo.FindByID(ctx, ref.AccountID)
	if err != nil {
		return nil, mutation.Translate(err, "failed to load account")
	}
	p, err := ref.Resolve(a)
	if err != nil {
		l.Warn("Photo target not found", zap.Error(err))
		return nil, mutation.Translate(err, "failed to resolve profile")
	}
	if p.Photo == nil || p.Photo.ID != input.PhotoID {
		l.Warn("Photo to replace not found")
		return nil, apperror.NewReferencedNotFound(account.ErrPhotoNotFound)
	}

	// A fresh asset name keeps CDN caches from serving the old image.
	folder := fmt.Sprintf("accounts/%s/profiles/%s", ref.AccountID, ref.ProfileID)
	stored, err := uc.uploader.Upload(ctx, input.File, folder, uuid.NewString())
	if err != nil {
		l.Error("Failed to upload replacement photo", err)
		return nil, apperror.NewInternal("failed to upload profile photo", err)
	}

	var replaced *account.ProfilePhoto
	_, err = uc.exec.Execute(ctx, "photo.replace", ref.AccountID, fields, func(a *account.Account) ([]account.Event, error) {
		p, err := ref.Resolve(a)
		if err != nil {
			return nil, err
		}
		if p.Photo == nil || p.Photo.ID != input.PhotoID {
			return nil, account.ErrPhotoNotFound
		}
		removed := ref.Event(account.EventPhotoRemoved, &input.PhotoID)
		removed.PublicID = p.Photo.PublicID
		uploaded := ref.Event(account.EventPhotoUploaded, &input.PhotoID)
		uploaded.PublicID = stored.PublicID

		p.Photo = &account.ProfilePhoto{ID: input.PhotoID, PublicID: stored.PublicID, URL: stored.URL}
		replaced = p.Photo
		return []account.Event{uploaded, removed}, nil
	})
	if err != nil {
		go func() {
			if derr := uc.uploader.Delete(context.Background(), stored.PublicID); derr != nil {
				l.Error("Failed to roll back uploaded photo", derr, zap.String("public_id", stored.PublicID))
			}
		}()
		return nil, err
	}
	return replaced, nil
}
