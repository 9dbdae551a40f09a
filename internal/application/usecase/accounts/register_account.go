package accounts

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/khoahotran/cardlink/internal/application/usecase/mutation"
	"github.com/khoahotran/cardlink/internal/domain/account"
	"github.com/khoahotran/cardlink/pkg/apperror"
	"github.com/khoahotran/cardlink/pkg/auth"
	"github.com/khoahotran/cardlink/pkg/logger"
)

type RegisterAccountUseCase struct {
	repo   account.Repository
	logger logger.Logger
}

func NewRegisterAccountUseCase(repo account.Repository, log logger.Logger) *RegisterAccountUseCase {
	return &RegisterAccountUseCase{repo: repo, logger: log}
}

type RegisterAccountInput struct {
	Name        string
	ContactName string
	Phone       string
	Email       string
	Password    string
}

// Execute creates an active account with no profile, cards or custom link
// types. Emails are stored lower-cased and must be unique.
func (uc *RegisterAccountUseCase) Execute(ctx context.Context, input RegisterAccountInput) (*account.Account, error) {
	email := strings.ToLower(strings.TrimSpace(input.Email))
	l := uc.logger.With(zap.String("email", email))

	existing, err := uc.repo.FindByEmail(ctx, email)
	switch {
	case err == nil && existing != nil:
		l.Warn("Account with this email already exists")
		return nil, apperror.NewAlreadyExists(account.ErrEmailExists)
	case err != nil && !errors.Is(err, account.ErrAccountNotFound):
		l.Error("Failed to check email uniqueness", err)
		return nil, mutation.Translate(err, "failed to check email")
	}

	hash, err := auth.HashPassword(input.Password)
	if err != nil {
		l.Error("Failed to hash password", err)
		return nil, apperror.NewInternal("failed to hash password", err)
	}

	now := time.Now().UTC()
	a := &account.Account{
		ID:              uuid.New(),
		Name:            input.Name,
		ContactName:     input.ContactName,
		Phone:           input.Phone,
		Email:           email,
		PasswordHash:    hash,
		IsActive:        true,
		Cards:           []*account.Card{},
		CustomLinkTypes: []*account.CustomLinkType{},
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	// The store's unique index still decides a concurrent race.
	if err := uc.repo.Create(ctx, a); err != nil {
		l.Warn("Failed to create account", zap.Error(err))
		return nil, mutation.Translate(err, "failed to create account")
	}

	l.Info("Account registered", logger.AccountID(a.ID))
	return a, nil
}
