package accounts

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/khoahotran/cardlink/internal/application/usecase/mutation"
	"github.com/khoahotran/cardlink/internal/domain/account"
	"github.com/khoahotran/cardlink/pkg/logger"
)

type GetAccountUseCase struct {
	repo   account.Repository
	logger logger.Logger
}

func NewGetAccountUseCase(repo account.Repository, log logger.Logger) *GetAccountUseCase {
	return &GetAccountUseCase{repo: repo, logger: log}
}

// Execute returns the whole aggregate with every profile's links in display order.
func (uc *GetAccountUseCase) Execute(ctx context.Context, accountID uuid.UUID) (*account.Account, error) {
	a, err := uc.repo.FindByID(ctx, accountID)
	if err != nil {
		uc.logger.Warn("Failed to load account", logger.AccountID(accountID), zap.Error(err))
		return nil, mutation.Translate(err, "failed to load account")
	}
	a.SortLinks()
	return a, nil
}
