package card

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/khoahotran/cardlink/internal/application/usecase/mutation"
	"github.com/khoahotran/cardlink/internal/domain/account"
	"github.com/khoahotran/cardlink/pkg/logger"
)

type CardUseCase struct {
	exec   *mutation.Executor
	logger logger.Logger
}

func NewCardUseCase(exec *mutation.Executor, log logger.Logger) *CardUseCase {
	return &CardUseCase{exec: exec, logger: log}
}

type UpdateCardInput struct {
	AccountID uuid.UUID
	CardID    uuid.UUID
	Name      string
	IsActive  bool
}

func (uc *CardUseCase) Update(ctx context.Context, input UpdateCardInput) (*account.Card, error) {
	var updated *account.Card

	_, err := uc.exec.Execute(ctx, "card.update", input.AccountID, []zap.Field{logger.CardID(&input.CardID)}, func(a *account.Account) ([]account.Event, error) {
		c := a.FindCard(input.CardID)
		if c == nil {
			return nil, account.ErrCardNotFound
		}
		c.Name = input.Name
		c.IsActive = input.IsActive
		updated = c

		ev := account.NewEvent(account.EventCardUpdated, input.AccountID)
		ev.CardID = &input.CardID
		return []account.Event{ev}, nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}
