package accounts

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/khoahotran/cardlink/internal/application/usecase/mutation"
	"github.com/khoahotran/cardlink/internal/domain/account"
	"github.com/khoahotran/cardlink/pkg/apperror"
	"github.com/khoahotran/cardlink/pkg/auth"
	"github.com/khoahotran/cardlink/pkg/logger"
)

type UpdateAccountUseCase struct {
	exec   *mutation.Executor
	logger logger.Logger
}

func NewUpdateAccountUseCase(exec *mutation.Executor, log logger.Logger) *UpdateAccountUseCase {
	return &UpdateAccountUseCase{exec: exec, logger: log}
}

type UpdateAccountInput struct {
	AccountID   uuid.UUID
	Name        string
	ContactName string
	Phone       string
	IsActive    bool
	// Password is rehashed when set; nil keeps the current one.
	Password *string
}

// Execute overwrites the contact details and the active flag. Email changes
// go through a separate confirmation flow and are not accepted here.
func (uc *UpdateAccountUseCase) Execute(ctx context.Context, input UpdateAccountInput) (*account.Account, error) {
	var hash string
	if input.Password != nil {
		h, err := auth.HashPassword(*input.Password)
		if err != nil {
			uc.logger.Error("Failed to hash new password", err, logger.AccountID(input.AccountID))
			return nil, apperror.NewInternal("failed to hash password", err)
		}
		hash = h
	}

	fields := []zap.Field{zap.Bool("password_changed", input.Password != nil)}
	return uc.exec.Execute(ctx, "account.update", input.AccountID, fields, func(a *account.Account) ([]account.Event, error) {
		a.Name = input.Name
		a.ContactName = input.ContactName
		a.Phone = input.Phone
		a.IsActive = input.IsActive
		if hash != "" {
			a.PasswordHash = hash
		}
		return []account.Event{account.NewEvent(account.EventAccountUpdated, a.ID)}, nil
	})
}
