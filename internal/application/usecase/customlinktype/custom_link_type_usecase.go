package customlinktype

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/khoahotran/cardlink/internal/application/usecase/mutation"
	"github.com/khoahotran/cardlink/internal/domain/account"
	"github.com/khoahotran/cardlink/pkg/logger"
)

type CustomLinkTypeUseCase struct {
	exec   *mutation.Executor
	logger logger.Logger
}

func NewCustomLinkTypeUseCase(exec *mutation.Executor, log logger.Logger) *CustomLinkTypeUseCase {
	return &CustomLinkTypeUseCase{exec: exec, logger: log}
}

func changed(accountID, typeID uuid.UUID) []account.Event {
	ev := account.NewEvent(account.EventCustomLinkTypeChanged, accountID)
	ev.ResourceID = &typeID
	return []account.Event{ev}
}

func (uc *CustomLinkTypeUseCase) Create(ctx context.Context, accountID uuid.UUID, name string) (*account.CustomLinkType, error) {
	t := &account.CustomLinkType{ID: uuid.New(), Name: name}

	_, err := uc.exec.Execute(ctx, "custom_link_type.create", accountID, typeFields(t.ID), func(a *account.Account) ([]account.Event, error) {
		a.CustomLinkTypes = append(a.CustomLinkTypes, t)
		return changed(accountID, t.ID), nil
	})
	if err != nil {
		return nil, err
	}
	return t, nil
}

func (uc *CustomLinkTypeUseCase) Update(ctx context.Context, accountID, typeID uuid.UUID, name string) (*account.CustomLinkType, error) {
	var updated account.CustomLinkType

	_, err := uc.exec.Execute(ctx, "custom_link_type.update", accountID, typeFields(typeID), func(a *account.Account) ([]account.Event, error) {
		t := a.FindCustomLinkType(typeID)
		if t == nil {
			return nil, account.ErrCustomLinkTypeNotFound
		}
		t.Name = name
		updated = *t
		return changed(accountID, typeID), nil
	})
	if err != nil {
		return nil, err
	}
	return &updated, nil
}

// Delete refuses to remove a type that a link still points at.
func (uc *CustomLinkTypeUseCase) Delete(ctx context.Context, accountID, typeID uuid.UUID) error {
	_, err := uc.exec.Execute(ctx, "custom_link_type.delete", accountID, typeFields(typeID), func(a *account.Account) ([]account.Event, error) {
		if a.FindCustomLinkType(typeID) == nil {
			return nil, account.ErrCustomLinkTypeNotFound
		}
		if a.IsCustomLinkTypeReferenced(typeID) {
			return nil, account.ErrCustomLinkTypeInUse
		}
		kept := a.CustomLinkTypes[:0]
		for _, t := range a.CustomLinkTypes {
			if t.ID != typeID {
				kept = append(kept, t)
			}
		}
		a.CustomLinkTypes = kept
		return changed(accountID, typeID), nil
	})
	return err
}

func typeFields(id uuid.UUID) []zap.Field {
	return []zap.Field{zap.String("custom_link_type_id", id.String())}
}
