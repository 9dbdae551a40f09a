package vcard

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/khoahotran/cardlink/internal/application/usecase/mutation"
	"github.com/khoahotran/cardlink/internal/domain/account"
	"github.com/khoahotran/cardlink/pkg/logger"
)

type VCardUseCase struct {
	exec   *mutation.Executor
	logger logger.Logger
}

func NewVCardUseCase(exec *mutation.Executor, log logger.Logger) *VCardUseCase {
	return &VCardUseCase{exec: exec, logger: log}
}

type VCardInput struct {
	Name         string
	Surname      string
	Organization string
	WorkPhone    string
	HomePhone    string
	Email        string
	WebsiteURL   string
}

func (in VCardInput) apply(v *account.VCard) {
	v.Name = in.Name
	v.Surname = in.Surname
	v.Organization = in.Organization
	v.WorkPhone = in.WorkPhone
	v.HomePhone = in.HomePhone
	v.Email = in.Email
	v.WebsiteURL = in.WebsiteURL
}

func (uc *VCardUseCase) Create(ctx context.Context, ref mutation.ProfileRef, input VCardInput) (*account.VCard, error) {
	v := &account.VCard{ID: uuid.New()}
	input.apply(v)

	_, err := uc.exec.Execute(ctx, "v_card.create", ref.AccountID, ref.Fields(vcardID(v.ID)), func(a *account.Account) ([]account.Event, error) {
		p, err := ref.Resolve(a)
		if err != nil {
			return nil, err
		}
		if p.VCard != nil {
			return nil, account.ErrVCardExists
		}
		p.VCard = v
		return []account.Event{ref.Event(account.EventVCardChanged, &v.ID)}, nil
	})
	if err != nil {
		return nil, err
	}
	return v, nil
}

func (uc *VCardUseCase) Update(ctx context.Context, ref mutation.ProfileRef, id uuid.UUID, input VCardInput) (*account.VCard, error) {
	var updated account.VCard

	_, err := uc.exec.Execute(ctx, "v_card.update", ref.AccountID, ref.Fields(vcardID(id)), func(a *account.Account) ([]account.Event, error) {
		p, err := ref.Resolve(a)
		if err != nil {
			return nil, err
		}
		if p.VCard == nil || p.VCard.ID != id {
			return nil, account.ErrVCardNotFound
		}
		input.apply(p.VCard)
		updated = *p.VCard
		return []account.Event{ref.Event(account.EventVCardChanged, &id)}, nil
	})
	if err != nil {
		return nil, err
	}
	return &updated, nil
}

func (uc *VCardUseCase) Delete(ctx context.Context, ref mutation.ProfileRef, id uuid.UUID) error {
	_, err := uc.exec.Execute(ctx, "v_card.delete", ref.AccountID, ref.Fields(vcardID(id)), func(a *account.Account) ([]account.Event, error) {
		p, err := ref.Resolve(a)
		if err != nil {
			return nil, err
		}
		if p.VCard == nil || p.VCard.ID != id {
			return nil, account.ErrVCardNotFound
		}
		p.VCard = nil
		return []account.Event{ref.Event(account.EventVCardChanged, &id)}, nil
	})
	return err
}

func vcardID(id uuid.UUID) zap.Field {
	return zap.String("v_card_id", id.String())
}
