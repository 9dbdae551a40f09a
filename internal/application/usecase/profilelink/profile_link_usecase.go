package profilelink

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/khoahotran/cardlink/internal/application/usecase/mutation"
	"github.com/khoahotran/cardlink/internal/domain/account"
	"github.com/khoahotran/cardlink/pkg/logger"
)

type ProfileLinkUseCase struct {
	exec   *mutation.Executor
	logger logger.Logger
}

func NewProfileLinkUseCase(exec *mutation.Executor, log logger.Logger) *ProfileLinkUseCase {
	return &ProfileLinkUseCase{exec: exec, logger: log}
}

type LinkInput struct {
	LinkType         account.LinkType
	Name             string
	Value            string
	OrderNumber      *int
	CustomLinkTypeID *uuid.UUID
}

func (uc *ProfileLinkUseCase) Create(ctx context.Context, ref mutation.ProfileRef, input LinkInput) (*account.ProfileLink, error) {
	link := &account.ProfileLink{
		ID:               uuid.New(),
		LinkType:         input.LinkType,
		Name:             input.Name,
		Value:            input.Value,
		OrderNumber:      copyInt(input.OrderNumber),
		CustomLinkTypeID: input.CustomLinkTypeID,
	}
	fields := ref.Fields(logger.LinkID(link.ID))

	_, err := uc.exec.Execute(ctx, "profile_link.create", ref.AccountID, fields, func(a *account.Account) ([]account.Event, error) {
		p, err := ref.Resolve(a)
		if err != nil {
			return nil, err
		}
		if err := account.NormalizeLinkReference(a.CustomLinkTypes, link); err != nil {
			return nil, err
		}

		if !account.ReorderForInsert(p.Links, link) {
			uc.logger.Warn("Link created without an order number, siblings were not renumbered", fields...)
		}
		p.Links = append(p.Links, link)
		p.SortLinks()
		uc.checkDense(p, fields)

		return []account.Event{ref.Event(account.EventLinkCreated, &link.ID)}, nil
	})
	if err != nil {
		return nil, err
	}
	return link, nil
}

func (uc *ProfileLinkUseCase) Update(ctx context.Context, ref mutation.ProfileRef, linkID uuid.UUID, input LinkInput) (*account.ProfileLink, error) {
	fields := ref.Fields(logger.LinkID(linkID))
	var updated account.ProfileLink

	_, err := uc.exec.Execute(ctx, "profile_link.update", ref.AccountID, fields, func(a *account.Account) ([]account.Event, error) {
		p, err := ref.Resolve(a)
		if err != nil {
			return nil, err
		}
		current := p.FindLink(linkID)
		if current == nil {
			return nil, account.ErrLinkNotFound
		}

		candidate := &account.ProfileLink{LinkType: input.LinkType, CustomLinkTypeID: input.CustomLinkTypeID}
		if err := account.NormalizeLinkReference(a.CustomLinkTypes, candidate); err != nil {
			return nil, err
		}

		order := account.ReorderForMove(p.Links, current, input.OrderNumber)
		current.LinkType = input.LinkType
		current.Name = input.Name
		current.Value = input.Value
		current.OrderNumber = copyInt(order)
		current.CustomLinkTypeID = candidate.CustomLinkTypeID
		p.SortLinks()
		uc.checkDense(p, fields)

		updated = *current
		return []account.Event{ref.Event(account.EventLinkUpdated, &linkID)}, nil
	})
	if err != nil {
		return nil, err
	}
	return &updated, nil
}

func (uc *ProfileLinkUseCase) Delete(ctx context.Context, ref mutation.ProfileRef, linkID uuid.UUID) error {
	fields := ref.Fields(logger.LinkID(linkID))

	_, err := uc.exec.Execute(ctx, "profile_link.delete", ref.AccountID, fields, func(a *account.Account) ([]account.Event, error) {
		p, err := ref.Resolve(a)
		if err != nil {
			return nil, err
		}
		deleted := p.RemoveLink(linkID)
		if deleted == nil {
			return nil, account.ErrLinkNotFound
		}
		account.ReorderForDelete(p.Links, deleted)
		uc.checkDense(p, fields)

		return []account.Event{ref.Event(account.EventLinkDeleted, &linkID)}, nil
	})
	return err
}

func (uc *ProfileLinkUseCase) checkDense(p *account.Profile, fields []zap.Field) {
	if !p.HasDenseLinkOrder() {
		uc.logger.Warn("Profile link order is not dense after mutation", append(fields, zap.Int("links", len(p.Links)))...)
	}
}

func copyInt(n *int) *int {
	if n == nil {
		return nil
	}
	v := *n
	return &v
}
