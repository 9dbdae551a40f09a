package profile

import (
	"context"

	"github.com/google/uuid"

	"github.com/khoahotran/cardlink/internal/application/usecase/mutation"
	"github.com/khoahotran/cardlink/internal/domain/account"
	"github.com/khoahotran/cardlink/pkg/logger"
)

type ProfileUseCase struct {
	exec   *mutation.Executor
	logger logger.Logger
}

func NewProfileUseCase(exec *mutation.Executor, log logger.Logger) *ProfileUseCase {
	return &ProfileUseCase{exec: exec, logger: log}
}

type ProfileInput struct {
	Name        string
	Surname     string
	Title       string
	Location    string
	Description string
	// Theme is ignored on create. On update an empty value keeps the current one.
	Theme account.Theme
}

// Create attaches a new profile to the account, or to one of its cards when
// cardID is set. Photo, v-card and links always start empty.
func (uc *ProfileUseCase) Create(ctx context.Context, accountID uuid.UUID, cardID *uuid.UUID, input ProfileInput) (*account.Profile, error) {
	p := account.NewProfile(input.Name, input.Surname, input.Title, input.Location, input.Description)
	ref := mutation.ProfileRef{AccountID: accountID, CardID: cardID, ProfileID: p.ID}

	_, err := uc.exec.Execute(ctx, "profile.create", accountID, ref.Fields(), func(a *account.Account) ([]account.Event, error) {
		if cardID == nil {
			if a.Profile != nil {
				return nil, account.ErrProfileExists
			}
			a.Profile = p
		} else {
			card := a.FindCard(*cardID)
			if card == nil {
				return nil, account.ErrCardNotFound
			}
			if card.Profile != nil {
				return nil, account.ErrProfileExists
			}
			card.Profile = p
		}
		return []account.Event{ref.Event(account.EventProfileCreated, &p.ID)}, nil
	})
	if err != nil {
		return nil, err
	}
	return p, nil
}

func (uc *ProfileUseCase) Update(ctx context.Context, ref mutation.ProfileRef, input ProfileInput) (*account.Profile, error) {
	var updated *account.Profile

	_, err := uc.exec.Execute(ctx, "profile.update", ref.AccountID, ref.Fields(), func(a *account.Account) ([]account.Event, error) {
		p, err := ref.Resolve(a)
		if err != nil {
			return nil, err
		}
		p.Name = input.Name
		p.Surname = input.Surname
		p.Title = input.Title
		p.Location = input.Location
		p.Description = input.Description
		if input.Theme != "" {
			p.Theme = input.Theme
		}
		p.SortLinks()
		updated = p
		return []account.Event{ref.Event(account.EventProfileUpdated, &p.ID)}, nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

// Delete detaches the profile. A stored photo is scheduled for removal
// through a photo.removed event.
func (uc *ProfileUseCase) Delete(ctx context.Context, ref mutation.ProfileRef) error {
	_, err := uc.exec.Execute(ctx, "profile.delete", ref.AccountID, ref.Fields(), func(a *account.Account) ([]account.Event, error) {
		p, err := ref.Resolve(a)
		if err != nil {
			return nil, err
		}
		if ref.CardID == nil {
			a.Profile = nil
		} else {
			a.FindCard(*ref.CardID).Profile = nil
		}

		events := []account.Event{ref.Event(account.EventProfileDeleted, &p.ID)}
		if p.Photo != nil {
			ev := ref.Event(account.EventPhotoRemoved, &p.Photo.ID)
			ev.PublicID = p.Photo.PublicID
			events = append(events, ev)
		}
		return events, nil
	})
	return err
}
