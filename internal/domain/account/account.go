package account

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

var (
	ErrAccountNotFound        = errors.New("account not found")
	ErrCardNotFound           = errors.New("card not found")
	ErrProfileNotFound        = errors.New("profile not found")
	ErrLinkNotFound           = errors.New("profile link not found")
	ErrCustomLinkTypeNotFound = errors.New("custom link type not found")
	ErrVCardNotFound          = errors.New("v-card not found")
	ErrPhotoNotFound          = errors.New("profile photo not found")

	ErrProfileExists       = errors.New("profile already exists")
	ErrVCardExists         = errors.New("v-card already exists")
	ErrPhotoExists         = errors.New("profile photo already exists")
	ErrCustomLinkTypeInUse = errors.New("custom link type is referenced by a profile link")
	ErrEmailExists         = errors.New("email is already registered")

	ErrVersionConflict = errors.New("account was modified concurrently")
)

// IsNotFound reports whether err comes from a broken ownership chain or a missing reference.
func IsNotFound(err error) bool {
	for _, target := range []error{
		ErrAccountNotFound, ErrCardNotFound, ErrProfileNotFound, ErrLinkNotFound,
		ErrCustomLinkTypeNotFound, ErrVCardNotFound, ErrPhotoNotFound,
	} {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}

// IsConflict reports whether err is a singleton or concurrency conflict.
func IsConflict(err error) bool {
	return errors.Is(err, ErrProfileExists) ||
		errors.Is(err, ErrVCardExists) ||
		errors.Is(err, ErrPhotoExists) ||
		errors.Is(err, ErrCustomLinkTypeInUse) ||
		errors.Is(err, ErrEmailExists) ||
		errors.Is(err, ErrVersionConflict)
}

type Card struct {
	ID         uuid.UUID `json:"id"`
	Name       string    `json:"name"`
	IsActive   bool      `json:"is_active"`
	IsDisabled bool      `json:"is_disabled"`
	Profile    *Profile  `json:"profile,omitempty"`
}

// Account is the root of the persisted tree. Cards, profiles, links and custom
// link types live inside it and are only ever written together with it.
type Account struct {
	ID              uuid.UUID         `json:"id"`
	Name            string            `json:"name"`
	ContactName     string            `json:"contact_name"`
	Phone           string            `json:"phone"`
	Email           string            `json:"email"`
	PasswordHash    string            `json:"-"`
	IsActive        bool              `json:"is_active"`
	IsDisabled      bool              `json:"is_disabled"`
	Profile         *Profile          `json:"profile,omitempty"`
	Cards           []*Card           `json:"cards"`
	CustomLinkTypes []*CustomLinkType `json:"custom_profile_link_types"`
	Version         int               `json:"version"`
	CreatedAt       time.Time         `json:"created_at"`
	UpdatedAt       time.Time         `json:"updated_at"`
}

func (a *Account) FindCard(cardID uuid.UUID) *Card {
	for _, c := range a.Cards {
		if c != nil && c.ID == cardID {
			return c
		}
	}
	return nil
}

func (a *Account) FindCustomLinkType(id uuid.UUID) *CustomLinkType {
	for _, t := range a.CustomLinkTypes {
		if t != nil && t.ID == id {
			return t
		}
	}
	return nil
}

// ResolveProfile walks the ownership chain. A nil cardID targets the account's
// own profile, otherwise the profile of that card. Any missing hop or id
// mismatch is reported as not found.
func (a *Account) ResolveProfile(cardID *uuid.UUID, profileID uuid.UUID) (*Profile, error) {
	if cardID == nil {
		if a.Profile == nil || a.Profile.ID != profileID {
			return nil, fmt.Errorf("%w: profile %s of account %s", ErrProfileNotFound, profileID, a.ID)
		}
		return a.Profile, nil
	}

	card := a.FindCard(*cardID)
	if card == nil {
		return nil, fmt.Errorf("%w: card %s of account %s", ErrCardNotFound, *cardID, a.ID)
	}
	if card.Profile == nil || card.Profile.ID != profileID {
		return nil, fmt.Errorf("%w: profile %s of card %s", ErrProfileNotFound, profileID, *cardID)
	}
	return card.Profile, nil
}

// FindProfile searches the account profile and every card profile.
func (a *Account) FindProfile(profileID uuid.UUID) *Profile {
	if a.Profile != nil && a.Profile.ID == profileID {
		return a.Profile
	}
	for _, c := range a.Cards {
		if c != nil && c.Profile != nil && c.Profile.ID == profileID {
			return c.Profile
		}
	}
	return nil
}

func (a *Account) Profiles() []*Profile {
	profiles := make([]*Profile, 0, len(a.Cards)+1)
	if a.Profile != nil {
		profiles = append(profiles, a.Profile)
	}
	for _, c := range a.Cards {
		if c != nil && c.Profile != nil {
			profiles = append(profiles, c.Profile)
		}
	}
	return profiles
}

func (a *Account) CardIDs() []uuid.UUID {
	ids := make([]uuid.UUID, 0, len(a.Cards))
	for _, c := range a.Cards {
		if c != nil {
			ids = append(ids, c.ID)
		}
	}
	return ids
}

func (a *Account) IsCustomLinkTypeReferenced(id uuid.UUID) bool {
	for _, p := range a.Profiles() {
		for _, l := range p.Links {
			if l.CustomLinkTypeID != nil && *l.CustomLinkTypeID == id {
				return true
			}
		}
	}
	return false
}

func (a *Account) SortLinks() {
	for _, p := range a.Profiles() {
		p.SortLinks()
	}
}

type Repository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*Account, error)
	FindByEmail(ctx context.Context, email string) (*Account, error)
	FindByProfileID(ctx context.Context, profileID uuid.UUID) (*Account, error)
	FindByCardID(ctx context.Context, cardID uuid.UUID) (*Account, error)
	Create(ctx context.Context, a *Account) error
	// Save writes the whole aggregate if its version is unchanged since load
	// and bumps Version. A stale version yields ErrVersionConflict.
	Save(ctx context.Context, a *Account) error
}
