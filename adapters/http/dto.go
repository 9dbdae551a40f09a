package http

import (
	"time"

	"github.com/google/uuid"

	"github.com/khoahotran/cardlink/internal/application/usecase/accounts"
	"github.com/khoahotran/cardlink/internal/application/usecase/card"
	"github.com/khoahotran/cardlink/internal/application/usecase/profile"
	"github.com/khoahotran/cardlink/internal/application/usecase/profilelink"
	"github.com/khoahotran/cardlink/internal/application/usecase/vcard"
	"github.com/khoahotran/cardlink/internal/domain/account"
)

// Requests

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type RefreshTokenRequest struct {
	RefreshToken string `json:"refresh_token" binding:"required"`
}

type RegisterAccountRequest struct {
	Name        string `json:"name" binding:"required,max=60"`
	ContactName string `json:"contact_name" binding:"required,max=50"`
	Phone       string `json:"phone" binding:"required,max=14"`
	Email       string `json:"email" binding:"required,email,max=50"`
	Password    string `json:"password" binding:"required,min=6,max=30"`
}

func (r RegisterAccountRequest) ToInput() accounts.RegisterAccountInput {
	return accounts.RegisterAccountInput{
		Name:        r.Name,
		ContactName: r.ContactName,
		Phone:       r.Phone,
		Email:       r.Email,
		Password:    r.Password,
	}
}

type UpdateAccountRequest struct {
	Name        string  `json:"name" binding:"required,max=60"`
	ContactName string  `json:"contact_name" binding:"required,max=50"`
	Phone       string  `json:"phone" binding:"required,max=14"`
	IsActive    *bool   `json:"is_active" binding:"required"`
	Password    *string `json:"password" binding:"omitempty,min=6,max=30"`
}

func (r UpdateAccountRequest) ToInput(accountID uuid.UUID) accounts.UpdateAccountInput {
	return accounts.UpdateAccountInput{
		AccountID:   accountID,
		Name:        r.Name,
		ContactName: r.ContactName,
		Phone:       r.Phone,
		IsActive:    *r.IsActive,
		Password:    r.Password,
	}
}

type CreateLinkRequest struct {
	LinkType         string     `json:"link_type" binding:"required,link_type"`
	Name             string     `json:"name" binding:"max=255"`
	Value            string     `json:"value" binding:"required,max=2048"`
	OrderNumber      *int       `json:"order_number" binding:"required,min=1"`
	CustomLinkTypeID *uuid.UUID `json:"custom_profile_link_type_id"`
}

func (r CreateLinkRequest) ToInput() profilelink.LinkInput {
	return profilelink.LinkInput{
		LinkType:         account.LinkType(r.LinkType),
		Name:             r.Name,
		Value:            r.Value,
		OrderNumber:      r.OrderNumber,
		CustomLinkTypeID: r.CustomLinkTypeID,
	}
}

// UpdateLinkRequest keeps the link where it is when order_number is omitted.
type UpdateLinkRequest struct {
	LinkType         string     `json:"link_type" binding:"required,link_type"`
	Name             string     `json:"name" binding:"max=255"`
	Value            string     `json:"value" binding:"required,max=2048"`
	OrderNumber      *int       `json:"order_number" binding:"omitempty,min=1"`
	CustomLinkTypeID *uuid.UUID `json:"custom_profile_link_type_id"`
}

func (r UpdateLinkRequest) ToInput() profilelink.LinkInput {
	return profilelink.LinkInput{
		LinkType:         account.LinkType(r.LinkType),
		Name:             r.Name,
		Value:            r.Value,
		OrderNumber:      r.OrderNumber,
		CustomLinkTypeID: r.CustomLinkTypeID,
	}
}

type ProfileRequest struct {
	Name        string `json:"name" binding:"required,max=255"`
	Surname     string `json:"surname" binding:"max=255"`
	Title       string `json:"title" binding:"max=255"`
	Location    string `json:"location" binding:"max=255"`
	Description string `json:"description" binding:"max=4000"`
	Theme       string `json:"theme" binding:"omitempty,theme"`
}

func (r ProfileRequest) ToInput() profile.ProfileInput {
	return profile.ProfileInput{
		Name:        r.Name,
		Surname:     r.Surname,
		Title:       r.Title,
		Location:    r.Location,
		Description: r.Description,
		Theme:       account.Theme(r.Theme),
	}
}

type VCardRequest struct {
	Name         string `json:"name" binding:"required,max=255"`
	Surname      string `json:"surname" binding:"max=255"`
	Organization string `json:"organization" binding:"max=255"`
	WorkPhone    string `json:"work_phone" binding:"max=64"`
	HomePhone    string `json:"home_phone" binding:"max=64"`
	Email        string `json:"email" binding:"omitempty,email"`
	WebsiteURL   string `json:"website_url" binding:"omitempty,url"`
}

func (r VCardRequest) ToInput() vcard.VCardInput {
	return vcard.VCardInput{
		Name:         r.Name,
		Surname:      r.Surname,
		Organization: r.Organization,
		WorkPhone:    r.WorkPhone,
		HomePhone:    r.HomePhone,
		Email:        r.Email,
		WebsiteURL:   r.WebsiteURL,
	}
}

type CustomLinkTypeRequest struct {
	Name string `json:"name" binding:"required,max=100"`
}

type UpdateCardRequest struct {
	Name     string `json:"name" binding:"required,max=255"`
	IsActive *bool  `json:"is_active" binding:"required"`
}

func (r UpdateCardRequest) ToInput(accountID, cardID uuid.UUID) card.UpdateCardInput {
	return card.UpdateCardInput{
		AccountID: accountID,
		CardID:    cardID,
		Name:      r.Name,
		IsActive:  *r.IsActive,
	}
}

// Responses

type LinkDTO struct {
	ID               uuid.UUID  `json:"id"`
	LinkType         string     `json:"link_type"`
	Name             string     `json:"name"`
	Value            string     `json:"value"`
	OrderNumber      *int       `json:"order_number"`
	CustomLinkTypeID *uuid.UUID `json:"custom_profile_link_type_id,omitempty"`
}

func ToLinkDTO(l *account.ProfileLink) LinkDTO {
	return LinkDTO{
		ID:               l.ID,
		LinkType:         string(l.LinkType),
		Name:             l.Name,
		Value:            l.Value,
		OrderNumber:      l.OrderNumber,
		CustomLinkTypeID: l.CustomLinkTypeID,
	}
}

type PhotoDTO struct {
	ID  uuid.UUID `json:"id"`
	URL string    `json:"url"`
}

func ToPhotoDTO(p *account.ProfilePhoto) *PhotoDTO {
	if p == nil {
		return nil
	}
	return &PhotoDTO{ID: p.ID, URL: p.URL}
}

type ProfileDTO struct {
	ID          uuid.UUID      `json:"id"`
	Name        string         `json:"name"`
	Surname     string         `json:"surname"`
	Title       string         `json:"title"`
	Location    string         `json:"location"`
	Description string         `json:"description"`
	Theme       string         `json:"theme"`
	Photo       *PhotoDTO      `json:"photo"`
	VCard       *account.VCard `json:"v_card"`
	Links       []LinkDTO      `json:"links"`
}

func ToProfileDTO(p *account.Profile) *ProfileDTO {
	if p == nil {
		return nil
	}
	dto := &ProfileDTO{
		ID:          p.ID,
		Name:        p.Name,
		Surname:     p.Surname,
		Title:       p.Title,
		Location:    p.Location,
		Description: p.Description,
		Theme:       string(p.Theme),
		Photo:       ToPhotoDTO(p.Photo),
		VCard:       p.VCard,
		Links:       make([]LinkDTO, len(p.Links)),
	}
	for i, l := range p.Links {
		dto.Links[i] = ToLinkDTO(l)
	}
	return dto
}

type CardDTO struct {
	ID         uuid.UUID   `json:"id"`
	Name       string      `json:"name"`
	IsActive   bool        `json:"is_active"`
	IsDisabled bool        `json:"is_disabled"`
	Profile    *ProfileDTO `json:"profile"`
}

func ToCardDTO(c *account.Card) CardDTO {
	return CardDTO{
		ID:         c.ID,
		Name:       c.Name,
		IsActive:   c.IsActive,
		IsDisabled: c.IsDisabled,
		Profile:    ToProfileDTO(c.Profile),
	}
}

type AccountDTO struct {
	ID              uuid.UUID                 `json:"id"`
	Name            string                    `json:"name"`
	ContactName     string                    `json:"contact_name"`
	Phone           string                    `json:"phone"`
	Email           string                    `json:"email"`
	Profile         *ProfileDTO               `json:"profile"`
	Cards           []CardDTO                 `json:"cards"`
	CustomLinkTypes []*account.CustomLinkType `json:"custom_profile_link_types"`
	CreatedAt       time.Time                 `json:"created_at"`
	UpdatedAt       time.Time                 `json:"updated_at"`
}

func ToAccountDTO(a *account.Account) AccountDTO {
	dto := AccountDTO{
		ID:              a.ID,
		Name:            a.Name,
		ContactName:     a.ContactName,
		Phone:           a.Phone,
		Email:           a.Email,
		Profile:         ToProfileDTO(a.Profile),
		Cards:           make([]CardDTO, len(a.Cards)),
		CustomLinkTypes: a.CustomLinkTypes,
		CreatedAt:       a.CreatedAt,
		UpdatedAt:       a.UpdatedAt,
	}
	if dto.CustomLinkTypes == nil {
		dto.CustomLinkTypes = []*account.CustomLinkType{}
	}
	for i, c := range a.Cards {
		dto.Cards[i] = ToCardDTO(c)
	}
	return dto
}
