package account

import (
	"sort"

	"github.com/google/uuid"
)

type Theme string

const (
	ThemeGolden        Theme = "golden"
	ThemeBlueFresenius Theme = "blue_fresenius"
)

func (t Theme) Valid() bool {
	switch t {
	case ThemeGolden, ThemeBlueFresenius:
		return true
	}
	return false
}

type ProfilePhoto struct {
	ID       uuid.UUID `json:"id"`
	PublicID string    `json:"public_id"`
	URL      string    `json:"url"`
}

type VCard struct {
	ID           uuid.UUID `json:"id"`
	Name         string    `json:"name"`
	Surname      string    `json:"surname"`
	Organization string    `json:"organization"`
	WorkPhone    string    `json:"work_phone"`
	HomePhone    string    `json:"home_phone"`
	Email        string    `json:"email"`
	WebsiteURL   string    `json:"website_url"`
}

type Profile struct {
	ID          uuid.UUID      `json:"id"`
	Name        string         `json:"name"`
	Surname     string         `json:"surname"`
	Title       string         `json:"title"`
	Location    string         `json:"location"`
	Description string         `json:"description"`
	Photo       *ProfilePhoto  `json:"photo,omitempty"`
	VCard       *VCard         `json:"v_card,omitempty"`
	Links       []*ProfileLink `json:"links"`
	Theme       Theme          `json:"theme"`
}

func NewProfile(name, surname, title, location, description string) *Profile {
	return &Profile{
		ID:          uuid.New(),
		Name:        name,
		Surname:     surname,
		Title:       title,
		Location:    location,
		Description: description,
		Links:       []*ProfileLink{},
		Theme:       ThemeGolden,
	}
}

func (p *Profile) FindLink(id uuid.UUID) *ProfileLink {
	for _, l := range p.Links {
		if l.ID == id {
			return l
		}
	}
	return nil
}

// RemoveLink detaches the link and returns it, or nil if the profile has no
// link with that id.
func (p *Profile) RemoveLink(id uuid.UUID) *ProfileLink {
	for i, l := range p.Links {
		if l.ID == id {
			p.Links = append(p.Links[:i], p.Links[i+1:]...)
			return l
		}
	}
	return nil
}

// SortLinks orders links by order number, links without one last.
func (p *Profile) SortLinks() {
	sort.SliceStable(p.Links, func(i, j int) bool {
		a, b := p.Links[i].OrderNumber, p.Links[j].OrderNumber
		if a == nil {
			return false
		}
		if b == nil {
			return true
		}
		return *a < *b
	})
}

// HasDenseLinkOrder reports whether the order numbers are exactly 1..N.
func (p *Profile) HasDenseLinkOrder() bool {
	seen := make([]bool, len(p.Links)+1)
	for _, l := range p.Links {
		if l.OrderNumber == nil {
			return false
		}
		n := *l.OrderNumber
		if n < 1 || n > len(p.Links) || seen[n] {
			return false
		}
		seen[n] = true
	}
	return true
}
