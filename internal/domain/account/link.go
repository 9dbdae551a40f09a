package account

import "github.com/google/uuid"

type LinkType string

const (
	LinkTypeWebsite   LinkType = "website"
	LinkTypeMail      LinkType = "mail"
	LinkTypeWhatsApp  LinkType = "whatsapp"
	LinkTypeInstagram LinkType = "instagram"
	LinkTypeFacebook  LinkType = "facebook"
	LinkTypeYouTube   LinkType = "youtube"
	LinkTypeTwitter   LinkType = "twitter"
	LinkTypeLinkedIn  LinkType = "linkedin"
	LinkTypeMap       LinkType = "map"
	LinkTypeCustom    LinkType = "custom"
)

var linkTypes = []LinkType{
	LinkTypeWebsite, LinkTypeMail, LinkTypeWhatsApp, LinkTypeInstagram, LinkTypeFacebook,
	LinkTypeYouTube, LinkTypeTwitter, LinkTypeLinkedIn, LinkTypeMap, LinkTypeCustom,
}

func LinkTypes() []LinkType {
	out := make([]LinkType, len(linkTypes))
	copy(out, linkTypes)
	return out
}

func (t LinkType) Valid() bool {
	for _, lt := range linkTypes {
		if lt == t {
			return true
		}
	}
	return false
}

type ProfileLink struct {
	ID               uuid.UUID  `json:"id"`
	LinkType         LinkType   `json:"link_type"`
	Name             string     `json:"name"`
	Value            string     `json:"value"`
	OrderNumber      *int       `json:"order_number"`
	CustomLinkTypeID *uuid.UUID `json:"custom_profile_link_type_id,omitempty"`
}
