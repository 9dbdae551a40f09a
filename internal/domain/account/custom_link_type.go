package account

import (
	"fmt"

	"github.com/google/uuid"
)

// CustomLinkType is an account scoped label for links of type custom.
type CustomLinkType struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
}

// NormalizeLinkReference checks the link's custom type reference against the
// account's declared types. An unknown id is rejected whatever the link type;
// a known id on a non-custom link is dropped.
func NormalizeLinkReference(types []*CustomLinkType, link *ProfileLink) error {
	if link.CustomLinkTypeID == nil {
		return nil
	}

	found := false
	for _, t := range types {
		if t != nil && t.ID == *link.CustomLinkTypeID {
			found = true
			break
		}
	}
	if !found {
		return fmt.Errorf("%w: %s", ErrCustomLinkTypeNotFound, *link.CustomLinkTypeID)
	}

	if link.LinkType != LinkTypeCustom {
		link.CustomLinkTypeID = nil
	}
	return nil
}
