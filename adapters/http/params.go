package http

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/khoahotran/cardlink/internal/application/usecase/mutation"
	"github.com/khoahotran/cardlink/pkg/apperror"
)

func uuidParam(c *gin.Context, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		c.Error(apperror.NewInvalidInput(name+" must be a UUID", err))
		return uuid.Nil, false
	}
	return id, true
}

// optionalUUIDParam returns nil when the route has no such parameter.
func optionalUUIDParam(c *gin.Context, name string) (*uuid.UUID, bool) {
	if c.Param(name) == "" {
		return nil, true
	}
	id, ok := uuidParam(c, name)
	if !ok {
		return nil, false
	}
	return &id, true
}

// profileRef reads the ownership chain from either route shape:
// /accounts/:accountId/profiles/:profileId or
// /accounts/:accountId/cards/:cardId/profiles/:profileId.
func profileRef(c *gin.Context) (mutation.ProfileRef, bool) {
	accountID, ok := uuidParam(c, "accountId")
	if !ok {
		return mutation.ProfileRef{}, false
	}
	cardID, ok := optionalUUIDParam(c, "cardId")
	if !ok {
		return mutation.ProfileRef{}, false
	}
	profileID, ok := uuidParam(c, "profileId")
	if !ok {
		return mutation.ProfileRef{}, false
	}
	return mutation.ProfileRef{AccountID: accountID, CardID: cardID, ProfileID: profileID}, true
}
