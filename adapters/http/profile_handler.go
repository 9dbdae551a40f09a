package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	profileUC "github.com/khoahotran/cardlink/internal/application/usecase/profile"
	"github.com/khoahotran/cardlink/pkg/apperror"
	"github.com/khoahotran/cardlink/pkg/logger"
)

type ProfileHandler struct {
	profileUseCase *profileUC.ProfileUseCase
	publicUseCase  *profileUC.GetPublicProfileUseCase
	logger         logger.Logger
}

func NewProfileHandler(uc *profileUC.ProfileUseCase, publicUC *profileUC.GetPublicProfileUseCase, log logger.Logger) *ProfileHandler {
	return &ProfileHandler{
		profileUseCase: uc,
		publicUseCase:  publicUC,
		logger:         log,
	}
}

// CreateProfile serves both the account profile and card profile routes.
func (h *ProfileHandler) CreateProfile(c *gin.Context) {
	accountID, ok := uuidParam(c, "accountId")
	if !ok {
		return
	}
	cardID, ok := optionalUUIDParam(c, "cardId")
	if !ok {
		return
	}

	var req ProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.NewInvalidInput("invalid profile request", err))
		return
	}

	p, err := h.profileUseCase.Create(c.Request.Context(), accountID, cardID, req.ToInput())
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusCreated, ToProfileDTO(p))
}

func (h *ProfileHandler) UpdateProfile(c *gin.Context) {
	ref, ok := profileRef(c)
	if !ok {
		return
	}

	var req ProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.NewInvalidInput("invalid profile request", err))
		return
	}

	p, err := h.profileUseCase.Update(c.Request.Context(), ref, req.ToInput())
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, ToProfileDTO(p))
}

func (h *ProfileHandler) DeleteProfile(c *gin.Context) {
	ref, ok := profileRef(c)
	if !ok {
		return
	}
	if err := h.profileUseCase.Delete(c.Request.Context(), ref); err != nil {
		c.Error(err)
		return
	}
	c.Status(http.StatusNoContent)
}

// GetPublicProfile needs no token.
func (h *ProfileHandler) GetPublicProfile(c *gin.Context) {
	profileID, ok := uuidParam(c, "profileId")
	if !ok {
		return
	}
	p, err := h.publicUseCase.ByID(c.Request.Context(), profileID)
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, ToProfileDTO(p))
}

// GetProfileByCard resolves a scanned card to the profile it shows.
func (h *ProfileHandler) GetProfileByCard(c *gin.Context) {
	raw := c.Query("cardId")
	if raw == "" {
		c.Error(apperror.NewInvalidInput("cardId query parameter is required", nil))
		return
	}
	cardID, err := uuid.Parse(raw)
	if err != nil {
		c.Error(apperror.NewInvalidInput("cardId must be a UUID", err))
		return
	}
	p, err := h.publicUseCase.ByCardID(c.Request.Context(), cardID)
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, ToProfileDTO(p))
}
