package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/khoahotran/cardlink/internal/application/usecase/profilelink"
	"github.com/khoahotran/cardlink/pkg/apperror"
	"github.com/khoahotran/cardlink/pkg/logger"
)

type ProfileLinkHandler struct {
	linkUseCase *profilelink.ProfileLinkUseCase
	logger      logger.Logger
}

func NewProfileLinkHandler(uc *profilelink.ProfileLinkUseCase, log logger.Logger) *ProfileLinkHandler {
	return &ProfileLinkHandler{
		linkUseCase: uc,
		logger:      log,
	}
}

func (h *ProfileLinkHandler) CreateLink(c *gin.Context) {
	ref, ok := profileRef(c)
	if !ok {
		return
	}

	var req CreateLinkRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.NewInvalidInput("invalid link request", err))
		return
	}

	link, err := h.linkUseCase.Create(c.Request.Context(), ref, req.ToInput())
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusCreated, ToLinkDTO(link))
}

func (h *ProfileLinkHandler) UpdateLink(c *gin.Context) {
	ref, ok := profileRef(c)
	if !ok {
		return
	}
	linkID, ok := uuidParam(c, "linkId")
	if !ok {
		return
	}

	var req UpdateLinkRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.NewInvalidInput("invalid link request", err))
		return
	}

	link, err := h.linkUseCase.Update(c.Request.Context(), ref, linkID, req.ToInput())
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, ToLinkDTO(link))
}

func (h *ProfileLinkHandler) DeleteLink(c *gin.Context) {
	ref, ok := profileRef(c)
	if !ok {
		return
	}
	linkID, ok := uuidParam(c, "linkId")
	if !ok {
		return
	}

	if err := h.linkUseCase.Delete(c.Request.Context(), ref, linkID); err != nil {
		c.Error(err)
		return
	}
	c.Status(http.StatusNoContent)
}
