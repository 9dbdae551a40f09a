package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/khoahotran/cardlink/internal/application/usecase/vcard"
	"github.com/khoahotran/cardlink/pkg/apperror"
)

type VCardHandler struct {
	vcardUseCase *vcard.VCardUseCase
}

func NewVCardHandler(uc *vcard.VCardUseCase) *VCardHandler {
	return &VCardHandler{vcardUseCase: uc}
}

func (h *VCardHandler) CreateVCard(c *gin.Context) {
	ref, ok := profileRef(c)
	if !ok {
		return
	}
	var req VCardRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.NewInvalidInput("invalid v-card request", err))
		return
	}
	v, err := h.vcardUseCase.Create(c.Request.Context(), ref, req.ToInput())
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusCreated, v)
}

func (h *VCardHandler) UpdateVCard(c *gin.Context) {
	ref, ok := profileRef(c)
	if !ok {
		return
	}
	id, ok := uuidParam(c, "vCardId")
	if !ok {
		return
	}
	var req VCardRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.NewInvalidInput("invalid v-card request", err))
		return
	}
	v, err := h.vcardUseCase.Update(c.Request.Context(), ref, id, req.ToInput())
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, v)
}

func (h *VCardHandler) DeleteVCard(c *gin.Context) {
	ref, ok := profileRef(c)
	if !ok {
		return
	}
	id, ok := uuidParam(c, "vCardId")
	if !ok {
		return
	}
	if err := h.vcardUseCase.Delete(c.Request.Context(), ref, id); err != nil {
		c.Error(err)
		return
	}
	c.Status(http.StatusNoContent)
}
