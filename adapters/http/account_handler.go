package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/khoahotran/cardlink/internal/application/usecase/accounts"
	"github.com/khoahotran/cardlink/internal/application/usecase/card"
	"github.com/khoahotran/cardlink/internal/application/usecase/customlinktype"
	"github.com/khoahotran/cardlink/pkg/apperror"
)

type AccountHandler struct {
	getAccountUseCase      *accounts.GetAccountUseCase
	registerAccountUseCase *accounts.RegisterAccountUseCase
	updateAccountUseCase   *accounts.UpdateAccountUseCase
	cardUseCase            *card.CardUseCase
	linkTypeUseCase        *customlinktype.CustomLinkTypeUseCase
}

func NewAccountHandler(
	getUC *accounts.GetAccountUseCase,
	registerUC *accounts.RegisterAccountUseCase,
	updateUC *accounts.UpdateAccountUseCase,
	cardUC *card.CardUseCase,
	linkTypeUC *customlinktype.CustomLinkTypeUseCase,
) *AccountHandler {
	return &AccountHandler{
		getAccountUseCase:      getUC,
		registerAccountUseCase: registerUC,
		updateAccountUseCase:   updateUC,
		cardUseCase:            cardUC,
		linkTypeUseCase:        linkTypeUC,
	}
}

func (h *AccountHandler) RegisterAccount(c *gin.Context) {
	var req RegisterAccountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.NewInvalidInput("invalid account request", err))
		return
	}
	a, err := h.registerAccountUseCase.Execute(c.Request.Context(), req.ToInput())
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusCreated, ToAccountDTO(a))
}

func (h *AccountHandler) UpdateAccount(c *gin.Context) {
	accountID, ok := uuidParam(c, "accountId")
	if !ok {
		return
	}
	var req UpdateAccountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.NewInvalidInput("invalid account request", err))
		return
	}
	a, err := h.updateAccountUseCase.Execute(c.Request.Context(), req.ToInput(accountID))
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, ToAccountDTO(a))
}

func (h *AccountHandler) GetAccount(c *gin.Context) {
	accountID, ok := uuidParam(c, "accountId")
	if !ok {
		return
	}
	a, err := h.getAccountUseCase.Execute(c.Request.Context(), accountID)
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, ToAccountDTO(a))
}

func (h *AccountHandler) UpdateCard(c *gin.Context) {
	accountID, ok := uuidParam(c, "accountId")
	if !ok {
		return
	}
	cardID, ok := uuidParam(c, "cardId")
	if !ok {
		return
	}
	var req UpdateCardRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.NewInvalidInput("invalid card request", err))
		return
	}
	updated, err := h.cardUseCase.Update(c.Request.Context(), req.ToInput(accountID, cardID))
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, ToCardDTO(updated))
}

func (h *AccountHandler) CreateCustomLinkType(c *gin.Context) {
	accountID, ok := uuidParam(c, "accountId")
	if !ok {
		return
	}
	var req CustomLinkTypeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.NewInvalidInput("invalid custom link type request", err))
		return
	}
	t, err := h.linkTypeUseCase.Create(c.Request.Context(), accountID, req.Name)
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusCreated, t)
}

func (h *AccountHandler) UpdateCustomLinkType(c *gin.Context) {
	accountID, ok := uuidParam(c, "accountId")
	if !ok {
		return
	}
	typeID, ok := uuidParam(c, "typeId")
	if !ok {
		return
	}
	var req CustomLinkTypeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.NewInvalidInput("invalid custom link type request", err))
		return
	}
	t, err := h.linkTypeUseCase.Update(c.Request.Context(), accountID, typeID, req.Name)
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, t)
}

func (h *AccountHandler) DeleteCustomLinkType(c *gin.Context) {
	accountID, ok := uuidParam(c, "accountId")
	if !ok {
		return
	}
	typeID, ok := uuidParam(c, "typeId")
	if !ok {
		return
	}
	if err := h.linkTypeUseCase.Delete(c.Request.Context(), accountID, typeID); err != nil {
		c.Error(err)
		return
	}
	c.Status(http.StatusNoContent)
}
