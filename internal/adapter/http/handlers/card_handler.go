package handlers

import (
	"log"
	"net/http"

	request "pede_facil/internal/adapter/http/dto/request"
	response "pede_facil/internal/adapter/http/dto/response"
	"pede_facil/internal/usecase"

	"github.com/gin-gonic/gin"
)

// CardHandler handles tokenization and the per-customer card vault.

type CardHandler struct {
	tokenizer usecase.ITokenizerUseCase
	vault     usecase.ICardVaultUseCase
}

func NewCardHandler(tokenizer usecase.ITokenizerUseCase, vault usecase.ICardVaultUseCase) *CardHandler {
	return &CardHandler{tokenizer: tokenizer, vault: vault}
}

// TokenizeCard exchanges raw card data for a single-use token.
func (h *CardHandler) TokenizeCard(c *gin.Context) {
	var payload request.TokenizeCardRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidPayload.HTTPStatus, errInvalidPayload.ToHTTPError())
		return
	}

	result, err := h.tokenizer.TokenizeNewCard(c.Request.Context(), payload.ToInput())
	if err != nil {
		log.Printf("[card][handler] tokenization failed err=%v", err)
		appErr := mapDomainError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.TokenResponse{
		Token:    result.Token,
		First6:   result.First6,
		Last4:    result.Last4,
		ExpMonth: result.ExpMonth,
		ExpYear:  result.ExpYear,
	})
}

// AddCard vaults a tokenized card under the customer.
func (h *CardHandler) AddCard(c *gin.Context) {
	customerID := c.Param("customer_id")

	var payload request.AddCardRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidPayload.HTTPStatus, errInvalidPayload.ToHTTPError())
		return
	}

	card, err := h.vault.AddCard(c.Request.Context(), customerID, payload.Token)
	if err != nil {
		log.Printf("[card][handler] add card failed customer_id=%s err=%v", customerID, err)
		appErr := mapDomainError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[card][handler] card added customer_id=%s card_id=%s default=%t", customerID, card.ExternalID, card.IsDefault)

	c.JSON(http.StatusCreated, response.FromCard(card))
}

// ListCards returns the customer's vaulted cards.
func (h *CardHandler) ListCards(c *gin.Context) {
	customerID := c.Param("customer_id")

	cards, err := h.vault.ListCards(c.Request.Context(), customerID)
	if err != nil {
		log.Printf("[card][handler] list cards failed customer_id=%s err=%v", customerID, err)
		appErr := mapDomainError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromCards(cards))
}

// RemoveCard deletes a vaulted card.
func (h *CardHandler) RemoveCard(c *gin.Context) {
	customerID := c.Param("customer_id")
	cardID := c.Param("card_id")

	if err := h.vault.RemoveCard(c.Request.Context(), customerID, cardID); err != nil {
		log.Printf("[card][handler] remove card failed customer_id=%s card_id=%s err=%v", customerID, cardID, err)
		appErr := mapDomainError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[card][handler] card removed customer_id=%s card_id=%s", customerID, cardID)

	c.Status(http.StatusNoContent)
}
