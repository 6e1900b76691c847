package handlers

import (
	"log"
	"net/http"

	request "pede_facil/internal/adapter/http/dto/request"
	response "pede_facil/internal/adapter/http/dto/response"
	"pede_facil/internal/usecase"

	"github.com/gin-gonic/gin"
)

// PaymentHandler handles charge submission and status reads.

type PaymentHandler struct {
	charges usecase.IChargeUseCase
	status  usecase.IStatusUseCase
}

func NewPaymentHandler(charges usecase.IChargeUseCase, status usecase.IStatusUseCase) *PaymentHandler {
	return &PaymentHandler{charges: charges, status: status}
}

// ChargeCard submits a one-shot card charge with a freshly minted token.
func (h *PaymentHandler) ChargeCard(c *gin.Context) {
	var payload request.CardChargeRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidPayload.HTTPStatus, errInvalidPayload.ToHTTPError())
		return
	}

	p, err := h.charges.ChargeNewCard(c.Request.Context(), payload.ToInput())
	if err != nil {
		log.Printf("[payment][handler] card charge failed err=%v", err)
		appErr := mapDomainError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[payment][handler] card charge success payment_id=%s status=%s", p.ID, p.Status)

	c.JSON(http.StatusOK, response.FromPayment(p))
}

// ChargePix creates a PIX charge and returns its QR payload.
func (h *PaymentHandler) ChargePix(c *gin.Context) {
	var payload request.PixChargeRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidPayload.HTTPStatus, errInvalidPayload.ToHTTPError())
		return
	}

	p, err := h.charges.ChargePix(c.Request.Context(), payload.ToInput())
	if err != nil {
		log.Printf("[payment][handler] pix charge failed err=%v", err)
		appErr := mapDomainError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[payment][handler] pix charge success payment_id=%s status=%s", p.ID, p.Status)

	c.JSON(http.StatusOK, response.FromPayment(p))
}

// ChargeSavedCard charges a card vaulted under a gateway customer.
func (h *PaymentHandler) ChargeSavedCard(c *gin.Context) {
	var payload request.SavedCardChargeRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidPayload.HTTPStatus, errInvalidPayload.ToHTTPError())
		return
	}

	p, err := h.charges.ChargeSavedCard(c.Request.Context(), payload.ToInput())
	if err != nil {
		log.Printf("[payment][handler] saved card charge failed customer_id=%s err=%v", payload.CustomerID, err)
		appErr := mapDomainError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[payment][handler] saved card charge success payment_id=%s status=%s", p.ID, p.Status)

	c.JSON(http.StatusOK, response.FromPayment(p))
}

// GetPayment re-resolves the current payment status from the gateway.
func (h *PaymentHandler) GetPayment(c *gin.Context) {
	paymentID := c.Param("payment_id")

	p, err := h.status.GetStatus(c.Request.Context(), paymentID)
	if err != nil {
		log.Printf("[payment][handler] status fetch failed payment_id=%s err=%v", paymentID, err)
		appErr := mapDomainError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromPayment(p))
}
