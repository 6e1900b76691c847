package handlers

import (
	"log"
	"net/http"

	request "pede_facil/internal/adapter/http/dto/request"
	"pede_facil/internal/usecase"

	"github.com/gin-gonic/gin"
)

// WebhookHandler receives gateway notifications. The gateway retries on
// non-2xx, so processing failures are logged and still answered 200.

type WebhookHandler struct {
	status usecase.IStatusUseCase
}

func NewWebhookHandler(status usecase.IStatusUseCase) *WebhookHandler {
	return &WebhookHandler{status: status}
}

// Receive handles a payment notification by re-resolving the payment at
// the gateway. The notification body is never trusted for status.
func (h *WebhookHandler) Receive(c *gin.Context) {
	var payload request.WebhookRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidPayload.HTTPStatus, errInvalidPayload.ToHTTPError())
		return
	}

	n := usecase.WebhookNotification{Type: payload.Type, PaymentID: payload.Data.ID}
	if err := h.status.HandleNotification(c.Request.Context(), n); err != nil {
		log.Printf("[webhook][handler] notification processing failed payment_id=%s err=%v", payload.Data.ID, err)
	}

	c.Status(http.StatusOK)
}
