package handlers

import (
	"errors"
	"io"
	"log"
	"net/http"

	request "pede_facil/internal/adapter/http/dto/request"
	response "pede_facil/internal/adapter/http/dto/response"
	"pede_facil/internal/usecase"

	"github.com/gin-gonic/gin"
)

// RefundHandler handles full and partial refunds.

type RefundHandler struct {
	refunds usecase.IRefundUseCase
}

func NewRefundHandler(refunds usecase.IRefundUseCase) *RefundHandler {
	return &RefundHandler{refunds: refunds}
}

// CreateRefund refunds a payment. An absent amount means a full refund.
func (h *RefundHandler) CreateRefund(c *gin.Context) {
	paymentID := c.Param("payment_id")

	// A bodyless POST is the natural "refund everything" request, so EOF
	// binds to an empty payload instead of failing.
	var payload request.RefundRequest
	if err := c.ShouldBindJSON(&payload); err != nil && !errors.Is(err, io.EOF) {
		c.JSON(errInvalidPayload.HTTPStatus, errInvalidPayload.ToHTTPError())
		return
	}

	refund, err := h.refunds.Refund(c.Request.Context(), paymentID, payload.Amount)
	if err != nil {
		log.Printf("[refund][handler] refund failed payment_id=%s err=%v", paymentID, err)
		appErr := mapDomainError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[refund][handler] refund created payment_id=%s refund_id=%s mode=%s", paymentID, refund.ID, refund.Mode)

	c.JSON(http.StatusCreated, response.FromRefund(refund))
}
