package usecase

import (
	"context"
	"fmt"
	"log"
	"strings"

	"pede_facil/internal/domain/entities"
	"pede_facil/internal/usecase/interfaces"
)

// refundErrorMessages is the contract table mapping upstream numeric cause
// codes to domain messages. It is exercised by tests; extending it is an
// API change, not logging cleanup.
var refundErrorMessages = map[int]string{
	2000: "payment not found",
	2024: "payment too old to be refunded",
	2063: "payment state does not allow refunds",
	2085: "invalid refund amount",
	2092: "partial refunds are not supported for this payment",
	4040: "refund not found",
}

// IRefundUseCase validates eligibility and executes full or partial
// refunds.

type IRefundUseCase interface {
	Refund(ctx context.Context, paymentID string, amount *float64) (entities.Refund, error)
}

type RefundUseCase struct {
	status  IStatusUseCase
	gateway interfaces.IRefundGateway
}

var _ IRefundUseCase = (*RefundUseCase)(nil)

func NewRefundUseCase(status IStatusUseCase, gateway interfaces.IRefundGateway) *RefundUseCase {
	return &RefundUseCase{status: status, gateway: gateway}
}

// Refund refunds a payment. A nil amount means full refund; a present
// amount must be positive. Eligibility is re-checked against the gateway
// immediately before acting: only a payment whose current status is exactly
// approved can be refunded.
func (u *RefundUseCase) Refund(ctx context.Context, paymentID string, amount *float64) (entities.Refund, error) {
	paymentID = strings.TrimSpace(paymentID)
	if paymentID == "" {
		return entities.Refund{}, entities.NewValidationError("payment id is required")
	}
	if amount != nil && *amount <= 0 {
		return entities.Refund{}, entities.NewValidationError("refund amount must be greater than zero")
	}

	p, err := u.status.GetStatus(ctx, paymentID)
	if err != nil {
		return entities.Refund{}, err
	}
	if p.Status != entities.PaymentStatusApproved {
		log.Printf("[refund][usecase] not allowed payment_id=%s status=%s", paymentID, p.Status)
		return entities.Refund{}, ErrRefundNotAllowed
	}

	key := NewIdempotencyKey("refund-" + paymentID)
	log.Printf("[refund][usecase] refund start payment_id=%s full=%t idempotency_key=%s", paymentID, amount == nil, key)

	res, err := u.gateway.CreateRefund(ctx, paymentID, amount, key)
	if err != nil {
		log.Printf("[refund][usecase] refund failed payment_id=%s err=%v", paymentID, err)
		return entities.Refund{}, translateRefundError(err)
	}

	refund := entities.Refund{
		ID:        res.RefundID,
		PaymentID: paymentID,
		Amount:    res.Amount,
		Status:    res.Status,
		Mode:      res.Mode,
		E2EID:     res.E2EID,
	}
	log.Printf("[refund][usecase] refund success payment_id=%s refund_id=%s status=%s", paymentID, refund.ID, refund.Status)
	return refund, nil
}

func translateRefundError(err error) error {
	if isGatewayUnauthorized(err) {
		return ErrGatewayUnauthorized
	}
	gwErr, ok := asGatewayError(err)
	if !ok {
		return err
	}
	if gwErr.StatusCode == 404 || gwErr.HasCause(2000) {
		return ErrPaymentNotFound
	}
	if gwErr.HasCause(4040) {
		return ErrRefundNotFound
	}
	for code, message := range refundErrorMessages {
		if gwErr.HasCause(code) {
			return fmt.Errorf("%w: %s", ErrRefund, message)
		}
	}
	return fmt.Errorf("%w: %s", ErrRefund, gwErr.Message)
}
