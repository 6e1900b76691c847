package usecase

import (
	"context"
	"log"
	"strings"

	"pede_facil/internal/domain/entities"
	"pede_facil/internal/usecase/interfaces"
)

// WebhookNotification is the inbound gateway event. It carries no
// trustworthy status payload of its own, only a payment id to re-resolve.

type WebhookNotification struct {
	Type      string
	PaymentID string
}

// IStatusUseCase resolves current payment status. The gateway is the single
// source of truth: status transitions happen asynchronously upstream, so
// callers must re-query instead of trusting any cached value. Webhook
// delivery and a client's own poll can race; both converge here because
// every path re-fetches.

type IStatusUseCase interface {
	GetStatus(ctx context.Context, paymentID string) (entities.Payment, error)
	HandleNotification(ctx context.Context, n WebhookNotification) error
}

type StatusUseCase struct {
	gateway  interfaces.IChargeGateway
	listener interfaces.IPaymentListener
}

var _ IStatusUseCase = (*StatusUseCase)(nil)

func NewStatusUseCase(gateway interfaces.IChargeGateway, listener interfaces.IPaymentListener) *StatusUseCase {
	return &StatusUseCase{gateway: gateway, listener: listener}
}

func (u *StatusUseCase) GetStatus(ctx context.Context, paymentID string) (entities.Payment, error) {
	paymentID = strings.TrimSpace(paymentID)
	if paymentID == "" {
		return entities.Payment{}, entities.NewValidationError("payment id is required")
	}

	res, err := u.gateway.GetPayment(ctx, paymentID)
	if err != nil {
		if isGatewayNotFound(err) {
			return entities.Payment{}, ErrPaymentNotFound
		}
		if isGatewayUnauthorized(err) {
			return entities.Payment{}, ErrGatewayUnauthorized
		}
		return entities.Payment{}, err
	}

	p := entities.Payment{
		ID:           res.PaymentID,
		Status:       entities.PaymentStatus(res.Status),
		StatusDetail: res.StatusDetail,
		Amount:       res.Amount,
	}
	if res.QRCode != "" || res.QRCodeBase64 != "" {
		p.Method = entities.PaymentMethodPix
		p.Pix = &entities.PixDetails{
			QRCode:       res.QRCode,
			QRCodeBase64: res.QRCodeBase64,
			TicketURL:    res.TicketURL,
			ExpiresAt:    res.DateOfExpiration,
		}
	} else {
		p.Method = entities.PaymentMethodCard
	}
	return p, nil
}

// HandleNotification processes a gateway webhook. The status is always
// re-fetched; only an approved payment triggers the downstream side effect,
// anything else is logged and acknowledged as a no-op.
func (u *StatusUseCase) HandleNotification(ctx context.Context, n WebhookNotification) error {
	if n.Type != "payment" {
		log.Printf("[status][usecase] ignoring notification type=%s", n.Type)
		return nil
	}

	p, err := u.GetStatus(ctx, n.PaymentID)
	if err != nil {
		log.Printf("[status][usecase] webhook status fetch failed payment_id=%s err=%v", n.PaymentID, err)
		return err
	}

	if p.Status != entities.PaymentStatusApproved {
		log.Printf("[status][usecase] webhook no-op payment_id=%s status=%s", p.ID, p.Status)
		return nil
	}

	log.Printf("[status][usecase] payment approved payment_id=%s detail=%s", p.ID, p.StatusDetail)
	if u.listener != nil {
		if err := u.listener.PaymentApproved(ctx, p); err != nil {
			// The webhook must still be acknowledged; the gateway retries
			// on non-2xx and the listener failure is not the gateway's
			// problem.
			log.Printf("[status][usecase] listener failed payment_id=%s err=%v", p.ID, err)
		}
	}
	return nil
}
