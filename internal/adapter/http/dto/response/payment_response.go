package response

import (
	"time"

	"pede_facil/internal/domain/entities"
)

type PixResponse struct {
	QRCode       string     `json:"qr_code"`
	QRCodeBase64 string     `json:"qr_code_base64"`
	TicketURL    string     `json:"ticket_url"`
	ExpiresAt    *time.Time `json:"expires_at,omitempty"`
}

type PaymentResponse struct {
	PaymentID      string  `json:"payment_id"`
	Status         string  `json:"status"`
	StatusDetail   string  `json:"status_detail"`
	Amount         float64 `json:"amount"`
	Method         string  `json:"method"`
	IdempotencyKey string  `json:"idempotency_key,omitempty"`

	Pix *PixResponse `json:"pix,omitempty"`
}

func FromPayment(p entities.Payment) PaymentResponse {
	resp := PaymentResponse{
		PaymentID:      p.ID,
		Status:         string(p.Status),
		StatusDetail:   p.StatusDetail,
		Amount:         p.Amount,
		Method:         string(p.Method),
		IdempotencyKey: p.IdempotencyKey,
	}
	if p.Pix != nil {
		resp.Pix = &PixResponse{
			QRCode:       p.Pix.QRCode,
			QRCodeBase64: p.Pix.QRCodeBase64,
			TicketURL:    p.Pix.TicketURL,
			ExpiresAt:    p.Pix.ExpiresAt,
		}
	}
	return resp
}
