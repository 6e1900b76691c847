package entities

import "time"

// PaymentStatus mirrors the gateway's payment status. The set is open
// ended: unknown statuses round-trip as opaque strings and only
// PaymentStatusApproved gates refunds and webhook side effects.

type PaymentStatus string

const (
	PaymentStatusPending   PaymentStatus = "pending"
	PaymentStatusApproved  PaymentStatus = "approved"
	PaymentStatusRejected  PaymentStatus = "rejected"
	PaymentStatusInProcess PaymentStatus = "in_process"
	PaymentStatusCancelled PaymentStatus = "cancelled"
	PaymentStatusRefunded  PaymentStatus = "refunded"
)

type PaymentMethod string

const (
	PaymentMethodPix  PaymentMethod = "pix"
	PaymentMethodCard PaymentMethod = "card"
)

// PixDetails is the QR payload returned only for PIX charges.

type PixDetails struct {
	QRCode       string     `json:"qr_code"`
	QRCodeBase64 string     `json:"qr_code_base64"`
	TicketURL    string     `json:"ticket_url"`
	ExpiresAt    *time.Time `json:"expires_at,omitempty"`
}

// Payment is the normalized charge result. Status is externally owned by
// the gateway: it is written locally only at creation and afterwards only
// ever refreshed by re-fetching, never mutated.

type Payment struct {
	ID             string        `json:"id"`
	Status         PaymentStatus `json:"status"`
	StatusDetail   string        `json:"status_detail"`
	Amount         float64       `json:"amount"`
	Method         PaymentMethod `json:"method"`
	IdempotencyKey string        `json:"idempotency_key,omitempty"`

	Pix *PixDetails `json:"pix,omitempty"`
}
