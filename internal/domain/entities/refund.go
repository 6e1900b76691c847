package entities

// Refund is created only against a Payment whose status is approved.
// Amount carries the refunded value; for a full refund the gateway echoes
// the original payment amount back.

type Refund struct {
	ID        string  `json:"id"`
	PaymentID string  `json:"payment_id"`
	Amount    float64 `json:"amount"`
	Status    string  `json:"status"`
	Mode      string  `json:"mode,omitempty"`

	// E2EID is set for PIX refunds only (bank end-to-end identifier).
	E2EID string `json:"e2e_id,omitempty"`
}
