package request

// RefundRequest refunds a payment. A nil Amount requests a full refund.
type RefundRequest struct {
	Amount *float64 `json:"amount"`
}
