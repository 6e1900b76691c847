package response

import "pede_facil/internal/domain/entities"

type RefundResponse struct {
	RefundID  string  `json:"refund_id"`
	PaymentID string  `json:"payment_id"`
	Amount    float64 `json:"amount"`
	Status    string  `json:"status"`
	Mode      string  `json:"mode,omitempty"`
	E2EID     string  `json:"e2e_id,omitempty"`
}

func FromRefund(r entities.Refund) RefundResponse {
	return RefundResponse{
		RefundID:  r.ID,
		PaymentID: r.PaymentID,
		Amount:    r.Amount,
		Status:    r.Status,
		Mode:      r.Mode,
		E2EID:     r.E2EID,
	}
}
