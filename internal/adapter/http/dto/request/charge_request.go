package request

import (
	"pede_facil/internal/usecase"
	"pede_facil/internal/usecase/interfaces"
)

// One request type per payment method. Each binds and converts into a
// complete usecase input; nothing mutates a generic payload afterwards.

// CardChargeRequest charges a freshly tokenized card.
type CardChargeRequest struct {
	Amount          float64 `json:"amount" binding:"required"`
	Description     string  `json:"description" binding:"required"`
	PayerEmail      string  `json:"payer_email" binding:"required"`
	Token           string  `json:"token" binding:"required"`
	PaymentMethodID string  `json:"payment_method_id" binding:"required"`
	Installments    int     `json:"installments" binding:"required"`

	// Optional: pass-through key so a caller retrying the same logical
	// charge can pin deduplication at the gateway.
	IdempotencyKey string `json:"idempotency_key"`
}

func (r CardChargeRequest) ToInput() usecase.NewCardChargeInput {
	return usecase.NewCardChargeInput{
		Amount:          r.Amount,
		Description:     r.Description,
		PayerEmail:      r.PayerEmail,
		Token:           r.Token,
		PaymentMethodID: r.PaymentMethodID,
		Installments:    r.Installments,
		IdempotencyKey:  r.IdempotencyKey,
	}
}

// PayerAddressRequest is the optional address block enriching the PIX
// payer object.
type PayerAddressRequest struct {
	ZipCode      string `json:"zip_code"`
	StreetName   string `json:"street_name"`
	StreetNumber string `json:"street_number"`
	Neighborhood string `json:"neighborhood"`
	City         string `json:"city"`
	FederalUnit  string `json:"federal_unit"`
}

// PixChargeRequest creates a PIX charge with a 10-minute QR expiration.
type PixChargeRequest struct {
	Amount         float64              `json:"amount" binding:"required"`
	Description    string               `json:"description" binding:"required"`
	PayerEmail     string               `json:"payer_email" binding:"required"`
	PayerFirstName string               `json:"payer_first_name"`
	PayerLastName  string               `json:"payer_last_name"`
	PayerCPF       string               `json:"payer_cpf"`
	PayerAddress   *PayerAddressRequest `json:"payer_address"`
	IdempotencyKey string               `json:"idempotency_key"`
}

func (r PixChargeRequest) ToInput() usecase.PixChargeInput {
	in := usecase.PixChargeInput{
		Amount:         r.Amount,
		Description:    r.Description,
		PayerEmail:     r.PayerEmail,
		PayerFirstName: r.PayerFirstName,
		PayerLastName:  r.PayerLastName,
		PayerCPF:       r.PayerCPF,
		IdempotencyKey: r.IdempotencyKey,
	}
	if r.PayerAddress != nil {
		in.PayerAddress = &interfaces.PayerAddress{
			ZipCode:      r.PayerAddress.ZipCode,
			StreetName:   r.PayerAddress.StreetName,
			StreetNumber: r.PayerAddress.StreetNumber,
			Neighborhood: r.PayerAddress.Neighborhood,
			City:         r.PayerAddress.City,
			FederalUnit:  r.PayerAddress.FederalUnit,
		}
	}
	return in
}

// SavedCardChargeRequest charges a vaulted card; the card is re-tokenized
// with the provided security code before submission.
type SavedCardChargeRequest struct {
	Amount         float64 `json:"amount" binding:"required"`
	Description    string  `json:"description"`
	CustomerID     string  `json:"customer_id" binding:"required"`
	CardID         string  `json:"card_id" binding:"required"`
	SecurityCode   string  `json:"security_code" binding:"required"`
	IdempotencyKey string  `json:"idempotency_key"`
}

func (r SavedCardChargeRequest) ToInput() usecase.SavedCardChargeInput {
	return usecase.SavedCardChargeInput{
		Amount:             r.Amount,
		Description:        r.Description,
		CustomerExternalID: r.CustomerID,
		CardExternalID:     r.CardID,
		SecurityCode:       r.SecurityCode,
		IdempotencyKey:     r.IdempotencyKey,
	}
}
