package payments

import (
	"encoding/json"
	"time"

	"pede_facil/internal/usecase/interfaces"
)

// Wire-level payloads for the Mercado Pago REST API. Kept private: the rest
// of the service speaks the port types in usecase/interfaces.

// expirationLayout is the timestamp format the payments API expects for
// date_of_expiration.
const expirationLayout = "2006-01-02T15:04:05.000-07:00"

type cardholderPayload struct {
	Name string `json:"name"`
}

type cardTokenRequest struct {
	CardNumber      string             `json:"card_number,omitempty"`
	ExpirationMonth int                `json:"expiration_month,omitempty"`
	ExpirationYear  int                `json:"expiration_year,omitempty"`
	SecurityCode    string             `json:"security_code,omitempty"`
	Cardholder      *cardholderPayload `json:"cardholder,omitempty"`

	// Saved-card variant: card_id + security_code only.
	CardID string `json:"card_id,omitempty"`
}

type cardTokenResponse struct {
	ID              string `json:"id"`
	FirstSixDigits  string `json:"first_six_digits"`
	LastFourDigits  string `json:"last_four_digits"`
	ExpirationMonth int    `json:"expiration_month"`
	ExpirationYear  int    `json:"expiration_year"`
}

func (r cardTokenResponse) toPort() interfaces.TokenResult {
	return interfaces.TokenResult{
		Token:    r.ID,
		First6:   r.FirstSixDigits,
		Last4:    r.LastFourDigits,
		ExpMonth: r.ExpirationMonth,
		ExpYear:  r.ExpirationYear,
	}
}

type customerRequest struct {
	Email     string `json:"email,omitempty"`
	FirstName string `json:"first_name,omitempty"`
	LastName  string `json:"last_name,omitempty"`
}

type customerResponse struct {
	ID    string `json:"id"`
	Email string `json:"email"`
}

func (r customerResponse) toPort() interfaces.GatewayCustomer {
	return interfaces.GatewayCustomer{ExternalID: r.ID, Email: r.Email}
}

type customerSearchResponse struct {
	Results []customerResponse `json:"results"`
}

type customerCardRequest struct {
	Token string `json:"token"`
}

type customerCardResponse struct {
	ID              string `json:"id"`
	CustomerID      string `json:"customer_id"`
	FirstSixDigits  string `json:"first_six_digits"`
	LastFourDigits  string `json:"last_four_digits"`
	ExpirationMonth int    `json:"expiration_month"`
	ExpirationYear  int    `json:"expiration_year"`
	PaymentMethod   struct {
		ID string `json:"id"`
	} `json:"payment_method"`
}

func (r customerCardResponse) toPort() interfaces.GatewayCard {
	return interfaces.GatewayCard{
		ExternalID:         r.ID,
		CustomerExternalID: r.CustomerID,
		First6:             r.FirstSixDigits,
		Last4:              r.LastFourDigits,
		ExpMonth:           r.ExpirationMonth,
		ExpYear:            r.ExpirationYear,
		Brand:              r.PaymentMethod.ID,
	}
}

type payerIdentification struct {
	Type   string `json:"type"`
	Number string `json:"number"`
}

type payerAddress struct {
	ZipCode      string `json:"zip_code,omitempty"`
	StreetName   string `json:"street_name,omitempty"`
	StreetNumber string `json:"street_number,omitempty"`
	Neighborhood string `json:"neighborhood,omitempty"`
	City         string `json:"city,omitempty"`
	FederalUnit  string `json:"federal_unit,omitempty"`
}

type paymentPayer struct {
	Type           string               `json:"type,omitempty"`
	ID             string               `json:"id,omitempty"`
	Email          string               `json:"email,omitempty"`
	FirstName      string               `json:"first_name,omitempty"`
	LastName       string               `json:"last_name,omitempty"`
	Identification *payerIdentification `json:"identification,omitempty"`
	Address        *payerAddress        `json:"address,omitempty"`
}

type paymentItem struct {
	Title     string  `json:"title"`
	Quantity  int     `json:"quantity"`
	UnitPrice float64 `json:"unit_price"`
}

type additionalInfo struct {
	Items []paymentItem `json:"items,omitempty"`
}

type paymentRequest struct {
	TransactionAmount float64         `json:"transaction_amount"`
	Description       string          `json:"description,omitempty"`
	Token             string          `json:"token,omitempty"`
	Installments      int             `json:"installments,omitempty"`
	PaymentMethodID   string          `json:"payment_method_id,omitempty"`
	DateOfExpiration  string          `json:"date_of_expiration,omitempty"`
	Payer             *paymentPayer   `json:"payer,omitempty"`
	AdditionalInfo    *additionalInfo `json:"additional_info,omitempty"`
}

func buildPaymentRequest(sub interfaces.ChargeSubmission) paymentRequest {
	req := paymentRequest{
		TransactionAmount: sub.Amount,
		Description:       sub.Description,
		Token:             sub.Token,
		Installments:      sub.Installments,
		PaymentMethodID:   sub.PaymentMethodID,
	}
	if sub.DateOfExpiration != nil {
		req.DateOfExpiration = sub.DateOfExpiration.Format(expirationLayout)
	}

	payer := paymentPayer{
		Type:      sub.PayerType,
		ID:        sub.PayerID,
		Email:     sub.PayerEmail,
		FirstName: sub.PayerFirstName,
		LastName:  sub.PayerLastName,
	}
	if sub.PayerCPF != "" {
		payer.Identification = &payerIdentification{Type: "CPF", Number: sub.PayerCPF}
	}
	if sub.PayerAddress != nil {
		payer.Address = &payerAddress{
			ZipCode:      sub.PayerAddress.ZipCode,
			StreetName:   sub.PayerAddress.StreetName,
			StreetNumber: sub.PayerAddress.StreetNumber,
			Neighborhood: sub.PayerAddress.Neighborhood,
			City:         sub.PayerAddress.City,
			FederalUnit:  sub.PayerAddress.FederalUnit,
		}
	}
	if payer != (paymentPayer{}) {
		req.Payer = &payer
	}

	if len(sub.Items) > 0 {
		info := &additionalInfo{}
		for _, it := range sub.Items {
			info.Items = append(info.Items, paymentItem{Title: it.Title, Quantity: it.Quantity, UnitPrice: it.UnitPrice})
		}
		req.AdditionalInfo = info
	}
	return req
}

type paymentResponse struct {
	ID                 json.Number `json:"id"`
	Status             string      `json:"status"`
	StatusDetail       string      `json:"status_detail"`
	TransactionAmount  float64     `json:"transaction_amount"`
	DateOfExpiration   string      `json:"date_of_expiration"`
	PointOfInteraction struct {
		TransactionData struct {
			QRCode       string `json:"qr_code"`
			QRCodeBase64 string `json:"qr_code_base64"`
			TicketURL    string `json:"ticket_url"`
		} `json:"transaction_data"`
	} `json:"point_of_interaction"`
}

func (r paymentResponse) toPort() interfaces.ChargeResult {
	res := interfaces.ChargeResult{
		PaymentID:    r.ID.String(),
		Status:       r.Status,
		StatusDetail: r.StatusDetail,
		Amount:       r.TransactionAmount,
		QRCode:       r.PointOfInteraction.TransactionData.QRCode,
		QRCodeBase64: r.PointOfInteraction.TransactionData.QRCodeBase64,
		TicketURL:    r.PointOfInteraction.TransactionData.TicketURL,
	}
	if r.DateOfExpiration != "" {
		if exp, err := time.Parse(expirationLayout, r.DateOfExpiration); err == nil {
			res.DateOfExpiration = &exp
		}
	}
	return res
}

type refundRequest struct {
	Amount *float64 `json:"amount,omitempty"`
}

type refundResponse struct {
	ID         json.Number `json:"id"`
	PaymentID  json.Number `json:"payment_id"`
	Amount     float64     `json:"amount"`
	Status     string      `json:"status"`
	RefundMode string      `json:"refund_mode"`
	E2EID      string      `json:"e2e_id"`
}

func (r refundResponse) toPort() interfaces.RefundResult {
	return interfaces.RefundResult{
		RefundID:  r.ID.String(),
		PaymentID: r.PaymentID.String(),
		Amount:    r.Amount,
		Status:    r.Status,
		Mode:      r.RefundMode,
		E2EID:     r.E2EID,
	}
}

// apiErrorBody is the gateway's error envelope. Cause codes arrive either
// as numbers or strings depending on the endpoint.
type apiErrorBody struct {
	Message string `json:"message"`
	Error   string `json:"error"`
	Status  int    `json:"status"`
	Cause   []struct {
		Code        json.Number `json:"code"`
		Description string      `json:"description"`
	} `json:"cause"`
}
