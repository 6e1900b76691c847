package interfaces

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// ErrGatewayUnavailable marks transient transport failures (network error,
// timeout). It is the only error category callers may reasonably retry;
// nothing in this service retries automatically.
var ErrGatewayUnavailable = errors.New("payment gateway unavailable")

// GatewayError is a non-2xx reply from the payment gateway, decoded from
// its error body. Raw keeps the original body for diagnostics.

type GatewayError struct {
	StatusCode int
	Message    string
	CauseCodes []int
	Raw        string
}

func (e *GatewayError) Error() string {
	return fmt.Sprintf("gateway error status=%d message=%q", e.StatusCode, e.Message)
}

func (e *GatewayError) HasCause(code int) bool {
	for _, c := range e.CauseCodes {
		if c == code {
			return true
		}
	}
	return false
}

// MentionsAny reports whether the upstream message or raw body contains any
// of the given substrings (case-insensitive). Upstream messages are the
// contract for several translations (invalid_token, bin_not_found, ...).
func (e *GatewayError) MentionsAny(substrs ...string) bool {
	msg := strings.ToLower(e.Message + " " + e.Raw)
	for _, s := range substrs {
		if strings.Contains(msg, strings.ToLower(s)) {
			return true
		}
	}
	return false
}

// NewCardTokenInput carries raw card data for single-use tokenization.
// Validated by the tokenizer before it ever reaches the gateway.

type NewCardTokenInput struct {
	Number     string
	ExpMonth   int
	ExpYear    int
	CVV        string
	HolderName string
}

type SavedCardTokenInput struct {
	CardExternalID string
	SecurityCode   string
}

// TokenResult is the opaque single-use token plus the card display
// attributes the gateway echoes back.

type TokenResult struct {
	Token    string
	First6   string
	Last4    string
	ExpMonth int
	ExpYear  int
}

type GatewayCustomer struct {
	ExternalID string
	Email      string
}

type CustomerPatch struct {
	Email     string
	FirstName string
	LastName  string
}

type GatewayCard struct {
	ExternalID         string
	CustomerExternalID string
	First6             string
	Last4              string
	ExpMonth           int
	ExpYear            int
	Brand              string
}

// ChargeItem is a line item under additional_info.

type ChargeItem struct {
	Title     string
	Quantity  int
	UnitPrice float64
}

// PayerAddress optionally enriches the payer block on a charge. Fields are
// pass-through; the gateway owns their validation.

type PayerAddress struct {
	ZipCode      string
	StreetName   string
	StreetNumber string
	Neighborhood string
	City         string
	FederalUnit  string
}

// ChargeSubmission is a complete, validated charge request. Each payment
// method builds its own variant; nothing mutates it after construction.

type ChargeSubmission struct {
	Amount          float64
	Description     string
	Token           string
	PaymentMethodID string
	Installments    int

	PayerType      string
	PayerID        string
	PayerEmail     string
	PayerFirstName string
	PayerLastName  string
	PayerCPF       string
	PayerAddress   *PayerAddress

	DateOfExpiration *time.Time
	Items            []ChargeItem
}

// ChargeResult is the normalized gateway reply for both charge submission
// and status reads.

type ChargeResult struct {
	PaymentID    string
	Status       string
	StatusDetail string
	Amount       float64

	QRCode           string
	QRCodeBase64     string
	TicketURL        string
	DateOfExpiration *time.Time
}

type RefundResult struct {
	RefundID  string
	PaymentID string
	Amount    float64
	Status    string
	Mode      string
	E2EID     string
}
