package interfaces

import "context"

// Gateway ports. The Mercado Pago REST client implements all of them; each
// usecase depends only on the slice it needs. Every method returns either a
// *GatewayError (non-2xx), an ErrGatewayUnavailable wrap (transport), or nil.

// ICardTokenGateway turns card data into a one-time token.
//
// The tokenization endpoint is keyed by the public key credential, not the
// server access token, by gateway design.
type ICardTokenGateway interface {
	CreateCardToken(ctx context.Context, in NewCardTokenInput) (TokenResult, error)
	CreateSavedCardToken(ctx context.Context, in SavedCardTokenInput) (TokenResult, error)
}

// ICustomerGateway manages the gateway-side customer records.
//
// SearchCustomerByEmail returns a zero-value GatewayCustomer (empty
// ExternalID) and nil error when no customer matches.
type ICustomerGateway interface {
	CreateCustomer(ctx context.Context, email string) (GatewayCustomer, error)
	SearchCustomerByEmail(ctx context.Context, email string) (GatewayCustomer, error)
	GetCustomer(ctx context.Context, externalID string) (GatewayCustomer, error)
	UpdateCustomer(ctx context.Context, externalID string, patch CustomerPatch) (GatewayCustomer, error)
}

// ICardGateway manages tokenized cards vaulted under a customer.
type ICardGateway interface {
	AddCard(ctx context.Context, customerExternalID, token string) (GatewayCard, error)
	ListCards(ctx context.Context, customerExternalID string) ([]GatewayCard, error)
	DeleteCard(ctx context.Context, customerExternalID, cardExternalID string) error
}

// IChargeGateway submits charges and reads payment status.
type IChargeGateway interface {
	CreateCharge(ctx context.Context, sub ChargeSubmission, idempotencyKey string) (ChargeResult, error)
	GetPayment(ctx context.Context, paymentID string) (ChargeResult, error)
}

// IRefundGateway executes full (amount==nil) or partial refunds.
type IRefundGateway interface {
	CreateRefund(ctx context.Context, paymentID string, amount *float64, idempotencyKey string) (RefundResult, error)
}
