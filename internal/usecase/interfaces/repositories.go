package interfaces

import (
	"context"

	"pede_facil/internal/domain/entities"
)

// ICustomerRepository persists the local email -> gateway customer mapping.
//
// Lookups return a zero-value entity and nil error when nothing is found,
// mirroring the DynamoDB repository behavior.
type ICustomerRepository interface {
	Save(ctx context.Context, c entities.Customer) (entities.Customer, error)
	GetByEmail(ctx context.Context, email string) (entities.Customer, error)
}

// ICardRepository keeps the local card bookkeeping that backs the
// default-card invariant. Save is an upsert (including the IsDefault flag).
type ICardRepository interface {
	Save(ctx context.Context, c entities.Card) (entities.Card, error)
	GetByExternalID(ctx context.Context, externalID string) (entities.Card, error)
	ListByCustomer(ctx context.Context, customerExternalID string) ([]entities.Card, error)
	Delete(ctx context.Context, externalID string) error
}

// IPaymentListener receives the approved-payment side effect resolved by
// webhook handling. Implemented by the notification registry; the order
// domain reacting to it is outside this service.
type IPaymentListener interface {
	PaymentApproved(ctx context.Context, p entities.Payment) error
}
