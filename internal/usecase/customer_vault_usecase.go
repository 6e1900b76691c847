package usecase

import (
	"context"
	"log"
	"strings"
	"time"

	"pede_facil/internal/domain/entities"
	"pede_facil/internal/usecase/interfaces"
)

// gatewayCustomerExistsCode is the upstream cause code for "customer
// already exists" on create.
const gatewayCustomerExistsCode = 101

// ICustomerVaultUseCase resolves the payer's gateway-side identity.

type ICustomerVaultUseCase interface {
	FindOrCreate(ctx context.Context, email string) (entities.Customer, error)
	SearchByEmail(ctx context.Context, email string) (entities.Customer, error)
	GetByID(ctx context.Context, externalID string) (entities.Customer, error)
	Update(ctx context.Context, externalID string, patch interfaces.CustomerPatch) (entities.Customer, error)
}

type CustomerVaultUseCase struct {
	gateway interfaces.ICustomerGateway
	repo    interfaces.ICustomerRepository
}

var _ ICustomerVaultUseCase = (*CustomerVaultUseCase)(nil)

func NewCustomerVaultUseCase(gateway interfaces.ICustomerGateway, repo interfaces.ICustomerRepository) *CustomerVaultUseCase {
	return &CustomerVaultUseCase{gateway: gateway, repo: repo}
}

// FindOrCreate resolves the gateway customer for an email, creating it
// lazily on first use.
//
// The local mapping is consulted first; a hit skips the gateway round
// trips entirely. The mapping is advisory, so a lookup failure falls
// through to the gateway instead of failing the call.
//
// The gateway has no native upsert, so on a miss the order is fixed:
// always attempt create first and treat "already exists" as the only
// non-fatal create failure, falling back to search-by-email.
func (u *CustomerVaultUseCase) FindOrCreate(ctx context.Context, email string) (entities.Customer, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" {
		return entities.Customer{}, entities.NewValidationError("email is required")
	}

	if known, err := u.repo.GetByEmail(ctx, email); err != nil {
		log.Printf("[customer][usecase] local mapping lookup failed email=%s err=%v", email, err)
	} else if known.ExternalID != "" {
		log.Printf("[customer][usecase] local mapping hit email=%s external_id=%s", email, known.ExternalID)
		return known, nil
	}

	log.Printf("[customer][usecase] find-or-create start email=%s", email)
	created, err := u.gateway.CreateCustomer(ctx, email)
	if err != nil {
		if !isCustomerAlreadyExists(err) {
			log.Printf("[customer][usecase] create failed email=%s err=%v", email, err)
			if isGatewayUnauthorized(err) {
				return entities.Customer{}, ErrGatewayUnauthorized
			}
			return entities.Customer{}, err
		}
		log.Printf("[customer][usecase] already exists, searching email=%s", email)
		created, err = u.gateway.SearchCustomerByEmail(ctx, email)
		if err != nil {
			return entities.Customer{}, err
		}
		if created.ExternalID == "" {
			// Create reported a duplicate but search found nothing; treat
			// as upstream inconsistency rather than inventing a record.
			return entities.Customer{}, ErrCustomerNotFound
		}
	}

	customer := entities.Customer{
		ExternalID: created.ExternalID,
		Email:      email,
		CreatedAt:  time.Now().UTC(),
	}
	if _, err := u.repo.Save(ctx, customer); err != nil {
		log.Printf("[customer][usecase] local mapping save failed external_id=%s err=%v", customer.ExternalID, err)
		return entities.Customer{}, err
	}
	log.Printf("[customer][usecase] find-or-create success email=%s external_id=%s", email, customer.ExternalID)
	return customer, nil
}

func (u *CustomerVaultUseCase) SearchByEmail(ctx context.Context, email string) (entities.Customer, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" {
		return entities.Customer{}, entities.NewValidationError("email is required")
	}

	found, err := u.gateway.SearchCustomerByEmail(ctx, email)
	if err != nil {
		return entities.Customer{}, err
	}
	if found.ExternalID == "" {
		return entities.Customer{}, ErrCustomerNotFound
	}
	return entities.Customer{ExternalID: found.ExternalID, Email: found.Email}, nil
}

func (u *CustomerVaultUseCase) GetByID(ctx context.Context, externalID string) (entities.Customer, error) {
	externalID = strings.TrimSpace(externalID)
	if externalID == "" {
		return entities.Customer{}, entities.NewValidationError("customer id is required")
	}

	found, err := u.gateway.GetCustomer(ctx, externalID)
	if err != nil {
		if isGatewayNotFound(err) {
			return entities.Customer{}, ErrCustomerNotFound
		}
		return entities.Customer{}, err
	}
	return entities.Customer{ExternalID: found.ExternalID, Email: found.Email}, nil
}

func (u *CustomerVaultUseCase) Update(ctx context.Context, externalID string, patch interfaces.CustomerPatch) (entities.Customer, error) {
	externalID = strings.TrimSpace(externalID)
	if externalID == "" {
		return entities.Customer{}, entities.NewValidationError("customer id is required")
	}

	updated, err := u.gateway.UpdateCustomer(ctx, externalID, patch)
	if err != nil {
		if isGatewayNotFound(err) {
			return entities.Customer{}, ErrCustomerNotFound
		}
		return entities.Customer{}, err
	}
	return entities.Customer{ExternalID: updated.ExternalID, Email: updated.Email}, nil
}

func isCustomerAlreadyExists(err error) bool {
	gwErr, ok := asGatewayError(err)
	if !ok {
		return false
	}
	return gwErr.HasCause(gatewayCustomerExistsCode) || gwErr.MentionsAny("already exist")
}
