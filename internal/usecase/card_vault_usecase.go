package usecase

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"pede_facil/internal/domain/entities"
	"pede_facil/internal/usecase/interfaces"
)

// ICardVaultUseCase manages tokenized cards vaulted under a customer and
// the local default-card bookkeeping.

type ICardVaultUseCase interface {
	AddCard(ctx context.Context, customerExternalID, token string) (entities.Card, error)
	ListCards(ctx context.Context, customerExternalID string) ([]entities.Card, error)
	RemoveCard(ctx context.Context, customerExternalID, cardExternalID string) error
}

type CardVaultUseCase struct {
	gateway interfaces.ICardGateway
	repo    interfaces.ICardRepository
	owners  *ownerLocks
}

var _ ICardVaultUseCase = (*CardVaultUseCase)(nil)

func NewCardVaultUseCase(gateway interfaces.ICardGateway, repo interfaces.ICardRepository) *CardVaultUseCase {
	return &CardVaultUseCase{gateway: gateway, repo: repo, owners: newOwnerLocks()}
}

// AddCard vaults a tokenized card under the customer. The gateway infers
// the brand from the token; locally we keep the echoed brand (falling back
// to BIN detection over first6) and set the default flag: the first card a
// customer ever vaults is the default.
func (u *CardVaultUseCase) AddCard(ctx context.Context, customerExternalID, token string) (entities.Card, error) {
	customerExternalID = strings.TrimSpace(customerExternalID)
	if customerExternalID == "" {
		return entities.Card{}, entities.NewValidationError("customer id is required")
	}
	if strings.TrimSpace(token) == "" {
		return entities.Card{}, entities.NewValidationError("card token is required")
	}

	lock := u.owners.lock(customerExternalID)
	defer lock.Unlock()

	added, err := u.gateway.AddCard(ctx, customerExternalID, token)
	if err != nil {
		log.Printf("[card][usecase] add failed customer_id=%s err=%v", customerExternalID, err)
		return entities.Card{}, translateCardError(err)
	}

	existing, err := u.repo.ListByCustomer(ctx, customerExternalID)
	if err != nil {
		return entities.Card{}, err
	}

	card := entities.Card{
		ExternalID:         added.ExternalID,
		CustomerExternalID: customerExternalID,
		Brand:              resolveBrand(added),
		First6:             added.First6,
		Last4:              added.Last4,
		ExpMonth:           added.ExpMonth,
		ExpYear:            added.ExpYear,
		IsDefault:          len(existing) == 0,
		CreatedAt:          time.Now().UTC(),
	}
	if _, err := u.repo.Save(ctx, card); err != nil {
		log.Printf("[card][usecase] bookkeeping save failed card_id=%s err=%v", card.ExternalID, err)
		return entities.Card{}, err
	}
	log.Printf("[card][usecase] add success customer_id=%s card_id=%s default=%t", customerExternalID, card.ExternalID, card.IsDefault)
	return card, nil
}

// ListCards proxies the gateway listing and overlays the local default
// flag, which the gateway does not track.
func (u *CardVaultUseCase) ListCards(ctx context.Context, customerExternalID string) ([]entities.Card, error) {
	customerExternalID = strings.TrimSpace(customerExternalID)
	if customerExternalID == "" {
		return nil, entities.NewValidationError("customer id is required")
	}

	remote, err := u.gateway.ListCards(ctx, customerExternalID)
	if err != nil {
		if isGatewayNotFound(err) {
			return nil, ErrCustomerNotFound
		}
		return nil, err
	}

	local, err := u.repo.ListByCustomer(ctx, customerExternalID)
	if err != nil {
		return nil, err
	}
	defaults := make(map[string]bool, len(local))
	for _, c := range local {
		defaults[c.ExternalID] = c.IsDefault
	}

	cards := make([]entities.Card, 0, len(remote))
	for _, rc := range remote {
		cards = append(cards, entities.Card{
			ExternalID:         rc.ExternalID,
			CustomerExternalID: customerExternalID,
			Brand:              resolveBrand(rc),
			First6:             rc.First6,
			Last4:              rc.Last4,
			ExpMonth:           rc.ExpMonth,
			ExpYear:            rc.ExpYear,
			IsDefault:          defaults[rc.ExternalID],
		})
	}
	return cards, nil
}

// RemoveCard detaches the card at the gateway and fixes local bookkeeping:
// removing the default card promotes the first remaining card, if any.
func (u *CardVaultUseCase) RemoveCard(ctx context.Context, customerExternalID, cardExternalID string) error {
	customerExternalID = strings.TrimSpace(customerExternalID)
	cardExternalID = strings.TrimSpace(cardExternalID)
	if customerExternalID == "" || cardExternalID == "" {
		return entities.NewValidationError("customer id and card id are required")
	}

	lock := u.owners.lock(customerExternalID)
	defer lock.Unlock()

	if err := u.gateway.DeleteCard(ctx, customerExternalID, cardExternalID); err != nil {
		log.Printf("[card][usecase] remove failed customer_id=%s card_id=%s err=%v", customerExternalID, cardExternalID, err)
		if isGatewayNotFound(err) {
			return ErrCardNotFound
		}
		return err
	}

	local, err := u.repo.GetByExternalID(ctx, cardExternalID)
	if err != nil {
		return err
	}
	wasDefault := local.IsDefault

	if err := u.repo.Delete(ctx, cardExternalID); err != nil {
		return err
	}

	if wasDefault {
		remaining, err := u.repo.ListByCustomer(ctx, customerExternalID)
		if err != nil {
			return err
		}
		if len(remaining) > 0 {
			promoted := remaining[0]
			promoted.IsDefault = true
			if _, err := u.repo.Save(ctx, promoted); err != nil {
				return err
			}
			log.Printf("[card][usecase] default promoted customer_id=%s card_id=%s", customerExternalID, promoted.ExternalID)
		}
	}
	log.Printf("[card][usecase] remove success customer_id=%s card_id=%s", customerExternalID, cardExternalID)
	return nil
}

func resolveBrand(c interfaces.GatewayCard) entities.CardBrand {
	if c.Brand != "" {
		return entities.CardBrand(c.Brand)
	}
	if brand, err := entities.DetectCardBrand(c.First6 + "0000000"); err == nil {
		return brand
	}
	return entities.CardBrandVisa
}

func translateCardError(err error) error {
	if isGatewayNotFound(err) {
		return ErrCustomerNotFound
	}
	gwErr, ok := asGatewayError(err)
	if !ok {
		return err
	}
	if gwErr.StatusCode == 400 && gwErr.MentionsAny("invalid_token", "invalid token") {
		return fmt.Errorf("%w: %s", ErrInvalidToken, gwErr.Message)
	}
	return err
}
