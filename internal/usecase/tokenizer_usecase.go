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

// NewCardInput is raw card data supplied by the caller for single-use
// tokenization. It never leaves the process unvalidated.

type NewCardInput struct {
	Number     string
	ExpMonth   int
	ExpYear    int
	CVV        string
	HolderName string
}

// ITokenizerUseCase issues one-time gateway tokens for new or vaulted cards.

type ITokenizerUseCase interface {
	TokenizeNewCard(ctx context.Context, in NewCardInput) (interfaces.TokenResult, error)
	TokenizeSavedCard(ctx context.Context, cardExternalID, securityCode string) (interfaces.TokenResult, error)
}

type TokenizerUseCase struct {
	gateway interfaces.ICardTokenGateway
}

var _ ITokenizerUseCase = (*TokenizerUseCase)(nil)

func NewTokenizerUseCase(gateway interfaces.ICardTokenGateway) *TokenizerUseCase {
	return &TokenizerUseCase{gateway: gateway}
}

// TokenizeNewCard validates the card data and exchanges it for an opaque
// single-use token. Validation accumulates every violated rule before
// failing, so the caller sees all problems in one round trip; the gateway
// is only called on fully valid input.
func (u *TokenizerUseCase) TokenizeNewCard(ctx context.Context, in NewCardInput) (interfaces.TokenResult, error) {
	var violations []string

	digits := strings.Join(strings.Fields(in.Number), "")
	if len(digits) < 13 || len(digits) > 19 {
		violations = append(violations, "card number must have between 13 and 19 digits")
	}
	if in.ExpMonth < 1 || in.ExpMonth > 12 {
		violations = append(violations, "expiration month must be between 1 and 12")
	}
	// The gateway compares two-digit years; normalize so both 27 and 2027
	// are accepted.
	if in.ExpYear%100 < time.Now().Year()%100 {
		violations = append(violations, "expiration year must not be in the past")
	}
	if len(in.CVV) < 3 {
		violations = append(violations, "security code must have at least 3 digits")
	}
	if len(strings.TrimSpace(in.HolderName)) < 2 {
		violations = append(violations, "holder name must have at least 2 characters")
	}
	if len(violations) > 0 {
		log.Printf("[tokenizer][usecase] new card rejected violations=%d", len(violations))
		return interfaces.TokenResult{}, entities.NewValidationError(violations...)
	}

	res, err := u.gateway.CreateCardToken(ctx, interfaces.NewCardTokenInput{
		Number:     digits,
		ExpMonth:   in.ExpMonth,
		ExpYear:    in.ExpYear,
		CVV:        in.CVV,
		HolderName: strings.TrimSpace(in.HolderName),
	})
	if err != nil {
		return interfaces.TokenResult{}, translateTokenizationError(err)
	}
	log.Printf("[tokenizer][usecase] new card tokenized last4=%s", res.Last4)
	return res, nil
}

// TokenizeSavedCard mints a token for a vaulted card using its security
// code. Used by the saved-card charge flow.
func (u *TokenizerUseCase) TokenizeSavedCard(ctx context.Context, cardExternalID, securityCode string) (interfaces.TokenResult, error) {
	var violations []string
	if strings.TrimSpace(cardExternalID) == "" {
		violations = append(violations, "card id is required")
	}
	if len(securityCode) < 3 {
		violations = append(violations, "security code must have at least 3 digits")
	}
	if len(violations) > 0 {
		return interfaces.TokenResult{}, entities.NewValidationError(violations...)
	}

	res, err := u.gateway.CreateSavedCardToken(ctx, interfaces.SavedCardTokenInput{
		CardExternalID: strings.TrimSpace(cardExternalID),
		SecurityCode:   securityCode,
	})
	if err != nil {
		return interfaces.TokenResult{}, translateTokenizationError(err)
	}
	return res, nil
}

// translateTokenizationError maps known upstream messages to user-facing
// variants, falling back to a generic wrap that keeps the raw upstream
// message for diagnostics.
func translateTokenizationError(err error) error {
	if isGatewayUnauthorized(err) {
		return ErrGatewayUnauthorized
	}
	gwErr, ok := asGatewayError(err)
	if !ok {
		return err
	}
	switch {
	case gwErr.MentionsAny("invalid_card_number", "invalid card_number"):
		return fmt.Errorf("%w: card number rejected by the gateway", ErrTokenization)
	case gwErr.MentionsAny("invalid_security_code", "invalid security_code"):
		return fmt.Errorf("%w: security code rejected by the gateway", ErrTokenization)
	case gwErr.MentionsAny("invalid_expiration"):
		return fmt.Errorf("%w: expiration date rejected by the gateway", ErrTokenization)
	default:
		return fmt.Errorf("%w: %s", ErrTokenization, gwErr.Message)
	}
}
