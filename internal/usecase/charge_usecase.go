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

// pixExpiration is the fixed lifetime of a PIX charge's QR code.
const pixExpiration = 10 * time.Minute

// NewCardChargeInput is a one-shot card charge using a freshly minted
// token. IdempotencyKey is optional: when set it is passed through
// unchanged so a caller retrying the same logical intent can pin the key;
// when empty a fresh key is minted.

type NewCardChargeInput struct {
	Amount          float64
	Description     string
	PayerEmail      string
	Token           string
	PaymentMethodID string
	Installments    int
	IdempotencyKey  string
}

type PixChargeInput struct {
	Amount         float64
	Description    string
	PayerEmail     string
	PayerFirstName string
	PayerLastName  string
	PayerCPF       string
	PayerAddress   *interfaces.PayerAddress
	IdempotencyKey string
}

type SavedCardChargeInput struct {
	Amount             float64
	Description        string
	CustomerExternalID string
	CardExternalID     string
	SecurityCode       string
	IdempotencyKey     string
}

// IChargeUseCase executes the three charge flows, all producing a
// normalized Payment.

type IChargeUseCase interface {
	ChargeNewCard(ctx context.Context, in NewCardChargeInput) (entities.Payment, error)
	ChargePix(ctx context.Context, in PixChargeInput) (entities.Payment, error)
	ChargeSavedCard(ctx context.Context, in SavedCardChargeInput) (entities.Payment, error)
}

type ChargeUseCase struct {
	gateway   interfaces.IChargeGateway
	customers interfaces.ICustomerGateway
	tokenizer ITokenizerUseCase
}

var _ IChargeUseCase = (*ChargeUseCase)(nil)

func NewChargeUseCase(gateway interfaces.IChargeGateway, customers interfaces.ICustomerGateway, tokenizer ITokenizerUseCase) *ChargeUseCase {
	return &ChargeUseCase{gateway: gateway, customers: customers, tokenizer: tokenizer}
}

func (u *ChargeUseCase) ChargeNewCard(ctx context.Context, in NewCardChargeInput) (entities.Payment, error) {
	var violations []string
	if in.Amount <= 0 {
		violations = append(violations, "amount must be greater than zero")
	}
	if strings.TrimSpace(in.Description) == "" {
		violations = append(violations, "description is required")
	}
	if strings.TrimSpace(in.PayerEmail) == "" {
		violations = append(violations, "payer email is required")
	}
	if strings.TrimSpace(in.Token) == "" {
		violations = append(violations, "card token is required")
	}
	if strings.TrimSpace(in.PaymentMethodID) == "" {
		violations = append(violations, "payment method id is required")
	}
	if in.Installments < 1 {
		violations = append(violations, "installments must be at least 1")
	}
	if len(violations) > 0 {
		return entities.Payment{}, entities.NewValidationError(violations...)
	}

	key := in.IdempotencyKey
	if key == "" {
		key = NewIdempotencyKey("card-payment")
	}
	log.Printf("[charge][usecase] card charge start amount=%.2f idempotency_key=%s", in.Amount, key)

	sub := interfaces.ChargeSubmission{
		Amount:          in.Amount,
		Description:     in.Description,
		Token:           in.Token,
		PaymentMethodID: in.PaymentMethodID,
		Installments:    in.Installments,
		PayerEmail:      strings.ToLower(strings.TrimSpace(in.PayerEmail)),
		Items: []interfaces.ChargeItem{
			{Title: in.Description, Quantity: 1, UnitPrice: in.Amount},
		},
	}

	res, err := u.gateway.CreateCharge(ctx, sub, key)
	if err != nil {
		log.Printf("[charge][usecase] card charge failed idempotency_key=%s err=%v", key, err)
		return entities.Payment{}, translatePaymentError(err)
	}
	log.Printf("[charge][usecase] card charge success payment_id=%s status=%s", res.PaymentID, res.Status)
	return newPayment(res, entities.PaymentMethodCard, in.Amount, key), nil
}

func (u *ChargeUseCase) ChargePix(ctx context.Context, in PixChargeInput) (entities.Payment, error) {
	var violations []string
	if in.Amount <= 0 {
		violations = append(violations, "amount must be greater than zero")
	}
	if strings.TrimSpace(in.Description) == "" {
		violations = append(violations, "description is required")
	}
	if strings.TrimSpace(in.PayerEmail) == "" {
		violations = append(violations, "payer email is required")
	}
	if len(violations) > 0 {
		return entities.Payment{}, entities.NewValidationError(violations...)
	}

	key := in.IdempotencyKey
	if key == "" {
		key = NewIdempotencyKey("pix-payment")
	}
	expiresAt := time.Now().Add(pixExpiration)
	log.Printf("[charge][usecase] pix charge start amount=%.2f idempotency_key=%s", in.Amount, key)

	sub := interfaces.ChargeSubmission{
		Amount:           in.Amount,
		Description:      in.Description,
		PaymentMethodID:  "pix",
		PayerEmail:       strings.ToLower(strings.TrimSpace(in.PayerEmail)),
		PayerFirstName:   strings.TrimSpace(in.PayerFirstName),
		PayerLastName:    strings.TrimSpace(in.PayerLastName),
		PayerCPF:         digitsOnly(in.PayerCPF),
		PayerAddress:     in.PayerAddress,
		DateOfExpiration: &expiresAt,
	}

	res, err := u.gateway.CreateCharge(ctx, sub, key)
	if err != nil {
		log.Printf("[charge][usecase] pix charge failed idempotency_key=%s err=%v", key, err)
		return entities.Payment{}, translatePaymentError(err)
	}

	p := newPayment(res, entities.PaymentMethodPix, in.Amount, key)
	p.Pix = &entities.PixDetails{
		QRCode:       res.QRCode,
		QRCodeBase64: res.QRCodeBase64,
		TicketURL:    res.TicketURL,
		ExpiresAt:    res.DateOfExpiration,
	}
	if p.Pix.ExpiresAt == nil {
		p.Pix.ExpiresAt = &expiresAt
	}
	log.Printf("[charge][usecase] pix charge success payment_id=%s status=%s", res.PaymentID, res.Status)
	return p, nil
}

// ChargeSavedCard is a three-hop composite: verify the customer exists,
// tokenize the vaulted card, submit the charge as that customer. Any hop
// failing aborts the whole charge; no partial state reads as success.
func (u *ChargeUseCase) ChargeSavedCard(ctx context.Context, in SavedCardChargeInput) (entities.Payment, error) {
	var violations []string
	if in.Amount <= 0 {
		violations = append(violations, "amount must be greater than zero")
	}
	if strings.TrimSpace(in.CustomerExternalID) == "" {
		violations = append(violations, "customer id is required")
	}
	if strings.TrimSpace(in.CardExternalID) == "" {
		violations = append(violations, "card id is required")
	}
	if strings.TrimSpace(in.SecurityCode) == "" {
		violations = append(violations, "security code is required")
	}
	if len(violations) > 0 {
		return entities.Payment{}, entities.NewValidationError(violations...)
	}
	customerID := strings.TrimSpace(in.CustomerExternalID)

	// Hop 1: the customer must exist before anything is tokenized.
	if _, err := u.customers.GetCustomer(ctx, customerID); err != nil {
		log.Printf("[charge][usecase] saved card customer check failed customer_id=%s err=%v", customerID, err)
		if isGatewayNotFound(err) {
			return entities.Payment{}, ErrCustomerNotFound
		}
		return entities.Payment{}, err
	}

	// Hop 2: mint a fresh single-use token for the vaulted card.
	token, err := u.tokenizer.TokenizeSavedCard(ctx, in.CardExternalID, in.SecurityCode)
	if err != nil {
		return entities.Payment{}, err
	}

	// Hop 3: submit the charge as the vaulted customer.
	key := in.IdempotencyKey
	if key == "" {
		key = NewIdempotencyKey("saved-card-payment")
	}
	log.Printf("[charge][usecase] saved card charge start customer_id=%s amount=%.2f idempotency_key=%s", customerID, in.Amount, key)

	sub := interfaces.ChargeSubmission{
		Amount:      in.Amount,
		Description: in.Description,
		Token:       token.Token,
		PayerType:   "customer",
		PayerID:     customerID,
	}

	res, err := u.gateway.CreateCharge(ctx, sub, key)
	if err != nil {
		log.Printf("[charge][usecase] saved card charge failed idempotency_key=%s err=%v", key, err)
		return entities.Payment{}, translatePaymentError(err)
	}
	log.Printf("[charge][usecase] saved card charge success payment_id=%s status=%s", res.PaymentID, res.Status)
	return newPayment(res, entities.PaymentMethodCard, in.Amount, key), nil
}

func newPayment(res interfaces.ChargeResult, method entities.PaymentMethod, amount float64, key string) entities.Payment {
	if res.Amount > 0 {
		amount = res.Amount
	}
	return entities.Payment{
		ID:             res.PaymentID,
		Status:         entities.PaymentStatus(res.Status),
		StatusDetail:   res.StatusDetail,
		Amount:         amount,
		Method:         method,
		IdempotencyKey: key,
	}
}

func translatePaymentError(err error) error {
	if isGatewayUnauthorized(err) {
		return ErrGatewayUnauthorized
	}
	gwErr, ok := asGatewayError(err)
	if !ok {
		return err
	}
	switch {
	case gwErr.MentionsAny("bin_not_found"):
		return fmt.Errorf("%w: card brand not recognized", ErrPayment)
	case gwErr.MentionsAny("invalid_token", "invalid token"):
		return fmt.Errorf("%w: card token expired, tokenize again", ErrPayment)
	case gwErr.MentionsAny("insufficient_amount"):
		return fmt.Errorf("%w: amount too low for this payment method", ErrPayment)
	default:
		return fmt.Errorf("%w: %s", ErrPayment, gwErr.Message)
	}
}

func digitsOnly(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}
