package payments

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"

	"pede_facil/internal/usecase/interfaces"

	"github.com/go-resty/resty/v2"
)

// Client is the Mercado Pago REST client behind the gateway ports.
//
// Three underlying HTTP clients share one Config:
//   - api: Bearer auth, default timeout, all private endpoints
//   - charge: Bearer auth, longer timeout, saved-card submissions only
//   - token: no Bearer; the tokenization endpoint is keyed by the
//     public_key query param instead
//
// Idempotency keys are caller-minted and sent via X-Idempotency-Key on all
// writes; the client never generates or reuses one on its own.

type Client struct {
	api    *resty.Client
	charge *resty.Client
	token  *resty.Client
}

var _ interfaces.ICardTokenGateway = (*Client)(nil)
var _ interfaces.ICustomerGateway = (*Client)(nil)
var _ interfaces.ICardGateway = (*Client)(nil)
var _ interfaces.IChargeGateway = (*Client)(nil)
var _ interfaces.IRefundGateway = (*Client)(nil)

func NewClient(cfg Config) *Client {
	api := resty.New().
		SetBaseURL(cfg.BaseURL).
		SetTimeout(cfg.RequestTimeout).
		SetAuthToken(cfg.AccessToken).
		SetHeader("Content-Type", "application/json")

	charge := resty.New().
		SetBaseURL(cfg.BaseURL).
		SetTimeout(cfg.ChargeTimeout).
		SetAuthToken(cfg.AccessToken).
		SetHeader("Content-Type", "application/json")

	token := resty.New().
		SetBaseURL(cfg.BaseURL).
		SetTimeout(cfg.RequestTimeout).
		SetHeader("Content-Type", "application/json").
		SetQueryParam("public_key", cfg.PublicKey)

	log.Printf("[payment][gateway] client initialized base_url=%s", cfg.BaseURL)
	return &Client{api: api, charge: charge, token: token}
}

func (c *Client) CreateCardToken(ctx context.Context, in interfaces.NewCardTokenInput) (interfaces.TokenResult, error) {
	var out cardTokenResponse
	req := c.token.R().
		SetContext(ctx).
		SetBody(cardTokenRequest{
			CardNumber:      in.Number,
			ExpirationMonth: in.ExpMonth,
			ExpirationYear:  in.ExpYear,
			SecurityCode:    in.CVV,
			Cardholder:      &cardholderPayload{Name: in.HolderName},
		}).
		SetResult(&out)
	if err := execute(req, http.MethodPost, "/v1/card_tokens"); err != nil {
		log.Printf("[payment][gateway] card token create failed err=%v", err)
		return interfaces.TokenResult{}, err
	}
	log.Printf("[payment][gateway] card token created last4=%s", out.LastFourDigits)
	return out.toPort(), nil
}

func (c *Client) CreateSavedCardToken(ctx context.Context, in interfaces.SavedCardTokenInput) (interfaces.TokenResult, error) {
	var out cardTokenResponse
	req := c.token.R().
		SetContext(ctx).
		SetBody(cardTokenRequest{CardID: in.CardExternalID, SecurityCode: in.SecurityCode}).
		SetResult(&out)
	if err := execute(req, http.MethodPost, "/v1/card_tokens"); err != nil {
		log.Printf("[payment][gateway] saved card token create failed card_id=%s err=%v", in.CardExternalID, err)
		return interfaces.TokenResult{}, err
	}
	return out.toPort(), nil
}

func (c *Client) CreateCustomer(ctx context.Context, email string) (interfaces.GatewayCustomer, error) {
	var out customerResponse
	req := c.api.R().
		SetContext(ctx).
		SetBody(customerRequest{Email: email}).
		SetResult(&out)
	if err := execute(req, http.MethodPost, "/v1/customers"); err != nil {
		return interfaces.GatewayCustomer{}, err
	}
	log.Printf("[payment][gateway] customer created external_id=%s", out.ID)
	return out.toPort(), nil
}

func (c *Client) SearchCustomerByEmail(ctx context.Context, email string) (interfaces.GatewayCustomer, error) {
	var out customerSearchResponse
	req := c.api.R().
		SetContext(ctx).
		SetQueryParam("email", email).
		SetResult(&out)
	if err := execute(req, http.MethodGet, "/v1/customers/search"); err != nil {
		return interfaces.GatewayCustomer{}, err
	}
	if len(out.Results) == 0 {
		return interfaces.GatewayCustomer{}, nil
	}
	return out.Results[0].toPort(), nil
}

func (c *Client) GetCustomer(ctx context.Context, externalID string) (interfaces.GatewayCustomer, error) {
	var out customerResponse
	req := c.api.R().SetContext(ctx).SetResult(&out)
	if err := execute(req, http.MethodGet, "/v1/customers/"+externalID); err != nil {
		return interfaces.GatewayCustomer{}, err
	}
	return out.toPort(), nil
}

func (c *Client) UpdateCustomer(ctx context.Context, externalID string, patch interfaces.CustomerPatch) (interfaces.GatewayCustomer, error) {
	var out customerResponse
	req := c.api.R().
		SetContext(ctx).
		SetBody(customerRequest{Email: patch.Email, FirstName: patch.FirstName, LastName: patch.LastName}).
		SetResult(&out)
	if err := execute(req, http.MethodPut, "/v1/customers/"+externalID); err != nil {
		return interfaces.GatewayCustomer{}, err
	}
	return out.toPort(), nil
}

func (c *Client) AddCard(ctx context.Context, customerExternalID, token string) (interfaces.GatewayCard, error) {
	var out customerCardResponse
	req := c.api.R().
		SetContext(ctx).
		SetBody(customerCardRequest{Token: token}).
		SetResult(&out)
	url := fmt.Sprintf("/v1/customers/%s/cards", customerExternalID)
	if err := execute(req, http.MethodPost, url); err != nil {
		log.Printf("[payment][gateway] add card failed customer_id=%s err=%v", customerExternalID, err)
		return interfaces.GatewayCard{}, err
	}
	log.Printf("[payment][gateway] card added customer_id=%s card_id=%s", customerExternalID, out.ID)
	return out.toPort(), nil
}

func (c *Client) ListCards(ctx context.Context, customerExternalID string) ([]interfaces.GatewayCard, error) {
	var out []customerCardResponse
	req := c.api.R().SetContext(ctx).SetResult(&out)
	url := fmt.Sprintf("/v1/customers/%s/cards", customerExternalID)
	if err := execute(req, http.MethodGet, url); err != nil {
		return nil, err
	}
	cards := make([]interfaces.GatewayCard, 0, len(out))
	for _, raw := range out {
		cards = append(cards, raw.toPort())
	}
	return cards, nil
}

func (c *Client) DeleteCard(ctx context.Context, customerExternalID, cardExternalID string) error {
	req := c.api.R().SetContext(ctx)
	url := fmt.Sprintf("/v1/customers/%s/cards/%s", customerExternalID, cardExternalID)
	return execute(req, http.MethodDelete, url)
}

func (c *Client) CreateCharge(ctx context.Context, sub interfaces.ChargeSubmission, idempotencyKey string) (interfaces.ChargeResult, error) {
	// Saved-card submissions charge as a vaulted customer, the slowest
	// write upstream; only they ride the longer timeout.
	cli := c.api
	if sub.PayerType == "customer" {
		cli = c.charge
	}

	var out paymentResponse
	req := cli.R().
		SetContext(ctx).
		SetHeader("X-Idempotency-Key", idempotencyKey).
		SetBody(buildPaymentRequest(sub)).
		SetResult(&out)
	if err := execute(req, http.MethodPost, "/v1/payments"); err != nil {
		log.Printf("[payment][gateway] charge failed idempotency_key=%s err=%v", idempotencyKey, err)
		return interfaces.ChargeResult{}, err
	}
	log.Printf("[payment][gateway] charge created payment_id=%s status=%s", out.ID.String(), out.Status)
	return out.toPort(), nil
}

func (c *Client) GetPayment(ctx context.Context, paymentID string) (interfaces.ChargeResult, error) {
	var out paymentResponse
	req := c.api.R().SetContext(ctx).SetResult(&out)
	if err := execute(req, http.MethodGet, "/v1/payments/"+paymentID); err != nil {
		return interfaces.ChargeResult{}, err
	}
	return out.toPort(), nil
}

func (c *Client) CreateRefund(ctx context.Context, paymentID string, amount *float64, idempotencyKey string) (interfaces.RefundResult, error) {
	var out refundResponse
	req := c.api.R().
		SetContext(ctx).
		SetHeader("X-Idempotency-Key", idempotencyKey).
		// Some PIX refunds settle asynchronously; without this header the
		// gateway reports them as plain 400 failures.
		SetHeader("X-Render-In-Process-Refunds", "true").
		SetBody(refundRequest{Amount: amount}).
		SetResult(&out)
	url := fmt.Sprintf("/v1/payments/%s/refunds", paymentID)
	if err := execute(req, http.MethodPost, url); err != nil {
		log.Printf("[payment][gateway] refund failed payment_id=%s err=%v", paymentID, err)
		return interfaces.RefundResult{}, err
	}
	log.Printf("[payment][gateway] refund created payment_id=%s refund_id=%s status=%s", paymentID, out.ID.String(), out.Status)
	return out.toPort(), nil
}

// execute runs the request and folds the two failure shapes into the port
// error model: transport problems wrap ErrGatewayUnavailable, non-2xx
// replies decode into *interfaces.GatewayError.
func execute(req *resty.Request, method, url string) error {
	resp, err := req.Execute(method, url)
	if err != nil {
		return fmt.Errorf("%w: %v", interfaces.ErrGatewayUnavailable, err)
	}
	if resp.IsError() {
		return decodeGatewayError(resp)
	}
	return nil
}

func decodeGatewayError(resp *resty.Response) *interfaces.GatewayError {
	gwErr := &interfaces.GatewayError{
		StatusCode: resp.StatusCode(),
		Raw:        string(resp.Body()),
	}

	var body apiErrorBody
	if err := json.Unmarshal(resp.Body(), &body); err == nil {
		gwErr.Message = body.Message
		if gwErr.Message == "" {
			gwErr.Message = body.Error
		}
		for _, cause := range body.Cause {
			if code, err := cause.Code.Int64(); err == nil {
				gwErr.CauseCodes = append(gwErr.CauseCodes, int(code))
			}
		}
	}
	return gwErr
}
