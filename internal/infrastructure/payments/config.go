package payments

import (
	"errors"
	"os"
	"strings"
	"time"
)

var (
	ErrMissingAccessToken = errors.New("missing MERCADOPAGO_ACCESS_TOKEN")
	ErrMissingPublicKey   = errors.New("missing MERCADOPAGO_PUBLIC_KEY")
)

const (
	defaultBaseURL        = "https://api.mercadopago.com"
	defaultRequestTimeout = 10 * time.Second
	defaultChargeTimeout  = 15 * time.Second
)

// Config carries the gateway credentials and timeouts. It is built once at
// process start and injected into the client; there is no module-level
// singleton.
//
// AccessToken authenticates private endpoints (Bearer). PublicKey keys the
// card tokenization endpoint, which the gateway authenticates by query
// param instead.

type Config struct {
	AccessToken    string
	PublicKey      string
	BaseURL        string
	RequestTimeout time.Duration
	ChargeTimeout  time.Duration
}

// NewConfigFromEnv reads gateway credentials from the environment.
//
// Supported env vars:
//   - MERCADOPAGO_ACCESS_TOKEN (required)
//   - MERCADOPAGO_PUBLIC_KEY (required)
//   - MERCADOPAGO_BASE_URL (optional; defaults to production API)
func NewConfigFromEnv() (Config, error) {
	cfg := Config{
		AccessToken:    strings.TrimSpace(os.Getenv("MERCADOPAGO_ACCESS_TOKEN")),
		PublicKey:      strings.TrimSpace(os.Getenv("MERCADOPAGO_PUBLIC_KEY")),
		BaseURL:        strings.TrimSpace(os.Getenv("MERCADOPAGO_BASE_URL")),
		RequestTimeout: defaultRequestTimeout,
		ChargeTimeout:  defaultChargeTimeout,
	}
	if cfg.AccessToken == "" {
		return Config{}, ErrMissingAccessToken
	}
	if cfg.PublicKey == "" {
		return Config{}, ErrMissingPublicKey
	}
	if cfg.BaseURL == "" {
		cfg.BaseURL = defaultBaseURL
	}
	return cfg, nil
}
