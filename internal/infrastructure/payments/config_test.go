package payments

import (
	"errors"
	"testing"
)

func TestNewConfigFromEnv(t *testing.T) {
	t.Run("missing access token", func(t *testing.T) {
		t.Setenv("MERCADOPAGO_ACCESS_TOKEN", "")
		t.Setenv("MERCADOPAGO_PUBLIC_KEY", "TEST-public-key")

		_, err := NewConfigFromEnv()
		if !errors.Is(err, ErrMissingAccessToken) {
			t.Fatalf("expected ErrMissingAccessToken, got %v", err)
		}
	})

	t.Run("missing public key", func(t *testing.T) {
		t.Setenv("MERCADOPAGO_ACCESS_TOKEN", "TEST-access-token")
		t.Setenv("MERCADOPAGO_PUBLIC_KEY", "")

		_, err := NewConfigFromEnv()
		if !errors.Is(err, ErrMissingPublicKey) {
			t.Fatalf("expected ErrMissingPublicKey, got %v", err)
		}
	})

	t.Run("defaults", func(t *testing.T) {
		t.Setenv("MERCADOPAGO_ACCESS_TOKEN", "TEST-access-token")
		t.Setenv("MERCADOPAGO_PUBLIC_KEY", "TEST-public-key")
		t.Setenv("MERCADOPAGO_BASE_URL", "")

		cfg, err := NewConfigFromEnv()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if cfg.BaseURL != defaultBaseURL {
			t.Fatalf("expected default base url, got %s", cfg.BaseURL)
		}
		if cfg.RequestTimeout != defaultRequestTimeout || cfg.ChargeTimeout != defaultChargeTimeout {
			t.Fatalf("unexpected timeouts: %+v", cfg)
		}
	})
}
