package usecase

import (
	"regexp"
	"testing"
)

func TestNewIdempotencyKey(t *testing.T) {
	t.Run("format", func(t *testing.T) {
		key := NewIdempotencyKey("pix-payment")
		pattern := regexp.MustCompile(`^pix-payment-\d{13}-[0-9a-z]{9}$`)
		if !pattern.MatchString(key) {
			t.Fatalf("unexpected key format: %s", key)
		}
	})

	t.Run("distinct within same millisecond", func(t *testing.T) {
		seen := make(map[string]bool)
		for i := 0; i < 100; i++ {
			key := NewIdempotencyKey("refund-123")
			if seen[key] {
				t.Fatalf("duplicate key minted: %s", key)
			}
			seen[key] = true
		}
	})
}
