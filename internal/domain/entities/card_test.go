package entities

import (
	"errors"
	"testing"
)

func TestDetectCardBrand(t *testing.T) {
	cases := []struct {
		name   string
		number string
		brand  CardBrand
	}{
		{name: "visa", number: "4111111111111111", brand: CardBrandVisa},
		{name: "master", number: "5105105105105100", brand: CardBrandMaster},
		{name: "elo", number: "5067111111111111", brand: CardBrandElo},
		{name: "amex", number: "341111111111111", brand: CardBrandAmex},
		{name: "hipercard", number: "6062821111111111", brand: CardBrandHipercard},
		{name: "diners", number: "3611111111111111", brand: CardBrandDiners},
		{name: "with spaces", number: "4111 1111 1111 1111", brand: CardBrandVisa},
		{name: "unknown prefix falls back to visa", number: "9999999999999999", brand: CardBrandVisa},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			brand, err := DetectCardBrand(tc.number)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if brand != tc.brand {
				t.Fatalf("expected %s got %s", tc.brand, brand)
			}
		})
	}

	t.Run("too short", func(t *testing.T) {
		_, err := DetectCardBrand("123")
		if !errors.Is(err, ErrInvalidCardNumber) {
			t.Fatalf("expected ErrInvalidCardNumber, got %v", err)
		}
	})

	t.Run("too long", func(t *testing.T) {
		_, err := DetectCardBrand("41111111111111111111")
		if !errors.Is(err, ErrInvalidCardNumber) {
			t.Fatalf("expected ErrInvalidCardNumber, got %v", err)
		}
	})
}

func TestValidationError(t *testing.T) {
	err := NewValidationError("amount must be greater than zero", "description is required")
	if !err.Contains("description") {
		t.Fatalf("expected violation to be reported: %v", err)
	}
	if err.Contains("holder") {
		t.Fatalf("unexpected violation match: %v", err)
	}
}
