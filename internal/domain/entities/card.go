package entities

import (
	"regexp"
	"strings"
	"time"
)

// CardBrand is the card network as classified by the BIN prefix.

type CardBrand string

const (
	CardBrandVisa      CardBrand = "visa"
	CardBrandMaster    CardBrand = "master"
	CardBrandElo       CardBrand = "elo"
	CardBrandAmex      CardBrand = "amex"
	CardBrandHipercard CardBrand = "hipercard"
	CardBrandDiners    CardBrand = "diners"
)

// brandPrefixes is an ordered, first-match-wins table. Elo shares the 5xx
// space with master but 5067 is outside master's 51-55 range, so order
// between them is not load bearing; amex must come before diners (both 3xx).
var brandPrefixes = []struct {
	pattern *regexp.Regexp
	brand   CardBrand
}{
	{regexp.MustCompile(`^4`), CardBrandVisa},
	{regexp.MustCompile(`^5[1-5]`), CardBrandMaster},
	{regexp.MustCompile(`^5067`), CardBrandElo},
	{regexp.MustCompile(`^3[47]`), CardBrandAmex},
	{regexp.MustCompile(`^6`), CardBrandHipercard},
	{regexp.MustCompile(`^3[0689]`), CardBrandDiners},
}

// DetectCardBrand classifies a raw card number into a brand.
//
// Spaces are stripped before matching. Numbers shorter than 13 or longer
// than 19 digits fail with ErrInvalidCardNumber. A number that matches no
// prefix is classified as visa on purpose: the gateway revalidates the BIN
// on tokenization, so an unknown prefix is not a local failure.
func DetectCardBrand(number string) (CardBrand, error) {
	digits := strings.Join(strings.Fields(number), "")
	if len(digits) < 13 || len(digits) > 19 {
		return "", ErrInvalidCardNumber
	}
	for _, p := range brandPrefixes {
		if p.pattern.MatchString(digits) {
			return p.brand, nil
		}
	}
	return CardBrandVisa, nil
}

// Card is a vaulted card reference.
//
// The gateway owns the card (ExternalID); locally we persist only the
// display attributes and the default flag.
//
// Storage model (DynamoDB):
//   - PK: external_id
//   - GSI1 (customer_external_id-index): customer_external_id
//
// Invariant: for a given customer, exactly one card has IsDefault=true
// whenever at least one card exists.

type Card struct {
	ExternalID         string    `json:"external_id"`
	CustomerExternalID string    `json:"customer_external_id"`
	Brand              CardBrand `json:"brand"`
	First6             string    `json:"first6"`
	Last4              string    `json:"last4"`
	ExpMonth           int       `json:"exp_month"`
	ExpYear            int       `json:"exp_year"`
	IsDefault          bool      `json:"is_default"`
	CreatedAt          time.Time `json:"created_at"`
}
