package response

import "pede_facil/internal/domain/entities"

type CardResponse struct {
	CardID     string `json:"card_id"`
	CustomerID string `json:"customer_id"`
	Brand      string `json:"brand"`
	First6     string `json:"first6"`
	Last4      string `json:"last4"`
	ExpMonth   int    `json:"exp_month"`
	ExpYear    int    `json:"exp_year"`
	IsDefault  bool   `json:"is_default"`
}

func FromCard(c entities.Card) CardResponse {
	return CardResponse{
		CardID:     c.ExternalID,
		CustomerID: c.CustomerExternalID,
		Brand:      string(c.Brand),
		First6:     c.First6,
		Last4:      c.Last4,
		ExpMonth:   c.ExpMonth,
		ExpYear:    c.ExpYear,
		IsDefault:  c.IsDefault,
	}
}

func FromCards(cards []entities.Card) []CardResponse {
	out := make([]CardResponse, 0, len(cards))
	for _, c := range cards {
		out = append(out, FromCard(c))
	}
	return out
}

type TokenResponse struct {
	Token    string `json:"token"`
	First6   string `json:"first6"`
	Last4    string `json:"last4"`
	ExpMonth int    `json:"exp_month"`
	ExpYear  int    `json:"exp_year"`
}
