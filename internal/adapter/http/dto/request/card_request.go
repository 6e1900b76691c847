package request

import "pede_facil/internal/usecase"

// TokenizeCardRequest carries raw card data for single-use tokenization.
type TokenizeCardRequest struct {
	Number     string `json:"number" binding:"required"`
	ExpMonth   int    `json:"exp_month" binding:"required"`
	ExpYear    int    `json:"exp_year" binding:"required"`
	CVV        string `json:"cvv" binding:"required"`
	HolderName string `json:"holder_name" binding:"required"`
}

func (r TokenizeCardRequest) ToInput() usecase.NewCardInput {
	return usecase.NewCardInput{
		Number:     r.Number,
		ExpMonth:   r.ExpMonth,
		ExpYear:    r.ExpYear,
		CVV:        r.CVV,
		HolderName: r.HolderName,
	}
}

// AddCardRequest vaults an already-tokenized card under a customer.
type AddCardRequest struct {
	Token string `json:"token" binding:"required"`
}
