package response

import "pede_facil/internal/domain/entities"

type CustomerResponse struct {
	CustomerID string `json:"customer_id"`
	Email      string `json:"email"`
}

func FromCustomer(c entities.Customer) CustomerResponse {
	return CustomerResponse{CustomerID: c.ExternalID, Email: c.Email}
}
