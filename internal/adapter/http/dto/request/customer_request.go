package request

import "pede_facil/internal/usecase/interfaces"

// CustomerRequest resolves (find-or-create) the gateway customer for an
// email.
type CustomerRequest struct {
	Email string `json:"email" binding:"required,email"`
}

// UpdateCustomerRequest patches the gateway-side customer profile. Empty
// fields stay untouched upstream.
type UpdateCustomerRequest struct {
	Email     string `json:"email" binding:"omitempty,email"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
}

func (r UpdateCustomerRequest) ToPatch() interfaces.CustomerPatch {
	return interfaces.CustomerPatch{
		Email:     r.Email,
		FirstName: r.FirstName,
		LastName:  r.LastName,
	}
}
