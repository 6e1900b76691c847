package handlers

import (
	"log"
	"net/http"

	request "pede_facil/internal/adapter/http/dto/request"
	response "pede_facil/internal/adapter/http/dto/response"
	"pede_facil/internal/usecase"

	"github.com/gin-gonic/gin"
)

// CustomerHandler resolves gateway customers by email or id.

type CustomerHandler struct {
	vault usecase.ICustomerVaultUseCase
}

func NewCustomerHandler(vault usecase.ICustomerVaultUseCase) *CustomerHandler {
	return &CustomerHandler{vault: vault}
}

// FindOrCreate returns the gateway customer for an email, creating one
// when none exists yet.
func (h *CustomerHandler) FindOrCreate(c *gin.Context) {
	var payload request.CustomerRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidPayload.HTTPStatus, errInvalidPayload.ToHTTPError())
		return
	}

	customer, err := h.vault.FindOrCreate(c.Request.Context(), payload.Email)
	if err != nil {
		log.Printf("[customer][handler] find or create failed err=%v", err)
		appErr := mapDomainError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[customer][handler] customer resolved customer_id=%s", customer.ExternalID)

	c.JSON(http.StatusOK, response.FromCustomer(customer))
}

// UpdateCustomer patches the gateway-side customer profile.
func (h *CustomerHandler) UpdateCustomer(c *gin.Context) {
	customerID := c.Param("customer_id")

	var payload request.UpdateCustomerRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidPayload.HTTPStatus, errInvalidPayload.ToHTTPError())
		return
	}

	customer, err := h.vault.Update(c.Request.Context(), customerID, payload.ToPatch())
	if err != nil {
		log.Printf("[customer][handler] update failed customer_id=%s err=%v", customerID, err)
		appErr := mapDomainError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[customer][handler] customer updated customer_id=%s", customer.ExternalID)

	c.JSON(http.StatusOK, response.FromCustomer(customer))
}

// GetCustomer fetches a customer by its gateway id.
func (h *CustomerHandler) GetCustomer(c *gin.Context) {
	customerID := c.Param("customer_id")

	customer, err := h.vault.GetByID(c.Request.Context(), customerID)
	if err != nil {
		log.Printf("[customer][handler] get customer failed customer_id=%s err=%v", customerID, err)
		appErr := mapDomainError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromCustomer(customer))
}
