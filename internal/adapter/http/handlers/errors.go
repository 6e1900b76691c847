package handlers

import (
	"errors"
	"net/http"

	"pede_facil/internal/domain/entities"
	"pede_facil/internal/usecase"
	"pede_facil/internal/usecase/interfaces"
	"pede_facil/pkg"
)

// mapDomainError translates usecase failures into the HTTP error envelope.
// Shared by every handler so status codes stay consistent per error
// category.
func mapDomainError(err error) *pkg.AppError {
	var validationErr *entities.ValidationError
	switch {
	case errors.As(err, &validationErr):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", validationErr.Error(), http.StatusBadRequest)
	case errors.Is(err, entities.ErrInvalidCardNumber):
		return pkg.NewDomainErrorSimple("INVALID_CARD_NUMBER", "Card number must have between 13 and 19 digits", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrCustomerNotFound):
		return pkg.NewDomainErrorSimple("CUSTOMER_NOT_FOUND", "Customer not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrCardNotFound):
		return pkg.NewDomainErrorSimple("CARD_NOT_FOUND", "Card not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrPaymentNotFound):
		return pkg.NewDomainErrorSimple("PAYMENT_NOT_FOUND", "Payment not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrRefundNotFound):
		return pkg.NewDomainErrorSimple("REFUND_NOT_FOUND", "Refund not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrRefundNotAllowed):
		return pkg.NewDomainErrorSimple("REFUND_NOT_ALLOWED", "Only approved payments can be refunded", http.StatusConflict)
	case errors.Is(err, usecase.ErrInvalidToken):
		return pkg.NewDomainErrorSimple("INVALID_CARD_TOKEN", "Card token invalid or expired", http.StatusUnprocessableEntity)
	case errors.Is(err, usecase.ErrTokenization):
		return pkg.NewDomainErrorSimple("TOKENIZATION_FAILED", err.Error(), http.StatusUnprocessableEntity)
	case errors.Is(err, usecase.ErrPayment):
		return pkg.NewDomainErrorSimple("PAYMENT_FAILED", err.Error(), http.StatusUnprocessableEntity)
	case errors.Is(err, usecase.ErrRefund):
		return pkg.NewDomainErrorSimple("REFUND_FAILED", err.Error(), http.StatusUnprocessableEntity)
	case errors.Is(err, usecase.ErrGatewayUnauthorized):
		return pkg.NewDomainErrorSimple("PAYMENT_PROVIDER_UNAUTHORIZED", "Payment provider rejected the credentials", http.StatusUnauthorized)
	case errors.Is(err, interfaces.ErrGatewayUnavailable):
		return pkg.NewDomainErrorSimple("PAYMENT_PROVIDER_UNAVAILABLE", "Payment provider unavailable, try again later", http.StatusBadGateway)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}

var errInvalidPayload = pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
