package usecase

import (
	"errors"
	"net/http"

	"pede_facil/internal/usecase/interfaces"
)

var (
	ErrCustomerNotFound = errors.New("customer not found")
	ErrCardNotFound     = errors.New("card not found")
	ErrPaymentNotFound  = errors.New("payment not found")
	ErrRefundNotFound   = errors.New("refund not found")

	ErrInvalidToken     = errors.New("card token invalid or expired")
	ErrRefundNotAllowed = errors.New("refund not allowed: payment is not approved")

	ErrGatewayUnauthorized = errors.New("payment gateway credentials rejected")

	// Category sentinels. Specific upstream failures wrap one of these with
	// a translated message, so callers can branch with errors.Is while logs
	// keep the precise cause.
	ErrTokenization = errors.New("tokenization failed")
	ErrPayment      = errors.New("payment failed")
	ErrRefund       = errors.New("refund failed")
)

func isGatewayNotFound(err error) bool {
	var gwErr *interfaces.GatewayError
	return errors.As(err, &gwErr) && gwErr.StatusCode == http.StatusNotFound
}

func isGatewayUnauthorized(err error) bool {
	var gwErr *interfaces.GatewayError
	return errors.As(err, &gwErr) &&
		(gwErr.StatusCode == http.StatusUnauthorized || gwErr.StatusCode == http.StatusForbidden)
}

func asGatewayError(err error) (*interfaces.GatewayError, bool) {
	var gwErr *interfaces.GatewayError
	ok := errors.As(err, &gwErr)
	return gwErr, ok
}
