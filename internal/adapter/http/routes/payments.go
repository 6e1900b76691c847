package routes

import (
	"pede_facil/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathPayments  = "/payments"
	PathCustomers = "/customers"
	PathCards     = "/cards"
)

func addPaymentRoutes(rg *gin.RouterGroup, paymentHandler *handlers.PaymentHandler, refundHandler *handlers.RefundHandler) {
	payments := rg.Group(PathPayments)
	{
		payments.POST("/card", paymentHandler.ChargeCard)
		payments.POST("/pix", paymentHandler.ChargePix)
		payments.POST("/saved-card", paymentHandler.ChargeSavedCard)
		payments.GET("/:payment_id", paymentHandler.GetPayment)
		payments.POST("/:payment_id/refunds", refundHandler.CreateRefund)
	}
}

func addCustomerRoutes(rg *gin.RouterGroup, customerHandler *handlers.CustomerHandler, cardHandler *handlers.CardHandler) {
	customers := rg.Group(PathCustomers)
	{
		customers.POST("", customerHandler.FindOrCreate)
		customers.GET("/:customer_id", customerHandler.GetCustomer)
		customers.PUT("/:customer_id", customerHandler.UpdateCustomer)

		customers.POST("/:customer_id"+PathCards, cardHandler.AddCard)
		customers.GET("/:customer_id"+PathCards, cardHandler.ListCards)
		customers.DELETE("/:customer_id"+PathCards+"/:card_id", cardHandler.RemoveCard)
	}

	// Tokenization does not belong to a customer.
	rg.POST("/card-tokens", cardHandler.TokenizeCard)
}
