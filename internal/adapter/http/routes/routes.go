package routes

import (
	"log"
	"strconv"

	_ "pede_facil/docs" // This will be auto-generated
	"pede_facil/internal/adapter/http/handlers"
	repository2 "pede_facil/internal/adapter/persistence/repository"
	"pede_facil/internal/infrastructure/database"
	"pede_facil/internal/infrastructure/payments"
	"pede_facil/internal/notifications"
	"pede_facil/internal/usecase"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

var router = gin.Default()

const PORT = 8080

// Run will start the server
func Run() {
	setMiddlewares()

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	getRoutes()

	err := router.Run(":" + strconv.Itoa(PORT))
	if err != nil {
		log.Fatalf("Failed to startup the application: %v", err.Error())
	}
}

func getRoutes() {
	cfg, err := payments.NewConfigFromEnv()
	if err != nil {
		log.Fatalf("Payment provider not configured: %v", err)
	}
	gateway := payments.NewClient(cfg)

	ddb := database.ConnectDynamoDB()
	customerRepo := repository2.NewCustomerDynamoRepository(ddb)
	cardRepo := repository2.NewCardDynamoRepository(ddb)

	registry := notifications.NewRegistry()

	tokenizerUseCase := usecase.NewTokenizerUseCase(gateway)
	customerVaultUseCase := usecase.NewCustomerVaultUseCase(gateway, customerRepo)
	cardVaultUseCase := usecase.NewCardVaultUseCase(gateway, cardRepo)
	chargeUseCase := usecase.NewChargeUseCase(gateway, gateway, tokenizerUseCase)
	statusUseCase := usecase.NewStatusUseCase(gateway, registry)
	refundUseCase := usecase.NewRefundUseCase(statusUseCase, gateway)

	paymentHandler := handlers.NewPaymentHandler(chargeUseCase, statusUseCase)
	cardHandler := handlers.NewCardHandler(tokenizerUseCase, cardVaultUseCase)
	customerHandler := handlers.NewCustomerHandler(customerVaultUseCase)
	refundHandler := handlers.NewRefundHandler(refundUseCase)
	webhookHandler := handlers.NewWebhookHandler(statusUseCase)

	// Rotas publicas
	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addPaymentRoutes(v1, paymentHandler, refundHandler)
	addCustomerRoutes(v1, customerHandler, cardHandler)

	// The gateway posts notifications at the root, outside /v1.
	router.POST("/webhook", webhookHandler.Receive)
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}
