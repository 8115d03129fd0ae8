package routes

import (
	"log"
	_ "repairdeck/docs" // This will be auto-generated
	"repairdeck/internal/adapter/http/handlers"
	repository2 "repairdeck/internal/adapter/persistence/repository"
	"repairdeck/internal/infrastructure/database"
	"repairdeck/internal/infrastructure/payments"
	"repairdeck/internal/usecase"
	"repairdeck/internal/usecase/interfaces"
	"os"
	"strconv"

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
	ddb := database.ConnectDynamoDB()

	ticketRepo := repository2.NewTicketDynamoRepository(ddb)
	estimateRepo := repository2.NewEstimateDynamoRepository(ddb)
	invoiceRepo := repository2.NewInvoiceDynamoRepository(ddb)
	employeeRepo := repository2.NewEmployeeDynamoRepository(ddb)
	settingsRepo := repository2.NewSettingsDynamoRepository(ddb)

	var paymentGateway interfaces.IPaymentGateway
	mpGateway, err := payments.NewMercadoPagoGateway(os.Getenv("MERCADOPAGO_ACCESS_TOKEN"))
	if err != nil {
		log.Printf("Mercado Pago gateway not configured: %v", err)
	} else {
		paymentGateway = mpGateway
	}

	pinProvider := usecase.NewEmployeePinProvider(employeeRepo)

	ticketUseCase := usecase.NewTicketUseCase(ticketRepo, invoiceRepo)
	estimateUseCase := usecase.NewEstimateUseCase(estimateRepo, ticketRepo, settingsRepo)
	invoiceUseCase := usecase.NewInvoiceUseCase(invoiceRepo, estimateRepo, ticketRepo, settingsRepo, pinProvider, paymentGateway)
	settingsUseCase := usecase.NewSettingsUseCase(settingsRepo)

	ticketHandler := handlers.NewTicketHandler(ticketUseCase)
	estimateHandler := handlers.NewEstimateHandler(estimateUseCase)
	invoiceHandler := handlers.NewInvoiceHandler(invoiceUseCase)
	settingsHandler := handlers.NewSettingsHandler(settingsUseCase)

	// Rotas publicas
	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addShopRoutes(v1, ticketHandler, estimateHandler, invoiceHandler, settingsHandler)
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}
