package routes

import (
	"github.com/gin-gonic/gin"
	coreport "github.com/scorepulse/scorepulse/internal/domain/port/core"
	"github.com/scorepulse/scorepulse/internal/infrastructure/adapter/api/handler"
	"github.com/scorepulse/scorepulse/internal/infrastructure/adapter/api/middleware"
)

// SetupRoutes configures all the routes for the API
func SetupRoutes(
	router *gin.Engine,
	paymentHandler *handler.PaymentHandler,
	predictionHandler *handler.PredictionHandler,
	accountHandler *handler.AccountHandler,
) {
	// Payment routes
	paymentRoutes := router.Group("/payment")
	{
		// POST /payment/initiate
		paymentRoutes.POST("/initiate", paymentHandler.Initiate)

		// POST /payment/webhook
		paymentRoutes.POST("/webhook", paymentHandler.Webhook)
	}

	// POST /prediction
	router.POST("/prediction", predictionHandler.Predict)

	// POST /account
	router.POST("/account", accountHandler.Create)

	// Account routes
	accountRoutes := router.Group("/account")
	{
		// GET /account/:accountId
		accountRoutes.GET("/:accountId", accountHandler.Get)

		// GET /account/:accountId/predictions
		accountRoutes.GET("/:accountId/predictions", predictionHandler.History)
	}

	// GET /admin/stats
	router.GET("/admin/stats", accountHandler.Stats)
}

// SetupMiddlewares configures global middlewares for the API
func SetupMiddlewares(router *gin.Engine, logger coreport.Logger) {
	// Apply middlewares in the correct order
	router.Use(middleware.ErrorHandler(logger))
	router.Use(middleware.Logger(logger))
	router.Use(middleware.CORS())
}
