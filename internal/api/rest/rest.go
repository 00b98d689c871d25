package rest

import (
	"github.com/gin-gonic/gin"

	"github.com/feral-file/ff-dice-registry/internal/api/middleware"
)

// SetupRoutes configures all REST API routes
func SetupRoutes(router *gin.Engine, handler Handler, authCfg middleware.AuthConfig) {
	// Health check endpoint (no auth, no version prefix)
	router.GET("/health", handler.HealthCheck)

	caller := middleware.Caller(authCfg)

	v1 := router.Group("/api/v1")
	{
		v1.GET("/contracts", handler.GetContracts)

		// Dice endpoints
		v1.POST("/dice", caller, handler.Mint)
		v1.GET("/dice/:id", handler.GetDice)
		v1.POST("/dice/:id/transfer", caller, handler.Transfer)
		v1.GET("/owners/:address/dice", handler.GetDiceByOwner)

		// Balance endpoints, funding requires an API key
		v1.GET("/balances/:address", handler.GetBalance)
		v1.POST("/balances/fund", middleware.APIKeyAuth(authCfg), handler.Fund)

		// Battle endpoints
		v1.PUT("/battle/pair", caller, handler.SetBattlePair)
		v1.GET("/battle/pairs/:address", handler.GetBattlePair)
		v1.GET("/battle/deposits/:address", handler.GetArbiterDeposits)
		v1.POST("/battle", caller, handler.Battle)
		v1.POST("/battle/dice/:id/withdraw", caller, handler.WithdrawFromArbiter)

		// Market endpoints
		v1.GET("/market/listings", handler.GetListings)
		v1.GET("/market/listings/:id", handler.GetListing)
		v1.POST("/market/listings/:id", caller, handler.List)
		v1.DELETE("/market/listings/:id", caller, handler.Unlist)
		v1.POST("/market/listings/:id/buy", caller, handler.Buy)
		v1.GET("/market/dice/:id/minimum-price", handler.GetMinimumPrice)
		v1.POST("/market/dice/:id/withdraw", caller, handler.WithdrawFromMarket)

		// Event journal feed
		v1.GET("/events", handler.GetEvents)
	}
}
