package rest

import (
	"github.com/gin-gonic/gin"

	"github.com/soulbind/kyc-attestor/internal/api/middleware"
)

// SetupRoutes configures all REST API routes
func SetupRoutes(router *gin.Engine, handler Handler, authCfg middleware.AuthConfig) {
	// Health check endpoint (no auth, no version prefix)
	router.GET("/healthz", handler.HealthCheck)

	// API v1 routes
	v1 := router.Group("/api/v1")
	{
		// Mint endpoint (requires authentication, the caller redeems its
		// own authorization)
		v1.POST("/credentials/mint", middleware.Auth(authCfg), handler.Mint)

		// Credential endpoints (public read access)
		v1.GET("/credentials/:address", handler.GetCredential)
		v1.GET("/credentials/:address/valid", handler.GetValidity)
		v1.GET("/credentials/key/:key", handler.GetCredentialByKey)

		// Fee quoting (public read access)
		v1.GET("/fees/quote", handler.GetFeeQuote)

		// Identity and account endpoints (public read access)
		v1.GET("/identities/:address/nonce", handler.GetNonce)
		v1.GET("/accounts/:address", handler.GetAccount)

		// Issuer configuration (public read access)
		v1.GET("/issuer", handler.GetIssuer)

		// Admin endpoints (require authentication, service enforces that
		// the caller is the configured admin)
		admin := v1.Group("/admin", middleware.Auth(authCfg))
		{
			admin.PUT("/issuer/public-key", handler.SetPublicKey)
			admin.PUT("/issuer/fee-rate", handler.SetFeeRate)
			admin.PUT("/issuer/price-feed", handler.SetPriceFeed)
			admin.PUT("/credentials/:address/verified", handler.SetVerified)
			admin.PUT("/credentials/:address/expiry", handler.SetExpiry)
			admin.POST("/accounts/:address/credit", handler.CreditAccount)
			admin.POST("/identities/:address/nonce", handler.BumpNonce)
		}
	}
}
