package handler

import (
	"casino-wallet-gateway/internal/adapter/http/middleware"
	"casino-wallet-gateway/internal/core/ports"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// RouterDeps holds all dependencies needed to set up routes.
type RouterDeps struct {
	WalletSvc      ports.WalletService
	HealthCheckers []ports.HealthChecker
	Logger         zerolog.Logger
}

// SetupRouter initialises the Gin engine: the operational surface plus the
// integration endpoints the channel adapters call with the standardized
// wallet operation shape. Provider authentication and rate limiting live in
// front of the gateway.
func SetupRouter(deps RouterDeps) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()

	r.Use(middleware.Recovery(deps.Logger))
	r.Use(middleware.RequestLogger(deps.Logger))

	r.GET("/health", Liveness())
	r.GET("/ready", Readiness(deps.HealthCheckers...))

	if deps.WalletSvc != nil {
		h := NewWalletHandler(deps.WalletSvc)
		wallet := r.Group("/integration/v1/wallet")
		{
			wallet.POST("/debit", h.Debit)
			wallet.POST("/credit", h.Credit)
			wallet.POST("/deposit", h.Deposit)
			wallet.POST("/bonus", h.BonusCredit)
		}
	}

	return r
}
