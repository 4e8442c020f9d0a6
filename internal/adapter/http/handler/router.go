package handler

import (
	"recharge-gateway/internal/adapter/http/middleware"
	"recharge-gateway/internal/core/ports"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// RouterDeps holds all dependencies needed to set up routes.
type RouterDeps struct {
	OrderSvc       ports.OrderService
	PackageRepo    ports.PackageRepository
	OrderRepo      ports.OrderRepository
	Notifier       ports.CallbackNotifier
	HealthCheckers []ports.HealthChecker
	Mode           string // gin mode: debug, test or release
	Logger         zerolog.Logger
}

// SetupRouter initialises the Gin engine with all routes and middleware.
func SetupRouter(deps RouterDeps) *gin.Engine {
	if deps.Mode != "" {
		gin.SetMode(deps.Mode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()

	// Global middleware
	r.Use(middleware.Recovery(deps.Logger))
	r.Use(middleware.RequestID())
	r.Use(middleware.RequestLogger(deps.Logger))
	r.Use(middleware.MaxBodySize(1 << 20)) // 1 MB request body limit

	// Health check (deep — verifies PostgreSQL + Redis)
	r.GET("/health", HealthCheck(deps.HealthCheckers...))

	v1 := r.Group("/api/v1")

	// --- Platform routes ---
	orderHandler := NewOrderHandler(deps.OrderSvc, deps.PackageRepo)
	v1.POST("/orders", orderHandler.Create)
	v1.GET("/packages", orderHandler.ListPackages)

	// --- Signed merchant API (verification happens in the service) ---
	externalHandler := NewExternalHandler(deps.OrderSvc)
	external := v1.Group("/external")
	{
		external.POST("/orders", externalHandler.CreateOrder)
		external.GET("/orders/:business_order_id", externalHandler.QueryOrder)
	}

	// --- Inbound gateway callbacks (plain-text protocol) ---
	webhookHandler := NewWebhookHandler(deps.OrderSvc, deps.Logger)
	v1.POST("/callbacks/:channel", webhookHandler.Callback)

	// --- Operator routes ---
	adminHandler := NewAdminHandler(deps.OrderRepo, deps.Notifier)
	v1.POST("/admin/orders/:id/retry-callback", adminHandler.RetryCallback)

	return r
}
