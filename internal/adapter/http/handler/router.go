package handler

import (
	"charity-mandate-gateway/internal/adapter/http/middleware"
	redisStore "charity-mandate-gateway/internal/adapter/storage/redis"
	"charity-mandate-gateway/internal/core/ports"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// RouterDeps holds all dependencies needed to set up routes.
type RouterDeps struct {
	IntentSvc      ports.IntentService
	OfferSvc       ports.OfferService
	ConsentSvc     ports.ConsentService
	PaymentSvc     ports.PaymentService
	AuditSvc       ports.AuditService
	Catalog        ports.CharityCatalog
	TokenSvc       ports.TokenService
	Store          ports.MandateStore
	RateLimitStore *redisStore.RateLimitStore // nil = rate limiting disabled
	HealthCheckers []ports.HealthChecker
	Logger         zerolog.Logger
}

// SetupRouter initialises the Gin engine with all routes and middleware.
func SetupRouter(deps RouterDeps) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()

	// Global middleware
	r.Use(middleware.Recovery(deps.Logger))
	r.Use(middleware.RequestID())
	r.Use(middleware.RequestLogger(deps.Logger))
	r.Use(middleware.MaxBodySize(1 << 20)) // 1 MB request body limit

	// Health check (deep, verifies the session backend)
	r.GET("/health", HealthCheck(deps.HealthCheckers...))

	// Rate limit rules
	rules := middleware.DefaultRateLimitRules()

	// Helper: return rate limiter middleware if store is available, else noop.
	rl := func(group string) gin.HandlerFunc {
		if deps.RateLimitStore == nil {
			return func(c *gin.Context) { c.Next() }
		}
		rule, ok := rules[group]
		if !ok {
			return func(c *gin.Context) { c.Next() }
		}
		return middleware.RateLimiter(deps.RateLimitStore, group, rule, deps.Logger)
	}

	// API v1 routes
	v1 := r.Group("/api/v1")

	// --- Public routes (no auth) ---
	charityHandler := NewCharityHandler(deps.Catalog)
	v1.GET("/charities", rl("charities"), charityHandler.ListByCause)

	sessionHandler := NewSessionHandler(deps.TokenSvc, deps.Store, deps.ConsentSvc)
	v1.POST("/sessions", rl("sessions"), sessionHandler.Create)

	// --- Session-authenticated routes (donation pipeline) ---
	sessionAuth := middleware.SessionAuth(deps.TokenSvc, deps.Logger)
	pipelineHandler := NewPipelineHandler(deps.IntentSvc, deps.OfferSvc, deps.ConsentSvc, deps.PaymentSvc, deps.AuditSvc)

	session := v1.Group("/session", sessionAuth)
	{
		session.GET("", rl("pipeline"), sessionHandler.Snapshot)
		session.DELETE("", rl("pipeline"), sessionHandler.Delete)
		session.POST("/intent", rl("pipeline"), pipelineHandler.CreateIntent)
		session.POST("/offer", rl("pipeline"), pipelineHandler.CreateOffer)
		session.GET("/consent", rl("pipeline"), pipelineHandler.GetConsentPrompt)
		session.POST("/consent", rl("pipeline"), pipelineHandler.ResolveConsent)
		session.POST("/payment", rl("pipeline"), pipelineHandler.ProcessPayment)
		session.GET("/audit", rl("pipeline"), pipelineHandler.Audit)
	}

	return r
}
