package main

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"scheme-sense.backend/internal/interfaces/http/handlers"
	"scheme-sense.backend/internal/interfaces/http/middleware"
)

type routeDeps struct {
	authHandler        *handlers.AuthHandler
	schemeHandler      *handlers.SchemeHandler
	applicationHandler *handlers.ApplicationHandler
	advisoryHandler    *handlers.AdvisoryHandler
	authMiddleware     gin.HandlerFunc
	adminMiddleware    gin.HandlerFunc
}

func applyCORSMiddleware(r *gin.Engine) {
	r.Use(func(c *gin.Context) {
		origin := c.GetHeader("Origin")
		if origin != "" {
			c.Header("Access-Control-Allow-Origin", origin)
			c.Header("Access-Control-Allow-Credentials", "true")
			c.Header("Access-Control-Allow-Methods", "GET, POST, PUT, PATCH, DELETE, OPTIONS")
			c.Header("Access-Control-Allow-Headers", "Authorization, Content-Type, Idempotency-Key, X-Request-ID")
		}
		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}
		c.Next()
	})
}

func registerHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "ok",
			"service": "scheme-sense-backend",
		})
	})
}

func registerMetricsRoute(r *gin.Engine) {
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))
}

func registerAPIV1Routes(r *gin.Engine, d routeDeps) {
	v1 := r.Group("/api/v1")
	{
		// Auth routes (public)
		auth := v1.Group("/auth")
		{
			auth.POST("/register", d.authHandler.Register)
			auth.POST("/login", d.authHandler.Login)
			auth.POST("/refresh", d.authHandler.RefreshToken)
		}

		// Profile routes (protected)
		user := v1.Group("/user")
		user.Use(d.authMiddleware)
		{
			user.GET("/profile", d.authHandler.GetProfile)
			user.PUT("/profile", d.authHandler.UpdateProfile)
		}

		// Scheme catalog routes (protected)
		schemes := v1.Group("/schemes")
		schemes.Use(d.authMiddleware)
		{
			schemes.GET("/eligible", d.schemeHandler.GetEligibleSchemes)
			schemes.GET("/:id", d.schemeHandler.GetScheme)
		}

		// Location reference routes (public)
		locations := v1.Group("/locations")
		{
			locations.GET("/districts", d.schemeHandler.GetDistricts)
			locations.GET("/districts/:district/blocks", d.schemeHandler.GetBlocks)
		}

		// Application ledger routes (protected)
		applications := v1.Group("/applications")
		applications.Use(d.authMiddleware)
		{
			applications.POST("", middleware.IdempotencyMiddleware(), d.applicationHandler.Apply)
			applications.GET("", d.applicationHandler.ListApplications)
			// Status decisions are administrative, never self-service.
			applications.PATCH("/:id/status", d.adminMiddleware, d.applicationHandler.UpdateStatus)
		}

		// Advisory routes (protected)
		advisory := v1.Group("/advisory")
		advisory.Use(d.authMiddleware)
		{
			advisory.POST("/schemes/:id/advice", d.advisoryHandler.GetAdvice)
			advisory.POST("/conversations", d.advisoryHandler.CreateConversation)
			advisory.POST("/conversations/:id/messages", d.advisoryHandler.SendMessage)
			advisory.DELETE("/conversations/:id", d.advisoryHandler.CloseConversation)
		}
	}
}
