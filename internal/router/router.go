// Package router wires handlers and middleware into the Gin engine.
package router

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"expensetracker/internal/auth"
	"expensetracker/internal/config"
	"expensetracker/internal/handler"
	"expensetracker/internal/middleware"
	"expensetracker/internal/storage"
)

// Setup configures the Gin engine with all routes and middleware.
func Setup(cfg *config.Config, store storage.Store, jwtManager *auth.JWTManager) *gin.Engine {
	if cfg.Server.Mode != "" {
		gin.SetMode(cfg.Server.Mode)
	}
	r := gin.New()
	r.Use(gin.Recovery(), middleware.RequestLogger(), middleware.Metrics(), cors())

	authenticator := auth.NewPasswordAuthenticator(store)
	authHandler := handler.NewAuthHandler(authenticator, jwtManager)
	expenseHandler := handler.NewExpenseHandler(store)
	analyticsHandler := handler.NewAnalyticsHandler(store)
	categoryHandler := handler.NewCategoryHandler(store)

	r.GET("/api/health", handler.Health)
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	api := r.Group("/api")
	{
		api.POST("/auth/register", authHandler.Register)
		api.POST("/auth/login", authHandler.Login)
	}

	// Every route below reads the owner identity from the validated token.
	protected := api.Group("")
	protected.Use(middleware.RequireAuth(jwtManager))
	{
		protected.GET("/analytics/summary", analyticsHandler.Summary)

		protected.POST("/expenses", expenseHandler.Create)
		protected.GET("/expenses", expenseHandler.List)
		protected.GET("/expenses/:id", expenseHandler.Get)
		protected.PUT("/expenses/:id", expenseHandler.Update)
		protected.DELETE("/expenses/:id", expenseHandler.Delete)

		protected.GET("/categories", categoryHandler.List)
	}

	return r
}

// cors adds the headers browser clients need. The API is bearer-token
// authenticated, so a permissive origin policy is acceptable.
func cors() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	}
}
