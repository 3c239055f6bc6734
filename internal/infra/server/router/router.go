// Package router sets up the HTTP routing for the application.
package router

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/gift-tracker/backend/internal/integration/entrypoint/controller"
	"github.com/gift-tracker/backend/internal/integration/entrypoint/middleware"
)

// Router holds the Gin engine and controller dependencies.
type Router struct {
	engine               *gin.Engine
	healthController     *controller.HealthController
	authController       *controller.AuthController
	userController       *controller.UserController
	gifteeController     *controller.GifteeController
	giftController       *controller.GiftController
	dashboardController  *controller.DashboardController
	suggestionController *controller.SuggestionController
	loginRateLimiter     *middleware.RateLimiter
	authMiddleware       *middleware.AuthMiddleware
	allowedOrigins       []string
}

// NewRouter creates a new router instance with all dependencies.
func NewRouter(
	healthController *controller.HealthController,
	authController *controller.AuthController,
	userController *controller.UserController,
	gifteeController *controller.GifteeController,
	giftController *controller.GiftController,
	dashboardController *controller.DashboardController,
	suggestionController *controller.SuggestionController,
	loginRateLimiter *middleware.RateLimiter,
	authMiddleware *middleware.AuthMiddleware,
	allowedOrigins []string,
) *Router {
	return &Router{
		healthController:     healthController,
		authController:       authController,
		userController:       userController,
		gifteeController:     gifteeController,
		giftController:       giftController,
		dashboardController:  dashboardController,
		suggestionController: suggestionController,
		loginRateLimiter:     loginRateLimiter,
		authMiddleware:       authMiddleware,
		allowedOrigins:       allowedOrigins,
	}
}

// Setup configures and returns the Gin engine with all routes.
func (r *Router) Setup(environment string) *gin.Engine {
	// Set Gin mode based on environment
	if environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	} else if environment == "test" {
		gin.SetMode(gin.TestMode)
	}

	// Create router with default middleware (logger and recovery)
	r.engine = gin.Default()

	r.engine.Use(r.corsMiddleware())

	// Setup routes
	r.setupHealthRoutes()
	r.setupAPIRoutes()

	return r.engine
}

// corsMiddleware configures cross-origin access for the frontend.
func (r *Router) corsMiddleware() gin.HandlerFunc {
	config := cors.Config{
		AllowMethods:     []string{"GET", "POST", "PATCH", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}
	if len(r.allowedOrigins) > 0 {
		config.AllowOrigins = r.allowedOrigins
	} else {
		config.AllowAllOrigins = true
		config.AllowCredentials = false
	}
	return cors.New(config)
}

// setupHealthRoutes configures health check endpoints.
func (r *Router) setupHealthRoutes() {
	r.engine.GET("/health", r.healthController.Check)
}

// setupAPIRoutes configures the main API routes.
func (r *Router) setupAPIRoutes() {
	// API v1 group
	v1 := r.engine.Group("/api/v1")
	{
		// Auth routes (only setup if auth controller is available)
		if r.authController != nil && r.loginRateLimiter != nil {
			auth := v1.Group("/auth")
			{
				auth.POST("/register", r.authController.Register)
				auth.POST("/login", r.loginRateLimiter.Middleware(), r.authController.Login)
				auth.POST("/refresh", r.authController.RefreshToken)
				auth.POST("/logout", r.authController.Logout)
				auth.POST("/forgot-password", r.authController.ForgotPassword)
				auth.POST("/reset-password", r.authController.ResetPassword)
			}
		}

		// User routes (require authentication)
		if r.userController != nil && r.authMiddleware != nil {
			users := v1.Group("/users")
			users.Use(r.authMiddleware.Authenticate())
			{
				users.DELETE("/me", r.userController.DeleteAccount)
			}
		}

		// Giftee routes (require authentication)
		if r.gifteeController != nil && r.authMiddleware != nil {
			giftees := v1.Group("/giftees")
			giftees.Use(r.authMiddleware.Authenticate())
			{
				giftees.GET("", r.gifteeController.List)
				giftees.POST("", r.gifteeController.Create)
				giftees.GET("/:id", r.gifteeController.Get)
				giftees.PATCH("/:id", r.gifteeController.Update)
				giftees.DELETE("/:id", r.gifteeController.Delete)

				// Gift routes nested under a giftee
				if r.giftController != nil {
					giftees.GET("/:id/gifts", r.giftController.List)
					giftees.POST("/:id/gifts", r.giftController.Create)
				}
			}
		}

		// Gift routes addressed by gift ID (require authentication)
		if r.giftController != nil && r.authMiddleware != nil {
			gifts := v1.Group("/gifts")
			gifts.Use(r.authMiddleware.Authenticate())
			{
				gifts.GET("", r.giftController.ListAll)
				gifts.PATCH("/:id", r.giftController.Update)
				gifts.PATCH("/:id/status", r.giftController.UpdateStatus)
				gifts.DELETE("/:id", r.giftController.Delete)
			}
		}

		// Dashboard routes (require authentication)
		if r.dashboardController != nil && r.authMiddleware != nil {
			dashboard := v1.Group("/dashboard")
			dashboard.Use(r.authMiddleware.Authenticate())
			{
				dashboard.GET("/overview", r.dashboardController.GetOverview)
				dashboard.POST("/email-digest", r.dashboardController.EmailDigest)
			}
		}

		// Suggestion routes (require authentication)
		if r.suggestionController != nil && r.authMiddleware != nil {
			suggestions := v1.Group("/suggestions")
			suggestions.Use(r.authMiddleware.Authenticate())
			{
				suggestions.POST("/brainstorm", r.suggestionController.Brainstorm)
				suggestions.POST("/save", r.suggestionController.Save)
				suggestions.GET("/scenarios", r.suggestionController.ListScenarios)
			}
		}
	}
}

// Engine returns the underlying Gin engine.
func (r *Router) Engine() *gin.Engine {
	return r.engine
}
