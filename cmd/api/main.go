// Package main is the entry point for the Gift Tracker API server.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"

	"github.com/gift-tracker/backend/config"
	"github.com/gift-tracker/backend/internal/application/adapter"
	"github.com/gift-tracker/backend/internal/application/usecase/auth"
	"github.com/gift-tracker/backend/internal/application/usecase/dashboard"
	"github.com/gift-tracker/backend/internal/application/usecase/gift"
	"github.com/gift-tracker/backend/internal/application/usecase/giftee"
	"github.com/gift-tracker/backend/internal/application/usecase/suggestion"
	"github.com/gift-tracker/backend/internal/infra/db"
	"github.com/gift-tracker/backend/internal/infra/server/router"
	"github.com/gift-tracker/backend/internal/integration/adapters"
	"github.com/gift-tracker/backend/internal/integration/email"
	"github.com/gift-tracker/backend/internal/integration/email/templates"
	"github.com/gift-tracker/backend/internal/integration/entrypoint/controller"
	"github.com/gift-tracker/backend/internal/integration/entrypoint/middleware"
	"github.com/gift-tracker/backend/internal/integration/persistence"
	"github.com/gift-tracker/backend/internal/integration/persistence/model"
)

func main() {
	// Load .env file if it exists (development only)
	_ = godotenv.Load()

	// Initialize structured logger
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	// Load configuration
	cfg := config.Load()

	slog.Info("Starting Gift Tracker API",
		"environment", cfg.Server.Environment,
		"host", cfg.Server.Host,
		"port", cfg.Server.Port,
	)

	// Initialize database connection
	var database *db.Database
	var dbHealthChecker func() bool

	database, err := db.NewPostgresConnection(&cfg.Database)
	if err != nil {
		slog.Warn("Database connection failed, running without database",
			"error", err,
		)
		database = nil
		dbHealthChecker = func() bool { return false }
	} else {
		// Run database migrations
		if err := database.AutoMigrate(
			&model.UserModel{},
			&model.RefreshTokenModel{},
			&model.PasswordResetTokenModel{},
			&model.GifteeModel{},
			&model.GiftIdeaModel{},
			&model.EmailQueueModel{},
		); err != nil {
			slog.Error("Failed to run database migrations", "error", err)
			os.Exit(1)
		}
		slog.Info("Database migrations completed successfully")

		dbHealthChecker = database.HealthCheck
		defer func() {
			if err := database.Close(); err != nil {
				slog.Error("Failed to close database connection", "error", err)
			}
		}()
	}

	// Create health controller with database health checker
	healthController := controller.NewHealthController(dbHealthChecker)

	// Create controllers and middleware (only if database is available)
	var authController *controller.AuthController
	var userController *controller.UserController
	var gifteeController *controller.GifteeController
	var giftController *controller.GiftController
	var dashboardController *controller.DashboardController
	var suggestionController *controller.SuggestionController
	var loginRateLimiter *middleware.RateLimiter
	var authMiddleware *middleware.AuthMiddleware
	var emailWorker *email.Worker

	if database != nil {
		// Create repositories
		userRepo := persistence.NewUserRepository(database.DB())
		tokenRepo := persistence.NewTokenRepository(database.DB())
		gifteeRepo := persistence.NewGifteeRepository(database.DB())
		giftRepo := persistence.NewGiftRepository(database.DB())
		emailQueueRepo := persistence.NewEmailQueueRepository(database.DB())

		// Create adapters/services
		passwordService := adapters.NewPasswordService()
		tokenService := adapters.NewTokenService(
			cfg.JWT.Secret,
			cfg.JWT.AccessTokenExpiry,
			cfg.JWT.RefreshTokenExpiry,
			tokenRepo,
		)
		resetTokenService := adapters.NewResetTokenService(tokenRepo)
		emailService := email.NewService(emailQueueRepo)
		suggestionService := adapters.NewGeminiService(cfg.AI.GeminiAPIKey, cfg.AI.Model, cfg.AI.Timeout)
		suggestionCache := newSuggestionCache(cfg)

		// Create auth use cases
		registerUseCase := auth.NewRegisterUserUseCase(userRepo, passwordService, tokenService)
		loginUseCase := auth.NewLoginUserUseCase(userRepo, passwordService, tokenService)
		refreshTokenUseCase := auth.NewRefreshTokenUseCase(tokenService)
		logoutUseCase := auth.NewLogoutUserUseCase(tokenService)
		forgotPasswordUseCase := auth.NewForgotPasswordUseCase(userRepo, resetTokenService, emailService)
		resetPasswordUseCase := auth.NewResetPasswordUseCase(userRepo, passwordService, resetTokenService)
		deleteAccountUseCase := auth.NewDeleteAccountUseCase(userRepo, passwordService)

		// Create giftee use cases
		listGifteesUseCase := giftee.NewListGifteesUseCase(gifteeRepo)
		createGifteeUseCase := giftee.NewCreateGifteeUseCase(gifteeRepo)
		getGifteeUseCase := giftee.NewGetGifteeUseCase(gifteeRepo, giftRepo)
		updateGifteeUseCase := giftee.NewUpdateGifteeUseCase(gifteeRepo)
		deleteGifteeUseCase := giftee.NewDeleteGifteeUseCase(gifteeRepo)

		// Create gift use cases
		createGiftUseCase := gift.NewCreateGiftUseCase(giftRepo, gifteeRepo)
		listGiftsUseCase := gift.NewListGiftsUseCase(giftRepo, gifteeRepo)
		listAllGiftsUseCase := gift.NewListAllGiftsUseCase(giftRepo, gifteeRepo)
		updateGiftUseCase := gift.NewUpdateGiftUseCase(giftRepo, gifteeRepo)
		updateGiftStatusUseCase := gift.NewUpdateGiftStatusUseCase(giftRepo, gifteeRepo)
		deleteGiftUseCase := gift.NewDeleteGiftUseCase(giftRepo, gifteeRepo)

		// Create dashboard and suggestion use cases
		getOverviewUseCase := dashboard.NewGetOverviewUseCase(gifteeRepo, giftRepo)
		sendDigestUseCase := dashboard.NewSendDigestUseCase(userRepo, gifteeRepo, giftRepo, emailService)
		brainstormUseCase := suggestion.NewBrainstormGiftsUseCase(gifteeRepo, suggestionService, suggestionCache, logger)
		saveSuggestionUseCase := suggestion.NewSaveSuggestionUseCase(giftRepo, gifteeRepo)
		listScenariosUseCase := suggestion.NewListScenariosUseCase(suggestionService)

		// Create controllers
		authController = controller.NewAuthController(
			registerUseCase,
			loginUseCase,
			refreshTokenUseCase,
			logoutUseCase,
			forgotPasswordUseCase,
			resetPasswordUseCase,
			cfg.Email.AppBaseURL,
		)
		userController = controller.NewUserController(deleteAccountUseCase)
		gifteeController = controller.NewGifteeController(
			listGifteesUseCase,
			createGifteeUseCase,
			getGifteeUseCase,
			updateGifteeUseCase,
			deleteGifteeUseCase,
		)
		giftController = controller.NewGiftController(
			createGiftUseCase,
			listGiftsUseCase,
			listAllGiftsUseCase,
			updateGiftUseCase,
			updateGiftStatusUseCase,
			deleteGiftUseCase,
		)
		dashboardController = controller.NewDashboardController(getOverviewUseCase, sendDigestUseCase)
		suggestionController = controller.NewSuggestionController(
			brainstormUseCase,
			saveSuggestionUseCase,
			listScenariosUseCase,
		)

		// Create middleware
		loginRateLimiter = middleware.NewRateLimiter()
		authMiddleware = middleware.NewAuthMiddleware(tokenService)

		emailWorker = newEmailWorker(cfg, emailQueueRepo)

		slog.Info("Application systems initialized successfully")
	} else {
		slog.Warn("API systems not initialized due to missing database connection")
	}

	// Setup router
	r := router.NewRouter(
		healthController,
		authController,
		userController,
		gifteeController,
		giftController,
		dashboardController,
		suggestionController,
		loginRateLimiter,
		authMiddleware,
		cfg.Server.AllowedOrigins,
	)
	engine := r.Setup(cfg.Server.Environment)

	// Start the email delivery worker
	workerCtx, stopWorker := context.WithCancel(context.Background())
	defer stopWorker()
	if emailWorker != nil {
		go emailWorker.Start(workerCtx)
		slog.Info("Email delivery worker started",
			"poll_interval", cfg.Email.PollInterval,
			"batch_size", cfg.Email.BatchSize,
		)
	}

	// Create HTTP server
	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:         addr,
		Handler:      engine,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	// Start server in a goroutine
	go func() {
		slog.Info("Server listening", "address", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("Server failed to start", "error", err)
			os.Exit(1)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.Info("Shutting down server...")
	stopWorker()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		slog.Error("Server forced to shutdown", "error", err)
		os.Exit(1)
	}

	slog.Info("Server exited properly")
}

// newSuggestionCache connects to Redis for brainstorm caching. A missing or
// unreachable Redis degrades to uncached brainstorming rather than failing
// startup.
func newSuggestionCache(cfg *config.Config) adapter.SuggestionCache {
	opts, err := redis.ParseURL(cfg.Redis.URL)
	if err != nil {
		slog.Warn("Invalid Redis URL, brainstorm caching disabled", "error", err)
		return nil
	}
	if cfg.Redis.Password != "" {
		opts.Password = cfg.Redis.Password
	}
	if cfg.Redis.DB != 0 {
		opts.DB = cfg.Redis.DB
	}

	client := redis.NewClient(opts)

	pingCtx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		slog.Warn("Redis unreachable, brainstorm caching disabled", "error", err)
		return nil
	}

	slog.Info("Redis connected", "url", cfg.Redis.URL)
	return adapters.NewSuggestionCache(client, cfg.AI.CacheTTL)
}

// newEmailWorker builds the email delivery worker, or nil when email is
// disabled or not configured.
func newEmailWorker(cfg *config.Config, queue adapter.EmailQueueRepository) *email.Worker {
	if !cfg.Email.WorkerEnabled {
		slog.Info("Email delivery worker disabled by configuration")
		return nil
	}
	if cfg.Email.ResendAPIKey == "" {
		slog.Warn("RESEND_API_KEY not set, email delivery worker disabled")
		return nil
	}

	renderer, err := templates.NewRenderer()
	if err != nil {
		slog.Error("Failed to parse email templates", "error", err)
		return nil
	}

	sender := email.NewResendClient(cfg.Email.ResendAPIKey, cfg.Email.FromName, cfg.Email.FromEmail)
	return email.NewWorker(queue, sender, renderer, email.WorkerConfig{
		PollInterval: cfg.Email.PollInterval,
		BatchSize:    cfg.Email.BatchSize,
	})
}
