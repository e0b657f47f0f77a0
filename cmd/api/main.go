package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	ginzap "github.com/gin-contrib/zap"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/Yash-4120/applyflow/internal/auth"
	"github.com/Yash-4120/applyflow/internal/config"
	"github.com/Yash-4120/applyflow/internal/handlers"
	"github.com/Yash-4120/applyflow/internal/integrations"
	"github.com/Yash-4120/applyflow/internal/services"
	"github.com/Yash-4120/applyflow/internal/store"
)

func main() {
	// 1. Environment + config
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		panic("failed to load config: " + err.Error())
	}

	logger := buildLogger(cfg.LogLevel)
	defer logger.Sync()
	zap.ReplaceGlobals(logger)

	// 2. Stores (constructed once, injected everywhere)
	var jobStore *store.JobStore
	if cfg.SeedData {
		jobStore = store.NewJobStore(store.SampleJobs()...)
	} else {
		jobStore = store.NewJobStore()
	}
	columnStore := store.NewColumnStore(store.DefaultColumns()...)

	// 3. Services and external collaborators
	jobService := services.NewJobService(jobStore, columnStore)
	brandClient := integrations.NewBrandClient(cfg.BrandfetchClientID)
	authClient := auth.NewProviderClient(cfg.AuthProviderURL, cfg.AuthAPIKey, cfg.AuthCallbackURL)

	// 4. Handlers
	jobHandler := handlers.NewJobHandler(jobService)
	companyHandler := handlers.NewCompanyHandler(brandClient)
	authHandler := handlers.NewAuthHandler(authClient)

	// 5. Router + middleware
	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(ginzap.Ginzap(logger, time.RFC3339, true))
	router.Use(ginzap.RecoveryWithZap(logger, true))

	corsConfig := cors.DefaultConfig()
	corsConfig.AllowAllOrigins = true // For development only
	corsConfig.AllowHeaders = []string{"Origin", "Content-Length", "Content-Type", "Authorization"}
	router.Use(cors.New(corsConfig))

	// 6. Routes
	api := router.Group("/api")
	{
		api.GET("/health", handlers.HealthCheck)

		api.GET("/applications", jobHandler.ListJobs)
		api.POST("/applications", jobHandler.CreateJob)
		api.GET("/applications/:id", jobHandler.GetJob)
		api.PUT("/applications/:id", jobHandler.UpdateJob)
		api.DELETE("/applications/:id", jobHandler.DeleteJob)

		api.GET("/columns", jobHandler.ListColumns)
		api.GET("/companies/search", companyHandler.Search)

		api.POST("/auth/login", authHandler.Login)
		api.POST("/auth/signup", authHandler.Signup)
		api.POST("/auth/logout", authHandler.Logout)
		api.GET("/auth/oauth/:provider", authHandler.OAuth)
	}

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	zap.L().Info("Starting server", zap.String("port", cfg.Port))
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			zap.L().Fatal("Server error", zap.Error(err))
		}
	}()

	// 7. Graceful shutdown
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	sig := <-sigCh
	zap.L().Info("Shutdown initiated", zap.String("signal", sig.String()))

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		zap.L().Error("Error shutting down server", zap.Error(err))
	} else {
		zap.L().Info("HTTP server shut down gracefully.")
	}
}

func buildLogger(levelStr string) *zap.Logger {
	level, err := zapcore.ParseLevel(levelStr)
	if err != nil {
		level = zapcore.InfoLevel
	}

	encoderConfig := zap.NewDevelopmentEncoderConfig()
	encoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	encoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	cfg := zap.Config{
		Level:            zap.NewAtomicLevelAt(level),
		Development:      true,
		Encoding:         "console",
		EncoderConfig:    encoderConfig,
		OutputPaths:      []string{"stdout"},
		ErrorOutputPaths: []string{"stderr"},
	}

	logger, _ := cfg.Build()
	return logger
}
