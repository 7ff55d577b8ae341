package main

import (
	"context"
	"flag"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/primeestate/primeestate/internal/api"
	"github.com/primeestate/primeestate/internal/config"
	"github.com/primeestate/primeestate/internal/dialogue"
	"github.com/primeestate/primeestate/internal/repository"
	"github.com/primeestate/primeestate/internal/service"
)

var (
	configPath = flag.String("config", "", "Path to config file")
)

func main() {
	flag.Parse()

	// Load configuration
	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Initialize logger
	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatalf("Failed to create logger: %v", err)
	}
	defer logger.Sync()

	// Initialize database
	db, err := repository.NewDB(cfg.Database.Path)
	if err != nil {
		logger.Fatal("Failed to initialize database", zap.Error(err))
	}
	defer db.Close()

	// Initialize repositories
	propertyRepo := repository.NewPropertyRepository(db)
	projectRepo := repository.NewProjectRepository(db)
	chatUserRepo := repository.NewChatUserRepository(db)
	leadRepo := repository.NewLeadRepository(db)

	if cfg.Chat.SeedCatalog {
		if err := repository.SeedCatalog(propertyRepo, projectRepo); err != nil {
			logger.Fatal("Failed to seed catalog", zap.Error(err))
		}
	}

	// Initialize services
	catalogService := service.NewCatalogService(propertyRepo, projectRepo)
	leadService := service.NewLeadService(chatUserRepo, leadRepo, logger)
	adminService := service.NewAdminService(propertyRepo, projectRepo, chatUserRepo, leadRepo)

	engine := dialogue.NewEngine(catalogService, leadService, dialogue.Options{
		WelcomeMessage:     cfg.Chat.WelcomeMessage,
		SignificantActions: cfg.Chat.SignificantActions,
	}, logger)

	sessionTTL := time.Duration(cfg.Chat.SessionTTLMinutes) * time.Minute
	widgetService := service.NewWidgetService(engine, sessionTTL, logger)

	janitorCtx, stopJanitor := context.WithCancel(context.Background())
	defer stopJanitor()
	go widgetService.RunJanitor(janitorCtx, sessionTTL/4)

	// Setup router
	router := api.SetupRouter(catalogService, leadService, widgetService, adminService, api.RouterConfig{
		APIKey:       cfg.Admin.APIKey,
		AllowOrigins: []string{"*"},
	})

	// Create HTTP server
	srv := &http.Server{
		Addr:         cfg.Address(),
		Handler:      router,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	// Start server in goroutine
	go func() {
		logger.Info("Starting PrimeEstate server",
			zap.String("address", cfg.Address()),
			zap.String("base_url", cfg.Server.BaseURL),
		)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server...")

	// Graceful shutdown
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Fatal("Server forced to shutdown", zap.Error(err))
	}

	logger.Info("Server exited")
}
