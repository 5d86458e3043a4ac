package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	fiberlogger "github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"go.uber.org/zap"

	"alfredoptarigan/resume-analyzer/internal/config"
	"alfredoptarigan/resume-analyzer/internal/handlers"
	"alfredoptarigan/resume-analyzer/internal/logger"
	"alfredoptarigan/resume-analyzer/internal/services"
)

func main() {
	cfg := config.Load()

	zlog, err := logger.New(cfg.Log.JSON, cfg.Log.Debug)
	if err != nil {
		log.Fatalf("❌ Failed to initialize logger: %v", err)
	}
	defer zlog.Sync()

	if err := cfg.Validate(); err != nil {
		zlog.Fatal("❌ Invalid configuration", zap.Error(err))
	}
	zlog.Info("✅ Config loaded successfully",
		zap.String("provider", cfg.Provider.Name),
		zap.String("api_key", logger.MaskSecret(cfg.APIKey())),
	)

	storageService := services.NewStorageService(cfg.Storage.UploadPath)
	if err := storageService.EnsureUploadDir(); err != nil {
		zlog.Fatal("❌ Failed to create upload directory", zap.Error(err))
	}

	extractor := services.NewTextExtractor()
	scorer := services.NewResumeScorer()
	matcher := services.NewJobMatcher(services.DefaultJobCatalog)
	zlog.Info("✅ Services initialized successfully")

	provider, err := services.NewChatProvider(context.Background(), cfg.ProviderSettings())
	if err != nil {
		zlog.Fatal("❌ Failed to initialize chat provider", zap.Error(err))
	}
	zlog.Info("✅ Chat provider initialized", zap.String("provider", provider.Name()))

	feedbackService := services.NewFeedbackService(provider, cfg.Provider.Timeout, zlog)
	pool := services.NewFeedbackPool(feedbackService, cfg.Worker.Concurrency, zlog)
	pool.Start()

	h := handlers.Handlers{
		Upload:   handlers.NewUploadHandler(storageService, extractor, cfg.Storage.MaxFileSize, zlog),
		Feedback: handlers.NewFeedbackHandler(pool, zlog),
		Analysis: handlers.NewAnalysisHandler(scorer, matcher, services.DefaultTopK),
		Health:   handlers.NewHealthHandler(services.NewProviderProbe(cfg.Provider.ProbeURL, 10*time.Second), zlog),
	}
	zlog.Info("✅ Handlers initialized")

	app := fiber.New(fiber.Config{
		AppName:      "Resume Analyzer API",
		ReadTimeout:  30 * time.Second,
		WriteTimeout: cfg.Provider.Timeout + 30*time.Second,
		BodyLimit:    int(cfg.Storage.MaxFileSize),
		ErrorHandler: handlers.ErrorHandler(zlog),
	})

	app.Use(recover.New())
	app.Use(fiberlogger.New(fiberlogger.Config{
		Format:     "[${time}] ${status} - ${latency} ${method} ${path}\n",
		TimeFormat: "2006-01-02 15:04:05",
	}))
	app.Use(cors.New(cors.Config{
		AllowOrigins: cfg.Server.AllowOrigins,
		AllowMethods: "GET,POST,OPTIONS",
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
	}))

	handlers.RegisterRoutes(app, h)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		<-quit
		zlog.Info("🛑 Shutting down server...")
		if err := app.Shutdown(); err != nil {
			zlog.Error("❌ Server forced to shutdown", zap.Error(err))
		}
		pool.Stop()
	}()

	addr := fmt.Sprintf(":%s", cfg.Server.Port)
	zlog.Info("🚀 Server starting", zap.String("addr", addr))

	if err := app.Listen(addr); err != nil {
		zlog.Fatal("❌ Failed to start server", zap.Error(err))
	}
}
