package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	_ "github.com/johnquangdev/meeting-scorecard/docs"
	"github.com/johnquangdev/meeting-scorecard/internal/adapter/handler"
	"github.com/johnquangdev/meeting-scorecard/internal/adapter/repository"
	"github.com/johnquangdev/meeting-scorecard/internal/infrastructure/cache"
	"github.com/johnquangdev/meeting-scorecard/internal/infrastructure/external/source"
	"github.com/johnquangdev/meeting-scorecard/internal/infrastructure/storage"
	"github.com/johnquangdev/meeting-scorecard/internal/usecase/analysis"
	"github.com/johnquangdev/meeting-scorecard/pkg/config"
	"github.com/johnquangdev/meeting-scorecard/pkg/logger"
	pkgvalidator "github.com/johnquangdev/meeting-scorecard/pkg/validator"
)

// @title           Meeting Scorecard API
// @version         1.0
// @description     Scores meetings for effectiveness and aggregates CSV imports into summary statistics and recommendations

// @license.name  Apache 2.0
// @license.url   http://www.apache.org/licenses/LICENSE-2.0.html

// @BasePath  /v1

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	zapLogger, err := logger.New(cfg.Log.Level, cfg.Log.Format)
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer zapLogger.Sync()

	// Initialize Echo instance
	e := echo.New()

	// Register validator for request validation
	e.Validator = pkgvalidator.New()

	// Configure Echo
	e.HideBanner = true
	e.HidePort = false

	e.Use(middleware.RequestID())

	// Access log through zap
	e.Use(middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogStatus:    true,
		LogMethod:    true,
		LogURI:       true,
		LogLatency:   true,
		LogRequestID: true,
		LogError:     true,
		HandleError:  true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			fields := []zap.Field{
				zap.String("request_id", v.RequestID),
				zap.String("method", v.Method),
				zap.String("uri", v.URI),
				zap.Int("status", v.Status),
				zap.Duration("latency", v.Latency),
			}
			if v.Error != nil {
				zapLogger.Error("http.request", append(fields, zap.Error(v.Error))...)
				return nil
			}
			zapLogger.Info("http.request", fields...)
			return nil
		},
	}))

	// Recover from panics
	e.Use(middleware.Recover())

	// CORS middleware
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: cfg.Server.AllowedOrigins,
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowHeaders: []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept, echo.HeaderXRequestID},
		ExposeHeaders: []string{
			echo.HeaderContentDisposition,
			echo.HeaderXRequestID,
		},
	}))

	e.Use(middleware.BodyLimit(cfg.Server.BodyLimit))

	// Initialize dependencies
	log.Println("🔧 Initializing dependencies...")

	// Initialize result cache
	log.Printf("📦 Initializing %s result cache...", cfg.Cache.Driver)
	store, err := cache.New(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize cache: %v", err)
	}
	defer store.Close()

	// Initialize repositories
	log.Println("⚙️  Initializing repositories...")
	batchRepo := repository.NewBatchResultRepository(store)

	// Initialize object storage for published exports
	var (
		publisher   analysis.Publisher
		exportStore handler.ExportStore
	)
	if cfg.Storage.Enabled {
		log.Println("🗄️  Connecting to object storage...")
		minioClient, err := storage.NewMinIOClient(&cfg.Storage)
		if err != nil {
			log.Fatalf("Failed to initialize object storage: %v", err)
		}
		publisher = minioClient
		exportStore = minioClient
		log.Printf("✅ Object storage ready: %s/%s", cfg.Storage.Endpoint, cfg.Storage.BucketName)
	} else {
		log.Println("⚠️  Object storage disabled, publishing exports is unavailable")
	}

	// Initialize analysis service
	log.Println("📊 Initializing analysis service...")
	fetcher := source.NewHTTPFetcher(cfg.Analysis.FetchTimeout, cfg.Analysis.MaxCSVBytes)
	analysisService := analysis.NewAnalysisService(batchRepo, fetcher, publisher, analysis.Options{
		Delay:       cfg.Analysis.Delay,
		MaxCSVBytes: cfg.Analysis.MaxCSVBytes,
		QuotedCSV:   cfg.Analysis.QuotedCSV,
		DemoCSVURL:  cfg.Analysis.DemoCSVURL,
		ResultTTL:   cfg.Analysis.ResultTTL,
	}, zapLogger)

	// Initialize handlers
	log.Println("🚀 Initializing handlers...")
	analysisHandler := handler.NewAnalysisHandler(analysisService, cfg.Analysis.MaxCSVBytes, zapLogger)
	var storageHandler *handler.Storage
	if exportStore != nil {
		storageHandler = handler.NewStorageHandler(exportStore, zapLogger)
	}

	// Setup router with handlers
	log.Println("🛣️  Setting up routes...")
	router := handler.NewRouter(cfg, analysisHandler, storageHandler)
	router.Setup(e)

	// Start server
	go func() {
		addr := cfg.GetServerAddr()
		log.Printf("🚀 Starting server on %s", addr)
		log.Printf("📝 Environment: %s", cfg.Server.Environment)
		log.Printf("🔗 Health check: http://%s/health", addr)
		log.Printf("📚 API docs: http://%s/swagger/index.html", addr)

		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Println("🛑 Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.Server.ShutdownTimeout)*time.Second)
	defer cancel()

	if err := e.Shutdown(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "❌ Server forced to shutdown: %v\n", err)
		os.Exit(1)
	}

	log.Println("✅ Server stopped gracefully")
}
