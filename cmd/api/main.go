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

	pkgvalidator "github.com/agrireel/content-remix/pkg/validator"

	"github.com/agrireel/content-remix/internal/adapter/handler"
	"github.com/agrireel/content-remix/internal/infrastructure/cache"
	"github.com/agrireel/content-remix/internal/infrastructure/external/assemblyai"
	"github.com/agrireel/content-remix/internal/infrastructure/external/elevenlabs"
	"github.com/agrireel/content-remix/internal/infrastructure/external/mediafetch"
	"github.com/agrireel/content-remix/internal/infrastructure/external/platform"
	"github.com/agrireel/content-remix/internal/infrastructure/external/shotstack"
	"github.com/agrireel/content-remix/internal/infrastructure/storage"
	"github.com/agrireel/content-remix/internal/usecase/insight"
	"github.com/agrireel/content-remix/internal/usecase/pipeline"
	"github.com/agrireel/content-remix/internal/usecase/render"
	"github.com/agrireel/content-remix/internal/usecase/script"
	"github.com/agrireel/content-remix/internal/usecase/speech"
	"github.com/agrireel/content-remix/internal/usecase/transcription"
	"github.com/agrireel/content-remix/internal/usecase/video"
	pkgai "github.com/agrireel/content-remix/pkg/ai"
	"github.com/agrireel/content-remix/pkg/config"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Initialize Echo instance
	e := echo.New()

	// Register validator for request validation
	e.Validator = pkgvalidator.New()

	// Configure Echo
	e.HideBanner = true
	e.HidePort = false

	// Custom logger format
	e.Use(middleware.LoggerWithConfig(middleware.LoggerConfig{
		Format: "${time_rfc3339} | ${status} | ${method} ${uri} | ${latency_human}\n",
	}))

	// Recover from panics
	e.Use(middleware.Recover())

	// CORS middleware
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: cfg.Server.AllowedOrigins,
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodPatch},
		AllowHeaders: []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept, echo.HeaderAuthorization},
	}))

	// Initialize dependencies
	log.Println("🔧 Initializing dependencies...")

	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logger.Sync()

	// Metadata cache: Redis when configured, in-memory otherwise
	var metaCache cache.Store
	if cfg.UseRedisCache() {
		log.Println("📦 Connecting to Redis...")
		redisStore, err := cache.NewRedisStore(&cfg.Redis)
		if err != nil {
			log.Printf("⚠️  Redis unavailable (%v), falling back to in-memory cache", err)
			metaCache = cache.NewMemoryStore()
		} else {
			metaCache = redisStore
		}
	} else {
		metaCache = cache.NewMemoryStore()
	}

	// Object storage for public audio URLs. Optional: without it renders
	// proceed without a soundtrack.
	var (
		audioPublisher    render.AudioPublisher
		storageController *handler.StorageController
	)
	log.Println("📦 Connecting to object storage...")
	minioClient, err := storage.NewMinIOClient(&cfg.Storage)
	if err != nil {
		log.Printf("⚠️  Object storage unavailable (%v), voiceovers will stay transient", err)
	} else {
		audioPublisher = minioClient
	}
	blobs := storage.NewBlobStore()

	// External clients
	log.Println("🤖 Initializing external clients...")
	openaiClient := pkgai.NewOpenAIClient(&cfg.OpenAI)
	asmClient := assemblyai.NewClient(&cfg.Assembly)
	elevenClient := elevenlabs.NewClient(&cfg.ElevenLabs)
	shotstackClient := shotstack.NewClient(&cfg.Shotstack)
	mediaClient := mediafetch.NewClient(&cfg.RapidAPI)
	metadataClient := platform.NewClient("", "")

	// Pipeline stage services
	log.Println("⚙️  Initializing pipeline services...")
	videoService := video.NewService(metadataClient, metaCache, cfg.Pipeline, logger)
	transcriptionService := transcription.NewService(
		videoService,
		mediaClient,
		openaiClient,
		asmClient,
		cfg.OpenAI.TranscriptionModel,
		nil,
		logger,
	)
	insightService := insight.NewService(openaiClient, cfg.OpenAI.InsightModel, logger)
	scriptService := script.NewService(openaiClient, cfg.OpenAI.ChatModel, logger)
	speechService := speech.NewService(elevenClient, elevenClient, blobs, cfg.Pipeline.MaxSpeechChars, logger)
	renderService := render.NewService(shotstackClient, mediaClient, audioPublisher, blobs, cfg.Pipeline, logger)
	pipelineService := pipeline.NewService(
		videoService,
		transcriptionService,
		insightService,
		scriptService,
		speechService,
		renderService,
		logger,
	)

	// Controllers
	log.Println("🚀 Initializing handlers...")
	videoController := handler.NewVideoController(videoService, logger)
	transcriptionController := handler.NewTranscriptionController(transcriptionService, insightService, logger)
	scriptController := handler.NewScriptController(scriptService, logger)
	speechController := handler.NewSpeechController(speechService, logger)
	renderController := handler.NewRenderController(renderService, logger)
	remixController := handler.NewRemixController(pipelineService, logger)
	if minioClient != nil {
		storageController = handler.NewStorageController(minioClient, logger)
	}

	// Setup router with handlers
	log.Println("🛣️  Setting up routes...")
	router := handler.NewRouter(
		cfg,
		videoController,
		transcriptionController,
		scriptController,
		speechController,
		renderController,
		remixController,
		storageController,
	)
	router.Setup(e)

	// Start server
	go func() {
		addr := fmt.Sprintf("%s:%s", cfg.Server.Host, cfg.Server.Port)
		log.Printf("🚀 Starting server on %s", addr)
		log.Printf("📝 Environment: %s", cfg.Server.Environment)
		log.Printf("🔗 Health check: http://%s/health", addr)

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
		log.Fatalf("❌ Server forced to shutdown: %v", err)
	}

	log.Println("✅ Server stopped gracefully")
}
