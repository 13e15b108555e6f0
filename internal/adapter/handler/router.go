package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/agrireel/content-remix/pkg/config"
)

// Router holds all handlers
type Router struct {
	cfg           *config.Config
	videos        *VideoController
	transcription *TranscriptionController
	scripts       *ScriptController
	speech        *SpeechController
	renders       *RenderController
	remix         *RemixController
	storage       *StorageController
}

// NewRouter creates a new router with all handlers
func NewRouter(
	cfg *config.Config,
	videos *VideoController,
	transcription *TranscriptionController,
	scripts *ScriptController,
	speech *SpeechController,
	renders *RenderController,
	remix *RemixController,
	storage *StorageController,
) *Router {
	return &Router{
		cfg:           cfg,
		videos:        videos,
		transcription: transcription,
		scripts:       scripts,
		speech:        speech,
		renders:       renders,
		remix:         remix,
		storage:       storage,
	}
}

// Setup configures all application routes
func (rt *Router) Setup(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", rt.healthCheck)

	// API v1 group
	v1 := e.Group("/v1")

	rt.setupVideoRoutes(v1)
	rt.setupPipelineRoutes(v1)
	rt.setupStorageRoutes(v1)
}

func (rt *Router) setupVideoRoutes(g *echo.Group) {
	videoGroup := g.Group("/videos")

	if rt.videos != nil {
		videoGroup.POST("/metadata", rt.videos.GetMetadata)
		videoGroup.POST("/validate", rt.videos.Validate)
	} else {
		videoGroup.POST("/metadata", rt.notImplemented)
		videoGroup.POST("/validate", rt.notImplemented)
	}
}

func (rt *Router) setupPipelineRoutes(g *echo.Group) {
	if rt.transcription != nil {
		g.POST("/transcriptions", rt.transcription.Transcribe)
		g.POST("/insights", rt.transcription.ExtractInsights)
	} else {
		g.POST("/transcriptions", rt.notImplemented)
		g.POST("/insights", rt.notImplemented)
	}

	if rt.scripts != nil {
		g.POST("/scripts", rt.scripts.Generate)
	} else {
		g.POST("/scripts", rt.notImplemented)
	}

	if rt.speech != nil {
		g.POST("/speech", rt.speech.Synthesize)
		g.GET("/speech/voices", rt.speech.ListVoices)
	} else {
		g.POST("/speech", rt.notImplemented)
		g.GET("/speech/voices", rt.notImplemented)
	}

	if rt.renders != nil {
		g.POST("/renders", rt.renders.Submit)
		g.GET("/renders/:id", rt.renders.Status)
	} else {
		g.POST("/renders", rt.notImplemented)
		g.GET("/renders/:id", rt.notImplemented)
	}

	if rt.remix != nil {
		g.POST("/remix", rt.remix.Remix)
	} else {
		g.POST("/remix", rt.notImplemented)
	}
}

func (rt *Router) setupStorageRoutes(g *echo.Group) {
	storageGroup := g.Group("/storage")

	if rt.storage != nil {
		storageGroup.GET("/info", rt.storage.Info)
		storageGroup.GET("/assets", rt.storage.ListAssets)
	} else {
		storageGroup.GET("/info", rt.notImplemented)
		storageGroup.GET("/assets", rt.notImplemented)
	}
}

// notImplemented returns 501 Not Implemented response
func (rt *Router) notImplemented(c echo.Context) error {
	return c.JSON(http.StatusNotImplemented, map[string]interface{}{
		"error":   "This endpoint is not yet implemented",
		"path":    c.Request().URL.Path,
		"method":  c.Request().Method,
		"message": "Please initialize the required handler in main.go",
	})
}

// healthCheck returns health status
func (rt *Router) healthCheck(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]interface{}{
		"status":      "ok",
		"environment": rt.cfg.Server.Environment,
	})
}
