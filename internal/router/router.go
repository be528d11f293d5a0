package router

import (
	"github.com/gin-gonic/gin"

	"applykit/internal/config"
	"applykit/internal/handler"
	"applykit/internal/middleware"
)

// Setup configures the Gin engine with all routes and middleware.
func Setup(
	cfg *config.Config,
	cvH *handler.CVHandler,
	assistantH *handler.AssistantHandler,
	outreachH *handler.OutreachHandler,
	coverLetterH *handler.CoverLetterHandler,
	healthH *handler.HealthHandler,
) *gin.Engine {
	r := gin.New()

	// Global middleware
	r.Use(middleware.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger())
	r.Use(middleware.CORS(&cfg.CORS))

	// Health checks
	r.GET("/healthz", healthH.Liveness)
	r.GET("/readyz", healthH.Readiness)

	api := r.Group("/api")

	// CV pipeline
	api.POST("/extract", cvH.Extract)
	api.POST("/curate", cvH.Curate)
	api.POST("/create-pdf", cvH.CreatePDF)
	api.POST("/preview", cvH.Preview)

	// Generators
	api.POST("/assist", assistantH.Assist)
	api.POST("/outreach", outreachH.Generate)
	api.POST("/cover-letter", coverLetterH.Generate)

	return r
}
