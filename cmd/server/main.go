package main

import (
	"fmt"
	"log"

	"github.com/joho/godotenv"

	"applykit/internal/config"
	"applykit/internal/genai"
	"applykit/internal/handler"
	"applykit/internal/render/chrome"
	"applykit/internal/router"
	"applykit/internal/service"
)

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	// A .env file is optional; real deployments configure the environment.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	// Initialize outbound adapters
	generator := genai.NewClient(&cfg.Gemini)
	renderer := chrome.NewRenderer(&cfg.Renderer)

	// Initialize services
	cvSvc := service.NewCVService(generator, &cfg.Gemini)
	renderSvc := service.NewRenderService(renderer)
	assistantSvc := service.NewAssistantService(generator, &cfg.Gemini)
	outreachSvc := service.NewOutreachService(generator, &cfg.Gemini)
	coverLetterSvc := service.NewCoverLetterService(generator)

	// Initialize handlers
	cvH := handler.NewCVHandler(cvSvc, renderSvc, &cfg.Renderer)
	assistantH := handler.NewAssistantHandler(assistantSvc)
	outreachH := handler.NewOutreachHandler(outreachSvc)
	coverLetterH := handler.NewCoverLetterHandler(coverLetterSvc, &cfg.Upload)
	healthH := handler.NewHealthHandler()

	// Setup router
	r := router.Setup(cfg, cvH, assistantH, outreachH, coverLetterH, healthH)

	log.Printf("Server starting on %s", cfg.Server.Port)
	if err := r.Run(cfg.Server.Port); err != nil {
		return fmt.Errorf("server failed: %w", err)
	}

	return nil
}
