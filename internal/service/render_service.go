package service

import (
	"context"
	"time"

	"applykit/internal/domain"
	"applykit/internal/port"
	"applykit/internal/render"
)

// RenderService turns a curated profile into deliverable documents. Preview
// and Render share the same markup builder, so the HTML preview matches the
// printed PDF section for section.
type RenderService interface {
	Preview(profile *domain.CuratedProfile, photo *domain.ProfilePhoto) (string, error)
	Render(ctx context.Context, profile *domain.CuratedProfile, photo *domain.ProfilePhoto) ([]byte, error)
}

type renderService struct {
	renderer port.PDFRenderer
}

// NewRenderService creates a new RenderService implementation.
func NewRenderService(renderer port.PDFRenderer) RenderService {
	return &renderService{renderer: renderer}
}

func (s *renderService) Preview(profile *domain.CuratedProfile, photo *domain.ProfilePhoto) (string, error) {
	return render.BuildHTML(profile, photo)
}

func (s *renderService) Render(ctx context.Context, profile *domain.CuratedProfile, photo *domain.ProfilePhoto) ([]byte, error) {
	html, err := render.BuildHTML(profile, photo)
	if err != nil {
		return nil, err
	}

	footer, err := render.FooterHTML(profile, time.Now())
	if err != nil {
		return nil, err
	}

	return s.renderer.RenderPDF(ctx, port.RenderInput{
		HTML:   html,
		Header: render.HeaderHTML(),
		Footer: footer,
	})
}
