package port

import "context"

// RenderInput carries the markup for one paginated render. Header and footer
// repeat on every page.
type RenderInput struct {
	HTML   string
	Header string
	Footer string
}

// PDFRenderer abstracts headless-browser rendering of markup to PDF bytes.
type PDFRenderer interface {
	RenderPDF(ctx context.Context, input RenderInput) ([]byte, error)
}
