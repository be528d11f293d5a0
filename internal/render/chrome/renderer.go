// Package chrome renders HTML to PDF through the Chrome devtools protocol.
package chrome

import (
	"context"
	"fmt"
	"time"

	"github.com/chromedp/cdproto/page"
	"github.com/chromedp/chromedp"

	"applykit/internal/config"
	"applykit/internal/port"
)

// A4 paper and a 20mm top/bottom, 10mm side gutter, expressed in inches as
// the devtools protocol requires.
const (
	paperWidthIn   = 8.27
	paperHeightIn  = 11.69
	marginTopIn    = 0.79
	marginBottomIn = 0.79
	marginSideIn   = 0.39
)

// Renderer implements port.PDFRenderer on a headless Chrome. When a devtools
// websocket URL is configured it attaches to that browser; otherwise it
// launches a local headless instance per render. Browser contexts are scoped
// to a single call, so concurrent renders never share a page.
type Renderer struct {
	wsURL   string
	timeout time.Duration
}

// NewRenderer creates a Renderer from configuration.
func NewRenderer(cfg *config.RendererConfig) *Renderer {
	return &Renderer{
		wsURL:   cfg.BrowserWSURL,
		timeout: time.Duration(cfg.TimeoutSecs) * time.Second,
	}
}

// RenderPDF loads the document into a fresh browser context and prints it.
func (r *Renderer) RenderPDF(ctx context.Context, input port.RenderInput) ([]byte, error) {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	var allocCtx context.Context
	var allocCancel context.CancelFunc
	if r.wsURL != "" {
		allocCtx, allocCancel = chromedp.NewRemoteAllocator(ctx, r.wsURL)
	} else {
		allocCtx, allocCancel = chromedp.NewExecAllocator(ctx, chromedp.DefaultExecAllocatorOptions[:]...)
	}
	defer allocCancel()

	browserCtx, browserCancel := chromedp.NewContext(allocCtx)
	defer browserCancel()

	var pdf []byte
	err := chromedp.Run(browserCtx,
		chromedp.Navigate("about:blank"),
		chromedp.ActionFunc(func(ctx context.Context) error {
			frameTree, err := page.GetFrameTree().Do(ctx)
			if err != nil {
				return fmt.Errorf("getting frame tree: %w", err)
			}
			return page.SetDocumentContent(frameTree.Frame.ID, input.HTML).Do(ctx)
		}),
		chromedp.ActionFunc(func(ctx context.Context) error {
			buf, _, err := page.PrintToPDF().
				WithPrintBackground(true).
				WithPaperWidth(paperWidthIn).
				WithPaperHeight(paperHeightIn).
				WithMarginTop(marginTopIn).
				WithMarginBottom(marginBottomIn).
				WithMarginLeft(marginSideIn).
				WithMarginRight(marginSideIn).
				WithDisplayHeaderFooter(true).
				WithHeaderTemplate(input.Header).
				WithFooterTemplate(input.Footer).
				Do(ctx)
			if err != nil {
				return fmt.Errorf("printing to pdf: %w", err)
			}
			pdf = buf
			return nil
		}),
	)
	if err != nil {
		return nil, err
	}
	return pdf, nil
}
