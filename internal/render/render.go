// Package render captures assembled HTML documents as PDF bytes using a
// leased browser tab.
package render

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/chromedp/cdproto/page"
	"github.com/chromedp/cdproto/runtime"
	"github.com/chromedp/chromedp"

	"github.com/draftdeck/draftdeck/internal/browser"
	"github.com/draftdeck/draftdeck/internal/domain"
)

// ErrRenderTimeout is returned when a capture exceeds the render timeout.
var ErrRenderTimeout = errors.New("render: timed out")

const (
	defaultRenderTimeout = 60 * time.Second

	// mermaidSettle gives the client-side diagram library time to replace
	// its source blocks before capture. Diagram rendering exposes no
	// completion signal over CDP, so a fixed delay is the reliable option.
	mermaidSettle = 2 * time.Second
)

// Paper dimensions in inches.
var paperSizes = map[domain.PageFormat][2]float64{
	domain.PageFormatA4:     {8.27, 11.69},
	domain.PageFormatLetter: {8.5, 11.0},
}

// Config tunes the renderer.
type Config struct {
	// Timeout bounds one capture end to end, including queueing for
	// a browser.
	Timeout time.Duration
}

// Renderer drives PDF capture against a shared browser pool.
type Renderer struct {
	pool   *browser.Pool
	logger *slog.Logger
	cfg    Config
}

// New builds a renderer over the given pool.
func New(pool *browser.Pool, cfg Config, logger *slog.Logger) *Renderer {
	if logger == nil {
		logger = slog.Default()
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = defaultRenderTimeout
	}
	return &Renderer{pool: pool, logger: logger, cfg: cfg}
}

// Render captures html as a PDF. The HTML is written to a temp file and
// navigated via file:// because data URLs hit Chrome's size limits on
// large documents.
func (r *Renderer) Render(ctx context.Context, html string, meta domain.Metadata, opts domain.PDFOptions) (*domain.RenderedPDF, error) {
	start := time.Now()

	ctx, cancel := context.WithTimeout(ctx, r.cfg.Timeout)
	defer cancel()

	pg, err := r.pool.Lease(ctx)
	if err != nil {
		return nil, fmt.Errorf("leasing browser page: %w", err)
	}
	defer pg.Close()

	tmp, err := os.CreateTemp("", "draftdeck-*.html")
	if err != nil {
		return nil, fmt.Errorf("creating temp html: %w", err)
	}
	tmpPath := tmp.Name()
	defer os.Remove(tmpPath)
	if _, err := tmp.WriteString(html); err != nil {
		tmp.Close()
		return nil, fmt.Errorf("writing temp html: %w", err)
	}
	tmp.Close()

	// The tab context must observe the render deadline; the lease context
	// only covered acquisition.
	tabCtx, tabCancel := context.WithTimeout(pg.Ctx, r.cfg.Timeout)
	defer tabCancel()

	actions := []chromedp.Action{
		chromedp.Navigate("file://" + tmpPath),
		chromedp.WaitReady("body"),
		chromedp.ActionFunc(func(ctx context.Context) error {
			// Fonts load asynchronously; a failure here only risks a
			// fallback typeface, never the capture.
			var ready bool
			if err := chromedp.Evaluate(
				`document.fonts.ready.then(() => true)`, &ready,
				func(p *runtime.EvaluateParams) *runtime.EvaluateParams {
					return p.WithAwaitPromise(true)
				},
			).Do(ctx); err != nil {
				r.logger.Debug("font readiness wait failed", "error", err)
			}
			return nil
		}),
	}
	if strings.Contains(html, `class="mermaid"`) {
		actions = append(actions, chromedp.Sleep(mermaidSettle))
	}

	var pdf []byte
	actions = append(actions, chromedp.ActionFunc(func(ctx context.Context) error {
		data, _, err := r.printParams(meta, opts).Do(ctx)
		if err != nil {
			return err
		}
		pdf = data
		return nil
	}))

	if err := chromedp.Run(tabCtx, actions...); err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			r.logger.Error("render timed out",
				"timeout", r.cfg.Timeout,
				"html_bytes", len(html),
			)
			return nil, ErrRenderTimeout
		}
		return nil, fmt.Errorf("capturing pdf: %w", err)
	}

	result := &domain.RenderedPDF{
		Buffer:      pdf,
		PageCount:   PageCount(pdf),
		Size:        int64(len(pdf)),
		Metadata:    meta,
		GeneratedAt: time.Now().UTC(),
	}
	r.logger.Info("pdf rendered",
		"pages", result.PageCount,
		"bytes", result.Size,
		"duration", time.Since(start),
	)
	return result, nil
}

// printParams builds the CDP print call for the requested geometry.
// Margins grow when the header/footer strip is on so page content never
// collides with it.
func (r *Renderer) printParams(meta domain.Metadata, opts domain.PDFOptions) *page.PrintToPDFParams {
	size, ok := paperSizes[opts.Format]
	if !ok {
		size = paperSizes[domain.PageFormatA4]
	}

	headerFooter := opts.PageNumbers || opts.HeaderText != "" || opts.FooterText != ""

	top := marginInches(opts.Margin.Top, 0.59)
	bottom := marginInches(opts.Margin.Bottom, 0.59)
	if headerFooter {
		if top < 0.71 {
			top = 0.71
		}
		if bottom < 0.71 {
			bottom = 0.71
		}
	}

	params := page.PrintToPDF().
		WithPaperWidth(size[0]).
		WithPaperHeight(size[1]).
		WithMarginTop(top).
		WithMarginBottom(bottom).
		WithMarginLeft(marginInches(opts.Margin.Left, 0.79)).
		WithMarginRight(marginInches(opts.Margin.Right, 0.79)).
		WithPrintBackground(true).
		WithScale(1.0).
		WithPreferCSSPageSize(false)

	if headerFooter {
		params = params.
			WithDisplayHeaderFooter(true).
			WithHeaderTemplate(headerTemplate(meta, opts)).
			WithFooterTemplate(footerTemplate(meta, opts))
	}
	return params
}

// PageCount counts page objects in a PDF byte stream. Both spacing
// variants of the type marker occur in Chrome output.
func PageCount(pdf []byte) int {
	n := bytes.Count(pdf, []byte("/Type /Page")) - bytes.Count(pdf, []byte("/Type /Pages"))
	n += bytes.Count(pdf, []byte("/Type/Page")) - bytes.Count(pdf, []byte("/Type/Pages"))
	if n < 1 {
		n = 1
	}
	return n
}
