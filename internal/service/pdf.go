// Package service contains the business logic layer.
//
// This file implements the document generation service: normalize,
// format, assemble, and render project documents, with a best-effort
// PDF cache in front of the browser.
package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/draftdeck/draftdeck/internal/assemble"
	"github.com/draftdeck/draftdeck/internal/domain"
	"github.com/draftdeck/draftdeck/internal/format"
	"github.com/draftdeck/draftdeck/internal/metrics"
	"github.com/draftdeck/draftdeck/internal/pdfcache"
	"github.com/draftdeck/draftdeck/internal/render"
)

// =============================================================================
// Interface Definition
// =============================================================================

// GenerateRequest carries everything needed to produce one document.
type GenerateRequest struct {
	UserID     uuid.UUID
	DocumentID uuid.UUID
	Type       domain.DocumentType
	Content    any
	Metadata   domain.Metadata
	Options    domain.PDFOptions
}

// PDFService generates project documents as HTML or PDF.
type PDFService interface {
	// GeneratePDF produces a PDF for the request. It never returns a Go
	// error; every failure maps to a result with Success=false.
	GeneratePDF(ctx context.Context, req GenerateRequest) *domain.RenderResult

	// GenerateHTML produces the assembled HTML document for in-app
	// display. No browser is involved.
	GenerateHTML(ctx context.Context, req GenerateRequest) (string, error)
}

// Renderer captures HTML as PDF bytes. Satisfied by render.Renderer.
type Renderer interface {
	Render(ctx context.Context, html string, meta domain.Metadata, opts domain.PDFOptions) (*domain.RenderedPDF, error)
}

// ErrUnknownDocumentType is returned by GenerateHTML for unsupported types.
var ErrUnknownDocumentType = errors.New("unknown document type")

// =============================================================================
// Implementation
// =============================================================================

type pdfService struct {
	formatter *format.Registry
	assembler *assemble.Assembler
	renderer  Renderer
	cache     *pdfcache.Cache
	logger    *slog.Logger
}

// NewPDFService creates a new PDFService. cache may be nil when caching
// is disabled.
func NewPDFService(
	formatter *format.Registry,
	assembler *assemble.Assembler,
	renderer Renderer,
	cache *pdfcache.Cache,
	logger *slog.Logger,
) PDFService {
	if logger == nil {
		logger = slog.Default()
	}
	return &pdfService{
		formatter: formatter,
		assembler: assembler,
		renderer:  renderer,
		cache:     cache,
		logger:    logger,
	}
}

// =============================================================================
// GeneratePDF
// =============================================================================

func (s *pdfService) GeneratePDF(ctx context.Context, req GenerateRequest) *domain.RenderResult {
	start := time.Now()

	if !req.Type.IsValid() {
		return failure(fmt.Sprintf("unknown document type %q", req.Type))
	}
	req.Options.ApplyTierPolicy()
	req.Metadata.FillDefaults()

	key := pdfcache.Key(req.UserID, req.DocumentID, req.Type, req.Content, req.Options)
	if s.cache != nil {
		if cached := s.cache.Get(ctx, key); cached != nil {
			metrics.CacheHit()
			s.logger.Info("pdf served from cache",
				"document_type", req.Type,
				"document_id", req.DocumentID,
				"bytes", len(cached),
			)
			return &domain.RenderResult{
				Success: true,
				Cached:  true,
				PDF: &domain.RenderedPDF{
					Buffer:      cached,
					PageCount:   render.PageCount(cached),
					Size:        int64(len(cached)),
					Metadata:    req.Metadata,
					GeneratedAt: time.Now().UTC(),
				},
			}
		}
		metrics.CacheMiss()
	}

	html := s.assemble(req)

	pdf, err := s.renderer.Render(ctx, html, req.Metadata, req.Options)
	if err != nil {
		metrics.RenderFailed(req.Type.String())
		s.logger.Error("pdf render failed",
			"document_type", req.Type,
			"document_id", req.DocumentID,
			"error", err,
		)
		return failure(renderErrorMessage(err))
	}

	if s.cache != nil {
		s.cache.Put(ctx, key, pdf.Buffer)
	}

	metrics.RenderSucceeded(req.Type.String(), time.Since(start), len(pdf.Buffer))
	s.logger.Info("pdf generated",
		"document_type", req.Type,
		"document_id", req.DocumentID,
		"pages", pdf.PageCount,
		"bytes", pdf.Size,
		"duration", time.Since(start),
	)
	return &domain.RenderResult{Success: true, PDF: pdf}
}

// =============================================================================
// GenerateHTML
// =============================================================================

func (s *pdfService) GenerateHTML(ctx context.Context, req GenerateRequest) (string, error) {
	if !req.Type.IsValid() {
		return "", fmt.Errorf("%w: %q", ErrUnknownDocumentType, req.Type)
	}
	req.Options.ApplyTierPolicy()
	req.Metadata.FillDefaults()

	html := s.assemble(req)
	metrics.HTMLGeneratedTotal.WithLabelValues(req.Type.String()).Inc()
	return html, nil
}

// assemble runs the format and assembly stages. Formatting is total, so
// this cannot fail; the worst case is an embedded error report.
func (s *pdfService) assemble(req GenerateRequest) string {
	fragment := s.formatter.Format(req.Type, req.Content, req.Metadata, req.Options.FormatterOptions)
	return s.assembler.Document(req.Type, fragment, req.Metadata, req.Options.FormatterOptions)
}

func failure(msg string) *domain.RenderResult {
	return &domain.RenderResult{Success: false, Error: msg}
}

// renderErrorMessage maps renderer errors to stable, user-safe strings.
func renderErrorMessage(err error) string {
	switch {
	case errors.Is(err, render.ErrRenderTimeout):
		return "document rendering timed out"
	case errors.Is(err, context.Canceled):
		return "request canceled"
	default:
		return "document rendering failed"
	}
}
