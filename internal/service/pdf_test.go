package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/draftdeck/draftdeck/internal/assemble"
	"github.com/draftdeck/draftdeck/internal/domain"
	"github.com/draftdeck/draftdeck/internal/format"
	"github.com/draftdeck/draftdeck/internal/pdfcache"
	"github.com/draftdeck/draftdeck/internal/render"
	"github.com/draftdeck/draftdeck/internal/storage"
)

// stubRenderer records the HTML it was asked to capture and returns a
// canned PDF or error.
type stubRenderer struct {
	pdf   []byte
	err   error
	calls int
	html  string
}

func (r *stubRenderer) Render(ctx context.Context, html string, meta domain.Metadata, opts domain.PDFOptions) (*domain.RenderedPDF, error) {
	r.calls++
	r.html = html
	if r.err != nil {
		return nil, r.err
	}
	return &domain.RenderedPDF{
		Buffer:      r.pdf,
		PageCount:   render.PageCount(r.pdf),
		Size:        int64(len(r.pdf)),
		Metadata:    meta,
		GeneratedAt: time.Now().UTC(),
	}, nil
}

func newTestService(t *testing.T, renderer Renderer, withCache bool) PDFService {
	t.Helper()
	var cache *pdfcache.Cache
	if withCache {
		store, err := storage.NewLocalStorage(storage.LocalConfig{
			BasePath: t.TempDir(),
			BaseURL:  "http://localhost:8080/files",
		}, nil)
		require.NoError(t, err)
		cache = pdfcache.New(store, pdfcache.Config{Enabled: true, TTL: time.Hour}, nil)
	}
	return NewPDFService(format.NewRegistry(nil), assemble.New(""), renderer, cache, nil)
}

func testRequest(docType domain.DocumentType) GenerateRequest {
	return GenerateRequest{
		UserID:     uuid.New(),
		DocumentID: uuid.New(),
		Type:       docType,
		Content:    map[string]any{"executiveSummary": "A plan."},
		Metadata:   domain.Metadata{ProjectName: "Apollo"},
		Options:    domain.DefaultPDFOptions(),
	}
}

func TestGeneratePDF(t *testing.T) {
	renderer := &stubRenderer{pdf: []byte("%PDF-1.7 /Type /Page fake")}
	svc := newTestService(t, renderer, false)

	result := svc.GeneratePDF(context.Background(), testRequest(domain.DocumentTypeCharter))

	require.True(t, result.Success)
	require.NotNil(t, result.PDF)
	assert.False(t, result.Cached)
	assert.Equal(t, renderer.pdf, result.PDF.Buffer)
	assert.Equal(t, 1, result.PDF.PageCount)
	// the renderer received a complete assembled page
	assert.Contains(t, renderer.html, "<!DOCTYPE html>")
	assert.Contains(t, renderer.html, "A plan.")
}

func TestGeneratePDFUnknownType(t *testing.T) {
	renderer := &stubRenderer{pdf: []byte("unused")}
	svc := newTestService(t, renderer, false)

	req := testRequest(domain.DocumentType("memo"))
	result := svc.GeneratePDF(context.Background(), req)

	assert.False(t, result.Success)
	assert.Equal(t, `unknown document type "memo"`, result.Error)
	assert.Zero(t, renderer.calls)
}

func TestGeneratePDFRenderFailure(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		wantMsg string
	}{
		{name: "timeout", err: render.ErrRenderTimeout, wantMsg: "document rendering timed out"},
		{name: "canceled", err: context.Canceled, wantMsg: "request canceled"},
		{name: "other", err: errors.New("chrome crashed"), wantMsg: "document rendering failed"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := newTestService(t, &stubRenderer{err: tt.err}, false)
			result := svc.GeneratePDF(context.Background(), testRequest(domain.DocumentTypeCharter))
			assert.False(t, result.Success)
			assert.Equal(t, tt.wantMsg, result.Error)
			assert.Nil(t, result.PDF)
		})
	}
}

func TestGeneratePDFCaching(t *testing.T) {
	renderer := &stubRenderer{pdf: []byte("%PDF-1.7 /Type /Page fake")}
	svc := newTestService(t, renderer, true)
	req := testRequest(domain.DocumentTypeCharter)

	first := svc.GeneratePDF(context.Background(), req)
	require.True(t, first.Success)
	assert.False(t, first.Cached)
	assert.Equal(t, 1, renderer.calls)

	second := svc.GeneratePDF(context.Background(), req)
	require.True(t, second.Success)
	assert.True(t, second.Cached)
	assert.Equal(t, renderer.pdf, second.PDF.Buffer)
	assert.Equal(t, 1, renderer.calls, "cached hit must not re-render")

	// changed content misses
	req.Content = map[string]any{"executiveSummary": "A different plan."}
	third := svc.GeneratePDF(context.Background(), req)
	require.True(t, third.Success)
	assert.False(t, third.Cached)
	assert.Equal(t, 2, renderer.calls)
}

func TestGeneratePDFTierPolicy(t *testing.T) {
	renderer := &stubRenderer{pdf: []byte("%PDF")}
	svc := newTestService(t, renderer, false)

	req := testRequest(domain.DocumentTypeCharter)
	req.Options.UserTier = domain.UserTierFree
	req.Options.ShowDraft = false
	req.Options.WhiteLabel = true

	result := svc.GeneratePDF(context.Background(), req)
	require.True(t, result.Success)
	// free tier output carries the watermark and attribution
	assert.Contains(t, renderer.html, `class="watermark"`)
	assert.Contains(t, renderer.html, "Generated by DraftDeck")
}

func TestGenerateHTML(t *testing.T) {
	svc := newTestService(t, &stubRenderer{}, false)

	t.Run("assembles a full page", func(t *testing.T) {
		html, err := svc.GenerateHTML(context.Background(), testRequest(domain.DocumentTypeCharter))
		require.NoError(t, err)
		assert.Contains(t, html, "<!DOCTYPE html>")
		assert.Contains(t, html, "A plan.")
		assert.Contains(t, html, "Apollo")
	})

	t.Run("unknown type errors", func(t *testing.T) {
		_, err := svc.GenerateHTML(context.Background(), testRequest(domain.DocumentType("memo")))
		assert.ErrorIs(t, err, ErrUnknownDocumentType)
	})
}
