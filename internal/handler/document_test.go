package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/draftdeck/draftdeck/internal/domain"
	"github.com/draftdeck/draftdeck/internal/service"
)

// stubPDFService returns canned results and records the last request.
type stubPDFService struct {
	result  *domain.RenderResult
	html    string
	htmlErr error
	lastReq service.GenerateRequest
}

func (s *stubPDFService) GeneratePDF(ctx context.Context, req service.GenerateRequest) *domain.RenderResult {
	s.lastReq = req
	return s.result
}

func (s *stubPDFService) GenerateHTML(ctx context.Context, req service.GenerateRequest) (string, error) {
	s.lastReq = req
	return s.html, s.htmlErr
}

func newTestServer(stub *stubPDFService) *httptest.Server {
	mux := http.NewServeMux()
	NewDocumentHandler(stub, nil).RegisterRoutes(mux)
	return httptest.NewServer(mux)
}

func TestGeneratePDFEndpoint(t *testing.T) {
	stub := &stubPDFService{
		result: &domain.RenderResult{
			Success: true,
			PDF:     &domain.RenderedPDF{Buffer: []byte("%PDF fake"), PageCount: 3, Size: 9},
		},
	}
	srv := newTestServer(stub)
	defer srv.Close()

	body := `{
		"content": {"executiveSummary": "A plan."},
		"metadata": {"projectName": "Apollo"},
		"userId": "11111111-1111-1111-1111-111111111111",
		"documentId": "22222222-2222-2222-2222-222222222222"
	}`
	resp, err := http.Post(srv.URL+"/documents/charter/pdf", "application/json", strings.NewReader(body))
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "application/pdf", resp.Header.Get("Content-Type"))
	assert.Contains(t, resp.Header.Get("Content-Disposition"),
		"charter_22222222-2222-2222-2222-222222222222.pdf")
	assert.Equal(t, "3", resp.Header.Get("X-Page-Count"))
	assert.Empty(t, resp.Header.Get("X-Cache"))

	assert.Equal(t, domain.DocumentTypeCharter, stub.lastReq.Type)
	assert.Equal(t, "Apollo", stub.lastReq.Metadata.ProjectName)
	assert.Equal(t, "11111111-1111-1111-1111-111111111111", stub.lastReq.UserID.String())
	// absent options fall back to the defaults
	assert.Equal(t, domain.PageFormatA4, stub.lastReq.Options.Format)
	assert.True(t, stub.lastReq.Options.IncludeTOC)
}

func TestGeneratePDFEndpointCacheHeader(t *testing.T) {
	stub := &stubPDFService{
		result: &domain.RenderResult{
			Success: true,
			Cached:  true,
			PDF:     &domain.RenderedPDF{Buffer: []byte("%PDF"), PageCount: 1},
		},
	}
	srv := newTestServer(stub)
	defer srv.Close()

	resp, err := http.Post(srv.URL+"/documents/charter/pdf", "application/json", strings.NewReader(`{}`))
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, "HIT", resp.Header.Get("X-Cache"))
}

func TestGeneratePDFEndpointFailure(t *testing.T) {
	stub := &stubPDFService{
		result: &domain.RenderResult{Success: false, Error: "document rendering timed out"},
	}
	srv := newTestServer(stub)
	defer srv.Close()

	resp, err := http.Post(srv.URL+"/documents/charter/pdf", "application/json", strings.NewReader(`{}`))
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)

	var body domain.RenderResult
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.False(t, body.Success)
	assert.Equal(t, "document rendering timed out", body.Error)
}

func TestGeneratePDFEndpointBadRequests(t *testing.T) {
	stub := &stubPDFService{result: &domain.RenderResult{Success: true, PDF: &domain.RenderedPDF{}}}
	srv := newTestServer(stub)
	defer srv.Close()

	tests := []struct {
		name string
		path string
		body string
	}{
		{name: "unknown type", path: "/documents/memo/pdf", body: `{}`},
		{name: "malformed body", path: "/documents/charter/pdf", body: `{"content":`},
		{name: "bad userId", path: "/documents/charter/pdf", body: `{"userId": "not-a-uuid"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, err := http.Post(srv.URL+tt.path, "application/json", strings.NewReader(tt.body))
			require.NoError(t, err)
			defer resp.Body.Close()
			assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		})
	}
}

func TestGenerateHTMLEndpoint(t *testing.T) {
	stub := &stubPDFService{html: "<!DOCTYPE html>\n<html></html>"}
	srv := newTestServer(stub)
	defer srv.Close()

	resp, err := http.Post(srv.URL+"/documents/backlog/html", "application/json", strings.NewReader(`{}`))
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "text/html; charset=utf-8", resp.Header.Get("Content-Type"))
	assert.Equal(t, domain.DocumentTypeBacklog, stub.lastReq.Type)
}

func TestListTypesEndpoint(t *testing.T) {
	srv := newTestServer(&stubPDFService{})
	defer srv.Close()

	resp, err := http.Get(srv.URL + "/documents/types")
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)

	var body struct {
		Types []struct {
			Type  string `json:"type"`
			Title string `json:"title"`
		} `json:"types"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Len(t, body.Types, len(domain.AllDocumentTypes()))
	assert.Equal(t, "charter", body.Types[0].Type)
	assert.Equal(t, "Project Charter", body.Types[0].Title)
}

func TestMetricsHandlerAuth(t *testing.T) {
	t.Run("open without credentials", func(t *testing.T) {
		rec := httptest.NewRecorder()
		MetricsHandler("", "").ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("rejects missing auth", func(t *testing.T) {
		rec := httptest.NewRecorder()
		MetricsHandler("prom", "secret").ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Contains(t, rec.Header().Get("WWW-Authenticate"), "metrics")
	})

	t.Run("rejects wrong password", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/metrics", nil)
		req.SetBasicAuth("prom", "wrong")
		rec := httptest.NewRecorder()
		MetricsHandler("prom", "secret").ServeHTTP(rec, req)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("accepts valid credentials", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/metrics", nil)
		req.SetBasicAuth("prom", "secret")
		rec := httptest.NewRecorder()
		MetricsHandler("prom", "secret").ServeHTTP(rec, req)
		assert.Equal(t, http.StatusOK, rec.Code)
	})
}
