// Package handler contains the HTTP layer: request decoding, routing,
// and response writing around the document generation service.
package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/draftdeck/draftdeck/internal/domain"
	"github.com/draftdeck/draftdeck/internal/service"
	"github.com/draftdeck/draftdeck/internal/storage"
)

// maxRequestBytes caps document generation request bodies.
const maxRequestBytes = 4 << 20

// generatePayload is the JSON body of a generation request. Content is
// deliberately untyped; normalization accepts any shape.
type generatePayload struct {
	Content    any                `json:"content"`
	Metadata   domain.Metadata    `json:"metadata"`
	Options    *domain.PDFOptions `json:"options,omitempty"`
	UserID     string             `json:"userId,omitempty"`
	DocumentID string             `json:"documentId,omitempty"`
}

// DocumentHandler serves HTML preview and PDF download endpoints.
type DocumentHandler struct {
	pdfService service.PDFService
	logger     *slog.Logger
}

// NewDocumentHandler creates a new DocumentHandler.
func NewDocumentHandler(pdfService service.PDFService, logger *slog.Logger) *DocumentHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &DocumentHandler{pdfService: pdfService, logger: logger}
}

// RegisterRoutes attaches the document endpoints to the mux.
func (h *DocumentHandler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("POST /documents/{type}/html", h.GenerateHTML)
	mux.HandleFunc("POST /documents/{type}/pdf", h.GeneratePDF)
	mux.HandleFunc("GET /documents/types", h.ListTypes)
}

// GenerateHTML returns the assembled HTML document for in-app display.
func (h *DocumentHandler) GenerateHTML(w http.ResponseWriter, r *http.Request) {
	req, err := h.decodeRequest(r)
	if err != nil {
		h.badRequest(w, err)
		return
	}

	html, err := h.pdfService.GenerateHTML(r.Context(), req)
	if err != nil {
		if errors.Is(err, service.ErrUnknownDocumentType) {
			h.badRequest(w, err)
			return
		}
		h.logger.Error("html generation failed", "document_type", req.Type, "error", err)
		h.writeJSON(w, http.StatusInternalServerError, map[string]any{
			"success": false,
			"error":   "document generation failed",
		})
		return
	}

	w.Header().Set("Content-Type", storage.ContentTypeHTML)
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(html))
}

// GeneratePDF returns rendered PDF bytes, or a JSON error body when
// generation fails.
func (h *DocumentHandler) GeneratePDF(w http.ResponseWriter, r *http.Request) {
	req, err := h.decodeRequest(r)
	if err != nil {
		h.badRequest(w, err)
		return
	}

	result := h.pdfService.GeneratePDF(r.Context(), req)
	if !result.Success {
		status := http.StatusInternalServerError
		if result.Error == fmt.Sprintf("unknown document type %q", req.Type) {
			status = http.StatusBadRequest
		}
		h.writeJSON(w, status, result)
		return
	}

	filename := fmt.Sprintf("%s_%s.pdf", req.Type, req.DocumentID)
	w.Header().Set("Content-Type", storage.ContentTypePDF)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	w.Header().Set("X-Page-Count", fmt.Sprintf("%d", result.PDF.PageCount))
	if result.Cached {
		w.Header().Set("X-Cache", "HIT")
	}
	w.WriteHeader(http.StatusOK)
	w.Write(result.PDF.Buffer)
}

// ListTypes returns the supported document types with display titles.
func (h *DocumentHandler) ListTypes(w http.ResponseWriter, r *http.Request) {
	types := make([]map[string]string, 0, len(domain.AllDocumentTypes()))
	for _, t := range domain.AllDocumentTypes() {
		types = append(types, map[string]string{
			"type":  t.String(),
			"title": t.Title(),
		})
	}
	h.writeJSON(w, http.StatusOK, map[string]any{"types": types})
}

// decodeRequest parses the path type and JSON body into a service
// request. Absent IDs get fresh UUIDs so anonymous calls still cache
// consistently within the response.
func (h *DocumentHandler) decodeRequest(r *http.Request) (service.GenerateRequest, error) {
	docType := domain.DocumentType(r.PathValue("type"))
	if !docType.IsValid() {
		return service.GenerateRequest{}, fmt.Errorf("unknown document type %q", docType)
	}

	var payload generatePayload
	body := http.MaxBytesReader(nil, r.Body, maxRequestBytes)
	if err := json.NewDecoder(body).Decode(&payload); err != nil {
		return service.GenerateRequest{}, fmt.Errorf("invalid request body: %w", err)
	}

	opts := domain.DefaultPDFOptions()
	if payload.Options != nil {
		opts = *payload.Options
	}

	userID, err := parseOrNewUUID(payload.UserID)
	if err != nil {
		return service.GenerateRequest{}, fmt.Errorf("invalid userId: %w", err)
	}
	documentID, err := parseOrNewUUID(payload.DocumentID)
	if err != nil {
		return service.GenerateRequest{}, fmt.Errorf("invalid documentId: %w", err)
	}

	return service.GenerateRequest{
		UserID:     userID,
		DocumentID: documentID,
		Type:       docType,
		Content:    payload.Content,
		Metadata:   payload.Metadata,
		Options:    opts,
	}, nil
}

func parseOrNewUUID(s string) (uuid.UUID, error) {
	if s == "" {
		return uuid.New(), nil
	}
	return uuid.Parse(s)
}

func (h *DocumentHandler) badRequest(w http.ResponseWriter, err error) {
	h.writeJSON(w, http.StatusBadRequest, map[string]any{
		"success": false,
		"error":   err.Error(),
	})
}

func (h *DocumentHandler) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		h.logger.Error("response encoding failed", "error", err)
	}
}
