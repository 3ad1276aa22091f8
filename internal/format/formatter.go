package format

import (
	"encoding/json"
	"log/slog"

	"github.com/draftdeck/draftdeck/internal/domain"
	"github.com/draftdeck/draftdeck/internal/normalize"
)

// Formatter turns raw document content into an HTML body fragment for one
// document type. Formatting is total: any input produces a fragment, with
// a structured error report as the worst case.
type Formatter interface {
	GenerateHTML(raw any, meta domain.Metadata, opts domain.FormatterOptions) string
}

// formatFunc builds the section tree for one document type from already
// accepted raw content.
type formatFunc func(raw any, meta domain.Metadata, opts domain.FormatterOptions) Node

// Registry maps document types to their formatters and owns the shared
// normalizer. It implements Formatter for every supported type.
type Registry struct {
	logger     *slog.Logger
	norm       *normalize.Normalizer
	formatters map[domain.DocumentType]formatFunc
}

// NewRegistry builds a registry covering all supported document types.
func NewRegistry(logger *slog.Logger) *Registry {
	if logger == nil {
		logger = slog.Default()
	}
	r := &Registry{
		logger: logger,
		norm:   normalize.New(logger),
	}
	r.formatters = map[domain.DocumentType]formatFunc{
		domain.DocumentTypeCharter:            r.charter,
		domain.DocumentTypeBusinessCase:       r.businessCase,
		domain.DocumentTypeRiskRegister:       r.riskRegister,
		domain.DocumentTypeProjectPlan:        r.projectPlan,
		domain.DocumentTypeBacklog:            r.backlog,
		domain.DocumentTypePID:                r.pid,
		domain.DocumentTypeComparableProjects: r.comparableProjects,
		domain.DocumentTypeTechnicalLandscape: r.technicalLandscape,
		domain.DocumentTypeCommunicationPlan:  r.communicationPlan,
		domain.DocumentTypeQualityManagement:  r.qualityManagement,
		domain.DocumentTypeKanban:             r.kanban,
	}
	return r
}

// Supports reports whether the registry has a formatter for docType.
func (r *Registry) Supports(docType domain.DocumentType) bool {
	_, ok := r.formatters[docType]
	return ok
}

// Format produces the HTML body fragment for the given document type.
// A missing formatter or a panic inside one degrades to an error report
// fragment rather than failing the request.
func (r *Registry) Format(docType domain.DocumentType, raw any, meta domain.Metadata, opts domain.FormatterOptions) (html string) {
	meta.FillDefaults()

	fn, ok := r.formatters[docType]
	if !ok {
		r.logger.Error("no formatter registered", "document_type", docType)
		return Render(r.errorReport(docType, meta, raw, "unsupported document type"))
	}

	defer func() {
		if rec := recover(); rec != nil {
			r.logger.Error("formatter panicked",
				"document_type", docType,
				"panic", rec,
			)
			html = Render(r.errorReport(docType, meta, raw, "formatting failed"))
		}
	}()

	return Render(fn(raw, meta, opts))
}

// maxErrorDumpBytes caps the raw-input dump inside an error report so a
// pathological payload cannot balloon the rendered document.
const maxErrorDumpBytes = 2048

// errorReport is the fallback fragment when a formatter cannot run. It
// surfaces enough of the input to debug the failure from the document
// itself.
func (r *Registry) errorReport(docType domain.DocumentType, meta domain.Metadata, raw any, reason string) Node {
	dump, err := json.MarshalIndent(raw, "", "  ")
	if err != nil {
		dump = []byte("(input not serializable)")
	}
	if len(dump) > maxErrorDumpBytes {
		dump = append(dump[:maxErrorDumpBytes], []byte("\n… (truncated)")...)
	}

	return Section("error-report", "Document Generation Error",
		HighlightBox("danger", "Formatting did not complete",
			Paraf("The %s document could not be formatted: %s.", docType.Title(), reason),
			Para("The raw content received is shown below for review."),
		),
		DefList([][2]string{
			{"Document Type", string(docType)},
			{"Project", meta.ProjectName},
			{"Company", meta.CompanyName},
			{"Version", meta.Version},
			{"Date", meta.Date},
		}),
		Sub("Received Content"),
		el("pre", []string{"class", "error-dump"}, Text(string(dump))),
	)
}
