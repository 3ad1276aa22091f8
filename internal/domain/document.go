// Package domain contains the core types for document formatting and
// PDF rendering: document types, presentation metadata, canonical content
// structures, and rendering options/results.
package domain

import "time"

// =============================================================================
// Document Types
// =============================================================================

// DocumentType identifies one of the supported project document kinds.
type DocumentType string

const (
	DocumentTypePID                DocumentType = "pid"
	DocumentTypeBusinessCase       DocumentType = "business_case"
	DocumentTypeRiskRegister       DocumentType = "risk_register"
	DocumentTypeProjectPlan        DocumentType = "project_plan"
	DocumentTypeCommunicationPlan  DocumentType = "communication_plan"
	DocumentTypeQualityManagement  DocumentType = "quality_management"
	DocumentTypeTechnicalLandscape DocumentType = "technical_landscape"
	DocumentTypeComparableProjects DocumentType = "comparable_projects"
	DocumentTypeBacklog            DocumentType = "backlog"
	DocumentTypeCharter            DocumentType = "charter"
	DocumentTypeKanban             DocumentType = "kanban"
)

// AllDocumentTypes lists every supported document type in display order.
func AllDocumentTypes() []DocumentType {
	return []DocumentType{
		DocumentTypeCharter,
		DocumentTypeBusinessCase,
		DocumentTypePID,
		DocumentTypeProjectPlan,
		DocumentTypeRiskRegister,
		DocumentTypeBacklog,
		DocumentTypeKanban,
		DocumentTypeCommunicationPlan,
		DocumentTypeQualityManagement,
		DocumentTypeTechnicalLandscape,
		DocumentTypeComparableProjects,
	}
}

// IsValid reports whether t is a recognized document type.
func (t DocumentType) IsValid() bool {
	switch t {
	case DocumentTypePID, DocumentTypeBusinessCase, DocumentTypeRiskRegister,
		DocumentTypeProjectPlan, DocumentTypeCommunicationPlan, DocumentTypeQualityManagement,
		DocumentTypeTechnicalLandscape, DocumentTypeComparableProjects, DocumentTypeBacklog,
		DocumentTypeCharter, DocumentTypeKanban:
		return true
	}
	return false
}

// String returns the wire identifier of the document type.
func (t DocumentType) String() string {
	return string(t)
}

// Title returns the display title of the document type.
func (t DocumentType) Title() string {
	switch t {
	case DocumentTypePID:
		return "Project Initiation Document"
	case DocumentTypeBusinessCase:
		return "Business Case"
	case DocumentTypeRiskRegister:
		return "Risk Register"
	case DocumentTypeProjectPlan:
		return "Project Plan"
	case DocumentTypeCommunicationPlan:
		return "Communication Plan"
	case DocumentTypeQualityManagement:
		return "Quality Management Plan"
	case DocumentTypeTechnicalLandscape:
		return "Technical Landscape"
	case DocumentTypeComparableProjects:
		return "Comparable Projects Analysis"
	case DocumentTypeBacklog:
		return "Product Backlog"
	case DocumentTypeCharter:
		return "Project Charter"
	case DocumentTypeKanban:
		return "Kanban Board"
	default:
		return "Project Document"
	}
}

// =============================================================================
// Metadata
// =============================================================================

// Metadata holds the presentation facts shared by every document type.
// Construct one per render call and fill gaps with FillDefaults before use.
type Metadata struct {
	ProjectName string `json:"projectName,omitempty"`
	CompanyName string `json:"companyName,omitempty"`
	Version     string `json:"version,omitempty"`
	Date        string `json:"date,omitempty"` // display date, e.g. "2 January 2026"
	Author      string `json:"author,omitempty"`
	Methodology string `json:"methodology,omitempty"` // e.g. "prince2", "agile", "hybrid"

	// Optional schedule/cost inputs that drive the date and budget
	// calculators. Free text; parsed best-effort.
	StartDate string `json:"startDate,omitempty"`
	EndDate   string `json:"endDate,omitempty"`
	Budget    string `json:"budget,omitempty"`
	Timeline  string `json:"timeline,omitempty"`
}

// FillDefaults populates every empty field with a sensible default and
// returns the receiver for chaining.
func (m *Metadata) FillDefaults() *Metadata {
	if m.ProjectName == "" {
		m.ProjectName = "Project"
	}
	if m.CompanyName == "" {
		m.CompanyName = "Company"
	}
	if m.Version == "" {
		m.Version = "1.0"
	}
	if m.Date == "" {
		m.Date = time.Now().Format("2 January 2006")
	}
	if m.Author == "" {
		m.Author = "Project Management Office"
	}
	if m.Methodology == "" {
		m.Methodology = "hybrid"
	}
	return m
}

// =============================================================================
// Rendered Artifacts
// =============================================================================

// RenderedPDF is an immutable PDF artifact plus its metadata.
type RenderedPDF struct {
	Buffer      []byte
	PageCount   int
	Size        int64
	Metadata    Metadata
	GeneratedAt time.Time
}

// RenderResult is the outcome of a PDF generation request. Failure paths
// carry a human-readable Error instead of a Go error value; the service
// entry point never returns an error.
type RenderResult struct {
	Success bool         `json:"success"`
	PDF     *RenderedPDF `json:"pdf,omitempty"`
	Cached  bool         `json:"cached,omitempty"`
	Error   string       `json:"error,omitempty"`
}
