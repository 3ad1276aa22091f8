package domain

// =============================================================================
// User Tiers
// =============================================================================

// UserTier gates presentation defaults such as watermarks and attribution.
type UserTier string

const (
	UserTierFree    UserTier = "free"
	UserTierBasic   UserTier = "basic"
	UserTierPremium UserTier = "premium"
)

// IsValid reports whether the tier is recognized.
func (t UserTier) IsValid() bool {
	switch t {
	case UserTierFree, UserTierBasic, UserTierPremium:
		return true
	}
	return false
}

// =============================================================================
// Classification
// =============================================================================

// Classification selects an optional banner across every page.
type Classification string

const (
	ClassificationNone         Classification = ""
	ClassificationPublic       Classification = "PUBLIC"
	ClassificationInternal     Classification = "INTERNAL"
	ClassificationConfidential Classification = "CONFIDENTIAL"
)

// =============================================================================
// Formatter Options
// =============================================================================

// FormatterOptions configures HTML assembly. Pure configuration: no
// identity, no lifecycle, read-only during a render.
type FormatterOptions struct {
	IncludeTOC        bool           `json:"includeTOC"`
	IncludeCharts     bool           `json:"includeCharts"`
	IncludeIndicators bool           `json:"includeIndicators"`
	Theme             string         `json:"theme,omitempty"`
	WhiteLabel        bool           `json:"whiteLabel"`
	ShowDraft         bool           `json:"showDraft"`
	WatermarkText     string         `json:"watermarkText,omitempty"`
	Classification    Classification `json:"classification,omitempty"`
	HeaderText        string         `json:"headerText,omitempty"`
	FooterText        string         `json:"footerText,omitempty"`
	PageNumbers       bool           `json:"pageNumbers"`
}

// DefaultFormatterOptions returns the options used when the caller passes
// none: contents page, charts and indicators on, numbered pages.
func DefaultFormatterOptions() FormatterOptions {
	return FormatterOptions{
		IncludeTOC:        true,
		IncludeCharts:     true,
		IncludeIndicators: true,
		PageNumbers:       true,
	}
}

// =============================================================================
// PDF Options
// =============================================================================

// PageFormat selects the paper size for PDF capture.
type PageFormat string

const (
	PageFormatA4     PageFormat = "A4"
	PageFormatLetter PageFormat = "Letter"
)

// Margin holds CSS-style page margins. Values are free text understood by
// the renderer ("20mm", "0.79in"); empty fields fall back to defaults.
type Margin struct {
	Top    string `json:"top,omitempty"`
	Right  string `json:"right,omitempty"`
	Bottom string `json:"bottom,omitempty"`
	Left   string `json:"left,omitempty"`
}

// PDFOptions extends FormatterOptions with page geometry and tier gating.
type PDFOptions struct {
	FormatterOptions

	Format   PageFormat `json:"format,omitempty"`
	Margin   Margin     `json:"margin,omitempty"`
	UserTier UserTier   `json:"userTier,omitempty"`
}

// DefaultPDFOptions returns A4 output with the default formatter options.
func DefaultPDFOptions() PDFOptions {
	return PDFOptions{
		FormatterOptions: DefaultFormatterOptions(),
		Format:           PageFormatA4,
		UserTier:         UserTierFree,
	}
}

// ApplyTierPolicy enforces the tier rules on the options in place:
// free-tier output always carries the draft watermark and attribution,
// and only premium may suppress attribution via white-label.
func (o *PDFOptions) ApplyTierPolicy() {
	if !o.UserTier.IsValid() {
		o.UserTier = UserTierFree
	}
	switch o.UserTier {
	case UserTierFree:
		o.ShowDraft = true
		o.WhiteLabel = false
	case UserTierBasic:
		o.WhiteLabel = false
	}
}
