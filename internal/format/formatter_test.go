package format

import (
	"strings"
	"testing"

	"github.com/draftdeck/draftdeck/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testMeta() domain.Metadata {
	return domain.Metadata{
		ProjectName: "Apollo",
		CompanyName: "Acme Ltd",
		Version:     "1.0",
		Date:        "2 January 2026",
		StartDate:   "2026-01-05",
		EndDate:     "2026-07-05",
	}
}

func TestRegistryCoversAllDocumentTypes(t *testing.T) {
	r := NewRegistry(nil)
	for _, dt := range domain.AllDocumentTypes() {
		assert.True(t, r.Supports(dt), "missing formatter for %q", dt)
	}
	assert.False(t, r.Supports(domain.DocumentType("memo")))
}

func TestFormatIsTotal(t *testing.T) {
	r := NewRegistry(nil)
	opts := domain.DefaultFormatterOptions()

	for _, dt := range domain.AllDocumentTypes() {
		t.Run(string(dt), func(t *testing.T) {
			for _, raw := range []any{nil, "plain prose", map[string]any{}, []any{"odd"}} {
				html := r.Format(dt, raw, testMeta(), opts)
				assert.NotEmpty(t, html)
				assert.Contains(t, html, "document-section")
			}
		})
	}
}

func TestFormatUnknownTypeDegradesToErrorReport(t *testing.T) {
	r := NewRegistry(nil)

	html := r.Format(domain.DocumentType("memo"), map[string]any{"x": 1}, testMeta(), domain.FormatterOptions{})

	assert.Contains(t, html, `id="error-report"`)
	assert.Contains(t, html, "Document Generation Error")
	assert.Contains(t, html, "Apollo")
	assert.Contains(t, html, "memo")
}

func TestErrorReportTruncatesHugeInput(t *testing.T) {
	r := NewRegistry(nil)

	huge := map[string]any{"blob": strings.Repeat("x", 10_000)}
	html := r.Format(domain.DocumentType("memo"), huge, testMeta(), domain.FormatterOptions{})

	assert.Contains(t, html, "(truncated)")
	assert.Less(t, len(html), 8_000)
}

func TestCharterFragment(t *testing.T) {
	r := NewRegistry(nil)

	html := r.Format(domain.DocumentTypeCharter, map[string]any{
		"executiveSummary": "Consolidate the billing stack.",
		"objectives":       []any{"Cut invoice latency"},
		"stakeholders": []any{
			map[string]any{"name": "Dana", "role": "Sponsor", "interest": "Funding"},
		},
		"risks": []any{
			map[string]any{"description": "Vendor slips", "probability": "high", "impact": "high"},
		},
	}, testMeta(), domain.DefaultFormatterOptions())

	assert.Contains(t, html, "Consolidate the billing stack.")
	assert.Contains(t, html, "Cut invoice latency")
	assert.Contains(t, html, "Dana")
	// high x high scores 16, which lands in the critical band
	assert.Contains(t, html, "Critical")
}

func TestBusinessCaseCostShares(t *testing.T) {
	r := NewRegistry(nil)

	html := r.Format(domain.DocumentTypeBusinessCase, map[string]any{
		"costs": map[string]any{
			"development": "$285,000",
			"operational": "$120,000",
			"maintenance": "$95,000",
			"total":       "$500,000",
		},
	}, testMeta(), domain.DefaultFormatterOptions())

	assert.Contains(t, html, "57%")
	assert.Contains(t, html, "24%")
	assert.Contains(t, html, "19%")
	assert.Contains(t, html, "100%")
	assert.Contains(t, html, "pie showData")
}

func TestBusinessCaseUnparsableTotalDegradesPerRow(t *testing.T) {
	r := NewRegistry(nil)

	html := r.Format(domain.DocumentTypeBusinessCase, map[string]any{
		"costs": map[string]any{
			"development": "$285,000",
			"total":       "to be confirmed",
		},
	}, testMeta(), domain.FormatterOptions{})

	// without a usable total every share column reads TBD
	assert.NotContains(t, html, "%</td>")
}

func TestRiskRegisterFragment(t *testing.T) {
	r := NewRegistry(nil)

	html := r.Format(domain.DocumentTypeRiskRegister, map[string]any{
		"risks": []any{
			map[string]any{
				"id":          "R001",
				"risk":        "Key engineer leaves",
				"probability": "low",
				"impact":      "low",
				"category":    "Resource",
			},
		},
	}, testMeta(), domain.FormatterOptions{})

	assert.Contains(t, html, "R001")
	assert.Contains(t, html, "Key engineer leaves")
	// low x low scores 4, the top of the low band
	assert.Contains(t, html, "4 (Low)")
}

func TestKanbanFragment(t *testing.T) {
	r := NewRegistry(nil)

	html := r.Format(domain.DocumentTypeKanban, map[string]any{
		"columns": []any{
			map[string]any{
				"name":     "In Progress",
				"wipLimit": 2,
				"items": []any{
					map[string]any{"title": "Wire the invoice API", "assignee": "Sam"},
				},
			},
			map[string]any{"name": "Done"},
		},
	}, testMeta(), domain.DefaultFormatterOptions())

	require.Contains(t, html, "kanban-board")
	assert.Contains(t, html, "Wire the invoice API")
	assert.Contains(t, html, "Sam")
	assert.Contains(t, html, "No items")
}
