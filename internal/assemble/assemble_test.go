package assemble

import (
	"strings"
	"testing"

	"github.com/draftdeck/draftdeck/internal/domain"
	"github.com/stretchr/testify/assert"
)

const sampleFragment = `<section class="document-section" id="scope" data-title="Project Scope"><h2>Project Scope</h2></section>` +
	`<section class="document-section" id="risks" data-title="Risks &amp; Issues"><h2>Risks</h2></section>`

func sampleMeta() domain.Metadata {
	return domain.Metadata{
		ProjectName: "Apollo",
		CompanyName: "Acme Ltd",
		Version:     "2.1",
		Date:        "2 January 2026",
		Author:      "PMO",
	}
}

func TestDocumentSkeleton(t *testing.T) {
	a := New("")

	got := a.Document(domain.DocumentTypeCharter, sampleFragment, sampleMeta(), domain.FormatterOptions{})

	assert.True(t, strings.HasPrefix(got, "<!DOCTYPE html>"))
	assert.Contains(t, got, "<title>Apollo - Project Charter</title>")
	assert.Contains(t, got, `<div class="cover-company">Acme Ltd</div>`)
	assert.Contains(t, got, `<h1 class="cover-title">Project Charter</h1>`)
	assert.Contains(t, got, "<dt>Version</dt><dd>2.1</dd>")
	assert.Contains(t, got, `<main class="document-body">`)
	assert.Contains(t, got, sampleFragment)
}

func TestDocumentTOC(t *testing.T) {
	a := New("")

	t.Run("lists every section in order", func(t *testing.T) {
		got := a.Document(domain.DocumentTypeCharter, sampleFragment, sampleMeta(),
			domain.FormatterOptions{IncludeTOC: true})

		assert.Contains(t, got, `<nav class="toc document-section" id="contents" data-title="Contents">`)
		assert.Contains(t, got, `<li><a href="#scope">Project Scope</a></li>`)
		assert.Contains(t, got, `<li><a href="#risks">Risks &amp; Issues</a></li>`)
		assert.Less(t, strings.Index(got, "#scope"), strings.Index(got, "#risks"))
	})

	t.Run("omitted when disabled", func(t *testing.T) {
		got := a.Document(domain.DocumentTypeCharter, sampleFragment, sampleMeta(),
			domain.FormatterOptions{IncludeTOC: false})
		assert.NotContains(t, got, "toc-list")
	})

	t.Run("omitted for sectionless fragments", func(t *testing.T) {
		got := a.Document(domain.DocumentTypeCharter, "<p>bare</p>", sampleMeta(),
			domain.FormatterOptions{IncludeTOC: true})
		assert.NotContains(t, got, "toc-list")
	})
}

func TestDocumentWatermark(t *testing.T) {
	a := New("")

	t.Run("draft watermark on", func(t *testing.T) {
		got := a.Document(domain.DocumentTypeCharter, "", sampleMeta(),
			domain.FormatterOptions{ShowDraft: true})
		assert.Contains(t, got, `<div class="watermark">DRAFT</div>`)
	})

	t.Run("custom watermark text", func(t *testing.T) {
		got := a.Document(domain.DocumentTypeCharter, "", sampleMeta(),
			domain.FormatterOptions{ShowDraft: true, WatermarkText: "CONFIDENTIAL DRAFT"})
		assert.Contains(t, got, `<div class="watermark">CONFIDENTIAL DRAFT</div>`)
	})

	t.Run("no watermark by default", func(t *testing.T) {
		got := a.Document(domain.DocumentTypeCharter, "", sampleMeta(), domain.FormatterOptions{})
		assert.NotContains(t, got, `class="watermark"`)
	})
}

func TestDocumentAttribution(t *testing.T) {
	a := New("")

	got := a.Document(domain.DocumentTypeCharter, "", sampleMeta(), domain.FormatterOptions{})
	assert.Contains(t, got, "Generated by DraftDeck")

	got = a.Document(domain.DocumentTypeCharter, "", sampleMeta(),
		domain.FormatterOptions{WhiteLabel: true})
	assert.NotContains(t, got, "Generated by DraftDeck")
}

func TestDocumentClassificationBanner(t *testing.T) {
	a := New("")

	tests := []struct {
		name           string
		classification domain.Classification
		wantBanner     bool
	}{
		{name: "none", classification: domain.ClassificationNone, wantBanner: false},
		{name: "public suppressed", classification: domain.ClassificationPublic, wantBanner: false},
		{name: "internal shown", classification: domain.ClassificationInternal, wantBanner: true},
		{name: "confidential shown", classification: domain.ClassificationConfidential, wantBanner: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := a.Document(domain.DocumentTypeCharter, "", sampleMeta(),
				domain.FormatterOptions{Classification: tt.classification})
			if tt.wantBanner {
				assert.Contains(t, got, `class="classification-banner"`)
				assert.Contains(t, got, string(tt.classification))
			} else {
				assert.NotContains(t, got, `class="classification-banner"`)
			}
		})
	}
}

func TestDocumentMermaidScript(t *testing.T) {
	a := New("")

	got := a.Document(domain.DocumentTypeCharter, `<pre class="mermaid">pie</pre>`, sampleMeta(), domain.FormatterOptions{})
	assert.Contains(t, got, mermaidCDN)
	assert.Contains(t, got, "mermaid.initialize")

	got = a.Document(domain.DocumentTypeCharter, "<p>no diagrams</p>", sampleMeta(), domain.FormatterOptions{})
	assert.NotContains(t, got, mermaidCDN)
}

func TestStylesThemeSelection(t *testing.T) {
	t.Run("option theme wins", func(t *testing.T) {
		a := New("slate")
		css := a.styles(domain.FormatterOptions{Theme: "emerald"})
		assert.Contains(t, css, themes["emerald"].accent)
	})

	t.Run("assembler theme as fallback", func(t *testing.T) {
		a := New("burgundy")
		css := a.styles(domain.FormatterOptions{})
		assert.Contains(t, css, themes["burgundy"].accent)
	})

	t.Run("unknown theme falls back to default", func(t *testing.T) {
		a := New("")
		css := a.styles(domain.FormatterOptions{Theme: "neon"})
		assert.Contains(t, css, themes["default"].accent)
	})

	t.Run("placeholders fully substituted", func(t *testing.T) {
		css := New("").styles(domain.FormatterOptions{})
		assert.NotContains(t, css, "ACCENT")
		assert.NotContains(t, css, "MUTED")
	})
}
