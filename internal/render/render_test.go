package render

import (
	"testing"

	"github.com/draftdeck/draftdeck/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestMarginInches(t *testing.T) {
	tests := []struct {
		name     string
		value    string
		fallback float64
		want     float64
	}{
		{name: "empty uses fallback", value: "", fallback: 0.59, want: 0.59},
		{name: "millimeters", value: "25.4mm", fallback: 0, want: 1.0},
		{name: "bare number is millimeters", value: "25.4", fallback: 0, want: 1.0},
		{name: "inches", value: "0.79in", fallback: 0, want: 0.79},
		{name: "centimeters", value: "2.54cm", fallback: 0, want: 1.0},
		{name: "pixels", value: "96px", fallback: 0, want: 1.0},
		{name: "uppercase units", value: "25.4MM", fallback: 0, want: 1.0},
		{name: "garbage uses fallback", value: "wide", fallback: 0.5, want: 0.5},
		{name: "negative uses fallback", value: "-3mm", fallback: 0.5, want: 0.5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, marginInches(tt.value, tt.fallback), 1e-9)
		})
	}
}

func TestPrintParamsGeometry(t *testing.T) {
	r := New(nil, Config{}, nil)
	meta := domain.Metadata{ProjectName: "Apollo"}

	t.Run("A4 default", func(t *testing.T) {
		p := r.printParams(meta, domain.PDFOptions{Format: domain.PageFormatA4})
		assert.InDelta(t, 8.27, p.PaperWidth, 1e-9)
		assert.InDelta(t, 11.69, p.PaperHeight, 1e-9)
		assert.False(t, p.DisplayHeaderFooter)
	})

	t.Run("letter", func(t *testing.T) {
		p := r.printParams(meta, domain.PDFOptions{Format: domain.PageFormatLetter})
		assert.InDelta(t, 8.5, p.PaperWidth, 1e-9)
		assert.InDelta(t, 11.0, p.PaperHeight, 1e-9)
	})

	t.Run("unknown format falls back to A4", func(t *testing.T) {
		p := r.printParams(meta, domain.PDFOptions{Format: domain.PageFormat("Tabloid")})
		assert.InDelta(t, 8.27, p.PaperWidth, 1e-9)
	})

	t.Run("page numbers enable the header strip and widen margins", func(t *testing.T) {
		opts := domain.PDFOptions{Format: domain.PageFormatA4}
		opts.PageNumbers = true
		p := r.printParams(meta, opts)
		assert.True(t, p.DisplayHeaderFooter)
		assert.GreaterOrEqual(t, p.MarginTop, 0.71)
		assert.GreaterOrEqual(t, p.MarginBottom, 0.71)
		assert.Contains(t, p.FooterTemplate, `class="pageNumber"`)
		assert.Contains(t, p.FooterTemplate, `class="totalPages"`)
	})

	t.Run("explicit wide margins survive the header strip", func(t *testing.T) {
		opts := domain.PDFOptions{
			Format: domain.PageFormatA4,
			Margin: domain.Margin{Top: "1in", Bottom: "30mm"},
		}
		opts.PageNumbers = true
		p := r.printParams(meta, opts)
		assert.InDelta(t, 1.0, p.MarginTop, 1e-9)
		assert.InDelta(t, 30.0/25.4, p.MarginBottom, 1e-9)
	})
}

func TestHeaderFooterTemplates(t *testing.T) {
	meta := domain.Metadata{ProjectName: "Apollo", CompanyName: "Acme Ltd", Date: "2 January 2026"}

	t.Run("defaults to project and company", func(t *testing.T) {
		var opts domain.PDFOptions
		assert.Contains(t, headerTemplate(meta, opts), "Apollo")
		assert.Contains(t, headerTemplate(meta, opts), "2 January 2026")
		assert.Contains(t, footerTemplate(meta, opts), "Acme Ltd")
	})

	t.Run("explicit text wins and is escaped", func(t *testing.T) {
		var opts domain.PDFOptions
		opts.HeaderText = "<b>Q3 Review</b>"
		got := headerTemplate(meta, opts)
		assert.Contains(t, got, "&lt;b&gt;Q3 Review&lt;&#x2F;b&gt;")
		assert.NotContains(t, got, "<b>Q3 Review</b>")
	})

	t.Run("page numbers omitted when off", func(t *testing.T) {
		var opts domain.PDFOptions
		assert.NotContains(t, footerTemplate(meta, opts), "pageNumber")
	})
}

func TestPageCount(t *testing.T) {
	tests := []struct {
		name string
		pdf  []byte
		want int
	}{
		{
			name: "spaced markers",
			pdf:  []byte("/Type /Pages /Type /Page /Type /Page /Type /Page"),
			want: 3,
		},
		{
			name: "compact markers",
			pdf:  []byte("/Type/Pages /Type/Page /Type/Page"),
			want: 2,
		},
		{
			name: "no markers clamps to one",
			pdf:  []byte("%PDF-1.7 empty"),
			want: 1,
		},
		{
			name: "nil input",
			pdf:  nil,
			want: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, PageCount(tt.pdf))
		})
	}
}
