package render

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/draftdeck/draftdeck/internal/domain"
	"github.com/draftdeck/draftdeck/internal/format"
)

// marginInches parses a CSS-style margin value ("20mm", "0.79in", "15")
// into inches, falling back when the value is empty or unreadable. Bare
// numbers are read as millimeters.
func marginInches(value string, fallback float64) float64 {
	v := strings.TrimSpace(strings.ToLower(value))
	if v == "" {
		return fallback
	}
	unit := "mm"
	switch {
	case strings.HasSuffix(v, "in"):
		unit = "in"
		v = strings.TrimSuffix(v, "in")
	case strings.HasSuffix(v, "mm"):
		v = strings.TrimSuffix(v, "mm")
	case strings.HasSuffix(v, "cm"):
		unit = "cm"
		v = strings.TrimSuffix(v, "cm")
	case strings.HasSuffix(v, "px"):
		unit = "px"
		v = strings.TrimSuffix(v, "px")
	}
	n, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
	if err != nil || n < 0 {
		return fallback
	}
	switch unit {
	case "in":
		return n
	case "cm":
		return n / 2.54
	case "px":
		return n / 96.0
	default:
		return n / 25.4
	}
}

// headerTemplate renders the repeated page header. Chrome injects these
// templates at print time with a tiny default font, so sizes are inline.
func headerTemplate(meta domain.Metadata, opts domain.PDFOptions) string {
	text := opts.HeaderText
	if text == "" {
		text = meta.ProjectName
	}
	return fmt.Sprintf(
		`<div style="font-size:8px;width:100%%;padding:0 0.79in;display:flex;justify-content:space-between;color:#64748b;">`+
			`<span>%s</span><span>%s</span></div>`,
		format.EscapeHTML(text), format.EscapeHTML(meta.Date))
}

// footerTemplate renders the repeated page footer with Chrome's special
// pageNumber/totalPages class spans when page numbers are on.
func footerTemplate(meta domain.Metadata, opts domain.PDFOptions) string {
	text := opts.FooterText
	if text == "" {
		text = meta.CompanyName
	}
	pages := ""
	if opts.PageNumbers {
		pages = `<span>Page <span class="pageNumber"></span> of <span class="totalPages"></span></span>`
	}
	return fmt.Sprintf(
		`<div style="font-size:8px;width:100%%;padding:0 0.79in;display:flex;justify-content:space-between;color:#64748b;">`+
			`<span>%s</span>%s</div>`,
		format.EscapeHTML(text), pages)
}
