// Package assemble turns a formatted HTML body fragment into a complete,
// self-contained HTML page ready for browser display or PDF capture. The
// same assembled page feeds both, so the preview is exactly what prints.
package assemble

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/draftdeck/draftdeck/internal/domain"
	"github.com/draftdeck/draftdeck/internal/format"
)

// mermaidCDN is the client-side diagram renderer, loaded only when the
// fragment actually contains diagram blocks.
const mermaidCDN = "https://cdn.jsdelivr.net/npm/mermaid@11/dist/mermaid.min.js"

// sectionPattern recovers the contents-page entries from the assembled
// fragment. Every section carrier emits this exact attribute order.
var sectionPattern = regexp.MustCompile(
	`class="document-section" id="([^"]+)" data-title="([^"]*)"`)

// Assembler builds full HTML documents around formatter output.
type Assembler struct {
	theme string
}

// New returns an assembler using the given theme name; empty selects the
// default palette.
func New(theme string) *Assembler {
	return &Assembler{theme: theme}
}

// Document wraps a body fragment in a complete HTML page: print CSS,
// optional cover page and table of contents, classification banner, draft
// watermark, and attribution footer. Attribution is suppressed only under
// white-label.
func (a *Assembler) Document(docType domain.DocumentType, fragment string, meta domain.Metadata, opts domain.FormatterOptions) string {
	meta.FillDefaults()

	var b strings.Builder
	b.WriteString("<!DOCTYPE html>\n<html lang=\"en\">\n<head>\n")
	b.WriteString(`<meta charset="utf-8">` + "\n")
	fmt.Fprintf(&b, "<title>%s - %s</title>\n",
		format.EscapeHTML(meta.ProjectName), format.EscapeHTML(docType.Title()))
	b.WriteString("<style>\n")
	b.WriteString(a.styles(opts))
	b.WriteString("</style>\n</head>\n<body>\n")

	if opts.Classification != "" && opts.Classification != domain.ClassificationPublic {
		fmt.Fprintf(&b, `<div class="classification-banner">%s</div>`+"\n",
			format.EscapeHTML(string(opts.Classification)))
	}
	if opts.ShowDraft {
		watermark := opts.WatermarkText
		if watermark == "" {
			watermark = "DRAFT"
		}
		fmt.Fprintf(&b, `<div class="watermark">%s</div>`+"\n", format.EscapeHTML(watermark))
	}

	a.writeCover(&b, docType, meta)

	if opts.IncludeTOC {
		a.writeTOC(&b, fragment)
	}

	b.WriteString(`<main class="document-body">` + "\n")
	b.WriteString(fragment)
	b.WriteString("\n</main>\n")

	if !opts.WhiteLabel {
		b.WriteString(`<footer class="attribution">Generated by DraftDeck</footer>` + "\n")
	}

	if strings.Contains(fragment, `class="mermaid"`) {
		fmt.Fprintf(&b, `<script src="%s"></script>`+"\n", mermaidCDN)
		b.WriteString(`<script>mermaid.initialize({startOnLoad:true,theme:"neutral"});</script>` + "\n")
	}

	b.WriteString("</body>\n</html>\n")
	return b.String()
}

func (a *Assembler) writeCover(b *strings.Builder, docType domain.DocumentType, meta domain.Metadata) {
	b.WriteString(`<div class="cover-page">` + "\n")
	fmt.Fprintf(b, `<div class="cover-company">%s</div>`+"\n", format.EscapeHTML(meta.CompanyName))
	fmt.Fprintf(b, `<h1 class="cover-title">%s</h1>`+"\n", format.EscapeHTML(docType.Title()))
	fmt.Fprintf(b, `<div class="cover-project">%s</div>`+"\n", format.EscapeHTML(meta.ProjectName))
	b.WriteString(`<dl class="cover-facts">` + "\n")
	for _, fact := range [][2]string{
		{"Version", meta.Version},
		{"Date", meta.Date},
		{"Author", meta.Author},
	} {
		fmt.Fprintf(b, "<dt>%s</dt><dd>%s</dd>\n",
			format.EscapeHTML(fact[0]), format.EscapeHTML(fact[1]))
	}
	b.WriteString("</dl>\n</div>\n")
}

// writeTOC scans the fragment for section carriers and emits a linked
// contents page. Sections number themselves with CSS counters so omitted
// sections never leave numbering gaps.
func (a *Assembler) writeTOC(b *strings.Builder, fragment string) {
	matches := sectionPattern.FindAllStringSubmatch(fragment, -1)
	if len(matches) == 0 {
		return
	}
	b.WriteString(`<nav class="toc document-section" id="contents" data-title="Contents">` + "\n")
	b.WriteString("<h2>Contents</h2>\n<ol class=\"toc-list\">\n")
	for _, m := range matches {
		fmt.Fprintf(b, `<li><a href="#%s">%s</a></li>`+"\n", m[1], m[2])
	}
	b.WriteString("</ol>\n</nav>\n")
}
