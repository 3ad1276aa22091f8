package assemble

import (
	"strings"

	"github.com/draftdeck/draftdeck/internal/domain"
)

// Theme palettes. A theme only swaps accent colors; layout and print
// rules are shared so every document paginates the same way.
var themes = map[string]struct {
	accent string
	muted  string
}{
	"default":  {accent: "#1d4ed8", muted: "#64748b"},
	"slate":    {accent: "#334155", muted: "#64748b"},
	"emerald":  {accent: "#047857", muted: "#6b7280"},
	"burgundy": {accent: "#9f1239", muted: "#6b7280"},
}

func (a *Assembler) styles(opts domain.FormatterOptions) string {
	themeName := opts.Theme
	if themeName == "" {
		themeName = a.theme
	}
	palette, ok := themes[themeName]
	if !ok {
		palette = themes["default"]
	}

	css := baseCSS
	css = strings.ReplaceAll(css, "ACCENT", palette.accent)
	css = strings.ReplaceAll(css, "MUTED", palette.muted)
	return css
}

// baseCSS carries the shared layout and print rules. Section numbering
// uses a CSS counter so any subset of sections numbers contiguously.
const baseCSS = `
:root { color-scheme: light; }
* { box-sizing: border-box; }
body {
  margin: 0;
  font-family: "Segoe UI", "Helvetica Neue", Arial, sans-serif;
  font-size: 11pt;
  line-height: 1.5;
  color: #1e293b;
  counter-reset: section;
}
h1, h2, h3 { color: ACCENT; line-height: 1.25; }
h2 { font-size: 16pt; border-bottom: 2px solid ACCENT; padding-bottom: 4px; }
h3 { font-size: 13pt; }
p { margin: 0.5em 0 1em; }
a { color: ACCENT; text-decoration: none; }

.cover-page {
  min-height: 90vh;
  display: flex;
  flex-direction: column;
  justify-content: center;
  text-align: center;
  page-break-after: always;
}
.cover-company { font-size: 14pt; color: MUTED; text-transform: uppercase; letter-spacing: 2px; }
.cover-title { font-size: 30pt; margin: 0.4em 0 0.2em; }
.cover-project { font-size: 18pt; color: MUTED; margin-bottom: 2em; }
.cover-facts { display: inline-grid; grid-template-columns: auto auto; gap: 4px 16px; text-align: left; margin: 0 auto; }
.cover-facts dt { font-weight: 600; color: MUTED; }
.cover-facts dd { margin: 0; }

.document-section { page-break-before: always; padding: 0 2em; }
.document-section > h2::before {
  counter-increment: section;
  content: counter(section) ". ";
}
.toc { page-break-before: always; }
.toc > h2::before { content: none; }
.toc-list { line-height: 2; }

table.data-table {
  width: 100%;
  border-collapse: collapse;
  margin: 1em 0;
  page-break-inside: avoid;
  font-size: 10pt;
}
.data-table th {
  background: ACCENT;
  color: #ffffff;
  text-align: left;
  padding: 6px 10px;
}
.data-table td { border: 1px solid #e2e8f0; padding: 6px 10px; vertical-align: top; }
.data-table tr:nth-child(even) td { background: #f8fafc; }
.data-table tr { page-break-inside: avoid; }

dl { display: grid; grid-template-columns: max-content 1fr; gap: 4px 18px; }
dl dt { font-weight: 600; color: MUTED; }
dl dd { margin: 0; }

.highlight-box {
  border-left: 4px solid ACCENT;
  background: #f8fafc;
  padding: 10px 16px;
  margin: 1em 0;
  page-break-inside: avoid;
}
.highlight-title { font-weight: 600; margin-bottom: 4px; }
.highlight-success { border-left-color: #16a34a; }
.highlight-warning { border-left-color: #d97706; }
.highlight-danger { border-left-color: #dc2626; }

.indicator { white-space: nowrap; }
.indicator-dot {
  display: inline-block;
  width: 10px;
  height: 10px;
  border-radius: 50%;
  margin-right: 5px;
}

.progress-track {
  position: relative;
  background: #e2e8f0;
  border-radius: 4px;
  height: 14px;
  min-width: 80px;
}
.progress-fill { background: ACCENT; border-radius: 4px; height: 100%; }
.progress-label {
  position: absolute;
  top: -1px;
  left: 50%;
  transform: translateX(-50%);
  font-size: 8pt;
  color: #1e293b;
}

.kanban-board {
  display: flex;
  gap: 12px;
  align-items: flex-start;
  page-break-inside: avoid;
}
.kanban-column {
  flex: 1;
  background: #f1f5f9;
  border-radius: 6px;
  padding: 8px;
}
.kanban-column-title {
  font-weight: 600;
  color: ACCENT;
  padding-bottom: 6px;
  border-bottom: 1px solid #cbd5e1;
  margin-bottom: 8px;
}
.kanban-card {
  background: #ffffff;
  border: 1px solid #e2e8f0;
  border-radius: 4px;
  padding: 6px 8px;
  margin-bottom: 6px;
  font-size: 9.5pt;
}
.kanban-card-meta { color: MUTED; font-size: 8.5pt; }
.kanban-empty { color: MUTED; font-style: italic; }

pre.mermaid {
  background: transparent;
  text-align: center;
  page-break-inside: avoid;
}
pre.error-dump {
  background: #f8fafc;
  border: 1px solid #e2e8f0;
  padding: 10px;
  font-size: 8.5pt;
  white-space: pre-wrap;
  word-break: break-word;
}

.classification-banner {
  position: fixed;
  top: 0;
  left: 0;
  right: 0;
  text-align: center;
  font-weight: 700;
  letter-spacing: 3px;
  color: #dc2626;
  border-bottom: 1px solid #dc2626;
  padding: 2px 0;
  background: #ffffff;
  z-index: 10;
}

.watermark {
  position: fixed;
  top: 45%;
  left: 0;
  right: 0;
  text-align: center;
  font-size: 90pt;
  font-weight: 700;
  color: rgba(148, 163, 184, 0.18);
  transform: rotate(-30deg);
  pointer-events: none;
  z-index: 0;
}

.attribution {
  text-align: center;
  color: MUTED;
  font-size: 8.5pt;
  padding: 12px 0;
}

@media print {
  .document-section { padding: 0; }
  .watermark { position: fixed; }
}
`
