// Package format turns canonical document structures into semantic HTML
// fragments, one formatter per document type, on top of a shared toolkit
// of value-extraction, date/budget calculation and HTML-building helpers.
package format

import (
	"fmt"
	"strings"

	"github.com/draftdeck/draftdeck/internal/domain"
)

// The HTML builder is a small typed node tree. Escaping and the
// page-break/TOC metadata on sections are enforced structurally here, so
// individual formatters cannot emit unescaped text or an unidentifiable
// section.

// Node is one element of the HTML tree.
type Node interface {
	write(b *strings.Builder)
}

// Render serializes nodes to an HTML string. Nil nodes are skipped.
func Render(nodes ...Node) string {
	var b strings.Builder
	for _, n := range nodes {
		if n != nil {
			n.write(&b)
		}
	}
	return b.String()
}

// =============================================================================
// Leaf Nodes
// =============================================================================

type textNode string

func (t textNode) write(b *strings.Builder) { b.WriteString(EscapeHTML(string(t))) }

// Text is an escaped text node.
func Text(s string) Node { return textNode(s) }

type rawNode string

func (r rawNode) write(b *strings.Builder) { b.WriteString(string(r)) }

// Raw injects pre-built HTML verbatim. Callers own the escaping of
// anything that flows into it.
func Raw(html string) Node { return rawNode(html) }

// =============================================================================
// Grouping
// =============================================================================

type groupNode []Node

func (g groupNode) write(b *strings.Builder) {
	for _, n := range g {
		if n != nil {
			n.write(b)
		}
	}
}

// Group renders children in sequence with no wrapper element.
func Group(children ...Node) Node { return groupNode(children) }

// If returns the node when cond holds, nil otherwise.
func If(cond bool, node Node) Node {
	if cond {
		return node
	}
	return nil
}

// =============================================================================
// Elements
// =============================================================================

type elemNode struct {
	tag      string
	attrs    []string // alternating name, value
	children []Node
}

func (e *elemNode) write(b *strings.Builder) {
	b.WriteString("<")
	b.WriteString(e.tag)
	for i := 0; i+1 < len(e.attrs); i += 2 {
		b.WriteString(" ")
		b.WriteString(e.attrs[i])
		b.WriteString(`="`)
		b.WriteString(EscapeHTML(e.attrs[i+1]))
		b.WriteString(`"`)
	}
	b.WriteString(">")
	for _, c := range e.children {
		if c != nil {
			c.write(b)
		}
	}
	b.WriteString("</")
	b.WriteString(e.tag)
	b.WriteString(">")
}

func el(tag string, attrs []string, children ...Node) Node {
	return &elemNode{tag: tag, attrs: attrs, children: children}
}

// Section wraps content in the page-break/TOC container every section
// must carry: class "document-section", a stable id, and the display title
// as data-title for the assembler's contents page.
func Section(id, title string, children ...Node) Node {
	heading := el("h2", nil, Text(title))
	return el("section",
		[]string{"class", "document-section", "id", id, "data-title", title},
		append([]Node{heading}, children...)...,
	)
}

// Sub is a subsection heading within a section.
func Sub(title string) Node { return el("h3", nil, Text(title)) }

// Para is an escaped paragraph.
func Para(text string) Node { return el("p", nil, Text(text)) }

// Paraf is a formatted escaped paragraph.
func Paraf(format string, args ...any) Node {
	return Para(fmt.Sprintf(format, args...))
}

// List renders an unordered list, skipping empty items.
func List(items []string) Node {
	nodes := make([]Node, 0, len(items))
	for _, item := range items {
		if strings.TrimSpace(item) == "" {
			continue
		}
		nodes = append(nodes, el("li", nil, Text(item)))
	}
	if len(nodes) == 0 {
		return nil
	}
	return el("ul", nil, nodes...)
}

// OrderedList renders a numbered list, skipping empty items.
func OrderedList(items []string) Node {
	nodes := make([]Node, 0, len(items))
	for _, item := range items {
		if strings.TrimSpace(item) == "" {
			continue
		}
		nodes = append(nodes, el("li", nil, Text(item)))
	}
	if len(nodes) == 0 {
		return nil
	}
	return el("ol", nil, nodes...)
}

// DefList renders label/value pairs as a definition list.
func DefList(pairs [][2]string) Node {
	nodes := make([]Node, 0, len(pairs)*2)
	for _, p := range pairs {
		nodes = append(nodes,
			el("dt", nil, Text(p[0])),
			el("dd", nil, Text(p[1])),
		)
	}
	if len(nodes) == 0 {
		return nil
	}
	return el("dl", nil, nodes...)
}

// Table renders a header row plus string rows, all cells escaped.
func Table(headers []string, rows [][]string) Node {
	nodeRows := make([][]Node, 0, len(rows))
	for _, row := range rows {
		cells := make([]Node, 0, len(row))
		for _, cell := range row {
			cells = append(cells, Text(cell))
		}
		nodeRows = append(nodeRows, cells)
	}
	return TableNodes(headers, nodeRows)
}

// TableNodes renders a table whose cells are arbitrary nodes, for rows
// that mix text with indicators or progress bars.
func TableNodes(headers []string, rows [][]Node) Node {
	if len(rows) == 0 {
		return nil
	}
	headCells := make([]Node, 0, len(headers))
	for _, h := range headers {
		headCells = append(headCells, el("th", nil, Text(h)))
	}
	bodyRows := make([]Node, 0, len(rows))
	for _, row := range rows {
		cells := make([]Node, 0, len(row))
		for _, cell := range row {
			cells = append(cells, el("td", nil, cell))
		}
		bodyRows = append(bodyRows, el("tr", nil, cells...))
	}
	return el("table", []string{"class", "data-table"},
		el("thead", nil, el("tr", nil, headCells...)),
		el("tbody", nil, bodyRows...),
	)
}

// HighlightBox renders a titled callout. kind is one of info, success,
// warning, danger.
func HighlightBox(kind, title string, children ...Node) Node {
	inner := []Node{el("div", []string{"class", "highlight-title"}, Text(title))}
	inner = append(inner, children...)
	return el("div", []string{"class", "highlight-box highlight-" + kind}, inner...)
}

// ProgressBar renders a horizontal bar at the given percentage, clamped
// to [0,100].
func ProgressBar(pct float64) Node {
	pct = ClampPercent(pct)
	return el("div", []string{"class", "progress-track"},
		el("div", []string{
			"class", "progress-fill",
			"style", fmt.Sprintf("width:%.0f%%", pct),
		}),
		el("span", []string{"class", "progress-label"}, Text(fmt.Sprintf("%.0f%%", pct))),
	)
}

// Indicator renders a colored severity glyph with its band label.
func Indicator(band domain.RiskBand) Node {
	return el("span", []string{"class", "indicator"},
		el("span", []string{
			"class", "indicator-dot",
			"style", "background:" + band.Color(),
		}),
		Text(string(band)),
	)
}

// Mermaid embeds a diagram-description block rendered client-side. The
// raw syntax stays visible as preformatted text if the diagram library
// fails to load.
func Mermaid(code string) Node {
	return el("pre", []string{"class", "mermaid"}, Text(code))
}
