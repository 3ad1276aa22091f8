package format

import (
	"testing"

	"github.com/draftdeck/draftdeck/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestTextEscapes(t *testing.T) {
	assert.Equal(t, "&lt;b&gt;bold&lt;&#x2F;b&gt;", Render(Text("<b>bold</b>")))
}

func TestSection(t *testing.T) {
	got := Render(Section("scope", "Project Scope", Para("In and out.")))

	assert.Contains(t, got, `<section class="document-section" id="scope" data-title="Project Scope">`)
	assert.Contains(t, got, "<h2>Project Scope</h2>")
	assert.Contains(t, got, "<p>In and out.</p>")
	assert.Contains(t, got, "</section>")
}

func TestSectionEscapesTitleAttribute(t *testing.T) {
	got := Render(Section("x", `A "quoted" title`))
	assert.Contains(t, got, `data-title="A &quot;quoted&quot; title"`)
}

func TestListSkipsEmptyItems(t *testing.T) {
	got := Render(List([]string{"one", "  ", "two"}))
	assert.Equal(t, "<ul><li>one</li><li>two</li></ul>", got)

	assert.Nil(t, List([]string{"", "  "}))
	assert.Nil(t, List(nil))
}

func TestTable(t *testing.T) {
	got := Render(Table(
		[]string{"Name", "Role"},
		[][]string{{"Dana", "Sponsor"}},
	))

	assert.Contains(t, got, `<table class="data-table">`)
	assert.Contains(t, got, "<th>Name</th><th>Role</th>")
	assert.Contains(t, got, "<td>Dana</td><td>Sponsor</td>")

	assert.Nil(t, Table([]string{"Name"}, nil))
}

func TestIf(t *testing.T) {
	assert.Equal(t, "<p>yes</p>", Render(If(true, Para("yes"))))
	assert.Empty(t, Render(If(false, Para("no"))))
}

func TestIndicator(t *testing.T) {
	got := Render(Indicator(domain.RiskBandHigh))
	assert.Contains(t, got, `class="indicator"`)
	assert.Contains(t, got, "background:#F97316")
	assert.Contains(t, got, ">High<")
}

func TestProgressBarClamps(t *testing.T) {
	got := Render(ProgressBar(140))
	assert.Contains(t, got, "width:100%")
	assert.Contains(t, got, ">100%<")
}

func TestMermaidEscapesCode(t *testing.T) {
	got := Render(Mermaid("pie\n    \"a\" : 1"))
	assert.Contains(t, got, `<pre class="mermaid">`)
	assert.Contains(t, got, "&quot;a&quot;")
}
