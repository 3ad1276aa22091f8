package format

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractValue(t *testing.T) {
	obj := map[string]any{
		"costs": map[string]any{"total": "$500,000"},
		"name":  "Apollo",
	}

	tests := []struct {
		name  string
		paths []string
		want  any
	}{
		{name: "flat key", paths: []string{"name"}, want: "Apollo"},
		{name: "dotted path", paths: []string{"costs.total"}, want: "$500,000"},
		{name: "first hit wins", paths: []string{"missing", "name"}, want: "Apollo"},
		{name: "no match", paths: []string{"missing", "also.missing"}, want: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ExtractValue(obj, tt.paths...))
		})
	}

	t.Run("non-map input", func(t *testing.T) {
		assert.Nil(t, ExtractValue("not a map", "name"))
	})
}

func TestExtractArray(t *testing.T) {
	tests := []struct {
		name      string
		value     any
		delimiter string
		want      []any
	}{
		{name: "nil", value: nil, want: []any{}},
		{name: "array drops nils", value: []any{"a", nil, "b"}, want: []any{"a", "b"}},
		{name: "newline string", value: "a\nb\n\nc", want: []any{"a", "b", "c"}},
		{name: "custom delimiter", value: "a, b, c", delimiter: ",", want: []any{"a", "b", "c"}},
		{name: "items wrapper", value: map[string]any{"items": []any{"x"}}, want: []any{"x"}},
		{name: "plain object wraps", value: map[string]any{"k": "v"}, want: []any{map[string]any{"k": "v"}}},
		{name: "scalar wraps", value: 7, want: []any{7}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ExtractArray(tt.value, tt.delimiter))
		})
	}
}

func TestEscapeHTML(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "empty", in: "", want: ""},
		{name: "plain", in: "hello", want: "hello"},
		{name: "angle brackets", in: "<script>", want: "&lt;script&gt;"},
		{name: "quotes and slash", in: `a "b" 'c' /d`, want: "a &quot;b&quot; &#39;c&#39; &#x2F;d"},
		{name: "ampersand first", in: "&lt;", want: "&amp;lt;"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, EscapeHTML(tt.in))
		})
	}
}

func TestFormatNumber(t *testing.T) {
	assert.Equal(t, "1,000", FormatNumber(1000))
	assert.Equal(t, "500,000", FormatNumber(500000))
	assert.Equal(t, "1,234.50", FormatNumber(1234.5))
	assert.Equal(t, "0", FormatNumber(0))
}

func TestPercentage(t *testing.T) {
	assert.Equal(t, "57%", Percentage(285000, 500000))
	assert.Equal(t, "100%", Percentage(600, 500))
	assert.Equal(t, "0%", Percentage(-10, 100))
	assert.Equal(t, "TBD", Percentage(50, 0))
	assert.Equal(t, "TBD", Percentage(50, -1))
}

func TestTruncateText(t *testing.T) {
	assert.Equal(t, "short", TruncateText("short", 10))
	assert.Equal(t, "long te...", TruncateText("long text here", 10))
	assert.Equal(t, "ab", TruncateText("abcdef", 2))
}
