package format

import (
	"fmt"
	"math"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Cross-cutting helpers shared by every per-type formatter: value
// extraction with fallback chains, array coercion, escaping, and numeric
// formatting.

// =============================================================================
// Value Extraction
// =============================================================================

// ExtractValue returns the first defined value among several candidate
// key paths. Paths may be dotted for nested lookup ("costs.total").
// Returns nil when no candidate resolves. No side effects.
func ExtractValue(obj any, paths ...string) any {
	m, ok := obj.(map[string]any)
	if !ok {
		return nil
	}
	for _, path := range paths {
		if v := lookupPath(m, path); v != nil {
			return v
		}
	}
	return nil
}

func lookupPath(m map[string]any, path string) any {
	parts := strings.Split(path, ".")
	var current any = m
	for _, part := range parts {
		cm, ok := current.(map[string]any)
		if !ok {
			return nil
		}
		current, ok = cm[part]
		if !ok {
			return nil
		}
	}
	return current
}

// =============================================================================
// Array Coercion
// =============================================================================

// listSubKeys are the wrapper keys under which sequences have
// historically been nested.
var listSubKeys = []string{"items", "list", "data"}

// ExtractArray normalizes string/array/object-with-items shapes into an
// ordered sequence, filtering nil entries. Delimited strings split on the
// given delimiter into trimmed segments; an empty delimiter defaults to
// newline.
func ExtractArray(value any, delimiter string) []any {
	if delimiter == "" {
		delimiter = "\n"
	}
	switch t := value.(type) {
	case nil:
		return []any{}
	case []any:
		out := make([]any, 0, len(t))
		for _, item := range t {
			if item != nil {
				out = append(out, item)
			}
		}
		return out
	case string:
		out := []any{}
		for _, seg := range strings.Split(t, delimiter) {
			if trimmed := strings.TrimSpace(seg); trimmed != "" {
				out = append(out, trimmed)
			}
		}
		return out
	case map[string]any:
		for _, key := range listSubKeys {
			if inner, ok := t[key]; ok {
				return ExtractArray(inner, delimiter)
			}
		}
		return []any{t}
	default:
		return []any{t}
	}
}

// ExtractStrings is ExtractArray with each entry rendered as text.
func ExtractStrings(value any, delimiter string) []string {
	items := ExtractArray(value, delimiter)
	out := make([]string, 0, len(items))
	for _, item := range items {
		if s := fmt.Sprintf("%v", item); s != "" {
			out = append(out, s)
		}
	}
	return out
}

// =============================================================================
// Escaping
// =============================================================================

var htmlEscaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
	"'", "&#39;",
	"/", "&#x2F;",
)

// EscapeHTML maps & < > " ' / to entity references. Safe on empty input.
func EscapeHTML(text string) string {
	if text == "" {
		return ""
	}
	return htmlEscaper.Replace(text)
}

// =============================================================================
// Numeric Formatting
// =============================================================================

var numberPrinter = message.NewPrinter(language.English)

// FormatNumber renders integers with thousands separators and
// non-integers fixed to two decimal places.
func FormatNumber(v float64) string {
	if v == math.Trunc(v) && math.Abs(v) < 1e15 {
		return numberPrinter.Sprintf("%d", int64(v))
	}
	return numberPrinter.Sprintf("%.2f", v)
}

// ClampPercent limits a percentage to [0,100].
func ClampPercent(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}

// Percentage renders part/total as a whole-number percentage, "TBD" when
// the total is unusable.
func Percentage(part, total float64) string {
	if total <= 0 {
		return "TBD"
	}
	return fmt.Sprintf("%.0f%%", ClampPercent(part/total*100))
}

// TruncateText shortens text to maxLen, appending an ellipsis.
func TruncateText(text string, maxLen int) string {
	if len(text) <= maxLen {
		return text
	}
	if maxLen <= 3 {
		return text[:maxLen]
	}
	return text[:maxLen-3] + "..."
}
