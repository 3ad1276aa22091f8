// Package normalize turns loosely-structured, possibly incomplete document
// payloads into fully-populated canonical structures.
//
// Every normalizer method is total: any input, including nil, raw prose, or
// legacy field-name variants, produces a complete structure without error.
// Missing values are filled with placeholders that remain visually
// distinguishable from authored content ("TBD", "... to be defined").
package normalize

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"strconv"
	"strings"
)

// Normalizer converts raw document payloads to canonical structures.
type Normalizer struct {
	logger *slog.Logger
}

// New creates a Normalizer. A nil logger falls back to slog.Default().
func New(logger *slog.Logger) *Normalizer {
	if logger == nil {
		logger = slog.Default()
	}
	return &Normalizer{logger: logger}
}

// =============================================================================
// Envelope Unwrapping
// =============================================================================

// envelopeKeys are wrapper keys accumulated over the system's history.
// A payload of the form {content: {...}} (possibly nested several levels)
// unwraps to the inner object.
var envelopeKeys = []string{"content", "data", "document", "payload", "result"}

// maxUnwrapDepth bounds recursive envelope unwrapping.
const maxUnwrapDepth = 5

// unwrap converts an arbitrary payload into a key-folded document map.
// A bare string payload (or {analysis: "raw text"}) is returned as the
// second value for regex extraction by the caller.
func (n *Normalizer) unwrap(raw any) (doc, string) {
	if raw == nil {
		return doc{}, ""
	}
	if s, ok := raw.(string); ok {
		return nil, s
	}

	m, ok := asMap(raw)
	if !ok {
		return doc{}, ""
	}

	for depth := 0; depth < maxUnwrapDepth; depth++ {
		// {analysis: "raw text"} carries prose, not structure.
		if len(m) == 1 {
			if s, ok := m["analysis"].(string); ok {
				return nil, s
			}
		}
		unwrapped := false
		for _, key := range envelopeKeys {
			inner, exists := m[key]
			if !exists || len(m) != 1 {
				continue
			}
			if innerMap, ok := asMap(inner); ok {
				m = innerMap
				unwrapped = true
				break
			}
			if s, ok := inner.(string); ok {
				return nil, s
			}
		}
		if !unwrapped {
			break
		}
	}

	return newDoc(m), ""
}

// asMap coerces a value to map[string]any. Typed structs (for example an
// already-normalized content value fed back in) round-trip through JSON so
// normalization stays idempotent.
func asMap(v any) (map[string]any, bool) {
	switch t := v.(type) {
	case map[string]any:
		return t, true
	case nil, string, bool, float64, int, []any:
		return nil, false
	}
	data, err := json.Marshal(v)
	if err != nil {
		return nil, false
	}
	var m map[string]any
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, false
	}
	return m, true
}

// =============================================================================
// Folded-Key Document Maps
// =============================================================================

// doc is a document map indexed by folded keys. Folding lowercases and
// strips separators so "acceptance_criteria", "acceptanceCriteria" and
// "AcceptanceCriteria" all resolve to one canonical field, which keeps the
// historical alias set manageable: alias lists only carry genuinely
// different names.
type doc map[string]any

// foldKey normalizes a field name for lookup.
func foldKey(key string) string {
	var b strings.Builder
	for _, r := range key {
		switch r {
		case '_', '-', ' ':
			continue
		}
		b.WriteRune(r)
	}
	return strings.ToLower(b.String())
}

// newDoc indexes a raw map by folded keys. Later duplicates do not
// overwrite earlier ones, so canonical names win over aliases when both
// appear.
func newDoc(m map[string]any) doc {
	d := make(doc, len(m))
	for k, v := range m {
		fk := foldKey(k)
		if _, exists := d[fk]; !exists {
			d[fk] = v
		}
	}
	return d
}

// get returns the first present value among the candidate field names.
func (d doc) get(keys ...string) any {
	for _, key := range keys {
		if v, ok := d[foldKey(key)]; ok && v != nil {
			return v
		}
	}
	return nil
}

// str returns the first non-empty string value among the candidates.
func (d doc) str(keys ...string) string {
	for _, key := range keys {
		if s := asString(d.get(key)); s != "" {
			return s
		}
	}
	return ""
}

// strings returns the first candidate coerced to a string list.
func (d doc) strings(keys ...string) []string {
	return coerceStrings(d.get(keys...))
}

// list returns the first candidate coerced to an ordered sequence.
func (d doc) list(keys ...string) []any {
	return coerceList(d.get(keys...))
}

// maps returns the first candidate as a sequence of sub-documents.
// Scalar entries are skipped.
func (d doc) maps(keys ...string) []doc {
	items := coerceList(d.get(keys...))
	out := make([]doc, 0, len(items))
	for _, item := range items {
		if m, ok := asMap(item); ok {
			out = append(out, newDoc(m))
		}
	}
	return out
}

// sub returns a nested document, or an empty one when absent.
func (d doc) sub(keys ...string) doc {
	if m, ok := asMap(d.get(keys...)); ok {
		return newDoc(m)
	}
	return doc{}
}

// intval returns the first candidate as an integer, or 0.
func (d doc) intval(keys ...string) int {
	switch t := d.get(keys...).(type) {
	case float64:
		return int(t)
	case int:
		return t
	case string:
		if n, err := strconv.Atoi(strings.TrimSpace(t)); err == nil {
			return n
		}
	}
	return 0
}

// =============================================================================
// Value Coercion
// =============================================================================

// asString renders a scalar as display text. Objects and nil map to "".
func asString(v any) string {
	switch t := v.(type) {
	case string:
		return strings.TrimSpace(t)
	case float64:
		if t == float64(int64(t)) {
			return strconv.FormatInt(int64(t), 10)
		}
		return strconv.FormatFloat(t, 'f', -1, 64)
	case int:
		return strconv.Itoa(t)
	case bool:
		return strconv.FormatBool(t)
	case nil:
		return ""
	default:
		return ""
	}
}

// listWrapperKeys are sub-keys under which callers have historically
// nested their sequences.
var listWrapperKeys = []string{"items", "list", "data", "entries", "values"}

// coerceList normalizes string/array/object-with-items shapes into an
// ordered sequence, dropping nil entries. Delimited strings split on
// newlines.
func coerceList(v any) []any {
	switch t := v.(type) {
	case nil:
		return nil
	case []any:
		out := make([]any, 0, len(t))
		for _, item := range t {
			if item != nil {
				out = append(out, item)
			}
		}
		return out
	case string:
		var out []any
		for _, line := range strings.Split(t, "\n") {
			if trimmed := strings.TrimSpace(line); trimmed != "" {
				out = append(out, trimmed)
			}
		}
		return out
	case map[string]any:
		d := newDoc(t)
		for _, key := range listWrapperKeys {
			if inner, ok := d[foldKey(key)]; ok {
				return coerceList(inner)
			}
		}
		return []any{t}
	default:
		return []any{t}
	}
}

// coerceStrings renders a coerced list as trimmed display strings. Object
// entries render their most descriptive field.
func coerceStrings(v any) []string {
	items := coerceList(v)
	out := make([]string, 0, len(items))
	for _, item := range items {
		var s string
		if m, ok := asMap(item); ok {
			d := newDoc(m)
			s = d.str("description", "text", "name", "title", "value", "item")
		} else {
			s = asString(item)
		}
		if s != "" {
			out = append(out, s)
		}
	}
	return out
}

// withDefault returns value, or the placeholder when empty.
func withDefault(value, placeholder string) string {
	if strings.TrimSpace(value) == "" {
		return placeholder
	}
	return value
}

// withDefaults returns values, or the placeholder list when empty.
func withDefaults(values, placeholders []string) []string {
	if len(values) == 0 {
		return placeholders
	}
	return values
}

// nonNil guarantees a non-nil slice post-normalization.
func nonNil(values []string) []string {
	if values == nil {
		return []string{}
	}
	return values
}

// tbd builds a "to be defined" placeholder for a named section.
func tbd(what string) string {
	return fmt.Sprintf("%s to be defined", what)
}
