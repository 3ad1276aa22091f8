package normalize

import (
	"regexp"
	"strings"
)

// Best-effort extraction of structure from raw prose. Some callers hand the
// pipeline unstructured text (typically model output that lost its JSON
// framing); heading and bullet patterns recover a partial document from it.
// This layer is heuristic: zero matches is logged, never an error, and the
// caller falls back to a default skeleton.

var (
	// Markdown-style headings: "# Heading", "## Heading".
	headingPattern = regexp.MustCompile(`^#{1,4}\s+(.+?)\s*$`)

	// Label headings on their own line: "Business Objectives:".
	labelPattern = regexp.MustCompile(`^([A-Z][A-Za-z /&-]{2,60}):\s*$`)

	// Bullet list entries.
	bulletPattern = regexp.MustCompile(`^\s*(?:[-*\x{2022}]|\d+[.)])\s+(.+?)\s*$`)
)

// extractSections parses raw prose into a section map keyed by heading.
// Bullet-only sections become []any lists; mixed sections keep their prose.
// Returns an empty doc when nothing matches.
func (n *Normalizer) extractSections(text string) doc {
	text = strings.TrimSpace(text)
	if text == "" {
		return doc{}
	}

	sections := make(map[string]any)
	var currentKey string
	var prose []string
	var bullets []any

	flush := func() {
		if currentKey == "" {
			return
		}
		if len(bullets) > 0 {
			sections[currentKey] = bullets
		} else if len(prose) > 0 {
			sections[currentKey] = strings.Join(prose, "\n")
		}
		prose = nil
		bullets = nil
	}

	for _, line := range strings.Split(text, "\n") {
		if m := headingPattern.FindStringSubmatch(line); m != nil {
			flush()
			currentKey = m[1]
			continue
		}
		if m := labelPattern.FindStringSubmatch(line); m != nil {
			flush()
			currentKey = m[1]
			continue
		}
		if currentKey == "" {
			continue
		}
		if m := bulletPattern.FindStringSubmatch(line); m != nil {
			bullets = append(bullets, m[1])
			continue
		}
		if trimmed := strings.TrimSpace(line); trimmed != "" {
			prose = append(prose, trimmed)
		}
	}
	flush()

	if len(sections) == 0 {
		n.logger.Warn("text extraction found no recognizable sections",
			"text_length", len(text),
		)
		return doc{}
	}

	return newDoc(sections)
}

// docFromRaw resolves a payload to a document map, applying text extraction
// when the payload was raw prose. The returned doc may be empty; per-type
// normalizers fill defaults afterwards.
func (n *Normalizer) docFromRaw(raw any) doc {
	m, text := n.unwrap(raw)
	if m != nil {
		return m
	}
	return n.extractSections(text)
}
