package contract

import (
	"html"
	"regexp"
	"strings"
)

// Placeholders are atomic inline spans carrying the referenced field name in
// a data-placeholder attribute. The visible text is the resolved value when
// one is known, otherwise the field name itself, so an unfilled placeholder
// reads as a label rather than a gap.
var (
	placeholderPattern = regexp.MustCompile(`<span[^>]*\bdata-placeholder="([^"]*)"[^>]*>([^<]*)</span>`)

	// Older content used a bare §{name} marker with no machine-readable
	// attribute. Normalize upgrades it; nothing ever writes it back.
	legacyPattern = regexp.MustCompile(`§\{([^}]+)\}`)
)

// Encode renders a field reference as a canonical placeholder span. An empty
// value renders the field name itself as the visible label.
func Encode(fieldName, value string) string {
	return encodeChip(fieldName, value, false)
}

func encodeChip(fieldName, value string, unresolved bool) string {
	label := value
	if label == "" {
		label = fieldName
	}
	class := "placeholder-chip"
	if unresolved {
		class += " placeholder-unresolved"
	}
	var b strings.Builder
	b.WriteString(`<span data-placeholder="`)
	b.WriteString(html.EscapeString(fieldName))
	b.WriteString(`" class="`)
	b.WriteString(class)
	b.WriteString(`">`)
	b.WriteString(html.EscapeString(label))
	b.WriteString(`</span>`)
	return b.String()
}

// Decode scans markup and returns every placeholder field name in document
// order. Duplicates are preserved as encountered. The codec does not check
// whether the names exist in any field registry.
func Decode(markup string) []string {
	matches := placeholderPattern.FindAllStringSubmatch(markup, -1)
	names := make([]string, 0, len(matches))
	for _, m := range matches {
		name := html.UnescapeString(m[1])
		if name == "" {
			continue
		}
		names = append(names, name)
	}
	return names
}

// Normalize upgrades legacy §{name} markers to the canonical span form.
// Content already in canonical form passes through unchanged.
func Normalize(markup string) string {
	return legacyPattern.ReplaceAllStringFunc(markup, func(m string) string {
		name := legacyPattern.FindStringSubmatch(m)[1]
		return Encode(name, "")
	})
}
