package contract

import (
	"fmt"
	"html"
	"strings"
)

// ExportBlockedError refuses an export and carries the complete list of
// field names that still render unresolved, in document order.
type ExportBlockedError struct {
	Missing []string
}

func (e *ExportBlockedError) Error() string {
	return fmt.Sprintf("export blocked: %d unresolved field(s): %s",
		len(e.Missing), strings.Join(e.Missing, ", "))
}

// Resolve determines the display value for a field name using the engine's
// precedence: a resolving mapping wins, else the field's own non-empty
// value, else the placeholder is unresolved. A dangling mapping never falls
// back to the field's own value.
func (d *Document) Resolve(name string) (string, bool) {
	f := d.FieldByName(name)
	if f == nil {
		return "", false
	}
	if f.Mapping != "" {
		return d.ResolveMapping(f.Mapping)
	}
	if f.Value != "" {
		return f.Value, true
	}
	return "", false
}

// RenderPreview substitutes every placeholder with its resolved value while
// keeping the placeholder wrappers, so the surface stays editable. Unresolved
// placeholders become visually distinguished chips showing the field name.
// Preview always succeeds.
func (d *Document) RenderPreview() string {
	return placeholderPattern.ReplaceAllStringFunc(d.Content, func(m string) string {
		name := placeholderName(m)
		if value, ok := d.Resolve(name); ok {
			return Encode(name, value)
		}
		return encodeChip(name, "", true)
	})
}

// RenderExport produces the final markup for the export collaborator:
// placeholder wrappers are stripped and replaced by resolved values as plain
// text. If any placeholder is unresolved, or any required field has no
// resolvable value, the export is refused with the complete de-duplicated
// list of missing field names.
func (d *Document) RenderExport() (string, error) {
	var missing []string
	seen := map[string]bool{}

	rendered := placeholderPattern.ReplaceAllStringFunc(d.Content, func(m string) string {
		name := placeholderName(m)
		value, ok := d.Resolve(name)
		if !ok {
			if !seen[name] {
				seen[name] = true
				missing = append(missing, name)
			}
			return m
		}
		return html.EscapeString(value)
	})

	for i := range d.Fields {
		f := &d.Fields[i]
		if !f.Required || f.Name == "" || seen[f.Name] {
			continue
		}
		if _, ok := d.Resolve(f.Name); !ok {
			seen[f.Name] = true
			missing = append(missing, f.Name)
		}
	}

	if len(missing) > 0 {
		return "", &ExportBlockedError{Missing: missing}
	}
	return rendered, nil
}

// UnresolvedFields returns the names of all placeholders in the content that
// would currently render as chips, in document order without duplicates.
func (d *Document) UnresolvedFields() []string {
	var missing []string
	seen := map[string]bool{}
	for _, name := range Decode(d.Content) {
		if seen[name] {
			continue
		}
		if _, ok := d.Resolve(name); !ok {
			seen[name] = true
			missing = append(missing, name)
		}
	}
	return missing
}

func placeholderName(span string) string {
	m := placeholderPattern.FindStringSubmatch(span)
	if m == nil {
		return ""
	}
	return html.UnescapeString(m[1])
}
