// Package editor abstracts the content surface the binding engine writes to.
// The engine never talks to a concrete editor widget; it drives whatever
// implements Surface, and the server ships a headless implementation backed
// by a plain string.
package editor

import (
	"errors"

	"pactum/api/internal/contract"
)

// ErrPosition is returned when an insertion offset lies outside the current
// content.
var ErrPosition = errors.New("position out of range")

// Surface is the minimal contract between the binding engine and an editing
// surface. Offsets are byte offsets into the markup.
type Surface interface {
	Content() string
	SetContent(markup string)
	InsertAt(pos int, fragment string) error
}

// Headless is an in-memory Surface. An optional change callback fires after
// every mutation, which is what the autosave scheduler hooks into.
type Headless struct {
	content  string
	onChange func(string)
}

// NewHeadless returns a surface seeded with markup. onChange may be nil.
func NewHeadless(markup string, onChange func(string)) *Headless {
	return &Headless{content: markup, onChange: onChange}
}

func (h *Headless) Content() string {
	return h.content
}

func (h *Headless) SetContent(markup string) {
	h.content = markup
	h.changed()
}

func (h *Headless) InsertAt(pos int, fragment string) error {
	if pos < 0 || pos > len(h.content) {
		return ErrPosition
	}
	h.content = h.content[:pos] + fragment + h.content[pos:]
	h.changed()
	return nil
}

// Append inserts a fragment at the end of the content.
func (h *Headless) Append(fragment string) {
	h.content += fragment
	h.changed()
}

func (h *Headless) changed() {
	if h.onChange != nil {
		h.onChange(h.content)
	}
}

// InsertPlaceholder inserts a placeholder span for the named field at the
// given position. The visible label is the field's resolved value when the
// document knows one, otherwise the field name.
func InsertPlaceholder(s Surface, d *contract.Document, name string, pos int) error {
	value, _ := d.Resolve(name)
	return s.InsertAt(pos, contract.Encode(name, value))
}
