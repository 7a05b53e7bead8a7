package contract

import "errors"

// ErrFieldIndex is returned when a positional field operation is given an
// index outside the current field list.
var ErrFieldIndex = errors.New("field index out of range")

// DefaultField is the shape given to fields created implicitly, e.g. when a
// section references a name the document does not know yet.
func DefaultField(name string) Field {
	return Field{
		Name:    name,
		Type:    FieldText,
		Options: []string{},
	}
}

// AddField appends a field. Duplicate names are tolerated: resolution always
// uses the first field in document order whose name matches.
func (d *Document) AddField(f Field) {
	if f.Options == nil {
		f.Options = []string{}
	}
	d.Fields = append(d.Fields, f)
}

// UpdateField replaces the field at index. Indexes are stable for the
// session only; callers must not persist them across structural edits.
func (d *Document) UpdateField(index int, f Field) error {
	if index < 0 || index >= len(d.Fields) {
		return ErrFieldIndex
	}
	if f.Options == nil {
		f.Options = []string{}
	}
	d.Fields[index] = f
	return nil
}

// RemoveField deletes the field at index, shifting subsequent indexes down.
func (d *Document) RemoveField(index int) error {
	if index < 0 || index >= len(d.Fields) {
		return ErrFieldIndex
	}
	d.Fields = append(d.Fields[:index], d.Fields[index+1:]...)
	return nil
}

// ChangeFieldType sets the field's type. Options only make sense for text
// fields, so switching away from text clears them.
func (d *Document) ChangeFieldType(index int, t FieldType) error {
	if index < 0 || index >= len(d.Fields) {
		return ErrFieldIndex
	}
	d.Fields[index].Type = t
	if t != FieldText {
		d.Fields[index].Options = []string{}
	}
	return nil
}

// FieldByName returns the first field in document order whose name matches,
// or nil. First-match-wins is the documented behavior for duplicate names.
func (d *Document) FieldByName(name string) *Field {
	if name == "" {
		return nil
	}
	for i := range d.Fields {
		if d.Fields[i].Name == name {
			return &d.Fields[i]
		}
	}
	return nil
}

// HasField reports whether any field carries the given name.
func (d *Document) HasField(name string) bool {
	return d.FieldByName(name) != nil
}
