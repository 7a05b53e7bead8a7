package contract

import "strings"

// InsertSection copies a catalog section into the document: its content is
// appended as its own block, every field it references is ensured in the
// field registry, and the section itself is recorded for provenance. The
// catalog entry keeps no link to the copy.
//
// Referenced names already present in the registry are left alone, so
// inserting the same section twice never duplicates fields.
func (d *Document) InsertSection(s Section) {
	if strings.TrimSpace(s.Content) == "" {
		return
	}

	content := Normalize(s.Content)

	// Own block so the fragment does not merge with surrounding formatting.
	block := "<div>" + content + "</div>"
	if d.Content == "" {
		d.Content = block
	} else {
		d.Content += block
	}

	for _, name := range Decode(content) {
		if d.HasField(name) {
			continue
		}
		if def := sectionFieldByName(s, name); def != nil {
			f := *def
			if f.Options == nil {
				f.Options = []string{}
			}
			d.AddField(f)
		} else {
			d.AddField(DefaultField(name))
		}
	}

	record := s
	record.Content = content
	record.Fields = append([]Field(nil), s.Fields...)
	d.Sections = append(d.Sections, record)
}

// RemoveSection drops the provenance record for a section id. The content
// copied at insertion time stays in the document.
func (d *Document) RemoveSection(id string) {
	for i := range d.Sections {
		if d.Sections[i].ID == id {
			d.Sections = append(d.Sections[:i], d.Sections[i+1:]...)
			return
		}
	}
}

func sectionFieldByName(s Section, name string) *Field {
	for i := range s.Fields {
		if s.Fields[i].Name == name {
			return &s.Fields[i]
		}
	}
	return nil
}
