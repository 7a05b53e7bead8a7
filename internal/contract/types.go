// Package contract holds the document model and the placeholder/field
// binding engine: typed fields, party records, reusable sections, and the
// resolution logic that turns placeholder markers into rendered text.
package contract

// FieldType enumerates the supported field value kinds.
type FieldType string

const (
	FieldText   FieldType = "text"
	FieldNumber FieldType = "number"
	FieldDate   FieldType = "date"
	FieldEmail  FieldType = "email"
)

// PartyType enumerates the supported party kinds.
type PartyType string

const (
	PartyCompany    PartyType = "company"
	PartyIndividual PartyType = "individual"
)

// Mode distinguishes a live contract from a reusable template. Templates
// define structure only: field and party-field values are locked.
type Mode string

const (
	ModeContract Mode = "contract"
	ModeTemplate Mode = "template"
)

// Field is a named, typed slot of document-level data referenced by
// placeholders. Options is only meaningful for text fields (a closed choice
// set). Mapping is empty, a party id, or "partyId.fieldName".
type Field struct {
	Name     string    `json:"name"`
	Type     FieldType `json:"type"`
	Options  []string  `json:"options"`
	Value    string    `json:"value"`
	Mapping  string    `json:"mapping"`
	Required bool      `json:"required"`
}

// PartyField is a field owned by a party. Party fields are mapping sources,
// never mapping targets, so they carry no options or mapping of their own.
type PartyField struct {
	Name     string    `json:"name"`
	Type     FieldType `json:"type"`
	Value    string    `json:"value"`
	Required bool      `json:"required"`
}

// Party is a named company or individual with its own field set. The id is
// generated once and never reused within a document.
type Party struct {
	ID     string       `json:"id"`
	Name   string       `json:"name"`
	Type   PartyType    `json:"type"`
	Fields []PartyField `json:"fields"`
}

// Section is a reusable content fragment. Once inserted into a document it
// is copied, not linked: the catalog entry and the inserted copy evolve
// independently.
type Section struct {
	ID      string  `json:"id"`
	Title   string  `json:"title"`
	Content string  `json:"content"`
	Fields  []Field `json:"fields"`
}

// Document is the aggregate a single editing session mutates. The JSON key
// names are the wire contract with storage and must not change.
type Document struct {
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Content     string    `json:"content"`
	Fields      []Field   `json:"fields"`
	Sections    []Section `json:"sections"`
	Parties     []Party   `json:"parties"`
}

// NewDocument returns an empty document with non-nil collections so the
// persisted form always carries arrays, never nulls.
func NewDocument() Document {
	return Document{
		Fields:   []Field{},
		Sections: []Section{},
		Parties:  []Party{},
	}
}
