package contract

import (
	"errors"
	"strings"
)

var (
	// ErrPartyNotFound is returned when a party id does not exist in the
	// document. Mapping resolution never returns it; a missing party there
	// is simply a dangling mapping.
	ErrPartyNotFound = errors.New("party not found")

	// ErrPartyFieldIndex is returned for out-of-range party field indexes.
	ErrPartyFieldIndex = errors.New("party field index out of range")
)

// companySkeleton and individualSkeleton are the default field sets a party
// receives on creation or on a type switch. Skeleton fields are required and
// cannot be removed through the party field operations.
func companySkeleton() []PartyField {
	return []PartyField{
		{Name: "CompanyName", Type: FieldText, Required: true},
	}
}

func individualSkeleton() []PartyField {
	return []PartyField{
		{Name: "FirstName", Type: FieldText, Required: true},
		{Name: "LastName", Type: FieldText, Required: true},
	}
}

// NewParty returns a company party with the default skeleton. The id must be
// unique for the lifetime of the document and is never reused.
func NewParty(id string) Party {
	return Party{
		ID:     id,
		Type:   PartyCompany,
		Fields: companySkeleton(),
	}
}

// AddParty appends a party to the document.
func (d *Document) AddParty(p Party) {
	if p.Fields == nil {
		p.Fields = []PartyField{}
	}
	d.Parties = append(d.Parties, p)
}

// PartyByID returns the party with the given id, or nil.
func (d *Document) PartyByID(id string) *Party {
	for i := range d.Parties {
		if d.Parties[i].ID == id {
			return &d.Parties[i]
		}
	}
	return nil
}

// RenameParty sets the display name of a party.
func (d *Document) RenameParty(id, name string) error {
	p := d.PartyByID(id)
	if p == nil {
		return ErrPartyNotFound
	}
	p.Name = name
	return nil
}

// RemoveParty deletes the party. Document fields that mapped to it are left
// untouched; their mappings dangle and resolve as unresolved.
func (d *Document) RemoveParty(id string) error {
	for i := range d.Parties {
		if d.Parties[i].ID == id {
			d.Parties = append(d.Parties[:i], d.Parties[i+1:]...)
			return nil
		}
	}
	return ErrPartyNotFound
}

// SetPartyType switches the party kind and resets its fields to the
// type-appropriate skeleton, discarding whatever was there.
func (d *Document) SetPartyType(id string, t PartyType) error {
	p := d.PartyByID(id)
	if p == nil {
		return ErrPartyNotFound
	}
	p.Type = t
	if t == PartyCompany {
		p.Fields = companySkeleton()
	} else {
		p.Fields = individualSkeleton()
	}
	return nil
}

// AddPartyField appends an empty optional field to the party.
func (d *Document) AddPartyField(id string) error {
	p := d.PartyByID(id)
	if p == nil {
		return ErrPartyNotFound
	}
	p.Fields = append(p.Fields, PartyField{Type: FieldText})
	return nil
}

// UpdatePartyField replaces the party field at index.
func (d *Document) UpdatePartyField(id string, index int, f PartyField) error {
	p := d.PartyByID(id)
	if p == nil {
		return ErrPartyNotFound
	}
	if index < 0 || index >= len(p.Fields) {
		return ErrPartyFieldIndex
	}
	p.Fields[index] = f
	return nil
}

// RemovePartyField deletes the party field at index. Skeleton fields are
// required and stay.
func (d *Document) RemovePartyField(id string, index int) error {
	p := d.PartyByID(id)
	if p == nil {
		return ErrPartyNotFound
	}
	if index < 0 || index >= len(p.Fields) {
		return ErrPartyFieldIndex
	}
	if p.Fields[index].Required {
		return nil
	}
	p.Fields = append(p.Fields[:index], p.Fields[index+1:]...)
	return nil
}

// ResolveMapping resolves a field mapping string against the document's
// parties. A mapping is empty (no indirection), a bare party id (intent
// declared, no source chosen — unresolved), or "partyId.fieldName". A
// missing party or party field leaves the mapping dangling: the result is
// unresolved and the caller must not fall back to the field's own value.
func (d *Document) ResolveMapping(mapping string) (string, bool) {
	if mapping == "" {
		return "", false
	}
	partyID, fieldName, hasField := strings.Cut(mapping, ".")
	party := d.PartyByID(partyID)
	if party == nil || !hasField {
		return "", false
	}
	for i := range party.Fields {
		if party.Fields[i].Name == fieldName {
			if party.Fields[i].Value == "" {
				return "", false
			}
			return party.Fields[i].Value, true
		}
	}
	return "", false
}
