package contract

// LockValues enforces template-mode editing: templates define structure, not
// data, so value edits are discarded. Structure changes (names, types,
// options, mappings, parties, content) pass through; each field keeps the
// value the stored version had, matched by name for document fields and by
// party id plus field name for party fields.
func LockValues(incoming, stored Document) Document {
	for i := range incoming.Fields {
		incoming.Fields[i].Value = ""
		if prev := stored.FieldByName(incoming.Fields[i].Name); prev != nil {
			incoming.Fields[i].Value = prev.Value
		}
	}
	for i := range incoming.Parties {
		prev := stored.PartyByID(incoming.Parties[i].ID)
		for j := range incoming.Parties[i].Fields {
			incoming.Parties[i].Fields[j].Value = ""
			if prev == nil {
				continue
			}
			for k := range prev.Fields {
				if prev.Fields[k].Name == incoming.Parties[i].Fields[j].Name {
					incoming.Parties[i].Fields[j].Value = prev.Fields[k].Value
					break
				}
			}
		}
	}
	return incoming
}
