package contract

import "testing"

func TestNewPartyCompanySkeleton(t *testing.T) {
	p := NewParty("party_1")
	if p.Type != PartyCompany {
		t.Errorf("type = %q, want company", p.Type)
	}
	if len(p.Fields) != 1 || p.Fields[0].Name != "CompanyName" || !p.Fields[0].Required {
		t.Errorf("unexpected company skeleton: %+v", p.Fields)
	}
}

func TestSetPartyTypeResetsFields(t *testing.T) {
	d := NewDocument()
	d.AddParty(NewParty("p1"))

	// Give the party extra individual-specific data first.
	if err := d.AddPartyField("p1"); err != nil {
		t.Fatalf("AddPartyField() error = %v", err)
	}
	if err := d.UpdatePartyField("p1", 1, PartyField{Name: "Nickname", Type: FieldText, Value: "Ace"}); err != nil {
		t.Fatalf("UpdatePartyField() error = %v", err)
	}

	if err := d.SetPartyType("p1", PartyIndividual); err != nil {
		t.Fatalf("SetPartyType() error = %v", err)
	}
	p := d.PartyByID("p1")
	if len(p.Fields) != 2 || p.Fields[0].Name != "FirstName" || p.Fields[1].Name != "LastName" {
		t.Errorf("individual skeleton not applied: %+v", p.Fields)
	}

	if err := d.SetPartyType("p1", PartyCompany); err != nil {
		t.Fatalf("SetPartyType() error = %v", err)
	}
	if len(p.Fields) != 1 || p.Fields[0].Name != "CompanyName" {
		t.Errorf("company skeleton not applied after switch back: %+v", p.Fields)
	}
}

func TestRemovePartyFieldKeepsRequired(t *testing.T) {
	d := NewDocument()
	d.AddParty(NewParty("p1"))

	if err := d.RemovePartyField("p1", 0); err != nil {
		t.Fatalf("RemovePartyField() error = %v", err)
	}
	if len(d.PartyByID("p1").Fields) != 1 {
		t.Error("required skeleton field was removed")
	}

	if err := d.AddPartyField("p1"); err != nil {
		t.Fatalf("AddPartyField() error = %v", err)
	}
	if err := d.RemovePartyField("p1", 1); err != nil {
		t.Fatalf("RemovePartyField() error = %v", err)
	}
	if len(d.PartyByID("p1").Fields) != 1 {
		t.Error("optional field was not removed")
	}
}

func TestResolveMapping(t *testing.T) {
	d := NewDocument()
	p := NewParty("p1")
	p.Fields = []PartyField{
		{Name: "legalName", Type: FieldText, Value: "Acme Inc", Required: true},
		{Name: "fax", Type: FieldText, Value: ""},
	}
	d.AddParty(p)

	tests := []struct {
		name    string
		mapping string
		want    string
		wantOK  bool
	}{
		{"empty mapping", "", "", false},
		{"bare party id", "p1", "", false},
		{"resolves", "p1.legalName", "Acme Inc", true},
		{"missing party", "p2.legalName", "", false},
		{"missing party field", "p1.unknown", "", false},
		{"empty party value", "p1.fax", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := d.ResolveMapping(tt.mapping)
			if got != tt.want || ok != tt.wantOK {
				t.Errorf("ResolveMapping(%q) = (%q, %v), want (%q, %v)", tt.mapping, got, ok, tt.want, tt.wantOK)
			}
		})
	}
}

func TestRemovePartyLeavesMappingsDangling(t *testing.T) {
	d := NewDocument()
	p := NewParty("p1")
	p.Fields[0].Value = "Acme Inc"
	d.AddParty(p)
	d.AddField(Field{Name: "clientName", Type: FieldText, Mapping: "p1.CompanyName"})

	if _, ok := d.ResolveMapping("p1.CompanyName"); !ok {
		t.Fatal("mapping should resolve before party removal")
	}
	if err := d.RemoveParty("p1"); err != nil {
		t.Fatalf("RemoveParty() error = %v", err)
	}

	// The field and its mapping string survive; resolution dangles.
	if d.FieldByName("clientName") == nil {
		t.Fatal("field was cascade-deleted with the party")
	}
	if d.FieldByName("clientName").Mapping != "p1.CompanyName" {
		t.Error("mapping string was rewritten on party removal")
	}
	if _, ok := d.ResolveMapping("p1.CompanyName"); ok {
		t.Error("dangling mapping should not resolve")
	}
}
