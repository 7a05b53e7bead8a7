package contract

import "testing"

func TestFieldRegistryBasics(t *testing.T) {
	d := NewDocument()
	d.AddField(Field{Name: "amount", Type: FieldNumber})
	d.AddField(Field{Name: "paymentTerms", Type: FieldText, Options: []string{"monthly", "quarterly"}})

	if len(d.Fields) != 2 {
		t.Fatalf("expected 2 fields, got %d", len(d.Fields))
	}

	if err := d.UpdateField(0, Field{Name: "amount", Type: FieldNumber, Value: "50000"}); err != nil {
		t.Fatalf("UpdateField() error = %v", err)
	}
	if d.Fields[0].Value != "50000" {
		t.Errorf("expected updated value, got %q", d.Fields[0].Value)
	}

	if err := d.RemoveField(0); err != nil {
		t.Fatalf("RemoveField() error = %v", err)
	}
	if len(d.Fields) != 1 || d.Fields[0].Name != "paymentTerms" {
		t.Errorf("expected paymentTerms to shift down, got %+v", d.Fields)
	}

	if err := d.UpdateField(5, Field{}); err != ErrFieldIndex {
		t.Errorf("UpdateField(out of range) error = %v, want ErrFieldIndex", err)
	}
	if err := d.RemoveField(-1); err != ErrFieldIndex {
		t.Errorf("RemoveField(-1) error = %v, want ErrFieldIndex", err)
	}
}

func TestChangeFieldTypeClearsOptions(t *testing.T) {
	d := NewDocument()
	d.AddField(Field{Name: "paymentTerms", Type: FieldText, Options: []string{"monthly", "quarterly"}})

	if err := d.ChangeFieldType(0, FieldNumber); err != nil {
		t.Fatalf("ChangeFieldType() error = %v", err)
	}
	if d.Fields[0].Type != FieldNumber {
		t.Errorf("type = %q, want number", d.Fields[0].Type)
	}
	if len(d.Fields[0].Options) != 0 {
		t.Errorf("options not cleared: %v", d.Fields[0].Options)
	}

	// Switching back to text does not resurrect options.
	if err := d.ChangeFieldType(0, FieldText); err != nil {
		t.Fatalf("ChangeFieldType() error = %v", err)
	}
	if len(d.Fields[0].Options) != 0 {
		t.Errorf("options reappeared: %v", d.Fields[0].Options)
	}
}

func TestFieldByNameFirstMatchWins(t *testing.T) {
	d := NewDocument()
	d.AddField(Field{Name: "clientName", Value: "first"})
	d.AddField(Field{Name: "clientName", Value: "second"})

	f := d.FieldByName("clientName")
	if f == nil {
		t.Fatal("FieldByName() = nil")
	}
	if f.Value != "first" {
		t.Errorf("FieldByName() value = %q, want first match", f.Value)
	}

	if d.FieldByName("") != nil {
		t.Error("FieldByName(\"\") should be nil")
	}
}
