package app

import (
	"context"
	"errors"
	"testing"

	"pactum/api/internal/contract"
	"pactum/api/internal/store"
)

// mutationFixture returns a store whose GetContract reflects the latest
// update, so chained engine operations see their own writes.
func mutationFixture(doc contract.Document) *fakeStore {
	fs := &fakeStore{}
	fs.getContractFn = func(_ context.Context, id string) (store.Contract, error) {
		fs.mu.Lock()
		defer fs.mu.Unlock()
		if saved, ok := fs.updated[id]; ok {
			return store.Contract{ID: id, Mode: contract.ModeContract, Body: saved}, nil
		}
		return store.Contract{ID: id, Mode: contract.ModeContract, Body: doc}, nil
	}
	return fs
}

func TestAddFieldRequiresName(t *testing.T) {
	svc := newTestService(mutationFixture(contract.NewDocument()), &fakeArchive{})

	_, err := svc.AddField(context.Background(), "con-1", "", contract.Field{Name: "  "})
	var domainErr *DomainError
	if !errors.As(err, &domainErr) || domainErr.Code != "VALIDATION_ERROR" {
		t.Fatalf("expected VALIDATION_ERROR, got %v", err)
	}
}

func TestUpdateFieldClearsOptionsOnTypeChange(t *testing.T) {
	doc := contract.NewDocument()
	doc.Title = "Agreement"
	doc.Fields = []contract.Field{
		{Name: "paymentTerms", Type: contract.FieldText, Options: []string{"monthly", "quarterly"}},
	}
	fs := mutationFixture(doc)
	svc := newTestService(fs, &fakeArchive{})

	_, err := svc.UpdateField(context.Background(), "con-1", "", 0, contract.Field{
		Name:    "paymentTerms",
		Type:    contract.FieldNumber,
		Options: []string{"monthly", "quarterly"},
	})
	if err != nil {
		t.Fatalf("UpdateField: %v", err)
	}

	saved := fs.updated["con-1"]
	if len(saved.Fields[0].Options) != 0 {
		t.Errorf("non-text field kept options %v", saved.Fields[0].Options)
	}
}

func TestUpdateFieldOutOfRange(t *testing.T) {
	svc := newTestService(mutationFixture(contract.NewDocument()), &fakeArchive{})

	_, err := svc.UpdateField(context.Background(), "con-1", "", 5, contract.Field{Name: "x"})
	var domainErr *DomainError
	if !errors.As(err, &domainErr) || domainErr.Status != 422 {
		t.Fatalf("expected 422, got %v", err)
	}
}

func TestAddPartyUsesTypeSkeleton(t *testing.T) {
	doc := contract.NewDocument()
	doc.Title = "Agreement"
	fs := mutationFixture(doc)
	svc := newTestService(fs, &fakeArchive{})

	if _, err := svc.AddParty(context.Background(), "con-1", "", contract.PartyIndividual); err != nil {
		t.Fatalf("AddParty: %v", err)
	}

	saved := fs.updated["con-1"]
	if len(saved.Parties) != 1 {
		t.Fatalf("expected one party, got %d", len(saved.Parties))
	}
	p := saved.Parties[0]
	if p.Type != contract.PartyIndividual {
		t.Errorf("party type = %s", p.Type)
	}
	if len(p.Fields) != 2 || p.Fields[0].Name != "FirstName" || p.Fields[1].Name != "LastName" {
		t.Errorf("unexpected skeleton %+v", p.Fields)
	}
}

func TestRemovePartyUnknownID(t *testing.T) {
	svc := newTestService(mutationFixture(contract.NewDocument()), &fakeArchive{})

	_, err := svc.RemoveParty(context.Background(), "con-1", "", "party-missing")
	var domainErr *DomainError
	if !errors.As(err, &domainErr) || domainErr.Code != "PARTY_NOT_FOUND" {
		t.Fatalf("expected PARTY_NOT_FOUND, got %v", err)
	}
}

func TestRemovePartyKeepsDanglingMapping(t *testing.T) {
	doc := contract.NewDocument()
	doc.Title = "Agreement"
	doc.Fields = []contract.Field{
		{Name: "clientName", Type: contract.FieldText, Value: "fallback", Mapping: "party-1.CompanyName"},
	}
	doc.Parties = []contract.Party{{
		ID:   "party-1",
		Type: contract.PartyCompany,
		Fields: []contract.PartyField{
			{Name: "CompanyName", Type: contract.FieldText, Value: "Acme", Required: true},
		},
	}}
	fs := mutationFixture(doc)
	svc := newTestService(fs, &fakeArchive{})

	if _, err := svc.RemoveParty(context.Background(), "con-1", "", "party-1"); err != nil {
		t.Fatalf("RemoveParty: %v", err)
	}

	saved := fs.updated["con-1"]
	if saved.Fields[0].Mapping != "party-1.CompanyName" {
		t.Errorf("mapping rewritten to %q", saved.Fields[0].Mapping)
	}
	if _, ok := saved.Resolve("clientName"); ok {
		t.Error("dangling mapping resolved; it must not fall back to the own value")
	}
}

func TestInsertPlaceholderAtPosition(t *testing.T) {
	doc := contract.NewDocument()
	doc.Title = "Agreement"
	doc.Content = "<p></p>"
	doc.Fields = []contract.Field{
		{Name: "clientName", Type: contract.FieldText, Value: "Acme"},
	}
	fs := mutationFixture(doc)
	svc := newTestService(fs, &fakeArchive{})

	if _, err := svc.InsertPlaceholder(context.Background(), "con-1", "", "clientName", 3); err != nil {
		t.Fatalf("InsertPlaceholder: %v", err)
	}

	saved := fs.updated["con-1"]
	want := "<p>" + contract.Encode("clientName", "Acme") + "</p>"
	if saved.Content != want {
		t.Errorf("content = %q, want %q", saved.Content, want)
	}
}

func TestInsertPlaceholderAppendsOnNegativePosition(t *testing.T) {
	doc := contract.NewDocument()
	doc.Title = "Agreement"
	doc.Content = "<p>Hi</p>"
	doc.Fields = []contract.Field{{Name: "clientName", Type: contract.FieldText}}
	fs := mutationFixture(doc)
	svc := newTestService(fs, &fakeArchive{})

	if _, err := svc.InsertPlaceholder(context.Background(), "con-1", "", "clientName", -1); err != nil {
		t.Fatalf("InsertPlaceholder: %v", err)
	}

	saved := fs.updated["con-1"]
	if want := "<p>Hi</p>" + contract.Encode("clientName", ""); saved.Content != want {
		t.Errorf("content = %q, want %q", saved.Content, want)
	}
}

func TestInsertPlaceholderOutOfRange(t *testing.T) {
	doc := contract.NewDocument()
	doc.Title = "Agreement"
	doc.Content = "<p></p>"
	svc := newTestService(mutationFixture(doc), &fakeArchive{})

	_, err := svc.InsertPlaceholder(context.Background(), "con-1", "", "clientName", 99)
	var domainErr *DomainError
	if !errors.As(err, &domainErr) || domainErr.Status != 422 {
		t.Fatalf("expected 422, got %v", err)
	}
}

func TestInsertPlaceholderRequiresName(t *testing.T) {
	svc := newTestService(mutationFixture(contract.NewDocument()), &fakeArchive{})

	_, err := svc.InsertPlaceholder(context.Background(), "con-1", "", "  ", 0)
	var domainErr *DomainError
	if !errors.As(err, &domainErr) || domainErr.Code != "VALIDATION_ERROR" {
		t.Fatalf("expected VALIDATION_ERROR, got %v", err)
	}
}

func TestPartyFieldLifecycle(t *testing.T) {
	doc := contract.NewDocument()
	doc.Title = "Agreement"
	doc.Parties = []contract.Party{{
		ID:   "party-1",
		Type: contract.PartyCompany,
		Fields: []contract.PartyField{
			{Name: "CompanyName", Type: contract.FieldText, Required: true},
		},
	}}
	fs := mutationFixture(doc)
	svc := newTestService(fs, &fakeArchive{})
	ctx := context.Background()

	if _, err := svc.AddPartyField(ctx, "con-1", "", "party-1"); err != nil {
		t.Fatalf("AddPartyField: %v", err)
	}
	if _, err := svc.UpdatePartyField(ctx, "con-1", "", "party-1", 1, contract.PartyField{
		Name: "VAT", Type: contract.FieldText, Value: "DE123",
	}); err != nil {
		t.Fatalf("UpdatePartyField: %v", err)
	}

	saved := fs.updated["con-1"]
	if got := saved.Parties[0].Fields[1]; got.Name != "VAT" || got.Value != "DE123" {
		t.Errorf("party field not updated: %+v", got)
	}

	// Removing the required skeleton field is a no-op.
	if _, err := svc.RemovePartyField(ctx, "con-1", "", "party-1", 0); err != nil {
		t.Fatalf("RemovePartyField: %v", err)
	}
	saved = fs.updated["con-1"]
	if saved.Parties[0].Fields[0].Name != "CompanyName" {
		t.Error("required skeleton field was removed")
	}

	if _, err := svc.RemovePartyField(ctx, "con-1", "", "party-1", 1); err != nil {
		t.Fatalf("RemovePartyField: %v", err)
	}
	saved = fs.updated["con-1"]
	if len(saved.Parties[0].Fields) != 1 {
		t.Errorf("optional field not removed: %+v", saved.Parties[0].Fields)
	}
}
