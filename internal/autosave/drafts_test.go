package autosave

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"

	"pactum/api/internal/contract"
)

func setupTestDrafts(t *testing.T) (*DraftStore, *miniredis.Miniredis) {
	t.Helper()
	s := miniredis.RunT(t)
	store, err := NewDraftStore("redis://"+s.Addr(), time.Hour)
	if err != nil {
		t.Fatalf("failed to create draft store: %v", err)
	}
	return store, s
}

func TestDraftPutGetDelete(t *testing.T) {
	store, s := setupTestDrafts(t)
	defer store.Close()
	defer s.Close()

	ctx := context.Background()
	doc := contract.NewDocument()
	doc.Title = "Consulting Agreement"
	doc.AddField(contract.Field{Name: "clientName", Type: contract.FieldText, Value: "Acme Inc"})

	if err := store.Put(ctx, "con_1", doc); err != nil {
		t.Fatalf("Put failed: %v", err)
	}

	draft, err := store.Get(ctx, "con_1")
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if draft.ContractID != "con_1" {
		t.Errorf("contract id = %q", draft.ContractID)
	}
	if draft.Document.Title != "Consulting Agreement" {
		t.Errorf("title = %q", draft.Document.Title)
	}
	if f := draft.Document.FieldByName("clientName"); f == nil || f.Value != "Acme Inc" {
		t.Errorf("field did not round-trip: %+v", f)
	}

	if err := store.Delete(ctx, "con_1"); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}
	if _, err := store.Get(ctx, "con_1"); !errors.Is(err, ErrNoDraft) {
		t.Errorf("Get after delete error = %v, want ErrNoDraft", err)
	}
}

func TestDraftExpires(t *testing.T) {
	s := miniredis.RunT(t)
	defer s.Close()
	store, err := NewDraftStore("redis://"+s.Addr(), time.Minute)
	if err != nil {
		t.Fatalf("failed to create draft store: %v", err)
	}
	defer store.Close()

	ctx := context.Background()
	if err := store.Put(ctx, "con_ttl", contract.NewDocument()); err != nil {
		t.Fatalf("Put failed: %v", err)
	}

	s.FastForward(2 * time.Minute)

	if _, err := store.Get(ctx, "con_ttl"); !errors.Is(err, ErrNoDraft) {
		t.Errorf("expired draft error = %v, want ErrNoDraft", err)
	}
}

func TestDraftGetMissing(t *testing.T) {
	store, s := setupTestDrafts(t)
	defer store.Close()
	defer s.Close()

	if _, err := store.Get(context.Background(), "never-saved"); !errors.Is(err, ErrNoDraft) {
		t.Errorf("error = %v, want ErrNoDraft", err)
	}
}

func TestDraftDeleteMissingIsNoOp(t *testing.T) {
	store, s := setupTestDrafts(t)
	defer store.Close()
	defer s.Close()

	if err := store.Delete(context.Background(), "never-saved"); err != nil {
		t.Errorf("Delete of missing draft failed: %v", err)
	}
}
