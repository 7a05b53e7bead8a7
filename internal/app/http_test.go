package app

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"pactum/api/internal/contract"
	"pactum/api/internal/export"
	"pactum/api/internal/store"
)

func TestCreateContractEndpoint(t *testing.T) {
	fs := &fakeStore{
		getContractFn: func(_ context.Context, id string) (store.Contract, error) {
			return store.Contract{ID: id, Mode: contract.ModeContract}, nil
		},
	}
	svc := newTestService(fs, &fakeArchive{})
	server := NewHTTPServer(svc, "*")

	body := `{"title":"NDA","content":"<p>Hi §{clientName}.</p>"}`
	req := httptest.NewRequest(http.MethodPost, "/api/contracts", strings.NewReader(body))
	rr := httptest.NewRecorder()

	server.Handler().ServeHTTP(rr, req)

	if rr.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rr.Code, rr.Body.String())
	}

	var response map[string]any
	if err := json.Unmarshal(rr.Body.Bytes(), &response); err != nil {
		t.Fatalf("failed to parse response: %v", err)
	}
	if _, ok := response["id"]; !ok {
		t.Error("response missing id")
	}
}

func TestCreateContractEndpointRejectsMissingTitle(t *testing.T) {
	svc := newTestService(&fakeStore{}, &fakeArchive{})
	server := NewHTTPServer(svc, "*")

	req := httptest.NewRequest(http.MethodPost, "/api/contracts", strings.NewReader(`{"content":"<p></p>"}`))
	rr := httptest.NewRecorder()

	server.Handler().ServeHTTP(rr, req)

	if rr.Code != http.StatusUnprocessableEntity {
		t.Errorf("expected 422, got %d", rr.Code)
	}
}

func TestGetContractNotFound(t *testing.T) {
	svc := newTestService(&fakeStore{}, &fakeArchive{})
	server := NewHTTPServer(svc, "*")

	req := httptest.NewRequest(http.MethodGet, "/api/contracts/con-missing", nil)
	rr := httptest.NewRecorder()

	server.Handler().ServeHTTP(rr, req)

	if rr.Code != http.StatusNotFound {
		t.Errorf("expected 404, got %d", rr.Code)
	}

	var response map[string]any
	if err := json.Unmarshal(rr.Body.Bytes(), &response); err != nil {
		t.Fatalf("failed to parse response: %v", err)
	}
	if response["code"] != "NOT_FOUND" {
		t.Errorf("expected NOT_FOUND code, got %v", response["code"])
	}
}

func TestExportEndpointValidatesFormat(t *testing.T) {
	svc := newTestService(&fakeStore{}, &fakeArchive{})
	server := NewHTTPServer(svc, "*")

	req := httptest.NewRequest(http.MethodPost, "/api/contracts/con-1/export", strings.NewReader(`{"format":"odt"}`))
	rr := httptest.NewRecorder()

	server.Handler().ServeHTTP(rr, req)

	if rr.Code != http.StatusUnprocessableEntity {
		t.Errorf("expected 422, got %d", rr.Code)
	}
}

func TestExportEndpointStreamsFile(t *testing.T) {
	doc := contract.NewDocument()
	doc.Title = "NDA"
	fs := &fakeStore{
		getContractFn: func(_ context.Context, id string) (store.Contract, error) {
			return store.Contract{ID: id, Mode: contract.ModeContract, Body: doc}, nil
		},
	}
	svc := newTestService(fs, &fakeArchive{})
	server := NewHTTPServer(svc, "*")

	req := httptest.NewRequest(http.MethodPost, "/api/contracts/con-1/export", strings.NewReader(`{"format":"pdf"}`))
	rr := httptest.NewRecorder()

	server.Handler().ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rr.Code, rr.Body.String())
	}
	if disposition := rr.Header().Get("Content-Disposition"); !strings.Contains(disposition, "contract.pdf") {
		t.Errorf("unexpected Content-Disposition %q", disposition)
	}
	if rr.Body.String() != "data" {
		t.Errorf("unexpected body %q", rr.Body.String())
	}
}

func TestExportEndpointBlockedPayload(t *testing.T) {
	doc := contract.NewDocument()
	doc.Title = "NDA"
	fs := &fakeStore{
		getContractFn: func(_ context.Context, id string) (store.Contract, error) {
			return store.Contract{ID: id, Mode: contract.ModeContract, Body: doc}, nil
		},
	}
	svc := newTestService(fs, &fakeArchive{})
	svc.export = &fakeExporter{
		exportFn: func(context.Context, string, contract.Document, export.Format) (*export.Result, error) {
			return nil, &contract.ExportBlockedError{Missing: []string{"clientName"}}
		},
	}
	server := NewHTTPServer(svc, "*")

	req := httptest.NewRequest(http.MethodPost, "/api/contracts/con-1/export", strings.NewReader(`{"format":"pdf"}`))
	rr := httptest.NewRecorder()

	server.Handler().ServeHTTP(rr, req)

	if rr.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422, got %d", rr.Code)
	}

	var response map[string]any
	if err := json.Unmarshal(rr.Body.Bytes(), &response); err != nil {
		t.Fatalf("failed to parse response: %v", err)
	}
	if response["code"] != "EXPORT_BLOCKED" {
		t.Errorf("expected EXPORT_BLOCKED, got %v", response["code"])
	}
	details, ok := response["details"].(map[string]any)
	if !ok {
		t.Fatalf("expected details, got %v", response["details"])
	}
	missing, ok := details["missingFields"].([]any)
	if !ok || len(missing) != 1 || missing[0] != "clientName" {
		t.Errorf("unexpected missingFields %v", details["missingFields"])
	}
}

func TestDraftEndpointAccepted(t *testing.T) {
	doc := contract.NewDocument()
	doc.Title = "NDA"
	fs := &fakeStore{
		getContractFn: func(_ context.Context, id string) (store.Contract, error) {
			return store.Contract{ID: id, Mode: contract.ModeContract, Body: doc}, nil
		},
	}
	svc := newTestService(fs, &fakeArchive{})
	svc.drafts = &fakeDrafts{}
	server := NewHTTPServer(svc, "*")

	req := httptest.NewRequest(http.MethodPut, "/api/contracts/con-1/draft", strings.NewReader(`{"title":"NDA","content":"<p>v2</p>"}`))
	rr := httptest.NewRecorder()

	server.Handler().ServeHTTP(rr, req)

	if rr.Code != http.StatusAccepted {
		t.Errorf("expected 202, got %d: %s", rr.Code, rr.Body.String())
	}
	svc.FlushSavers(context.Background())
}

func TestTemplateInstantiateEndpoint(t *testing.T) {
	tplDoc := contract.NewDocument()
	tplDoc.Title = "Consulting Template"
	fs := &fakeStore{
		getContractFn: func(_ context.Context, id string) (store.Contract, error) {
			if strings.HasPrefix(id, "tpl-") {
				return store.Contract{ID: id, Mode: contract.ModeTemplate, Body: tplDoc}, nil
			}
			return store.Contract{ID: id, Mode: contract.ModeContract, Body: tplDoc}, nil
		},
	}
	svc := newTestService(fs, &fakeArchive{})
	server := NewHTTPServer(svc, "*")

	req := httptest.NewRequest(http.MethodPost, "/api/templates/tpl-1/instantiate", nil)
	rr := httptest.NewRecorder()

	server.Handler().ServeHTTP(rr, req)

	if rr.Code != http.StatusCreated {
		t.Errorf("expected 201, got %d: %s", rr.Code, rr.Body.String())
	}
}

func TestSuggestedFieldsEndpoint(t *testing.T) {
	svc := newTestService(&fakeStore{}, &fakeArchive{})
	server := NewHTTPServer(svc, "*")

	req := httptest.NewRequest(http.MethodGet, "/api/fields/suggested", nil)
	rr := httptest.NewRecorder()

	server.Handler().ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rr.Code)
	}

	var response struct {
		Fields []contract.Field `json:"fields"`
	}
	if err := json.Unmarshal(rr.Body.Bytes(), &response); err != nil {
		t.Fatalf("failed to parse response: %v", err)
	}
	if len(response.Fields) == 0 {
		t.Error("expected suggested fields")
	}
	for _, f := range response.Fields {
		if f.Name == "paymentTerms" && len(f.Options) != 3 {
			t.Errorf("paymentTerms options = %v", f.Options)
		}
	}
}

func TestInsertPlaceholderEndpoint(t *testing.T) {
	doc := contract.NewDocument()
	doc.Title = "NDA"
	doc.Content = "<p></p>"
	doc.Fields = []contract.Field{{Name: "clientName", Type: contract.FieldText, Value: "Acme"}}
	fs := mutationFixture(doc)
	svc := newTestService(fs, &fakeArchive{})
	server := NewHTTPServer(svc, "*")

	body := `{"name":"clientName","position":3}`
	req := httptest.NewRequest(http.MethodPost, "/api/contracts/con-1/placeholders", strings.NewReader(body))
	rr := httptest.NewRecorder()

	server.Handler().ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rr.Code, rr.Body.String())
	}
	saved := fs.updated["con-1"]
	if !strings.Contains(saved.Content, `data-placeholder="clientName"`) {
		t.Errorf("placeholder not inserted: %q", saved.Content)
	}
	if !strings.Contains(saved.Content, ">Acme<") {
		t.Errorf("resolved value not used as label: %q", saved.Content)
	}
}

func TestInsertPlaceholderEndpointRejectsBadPosition(t *testing.T) {
	doc := contract.NewDocument()
	doc.Title = "NDA"
	doc.Content = "<p></p>"
	svc := newTestService(mutationFixture(doc), &fakeArchive{})
	server := NewHTTPServer(svc, "*")

	body := `{"name":"clientName","position":999}`
	req := httptest.NewRequest(http.MethodPost, "/api/contracts/con-1/placeholders", strings.NewReader(body))
	rr := httptest.NewRecorder()

	server.Handler().ServeHTTP(rr, req)

	if rr.Code != http.StatusUnprocessableEntity {
		t.Errorf("expected 422, got %d: %s", rr.Code, rr.Body.String())
	}
}

func TestSectionEndpointReturnsCatalogEntry(t *testing.T) {
	fs := &fakeStore{
		getSectionFn: func(_ context.Context, id string) (store.CatalogSection, error) {
			return store.CatalogSection{ID: id, Title: "Compensation", Content: "<p>Fee.</p>"}, nil
		},
	}
	svc := newTestService(fs, &fakeArchive{})
	server := NewHTTPServer(svc, "*")

	req := httptest.NewRequest(http.MethodGet, "/api/sections/section-3", nil)
	rr := httptest.NewRecorder()

	server.Handler().ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rr.Code, rr.Body.String())
	}
	var response map[string]any
	if err := json.Unmarshal(rr.Body.Bytes(), &response); err != nil {
		t.Fatalf("failed to parse response: %v", err)
	}
	if response["id"] != "section-3" || response["title"] != "Compensation" {
		t.Errorf("unexpected payload %v", response)
	}
}

func TestHistoryAtEndpoint(t *testing.T) {
	doc := contract.NewDocument()
	doc.Title = "NDA"
	fs := &fakeStore{
		getContractFn: func(_ context.Context, id string) (store.Contract, error) {
			return store.Contract{ID: id, Mode: contract.ModeContract, Body: doc}, nil
		},
	}
	fa := &fakeArchive{
		getFn: func(_, hash string) (contract.Document, error) {
			if hash != "abc1234" {
				return contract.Document{}, errors.New("not found")
			}
			return doc, nil
		},
	}
	svc := newTestService(fs, fa)
	server := NewHTTPServer(svc, "*")

	req := httptest.NewRequest(http.MethodGet, "/api/contracts/con-1/history/abc1234", nil)
	rr := httptest.NewRecorder()

	server.Handler().ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rr.Code, rr.Body.String())
	}
	var response map[string]any
	if err := json.Unmarshal(rr.Body.Bytes(), &response); err != nil {
		t.Fatalf("failed to parse response: %v", err)
	}
	if response["hash"] != "abc1234" {
		t.Errorf("unexpected payload %v", response)
	}
}

func TestSearchEndpointRejectsBadLimit(t *testing.T) {
	svc := newTestService(&fakeStore{}, &fakeArchive{})
	server := NewHTTPServer(svc, "*")

	req := httptest.NewRequest(http.MethodGet, "/api/search?q=nda&limit=abc", nil)
	rr := httptest.NewRecorder()

	server.Handler().ServeHTTP(rr, req)

	if rr.Code != http.StatusUnprocessableEntity {
		t.Errorf("expected 422, got %d", rr.Code)
	}
}
