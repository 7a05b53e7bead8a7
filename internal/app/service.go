package app

import (
	"context"
	"errors"
	"log"
	"net/http"
	"strings"
	"sync"

	"pactum/api/internal/autosave"
	"pactum/api/internal/config"
	"pactum/api/internal/contract"
	"pactum/api/internal/editor"
	"pactum/api/internal/export"
	"pactum/api/internal/revision"
	"pactum/api/internal/search"
	"pactum/api/internal/store"
	"pactum/api/internal/util"
)

// defaultAuthor is recorded on revisions when the client does not identify
// itself. The system carries no accounts.
const defaultAuthor = "Editor"

type dataStore interface {
	ListContracts(context.Context, contract.Mode) ([]store.Contract, error)
	GetContract(context.Context, string) (store.Contract, error)
	InsertContract(context.Context, store.Contract) error
	UpdateContract(context.Context, string, contract.Document) error
	DeleteContract(context.Context, string) error
	ListSections(context.Context) ([]store.CatalogSection, error)
	GetSection(context.Context, string) (store.CatalogSection, error)
	InsertSection(context.Context, store.CatalogSection) error
	UpdateSection(context.Context, store.CatalogSection) error
	DeleteSection(context.Context, string) error
	InsertExport(context.Context, store.ExportRecord) error
	ListExports(context.Context, string) ([]store.ExportRecord, error)
	Ping(ctx context.Context) error
}

type archiveService interface {
	Ensure(contractID string, doc contract.Document, author string) error
	Commit(contractID string, doc contract.Document, author, message string) (revision.CommitInfo, error)
	History(contractID string, limit int) ([]revision.CommitInfo, error)
	GetByHash(contractID, hash string) (contract.Document, error)
}

type exporter interface {
	Export(ctx context.Context, contractID string, doc contract.Document, format export.Format) (*export.Result, error)
}

type draftStore interface {
	Put(ctx context.Context, contractID string, doc contract.Document) error
	Get(ctx context.Context, contractID string) (autosave.Draft, error)
	Delete(ctx context.Context, contractID string) error
}

type searchService interface {
	Search(q search.Query) search.Response
	IndexContract(c search.ContractRecord)
	IndexSection(s search.SectionRecord)
	DeleteContract(id string)
	DeleteSection(id string)
	ReindexAllFromPG(ctx context.Context)
}

type Service struct {
	cfg     config.Config
	store   dataStore
	archive archiveService
	export  exporter
	drafts  draftStore // nil when Redis is not configured
	search  searchService

	saverMu sync.Mutex
	savers  map[string]*autosave.Saver
}

func New(cfg config.Config, dataStore *store.PostgresStore, archive *revision.Archive, exportSvc *export.Service, drafts *autosave.DraftStore, searchSvc *search.Service) *Service {
	s := &Service{
		cfg:     cfg,
		store:   dataStore,
		archive: archive,
		export:  exportSvc,
		search:  searchSvc,
		savers:  make(map[string]*autosave.Saver),
	}
	if drafts != nil {
		s.drafts = drafts
	}
	return s
}

// Bootstrap seeds a demo contract and the section catalog when the database
// is empty, then makes sure the search index reflects the store.
func (s *Service) Bootstrap(ctx context.Context) error {
	contracts, err := s.store.ListContracts(ctx, contract.ModeContract)
	if err != nil {
		return err
	}
	if len(contracts) == 0 {
		if err := s.seed(ctx); err != nil {
			return err
		}
	}
	if s.search != nil {
		s.search.ReindexAllFromPG(ctx)
	}
	return nil
}

func (s *Service) Ping(ctx context.Context) error {
	return s.store.Ping(ctx)
}

// --- Contracts / templates ---

func (s *Service) ListContracts(ctx context.Context, mode contract.Mode) ([]map[string]any, error) {
	items, err := s.store.ListContracts(ctx, mode)
	if err != nil {
		return nil, err
	}
	payload := make([]map[string]any, 0, len(items))
	for _, item := range items {
		payload = append(payload, map[string]any{
			"id":          item.ID,
			"title":       item.Title,
			"description": item.Description,
			"mode":        item.Mode,
			"createdAt":   item.CreatedAt,
			"updatedAt":   item.UpdatedAt,
		})
	}
	return payload, nil
}

func (s *Service) GetContract(ctx context.Context, contractID string) (map[string]any, error) {
	item, err := s.store.GetContract(ctx, contractID)
	if err != nil {
		return nil, err
	}
	return contractPayload(item), nil
}

func (s *Service) CreateContract(ctx context.Context, mode contract.Mode, doc contract.Document) (map[string]any, error) {
	doc = normalizeIncoming(doc)
	if strings.TrimSpace(doc.Title) == "" {
		return nil, domainError(http.StatusUnprocessableEntity, "VALIDATION_ERROR", "title is required", nil)
	}

	prefix := "con"
	if mode == contract.ModeTemplate {
		prefix = "tpl"
		doc = contract.LockValues(doc, contract.NewDocument())
	}
	item := store.Contract{
		ID:   util.NewID(prefix),
		Mode: mode,
		Body: doc,
	}
	if err := s.store.InsertContract(ctx, item); err != nil {
		return nil, err
	}
	if err := s.archive.Ensure(item.ID, doc, defaultAuthor); err != nil {
		log.Printf("app: archive init for %s: %v", item.ID, err)
	}
	s.indexContract(item.ID, doc, mode)

	stored, err := s.store.GetContract(ctx, item.ID)
	if err != nil {
		return nil, err
	}
	return contractPayload(stored), nil
}

// UpdateContract replaces the stored document. For templates, incoming value
// edits are discarded: templates define structure, not data.
func (s *Service) UpdateContract(ctx context.Context, contractID string, doc contract.Document, author string) (map[string]any, error) {
	current, err := s.store.GetContract(ctx, contractID)
	if err != nil {
		return nil, err
	}

	doc = normalizeIncoming(doc)
	if current.Mode == contract.ModeTemplate {
		doc = contract.LockValues(doc, current.Body)
	}

	if err := s.store.UpdateContract(ctx, contractID, doc); err != nil {
		return nil, err
	}
	if author == "" {
		author = defaultAuthor
	}
	if err := s.archive.Ensure(contractID, doc, author); err != nil {
		log.Printf("app: archive init for %s: %v", contractID, err)
	}
	if _, err := s.archive.Commit(contractID, doc, author, "Update contract"); err != nil {
		log.Printf("app: archive commit for %s: %v", contractID, err)
	}
	if s.drafts != nil {
		// Durable save supersedes any crash-recovery draft.
		if err := s.drafts.Delete(ctx, contractID); err != nil {
			log.Printf("app: clear draft for %s: %v", contractID, err)
		}
	}
	s.indexContract(contractID, doc, current.Mode)

	stored, err := s.store.GetContract(ctx, contractID)
	if err != nil {
		return nil, err
	}
	return contractPayload(stored), nil
}

func (s *Service) DeleteContract(ctx context.Context, contractID string) error {
	if err := s.store.DeleteContract(ctx, contractID); err != nil {
		return err
	}
	if s.search != nil {
		s.search.DeleteContract(contractID)
	}
	s.dropSaver(contractID)
	return nil
}

// Instantiate copies a template into a fresh contract. Values stay empty;
// the structure (content, fields, sections, parties) carries over.
func (s *Service) Instantiate(ctx context.Context, templateID string) (map[string]any, error) {
	tpl, err := s.store.GetContract(ctx, templateID)
	if err != nil {
		return nil, err
	}
	if tpl.Mode != contract.ModeTemplate {
		return nil, domainError(http.StatusUnprocessableEntity, "NOT_A_TEMPLATE", "contract is not a template", nil)
	}
	doc := contract.LockValues(tpl.Body, contract.NewDocument())
	return s.CreateContract(ctx, contract.ModeContract, doc)
}

// --- Rendering and export ---

func (s *Service) Preview(ctx context.Context, contractID string) (map[string]any, error) {
	item, err := s.store.GetContract(ctx, contractID)
	if err != nil {
		return nil, err
	}
	return map[string]any{
		"contractId": item.ID,
		"content":    item.Body.RenderPreview(),
		"unresolved": item.Body.UnresolvedFields(),
	}, nil
}

// Export produces the final artifact. An incompletely resolved document is a
// 422 carrying the full list of missing field names.
func (s *Service) Export(ctx context.Context, contractID string, format export.Format) (*export.Result, error) {
	item, err := s.store.GetContract(ctx, contractID)
	if err != nil {
		return nil, err
	}
	if item.Mode == contract.ModeTemplate {
		return nil, domainError(http.StatusUnprocessableEntity, "TEMPLATE_EXPORT", "templates cannot be exported; instantiate a contract first", nil)
	}

	result, err := s.export.Export(ctx, contractID, item.Body, format)
	if err != nil {
		var blocked *contract.ExportBlockedError
		if errors.As(err, &blocked) {
			return nil, domainError(http.StatusUnprocessableEntity, "EXPORT_BLOCKED", "unresolved fields prevent export", map[string]any{
				"missingFields": blocked.Missing,
			})
		}
		if errors.Is(err, export.ErrPDFDependencyMissing) || errors.Is(err, export.ErrDOCXDependencyMissing) {
			return nil, domainError(http.StatusServiceUnavailable, "EXPORT_UNAVAILABLE", "export dependency missing", nil)
		}
		return nil, err
	}

	record := store.ExportRecord{
		ID:         util.NewID("exp"),
		ContractID: contractID,
		Format:     string(format),
		ObjectKey:  result.ObjectKey,
	}
	if err := s.store.InsertExport(ctx, record); err != nil {
		log.Printf("app: record export for %s: %v", contractID, err)
	}
	return result, nil
}

func (s *Service) ListExports(ctx context.Context, contractID string) ([]map[string]any, error) {
	if _, err := s.store.GetContract(ctx, contractID); err != nil {
		return nil, err
	}
	items, err := s.store.ListExports(ctx, contractID)
	if err != nil {
		return nil, err
	}
	payload := make([]map[string]any, 0, len(items))
	for _, item := range items {
		payload = append(payload, map[string]any{
			"id":        item.ID,
			"format":    item.Format,
			"objectKey": item.ObjectKey,
			"createdAt": item.CreatedAt,
		})
	}
	return payload, nil
}

// --- Section catalog ---

func (s *Service) ListSections(ctx context.Context) ([]map[string]any, error) {
	items, err := s.store.ListSections(ctx)
	if err != nil {
		return nil, err
	}
	payload := make([]map[string]any, 0, len(items))
	for _, item := range items {
		payload = append(payload, sectionPayload(item))
	}
	return payload, nil
}

func (s *Service) GetSection(ctx context.Context, sectionID string) (map[string]any, error) {
	item, err := s.store.GetSection(ctx, sectionID)
	if err != nil {
		return nil, err
	}
	return sectionPayload(item), nil
}

func (s *Service) CreateSection(ctx context.Context, title, content string, fields []contract.Field) (map[string]any, error) {
	if strings.TrimSpace(title) == "" {
		return nil, domainError(http.StatusUnprocessableEntity, "VALIDATION_ERROR", "title is required", nil)
	}
	item := store.CatalogSection{
		ID:      util.NewID("sec"),
		Title:   title,
		Content: contract.Normalize(content),
		Fields:  fields,
	}
	if item.Fields == nil {
		item.Fields = []contract.Field{}
	}
	if err := s.store.InsertSection(ctx, item); err != nil {
		return nil, err
	}
	if s.search != nil {
		s.search.IndexSection(search.SectionRecord{ID: item.ID, Title: item.Title, Content: item.Content})
	}
	stored, err := s.store.GetSection(ctx, item.ID)
	if err != nil {
		return nil, err
	}
	return sectionPayload(stored), nil
}

func (s *Service) UpdateSection(ctx context.Context, sectionID, title, content string, fields []contract.Field) (map[string]any, error) {
	item, err := s.store.GetSection(ctx, sectionID)
	if err != nil {
		return nil, err
	}
	if title != "" {
		item.Title = title
	}
	if content != "" {
		item.Content = contract.Normalize(content)
	}
	if fields != nil {
		item.Fields = fields
	}
	if err := s.store.UpdateSection(ctx, item); err != nil {
		return nil, err
	}
	if s.search != nil {
		s.search.IndexSection(search.SectionRecord{ID: item.ID, Title: item.Title, Content: item.Content})
	}
	stored, err := s.store.GetSection(ctx, sectionID)
	if err != nil {
		return nil, err
	}
	return sectionPayload(stored), nil
}

func (s *Service) DeleteSection(ctx context.Context, sectionID string) error {
	if err := s.store.DeleteSection(ctx, sectionID); err != nil {
		return err
	}
	if s.search != nil {
		s.search.DeleteSection(sectionID)
	}
	return nil
}

// InsertSection copies a catalog section into a contract's document.
func (s *Service) InsertSection(ctx context.Context, contractID, sectionID, author string) (map[string]any, error) {
	item, err := s.store.GetContract(ctx, contractID)
	if err != nil {
		return nil, err
	}
	section, err := s.store.GetSection(ctx, sectionID)
	if err != nil {
		return nil, err
	}

	doc := item.Body
	doc.InsertSection(contract.Section{
		ID:      section.ID,
		Title:   section.Title,
		Content: section.Content,
		Fields:  section.Fields,
	})
	return s.UpdateContract(ctx, contractID, doc, author)
}

// --- Engine mutations ---

// mutate loads the contract, applies an engine operation, and persists the
// result through the regular update path (archive commit, draft clear,
// reindex included).
func (s *Service) mutate(ctx context.Context, contractID, author string, apply func(*contract.Document) error) (map[string]any, error) {
	current, err := s.store.GetContract(ctx, contractID)
	if err != nil {
		return nil, err
	}
	doc := current.Body
	if err := apply(&doc); err != nil {
		return nil, mapEngineError(err)
	}
	return s.UpdateContract(ctx, contractID, doc, author)
}

func mapEngineError(err error) error {
	switch {
	case errors.Is(err, contract.ErrPartyNotFound):
		return domainError(http.StatusNotFound, "PARTY_NOT_FOUND", "party not found", nil)
	case errors.Is(err, contract.ErrFieldIndex), errors.Is(err, contract.ErrPartyFieldIndex):
		return domainError(http.StatusUnprocessableEntity, "VALIDATION_ERROR", err.Error(), nil)
	case errors.Is(err, editor.ErrPosition):
		return domainError(http.StatusUnprocessableEntity, "VALIDATION_ERROR", "position out of range", nil)
	}
	return err
}

func (s *Service) AddField(ctx context.Context, contractID, author string, f contract.Field) (map[string]any, error) {
	if strings.TrimSpace(f.Name) == "" {
		return nil, domainError(http.StatusUnprocessableEntity, "VALIDATION_ERROR", "field name is required", nil)
	}
	return s.mutate(ctx, contractID, author, func(d *contract.Document) error {
		d.AddField(f)
		return nil
	})
}

// UpdateField replaces the field at index. The type-change rule applies: a
// non-text field keeps no options.
func (s *Service) UpdateField(ctx context.Context, contractID, author string, index int, f contract.Field) (map[string]any, error) {
	return s.mutate(ctx, contractID, author, func(d *contract.Document) error {
		if err := d.UpdateField(index, f); err != nil {
			return err
		}
		return d.ChangeFieldType(index, f.Type)
	})
}

func (s *Service) RemoveField(ctx context.Context, contractID, author string, index int) (map[string]any, error) {
	return s.mutate(ctx, contractID, author, func(d *contract.Document) error {
		return d.RemoveField(index)
	})
}

func (s *Service) AddParty(ctx context.Context, contractID, author string, partyType contract.PartyType) (map[string]any, error) {
	partyID := util.NewID("party")
	return s.mutate(ctx, contractID, author, func(d *contract.Document) error {
		d.AddParty(contract.NewParty(partyID))
		if partyType == contract.PartyIndividual {
			return d.SetPartyType(partyID, partyType)
		}
		return nil
	})
}

// UpdateParty renames the party and/or switches its type. A type switch
// resets the party's fields to the matching skeleton.
func (s *Service) UpdateParty(ctx context.Context, contractID, author, partyID, name string, partyType contract.PartyType) (map[string]any, error) {
	return s.mutate(ctx, contractID, author, func(d *contract.Document) error {
		if name != "" {
			if err := d.RenameParty(partyID, name); err != nil {
				return err
			}
		}
		if partyType != "" {
			if partyType != contract.PartyCompany && partyType != contract.PartyIndividual {
				return domainError(http.StatusUnprocessableEntity, "VALIDATION_ERROR", "type must be 'company' or 'individual'", nil)
			}
			return d.SetPartyType(partyID, partyType)
		}
		return nil
	})
}

// RemoveParty deletes the party. Mappings that pointed at it are left in
// place and resolve as unresolved from then on.
func (s *Service) RemoveParty(ctx context.Context, contractID, author, partyID string) (map[string]any, error) {
	return s.mutate(ctx, contractID, author, func(d *contract.Document) error {
		return d.RemoveParty(partyID)
	})
}

func (s *Service) AddPartyField(ctx context.Context, contractID, author, partyID string) (map[string]any, error) {
	return s.mutate(ctx, contractID, author, func(d *contract.Document) error {
		return d.AddPartyField(partyID)
	})
}

func (s *Service) UpdatePartyField(ctx context.Context, contractID, author, partyID string, index int, f contract.PartyField) (map[string]any, error) {
	return s.mutate(ctx, contractID, author, func(d *contract.Document) error {
		return d.UpdatePartyField(partyID, index, f)
	})
}

func (s *Service) RemovePartyField(ctx context.Context, contractID, author, partyID string, index int) (map[string]any, error) {
	return s.mutate(ctx, contractID, author, func(d *contract.Document) error {
		return d.RemovePartyField(partyID, index)
	})
}

// InsertPlaceholder splices a placeholder span for the named field into the
// content at a byte offset. A negative position appends at the end. The span's
// visible label is the field's resolved value when the document knows one.
func (s *Service) InsertPlaceholder(ctx context.Context, contractID, author, name string, pos int) (map[string]any, error) {
	if strings.TrimSpace(name) == "" {
		return nil, domainError(http.StatusUnprocessableEntity, "VALIDATION_ERROR", "field name is required", nil)
	}
	return s.mutate(ctx, contractID, author, func(d *contract.Document) error {
		surface := editor.NewHeadless(d.Content, func(markup string) { d.Content = markup })
		if pos < 0 {
			pos = len(d.Content)
		}
		return editor.InsertPlaceholder(surface, d, name, pos)
	})
}

// --- Drafts (autosave) ---

// SaveDraft stores the in-flight state in Redis immediately and debounces a
// durable save into Postgres, so a burst of keystrokes lands as one write.
func (s *Service) SaveDraft(ctx context.Context, contractID string, doc contract.Document) error {
	current, err := s.store.GetContract(ctx, contractID)
	if err != nil {
		return err
	}
	doc = normalizeIncoming(doc)
	if current.Mode == contract.ModeTemplate {
		doc = contract.LockValues(doc, current.Body)
	}

	if s.drafts != nil {
		if err := s.drafts.Put(ctx, contractID, doc); err != nil {
			return err
		}
	}
	s.saverFor(contractID, current.Mode).Edit(doc)
	return nil
}

func (s *Service) GetDraft(ctx context.Context, contractID string) (map[string]any, error) {
	if s.drafts == nil {
		return nil, domainError(http.StatusNotFound, "NO_DRAFT", "draft storage not configured", nil)
	}
	draft, err := s.drafts.Get(ctx, contractID)
	if errors.Is(err, autosave.ErrNoDraft) {
		return nil, domainError(http.StatusNotFound, "NO_DRAFT", "no draft for contract", nil)
	}
	if err != nil {
		return nil, err
	}
	return map[string]any{
		"contractId": draft.ContractID,
		"document":   draft.Document,
		"savedAt":    draft.SavedAt,
	}, nil
}

func (s *Service) DiscardDraft(ctx context.Context, contractID string) error {
	s.dropSaver(contractID)
	if s.drafts == nil {
		return nil
	}
	return s.drafts.Delete(ctx, contractID)
}

func (s *Service) saverFor(contractID string, mode contract.Mode) *autosave.Saver {
	s.saverMu.Lock()
	defer s.saverMu.Unlock()
	if saver, ok := s.savers[contractID]; ok {
		return saver
	}
	saver := autosave.NewSaver(s.cfg.AutosaveInterval, func(ctx context.Context, doc contract.Document) error {
		if err := s.store.UpdateContract(ctx, contractID, doc); err != nil {
			return err
		}
		if _, err := s.archive.Commit(contractID, doc, defaultAuthor, "Autosave"); err != nil {
			log.Printf("app: autosave archive commit for %s: %v", contractID, err)
		}
		s.indexContract(contractID, doc, mode)
		return nil
	}, func(err error) {
		log.Printf("app: autosave for %s failed, will retry: %v", contractID, err)
	})
	s.savers[contractID] = saver
	return saver
}

func (s *Service) dropSaver(contractID string) {
	s.saverMu.Lock()
	defer s.saverMu.Unlock()
	if saver, ok := s.savers[contractID]; ok {
		saver.Stop()
		delete(s.savers, contractID)
	}
}

// FlushSavers persists all pending autosave state; called on shutdown.
func (s *Service) FlushSavers(ctx context.Context) {
	s.saverMu.Lock()
	savers := make([]*autosave.Saver, 0, len(s.savers))
	for _, saver := range s.savers {
		savers = append(savers, saver)
	}
	s.saverMu.Unlock()

	for _, saver := range savers {
		if err := saver.Flush(ctx); err != nil {
			log.Printf("app: flush autosave: %v", err)
		}
		saver.Stop()
	}
}

// --- History ---

func (s *Service) History(ctx context.Context, contractID string, limit int) (map[string]any, error) {
	if _, err := s.store.GetContract(ctx, contractID); err != nil {
		return nil, err
	}
	commits, err := s.archive.History(contractID, limit)
	if err != nil {
		return nil, err
	}
	entries := make([]map[string]any, 0, len(commits))
	for _, c := range commits {
		entries = append(entries, map[string]any{
			"hash":      c.Hash,
			"message":   strings.TrimSpace(c.Message),
			"author":    c.Author,
			"createdAt": c.CreatedAt,
		})
	}
	return map[string]any{"contractId": contractID, "history": entries}, nil
}

func (s *Service) HistoryAt(ctx context.Context, contractID, hash string) (map[string]any, error) {
	if _, err := s.store.GetContract(ctx, contractID); err != nil {
		return nil, err
	}
	doc, err := s.archive.GetByHash(contractID, hash)
	if err != nil {
		return nil, domainError(http.StatusNotFound, "NOT_FOUND", "revision not found", nil)
	}
	return map[string]any{
		"contractId": contractID,
		"hash":       hash,
		"document":   doc,
	}, nil
}

// --- Search ---

func (s *Service) Search(q search.Query) search.Response {
	if s.search == nil {
		return search.Response{Results: []search.Result{}, Query: q.Text}
	}
	return s.search.Search(q)
}

// SuggestedFields is the static catalog offered when authoring new fields.
func (s *Service) SuggestedFields() []contract.Field {
	return []contract.Field{
		{Name: "effectiveDate", Type: contract.FieldDate, Options: []string{}, Required: true},
		{Name: "clientName", Type: contract.FieldText, Options: []string{}, Required: true},
		{Name: "contactEmail", Type: contract.FieldEmail, Options: []string{}},
		{Name: "amount", Type: contract.FieldNumber, Options: []string{}, Required: true},
		{Name: "paymentTerms", Type: contract.FieldText, Options: []string{"monthly", "quarterly", "upon completion"}},
		{Name: "startDate", Type: contract.FieldDate, Options: []string{}},
		{Name: "duration", Type: contract.FieldNumber, Options: []string{}},
		{Name: "noticePeriod", Type: contract.FieldNumber, Options: []string{}},
		{Name: "governingState", Type: contract.FieldText, Options: []string{}},
	}
}

// --- helpers ---

func (s *Service) indexContract(id string, doc contract.Document, mode contract.Mode) {
	if s.search == nil {
		return
	}
	s.search.IndexContract(search.ContractRecord{
		ID:          id,
		Title:       doc.Title,
		Description: doc.Description,
		Mode:        string(mode),
	})
}

// normalizeIncoming upgrades legacy placeholder markers and guarantees
// non-nil collections so the persisted JSON always carries arrays.
func normalizeIncoming(doc contract.Document) contract.Document {
	doc.Content = contract.Normalize(doc.Content)
	if doc.Fields == nil {
		doc.Fields = []contract.Field{}
	}
	if doc.Sections == nil {
		doc.Sections = []contract.Section{}
	}
	if doc.Parties == nil {
		doc.Parties = []contract.Party{}
	}
	for i := range doc.Sections {
		doc.Sections[i].Content = contract.Normalize(doc.Sections[i].Content)
	}
	return doc
}

func contractPayload(item store.Contract) map[string]any {
	return map[string]any{
		"id":        item.ID,
		"mode":      item.Mode,
		"document":  item.Body,
		"createdAt": item.CreatedAt,
		"updatedAt": item.UpdatedAt,
	}
}

func sectionPayload(item store.CatalogSection) map[string]any {
	return map[string]any{
		"id":        item.ID,
		"title":     item.Title,
		"content":   item.Content,
		"fields":    item.Fields,
		"createdAt": item.CreatedAt,
		"updatedAt": item.UpdatedAt,
	}
}

// seed loads the demo consulting agreement and the section catalog. Content
// arrives in the legacy marker form and goes through Normalize like any
// other import.
func (s *Service) seed(ctx context.Context) error {
	doc := demoConsultingAgreement()
	item := store.Contract{
		ID:   util.NewID("con"),
		Mode: contract.ModeContract,
		Body: normalizeIncoming(doc),
	}
	if err := s.store.InsertContract(ctx, item); err != nil {
		return err
	}
	if err := s.archive.Ensure(item.ID, item.Body, defaultAuthor); err != nil {
		log.Printf("app: archive init for %s: %v", item.ID, err)
	}

	for _, section := range demoSectionCatalog() {
		section.Content = contract.Normalize(section.Content)
		if err := s.store.InsertSection(ctx, section); err != nil {
			return err
		}
	}

	// Fresh copy: LockValues blanks values in place.
	tpl := contract.LockValues(normalizeIncoming(demoConsultingAgreement()), contract.NewDocument())
	tplItem := store.Contract{
		ID:   util.NewID("tpl"),
		Mode: contract.ModeTemplate,
		Body: tpl,
	}
	if err := s.store.InsertContract(ctx, tplItem); err != nil {
		return err
	}
	if err := s.archive.Ensure(tplItem.ID, tpl, defaultAuthor); err != nil {
		log.Printf("app: archive init for %s: %v", tplItem.ID, err)
	}
	return nil
}
