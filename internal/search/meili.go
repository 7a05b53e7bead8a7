package search

import (
	"encoding/json"
	"fmt"
	"log"
	"strings"
	"sync/atomic"
	"time"

	meili "github.com/meilisearch/meilisearch-go"
)

const (
	idxContracts = "pactum_contracts"
	idxSections  = "pactum_sections"
)

// Meili implements Searcher via Meilisearch.
type Meili struct {
	client  meili.ServiceManager
	healthy atomic.Bool
	done    chan struct{}
}

// NewMeili creates a Meilisearch client and configures indexes.
// The caller should proceed without it if the instance stays unhealthy.
func NewMeili(url, apiKey string) *Meili {
	client := meili.New(url, meili.WithAPIKey(apiKey))

	m := &Meili{
		client: client,
		done:   make(chan struct{}),
	}

	// Initial health check
	if _, err := client.Health(); err != nil {
		log.Printf("search: meilisearch unavailable at %s: %v", url, err)
		m.healthy.Store(false)
	} else {
		m.healthy.Store(true)
		m.configureIndexes()
	}

	go m.healthLoop()
	return m
}

func (m *Meili) configureIndexes() {
	indexes := []struct {
		uid        string
		primaryKey string
		filterable []string
		searchable []string
	}{
		{
			uid:        idxContracts,
			primaryKey: "id",
			filterable: []string{"mode"},
			searchable: []string{"title", "description"},
		},
		{
			uid:        idxSections,
			primaryKey: "id",
			filterable: []string{},
			searchable: []string{"title", "content"},
		},
	}

	for _, idx := range indexes {
		if _, err := m.client.CreateIndex(&meili.IndexConfig{
			Uid:        idx.uid,
			PrimaryKey: idx.primaryKey,
		}); err != nil {
			log.Printf("search: create index %s (may already exist): %v", idx.uid, err)
		}

		index := m.client.Index(idx.uid)
		filterableInterface := make([]interface{}, len(idx.filterable))
		for i, v := range idx.filterable {
			filterableInterface[i] = v
		}
		if _, err := index.UpdateFilterableAttributes(&filterableInterface); err != nil {
			log.Printf("search: update filterable attrs for %s: %v", idx.uid, err)
		}
		if _, err := index.UpdateSearchableAttributes(&idx.searchable); err != nil {
			log.Printf("search: update searchable attrs for %s: %v", idx.uid, err)
		}
	}
}

func (m *Meili) healthLoop() {
	ticker := time.NewTicker(10 * time.Second)
	defer ticker.Stop()
	for {
		select {
		case <-m.done:
			return
		case <-ticker.C:
			_, err := m.client.Health()
			wasHealthy := m.healthy.Load()
			m.healthy.Store(err == nil)
			if err == nil && !wasHealthy {
				log.Println("search: meilisearch recovered, reconfiguring indexes")
				m.configureIndexes()
			}
		}
	}
}

// Close stops the background health monitor.
func (m *Meili) Close() {
	close(m.done)
}

// Healthy reports whether Meilisearch is reachable.
func (m *Meili) Healthy() bool {
	return m.healthy.Load()
}

// Search queries both indexes (or a filtered subset) and merges results.
func (m *Meili) Search(q Query) ([]Result, int, error) {
	if !m.healthy.Load() {
		return nil, 0, fmt.Errorf("meilisearch unhealthy")
	}

	limit := int64(q.Limit)
	if limit == 0 {
		limit = 20
	}

	var queries []*meili.SearchRequest

	if q.FilterType == "" || q.FilterType == ResultContract || q.FilterType == ResultTemplate {
		sr := &meili.SearchRequest{
			IndexUID:              idxContracts,
			Limit:                 limit,
			Offset:                int64(q.Offset),
			AttributesToHighlight: []string{"*"},
			HighlightPreTag:       "<mark>",
			HighlightPostTag:      "</mark>",
			ShowRankingScore:      true,
		}
		switch q.FilterType {
		case ResultContract:
			sr.Filter = []string{`mode = "contract"`}
		case ResultTemplate:
			sr.Filter = []string{`mode = "template"`}
		}
		queries = append(queries, sr)
	}

	if q.FilterType == "" || q.FilterType == ResultSection {
		queries = append(queries, &meili.SearchRequest{
			IndexUID:              idxSections,
			Limit:                 limit,
			Offset:                int64(q.Offset),
			AttributesToHighlight: []string{"*"},
			HighlightPreTag:       "<mark>",
			HighlightPostTag:      "</mark>",
			ShowRankingScore:      true,
		})
	}

	if len(queries) == 0 {
		return nil, 0, nil
	}

	resp, err := m.client.MultiSearch(&meili.MultiSearchRequest{
		Queries: queries,
	})
	if err != nil {
		m.healthy.Store(false)
		return nil, 0, fmt.Errorf("meilisearch multi-search: %w", err)
	}

	var results []Result
	total := 0
	for _, sr := range resp.Results {
		total += int(sr.EstimatedTotalHits)
		for _, hit := range sr.Hits {
			results = append(results, hitToResult(hit, sr.IndexUID))
		}
	}

	return results, total, nil
}

func hitToResult(hit meili.Hit, indexUID string) Result {
	var r Result
	r.ID = decodeString(hit, "id")

	switch indexUID {
	case idxContracts:
		r.Type = ResultContract
		if decodeString(hit, "mode") == "template" {
			r.Type = ResultTemplate
		}
		r.Title = firstNonBlank(decodeFormattedString(hit, "title"), decodeString(hit, "title"))
		r.Snippet = firstNonBlank(decodeFormattedString(hit, "description"), decodeString(hit, "description"))
	case idxSections:
		r.Type = ResultSection
		r.Title = firstNonBlank(decodeFormattedString(hit, "title"), decodeString(hit, "title"))
		r.Snippet = firstNonBlank(decodeFormattedString(hit, "content"), decodeString(hit, "content"))
	}
	return r
}

func decodeString(hit meili.Hit, key string) string {
	raw, ok := hit[key]
	if !ok {
		return ""
	}

	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return s
	}
	return ""
}

func decodeFormattedString(hit meili.Hit, key string) string {
	raw, ok := hit["_formatted"]
	if !ok {
		return ""
	}
	var formatted map[string]string
	if err := json.Unmarshal(raw, &formatted); err != nil {
		return ""
	}
	return strings.TrimSpace(formatted[key])
}

func firstNonBlank(values ...string) string {
	for _, value := range values {
		if strings.TrimSpace(value) != "" {
			return value
		}
	}
	return ""
}

// IndexContract adds or updates a contract or template in the search index.
func (m *Meili) IndexContract(c ContractRecord) error {
	_, err := m.client.Index(idxContracts).AddDocuments([]ContractRecord{c}, nil)
	return err
}

// IndexSection adds or updates a catalog section in the search index.
func (m *Meili) IndexSection(s SectionRecord) error {
	_, err := m.client.Index(idxSections).AddDocuments([]SectionRecord{s}, nil)
	return err
}

// DeleteContract removes a contract from the search index.
func (m *Meili) DeleteContract(id string) error {
	_, err := m.client.Index(idxContracts).DeleteDocument(id, nil)
	return err
}

// DeleteSection removes a section from the search index.
func (m *Meili) DeleteSection(id string) error {
	_, err := m.client.Index(idxSections).DeleteDocument(id, nil)
	return err
}

// IndexContracts bulk-indexes contracts.
func (m *Meili) IndexContracts(contracts []ContractRecord) error {
	if len(contracts) == 0 {
		return nil
	}
	_, err := m.client.Index(idxContracts).AddDocuments(contracts, nil)
	return err
}

// IndexSections bulk-indexes catalog sections.
func (m *Meili) IndexSections(sections []SectionRecord) error {
	if len(sections) == 0 {
		return nil
	}
	_, err := m.client.Index(idxSections).AddDocuments(sections, nil)
	return err
}
