package search

import (
	"context"
	"log"
)

// Service is the facade that tries Meilisearch first and falls back to PG FTS.
type Service struct {
	meili *Meili
	pgfts *PgFTS
}

// NewService creates a search service. meili may be nil if Meilisearch is not configured.
func NewService(meili *Meili, pgfts *PgFTS) *Service {
	return &Service{meili: meili, pgfts: pgfts}
}

// Search tries Meilisearch if healthy, otherwise falls back to PG FTS.
func (s *Service) Search(q Query) Response {
	if s.meili != nil && s.meili.Healthy() {
		results, total, err := s.meili.Search(q)
		if err == nil {
			return Response{Results: nonNil(results), Total: total, Query: q.Text}
		}
		log.Printf("search: meilisearch error, falling back to pgfts: %v", err)
	}

	results, total, err := s.pgfts.Search(q)
	if err != nil {
		log.Printf("search: pgfts error: %v", err)
		return Response{Results: []Result{}, Total: 0, Query: q.Text}
	}
	return Response{Results: nonNil(results), Total: total, Query: q.Text}
}

// IndexContract indexes a contract or template (fire-and-forget to Meilisearch).
func (s *Service) IndexContract(c ContractRecord) {
	if s.meili == nil || !s.meili.Healthy() {
		return
	}
	go func() {
		if err := s.meili.IndexContract(c); err != nil {
			log.Printf("search: index contract %s: %v", c.ID, err)
		}
	}()
}

// IndexSection indexes a catalog section (fire-and-forget to Meilisearch).
func (s *Service) IndexSection(sec SectionRecord) {
	if s.meili == nil || !s.meili.Healthy() {
		return
	}
	go func() {
		if err := s.meili.IndexSection(sec); err != nil {
			log.Printf("search: index section %s: %v", sec.ID, err)
		}
	}()
}

// DeleteContract removes a contract from the search index (fire-and-forget).
func (s *Service) DeleteContract(id string) {
	if s.meili == nil || !s.meili.Healthy() {
		return
	}
	go func() {
		if err := s.meili.DeleteContract(id); err != nil {
			log.Printf("search: delete contract %s: %v", id, err)
		}
	}()
}

// DeleteSection removes a section from the search index (fire-and-forget).
func (s *Service) DeleteSection(id string) {
	if s.meili == nil || !s.meili.Healthy() {
		return
	}
	go func() {
		if err := s.meili.DeleteSection(id); err != nil {
			log.Printf("search: delete section %s: %v", id, err)
		}
	}()
}

// ReindexAllFromPG reindexes all searchable entities from PostgreSQL into
// Meilisearch. Called at startup if Meilisearch is healthy.
func (s *Service) ReindexAllFromPG(ctx context.Context) {
	if s.meili == nil || !s.meili.Healthy() || s.pgfts == nil {
		return
	}
	contracts, sections, err := s.pgfts.LoadAllRecords(ctx)
	if err != nil {
		log.Printf("search: reindex load failed: %v", err)
		return
	}
	if err := s.meili.IndexContracts(contracts); err != nil {
		log.Printf("search: reindex contracts: %v", err)
	}
	if err := s.meili.IndexSections(sections); err != nil {
		log.Printf("search: reindex sections: %v", err)
	}
}

func nonNil(r []Result) []Result {
	if r == nil {
		return []Result{}
	}
	return r
}
