package search

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
)

// PgFTS implements Searcher using PostgreSQL full-text search as a fallback.
type PgFTS struct {
	db *sql.DB
}

// NewPgFTS creates a PostgreSQL FTS searcher.
func NewPgFTS(db *sql.DB) *PgFTS {
	return &PgFTS{db: db}
}

// Healthy always returns true — if Postgres is down, the whole app is down.
func (p *PgFTS) Healthy() bool {
	return true
}

// Search executes a UNION ALL query across contracts and sections using
// plainto_tsquery and ts_rank, with ts_headline for snippets.
func (p *PgFTS) Search(q Query) ([]Result, int, error) {
	if strings.TrimSpace(q.Text) == "" {
		return nil, 0, nil
	}

	limit := q.Limit
	if limit <= 0 {
		limit = 20
	}
	offset := q.Offset
	if offset < 0 {
		offset = 0
	}

	tsQuery := "plainto_tsquery('english', $1)"
	args := []any{q.Text}

	var subQueries []string

	if q.FilterType == "" || q.FilterType == ResultContract || q.FilterType == ResultTemplate {
		where := "c.fts @@ " + tsQuery
		switch q.FilterType {
		case ResultContract:
			where += " AND c.mode = 'contract'"
		case ResultTemplate:
			where += " AND c.mode = 'template'"
		}
		subQueries = append(subQueries, fmt.Sprintf(`
			SELECT c.mode AS type, c.id, c.title,
				ts_headline('english', coalesce(c.description, ''), %s, 'MaxFragments=1,MaxWords=30') AS snippet,
				ts_rank(c.fts, %s) AS rank
			FROM contracts c
			WHERE %s`, tsQuery, tsQuery, where))
	}

	if q.FilterType == "" || q.FilterType == ResultSection {
		subQueries = append(subQueries, fmt.Sprintf(`
			SELECT 'section'::text AS type, s.id, s.title,
				ts_headline('english', coalesce(s.content, ''), %s, 'MaxFragments=1,MaxWords=30') AS snippet,
				ts_rank(s.fts, %s) AS rank
			FROM sections s
			WHERE s.fts @@ %s`, tsQuery, tsQuery, tsQuery))
	}

	if len(subQueries) == 0 {
		return nil, 0, nil
	}

	countSQL := fmt.Sprintf("SELECT count(*) FROM (%s) sub",
		strings.Join(subQueries, " UNION ALL "))

	dataSQL := fmt.Sprintf(`SELECT type, id, title, snippet
		FROM (%s) sub
		ORDER BY rank DESC
		LIMIT %d OFFSET %d`,
		strings.Join(subQueries, " UNION ALL "),
		limit, offset)

	ctx := context.Background()

	var total int
	if err := p.db.QueryRowContext(ctx, countSQL, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("pgfts count: %w", err)
	}

	rows, err := p.db.QueryContext(ctx, dataSQL, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("pgfts query: %w", err)
	}
	defer rows.Close()

	var results []Result
	for rows.Next() {
		var r Result
		var typ string
		if err := rows.Scan(&typ, &r.ID, &r.Title, &r.Snippet); err != nil {
			return nil, 0, fmt.Errorf("pgfts scan: %w", err)
		}
		r.Type = ResultType(typ)
		results = append(results, r)
	}

	return results, total, rows.Err()
}

// LoadAllRecords returns all searchable records for full reindexing.
func (p *PgFTS) LoadAllRecords(ctx context.Context) ([]ContractRecord, []SectionRecord, error) {
	contractRows, err := p.db.QueryContext(ctx, `
		SELECT id, title, description, mode
		FROM contracts
	`)
	if err != nil {
		return nil, nil, fmt.Errorf("load contracts: %w", err)
	}
	defer contractRows.Close()

	contracts := make([]ContractRecord, 0)
	for contractRows.Next() {
		var c ContractRecord
		if err := contractRows.Scan(&c.ID, &c.Title, &c.Description, &c.Mode); err != nil {
			return nil, nil, fmt.Errorf("scan contract: %w", err)
		}
		contracts = append(contracts, c)
	}
	if err := contractRows.Err(); err != nil {
		return nil, nil, fmt.Errorf("iterate contracts: %w", err)
	}

	sectionRows, err := p.db.QueryContext(ctx, `
		SELECT id, title, content
		FROM sections
	`)
	if err != nil {
		return nil, nil, fmt.Errorf("load sections: %w", err)
	}
	defer sectionRows.Close()

	sections := make([]SectionRecord, 0)
	for sectionRows.Next() {
		var s SectionRecord
		if err := sectionRows.Scan(&s.ID, &s.Title, &s.Content); err != nil {
			return nil, nil, fmt.Errorf("scan section: %w", err)
		}
		sections = append(sections, s)
	}
	if err := sectionRows.Err(); err != nil {
		return nil, nil, fmt.Errorf("iterate sections: %w", err)
	}

	return contracts, sections, nil
}
