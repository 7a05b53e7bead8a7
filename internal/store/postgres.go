package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"pactum/api/internal/contract"
)

type PostgresStore struct {
	db *sql.DB
}

func NewPostgresStore(db *sql.DB) *PostgresStore {
	return &PostgresStore{db: db}
}

func (s *PostgresStore) DB() *sql.DB {
	return s.db
}

func (s *PostgresStore) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

func (s *PostgresStore) ListContracts(ctx context.Context, mode contract.Mode) ([]Contract, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, title, description, mode, created_at, updated_at
		FROM contracts
		WHERE mode = $1
		ORDER BY updated_at DESC
	`, string(mode))
	if err != nil {
		return nil, fmt.Errorf("list contracts: %w", err)
	}
	defer rows.Close()

	items := make([]Contract, 0)
	for rows.Next() {
		var item Contract
		if err := rows.Scan(&item.ID, &item.Title, &item.Description, &item.Mode, &item.CreatedAt, &item.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan contract: %w", err)
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate contracts: %w", err)
	}
	return items, nil
}

func (s *PostgresStore) GetContract(ctx context.Context, contractID string) (Contract, error) {
	var (
		item Contract
		body []byte
	)
	err := s.db.QueryRowContext(ctx, `
		SELECT id, title, description, mode, body, created_at, updated_at
		FROM contracts
		WHERE id = $1
	`, contractID).Scan(&item.ID, &item.Title, &item.Description, &item.Mode, &body, &item.CreatedAt, &item.UpdatedAt)
	if err != nil {
		return Contract{}, err
	}
	if err := json.Unmarshal(body, &item.Body); err != nil {
		return Contract{}, fmt.Errorf("decode contract body: %w", err)
	}
	return item, nil
}

func (s *PostgresStore) InsertContract(ctx context.Context, item Contract) error {
	body, err := json.Marshal(item.Body)
	if err != nil {
		return fmt.Errorf("encode contract body: %w", err)
	}
	_, err = s.db.ExecContext(ctx, `
		INSERT INTO contracts (id, title, description, mode, body)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (id) DO NOTHING
	`, item.ID, item.Body.Title, item.Body.Description, string(item.Mode), body)
	if err != nil {
		return fmt.Errorf("insert contract: %w", err)
	}
	return nil
}

func (s *PostgresStore) UpdateContract(ctx context.Context, contractID string, doc contract.Document) error {
	body, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("encode contract body: %w", err)
	}
	res, err := s.db.ExecContext(ctx, `
		UPDATE contracts
		SET title = $2, description = $3, body = $4, updated_at = NOW()
		WHERE id = $1
	`, contractID, doc.Title, doc.Description, body)
	if err != nil {
		return fmt.Errorf("update contract: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("update contract: %w", err)
	}
	if affected == 0 {
		return sql.ErrNoRows
	}
	return nil
}

func (s *PostgresStore) DeleteContract(ctx context.Context, contractID string) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM contracts WHERE id = $1`, contractID)
	if err != nil {
		return fmt.Errorf("delete contract: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete contract: %w", err)
	}
	if affected == 0 {
		return sql.ErrNoRows
	}
	return nil
}

func (s *PostgresStore) ListSections(ctx context.Context) ([]CatalogSection, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, title, content, fields, created_at, updated_at
		FROM sections
		ORDER BY title ASC
	`)
	if err != nil {
		return nil, fmt.Errorf("list sections: %w", err)
	}
	defer rows.Close()

	items := make([]CatalogSection, 0)
	for rows.Next() {
		item, err := scanSection(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate sections: %w", err)
	}
	return items, nil
}

func (s *PostgresStore) GetSection(ctx context.Context, sectionID string) (CatalogSection, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT id, title, content, fields, created_at, updated_at
		FROM sections
		WHERE id = $1
	`, sectionID)
	return scanSection(row)
}

func (s *PostgresStore) InsertSection(ctx context.Context, item CatalogSection) error {
	fields, err := json.Marshal(item.Fields)
	if err != nil {
		return fmt.Errorf("encode section fields: %w", err)
	}
	_, err = s.db.ExecContext(ctx, `
		INSERT INTO sections (id, title, content, fields)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (id) DO NOTHING
	`, item.ID, item.Title, item.Content, fields)
	if err != nil {
		return fmt.Errorf("insert section: %w", err)
	}
	return nil
}

func (s *PostgresStore) UpdateSection(ctx context.Context, item CatalogSection) error {
	fields, err := json.Marshal(item.Fields)
	if err != nil {
		return fmt.Errorf("encode section fields: %w", err)
	}
	res, err := s.db.ExecContext(ctx, `
		UPDATE sections
		SET title = $2, content = $3, fields = $4, updated_at = NOW()
		WHERE id = $1
	`, item.ID, item.Title, item.Content, fields)
	if err != nil {
		return fmt.Errorf("update section: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("update section: %w", err)
	}
	if affected == 0 {
		return sql.ErrNoRows
	}
	return nil
}

func (s *PostgresStore) DeleteSection(ctx context.Context, sectionID string) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM sections WHERE id = $1`, sectionID)
	if err != nil {
		return fmt.Errorf("delete section: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete section: %w", err)
	}
	if affected == 0 {
		return sql.ErrNoRows
	}
	return nil
}

func (s *PostgresStore) InsertExport(ctx context.Context, item ExportRecord) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO exports (id, contract_id, format, object_key)
		VALUES ($1, $2, $3, $4)
	`, item.ID, item.ContractID, item.Format, item.ObjectKey)
	if err != nil {
		return fmt.Errorf("insert export: %w", err)
	}
	return nil
}

func (s *PostgresStore) ListExports(ctx context.Context, contractID string) ([]ExportRecord, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, contract_id, format, object_key, created_at
		FROM exports
		WHERE contract_id = $1
		ORDER BY created_at DESC
	`, contractID)
	if err != nil {
		return nil, fmt.Errorf("list exports: %w", err)
	}
	defer rows.Close()

	items := make([]ExportRecord, 0)
	for rows.Next() {
		var item ExportRecord
		if err := rows.Scan(&item.ID, &item.ContractID, &item.Format, &item.ObjectKey, &item.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan export: %w", err)
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate exports: %w", err)
	}
	return items, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanSection(row rowScanner) (CatalogSection, error) {
	var (
		item   CatalogSection
		fields []byte
	)
	if err := row.Scan(&item.ID, &item.Title, &item.Content, &fields, &item.CreatedAt, &item.UpdatedAt); err != nil {
		return CatalogSection{}, err
	}
	item.Fields = []contract.Field{}
	if len(fields) > 0 {
		if err := json.Unmarshal(fields, &item.Fields); err != nil {
			return CatalogSection{}, fmt.Errorf("decode section fields: %w", err)
		}
	}
	return item, nil
}
