package store

import (
	"time"

	"pactum/api/internal/contract"
)

// Contract is a persisted document row. Title and description are projected
// out of the body on every write so list and search queries never have to
// unpack the JSONB payload.
type Contract struct {
	ID          string
	Title       string
	Description string
	Mode        contract.Mode
	Body        contract.Document
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// CatalogSection is a reusable section in the shared catalog. Inserting one
// into a contract copies it; the catalog row is never linked to documents.
type CatalogSection struct {
	ID        string
	Title     string
	Content   string
	Fields    []contract.Field
	CreatedAt time.Time
	UpdatedAt time.Time
}

// ExportRecord tracks a generated export artifact and where it was stored.
type ExportRecord struct {
	ID         string
	ContractID string
	Format     string
	ObjectKey  string
	CreatedAt  time.Time
}
