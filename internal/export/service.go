package export

import (
	"context"
	"fmt"
	"html/template"
	"time"

	"pactum/api/internal/contract"
)

// Service renders a contract into its final form and produces the requested
// artifact. The artifact store is optional; without one results are returned
// inline only.
type Service struct {
	artifacts *ArtifactStore
	urlExpiry time.Duration
}

// NewService creates a new export service. artifacts may be nil.
func NewService(artifacts *ArtifactStore) *Service {
	return &Service{
		artifacts: artifacts,
		urlExpiry: 24 * time.Hour,
	}
}

// Export produces the final artifact for a contract. The document must
// resolve completely: an unresolved placeholder or required field surfaces as
// a *contract.ExportBlockedError and no artifact is generated.
func (s *Service) Export(ctx context.Context, contractID string, doc contract.Document, format Format) (*Result, error) {
	rendered, err := doc.RenderExport()
	if err != nil {
		return nil, err
	}

	data := TemplateData{
		Title:       doc.Title,
		Description: doc.Description,
		ContentHTML: template.HTML(rendered),
		GeneratedAt: time.Now(),
	}
	for _, p := range doc.Parties {
		tp := TemplateParty{Name: p.Name, Kind: string(p.Type)}
		if tp.Name == "" {
			tp.Name = p.ID
		}
		for _, f := range p.Fields {
			if f.Value == "" {
				continue
			}
			tp.Fields = append(tp.Fields, TemplatePartyField{Label: f.Name, Value: f.Value})
		}
		data.Parties = append(data.Parties, tp)
	}

	html, err := RenderContractHTML(data)
	if err != nil {
		return nil, fmt.Errorf("render template: %w", err)
	}

	var result *Result
	switch format {
	case FormatPDF:
		result, err = renderPDF(html, doc.Title)
	case FormatDOCX:
		result, err = renderDOCX(html, doc.Title)
	default:
		return nil, fmt.Errorf("unsupported format: %s", format)
	}
	if err != nil {
		return nil, err
	}

	if s.artifacts != nil {
		key := fmt.Sprintf("%s/%d-%s", contractID, time.Now().Unix(), result.Filename)
		if err := s.artifacts.Put(ctx, key, result.Data, result.MimeType); err != nil {
			return nil, err
		}
		result.ObjectKey = key
		if url, err := s.artifacts.PresignedURL(ctx, key, s.urlExpiry); err == nil {
			result.URL = url
		}
	}

	return result, nil
}
