package export

import (
	"bytes"
	"embed"
	"html/template"
	"strings"
	"time"
)

//go:embed templates/*.html
var templateFS embed.FS

var contractTemplate *template.Template

func init() {
	funcMap := template.FuncMap{
		"lower": strings.ToLower,
		"formatDate": func(t time.Time, layout string) string {
			return t.Format(layout)
		},
		"safeHTML": func(s interface{}) template.HTML {
			switch v := s.(type) {
			case string:
				return template.HTML(v)
			case template.HTML:
				return v
			default:
				return template.HTML("")
			}
		},
	}

	templateContent, err := templateFS.ReadFile("templates/contract.html")
	if err != nil {
		// Fallback to built-in template if file not found
		contractTemplate = template.Must(template.New("contract").Funcs(funcMap).Parse(fallbackTemplate))
		return
	}
	contractTemplate = template.Must(template.New("contract").Funcs(funcMap).Parse(string(templateContent)))
}

// TemplateData holds data for contract template rendering
type TemplateData struct {
	Title       string
	Description string
	ContentHTML template.HTML
	Parties     []TemplateParty
	GeneratedAt time.Time
}

// TemplateParty holds party data for the signature block
type TemplateParty struct {
	Name   string
	Kind   string
	Fields []TemplatePartyField
}

// TemplatePartyField is a single labeled value in the signature block
type TemplatePartyField struct {
	Label string
	Value string
}

// RenderContractHTML renders the contract template with provided data
func RenderContractHTML(data TemplateData) (string, error) {
	var buf bytes.Buffer
	if err := contractTemplate.Execute(&buf, data); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// fallbackTemplate is used if the embedded template fails to load
const fallbackTemplate = `<!DOCTYPE html>
<html>
<head>
  <meta charset="UTF-8">
  <title>{{.Title}}</title>
  <style>
    body { font-family: Georgia, serif; line-height: 1.6; max-width: 800px; margin: 2rem auto; }
    h1 { border-bottom: 2px solid #333; padding-bottom: 0.5rem; }
    .meta { color: #666; font-size: 0.9em; margin-bottom: 2rem; }
    .party { margin: 1rem 0; padding: 1rem; border-top: 1px solid #ccc; }
  </style>
</head>
<body>
  <h1>{{.Title}}</h1>
  {{if .Description}}<p class="meta">{{.Description}}</p>{{end}}
  <div>{{.ContentHTML | safeHTML}}</div>
  {{if .Parties}}
  <h2>Parties</h2>
  {{range .Parties}}<div class="party"><strong>{{.Name}}</strong> ({{.Kind | lower}})
  {{range .Fields}}<div>{{.Label}}: {{.Value}}</div>{{end}}</div>{{end}}
  {{end}}
  <p class="meta">Generated {{formatDate .GeneratedAt "Jan 2, 2006"}}</p>
</body>
</html>`
